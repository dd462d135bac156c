package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ErrEmptySessionID is returned when a session id is required but blank.
var ErrEmptySessionID = errors.New("session id is empty")

// progressRepo implements ProgressRepo with ent's SQL builder over *sql.DB.
type progressRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *progressRepo) LogProgress(ctx context.Context, rec AttemptRecord) error {
	if rec.SessionID == "" {
		return ErrEmptySessionID
	}
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := builder().Insert(attemptsTable).
		Columns(colSessionID, colAnsweredAt, colDifficulty, colCorrect, colResponseTime, colStreak, colConfidence).
		Values(rec.SessionID, ts.UnixMilli(), rec.Difficulty, rec.Correct, rec.ResponseTime, rec.Streak, rec.Confidence).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("log progress: %w", err)
	}
	return nil
}

func (r *progressRepo) GetProgress(ctx context.Context, sessionID string) ([]AttemptRecord, error) {
	t := entsql.Table(attemptsTable)
	query, args := builder().Select(
		t.C(colID),
		t.C(colSessionID),
		t.C(colAnsweredAt),
		t.C(colDifficulty),
		t.C(colCorrect),
		t.C(colResponseTime),
		t.C(colStreak),
		t.C(colConfidence),
	).
		From(t).
		Where(entsql.EQ(t.C(colSessionID), sessionID)).
		OrderBy(entsql.Asc(t.C(colID))).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var (
			rec        AttemptRecord
			answeredAt int64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&answeredAt,
			&rec.Difficulty,
			&rec.Correct,
			&rec.ResponseTime,
			&rec.Streak,
			&rec.Confidence,
		); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		rec.Timestamp = time.UnixMilli(answeredAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}
	return out, nil
}

func (r *progressRepo) Sessions(ctx context.Context) ([]SessionInfo, error) {
	t := entsql.Table(attemptsTable)
	query, args := builder().Select(
		t.C(colSessionID),
		entsql.Count(t.C(colID)),
		entsql.Sum(t.C(colCorrect)),
		entsql.Max(t.C(colAnsweredAt)),
	).
		From(t).
		GroupBy(t.C(colSessionID)).
		OrderBy(entsql.Desc(entsql.Max(t.C(colAnsweredAt)))).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionInfo
	for rows.Next() {
		var (
			info     SessionInfo
			lastSeen int64
		)
		if err := rows.Scan(&info.SessionID, &info.Attempts, &info.Correct, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		info.LastSeen = time.UnixMilli(lastSeen)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *progressRepo) DeleteSession(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, ErrEmptySessionID
	}
	query, args := builder().Delete(attemptsTable).
		Where(entsql.EQ(colSessionID, sessionID)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}
	return int(n), nil
}
