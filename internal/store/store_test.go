package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_FileMigratesTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	ctx := context.Background()
	if err := s.ProgressRepo().LogProgress(ctx, AttemptRecord{SessionID: "session_a", Difficulty: "Easy"}); err != nil {
		t.Fatalf("log: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s.Close()

	got, err := s.ProgressRepo().GetProgress(ctx, "session_a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt after reopen, got %d", len(got))
	}
}

func TestLogAndGetProgress(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	records := []AttemptRecord{
		{SessionID: "session_1", Timestamp: base, Difficulty: "Easy", Correct: true, ResponseTime: 3.5, Streak: 0, Confidence: 73},
		{SessionID: "session_1", Timestamp: base.Add(time.Minute), Difficulty: "Easy", Correct: false, ResponseTime: 9.25, Streak: 1, Confidence: 42.5},
		{SessionID: "session_2", Timestamp: base, Difficulty: "Hard", Correct: true, ResponseTime: 7, Streak: 4, Confidence: 91},
		{SessionID: "session_1", Timestamp: base.Add(2 * time.Minute), Difficulty: "Medium", Correct: true, ResponseTime: 4, Streak: 0, Confidence: 66.1},
	}
	for _, r := range records {
		if err := repo.LogProgress(ctx, r); err != nil {
			t.Fatalf("log progress: %v", err)
		}
	}

	got, err := repo.GetProgress(ctx, "session_1")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(got))
	}

	want := []AttemptRecord{records[0], records[1], records[3]}
	for i, w := range want {
		g := got[i]
		if g.ID == 0 {
			t.Errorf("attempt %d: expected an id", i)
		}
		if g.SessionID != w.SessionID || g.Difficulty != w.Difficulty || g.Correct != w.Correct ||
			g.ResponseTime != w.ResponseTime || g.Streak != w.Streak || g.Confidence != w.Confidence {
			t.Errorf("attempt %d = %+v, want %+v", i, g, w)
		}
		if !g.Timestamp.Equal(w.Timestamp) {
			t.Errorf("attempt %d timestamp = %v, want %v", i, g.Timestamp, w.Timestamp)
		}
	}
}

func TestGetProgress_ParameterizedSessionID(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	ctx := context.Background()

	if err := repo.LogProgress(ctx, AttemptRecord{SessionID: "victim", Difficulty: "Easy"}); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"' OR '1'='1", "victim'; DROP TABLE attempts; --"} {
		got, err := repo.GetProgress(ctx, id)
		if err != nil {
			t.Fatalf("get progress(%q): %v", id, err)
		}
		if len(got) != 0 {
			t.Errorf("session id %q leaked %d rows", id, len(got))
		}
	}

	hostile := "o'brien \"quoted\""
	if err := repo.LogProgress(ctx, AttemptRecord{SessionID: hostile, Difficulty: "Hard"}); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetProgress(ctx, hostile)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].SessionID != hostile {
		t.Errorf("expected the literal session id to round-trip, got %+v", got)
	}
}

func TestLogProgress_DefaultsTimestamp(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	if err := repo.LogProgress(ctx, AttemptRecord{SessionID: "s", Difficulty: "Easy"}); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetProgress(ctx, "s")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Timestamp.Before(before) {
		t.Errorf("expected timestamp to default to now, got %+v", got)
	}
}

func TestLogProgress_EmptySession(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	if err := repo.LogProgress(context.Background(), AttemptRecord{}); err != ErrEmptySessionID {
		t.Errorf("expected ErrEmptySessionID, got %v", err)
	}
}

func TestSessionsAndDelete(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	log := func(id string, at time.Time, correct bool) {
		t.Helper()
		if err := repo.LogProgress(ctx, AttemptRecord{SessionID: id, Timestamp: at, Difficulty: "Easy", Correct: correct}); err != nil {
			t.Fatal(err)
		}
	}
	log("old", base, true)
	log("old", base.Add(time.Minute), false)
	log("new", base.Add(time.Hour), true)

	sessions, err := repo.Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].SessionID != "new" {
		t.Errorf("expected most recent session first, got %q", sessions[0].SessionID)
	}
	old := sessions[1]
	if old.Attempts != 2 || old.Correct != 1 {
		t.Errorf("old session = %+v, want 2 attempts / 1 correct", old)
	}
	if !old.LastSeen.Equal(base.Add(time.Minute)) {
		t.Errorf("old last seen = %v", old.LastSeen)
	}

	n, err := repo.DeleteSession(ctx, "old")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d rows, want 2", n)
	}
	rest, _ := repo.GetProgress(ctx, "new")
	if len(rest) != 1 {
		t.Errorf("delete touched other sessions: %d rows left", len(rest))
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "nested", "x.db")
	t.Setenv("MATHADV_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHADV_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "mathadv", "mathadv.db"); got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}
