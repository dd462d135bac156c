package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	attemptsTable = "attempts"

	colID           = "id"
	colSessionID    = "session_id"
	colAnsweredAt   = "answered_at"
	colDifficulty   = "difficulty"
	colCorrect      = "correct"
	colResponseTime = "response_time"
	colStreak       = "streak"
	colConfidence   = "confidence"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colAnsweredAt, Type: field.TypeInt64, Comment: "Unix milliseconds"},
		{Name: colDifficulty, Type: field.TypeString},
		{Name: colCorrect, Type: field.TypeBool},
		{Name: colResponseTime, Type: field.TypeFloat64, Comment: "Seconds"},
		{Name: colStreak, Type: field.TypeInt, Comment: "Streak entering the attempt"},
		{Name: colConfidence, Type: field.TypeFloat64},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       attemptsTable,
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
	}
)
