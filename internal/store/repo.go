package store

import (
	"context"
	"time"
)

// ProfileData identifies the learner.
type ProfileData struct {
	LearnerID string `json:"learner_id"`
	Name      string `json:"name"`
}

// ReviewScheduleData is the spaced-repetition state written at finalize.
type ReviewScheduleData struct {
	NextReviewDate time.Time `json:"next_review_date"`
	IntervalDays   int       `json:"interval_days"`
	Strategy       string    `json:"strategy"`
}

// SnapshotData captures the learner state at a point in time.
type SnapshotData struct {
	Version int                 `json:"version"`
	Profile *ProfileData        `json:"profile,omitempty"`
	Review  *ReviewScheduleData `json:"review,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	LearnerID       string
	Action          string
	SessionType     string
	QuestionsServed int
	Score           int
	DurationSecs    int
	Config          map[string]string
}

// AnswerEventData captures one locked-in answer.
type AnswerEventData struct {
	SessionID     string
	QuestionID    string
	Topic         string
	Position      int
	Selected      int
	CorrectAnswer int
	Correct       bool
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a locked-in answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
}

// AttemptQuestion is one question as persisted in an attempt record.
type AttemptQuestion struct {
	ID            string
	Topic         string
	Title         string
	CorrectAnswer int
}

// AttemptRecord is the persisted form of a finalized attempt.
type AttemptRecord struct {
	SessionID   string
	LearnerID   string
	SessionType string

	Score         int
	Total         int
	TimeSpentSecs int

	Config         map[string]string
	ExecutionTimes map[string]float64

	Questions []AttemptQuestion
	Answers   []int

	CompletedAt time.Time
}

// AttemptRepo manages finalized attempt records.
type AttemptRepo interface {
	// Add persists a finalized attempt.
	Add(ctx context.Context, rec *AttemptRecord) error

	// Recent returns the learner's attempts, newest first, up to limit.
	// limit <= 0 means no limit.
	Recent(ctx context.Context, learnerID string, limit int) ([]*AttemptRecord, error)
}
