package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestAttempt is the finalized record of one completed assessment.
type TestAttempt struct {
	ent.Schema
}

// AttemptQuestion is the serialized form of one question in an attempt.
type AttemptQuestion struct {
	ID            string `json:"id"`
	Topic         string `json:"topic"`
	Title         string `json:"title"`
	CorrectAnswer int    `json:"correct_answer"`
}

func (TestAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID of the session this attempt finalizes"),
		field.String("learner_id").
			NotEmpty().
			Comment("UUID of the learner"),
		field.String("session_type").
			NotEmpty().
			Comment("normal or spaced_repetition"),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("total").
			Comment("Questions served"),
		field.Int("time_spent_secs").
			Comment("Elapsed seconds"),
		field.JSON("config", map[string]string{}).
			Comment("Strategy assignment per family"),
		field.JSON("execution_times", map[string]float64{}).
			Comment("Algorithm name to execution time in ms"),
		field.JSON("questions", []AttemptQuestion{}).
			Comment("Questions served, in order"),
		field.JSON("answers", []int{}).
			Comment("Selected option per question, -1 for unanswered"),
		field.Time("completed_at").
			Default(time.Now).
			Comment("When the attempt was finalized"),
	}
}

func (TestAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("completed_at"),
	}
}
