package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records assessment lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("learner_id").
			NotEmpty().
			Comment("UUID of the learner"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("session_type").
			NotEmpty().
			Comment("normal or spaced_repetition"),
		field.Int("questions_served").
			Default(0).
			Comment("Total questions (on end only)"),
		field.Int("score").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (on end only)"),
		field.JSON("config", map[string]string{}).
			Optional().
			Comment("Strategy assignment per family (on start only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
		index.Fields("action"),
	}
}
