package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single locked-in answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Bank ID of the question shown"),
		field.String("topic").
			NotEmpty().
			Comment("arrays or linkedlists"),
		field.Int("position").
			Comment("Zero-based position within the session"),
		field.Int("selected").
			Comment("Option index the learner locked in"),
		field.Int("correct_answer").
			Comment("Option index of the right answer"),
		field.Bool("correct").
			Comment("Whether selected matched the right answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
