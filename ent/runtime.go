// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/algodrill/algodrill/ent/answerevent"
	"github.com/algodrill/algodrill/ent/schema"
	"github.com/algodrill/algodrill/ent/sessionevent"
	"github.com/algodrill/algodrill/ent/snapshot"
	"github.com/algodrill/algodrill/ent/testattempt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSessionType is the schema descriptor for session_type field.
	sessioneventDescSessionType := sessioneventFields[3].Descriptor()
	// sessionevent.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	sessionevent.SessionTypeValidator = sessioneventDescSessionType.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	testattemptFields := schema.TestAttempt{}.Fields()
	_ = testattemptFields
	// testattemptDescSessionID is the schema descriptor for session_id field.
	testattemptDescSessionID := testattemptFields[0].Descriptor()
	// testattempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	testattempt.SessionIDValidator = testattemptDescSessionID.Validators[0].(func(string) error)
	// testattemptDescLearnerID is the schema descriptor for learner_id field.
	testattemptDescLearnerID := testattemptFields[1].Descriptor()
	// testattempt.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	testattempt.LearnerIDValidator = testattemptDescLearnerID.Validators[0].(func(string) error)
	// testattemptDescSessionType is the schema descriptor for session_type field.
	testattemptDescSessionType := testattemptFields[2].Descriptor()
	// testattempt.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	testattempt.SessionTypeValidator = testattemptDescSessionType.Validators[0].(func(string) error)
	// testattemptDescCompletedAt is the schema descriptor for completed_at field.
	testattemptDescCompletedAt := testattemptFields[10].Descriptor()
	// testattempt.DefaultCompletedAt holds the default value on creation for the completed_at field.
	testattempt.DefaultCompletedAt = testattemptDescCompletedAt.Default.(func() time.Time)
}
