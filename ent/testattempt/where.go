// Code generated by ent, DO NOT EDIT.

package testattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/algodrill/algodrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldLearnerID, v))
}

// SessionType applies equality check predicate on the "session_type" field. It's identical to SessionTypeEQ.
func SessionType(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldSessionType, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldScore, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldTotal, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldContainsFold(FieldLearnerID, v))
}

// SessionTypeEQ applies the EQ predicate on the "session_type" field.
func SessionTypeEQ(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldSessionType, v))
}

// SessionTypeNEQ applies the NEQ predicate on the "session_type" field.
func SessionTypeNEQ(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldSessionType, v))
}

// SessionTypeIn applies the In predicate on the "session_type" field.
func SessionTypeIn(vs ...string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldSessionType, vs...))
}

// SessionTypeNotIn applies the NotIn predicate on the "session_type" field.
func SessionTypeNotIn(vs ...string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldSessionType, vs...))
}

// SessionTypeGT applies the GT predicate on the "session_type" field.
func SessionTypeGT(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldSessionType, v))
}

// SessionTypeGTE applies the GTE predicate on the "session_type" field.
func SessionTypeGTE(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldSessionType, v))
}

// SessionTypeLT applies the LT predicate on the "session_type" field.
func SessionTypeLT(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldSessionType, v))
}

// SessionTypeLTE applies the LTE predicate on the "session_type" field.
func SessionTypeLTE(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldSessionType, v))
}

// SessionTypeContains applies the Contains predicate on the "session_type" field.
func SessionTypeContains(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldContains(FieldSessionType, v))
}

// SessionTypeHasPrefix applies the HasPrefix predicate on the "session_type" field.
func SessionTypeHasPrefix(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldHasPrefix(FieldSessionType, v))
}

// SessionTypeHasSuffix applies the HasSuffix predicate on the "session_type" field.
func SessionTypeHasSuffix(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldHasSuffix(FieldSessionType, v))
}

// SessionTypeEqualFold applies the EqualFold predicate on the "session_type" field.
func SessionTypeEqualFold(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEqualFold(FieldSessionType, v))
}

// SessionTypeContainsFold applies the ContainsFold predicate on the "session_type" field.
func SessionTypeContainsFold(v string) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldContainsFold(FieldSessionType, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldScore, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldTotal, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TestAttempt {
	return predicate.TestAttempt(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestAttempt) predicate.TestAttempt {
	return predicate.TestAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestAttempt) predicate.TestAttempt {
	return predicate.TestAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestAttempt) predicate.TestAttempt {
	return predicate.TestAttempt(sql.NotPredicates(p))
}
