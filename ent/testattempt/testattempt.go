// Code generated by ent, DO NOT EDIT.

package testattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the testattempt type in the database.
	Label = "test_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldExecutionTimes holds the string denoting the execution_times field in the database.
	FieldExecutionTimes = "execution_times"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the testattempt in the database.
	Table = "test_attempts"
)

// Columns holds all SQL columns for testattempt fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldLearnerID,
	FieldSessionType,
	FieldScore,
	FieldTotal,
	FieldTimeSpentSecs,
	FieldConfig,
	FieldExecutionTimes,
	FieldQuestions,
	FieldAnswers,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	SessionTypeValidator func(string) error
	// DefaultCompletedAt holds the default value on creation for the "completed_at" field.
	DefaultCompletedAt func() time.Time
)

// OrderOption defines the ordering options for the TestAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
