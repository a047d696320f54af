// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/algodrill/algodrill/ent/schema"
	"github.com/algodrill/algodrill/ent/testattempt"
)

// TestAttempt is the model entity for the TestAttempt schema.
type TestAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the session this attempt finalizes
	SessionID string `json:"session_id,omitempty"`
	// UUID of the learner
	LearnerID string `json:"learner_id,omitempty"`
	// normal or spaced_repetition
	SessionType string `json:"session_type,omitempty"`
	// Correct answers
	Score int `json:"score,omitempty"`
	// Questions served
	Total int `json:"total,omitempty"`
	// Elapsed seconds
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	// Strategy assignment per family
	Config map[string]string `json:"config,omitempty"`
	// Algorithm name to execution time in ms
	ExecutionTimes map[string]float64 `json:"execution_times,omitempty"`
	// Questions served, in order
	Questions []schema.AttemptQuestion `json:"questions,omitempty"`
	// Selected option per question, -1 for unanswered
	Answers []int `json:"answers,omitempty"`
	// When the attempt was finalized
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testattempt.FieldConfig, testattempt.FieldExecutionTimes, testattempt.FieldQuestions, testattempt.FieldAnswers:
			values[i] = new([]byte)
		case testattempt.FieldID, testattempt.FieldScore, testattempt.FieldTotal, testattempt.FieldTimeSpentSecs:
			values[i] = new(sql.NullInt64)
		case testattempt.FieldSessionID, testattempt.FieldLearnerID, testattempt.FieldSessionType:
			values[i] = new(sql.NullString)
		case testattempt.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestAttempt fields.
func (_m *TestAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testattempt.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case testattempt.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case testattempt.FieldSessionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_type", values[i])
			} else if value.Valid {
				_m.SessionType = value.String
			}
		case testattempt.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case testattempt.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case testattempt.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = int(value.Int64)
			}
		case testattempt.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case testattempt.FieldExecutionTimes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field execution_times", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutionTimes); err != nil {
					return fmt.Errorf("unmarshal field execution_times: %w", err)
				}
			}
		case testattempt.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case testattempt.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case testattempt.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *TestAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestAttempt.
// Note that you need to call TestAttempt.Unwrap() before calling this method if this TestAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestAttempt) Update() *TestAttemptUpdateOne {
	return NewTestAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestAttempt) Unwrap() *TestAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("TestAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("session_type=")
	builder.WriteString(_m.SessionType)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("execution_times=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTimes))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestAttempts is a parsable slice of TestAttempt.
type TestAttempts []*TestAttempt
