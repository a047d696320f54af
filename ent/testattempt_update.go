// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/algodrill/algodrill/ent/predicate"
	"github.com/algodrill/algodrill/ent/schema"
	"github.com/algodrill/algodrill/ent/testattempt"
)

// TestAttemptUpdate is the builder for updating TestAttempt entities.
type TestAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *TestAttemptMutation
}

// Where appends a list predicates to the TestAttemptUpdate builder.
func (_u *TestAttemptUpdate) Where(ps ...predicate.TestAttempt) *TestAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TestAttemptUpdate) SetSessionID(v string) *TestAttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TestAttemptUpdate) SetNillableSessionID(v *string) *TestAttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TestAttemptUpdate) SetLearnerID(v string) *TestAttemptUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TestAttemptUpdate) SetNillableLearnerID(v *string) *TestAttemptUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *TestAttemptUpdate) SetSessionType(v string) *TestAttemptUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *TestAttemptUpdate) SetNillableSessionType(v *string) *TestAttemptUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TestAttemptUpdate) SetScore(v int) *TestAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestAttemptUpdate) SetNillableScore(v *int) *TestAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestAttemptUpdate) AddScore(v int) *TestAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *TestAttemptUpdate) SetTotal(v int) *TestAttemptUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *TestAttemptUpdate) SetNillableTotal(v *int) *TestAttemptUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *TestAttemptUpdate) AddTotal(v int) *TestAttemptUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *TestAttemptUpdate) SetTimeSpentSecs(v int) *TestAttemptUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *TestAttemptUpdate) SetNillableTimeSpentSecs(v *int) *TestAttemptUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *TestAttemptUpdate) AddTimeSpentSecs(v int) *TestAttemptUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *TestAttemptUpdate) SetConfig(v map[string]string) *TestAttemptUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetExecutionTimes sets the "execution_times" field.
func (_u *TestAttemptUpdate) SetExecutionTimes(v map[string]float64) *TestAttemptUpdate {
	_u.mutation.SetExecutionTimes(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *TestAttemptUpdate) SetQuestions(v []schema.AttemptQuestion) *TestAttemptUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *TestAttemptUpdate) AppendQuestions(v []schema.AttemptQuestion) *TestAttemptUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *TestAttemptUpdate) SetAnswers(v []int) *TestAttemptUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *TestAttemptUpdate) AppendAnswers(v []int) *TestAttemptUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestAttemptUpdate) SetCompletedAt(v time.Time) *TestAttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestAttemptUpdate) SetNillableCompletedAt(v *time.Time) *TestAttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the TestAttemptMutation object of the builder.
func (_u *TestAttemptUpdate) Mutation() *TestAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestAttemptUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := testattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := testattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := testattempt.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.session_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TestAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testattempt.Table, testattempt.Columns, sqlgraph.NewFieldSpec(testattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(testattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(testattempt.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(testattempt.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(testattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(testattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(testattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(testattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(testattempt.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExecutionTimes(); ok {
		_spec.SetField(testattempt.FieldExecutionTimes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(testattempt.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testattempt.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(testattempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testattempt.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testattempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestAttemptUpdateOne is the builder for updating a single TestAttempt entity.
type TestAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestAttemptMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TestAttemptUpdateOne) SetSessionID(v string) *TestAttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TestAttemptUpdateOne) SetNillableSessionID(v *string) *TestAttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TestAttemptUpdateOne) SetLearnerID(v string) *TestAttemptUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TestAttemptUpdateOne) SetNillableLearnerID(v *string) *TestAttemptUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *TestAttemptUpdateOne) SetSessionType(v string) *TestAttemptUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *TestAttemptUpdateOne) SetNillableSessionType(v *string) *TestAttemptUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TestAttemptUpdateOne) SetScore(v int) *TestAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestAttemptUpdateOne) SetNillableScore(v *int) *TestAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestAttemptUpdateOne) AddScore(v int) *TestAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *TestAttemptUpdateOne) SetTotal(v int) *TestAttemptUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *TestAttemptUpdateOne) SetNillableTotal(v *int) *TestAttemptUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *TestAttemptUpdateOne) AddTotal(v int) *TestAttemptUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *TestAttemptUpdateOne) SetTimeSpentSecs(v int) *TestAttemptUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *TestAttemptUpdateOne) SetNillableTimeSpentSecs(v *int) *TestAttemptUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *TestAttemptUpdateOne) AddTimeSpentSecs(v int) *TestAttemptUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *TestAttemptUpdateOne) SetConfig(v map[string]string) *TestAttemptUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetExecutionTimes sets the "execution_times" field.
func (_u *TestAttemptUpdateOne) SetExecutionTimes(v map[string]float64) *TestAttemptUpdateOne {
	_u.mutation.SetExecutionTimes(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *TestAttemptUpdateOne) SetQuestions(v []schema.AttemptQuestion) *TestAttemptUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *TestAttemptUpdateOne) AppendQuestions(v []schema.AttemptQuestion) *TestAttemptUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *TestAttemptUpdateOne) SetAnswers(v []int) *TestAttemptUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *TestAttemptUpdateOne) AppendAnswers(v []int) *TestAttemptUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestAttemptUpdateOne) SetCompletedAt(v time.Time) *TestAttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestAttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *TestAttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the TestAttemptMutation object of the builder.
func (_u *TestAttemptUpdateOne) Mutation() *TestAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestAttemptUpdate builder.
func (_u *TestAttemptUpdateOne) Where(ps ...predicate.TestAttempt) *TestAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestAttemptUpdateOne) Select(field string, fields ...string) *TestAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestAttempt entity.
func (_u *TestAttemptUpdateOne) Save(ctx context.Context) (*TestAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestAttemptUpdateOne) SaveX(ctx context.Context) *TestAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := testattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := testattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := testattempt.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.session_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TestAttemptUpdateOne) sqlSave(ctx context.Context) (_node *TestAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testattempt.Table, testattempt.Columns, sqlgraph.NewFieldSpec(testattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testattempt.FieldID)
		for _, f := range fields {
			if !testattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(testattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(testattempt.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(testattempt.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(testattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(testattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(testattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(testattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(testattempt.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExecutionTimes(); ok {
		_spec.SetField(testattempt.FieldExecutionTimes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(testattempt.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testattempt.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(testattempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testattempt.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testattempt.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &TestAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
