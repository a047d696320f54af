// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/algodrill/algodrill/ent/schema"
	"github.com/algodrill/algodrill/ent/testattempt"
)

// TestAttemptCreate is the builder for creating a TestAttempt entity.
type TestAttemptCreate struct {
	config
	mutation *TestAttemptMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TestAttemptCreate) SetSessionID(v string) *TestAttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *TestAttemptCreate) SetLearnerID(v string) *TestAttemptCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSessionType sets the "session_type" field.
func (_c *TestAttemptCreate) SetSessionType(v string) *TestAttemptCreate {
	_c.mutation.SetSessionType(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *TestAttemptCreate) SetScore(v int) *TestAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *TestAttemptCreate) SetTotal(v int) *TestAttemptCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *TestAttemptCreate) SetTimeSpentSecs(v int) *TestAttemptCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *TestAttemptCreate) SetConfig(v map[string]string) *TestAttemptCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetExecutionTimes sets the "execution_times" field.
func (_c *TestAttemptCreate) SetExecutionTimes(v map[string]float64) *TestAttemptCreate {
	_c.mutation.SetExecutionTimes(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *TestAttemptCreate) SetQuestions(v []schema.AttemptQuestion) *TestAttemptCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *TestAttemptCreate) SetAnswers(v []int) *TestAttemptCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TestAttemptCreate) SetCompletedAt(v time.Time) *TestAttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TestAttemptCreate) SetNillableCompletedAt(v *time.Time) *TestAttemptCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the TestAttemptMutation object of the builder.
func (_c *TestAttemptCreate) Mutation() *TestAttemptMutation {
	return _c.mutation
}

// Save creates the TestAttempt in the database.
func (_c *TestAttemptCreate) Save(ctx context.Context) (*TestAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestAttemptCreate) SaveX(ctx context.Context) *TestAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestAttemptCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := testattempt.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestAttemptCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TestAttempt.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := testattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "TestAttempt.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := testattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		return &ValidationError{Name: "session_type", err: errors.New(`ent: missing required field "TestAttempt.session_type"`)}
	}
	if v, ok := _c.mutation.SessionType(); ok {
		if err := testattempt.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "TestAttempt.session_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TestAttempt.score"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "TestAttempt.total"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "TestAttempt.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "TestAttempt.config"`)}
	}
	if _, ok := _c.mutation.ExecutionTimes(); !ok {
		return &ValidationError{Name: "execution_times", err: errors.New(`ent: missing required field "TestAttempt.execution_times"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "TestAttempt.questions"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "TestAttempt.answers"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "TestAttempt.completed_at"`)}
	}
	return nil
}

func (_c *TestAttemptCreate) sqlSave(ctx context.Context) (*TestAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestAttemptCreate) createSpec() (*TestAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &TestAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testattempt.Table, sqlgraph.NewFieldSpec(testattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(testattempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(testattempt.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.SessionType(); ok {
		_spec.SetField(testattempt.FieldSessionType, field.TypeString, value)
		_node.SessionType = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(testattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(testattempt.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(testattempt.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(testattempt.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.ExecutionTimes(); ok {
		_spec.SetField(testattempt.FieldExecutionTimes, field.TypeJSON, value)
		_node.ExecutionTimes = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(testattempt.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(testattempt.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(testattempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// TestAttemptCreateBulk is the builder for creating many TestAttempt entities in bulk.
type TestAttemptCreateBulk struct {
	config
	err      error
	builders []*TestAttemptCreate
}

// Save creates the TestAttempt entities in the database.
func (_c *TestAttemptCreateBulk) Save(ctx context.Context) ([]*TestAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestAttemptCreateBulk) SaveX(ctx context.Context) []*TestAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
