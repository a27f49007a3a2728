// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskmemory"
	pgvector "github.com/pgvector/pgvector-go"
)

// TaskMemoryCreate is the builder for creating a TaskMemory entity.
type TaskMemoryCreate struct {
	config
	mutation *TaskMemoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskMemoryCreate) SetTaskID(v string) *TaskMemoryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetExecutionSummary sets the "execution_summary" field.
func (_c *TaskMemoryCreate) SetExecutionSummary(v string) *TaskMemoryCreate {
	_c.mutation.SetExecutionSummary(v)
	return _c
}

// SetMemoryType sets the "memory_type" field.
func (_c *TaskMemoryCreate) SetMemoryType(v taskmemory.MemoryType) *TaskMemoryCreate {
	_c.mutation.SetMemoryType(v)
	return _c
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_c *TaskMemoryCreate) SetNillableMemoryType(v *taskmemory.MemoryType) *TaskMemoryCreate {
	if v != nil {
		_c.SetMemoryType(*v)
	}
	return _c
}

// SetContextEmbedding sets the "context_embedding" field.
func (_c *TaskMemoryCreate) SetContextEmbedding(v pgvector.Vector) *TaskMemoryCreate {
	_c.mutation.SetContextEmbedding(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TaskMemoryCreate) SetSuccess(v bool) *TaskMemoryCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *TaskMemoryCreate) SetNillableSuccess(v *bool) *TaskMemoryCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorPatterns sets the "error_patterns" field.
func (_c *TaskMemoryCreate) SetErrorPatterns(v []string) *TaskMemoryCreate {
	_c.mutation.SetErrorPatterns(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *TaskMemoryCreate) SetGoal(v string) *TaskMemoryCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_c *TaskMemoryCreate) SetNillableGoal(v *string) *TaskMemoryCreate {
	if v != nil {
		_c.SetGoal(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *TaskMemoryCreate) SetResult(v string) *TaskMemoryCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *TaskMemoryCreate) SetNillableResult(v *string) *TaskMemoryCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *TaskMemoryCreate) SetFeedback(v string) *TaskMemoryCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *TaskMemoryCreate) SetNillableFeedback(v *string) *TaskMemoryCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetToolUsage sets the "tool_usage" field.
func (_c *TaskMemoryCreate) SetToolUsage(v []map[string]interface{}) *TaskMemoryCreate {
	_c.mutation.SetToolUsage(v)
	return _c
}

// SetReusedCount sets the "reused_count" field.
func (_c *TaskMemoryCreate) SetReusedCount(v int) *TaskMemoryCreate {
	_c.mutation.SetReusedCount(v)
	return _c
}

// SetNillableReusedCount sets the "reused_count" field if the given value is not nil.
func (_c *TaskMemoryCreate) SetNillableReusedCount(v *int) *TaskMemoryCreate {
	if v != nil {
		_c.SetReusedCount(*v)
	}
	return _c
}

// SetLearnedAt sets the "learned_at" field.
func (_c *TaskMemoryCreate) SetLearnedAt(v time.Time) *TaskMemoryCreate {
	_c.mutation.SetLearnedAt(v)
	return _c
}

// SetNillableLearnedAt sets the "learned_at" field if the given value is not nil.
func (_c *TaskMemoryCreate) SetNillableLearnedAt(v *time.Time) *TaskMemoryCreate {
	if v != nil {
		_c.SetLearnedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskMemoryCreate) SetID(v string) *TaskMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskMemoryCreate) SetTask(v *Task) *TaskMemoryCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskMemoryMutation object of the builder.
func (_c *TaskMemoryCreate) Mutation() *TaskMemoryMutation {
	return _c.mutation
}

// Save creates the TaskMemory in the database.
func (_c *TaskMemoryCreate) Save(ctx context.Context) (*TaskMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskMemoryCreate) SaveX(ctx context.Context) *TaskMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskMemoryCreate) defaults() {
	if _, ok := _c.mutation.MemoryType(); !ok {
		v := taskmemory.DefaultMemoryType
		_c.mutation.SetMemoryType(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := taskmemory.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.ReusedCount(); !ok {
		v := taskmemory.DefaultReusedCount
		_c.mutation.SetReusedCount(v)
	}
	if _, ok := _c.mutation.LearnedAt(); !ok {
		v := taskmemory.DefaultLearnedAt()
		_c.mutation.SetLearnedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskMemoryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskMemory.task_id"`)}
	}
	if _, ok := _c.mutation.ExecutionSummary(); !ok {
		return &ValidationError{Name: "execution_summary", err: errors.New(`ent: missing required field "TaskMemory.execution_summary"`)}
	}
	if _, ok := _c.mutation.MemoryType(); !ok {
		return &ValidationError{Name: "memory_type", err: errors.New(`ent: missing required field "TaskMemory.memory_type"`)}
	}
	if v, ok := _c.mutation.MemoryType(); ok {
		if err := taskmemory.MemoryTypeValidator(v); err != nil {
			return &ValidationError{Name: "memory_type", err: fmt.Errorf(`ent: validator failed for field "TaskMemory.memory_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextEmbedding(); !ok {
		return &ValidationError{Name: "context_embedding", err: errors.New(`ent: missing required field "TaskMemory.context_embedding"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TaskMemory.success"`)}
	}
	if _, ok := _c.mutation.ReusedCount(); !ok {
		return &ValidationError{Name: "reused_count", err: errors.New(`ent: missing required field "TaskMemory.reused_count"`)}
	}
	if _, ok := _c.mutation.LearnedAt(); !ok {
		return &ValidationError{Name: "learned_at", err: errors.New(`ent: missing required field "TaskMemory.learned_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskMemory.task"`)}
	}
	return nil
}

func (_c *TaskMemoryCreate) sqlSave(ctx context.Context) (*TaskMemory, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskMemoryCreate) createSpec() (*TaskMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskmemory.Table, sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionSummary(); ok {
		_spec.SetField(taskmemory.FieldExecutionSummary, field.TypeString, value)
		_node.ExecutionSummary = value
	}
	if value, ok := _c.mutation.MemoryType(); ok {
		_spec.SetField(taskmemory.FieldMemoryType, field.TypeEnum, value)
		_node.MemoryType = value
	}
	if value, ok := _c.mutation.ContextEmbedding(); ok {
		_spec.SetField(taskmemory.FieldContextEmbedding, field.TypeOther, value)
		_node.ContextEmbedding = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(taskmemory.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorPatterns(); ok {
		_spec.SetField(taskmemory.FieldErrorPatterns, field.TypeJSON, value)
		_node.ErrorPatterns = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(taskmemory.FieldGoal, field.TypeString, value)
		_node.Goal = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(taskmemory.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(taskmemory.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.ToolUsage(); ok {
		_spec.SetField(taskmemory.FieldToolUsage, field.TypeJSON, value)
		_node.ToolUsage = value
	}
	if value, ok := _c.mutation.ReusedCount(); ok {
		_spec.SetField(taskmemory.FieldReusedCount, field.TypeInt, value)
		_node.ReusedCount = value
	}
	if value, ok := _c.mutation.LearnedAt(); ok {
		_spec.SetField(taskmemory.FieldLearnedAt, field.TypeTime, value)
		_node.LearnedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskmemory.TaskTable,
			Columns: []string{taskmemory.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskMemory.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskMemoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskMemoryCreate) OnConflict(opts ...sql.ConflictOption) *TaskMemoryUpsertOne {
	_c.conflict = opts
	return &TaskMemoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskMemoryCreate) OnConflictColumns(columns ...string) *TaskMemoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskMemoryUpsertOne{
		create: _c,
	}
}

type (
	// TaskMemoryUpsertOne is the builder for "upsert"-ing
	//  one TaskMemory node.
	TaskMemoryUpsertOne struct {
		create *TaskMemoryCreate
	}

	// TaskMemoryUpsert is the "OnConflict" setter.
	TaskMemoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutionSummary sets the "execution_summary" field.
func (u *TaskMemoryUpsert) SetExecutionSummary(v string) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldExecutionSummary, v)
	return u
}

// UpdateExecutionSummary sets the "execution_summary" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateExecutionSummary() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldExecutionSummary)
	return u
}

// SetMemoryType sets the "memory_type" field.
func (u *TaskMemoryUpsert) SetMemoryType(v taskmemory.MemoryType) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldMemoryType, v)
	return u
}

// UpdateMemoryType sets the "memory_type" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateMemoryType() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldMemoryType)
	return u
}

// SetContextEmbedding sets the "context_embedding" field.
func (u *TaskMemoryUpsert) SetContextEmbedding(v pgvector.Vector) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldContextEmbedding, v)
	return u
}

// UpdateContextEmbedding sets the "context_embedding" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateContextEmbedding() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldContextEmbedding)
	return u
}

// SetSuccess sets the "success" field.
func (u *TaskMemoryUpsert) SetSuccess(v bool) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateSuccess() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldSuccess)
	return u
}

// SetErrorPatterns sets the "error_patterns" field.
func (u *TaskMemoryUpsert) SetErrorPatterns(v []string) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldErrorPatterns, v)
	return u
}

// UpdateErrorPatterns sets the "error_patterns" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateErrorPatterns() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldErrorPatterns)
	return u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (u *TaskMemoryUpsert) ClearErrorPatterns() *TaskMemoryUpsert {
	u.SetNull(taskmemory.FieldErrorPatterns)
	return u
}

// SetGoal sets the "goal" field.
func (u *TaskMemoryUpsert) SetGoal(v string) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldGoal, v)
	return u
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateGoal() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldGoal)
	return u
}

// ClearGoal clears the value of the "goal" field.
func (u *TaskMemoryUpsert) ClearGoal() *TaskMemoryUpsert {
	u.SetNull(taskmemory.FieldGoal)
	return u
}

// SetResult sets the "result" field.
func (u *TaskMemoryUpsert) SetResult(v string) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateResult() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *TaskMemoryUpsert) ClearResult() *TaskMemoryUpsert {
	u.SetNull(taskmemory.FieldResult)
	return u
}

// SetFeedback sets the "feedback" field.
func (u *TaskMemoryUpsert) SetFeedback(v string) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldFeedback, v)
	return u
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateFeedback() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldFeedback)
	return u
}

// ClearFeedback clears the value of the "feedback" field.
func (u *TaskMemoryUpsert) ClearFeedback() *TaskMemoryUpsert {
	u.SetNull(taskmemory.FieldFeedback)
	return u
}

// SetToolUsage sets the "tool_usage" field.
func (u *TaskMemoryUpsert) SetToolUsage(v []map[string]interface{}) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldToolUsage, v)
	return u
}

// UpdateToolUsage sets the "tool_usage" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateToolUsage() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldToolUsage)
	return u
}

// ClearToolUsage clears the value of the "tool_usage" field.
func (u *TaskMemoryUpsert) ClearToolUsage() *TaskMemoryUpsert {
	u.SetNull(taskmemory.FieldToolUsage)
	return u
}

// SetReusedCount sets the "reused_count" field.
func (u *TaskMemoryUpsert) SetReusedCount(v int) *TaskMemoryUpsert {
	u.Set(taskmemory.FieldReusedCount, v)
	return u
}

// UpdateReusedCount sets the "reused_count" field to the value that was provided on create.
func (u *TaskMemoryUpsert) UpdateReusedCount() *TaskMemoryUpsert {
	u.SetExcluded(taskmemory.FieldReusedCount)
	return u
}

// AddReusedCount adds v to the "reused_count" field.
func (u *TaskMemoryUpsert) AddReusedCount(v int) *TaskMemoryUpsert {
	u.Add(taskmemory.FieldReusedCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskMemoryUpsertOne) UpdateNewValues() *TaskMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskmemory.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(taskmemory.FieldTaskID)
		}
		if _, exists := u.create.mutation.LearnedAt(); exists {
			s.SetIgnore(taskmemory.FieldLearnedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskMemory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskMemoryUpsertOne) Ignore() *TaskMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskMemoryUpsertOne) DoNothing() *TaskMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskMemoryCreate.OnConflict
// documentation for more info.
func (u *TaskMemoryUpsertOne) Update(set func(*TaskMemoryUpsert)) *TaskMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionSummary sets the "execution_summary" field.
func (u *TaskMemoryUpsertOne) SetExecutionSummary(v string) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetExecutionSummary(v)
	})
}

// UpdateExecutionSummary sets the "execution_summary" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateExecutionSummary() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateExecutionSummary()
	})
}

// SetMemoryType sets the "memory_type" field.
func (u *TaskMemoryUpsertOne) SetMemoryType(v taskmemory.MemoryType) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetMemoryType(v)
	})
}

// UpdateMemoryType sets the "memory_type" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateMemoryType() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateMemoryType()
	})
}

// SetContextEmbedding sets the "context_embedding" field.
func (u *TaskMemoryUpsertOne) SetContextEmbedding(v pgvector.Vector) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetContextEmbedding(v)
	})
}

// UpdateContextEmbedding sets the "context_embedding" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateContextEmbedding() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateContextEmbedding()
	})
}

// SetSuccess sets the "success" field.
func (u *TaskMemoryUpsertOne) SetSuccess(v bool) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateSuccess() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorPatterns sets the "error_patterns" field.
func (u *TaskMemoryUpsertOne) SetErrorPatterns(v []string) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetErrorPatterns(v)
	})
}

// UpdateErrorPatterns sets the "error_patterns" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateErrorPatterns() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateErrorPatterns()
	})
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (u *TaskMemoryUpsertOne) ClearErrorPatterns() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearErrorPatterns()
	})
}

// SetGoal sets the "goal" field.
func (u *TaskMemoryUpsertOne) SetGoal(v string) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetGoal(v)
	})
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateGoal() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateGoal()
	})
}

// ClearGoal clears the value of the "goal" field.
func (u *TaskMemoryUpsertOne) ClearGoal() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearGoal()
	})
}

// SetResult sets the "result" field.
func (u *TaskMemoryUpsertOne) SetResult(v string) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateResult() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskMemoryUpsertOne) ClearResult() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearResult()
	})
}

// SetFeedback sets the "feedback" field.
func (u *TaskMemoryUpsertOne) SetFeedback(v string) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateFeedback() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateFeedback()
	})
}

// ClearFeedback clears the value of the "feedback" field.
func (u *TaskMemoryUpsertOne) ClearFeedback() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearFeedback()
	})
}

// SetToolUsage sets the "tool_usage" field.
func (u *TaskMemoryUpsertOne) SetToolUsage(v []map[string]interface{}) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetToolUsage(v)
	})
}

// UpdateToolUsage sets the "tool_usage" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateToolUsage() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateToolUsage()
	})
}

// ClearToolUsage clears the value of the "tool_usage" field.
func (u *TaskMemoryUpsertOne) ClearToolUsage() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearToolUsage()
	})
}

// SetReusedCount sets the "reused_count" field.
func (u *TaskMemoryUpsertOne) SetReusedCount(v int) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetReusedCount(v)
	})
}

// AddReusedCount adds v to the "reused_count" field.
func (u *TaskMemoryUpsertOne) AddReusedCount(v int) *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.AddReusedCount(v)
	})
}

// UpdateReusedCount sets the "reused_count" field to the value that was provided on create.
func (u *TaskMemoryUpsertOne) UpdateReusedCount() *TaskMemoryUpsertOne {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateReusedCount()
	})
}

// Exec executes the query.
func (u *TaskMemoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskMemoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskMemoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskMemoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskMemoryUpsertOne.ID is not supported by MySQL driver. Use TaskMemoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskMemoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskMemoryCreateBulk is the builder for creating many TaskMemory entities in bulk.
type TaskMemoryCreateBulk struct {
	config
	err      error
	builders []*TaskMemoryCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskMemory entities in the database.
func (_c *TaskMemoryCreateBulk) Save(ctx context.Context) ([]*TaskMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMemoryMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *TaskMemoryCreateBulk) SaveX(ctx context.Context) []*TaskMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskMemory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskMemoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskMemoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskMemoryUpsertBulk {
	_c.conflict = opts
	return &TaskMemoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskMemoryCreateBulk) OnConflictColumns(columns ...string) *TaskMemoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskMemoryUpsertBulk{
		create: _c,
	}
}

// TaskMemoryUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskMemory nodes.
type TaskMemoryUpsertBulk struct {
	create *TaskMemoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskMemoryUpsertBulk) UpdateNewValues() *TaskMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskmemory.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(taskmemory.FieldTaskID)
			}
			if _, exists := b.mutation.LearnedAt(); exists {
				s.SetIgnore(taskmemory.FieldLearnedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskMemory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskMemoryUpsertBulk) Ignore() *TaskMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskMemoryUpsertBulk) DoNothing() *TaskMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskMemoryCreateBulk.OnConflict
// documentation for more info.
func (u *TaskMemoryUpsertBulk) Update(set func(*TaskMemoryUpsert)) *TaskMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionSummary sets the "execution_summary" field.
func (u *TaskMemoryUpsertBulk) SetExecutionSummary(v string) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetExecutionSummary(v)
	})
}

// UpdateExecutionSummary sets the "execution_summary" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateExecutionSummary() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateExecutionSummary()
	})
}

// SetMemoryType sets the "memory_type" field.
func (u *TaskMemoryUpsertBulk) SetMemoryType(v taskmemory.MemoryType) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetMemoryType(v)
	})
}

// UpdateMemoryType sets the "memory_type" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateMemoryType() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateMemoryType()
	})
}

// SetContextEmbedding sets the "context_embedding" field.
func (u *TaskMemoryUpsertBulk) SetContextEmbedding(v pgvector.Vector) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetContextEmbedding(v)
	})
}

// UpdateContextEmbedding sets the "context_embedding" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateContextEmbedding() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateContextEmbedding()
	})
}

// SetSuccess sets the "success" field.
func (u *TaskMemoryUpsertBulk) SetSuccess(v bool) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateSuccess() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorPatterns sets the "error_patterns" field.
func (u *TaskMemoryUpsertBulk) SetErrorPatterns(v []string) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetErrorPatterns(v)
	})
}

// UpdateErrorPatterns sets the "error_patterns" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateErrorPatterns() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateErrorPatterns()
	})
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (u *TaskMemoryUpsertBulk) ClearErrorPatterns() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearErrorPatterns()
	})
}

// SetGoal sets the "goal" field.
func (u *TaskMemoryUpsertBulk) SetGoal(v string) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetGoal(v)
	})
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateGoal() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateGoal()
	})
}

// ClearGoal clears the value of the "goal" field.
func (u *TaskMemoryUpsertBulk) ClearGoal() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearGoal()
	})
}

// SetResult sets the "result" field.
func (u *TaskMemoryUpsertBulk) SetResult(v string) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateResult() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskMemoryUpsertBulk) ClearResult() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearResult()
	})
}

// SetFeedback sets the "feedback" field.
func (u *TaskMemoryUpsertBulk) SetFeedback(v string) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateFeedback() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateFeedback()
	})
}

// ClearFeedback clears the value of the "feedback" field.
func (u *TaskMemoryUpsertBulk) ClearFeedback() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearFeedback()
	})
}

// SetToolUsage sets the "tool_usage" field.
func (u *TaskMemoryUpsertBulk) SetToolUsage(v []map[string]interface{}) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetToolUsage(v)
	})
}

// UpdateToolUsage sets the "tool_usage" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateToolUsage() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateToolUsage()
	})
}

// ClearToolUsage clears the value of the "tool_usage" field.
func (u *TaskMemoryUpsertBulk) ClearToolUsage() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.ClearToolUsage()
	})
}

// SetReusedCount sets the "reused_count" field.
func (u *TaskMemoryUpsertBulk) SetReusedCount(v int) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.SetReusedCount(v)
	})
}

// AddReusedCount adds v to the "reused_count" field.
func (u *TaskMemoryUpsertBulk) AddReusedCount(v int) *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.AddReusedCount(v)
	})
}

// UpdateReusedCount sets the "reused_count" field to the value that was provided on create.
func (u *TaskMemoryUpsertBulk) UpdateReusedCount() *TaskMemoryUpsertBulk {
	return u.Update(func(s *TaskMemoryUpsert) {
		s.UpdateReusedCount()
	})
}

// Exec executes the query.
func (u *TaskMemoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskMemoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskMemoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskMemoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
