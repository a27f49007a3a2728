// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/taskmemory"
	pgvector "github.com/pgvector/pgvector-go"
)

// TaskMemoryUpdate is the builder for updating TaskMemory entities.
type TaskMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMemoryMutation
}

// Where appends a list predicates to the TaskMemoryUpdate builder.
func (_u *TaskMemoryUpdate) Where(ps ...predicate.TaskMemory) *TaskMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionSummary sets the "execution_summary" field.
func (_u *TaskMemoryUpdate) SetExecutionSummary(v string) *TaskMemoryUpdate {
	_u.mutation.SetExecutionSummary(v)
	return _u
}

// SetNillableExecutionSummary sets the "execution_summary" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableExecutionSummary(v *string) *TaskMemoryUpdate {
	if v != nil {
		_u.SetExecutionSummary(*v)
	}
	return _u
}

// SetMemoryType sets the "memory_type" field.
func (_u *TaskMemoryUpdate) SetMemoryType(v taskmemory.MemoryType) *TaskMemoryUpdate {
	_u.mutation.SetMemoryType(v)
	return _u
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableMemoryType(v *taskmemory.MemoryType) *TaskMemoryUpdate {
	if v != nil {
		_u.SetMemoryType(*v)
	}
	return _u
}

// SetContextEmbedding sets the "context_embedding" field.
func (_u *TaskMemoryUpdate) SetContextEmbedding(v pgvector.Vector) *TaskMemoryUpdate {
	_u.mutation.SetContextEmbedding(v)
	return _u
}

// SetNillableContextEmbedding sets the "context_embedding" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableContextEmbedding(v *pgvector.Vector) *TaskMemoryUpdate {
	if v != nil {
		_u.SetContextEmbedding(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TaskMemoryUpdate) SetSuccess(v bool) *TaskMemoryUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableSuccess(v *bool) *TaskMemoryUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorPatterns sets the "error_patterns" field.
func (_u *TaskMemoryUpdate) SetErrorPatterns(v []string) *TaskMemoryUpdate {
	_u.mutation.SetErrorPatterns(v)
	return _u
}

// AppendErrorPatterns appends value to the "error_patterns" field.
func (_u *TaskMemoryUpdate) AppendErrorPatterns(v []string) *TaskMemoryUpdate {
	_u.mutation.AppendErrorPatterns(v)
	return _u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (_u *TaskMemoryUpdate) ClearErrorPatterns() *TaskMemoryUpdate {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *TaskMemoryUpdate) SetGoal(v string) *TaskMemoryUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableGoal(v *string) *TaskMemoryUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *TaskMemoryUpdate) ClearGoal() *TaskMemoryUpdate {
	_u.mutation.ClearGoal()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskMemoryUpdate) SetResult(v string) *TaskMemoryUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableResult(v *string) *TaskMemoryUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskMemoryUpdate) ClearResult() *TaskMemoryUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TaskMemoryUpdate) SetFeedback(v string) *TaskMemoryUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableFeedback(v *string) *TaskMemoryUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *TaskMemoryUpdate) ClearFeedback() *TaskMemoryUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetToolUsage sets the "tool_usage" field.
func (_u *TaskMemoryUpdate) SetToolUsage(v []map[string]interface{}) *TaskMemoryUpdate {
	_u.mutation.SetToolUsage(v)
	return _u
}

// AppendToolUsage appends value to the "tool_usage" field.
func (_u *TaskMemoryUpdate) AppendToolUsage(v []map[string]interface{}) *TaskMemoryUpdate {
	_u.mutation.AppendToolUsage(v)
	return _u
}

// ClearToolUsage clears the value of the "tool_usage" field.
func (_u *TaskMemoryUpdate) ClearToolUsage() *TaskMemoryUpdate {
	_u.mutation.ClearToolUsage()
	return _u
}

// SetReusedCount sets the "reused_count" field.
func (_u *TaskMemoryUpdate) SetReusedCount(v int) *TaskMemoryUpdate {
	_u.mutation.ResetReusedCount()
	_u.mutation.SetReusedCount(v)
	return _u
}

// SetNillableReusedCount sets the "reused_count" field if the given value is not nil.
func (_u *TaskMemoryUpdate) SetNillableReusedCount(v *int) *TaskMemoryUpdate {
	if v != nil {
		_u.SetReusedCount(*v)
	}
	return _u
}

// AddReusedCount adds value to the "reused_count" field.
func (_u *TaskMemoryUpdate) AddReusedCount(v int) *TaskMemoryUpdate {
	_u.mutation.AddReusedCount(v)
	return _u
}

// Mutation returns the TaskMemoryMutation object of the builder.
func (_u *TaskMemoryUpdate) Mutation() *TaskMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskMemoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskMemoryUpdate) check() error {
	if v, ok := _u.mutation.MemoryType(); ok {
		if err := taskmemory.MemoryTypeValidator(v); err != nil {
			return &ValidationError{Name: "memory_type", err: fmt.Errorf(`ent: validator failed for field "TaskMemory.memory_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskMemory.task"`)
	}
	return nil
}

func (_u *TaskMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskmemory.Table, taskmemory.Columns, sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionSummary(); ok {
		_spec.SetField(taskmemory.FieldExecutionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemoryType(); ok {
		_spec.SetField(taskmemory.FieldMemoryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextEmbedding(); ok {
		_spec.SetField(taskmemory.FieldContextEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(taskmemory.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorPatterns(); ok {
		_spec.SetField(taskmemory.FieldErrorPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskmemory.FieldErrorPatterns, value)
		})
	}
	if _u.mutation.ErrorPatternsCleared() {
		_spec.ClearField(taskmemory.FieldErrorPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(taskmemory.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(taskmemory.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(taskmemory.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(taskmemory.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(taskmemory.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(taskmemory.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ToolUsage(); ok {
		_spec.SetField(taskmemory.FieldToolUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolUsage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskmemory.FieldToolUsage, value)
		})
	}
	if _u.mutation.ToolUsageCleared() {
		_spec.ClearField(taskmemory.FieldToolUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReusedCount(); ok {
		_spec.SetField(taskmemory.FieldReusedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReusedCount(); ok {
		_spec.AddField(taskmemory.FieldReusedCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskMemoryUpdateOne is the builder for updating a single TaskMemory entity.
type TaskMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMemoryMutation
}

// SetExecutionSummary sets the "execution_summary" field.
func (_u *TaskMemoryUpdateOne) SetExecutionSummary(v string) *TaskMemoryUpdateOne {
	_u.mutation.SetExecutionSummary(v)
	return _u
}

// SetNillableExecutionSummary sets the "execution_summary" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableExecutionSummary(v *string) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetExecutionSummary(*v)
	}
	return _u
}

// SetMemoryType sets the "memory_type" field.
func (_u *TaskMemoryUpdateOne) SetMemoryType(v taskmemory.MemoryType) *TaskMemoryUpdateOne {
	_u.mutation.SetMemoryType(v)
	return _u
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableMemoryType(v *taskmemory.MemoryType) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetMemoryType(*v)
	}
	return _u
}

// SetContextEmbedding sets the "context_embedding" field.
func (_u *TaskMemoryUpdateOne) SetContextEmbedding(v pgvector.Vector) *TaskMemoryUpdateOne {
	_u.mutation.SetContextEmbedding(v)
	return _u
}

// SetNillableContextEmbedding sets the "context_embedding" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableContextEmbedding(v *pgvector.Vector) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetContextEmbedding(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TaskMemoryUpdateOne) SetSuccess(v bool) *TaskMemoryUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableSuccess(v *bool) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorPatterns sets the "error_patterns" field.
func (_u *TaskMemoryUpdateOne) SetErrorPatterns(v []string) *TaskMemoryUpdateOne {
	_u.mutation.SetErrorPatterns(v)
	return _u
}

// AppendErrorPatterns appends value to the "error_patterns" field.
func (_u *TaskMemoryUpdateOne) AppendErrorPatterns(v []string) *TaskMemoryUpdateOne {
	_u.mutation.AppendErrorPatterns(v)
	return _u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (_u *TaskMemoryUpdateOne) ClearErrorPatterns() *TaskMemoryUpdateOne {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *TaskMemoryUpdateOne) SetGoal(v string) *TaskMemoryUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableGoal(v *string) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *TaskMemoryUpdateOne) ClearGoal() *TaskMemoryUpdateOne {
	_u.mutation.ClearGoal()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskMemoryUpdateOne) SetResult(v string) *TaskMemoryUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableResult(v *string) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskMemoryUpdateOne) ClearResult() *TaskMemoryUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TaskMemoryUpdateOne) SetFeedback(v string) *TaskMemoryUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableFeedback(v *string) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *TaskMemoryUpdateOne) ClearFeedback() *TaskMemoryUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetToolUsage sets the "tool_usage" field.
func (_u *TaskMemoryUpdateOne) SetToolUsage(v []map[string]interface{}) *TaskMemoryUpdateOne {
	_u.mutation.SetToolUsage(v)
	return _u
}

// AppendToolUsage appends value to the "tool_usage" field.
func (_u *TaskMemoryUpdateOne) AppendToolUsage(v []map[string]interface{}) *TaskMemoryUpdateOne {
	_u.mutation.AppendToolUsage(v)
	return _u
}

// ClearToolUsage clears the value of the "tool_usage" field.
func (_u *TaskMemoryUpdateOne) ClearToolUsage() *TaskMemoryUpdateOne {
	_u.mutation.ClearToolUsage()
	return _u
}

// SetReusedCount sets the "reused_count" field.
func (_u *TaskMemoryUpdateOne) SetReusedCount(v int) *TaskMemoryUpdateOne {
	_u.mutation.ResetReusedCount()
	_u.mutation.SetReusedCount(v)
	return _u
}

// SetNillableReusedCount sets the "reused_count" field if the given value is not nil.
func (_u *TaskMemoryUpdateOne) SetNillableReusedCount(v *int) *TaskMemoryUpdateOne {
	if v != nil {
		_u.SetReusedCount(*v)
	}
	return _u
}

// AddReusedCount adds value to the "reused_count" field.
func (_u *TaskMemoryUpdateOne) AddReusedCount(v int) *TaskMemoryUpdateOne {
	_u.mutation.AddReusedCount(v)
	return _u
}

// Mutation returns the TaskMemoryMutation object of the builder.
func (_u *TaskMemoryUpdateOne) Mutation() *TaskMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskMemoryUpdate builder.
func (_u *TaskMemoryUpdateOne) Where(ps ...predicate.TaskMemory) *TaskMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskMemoryUpdateOne) Select(field string, fields ...string) *TaskMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskMemory entity.
func (_u *TaskMemoryUpdateOne) Save(ctx context.Context) (*TaskMemory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskMemoryUpdateOne) SaveX(ctx context.Context) *TaskMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskMemoryUpdateOne) check() error {
	if v, ok := _u.mutation.MemoryType(); ok {
		if err := taskmemory.MemoryTypeValidator(v); err != nil {
			return &ValidationError{Name: "memory_type", err: fmt.Errorf(`ent: validator failed for field "TaskMemory.memory_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskMemory.task"`)
	}
	return nil
}

func (_u *TaskMemoryUpdateOne) sqlSave(ctx context.Context) (_node *TaskMemory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskmemory.Table, taskmemory.Columns, sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskmemory.FieldID)
		for _, f := range fields {
			if !taskmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskmemory.FieldID {
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
	if value, ok := _u.mutation.ExecutionSummary(); ok {
		_spec.SetField(taskmemory.FieldExecutionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemoryType(); ok {
		_spec.SetField(taskmemory.FieldMemoryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextEmbedding(); ok {
		_spec.SetField(taskmemory.FieldContextEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(taskmemory.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorPatterns(); ok {
		_spec.SetField(taskmemory.FieldErrorPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskmemory.FieldErrorPatterns, value)
		})
	}
	if _u.mutation.ErrorPatternsCleared() {
		_spec.ClearField(taskmemory.FieldErrorPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(taskmemory.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(taskmemory.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(taskmemory.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(taskmemory.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(taskmemory.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(taskmemory.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ToolUsage(); ok {
		_spec.SetField(taskmemory.FieldToolUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolUsage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskmemory.FieldToolUsage, value)
		})
	}
	if _u.mutation.ToolUsageCleared() {
		_spec.ClearField(taskmemory.FieldToolUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReusedCount(); ok {
		_spec.SetField(taskmemory.FieldReusedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReusedCount(); ok {
		_spec.AddField(taskmemory.FieldReusedCount, field.TypeInt, value)
	}
	_node = &TaskMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
