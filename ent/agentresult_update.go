// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/agentresult"
	"github.com/droverhq/drover/ent/predicate"
)

// AgentResultUpdate is the builder for updating AgentResult entities.
type AgentResultUpdate struct {
	config
	hooks    []Hook
	mutation *AgentResultMutation
}

// Where appends a list predicates to the AgentResultUpdate builder.
func (_u *AgentResultUpdate) Where(ps ...predicate.AgentResult) *AgentResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentResultUpdate) SetAgentID(v string) *AgentResultUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentResultUpdate) SetNillableAgentID(v *string) *AgentResultUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetMarkdownContent sets the "markdown_content" field.
func (_u *AgentResultUpdate) SetMarkdownContent(v string) *AgentResultUpdate {
	_u.mutation.SetMarkdownContent(v)
	return _u
}

// SetNillableMarkdownContent sets the "markdown_content" field if the given value is not nil.
func (_u *AgentResultUpdate) SetNillableMarkdownContent(v *string) *AgentResultUpdate {
	if v != nil {
		_u.SetMarkdownContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AgentResultUpdate) SetSummary(v string) *AgentResultUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AgentResultUpdate) SetNillableSummary(v *string) *AgentResultUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AgentResultUpdate) ClearSummary() *AgentResultUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *AgentResultUpdate) SetCommitSha(v string) *AgentResultUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *AgentResultUpdate) SetNillableCommitSha(v *string) *AgentResultUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *AgentResultUpdate) ClearCommitSha() *AgentResultUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// Mutation returns the AgentResultMutation object of the builder.
func (_u *AgentResultUpdate) Mutation() *AgentResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentResultUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentResult.task"`)
	}
	return nil
}

func (_u *AgentResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentresult.Table, agentresult.Columns, sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentresult.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarkdownContent(); ok {
		_spec.SetField(agentresult.FieldMarkdownContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(agentresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(agentresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(agentresult.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(agentresult.FieldCommitSha, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentResultUpdateOne is the builder for updating a single AgentResult entity.
type AgentResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentResultMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentResultUpdateOne) SetAgentID(v string) *AgentResultUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentResultUpdateOne) SetNillableAgentID(v *string) *AgentResultUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetMarkdownContent sets the "markdown_content" field.
func (_u *AgentResultUpdateOne) SetMarkdownContent(v string) *AgentResultUpdateOne {
	_u.mutation.SetMarkdownContent(v)
	return _u
}

// SetNillableMarkdownContent sets the "markdown_content" field if the given value is not nil.
func (_u *AgentResultUpdateOne) SetNillableMarkdownContent(v *string) *AgentResultUpdateOne {
	if v != nil {
		_u.SetMarkdownContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AgentResultUpdateOne) SetSummary(v string) *AgentResultUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AgentResultUpdateOne) SetNillableSummary(v *string) *AgentResultUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AgentResultUpdateOne) ClearSummary() *AgentResultUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *AgentResultUpdateOne) SetCommitSha(v string) *AgentResultUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *AgentResultUpdateOne) SetNillableCommitSha(v *string) *AgentResultUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *AgentResultUpdateOne) ClearCommitSha() *AgentResultUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// Mutation returns the AgentResultMutation object of the builder.
func (_u *AgentResultUpdateOne) Mutation() *AgentResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentResultUpdate builder.
func (_u *AgentResultUpdateOne) Where(ps ...predicate.AgentResult) *AgentResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentResultUpdateOne) Select(field string, fields ...string) *AgentResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentResult entity.
func (_u *AgentResultUpdateOne) Save(ctx context.Context) (*AgentResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentResultUpdateOne) SaveX(ctx context.Context) *AgentResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentResultUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentResult.task"`)
	}
	return nil
}

func (_u *AgentResultUpdateOne) sqlSave(ctx context.Context) (_node *AgentResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentresult.Table, agentresult.Columns, sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentresult.FieldID)
		for _, f := range fields {
			if !agentresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentresult.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentresult.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarkdownContent(); ok {
		_spec.SetField(agentresult.FieldMarkdownContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(agentresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(agentresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(agentresult.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(agentresult.FieldCommitSha, field.TypeString)
	}
	_node = &AgentResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
