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
	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdate) SetAgentType(v agent.AgentType) *AgentUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentType(v *agent.AgentType) *AgentUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *AgentUpdate) SetPhaseID(v string) *AgentUpdate {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePhaseID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// ClearPhaseID clears the value of the "phase_id" field.
func (_u *AgentUpdate) ClearPhaseID() *AgentUpdate {
	_u.mutation.ClearPhaseID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdate) SetCapabilities(v []string) *AgentUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdate) AppendCapabilities(v []string) *AgentUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdate) ClearCapabilities() *AgentUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetTags sets the "tags" field.
func (_u *AgentUpdate) SetTags(v []string) *AgentUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AgentUpdate) AppendTags(v []string) *AgentUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AgentUpdate) ClearTags() *AgentUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *AgentUpdate) SetSandboxID(v string) *AgentUpdate {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSandboxID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *AgentUpdate) ClearSandboxID() *AgentUpdate {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdate) SetLastHeartbeat(v time.Time) *AgentUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastHeartbeat(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := agent.AgentTypeFieldValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(agent.FieldPhaseID, field.TypeString, value)
	}
	if _u.mutation.PhaseIDCleared() {
		_spec.ClearField(agent.FieldPhaseID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(agent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(agent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(agent.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(agent.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdateOne) SetAgentType(v agent.AgentType) *AgentUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentType(v *agent.AgentType) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *AgentUpdateOne) SetPhaseID(v string) *AgentUpdateOne {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePhaseID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// ClearPhaseID clears the value of the "phase_id" field.
func (_u *AgentUpdateOne) ClearPhaseID() *AgentUpdateOne {
	_u.mutation.ClearPhaseID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdateOne) SetCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdateOne) AppendCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdateOne) ClearCapabilities() *AgentUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetTags sets the "tags" field.
func (_u *AgentUpdateOne) SetTags(v []string) *AgentUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AgentUpdateOne) AppendTags(v []string) *AgentUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AgentUpdateOne) ClearTags() *AgentUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *AgentUpdateOne) SetSandboxID(v string) *AgentUpdateOne {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSandboxID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *AgentUpdateOne) ClearSandboxID() *AgentUpdateOne {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdateOne) SetLastHeartbeat(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastHeartbeat(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := agent.AgentTypeFieldValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(agent.FieldPhaseID, field.TypeString, value)
	}
	if _u.mutation.PhaseIDCleared() {
		_spec.ClearField(agent.FieldPhaseID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(agent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(agent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(agent.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(agent.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
