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
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/project"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/workflowresult"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *TicketCreate) SetTitle(v string) *TicketCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TicketCreate) SetDescription(v string) *TicketCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDescription(v *string) *TicketCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *TicketCreate) SetPhaseID(v string) *TicketCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TicketCreate) SetStatus(v ticket.Status) *TicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStatus(v *ticket.Status) *TicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TicketCreate) SetPriority(v ticket.Priority) *TicketCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TicketCreate) SetNillablePriority(v *ticket.Priority) *TicketCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TicketCreate) SetProjectID(v string) *TicketCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableProjectID(v *string) *TicketCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCreate) SetID(v string) *TicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *TicketCreate) AddTaskIDs(ids ...string) *TicketCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *TicketCreate) AddTasks(v ...*Task) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddPlaybookEntryIDs adds the "playbook_entries" edge to the PlaybookEntry entity by IDs.
func (_c *TicketCreate) AddPlaybookEntryIDs(ids ...string) *TicketCreate {
	_c.mutation.AddPlaybookEntryIDs(ids...)
	return _c
}

// AddPlaybookEntries adds the "playbook_entries" edges to the PlaybookEntry entity.
func (_c *TicketCreate) AddPlaybookEntries(v ...*PlaybookEntry) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlaybookEntryIDs(ids...)
}

// AddPlaybookChangeIDs adds the "playbook_changes" edge to the PlaybookChange entity by IDs.
func (_c *TicketCreate) AddPlaybookChangeIDs(ids ...string) *TicketCreate {
	_c.mutation.AddPlaybookChangeIDs(ids...)
	return _c
}

// AddPlaybookChanges adds the "playbook_changes" edges to the PlaybookChange entity.
func (_c *TicketCreate) AddPlaybookChanges(v ...*PlaybookChange) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlaybookChangeIDs(ids...)
}

// AddDiagnosticRunIDs adds the "diagnostic_runs" edge to the DiagnosticRun entity by IDs.
func (_c *TicketCreate) AddDiagnosticRunIDs(ids ...string) *TicketCreate {
	_c.mutation.AddDiagnosticRunIDs(ids...)
	return _c
}

// AddDiagnosticRuns adds the "diagnostic_runs" edges to the DiagnosticRun entity.
func (_c *TicketCreate) AddDiagnosticRuns(v ...*DiagnosticRun) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDiagnosticRunIDs(ids...)
}

// AddWorkflowResultIDs adds the "workflow_results" edge to the WorkflowResult entity by IDs.
func (_c *TicketCreate) AddWorkflowResultIDs(ids ...string) *TicketCreate {
	_c.mutation.AddWorkflowResultIDs(ids...)
	return _c
}

// AddWorkflowResults adds the "workflow_results" edges to the WorkflowResult entity.
func (_c *TicketCreate) AddWorkflowResults(v ...*WorkflowResult) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkflowResultIDs(ids...)
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TicketCreate) SetProject(v *Project) *TicketCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := ticket.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Ticket.title"`)}
	}
	if _, ok := _c.mutation.PhaseID(); !ok {
		return &ValidationError{Name: "phase_id", err: errors.New(`ent: missing required field "Ticket.phase_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Ticket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Ticket.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ticket.updated_at"`)}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
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
			return nil, fmt.Errorf("unexpected Ticket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(ticket.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.TasksTable,
			Columns: []string{ticket.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PlaybookEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.PlaybookEntriesTable,
			Columns: []string{ticket.PlaybookEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(playbookentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PlaybookChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.PlaybookChangesTable,
			Columns: []string{ticket.PlaybookChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(playbookchange.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DiagnosticRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.DiagnosticRunsTable,
			Columns: []string{ticket.DiagnosticRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkflowResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.WorkflowResultsTable,
			Columns: []string{ticket.WorkflowResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticket.ProjectTable,
			Columns: []string{ticket.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreate) OnConflict(opts ...sql.ConflictOption) *TicketUpsertOne {
	_c.conflict = opts
	return &TicketUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreate) OnConflictColumns(columns ...string) *TicketUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertOne{
		create: _c,
	}
}

type (
	// TicketUpsertOne is the builder for "upsert"-ing
	//  one Ticket node.
	TicketUpsertOne struct {
		create *TicketCreate
	}

	// TicketUpsert is the "OnConflict" setter.
	TicketUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *TicketUpsert) SetTitle(v string) *TicketUpsert {
	u.Set(ticket.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TicketUpsert) UpdateTitle() *TicketUpsert {
	u.SetExcluded(ticket.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TicketUpsert) SetDescription(v string) *TicketUpsert {
	u.Set(ticket.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TicketUpsert) UpdateDescription() *TicketUpsert {
	u.SetExcluded(ticket.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TicketUpsert) ClearDescription() *TicketUpsert {
	u.SetNull(ticket.FieldDescription)
	return u
}

// SetPhaseID sets the "phase_id" field.
func (u *TicketUpsert) SetPhaseID(v string) *TicketUpsert {
	u.Set(ticket.FieldPhaseID, v)
	return u
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *TicketUpsert) UpdatePhaseID() *TicketUpsert {
	u.SetExcluded(ticket.FieldPhaseID)
	return u
}

// SetStatus sets the "status" field.
func (u *TicketUpsert) SetStatus(v ticket.Status) *TicketUpsert {
	u.Set(ticket.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsert) UpdateStatus() *TicketUpsert {
	u.SetExcluded(ticket.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *TicketUpsert) SetPriority(v ticket.Priority) *TicketUpsert {
	u.Set(ticket.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TicketUpsert) UpdatePriority() *TicketUpsert {
	u.SetExcluded(ticket.FieldPriority)
	return u
}

// SetProjectID sets the "project_id" field.
func (u *TicketUpsert) SetProjectID(v string) *TicketUpsert {
	u.Set(ticket.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TicketUpsert) UpdateProjectID() *TicketUpsert {
	u.SetExcluded(ticket.FieldProjectID)
	return u
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TicketUpsert) ClearProjectID() *TicketUpsert {
	u.SetNull(ticket.FieldProjectID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsert) SetUpdatedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateUpdatedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TicketUpsertOne) UpdateNewValues() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ticket.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ticket.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TicketUpsertOne) Ignore() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertOne) DoNothing() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreate.OnConflict
// documentation for more info.
func (u *TicketUpsertOne) Update(set func(*TicketUpsert)) *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TicketUpsertOne) SetTitle(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateTitle() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TicketUpsertOne) SetDescription(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateDescription() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TicketUpsertOne) ClearDescription() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDescription()
	})
}

// SetPhaseID sets the "phase_id" field.
func (u *TicketUpsertOne) SetPhaseID(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdatePhaseID() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdatePhaseID()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertOne) SetStatus(v ticket.Status) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateStatus() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TicketUpsertOne) SetPriority(v ticket.Priority) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdatePriority() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdatePriority()
	})
}

// SetProjectID sets the "project_id" field.
func (u *TicketUpsertOne) SetProjectID(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateProjectID() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TicketUpsertOne) ClearProjectID() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearProjectID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertOne) SetUpdatedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateUpdatedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TicketUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TicketUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TicketUpsertOne.ID is not supported by MySQL driver. Use TicketUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TicketUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
	conflict []sql.ConflictOption
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
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
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflict(opts ...sql.ConflictOption) *TicketUpsertBulk {
	_c.conflict = opts
	return &TicketUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflictColumns(columns ...string) *TicketUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertBulk{
		create: _c,
	}
}

// TicketUpsertBulk is the builder for "upsert"-ing
// a bulk of Ticket nodes.
type TicketUpsertBulk struct {
	create *TicketCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TicketUpsertBulk) UpdateNewValues() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ticket.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ticket.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TicketUpsertBulk) Ignore() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertBulk) DoNothing() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreateBulk.OnConflict
// documentation for more info.
func (u *TicketUpsertBulk) Update(set func(*TicketUpsert)) *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TicketUpsertBulk) SetTitle(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateTitle() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TicketUpsertBulk) SetDescription(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateDescription() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TicketUpsertBulk) ClearDescription() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDescription()
	})
}

// SetPhaseID sets the "phase_id" field.
func (u *TicketUpsertBulk) SetPhaseID(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdatePhaseID() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdatePhaseID()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertBulk) SetStatus(v ticket.Status) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateStatus() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TicketUpsertBulk) SetPriority(v ticket.Priority) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdatePriority() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdatePriority()
	})
}

// SetProjectID sets the "project_id" field.
func (u *TicketUpsertBulk) SetProjectID(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateProjectID() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TicketUpsertBulk) ClearProjectID() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearProjectID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertBulk) SetUpdatedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateUpdatedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TicketUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TicketCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
