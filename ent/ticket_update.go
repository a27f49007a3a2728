// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/project"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/workflowresult"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdate) SetTitle(v string) *TicketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTitle(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdate) ClearDescription() *TicketUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *TicketUpdate) SetPhaseID(v string) *TicketUpdate {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePhaseID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdate) SetStatus(v ticket.Status) *TicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatus(v *ticket.Status) *TicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdate) SetPriority(v ticket.Priority) *TicketUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePriority(v *ticket.Priority) *TicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TicketUpdate) SetProjectID(v string) *TicketUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableProjectID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TicketUpdate) ClearProjectID() *TicketUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TicketUpdate) AddTaskIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TicketUpdate) AddTasks(v ...*Task) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddPlaybookEntryIDs adds the "playbook_entries" edge to the PlaybookEntry entity by IDs.
func (_u *TicketUpdate) AddPlaybookEntryIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddPlaybookEntryIDs(ids...)
	return _u
}

// AddPlaybookEntries adds the "playbook_entries" edges to the PlaybookEntry entity.
func (_u *TicketUpdate) AddPlaybookEntries(v ...*PlaybookEntry) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlaybookEntryIDs(ids...)
}

// AddPlaybookChangeIDs adds the "playbook_changes" edge to the PlaybookChange entity by IDs.
func (_u *TicketUpdate) AddPlaybookChangeIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddPlaybookChangeIDs(ids...)
	return _u
}

// AddPlaybookChanges adds the "playbook_changes" edges to the PlaybookChange entity.
func (_u *TicketUpdate) AddPlaybookChanges(v ...*PlaybookChange) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlaybookChangeIDs(ids...)
}

// AddDiagnosticRunIDs adds the "diagnostic_runs" edge to the DiagnosticRun entity by IDs.
func (_u *TicketUpdate) AddDiagnosticRunIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddDiagnosticRunIDs(ids...)
	return _u
}

// AddDiagnosticRuns adds the "diagnostic_runs" edges to the DiagnosticRun entity.
func (_u *TicketUpdate) AddDiagnosticRuns(v ...*DiagnosticRun) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiagnosticRunIDs(ids...)
}

// AddWorkflowResultIDs adds the "workflow_results" edge to the WorkflowResult entity by IDs.
func (_u *TicketUpdate) AddWorkflowResultIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddWorkflowResultIDs(ids...)
	return _u
}

// AddWorkflowResults adds the "workflow_results" edges to the WorkflowResult entity.
func (_u *TicketUpdate) AddWorkflowResults(v ...*WorkflowResult) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowResultIDs(ids...)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *TicketUpdate) SetProject(v *Project) *TicketUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TicketUpdate) ClearTasks() *TicketUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TicketUpdate) RemoveTaskIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TicketUpdate) RemoveTasks(v ...*Task) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearPlaybookEntries clears all "playbook_entries" edges to the PlaybookEntry entity.
func (_u *TicketUpdate) ClearPlaybookEntries() *TicketUpdate {
	_u.mutation.ClearPlaybookEntries()
	return _u
}

// RemovePlaybookEntryIDs removes the "playbook_entries" edge to PlaybookEntry entities by IDs.
func (_u *TicketUpdate) RemovePlaybookEntryIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemovePlaybookEntryIDs(ids...)
	return _u
}

// RemovePlaybookEntries removes "playbook_entries" edges to PlaybookEntry entities.
func (_u *TicketUpdate) RemovePlaybookEntries(v ...*PlaybookEntry) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlaybookEntryIDs(ids...)
}

// ClearPlaybookChanges clears all "playbook_changes" edges to the PlaybookChange entity.
func (_u *TicketUpdate) ClearPlaybookChanges() *TicketUpdate {
	_u.mutation.ClearPlaybookChanges()
	return _u
}

// RemovePlaybookChangeIDs removes the "playbook_changes" edge to PlaybookChange entities by IDs.
func (_u *TicketUpdate) RemovePlaybookChangeIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemovePlaybookChangeIDs(ids...)
	return _u
}

// RemovePlaybookChanges removes "playbook_changes" edges to PlaybookChange entities.
func (_u *TicketUpdate) RemovePlaybookChanges(v ...*PlaybookChange) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlaybookChangeIDs(ids...)
}

// ClearDiagnosticRuns clears all "diagnostic_runs" edges to the DiagnosticRun entity.
func (_u *TicketUpdate) ClearDiagnosticRuns() *TicketUpdate {
	_u.mutation.ClearDiagnosticRuns()
	return _u
}

// RemoveDiagnosticRunIDs removes the "diagnostic_runs" edge to DiagnosticRun entities by IDs.
func (_u *TicketUpdate) RemoveDiagnosticRunIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveDiagnosticRunIDs(ids...)
	return _u
}

// RemoveDiagnosticRuns removes "diagnostic_runs" edges to DiagnosticRun entities.
func (_u *TicketUpdate) RemoveDiagnosticRuns(v ...*DiagnosticRun) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiagnosticRunIDs(ids...)
}

// ClearWorkflowResults clears all "workflow_results" edges to the WorkflowResult entity.
func (_u *TicketUpdate) ClearWorkflowResults() *TicketUpdate {
	_u.mutation.ClearWorkflowResults()
	return _u
}

// RemoveWorkflowResultIDs removes the "workflow_results" edge to WorkflowResult entities by IDs.
func (_u *TicketUpdate) RemoveWorkflowResultIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveWorkflowResultIDs(ids...)
	return _u
}

// RemoveWorkflowResults removes "workflow_results" edges to WorkflowResult entities.
func (_u *TicketUpdate) RemoveWorkflowResults(v ...*WorkflowResult) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowResultIDs(ids...)
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *TicketUpdate) ClearProject() *TicketUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(ticket.FieldPhaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlaybookEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlaybookEntriesIDs(); len(nodes) > 0 && !_u.mutation.PlaybookEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlaybookEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlaybookChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlaybookChangesIDs(); len(nodes) > 0 && !_u.mutation.PlaybookChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlaybookChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiagnosticRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiagnosticRunsIDs(); len(nodes) > 0 && !_u.mutation.DiagnosticRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagnosticRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowResultsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetTitle sets the "title" field.
func (_u *TicketUpdateOne) SetTitle(v string) *TicketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTitle(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdateOne) ClearDescription() *TicketUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *TicketUpdateOne) SetPhaseID(v string) *TicketUpdateOne {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePhaseID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdateOne) SetStatus(v ticket.Status) *TicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatus(v *ticket.Status) *TicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdateOne) SetPriority(v ticket.Priority) *TicketUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePriority(v *ticket.Priority) *TicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TicketUpdateOne) SetProjectID(v string) *TicketUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableProjectID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TicketUpdateOne) ClearProjectID() *TicketUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TicketUpdateOne) AddTaskIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TicketUpdateOne) AddTasks(v ...*Task) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddPlaybookEntryIDs adds the "playbook_entries" edge to the PlaybookEntry entity by IDs.
func (_u *TicketUpdateOne) AddPlaybookEntryIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddPlaybookEntryIDs(ids...)
	return _u
}

// AddPlaybookEntries adds the "playbook_entries" edges to the PlaybookEntry entity.
func (_u *TicketUpdateOne) AddPlaybookEntries(v ...*PlaybookEntry) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlaybookEntryIDs(ids...)
}

// AddPlaybookChangeIDs adds the "playbook_changes" edge to the PlaybookChange entity by IDs.
func (_u *TicketUpdateOne) AddPlaybookChangeIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddPlaybookChangeIDs(ids...)
	return _u
}

// AddPlaybookChanges adds the "playbook_changes" edges to the PlaybookChange entity.
func (_u *TicketUpdateOne) AddPlaybookChanges(v ...*PlaybookChange) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlaybookChangeIDs(ids...)
}

// AddDiagnosticRunIDs adds the "diagnostic_runs" edge to the DiagnosticRun entity by IDs.
func (_u *TicketUpdateOne) AddDiagnosticRunIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddDiagnosticRunIDs(ids...)
	return _u
}

// AddDiagnosticRuns adds the "diagnostic_runs" edges to the DiagnosticRun entity.
func (_u *TicketUpdateOne) AddDiagnosticRuns(v ...*DiagnosticRun) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiagnosticRunIDs(ids...)
}

// AddWorkflowResultIDs adds the "workflow_results" edge to the WorkflowResult entity by IDs.
func (_u *TicketUpdateOne) AddWorkflowResultIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddWorkflowResultIDs(ids...)
	return _u
}

// AddWorkflowResults adds the "workflow_results" edges to the WorkflowResult entity.
func (_u *TicketUpdateOne) AddWorkflowResults(v ...*WorkflowResult) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowResultIDs(ids...)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *TicketUpdateOne) SetProject(v *Project) *TicketUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TicketUpdateOne) ClearTasks() *TicketUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TicketUpdateOne) RemoveTaskIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TicketUpdateOne) RemoveTasks(v ...*Task) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearPlaybookEntries clears all "playbook_entries" edges to the PlaybookEntry entity.
func (_u *TicketUpdateOne) ClearPlaybookEntries() *TicketUpdateOne {
	_u.mutation.ClearPlaybookEntries()
	return _u
}

// RemovePlaybookEntryIDs removes the "playbook_entries" edge to PlaybookEntry entities by IDs.
func (_u *TicketUpdateOne) RemovePlaybookEntryIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemovePlaybookEntryIDs(ids...)
	return _u
}

// RemovePlaybookEntries removes "playbook_entries" edges to PlaybookEntry entities.
func (_u *TicketUpdateOne) RemovePlaybookEntries(v ...*PlaybookEntry) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlaybookEntryIDs(ids...)
}

// ClearPlaybookChanges clears all "playbook_changes" edges to the PlaybookChange entity.
func (_u *TicketUpdateOne) ClearPlaybookChanges() *TicketUpdateOne {
	_u.mutation.ClearPlaybookChanges()
	return _u
}

// RemovePlaybookChangeIDs removes the "playbook_changes" edge to PlaybookChange entities by IDs.
func (_u *TicketUpdateOne) RemovePlaybookChangeIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemovePlaybookChangeIDs(ids...)
	return _u
}

// RemovePlaybookChanges removes "playbook_changes" edges to PlaybookChange entities.
func (_u *TicketUpdateOne) RemovePlaybookChanges(v ...*PlaybookChange) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlaybookChangeIDs(ids...)
}

// ClearDiagnosticRuns clears all "diagnostic_runs" edges to the DiagnosticRun entity.
func (_u *TicketUpdateOne) ClearDiagnosticRuns() *TicketUpdateOne {
	_u.mutation.ClearDiagnosticRuns()
	return _u
}

// RemoveDiagnosticRunIDs removes the "diagnostic_runs" edge to DiagnosticRun entities by IDs.
func (_u *TicketUpdateOne) RemoveDiagnosticRunIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveDiagnosticRunIDs(ids...)
	return _u
}

// RemoveDiagnosticRuns removes "diagnostic_runs" edges to DiagnosticRun entities.
func (_u *TicketUpdateOne) RemoveDiagnosticRuns(v ...*DiagnosticRun) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiagnosticRunIDs(ids...)
}

// ClearWorkflowResults clears all "workflow_results" edges to the WorkflowResult entity.
func (_u *TicketUpdateOne) ClearWorkflowResults() *TicketUpdateOne {
	_u.mutation.ClearWorkflowResults()
	return _u
}

// RemoveWorkflowResultIDs removes the "workflow_results" edge to WorkflowResult entities by IDs.
func (_u *TicketUpdateOne) RemoveWorkflowResultIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveWorkflowResultIDs(ids...)
	return _u
}

// RemoveWorkflowResults removes "workflow_results" edges to WorkflowResult entities.
func (_u *TicketUpdateOne) RemoveWorkflowResults(v ...*WorkflowResult) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowResultIDs(ids...)
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *TicketUpdateOne) ClearProject() *TicketUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(ticket.FieldPhaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlaybookEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlaybookEntriesIDs(); len(nodes) > 0 && !_u.mutation.PlaybookEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlaybookEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlaybookChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlaybookChangesIDs(); len(nodes) > 0 && !_u.mutation.PlaybookChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlaybookChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiagnosticRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiagnosticRunsIDs(); len(nodes) > 0 && !_u.mutation.DiagnosticRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagnosticRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowResultsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
