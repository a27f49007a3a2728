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
	"github.com/droverhq/drover/ent/agentresult"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/ent/validationreview"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *TaskUpdate) SetPhaseID(v string) *TaskUpdate {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePhaseID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v string) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdate) SetAssignedAgentID(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdate) ClearAssignedAgentID() *TaskUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *TaskUpdate) SetSandboxID(v string) *TaskUpdate {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSandboxID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *TaskUpdate) ClearSandboxID() *TaskUpdate {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdate) SetResult(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdate) ClearResult() *TaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdate) SetRetryCount(v int) *TaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRetryCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdate) AddRetryCount(v int) *TaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdate) SetMaxRetries(v int) *TaskUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxRetries(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdate) AddMaxRetries(v int) *TaskUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *TaskUpdate) SetDeadlineAt(v time.Time) *TaskUpdate {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeadlineAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *TaskUpdate) ClearDeadlineAt() *TaskUpdate {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetScore sets the "score" field.
func (_u *TaskUpdate) SetScore(v float64) *TaskUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableScore(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TaskUpdate) AddScore(v float64) *TaskUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_u *TaskUpdate) SetValidationEnabled(v bool) *TaskUpdate {
	_u.mutation.SetValidationEnabled(v)
	return _u
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableValidationEnabled(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetValidationEnabled(*v)
	}
	return _u
}

// SetValidationIteration sets the "validation_iteration" field.
func (_u *TaskUpdate) SetValidationIteration(v int) *TaskUpdate {
	_u.mutation.ResetValidationIteration()
	_u.mutation.SetValidationIteration(v)
	return _u
}

// SetNillableValidationIteration sets the "validation_iteration" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableValidationIteration(v *int) *TaskUpdate {
	if v != nil {
		_u.SetValidationIteration(*v)
	}
	return _u
}

// AddValidationIteration adds value to the "validation_iteration" field.
func (_u *TaskUpdate) AddValidationIteration(v int) *TaskUpdate {
	_u.mutation.AddValidationIteration(v)
	return _u
}

// SetReviewDone sets the "review_done" field.
func (_u *TaskUpdate) SetReviewDone(v bool) *TaskUpdate {
	_u.mutation.SetReviewDone(v)
	return _u
}

// SetNillableReviewDone sets the "review_done" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableReviewDone(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetReviewDone(*v)
	}
	return _u
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (_u *TaskUpdate) SetLastValidationFeedback(v string) *TaskUpdate {
	_u.mutation.SetLastValidationFeedback(v)
	return _u
}

// SetNillableLastValidationFeedback sets the "last_validation_feedback" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastValidationFeedback(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLastValidationFeedback(*v)
	}
	return _u
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (_u *TaskUpdate) ClearLastValidationFeedback() *TaskUpdate {
	_u.mutation.ClearLastValidationFeedback()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *TaskUpdate) SetCommitSha(v string) *TaskUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCommitSha(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *TaskUpdate) ClearCommitSha() *TaskUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetOwnedFiles sets the "owned_files" field.
func (_u *TaskUpdate) SetOwnedFiles(v []string) *TaskUpdate {
	_u.mutation.SetOwnedFiles(v)
	return _u
}

// AppendOwnedFiles appends value to the "owned_files" field.
func (_u *TaskUpdate) AppendOwnedFiles(v []string) *TaskUpdate {
	_u.mutation.AppendOwnedFiles(v)
	return _u
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (_u *TaskUpdate) ClearOwnedFiles() *TaskUpdate {
	_u.mutation.ClearOwnedFiles()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdate) SetDependencies(v map[string][]string) *TaskUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdate) ClearDependencies() *TaskUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *TaskUpdate) SetContentHash(v string) *TaskUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableContentHash(v *string) *TaskUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *TaskUpdate) ClearContentHash() *TaskUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TaskUpdate) SetClaimedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableClaimedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TaskUpdate) ClearClaimedAt() *TaskUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemoryIDs adds the "memories" edge to the TaskMemory entity by IDs.
func (_u *TaskUpdate) AddMemoryIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddMemoryIDs(ids...)
	return _u
}

// AddMemories adds the "memories" edges to the TaskMemory entity.
func (_u *TaskUpdate) AddMemories(v ...*TaskMemory) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryIDs(ids...)
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by IDs.
func (_u *TaskUpdate) AddValidationReviewIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddValidationReviewIDs(ids...)
	return _u
}

// AddValidationReviews adds the "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdate) AddValidationReviews(v ...*ValidationReview) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationReviewIDs(ids...)
}

// AddDiscoveryIDs adds the "discoveries" edge to the TaskDiscovery entity by IDs.
func (_u *TaskUpdate) AddDiscoveryIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddDiscoveryIDs(ids...)
	return _u
}

// AddDiscoveries adds the "discoveries" edges to the TaskDiscovery entity.
func (_u *TaskUpdate) AddDiscoveries(v ...*TaskDiscovery) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiscoveryIDs(ids...)
}

// AddAgentResultIDs adds the "agent_results" edge to the AgentResult entity by IDs.
func (_u *TaskUpdate) AddAgentResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddAgentResultIDs(ids...)
	return _u
}

// AddAgentResults adds the "agent_results" edges to the AgentResult entity.
func (_u *TaskUpdate) AddAgentResults(v ...*AgentResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentResultIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearMemories clears all "memories" edges to the TaskMemory entity.
func (_u *TaskUpdate) ClearMemories() *TaskUpdate {
	_u.mutation.ClearMemories()
	return _u
}

// RemoveMemoryIDs removes the "memories" edge to TaskMemory entities by IDs.
func (_u *TaskUpdate) RemoveMemoryIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveMemoryIDs(ids...)
	return _u
}

// RemoveMemories removes "memories" edges to TaskMemory entities.
func (_u *TaskUpdate) RemoveMemories(v ...*TaskMemory) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryIDs(ids...)
}

// ClearValidationReviews clears all "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdate) ClearValidationReviews() *TaskUpdate {
	_u.mutation.ClearValidationReviews()
	return _u
}

// RemoveValidationReviewIDs removes the "validation_reviews" edge to ValidationReview entities by IDs.
func (_u *TaskUpdate) RemoveValidationReviewIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveValidationReviewIDs(ids...)
	return _u
}

// RemoveValidationReviews removes "validation_reviews" edges to ValidationReview entities.
func (_u *TaskUpdate) RemoveValidationReviews(v ...*ValidationReview) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationReviewIDs(ids...)
}

// ClearDiscoveries clears all "discoveries" edges to the TaskDiscovery entity.
func (_u *TaskUpdate) ClearDiscoveries() *TaskUpdate {
	_u.mutation.ClearDiscoveries()
	return _u
}

// RemoveDiscoveryIDs removes the "discoveries" edge to TaskDiscovery entities by IDs.
func (_u *TaskUpdate) RemoveDiscoveryIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveDiscoveryIDs(ids...)
	return _u
}

// RemoveDiscoveries removes "discoveries" edges to TaskDiscovery entities.
func (_u *TaskUpdate) RemoveDiscoveries(v ...*TaskDiscovery) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiscoveryIDs(ids...)
}

// ClearAgentResults clears all "agent_results" edges to the AgentResult entity.
func (_u *TaskUpdate) ClearAgentResults() *TaskUpdate {
	_u.mutation.ClearAgentResults()
	return _u
}

// RemoveAgentResultIDs removes the "agent_results" edge to AgentResult entities by IDs.
func (_u *TaskUpdate) RemoveAgentResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveAgentResultIDs(ids...)
	return _u
}

// RemoveAgentResults removes "agent_results" edges to AgentResult entities.
func (_u *TaskUpdate) RemoveAgentResults(v ...*AgentResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := task.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Task.content_hash": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.ticket"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(task.FieldPhaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(task.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(task.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(task.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(task.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValidationEnabled(); ok {
		_spec.SetField(task.FieldValidationEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationIteration(); ok {
		_spec.SetField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidationIteration(); ok {
		_spec.AddField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewDone(); ok {
		_spec.SetField(task.FieldReviewDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastValidationFeedback(); ok {
		_spec.SetField(task.FieldLastValidationFeedback, field.TypeString, value)
	}
	if _u.mutation.LastValidationFeedbackCleared() {
		_spec.ClearField(task.FieldLastValidationFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(task.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(task.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.OwnedFiles(); ok {
		_spec.SetField(task.FieldOwnedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldOwnedFiles, value)
		})
	}
	if _u.mutation.OwnedFilesCleared() {
		_spec.ClearField(task.FieldOwnedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(task.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(task.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(task.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(task.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MemoriesTable,
			Columns: []string{task.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoriesIDs(); len(nodes) > 0 && !_u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MemoriesTable,
			Columns: []string{task.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MemoriesTable,
			Columns: []string{task.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationReviewsIDs(); len(nodes) > 0 && !_u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiscoveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DiscoveriesTable,
			Columns: []string{task.DiscoveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiscoveriesIDs(); len(nodes) > 0 && !_u.mutation.DiscoveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DiscoveriesTable,
			Columns: []string{task.DiscoveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiscoveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DiscoveriesTable,
			Columns: []string{task.DiscoveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentResultsTable,
			Columns: []string{task.AgentResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentResultsIDs(); len(nodes) > 0 && !_u.mutation.AgentResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentResultsTable,
			Columns: []string{task.AgentResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentResultsTable,
			Columns: []string{task.AgentResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetPhaseID sets the "phase_id" field.
func (_u *TaskUpdateOne) SetPhaseID(v string) *TaskUpdateOne {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePhaseID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v string) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdateOne) SetAssignedAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdateOne) ClearAssignedAgentID() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *TaskUpdateOne) SetSandboxID(v string) *TaskUpdateOne {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSandboxID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *TaskUpdateOne) ClearSandboxID() *TaskUpdateOne {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdateOne) SetResult(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdateOne) ClearResult() *TaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdateOne) SetRetryCount(v int) *TaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRetryCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdateOne) AddRetryCount(v int) *TaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdateOne) SetMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxRetries(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdateOne) AddMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *TaskUpdateOne) SetDeadlineAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeadlineAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *TaskUpdateOne) ClearDeadlineAt() *TaskUpdateOne {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetScore sets the "score" field.
func (_u *TaskUpdateOne) SetScore(v float64) *TaskUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableScore(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TaskUpdateOne) AddScore(v float64) *TaskUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_u *TaskUpdateOne) SetValidationEnabled(v bool) *TaskUpdateOne {
	_u.mutation.SetValidationEnabled(v)
	return _u
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableValidationEnabled(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetValidationEnabled(*v)
	}
	return _u
}

// SetValidationIteration sets the "validation_iteration" field.
func (_u *TaskUpdateOne) SetValidationIteration(v int) *TaskUpdateOne {
	_u.mutation.ResetValidationIteration()
	_u.mutation.SetValidationIteration(v)
	return _u
}

// SetNillableValidationIteration sets the "validation_iteration" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableValidationIteration(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetValidationIteration(*v)
	}
	return _u
}

// AddValidationIteration adds value to the "validation_iteration" field.
func (_u *TaskUpdateOne) AddValidationIteration(v int) *TaskUpdateOne {
	_u.mutation.AddValidationIteration(v)
	return _u
}

// SetReviewDone sets the "review_done" field.
func (_u *TaskUpdateOne) SetReviewDone(v bool) *TaskUpdateOne {
	_u.mutation.SetReviewDone(v)
	return _u
}

// SetNillableReviewDone sets the "review_done" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableReviewDone(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetReviewDone(*v)
	}
	return _u
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (_u *TaskUpdateOne) SetLastValidationFeedback(v string) *TaskUpdateOne {
	_u.mutation.SetLastValidationFeedback(v)
	return _u
}

// SetNillableLastValidationFeedback sets the "last_validation_feedback" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastValidationFeedback(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLastValidationFeedback(*v)
	}
	return _u
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (_u *TaskUpdateOne) ClearLastValidationFeedback() *TaskUpdateOne {
	_u.mutation.ClearLastValidationFeedback()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *TaskUpdateOne) SetCommitSha(v string) *TaskUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCommitSha(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *TaskUpdateOne) ClearCommitSha() *TaskUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetOwnedFiles sets the "owned_files" field.
func (_u *TaskUpdateOne) SetOwnedFiles(v []string) *TaskUpdateOne {
	_u.mutation.SetOwnedFiles(v)
	return _u
}

// AppendOwnedFiles appends value to the "owned_files" field.
func (_u *TaskUpdateOne) AppendOwnedFiles(v []string) *TaskUpdateOne {
	_u.mutation.AppendOwnedFiles(v)
	return _u
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (_u *TaskUpdateOne) ClearOwnedFiles() *TaskUpdateOne {
	_u.mutation.ClearOwnedFiles()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdateOne) SetDependencies(v map[string][]string) *TaskUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdateOne) ClearDependencies() *TaskUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *TaskUpdateOne) SetContentHash(v string) *TaskUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableContentHash(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *TaskUpdateOne) ClearContentHash() *TaskUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TaskUpdateOne) SetClaimedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableClaimedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TaskUpdateOne) ClearClaimedAt() *TaskUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemoryIDs adds the "memories" edge to the TaskMemory entity by IDs.
func (_u *TaskUpdateOne) AddMemoryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddMemoryIDs(ids...)
	return _u
}

// AddMemories adds the "memories" edges to the TaskMemory entity.
func (_u *TaskUpdateOne) AddMemories(v ...*TaskMemory) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryIDs(ids...)
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by IDs.
func (_u *TaskUpdateOne) AddValidationReviewIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddValidationReviewIDs(ids...)
	return _u
}

// AddValidationReviews adds the "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdateOne) AddValidationReviews(v ...*ValidationReview) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationReviewIDs(ids...)
}

// AddDiscoveryIDs adds the "discoveries" edge to the TaskDiscovery entity by IDs.
func (_u *TaskUpdateOne) AddDiscoveryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddDiscoveryIDs(ids...)
	return _u
}

// AddDiscoveries adds the "discoveries" edges to the TaskDiscovery entity.
func (_u *TaskUpdateOne) AddDiscoveries(v ...*TaskDiscovery) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiscoveryIDs(ids...)
}

// AddAgentResultIDs adds the "agent_results" edge to the AgentResult entity by IDs.
func (_u *TaskUpdateOne) AddAgentResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddAgentResultIDs(ids...)
	return _u
}

// AddAgentResults adds the "agent_results" edges to the AgentResult entity.
func (_u *TaskUpdateOne) AddAgentResults(v ...*AgentResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentResultIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearMemories clears all "memories" edges to the TaskMemory entity.
func (_u *TaskUpdateOne) ClearMemories() *TaskUpdateOne {
	_u.mutation.ClearMemories()
	return _u
}

// RemoveMemoryIDs removes the "memories" edge to TaskMemory entities by IDs.
func (_u *TaskUpdateOne) RemoveMemoryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveMemoryIDs(ids...)
	return _u
}

// RemoveMemories removes "memories" edges to TaskMemory entities.
func (_u *TaskUpdateOne) RemoveMemories(v ...*TaskMemory) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryIDs(ids...)
}

// ClearValidationReviews clears all "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdateOne) ClearValidationReviews() *TaskUpdateOne {
	_u.mutation.ClearValidationReviews()
	return _u
}

// RemoveValidationReviewIDs removes the "validation_reviews" edge to ValidationReview entities by IDs.
func (_u *TaskUpdateOne) RemoveValidationReviewIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveValidationReviewIDs(ids...)
	return _u
}

// RemoveValidationReviews removes "validation_reviews" edges to ValidationReview entities.
func (_u *TaskUpdateOne) RemoveValidationReviews(v ...*ValidationReview) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationReviewIDs(ids...)
}

// ClearDiscoveries clears all "discoveries" edges to the TaskDiscovery entity.
func (_u *TaskUpdateOne) ClearDiscoveries() *TaskUpdateOne {
	_u.mutation.ClearDiscoveries()
	return _u
}

// RemoveDiscoveryIDs removes the "discoveries" edge to TaskDiscovery entities by IDs.
func (_u *TaskUpdateOne) RemoveDiscoveryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveDiscoveryIDs(ids...)
	return _u
}

// RemoveDiscoveries removes "discoveries" edges to TaskDiscovery entities.
func (_u *TaskUpdateOne) RemoveDiscoveries(v ...*TaskDiscovery) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiscoveryIDs(ids...)
}

// ClearAgentResults clears all "agent_results" edges to the AgentResult entity.
func (_u *TaskUpdateOne) ClearAgentResults() *TaskUpdateOne {
	_u.mutation.ClearAgentResults()
	return _u
}

// RemoveAgentResultIDs removes the "agent_results" edge to AgentResult entities by IDs.
func (_u *TaskUpdateOne) RemoveAgentResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveAgentResultIDs(ids...)
	return _u
}

// RemoveAgentResults removes "agent_results" edges to AgentResult entities.
func (_u *TaskUpdateOne) RemoveAgentResults(v ...*AgentResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentResultIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := task.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Task.content_hash": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.ticket"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(task.FieldPhaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(task.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(task.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(task.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(task.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValidationEnabled(); ok {
		_spec.SetField(task.FieldValidationEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationIteration(); ok {
		_spec.SetField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidationIteration(); ok {
		_spec.AddField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewDone(); ok {
		_spec.SetField(task.FieldReviewDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastValidationFeedback(); ok {
		_spec.SetField(task.FieldLastValidationFeedback, field.TypeString, value)
	}
	if _u.mutation.LastValidationFeedbackCleared() {
		_spec.ClearField(task.FieldLastValidationFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(task.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(task.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.OwnedFiles(); ok {
		_spec.SetField(task.FieldOwnedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldOwnedFiles, value)
		})
	}
	if _u.mutation.OwnedFilesCleared() {
		_spec.ClearField(task.FieldOwnedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(task.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(task.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(task.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(task.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MemoriesTable,
			Columns: []string{task.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoriesIDs(); len(nodes) > 0 && !_u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MemoriesTable,
			Columns: []string{task.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MemoriesTable,
			Columns: []string{task.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationReviewsIDs(); len(nodes) > 0 && !_u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiscoveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DiscoveriesTable,
			Columns: []string{task.DiscoveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiscoveriesIDs(); len(nodes) > 0 && !_u.mutation.DiscoveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DiscoveriesTable,
			Columns: []string{task.DiscoveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiscoveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DiscoveriesTable,
			Columns: []string{task.DiscoveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentResultsTable,
			Columns: []string{task.AgentResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentResultsIDs(); len(nodes) > 0 && !_u.mutation.AgentResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentResultsTable,
			Columns: []string{task.AgentResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentResultsTable,
			Columns: []string{task.AgentResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
