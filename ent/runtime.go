// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/ent/agentresult"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/event"
	"github.com/droverhq/drover/ent/learnedpattern"
	"github.com/droverhq/drover/ent/monitoranomaly"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/project"
	"github.com/droverhq/drover/ent/resourcelock"
	"github.com/droverhq/drover/ent/schema"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/user"
	"github.com/droverhq/drover/ent/validationreview"
	"github.com/droverhq/drover/ent/workflowresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescLastHeartbeat is the schema descriptor for last_heartbeat field.
	agentDescLastHeartbeat := agentFields[7].Descriptor()
	// agent.DefaultLastHeartbeat holds the default value on creation for the last_heartbeat field.
	agent.DefaultLastHeartbeat = agentDescLastHeartbeat.Default.(func() time.Time)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[8].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	agentresultFields := schema.AgentResult{}.Fields()
	_ = agentresultFields
	// agentresultDescCreatedAt is the schema descriptor for created_at field.
	agentresultDescCreatedAt := agentresultFields[6].Descriptor()
	// agentresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentresult.DefaultCreatedAt = agentresultDescCreatedAt.Default.(func() time.Time)
	diagnosticrunFields := schema.DiagnosticRun{}.Fields()
	_ = diagnosticrunFields
	// diagnosticrunDescTrigger is the schema descriptor for trigger field.
	diagnosticrunDescTrigger := diagnosticrunFields[2].Descriptor()
	// diagnosticrun.DefaultTrigger holds the default value on creation for the trigger field.
	diagnosticrun.DefaultTrigger = diagnosticrunDescTrigger.Default.(string)
	// diagnosticrunDescTriggeredAt is the schema descriptor for triggered_at field.
	diagnosticrunDescTriggeredAt := diagnosticrunFields[3].Descriptor()
	// diagnosticrun.DefaultTriggeredAt holds the default value on creation for the triggered_at field.
	diagnosticrun.DefaultTriggeredAt = diagnosticrunDescTriggeredAt.Default.(func() time.Time)
	// diagnosticrunDescTotalTasks is the schema descriptor for total_tasks field.
	diagnosticrunDescTotalTasks := diagnosticrunFields[5].Descriptor()
	// diagnosticrun.DefaultTotalTasks holds the default value on creation for the total_tasks field.
	diagnosticrun.DefaultTotalTasks = diagnosticrunDescTotalTasks.Default.(int)
	// diagnosticrunDescCompletedTasks is the schema descriptor for completed_tasks field.
	diagnosticrunDescCompletedTasks := diagnosticrunFields[6].Descriptor()
	// diagnosticrun.DefaultCompletedTasks holds the default value on creation for the completed_tasks field.
	diagnosticrun.DefaultCompletedTasks = diagnosticrunDescCompletedTasks.Default.(int)
	// diagnosticrunDescFailedTasks is the schema descriptor for failed_tasks field.
	diagnosticrunDescFailedTasks := diagnosticrunFields[7].Descriptor()
	// diagnosticrun.DefaultFailedTasks holds the default value on creation for the failed_tasks field.
	diagnosticrun.DefaultFailedTasks = diagnosticrunDescFailedTasks.Default.(int)
	// diagnosticrunDescTasksCreatedCount is the schema descriptor for tasks_created_count field.
	diagnosticrunDescTasksCreatedCount := diagnosticrunFields[11].Descriptor()
	// diagnosticrun.DefaultTasksCreatedCount holds the default value on creation for the tasks_created_count field.
	diagnosticrun.DefaultTasksCreatedCount = diagnosticrunDescTasksCreatedCount.Default.(int)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	learnedpatternFields := schema.LearnedPattern{}.Fields()
	_ = learnedpatternFields
	// learnedpatternDescConfidenceScore is the schema descriptor for confidence_score field.
	learnedpatternDescConfidenceScore := learnedpatternFields[5].Descriptor()
	// learnedpattern.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	learnedpattern.DefaultConfidenceScore = learnedpatternDescConfidenceScore.Default.(float64)
	// learnedpatternDescUsageCount is the schema descriptor for usage_count field.
	learnedpatternDescUsageCount := learnedpatternFields[6].Descriptor()
	// learnedpattern.DefaultUsageCount holds the default value on creation for the usage_count field.
	learnedpattern.DefaultUsageCount = learnedpatternDescUsageCount.Default.(int)
	// learnedpatternDescCreatedAt is the schema descriptor for created_at field.
	learnedpatternDescCreatedAt := learnedpatternFields[7].Descriptor()
	// learnedpattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnedpattern.DefaultCreatedAt = learnedpatternDescCreatedAt.Default.(func() time.Time)
	// learnedpatternDescUpdatedAt is the schema descriptor for updated_at field.
	learnedpatternDescUpdatedAt := learnedpatternFields[8].Descriptor()
	// learnedpattern.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnedpattern.DefaultUpdatedAt = learnedpatternDescUpdatedAt.Default.(func() time.Time)
	// learnedpattern.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnedpattern.UpdateDefaultUpdatedAt = learnedpatternDescUpdatedAt.UpdateDefault.(func() time.Time)
	monitoranomalyFields := schema.MonitorAnomaly{}.Fields()
	_ = monitoranomalyFields
	// monitoranomalyDescDetectedAt is the schema descriptor for detected_at field.
	monitoranomalyDescDetectedAt := monitoranomalyFields[9].Descriptor()
	// monitoranomaly.DefaultDetectedAt holds the default value on creation for the detected_at field.
	monitoranomaly.DefaultDetectedAt = monitoranomalyDescDetectedAt.Default.(func() time.Time)
	playbookchangeFields := schema.PlaybookChange{}.Fields()
	_ = playbookchangeFields
	// playbookchangeDescCreatedAt is the schema descriptor for created_at field.
	playbookchangeDescCreatedAt := playbookchangeFields[8].Descriptor()
	// playbookchange.DefaultCreatedAt holds the default value on creation for the created_at field.
	playbookchange.DefaultCreatedAt = playbookchangeDescCreatedAt.Default.(func() time.Time)
	playbookentryFields := schema.PlaybookEntry{}.Fields()
	_ = playbookentryFields
	// playbookentryDescIsActive is the schema descriptor for is_active field.
	playbookentryDescIsActive := playbookentryFields[6].Descriptor()
	// playbookentry.DefaultIsActive holds the default value on creation for the is_active field.
	playbookentry.DefaultIsActive = playbookentryDescIsActive.Default.(bool)
	// playbookentryDescCreatedAt is the schema descriptor for created_at field.
	playbookentryDescCreatedAt := playbookentryFields[8].Descriptor()
	// playbookentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	playbookentry.DefaultCreatedAt = playbookentryDescCreatedAt.Default.(func() time.Time)
	// playbookentryDescUpdatedAt is the schema descriptor for updated_at field.
	playbookentryDescUpdatedAt := playbookentryFields[9].Descriptor()
	// playbookentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	playbookentry.DefaultUpdatedAt = playbookentryDescUpdatedAt.Default.(func() time.Time)
	// playbookentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	playbookentry.UpdateDefaultUpdatedAt = playbookentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	resourcelockFields := schema.ResourceLock{}.Fields()
	_ = resourcelockFields
	// resourcelockDescAcquiredAt is the schema descriptor for acquired_at field.
	resourcelockDescAcquiredAt := resourcelockFields[3].Descriptor()
	// resourcelock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	resourcelock.DefaultAcquiredAt = resourcelockDescAcquiredAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTaskType is the schema descriptor for task_type field.
	taskDescTaskType := taskFields[3].Descriptor()
	// task.DefaultTaskType holds the default value on creation for the task_type field.
	task.DefaultTaskType = taskDescTaskType.Default.(string)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[11].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescMaxRetries is the schema descriptor for max_retries field.
	taskDescMaxRetries := taskFields[12].Descriptor()
	// task.DefaultMaxRetries holds the default value on creation for the max_retries field.
	task.DefaultMaxRetries = taskDescMaxRetries.Default.(int)
	// taskDescScore is the schema descriptor for score field.
	taskDescScore := taskFields[14].Descriptor()
	// task.DefaultScore holds the default value on creation for the score field.
	task.DefaultScore = taskDescScore.Default.(float64)
	// taskDescValidationEnabled is the schema descriptor for validation_enabled field.
	taskDescValidationEnabled := taskFields[15].Descriptor()
	// task.DefaultValidationEnabled holds the default value on creation for the validation_enabled field.
	task.DefaultValidationEnabled = taskDescValidationEnabled.Default.(bool)
	// taskDescValidationIteration is the schema descriptor for validation_iteration field.
	taskDescValidationIteration := taskFields[16].Descriptor()
	// task.DefaultValidationIteration holds the default value on creation for the validation_iteration field.
	task.DefaultValidationIteration = taskDescValidationIteration.Default.(int)
	// taskDescReviewDone is the schema descriptor for review_done field.
	taskDescReviewDone := taskFields[17].Descriptor()
	// task.DefaultReviewDone holds the default value on creation for the review_done field.
	task.DefaultReviewDone = taskDescReviewDone.Default.(bool)
	// taskDescContentHash is the schema descriptor for content_hash field.
	taskDescContentHash := taskFields[22].Descriptor()
	// task.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	task.ContentHashValidator = taskDescContentHash.Validators[0].(func(string) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[26].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[27].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskdiscoveryFields := schema.TaskDiscovery{}.Fields()
	_ = taskdiscoveryFields
	// taskdiscoveryDescPriorityBoost is the schema descriptor for priority_boost field.
	taskdiscoveryDescPriorityBoost := taskdiscoveryFields[5].Descriptor()
	// taskdiscovery.DefaultPriorityBoost holds the default value on creation for the priority_boost field.
	taskdiscovery.DefaultPriorityBoost = taskdiscoveryDescPriorityBoost.Default.(bool)
	// taskdiscoveryDescDiscoveredAt is the schema descriptor for discovered_at field.
	taskdiscoveryDescDiscoveredAt := taskdiscoveryFields[7].Descriptor()
	// taskdiscovery.DefaultDiscoveredAt holds the default value on creation for the discovered_at field.
	taskdiscovery.DefaultDiscoveredAt = taskdiscoveryDescDiscoveredAt.Default.(func() time.Time)
	taskmemoryFields := schema.TaskMemory{}.Fields()
	_ = taskmemoryFields
	// taskmemoryDescSuccess is the schema descriptor for success field.
	taskmemoryDescSuccess := taskmemoryFields[5].Descriptor()
	// taskmemory.DefaultSuccess holds the default value on creation for the success field.
	taskmemory.DefaultSuccess = taskmemoryDescSuccess.Default.(bool)
	// taskmemoryDescReusedCount is the schema descriptor for reused_count field.
	taskmemoryDescReusedCount := taskmemoryFields[11].Descriptor()
	// taskmemory.DefaultReusedCount holds the default value on creation for the reused_count field.
	taskmemory.DefaultReusedCount = taskmemoryDescReusedCount.Default.(int)
	// taskmemoryDescLearnedAt is the schema descriptor for learned_at field.
	taskmemoryDescLearnedAt := taskmemoryFields[12].Descriptor()
	// taskmemory.DefaultLearnedAt holds the default value on creation for the learned_at field.
	taskmemory.DefaultLearnedAt = taskmemoryDescLearnedAt.Default.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[7].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[8].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	validationreviewFields := schema.ValidationReview{}.Fields()
	_ = validationreviewFields
	// validationreviewDescCreatedAt is the schema descriptor for created_at field.
	validationreviewDescCreatedAt := validationreviewFields[8].Descriptor()
	// validationreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationreview.DefaultCreatedAt = validationreviewDescCreatedAt.Default.(func() time.Time)
	workflowresultFields := schema.WorkflowResult{}.Fields()
	_ = workflowresultFields
	// workflowresultDescCreatedAt is the schema descriptor for created_at field.
	workflowresultDescCreatedAt := workflowresultFields[7].Descriptor()
	// workflowresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowresult.DefaultCreatedAt = workflowresultDescCreatedAt.Default.(func() time.Time)
}
