// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentResult is the predicate function for agentresult builders.
type AgentResult func(*sql.Selector)

// DiagnosticRun is the predicate function for diagnosticrun builders.
type DiagnosticRun func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// LearnedPattern is the predicate function for learnedpattern builders.
type LearnedPattern func(*sql.Selector)

// MonitorAnomaly is the predicate function for monitoranomaly builders.
type MonitorAnomaly func(*sql.Selector)

// PlaybookChange is the predicate function for playbookchange builders.
type PlaybookChange func(*sql.Selector)

// PlaybookEntry is the predicate function for playbookentry builders.
type PlaybookEntry func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ResourceLock is the predicate function for resourcelock builders.
type ResourceLock func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskDiscovery is the predicate function for taskdiscovery builders.
type TaskDiscovery func(*sql.Selector)

// TaskMemory is the predicate function for taskmemory builders.
type TaskMemory func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// ValidationReview is the predicate function for validationreview builders.
type ValidationReview func(*sql.Selector)

// WorkflowResult is the predicate function for workflowresult builders.
type WorkflowResult func(*sql.Selector)
