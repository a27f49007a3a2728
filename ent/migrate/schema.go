// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"worker", "validator", "diagnostic", "monitor"}},
		{Name: "phase_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"spawning", "idle", "busy", "stopped", "failed"}, Default: "spawning"},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_agent_type_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[3]},
			},
			{
				Name:    "agent_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[7]},
			},
		},
	}
	// AgentResultsColumns holds the columns for the "agent_results" table.
	AgentResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "markdown_content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// AgentResultsTable holds the schema information for the "agent_results" table.
	AgentResultsTable = &schema.Table{
		Name:       "agent_results",
		Columns:    AgentResultsColumns,
		PrimaryKey: []*schema.Column{AgentResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_results_tasks_agent_results",
				Columns:    []*schema.Column{AgentResultsColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentresult_task_id",
				Unique:  false,
				Columns: []*schema.Column{AgentResultsColumns[6]},
			},
			{
				Name:    "agentresult_agent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentResultsColumns[1]},
			},
		},
	}
	// DiagnosticRunsColumns holds the columns for the "diagnostic_runs" table.
	DiagnosticRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "trigger", Type: field.TypeString, Default: "stuck_workflow"},
		{Name: "triggered_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_tasks", Type: field.TypeInt, Default: 0},
		{Name: "completed_tasks", Type: field.TypeInt, Default: 0},
		{Name: "failed_tasks", Type: field.TypeInt, Default: 0},
		{Name: "phases_analyzed", Type: field.TypeJSON, Nullable: true},
		{Name: "agents_reviewed", Type: field.TypeJSON, Nullable: true},
		{Name: "diagnosis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tasks_created_count", Type: field.TypeInt, Default: 0},
		{Name: "tasks_created_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "skipped", "failed"}, Default: "running"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// DiagnosticRunsTable holds the schema information for the "diagnostic_runs" table.
	DiagnosticRunsTable = &schema.Table{
		Name:       "diagnostic_runs",
		Columns:    DiagnosticRunsColumns,
		PrimaryKey: []*schema.Column{DiagnosticRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "diagnostic_runs_tickets_diagnostic_runs",
				Columns:    []*schema.Column{DiagnosticRunsColumns[14]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosticrun_workflow_id_triggered_at",
				Unique:  false,
				Columns: []*schema.Column{DiagnosticRunsColumns[14], DiagnosticRunsColumns[2]},
			},
			{
				Name:    "diagnosticrun_status",
				Unique:  false,
				Columns: []*schema.Column{DiagnosticRunsColumns[12]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_entity_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[0]},
			},
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6]},
			},
		},
	}
	// LearnedPatternsColumns holds the columns for the "learned_patterns" table.
	LearnedPatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "pattern_type", Type: field.TypeEnum, Enums: []string{"success", "failure", "optimization"}},
		{Name: "task_type_pattern", Type: field.TypeString},
		{Name: "success_indicators", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_indicators", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnedPatternsTable holds the schema information for the "learned_patterns" table.
	LearnedPatternsTable = &schema.Table{
		Name:       "learned_patterns",
		Columns:    LearnedPatternsColumns,
		PrimaryKey: []*schema.Column{LearnedPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnedpattern_pattern_type",
				Unique:  false,
				Columns: []*schema.Column{LearnedPatternsColumns[1]},
			},
		},
	}
	// MonitorAnomaliesColumns holds the columns for the "monitor_anomalies" table.
	MonitorAnomaliesColumns = []*schema.Column{
		{Name: "anomaly_id", Type: field.TypeString, Unique: true},
		{Name: "metric_name", Type: field.TypeString},
		{Name: "observed", Type: field.TypeFloat64},
		{Name: "baseline_mean", Type: field.TypeFloat64},
		{Name: "baseline_stddev", Type: field.TypeFloat64},
		{Name: "zscore", Type: field.TypeFloat64},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"warning", "critical"}},
		{Name: "entity_type", Type: field.TypeString, Nullable: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "detected_at", Type: field.TypeTime},
	}
	// MonitorAnomaliesTable holds the schema information for the "monitor_anomalies" table.
	MonitorAnomaliesTable = &schema.Table{
		Name:       "monitor_anomalies",
		Columns:    MonitorAnomaliesColumns,
		PrimaryKey: []*schema.Column{MonitorAnomaliesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "monitoranomaly_metric_name_detected_at",
				Unique:  false,
				Columns: []*schema.Column{MonitorAnomaliesColumns[1], MonitorAnomaliesColumns[9]},
			},
			{
				Name:    "monitoranomaly_severity",
				Unique:  false,
				Columns: []*schema.Column{MonitorAnomaliesColumns[6]},
			},
		},
	}
	// PlaybookChangesColumns holds the columns for the "playbook_changes" table.
	PlaybookChangesColumns = []*schema.Column{
		{Name: "change_id", Type: field.TypeString, Unique: true},
		{Name: "change_type", Type: field.TypeEnum, Enums: []string{"add", "update", "remove"}, Default: "add"},
		{Name: "section", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "related_memory_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// PlaybookChangesTable holds the schema information for the "playbook_changes" table.
	PlaybookChangesTable = &schema.Table{
		Name:       "playbook_changes",
		Columns:    PlaybookChangesColumns,
		PrimaryKey: []*schema.Column{PlaybookChangesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "playbook_changes_tickets_playbook_changes",
				Columns:    []*schema.Column{PlaybookChangesColumns[8]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "playbookchange_ticket_id_related_memory_id",
				Unique:  false,
				Columns: []*schema.Column{PlaybookChangesColumns[8], PlaybookChangesColumns[5]},
			},
			{
				Name:    "playbookchange_created_at",
				Unique:  false,
				Columns: []*schema.Column{PlaybookChangesColumns[7]},
			},
		},
	}
	// PlaybookEntriesColumns holds the columns for the "playbook_entries" table.
	PlaybookEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"patterns", "gotchas", "best_practices", "general"}, Default: "general"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "supporting_memory_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// PlaybookEntriesTable holds the schema information for the "playbook_entries" table.
	PlaybookEntriesTable = &schema.Table{
		Name:       "playbook_entries",
		Columns:    PlaybookEntriesColumns,
		PrimaryKey: []*schema.Column{PlaybookEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "playbook_entries_tickets_playbook_entries",
				Columns:    []*schema.Column{PlaybookEntriesColumns[9]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "playbookentry_ticket_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{PlaybookEntriesColumns[9], PlaybookEntriesColumns[5]},
			},
			{
				Name:    "playbookentry_category",
				Unique:  false,
				Columns: []*schema.Column{PlaybookEntriesColumns[2]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "repo_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_users_projects",
				Columns:    []*schema.Column{ProjectsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// ResourceLocksColumns holds the columns for the "resource_locks" table.
	ResourceLocksColumns = []*schema.Column{
		{Name: "lock_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_agent_id", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// ResourceLocksTable holds the schema information for the "resource_locks" table.
	ResourceLocksTable = &schema.Table{
		Name:       "resource_locks",
		Columns:    ResourceLocksColumns,
		PrimaryKey: []*schema.Column{ResourceLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resourcelock_name",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[1]},
			},
			{
				Name:    "resourcelock_owner_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "phase_id", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString, Default: "general"},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}, Default: "MEDIUM"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "claiming", "assigned", "running", "under_review", "validation_in_progress", "needs_work", "completed", "failed"}, Default: "pending"},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "deadline_at", Type: field.TypeTime, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "validation_enabled", Type: field.TypeBool, Default: true},
		{Name: "validation_iteration", Type: field.TypeInt, Default: 0},
		{Name: "review_done", Type: field.TypeBool, Default: false},
		{Name: "last_validation_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "owned_files", Type: field.TypeJSON, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "content_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_tickets_tasks",
				Columns:    []*schema.Column{TasksColumns[27]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_task_type",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_ticket_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[27], TasksColumns[5]},
			},
			{
				Name:    "task_phase_id_status_score",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[5], TasksColumns[13]},
			},
			{
				Name:    "task_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'claiming'",
				},
			},
			{
				Name:    "task_ticket_id_task_type_content_hash",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[27], TasksColumns[2], TasksColumns[21]},
				Annotation: &entsql.IndexAnnotation{
					Where: "content_hash IS NOT NULL",
				},
			},
		},
	}
	// TaskDiscoveriesColumns holds the columns for the "task_discoveries" table.
	TaskDiscoveriesColumns = []*schema.Column{
		{Name: "discovery_id", Type: field.TypeString, Unique: true},
		{Name: "discovery_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "spawned_task_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "priority_boost", Type: field.TypeBool, Default: false},
		{Name: "resolution_status", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "resolved", "invalid"}, Default: "open"},
		{Name: "discovered_at", Type: field.TypeTime},
		{Name: "source_task_id", Type: field.TypeString},
	}
	// TaskDiscoveriesTable holds the schema information for the "task_discoveries" table.
	TaskDiscoveriesTable = &schema.Table{
		Name:       "task_discoveries",
		Columns:    TaskDiscoveriesColumns,
		PrimaryKey: []*schema.Column{TaskDiscoveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_discoveries_tasks_discoveries",
				Columns:    []*schema.Column{TaskDiscoveriesColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskdiscovery_source_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskDiscoveriesColumns[7]},
			},
			{
				Name:    "taskdiscovery_resolution_status",
				Unique:  false,
				Columns: []*schema.Column{TaskDiscoveriesColumns[5]},
			},
		},
	}
	// TaskMemoriesColumns holds the columns for the "task_memories" table.
	TaskMemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "execution_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "memory_type", Type: field.TypeEnum, Enums: []string{"error_fix", "decision", "learning", "warning", "codebase_knowledge", "discovery"}, Default: "learning"},
		{Name: "context_embedding", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "goal", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_usage", Type: field.TypeJSON, Nullable: true},
		{Name: "reused_count", Type: field.TypeInt, Default: 0},
		{Name: "learned_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskMemoriesTable holds the schema information for the "task_memories" table.
	TaskMemoriesTable = &schema.Table{
		Name:       "task_memories",
		Columns:    TaskMemoriesColumns,
		PrimaryKey: []*schema.Column{TaskMemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_memories_tasks_memories",
				Columns:    []*schema.Column{TaskMemoriesColumns[12]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskmemory_memory_type",
				Unique:  false,
				Columns: []*schema.Column{TaskMemoriesColumns[2]},
			},
			{
				Name:    "taskmemory_task_id_learned_at",
				Unique:  false,
				Columns: []*schema.Column{TaskMemoriesColumns[12], TaskMemoriesColumns[11]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "phase_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "done"}, Default: "open"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}, Default: "MEDIUM"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tickets_projects_tickets",
				Columns:    []*schema.Column{TicketsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[4]},
			},
			{
				Name:    "ticket_phase_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[3]},
			},
			{
				Name:    "ticket_project_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[8]},
			},
			{
				Name:    "ticket_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[4], TicketsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "github_access_token", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// ValidationReviewsColumns holds the columns for the "validation_reviews" table.
	ValidationReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "validator_agent_id", Type: field.TypeString},
		{Name: "iteration_number", Type: field.TypeInt},
		{Name: "validation_passed", Type: field.TypeBool},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// ValidationReviewsTable holds the schema information for the "validation_reviews" table.
	ValidationReviewsTable = &schema.Table{
		Name:       "validation_reviews",
		Columns:    ValidationReviewsColumns,
		PrimaryKey: []*schema.Column{ValidationReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_reviews_tasks_validation_reviews",
				Columns:    []*schema.Column{ValidationReviewsColumns[8]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationreview_task_id_iteration_number",
				Unique:  true,
				Columns: []*schema.Column{ValidationReviewsColumns[8], ValidationReviewsColumns[2]},
			},
		},
	}
	// WorkflowResultsColumns holds the columns for the "workflow_results" table.
	WorkflowResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "markdown_file_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "validated", "rejected"}, Default: "submitted"},
		{Name: "submitted_by", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// WorkflowResultsTable holds the schema information for the "workflow_results" table.
	WorkflowResultsTable = &schema.Table{
		Name:       "workflow_results",
		Columns:    WorkflowResultsColumns,
		PrimaryKey: []*schema.Column{WorkflowResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_results_tickets_workflow_results",
				Columns:    []*schema.Column{WorkflowResultsColumns[7]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowresult_ticket_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowResultsColumns[7], WorkflowResultsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentResultsTable,
		DiagnosticRunsTable,
		EventsTable,
		LearnedPatternsTable,
		MonitorAnomaliesTable,
		PlaybookChangesTable,
		PlaybookEntriesTable,
		ProjectsTable,
		ResourceLocksTable,
		TasksTable,
		TaskDiscoveriesTable,
		TaskMemoriesTable,
		TicketsTable,
		UsersTable,
		ValidationReviewsTable,
		WorkflowResultsTable,
	}
)

func init() {
	AgentResultsTable.ForeignKeys[0].RefTable = TasksTable
	DiagnosticRunsTable.ForeignKeys[0].RefTable = TicketsTable
	PlaybookChangesTable.ForeignKeys[0].RefTable = TicketsTable
	PlaybookEntriesTable.ForeignKeys[0].RefTable = TicketsTable
	ProjectsTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = TicketsTable
	TaskDiscoveriesTable.ForeignKeys[0].RefTable = TasksTable
	TaskMemoriesTable.ForeignKeys[0].RefTable = TasksTable
	TicketsTable.ForeignKeys[0].RefTable = ProjectsTable
	ValidationReviewsTable.ForeignKeys[0].RefTable = TasksTable
	WorkflowResultsTable.ForeignKeys[0].RefTable = TicketsTable
}
