package models

import "github.com/droverhq/drover/ent"

// RecordDiscoveryRequest contains fields for recording a task discovery
type RecordDiscoveryRequest struct {
	SourceTaskID  string `json:"source_task_id"`
	DiscoveryType string `json:"discovery_type"`
	Description   string `json:"description"`
	PriorityBoost bool   `json:"priority_boost,omitempty"`
}

// DiscoveryResponse wraps a TaskDiscovery
type DiscoveryResponse struct {
	*ent.TaskDiscovery
}

// DiscoveriesResponse contains a list of task discoveries
type DiscoveriesResponse struct {
	Discoveries []*ent.TaskDiscovery `json:"discoveries"`
}
