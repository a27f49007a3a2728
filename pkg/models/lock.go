package models

import "github.com/droverhq/drover/ent"

// AcquireLockRequest contains fields for acquiring a named resource lock
type AcquireLockRequest struct {
	Name         string         `json:"name"`
	OwnerAgentID string         `json:"owner_agent_id"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// ReleaseLockRequest contains fields for releasing a held lock
type ReleaseLockRequest struct {
	Name         string `json:"name"`
	OwnerAgentID string `json:"owner_agent_id"`
}

// LockResponse wraps a ResourceLock
type LockResponse struct {
	*ent.ResourceLock
}

// LocksResponse contains a list of resource locks
type LocksResponse struct {
	Locks []*ent.ResourceLock `json:"locks"`
}
