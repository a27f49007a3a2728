package validation

import (
	"sync"
	"time"
)

// ActiveValidator describes the validator currently reviewing a task.
// ValidatorAgentID is empty for entries restored after a restart, where
// the spawned validator is unknown; such entries time out on StartedAt.
type ActiveValidator struct {
	ValidatorAgentID string
	Iteration        int
	StartedAt        time.Time
}

// registry tracks the single active validator per task. It is an
// in-memory view rebuilt from task state at startup, so a restart never
// strands a review permanently.
type registry struct {
	mu      sync.Mutex
	entries map[string]ActiveValidator
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]ActiveValidator)}
}

// put records the active validator for a task, returning the entry it
// displaced if one was present.
func (r *registry) put(taskID, validatorAgentID string, iteration int) (ActiveValidator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, existed := r.entries[taskID]
	r.entries[taskID] = ActiveValidator{
		ValidatorAgentID: validatorAgentID,
		Iteration:        iteration,
		StartedAt:        time.Now(),
	}
	return prev, existed
}

func (r *registry) get(taskID string) (ActiveValidator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[taskID]
	return entry, ok
}

func (r *registry) release(taskID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, taskID)
}

// snapshot copies the registry for iteration outside the lock.
func (r *registry) snapshot() map[string]ActiveValidator {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]ActiveValidator, len(r.entries))
	for id, entry := range r.entries {
		out[id] = entry
	}
	return out
}
