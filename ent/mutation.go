// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/ent/agentresult"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/event"
	"github.com/droverhq/drover/ent/learnedpattern"
	"github.com/droverhq/drover/ent/monitoranomaly"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/project"
	"github.com/droverhq/drover/ent/resourcelock"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/user"
	"github.com/droverhq/drover/ent/validationreview"
	"github.com/droverhq/drover/ent/workflowresult"
	pgvector "github.com/pgvector/pgvector-go"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent            = "Agent"
	TypeAgentResult      = "AgentResult"
	TypeDiagnosticRun    = "DiagnosticRun"
	TypeEvent            = "Event"
	TypeLearnedPattern   = "LearnedPattern"
	TypeMonitorAnomaly   = "MonitorAnomaly"
	TypePlaybookChange   = "PlaybookChange"
	TypePlaybookEntry    = "PlaybookEntry"
	TypeProject          = "Project"
	TypeResourceLock     = "ResourceLock"
	TypeTask             = "Task"
	TypeTaskDiscovery    = "TaskDiscovery"
	TypeTaskMemory       = "TaskMemory"
	TypeTicket           = "Ticket"
	TypeUser             = "User"
	TypeValidationReview = "ValidationReview"
	TypeWorkflowResult   = "WorkflowResult"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	agent_type         *agent.AgentType
	phase_id           *string
	status             *agent.Status
	capabilities       *[]string
	appendcapabilities []string
	tags               *[]string
	appendtags         []string
	sandbox_id         *string
	last_heartbeat     *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Agent, error)
	predicates         []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentMutation) SetAgentType(at agent.AgentType) {
	m.agent_type = &at
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentMutation) AgentType() (r agent.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentType(ctx context.Context) (v agent.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *AgentMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *AgentMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPhaseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ClearPhaseID clears the value of the "phase_id" field.
func (m *AgentMutation) ClearPhaseID() {
	m.phase_id = nil
	m.clearedFields[agent.FieldPhaseID] = struct{}{}
}

// PhaseIDCleared returns if the "phase_id" field was cleared in this mutation.
func (m *AgentMutation) PhaseIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldPhaseID]
	return ok
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *AgentMutation) ResetPhaseID() {
	m.phase_id = nil
	delete(m.clearedFields, agent.FieldPhaseID)
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agent.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agent.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agent.FieldCapabilities)
}

// SetTags sets the "tags" field.
func (m *AgentMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *AgentMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *AgentMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *AgentMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *AgentMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[agent.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *AgentMutation) TagsCleared() bool {
	_, ok := m.clearedFields[agent.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *AgentMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, agent.FieldTags)
}

// SetSandboxID sets the "sandbox_id" field.
func (m *AgentMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *AgentMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSandboxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (m *AgentMutation) ClearSandboxID() {
	m.sandbox_id = nil
	m.clearedFields[agent.FieldSandboxID] = struct{}{}
}

// SandboxIDCleared returns if the "sandbox_id" field was cleared in this mutation.
func (m *AgentMutation) SandboxIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldSandboxID]
	return ok
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *AgentMutation) ResetSandboxID() {
	m.sandbox_id = nil
	delete(m.clearedFields, agent.FieldSandboxID)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *AgentMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *AgentMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastHeartbeat(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *AgentMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent_type != nil {
		fields = append(fields, agent.FieldAgentType)
	}
	if m.phase_id != nil {
		fields = append(fields, agent.FieldPhaseID)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.capabilities != nil {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.tags != nil {
		fields = append(fields, agent.FieldTags)
	}
	if m.sandbox_id != nil {
		fields = append(fields, agent.FieldSandboxID)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, agent.FieldLastHeartbeat)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentType:
		return m.AgentType()
	case agent.FieldPhaseID:
		return m.PhaseID()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCapabilities:
		return m.Capabilities()
	case agent.FieldTags:
		return m.Tags()
	case agent.FieldSandboxID:
		return m.SandboxID()
	case agent.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAgentType:
		return m.OldAgentType(ctx)
	case agent.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agent.FieldTags:
		return m.OldTags(ctx)
	case agent.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case agent.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentType:
		v, ok := value.(agent.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agent.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agent.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case agent.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case agent.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldPhaseID) {
		fields = append(fields, agent.FieldPhaseID)
	}
	if m.FieldCleared(agent.FieldCapabilities) {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.FieldCleared(agent.FieldTags) {
		fields = append(fields, agent.FieldTags)
	}
	if m.FieldCleared(agent.FieldSandboxID) {
		fields = append(fields, agent.FieldSandboxID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldPhaseID:
		m.ClearPhaseID()
		return nil
	case agent.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agent.FieldTags:
		m.ClearTags()
		return nil
	case agent.FieldSandboxID:
		m.ClearSandboxID()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agent.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agent.FieldTags:
		m.ResetTags()
		return nil
	case agent.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case agent.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentResultMutation represents an operation that mutates the AgentResult nodes in the graph.
type AgentResultMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_id         *string
	markdown_content *string
	summary          *string
	commit_sha       *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*AgentResult, error)
	predicates       []predicate.AgentResult
}

var _ ent.Mutation = (*AgentResultMutation)(nil)

// agentresultOption allows management of the mutation configuration using functional options.
type agentresultOption func(*AgentResultMutation)

// newAgentResultMutation creates new mutation for the AgentResult entity.
func newAgentResultMutation(c config, op Op, opts ...agentresultOption) *AgentResultMutation {
	m := &AgentResultMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentResultID sets the ID field of the mutation.
func withAgentResultID(id string) agentresultOption {
	return func(m *AgentResultMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentResult
		)
		m.oldValue = func(ctx context.Context) (*AgentResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentResult sets the old AgentResult of the mutation.
func withAgentResult(node *AgentResult) agentresultOption {
	return func(m *AgentResultMutation) {
		m.oldValue = func(context.Context) (*AgentResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentResult entities.
func (m *AgentResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AgentResultMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentResultMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AgentResult entity.
// If the AgentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentResultMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentResultMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentID sets the "agent_id" field.
func (m *AgentResultMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentResultMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentResult entity.
// If the AgentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentResultMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentResultMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetMarkdownContent sets the "markdown_content" field.
func (m *AgentResultMutation) SetMarkdownContent(s string) {
	m.markdown_content = &s
}

// MarkdownContent returns the value of the "markdown_content" field in the mutation.
func (m *AgentResultMutation) MarkdownContent() (r string, exists bool) {
	v := m.markdown_content
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdownContent returns the old "markdown_content" field's value of the AgentResult entity.
// If the AgentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentResultMutation) OldMarkdownContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdownContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdownContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdownContent: %w", err)
	}
	return oldValue.MarkdownContent, nil
}

// ResetMarkdownContent resets all changes to the "markdown_content" field.
func (m *AgentResultMutation) ResetMarkdownContent() {
	m.markdown_content = nil
}

// SetSummary sets the "summary" field.
func (m *AgentResultMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AgentResultMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the AgentResult entity.
// If the AgentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentResultMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *AgentResultMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[agentresult.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *AgentResultMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[agentresult.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *AgentResultMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, agentresult.FieldSummary)
}

// SetCommitSha sets the "commit_sha" field.
func (m *AgentResultMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *AgentResultMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the AgentResult entity.
// If the AgentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentResultMutation) OldCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *AgentResultMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[agentresult.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *AgentResultMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[agentresult.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *AgentResultMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, agentresult.FieldCommitSha)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentResult entity.
// If the AgentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AgentResultMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[agentresult.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AgentResultMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AgentResultMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AgentResultMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AgentResultMutation builder.
func (m *AgentResultMutation) Where(ps ...predicate.AgentResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentResult).
func (m *AgentResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentResultMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, agentresult.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, agentresult.FieldAgentID)
	}
	if m.markdown_content != nil {
		fields = append(fields, agentresult.FieldMarkdownContent)
	}
	if m.summary != nil {
		fields = append(fields, agentresult.FieldSummary)
	}
	if m.commit_sha != nil {
		fields = append(fields, agentresult.FieldCommitSha)
	}
	if m.created_at != nil {
		fields = append(fields, agentresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentresult.FieldTaskID:
		return m.TaskID()
	case agentresult.FieldAgentID:
		return m.AgentID()
	case agentresult.FieldMarkdownContent:
		return m.MarkdownContent()
	case agentresult.FieldSummary:
		return m.Summary()
	case agentresult.FieldCommitSha:
		return m.CommitSha()
	case agentresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case agentresult.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentresult.FieldMarkdownContent:
		return m.OldMarkdownContent(ctx)
	case agentresult.FieldSummary:
		return m.OldSummary(ctx)
	case agentresult.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case agentresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentresult.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agentresult.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentresult.FieldMarkdownContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdownContent(v)
		return nil
	case agentresult.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case agentresult.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case agentresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentresult.FieldSummary) {
		fields = append(fields, agentresult.FieldSummary)
	}
	if m.FieldCleared(agentresult.FieldCommitSha) {
		fields = append(fields, agentresult.FieldCommitSha)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentResultMutation) ClearField(name string) error {
	switch name {
	case agentresult.FieldSummary:
		m.ClearSummary()
		return nil
	case agentresult.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	}
	return fmt.Errorf("unknown AgentResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentResultMutation) ResetField(name string) error {
	switch name {
	case agentresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agentresult.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentresult.FieldMarkdownContent:
		m.ResetMarkdownContent()
		return nil
	case agentresult.FieldSummary:
		m.ResetSummary()
		return nil
	case agentresult.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case agentresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, agentresult.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentresult.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, agentresult.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentResultMutation) EdgeCleared(name string) bool {
	switch name {
	case agentresult.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentResultMutation) ClearEdge(name string) error {
	switch name {
	case agentresult.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown AgentResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentResultMutation) ResetEdge(name string) error {
	switch name {
	case agentresult.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown AgentResult edge %s", name)
}

// DiagnosticRunMutation represents an operation that mutates the DiagnosticRun nodes in the graph.
type DiagnosticRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	trigger                 *string
	triggered_at            *time.Time
	completed_at            *time.Time
	total_tasks             *int
	addtotal_tasks          *int
	completed_tasks         *int
	addcompleted_tasks      *int
	failed_tasks            *int
	addfailed_tasks         *int
	phases_analyzed         *[]string
	appendphases_analyzed   []string
	agents_reviewed         *[]string
	appendagents_reviewed   []string
	diagnosis               *string
	tasks_created_count     *int
	addtasks_created_count  *int
	tasks_created_ids       *[]string
	appendtasks_created_ids []string
	status                  *diagnosticrun.Status
	error_message           *string
	clearedFields           map[string]struct{}
	ticket                  *string
	clearedticket           bool
	done                    bool
	oldValue                func(context.Context) (*DiagnosticRun, error)
	predicates              []predicate.DiagnosticRun
}

var _ ent.Mutation = (*DiagnosticRunMutation)(nil)

// diagnosticrunOption allows management of the mutation configuration using functional options.
type diagnosticrunOption func(*DiagnosticRunMutation)

// newDiagnosticRunMutation creates new mutation for the DiagnosticRun entity.
func newDiagnosticRunMutation(c config, op Op, opts ...diagnosticrunOption) *DiagnosticRunMutation {
	m := &DiagnosticRunMutation{
		config:        c,
		op:            op,
		typ:           TypeDiagnosticRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiagnosticRunID sets the ID field of the mutation.
func withDiagnosticRunID(id string) diagnosticrunOption {
	return func(m *DiagnosticRunMutation) {
		var (
			err   error
			once  sync.Once
			value *DiagnosticRun
		)
		m.oldValue = func(ctx context.Context) (*DiagnosticRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DiagnosticRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiagnosticRun sets the old DiagnosticRun of the mutation.
func withDiagnosticRun(node *DiagnosticRun) diagnosticrunOption {
	return func(m *DiagnosticRunMutation) {
		m.oldValue = func(context.Context) (*DiagnosticRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiagnosticRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiagnosticRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DiagnosticRun entities.
func (m *DiagnosticRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiagnosticRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiagnosticRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DiagnosticRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *DiagnosticRunMutation) SetWorkflowID(s string) {
	m.ticket = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *DiagnosticRunMutation) WorkflowID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *DiagnosticRunMutation) ResetWorkflowID() {
	m.ticket = nil
}

// SetTrigger sets the "trigger" field.
func (m *DiagnosticRunMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *DiagnosticRunMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *DiagnosticRunMutation) ResetTrigger() {
	m.trigger = nil
}

// SetTriggeredAt sets the "triggered_at" field.
func (m *DiagnosticRunMutation) SetTriggeredAt(t time.Time) {
	m.triggered_at = &t
}

// TriggeredAt returns the value of the "triggered_at" field in the mutation.
func (m *DiagnosticRunMutation) TriggeredAt() (r time.Time, exists bool) {
	v := m.triggered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredAt returns the old "triggered_at" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTriggeredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredAt: %w", err)
	}
	return oldValue.TriggeredAt, nil
}

// ResetTriggeredAt resets all changes to the "triggered_at" field.
func (m *DiagnosticRunMutation) ResetTriggeredAt() {
	m.triggered_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DiagnosticRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DiagnosticRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DiagnosticRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[diagnosticrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DiagnosticRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DiagnosticRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, diagnosticrun.FieldCompletedAt)
}

// SetTotalTasks sets the "total_tasks" field.
func (m *DiagnosticRunMutation) SetTotalTasks(i int) {
	m.total_tasks = &i
	m.addtotal_tasks = nil
}

// TotalTasks returns the value of the "total_tasks" field in the mutation.
func (m *DiagnosticRunMutation) TotalTasks() (r int, exists bool) {
	v := m.total_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTasks returns the old "total_tasks" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTotalTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTasks: %w", err)
	}
	return oldValue.TotalTasks, nil
}

// AddTotalTasks adds i to the "total_tasks" field.
func (m *DiagnosticRunMutation) AddTotalTasks(i int) {
	if m.addtotal_tasks != nil {
		*m.addtotal_tasks += i
	} else {
		m.addtotal_tasks = &i
	}
}

// AddedTotalTasks returns the value that was added to the "total_tasks" field in this mutation.
func (m *DiagnosticRunMutation) AddedTotalTasks() (r int, exists bool) {
	v := m.addtotal_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTasks resets all changes to the "total_tasks" field.
func (m *DiagnosticRunMutation) ResetTotalTasks() {
	m.total_tasks = nil
	m.addtotal_tasks = nil
}

// SetCompletedTasks sets the "completed_tasks" field.
func (m *DiagnosticRunMutation) SetCompletedTasks(i int) {
	m.completed_tasks = &i
	m.addcompleted_tasks = nil
}

// CompletedTasks returns the value of the "completed_tasks" field in the mutation.
func (m *DiagnosticRunMutation) CompletedTasks() (r int, exists bool) {
	v := m.completed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedTasks returns the old "completed_tasks" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldCompletedTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedTasks: %w", err)
	}
	return oldValue.CompletedTasks, nil
}

// AddCompletedTasks adds i to the "completed_tasks" field.
func (m *DiagnosticRunMutation) AddCompletedTasks(i int) {
	if m.addcompleted_tasks != nil {
		*m.addcompleted_tasks += i
	} else {
		m.addcompleted_tasks = &i
	}
}

// AddedCompletedTasks returns the value that was added to the "completed_tasks" field in this mutation.
func (m *DiagnosticRunMutation) AddedCompletedTasks() (r int, exists bool) {
	v := m.addcompleted_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedTasks resets all changes to the "completed_tasks" field.
func (m *DiagnosticRunMutation) ResetCompletedTasks() {
	m.completed_tasks = nil
	m.addcompleted_tasks = nil
}

// SetFailedTasks sets the "failed_tasks" field.
func (m *DiagnosticRunMutation) SetFailedTasks(i int) {
	m.failed_tasks = &i
	m.addfailed_tasks = nil
}

// FailedTasks returns the value of the "failed_tasks" field in the mutation.
func (m *DiagnosticRunMutation) FailedTasks() (r int, exists bool) {
	v := m.failed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedTasks returns the old "failed_tasks" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldFailedTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedTasks: %w", err)
	}
	return oldValue.FailedTasks, nil
}

// AddFailedTasks adds i to the "failed_tasks" field.
func (m *DiagnosticRunMutation) AddFailedTasks(i int) {
	if m.addfailed_tasks != nil {
		*m.addfailed_tasks += i
	} else {
		m.addfailed_tasks = &i
	}
}

// AddedFailedTasks returns the value that was added to the "failed_tasks" field in this mutation.
func (m *DiagnosticRunMutation) AddedFailedTasks() (r int, exists bool) {
	v := m.addfailed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedTasks resets all changes to the "failed_tasks" field.
func (m *DiagnosticRunMutation) ResetFailedTasks() {
	m.failed_tasks = nil
	m.addfailed_tasks = nil
}

// SetPhasesAnalyzed sets the "phases_analyzed" field.
func (m *DiagnosticRunMutation) SetPhasesAnalyzed(s []string) {
	m.phases_analyzed = &s
	m.appendphases_analyzed = nil
}

// PhasesAnalyzed returns the value of the "phases_analyzed" field in the mutation.
func (m *DiagnosticRunMutation) PhasesAnalyzed() (r []string, exists bool) {
	v := m.phases_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldPhasesAnalyzed returns the old "phases_analyzed" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldPhasesAnalyzed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhasesAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhasesAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhasesAnalyzed: %w", err)
	}
	return oldValue.PhasesAnalyzed, nil
}

// AppendPhasesAnalyzed adds s to the "phases_analyzed" field.
func (m *DiagnosticRunMutation) AppendPhasesAnalyzed(s []string) {
	m.appendphases_analyzed = append(m.appendphases_analyzed, s...)
}

// AppendedPhasesAnalyzed returns the list of values that were appended to the "phases_analyzed" field in this mutation.
func (m *DiagnosticRunMutation) AppendedPhasesAnalyzed() ([]string, bool) {
	if len(m.appendphases_analyzed) == 0 {
		return nil, false
	}
	return m.appendphases_analyzed, true
}

// ClearPhasesAnalyzed clears the value of the "phases_analyzed" field.
func (m *DiagnosticRunMutation) ClearPhasesAnalyzed() {
	m.phases_analyzed = nil
	m.appendphases_analyzed = nil
	m.clearedFields[diagnosticrun.FieldPhasesAnalyzed] = struct{}{}
}

// PhasesAnalyzedCleared returns if the "phases_analyzed" field was cleared in this mutation.
func (m *DiagnosticRunMutation) PhasesAnalyzedCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldPhasesAnalyzed]
	return ok
}

// ResetPhasesAnalyzed resets all changes to the "phases_analyzed" field.
func (m *DiagnosticRunMutation) ResetPhasesAnalyzed() {
	m.phases_analyzed = nil
	m.appendphases_analyzed = nil
	delete(m.clearedFields, diagnosticrun.FieldPhasesAnalyzed)
}

// SetAgentsReviewed sets the "agents_reviewed" field.
func (m *DiagnosticRunMutation) SetAgentsReviewed(s []string) {
	m.agents_reviewed = &s
	m.appendagents_reviewed = nil
}

// AgentsReviewed returns the value of the "agents_reviewed" field in the mutation.
func (m *DiagnosticRunMutation) AgentsReviewed() (r []string, exists bool) {
	v := m.agents_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentsReviewed returns the old "agents_reviewed" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldAgentsReviewed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentsReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentsReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentsReviewed: %w", err)
	}
	return oldValue.AgentsReviewed, nil
}

// AppendAgentsReviewed adds s to the "agents_reviewed" field.
func (m *DiagnosticRunMutation) AppendAgentsReviewed(s []string) {
	m.appendagents_reviewed = append(m.appendagents_reviewed, s...)
}

// AppendedAgentsReviewed returns the list of values that were appended to the "agents_reviewed" field in this mutation.
func (m *DiagnosticRunMutation) AppendedAgentsReviewed() ([]string, bool) {
	if len(m.appendagents_reviewed) == 0 {
		return nil, false
	}
	return m.appendagents_reviewed, true
}

// ClearAgentsReviewed clears the value of the "agents_reviewed" field.
func (m *DiagnosticRunMutation) ClearAgentsReviewed() {
	m.agents_reviewed = nil
	m.appendagents_reviewed = nil
	m.clearedFields[diagnosticrun.FieldAgentsReviewed] = struct{}{}
}

// AgentsReviewedCleared returns if the "agents_reviewed" field was cleared in this mutation.
func (m *DiagnosticRunMutation) AgentsReviewedCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldAgentsReviewed]
	return ok
}

// ResetAgentsReviewed resets all changes to the "agents_reviewed" field.
func (m *DiagnosticRunMutation) ResetAgentsReviewed() {
	m.agents_reviewed = nil
	m.appendagents_reviewed = nil
	delete(m.clearedFields, diagnosticrun.FieldAgentsReviewed)
}

// SetDiagnosis sets the "diagnosis" field.
func (m *DiagnosticRunMutation) SetDiagnosis(s string) {
	m.diagnosis = &s
}

// Diagnosis returns the value of the "diagnosis" field in the mutation.
func (m *DiagnosticRunMutation) Diagnosis() (r string, exists bool) {
	v := m.diagnosis
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosis returns the old "diagnosis" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldDiagnosis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosis: %w", err)
	}
	return oldValue.Diagnosis, nil
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (m *DiagnosticRunMutation) ClearDiagnosis() {
	m.diagnosis = nil
	m.clearedFields[diagnosticrun.FieldDiagnosis] = struct{}{}
}

// DiagnosisCleared returns if the "diagnosis" field was cleared in this mutation.
func (m *DiagnosticRunMutation) DiagnosisCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldDiagnosis]
	return ok
}

// ResetDiagnosis resets all changes to the "diagnosis" field.
func (m *DiagnosticRunMutation) ResetDiagnosis() {
	m.diagnosis = nil
	delete(m.clearedFields, diagnosticrun.FieldDiagnosis)
}

// SetTasksCreatedCount sets the "tasks_created_count" field.
func (m *DiagnosticRunMutation) SetTasksCreatedCount(i int) {
	m.tasks_created_count = &i
	m.addtasks_created_count = nil
}

// TasksCreatedCount returns the value of the "tasks_created_count" field in the mutation.
func (m *DiagnosticRunMutation) TasksCreatedCount() (r int, exists bool) {
	v := m.tasks_created_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCreatedCount returns the old "tasks_created_count" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTasksCreatedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCreatedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCreatedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCreatedCount: %w", err)
	}
	return oldValue.TasksCreatedCount, nil
}

// AddTasksCreatedCount adds i to the "tasks_created_count" field.
func (m *DiagnosticRunMutation) AddTasksCreatedCount(i int) {
	if m.addtasks_created_count != nil {
		*m.addtasks_created_count += i
	} else {
		m.addtasks_created_count = &i
	}
}

// AddedTasksCreatedCount returns the value that was added to the "tasks_created_count" field in this mutation.
func (m *DiagnosticRunMutation) AddedTasksCreatedCount() (r int, exists bool) {
	v := m.addtasks_created_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCreatedCount resets all changes to the "tasks_created_count" field.
func (m *DiagnosticRunMutation) ResetTasksCreatedCount() {
	m.tasks_created_count = nil
	m.addtasks_created_count = nil
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) SetTasksCreatedIds(s []string) {
	m.tasks_created_ids = &s
	m.appendtasks_created_ids = nil
}

// TasksCreatedIds returns the value of the "tasks_created_ids" field in the mutation.
func (m *DiagnosticRunMutation) TasksCreatedIds() (r []string, exists bool) {
	v := m.tasks_created_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCreatedIds returns the old "tasks_created_ids" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTasksCreatedIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCreatedIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCreatedIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCreatedIds: %w", err)
	}
	return oldValue.TasksCreatedIds, nil
}

// AppendTasksCreatedIds adds s to the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) AppendTasksCreatedIds(s []string) {
	m.appendtasks_created_ids = append(m.appendtasks_created_ids, s...)
}

// AppendedTasksCreatedIds returns the list of values that were appended to the "tasks_created_ids" field in this mutation.
func (m *DiagnosticRunMutation) AppendedTasksCreatedIds() ([]string, bool) {
	if len(m.appendtasks_created_ids) == 0 {
		return nil, false
	}
	return m.appendtasks_created_ids, true
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) ClearTasksCreatedIds() {
	m.tasks_created_ids = nil
	m.appendtasks_created_ids = nil
	m.clearedFields[diagnosticrun.FieldTasksCreatedIds] = struct{}{}
}

// TasksCreatedIdsCleared returns if the "tasks_created_ids" field was cleared in this mutation.
func (m *DiagnosticRunMutation) TasksCreatedIdsCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldTasksCreatedIds]
	return ok
}

// ResetTasksCreatedIds resets all changes to the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) ResetTasksCreatedIds() {
	m.tasks_created_ids = nil
	m.appendtasks_created_ids = nil
	delete(m.clearedFields, diagnosticrun.FieldTasksCreatedIds)
}

// SetStatus sets the "status" field.
func (m *DiagnosticRunMutation) SetStatus(d diagnosticrun.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DiagnosticRunMutation) Status() (r diagnosticrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldStatus(ctx context.Context) (v diagnosticrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DiagnosticRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DiagnosticRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DiagnosticRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DiagnosticRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[diagnosticrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DiagnosticRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DiagnosticRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, diagnosticrun.FieldErrorMessage)
}

// SetTicketID sets the "ticket" edge to the Ticket entity by id.
func (m *DiagnosticRunMutation) SetTicketID(id string) {
	m.ticket = &id
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *DiagnosticRunMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[diagnosticrun.FieldWorkflowID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *DiagnosticRunMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketID returns the "ticket" edge ID in the mutation.
func (m *DiagnosticRunMutation) TicketID() (id string, exists bool) {
	if m.ticket != nil {
		return *m.ticket, true
	}
	return
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *DiagnosticRunMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *DiagnosticRunMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the DiagnosticRunMutation builder.
func (m *DiagnosticRunMutation) Where(ps ...predicate.DiagnosticRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiagnosticRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiagnosticRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DiagnosticRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiagnosticRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiagnosticRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DiagnosticRun).
func (m *DiagnosticRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiagnosticRunMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.ticket != nil {
		fields = append(fields, diagnosticrun.FieldWorkflowID)
	}
	if m.trigger != nil {
		fields = append(fields, diagnosticrun.FieldTrigger)
	}
	if m.triggered_at != nil {
		fields = append(fields, diagnosticrun.FieldTriggeredAt)
	}
	if m.completed_at != nil {
		fields = append(fields, diagnosticrun.FieldCompletedAt)
	}
	if m.total_tasks != nil {
		fields = append(fields, diagnosticrun.FieldTotalTasks)
	}
	if m.completed_tasks != nil {
		fields = append(fields, diagnosticrun.FieldCompletedTasks)
	}
	if m.failed_tasks != nil {
		fields = append(fields, diagnosticrun.FieldFailedTasks)
	}
	if m.phases_analyzed != nil {
		fields = append(fields, diagnosticrun.FieldPhasesAnalyzed)
	}
	if m.agents_reviewed != nil {
		fields = append(fields, diagnosticrun.FieldAgentsReviewed)
	}
	if m.diagnosis != nil {
		fields = append(fields, diagnosticrun.FieldDiagnosis)
	}
	if m.tasks_created_count != nil {
		fields = append(fields, diagnosticrun.FieldTasksCreatedCount)
	}
	if m.tasks_created_ids != nil {
		fields = append(fields, diagnosticrun.FieldTasksCreatedIds)
	}
	if m.status != nil {
		fields = append(fields, diagnosticrun.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, diagnosticrun.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiagnosticRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		return m.WorkflowID()
	case diagnosticrun.FieldTrigger:
		return m.Trigger()
	case diagnosticrun.FieldTriggeredAt:
		return m.TriggeredAt()
	case diagnosticrun.FieldCompletedAt:
		return m.CompletedAt()
	case diagnosticrun.FieldTotalTasks:
		return m.TotalTasks()
	case diagnosticrun.FieldCompletedTasks:
		return m.CompletedTasks()
	case diagnosticrun.FieldFailedTasks:
		return m.FailedTasks()
	case diagnosticrun.FieldPhasesAnalyzed:
		return m.PhasesAnalyzed()
	case diagnosticrun.FieldAgentsReviewed:
		return m.AgentsReviewed()
	case diagnosticrun.FieldDiagnosis:
		return m.Diagnosis()
	case diagnosticrun.FieldTasksCreatedCount:
		return m.TasksCreatedCount()
	case diagnosticrun.FieldTasksCreatedIds:
		return m.TasksCreatedIds()
	case diagnosticrun.FieldStatus:
		return m.Status()
	case diagnosticrun.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiagnosticRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case diagnosticrun.FieldTrigger:
		return m.OldTrigger(ctx)
	case diagnosticrun.FieldTriggeredAt:
		return m.OldTriggeredAt(ctx)
	case diagnosticrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case diagnosticrun.FieldTotalTasks:
		return m.OldTotalTasks(ctx)
	case diagnosticrun.FieldCompletedTasks:
		return m.OldCompletedTasks(ctx)
	case diagnosticrun.FieldFailedTasks:
		return m.OldFailedTasks(ctx)
	case diagnosticrun.FieldPhasesAnalyzed:
		return m.OldPhasesAnalyzed(ctx)
	case diagnosticrun.FieldAgentsReviewed:
		return m.OldAgentsReviewed(ctx)
	case diagnosticrun.FieldDiagnosis:
		return m.OldDiagnosis(ctx)
	case diagnosticrun.FieldTasksCreatedCount:
		return m.OldTasksCreatedCount(ctx)
	case diagnosticrun.FieldTasksCreatedIds:
		return m.OldTasksCreatedIds(ctx)
	case diagnosticrun.FieldStatus:
		return m.OldStatus(ctx)
	case diagnosticrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown DiagnosticRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosticRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case diagnosticrun.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case diagnosticrun.FieldTriggeredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredAt(v)
		return nil
	case diagnosticrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case diagnosticrun.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTasks(v)
		return nil
	case diagnosticrun.FieldCompletedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedTasks(v)
		return nil
	case diagnosticrun.FieldFailedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedTasks(v)
		return nil
	case diagnosticrun.FieldPhasesAnalyzed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhasesAnalyzed(v)
		return nil
	case diagnosticrun.FieldAgentsReviewed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentsReviewed(v)
		return nil
	case diagnosticrun.FieldDiagnosis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosis(v)
		return nil
	case diagnosticrun.FieldTasksCreatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCreatedCount(v)
		return nil
	case diagnosticrun.FieldTasksCreatedIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCreatedIds(v)
		return nil
	case diagnosticrun.FieldStatus:
		v, ok := value.(diagnosticrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case diagnosticrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiagnosticRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_tasks != nil {
		fields = append(fields, diagnosticrun.FieldTotalTasks)
	}
	if m.addcompleted_tasks != nil {
		fields = append(fields, diagnosticrun.FieldCompletedTasks)
	}
	if m.addfailed_tasks != nil {
		fields = append(fields, diagnosticrun.FieldFailedTasks)
	}
	if m.addtasks_created_count != nil {
		fields = append(fields, diagnosticrun.FieldTasksCreatedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiagnosticRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case diagnosticrun.FieldTotalTasks:
		return m.AddedTotalTasks()
	case diagnosticrun.FieldCompletedTasks:
		return m.AddedCompletedTasks()
	case diagnosticrun.FieldFailedTasks:
		return m.AddedFailedTasks()
	case diagnosticrun.FieldTasksCreatedCount:
		return m.AddedTasksCreatedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosticRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case diagnosticrun.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTasks(v)
		return nil
	case diagnosticrun.FieldCompletedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedTasks(v)
		return nil
	case diagnosticrun.FieldFailedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedTasks(v)
		return nil
	case diagnosticrun.FieldTasksCreatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCreatedCount(v)
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiagnosticRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(diagnosticrun.FieldCompletedAt) {
		fields = append(fields, diagnosticrun.FieldCompletedAt)
	}
	if m.FieldCleared(diagnosticrun.FieldPhasesAnalyzed) {
		fields = append(fields, diagnosticrun.FieldPhasesAnalyzed)
	}
	if m.FieldCleared(diagnosticrun.FieldAgentsReviewed) {
		fields = append(fields, diagnosticrun.FieldAgentsReviewed)
	}
	if m.FieldCleared(diagnosticrun.FieldDiagnosis) {
		fields = append(fields, diagnosticrun.FieldDiagnosis)
	}
	if m.FieldCleared(diagnosticrun.FieldTasksCreatedIds) {
		fields = append(fields, diagnosticrun.FieldTasksCreatedIds)
	}
	if m.FieldCleared(diagnosticrun.FieldErrorMessage) {
		fields = append(fields, diagnosticrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiagnosticRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiagnosticRunMutation) ClearField(name string) error {
	switch name {
	case diagnosticrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case diagnosticrun.FieldPhasesAnalyzed:
		m.ClearPhasesAnalyzed()
		return nil
	case diagnosticrun.FieldAgentsReviewed:
		m.ClearAgentsReviewed()
		return nil
	case diagnosticrun.FieldDiagnosis:
		m.ClearDiagnosis()
		return nil
	case diagnosticrun.FieldTasksCreatedIds:
		m.ClearTasksCreatedIds()
		return nil
	case diagnosticrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiagnosticRunMutation) ResetField(name string) error {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case diagnosticrun.FieldTrigger:
		m.ResetTrigger()
		return nil
	case diagnosticrun.FieldTriggeredAt:
		m.ResetTriggeredAt()
		return nil
	case diagnosticrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case diagnosticrun.FieldTotalTasks:
		m.ResetTotalTasks()
		return nil
	case diagnosticrun.FieldCompletedTasks:
		m.ResetCompletedTasks()
		return nil
	case diagnosticrun.FieldFailedTasks:
		m.ResetFailedTasks()
		return nil
	case diagnosticrun.FieldPhasesAnalyzed:
		m.ResetPhasesAnalyzed()
		return nil
	case diagnosticrun.FieldAgentsReviewed:
		m.ResetAgentsReviewed()
		return nil
	case diagnosticrun.FieldDiagnosis:
		m.ResetDiagnosis()
		return nil
	case diagnosticrun.FieldTasksCreatedCount:
		m.ResetTasksCreatedCount()
		return nil
	case diagnosticrun.FieldTasksCreatedIds:
		m.ResetTasksCreatedIds()
		return nil
	case diagnosticrun.FieldStatus:
		m.ResetStatus()
		return nil
	case diagnosticrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiagnosticRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, diagnosticrun.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiagnosticRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case diagnosticrun.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiagnosticRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiagnosticRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiagnosticRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, diagnosticrun.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiagnosticRunMutation) EdgeCleared(name string) bool {
	switch name {
	case diagnosticrun.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiagnosticRunMutation) ClearEdge(name string) error {
	switch name {
	case diagnosticrun.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiagnosticRunMutation) ResetEdge(name string) error {
	switch name {
	case diagnosticrun.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_type    *string
	entity_type   *string
	entity_id     *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EventMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EventMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EventMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EventMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EventMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EventMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.entity_type != nil {
		fields = append(fields, event.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, event.FieldEntityID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventType:
		return m.EventType()
	case event.FieldEntityType:
		return m.EntityType()
	case event.FieldEntityID:
		return m.EntityID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldEntityType:
		return m.OldEntityType(ctx)
	case event.FieldEntityID:
		return m.OldEntityID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case event.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldEntityType:
		m.ResetEntityType()
		return nil
	case event.FieldEntityID:
		m.ResetEntityID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// LearnedPatternMutation represents an operation that mutates the LearnedPattern nodes in the graph.
type LearnedPatternMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	pattern_type             *learnedpattern.PatternType
	task_type_pattern        *string
	success_indicators       *[]string
	appendsuccess_indicators []string
	failure_indicators       *[]string
	appendfailure_indicators []string
	confidence_score         *float64
	addconfidence_score      *float64
	usage_count              *int
	addusage_count           *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*LearnedPattern, error)
	predicates               []predicate.LearnedPattern
}

var _ ent.Mutation = (*LearnedPatternMutation)(nil)

// learnedpatternOption allows management of the mutation configuration using functional options.
type learnedpatternOption func(*LearnedPatternMutation)

// newLearnedPatternMutation creates new mutation for the LearnedPattern entity.
func newLearnedPatternMutation(c config, op Op, opts ...learnedpatternOption) *LearnedPatternMutation {
	m := &LearnedPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnedPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnedPatternID sets the ID field of the mutation.
func withLearnedPatternID(id string) learnedpatternOption {
	return func(m *LearnedPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnedPattern
		)
		m.oldValue = func(ctx context.Context) (*LearnedPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnedPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnedPattern sets the old LearnedPattern of the mutation.
func withLearnedPattern(node *LearnedPattern) learnedpatternOption {
	return func(m *LearnedPatternMutation) {
		m.oldValue = func(context.Context) (*LearnedPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnedPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnedPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearnedPattern entities.
func (m *LearnedPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnedPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnedPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnedPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternType sets the "pattern_type" field.
func (m *LearnedPatternMutation) SetPatternType(lt learnedpattern.PatternType) {
	m.pattern_type = &lt
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *LearnedPatternMutation) PatternType() (r learnedpattern.PatternType, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldPatternType(ctx context.Context) (v learnedpattern.PatternType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *LearnedPatternMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetTaskTypePattern sets the "task_type_pattern" field.
func (m *LearnedPatternMutation) SetTaskTypePattern(s string) {
	m.task_type_pattern = &s
}

// TaskTypePattern returns the value of the "task_type_pattern" field in the mutation.
func (m *LearnedPatternMutation) TaskTypePattern() (r string, exists bool) {
	v := m.task_type_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskTypePattern returns the old "task_type_pattern" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldTaskTypePattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskTypePattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskTypePattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskTypePattern: %w", err)
	}
	return oldValue.TaskTypePattern, nil
}

// ResetTaskTypePattern resets all changes to the "task_type_pattern" field.
func (m *LearnedPatternMutation) ResetTaskTypePattern() {
	m.task_type_pattern = nil
}

// SetSuccessIndicators sets the "success_indicators" field.
func (m *LearnedPatternMutation) SetSuccessIndicators(s []string) {
	m.success_indicators = &s
	m.appendsuccess_indicators = nil
}

// SuccessIndicators returns the value of the "success_indicators" field in the mutation.
func (m *LearnedPatternMutation) SuccessIndicators() (r []string, exists bool) {
	v := m.success_indicators
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessIndicators returns the old "success_indicators" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldSuccessIndicators(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessIndicators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessIndicators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessIndicators: %w", err)
	}
	return oldValue.SuccessIndicators, nil
}

// AppendSuccessIndicators adds s to the "success_indicators" field.
func (m *LearnedPatternMutation) AppendSuccessIndicators(s []string) {
	m.appendsuccess_indicators = append(m.appendsuccess_indicators, s...)
}

// AppendedSuccessIndicators returns the list of values that were appended to the "success_indicators" field in this mutation.
func (m *LearnedPatternMutation) AppendedSuccessIndicators() ([]string, bool) {
	if len(m.appendsuccess_indicators) == 0 {
		return nil, false
	}
	return m.appendsuccess_indicators, true
}

// ClearSuccessIndicators clears the value of the "success_indicators" field.
func (m *LearnedPatternMutation) ClearSuccessIndicators() {
	m.success_indicators = nil
	m.appendsuccess_indicators = nil
	m.clearedFields[learnedpattern.FieldSuccessIndicators] = struct{}{}
}

// SuccessIndicatorsCleared returns if the "success_indicators" field was cleared in this mutation.
func (m *LearnedPatternMutation) SuccessIndicatorsCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldSuccessIndicators]
	return ok
}

// ResetSuccessIndicators resets all changes to the "success_indicators" field.
func (m *LearnedPatternMutation) ResetSuccessIndicators() {
	m.success_indicators = nil
	m.appendsuccess_indicators = nil
	delete(m.clearedFields, learnedpattern.FieldSuccessIndicators)
}

// SetFailureIndicators sets the "failure_indicators" field.
func (m *LearnedPatternMutation) SetFailureIndicators(s []string) {
	m.failure_indicators = &s
	m.appendfailure_indicators = nil
}

// FailureIndicators returns the value of the "failure_indicators" field in the mutation.
func (m *LearnedPatternMutation) FailureIndicators() (r []string, exists bool) {
	v := m.failure_indicators
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureIndicators returns the old "failure_indicators" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldFailureIndicators(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureIndicators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureIndicators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureIndicators: %w", err)
	}
	return oldValue.FailureIndicators, nil
}

// AppendFailureIndicators adds s to the "failure_indicators" field.
func (m *LearnedPatternMutation) AppendFailureIndicators(s []string) {
	m.appendfailure_indicators = append(m.appendfailure_indicators, s...)
}

// AppendedFailureIndicators returns the list of values that were appended to the "failure_indicators" field in this mutation.
func (m *LearnedPatternMutation) AppendedFailureIndicators() ([]string, bool) {
	if len(m.appendfailure_indicators) == 0 {
		return nil, false
	}
	return m.appendfailure_indicators, true
}

// ClearFailureIndicators clears the value of the "failure_indicators" field.
func (m *LearnedPatternMutation) ClearFailureIndicators() {
	m.failure_indicators = nil
	m.appendfailure_indicators = nil
	m.clearedFields[learnedpattern.FieldFailureIndicators] = struct{}{}
}

// FailureIndicatorsCleared returns if the "failure_indicators" field was cleared in this mutation.
func (m *LearnedPatternMutation) FailureIndicatorsCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldFailureIndicators]
	return ok
}

// ResetFailureIndicators resets all changes to the "failure_indicators" field.
func (m *LearnedPatternMutation) ResetFailureIndicators() {
	m.failure_indicators = nil
	m.appendfailure_indicators = nil
	delete(m.clearedFields, learnedpattern.FieldFailureIndicators)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *LearnedPatternMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *LearnedPatternMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *LearnedPatternMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *LearnedPatternMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *LearnedPatternMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *LearnedPatternMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *LearnedPatternMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *LearnedPatternMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *LearnedPatternMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *LearnedPatternMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnedPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnedPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnedPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnedPatternMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnedPatternMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnedPatternMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnedPatternMutation builder.
func (m *LearnedPatternMutation) Where(ps ...predicate.LearnedPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnedPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnedPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnedPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnedPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnedPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnedPattern).
func (m *LearnedPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnedPatternMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.pattern_type != nil {
		fields = append(fields, learnedpattern.FieldPatternType)
	}
	if m.task_type_pattern != nil {
		fields = append(fields, learnedpattern.FieldTaskTypePattern)
	}
	if m.success_indicators != nil {
		fields = append(fields, learnedpattern.FieldSuccessIndicators)
	}
	if m.failure_indicators != nil {
		fields = append(fields, learnedpattern.FieldFailureIndicators)
	}
	if m.confidence_score != nil {
		fields = append(fields, learnedpattern.FieldConfidenceScore)
	}
	if m.usage_count != nil {
		fields = append(fields, learnedpattern.FieldUsageCount)
	}
	if m.created_at != nil {
		fields = append(fields, learnedpattern.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learnedpattern.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnedPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnedpattern.FieldPatternType:
		return m.PatternType()
	case learnedpattern.FieldTaskTypePattern:
		return m.TaskTypePattern()
	case learnedpattern.FieldSuccessIndicators:
		return m.SuccessIndicators()
	case learnedpattern.FieldFailureIndicators:
		return m.FailureIndicators()
	case learnedpattern.FieldConfidenceScore:
		return m.ConfidenceScore()
	case learnedpattern.FieldUsageCount:
		return m.UsageCount()
	case learnedpattern.FieldCreatedAt:
		return m.CreatedAt()
	case learnedpattern.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnedPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnedpattern.FieldPatternType:
		return m.OldPatternType(ctx)
	case learnedpattern.FieldTaskTypePattern:
		return m.OldTaskTypePattern(ctx)
	case learnedpattern.FieldSuccessIndicators:
		return m.OldSuccessIndicators(ctx)
	case learnedpattern.FieldFailureIndicators:
		return m.OldFailureIndicators(ctx)
	case learnedpattern.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case learnedpattern.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case learnedpattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learnedpattern.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnedPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnedPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnedpattern.FieldPatternType:
		v, ok := value.(learnedpattern.PatternType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case learnedpattern.FieldTaskTypePattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskTypePattern(v)
		return nil
	case learnedpattern.FieldSuccessIndicators:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessIndicators(v)
		return nil
	case learnedpattern.FieldFailureIndicators:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureIndicators(v)
		return nil
	case learnedpattern.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case learnedpattern.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case learnedpattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learnedpattern.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnedPatternMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, learnedpattern.FieldConfidenceScore)
	}
	if m.addusage_count != nil {
		fields = append(fields, learnedpattern.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnedPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnedpattern.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case learnedpattern.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnedPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnedpattern.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case learnedpattern.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnedPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnedpattern.FieldSuccessIndicators) {
		fields = append(fields, learnedpattern.FieldSuccessIndicators)
	}
	if m.FieldCleared(learnedpattern.FieldFailureIndicators) {
		fields = append(fields, learnedpattern.FieldFailureIndicators)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnedPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnedPatternMutation) ClearField(name string) error {
	switch name {
	case learnedpattern.FieldSuccessIndicators:
		m.ClearSuccessIndicators()
		return nil
	case learnedpattern.FieldFailureIndicators:
		m.ClearFailureIndicators()
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnedPatternMutation) ResetField(name string) error {
	switch name {
	case learnedpattern.FieldPatternType:
		m.ResetPatternType()
		return nil
	case learnedpattern.FieldTaskTypePattern:
		m.ResetTaskTypePattern()
		return nil
	case learnedpattern.FieldSuccessIndicators:
		m.ResetSuccessIndicators()
		return nil
	case learnedpattern.FieldFailureIndicators:
		m.ResetFailureIndicators()
		return nil
	case learnedpattern.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case learnedpattern.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case learnedpattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learnedpattern.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnedPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnedPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnedPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnedPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnedPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnedPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnedPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnedPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnedPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnedPattern edge %s", name)
}

// MonitorAnomalyMutation represents an operation that mutates the MonitorAnomaly nodes in the graph.
type MonitorAnomalyMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	metric_name        *string
	observed           *float64
	addobserved        *float64
	baseline_mean      *float64
	addbaseline_mean   *float64
	baseline_stddev    *float64
	addbaseline_stddev *float64
	zscore             *float64
	addzscore          *float64
	severity           *monitoranomaly.Severity
	entity_type        *string
	entity_id          *string
	detected_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*MonitorAnomaly, error)
	predicates         []predicate.MonitorAnomaly
}

var _ ent.Mutation = (*MonitorAnomalyMutation)(nil)

// monitoranomalyOption allows management of the mutation configuration using functional options.
type monitoranomalyOption func(*MonitorAnomalyMutation)

// newMonitorAnomalyMutation creates new mutation for the MonitorAnomaly entity.
func newMonitorAnomalyMutation(c config, op Op, opts ...monitoranomalyOption) *MonitorAnomalyMutation {
	m := &MonitorAnomalyMutation{
		config:        c,
		op:            op,
		typ:           TypeMonitorAnomaly,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonitorAnomalyID sets the ID field of the mutation.
func withMonitorAnomalyID(id string) monitoranomalyOption {
	return func(m *MonitorAnomalyMutation) {
		var (
			err   error
			once  sync.Once
			value *MonitorAnomaly
		)
		m.oldValue = func(ctx context.Context) (*MonitorAnomaly, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonitorAnomaly.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonitorAnomaly sets the old MonitorAnomaly of the mutation.
func withMonitorAnomaly(node *MonitorAnomaly) monitoranomalyOption {
	return func(m *MonitorAnomalyMutation) {
		m.oldValue = func(context.Context) (*MonitorAnomaly, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonitorAnomalyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonitorAnomalyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonitorAnomaly entities.
func (m *MonitorAnomalyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonitorAnomalyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonitorAnomalyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonitorAnomaly.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMetricName sets the "metric_name" field.
func (m *MonitorAnomalyMutation) SetMetricName(s string) {
	m.metric_name = &s
}

// MetricName returns the value of the "metric_name" field in the mutation.
func (m *MonitorAnomalyMutation) MetricName() (r string, exists bool) {
	v := m.metric_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricName returns the old "metric_name" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldMetricName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricName: %w", err)
	}
	return oldValue.MetricName, nil
}

// ResetMetricName resets all changes to the "metric_name" field.
func (m *MonitorAnomalyMutation) ResetMetricName() {
	m.metric_name = nil
}

// SetObserved sets the "observed" field.
func (m *MonitorAnomalyMutation) SetObserved(f float64) {
	m.observed = &f
	m.addobserved = nil
}

// Observed returns the value of the "observed" field in the mutation.
func (m *MonitorAnomalyMutation) Observed() (r float64, exists bool) {
	v := m.observed
	if v == nil {
		return
	}
	return *v, true
}

// OldObserved returns the old "observed" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldObserved(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObserved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObserved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObserved: %w", err)
	}
	return oldValue.Observed, nil
}

// AddObserved adds f to the "observed" field.
func (m *MonitorAnomalyMutation) AddObserved(f float64) {
	if m.addobserved != nil {
		*m.addobserved += f
	} else {
		m.addobserved = &f
	}
}

// AddedObserved returns the value that was added to the "observed" field in this mutation.
func (m *MonitorAnomalyMutation) AddedObserved() (r float64, exists bool) {
	v := m.addobserved
	if v == nil {
		return
	}
	return *v, true
}

// ResetObserved resets all changes to the "observed" field.
func (m *MonitorAnomalyMutation) ResetObserved() {
	m.observed = nil
	m.addobserved = nil
}

// SetBaselineMean sets the "baseline_mean" field.
func (m *MonitorAnomalyMutation) SetBaselineMean(f float64) {
	m.baseline_mean = &f
	m.addbaseline_mean = nil
}

// BaselineMean returns the value of the "baseline_mean" field in the mutation.
func (m *MonitorAnomalyMutation) BaselineMean() (r float64, exists bool) {
	v := m.baseline_mean
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineMean returns the old "baseline_mean" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldBaselineMean(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineMean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineMean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineMean: %w", err)
	}
	return oldValue.BaselineMean, nil
}

// AddBaselineMean adds f to the "baseline_mean" field.
func (m *MonitorAnomalyMutation) AddBaselineMean(f float64) {
	if m.addbaseline_mean != nil {
		*m.addbaseline_mean += f
	} else {
		m.addbaseline_mean = &f
	}
}

// AddedBaselineMean returns the value that was added to the "baseline_mean" field in this mutation.
func (m *MonitorAnomalyMutation) AddedBaselineMean() (r float64, exists bool) {
	v := m.addbaseline_mean
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineMean resets all changes to the "baseline_mean" field.
func (m *MonitorAnomalyMutation) ResetBaselineMean() {
	m.baseline_mean = nil
	m.addbaseline_mean = nil
}

// SetBaselineStddev sets the "baseline_stddev" field.
func (m *MonitorAnomalyMutation) SetBaselineStddev(f float64) {
	m.baseline_stddev = &f
	m.addbaseline_stddev = nil
}

// BaselineStddev returns the value of the "baseline_stddev" field in the mutation.
func (m *MonitorAnomalyMutation) BaselineStddev() (r float64, exists bool) {
	v := m.baseline_stddev
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineStddev returns the old "baseline_stddev" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldBaselineStddev(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineStddev is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineStddev requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineStddev: %w", err)
	}
	return oldValue.BaselineStddev, nil
}

// AddBaselineStddev adds f to the "baseline_stddev" field.
func (m *MonitorAnomalyMutation) AddBaselineStddev(f float64) {
	if m.addbaseline_stddev != nil {
		*m.addbaseline_stddev += f
	} else {
		m.addbaseline_stddev = &f
	}
}

// AddedBaselineStddev returns the value that was added to the "baseline_stddev" field in this mutation.
func (m *MonitorAnomalyMutation) AddedBaselineStddev() (r float64, exists bool) {
	v := m.addbaseline_stddev
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineStddev resets all changes to the "baseline_stddev" field.
func (m *MonitorAnomalyMutation) ResetBaselineStddev() {
	m.baseline_stddev = nil
	m.addbaseline_stddev = nil
}

// SetZscore sets the "zscore" field.
func (m *MonitorAnomalyMutation) SetZscore(f float64) {
	m.zscore = &f
	m.addzscore = nil
}

// Zscore returns the value of the "zscore" field in the mutation.
func (m *MonitorAnomalyMutation) Zscore() (r float64, exists bool) {
	v := m.zscore
	if v == nil {
		return
	}
	return *v, true
}

// OldZscore returns the old "zscore" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldZscore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZscore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZscore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZscore: %w", err)
	}
	return oldValue.Zscore, nil
}

// AddZscore adds f to the "zscore" field.
func (m *MonitorAnomalyMutation) AddZscore(f float64) {
	if m.addzscore != nil {
		*m.addzscore += f
	} else {
		m.addzscore = &f
	}
}

// AddedZscore returns the value that was added to the "zscore" field in this mutation.
func (m *MonitorAnomalyMutation) AddedZscore() (r float64, exists bool) {
	v := m.addzscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetZscore resets all changes to the "zscore" field.
func (m *MonitorAnomalyMutation) ResetZscore() {
	m.zscore = nil
	m.addzscore = nil
}

// SetSeverity sets the "severity" field.
func (m *MonitorAnomalyMutation) SetSeverity(value monitoranomaly.Severity) {
	m.severity = &value
}

// Severity returns the value of the "severity" field in the mutation.
func (m *MonitorAnomalyMutation) Severity() (r monitoranomaly.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldSeverity(ctx context.Context) (v monitoranomaly.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *MonitorAnomalyMutation) ResetSeverity() {
	m.severity = nil
}

// SetEntityType sets the "entity_type" field.
func (m *MonitorAnomalyMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *MonitorAnomalyMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldEntityType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ClearEntityType clears the value of the "entity_type" field.
func (m *MonitorAnomalyMutation) ClearEntityType() {
	m.entity_type = nil
	m.clearedFields[monitoranomaly.FieldEntityType] = struct{}{}
}

// EntityTypeCleared returns if the "entity_type" field was cleared in this mutation.
func (m *MonitorAnomalyMutation) EntityTypeCleared() bool {
	_, ok := m.clearedFields[monitoranomaly.FieldEntityType]
	return ok
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *MonitorAnomalyMutation) ResetEntityType() {
	m.entity_type = nil
	delete(m.clearedFields, monitoranomaly.FieldEntityType)
}

// SetEntityID sets the "entity_id" field.
func (m *MonitorAnomalyMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *MonitorAnomalyMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *MonitorAnomalyMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[monitoranomaly.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *MonitorAnomalyMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[monitoranomaly.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *MonitorAnomalyMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, monitoranomaly.FieldEntityID)
}

// SetDetectedAt sets the "detected_at" field.
func (m *MonitorAnomalyMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *MonitorAnomalyMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *MonitorAnomalyMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// Where appends a list predicates to the MonitorAnomalyMutation builder.
func (m *MonitorAnomalyMutation) Where(ps ...predicate.MonitorAnomaly) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonitorAnomalyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonitorAnomalyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonitorAnomaly, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonitorAnomalyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonitorAnomalyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonitorAnomaly).
func (m *MonitorAnomalyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonitorAnomalyMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.metric_name != nil {
		fields = append(fields, monitoranomaly.FieldMetricName)
	}
	if m.observed != nil {
		fields = append(fields, monitoranomaly.FieldObserved)
	}
	if m.baseline_mean != nil {
		fields = append(fields, monitoranomaly.FieldBaselineMean)
	}
	if m.baseline_stddev != nil {
		fields = append(fields, monitoranomaly.FieldBaselineStddev)
	}
	if m.zscore != nil {
		fields = append(fields, monitoranomaly.FieldZscore)
	}
	if m.severity != nil {
		fields = append(fields, monitoranomaly.FieldSeverity)
	}
	if m.entity_type != nil {
		fields = append(fields, monitoranomaly.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, monitoranomaly.FieldEntityID)
	}
	if m.detected_at != nil {
		fields = append(fields, monitoranomaly.FieldDetectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonitorAnomalyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monitoranomaly.FieldMetricName:
		return m.MetricName()
	case monitoranomaly.FieldObserved:
		return m.Observed()
	case monitoranomaly.FieldBaselineMean:
		return m.BaselineMean()
	case monitoranomaly.FieldBaselineStddev:
		return m.BaselineStddev()
	case monitoranomaly.FieldZscore:
		return m.Zscore()
	case monitoranomaly.FieldSeverity:
		return m.Severity()
	case monitoranomaly.FieldEntityType:
		return m.EntityType()
	case monitoranomaly.FieldEntityID:
		return m.EntityID()
	case monitoranomaly.FieldDetectedAt:
		return m.DetectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonitorAnomalyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monitoranomaly.FieldMetricName:
		return m.OldMetricName(ctx)
	case monitoranomaly.FieldObserved:
		return m.OldObserved(ctx)
	case monitoranomaly.FieldBaselineMean:
		return m.OldBaselineMean(ctx)
	case monitoranomaly.FieldBaselineStddev:
		return m.OldBaselineStddev(ctx)
	case monitoranomaly.FieldZscore:
		return m.OldZscore(ctx)
	case monitoranomaly.FieldSeverity:
		return m.OldSeverity(ctx)
	case monitoranomaly.FieldEntityType:
		return m.OldEntityType(ctx)
	case monitoranomaly.FieldEntityID:
		return m.OldEntityID(ctx)
	case monitoranomaly.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonitorAnomaly field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitorAnomalyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monitoranomaly.FieldMetricName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricName(v)
		return nil
	case monitoranomaly.FieldObserved:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObserved(v)
		return nil
	case monitoranomaly.FieldBaselineMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineMean(v)
		return nil
	case monitoranomaly.FieldBaselineStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineStddev(v)
		return nil
	case monitoranomaly.FieldZscore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZscore(v)
		return nil
	case monitoranomaly.FieldSeverity:
		v, ok := value.(monitoranomaly.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case monitoranomaly.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case monitoranomaly.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case monitoranomaly.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonitorAnomalyMutation) AddedFields() []string {
	var fields []string
	if m.addobserved != nil {
		fields = append(fields, monitoranomaly.FieldObserved)
	}
	if m.addbaseline_mean != nil {
		fields = append(fields, monitoranomaly.FieldBaselineMean)
	}
	if m.addbaseline_stddev != nil {
		fields = append(fields, monitoranomaly.FieldBaselineStddev)
	}
	if m.addzscore != nil {
		fields = append(fields, monitoranomaly.FieldZscore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonitorAnomalyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case monitoranomaly.FieldObserved:
		return m.AddedObserved()
	case monitoranomaly.FieldBaselineMean:
		return m.AddedBaselineMean()
	case monitoranomaly.FieldBaselineStddev:
		return m.AddedBaselineStddev()
	case monitoranomaly.FieldZscore:
		return m.AddedZscore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitorAnomalyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case monitoranomaly.FieldObserved:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObserved(v)
		return nil
	case monitoranomaly.FieldBaselineMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineMean(v)
		return nil
	case monitoranomaly.FieldBaselineStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineStddev(v)
		return nil
	case monitoranomaly.FieldZscore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddZscore(v)
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonitorAnomalyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monitoranomaly.FieldEntityType) {
		fields = append(fields, monitoranomaly.FieldEntityType)
	}
	if m.FieldCleared(monitoranomaly.FieldEntityID) {
		fields = append(fields, monitoranomaly.FieldEntityID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonitorAnomalyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonitorAnomalyMutation) ClearField(name string) error {
	switch name {
	case monitoranomaly.FieldEntityType:
		m.ClearEntityType()
		return nil
	case monitoranomaly.FieldEntityID:
		m.ClearEntityID()
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonitorAnomalyMutation) ResetField(name string) error {
	switch name {
	case monitoranomaly.FieldMetricName:
		m.ResetMetricName()
		return nil
	case monitoranomaly.FieldObserved:
		m.ResetObserved()
		return nil
	case monitoranomaly.FieldBaselineMean:
		m.ResetBaselineMean()
		return nil
	case monitoranomaly.FieldBaselineStddev:
		m.ResetBaselineStddev()
		return nil
	case monitoranomaly.FieldZscore:
		m.ResetZscore()
		return nil
	case monitoranomaly.FieldSeverity:
		m.ResetSeverity()
		return nil
	case monitoranomaly.FieldEntityType:
		m.ResetEntityType()
		return nil
	case monitoranomaly.FieldEntityID:
		m.ResetEntityID()
		return nil
	case monitoranomaly.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonitorAnomalyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonitorAnomalyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonitorAnomalyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonitorAnomalyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonitorAnomalyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonitorAnomalyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonitorAnomalyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MonitorAnomaly unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonitorAnomalyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MonitorAnomaly edge %s", name)
}

// PlaybookChangeMutation represents an operation that mutates the PlaybookChange nodes in the graph.
type PlaybookChangeMutation struct {
	config
	op                Op
	typ               string
	id                *string
	change_type       *playbookchange.ChangeType
	section           *string
	content           *string
	reasoning         *string
	related_memory_id *string
	created_by        *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	ticket            *string
	clearedticket     bool
	done              bool
	oldValue          func(context.Context) (*PlaybookChange, error)
	predicates        []predicate.PlaybookChange
}

var _ ent.Mutation = (*PlaybookChangeMutation)(nil)

// playbookchangeOption allows management of the mutation configuration using functional options.
type playbookchangeOption func(*PlaybookChangeMutation)

// newPlaybookChangeMutation creates new mutation for the PlaybookChange entity.
func newPlaybookChangeMutation(c config, op Op, opts ...playbookchangeOption) *PlaybookChangeMutation {
	m := &PlaybookChangeMutation{
		config:        c,
		op:            op,
		typ:           TypePlaybookChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlaybookChangeID sets the ID field of the mutation.
func withPlaybookChangeID(id string) playbookchangeOption {
	return func(m *PlaybookChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *PlaybookChange
		)
		m.oldValue = func(ctx context.Context) (*PlaybookChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlaybookChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlaybookChange sets the old PlaybookChange of the mutation.
func withPlaybookChange(node *PlaybookChange) playbookchangeOption {
	return func(m *PlaybookChangeMutation) {
		m.oldValue = func(context.Context) (*PlaybookChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlaybookChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlaybookChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlaybookChange entities.
func (m *PlaybookChangeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlaybookChangeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlaybookChangeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlaybookChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *PlaybookChangeMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *PlaybookChangeMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *PlaybookChangeMutation) ResetTicketID() {
	m.ticket = nil
}

// SetChangeType sets the "change_type" field.
func (m *PlaybookChangeMutation) SetChangeType(pt playbookchange.ChangeType) {
	m.change_type = &pt
}

// ChangeType returns the value of the "change_type" field in the mutation.
func (m *PlaybookChangeMutation) ChangeType() (r playbookchange.ChangeType, exists bool) {
	v := m.change_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeType returns the old "change_type" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldChangeType(ctx context.Context) (v playbookchange.ChangeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeType: %w", err)
	}
	return oldValue.ChangeType, nil
}

// ResetChangeType resets all changes to the "change_type" field.
func (m *PlaybookChangeMutation) ResetChangeType() {
	m.change_type = nil
}

// SetSection sets the "section" field.
func (m *PlaybookChangeMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *PlaybookChangeMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *PlaybookChangeMutation) ResetSection() {
	m.section = nil
}

// SetContent sets the "content" field.
func (m *PlaybookChangeMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PlaybookChangeMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PlaybookChangeMutation) ResetContent() {
	m.content = nil
}

// SetReasoning sets the "reasoning" field.
func (m *PlaybookChangeMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *PlaybookChangeMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *PlaybookChangeMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[playbookchange.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *PlaybookChangeMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[playbookchange.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *PlaybookChangeMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, playbookchange.FieldReasoning)
}

// SetRelatedMemoryID sets the "related_memory_id" field.
func (m *PlaybookChangeMutation) SetRelatedMemoryID(s string) {
	m.related_memory_id = &s
}

// RelatedMemoryID returns the value of the "related_memory_id" field in the mutation.
func (m *PlaybookChangeMutation) RelatedMemoryID() (r string, exists bool) {
	v := m.related_memory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedMemoryID returns the old "related_memory_id" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldRelatedMemoryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedMemoryID: %w", err)
	}
	return oldValue.RelatedMemoryID, nil
}

// ClearRelatedMemoryID clears the value of the "related_memory_id" field.
func (m *PlaybookChangeMutation) ClearRelatedMemoryID() {
	m.related_memory_id = nil
	m.clearedFields[playbookchange.FieldRelatedMemoryID] = struct{}{}
}

// RelatedMemoryIDCleared returns if the "related_memory_id" field was cleared in this mutation.
func (m *PlaybookChangeMutation) RelatedMemoryIDCleared() bool {
	_, ok := m.clearedFields[playbookchange.FieldRelatedMemoryID]
	return ok
}

// ResetRelatedMemoryID resets all changes to the "related_memory_id" field.
func (m *PlaybookChangeMutation) ResetRelatedMemoryID() {
	m.related_memory_id = nil
	delete(m.clearedFields, playbookchange.FieldRelatedMemoryID)
}

// SetCreatedBy sets the "created_by" field.
func (m *PlaybookChangeMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PlaybookChangeMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PlaybookChangeMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[playbookchange.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PlaybookChangeMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[playbookchange.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PlaybookChangeMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, playbookchange.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlaybookChangeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlaybookChangeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlaybookChange entity.
// If the PlaybookChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookChangeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlaybookChangeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *PlaybookChangeMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[playbookchange.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *PlaybookChangeMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *PlaybookChangeMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *PlaybookChangeMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the PlaybookChangeMutation builder.
func (m *PlaybookChangeMutation) Where(ps ...predicate.PlaybookChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlaybookChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlaybookChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlaybookChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlaybookChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlaybookChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlaybookChange).
func (m *PlaybookChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlaybookChangeMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.ticket != nil {
		fields = append(fields, playbookchange.FieldTicketID)
	}
	if m.change_type != nil {
		fields = append(fields, playbookchange.FieldChangeType)
	}
	if m.section != nil {
		fields = append(fields, playbookchange.FieldSection)
	}
	if m.content != nil {
		fields = append(fields, playbookchange.FieldContent)
	}
	if m.reasoning != nil {
		fields = append(fields, playbookchange.FieldReasoning)
	}
	if m.related_memory_id != nil {
		fields = append(fields, playbookchange.FieldRelatedMemoryID)
	}
	if m.created_by != nil {
		fields = append(fields, playbookchange.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, playbookchange.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlaybookChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playbookchange.FieldTicketID:
		return m.TicketID()
	case playbookchange.FieldChangeType:
		return m.ChangeType()
	case playbookchange.FieldSection:
		return m.Section()
	case playbookchange.FieldContent:
		return m.Content()
	case playbookchange.FieldReasoning:
		return m.Reasoning()
	case playbookchange.FieldRelatedMemoryID:
		return m.RelatedMemoryID()
	case playbookchange.FieldCreatedBy:
		return m.CreatedBy()
	case playbookchange.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlaybookChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playbookchange.FieldTicketID:
		return m.OldTicketID(ctx)
	case playbookchange.FieldChangeType:
		return m.OldChangeType(ctx)
	case playbookchange.FieldSection:
		return m.OldSection(ctx)
	case playbookchange.FieldContent:
		return m.OldContent(ctx)
	case playbookchange.FieldReasoning:
		return m.OldReasoning(ctx)
	case playbookchange.FieldRelatedMemoryID:
		return m.OldRelatedMemoryID(ctx)
	case playbookchange.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case playbookchange.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlaybookChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playbookchange.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case playbookchange.FieldChangeType:
		v, ok := value.(playbookchange.ChangeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeType(v)
		return nil
	case playbookchange.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case playbookchange.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case playbookchange.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case playbookchange.FieldRelatedMemoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedMemoryID(v)
		return nil
	case playbookchange.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case playbookchange.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlaybookChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlaybookChangeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlaybookChangeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PlaybookChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlaybookChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(playbookchange.FieldReasoning) {
		fields = append(fields, playbookchange.FieldReasoning)
	}
	if m.FieldCleared(playbookchange.FieldRelatedMemoryID) {
		fields = append(fields, playbookchange.FieldRelatedMemoryID)
	}
	if m.FieldCleared(playbookchange.FieldCreatedBy) {
		fields = append(fields, playbookchange.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlaybookChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlaybookChangeMutation) ClearField(name string) error {
	switch name {
	case playbookchange.FieldReasoning:
		m.ClearReasoning()
		return nil
	case playbookchange.FieldRelatedMemoryID:
		m.ClearRelatedMemoryID()
		return nil
	case playbookchange.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown PlaybookChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlaybookChangeMutation) ResetField(name string) error {
	switch name {
	case playbookchange.FieldTicketID:
		m.ResetTicketID()
		return nil
	case playbookchange.FieldChangeType:
		m.ResetChangeType()
		return nil
	case playbookchange.FieldSection:
		m.ResetSection()
		return nil
	case playbookchange.FieldContent:
		m.ResetContent()
		return nil
	case playbookchange.FieldReasoning:
		m.ResetReasoning()
		return nil
	case playbookchange.FieldRelatedMemoryID:
		m.ResetRelatedMemoryID()
		return nil
	case playbookchange.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case playbookchange.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlaybookChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlaybookChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, playbookchange.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlaybookChangeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case playbookchange.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlaybookChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlaybookChangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlaybookChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, playbookchange.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlaybookChangeMutation) EdgeCleared(name string) bool {
	switch name {
	case playbookchange.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlaybookChangeMutation) ClearEdge(name string) error {
	switch name {
	case playbookchange.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown PlaybookChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlaybookChangeMutation) ResetEdge(name string) error {
	switch name {
	case playbookchange.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown PlaybookChange edge %s", name)
}

// PlaybookEntryMutation represents an operation that mutates the PlaybookEntry nodes in the graph.
type PlaybookEntryMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	content                     *string
	category                    *playbookentry.Category
	tags                        *[]string
	appendtags                  []string
	supporting_memory_ids       *[]string
	appendsupporting_memory_ids []string
	is_active                   *bool
	created_by                  *string
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	ticket                      *string
	clearedticket               bool
	done                        bool
	oldValue                    func(context.Context) (*PlaybookEntry, error)
	predicates                  []predicate.PlaybookEntry
}

var _ ent.Mutation = (*PlaybookEntryMutation)(nil)

// playbookentryOption allows management of the mutation configuration using functional options.
type playbookentryOption func(*PlaybookEntryMutation)

// newPlaybookEntryMutation creates new mutation for the PlaybookEntry entity.
func newPlaybookEntryMutation(c config, op Op, opts ...playbookentryOption) *PlaybookEntryMutation {
	m := &PlaybookEntryMutation{
		config:        c,
		op:            op,
		typ:           TypePlaybookEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlaybookEntryID sets the ID field of the mutation.
func withPlaybookEntryID(id string) playbookentryOption {
	return func(m *PlaybookEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *PlaybookEntry
		)
		m.oldValue = func(ctx context.Context) (*PlaybookEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlaybookEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlaybookEntry sets the old PlaybookEntry of the mutation.
func withPlaybookEntry(node *PlaybookEntry) playbookentryOption {
	return func(m *PlaybookEntryMutation) {
		m.oldValue = func(context.Context) (*PlaybookEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlaybookEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlaybookEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlaybookEntry entities.
func (m *PlaybookEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlaybookEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlaybookEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlaybookEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *PlaybookEntryMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *PlaybookEntryMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *PlaybookEntryMutation) ResetTicketID() {
	m.ticket = nil
}

// SetContent sets the "content" field.
func (m *PlaybookEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PlaybookEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PlaybookEntryMutation) ResetContent() {
	m.content = nil
}

// SetCategory sets the "category" field.
func (m *PlaybookEntryMutation) SetCategory(pl playbookentry.Category) {
	m.category = &pl
}

// Category returns the value of the "category" field in the mutation.
func (m *PlaybookEntryMutation) Category() (r playbookentry.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldCategory(ctx context.Context) (v playbookentry.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *PlaybookEntryMutation) ResetCategory() {
	m.category = nil
}

// SetTags sets the "tags" field.
func (m *PlaybookEntryMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *PlaybookEntryMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *PlaybookEntryMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *PlaybookEntryMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *PlaybookEntryMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[playbookentry.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *PlaybookEntryMutation) TagsCleared() bool {
	_, ok := m.clearedFields[playbookentry.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *PlaybookEntryMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, playbookentry.FieldTags)
}

// SetSupportingMemoryIds sets the "supporting_memory_ids" field.
func (m *PlaybookEntryMutation) SetSupportingMemoryIds(s []string) {
	m.supporting_memory_ids = &s
	m.appendsupporting_memory_ids = nil
}

// SupportingMemoryIds returns the value of the "supporting_memory_ids" field in the mutation.
func (m *PlaybookEntryMutation) SupportingMemoryIds() (r []string, exists bool) {
	v := m.supporting_memory_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportingMemoryIds returns the old "supporting_memory_ids" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldSupportingMemoryIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportingMemoryIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportingMemoryIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportingMemoryIds: %w", err)
	}
	return oldValue.SupportingMemoryIds, nil
}

// AppendSupportingMemoryIds adds s to the "supporting_memory_ids" field.
func (m *PlaybookEntryMutation) AppendSupportingMemoryIds(s []string) {
	m.appendsupporting_memory_ids = append(m.appendsupporting_memory_ids, s...)
}

// AppendedSupportingMemoryIds returns the list of values that were appended to the "supporting_memory_ids" field in this mutation.
func (m *PlaybookEntryMutation) AppendedSupportingMemoryIds() ([]string, bool) {
	if len(m.appendsupporting_memory_ids) == 0 {
		return nil, false
	}
	return m.appendsupporting_memory_ids, true
}

// ClearSupportingMemoryIds clears the value of the "supporting_memory_ids" field.
func (m *PlaybookEntryMutation) ClearSupportingMemoryIds() {
	m.supporting_memory_ids = nil
	m.appendsupporting_memory_ids = nil
	m.clearedFields[playbookentry.FieldSupportingMemoryIds] = struct{}{}
}

// SupportingMemoryIdsCleared returns if the "supporting_memory_ids" field was cleared in this mutation.
func (m *PlaybookEntryMutation) SupportingMemoryIdsCleared() bool {
	_, ok := m.clearedFields[playbookentry.FieldSupportingMemoryIds]
	return ok
}

// ResetSupportingMemoryIds resets all changes to the "supporting_memory_ids" field.
func (m *PlaybookEntryMutation) ResetSupportingMemoryIds() {
	m.supporting_memory_ids = nil
	m.appendsupporting_memory_ids = nil
	delete(m.clearedFields, playbookentry.FieldSupportingMemoryIds)
}

// SetIsActive sets the "is_active" field.
func (m *PlaybookEntryMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PlaybookEntryMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PlaybookEntryMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PlaybookEntryMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PlaybookEntryMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PlaybookEntryMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[playbookentry.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PlaybookEntryMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[playbookentry.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PlaybookEntryMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, playbookentry.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlaybookEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlaybookEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlaybookEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlaybookEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlaybookEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlaybookEntry entity.
// If the PlaybookEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlaybookEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *PlaybookEntryMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[playbookentry.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *PlaybookEntryMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *PlaybookEntryMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *PlaybookEntryMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the PlaybookEntryMutation builder.
func (m *PlaybookEntryMutation) Where(ps ...predicate.PlaybookEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlaybookEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlaybookEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlaybookEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlaybookEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlaybookEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlaybookEntry).
func (m *PlaybookEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlaybookEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.ticket != nil {
		fields = append(fields, playbookentry.FieldTicketID)
	}
	if m.content != nil {
		fields = append(fields, playbookentry.FieldContent)
	}
	if m.category != nil {
		fields = append(fields, playbookentry.FieldCategory)
	}
	if m.tags != nil {
		fields = append(fields, playbookentry.FieldTags)
	}
	if m.supporting_memory_ids != nil {
		fields = append(fields, playbookentry.FieldSupportingMemoryIds)
	}
	if m.is_active != nil {
		fields = append(fields, playbookentry.FieldIsActive)
	}
	if m.created_by != nil {
		fields = append(fields, playbookentry.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, playbookentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, playbookentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlaybookEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playbookentry.FieldTicketID:
		return m.TicketID()
	case playbookentry.FieldContent:
		return m.Content()
	case playbookentry.FieldCategory:
		return m.Category()
	case playbookentry.FieldTags:
		return m.Tags()
	case playbookentry.FieldSupportingMemoryIds:
		return m.SupportingMemoryIds()
	case playbookentry.FieldIsActive:
		return m.IsActive()
	case playbookentry.FieldCreatedBy:
		return m.CreatedBy()
	case playbookentry.FieldCreatedAt:
		return m.CreatedAt()
	case playbookentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlaybookEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playbookentry.FieldTicketID:
		return m.OldTicketID(ctx)
	case playbookentry.FieldContent:
		return m.OldContent(ctx)
	case playbookentry.FieldCategory:
		return m.OldCategory(ctx)
	case playbookentry.FieldTags:
		return m.OldTags(ctx)
	case playbookentry.FieldSupportingMemoryIds:
		return m.OldSupportingMemoryIds(ctx)
	case playbookentry.FieldIsActive:
		return m.OldIsActive(ctx)
	case playbookentry.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case playbookentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case playbookentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlaybookEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playbookentry.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case playbookentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case playbookentry.FieldCategory:
		v, ok := value.(playbookentry.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case playbookentry.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case playbookentry.FieldSupportingMemoryIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportingMemoryIds(v)
		return nil
	case playbookentry.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case playbookentry.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case playbookentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case playbookentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlaybookEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlaybookEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlaybookEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PlaybookEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlaybookEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(playbookentry.FieldTags) {
		fields = append(fields, playbookentry.FieldTags)
	}
	if m.FieldCleared(playbookentry.FieldSupportingMemoryIds) {
		fields = append(fields, playbookentry.FieldSupportingMemoryIds)
	}
	if m.FieldCleared(playbookentry.FieldCreatedBy) {
		fields = append(fields, playbookentry.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlaybookEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlaybookEntryMutation) ClearField(name string) error {
	switch name {
	case playbookentry.FieldTags:
		m.ClearTags()
		return nil
	case playbookentry.FieldSupportingMemoryIds:
		m.ClearSupportingMemoryIds()
		return nil
	case playbookentry.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown PlaybookEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlaybookEntryMutation) ResetField(name string) error {
	switch name {
	case playbookentry.FieldTicketID:
		m.ResetTicketID()
		return nil
	case playbookentry.FieldContent:
		m.ResetContent()
		return nil
	case playbookentry.FieldCategory:
		m.ResetCategory()
		return nil
	case playbookentry.FieldTags:
		m.ResetTags()
		return nil
	case playbookentry.FieldSupportingMemoryIds:
		m.ResetSupportingMemoryIds()
		return nil
	case playbookentry.FieldIsActive:
		m.ResetIsActive()
		return nil
	case playbookentry.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case playbookentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case playbookentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlaybookEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlaybookEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, playbookentry.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlaybookEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case playbookentry.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlaybookEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlaybookEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlaybookEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, playbookentry.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlaybookEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case playbookentry.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlaybookEntryMutation) ClearEdge(name string) error {
	switch name {
	case playbookentry.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown PlaybookEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlaybookEntryMutation) ResetEdge(name string) error {
	switch name {
	case playbookentry.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown PlaybookEntry edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	repo_url       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	tickets        map[string]struct{}
	removedtickets map[string]struct{}
	clearedtickets bool
	owner          *string
	clearedowner   bool
	done           bool
	oldValue       func(context.Context) (*Project, error)
	predicates     []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *ProjectMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *ProjectMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ClearRepoURL clears the value of the "repo_url" field.
func (m *ProjectMutation) ClearRepoURL() {
	m.repo_url = nil
	m.clearedFields[project.FieldRepoURL] = struct{}{}
}

// RepoURLCleared returns if the "repo_url" field was cleared in this mutation.
func (m *ProjectMutation) RepoURLCleared() bool {
	_, ok := m.clearedFields[project.FieldRepoURL]
	return ok
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *ProjectMutation) ResetRepoURL() {
	m.repo_url = nil
	delete(m.clearedFields, project.FieldRepoURL)
}

// SetOwnerID sets the "owner_id" field.
func (m *ProjectMutation) SetOwnerID(s string) {
	m.owner = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ProjectMutation) OwnerID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldOwnerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ClearOwnerID clears the value of the "owner_id" field.
func (m *ProjectMutation) ClearOwnerID() {
	m.owner = nil
	m.clearedFields[project.FieldOwnerID] = struct{}{}
}

// OwnerIDCleared returns if the "owner_id" field was cleared in this mutation.
func (m *ProjectMutation) OwnerIDCleared() bool {
	_, ok := m.clearedFields[project.FieldOwnerID]
	return ok
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ProjectMutation) ResetOwnerID() {
	m.owner = nil
	delete(m.clearedFields, project.FieldOwnerID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by ids.
func (m *ProjectMutation) AddTicketIDs(ids ...string) {
	if m.tickets == nil {
		m.tickets = make(map[string]struct{})
	}
	for i := range ids {
		m.tickets[ids[i]] = struct{}{}
	}
}

// ClearTickets clears the "tickets" edge to the Ticket entity.
func (m *ProjectMutation) ClearTickets() {
	m.clearedtickets = true
}

// TicketsCleared reports if the "tickets" edge to the Ticket entity was cleared.
func (m *ProjectMutation) TicketsCleared() bool {
	return m.clearedtickets
}

// RemoveTicketIDs removes the "tickets" edge to the Ticket entity by IDs.
func (m *ProjectMutation) RemoveTicketIDs(ids ...string) {
	if m.removedtickets == nil {
		m.removedtickets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tickets, ids[i])
		m.removedtickets[ids[i]] = struct{}{}
	}
}

// RemovedTickets returns the removed IDs of the "tickets" edge to the Ticket entity.
func (m *ProjectMutation) RemovedTicketsIDs() (ids []string) {
	for id := range m.removedtickets {
		ids = append(ids, id)
	}
	return
}

// TicketsIDs returns the "tickets" edge IDs in the mutation.
func (m *ProjectMutation) TicketsIDs() (ids []string) {
	for id := range m.tickets {
		ids = append(ids, id)
	}
	return
}

// ResetTickets resets all changes to the "tickets" edge.
func (m *ProjectMutation) ResetTickets() {
	m.tickets = nil
	m.clearedtickets = false
	m.removedtickets = nil
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *ProjectMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[project.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *ProjectMutation) OwnerCleared() bool {
	return m.OwnerIDCleared() || m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ProjectMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.repo_url != nil {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.owner != nil {
		fields = append(fields, project.FieldOwnerID)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldRepoURL:
		return m.RepoURL()
	case project.FieldOwnerID:
		return m.OwnerID()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case project.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case project.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldRepoURL) {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.FieldCleared(project.FieldOwnerID) {
		fields = append(fields, project.FieldOwnerID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldRepoURL:
		m.ClearRepoURL()
		return nil
	case project.FieldOwnerID:
		m.ClearOwnerID()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case project.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tickets != nil {
		edges = append(edges, project.EdgeTickets)
	}
	if m.owner != nil {
		edges = append(edges, project.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.tickets))
		for id := range m.tickets {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtickets != nil {
		edges = append(edges, project.EdgeTickets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.removedtickets))
		for id := range m.removedtickets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtickets {
		edges = append(edges, project.EdgeTickets)
	}
	if m.clearedowner {
		edges = append(edges, project.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTickets:
		return m.clearedtickets
	case project.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	case project.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTickets:
		m.ResetTickets()
		return nil
	case project.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ResourceLockMutation represents an operation that mutates the ResourceLock nodes in the graph.
type ResourceLockMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	owner_agent_id *string
	acquired_at    *time.Time
	released_at    *time.Time
	metadata       *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ResourceLock, error)
	predicates     []predicate.ResourceLock
}

var _ ent.Mutation = (*ResourceLockMutation)(nil)

// resourcelockOption allows management of the mutation configuration using functional options.
type resourcelockOption func(*ResourceLockMutation)

// newResourceLockMutation creates new mutation for the ResourceLock entity.
func newResourceLockMutation(c config, op Op, opts ...resourcelockOption) *ResourceLockMutation {
	m := &ResourceLockMutation{
		config:        c,
		op:            op,
		typ:           TypeResourceLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResourceLockID sets the ID field of the mutation.
func withResourceLockID(id string) resourcelockOption {
	return func(m *ResourceLockMutation) {
		var (
			err   error
			once  sync.Once
			value *ResourceLock
		)
		m.oldValue = func(ctx context.Context) (*ResourceLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResourceLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResourceLock sets the old ResourceLock of the mutation.
func withResourceLock(node *ResourceLock) resourcelockOption {
	return func(m *ResourceLockMutation) {
		m.oldValue = func(context.Context) (*ResourceLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResourceLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResourceLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResourceLock entities.
func (m *ResourceLockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResourceLockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResourceLockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResourceLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ResourceLockMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ResourceLockMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ResourceLockMutation) ResetName() {
	m.name = nil
}

// SetOwnerAgentID sets the "owner_agent_id" field.
func (m *ResourceLockMutation) SetOwnerAgentID(s string) {
	m.owner_agent_id = &s
}

// OwnerAgentID returns the value of the "owner_agent_id" field in the mutation.
func (m *ResourceLockMutation) OwnerAgentID() (r string, exists bool) {
	v := m.owner_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerAgentID returns the old "owner_agent_id" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldOwnerAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerAgentID: %w", err)
	}
	return oldValue.OwnerAgentID, nil
}

// ResetOwnerAgentID resets all changes to the "owner_agent_id" field.
func (m *ResourceLockMutation) ResetOwnerAgentID() {
	m.owner_agent_id = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *ResourceLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *ResourceLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *ResourceLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *ResourceLockMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *ResourceLockMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *ResourceLockMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[resourcelock.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *ResourceLockMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *ResourceLockMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, resourcelock.FieldReleasedAt)
}

// SetMetadata sets the "metadata" field.
func (m *ResourceLockMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ResourceLockMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ResourceLockMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[resourcelock.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ResourceLockMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ResourceLockMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, resourcelock.FieldMetadata)
}

// Where appends a list predicates to the ResourceLockMutation builder.
func (m *ResourceLockMutation) Where(ps ...predicate.ResourceLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResourceLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResourceLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResourceLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResourceLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResourceLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResourceLock).
func (m *ResourceLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResourceLockMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, resourcelock.FieldName)
	}
	if m.owner_agent_id != nil {
		fields = append(fields, resourcelock.FieldOwnerAgentID)
	}
	if m.acquired_at != nil {
		fields = append(fields, resourcelock.FieldAcquiredAt)
	}
	if m.released_at != nil {
		fields = append(fields, resourcelock.FieldReleasedAt)
	}
	if m.metadata != nil {
		fields = append(fields, resourcelock.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResourceLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldName:
		return m.Name()
	case resourcelock.FieldOwnerAgentID:
		return m.OwnerAgentID()
	case resourcelock.FieldAcquiredAt:
		return m.AcquiredAt()
	case resourcelock.FieldReleasedAt:
		return m.ReleasedAt()
	case resourcelock.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResourceLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resourcelock.FieldName:
		return m.OldName(ctx)
	case resourcelock.FieldOwnerAgentID:
		return m.OldOwnerAgentID(ctx)
	case resourcelock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case resourcelock.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case resourcelock.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown ResourceLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case resourcelock.FieldOwnerAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerAgentID(v)
		return nil
	case resourcelock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case resourcelock.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case resourcelock.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResourceLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResourceLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResourceLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResourceLockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resourcelock.FieldReleasedAt) {
		fields = append(fields, resourcelock.FieldReleasedAt)
	}
	if m.FieldCleared(resourcelock.FieldMetadata) {
		fields = append(fields, resourcelock.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResourceLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResourceLockMutation) ClearField(name string) error {
	switch name {
	case resourcelock.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	case resourcelock.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResourceLockMutation) ResetField(name string) error {
	switch name {
	case resourcelock.FieldName:
		m.ResetName()
		return nil
	case resourcelock.FieldOwnerAgentID:
		m.ResetOwnerAgentID()
		return nil
	case resourcelock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case resourcelock.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case resourcelock.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResourceLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResourceLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResourceLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResourceLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResourceLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResourceLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResourceLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResourceLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	phase_id                  *string
	task_type                 *string
	description               *string
	priority                  *task.Priority
	status                    *task.Status
	assigned_agent_id         *string
	sandbox_id                *string
	result                    *map[string]interface{}
	error_message             *string
	retry_count               *int
	addretry_count            *int
	max_retries               *int
	addmax_retries            *int
	deadline_at               *time.Time
	score                     *float64
	addscore                  *float64
	validation_enabled        *bool
	validation_iteration      *int
	addvalidation_iteration   *int
	review_done               *bool
	last_validation_feedback  *string
	commit_sha                *string
	owned_files               *[]string
	appendowned_files         []string
	dependencies              *map[string][]string
	content_hash              *string
	claimed_at                *time.Time
	started_at                *time.Time
	completed_at              *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	ticket                    *string
	clearedticket             bool
	memories                  map[string]struct{}
	removedmemories           map[string]struct{}
	clearedmemories           bool
	validation_reviews        map[string]struct{}
	removedvalidation_reviews map[string]struct{}
	clearedvalidation_reviews bool
	discoveries               map[string]struct{}
	removeddiscoveries        map[string]struct{}
	cleareddiscoveries        bool
	agent_results             map[string]struct{}
	removedagent_results      map[string]struct{}
	clearedagent_results      bool
	done                      bool
	oldValue                  func(context.Context) (*Task, error)
	predicates                []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TaskMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TaskMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TaskMutation) ResetTicketID() {
	m.ticket = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *TaskMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *TaskMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *TaskMutation) ResetPhaseID() {
	m.phase_id = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *TaskMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *TaskMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *TaskMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[task.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *TaskMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *TaskMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, task.FieldAssignedAgentID)
}

// SetSandboxID sets the "sandbox_id" field.
func (m *TaskMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *TaskMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSandboxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (m *TaskMutation) ClearSandboxID() {
	m.sandbox_id = nil
	m.clearedFields[task.FieldSandboxID] = struct{}{}
}

// SandboxIDCleared returns if the "sandbox_id" field was cleared in this mutation.
func (m *TaskMutation) SandboxIDCleared() bool {
	_, ok := m.clearedFields[task.FieldSandboxID]
	return ok
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *TaskMutation) ResetSandboxID() {
	m.sandbox_id = nil
	delete(m.clearedFields, task.FieldSandboxID)
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *TaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetDeadlineAt sets the "deadline_at" field.
func (m *TaskMutation) SetDeadlineAt(t time.Time) {
	m.deadline_at = &t
}

// DeadlineAt returns the value of the "deadline_at" field in the mutation.
func (m *TaskMutation) DeadlineAt() (r time.Time, exists bool) {
	v := m.deadline_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineAt returns the old "deadline_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeadlineAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineAt: %w", err)
	}
	return oldValue.DeadlineAt, nil
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (m *TaskMutation) ClearDeadlineAt() {
	m.deadline_at = nil
	m.clearedFields[task.FieldDeadlineAt] = struct{}{}
}

// DeadlineAtCleared returns if the "deadline_at" field was cleared in this mutation.
func (m *TaskMutation) DeadlineAtCleared() bool {
	_, ok := m.clearedFields[task.FieldDeadlineAt]
	return ok
}

// ResetDeadlineAt resets all changes to the "deadline_at" field.
func (m *TaskMutation) ResetDeadlineAt() {
	m.deadline_at = nil
	delete(m.clearedFields, task.FieldDeadlineAt)
}

// SetScore sets the "score" field.
func (m *TaskMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TaskMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *TaskMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TaskMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TaskMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetValidationEnabled sets the "validation_enabled" field.
func (m *TaskMutation) SetValidationEnabled(b bool) {
	m.validation_enabled = &b
}

// ValidationEnabled returns the value of the "validation_enabled" field in the mutation.
func (m *TaskMutation) ValidationEnabled() (r bool, exists bool) {
	v := m.validation_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationEnabled returns the old "validation_enabled" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldValidationEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationEnabled: %w", err)
	}
	return oldValue.ValidationEnabled, nil
}

// ResetValidationEnabled resets all changes to the "validation_enabled" field.
func (m *TaskMutation) ResetValidationEnabled() {
	m.validation_enabled = nil
}

// SetValidationIteration sets the "validation_iteration" field.
func (m *TaskMutation) SetValidationIteration(i int) {
	m.validation_iteration = &i
	m.addvalidation_iteration = nil
}

// ValidationIteration returns the value of the "validation_iteration" field in the mutation.
func (m *TaskMutation) ValidationIteration() (r int, exists bool) {
	v := m.validation_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationIteration returns the old "validation_iteration" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldValidationIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationIteration: %w", err)
	}
	return oldValue.ValidationIteration, nil
}

// AddValidationIteration adds i to the "validation_iteration" field.
func (m *TaskMutation) AddValidationIteration(i int) {
	if m.addvalidation_iteration != nil {
		*m.addvalidation_iteration += i
	} else {
		m.addvalidation_iteration = &i
	}
}

// AddedValidationIteration returns the value that was added to the "validation_iteration" field in this mutation.
func (m *TaskMutation) AddedValidationIteration() (r int, exists bool) {
	v := m.addvalidation_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidationIteration resets all changes to the "validation_iteration" field.
func (m *TaskMutation) ResetValidationIteration() {
	m.validation_iteration = nil
	m.addvalidation_iteration = nil
}

// SetReviewDone sets the "review_done" field.
func (m *TaskMutation) SetReviewDone(b bool) {
	m.review_done = &b
}

// ReviewDone returns the value of the "review_done" field in the mutation.
func (m *TaskMutation) ReviewDone() (r bool, exists bool) {
	v := m.review_done
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewDone returns the old "review_done" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldReviewDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewDone: %w", err)
	}
	return oldValue.ReviewDone, nil
}

// ResetReviewDone resets all changes to the "review_done" field.
func (m *TaskMutation) ResetReviewDone() {
	m.review_done = nil
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (m *TaskMutation) SetLastValidationFeedback(s string) {
	m.last_validation_feedback = &s
}

// LastValidationFeedback returns the value of the "last_validation_feedback" field in the mutation.
func (m *TaskMutation) LastValidationFeedback() (r string, exists bool) {
	v := m.last_validation_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldLastValidationFeedback returns the old "last_validation_feedback" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastValidationFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastValidationFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastValidationFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastValidationFeedback: %w", err)
	}
	return oldValue.LastValidationFeedback, nil
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (m *TaskMutation) ClearLastValidationFeedback() {
	m.last_validation_feedback = nil
	m.clearedFields[task.FieldLastValidationFeedback] = struct{}{}
}

// LastValidationFeedbackCleared returns if the "last_validation_feedback" field was cleared in this mutation.
func (m *TaskMutation) LastValidationFeedbackCleared() bool {
	_, ok := m.clearedFields[task.FieldLastValidationFeedback]
	return ok
}

// ResetLastValidationFeedback resets all changes to the "last_validation_feedback" field.
func (m *TaskMutation) ResetLastValidationFeedback() {
	m.last_validation_feedback = nil
	delete(m.clearedFields, task.FieldLastValidationFeedback)
}

// SetCommitSha sets the "commit_sha" field.
func (m *TaskMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *TaskMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *TaskMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[task.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *TaskMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[task.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *TaskMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, task.FieldCommitSha)
}

// SetOwnedFiles sets the "owned_files" field.
func (m *TaskMutation) SetOwnedFiles(s []string) {
	m.owned_files = &s
	m.appendowned_files = nil
}

// OwnedFiles returns the value of the "owned_files" field in the mutation.
func (m *TaskMutation) OwnedFiles() (r []string, exists bool) {
	v := m.owned_files
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnedFiles returns the old "owned_files" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOwnedFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnedFiles: %w", err)
	}
	return oldValue.OwnedFiles, nil
}

// AppendOwnedFiles adds s to the "owned_files" field.
func (m *TaskMutation) AppendOwnedFiles(s []string) {
	m.appendowned_files = append(m.appendowned_files, s...)
}

// AppendedOwnedFiles returns the list of values that were appended to the "owned_files" field in this mutation.
func (m *TaskMutation) AppendedOwnedFiles() ([]string, bool) {
	if len(m.appendowned_files) == 0 {
		return nil, false
	}
	return m.appendowned_files, true
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (m *TaskMutation) ClearOwnedFiles() {
	m.owned_files = nil
	m.appendowned_files = nil
	m.clearedFields[task.FieldOwnedFiles] = struct{}{}
}

// OwnedFilesCleared returns if the "owned_files" field was cleared in this mutation.
func (m *TaskMutation) OwnedFilesCleared() bool {
	_, ok := m.clearedFields[task.FieldOwnedFiles]
	return ok
}

// ResetOwnedFiles resets all changes to the "owned_files" field.
func (m *TaskMutation) ResetOwnedFiles() {
	m.owned_files = nil
	m.appendowned_files = nil
	delete(m.clearedFields, task.FieldOwnedFiles)
}

// SetDependencies sets the "dependencies" field.
func (m *TaskMutation) SetDependencies(value map[string][]string) {
	m.dependencies = &value
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *TaskMutation) Dependencies() (r map[string][]string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependencies(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *TaskMutation) ClearDependencies() {
	m.dependencies = nil
	m.clearedFields[task.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *TaskMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[task.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *TaskMutation) ResetDependencies() {
	m.dependencies = nil
	delete(m.clearedFields, task.FieldDependencies)
}

// SetContentHash sets the "content_hash" field.
func (m *TaskMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *TaskMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *TaskMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[task.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *TaskMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[task.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *TaskMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, task.FieldContentHash)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[task.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, task.FieldClaimedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *TaskMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[task.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *TaskMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TaskMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// AddMemoryIDs adds the "memories" edge to the TaskMemory entity by ids.
func (m *TaskMutation) AddMemoryIDs(ids ...string) {
	if m.memories == nil {
		m.memories = make(map[string]struct{})
	}
	for i := range ids {
		m.memories[ids[i]] = struct{}{}
	}
}

// ClearMemories clears the "memories" edge to the TaskMemory entity.
func (m *TaskMutation) ClearMemories() {
	m.clearedmemories = true
}

// MemoriesCleared reports if the "memories" edge to the TaskMemory entity was cleared.
func (m *TaskMutation) MemoriesCleared() bool {
	return m.clearedmemories
}

// RemoveMemoryIDs removes the "memories" edge to the TaskMemory entity by IDs.
func (m *TaskMutation) RemoveMemoryIDs(ids ...string) {
	if m.removedmemories == nil {
		m.removedmemories = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memories, ids[i])
		m.removedmemories[ids[i]] = struct{}{}
	}
}

// RemovedMemories returns the removed IDs of the "memories" edge to the TaskMemory entity.
func (m *TaskMutation) RemovedMemoriesIDs() (ids []string) {
	for id := range m.removedmemories {
		ids = append(ids, id)
	}
	return
}

// MemoriesIDs returns the "memories" edge IDs in the mutation.
func (m *TaskMutation) MemoriesIDs() (ids []string) {
	for id := range m.memories {
		ids = append(ids, id)
	}
	return
}

// ResetMemories resets all changes to the "memories" edge.
func (m *TaskMutation) ResetMemories() {
	m.memories = nil
	m.clearedmemories = false
	m.removedmemories = nil
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by ids.
func (m *TaskMutation) AddValidationReviewIDs(ids ...string) {
	if m.validation_reviews == nil {
		m.validation_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.validation_reviews[ids[i]] = struct{}{}
	}
}

// ClearValidationReviews clears the "validation_reviews" edge to the ValidationReview entity.
func (m *TaskMutation) ClearValidationReviews() {
	m.clearedvalidation_reviews = true
}

// ValidationReviewsCleared reports if the "validation_reviews" edge to the ValidationReview entity was cleared.
func (m *TaskMutation) ValidationReviewsCleared() bool {
	return m.clearedvalidation_reviews
}

// RemoveValidationReviewIDs removes the "validation_reviews" edge to the ValidationReview entity by IDs.
func (m *TaskMutation) RemoveValidationReviewIDs(ids ...string) {
	if m.removedvalidation_reviews == nil {
		m.removedvalidation_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.validation_reviews, ids[i])
		m.removedvalidation_reviews[ids[i]] = struct{}{}
	}
}

// RemovedValidationReviews returns the removed IDs of the "validation_reviews" edge to the ValidationReview entity.
func (m *TaskMutation) RemovedValidationReviewsIDs() (ids []string) {
	for id := range m.removedvalidation_reviews {
		ids = append(ids, id)
	}
	return
}

// ValidationReviewsIDs returns the "validation_reviews" edge IDs in the mutation.
func (m *TaskMutation) ValidationReviewsIDs() (ids []string) {
	for id := range m.validation_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetValidationReviews resets all changes to the "validation_reviews" edge.
func (m *TaskMutation) ResetValidationReviews() {
	m.validation_reviews = nil
	m.clearedvalidation_reviews = false
	m.removedvalidation_reviews = nil
}

// AddDiscoveryIDs adds the "discoveries" edge to the TaskDiscovery entity by ids.
func (m *TaskMutation) AddDiscoveryIDs(ids ...string) {
	if m.discoveries == nil {
		m.discoveries = make(map[string]struct{})
	}
	for i := range ids {
		m.discoveries[ids[i]] = struct{}{}
	}
}

// ClearDiscoveries clears the "discoveries" edge to the TaskDiscovery entity.
func (m *TaskMutation) ClearDiscoveries() {
	m.cleareddiscoveries = true
}

// DiscoveriesCleared reports if the "discoveries" edge to the TaskDiscovery entity was cleared.
func (m *TaskMutation) DiscoveriesCleared() bool {
	return m.cleareddiscoveries
}

// RemoveDiscoveryIDs removes the "discoveries" edge to the TaskDiscovery entity by IDs.
func (m *TaskMutation) RemoveDiscoveryIDs(ids ...string) {
	if m.removeddiscoveries == nil {
		m.removeddiscoveries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.discoveries, ids[i])
		m.removeddiscoveries[ids[i]] = struct{}{}
	}
}

// RemovedDiscoveries returns the removed IDs of the "discoveries" edge to the TaskDiscovery entity.
func (m *TaskMutation) RemovedDiscoveriesIDs() (ids []string) {
	for id := range m.removeddiscoveries {
		ids = append(ids, id)
	}
	return
}

// DiscoveriesIDs returns the "discoveries" edge IDs in the mutation.
func (m *TaskMutation) DiscoveriesIDs() (ids []string) {
	for id := range m.discoveries {
		ids = append(ids, id)
	}
	return
}

// ResetDiscoveries resets all changes to the "discoveries" edge.
func (m *TaskMutation) ResetDiscoveries() {
	m.discoveries = nil
	m.cleareddiscoveries = false
	m.removeddiscoveries = nil
}

// AddAgentResultIDs adds the "agent_results" edge to the AgentResult entity by ids.
func (m *TaskMutation) AddAgentResultIDs(ids ...string) {
	if m.agent_results == nil {
		m.agent_results = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_results[ids[i]] = struct{}{}
	}
}

// ClearAgentResults clears the "agent_results" edge to the AgentResult entity.
func (m *TaskMutation) ClearAgentResults() {
	m.clearedagent_results = true
}

// AgentResultsCleared reports if the "agent_results" edge to the AgentResult entity was cleared.
func (m *TaskMutation) AgentResultsCleared() bool {
	return m.clearedagent_results
}

// RemoveAgentResultIDs removes the "agent_results" edge to the AgentResult entity by IDs.
func (m *TaskMutation) RemoveAgentResultIDs(ids ...string) {
	if m.removedagent_results == nil {
		m.removedagent_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_results, ids[i])
		m.removedagent_results[ids[i]] = struct{}{}
	}
}

// RemovedAgentResults returns the removed IDs of the "agent_results" edge to the AgentResult entity.
func (m *TaskMutation) RemovedAgentResultsIDs() (ids []string) {
	for id := range m.removedagent_results {
		ids = append(ids, id)
	}
	return
}

// AgentResultsIDs returns the "agent_results" edge IDs in the mutation.
func (m *TaskMutation) AgentResultsIDs() (ids []string) {
	for id := range m.agent_results {
		ids = append(ids, id)
	}
	return
}

// ResetAgentResults resets all changes to the "agent_results" edge.
func (m *TaskMutation) ResetAgentResults() {
	m.agent_results = nil
	m.clearedagent_results = false
	m.removedagent_results = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.ticket != nil {
		fields = append(fields, task.FieldTicketID)
	}
	if m.phase_id != nil {
		fields = append(fields, task.FieldPhaseID)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.sandbox_id != nil {
		fields = append(fields, task.FieldSandboxID)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.deadline_at != nil {
		fields = append(fields, task.FieldDeadlineAt)
	}
	if m.score != nil {
		fields = append(fields, task.FieldScore)
	}
	if m.validation_enabled != nil {
		fields = append(fields, task.FieldValidationEnabled)
	}
	if m.validation_iteration != nil {
		fields = append(fields, task.FieldValidationIteration)
	}
	if m.review_done != nil {
		fields = append(fields, task.FieldReviewDone)
	}
	if m.last_validation_feedback != nil {
		fields = append(fields, task.FieldLastValidationFeedback)
	}
	if m.commit_sha != nil {
		fields = append(fields, task.FieldCommitSha)
	}
	if m.owned_files != nil {
		fields = append(fields, task.FieldOwnedFiles)
	}
	if m.dependencies != nil {
		fields = append(fields, task.FieldDependencies)
	}
	if m.content_hash != nil {
		fields = append(fields, task.FieldContentHash)
	}
	if m.claimed_at != nil {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTicketID:
		return m.TicketID()
	case task.FieldPhaseID:
		return m.PhaseID()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldDescription:
		return m.Description()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case task.FieldSandboxID:
		return m.SandboxID()
	case task.FieldResult:
		return m.Result()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldMaxRetries:
		return m.MaxRetries()
	case task.FieldDeadlineAt:
		return m.DeadlineAt()
	case task.FieldScore:
		return m.Score()
	case task.FieldValidationEnabled:
		return m.ValidationEnabled()
	case task.FieldValidationIteration:
		return m.ValidationIteration()
	case task.FieldReviewDone:
		return m.ReviewDone()
	case task.FieldLastValidationFeedback:
		return m.LastValidationFeedback()
	case task.FieldCommitSha:
		return m.CommitSha()
	case task.FieldOwnedFiles:
		return m.OwnedFiles()
	case task.FieldDependencies:
		return m.Dependencies()
	case task.FieldContentHash:
		return m.ContentHash()
	case task.FieldClaimedAt:
		return m.ClaimedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTicketID:
		return m.OldTicketID(ctx)
	case task.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case task.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case task.FieldDeadlineAt:
		return m.OldDeadlineAt(ctx)
	case task.FieldScore:
		return m.OldScore(ctx)
	case task.FieldValidationEnabled:
		return m.OldValidationEnabled(ctx)
	case task.FieldValidationIteration:
		return m.OldValidationIteration(ctx)
	case task.FieldReviewDone:
		return m.OldReviewDone(ctx)
	case task.FieldLastValidationFeedback:
		return m.OldLastValidationFeedback(ctx)
	case task.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case task.FieldOwnedFiles:
		return m.OldOwnedFiles(ctx)
	case task.FieldDependencies:
		return m.OldDependencies(ctx)
	case task.FieldContentHash:
		return m.OldContentHash(ctx)
	case task.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case task.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case task.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case task.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case task.FieldDeadlineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineAt(v)
		return nil
	case task.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case task.FieldValidationEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationEnabled(v)
		return nil
	case task.FieldValidationIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationIteration(v)
		return nil
	case task.FieldReviewDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewDone(v)
		return nil
	case task.FieldLastValidationFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastValidationFeedback(v)
		return nil
	case task.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case task.FieldOwnedFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnedFiles(v)
		return nil
	case task.FieldDependencies:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case task.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case task.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.addscore != nil {
		fields = append(fields, task.FieldScore)
	}
	if m.addvalidation_iteration != nil {
		fields = append(fields, task.FieldValidationIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	case task.FieldMaxRetries:
		return m.AddedMaxRetries()
	case task.FieldScore:
		return m.AddedScore()
	case task.FieldValidationIteration:
		return m.AddedValidationIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case task.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case task.FieldValidationIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidationIteration(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldAssignedAgentID) {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.FieldCleared(task.FieldSandboxID) {
		fields = append(fields, task.FieldSandboxID)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldDeadlineAt) {
		fields = append(fields, task.FieldDeadlineAt)
	}
	if m.FieldCleared(task.FieldLastValidationFeedback) {
		fields = append(fields, task.FieldLastValidationFeedback)
	}
	if m.FieldCleared(task.FieldCommitSha) {
		fields = append(fields, task.FieldCommitSha)
	}
	if m.FieldCleared(task.FieldOwnedFiles) {
		fields = append(fields, task.FieldOwnedFiles)
	}
	if m.FieldCleared(task.FieldDependencies) {
		fields = append(fields, task.FieldDependencies)
	}
	if m.FieldCleared(task.FieldContentHash) {
		fields = append(fields, task.FieldContentHash)
	}
	if m.FieldCleared(task.FieldClaimedAt) {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case task.FieldSandboxID:
		m.ClearSandboxID()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldDeadlineAt:
		m.ClearDeadlineAt()
		return nil
	case task.FieldLastValidationFeedback:
		m.ClearLastValidationFeedback()
		return nil
	case task.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	case task.FieldOwnedFiles:
		m.ClearOwnedFiles()
		return nil
	case task.FieldDependencies:
		m.ClearDependencies()
		return nil
	case task.FieldContentHash:
		m.ClearContentHash()
		return nil
	case task.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTicketID:
		m.ResetTicketID()
		return nil
	case task.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case task.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case task.FieldDeadlineAt:
		m.ResetDeadlineAt()
		return nil
	case task.FieldScore:
		m.ResetScore()
		return nil
	case task.FieldValidationEnabled:
		m.ResetValidationEnabled()
		return nil
	case task.FieldValidationIteration:
		m.ResetValidationIteration()
		return nil
	case task.FieldReviewDone:
		m.ResetReviewDone()
		return nil
	case task.FieldLastValidationFeedback:
		m.ResetLastValidationFeedback()
		return nil
	case task.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case task.FieldOwnedFiles:
		m.ResetOwnedFiles()
		return nil
	case task.FieldDependencies:
		m.ResetDependencies()
		return nil
	case task.FieldContentHash:
		m.ResetContentHash()
		return nil
	case task.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.ticket != nil {
		edges = append(edges, task.EdgeTicket)
	}
	if m.memories != nil {
		edges = append(edges, task.EdgeMemories)
	}
	if m.validation_reviews != nil {
		edges = append(edges, task.EdgeValidationReviews)
	}
	if m.discoveries != nil {
		edges = append(edges, task.EdgeDiscoveries)
	}
	if m.agent_results != nil {
		edges = append(edges, task.EdgeAgentResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.memories))
		for id := range m.memories {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeValidationReviews:
		ids := make([]ent.Value, 0, len(m.validation_reviews))
		for id := range m.validation_reviews {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeDiscoveries:
		ids := make([]ent.Value, 0, len(m.discoveries))
		for id := range m.discoveries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAgentResults:
		ids := make([]ent.Value, 0, len(m.agent_results))
		for id := range m.agent_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedmemories != nil {
		edges = append(edges, task.EdgeMemories)
	}
	if m.removedvalidation_reviews != nil {
		edges = append(edges, task.EdgeValidationReviews)
	}
	if m.removeddiscoveries != nil {
		edges = append(edges, task.EdgeDiscoveries)
	}
	if m.removedagent_results != nil {
		edges = append(edges, task.EdgeAgentResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.removedmemories))
		for id := range m.removedmemories {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeValidationReviews:
		ids := make([]ent.Value, 0, len(m.removedvalidation_reviews))
		for id := range m.removedvalidation_reviews {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeDiscoveries:
		ids := make([]ent.Value, 0, len(m.removeddiscoveries))
		for id := range m.removeddiscoveries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAgentResults:
		ids := make([]ent.Value, 0, len(m.removedagent_results))
		for id := range m.removedagent_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedticket {
		edges = append(edges, task.EdgeTicket)
	}
	if m.clearedmemories {
		edges = append(edges, task.EdgeMemories)
	}
	if m.clearedvalidation_reviews {
		edges = append(edges, task.EdgeValidationReviews)
	}
	if m.cleareddiscoveries {
		edges = append(edges, task.EdgeDiscoveries)
	}
	if m.clearedagent_results {
		edges = append(edges, task.EdgeAgentResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeTicket:
		return m.clearedticket
	case task.EdgeMemories:
		return m.clearedmemories
	case task.EdgeValidationReviews:
		return m.clearedvalidation_reviews
	case task.EdgeDiscoveries:
		return m.cleareddiscoveries
	case task.EdgeAgentResults:
		return m.clearedagent_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeTicket:
		m.ResetTicket()
		return nil
	case task.EdgeMemories:
		m.ResetMemories()
		return nil
	case task.EdgeValidationReviews:
		m.ResetValidationReviews()
		return nil
	case task.EdgeDiscoveries:
		m.ResetDiscoveries()
		return nil
	case task.EdgeAgentResults:
		m.ResetAgentResults()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskDiscoveryMutation represents an operation that mutates the TaskDiscovery nodes in the graph.
type TaskDiscoveryMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	discovery_type         *string
	description            *string
	spawned_task_ids       *[]string
	appendspawned_task_ids []string
	priority_boost         *bool
	resolution_status      *taskdiscovery.ResolutionStatus
	discovered_at          *time.Time
	clearedFields          map[string]struct{}
	source_task            *string
	clearedsource_task     bool
	done                   bool
	oldValue               func(context.Context) (*TaskDiscovery, error)
	predicates             []predicate.TaskDiscovery
}

var _ ent.Mutation = (*TaskDiscoveryMutation)(nil)

// taskdiscoveryOption allows management of the mutation configuration using functional options.
type taskdiscoveryOption func(*TaskDiscoveryMutation)

// newTaskDiscoveryMutation creates new mutation for the TaskDiscovery entity.
func newTaskDiscoveryMutation(c config, op Op, opts ...taskdiscoveryOption) *TaskDiscoveryMutation {
	m := &TaskDiscoveryMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskDiscovery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskDiscoveryID sets the ID field of the mutation.
func withTaskDiscoveryID(id string) taskdiscoveryOption {
	return func(m *TaskDiscoveryMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskDiscovery
		)
		m.oldValue = func(ctx context.Context) (*TaskDiscovery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskDiscovery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskDiscovery sets the old TaskDiscovery of the mutation.
func withTaskDiscovery(node *TaskDiscovery) taskdiscoveryOption {
	return func(m *TaskDiscoveryMutation) {
		m.oldValue = func(context.Context) (*TaskDiscovery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskDiscoveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskDiscoveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskDiscovery entities.
func (m *TaskDiscoveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskDiscoveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskDiscoveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskDiscovery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceTaskID sets the "source_task_id" field.
func (m *TaskDiscoveryMutation) SetSourceTaskID(s string) {
	m.source_task = &s
}

// SourceTaskID returns the value of the "source_task_id" field in the mutation.
func (m *TaskDiscoveryMutation) SourceTaskID() (r string, exists bool) {
	v := m.source_task
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTaskID returns the old "source_task_id" field's value of the TaskDiscovery entity.
// If the TaskDiscovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDiscoveryMutation) OldSourceTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTaskID: %w", err)
	}
	return oldValue.SourceTaskID, nil
}

// ResetSourceTaskID resets all changes to the "source_task_id" field.
func (m *TaskDiscoveryMutation) ResetSourceTaskID() {
	m.source_task = nil
}

// SetDiscoveryType sets the "discovery_type" field.
func (m *TaskDiscoveryMutation) SetDiscoveryType(s string) {
	m.discovery_type = &s
}

// DiscoveryType returns the value of the "discovery_type" field in the mutation.
func (m *TaskDiscoveryMutation) DiscoveryType() (r string, exists bool) {
	v := m.discovery_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveryType returns the old "discovery_type" field's value of the TaskDiscovery entity.
// If the TaskDiscovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDiscoveryMutation) OldDiscoveryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveryType: %w", err)
	}
	return oldValue.DiscoveryType, nil
}

// ResetDiscoveryType resets all changes to the "discovery_type" field.
func (m *TaskDiscoveryMutation) ResetDiscoveryType() {
	m.discovery_type = nil
}

// SetDescription sets the "description" field.
func (m *TaskDiscoveryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskDiscoveryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TaskDiscovery entity.
// If the TaskDiscovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDiscoveryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskDiscoveryMutation) ResetDescription() {
	m.description = nil
}

// SetSpawnedTaskIds sets the "spawned_task_ids" field.
func (m *TaskDiscoveryMutation) SetSpawnedTaskIds(s []string) {
	m.spawned_task_ids = &s
	m.appendspawned_task_ids = nil
}

// SpawnedTaskIds returns the value of the "spawned_task_ids" field in the mutation.
func (m *TaskDiscoveryMutation) SpawnedTaskIds() (r []string, exists bool) {
	v := m.spawned_task_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSpawnedTaskIds returns the old "spawned_task_ids" field's value of the TaskDiscovery entity.
// If the TaskDiscovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDiscoveryMutation) OldSpawnedTaskIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpawnedTaskIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpawnedTaskIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpawnedTaskIds: %w", err)
	}
	return oldValue.SpawnedTaskIds, nil
}

// AppendSpawnedTaskIds adds s to the "spawned_task_ids" field.
func (m *TaskDiscoveryMutation) AppendSpawnedTaskIds(s []string) {
	m.appendspawned_task_ids = append(m.appendspawned_task_ids, s...)
}

// AppendedSpawnedTaskIds returns the list of values that were appended to the "spawned_task_ids" field in this mutation.
func (m *TaskDiscoveryMutation) AppendedSpawnedTaskIds() ([]string, bool) {
	if len(m.appendspawned_task_ids) == 0 {
		return nil, false
	}
	return m.appendspawned_task_ids, true
}

// ClearSpawnedTaskIds clears the value of the "spawned_task_ids" field.
func (m *TaskDiscoveryMutation) ClearSpawnedTaskIds() {
	m.spawned_task_ids = nil
	m.appendspawned_task_ids = nil
	m.clearedFields[taskdiscovery.FieldSpawnedTaskIds] = struct{}{}
}

// SpawnedTaskIdsCleared returns if the "spawned_task_ids" field was cleared in this mutation.
func (m *TaskDiscoveryMutation) SpawnedTaskIdsCleared() bool {
	_, ok := m.clearedFields[taskdiscovery.FieldSpawnedTaskIds]
	return ok
}

// ResetSpawnedTaskIds resets all changes to the "spawned_task_ids" field.
func (m *TaskDiscoveryMutation) ResetSpawnedTaskIds() {
	m.spawned_task_ids = nil
	m.appendspawned_task_ids = nil
	delete(m.clearedFields, taskdiscovery.FieldSpawnedTaskIds)
}

// SetPriorityBoost sets the "priority_boost" field.
func (m *TaskDiscoveryMutation) SetPriorityBoost(b bool) {
	m.priority_boost = &b
}

// PriorityBoost returns the value of the "priority_boost" field in the mutation.
func (m *TaskDiscoveryMutation) PriorityBoost() (r bool, exists bool) {
	v := m.priority_boost
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityBoost returns the old "priority_boost" field's value of the TaskDiscovery entity.
// If the TaskDiscovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDiscoveryMutation) OldPriorityBoost(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityBoost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityBoost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityBoost: %w", err)
	}
	return oldValue.PriorityBoost, nil
}

// ResetPriorityBoost resets all changes to the "priority_boost" field.
func (m *TaskDiscoveryMutation) ResetPriorityBoost() {
	m.priority_boost = nil
}

// SetResolutionStatus sets the "resolution_status" field.
func (m *TaskDiscoveryMutation) SetResolutionStatus(ts taskdiscovery.ResolutionStatus) {
	m.resolution_status = &ts
}

// ResolutionStatus returns the value of the "resolution_status" field in the mutation.
func (m *TaskDiscoveryMutation) ResolutionStatus() (r taskdiscovery.ResolutionStatus, exists bool) {
	v := m.resolution_status
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionStatus returns the old "resolution_status" field's value of the TaskDiscovery entity.
// If the TaskDiscovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDiscoveryMutation) OldResolutionStatus(ctx context.Context) (v taskdiscovery.ResolutionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionStatus: %w", err)
	}
	return oldValue.ResolutionStatus, nil
}

// ResetResolutionStatus resets all changes to the "resolution_status" field.
func (m *TaskDiscoveryMutation) ResetResolutionStatus() {
	m.resolution_status = nil
}

// SetDiscoveredAt sets the "discovered_at" field.
func (m *TaskDiscoveryMutation) SetDiscoveredAt(t time.Time) {
	m.discovered_at = &t
}

// DiscoveredAt returns the value of the "discovered_at" field in the mutation.
func (m *TaskDiscoveryMutation) DiscoveredAt() (r time.Time, exists bool) {
	v := m.discovered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveredAt returns the old "discovered_at" field's value of the TaskDiscovery entity.
// If the TaskDiscovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDiscoveryMutation) OldDiscoveredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveredAt: %w", err)
	}
	return oldValue.DiscoveredAt, nil
}

// ResetDiscoveredAt resets all changes to the "discovered_at" field.
func (m *TaskDiscoveryMutation) ResetDiscoveredAt() {
	m.discovered_at = nil
}

// ClearSourceTask clears the "source_task" edge to the Task entity.
func (m *TaskDiscoveryMutation) ClearSourceTask() {
	m.clearedsource_task = true
	m.clearedFields[taskdiscovery.FieldSourceTaskID] = struct{}{}
}

// SourceTaskCleared reports if the "source_task" edge to the Task entity was cleared.
func (m *TaskDiscoveryMutation) SourceTaskCleared() bool {
	return m.clearedsource_task
}

// SourceTaskIDs returns the "source_task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceTaskID instead. It exists only for internal usage by the builders.
func (m *TaskDiscoveryMutation) SourceTaskIDs() (ids []string) {
	if id := m.source_task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSourceTask resets all changes to the "source_task" edge.
func (m *TaskDiscoveryMutation) ResetSourceTask() {
	m.source_task = nil
	m.clearedsource_task = false
}

// Where appends a list predicates to the TaskDiscoveryMutation builder.
func (m *TaskDiscoveryMutation) Where(ps ...predicate.TaskDiscovery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskDiscoveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskDiscoveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskDiscovery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskDiscoveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskDiscoveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskDiscovery).
func (m *TaskDiscoveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskDiscoveryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.source_task != nil {
		fields = append(fields, taskdiscovery.FieldSourceTaskID)
	}
	if m.discovery_type != nil {
		fields = append(fields, taskdiscovery.FieldDiscoveryType)
	}
	if m.description != nil {
		fields = append(fields, taskdiscovery.FieldDescription)
	}
	if m.spawned_task_ids != nil {
		fields = append(fields, taskdiscovery.FieldSpawnedTaskIds)
	}
	if m.priority_boost != nil {
		fields = append(fields, taskdiscovery.FieldPriorityBoost)
	}
	if m.resolution_status != nil {
		fields = append(fields, taskdiscovery.FieldResolutionStatus)
	}
	if m.discovered_at != nil {
		fields = append(fields, taskdiscovery.FieldDiscoveredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskDiscoveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskdiscovery.FieldSourceTaskID:
		return m.SourceTaskID()
	case taskdiscovery.FieldDiscoveryType:
		return m.DiscoveryType()
	case taskdiscovery.FieldDescription:
		return m.Description()
	case taskdiscovery.FieldSpawnedTaskIds:
		return m.SpawnedTaskIds()
	case taskdiscovery.FieldPriorityBoost:
		return m.PriorityBoost()
	case taskdiscovery.FieldResolutionStatus:
		return m.ResolutionStatus()
	case taskdiscovery.FieldDiscoveredAt:
		return m.DiscoveredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskDiscoveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskdiscovery.FieldSourceTaskID:
		return m.OldSourceTaskID(ctx)
	case taskdiscovery.FieldDiscoveryType:
		return m.OldDiscoveryType(ctx)
	case taskdiscovery.FieldDescription:
		return m.OldDescription(ctx)
	case taskdiscovery.FieldSpawnedTaskIds:
		return m.OldSpawnedTaskIds(ctx)
	case taskdiscovery.FieldPriorityBoost:
		return m.OldPriorityBoost(ctx)
	case taskdiscovery.FieldResolutionStatus:
		return m.OldResolutionStatus(ctx)
	case taskdiscovery.FieldDiscoveredAt:
		return m.OldDiscoveredAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskDiscovery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskDiscoveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskdiscovery.FieldSourceTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTaskID(v)
		return nil
	case taskdiscovery.FieldDiscoveryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveryType(v)
		return nil
	case taskdiscovery.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case taskdiscovery.FieldSpawnedTaskIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpawnedTaskIds(v)
		return nil
	case taskdiscovery.FieldPriorityBoost:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityBoost(v)
		return nil
	case taskdiscovery.FieldResolutionStatus:
		v, ok := value.(taskdiscovery.ResolutionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionStatus(v)
		return nil
	case taskdiscovery.FieldDiscoveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveredAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskDiscovery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskDiscoveryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskDiscoveryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskDiscoveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskDiscovery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskDiscoveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskdiscovery.FieldSpawnedTaskIds) {
		fields = append(fields, taskdiscovery.FieldSpawnedTaskIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskDiscoveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskDiscoveryMutation) ClearField(name string) error {
	switch name {
	case taskdiscovery.FieldSpawnedTaskIds:
		m.ClearSpawnedTaskIds()
		return nil
	}
	return fmt.Errorf("unknown TaskDiscovery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskDiscoveryMutation) ResetField(name string) error {
	switch name {
	case taskdiscovery.FieldSourceTaskID:
		m.ResetSourceTaskID()
		return nil
	case taskdiscovery.FieldDiscoveryType:
		m.ResetDiscoveryType()
		return nil
	case taskdiscovery.FieldDescription:
		m.ResetDescription()
		return nil
	case taskdiscovery.FieldSpawnedTaskIds:
		m.ResetSpawnedTaskIds()
		return nil
	case taskdiscovery.FieldPriorityBoost:
		m.ResetPriorityBoost()
		return nil
	case taskdiscovery.FieldResolutionStatus:
		m.ResetResolutionStatus()
		return nil
	case taskdiscovery.FieldDiscoveredAt:
		m.ResetDiscoveredAt()
		return nil
	}
	return fmt.Errorf("unknown TaskDiscovery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskDiscoveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.source_task != nil {
		edges = append(edges, taskdiscovery.EdgeSourceTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskDiscoveryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskdiscovery.EdgeSourceTask:
		if id := m.source_task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskDiscoveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskDiscoveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskDiscoveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsource_task {
		edges = append(edges, taskdiscovery.EdgeSourceTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskDiscoveryMutation) EdgeCleared(name string) bool {
	switch name {
	case taskdiscovery.EdgeSourceTask:
		return m.clearedsource_task
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskDiscoveryMutation) ClearEdge(name string) error {
	switch name {
	case taskdiscovery.EdgeSourceTask:
		m.ClearSourceTask()
		return nil
	}
	return fmt.Errorf("unknown TaskDiscovery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskDiscoveryMutation) ResetEdge(name string) error {
	switch name {
	case taskdiscovery.EdgeSourceTask:
		m.ResetSourceTask()
		return nil
	}
	return fmt.Errorf("unknown TaskDiscovery edge %s", name)
}

// TaskMemoryMutation represents an operation that mutates the TaskMemory nodes in the graph.
type TaskMemoryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	execution_summary    *string
	memory_type          *taskmemory.MemoryType
	context_embedding    *pgvector.Vector
	success              *bool
	error_patterns       *[]string
	appenderror_patterns []string
	goal                 *string
	result               *string
	feedback             *string
	tool_usage           *[]map[string]interface{}
	appendtool_usage     []map[string]interface{}
	reused_count         *int
	addreused_count      *int
	learned_at           *time.Time
	clearedFields        map[string]struct{}
	task                 *string
	clearedtask          bool
	done                 bool
	oldValue             func(context.Context) (*TaskMemory, error)
	predicates           []predicate.TaskMemory
}

var _ ent.Mutation = (*TaskMemoryMutation)(nil)

// taskmemoryOption allows management of the mutation configuration using functional options.
type taskmemoryOption func(*TaskMemoryMutation)

// newTaskMemoryMutation creates new mutation for the TaskMemory entity.
func newTaskMemoryMutation(c config, op Op, opts ...taskmemoryOption) *TaskMemoryMutation {
	m := &TaskMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskMemoryID sets the ID field of the mutation.
func withTaskMemoryID(id string) taskmemoryOption {
	return func(m *TaskMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskMemory
		)
		m.oldValue = func(ctx context.Context) (*TaskMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskMemory sets the old TaskMemory of the mutation.
func withTaskMemory(node *TaskMemory) taskmemoryOption {
	return func(m *TaskMemoryMutation) {
		m.oldValue = func(context.Context) (*TaskMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskMemory entities.
func (m *TaskMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskMemoryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskMemoryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskMemoryMutation) ResetTaskID() {
	m.task = nil
}

// SetExecutionSummary sets the "execution_summary" field.
func (m *TaskMemoryMutation) SetExecutionSummary(s string) {
	m.execution_summary = &s
}

// ExecutionSummary returns the value of the "execution_summary" field in the mutation.
func (m *TaskMemoryMutation) ExecutionSummary() (r string, exists bool) {
	v := m.execution_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionSummary returns the old "execution_summary" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldExecutionSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionSummary: %w", err)
	}
	return oldValue.ExecutionSummary, nil
}

// ResetExecutionSummary resets all changes to the "execution_summary" field.
func (m *TaskMemoryMutation) ResetExecutionSummary() {
	m.execution_summary = nil
}

// SetMemoryType sets the "memory_type" field.
func (m *TaskMemoryMutation) SetMemoryType(tt taskmemory.MemoryType) {
	m.memory_type = &tt
}

// MemoryType returns the value of the "memory_type" field in the mutation.
func (m *TaskMemoryMutation) MemoryType() (r taskmemory.MemoryType, exists bool) {
	v := m.memory_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryType returns the old "memory_type" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldMemoryType(ctx context.Context) (v taskmemory.MemoryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryType: %w", err)
	}
	return oldValue.MemoryType, nil
}

// ResetMemoryType resets all changes to the "memory_type" field.
func (m *TaskMemoryMutation) ResetMemoryType() {
	m.memory_type = nil
}

// SetContextEmbedding sets the "context_embedding" field.
func (m *TaskMemoryMutation) SetContextEmbedding(pg pgvector.Vector) {
	m.context_embedding = &pg
}

// ContextEmbedding returns the value of the "context_embedding" field in the mutation.
func (m *TaskMemoryMutation) ContextEmbedding() (r pgvector.Vector, exists bool) {
	v := m.context_embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldContextEmbedding returns the old "context_embedding" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldContextEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextEmbedding: %w", err)
	}
	return oldValue.ContextEmbedding, nil
}

// ResetContextEmbedding resets all changes to the "context_embedding" field.
func (m *TaskMemoryMutation) ResetContextEmbedding() {
	m.context_embedding = nil
}

// SetSuccess sets the "success" field.
func (m *TaskMemoryMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *TaskMemoryMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *TaskMemoryMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorPatterns sets the "error_patterns" field.
func (m *TaskMemoryMutation) SetErrorPatterns(s []string) {
	m.error_patterns = &s
	m.appenderror_patterns = nil
}

// ErrorPatterns returns the value of the "error_patterns" field in the mutation.
func (m *TaskMemoryMutation) ErrorPatterns() (r []string, exists bool) {
	v := m.error_patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorPatterns returns the old "error_patterns" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldErrorPatterns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorPatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorPatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorPatterns: %w", err)
	}
	return oldValue.ErrorPatterns, nil
}

// AppendErrorPatterns adds s to the "error_patterns" field.
func (m *TaskMemoryMutation) AppendErrorPatterns(s []string) {
	m.appenderror_patterns = append(m.appenderror_patterns, s...)
}

// AppendedErrorPatterns returns the list of values that were appended to the "error_patterns" field in this mutation.
func (m *TaskMemoryMutation) AppendedErrorPatterns() ([]string, bool) {
	if len(m.appenderror_patterns) == 0 {
		return nil, false
	}
	return m.appenderror_patterns, true
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (m *TaskMemoryMutation) ClearErrorPatterns() {
	m.error_patterns = nil
	m.appenderror_patterns = nil
	m.clearedFields[taskmemory.FieldErrorPatterns] = struct{}{}
}

// ErrorPatternsCleared returns if the "error_patterns" field was cleared in this mutation.
func (m *TaskMemoryMutation) ErrorPatternsCleared() bool {
	_, ok := m.clearedFields[taskmemory.FieldErrorPatterns]
	return ok
}

// ResetErrorPatterns resets all changes to the "error_patterns" field.
func (m *TaskMemoryMutation) ResetErrorPatterns() {
	m.error_patterns = nil
	m.appenderror_patterns = nil
	delete(m.clearedFields, taskmemory.FieldErrorPatterns)
}

// SetGoal sets the "goal" field.
func (m *TaskMemoryMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *TaskMemoryMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldGoal(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ClearGoal clears the value of the "goal" field.
func (m *TaskMemoryMutation) ClearGoal() {
	m.goal = nil
	m.clearedFields[taskmemory.FieldGoal] = struct{}{}
}

// GoalCleared returns if the "goal" field was cleared in this mutation.
func (m *TaskMemoryMutation) GoalCleared() bool {
	_, ok := m.clearedFields[taskmemory.FieldGoal]
	return ok
}

// ResetGoal resets all changes to the "goal" field.
func (m *TaskMemoryMutation) ResetGoal() {
	m.goal = nil
	delete(m.clearedFields, taskmemory.FieldGoal)
}

// SetResult sets the "result" field.
func (m *TaskMemoryMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMemoryMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMemoryMutation) ClearResult() {
	m.result = nil
	m.clearedFields[taskmemory.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMemoryMutation) ResultCleared() bool {
	_, ok := m.clearedFields[taskmemory.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMemoryMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, taskmemory.FieldResult)
}

// SetFeedback sets the "feedback" field.
func (m *TaskMemoryMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *TaskMemoryMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *TaskMemoryMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[taskmemory.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *TaskMemoryMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[taskmemory.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *TaskMemoryMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, taskmemory.FieldFeedback)
}

// SetToolUsage sets the "tool_usage" field.
func (m *TaskMemoryMutation) SetToolUsage(value []map[string]interface{}) {
	m.tool_usage = &value
	m.appendtool_usage = nil
}

// ToolUsage returns the value of the "tool_usage" field in the mutation.
func (m *TaskMemoryMutation) ToolUsage() (r []map[string]interface{}, exists bool) {
	v := m.tool_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldToolUsage returns the old "tool_usage" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldToolUsage(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolUsage: %w", err)
	}
	return oldValue.ToolUsage, nil
}

// AppendToolUsage adds value to the "tool_usage" field.
func (m *TaskMemoryMutation) AppendToolUsage(value []map[string]interface{}) {
	m.appendtool_usage = append(m.appendtool_usage, value...)
}

// AppendedToolUsage returns the list of values that were appended to the "tool_usage" field in this mutation.
func (m *TaskMemoryMutation) AppendedToolUsage() ([]map[string]interface{}, bool) {
	if len(m.appendtool_usage) == 0 {
		return nil, false
	}
	return m.appendtool_usage, true
}

// ClearToolUsage clears the value of the "tool_usage" field.
func (m *TaskMemoryMutation) ClearToolUsage() {
	m.tool_usage = nil
	m.appendtool_usage = nil
	m.clearedFields[taskmemory.FieldToolUsage] = struct{}{}
}

// ToolUsageCleared returns if the "tool_usage" field was cleared in this mutation.
func (m *TaskMemoryMutation) ToolUsageCleared() bool {
	_, ok := m.clearedFields[taskmemory.FieldToolUsage]
	return ok
}

// ResetToolUsage resets all changes to the "tool_usage" field.
func (m *TaskMemoryMutation) ResetToolUsage() {
	m.tool_usage = nil
	m.appendtool_usage = nil
	delete(m.clearedFields, taskmemory.FieldToolUsage)
}

// SetReusedCount sets the "reused_count" field.
func (m *TaskMemoryMutation) SetReusedCount(i int) {
	m.reused_count = &i
	m.addreused_count = nil
}

// ReusedCount returns the value of the "reused_count" field in the mutation.
func (m *TaskMemoryMutation) ReusedCount() (r int, exists bool) {
	v := m.reused_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReusedCount returns the old "reused_count" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldReusedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReusedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReusedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReusedCount: %w", err)
	}
	return oldValue.ReusedCount, nil
}

// AddReusedCount adds i to the "reused_count" field.
func (m *TaskMemoryMutation) AddReusedCount(i int) {
	if m.addreused_count != nil {
		*m.addreused_count += i
	} else {
		m.addreused_count = &i
	}
}

// AddedReusedCount returns the value that was added to the "reused_count" field in this mutation.
func (m *TaskMemoryMutation) AddedReusedCount() (r int, exists bool) {
	v := m.addreused_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReusedCount resets all changes to the "reused_count" field.
func (m *TaskMemoryMutation) ResetReusedCount() {
	m.reused_count = nil
	m.addreused_count = nil
}

// SetLearnedAt sets the "learned_at" field.
func (m *TaskMemoryMutation) SetLearnedAt(t time.Time) {
	m.learned_at = &t
}

// LearnedAt returns the value of the "learned_at" field in the mutation.
func (m *TaskMemoryMutation) LearnedAt() (r time.Time, exists bool) {
	v := m.learned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnedAt returns the old "learned_at" field's value of the TaskMemory entity.
// If the TaskMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMemoryMutation) OldLearnedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnedAt: %w", err)
	}
	return oldValue.LearnedAt, nil
}

// ResetLearnedAt resets all changes to the "learned_at" field.
func (m *TaskMemoryMutation) ResetLearnedAt() {
	m.learned_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskMemoryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskmemory.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskMemoryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskMemoryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskMemoryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskMemoryMutation builder.
func (m *TaskMemoryMutation) Where(ps ...predicate.TaskMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskMemory).
func (m *TaskMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMemoryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task != nil {
		fields = append(fields, taskmemory.FieldTaskID)
	}
	if m.execution_summary != nil {
		fields = append(fields, taskmemory.FieldExecutionSummary)
	}
	if m.memory_type != nil {
		fields = append(fields, taskmemory.FieldMemoryType)
	}
	if m.context_embedding != nil {
		fields = append(fields, taskmemory.FieldContextEmbedding)
	}
	if m.success != nil {
		fields = append(fields, taskmemory.FieldSuccess)
	}
	if m.error_patterns != nil {
		fields = append(fields, taskmemory.FieldErrorPatterns)
	}
	if m.goal != nil {
		fields = append(fields, taskmemory.FieldGoal)
	}
	if m.result != nil {
		fields = append(fields, taskmemory.FieldResult)
	}
	if m.feedback != nil {
		fields = append(fields, taskmemory.FieldFeedback)
	}
	if m.tool_usage != nil {
		fields = append(fields, taskmemory.FieldToolUsage)
	}
	if m.reused_count != nil {
		fields = append(fields, taskmemory.FieldReusedCount)
	}
	if m.learned_at != nil {
		fields = append(fields, taskmemory.FieldLearnedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskmemory.FieldTaskID:
		return m.TaskID()
	case taskmemory.FieldExecutionSummary:
		return m.ExecutionSummary()
	case taskmemory.FieldMemoryType:
		return m.MemoryType()
	case taskmemory.FieldContextEmbedding:
		return m.ContextEmbedding()
	case taskmemory.FieldSuccess:
		return m.Success()
	case taskmemory.FieldErrorPatterns:
		return m.ErrorPatterns()
	case taskmemory.FieldGoal:
		return m.Goal()
	case taskmemory.FieldResult:
		return m.Result()
	case taskmemory.FieldFeedback:
		return m.Feedback()
	case taskmemory.FieldToolUsage:
		return m.ToolUsage()
	case taskmemory.FieldReusedCount:
		return m.ReusedCount()
	case taskmemory.FieldLearnedAt:
		return m.LearnedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskmemory.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskmemory.FieldExecutionSummary:
		return m.OldExecutionSummary(ctx)
	case taskmemory.FieldMemoryType:
		return m.OldMemoryType(ctx)
	case taskmemory.FieldContextEmbedding:
		return m.OldContextEmbedding(ctx)
	case taskmemory.FieldSuccess:
		return m.OldSuccess(ctx)
	case taskmemory.FieldErrorPatterns:
		return m.OldErrorPatterns(ctx)
	case taskmemory.FieldGoal:
		return m.OldGoal(ctx)
	case taskmemory.FieldResult:
		return m.OldResult(ctx)
	case taskmemory.FieldFeedback:
		return m.OldFeedback(ctx)
	case taskmemory.FieldToolUsage:
		return m.OldToolUsage(ctx)
	case taskmemory.FieldReusedCount:
		return m.OldReusedCount(ctx)
	case taskmemory.FieldLearnedAt:
		return m.OldLearnedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskmemory.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskmemory.FieldExecutionSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionSummary(v)
		return nil
	case taskmemory.FieldMemoryType:
		v, ok := value.(taskmemory.MemoryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryType(v)
		return nil
	case taskmemory.FieldContextEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextEmbedding(v)
		return nil
	case taskmemory.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case taskmemory.FieldErrorPatterns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorPatterns(v)
		return nil
	case taskmemory.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case taskmemory.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case taskmemory.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case taskmemory.FieldToolUsage:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolUsage(v)
		return nil
	case taskmemory.FieldReusedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReusedCount(v)
		return nil
	case taskmemory.FieldLearnedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMemoryMutation) AddedFields() []string {
	var fields []string
	if m.addreused_count != nil {
		fields = append(fields, taskmemory.FieldReusedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskmemory.FieldReusedCount:
		return m.AddedReusedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskmemory.FieldReusedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReusedCount(v)
		return nil
	}
	return fmt.Errorf("unknown TaskMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskmemory.FieldErrorPatterns) {
		fields = append(fields, taskmemory.FieldErrorPatterns)
	}
	if m.FieldCleared(taskmemory.FieldGoal) {
		fields = append(fields, taskmemory.FieldGoal)
	}
	if m.FieldCleared(taskmemory.FieldResult) {
		fields = append(fields, taskmemory.FieldResult)
	}
	if m.FieldCleared(taskmemory.FieldFeedback) {
		fields = append(fields, taskmemory.FieldFeedback)
	}
	if m.FieldCleared(taskmemory.FieldToolUsage) {
		fields = append(fields, taskmemory.FieldToolUsage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMemoryMutation) ClearField(name string) error {
	switch name {
	case taskmemory.FieldErrorPatterns:
		m.ClearErrorPatterns()
		return nil
	case taskmemory.FieldGoal:
		m.ClearGoal()
		return nil
	case taskmemory.FieldResult:
		m.ClearResult()
		return nil
	case taskmemory.FieldFeedback:
		m.ClearFeedback()
		return nil
	case taskmemory.FieldToolUsage:
		m.ClearToolUsage()
		return nil
	}
	return fmt.Errorf("unknown TaskMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMemoryMutation) ResetField(name string) error {
	switch name {
	case taskmemory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskmemory.FieldExecutionSummary:
		m.ResetExecutionSummary()
		return nil
	case taskmemory.FieldMemoryType:
		m.ResetMemoryType()
		return nil
	case taskmemory.FieldContextEmbedding:
		m.ResetContextEmbedding()
		return nil
	case taskmemory.FieldSuccess:
		m.ResetSuccess()
		return nil
	case taskmemory.FieldErrorPatterns:
		m.ResetErrorPatterns()
		return nil
	case taskmemory.FieldGoal:
		m.ResetGoal()
		return nil
	case taskmemory.FieldResult:
		m.ResetResult()
		return nil
	case taskmemory.FieldFeedback:
		m.ResetFeedback()
		return nil
	case taskmemory.FieldToolUsage:
		m.ResetToolUsage()
		return nil
	case taskmemory.FieldReusedCount:
		m.ResetReusedCount()
		return nil
	case taskmemory.FieldLearnedAt:
		m.ResetLearnedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskmemory.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMemoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskmemory.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskmemory.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMemoryMutation) EdgeCleared(name string) bool {
	switch name {
	case taskmemory.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMemoryMutation) ClearEdge(name string) error {
	switch name {
	case taskmemory.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMemoryMutation) ResetEdge(name string) error {
	switch name {
	case taskmemory.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskMemory edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	title                   *string
	description             *string
	phase_id                *string
	status                  *ticket.Status
	priority                *ticket.Priority
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	tasks                   map[string]struct{}
	removedtasks            map[string]struct{}
	clearedtasks            bool
	playbook_entries        map[string]struct{}
	removedplaybook_entries map[string]struct{}
	clearedplaybook_entries bool
	playbook_changes        map[string]struct{}
	removedplaybook_changes map[string]struct{}
	clearedplaybook_changes bool
	diagnostic_runs         map[string]struct{}
	removeddiagnostic_runs  map[string]struct{}
	cleareddiagnostic_runs  bool
	workflow_results        map[string]struct{}
	removedworkflow_results map[string]struct{}
	clearedworkflow_results bool
	project                 *string
	clearedproject          bool
	done                    bool
	oldValue                func(context.Context) (*Ticket, error)
	predicates              []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id string) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ticket entities.
func (m *TicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TicketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TicketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TicketMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TicketMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[ticket.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TicketMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[ticket.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, ticket.FieldDescription)
}

// SetPhaseID sets the "phase_id" field.
func (m *TicketMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *TicketMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *TicketMutation) ResetPhaseID() {
	m.phase_id = nil
}

// SetStatus sets the "status" field.
func (m *TicketMutation) SetStatus(t ticket.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TicketMutation) Status() (r ticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStatus(ctx context.Context) (v ticket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TicketMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TicketMutation) SetPriority(t ticket.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TicketMutation) Priority() (r ticket.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPriority(ctx context.Context) (v ticket.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TicketMutation) ResetPriority() {
	m.priority = nil
}

// SetProjectID sets the "project_id" field.
func (m *TicketMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TicketMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TicketMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[ticket.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TicketMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TicketMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, ticket.FieldProjectID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *TicketMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *TicketMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *TicketMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *TicketMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *TicketMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *TicketMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *TicketMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddPlaybookEntryIDs adds the "playbook_entries" edge to the PlaybookEntry entity by ids.
func (m *TicketMutation) AddPlaybookEntryIDs(ids ...string) {
	if m.playbook_entries == nil {
		m.playbook_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.playbook_entries[ids[i]] = struct{}{}
	}
}

// ClearPlaybookEntries clears the "playbook_entries" edge to the PlaybookEntry entity.
func (m *TicketMutation) ClearPlaybookEntries() {
	m.clearedplaybook_entries = true
}

// PlaybookEntriesCleared reports if the "playbook_entries" edge to the PlaybookEntry entity was cleared.
func (m *TicketMutation) PlaybookEntriesCleared() bool {
	return m.clearedplaybook_entries
}

// RemovePlaybookEntryIDs removes the "playbook_entries" edge to the PlaybookEntry entity by IDs.
func (m *TicketMutation) RemovePlaybookEntryIDs(ids ...string) {
	if m.removedplaybook_entries == nil {
		m.removedplaybook_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.playbook_entries, ids[i])
		m.removedplaybook_entries[ids[i]] = struct{}{}
	}
}

// RemovedPlaybookEntries returns the removed IDs of the "playbook_entries" edge to the PlaybookEntry entity.
func (m *TicketMutation) RemovedPlaybookEntriesIDs() (ids []string) {
	for id := range m.removedplaybook_entries {
		ids = append(ids, id)
	}
	return
}

// PlaybookEntriesIDs returns the "playbook_entries" edge IDs in the mutation.
func (m *TicketMutation) PlaybookEntriesIDs() (ids []string) {
	for id := range m.playbook_entries {
		ids = append(ids, id)
	}
	return
}

// ResetPlaybookEntries resets all changes to the "playbook_entries" edge.
func (m *TicketMutation) ResetPlaybookEntries() {
	m.playbook_entries = nil
	m.clearedplaybook_entries = false
	m.removedplaybook_entries = nil
}

// AddPlaybookChangeIDs adds the "playbook_changes" edge to the PlaybookChange entity by ids.
func (m *TicketMutation) AddPlaybookChangeIDs(ids ...string) {
	if m.playbook_changes == nil {
		m.playbook_changes = make(map[string]struct{})
	}
	for i := range ids {
		m.playbook_changes[ids[i]] = struct{}{}
	}
}

// ClearPlaybookChanges clears the "playbook_changes" edge to the PlaybookChange entity.
func (m *TicketMutation) ClearPlaybookChanges() {
	m.clearedplaybook_changes = true
}

// PlaybookChangesCleared reports if the "playbook_changes" edge to the PlaybookChange entity was cleared.
func (m *TicketMutation) PlaybookChangesCleared() bool {
	return m.clearedplaybook_changes
}

// RemovePlaybookChangeIDs removes the "playbook_changes" edge to the PlaybookChange entity by IDs.
func (m *TicketMutation) RemovePlaybookChangeIDs(ids ...string) {
	if m.removedplaybook_changes == nil {
		m.removedplaybook_changes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.playbook_changes, ids[i])
		m.removedplaybook_changes[ids[i]] = struct{}{}
	}
}

// RemovedPlaybookChanges returns the removed IDs of the "playbook_changes" edge to the PlaybookChange entity.
func (m *TicketMutation) RemovedPlaybookChangesIDs() (ids []string) {
	for id := range m.removedplaybook_changes {
		ids = append(ids, id)
	}
	return
}

// PlaybookChangesIDs returns the "playbook_changes" edge IDs in the mutation.
func (m *TicketMutation) PlaybookChangesIDs() (ids []string) {
	for id := range m.playbook_changes {
		ids = append(ids, id)
	}
	return
}

// ResetPlaybookChanges resets all changes to the "playbook_changes" edge.
func (m *TicketMutation) ResetPlaybookChanges() {
	m.playbook_changes = nil
	m.clearedplaybook_changes = false
	m.removedplaybook_changes = nil
}

// AddDiagnosticRunIDs adds the "diagnostic_runs" edge to the DiagnosticRun entity by ids.
func (m *TicketMutation) AddDiagnosticRunIDs(ids ...string) {
	if m.diagnostic_runs == nil {
		m.diagnostic_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.diagnostic_runs[ids[i]] = struct{}{}
	}
}

// ClearDiagnosticRuns clears the "diagnostic_runs" edge to the DiagnosticRun entity.
func (m *TicketMutation) ClearDiagnosticRuns() {
	m.cleareddiagnostic_runs = true
}

// DiagnosticRunsCleared reports if the "diagnostic_runs" edge to the DiagnosticRun entity was cleared.
func (m *TicketMutation) DiagnosticRunsCleared() bool {
	return m.cleareddiagnostic_runs
}

// RemoveDiagnosticRunIDs removes the "diagnostic_runs" edge to the DiagnosticRun entity by IDs.
func (m *TicketMutation) RemoveDiagnosticRunIDs(ids ...string) {
	if m.removeddiagnostic_runs == nil {
		m.removeddiagnostic_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.diagnostic_runs, ids[i])
		m.removeddiagnostic_runs[ids[i]] = struct{}{}
	}
}

// RemovedDiagnosticRuns returns the removed IDs of the "diagnostic_runs" edge to the DiagnosticRun entity.
func (m *TicketMutation) RemovedDiagnosticRunsIDs() (ids []string) {
	for id := range m.removeddiagnostic_runs {
		ids = append(ids, id)
	}
	return
}

// DiagnosticRunsIDs returns the "diagnostic_runs" edge IDs in the mutation.
func (m *TicketMutation) DiagnosticRunsIDs() (ids []string) {
	for id := range m.diagnostic_runs {
		ids = append(ids, id)
	}
	return
}

// ResetDiagnosticRuns resets all changes to the "diagnostic_runs" edge.
func (m *TicketMutation) ResetDiagnosticRuns() {
	m.diagnostic_runs = nil
	m.cleareddiagnostic_runs = false
	m.removeddiagnostic_runs = nil
}

// AddWorkflowResultIDs adds the "workflow_results" edge to the WorkflowResult entity by ids.
func (m *TicketMutation) AddWorkflowResultIDs(ids ...string) {
	if m.workflow_results == nil {
		m.workflow_results = make(map[string]struct{})
	}
	for i := range ids {
		m.workflow_results[ids[i]] = struct{}{}
	}
}

// ClearWorkflowResults clears the "workflow_results" edge to the WorkflowResult entity.
func (m *TicketMutation) ClearWorkflowResults() {
	m.clearedworkflow_results = true
}

// WorkflowResultsCleared reports if the "workflow_results" edge to the WorkflowResult entity was cleared.
func (m *TicketMutation) WorkflowResultsCleared() bool {
	return m.clearedworkflow_results
}

// RemoveWorkflowResultIDs removes the "workflow_results" edge to the WorkflowResult entity by IDs.
func (m *TicketMutation) RemoveWorkflowResultIDs(ids ...string) {
	if m.removedworkflow_results == nil {
		m.removedworkflow_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.workflow_results, ids[i])
		m.removedworkflow_results[ids[i]] = struct{}{}
	}
}

// RemovedWorkflowResults returns the removed IDs of the "workflow_results" edge to the WorkflowResult entity.
func (m *TicketMutation) RemovedWorkflowResultsIDs() (ids []string) {
	for id := range m.removedworkflow_results {
		ids = append(ids, id)
	}
	return
}

// WorkflowResultsIDs returns the "workflow_results" edge IDs in the mutation.
func (m *TicketMutation) WorkflowResultsIDs() (ids []string) {
	for id := range m.workflow_results {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflowResults resets all changes to the "workflow_results" edge.
func (m *TicketMutation) ResetWorkflowResults() {
	m.workflow_results = nil
	m.clearedworkflow_results = false
	m.removedworkflow_results = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TicketMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[ticket.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TicketMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TicketMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TicketMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, ticket.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.phase_id != nil {
		fields = append(fields, ticket.FieldPhaseID)
	}
	if m.status != nil {
		fields = append(fields, ticket.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.project != nil {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldTitle:
		return m.Title()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldPhaseID:
		return m.PhaseID()
	case ticket.FieldStatus:
		return m.Status()
	case ticket.FieldPriority:
		return m.Priority()
	case ticket.FieldProjectID:
		return m.ProjectID()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldTitle:
		return m.OldTitle(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case ticket.FieldStatus:
		return m.OldStatus(ctx)
	case ticket.FieldPriority:
		return m.OldPriority(ctx)
	case ticket.FieldProjectID:
		return m.OldProjectID(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case ticket.FieldStatus:
		v, ok := value.(ticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ticket.FieldPriority:
		v, ok := value.(ticket.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ticket.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldDescription) {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.FieldCleared(ticket.FieldProjectID) {
		fields = append(fields, ticket.FieldProjectID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldDescription:
		m.ClearDescription()
		return nil
	case ticket.FieldProjectID:
		m.ClearProjectID()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldTitle:
		m.ResetTitle()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case ticket.FieldStatus:
		m.ResetStatus()
		return nil
	case ticket.FieldPriority:
		m.ResetPriority()
		return nil
	case ticket.FieldProjectID:
		m.ResetProjectID()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.tasks != nil {
		edges = append(edges, ticket.EdgeTasks)
	}
	if m.playbook_entries != nil {
		edges = append(edges, ticket.EdgePlaybookEntries)
	}
	if m.playbook_changes != nil {
		edges = append(edges, ticket.EdgePlaybookChanges)
	}
	if m.diagnostic_runs != nil {
		edges = append(edges, ticket.EdgeDiagnosticRuns)
	}
	if m.workflow_results != nil {
		edges = append(edges, ticket.EdgeWorkflowResults)
	}
	if m.project != nil {
		edges = append(edges, ticket.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgePlaybookEntries:
		ids := make([]ent.Value, 0, len(m.playbook_entries))
		for id := range m.playbook_entries {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgePlaybookChanges:
		ids := make([]ent.Value, 0, len(m.playbook_changes))
		for id := range m.playbook_changes {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDiagnosticRuns:
		ids := make([]ent.Value, 0, len(m.diagnostic_runs))
		for id := range m.diagnostic_runs {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeWorkflowResults:
		ids := make([]ent.Value, 0, len(m.workflow_results))
		for id := range m.workflow_results {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedtasks != nil {
		edges = append(edges, ticket.EdgeTasks)
	}
	if m.removedplaybook_entries != nil {
		edges = append(edges, ticket.EdgePlaybookEntries)
	}
	if m.removedplaybook_changes != nil {
		edges = append(edges, ticket.EdgePlaybookChanges)
	}
	if m.removeddiagnostic_runs != nil {
		edges = append(edges, ticket.EdgeDiagnosticRuns)
	}
	if m.removedworkflow_results != nil {
		edges = append(edges, ticket.EdgeWorkflowResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgePlaybookEntries:
		ids := make([]ent.Value, 0, len(m.removedplaybook_entries))
		for id := range m.removedplaybook_entries {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgePlaybookChanges:
		ids := make([]ent.Value, 0, len(m.removedplaybook_changes))
		for id := range m.removedplaybook_changes {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDiagnosticRuns:
		ids := make([]ent.Value, 0, len(m.removeddiagnostic_runs))
		for id := range m.removeddiagnostic_runs {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeWorkflowResults:
		ids := make([]ent.Value, 0, len(m.removedworkflow_results))
		for id := range m.removedworkflow_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedtasks {
		edges = append(edges, ticket.EdgeTasks)
	}
	if m.clearedplaybook_entries {
		edges = append(edges, ticket.EdgePlaybookEntries)
	}
	if m.clearedplaybook_changes {
		edges = append(edges, ticket.EdgePlaybookChanges)
	}
	if m.cleareddiagnostic_runs {
		edges = append(edges, ticket.EdgeDiagnosticRuns)
	}
	if m.clearedworkflow_results {
		edges = append(edges, ticket.EdgeWorkflowResults)
	}
	if m.clearedproject {
		edges = append(edges, ticket.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeTasks:
		return m.clearedtasks
	case ticket.EdgePlaybookEntries:
		return m.clearedplaybook_entries
	case ticket.EdgePlaybookChanges:
		return m.clearedplaybook_changes
	case ticket.EdgeDiagnosticRuns:
		return m.cleareddiagnostic_runs
	case ticket.EdgeWorkflowResults:
		return m.clearedworkflow_results
	case ticket.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	case ticket.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeTasks:
		m.ResetTasks()
		return nil
	case ticket.EdgePlaybookEntries:
		m.ResetPlaybookEntries()
		return nil
	case ticket.EdgePlaybookChanges:
		m.ResetPlaybookChanges()
		return nil
	case ticket.EdgeDiagnosticRuns:
		m.ResetDiagnosticRuns()
		return nil
	case ticket.EdgeWorkflowResults:
		m.ResetWorkflowResults()
		return nil
	case ticket.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	username            *string
	email               *string
	github_access_token *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	projects            map[string]struct{}
	removedprojects     map[string]struct{}
	clearedprojects     bool
	done                bool
	oldValue            func(context.Context) (*User, error)
	predicates          []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetGithubAccessToken sets the "github_access_token" field.
func (m *UserMutation) SetGithubAccessToken(s string) {
	m.github_access_token = &s
}

// GithubAccessToken returns the value of the "github_access_token" field in the mutation.
func (m *UserMutation) GithubAccessToken() (r string, exists bool) {
	v := m.github_access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldGithubAccessToken returns the old "github_access_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldGithubAccessToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGithubAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGithubAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGithubAccessToken: %w", err)
	}
	return oldValue.GithubAccessToken, nil
}

// ClearGithubAccessToken clears the value of the "github_access_token" field.
func (m *UserMutation) ClearGithubAccessToken() {
	m.github_access_token = nil
	m.clearedFields[user.FieldGithubAccessToken] = struct{}{}
}

// GithubAccessTokenCleared returns if the "github_access_token" field was cleared in this mutation.
func (m *UserMutation) GithubAccessTokenCleared() bool {
	_, ok := m.clearedFields[user.FieldGithubAccessToken]
	return ok
}

// ResetGithubAccessToken resets all changes to the "github_access_token" field.
func (m *UserMutation) ResetGithubAccessToken() {
	m.github_access_token = nil
	delete(m.clearedFields, user.FieldGithubAccessToken)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *UserMutation) AddProjectIDs(ids ...string) {
	if m.projects == nil {
		m.projects = make(map[string]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *UserMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *UserMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *UserMutation) RemoveProjectIDs(ids ...string) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *UserMutation) RemovedProjectsIDs() (ids []string) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *UserMutation) ProjectsIDs() (ids []string) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *UserMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.github_access_token != nil {
		fields = append(fields, user.FieldGithubAccessToken)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldGithubAccessToken:
		return m.GithubAccessToken()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldGithubAccessToken:
		return m.OldGithubAccessToken(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldGithubAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGithubAccessToken(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldGithubAccessToken) {
		fields = append(fields, user.FieldGithubAccessToken)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldGithubAccessToken:
		m.ClearGithubAccessToken()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldGithubAccessToken:
		m.ResetGithubAccessToken()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.projects != nil {
		edges = append(edges, user.EdgeProjects)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedprojects != nil {
		edges = append(edges, user.EdgeProjects)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprojects {
		edges = append(edges, user.EdgeProjects)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeProjects:
		return m.clearedprojects
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeProjects:
		m.ResetProjects()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// ValidationReviewMutation represents an operation that mutates the ValidationReview nodes in the graph.
type ValidationReviewMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	validator_agent_id    *string
	iteration_number      *int
	additeration_number   *int
	validation_passed     *bool
	feedback              *string
	evidence              *map[string]interface{}
	recommendations       *[]string
	appendrecommendations []string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	task                  *string
	clearedtask           bool
	done                  bool
	oldValue              func(context.Context) (*ValidationReview, error)
	predicates            []predicate.ValidationReview
}

var _ ent.Mutation = (*ValidationReviewMutation)(nil)

// validationreviewOption allows management of the mutation configuration using functional options.
type validationreviewOption func(*ValidationReviewMutation)

// newValidationReviewMutation creates new mutation for the ValidationReview entity.
func newValidationReviewMutation(c config, op Op, opts ...validationreviewOption) *ValidationReviewMutation {
	m := &ValidationReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationReviewID sets the ID field of the mutation.
func withValidationReviewID(id string) validationreviewOption {
	return func(m *ValidationReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationReview
		)
		m.oldValue = func(ctx context.Context) (*ValidationReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationReview sets the old ValidationReview of the mutation.
func withValidationReview(node *ValidationReview) validationreviewOption {
	return func(m *ValidationReviewMutation) {
		m.oldValue = func(context.Context) (*ValidationReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationReview entities.
func (m *ValidationReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ValidationReviewMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ValidationReviewMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ValidationReviewMutation) ResetTaskID() {
	m.task = nil
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (m *ValidationReviewMutation) SetValidatorAgentID(s string) {
	m.validator_agent_id = &s
}

// ValidatorAgentID returns the value of the "validator_agent_id" field in the mutation.
func (m *ValidationReviewMutation) ValidatorAgentID() (r string, exists bool) {
	v := m.validator_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatorAgentID returns the old "validator_agent_id" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldValidatorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatorAgentID: %w", err)
	}
	return oldValue.ValidatorAgentID, nil
}

// ResetValidatorAgentID resets all changes to the "validator_agent_id" field.
func (m *ValidationReviewMutation) ResetValidatorAgentID() {
	m.validator_agent_id = nil
}

// SetIterationNumber sets the "iteration_number" field.
func (m *ValidationReviewMutation) SetIterationNumber(i int) {
	m.iteration_number = &i
	m.additeration_number = nil
}

// IterationNumber returns the value of the "iteration_number" field in the mutation.
func (m *ValidationReviewMutation) IterationNumber() (r int, exists bool) {
	v := m.iteration_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationNumber returns the old "iteration_number" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldIterationNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationNumber: %w", err)
	}
	return oldValue.IterationNumber, nil
}

// AddIterationNumber adds i to the "iteration_number" field.
func (m *ValidationReviewMutation) AddIterationNumber(i int) {
	if m.additeration_number != nil {
		*m.additeration_number += i
	} else {
		m.additeration_number = &i
	}
}

// AddedIterationNumber returns the value that was added to the "iteration_number" field in this mutation.
func (m *ValidationReviewMutation) AddedIterationNumber() (r int, exists bool) {
	v := m.additeration_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterationNumber resets all changes to the "iteration_number" field.
func (m *ValidationReviewMutation) ResetIterationNumber() {
	m.iteration_number = nil
	m.additeration_number = nil
}

// SetValidationPassed sets the "validation_passed" field.
func (m *ValidationReviewMutation) SetValidationPassed(b bool) {
	m.validation_passed = &b
}

// ValidationPassed returns the value of the "validation_passed" field in the mutation.
func (m *ValidationReviewMutation) ValidationPassed() (r bool, exists bool) {
	v := m.validation_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationPassed returns the old "validation_passed" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldValidationPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationPassed: %w", err)
	}
	return oldValue.ValidationPassed, nil
}

// ResetValidationPassed resets all changes to the "validation_passed" field.
func (m *ValidationReviewMutation) ResetValidationPassed() {
	m.validation_passed = nil
}

// SetFeedback sets the "feedback" field.
func (m *ValidationReviewMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *ValidationReviewMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *ValidationReviewMutation) ResetFeedback() {
	m.feedback = nil
}

// SetEvidence sets the "evidence" field.
func (m *ValidationReviewMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *ValidationReviewMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *ValidationReviewMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[validationreview.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *ValidationReviewMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[validationreview.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *ValidationReviewMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, validationreview.FieldEvidence)
}

// SetRecommendations sets the "recommendations" field.
func (m *ValidationReviewMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *ValidationReviewMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *ValidationReviewMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *ValidationReviewMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *ValidationReviewMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[validationreview.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *ValidationReviewMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[validationreview.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *ValidationReviewMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, validationreview.FieldRecommendations)
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ValidationReviewMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[validationreview.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ValidationReviewMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ValidationReviewMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ValidationReviewMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ValidationReviewMutation builder.
func (m *ValidationReviewMutation) Where(ps ...predicate.ValidationReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationReview).
func (m *ValidationReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationReviewMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.task != nil {
		fields = append(fields, validationreview.FieldTaskID)
	}
	if m.validator_agent_id != nil {
		fields = append(fields, validationreview.FieldValidatorAgentID)
	}
	if m.iteration_number != nil {
		fields = append(fields, validationreview.FieldIterationNumber)
	}
	if m.validation_passed != nil {
		fields = append(fields, validationreview.FieldValidationPassed)
	}
	if m.feedback != nil {
		fields = append(fields, validationreview.FieldFeedback)
	}
	if m.evidence != nil {
		fields = append(fields, validationreview.FieldEvidence)
	}
	if m.recommendations != nil {
		fields = append(fields, validationreview.FieldRecommendations)
	}
	if m.created_at != nil {
		fields = append(fields, validationreview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationreview.FieldTaskID:
		return m.TaskID()
	case validationreview.FieldValidatorAgentID:
		return m.ValidatorAgentID()
	case validationreview.FieldIterationNumber:
		return m.IterationNumber()
	case validationreview.FieldValidationPassed:
		return m.ValidationPassed()
	case validationreview.FieldFeedback:
		return m.Feedback()
	case validationreview.FieldEvidence:
		return m.Evidence()
	case validationreview.FieldRecommendations:
		return m.Recommendations()
	case validationreview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationreview.FieldTaskID:
		return m.OldTaskID(ctx)
	case validationreview.FieldValidatorAgentID:
		return m.OldValidatorAgentID(ctx)
	case validationreview.FieldIterationNumber:
		return m.OldIterationNumber(ctx)
	case validationreview.FieldValidationPassed:
		return m.OldValidationPassed(ctx)
	case validationreview.FieldFeedback:
		return m.OldFeedback(ctx)
	case validationreview.FieldEvidence:
		return m.OldEvidence(ctx)
	case validationreview.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case validationreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationreview.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case validationreview.FieldValidatorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatorAgentID(v)
		return nil
	case validationreview.FieldIterationNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationNumber(v)
		return nil
	case validationreview.FieldValidationPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationPassed(v)
		return nil
	case validationreview.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case validationreview.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case validationreview.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case validationreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationReviewMutation) AddedFields() []string {
	var fields []string
	if m.additeration_number != nil {
		fields = append(fields, validationreview.FieldIterationNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationreview.FieldIterationNumber:
		return m.AddedIterationNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationreview.FieldIterationNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterationNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationreview.FieldEvidence) {
		fields = append(fields, validationreview.FieldEvidence)
	}
	if m.FieldCleared(validationreview.FieldRecommendations) {
		fields = append(fields, validationreview.FieldRecommendations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationReviewMutation) ClearField(name string) error {
	switch name {
	case validationreview.FieldEvidence:
		m.ClearEvidence()
		return nil
	case validationreview.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationReviewMutation) ResetField(name string) error {
	switch name {
	case validationreview.FieldTaskID:
		m.ResetTaskID()
		return nil
	case validationreview.FieldValidatorAgentID:
		m.ResetValidatorAgentID()
		return nil
	case validationreview.FieldIterationNumber:
		m.ResetIterationNumber()
		return nil
	case validationreview.FieldValidationPassed:
		m.ResetValidationPassed()
		return nil
	case validationreview.FieldFeedback:
		m.ResetFeedback()
		return nil
	case validationreview.FieldEvidence:
		m.ResetEvidence()
		return nil
	case validationreview.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case validationreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, validationreview.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationreview.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, validationreview.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case validationreview.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationReviewMutation) ClearEdge(name string) error {
	switch name {
	case validationreview.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationReviewMutation) ResetEdge(name string) error {
	switch name {
	case validationreview.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview edge %s", name)
}

// WorkflowResultMutation represents an operation that mutates the WorkflowResult nodes in the graph.
type WorkflowResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	markdown_file_path *string
	status             *workflowresult.Status
	submitted_by       *string
	summary            *string
	validated_at       *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	ticket             *string
	clearedticket      bool
	done               bool
	oldValue           func(context.Context) (*WorkflowResult, error)
	predicates         []predicate.WorkflowResult
}

var _ ent.Mutation = (*WorkflowResultMutation)(nil)

// workflowresultOption allows management of the mutation configuration using functional options.
type workflowresultOption func(*WorkflowResultMutation)

// newWorkflowResultMutation creates new mutation for the WorkflowResult entity.
func newWorkflowResultMutation(c config, op Op, opts ...workflowresultOption) *WorkflowResultMutation {
	m := &WorkflowResultMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowResultID sets the ID field of the mutation.
func withWorkflowResultID(id string) workflowresultOption {
	return func(m *WorkflowResultMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowResult
		)
		m.oldValue = func(ctx context.Context) (*WorkflowResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowResult sets the old WorkflowResult of the mutation.
func withWorkflowResult(node *WorkflowResult) workflowresultOption {
	return func(m *WorkflowResultMutation) {
		m.oldValue = func(context.Context) (*WorkflowResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowResult entities.
func (m *WorkflowResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *WorkflowResultMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *WorkflowResultMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *WorkflowResultMutation) ResetTicketID() {
	m.ticket = nil
}

// SetMarkdownFilePath sets the "markdown_file_path" field.
func (m *WorkflowResultMutation) SetMarkdownFilePath(s string) {
	m.markdown_file_path = &s
}

// MarkdownFilePath returns the value of the "markdown_file_path" field in the mutation.
func (m *WorkflowResultMutation) MarkdownFilePath() (r string, exists bool) {
	v := m.markdown_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdownFilePath returns the old "markdown_file_path" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldMarkdownFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdownFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdownFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdownFilePath: %w", err)
	}
	return oldValue.MarkdownFilePath, nil
}

// ResetMarkdownFilePath resets all changes to the "markdown_file_path" field.
func (m *WorkflowResultMutation) ResetMarkdownFilePath() {
	m.markdown_file_path = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowResultMutation) SetStatus(w workflowresult.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowResultMutation) Status() (r workflowresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldStatus(ctx context.Context) (v workflowresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowResultMutation) ResetStatus() {
	m.status = nil
}

// SetSubmittedBy sets the "submitted_by" field.
func (m *WorkflowResultMutation) SetSubmittedBy(s string) {
	m.submitted_by = &s
}

// SubmittedBy returns the value of the "submitted_by" field in the mutation.
func (m *WorkflowResultMutation) SubmittedBy() (r string, exists bool) {
	v := m.submitted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedBy returns the old "submitted_by" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldSubmittedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedBy: %w", err)
	}
	return oldValue.SubmittedBy, nil
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (m *WorkflowResultMutation) ClearSubmittedBy() {
	m.submitted_by = nil
	m.clearedFields[workflowresult.FieldSubmittedBy] = struct{}{}
}

// SubmittedByCleared returns if the "submitted_by" field was cleared in this mutation.
func (m *WorkflowResultMutation) SubmittedByCleared() bool {
	_, ok := m.clearedFields[workflowresult.FieldSubmittedBy]
	return ok
}

// ResetSubmittedBy resets all changes to the "submitted_by" field.
func (m *WorkflowResultMutation) ResetSubmittedBy() {
	m.submitted_by = nil
	delete(m.clearedFields, workflowresult.FieldSubmittedBy)
}

// SetSummary sets the "summary" field.
func (m *WorkflowResultMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *WorkflowResultMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *WorkflowResultMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[workflowresult.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *WorkflowResultMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[workflowresult.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *WorkflowResultMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, workflowresult.FieldSummary)
}

// SetValidatedAt sets the "validated_at" field.
func (m *WorkflowResultMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *WorkflowResultMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *WorkflowResultMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[workflowresult.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *WorkflowResultMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[workflowresult.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *WorkflowResultMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, workflowresult.FieldValidatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *WorkflowResultMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[workflowresult.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *WorkflowResultMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *WorkflowResultMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *WorkflowResultMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the WorkflowResultMutation builder.
func (m *WorkflowResultMutation) Where(ps ...predicate.WorkflowResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowResult).
func (m *WorkflowResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.ticket != nil {
		fields = append(fields, workflowresult.FieldTicketID)
	}
	if m.markdown_file_path != nil {
		fields = append(fields, workflowresult.FieldMarkdownFilePath)
	}
	if m.status != nil {
		fields = append(fields, workflowresult.FieldStatus)
	}
	if m.submitted_by != nil {
		fields = append(fields, workflowresult.FieldSubmittedBy)
	}
	if m.summary != nil {
		fields = append(fields, workflowresult.FieldSummary)
	}
	if m.validated_at != nil {
		fields = append(fields, workflowresult.FieldValidatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, workflowresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowresult.FieldTicketID:
		return m.TicketID()
	case workflowresult.FieldMarkdownFilePath:
		return m.MarkdownFilePath()
	case workflowresult.FieldStatus:
		return m.Status()
	case workflowresult.FieldSubmittedBy:
		return m.SubmittedBy()
	case workflowresult.FieldSummary:
		return m.Summary()
	case workflowresult.FieldValidatedAt:
		return m.ValidatedAt()
	case workflowresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowresult.FieldTicketID:
		return m.OldTicketID(ctx)
	case workflowresult.FieldMarkdownFilePath:
		return m.OldMarkdownFilePath(ctx)
	case workflowresult.FieldStatus:
		return m.OldStatus(ctx)
	case workflowresult.FieldSubmittedBy:
		return m.OldSubmittedBy(ctx)
	case workflowresult.FieldSummary:
		return m.OldSummary(ctx)
	case workflowresult.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	case workflowresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowresult.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case workflowresult.FieldMarkdownFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdownFilePath(v)
		return nil
	case workflowresult.FieldStatus:
		v, ok := value.(workflowresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowresult.FieldSubmittedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedBy(v)
		return nil
	case workflowresult.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case workflowresult.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	case workflowresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowresult.FieldSubmittedBy) {
		fields = append(fields, workflowresult.FieldSubmittedBy)
	}
	if m.FieldCleared(workflowresult.FieldSummary) {
		fields = append(fields, workflowresult.FieldSummary)
	}
	if m.FieldCleared(workflowresult.FieldValidatedAt) {
		fields = append(fields, workflowresult.FieldValidatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowResultMutation) ClearField(name string) error {
	switch name {
	case workflowresult.FieldSubmittedBy:
		m.ClearSubmittedBy()
		return nil
	case workflowresult.FieldSummary:
		m.ClearSummary()
		return nil
	case workflowresult.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowResultMutation) ResetField(name string) error {
	switch name {
	case workflowresult.FieldTicketID:
		m.ResetTicketID()
		return nil
	case workflowresult.FieldMarkdownFilePath:
		m.ResetMarkdownFilePath()
		return nil
	case workflowresult.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowresult.FieldSubmittedBy:
		m.ResetSubmittedBy()
		return nil
	case workflowresult.FieldSummary:
		m.ResetSummary()
		return nil
	case workflowresult.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	case workflowresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, workflowresult.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowresult.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, workflowresult.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowResultMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowresult.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowResultMutation) ClearEdge(name string) error {
	switch name {
	case workflowresult.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowResultMutation) ResetEdge(name string) error {
	switch name {
	case workflowresult.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult edge %s", name)
}
