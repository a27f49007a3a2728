// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/droverhq/drover/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/user"
	"github.com/droverhq/drover/ent/validationreview"
	"github.com/droverhq/drover/ent/workflowresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentResult is the client for interacting with the AgentResult builders.
	AgentResult *AgentResultClient
	// DiagnosticRun is the client for interacting with the DiagnosticRun builders.
	DiagnosticRun *DiagnosticRunClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// LearnedPattern is the client for interacting with the LearnedPattern builders.
	LearnedPattern *LearnedPatternClient
	// MonitorAnomaly is the client for interacting with the MonitorAnomaly builders.
	MonitorAnomaly *MonitorAnomalyClient
	// PlaybookChange is the client for interacting with the PlaybookChange builders.
	PlaybookChange *PlaybookChangeClient
	// PlaybookEntry is the client for interacting with the PlaybookEntry builders.
	PlaybookEntry *PlaybookEntryClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ResourceLock is the client for interacting with the ResourceLock builders.
	ResourceLock *ResourceLockClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskDiscovery is the client for interacting with the TaskDiscovery builders.
	TaskDiscovery *TaskDiscoveryClient
	// TaskMemory is the client for interacting with the TaskMemory builders.
	TaskMemory *TaskMemoryClient
	// Ticket is the client for interacting with the Ticket builders.
	Ticket *TicketClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// ValidationReview is the client for interacting with the ValidationReview builders.
	ValidationReview *ValidationReviewClient
	// WorkflowResult is the client for interacting with the WorkflowResult builders.
	WorkflowResult *WorkflowResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentResult = NewAgentResultClient(c.config)
	c.DiagnosticRun = NewDiagnosticRunClient(c.config)
	c.Event = NewEventClient(c.config)
	c.LearnedPattern = NewLearnedPatternClient(c.config)
	c.MonitorAnomaly = NewMonitorAnomalyClient(c.config)
	c.PlaybookChange = NewPlaybookChangeClient(c.config)
	c.PlaybookEntry = NewPlaybookEntryClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ResourceLock = NewResourceLockClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskDiscovery = NewTaskDiscoveryClient(c.config)
	c.TaskMemory = NewTaskMemoryClient(c.config)
	c.Ticket = NewTicketClient(c.config)
	c.User = NewUserClient(c.config)
	c.ValidationReview = NewValidationReviewClient(c.config)
	c.WorkflowResult = NewWorkflowResultClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		AgentResult:      NewAgentResultClient(cfg),
		DiagnosticRun:    NewDiagnosticRunClient(cfg),
		Event:            NewEventClient(cfg),
		LearnedPattern:   NewLearnedPatternClient(cfg),
		MonitorAnomaly:   NewMonitorAnomalyClient(cfg),
		PlaybookChange:   NewPlaybookChangeClient(cfg),
		PlaybookEntry:    NewPlaybookEntryClient(cfg),
		Project:          NewProjectClient(cfg),
		ResourceLock:     NewResourceLockClient(cfg),
		Task:             NewTaskClient(cfg),
		TaskDiscovery:    NewTaskDiscoveryClient(cfg),
		TaskMemory:       NewTaskMemoryClient(cfg),
		Ticket:           NewTicketClient(cfg),
		User:             NewUserClient(cfg),
		ValidationReview: NewValidationReviewClient(cfg),
		WorkflowResult:   NewWorkflowResultClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		AgentResult:      NewAgentResultClient(cfg),
		DiagnosticRun:    NewDiagnosticRunClient(cfg),
		Event:            NewEventClient(cfg),
		LearnedPattern:   NewLearnedPatternClient(cfg),
		MonitorAnomaly:   NewMonitorAnomalyClient(cfg),
		PlaybookChange:   NewPlaybookChangeClient(cfg),
		PlaybookEntry:    NewPlaybookEntryClient(cfg),
		Project:          NewProjectClient(cfg),
		ResourceLock:     NewResourceLockClient(cfg),
		Task:             NewTaskClient(cfg),
		TaskDiscovery:    NewTaskDiscoveryClient(cfg),
		TaskMemory:       NewTaskMemoryClient(cfg),
		Ticket:           NewTicketClient(cfg),
		User:             NewUserClient(cfg),
		ValidationReview: NewValidationReviewClient(cfg),
		WorkflowResult:   NewWorkflowResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Agent, c.AgentResult, c.DiagnosticRun, c.Event, c.LearnedPattern,
		c.MonitorAnomaly, c.PlaybookChange, c.PlaybookEntry, c.Project, c.ResourceLock,
		c.Task, c.TaskDiscovery, c.TaskMemory, c.Ticket, c.User, c.ValidationReview,
		c.WorkflowResult,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentResult, c.DiagnosticRun, c.Event, c.LearnedPattern,
		c.MonitorAnomaly, c.PlaybookChange, c.PlaybookEntry, c.Project, c.ResourceLock,
		c.Task, c.TaskDiscovery, c.TaskMemory, c.Ticket, c.User, c.ValidationReview,
		c.WorkflowResult,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentResultMutation:
		return c.AgentResult.mutate(ctx, m)
	case *DiagnosticRunMutation:
		return c.DiagnosticRun.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *LearnedPatternMutation:
		return c.LearnedPattern.mutate(ctx, m)
	case *MonitorAnomalyMutation:
		return c.MonitorAnomaly.mutate(ctx, m)
	case *PlaybookChangeMutation:
		return c.PlaybookChange.mutate(ctx, m)
	case *PlaybookEntryMutation:
		return c.PlaybookEntry.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ResourceLockMutation:
		return c.ResourceLock.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskDiscoveryMutation:
		return c.TaskDiscovery.mutate(ctx, m)
	case *TaskMemoryMutation:
		return c.TaskMemory.mutate(ctx, m)
	case *TicketMutation:
		return c.Ticket.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *ValidationReviewMutation:
		return c.ValidationReview.mutate(ctx, m)
	case *WorkflowResultMutation:
		return c.WorkflowResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentResultClient is a client for the AgentResult schema.
type AgentResultClient struct {
	config
}

// NewAgentResultClient returns a client for the AgentResult from the given config.
func NewAgentResultClient(c config) *AgentResultClient {
	return &AgentResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentresult.Hooks(f(g(h())))`.
func (c *AgentResultClient) Use(hooks ...Hook) {
	c.hooks.AgentResult = append(c.hooks.AgentResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentresult.Intercept(f(g(h())))`.
func (c *AgentResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentResult = append(c.inters.AgentResult, interceptors...)
}

// Create returns a builder for creating a AgentResult entity.
func (c *AgentResultClient) Create() *AgentResultCreate {
	mutation := newAgentResultMutation(c.config, OpCreate)
	return &AgentResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentResult entities.
func (c *AgentResultClient) CreateBulk(builders ...*AgentResultCreate) *AgentResultCreateBulk {
	return &AgentResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentResultClient) MapCreateBulk(slice any, setFunc func(*AgentResultCreate, int)) *AgentResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentResultCreateBulk{err: fmt.Errorf("calling to AgentResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentResult.
func (c *AgentResultClient) Update() *AgentResultUpdate {
	mutation := newAgentResultMutation(c.config, OpUpdate)
	return &AgentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentResultClient) UpdateOne(_m *AgentResult) *AgentResultUpdateOne {
	mutation := newAgentResultMutation(c.config, OpUpdateOne, withAgentResult(_m))
	return &AgentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentResultClient) UpdateOneID(id string) *AgentResultUpdateOne {
	mutation := newAgentResultMutation(c.config, OpUpdateOne, withAgentResultID(id))
	return &AgentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentResult.
func (c *AgentResultClient) Delete() *AgentResultDelete {
	mutation := newAgentResultMutation(c.config, OpDelete)
	return &AgentResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentResultClient) DeleteOne(_m *AgentResult) *AgentResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentResultClient) DeleteOneID(id string) *AgentResultDeleteOne {
	builder := c.Delete().Where(agentresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentResultDeleteOne{builder}
}

// Query returns a query builder for AgentResult.
func (c *AgentResultClient) Query() *AgentResultQuery {
	return &AgentResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentResult},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentResult entity by its id.
func (c *AgentResultClient) Get(ctx context.Context, id string) (*AgentResult, error) {
	return c.Query().Where(agentresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentResultClient) GetX(ctx context.Context, id string) *AgentResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a AgentResult.
func (c *AgentResultClient) QueryTask(_m *AgentResult) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentresult.Table, agentresult.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentresult.TaskTable, agentresult.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentResultClient) Hooks() []Hook {
	return c.hooks.AgentResult
}

// Interceptors returns the client interceptors.
func (c *AgentResultClient) Interceptors() []Interceptor {
	return c.inters.AgentResult
}

func (c *AgentResultClient) mutate(ctx context.Context, m *AgentResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentResult mutation op: %q", m.Op())
	}
}

// DiagnosticRunClient is a client for the DiagnosticRun schema.
type DiagnosticRunClient struct {
	config
}

// NewDiagnosticRunClient returns a client for the DiagnosticRun from the given config.
func NewDiagnosticRunClient(c config) *DiagnosticRunClient {
	return &DiagnosticRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diagnosticrun.Hooks(f(g(h())))`.
func (c *DiagnosticRunClient) Use(hooks ...Hook) {
	c.hooks.DiagnosticRun = append(c.hooks.DiagnosticRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diagnosticrun.Intercept(f(g(h())))`.
func (c *DiagnosticRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiagnosticRun = append(c.inters.DiagnosticRun, interceptors...)
}

// Create returns a builder for creating a DiagnosticRun entity.
func (c *DiagnosticRunClient) Create() *DiagnosticRunCreate {
	mutation := newDiagnosticRunMutation(c.config, OpCreate)
	return &DiagnosticRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiagnosticRun entities.
func (c *DiagnosticRunClient) CreateBulk(builders ...*DiagnosticRunCreate) *DiagnosticRunCreateBulk {
	return &DiagnosticRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiagnosticRunClient) MapCreateBulk(slice any, setFunc func(*DiagnosticRunCreate, int)) *DiagnosticRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiagnosticRunCreateBulk{err: fmt.Errorf("calling to DiagnosticRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiagnosticRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiagnosticRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiagnosticRun.
func (c *DiagnosticRunClient) Update() *DiagnosticRunUpdate {
	mutation := newDiagnosticRunMutation(c.config, OpUpdate)
	return &DiagnosticRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiagnosticRunClient) UpdateOne(_m *DiagnosticRun) *DiagnosticRunUpdateOne {
	mutation := newDiagnosticRunMutation(c.config, OpUpdateOne, withDiagnosticRun(_m))
	return &DiagnosticRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiagnosticRunClient) UpdateOneID(id string) *DiagnosticRunUpdateOne {
	mutation := newDiagnosticRunMutation(c.config, OpUpdateOne, withDiagnosticRunID(id))
	return &DiagnosticRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiagnosticRun.
func (c *DiagnosticRunClient) Delete() *DiagnosticRunDelete {
	mutation := newDiagnosticRunMutation(c.config, OpDelete)
	return &DiagnosticRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiagnosticRunClient) DeleteOne(_m *DiagnosticRun) *DiagnosticRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiagnosticRunClient) DeleteOneID(id string) *DiagnosticRunDeleteOne {
	builder := c.Delete().Where(diagnosticrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiagnosticRunDeleteOne{builder}
}

// Query returns a query builder for DiagnosticRun.
func (c *DiagnosticRunClient) Query() *DiagnosticRunQuery {
	return &DiagnosticRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiagnosticRun},
		inters: c.Interceptors(),
	}
}

// Get returns a DiagnosticRun entity by its id.
func (c *DiagnosticRunClient) Get(ctx context.Context, id string) (*DiagnosticRun, error) {
	return c.Query().Where(diagnosticrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiagnosticRunClient) GetX(ctx context.Context, id string) *DiagnosticRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a DiagnosticRun.
func (c *DiagnosticRunClient) QueryTicket(_m *DiagnosticRun) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(diagnosticrun.Table, diagnosticrun.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, diagnosticrun.TicketTable, diagnosticrun.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DiagnosticRunClient) Hooks() []Hook {
	return c.hooks.DiagnosticRun
}

// Interceptors returns the client interceptors.
func (c *DiagnosticRunClient) Interceptors() []Interceptor {
	return c.inters.DiagnosticRun
}

func (c *DiagnosticRunClient) mutate(ctx context.Context, m *DiagnosticRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiagnosticRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiagnosticRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiagnosticRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiagnosticRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiagnosticRun mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// LearnedPatternClient is a client for the LearnedPattern schema.
type LearnedPatternClient struct {
	config
}

// NewLearnedPatternClient returns a client for the LearnedPattern from the given config.
func NewLearnedPatternClient(c config) *LearnedPatternClient {
	return &LearnedPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnedpattern.Hooks(f(g(h())))`.
func (c *LearnedPatternClient) Use(hooks ...Hook) {
	c.hooks.LearnedPattern = append(c.hooks.LearnedPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnedpattern.Intercept(f(g(h())))`.
func (c *LearnedPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnedPattern = append(c.inters.LearnedPattern, interceptors...)
}

// Create returns a builder for creating a LearnedPattern entity.
func (c *LearnedPatternClient) Create() *LearnedPatternCreate {
	mutation := newLearnedPatternMutation(c.config, OpCreate)
	return &LearnedPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnedPattern entities.
func (c *LearnedPatternClient) CreateBulk(builders ...*LearnedPatternCreate) *LearnedPatternCreateBulk {
	return &LearnedPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnedPatternClient) MapCreateBulk(slice any, setFunc func(*LearnedPatternCreate, int)) *LearnedPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnedPatternCreateBulk{err: fmt.Errorf("calling to LearnedPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnedPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnedPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnedPattern.
func (c *LearnedPatternClient) Update() *LearnedPatternUpdate {
	mutation := newLearnedPatternMutation(c.config, OpUpdate)
	return &LearnedPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnedPatternClient) UpdateOne(_m *LearnedPattern) *LearnedPatternUpdateOne {
	mutation := newLearnedPatternMutation(c.config, OpUpdateOne, withLearnedPattern(_m))
	return &LearnedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnedPatternClient) UpdateOneID(id string) *LearnedPatternUpdateOne {
	mutation := newLearnedPatternMutation(c.config, OpUpdateOne, withLearnedPatternID(id))
	return &LearnedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnedPattern.
func (c *LearnedPatternClient) Delete() *LearnedPatternDelete {
	mutation := newLearnedPatternMutation(c.config, OpDelete)
	return &LearnedPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnedPatternClient) DeleteOne(_m *LearnedPattern) *LearnedPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnedPatternClient) DeleteOneID(id string) *LearnedPatternDeleteOne {
	builder := c.Delete().Where(learnedpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnedPatternDeleteOne{builder}
}

// Query returns a query builder for LearnedPattern.
func (c *LearnedPatternClient) Query() *LearnedPatternQuery {
	return &LearnedPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnedPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnedPattern entity by its id.
func (c *LearnedPatternClient) Get(ctx context.Context, id string) (*LearnedPattern, error) {
	return c.Query().Where(learnedpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnedPatternClient) GetX(ctx context.Context, id string) *LearnedPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnedPatternClient) Hooks() []Hook {
	return c.hooks.LearnedPattern
}

// Interceptors returns the client interceptors.
func (c *LearnedPatternClient) Interceptors() []Interceptor {
	return c.inters.LearnedPattern
}

func (c *LearnedPatternClient) mutate(ctx context.Context, m *LearnedPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnedPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnedPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnedPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnedPattern mutation op: %q", m.Op())
	}
}

// MonitorAnomalyClient is a client for the MonitorAnomaly schema.
type MonitorAnomalyClient struct {
	config
}

// NewMonitorAnomalyClient returns a client for the MonitorAnomaly from the given config.
func NewMonitorAnomalyClient(c config) *MonitorAnomalyClient {
	return &MonitorAnomalyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monitoranomaly.Hooks(f(g(h())))`.
func (c *MonitorAnomalyClient) Use(hooks ...Hook) {
	c.hooks.MonitorAnomaly = append(c.hooks.MonitorAnomaly, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monitoranomaly.Intercept(f(g(h())))`.
func (c *MonitorAnomalyClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonitorAnomaly = append(c.inters.MonitorAnomaly, interceptors...)
}

// Create returns a builder for creating a MonitorAnomaly entity.
func (c *MonitorAnomalyClient) Create() *MonitorAnomalyCreate {
	mutation := newMonitorAnomalyMutation(c.config, OpCreate)
	return &MonitorAnomalyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonitorAnomaly entities.
func (c *MonitorAnomalyClient) CreateBulk(builders ...*MonitorAnomalyCreate) *MonitorAnomalyCreateBulk {
	return &MonitorAnomalyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonitorAnomalyClient) MapCreateBulk(slice any, setFunc func(*MonitorAnomalyCreate, int)) *MonitorAnomalyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonitorAnomalyCreateBulk{err: fmt.Errorf("calling to MonitorAnomalyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonitorAnomalyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonitorAnomalyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonitorAnomaly.
func (c *MonitorAnomalyClient) Update() *MonitorAnomalyUpdate {
	mutation := newMonitorAnomalyMutation(c.config, OpUpdate)
	return &MonitorAnomalyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonitorAnomalyClient) UpdateOne(_m *MonitorAnomaly) *MonitorAnomalyUpdateOne {
	mutation := newMonitorAnomalyMutation(c.config, OpUpdateOne, withMonitorAnomaly(_m))
	return &MonitorAnomalyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonitorAnomalyClient) UpdateOneID(id string) *MonitorAnomalyUpdateOne {
	mutation := newMonitorAnomalyMutation(c.config, OpUpdateOne, withMonitorAnomalyID(id))
	return &MonitorAnomalyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonitorAnomaly.
func (c *MonitorAnomalyClient) Delete() *MonitorAnomalyDelete {
	mutation := newMonitorAnomalyMutation(c.config, OpDelete)
	return &MonitorAnomalyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonitorAnomalyClient) DeleteOne(_m *MonitorAnomaly) *MonitorAnomalyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonitorAnomalyClient) DeleteOneID(id string) *MonitorAnomalyDeleteOne {
	builder := c.Delete().Where(monitoranomaly.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonitorAnomalyDeleteOne{builder}
}

// Query returns a query builder for MonitorAnomaly.
func (c *MonitorAnomalyClient) Query() *MonitorAnomalyQuery {
	return &MonitorAnomalyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonitorAnomaly},
		inters: c.Interceptors(),
	}
}

// Get returns a MonitorAnomaly entity by its id.
func (c *MonitorAnomalyClient) Get(ctx context.Context, id string) (*MonitorAnomaly, error) {
	return c.Query().Where(monitoranomaly.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonitorAnomalyClient) GetX(ctx context.Context, id string) *MonitorAnomaly {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MonitorAnomalyClient) Hooks() []Hook {
	return c.hooks.MonitorAnomaly
}

// Interceptors returns the client interceptors.
func (c *MonitorAnomalyClient) Interceptors() []Interceptor {
	return c.inters.MonitorAnomaly
}

func (c *MonitorAnomalyClient) mutate(ctx context.Context, m *MonitorAnomalyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonitorAnomalyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonitorAnomalyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonitorAnomalyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonitorAnomalyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MonitorAnomaly mutation op: %q", m.Op())
	}
}

// PlaybookChangeClient is a client for the PlaybookChange schema.
type PlaybookChangeClient struct {
	config
}

// NewPlaybookChangeClient returns a client for the PlaybookChange from the given config.
func NewPlaybookChangeClient(c config) *PlaybookChangeClient {
	return &PlaybookChangeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playbookchange.Hooks(f(g(h())))`.
func (c *PlaybookChangeClient) Use(hooks ...Hook) {
	c.hooks.PlaybookChange = append(c.hooks.PlaybookChange, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playbookchange.Intercept(f(g(h())))`.
func (c *PlaybookChangeClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlaybookChange = append(c.inters.PlaybookChange, interceptors...)
}

// Create returns a builder for creating a PlaybookChange entity.
func (c *PlaybookChangeClient) Create() *PlaybookChangeCreate {
	mutation := newPlaybookChangeMutation(c.config, OpCreate)
	return &PlaybookChangeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlaybookChange entities.
func (c *PlaybookChangeClient) CreateBulk(builders ...*PlaybookChangeCreate) *PlaybookChangeCreateBulk {
	return &PlaybookChangeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlaybookChangeClient) MapCreateBulk(slice any, setFunc func(*PlaybookChangeCreate, int)) *PlaybookChangeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlaybookChangeCreateBulk{err: fmt.Errorf("calling to PlaybookChangeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlaybookChangeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlaybookChangeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlaybookChange.
func (c *PlaybookChangeClient) Update() *PlaybookChangeUpdate {
	mutation := newPlaybookChangeMutation(c.config, OpUpdate)
	return &PlaybookChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlaybookChangeClient) UpdateOne(_m *PlaybookChange) *PlaybookChangeUpdateOne {
	mutation := newPlaybookChangeMutation(c.config, OpUpdateOne, withPlaybookChange(_m))
	return &PlaybookChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlaybookChangeClient) UpdateOneID(id string) *PlaybookChangeUpdateOne {
	mutation := newPlaybookChangeMutation(c.config, OpUpdateOne, withPlaybookChangeID(id))
	return &PlaybookChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlaybookChange.
func (c *PlaybookChangeClient) Delete() *PlaybookChangeDelete {
	mutation := newPlaybookChangeMutation(c.config, OpDelete)
	return &PlaybookChangeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlaybookChangeClient) DeleteOne(_m *PlaybookChange) *PlaybookChangeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlaybookChangeClient) DeleteOneID(id string) *PlaybookChangeDeleteOne {
	builder := c.Delete().Where(playbookchange.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlaybookChangeDeleteOne{builder}
}

// Query returns a query builder for PlaybookChange.
func (c *PlaybookChangeClient) Query() *PlaybookChangeQuery {
	return &PlaybookChangeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlaybookChange},
		inters: c.Interceptors(),
	}
}

// Get returns a PlaybookChange entity by its id.
func (c *PlaybookChangeClient) Get(ctx context.Context, id string) (*PlaybookChange, error) {
	return c.Query().Where(playbookchange.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlaybookChangeClient) GetX(ctx context.Context, id string) *PlaybookChange {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a PlaybookChange.
func (c *PlaybookChangeClient) QueryTicket(_m *PlaybookChange) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(playbookchange.Table, playbookchange.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, playbookchange.TicketTable, playbookchange.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlaybookChangeClient) Hooks() []Hook {
	return c.hooks.PlaybookChange
}

// Interceptors returns the client interceptors.
func (c *PlaybookChangeClient) Interceptors() []Interceptor {
	return c.inters.PlaybookChange
}

func (c *PlaybookChangeClient) mutate(ctx context.Context, m *PlaybookChangeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlaybookChangeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlaybookChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlaybookChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlaybookChangeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlaybookChange mutation op: %q", m.Op())
	}
}

// PlaybookEntryClient is a client for the PlaybookEntry schema.
type PlaybookEntryClient struct {
	config
}

// NewPlaybookEntryClient returns a client for the PlaybookEntry from the given config.
func NewPlaybookEntryClient(c config) *PlaybookEntryClient {
	return &PlaybookEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playbookentry.Hooks(f(g(h())))`.
func (c *PlaybookEntryClient) Use(hooks ...Hook) {
	c.hooks.PlaybookEntry = append(c.hooks.PlaybookEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playbookentry.Intercept(f(g(h())))`.
func (c *PlaybookEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlaybookEntry = append(c.inters.PlaybookEntry, interceptors...)
}

// Create returns a builder for creating a PlaybookEntry entity.
func (c *PlaybookEntryClient) Create() *PlaybookEntryCreate {
	mutation := newPlaybookEntryMutation(c.config, OpCreate)
	return &PlaybookEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlaybookEntry entities.
func (c *PlaybookEntryClient) CreateBulk(builders ...*PlaybookEntryCreate) *PlaybookEntryCreateBulk {
	return &PlaybookEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlaybookEntryClient) MapCreateBulk(slice any, setFunc func(*PlaybookEntryCreate, int)) *PlaybookEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlaybookEntryCreateBulk{err: fmt.Errorf("calling to PlaybookEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlaybookEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlaybookEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlaybookEntry.
func (c *PlaybookEntryClient) Update() *PlaybookEntryUpdate {
	mutation := newPlaybookEntryMutation(c.config, OpUpdate)
	return &PlaybookEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlaybookEntryClient) UpdateOne(_m *PlaybookEntry) *PlaybookEntryUpdateOne {
	mutation := newPlaybookEntryMutation(c.config, OpUpdateOne, withPlaybookEntry(_m))
	return &PlaybookEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlaybookEntryClient) UpdateOneID(id string) *PlaybookEntryUpdateOne {
	mutation := newPlaybookEntryMutation(c.config, OpUpdateOne, withPlaybookEntryID(id))
	return &PlaybookEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlaybookEntry.
func (c *PlaybookEntryClient) Delete() *PlaybookEntryDelete {
	mutation := newPlaybookEntryMutation(c.config, OpDelete)
	return &PlaybookEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlaybookEntryClient) DeleteOne(_m *PlaybookEntry) *PlaybookEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlaybookEntryClient) DeleteOneID(id string) *PlaybookEntryDeleteOne {
	builder := c.Delete().Where(playbookentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlaybookEntryDeleteOne{builder}
}

// Query returns a query builder for PlaybookEntry.
func (c *PlaybookEntryClient) Query() *PlaybookEntryQuery {
	return &PlaybookEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlaybookEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a PlaybookEntry entity by its id.
func (c *PlaybookEntryClient) Get(ctx context.Context, id string) (*PlaybookEntry, error) {
	return c.Query().Where(playbookentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlaybookEntryClient) GetX(ctx context.Context, id string) *PlaybookEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a PlaybookEntry.
func (c *PlaybookEntryClient) QueryTicket(_m *PlaybookEntry) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(playbookentry.Table, playbookentry.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, playbookentry.TicketTable, playbookentry.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlaybookEntryClient) Hooks() []Hook {
	return c.hooks.PlaybookEntry
}

// Interceptors returns the client interceptors.
func (c *PlaybookEntryClient) Interceptors() []Interceptor {
	return c.inters.PlaybookEntry
}

func (c *PlaybookEntryClient) mutate(ctx context.Context, m *PlaybookEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlaybookEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlaybookEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlaybookEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlaybookEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlaybookEntry mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTickets queries the tickets edge of a Project.
func (c *ProjectClient) QueryTickets(_m *Project) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TicketsTable, project.TicketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOwner queries the owner edge of a Project.
func (c *ProjectClient) QueryOwner(_m *Project) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, project.OwnerTable, project.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ResourceLockClient is a client for the ResourceLock schema.
type ResourceLockClient struct {
	config
}

// NewResourceLockClient returns a client for the ResourceLock from the given config.
func NewResourceLockClient(c config) *ResourceLockClient {
	return &ResourceLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resourcelock.Hooks(f(g(h())))`.
func (c *ResourceLockClient) Use(hooks ...Hook) {
	c.hooks.ResourceLock = append(c.hooks.ResourceLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resourcelock.Intercept(f(g(h())))`.
func (c *ResourceLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResourceLock = append(c.inters.ResourceLock, interceptors...)
}

// Create returns a builder for creating a ResourceLock entity.
func (c *ResourceLockClient) Create() *ResourceLockCreate {
	mutation := newResourceLockMutation(c.config, OpCreate)
	return &ResourceLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResourceLock entities.
func (c *ResourceLockClient) CreateBulk(builders ...*ResourceLockCreate) *ResourceLockCreateBulk {
	return &ResourceLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResourceLockClient) MapCreateBulk(slice any, setFunc func(*ResourceLockCreate, int)) *ResourceLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResourceLockCreateBulk{err: fmt.Errorf("calling to ResourceLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResourceLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResourceLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResourceLock.
func (c *ResourceLockClient) Update() *ResourceLockUpdate {
	mutation := newResourceLockMutation(c.config, OpUpdate)
	return &ResourceLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResourceLockClient) UpdateOne(_m *ResourceLock) *ResourceLockUpdateOne {
	mutation := newResourceLockMutation(c.config, OpUpdateOne, withResourceLock(_m))
	return &ResourceLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResourceLockClient) UpdateOneID(id string) *ResourceLockUpdateOne {
	mutation := newResourceLockMutation(c.config, OpUpdateOne, withResourceLockID(id))
	return &ResourceLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResourceLock.
func (c *ResourceLockClient) Delete() *ResourceLockDelete {
	mutation := newResourceLockMutation(c.config, OpDelete)
	return &ResourceLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResourceLockClient) DeleteOne(_m *ResourceLock) *ResourceLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResourceLockClient) DeleteOneID(id string) *ResourceLockDeleteOne {
	builder := c.Delete().Where(resourcelock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResourceLockDeleteOne{builder}
}

// Query returns a query builder for ResourceLock.
func (c *ResourceLockClient) Query() *ResourceLockQuery {
	return &ResourceLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResourceLock},
		inters: c.Interceptors(),
	}
}

// Get returns a ResourceLock entity by its id.
func (c *ResourceLockClient) Get(ctx context.Context, id string) (*ResourceLock, error) {
	return c.Query().Where(resourcelock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResourceLockClient) GetX(ctx context.Context, id string) *ResourceLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResourceLockClient) Hooks() []Hook {
	return c.hooks.ResourceLock
}

// Interceptors returns the client interceptors.
func (c *ResourceLockClient) Interceptors() []Interceptor {
	return c.inters.ResourceLock
}

func (c *ResourceLockClient) mutate(ctx context.Context, m *ResourceLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResourceLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResourceLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResourceLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResourceLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResourceLock mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a Task.
func (c *TaskClient) QueryTicket(_m *Task) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.TicketTable, task.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemories queries the memories edge of a Task.
func (c *TaskClient) QueryMemories(_m *Task) *TaskMemoryQuery {
	query := (&TaskMemoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskmemory.Table, taskmemory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.MemoriesTable, task.MemoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValidationReviews queries the validation_reviews edge of a Task.
func (c *TaskClient) QueryValidationReviews(_m *Task) *ValidationReviewQuery {
	query := (&ValidationReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(validationreview.Table, validationreview.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ValidationReviewsTable, task.ValidationReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDiscoveries queries the discoveries edge of a Task.
func (c *TaskClient) QueryDiscoveries(_m *Task) *TaskDiscoveryQuery {
	query := (&TaskDiscoveryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskdiscovery.Table, taskdiscovery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.DiscoveriesTable, task.DiscoveriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentResults queries the agent_results edge of a Task.
func (c *TaskClient) QueryAgentResults(_m *Task) *AgentResultQuery {
	query := (&AgentResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(agentresult.Table, agentresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AgentResultsTable, task.AgentResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskDiscoveryClient is a client for the TaskDiscovery schema.
type TaskDiscoveryClient struct {
	config
}

// NewTaskDiscoveryClient returns a client for the TaskDiscovery from the given config.
func NewTaskDiscoveryClient(c config) *TaskDiscoveryClient {
	return &TaskDiscoveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskdiscovery.Hooks(f(g(h())))`.
func (c *TaskDiscoveryClient) Use(hooks ...Hook) {
	c.hooks.TaskDiscovery = append(c.hooks.TaskDiscovery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskdiscovery.Intercept(f(g(h())))`.
func (c *TaskDiscoveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskDiscovery = append(c.inters.TaskDiscovery, interceptors...)
}

// Create returns a builder for creating a TaskDiscovery entity.
func (c *TaskDiscoveryClient) Create() *TaskDiscoveryCreate {
	mutation := newTaskDiscoveryMutation(c.config, OpCreate)
	return &TaskDiscoveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskDiscovery entities.
func (c *TaskDiscoveryClient) CreateBulk(builders ...*TaskDiscoveryCreate) *TaskDiscoveryCreateBulk {
	return &TaskDiscoveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskDiscoveryClient) MapCreateBulk(slice any, setFunc func(*TaskDiscoveryCreate, int)) *TaskDiscoveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskDiscoveryCreateBulk{err: fmt.Errorf("calling to TaskDiscoveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskDiscoveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskDiscoveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskDiscovery.
func (c *TaskDiscoveryClient) Update() *TaskDiscoveryUpdate {
	mutation := newTaskDiscoveryMutation(c.config, OpUpdate)
	return &TaskDiscoveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskDiscoveryClient) UpdateOne(_m *TaskDiscovery) *TaskDiscoveryUpdateOne {
	mutation := newTaskDiscoveryMutation(c.config, OpUpdateOne, withTaskDiscovery(_m))
	return &TaskDiscoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskDiscoveryClient) UpdateOneID(id string) *TaskDiscoveryUpdateOne {
	mutation := newTaskDiscoveryMutation(c.config, OpUpdateOne, withTaskDiscoveryID(id))
	return &TaskDiscoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskDiscovery.
func (c *TaskDiscoveryClient) Delete() *TaskDiscoveryDelete {
	mutation := newTaskDiscoveryMutation(c.config, OpDelete)
	return &TaskDiscoveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskDiscoveryClient) DeleteOne(_m *TaskDiscovery) *TaskDiscoveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskDiscoveryClient) DeleteOneID(id string) *TaskDiscoveryDeleteOne {
	builder := c.Delete().Where(taskdiscovery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDiscoveryDeleteOne{builder}
}

// Query returns a query builder for TaskDiscovery.
func (c *TaskDiscoveryClient) Query() *TaskDiscoveryQuery {
	return &TaskDiscoveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskDiscovery},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskDiscovery entity by its id.
func (c *TaskDiscoveryClient) Get(ctx context.Context, id string) (*TaskDiscovery, error) {
	return c.Query().Where(taskdiscovery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskDiscoveryClient) GetX(ctx context.Context, id string) *TaskDiscovery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySourceTask queries the source_task edge of a TaskDiscovery.
func (c *TaskDiscoveryClient) QuerySourceTask(_m *TaskDiscovery) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskdiscovery.Table, taskdiscovery.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskdiscovery.SourceTaskTable, taskdiscovery.SourceTaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskDiscoveryClient) Hooks() []Hook {
	return c.hooks.TaskDiscovery
}

// Interceptors returns the client interceptors.
func (c *TaskDiscoveryClient) Interceptors() []Interceptor {
	return c.inters.TaskDiscovery
}

func (c *TaskDiscoveryClient) mutate(ctx context.Context, m *TaskDiscoveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskDiscoveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskDiscoveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskDiscoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDiscoveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskDiscovery mutation op: %q", m.Op())
	}
}

// TaskMemoryClient is a client for the TaskMemory schema.
type TaskMemoryClient struct {
	config
}

// NewTaskMemoryClient returns a client for the TaskMemory from the given config.
func NewTaskMemoryClient(c config) *TaskMemoryClient {
	return &TaskMemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskmemory.Hooks(f(g(h())))`.
func (c *TaskMemoryClient) Use(hooks ...Hook) {
	c.hooks.TaskMemory = append(c.hooks.TaskMemory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskmemory.Intercept(f(g(h())))`.
func (c *TaskMemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskMemory = append(c.inters.TaskMemory, interceptors...)
}

// Create returns a builder for creating a TaskMemory entity.
func (c *TaskMemoryClient) Create() *TaskMemoryCreate {
	mutation := newTaskMemoryMutation(c.config, OpCreate)
	return &TaskMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskMemory entities.
func (c *TaskMemoryClient) CreateBulk(builders ...*TaskMemoryCreate) *TaskMemoryCreateBulk {
	return &TaskMemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskMemoryClient) MapCreateBulk(slice any, setFunc func(*TaskMemoryCreate, int)) *TaskMemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskMemoryCreateBulk{err: fmt.Errorf("calling to TaskMemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskMemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskMemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskMemory.
func (c *TaskMemoryClient) Update() *TaskMemoryUpdate {
	mutation := newTaskMemoryMutation(c.config, OpUpdate)
	return &TaskMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskMemoryClient) UpdateOne(_m *TaskMemory) *TaskMemoryUpdateOne {
	mutation := newTaskMemoryMutation(c.config, OpUpdateOne, withTaskMemory(_m))
	return &TaskMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskMemoryClient) UpdateOneID(id string) *TaskMemoryUpdateOne {
	mutation := newTaskMemoryMutation(c.config, OpUpdateOne, withTaskMemoryID(id))
	return &TaskMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskMemory.
func (c *TaskMemoryClient) Delete() *TaskMemoryDelete {
	mutation := newTaskMemoryMutation(c.config, OpDelete)
	return &TaskMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskMemoryClient) DeleteOne(_m *TaskMemory) *TaskMemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskMemoryClient) DeleteOneID(id string) *TaskMemoryDeleteOne {
	builder := c.Delete().Where(taskmemory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskMemoryDeleteOne{builder}
}

// Query returns a query builder for TaskMemory.
func (c *TaskMemoryClient) Query() *TaskMemoryQuery {
	return &TaskMemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskMemory entity by its id.
func (c *TaskMemoryClient) Get(ctx context.Context, id string) (*TaskMemory, error) {
	return c.Query().Where(taskmemory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskMemoryClient) GetX(ctx context.Context, id string) *TaskMemory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskMemory.
func (c *TaskMemoryClient) QueryTask(_m *TaskMemory) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskmemory.Table, taskmemory.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskmemory.TaskTable, taskmemory.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskMemoryClient) Hooks() []Hook {
	return c.hooks.TaskMemory
}

// Interceptors returns the client interceptors.
func (c *TaskMemoryClient) Interceptors() []Interceptor {
	return c.inters.TaskMemory
}

func (c *TaskMemoryClient) mutate(ctx context.Context, m *TaskMemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskMemory mutation op: %q", m.Op())
	}
}

// TicketClient is a client for the Ticket schema.
type TicketClient struct {
	config
}

// NewTicketClient returns a client for the Ticket from the given config.
func NewTicketClient(c config) *TicketClient {
	return &TicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticket.Hooks(f(g(h())))`.
func (c *TicketClient) Use(hooks ...Hook) {
	c.hooks.Ticket = append(c.hooks.Ticket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticket.Intercept(f(g(h())))`.
func (c *TicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ticket = append(c.inters.Ticket, interceptors...)
}

// Create returns a builder for creating a Ticket entity.
func (c *TicketClient) Create() *TicketCreate {
	mutation := newTicketMutation(c.config, OpCreate)
	return &TicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ticket entities.
func (c *TicketClient) CreateBulk(builders ...*TicketCreate) *TicketCreateBulk {
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketClient) MapCreateBulk(slice any, setFunc func(*TicketCreate, int)) *TicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCreateBulk{err: fmt.Errorf("calling to TicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ticket.
func (c *TicketClient) Update() *TicketUpdate {
	mutation := newTicketMutation(c.config, OpUpdate)
	return &TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketClient) UpdateOne(_m *Ticket) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicket(_m))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketClient) UpdateOneID(id string) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicketID(id))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ticket.
func (c *TicketClient) Delete() *TicketDelete {
	mutation := newTicketMutation(c.config, OpDelete)
	return &TicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketClient) DeleteOne(_m *Ticket) *TicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketClient) DeleteOneID(id string) *TicketDeleteOne {
	builder := c.Delete().Where(ticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDeleteOne{builder}
}

// Query returns a query builder for Ticket.
func (c *TicketClient) Query() *TicketQuery {
	return &TicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a Ticket entity by its id.
func (c *TicketClient) Get(ctx context.Context, id string) (*Ticket, error) {
	return c.Query().Where(ticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketClient) GetX(ctx context.Context, id string) *Ticket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Ticket.
func (c *TicketClient) QueryTasks(_m *Ticket) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.TasksTable, ticket.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlaybookEntries queries the playbook_entries edge of a Ticket.
func (c *TicketClient) QueryPlaybookEntries(_m *Ticket) *PlaybookEntryQuery {
	query := (&PlaybookEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(playbookentry.Table, playbookentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.PlaybookEntriesTable, ticket.PlaybookEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlaybookChanges queries the playbook_changes edge of a Ticket.
func (c *TicketClient) QueryPlaybookChanges(_m *Ticket) *PlaybookChangeQuery {
	query := (&PlaybookChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(playbookchange.Table, playbookchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.PlaybookChangesTable, ticket.PlaybookChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDiagnosticRuns queries the diagnostic_runs edge of a Ticket.
func (c *TicketClient) QueryDiagnosticRuns(_m *Ticket) *DiagnosticRunQuery {
	query := (&DiagnosticRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(diagnosticrun.Table, diagnosticrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.DiagnosticRunsTable, ticket.DiagnosticRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflowResults queries the workflow_results edge of a Ticket.
func (c *TicketClient) QueryWorkflowResults(_m *Ticket) *WorkflowResultQuery {
	query := (&WorkflowResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(workflowresult.Table, workflowresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.WorkflowResultsTable, ticket.WorkflowResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a Ticket.
func (c *TicketClient) QueryProject(_m *Ticket) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticket.ProjectTable, ticket.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketClient) Hooks() []Hook {
	return c.hooks.Ticket
}

// Interceptors returns the client interceptors.
func (c *TicketClient) Interceptors() []Interceptor {
	return c.inters.Ticket
}

func (c *TicketClient) mutate(ctx context.Context, m *TicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ticket mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProjects queries the projects edge of a User.
func (c *UserClient) QueryProjects(_m *User) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ProjectsTable, user.ProjectsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// ValidationReviewClient is a client for the ValidationReview schema.
type ValidationReviewClient struct {
	config
}

// NewValidationReviewClient returns a client for the ValidationReview from the given config.
func NewValidationReviewClient(c config) *ValidationReviewClient {
	return &ValidationReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationreview.Hooks(f(g(h())))`.
func (c *ValidationReviewClient) Use(hooks ...Hook) {
	c.hooks.ValidationReview = append(c.hooks.ValidationReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationreview.Intercept(f(g(h())))`.
func (c *ValidationReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationReview = append(c.inters.ValidationReview, interceptors...)
}

// Create returns a builder for creating a ValidationReview entity.
func (c *ValidationReviewClient) Create() *ValidationReviewCreate {
	mutation := newValidationReviewMutation(c.config, OpCreate)
	return &ValidationReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationReview entities.
func (c *ValidationReviewClient) CreateBulk(builders ...*ValidationReviewCreate) *ValidationReviewCreateBulk {
	return &ValidationReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationReviewClient) MapCreateBulk(slice any, setFunc func(*ValidationReviewCreate, int)) *ValidationReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationReviewCreateBulk{err: fmt.Errorf("calling to ValidationReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationReview.
func (c *ValidationReviewClient) Update() *ValidationReviewUpdate {
	mutation := newValidationReviewMutation(c.config, OpUpdate)
	return &ValidationReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationReviewClient) UpdateOne(_m *ValidationReview) *ValidationReviewUpdateOne {
	mutation := newValidationReviewMutation(c.config, OpUpdateOne, withValidationReview(_m))
	return &ValidationReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationReviewClient) UpdateOneID(id string) *ValidationReviewUpdateOne {
	mutation := newValidationReviewMutation(c.config, OpUpdateOne, withValidationReviewID(id))
	return &ValidationReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationReview.
func (c *ValidationReviewClient) Delete() *ValidationReviewDelete {
	mutation := newValidationReviewMutation(c.config, OpDelete)
	return &ValidationReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationReviewClient) DeleteOne(_m *ValidationReview) *ValidationReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationReviewClient) DeleteOneID(id string) *ValidationReviewDeleteOne {
	builder := c.Delete().Where(validationreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationReviewDeleteOne{builder}
}

// Query returns a query builder for ValidationReview.
func (c *ValidationReviewClient) Query() *ValidationReviewQuery {
	return &ValidationReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationReview},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationReview entity by its id.
func (c *ValidationReviewClient) Get(ctx context.Context, id string) (*ValidationReview, error) {
	return c.Query().Where(validationreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationReviewClient) GetX(ctx context.Context, id string) *ValidationReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ValidationReview.
func (c *ValidationReviewClient) QueryTask(_m *ValidationReview) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationreview.Table, validationreview.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationreview.TaskTable, validationreview.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationReviewClient) Hooks() []Hook {
	return c.hooks.ValidationReview
}

// Interceptors returns the client interceptors.
func (c *ValidationReviewClient) Interceptors() []Interceptor {
	return c.inters.ValidationReview
}

func (c *ValidationReviewClient) mutate(ctx context.Context, m *ValidationReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationReview mutation op: %q", m.Op())
	}
}

// WorkflowResultClient is a client for the WorkflowResult schema.
type WorkflowResultClient struct {
	config
}

// NewWorkflowResultClient returns a client for the WorkflowResult from the given config.
func NewWorkflowResultClient(c config) *WorkflowResultClient {
	return &WorkflowResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowresult.Hooks(f(g(h())))`.
func (c *WorkflowResultClient) Use(hooks ...Hook) {
	c.hooks.WorkflowResult = append(c.hooks.WorkflowResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowresult.Intercept(f(g(h())))`.
func (c *WorkflowResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowResult = append(c.inters.WorkflowResult, interceptors...)
}

// Create returns a builder for creating a WorkflowResult entity.
func (c *WorkflowResultClient) Create() *WorkflowResultCreate {
	mutation := newWorkflowResultMutation(c.config, OpCreate)
	return &WorkflowResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowResult entities.
func (c *WorkflowResultClient) CreateBulk(builders ...*WorkflowResultCreate) *WorkflowResultCreateBulk {
	return &WorkflowResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowResultClient) MapCreateBulk(slice any, setFunc func(*WorkflowResultCreate, int)) *WorkflowResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowResultCreateBulk{err: fmt.Errorf("calling to WorkflowResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowResult.
func (c *WorkflowResultClient) Update() *WorkflowResultUpdate {
	mutation := newWorkflowResultMutation(c.config, OpUpdate)
	return &WorkflowResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowResultClient) UpdateOne(_m *WorkflowResult) *WorkflowResultUpdateOne {
	mutation := newWorkflowResultMutation(c.config, OpUpdateOne, withWorkflowResult(_m))
	return &WorkflowResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowResultClient) UpdateOneID(id string) *WorkflowResultUpdateOne {
	mutation := newWorkflowResultMutation(c.config, OpUpdateOne, withWorkflowResultID(id))
	return &WorkflowResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowResult.
func (c *WorkflowResultClient) Delete() *WorkflowResultDelete {
	mutation := newWorkflowResultMutation(c.config, OpDelete)
	return &WorkflowResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowResultClient) DeleteOne(_m *WorkflowResult) *WorkflowResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowResultClient) DeleteOneID(id string) *WorkflowResultDeleteOne {
	builder := c.Delete().Where(workflowresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowResultDeleteOne{builder}
}

// Query returns a query builder for WorkflowResult.
func (c *WorkflowResultClient) Query() *WorkflowResultQuery {
	return &WorkflowResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowResult},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowResult entity by its id.
func (c *WorkflowResultClient) Get(ctx context.Context, id string) (*WorkflowResult, error) {
	return c.Query().Where(workflowresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowResultClient) GetX(ctx context.Context, id string) *WorkflowResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a WorkflowResult.
func (c *WorkflowResultClient) QueryTicket(_m *WorkflowResult) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowresult.Table, workflowresult.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowresult.TicketTable, workflowresult.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowResultClient) Hooks() []Hook {
	return c.hooks.WorkflowResult
}

// Interceptors returns the client interceptors.
func (c *WorkflowResultClient) Interceptors() []Interceptor {
	return c.inters.WorkflowResult
}

func (c *WorkflowResultClient) mutate(ctx context.Context, m *WorkflowResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentResult, DiagnosticRun, Event, LearnedPattern, MonitorAnomaly,
		PlaybookChange, PlaybookEntry, Project, ResourceLock, Task, TaskDiscovery,
		TaskMemory, Ticket, User, ValidationReview, WorkflowResult []ent.Hook
	}
	inters struct {
		Agent, AgentResult, DiagnosticRun, Event, LearnedPattern, MonitorAnomaly,
		PlaybookChange, PlaybookEntry, Project, ResourceLock, Task, TaskDiscovery,
		TaskMemory, Ticket, User, ValidationReview, WorkflowResult []ent.Interceptor
	}
)
