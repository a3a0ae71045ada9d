// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/echoman-project/echoman/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/echoman-project/echoman/ent/categorydaymetrics"
	"github.com/echoman-project/echoman/ent/embedding"
	"github.com/echoman-project/echoman/ent/ingestrun"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/summary"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicnode"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CategoryDayMetrics is the client for interacting with the CategoryDayMetrics builders.
	CategoryDayMetrics *CategoryDayMetricsClient
	// Embedding is the client for interacting with the Embedding builders.
	Embedding *EmbeddingClient
	// IngestRun is the client for interacting with the IngestRun builders.
	IngestRun *IngestRunClient
	// LLMJudgement is the client for interacting with the LLMJudgement builders.
	LLMJudgement *LLMJudgementClient
	// PipelineRun is the client for interacting with the PipelineRun builders.
	PipelineRun *PipelineRunClient
	// SourceItem is the client for interacting with the SourceItem builders.
	SourceItem *SourceItemClient
	// Summary is the client for interacting with the Summary builders.
	Summary *SummaryClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
	// TopicNode is the client for interacting with the TopicNode builders.
	TopicNode *TopicNodeClient
	// TopicPeriodHeat is the client for interacting with the TopicPeriodHeat builders.
	TopicPeriodHeat *TopicPeriodHeatClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CategoryDayMetrics = NewCategoryDayMetricsClient(c.config)
	c.Embedding = NewEmbeddingClient(c.config)
	c.IngestRun = NewIngestRunClient(c.config)
	c.LLMJudgement = NewLLMJudgementClient(c.config)
	c.PipelineRun = NewPipelineRunClient(c.config)
	c.SourceItem = NewSourceItemClient(c.config)
	c.Summary = NewSummaryClient(c.config)
	c.Topic = NewTopicClient(c.config)
	c.TopicNode = NewTopicNodeClient(c.config)
	c.TopicPeriodHeat = NewTopicPeriodHeatClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		CategoryDayMetrics: NewCategoryDayMetricsClient(cfg),
		Embedding:          NewEmbeddingClient(cfg),
		IngestRun:          NewIngestRunClient(cfg),
		LLMJudgement:       NewLLMJudgementClient(cfg),
		PipelineRun:        NewPipelineRunClient(cfg),
		SourceItem:         NewSourceItemClient(cfg),
		Summary:            NewSummaryClient(cfg),
		Topic:              NewTopicClient(cfg),
		TopicNode:          NewTopicNodeClient(cfg),
		TopicPeriodHeat:    NewTopicPeriodHeatClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		CategoryDayMetrics: NewCategoryDayMetricsClient(cfg),
		Embedding:          NewEmbeddingClient(cfg),
		IngestRun:          NewIngestRunClient(cfg),
		LLMJudgement:       NewLLMJudgementClient(cfg),
		PipelineRun:        NewPipelineRunClient(cfg),
		SourceItem:         NewSourceItemClient(cfg),
		Summary:            NewSummaryClient(cfg),
		Topic:              NewTopicClient(cfg),
		TopicNode:          NewTopicNodeClient(cfg),
		TopicPeriodHeat:    NewTopicPeriodHeatClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CategoryDayMetrics.
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
		c.CategoryDayMetrics, c.Embedding, c.IngestRun, c.LLMJudgement, c.PipelineRun,
		c.SourceItem, c.Summary, c.Topic, c.TopicNode, c.TopicPeriodHeat,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CategoryDayMetrics, c.Embedding, c.IngestRun, c.LLMJudgement, c.PipelineRun,
		c.SourceItem, c.Summary, c.Topic, c.TopicNode, c.TopicPeriodHeat,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CategoryDayMetricsMutation:
		return c.CategoryDayMetrics.mutate(ctx, m)
	case *EmbeddingMutation:
		return c.Embedding.mutate(ctx, m)
	case *IngestRunMutation:
		return c.IngestRun.mutate(ctx, m)
	case *LLMJudgementMutation:
		return c.LLMJudgement.mutate(ctx, m)
	case *PipelineRunMutation:
		return c.PipelineRun.mutate(ctx, m)
	case *SourceItemMutation:
		return c.SourceItem.mutate(ctx, m)
	case *SummaryMutation:
		return c.Summary.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	case *TopicNodeMutation:
		return c.TopicNode.mutate(ctx, m)
	case *TopicPeriodHeatMutation:
		return c.TopicPeriodHeat.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CategoryDayMetricsClient is a client for the CategoryDayMetrics schema.
type CategoryDayMetricsClient struct {
	config
}

// NewCategoryDayMetricsClient returns a client for the CategoryDayMetrics from the given config.
func NewCategoryDayMetricsClient(c config) *CategoryDayMetricsClient {
	return &CategoryDayMetricsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `categorydaymetrics.Hooks(f(g(h())))`.
func (c *CategoryDayMetricsClient) Use(hooks ...Hook) {
	c.hooks.CategoryDayMetrics = append(c.hooks.CategoryDayMetrics, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `categorydaymetrics.Intercept(f(g(h())))`.
func (c *CategoryDayMetricsClient) Intercept(interceptors ...Interceptor) {
	c.inters.CategoryDayMetrics = append(c.inters.CategoryDayMetrics, interceptors...)
}

// Create returns a builder for creating a CategoryDayMetrics entity.
func (c *CategoryDayMetricsClient) Create() *CategoryDayMetricsCreate {
	mutation := newCategoryDayMetricsMutation(c.config, OpCreate)
	return &CategoryDayMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CategoryDayMetrics entities.
func (c *CategoryDayMetricsClient) CreateBulk(builders ...*CategoryDayMetricsCreate) *CategoryDayMetricsCreateBulk {
	return &CategoryDayMetricsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryDayMetricsClient) MapCreateBulk(slice any, setFunc func(*CategoryDayMetricsCreate, int)) *CategoryDayMetricsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryDayMetricsCreateBulk{err: fmt.Errorf("calling to CategoryDayMetricsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryDayMetricsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryDayMetricsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CategoryDayMetrics.
func (c *CategoryDayMetricsClient) Update() *CategoryDayMetricsUpdate {
	mutation := newCategoryDayMetricsMutation(c.config, OpUpdate)
	return &CategoryDayMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryDayMetricsClient) UpdateOne(_m *CategoryDayMetrics) *CategoryDayMetricsUpdateOne {
	mutation := newCategoryDayMetricsMutation(c.config, OpUpdateOne, withCategoryDayMetrics(_m))
	return &CategoryDayMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryDayMetricsClient) UpdateOneID(id int) *CategoryDayMetricsUpdateOne {
	mutation := newCategoryDayMetricsMutation(c.config, OpUpdateOne, withCategoryDayMetricsID(id))
	return &CategoryDayMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CategoryDayMetrics.
func (c *CategoryDayMetricsClient) Delete() *CategoryDayMetricsDelete {
	mutation := newCategoryDayMetricsMutation(c.config, OpDelete)
	return &CategoryDayMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryDayMetricsClient) DeleteOne(_m *CategoryDayMetrics) *CategoryDayMetricsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryDayMetricsClient) DeleteOneID(id int) *CategoryDayMetricsDeleteOne {
	builder := c.Delete().Where(categorydaymetrics.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryDayMetricsDeleteOne{builder}
}

// Query returns a query builder for CategoryDayMetrics.
func (c *CategoryDayMetricsClient) Query() *CategoryDayMetricsQuery {
	return &CategoryDayMetricsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategoryDayMetrics},
		inters: c.Interceptors(),
	}
}

// Get returns a CategoryDayMetrics entity by its id.
func (c *CategoryDayMetricsClient) Get(ctx context.Context, id int) (*CategoryDayMetrics, error) {
	return c.Query().Where(categorydaymetrics.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryDayMetricsClient) GetX(ctx context.Context, id int) *CategoryDayMetrics {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CategoryDayMetricsClient) Hooks() []Hook {
	return c.hooks.CategoryDayMetrics
}

// Interceptors returns the client interceptors.
func (c *CategoryDayMetricsClient) Interceptors() []Interceptor {
	return c.inters.CategoryDayMetrics
}

func (c *CategoryDayMetricsClient) mutate(ctx context.Context, m *CategoryDayMetricsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryDayMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryDayMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryDayMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryDayMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CategoryDayMetrics mutation op: %q", m.Op())
	}
}

// EmbeddingClient is a client for the Embedding schema.
type EmbeddingClient struct {
	config
}

// NewEmbeddingClient returns a client for the Embedding from the given config.
func NewEmbeddingClient(c config) *EmbeddingClient {
	return &EmbeddingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `embedding.Hooks(f(g(h())))`.
func (c *EmbeddingClient) Use(hooks ...Hook) {
	c.hooks.Embedding = append(c.hooks.Embedding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `embedding.Intercept(f(g(h())))`.
func (c *EmbeddingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Embedding = append(c.inters.Embedding, interceptors...)
}

// Create returns a builder for creating a Embedding entity.
func (c *EmbeddingClient) Create() *EmbeddingCreate {
	mutation := newEmbeddingMutation(c.config, OpCreate)
	return &EmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Embedding entities.
func (c *EmbeddingClient) CreateBulk(builders ...*EmbeddingCreate) *EmbeddingCreateBulk {
	return &EmbeddingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmbeddingClient) MapCreateBulk(slice any, setFunc func(*EmbeddingCreate, int)) *EmbeddingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmbeddingCreateBulk{err: fmt.Errorf("calling to EmbeddingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmbeddingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmbeddingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Embedding.
func (c *EmbeddingClient) Update() *EmbeddingUpdate {
	mutation := newEmbeddingMutation(c.config, OpUpdate)
	return &EmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmbeddingClient) UpdateOne(_m *Embedding) *EmbeddingUpdateOne {
	mutation := newEmbeddingMutation(c.config, OpUpdateOne, withEmbedding(_m))
	return &EmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmbeddingClient) UpdateOneID(id int) *EmbeddingUpdateOne {
	mutation := newEmbeddingMutation(c.config, OpUpdateOne, withEmbeddingID(id))
	return &EmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Embedding.
func (c *EmbeddingClient) Delete() *EmbeddingDelete {
	mutation := newEmbeddingMutation(c.config, OpDelete)
	return &EmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmbeddingClient) DeleteOne(_m *Embedding) *EmbeddingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmbeddingClient) DeleteOneID(id int) *EmbeddingDeleteOne {
	builder := c.Delete().Where(embedding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmbeddingDeleteOne{builder}
}

// Query returns a query builder for Embedding.
func (c *EmbeddingClient) Query() *EmbeddingQuery {
	return &EmbeddingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmbedding},
		inters: c.Interceptors(),
	}
}

// Get returns a Embedding entity by its id.
func (c *EmbeddingClient) Get(ctx context.Context, id int) (*Embedding, error) {
	return c.Query().Where(embedding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmbeddingClient) GetX(ctx context.Context, id int) *Embedding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmbeddingClient) Hooks() []Hook {
	return c.hooks.Embedding
}

// Interceptors returns the client interceptors.
func (c *EmbeddingClient) Interceptors() []Interceptor {
	return c.inters.Embedding
}

func (c *EmbeddingClient) mutate(ctx context.Context, m *EmbeddingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Embedding mutation op: %q", m.Op())
	}
}

// IngestRunClient is a client for the IngestRun schema.
type IngestRunClient struct {
	config
}

// NewIngestRunClient returns a client for the IngestRun from the given config.
func NewIngestRunClient(c config) *IngestRunClient {
	return &IngestRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestrun.Hooks(f(g(h())))`.
func (c *IngestRunClient) Use(hooks ...Hook) {
	c.hooks.IngestRun = append(c.hooks.IngestRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestrun.Intercept(f(g(h())))`.
func (c *IngestRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestRun = append(c.inters.IngestRun, interceptors...)
}

// Create returns a builder for creating a IngestRun entity.
func (c *IngestRunClient) Create() *IngestRunCreate {
	mutation := newIngestRunMutation(c.config, OpCreate)
	return &IngestRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestRun entities.
func (c *IngestRunClient) CreateBulk(builders ...*IngestRunCreate) *IngestRunCreateBulk {
	return &IngestRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestRunClient) MapCreateBulk(slice any, setFunc func(*IngestRunCreate, int)) *IngestRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestRunCreateBulk{err: fmt.Errorf("calling to IngestRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestRun.
func (c *IngestRunClient) Update() *IngestRunUpdate {
	mutation := newIngestRunMutation(c.config, OpUpdate)
	return &IngestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestRunClient) UpdateOne(_m *IngestRun) *IngestRunUpdateOne {
	mutation := newIngestRunMutation(c.config, OpUpdateOne, withIngestRun(_m))
	return &IngestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestRunClient) UpdateOneID(id string) *IngestRunUpdateOne {
	mutation := newIngestRunMutation(c.config, OpUpdateOne, withIngestRunID(id))
	return &IngestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestRun.
func (c *IngestRunClient) Delete() *IngestRunDelete {
	mutation := newIngestRunMutation(c.config, OpDelete)
	return &IngestRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestRunClient) DeleteOne(_m *IngestRun) *IngestRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestRunClient) DeleteOneID(id string) *IngestRunDeleteOne {
	builder := c.Delete().Where(ingestrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestRunDeleteOne{builder}
}

// Query returns a query builder for IngestRun.
func (c *IngestRunClient) Query() *IngestRunQuery {
	return &IngestRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestRun},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestRun entity by its id.
func (c *IngestRunClient) Get(ctx context.Context, id string) (*IngestRun, error) {
	return c.Query().Where(ingestrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestRunClient) GetX(ctx context.Context, id string) *IngestRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngestRunClient) Hooks() []Hook {
	return c.hooks.IngestRun
}

// Interceptors returns the client interceptors.
func (c *IngestRunClient) Interceptors() []Interceptor {
	return c.inters.IngestRun
}

func (c *IngestRunClient) mutate(ctx context.Context, m *IngestRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestRun mutation op: %q", m.Op())
	}
}

// LLMJudgementClient is a client for the LLMJudgement schema.
type LLMJudgementClient struct {
	config
}

// NewLLMJudgementClient returns a client for the LLMJudgement from the given config.
func NewLLMJudgementClient(c config) *LLMJudgementClient {
	return &LLMJudgementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmjudgement.Hooks(f(g(h())))`.
func (c *LLMJudgementClient) Use(hooks ...Hook) {
	c.hooks.LLMJudgement = append(c.hooks.LLMJudgement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmjudgement.Intercept(f(g(h())))`.
func (c *LLMJudgementClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMJudgement = append(c.inters.LLMJudgement, interceptors...)
}

// Create returns a builder for creating a LLMJudgement entity.
func (c *LLMJudgementClient) Create() *LLMJudgementCreate {
	mutation := newLLMJudgementMutation(c.config, OpCreate)
	return &LLMJudgementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMJudgement entities.
func (c *LLMJudgementClient) CreateBulk(builders ...*LLMJudgementCreate) *LLMJudgementCreateBulk {
	return &LLMJudgementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMJudgementClient) MapCreateBulk(slice any, setFunc func(*LLMJudgementCreate, int)) *LLMJudgementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMJudgementCreateBulk{err: fmt.Errorf("calling to LLMJudgementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMJudgementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMJudgementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMJudgement.
func (c *LLMJudgementClient) Update() *LLMJudgementUpdate {
	mutation := newLLMJudgementMutation(c.config, OpUpdate)
	return &LLMJudgementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMJudgementClient) UpdateOne(_m *LLMJudgement) *LLMJudgementUpdateOne {
	mutation := newLLMJudgementMutation(c.config, OpUpdateOne, withLLMJudgement(_m))
	return &LLMJudgementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMJudgementClient) UpdateOneID(id int) *LLMJudgementUpdateOne {
	mutation := newLLMJudgementMutation(c.config, OpUpdateOne, withLLMJudgementID(id))
	return &LLMJudgementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMJudgement.
func (c *LLMJudgementClient) Delete() *LLMJudgementDelete {
	mutation := newLLMJudgementMutation(c.config, OpDelete)
	return &LLMJudgementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMJudgementClient) DeleteOne(_m *LLMJudgement) *LLMJudgementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMJudgementClient) DeleteOneID(id int) *LLMJudgementDeleteOne {
	builder := c.Delete().Where(llmjudgement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMJudgementDeleteOne{builder}
}

// Query returns a query builder for LLMJudgement.
func (c *LLMJudgementClient) Query() *LLMJudgementQuery {
	return &LLMJudgementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMJudgement},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMJudgement entity by its id.
func (c *LLMJudgementClient) Get(ctx context.Context, id int) (*LLMJudgement, error) {
	return c.Query().Where(llmjudgement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMJudgementClient) GetX(ctx context.Context, id int) *LLMJudgement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMJudgementClient) Hooks() []Hook {
	return c.hooks.LLMJudgement
}

// Interceptors returns the client interceptors.
func (c *LLMJudgementClient) Interceptors() []Interceptor {
	return c.inters.LLMJudgement
}

func (c *LLMJudgementClient) mutate(ctx context.Context, m *LLMJudgementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMJudgementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMJudgementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMJudgementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMJudgementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMJudgement mutation op: %q", m.Op())
	}
}

// PipelineRunClient is a client for the PipelineRun schema.
type PipelineRunClient struct {
	config
}

// NewPipelineRunClient returns a client for the PipelineRun from the given config.
func NewPipelineRunClient(c config) *PipelineRunClient {
	return &PipelineRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinerun.Hooks(f(g(h())))`.
func (c *PipelineRunClient) Use(hooks ...Hook) {
	c.hooks.PipelineRun = append(c.hooks.PipelineRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinerun.Intercept(f(g(h())))`.
func (c *PipelineRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineRun = append(c.inters.PipelineRun, interceptors...)
}

// Create returns a builder for creating a PipelineRun entity.
func (c *PipelineRunClient) Create() *PipelineRunCreate {
	mutation := newPipelineRunMutation(c.config, OpCreate)
	return &PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineRun entities.
func (c *PipelineRunClient) CreateBulk(builders ...*PipelineRunCreate) *PipelineRunCreateBulk {
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineRunClient) MapCreateBulk(slice any, setFunc func(*PipelineRunCreate, int)) *PipelineRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineRunCreateBulk{err: fmt.Errorf("calling to PipelineRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineRun.
func (c *PipelineRunClient) Update() *PipelineRunUpdate {
	mutation := newPipelineRunMutation(c.config, OpUpdate)
	return &PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineRunClient) UpdateOne(_m *PipelineRun) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRun(_m))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineRunClient) UpdateOneID(id string) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRunID(id))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineRun.
func (c *PipelineRunClient) Delete() *PipelineRunDelete {
	mutation := newPipelineRunMutation(c.config, OpDelete)
	return &PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineRunClient) DeleteOne(_m *PipelineRun) *PipelineRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineRunClient) DeleteOneID(id string) *PipelineRunDeleteOne {
	builder := c.Delete().Where(pipelinerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineRunDeleteOne{builder}
}

// Query returns a query builder for PipelineRun.
func (c *PipelineRunClient) Query() *PipelineRunQuery {
	return &PipelineRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineRun entity by its id.
func (c *PipelineRunClient) Get(ctx context.Context, id string) (*PipelineRun, error) {
	return c.Query().Where(pipelinerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineRunClient) GetX(ctx context.Context, id string) *PipelineRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineRunClient) Hooks() []Hook {
	return c.hooks.PipelineRun
}

// Interceptors returns the client interceptors.
func (c *PipelineRunClient) Interceptors() []Interceptor {
	return c.inters.PipelineRun
}

func (c *PipelineRunClient) mutate(ctx context.Context, m *PipelineRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineRun mutation op: %q", m.Op())
	}
}

// SourceItemClient is a client for the SourceItem schema.
type SourceItemClient struct {
	config
}

// NewSourceItemClient returns a client for the SourceItem from the given config.
func NewSourceItemClient(c config) *SourceItemClient {
	return &SourceItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourceitem.Hooks(f(g(h())))`.
func (c *SourceItemClient) Use(hooks ...Hook) {
	c.hooks.SourceItem = append(c.hooks.SourceItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourceitem.Intercept(f(g(h())))`.
func (c *SourceItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceItem = append(c.inters.SourceItem, interceptors...)
}

// Create returns a builder for creating a SourceItem entity.
func (c *SourceItemClient) Create() *SourceItemCreate {
	mutation := newSourceItemMutation(c.config, OpCreate)
	return &SourceItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceItem entities.
func (c *SourceItemClient) CreateBulk(builders ...*SourceItemCreate) *SourceItemCreateBulk {
	return &SourceItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceItemClient) MapCreateBulk(slice any, setFunc func(*SourceItemCreate, int)) *SourceItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceItemCreateBulk{err: fmt.Errorf("calling to SourceItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceItem.
func (c *SourceItemClient) Update() *SourceItemUpdate {
	mutation := newSourceItemMutation(c.config, OpUpdate)
	return &SourceItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceItemClient) UpdateOne(_m *SourceItem) *SourceItemUpdateOne {
	mutation := newSourceItemMutation(c.config, OpUpdateOne, withSourceItem(_m))
	return &SourceItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceItemClient) UpdateOneID(id int) *SourceItemUpdateOne {
	mutation := newSourceItemMutation(c.config, OpUpdateOne, withSourceItemID(id))
	return &SourceItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceItem.
func (c *SourceItemClient) Delete() *SourceItemDelete {
	mutation := newSourceItemMutation(c.config, OpDelete)
	return &SourceItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceItemClient) DeleteOne(_m *SourceItem) *SourceItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceItemClient) DeleteOneID(id int) *SourceItemDeleteOne {
	builder := c.Delete().Where(sourceitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceItemDeleteOne{builder}
}

// Query returns a query builder for SourceItem.
func (c *SourceItemClient) Query() *SourceItemQuery {
	return &SourceItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceItem},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceItem entity by its id.
func (c *SourceItemClient) Get(ctx context.Context, id int) (*SourceItem, error) {
	return c.Query().Where(sourceitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceItemClient) GetX(ctx context.Context, id int) *SourceItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTopicNodes queries the topic_nodes edge of a SourceItem.
func (c *SourceItemClient) QueryTopicNodes(_m *SourceItem) *TopicNodeQuery {
	query := (&TopicNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourceitem.Table, sourceitem.FieldID, id),
			sqlgraph.To(topicnode.Table, topicnode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourceitem.TopicNodesTable, sourceitem.TopicNodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceItemClient) Hooks() []Hook {
	return c.hooks.SourceItem
}

// Interceptors returns the client interceptors.
func (c *SourceItemClient) Interceptors() []Interceptor {
	return c.inters.SourceItem
}

func (c *SourceItemClient) mutate(ctx context.Context, m *SourceItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceItem mutation op: %q", m.Op())
	}
}

// SummaryClient is a client for the Summary schema.
type SummaryClient struct {
	config
}

// NewSummaryClient returns a client for the Summary from the given config.
func NewSummaryClient(c config) *SummaryClient {
	return &SummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summary.Hooks(f(g(h())))`.
func (c *SummaryClient) Use(hooks ...Hook) {
	c.hooks.Summary = append(c.hooks.Summary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summary.Intercept(f(g(h())))`.
func (c *SummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Summary = append(c.inters.Summary, interceptors...)
}

// Create returns a builder for creating a Summary entity.
func (c *SummaryClient) Create() *SummaryCreate {
	mutation := newSummaryMutation(c.config, OpCreate)
	return &SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Summary entities.
func (c *SummaryClient) CreateBulk(builders ...*SummaryCreate) *SummaryCreateBulk {
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryClient) MapCreateBulk(slice any, setFunc func(*SummaryCreate, int)) *SummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryCreateBulk{err: fmt.Errorf("calling to SummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Summary.
func (c *SummaryClient) Update() *SummaryUpdate {
	mutation := newSummaryMutation(c.config, OpUpdate)
	return &SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryClient) UpdateOne(_m *Summary) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummary(_m))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryClient) UpdateOneID(id int) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummaryID(id))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Summary.
func (c *SummaryClient) Delete() *SummaryDelete {
	mutation := newSummaryMutation(c.config, OpDelete)
	return &SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryClient) DeleteOne(_m *Summary) *SummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryClient) DeleteOneID(id int) *SummaryDeleteOne {
	builder := c.Delete().Where(summary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryDeleteOne{builder}
}

// Query returns a query builder for Summary.
func (c *SummaryClient) Query() *SummaryQuery {
	return &SummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a Summary entity by its id.
func (c *SummaryClient) Get(ctx context.Context, id int) (*Summary, error) {
	return c.Query().Where(summary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryClient) GetX(ctx context.Context, id int) *Summary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTopic queries the topic edge of a Summary.
func (c *SummaryClient) QueryTopic(_m *Summary) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summary.Table, summary.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, summary.TopicTable, summary.TopicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SummaryClient) Hooks() []Hook {
	return c.hooks.Summary
}

// Interceptors returns the client interceptors.
func (c *SummaryClient) Interceptors() []Interceptor {
	return c.inters.Summary
}

func (c *SummaryClient) mutate(ctx context.Context, m *SummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Summary mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id int) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id int) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id int) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id int) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNodes queries the nodes edge of a Topic.
func (c *TopicClient) QueryNodes(_m *Topic) *TopicNodeQuery {
	query := (&TopicNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(topicnode.Table, topicnode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topic.NodesTable, topic.NodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPeriodHeats queries the period_heats edge of a Topic.
func (c *TopicClient) QueryPeriodHeats(_m *Topic) *TopicPeriodHeatQuery {
	query := (&TopicPeriodHeatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(topicperiodheat.Table, topicperiodheat.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topic.PeriodHeatsTable, topic.PeriodHeatsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySummaries queries the summaries edge of a Topic.
func (c *TopicClient) QuerySummaries(_m *Topic) *SummaryQuery {
	query := (&SummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(summary.Table, summary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topic.SummariesTable, topic.SummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// TopicNodeClient is a client for the TopicNode schema.
type TopicNodeClient struct {
	config
}

// NewTopicNodeClient returns a client for the TopicNode from the given config.
func NewTopicNodeClient(c config) *TopicNodeClient {
	return &TopicNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicnode.Hooks(f(g(h())))`.
func (c *TopicNodeClient) Use(hooks ...Hook) {
	c.hooks.TopicNode = append(c.hooks.TopicNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicnode.Intercept(f(g(h())))`.
func (c *TopicNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicNode = append(c.inters.TopicNode, interceptors...)
}

// Create returns a builder for creating a TopicNode entity.
func (c *TopicNodeClient) Create() *TopicNodeCreate {
	mutation := newTopicNodeMutation(c.config, OpCreate)
	return &TopicNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicNode entities.
func (c *TopicNodeClient) CreateBulk(builders ...*TopicNodeCreate) *TopicNodeCreateBulk {
	return &TopicNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicNodeClient) MapCreateBulk(slice any, setFunc func(*TopicNodeCreate, int)) *TopicNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicNodeCreateBulk{err: fmt.Errorf("calling to TopicNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicNode.
func (c *TopicNodeClient) Update() *TopicNodeUpdate {
	mutation := newTopicNodeMutation(c.config, OpUpdate)
	return &TopicNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicNodeClient) UpdateOne(_m *TopicNode) *TopicNodeUpdateOne {
	mutation := newTopicNodeMutation(c.config, OpUpdateOne, withTopicNode(_m))
	return &TopicNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicNodeClient) UpdateOneID(id int) *TopicNodeUpdateOne {
	mutation := newTopicNodeMutation(c.config, OpUpdateOne, withTopicNodeID(id))
	return &TopicNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicNode.
func (c *TopicNodeClient) Delete() *TopicNodeDelete {
	mutation := newTopicNodeMutation(c.config, OpDelete)
	return &TopicNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicNodeClient) DeleteOne(_m *TopicNode) *TopicNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicNodeClient) DeleteOneID(id int) *TopicNodeDeleteOne {
	builder := c.Delete().Where(topicnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicNodeDeleteOne{builder}
}

// Query returns a query builder for TopicNode.
func (c *TopicNodeClient) Query() *TopicNodeQuery {
	return &TopicNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicNode},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicNode entity by its id.
func (c *TopicNodeClient) Get(ctx context.Context, id int) (*TopicNode, error) {
	return c.Query().Where(topicnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicNodeClient) GetX(ctx context.Context, id int) *TopicNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTopic queries the topic edge of a TopicNode.
func (c *TopicNodeClient) QueryTopic(_m *TopicNode) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topicnode.Table, topicnode.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topicnode.TopicTable, topicnode.TopicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySourceItem queries the source_item edge of a TopicNode.
func (c *TopicNodeClient) QuerySourceItem(_m *TopicNode) *SourceItemQuery {
	query := (&SourceItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topicnode.Table, topicnode.FieldID, id),
			sqlgraph.To(sourceitem.Table, sourceitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topicnode.SourceItemTable, topicnode.SourceItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicNodeClient) Hooks() []Hook {
	return c.hooks.TopicNode
}

// Interceptors returns the client interceptors.
func (c *TopicNodeClient) Interceptors() []Interceptor {
	return c.inters.TopicNode
}

func (c *TopicNodeClient) mutate(ctx context.Context, m *TopicNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicNode mutation op: %q", m.Op())
	}
}

// TopicPeriodHeatClient is a client for the TopicPeriodHeat schema.
type TopicPeriodHeatClient struct {
	config
}

// NewTopicPeriodHeatClient returns a client for the TopicPeriodHeat from the given config.
func NewTopicPeriodHeatClient(c config) *TopicPeriodHeatClient {
	return &TopicPeriodHeatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicperiodheat.Hooks(f(g(h())))`.
func (c *TopicPeriodHeatClient) Use(hooks ...Hook) {
	c.hooks.TopicPeriodHeat = append(c.hooks.TopicPeriodHeat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicperiodheat.Intercept(f(g(h())))`.
func (c *TopicPeriodHeatClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicPeriodHeat = append(c.inters.TopicPeriodHeat, interceptors...)
}

// Create returns a builder for creating a TopicPeriodHeat entity.
func (c *TopicPeriodHeatClient) Create() *TopicPeriodHeatCreate {
	mutation := newTopicPeriodHeatMutation(c.config, OpCreate)
	return &TopicPeriodHeatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicPeriodHeat entities.
func (c *TopicPeriodHeatClient) CreateBulk(builders ...*TopicPeriodHeatCreate) *TopicPeriodHeatCreateBulk {
	return &TopicPeriodHeatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicPeriodHeatClient) MapCreateBulk(slice any, setFunc func(*TopicPeriodHeatCreate, int)) *TopicPeriodHeatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicPeriodHeatCreateBulk{err: fmt.Errorf("calling to TopicPeriodHeatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicPeriodHeatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicPeriodHeatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicPeriodHeat.
func (c *TopicPeriodHeatClient) Update() *TopicPeriodHeatUpdate {
	mutation := newTopicPeriodHeatMutation(c.config, OpUpdate)
	return &TopicPeriodHeatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicPeriodHeatClient) UpdateOne(_m *TopicPeriodHeat) *TopicPeriodHeatUpdateOne {
	mutation := newTopicPeriodHeatMutation(c.config, OpUpdateOne, withTopicPeriodHeat(_m))
	return &TopicPeriodHeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicPeriodHeatClient) UpdateOneID(id int) *TopicPeriodHeatUpdateOne {
	mutation := newTopicPeriodHeatMutation(c.config, OpUpdateOne, withTopicPeriodHeatID(id))
	return &TopicPeriodHeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicPeriodHeat.
func (c *TopicPeriodHeatClient) Delete() *TopicPeriodHeatDelete {
	mutation := newTopicPeriodHeatMutation(c.config, OpDelete)
	return &TopicPeriodHeatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicPeriodHeatClient) DeleteOne(_m *TopicPeriodHeat) *TopicPeriodHeatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicPeriodHeatClient) DeleteOneID(id int) *TopicPeriodHeatDeleteOne {
	builder := c.Delete().Where(topicperiodheat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicPeriodHeatDeleteOne{builder}
}

// Query returns a query builder for TopicPeriodHeat.
func (c *TopicPeriodHeatClient) Query() *TopicPeriodHeatQuery {
	return &TopicPeriodHeatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicPeriodHeat},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicPeriodHeat entity by its id.
func (c *TopicPeriodHeatClient) Get(ctx context.Context, id int) (*TopicPeriodHeat, error) {
	return c.Query().Where(topicperiodheat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicPeriodHeatClient) GetX(ctx context.Context, id int) *TopicPeriodHeat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTopic queries the topic edge of a TopicPeriodHeat.
func (c *TopicPeriodHeatClient) QueryTopic(_m *TopicPeriodHeat) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topicperiodheat.Table, topicperiodheat.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topicperiodheat.TopicTable, topicperiodheat.TopicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicPeriodHeatClient) Hooks() []Hook {
	return c.hooks.TopicPeriodHeat
}

// Interceptors returns the client interceptors.
func (c *TopicPeriodHeatClient) Interceptors() []Interceptor {
	return c.inters.TopicPeriodHeat
}

func (c *TopicPeriodHeatClient) mutate(ctx context.Context, m *TopicPeriodHeatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicPeriodHeatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicPeriodHeatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicPeriodHeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicPeriodHeatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicPeriodHeat mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CategoryDayMetrics, Embedding, IngestRun, LLMJudgement, PipelineRun, SourceItem,
		Summary, Topic, TopicNode, TopicPeriodHeat []ent.Hook
	}
	inters struct {
		CategoryDayMetrics, Embedding, IngestRun, LLMJudgement, PipelineRun, SourceItem,
		Summary, Topic, TopicNode, TopicPeriodHeat []ent.Interceptor
	}
)
