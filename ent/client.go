// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/radprep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/radprep/ent/item"
	"github.com/abhisek/radprep/ent/responseevent"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Item is the client for interacting with the Item builders.
	Item *ItemClient
	// ResponseEvent is the client for interacting with the ResponseEvent builders.
	ResponseEvent *ResponseEventClient
	// SectionAggregate is the client for interacting with the SectionAggregate builders.
	SectionAggregate *SectionAggregateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Item = NewItemClient(c.config)
	c.ResponseEvent = NewResponseEventClient(c.config)
	c.SectionAggregate = NewSectionAggregateClient(c.config)
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
		Item:             NewItemClient(cfg),
		ResponseEvent:    NewResponseEventClient(cfg),
		SectionAggregate: NewSectionAggregateClient(cfg),
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
		Item:             NewItemClient(cfg),
		ResponseEvent:    NewResponseEventClient(cfg),
		SectionAggregate: NewSectionAggregateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Item.
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
	c.Item.Use(hooks...)
	c.ResponseEvent.Use(hooks...)
	c.SectionAggregate.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Item.Intercept(interceptors...)
	c.ResponseEvent.Intercept(interceptors...)
	c.SectionAggregate.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ItemMutation:
		return c.Item.mutate(ctx, m)
	case *ResponseEventMutation:
		return c.ResponseEvent.mutate(ctx, m)
	case *SectionAggregateMutation:
		return c.SectionAggregate.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ItemClient is a client for the Item schema.
type ItemClient struct {
	config
}

// NewItemClient returns a client for the Item from the given config.
func NewItemClient(c config) *ItemClient {
	return &ItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `item.Hooks(f(g(h())))`.
func (c *ItemClient) Use(hooks ...Hook) {
	c.hooks.Item = append(c.hooks.Item, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `item.Intercept(f(g(h())))`.
func (c *ItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Item = append(c.inters.Item, interceptors...)
}

// Create returns a builder for creating a Item entity.
func (c *ItemClient) Create() *ItemCreate {
	mutation := newItemMutation(c.config, OpCreate)
	return &ItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Item entities.
func (c *ItemClient) CreateBulk(builders ...*ItemCreate) *ItemCreateBulk {
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemClient) MapCreateBulk(slice any, setFunc func(*ItemCreate, int)) *ItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemCreateBulk{err: fmt.Errorf("calling to ItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Item.
func (c *ItemClient) Update() *ItemUpdate {
	mutation := newItemMutation(c.config, OpUpdate)
	return &ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemClient) UpdateOne(_m *Item) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItem(_m))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemClient) UpdateOneID(id int) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItemID(id))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Item.
func (c *ItemClient) Delete() *ItemDelete {
	mutation := newItemMutation(c.config, OpDelete)
	return &ItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemClient) DeleteOne(_m *Item) *ItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemClient) DeleteOneID(id int) *ItemDeleteOne {
	builder := c.Delete().Where(item.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemDeleteOne{builder}
}

// Query returns a query builder for Item.
func (c *ItemClient) Query() *ItemQuery {
	return &ItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a Item entity by its id.
func (c *ItemClient) Get(ctx context.Context, id int) (*Item, error) {
	return c.Query().Where(item.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemClient) GetX(ctx context.Context, id int) *Item {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemClient) Hooks() []Hook {
	return c.hooks.Item
}

// Interceptors returns the client interceptors.
func (c *ItemClient) Interceptors() []Interceptor {
	return c.inters.Item
}

func (c *ItemClient) mutate(ctx context.Context, m *ItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Item mutation op: %q", m.Op())
	}
}

// ResponseEventClient is a client for the ResponseEvent schema.
type ResponseEventClient struct {
	config
}

// NewResponseEventClient returns a client for the ResponseEvent from the given config.
func NewResponseEventClient(c config) *ResponseEventClient {
	return &ResponseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `responseevent.Hooks(f(g(h())))`.
func (c *ResponseEventClient) Use(hooks ...Hook) {
	c.hooks.ResponseEvent = append(c.hooks.ResponseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `responseevent.Intercept(f(g(h())))`.
func (c *ResponseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResponseEvent = append(c.inters.ResponseEvent, interceptors...)
}

// Create returns a builder for creating a ResponseEvent entity.
func (c *ResponseEventClient) Create() *ResponseEventCreate {
	mutation := newResponseEventMutation(c.config, OpCreate)
	return &ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResponseEvent entities.
func (c *ResponseEventClient) CreateBulk(builders ...*ResponseEventCreate) *ResponseEventCreateBulk {
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResponseEventClient) MapCreateBulk(slice any, setFunc func(*ResponseEventCreate, int)) *ResponseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResponseEventCreateBulk{err: fmt.Errorf("calling to ResponseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResponseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResponseEvent.
func (c *ResponseEventClient) Update() *ResponseEventUpdate {
	mutation := newResponseEventMutation(c.config, OpUpdate)
	return &ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResponseEventClient) UpdateOne(_m *ResponseEvent) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEvent(_m))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResponseEventClient) UpdateOneID(id int) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEventID(id))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResponseEvent.
func (c *ResponseEventClient) Delete() *ResponseEventDelete {
	mutation := newResponseEventMutation(c.config, OpDelete)
	return &ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResponseEventClient) DeleteOne(_m *ResponseEvent) *ResponseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResponseEventClient) DeleteOneID(id int) *ResponseEventDeleteOne {
	builder := c.Delete().Where(responseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResponseEventDeleteOne{builder}
}

// Query returns a query builder for ResponseEvent.
func (c *ResponseEventClient) Query() *ResponseEventQuery {
	return &ResponseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResponseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ResponseEvent entity by its id.
func (c *ResponseEventClient) Get(ctx context.Context, id int) (*ResponseEvent, error) {
	return c.Query().Where(responseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResponseEventClient) GetX(ctx context.Context, id int) *ResponseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResponseEventClient) Hooks() []Hook {
	return c.hooks.ResponseEvent
}

// Interceptors returns the client interceptors.
func (c *ResponseEventClient) Interceptors() []Interceptor {
	return c.inters.ResponseEvent
}

func (c *ResponseEventClient) mutate(ctx context.Context, m *ResponseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResponseEvent mutation op: %q", m.Op())
	}
}

// SectionAggregateClient is a client for the SectionAggregate schema.
type SectionAggregateClient struct {
	config
}

// NewSectionAggregateClient returns a client for the SectionAggregate from the given config.
func NewSectionAggregateClient(c config) *SectionAggregateClient {
	return &SectionAggregateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sectionaggregate.Hooks(f(g(h())))`.
func (c *SectionAggregateClient) Use(hooks ...Hook) {
	c.hooks.SectionAggregate = append(c.hooks.SectionAggregate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sectionaggregate.Intercept(f(g(h())))`.
func (c *SectionAggregateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SectionAggregate = append(c.inters.SectionAggregate, interceptors...)
}

// Create returns a builder for creating a SectionAggregate entity.
func (c *SectionAggregateClient) Create() *SectionAggregateCreate {
	mutation := newSectionAggregateMutation(c.config, OpCreate)
	return &SectionAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SectionAggregate entities.
func (c *SectionAggregateClient) CreateBulk(builders ...*SectionAggregateCreate) *SectionAggregateCreateBulk {
	return &SectionAggregateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SectionAggregateClient) MapCreateBulk(slice any, setFunc func(*SectionAggregateCreate, int)) *SectionAggregateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SectionAggregateCreateBulk{err: fmt.Errorf("calling to SectionAggregateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SectionAggregateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SectionAggregateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SectionAggregate.
func (c *SectionAggregateClient) Update() *SectionAggregateUpdate {
	mutation := newSectionAggregateMutation(c.config, OpUpdate)
	return &SectionAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SectionAggregateClient) UpdateOne(_m *SectionAggregate) *SectionAggregateUpdateOne {
	mutation := newSectionAggregateMutation(c.config, OpUpdateOne, withSectionAggregate(_m))
	return &SectionAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SectionAggregateClient) UpdateOneID(id int) *SectionAggregateUpdateOne {
	mutation := newSectionAggregateMutation(c.config, OpUpdateOne, withSectionAggregateID(id))
	return &SectionAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SectionAggregate.
func (c *SectionAggregateClient) Delete() *SectionAggregateDelete {
	mutation := newSectionAggregateMutation(c.config, OpDelete)
	return &SectionAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SectionAggregateClient) DeleteOne(_m *SectionAggregate) *SectionAggregateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SectionAggregateClient) DeleteOneID(id int) *SectionAggregateDeleteOne {
	builder := c.Delete().Where(sectionaggregate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SectionAggregateDeleteOne{builder}
}

// Query returns a query builder for SectionAggregate.
func (c *SectionAggregateClient) Query() *SectionAggregateQuery {
	return &SectionAggregateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSectionAggregate},
		inters: c.Interceptors(),
	}
}

// Get returns a SectionAggregate entity by its id.
func (c *SectionAggregateClient) Get(ctx context.Context, id int) (*SectionAggregate, error) {
	return c.Query().Where(sectionaggregate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SectionAggregateClient) GetX(ctx context.Context, id int) *SectionAggregate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SectionAggregateClient) Hooks() []Hook {
	return c.hooks.SectionAggregate
}

// Interceptors returns the client interceptors.
func (c *SectionAggregateClient) Interceptors() []Interceptor {
	return c.inters.SectionAggregate
}

func (c *SectionAggregateClient) mutate(ctx context.Context, m *SectionAggregateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SectionAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SectionAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SectionAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SectionAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SectionAggregate mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Item, ResponseEvent, SectionAggregate []ent.Hook
	}
	inters struct {
		Item, ResponseEvent, SectionAggregate []ent.Interceptor
	}
)
