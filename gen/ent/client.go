// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codemarcinu/pantry-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codemarcinu/pantry-tracker/gen/ent/category"
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Category is the client for interacting with the Category builders.
	Category *CategoryClient
	// ConsumptionEvent is the client for interacting with the ConsumptionEvent builders.
	ConsumptionEvent *ConsumptionEventClient
	// CorrectionPattern is the client for interacting with the CorrectionPattern builders.
	CorrectionPattern *CorrectionPatternClient
	// InventoryItem is the client for interacting with the InventoryItem builders.
	InventoryItem *InventoryItemClient
	// Product is the client for interacting with the Product builders.
	Product *ProductClient
	// Receipt is the client for interacting with the Receipt builders.
	Receipt *ReceiptClient
	// ReceiptLineItem is the client for interacting with the ReceiptLineItem builders.
	ReceiptLineItem *ReceiptLineItemClient
	// TrainingSample is the client for interacting with the TrainingSample builders.
	TrainingSample *TrainingSampleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Category = NewCategoryClient(c.config)
	c.ConsumptionEvent = NewConsumptionEventClient(c.config)
	c.CorrectionPattern = NewCorrectionPatternClient(c.config)
	c.InventoryItem = NewInventoryItemClient(c.config)
	c.Product = NewProductClient(c.config)
	c.Receipt = NewReceiptClient(c.config)
	c.ReceiptLineItem = NewReceiptLineItemClient(c.config)
	c.TrainingSample = NewTrainingSampleClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Category:          NewCategoryClient(cfg),
		ConsumptionEvent:  NewConsumptionEventClient(cfg),
		CorrectionPattern: NewCorrectionPatternClient(cfg),
		InventoryItem:     NewInventoryItemClient(cfg),
		Product:           NewProductClient(cfg),
		Receipt:           NewReceiptClient(cfg),
		ReceiptLineItem:   NewReceiptLineItemClient(cfg),
		TrainingSample:    NewTrainingSampleClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Category:          NewCategoryClient(cfg),
		ConsumptionEvent:  NewConsumptionEventClient(cfg),
		CorrectionPattern: NewCorrectionPatternClient(cfg),
		InventoryItem:     NewInventoryItemClient(cfg),
		Product:           NewProductClient(cfg),
		Receipt:           NewReceiptClient(cfg),
		ReceiptLineItem:   NewReceiptLineItemClient(cfg),
		TrainingSample:    NewTrainingSampleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Category.
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
		c.Category, c.ConsumptionEvent, c.CorrectionPattern, c.InventoryItem, c.Product,
		c.Receipt, c.ReceiptLineItem, c.TrainingSample,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Category, c.ConsumptionEvent, c.CorrectionPattern, c.InventoryItem, c.Product,
		c.Receipt, c.ReceiptLineItem, c.TrainingSample,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CategoryMutation:
		return c.Category.mutate(ctx, m)
	case *ConsumptionEventMutation:
		return c.ConsumptionEvent.mutate(ctx, m)
	case *CorrectionPatternMutation:
		return c.CorrectionPattern.mutate(ctx, m)
	case *InventoryItemMutation:
		return c.InventoryItem.mutate(ctx, m)
	case *ProductMutation:
		return c.Product.mutate(ctx, m)
	case *ReceiptMutation:
		return c.Receipt.mutate(ctx, m)
	case *ReceiptLineItemMutation:
		return c.ReceiptLineItem.mutate(ctx, m)
	case *TrainingSampleMutation:
		return c.TrainingSample.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CategoryClient is a client for the Category schema.
type CategoryClient struct {
	config
}

// NewCategoryClient returns a client for the Category from the given config.
func NewCategoryClient(c config) *CategoryClient {
	return &CategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `category.Hooks(f(g(h())))`.
func (c *CategoryClient) Use(hooks ...Hook) {
	c.hooks.Category = append(c.hooks.Category, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `category.Intercept(f(g(h())))`.
func (c *CategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Category = append(c.inters.Category, interceptors...)
}

// Create returns a builder for creating a Category entity.
func (c *CategoryClient) Create() *CategoryCreate {
	mutation := newCategoryMutation(c.config, OpCreate)
	return &CategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Category entities.
func (c *CategoryClient) CreateBulk(builders ...*CategoryCreate) *CategoryCreateBulk {
	return &CategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryClient) MapCreateBulk(slice any, setFunc func(*CategoryCreate, int)) *CategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryCreateBulk{err: fmt.Errorf("calling to CategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Category.
func (c *CategoryClient) Update() *CategoryUpdate {
	mutation := newCategoryMutation(c.config, OpUpdate)
	return &CategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryClient) UpdateOne(_m *Category) *CategoryUpdateOne {
	mutation := newCategoryMutation(c.config, OpUpdateOne, withCategory(_m))
	return &CategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryClient) UpdateOneID(id uuid.UUID) *CategoryUpdateOne {
	mutation := newCategoryMutation(c.config, OpUpdateOne, withCategoryID(id))
	return &CategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Category.
func (c *CategoryClient) Delete() *CategoryDelete {
	mutation := newCategoryMutation(c.config, OpDelete)
	return &CategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryClient) DeleteOne(_m *Category) *CategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryClient) DeleteOneID(id uuid.UUID) *CategoryDeleteOne {
	builder := c.Delete().Where(category.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryDeleteOne{builder}
}

// Query returns a query builder for Category.
func (c *CategoryClient) Query() *CategoryQuery {
	return &CategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a Category entity by its id.
func (c *CategoryClient) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return c.Query().Where(category.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryClient) GetX(ctx context.Context, id uuid.UUID) *Category {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a Category.
func (c *CategoryClient) QueryParent(_m *Category) *CategoryQuery {
	query := (&CategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(category.Table, category.FieldID, id),
			sqlgraph.To(category.Table, category.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, category.ParentTable, category.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubcategories queries the subcategories edge of a Category.
func (c *CategoryClient) QuerySubcategories(_m *Category) *CategoryQuery {
	query := (&CategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(category.Table, category.FieldID, id),
			sqlgraph.To(category.Table, category.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, category.SubcategoriesTable, category.SubcategoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProducts queries the products edge of a Category.
func (c *CategoryClient) QueryProducts(_m *Category) *ProductQuery {
	query := (&ProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(category.Table, category.FieldID, id),
			sqlgraph.To(product.Table, product.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, category.ProductsTable, category.ProductsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CategoryClient) Hooks() []Hook {
	return c.hooks.Category
}

// Interceptors returns the client interceptors.
func (c *CategoryClient) Interceptors() []Interceptor {
	return c.inters.Category
}

func (c *CategoryClient) mutate(ctx context.Context, m *CategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Category mutation op: %q", m.Op())
	}
}

// ConsumptionEventClient is a client for the ConsumptionEvent schema.
type ConsumptionEventClient struct {
	config
}

// NewConsumptionEventClient returns a client for the ConsumptionEvent from the given config.
func NewConsumptionEventClient(c config) *ConsumptionEventClient {
	return &ConsumptionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `consumptionevent.Hooks(f(g(h())))`.
func (c *ConsumptionEventClient) Use(hooks ...Hook) {
	c.hooks.ConsumptionEvent = append(c.hooks.ConsumptionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `consumptionevent.Intercept(f(g(h())))`.
func (c *ConsumptionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConsumptionEvent = append(c.inters.ConsumptionEvent, interceptors...)
}

// Create returns a builder for creating a ConsumptionEvent entity.
func (c *ConsumptionEventClient) Create() *ConsumptionEventCreate {
	mutation := newConsumptionEventMutation(c.config, OpCreate)
	return &ConsumptionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConsumptionEvent entities.
func (c *ConsumptionEventClient) CreateBulk(builders ...*ConsumptionEventCreate) *ConsumptionEventCreateBulk {
	return &ConsumptionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConsumptionEventClient) MapCreateBulk(slice any, setFunc func(*ConsumptionEventCreate, int)) *ConsumptionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConsumptionEventCreateBulk{err: fmt.Errorf("calling to ConsumptionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConsumptionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConsumptionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConsumptionEvent.
func (c *ConsumptionEventClient) Update() *ConsumptionEventUpdate {
	mutation := newConsumptionEventMutation(c.config, OpUpdate)
	return &ConsumptionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConsumptionEventClient) UpdateOne(_m *ConsumptionEvent) *ConsumptionEventUpdateOne {
	mutation := newConsumptionEventMutation(c.config, OpUpdateOne, withConsumptionEvent(_m))
	return &ConsumptionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConsumptionEventClient) UpdateOneID(id uuid.UUID) *ConsumptionEventUpdateOne {
	mutation := newConsumptionEventMutation(c.config, OpUpdateOne, withConsumptionEventID(id))
	return &ConsumptionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConsumptionEvent.
func (c *ConsumptionEventClient) Delete() *ConsumptionEventDelete {
	mutation := newConsumptionEventMutation(c.config, OpDelete)
	return &ConsumptionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConsumptionEventClient) DeleteOne(_m *ConsumptionEvent) *ConsumptionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConsumptionEventClient) DeleteOneID(id uuid.UUID) *ConsumptionEventDeleteOne {
	builder := c.Delete().Where(consumptionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConsumptionEventDeleteOne{builder}
}

// Query returns a query builder for ConsumptionEvent.
func (c *ConsumptionEventClient) Query() *ConsumptionEventQuery {
	return &ConsumptionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConsumptionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ConsumptionEvent entity by its id.
func (c *ConsumptionEventClient) Get(ctx context.Context, id uuid.UUID) (*ConsumptionEvent, error) {
	return c.Query().Where(consumptionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConsumptionEventClient) GetX(ctx context.Context, id uuid.UUID) *ConsumptionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInventoryItem queries the inventory_item edge of a ConsumptionEvent.
func (c *ConsumptionEventClient) QueryInventoryItem(_m *ConsumptionEvent) *InventoryItemQuery {
	query := (&InventoryItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(consumptionevent.Table, consumptionevent.FieldID, id),
			sqlgraph.To(inventoryitem.Table, inventoryitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, consumptionevent.InventoryItemTable, consumptionevent.InventoryItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConsumptionEventClient) Hooks() []Hook {
	return c.hooks.ConsumptionEvent
}

// Interceptors returns the client interceptors.
func (c *ConsumptionEventClient) Interceptors() []Interceptor {
	return c.inters.ConsumptionEvent
}

func (c *ConsumptionEventClient) mutate(ctx context.Context, m *ConsumptionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConsumptionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConsumptionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConsumptionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConsumptionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConsumptionEvent mutation op: %q", m.Op())
	}
}

// CorrectionPatternClient is a client for the CorrectionPattern schema.
type CorrectionPatternClient struct {
	config
}

// NewCorrectionPatternClient returns a client for the CorrectionPattern from the given config.
func NewCorrectionPatternClient(c config) *CorrectionPatternClient {
	return &CorrectionPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `correctionpattern.Hooks(f(g(h())))`.
func (c *CorrectionPatternClient) Use(hooks ...Hook) {
	c.hooks.CorrectionPattern = append(c.hooks.CorrectionPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `correctionpattern.Intercept(f(g(h())))`.
func (c *CorrectionPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.CorrectionPattern = append(c.inters.CorrectionPattern, interceptors...)
}

// Create returns a builder for creating a CorrectionPattern entity.
func (c *CorrectionPatternClient) Create() *CorrectionPatternCreate {
	mutation := newCorrectionPatternMutation(c.config, OpCreate)
	return &CorrectionPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CorrectionPattern entities.
func (c *CorrectionPatternClient) CreateBulk(builders ...*CorrectionPatternCreate) *CorrectionPatternCreateBulk {
	return &CorrectionPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CorrectionPatternClient) MapCreateBulk(slice any, setFunc func(*CorrectionPatternCreate, int)) *CorrectionPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CorrectionPatternCreateBulk{err: fmt.Errorf("calling to CorrectionPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CorrectionPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CorrectionPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CorrectionPattern.
func (c *CorrectionPatternClient) Update() *CorrectionPatternUpdate {
	mutation := newCorrectionPatternMutation(c.config, OpUpdate)
	return &CorrectionPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CorrectionPatternClient) UpdateOne(_m *CorrectionPattern) *CorrectionPatternUpdateOne {
	mutation := newCorrectionPatternMutation(c.config, OpUpdateOne, withCorrectionPattern(_m))
	return &CorrectionPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CorrectionPatternClient) UpdateOneID(id uuid.UUID) *CorrectionPatternUpdateOne {
	mutation := newCorrectionPatternMutation(c.config, OpUpdateOne, withCorrectionPatternID(id))
	return &CorrectionPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CorrectionPattern.
func (c *CorrectionPatternClient) Delete() *CorrectionPatternDelete {
	mutation := newCorrectionPatternMutation(c.config, OpDelete)
	return &CorrectionPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CorrectionPatternClient) DeleteOne(_m *CorrectionPattern) *CorrectionPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CorrectionPatternClient) DeleteOneID(id uuid.UUID) *CorrectionPatternDeleteOne {
	builder := c.Delete().Where(correctionpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CorrectionPatternDeleteOne{builder}
}

// Query returns a query builder for CorrectionPattern.
func (c *CorrectionPatternClient) Query() *CorrectionPatternQuery {
	return &CorrectionPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCorrectionPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a CorrectionPattern entity by its id.
func (c *CorrectionPatternClient) Get(ctx context.Context, id uuid.UUID) (*CorrectionPattern, error) {
	return c.Query().Where(correctionpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CorrectionPatternClient) GetX(ctx context.Context, id uuid.UUID) *CorrectionPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CorrectionPatternClient) Hooks() []Hook {
	return c.hooks.CorrectionPattern
}

// Interceptors returns the client interceptors.
func (c *CorrectionPatternClient) Interceptors() []Interceptor {
	return c.inters.CorrectionPattern
}

func (c *CorrectionPatternClient) mutate(ctx context.Context, m *CorrectionPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CorrectionPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CorrectionPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CorrectionPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CorrectionPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CorrectionPattern mutation op: %q", m.Op())
	}
}

// InventoryItemClient is a client for the InventoryItem schema.
type InventoryItemClient struct {
	config
}

// NewInventoryItemClient returns a client for the InventoryItem from the given config.
func NewInventoryItemClient(c config) *InventoryItemClient {
	return &InventoryItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inventoryitem.Hooks(f(g(h())))`.
func (c *InventoryItemClient) Use(hooks ...Hook) {
	c.hooks.InventoryItem = append(c.hooks.InventoryItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inventoryitem.Intercept(f(g(h())))`.
func (c *InventoryItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.InventoryItem = append(c.inters.InventoryItem, interceptors...)
}

// Create returns a builder for creating a InventoryItem entity.
func (c *InventoryItemClient) Create() *InventoryItemCreate {
	mutation := newInventoryItemMutation(c.config, OpCreate)
	return &InventoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InventoryItem entities.
func (c *InventoryItemClient) CreateBulk(builders ...*InventoryItemCreate) *InventoryItemCreateBulk {
	return &InventoryItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InventoryItemClient) MapCreateBulk(slice any, setFunc func(*InventoryItemCreate, int)) *InventoryItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InventoryItemCreateBulk{err: fmt.Errorf("calling to InventoryItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InventoryItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InventoryItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InventoryItem.
func (c *InventoryItemClient) Update() *InventoryItemUpdate {
	mutation := newInventoryItemMutation(c.config, OpUpdate)
	return &InventoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InventoryItemClient) UpdateOne(_m *InventoryItem) *InventoryItemUpdateOne {
	mutation := newInventoryItemMutation(c.config, OpUpdateOne, withInventoryItem(_m))
	return &InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InventoryItemClient) UpdateOneID(id uuid.UUID) *InventoryItemUpdateOne {
	mutation := newInventoryItemMutation(c.config, OpUpdateOne, withInventoryItemID(id))
	return &InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InventoryItem.
func (c *InventoryItemClient) Delete() *InventoryItemDelete {
	mutation := newInventoryItemMutation(c.config, OpDelete)
	return &InventoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InventoryItemClient) DeleteOne(_m *InventoryItem) *InventoryItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InventoryItemClient) DeleteOneID(id uuid.UUID) *InventoryItemDeleteOne {
	builder := c.Delete().Where(inventoryitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InventoryItemDeleteOne{builder}
}

// Query returns a query builder for InventoryItem.
func (c *InventoryItemClient) Query() *InventoryItemQuery {
	return &InventoryItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInventoryItem},
		inters: c.Interceptors(),
	}
}

// Get returns a InventoryItem entity by its id.
func (c *InventoryItemClient) Get(ctx context.Context, id uuid.UUID) (*InventoryItem, error) {
	return c.Query().Where(inventoryitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InventoryItemClient) GetX(ctx context.Context, id uuid.UUID) *InventoryItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProduct queries the product edge of a InventoryItem.
func (c *InventoryItemClient) QueryProduct(_m *InventoryItem) *ProductQuery {
	query := (&ProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inventoryitem.Table, inventoryitem.FieldID, id),
			sqlgraph.To(product.Table, product.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inventoryitem.ProductTable, inventoryitem.ProductColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConsumptionEvents queries the consumption_events edge of a InventoryItem.
func (c *InventoryItemClient) QueryConsumptionEvents(_m *InventoryItem) *ConsumptionEventQuery {
	query := (&ConsumptionEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inventoryitem.Table, inventoryitem.FieldID, id),
			sqlgraph.To(consumptionevent.Table, consumptionevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, inventoryitem.ConsumptionEventsTable, inventoryitem.ConsumptionEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InventoryItemClient) Hooks() []Hook {
	return c.hooks.InventoryItem
}

// Interceptors returns the client interceptors.
func (c *InventoryItemClient) Interceptors() []Interceptor {
	return c.inters.InventoryItem
}

func (c *InventoryItemClient) mutate(ctx context.Context, m *InventoryItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InventoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InventoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InventoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InventoryItem mutation op: %q", m.Op())
	}
}

// ProductClient is a client for the Product schema.
type ProductClient struct {
	config
}

// NewProductClient returns a client for the Product from the given config.
func NewProductClient(c config) *ProductClient {
	return &ProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `product.Hooks(f(g(h())))`.
func (c *ProductClient) Use(hooks ...Hook) {
	c.hooks.Product = append(c.hooks.Product, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `product.Intercept(f(g(h())))`.
func (c *ProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.Product = append(c.inters.Product, interceptors...)
}

// Create returns a builder for creating a Product entity.
func (c *ProductClient) Create() *ProductCreate {
	mutation := newProductMutation(c.config, OpCreate)
	return &ProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Product entities.
func (c *ProductClient) CreateBulk(builders ...*ProductCreate) *ProductCreateBulk {
	return &ProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProductClient) MapCreateBulk(slice any, setFunc func(*ProductCreate, int)) *ProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProductCreateBulk{err: fmt.Errorf("calling to ProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Product.
func (c *ProductClient) Update() *ProductUpdate {
	mutation := newProductMutation(c.config, OpUpdate)
	return &ProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProductClient) UpdateOne(_m *Product) *ProductUpdateOne {
	mutation := newProductMutation(c.config, OpUpdateOne, withProduct(_m))
	return &ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProductClient) UpdateOneID(id uuid.UUID) *ProductUpdateOne {
	mutation := newProductMutation(c.config, OpUpdateOne, withProductID(id))
	return &ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Product.
func (c *ProductClient) Delete() *ProductDelete {
	mutation := newProductMutation(c.config, OpDelete)
	return &ProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProductClient) DeleteOne(_m *Product) *ProductDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProductClient) DeleteOneID(id uuid.UUID) *ProductDeleteOne {
	builder := c.Delete().Where(product.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProductDeleteOne{builder}
}

// Query returns a query builder for Product.
func (c *ProductClient) Query() *ProductQuery {
	return &ProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a Product entity by its id.
func (c *ProductClient) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return c.Query().Where(product.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProductClient) GetX(ctx context.Context, id uuid.UUID) *Product {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategory queries the category edge of a Product.
func (c *ProductClient) QueryCategory(_m *Product) *CategoryQuery {
	query := (&CategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(product.Table, product.FieldID, id),
			sqlgraph.To(category.Table, category.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, product.CategoryTable, product.CategoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReceiptItems queries the receipt_items edge of a Product.
func (c *ProductClient) QueryReceiptItems(_m *Product) *ReceiptLineItemQuery {
	query := (&ReceiptLineItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(product.Table, product.FieldID, id),
			sqlgraph.To(receiptlineitem.Table, receiptlineitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, product.ReceiptItemsTable, product.ReceiptItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInventoryItems queries the inventory_items edge of a Product.
func (c *ProductClient) QueryInventoryItems(_m *Product) *InventoryItemQuery {
	query := (&InventoryItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(product.Table, product.FieldID, id),
			sqlgraph.To(inventoryitem.Table, inventoryitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, product.InventoryItemsTable, product.InventoryItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProductClient) Hooks() []Hook {
	return c.hooks.Product
}

// Interceptors returns the client interceptors.
func (c *ProductClient) Interceptors() []Interceptor {
	return c.inters.Product
}

func (c *ProductClient) mutate(ctx context.Context, m *ProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Product mutation op: %q", m.Op())
	}
}

// ReceiptClient is a client for the Receipt schema.
type ReceiptClient struct {
	config
}

// NewReceiptClient returns a client for the Receipt from the given config.
func NewReceiptClient(c config) *ReceiptClient {
	return &ReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receipt.Hooks(f(g(h())))`.
func (c *ReceiptClient) Use(hooks ...Hook) {
	c.hooks.Receipt = append(c.hooks.Receipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receipt.Intercept(f(g(h())))`.
func (c *ReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Receipt = append(c.inters.Receipt, interceptors...)
}

// Create returns a builder for creating a Receipt entity.
func (c *ReceiptClient) Create() *ReceiptCreate {
	mutation := newReceiptMutation(c.config, OpCreate)
	return &ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Receipt entities.
func (c *ReceiptClient) CreateBulk(builders ...*ReceiptCreate) *ReceiptCreateBulk {
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptClient) MapCreateBulk(slice any, setFunc func(*ReceiptCreate, int)) *ReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptCreateBulk{err: fmt.Errorf("calling to ReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Receipt.
func (c *ReceiptClient) Update() *ReceiptUpdate {
	mutation := newReceiptMutation(c.config, OpUpdate)
	return &ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptClient) UpdateOne(_m *Receipt) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceipt(_m))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptClient) UpdateOneID(id uuid.UUID) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceiptID(id))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Receipt.
func (c *ReceiptClient) Delete() *ReceiptDelete {
	mutation := newReceiptMutation(c.config, OpDelete)
	return &ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptClient) DeleteOne(_m *Receipt) *ReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptClient) DeleteOneID(id uuid.UUID) *ReceiptDeleteOne {
	builder := c.Delete().Where(receipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptDeleteOne{builder}
}

// Query returns a query builder for Receipt.
func (c *ReceiptClient) Query() *ReceiptQuery {
	return &ReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a Receipt entity by its id.
func (c *ReceiptClient) Get(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return c.Query().Where(receipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptClient) GetX(ctx context.Context, id uuid.UUID) *Receipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLineItems queries the line_items edge of a Receipt.
func (c *ReceiptClient) QueryLineItems(_m *Receipt) *ReceiptLineItemQuery {
	query := (&ReceiptLineItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(receiptlineitem.Table, receiptlineitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receipt.LineItemsTable, receipt.LineItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrainingSamples queries the training_samples edge of a Receipt.
func (c *ReceiptClient) QueryTrainingSamples(_m *Receipt) *TrainingSampleQuery {
	query := (&TrainingSampleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(trainingsample.Table, trainingsample.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receipt.TrainingSamplesTable, receipt.TrainingSamplesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptClient) Hooks() []Hook {
	return c.hooks.Receipt
}

// Interceptors returns the client interceptors.
func (c *ReceiptClient) Interceptors() []Interceptor {
	return c.inters.Receipt
}

func (c *ReceiptClient) mutate(ctx context.Context, m *ReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Receipt mutation op: %q", m.Op())
	}
}

// ReceiptLineItemClient is a client for the ReceiptLineItem schema.
type ReceiptLineItemClient struct {
	config
}

// NewReceiptLineItemClient returns a client for the ReceiptLineItem from the given config.
func NewReceiptLineItemClient(c config) *ReceiptLineItemClient {
	return &ReceiptLineItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receiptlineitem.Hooks(f(g(h())))`.
func (c *ReceiptLineItemClient) Use(hooks ...Hook) {
	c.hooks.ReceiptLineItem = append(c.hooks.ReceiptLineItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receiptlineitem.Intercept(f(g(h())))`.
func (c *ReceiptLineItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReceiptLineItem = append(c.inters.ReceiptLineItem, interceptors...)
}

// Create returns a builder for creating a ReceiptLineItem entity.
func (c *ReceiptLineItemClient) Create() *ReceiptLineItemCreate {
	mutation := newReceiptLineItemMutation(c.config, OpCreate)
	return &ReceiptLineItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReceiptLineItem entities.
func (c *ReceiptLineItemClient) CreateBulk(builders ...*ReceiptLineItemCreate) *ReceiptLineItemCreateBulk {
	return &ReceiptLineItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptLineItemClient) MapCreateBulk(slice any, setFunc func(*ReceiptLineItemCreate, int)) *ReceiptLineItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptLineItemCreateBulk{err: fmt.Errorf("calling to ReceiptLineItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptLineItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptLineItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReceiptLineItem.
func (c *ReceiptLineItemClient) Update() *ReceiptLineItemUpdate {
	mutation := newReceiptLineItemMutation(c.config, OpUpdate)
	return &ReceiptLineItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptLineItemClient) UpdateOne(_m *ReceiptLineItem) *ReceiptLineItemUpdateOne {
	mutation := newReceiptLineItemMutation(c.config, OpUpdateOne, withReceiptLineItem(_m))
	return &ReceiptLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptLineItemClient) UpdateOneID(id uuid.UUID) *ReceiptLineItemUpdateOne {
	mutation := newReceiptLineItemMutation(c.config, OpUpdateOne, withReceiptLineItemID(id))
	return &ReceiptLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReceiptLineItem.
func (c *ReceiptLineItemClient) Delete() *ReceiptLineItemDelete {
	mutation := newReceiptLineItemMutation(c.config, OpDelete)
	return &ReceiptLineItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptLineItemClient) DeleteOne(_m *ReceiptLineItem) *ReceiptLineItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptLineItemClient) DeleteOneID(id uuid.UUID) *ReceiptLineItemDeleteOne {
	builder := c.Delete().Where(receiptlineitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptLineItemDeleteOne{builder}
}

// Query returns a query builder for ReceiptLineItem.
func (c *ReceiptLineItemClient) Query() *ReceiptLineItemQuery {
	return &ReceiptLineItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceiptLineItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ReceiptLineItem entity by its id.
func (c *ReceiptLineItemClient) Get(ctx context.Context, id uuid.UUID) (*ReceiptLineItem, error) {
	return c.Query().Where(receiptlineitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptLineItemClient) GetX(ctx context.Context, id uuid.UUID) *ReceiptLineItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReceipt queries the receipt edge of a ReceiptLineItem.
func (c *ReceiptLineItemClient) QueryReceipt(_m *ReceiptLineItem) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptlineitem.Table, receiptlineitem.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receiptlineitem.ReceiptTable, receiptlineitem.ReceiptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatchedProduct queries the matched_product edge of a ReceiptLineItem.
func (c *ReceiptLineItemClient) QueryMatchedProduct(_m *ReceiptLineItem) *ProductQuery {
	query := (&ProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptlineitem.Table, receiptlineitem.FieldID, id),
			sqlgraph.To(product.Table, product.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receiptlineitem.MatchedProductTable, receiptlineitem.MatchedProductColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptLineItemClient) Hooks() []Hook {
	return c.hooks.ReceiptLineItem
}

// Interceptors returns the client interceptors.
func (c *ReceiptLineItemClient) Interceptors() []Interceptor {
	return c.inters.ReceiptLineItem
}

func (c *ReceiptLineItemClient) mutate(ctx context.Context, m *ReceiptLineItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptLineItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptLineItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptLineItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReceiptLineItem mutation op: %q", m.Op())
	}
}

// TrainingSampleClient is a client for the TrainingSample schema.
type TrainingSampleClient struct {
	config
}

// NewTrainingSampleClient returns a client for the TrainingSample from the given config.
func NewTrainingSampleClient(c config) *TrainingSampleClient {
	return &TrainingSampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trainingsample.Hooks(f(g(h())))`.
func (c *TrainingSampleClient) Use(hooks ...Hook) {
	c.hooks.TrainingSample = append(c.hooks.TrainingSample, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trainingsample.Intercept(f(g(h())))`.
func (c *TrainingSampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrainingSample = append(c.inters.TrainingSample, interceptors...)
}

// Create returns a builder for creating a TrainingSample entity.
func (c *TrainingSampleClient) Create() *TrainingSampleCreate {
	mutation := newTrainingSampleMutation(c.config, OpCreate)
	return &TrainingSampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrainingSample entities.
func (c *TrainingSampleClient) CreateBulk(builders ...*TrainingSampleCreate) *TrainingSampleCreateBulk {
	return &TrainingSampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrainingSampleClient) MapCreateBulk(slice any, setFunc func(*TrainingSampleCreate, int)) *TrainingSampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrainingSampleCreateBulk{err: fmt.Errorf("calling to TrainingSampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrainingSampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrainingSampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrainingSample.
func (c *TrainingSampleClient) Update() *TrainingSampleUpdate {
	mutation := newTrainingSampleMutation(c.config, OpUpdate)
	return &TrainingSampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrainingSampleClient) UpdateOne(_m *TrainingSample) *TrainingSampleUpdateOne {
	mutation := newTrainingSampleMutation(c.config, OpUpdateOne, withTrainingSample(_m))
	return &TrainingSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrainingSampleClient) UpdateOneID(id uuid.UUID) *TrainingSampleUpdateOne {
	mutation := newTrainingSampleMutation(c.config, OpUpdateOne, withTrainingSampleID(id))
	return &TrainingSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrainingSample.
func (c *TrainingSampleClient) Delete() *TrainingSampleDelete {
	mutation := newTrainingSampleMutation(c.config, OpDelete)
	return &TrainingSampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrainingSampleClient) DeleteOne(_m *TrainingSample) *TrainingSampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrainingSampleClient) DeleteOneID(id uuid.UUID) *TrainingSampleDeleteOne {
	builder := c.Delete().Where(trainingsample.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrainingSampleDeleteOne{builder}
}

// Query returns a query builder for TrainingSample.
func (c *TrainingSampleClient) Query() *TrainingSampleQuery {
	return &TrainingSampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrainingSample},
		inters: c.Interceptors(),
	}
}

// Get returns a TrainingSample entity by its id.
func (c *TrainingSampleClient) Get(ctx context.Context, id uuid.UUID) (*TrainingSample, error) {
	return c.Query().Where(trainingsample.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrainingSampleClient) GetX(ctx context.Context, id uuid.UUID) *TrainingSample {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReceipt queries the receipt edge of a TrainingSample.
func (c *TrainingSampleClient) QueryReceipt(_m *TrainingSample) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trainingsample.Table, trainingsample.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trainingsample.ReceiptTable, trainingsample.ReceiptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrainingSampleClient) Hooks() []Hook {
	return c.hooks.TrainingSample
}

// Interceptors returns the client interceptors.
func (c *TrainingSampleClient) Interceptors() []Interceptor {
	return c.inters.TrainingSample
}

func (c *TrainingSampleClient) mutate(ctx context.Context, m *TrainingSampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrainingSampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrainingSampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrainingSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrainingSampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrainingSample mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Category, ConsumptionEvent, CorrectionPattern, InventoryItem, Product, Receipt,
		ReceiptLineItem, TrainingSample []ent.Hook
	}
	inters struct {
		Category, ConsumptionEvent, CorrectionPattern, InventoryItem, Product, Receipt,
		ReceiptLineItem, TrainingSample []ent.Interceptor
	}
)
