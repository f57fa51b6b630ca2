// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/phenobase/trait-extractor/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/phenobase/trait-extractor/gen/ent/document"
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/jobdocument"
	"github.com/phenobase/trait-extractor/gen/ent/sentence"
	"github.com/phenobase/trait-extractor/gen/ent/trainingrun"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtractionJob is the client for interacting with the ExtractionJob builders.
	ExtractionJob *ExtractionJobClient
	// JobDocument is the client for interacting with the JobDocument builders.
	JobDocument *JobDocumentClient
	// Sentence is the client for interacting with the Sentence builders.
	Sentence *SentenceClient
	// TrainingRun is the client for interacting with the TrainingRun builders.
	TrainingRun *TrainingRunClient
	// Triple is the client for interacting with the Triple builders.
	Triple *TripleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.ExtractionJob = NewExtractionJobClient(c.config)
	c.JobDocument = NewJobDocumentClient(c.config)
	c.Sentence = NewSentenceClient(c.config)
	c.TrainingRun = NewTrainingRunClient(c.config)
	c.Triple = NewTripleClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		Document:      NewDocumentClient(cfg),
		ExtractionJob: NewExtractionJobClient(cfg),
		JobDocument:   NewJobDocumentClient(cfg),
		Sentence:      NewSentenceClient(cfg),
		TrainingRun:   NewTrainingRunClient(cfg),
		Triple:        NewTripleClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		Document:      NewDocumentClient(cfg),
		ExtractionJob: NewExtractionJobClient(cfg),
		JobDocument:   NewJobDocumentClient(cfg),
		Sentence:      NewSentenceClient(cfg),
		TrainingRun:   NewTrainingRunClient(cfg),
		Triple:        NewTripleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
		c.Document, c.ExtractionJob, c.JobDocument, c.Sentence, c.TrainingRun, c.Triple,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Document, c.ExtractionJob, c.JobDocument, c.Sentence, c.TrainingRun, c.Triple,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractionJobMutation:
		return c.ExtractionJob.mutate(ctx, m)
	case *JobDocumentMutation:
		return c.JobDocument.mutate(ctx, m)
	case *SentenceMutation:
		return c.Sentence.mutate(ctx, m)
	case *TrainingRunMutation:
		return c.TrainingRun.mutate(ctx, m)
	case *TripleMutation:
		return c.Triple.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id int) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id int) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id int) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id int) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobDocuments queries the job_documents edge of a Document.
func (c *DocumentClient) QueryJobDocuments(_m *Document) *JobDocumentQuery {
	query := (&JobDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(jobdocument.Table, jobdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.JobDocumentsTable, document.JobDocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySentences queries the sentences edge of a Document.
func (c *DocumentClient) QuerySentences(_m *Document) *SentenceQuery {
	query := (&SentenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(sentence.Table, sentence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.SentencesTable, document.SentencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTriples queries the triples edge of a Document.
func (c *DocumentClient) QueryTriples(_m *Document) *TripleQuery {
	query := (&TripleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(triple.Table, triple.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.TriplesTable, document.TriplesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractionJobClient is a client for the ExtractionJob schema.
type ExtractionJobClient struct {
	config
}

// NewExtractionJobClient returns a client for the ExtractionJob from the given config.
func NewExtractionJobClient(c config) *ExtractionJobClient {
	return &ExtractionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionjob.Hooks(f(g(h())))`.
func (c *ExtractionJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractionJob = append(c.hooks.ExtractionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionjob.Intercept(f(g(h())))`.
func (c *ExtractionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionJob = append(c.inters.ExtractionJob, interceptors...)
}

// Create returns a builder for creating a ExtractionJob entity.
func (c *ExtractionJobClient) Create() *ExtractionJobCreate {
	mutation := newExtractionJobMutation(c.config, OpCreate)
	return &ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionJob entities.
func (c *ExtractionJobClient) CreateBulk(builders ...*ExtractionJobCreate) *ExtractionJobCreateBulk {
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionJobClient) MapCreateBulk(slice any, setFunc func(*ExtractionJobCreate, int)) *ExtractionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionJobCreateBulk{err: fmt.Errorf("calling to ExtractionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionJob.
func (c *ExtractionJobClient) Update() *ExtractionJobUpdate {
	mutation := newExtractionJobMutation(c.config, OpUpdate)
	return &ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionJobClient) UpdateOne(_m *ExtractionJob) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJob(_m))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionJobClient) UpdateOneID(id int) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJobID(id))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionJob.
func (c *ExtractionJobClient) Delete() *ExtractionJobDelete {
	mutation := newExtractionJobMutation(c.config, OpDelete)
	return &ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionJobClient) DeleteOne(_m *ExtractionJob) *ExtractionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionJobClient) DeleteOneID(id int) *ExtractionJobDeleteOne {
	builder := c.Delete().Where(extractionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionJobDeleteOne{builder}
}

// Query returns a query builder for ExtractionJob.
func (c *ExtractionJobClient) Query() *ExtractionJobQuery {
	return &ExtractionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionJob entity by its id.
func (c *ExtractionJobClient) Get(ctx context.Context, id int) (*ExtractionJob, error) {
	return c.Query().Where(extractionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionJobClient) GetX(ctx context.Context, id int) *ExtractionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobDocuments queries the job_documents edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryJobDocuments(_m *ExtractionJob) *JobDocumentQuery {
	query := (&JobDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(jobdocument.Table, jobdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionjob.JobDocumentsTable, extractionjob.JobDocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTriples queries the triples edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryTriples(_m *ExtractionJob) *TripleQuery {
	query := (&TripleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(triple.Table, triple.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionjob.TriplesTable, extractionjob.TriplesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionJobClient) Hooks() []Hook {
	return c.hooks.ExtractionJob
}

// Interceptors returns the client interceptors.
func (c *ExtractionJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractionJob
}

func (c *ExtractionJobClient) mutate(ctx context.Context, m *ExtractionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionJob mutation op: %q", m.Op())
	}
}

// JobDocumentClient is a client for the JobDocument schema.
type JobDocumentClient struct {
	config
}

// NewJobDocumentClient returns a client for the JobDocument from the given config.
func NewJobDocumentClient(c config) *JobDocumentClient {
	return &JobDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobdocument.Hooks(f(g(h())))`.
func (c *JobDocumentClient) Use(hooks ...Hook) {
	c.hooks.JobDocument = append(c.hooks.JobDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobdocument.Intercept(f(g(h())))`.
func (c *JobDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobDocument = append(c.inters.JobDocument, interceptors...)
}

// Create returns a builder for creating a JobDocument entity.
func (c *JobDocumentClient) Create() *JobDocumentCreate {
	mutation := newJobDocumentMutation(c.config, OpCreate)
	return &JobDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobDocument entities.
func (c *JobDocumentClient) CreateBulk(builders ...*JobDocumentCreate) *JobDocumentCreateBulk {
	return &JobDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobDocumentClient) MapCreateBulk(slice any, setFunc func(*JobDocumentCreate, int)) *JobDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobDocumentCreateBulk{err: fmt.Errorf("calling to JobDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobDocument.
func (c *JobDocumentClient) Update() *JobDocumentUpdate {
	mutation := newJobDocumentMutation(c.config, OpUpdate)
	return &JobDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobDocumentClient) UpdateOne(_m *JobDocument) *JobDocumentUpdateOne {
	mutation := newJobDocumentMutation(c.config, OpUpdateOne, withJobDocument(_m))
	return &JobDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobDocumentClient) UpdateOneID(id int) *JobDocumentUpdateOne {
	mutation := newJobDocumentMutation(c.config, OpUpdateOne, withJobDocumentID(id))
	return &JobDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobDocument.
func (c *JobDocumentClient) Delete() *JobDocumentDelete {
	mutation := newJobDocumentMutation(c.config, OpDelete)
	return &JobDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobDocumentClient) DeleteOne(_m *JobDocument) *JobDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobDocumentClient) DeleteOneID(id int) *JobDocumentDeleteOne {
	builder := c.Delete().Where(jobdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDocumentDeleteOne{builder}
}

// Query returns a query builder for JobDocument.
func (c *JobDocumentClient) Query() *JobDocumentQuery {
	return &JobDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a JobDocument entity by its id.
func (c *JobDocumentClient) Get(ctx context.Context, id int) (*JobDocument, error) {
	return c.Query().Where(jobdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobDocumentClient) GetX(ctx context.Context, id int) *JobDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobDocument.
func (c *JobDocumentClient) QueryJob(_m *JobDocument) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobdocument.Table, jobdocument.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobdocument.JobTable, jobdocument.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocument queries the document edge of a JobDocument.
func (c *JobDocumentClient) QueryDocument(_m *JobDocument) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobdocument.Table, jobdocument.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobdocument.DocumentTable, jobdocument.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobDocumentClient) Hooks() []Hook {
	return c.hooks.JobDocument
}

// Interceptors returns the client interceptors.
func (c *JobDocumentClient) Interceptors() []Interceptor {
	return c.inters.JobDocument
}

func (c *JobDocumentClient) mutate(ctx context.Context, m *JobDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobDocument mutation op: %q", m.Op())
	}
}

// SentenceClient is a client for the Sentence schema.
type SentenceClient struct {
	config
}

// NewSentenceClient returns a client for the Sentence from the given config.
func NewSentenceClient(c config) *SentenceClient {
	return &SentenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sentence.Hooks(f(g(h())))`.
func (c *SentenceClient) Use(hooks ...Hook) {
	c.hooks.Sentence = append(c.hooks.Sentence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sentence.Intercept(f(g(h())))`.
func (c *SentenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sentence = append(c.inters.Sentence, interceptors...)
}

// Create returns a builder for creating a Sentence entity.
func (c *SentenceClient) Create() *SentenceCreate {
	mutation := newSentenceMutation(c.config, OpCreate)
	return &SentenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sentence entities.
func (c *SentenceClient) CreateBulk(builders ...*SentenceCreate) *SentenceCreateBulk {
	return &SentenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SentenceClient) MapCreateBulk(slice any, setFunc func(*SentenceCreate, int)) *SentenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SentenceCreateBulk{err: fmt.Errorf("calling to SentenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SentenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SentenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sentence.
func (c *SentenceClient) Update() *SentenceUpdate {
	mutation := newSentenceMutation(c.config, OpUpdate)
	return &SentenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SentenceClient) UpdateOne(_m *Sentence) *SentenceUpdateOne {
	mutation := newSentenceMutation(c.config, OpUpdateOne, withSentence(_m))
	return &SentenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SentenceClient) UpdateOneID(id int) *SentenceUpdateOne {
	mutation := newSentenceMutation(c.config, OpUpdateOne, withSentenceID(id))
	return &SentenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sentence.
func (c *SentenceClient) Delete() *SentenceDelete {
	mutation := newSentenceMutation(c.config, OpDelete)
	return &SentenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SentenceClient) DeleteOne(_m *Sentence) *SentenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SentenceClient) DeleteOneID(id int) *SentenceDeleteOne {
	builder := c.Delete().Where(sentence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SentenceDeleteOne{builder}
}

// Query returns a query builder for Sentence.
func (c *SentenceClient) Query() *SentenceQuery {
	return &SentenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSentence},
		inters: c.Interceptors(),
	}
}

// Get returns a Sentence entity by its id.
func (c *SentenceClient) Get(ctx context.Context, id int) (*Sentence, error) {
	return c.Query().Where(sentence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SentenceClient) GetX(ctx context.Context, id int) *Sentence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Sentence.
func (c *SentenceClient) QueryDocument(_m *Sentence) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sentence.Table, sentence.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sentence.DocumentTable, sentence.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTriples queries the triples edge of a Sentence.
func (c *SentenceClient) QueryTriples(_m *Sentence) *TripleQuery {
	query := (&TripleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sentence.Table, sentence.FieldID, id),
			sqlgraph.To(triple.Table, triple.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sentence.TriplesTable, sentence.TriplesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SentenceClient) Hooks() []Hook {
	return c.hooks.Sentence
}

// Interceptors returns the client interceptors.
func (c *SentenceClient) Interceptors() []Interceptor {
	return c.inters.Sentence
}

func (c *SentenceClient) mutate(ctx context.Context, m *SentenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SentenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SentenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SentenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SentenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sentence mutation op: %q", m.Op())
	}
}

// TrainingRunClient is a client for the TrainingRun schema.
type TrainingRunClient struct {
	config
}

// NewTrainingRunClient returns a client for the TrainingRun from the given config.
func NewTrainingRunClient(c config) *TrainingRunClient {
	return &TrainingRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trainingrun.Hooks(f(g(h())))`.
func (c *TrainingRunClient) Use(hooks ...Hook) {
	c.hooks.TrainingRun = append(c.hooks.TrainingRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trainingrun.Intercept(f(g(h())))`.
func (c *TrainingRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrainingRun = append(c.inters.TrainingRun, interceptors...)
}

// Create returns a builder for creating a TrainingRun entity.
func (c *TrainingRunClient) Create() *TrainingRunCreate {
	mutation := newTrainingRunMutation(c.config, OpCreate)
	return &TrainingRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrainingRun entities.
func (c *TrainingRunClient) CreateBulk(builders ...*TrainingRunCreate) *TrainingRunCreateBulk {
	return &TrainingRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrainingRunClient) MapCreateBulk(slice any, setFunc func(*TrainingRunCreate, int)) *TrainingRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrainingRunCreateBulk{err: fmt.Errorf("calling to TrainingRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrainingRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrainingRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrainingRun.
func (c *TrainingRunClient) Update() *TrainingRunUpdate {
	mutation := newTrainingRunMutation(c.config, OpUpdate)
	return &TrainingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrainingRunClient) UpdateOne(_m *TrainingRun) *TrainingRunUpdateOne {
	mutation := newTrainingRunMutation(c.config, OpUpdateOne, withTrainingRun(_m))
	return &TrainingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrainingRunClient) UpdateOneID(id int) *TrainingRunUpdateOne {
	mutation := newTrainingRunMutation(c.config, OpUpdateOne, withTrainingRunID(id))
	return &TrainingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrainingRun.
func (c *TrainingRunClient) Delete() *TrainingRunDelete {
	mutation := newTrainingRunMutation(c.config, OpDelete)
	return &TrainingRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrainingRunClient) DeleteOne(_m *TrainingRun) *TrainingRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrainingRunClient) DeleteOneID(id int) *TrainingRunDeleteOne {
	builder := c.Delete().Where(trainingrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrainingRunDeleteOne{builder}
}

// Query returns a query builder for TrainingRun.
func (c *TrainingRunClient) Query() *TrainingRunQuery {
	return &TrainingRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrainingRun},
		inters: c.Interceptors(),
	}
}

// Get returns a TrainingRun entity by its id.
func (c *TrainingRunClient) Get(ctx context.Context, id int) (*TrainingRun, error) {
	return c.Query().Where(trainingrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrainingRunClient) GetX(ctx context.Context, id int) *TrainingRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrainingRunClient) Hooks() []Hook {
	return c.hooks.TrainingRun
}

// Interceptors returns the client interceptors.
func (c *TrainingRunClient) Interceptors() []Interceptor {
	return c.inters.TrainingRun
}

func (c *TrainingRunClient) mutate(ctx context.Context, m *TrainingRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrainingRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrainingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrainingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrainingRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrainingRun mutation op: %q", m.Op())
	}
}

// TripleClient is a client for the Triple schema.
type TripleClient struct {
	config
}

// NewTripleClient returns a client for the Triple from the given config.
func NewTripleClient(c config) *TripleClient {
	return &TripleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triple.Hooks(f(g(h())))`.
func (c *TripleClient) Use(hooks ...Hook) {
	c.hooks.Triple = append(c.hooks.Triple, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triple.Intercept(f(g(h())))`.
func (c *TripleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Triple = append(c.inters.Triple, interceptors...)
}

// Create returns a builder for creating a Triple entity.
func (c *TripleClient) Create() *TripleCreate {
	mutation := newTripleMutation(c.config, OpCreate)
	return &TripleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Triple entities.
func (c *TripleClient) CreateBulk(builders ...*TripleCreate) *TripleCreateBulk {
	return &TripleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TripleClient) MapCreateBulk(slice any, setFunc func(*TripleCreate, int)) *TripleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TripleCreateBulk{err: fmt.Errorf("calling to TripleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TripleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TripleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Triple.
func (c *TripleClient) Update() *TripleUpdate {
	mutation := newTripleMutation(c.config, OpUpdate)
	return &TripleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TripleClient) UpdateOne(_m *Triple) *TripleUpdateOne {
	mutation := newTripleMutation(c.config, OpUpdateOne, withTriple(_m))
	return &TripleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TripleClient) UpdateOneID(id int) *TripleUpdateOne {
	mutation := newTripleMutation(c.config, OpUpdateOne, withTripleID(id))
	return &TripleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Triple.
func (c *TripleClient) Delete() *TripleDelete {
	mutation := newTripleMutation(c.config, OpDelete)
	return &TripleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TripleClient) DeleteOne(_m *Triple) *TripleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TripleClient) DeleteOneID(id int) *TripleDeleteOne {
	builder := c.Delete().Where(triple.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TripleDeleteOne{builder}
}

// Query returns a query builder for Triple.
func (c *TripleClient) Query() *TripleQuery {
	return &TripleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriple},
		inters: c.Interceptors(),
	}
}

// Get returns a Triple entity by its id.
func (c *TripleClient) Get(ctx context.Context, id int) (*Triple, error) {
	return c.Query().Where(triple.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TripleClient) GetX(ctx context.Context, id int) *Triple {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Triple.
func (c *TripleClient) QueryDocument(_m *Triple) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triple.Table, triple.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, triple.DocumentTable, triple.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJob queries the job edge of a Triple.
func (c *TripleClient) QueryJob(_m *Triple) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triple.Table, triple.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, triple.JobTable, triple.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySentence queries the sentence edge of a Triple.
func (c *TripleClient) QuerySentence(_m *Triple) *SentenceQuery {
	query := (&SentenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triple.Table, triple.FieldID, id),
			sqlgraph.To(sentence.Table, sentence.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, triple.SentenceTable, triple.SentenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TripleClient) Hooks() []Hook {
	return c.hooks.Triple
}

// Interceptors returns the client interceptors.
func (c *TripleClient) Interceptors() []Interceptor {
	return c.inters.Triple
}

func (c *TripleClient) mutate(ctx context.Context, m *TripleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TripleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TripleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TripleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TripleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Triple mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, ExtractionJob, JobDocument, Sentence, TrainingRun, Triple []ent.Hook
	}
	inters struct {
		Document, ExtractionJob, JobDocument, Sentence, TrainingRun,
		Triple []ent.Interceptor
	}
)
