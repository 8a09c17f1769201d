// Package tools implements the tool registry and access scope that
// routes chat tool calls to read-only restaurant database queries.
//
// Operations are declared statically at construction: name, parameter
// schema, allowed roles and handler. The scope check runs strictly
// before parameter validation, so an out-of-scope call never leaks the
// schema of internal-only operations, and validation runs strictly
// before the handler, so malformed input never reaches the data store.
package tools

import (
	"context"
	"time"

	"maitred/internal/monitoring"
	"maitred/internal/store"
)

// DefaultMaxResults caps how many records one invocation may return,
// bounding the payload fed back to the model.
const DefaultMaxResults = 100

// Operation names as advertised to the tool-calling runtime
const (
	OpQueryEmployees   = "query_employees"
	OpPerformanceStats = "get_employee_performance_stats"
	OpQueryInventory   = "query_storage_inventory"
	OpLowStockAlerts   = "get_low_stock_alerts"
	OpQueryRecipes     = "query_recipes"
	OpRecipeDetails    = "get_recipe_details"
	OpQueryDailyMenu   = "query_daily_menu"
	OpMenuItemDetails  = "get_menu_item_details"
)

// Descriptor is the static metadata advertised for one operation
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      Schema `json:"-"`
	Roles       []Role `json:"-"`
}

// Parameters renders the descriptor's schema for serialization
func (d Descriptor) Parameters() map[string]interface{} {
	return d.Schema.JSONSchema()
}

// AllowsRole reports whether the descriptor's scope includes role
func (d Descriptor) AllowsRole(role Role) bool {
	for _, r := range d.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Result is the bounded, serializable outcome of one invocation. An
// empty Records slice is a valid response, distinct from an error.
type Result struct {
	Records   []interface{} `json:"records"`
	Count     int           `json:"count"`
	Truncated bool          `json:"truncated"`
}

type handlerFunc func(ctx context.Context, role Role, args map[string]interface{}) (*Result, error)

type operation struct {
	Descriptor
	handler handlerFunc
}

// Registry dispatches tool calls to query handlers. It is immutable
// after construction and safe for concurrent use; invocations share no
// mutable state.
type Registry struct {
	store      *store.Store
	metrics    *monitoring.Metrics
	maxResults int
	now        func() time.Time
	ops        map[string]*operation
	order      []string
}

// Option configures the registry
type Option func(*Registry)

// WithMaxResults overrides the per-invocation record cap
func WithMaxResults(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxResults = n
		}
	}
}

// WithMetrics wires invocation metrics into the dispatch path
func WithMetrics(m *monitoring.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithClock overrides the clock used for default menu dates
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New builds the registry with all operations declared
func New(st *store.Store, opts ...Option) *Registry {
	r := &Registry{
		store:      st,
		maxResults: DefaultMaxResults,
		now:        time.Now,
		ops:        make(map[string]*operation),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.registerEmployeeOps()
	r.registerInventoryOps()
	r.registerRecipeOps()
	r.registerMenuOps()

	return r
}

func (r *Registry) register(d Descriptor, h handlerFunc) {
	r.ops[d.Name] = &operation{Descriptor: d, handler: h}
	r.order = append(r.order, d.Name)
}

// ListAvailableTools returns the descriptors of every operation whose
// scope includes role, in registration order.
func (r *Registry) ListAvailableTools(role Role) ([]Descriptor, error) {
	if !validRole(role) {
		return nil, errUnknownRole(string(role))
	}

	var descriptors []Descriptor
	for _, name := range r.order {
		op := r.ops[name]
		if op.AllowsRole(role) {
			descriptors = append(descriptors, op.Descriptor)
		}
	}
	return descriptors, nil
}

// Invoke dispatches one tool call. The checks run in a fixed order:
// role, operation existence, scope, parameters, then the query.
func (r *Registry) Invoke(ctx context.Context, role Role, name string, args map[string]interface{}) (*Result, error) {
	started := time.Now()
	result, err := r.invoke(ctx, role, name, args)
	if r.metrics != nil {
		r.metrics.RecordInvocation(name, string(role), string(KindOf(err)), time.Since(started))
	}
	return result, err
}

func (r *Registry) invoke(ctx context.Context, role Role, name string, args map[string]interface{}) (*Result, error) {
	if !validRole(role) {
		return nil, errUnknownRole(string(role))
	}

	op, ok := r.ops[name]
	if !ok {
		return nil, errUnknownOperation(name)
	}
	if !op.AllowsRole(role) {
		return nil, errForbidden(name, role)
	}

	if args == nil {
		args = map[string]interface{}{}
	}
	if err := op.Schema.Validate(name, args); err != nil {
		return nil, err
	}

	return op.handler(ctx, role, args)
}

func newResult(records []interface{}, truncated bool) *Result {
	if records == nil {
		records = []interface{}{}
	}
	return &Result{Records: records, Count: len(records), Truncated: truncated}
}
