// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// InventoryItemQuery is the builder for querying InventoryItem entities.
type InventoryItemQuery struct {
	config
	ctx                   *QueryContext
	order                 []inventoryitem.OrderOption
	inters                []Interceptor
	predicates            []predicate.InventoryItem
	withProduct           *ProductQuery
	withConsumptionEvents *ConsumptionEventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InventoryItemQuery builder.
func (_q *InventoryItemQuery) Where(ps ...predicate.InventoryItem) *InventoryItemQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InventoryItemQuery) Limit(limit int) *InventoryItemQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InventoryItemQuery) Offset(offset int) *InventoryItemQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InventoryItemQuery) Unique(unique bool) *InventoryItemQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InventoryItemQuery) Order(o ...inventoryitem.OrderOption) *InventoryItemQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProduct chains the current query on the "product" edge.
func (_q *InventoryItemQuery) QueryProduct() *ProductQuery {
	query := (&ProductClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(inventoryitem.Table, inventoryitem.FieldID, selector),
			sqlgraph.To(product.Table, product.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inventoryitem.ProductTable, inventoryitem.ProductColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryConsumptionEvents chains the current query on the "consumption_events" edge.
func (_q *InventoryItemQuery) QueryConsumptionEvents() *ConsumptionEventQuery {
	query := (&ConsumptionEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(inventoryitem.Table, inventoryitem.FieldID, selector),
			sqlgraph.To(consumptionevent.Table, consumptionevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, inventoryitem.ConsumptionEventsTable, inventoryitem.ConsumptionEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InventoryItem entity from the query.
// Returns a *NotFoundError when no InventoryItem was found.
func (_q *InventoryItemQuery) First(ctx context.Context) (*InventoryItem, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{inventoryitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InventoryItemQuery) FirstX(ctx context.Context) *InventoryItem {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InventoryItem ID from the query.
// Returns a *NotFoundError when no InventoryItem ID was found.
func (_q *InventoryItemQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{inventoryitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InventoryItemQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InventoryItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InventoryItem entity is found.
// Returns a *NotFoundError when no InventoryItem entities are found.
func (_q *InventoryItemQuery) Only(ctx context.Context) (*InventoryItem, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{inventoryitem.Label}
	default:
		return nil, &NotSingularError{inventoryitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InventoryItemQuery) OnlyX(ctx context.Context) *InventoryItem {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InventoryItem ID in the query.
// Returns a *NotSingularError when more than one InventoryItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InventoryItemQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{inventoryitem.Label}
	default:
		err = &NotSingularError{inventoryitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InventoryItemQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InventoryItems.
func (_q *InventoryItemQuery) All(ctx context.Context) ([]*InventoryItem, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InventoryItem, *InventoryItemQuery]()
	return withInterceptors[[]*InventoryItem](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InventoryItemQuery) AllX(ctx context.Context) []*InventoryItem {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InventoryItem IDs.
func (_q *InventoryItemQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(inventoryitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InventoryItemQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InventoryItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InventoryItemQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InventoryItemQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InventoryItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InventoryItemQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InventoryItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InventoryItemQuery) Clone() *InventoryItemQuery {
	if _q == nil {
		return nil
	}
	return &InventoryItemQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]inventoryitem.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.InventoryItem{}, _q.predicates...),
		withProduct:           _q.withProduct.Clone(),
		withConsumptionEvents: _q.withConsumptionEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProduct tells the query-builder to eager-load the nodes that are connected to
// the "product" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InventoryItemQuery) WithProduct(opts ...func(*ProductQuery)) *InventoryItemQuery {
	query := (&ProductClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProduct = query
	return _q
}

// WithConsumptionEvents tells the query-builder to eager-load the nodes that are connected to
// the "consumption_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InventoryItemQuery) WithConsumptionEvents(opts ...func(*ConsumptionEventQuery)) *InventoryItemQuery {
	query := (&ConsumptionEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConsumptionEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProductID uuid.UUID `json:"product_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InventoryItem.Query().
//		GroupBy(inventoryitem.FieldProductID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InventoryItemQuery) GroupBy(field string, fields ...string) *InventoryItemGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InventoryItemGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = inventoryitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProductID uuid.UUID `json:"product_id,omitempty"`
//	}
//
//	client.InventoryItem.Query().
//		Select(inventoryitem.FieldProductID).
//		Scan(ctx, &v)
func (_q *InventoryItemQuery) Select(fields ...string) *InventoryItemSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InventoryItemSelect{InventoryItemQuery: _q}
	sbuild.label = inventoryitem.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InventoryItemSelect configured with the given aggregations.
func (_q *InventoryItemQuery) Aggregate(fns ...AggregateFunc) *InventoryItemSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InventoryItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !inventoryitem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InventoryItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InventoryItem, error) {
	var (
		nodes       = []*InventoryItem{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withProduct != nil,
			_q.withConsumptionEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InventoryItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InventoryItem{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProduct; query != nil {
		if err := _q.loadProduct(ctx, query, nodes, nil,
			func(n *InventoryItem, e *Product) { n.Edges.Product = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withConsumptionEvents; query != nil {
		if err := _q.loadConsumptionEvents(ctx, query, nodes,
			func(n *InventoryItem) { n.Edges.ConsumptionEvents = []*ConsumptionEvent{} },
			func(n *InventoryItem, e *ConsumptionEvent) {
				n.Edges.ConsumptionEvents = append(n.Edges.ConsumptionEvents, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InventoryItemQuery) loadProduct(ctx context.Context, query *ProductQuery, nodes []*InventoryItem, init func(*InventoryItem), assign func(*InventoryItem, *Product)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*InventoryItem)
	for i := range nodes {
		fk := nodes[i].ProductID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(product.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "product_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InventoryItemQuery) loadConsumptionEvents(ctx context.Context, query *ConsumptionEventQuery, nodes []*InventoryItem, init func(*InventoryItem), assign func(*InventoryItem, *ConsumptionEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InventoryItem)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(consumptionevent.FieldInventoryItemID)
	}
	query.Where(predicate.ConsumptionEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(inventoryitem.ConsumptionEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InventoryItemID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "inventory_item_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InventoryItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InventoryItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for i := range fields {
			if fields[i] != inventoryitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProduct != nil {
			_spec.Node.AddColumnOnce(inventoryitem.FieldProductID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InventoryItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(inventoryitem.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = inventoryitem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// InventoryItemGroupBy is the group-by builder for InventoryItem entities.
type InventoryItemGroupBy struct {
	selector
	build *InventoryItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InventoryItemGroupBy) Aggregate(fns ...AggregateFunc) *InventoryItemGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InventoryItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InventoryItemQuery, *InventoryItemGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InventoryItemGroupBy) sqlScan(ctx context.Context, root *InventoryItemQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InventoryItemSelect is the builder for selecting fields of InventoryItem entities.
type InventoryItemSelect struct {
	*InventoryItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InventoryItemSelect) Aggregate(fns ...AggregateFunc) *InventoryItemSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InventoryItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InventoryItemQuery, *InventoryItemSelect](ctx, _s.InventoryItemQuery, _s, _s.inters, v)
}

func (_s *InventoryItemSelect) sqlScan(ctx context.Context, root *InventoryItemQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
