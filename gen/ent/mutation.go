// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/category"
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCategory          = "Category"
	TypeConsumptionEvent  = "ConsumptionEvent"
	TypeCorrectionPattern = "CorrectionPattern"
	TypeInventoryItem     = "InventoryItem"
	TypeProduct           = "Product"
	TypeReceipt           = "Receipt"
	TypeReceiptLineItem   = "ReceiptLineItem"
	TypeTrainingSample    = "TrainingSample"
)

// CategoryMutation represents an operation that mutates the Category nodes in the graph.
type CategoryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	name                 *string
	meta                 *entity.CategoryMeta
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	parent               *uuid.UUID
	clearedparent        bool
	subcategories        map[uuid.UUID]struct{}
	removedsubcategories map[uuid.UUID]struct{}
	clearedsubcategories bool
	products             map[uuid.UUID]struct{}
	removedproducts      map[uuid.UUID]struct{}
	clearedproducts      bool
	done                 bool
	oldValue             func(context.Context) (*Category, error)
	predicates           []predicate.Category
}

var _ ent.Mutation = (*CategoryMutation)(nil)

// categoryOption allows management of the mutation configuration using functional options.
type categoryOption func(*CategoryMutation)

// newCategoryMutation creates new mutation for the Category entity.
func newCategoryMutation(c config, op Op, opts ...categoryOption) *CategoryMutation {
	m := &CategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryID sets the ID field of the mutation.
func withCategoryID(id uuid.UUID) categoryOption {
	return func(m *CategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Category
		)
		m.oldValue = func(ctx context.Context) (*Category, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Category.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategory sets the old Category of the mutation.
func withCategory(node *Category) categoryOption {
	return func(m *CategoryMutation) {
		m.oldValue = func(context.Context) (*Category, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Category entities.
func (m *CategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Category.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *CategoryMutation) ResetName() {
	m.name = nil
}

// SetParentID sets the "parent_id" field.
func (m *CategoryMutation) SetParentID(u uuid.UUID) {
	m.parent = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *CategoryMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *CategoryMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[category.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *CategoryMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[category.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *CategoryMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, category.FieldParentID)
}

// SetMeta sets the "meta" field.
func (m *CategoryMutation) SetMeta(em entity.CategoryMeta) {
	m.meta = &em
}

// Meta returns the value of the "meta" field in the mutation.
func (m *CategoryMutation) Meta() (r entity.CategoryMeta, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldMeta(ctx context.Context) (v entity.CategoryMeta, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *CategoryMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[category.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *CategoryMutation) MetaCleared() bool {
	_, ok := m.clearedFields[category.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *CategoryMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, category.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *CategoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CategoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CategoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CategoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CategoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CategoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearParent clears the "parent" edge to the Category entity.
func (m *CategoryMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[category.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Category entity was cleared.
func (m *CategoryMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *CategoryMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *CategoryMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddSubcategoryIDs adds the "subcategories" edge to the Category entity by ids.
func (m *CategoryMutation) AddSubcategoryIDs(ids ...uuid.UUID) {
	if m.subcategories == nil {
		m.subcategories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.subcategories[ids[i]] = struct{}{}
	}
}

// ClearSubcategories clears the "subcategories" edge to the Category entity.
func (m *CategoryMutation) ClearSubcategories() {
	m.clearedsubcategories = true
}

// SubcategoriesCleared reports if the "subcategories" edge to the Category entity was cleared.
func (m *CategoryMutation) SubcategoriesCleared() bool {
	return m.clearedsubcategories
}

// RemoveSubcategoryIDs removes the "subcategories" edge to the Category entity by IDs.
func (m *CategoryMutation) RemoveSubcategoryIDs(ids ...uuid.UUID) {
	if m.removedsubcategories == nil {
		m.removedsubcategories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.subcategories, ids[i])
		m.removedsubcategories[ids[i]] = struct{}{}
	}
}

// RemovedSubcategories returns the removed IDs of the "subcategories" edge to the Category entity.
func (m *CategoryMutation) RemovedSubcategoriesIDs() (ids []uuid.UUID) {
	for id := range m.removedsubcategories {
		ids = append(ids, id)
	}
	return
}

// SubcategoriesIDs returns the "subcategories" edge IDs in the mutation.
func (m *CategoryMutation) SubcategoriesIDs() (ids []uuid.UUID) {
	for id := range m.subcategories {
		ids = append(ids, id)
	}
	return
}

// ResetSubcategories resets all changes to the "subcategories" edge.
func (m *CategoryMutation) ResetSubcategories() {
	m.subcategories = nil
	m.clearedsubcategories = false
	m.removedsubcategories = nil
}

// AddProductIDs adds the "products" edge to the Product entity by ids.
func (m *CategoryMutation) AddProductIDs(ids ...uuid.UUID) {
	if m.products == nil {
		m.products = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.products[ids[i]] = struct{}{}
	}
}

// ClearProducts clears the "products" edge to the Product entity.
func (m *CategoryMutation) ClearProducts() {
	m.clearedproducts = true
}

// ProductsCleared reports if the "products" edge to the Product entity was cleared.
func (m *CategoryMutation) ProductsCleared() bool {
	return m.clearedproducts
}

// RemoveProductIDs removes the "products" edge to the Product entity by IDs.
func (m *CategoryMutation) RemoveProductIDs(ids ...uuid.UUID) {
	if m.removedproducts == nil {
		m.removedproducts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.products, ids[i])
		m.removedproducts[ids[i]] = struct{}{}
	}
}

// RemovedProducts returns the removed IDs of the "products" edge to the Product entity.
func (m *CategoryMutation) RemovedProductsIDs() (ids []uuid.UUID) {
	for id := range m.removedproducts {
		ids = append(ids, id)
	}
	return
}

// ProductsIDs returns the "products" edge IDs in the mutation.
func (m *CategoryMutation) ProductsIDs() (ids []uuid.UUID) {
	for id := range m.products {
		ids = append(ids, id)
	}
	return
}

// ResetProducts resets all changes to the "products" edge.
func (m *CategoryMutation) ResetProducts() {
	m.products = nil
	m.clearedproducts = false
	m.removedproducts = nil
}

// Where appends a list predicates to the CategoryMutation builder.
func (m *CategoryMutation) Where(ps ...predicate.Category) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Category, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Category).
func (m *CategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, category.FieldName)
	}
	if m.parent != nil {
		fields = append(fields, category.FieldParentID)
	}
	if m.meta != nil {
		fields = append(fields, category.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, category.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, category.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case category.FieldName:
		return m.Name()
	case category.FieldParentID:
		return m.ParentID()
	case category.FieldMeta:
		return m.Meta()
	case category.FieldCreatedAt:
		return m.CreatedAt()
	case category.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case category.FieldName:
		return m.OldName(ctx)
	case category.FieldParentID:
		return m.OldParentID(ctx)
	case category.FieldMeta:
		return m.OldMeta(ctx)
	case category.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case category.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Category field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case category.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case category.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case category.FieldMeta:
		v, ok := value.(entity.CategoryMeta)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case category.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case category.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Category numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(category.FieldParentID) {
		fields = append(fields, category.FieldParentID)
	}
	if m.FieldCleared(category.FieldMeta) {
		fields = append(fields, category.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryMutation) ClearField(name string) error {
	switch name {
	case category.FieldParentID:
		m.ClearParentID()
		return nil
	case category.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown Category nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryMutation) ResetField(name string) error {
	switch name {
	case category.FieldName:
		m.ResetName()
		return nil
	case category.FieldParentID:
		m.ResetParentID()
		return nil
	case category.FieldMeta:
		m.ResetMeta()
		return nil
	case category.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case category.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.parent != nil {
		edges = append(edges, category.EdgeParent)
	}
	if m.subcategories != nil {
		edges = append(edges, category.EdgeSubcategories)
	}
	if m.products != nil {
		edges = append(edges, category.EdgeProducts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case category.EdgeSubcategories:
		ids := make([]ent.Value, 0, len(m.subcategories))
		for id := range m.subcategories {
			ids = append(ids, id)
		}
		return ids
	case category.EdgeProducts:
		ids := make([]ent.Value, 0, len(m.products))
		for id := range m.products {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsubcategories != nil {
		edges = append(edges, category.EdgeSubcategories)
	}
	if m.removedproducts != nil {
		edges = append(edges, category.EdgeProducts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeSubcategories:
		ids := make([]ent.Value, 0, len(m.removedsubcategories))
		for id := range m.removedsubcategories {
			ids = append(ids, id)
		}
		return ids
	case category.EdgeProducts:
		ids := make([]ent.Value, 0, len(m.removedproducts))
		for id := range m.removedproducts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedparent {
		edges = append(edges, category.EdgeParent)
	}
	if m.clearedsubcategories {
		edges = append(edges, category.EdgeSubcategories)
	}
	if m.clearedproducts {
		edges = append(edges, category.EdgeProducts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case category.EdgeParent:
		return m.clearedparent
	case category.EdgeSubcategories:
		return m.clearedsubcategories
	case category.EdgeProducts:
		return m.clearedproducts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryMutation) ClearEdge(name string) error {
	switch name {
	case category.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Category unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryMutation) ResetEdge(name string) error {
	switch name {
	case category.EdgeParent:
		m.ResetParent()
		return nil
	case category.EdgeSubcategories:
		m.ResetSubcategories()
		return nil
	case category.EdgeProducts:
		m.ResetProducts()
		return nil
	}
	return fmt.Errorf("unknown Category edge %s", name)
}

// ConsumptionEventMutation represents an operation that mutates the ConsumptionEvent nodes in the graph.
type ConsumptionEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	consumed_qty          *float64
	addconsumed_qty       *float64
	consumed_at           *time.Time
	notes                 *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	inventory_item        *uuid.UUID
	clearedinventory_item bool
	done                  bool
	oldValue              func(context.Context) (*ConsumptionEvent, error)
	predicates            []predicate.ConsumptionEvent
}

var _ ent.Mutation = (*ConsumptionEventMutation)(nil)

// consumptioneventOption allows management of the mutation configuration using functional options.
type consumptioneventOption func(*ConsumptionEventMutation)

// newConsumptionEventMutation creates new mutation for the ConsumptionEvent entity.
func newConsumptionEventMutation(c config, op Op, opts ...consumptioneventOption) *ConsumptionEventMutation {
	m := &ConsumptionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeConsumptionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConsumptionEventID sets the ID field of the mutation.
func withConsumptionEventID(id uuid.UUID) consumptioneventOption {
	return func(m *ConsumptionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ConsumptionEvent
		)
		m.oldValue = func(ctx context.Context) (*ConsumptionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConsumptionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConsumptionEvent sets the old ConsumptionEvent of the mutation.
func withConsumptionEvent(node *ConsumptionEvent) consumptioneventOption {
	return func(m *ConsumptionEventMutation) {
		m.oldValue = func(context.Context) (*ConsumptionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConsumptionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConsumptionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConsumptionEvent entities.
func (m *ConsumptionEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConsumptionEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConsumptionEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConsumptionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (m *ConsumptionEventMutation) SetInventoryItemID(u uuid.UUID) {
	m.inventory_item = &u
}

// InventoryItemID returns the value of the "inventory_item_id" field in the mutation.
func (m *ConsumptionEventMutation) InventoryItemID() (r uuid.UUID, exists bool) {
	v := m.inventory_item
	if v == nil {
		return
	}
	return *v, true
}

// OldInventoryItemID returns the old "inventory_item_id" field's value of the ConsumptionEvent entity.
// If the ConsumptionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumptionEventMutation) OldInventoryItemID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInventoryItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInventoryItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInventoryItemID: %w", err)
	}
	return oldValue.InventoryItemID, nil
}

// ResetInventoryItemID resets all changes to the "inventory_item_id" field.
func (m *ConsumptionEventMutation) ResetInventoryItemID() {
	m.inventory_item = nil
}

// SetConsumedQty sets the "consumed_qty" field.
func (m *ConsumptionEventMutation) SetConsumedQty(f float64) {
	m.consumed_qty = &f
	m.addconsumed_qty = nil
}

// ConsumedQty returns the value of the "consumed_qty" field in the mutation.
func (m *ConsumptionEventMutation) ConsumedQty() (r float64, exists bool) {
	v := m.consumed_qty
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumedQty returns the old "consumed_qty" field's value of the ConsumptionEvent entity.
// If the ConsumptionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumptionEventMutation) OldConsumedQty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumedQty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumedQty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumedQty: %w", err)
	}
	return oldValue.ConsumedQty, nil
}

// AddConsumedQty adds f to the "consumed_qty" field.
func (m *ConsumptionEventMutation) AddConsumedQty(f float64) {
	if m.addconsumed_qty != nil {
		*m.addconsumed_qty += f
	} else {
		m.addconsumed_qty = &f
	}
}

// AddedConsumedQty returns the value that was added to the "consumed_qty" field in this mutation.
func (m *ConsumptionEventMutation) AddedConsumedQty() (r float64, exists bool) {
	v := m.addconsumed_qty
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsumedQty resets all changes to the "consumed_qty" field.
func (m *ConsumptionEventMutation) ResetConsumedQty() {
	m.consumed_qty = nil
	m.addconsumed_qty = nil
}

// SetConsumedAt sets the "consumed_at" field.
func (m *ConsumptionEventMutation) SetConsumedAt(t time.Time) {
	m.consumed_at = &t
}

// ConsumedAt returns the value of the "consumed_at" field in the mutation.
func (m *ConsumptionEventMutation) ConsumedAt() (r time.Time, exists bool) {
	v := m.consumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumedAt returns the old "consumed_at" field's value of the ConsumptionEvent entity.
// If the ConsumptionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumptionEventMutation) OldConsumedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumedAt: %w", err)
	}
	return oldValue.ConsumedAt, nil
}

// ResetConsumedAt resets all changes to the "consumed_at" field.
func (m *ConsumptionEventMutation) ResetConsumedAt() {
	m.consumed_at = nil
}

// SetNotes sets the "notes" field.
func (m *ConsumptionEventMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ConsumptionEventMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ConsumptionEvent entity.
// If the ConsumptionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumptionEventMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *ConsumptionEventMutation) ResetNotes() {
	m.notes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConsumptionEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConsumptionEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConsumptionEvent entity.
// If the ConsumptionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumptionEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ConsumptionEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInventoryItem clears the "inventory_item" edge to the InventoryItem entity.
func (m *ConsumptionEventMutation) ClearInventoryItem() {
	m.clearedinventory_item = true
	m.clearedFields[consumptionevent.FieldInventoryItemID] = struct{}{}
}

// InventoryItemCleared reports if the "inventory_item" edge to the InventoryItem entity was cleared.
func (m *ConsumptionEventMutation) InventoryItemCleared() bool {
	return m.clearedinventory_item
}

// InventoryItemIDs returns the "inventory_item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InventoryItemID instead. It exists only for internal usage by the builders.
func (m *ConsumptionEventMutation) InventoryItemIDs() (ids []uuid.UUID) {
	if id := m.inventory_item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInventoryItem resets all changes to the "inventory_item" edge.
func (m *ConsumptionEventMutation) ResetInventoryItem() {
	m.inventory_item = nil
	m.clearedinventory_item = false
}

// Where appends a list predicates to the ConsumptionEventMutation builder.
func (m *ConsumptionEventMutation) Where(ps ...predicate.ConsumptionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConsumptionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConsumptionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConsumptionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConsumptionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConsumptionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConsumptionEvent).
func (m *ConsumptionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConsumptionEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.inventory_item != nil {
		fields = append(fields, consumptionevent.FieldInventoryItemID)
	}
	if m.consumed_qty != nil {
		fields = append(fields, consumptionevent.FieldConsumedQty)
	}
	if m.consumed_at != nil {
		fields = append(fields, consumptionevent.FieldConsumedAt)
	}
	if m.notes != nil {
		fields = append(fields, consumptionevent.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, consumptionevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConsumptionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case consumptionevent.FieldInventoryItemID:
		return m.InventoryItemID()
	case consumptionevent.FieldConsumedQty:
		return m.ConsumedQty()
	case consumptionevent.FieldConsumedAt:
		return m.ConsumedAt()
	case consumptionevent.FieldNotes:
		return m.Notes()
	case consumptionevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConsumptionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case consumptionevent.FieldInventoryItemID:
		return m.OldInventoryItemID(ctx)
	case consumptionevent.FieldConsumedQty:
		return m.OldConsumedQty(ctx)
	case consumptionevent.FieldConsumedAt:
		return m.OldConsumedAt(ctx)
	case consumptionevent.FieldNotes:
		return m.OldNotes(ctx)
	case consumptionevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConsumptionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsumptionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case consumptionevent.FieldInventoryItemID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInventoryItemID(v)
		return nil
	case consumptionevent.FieldConsumedQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumedQty(v)
		return nil
	case consumptionevent.FieldConsumedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumedAt(v)
		return nil
	case consumptionevent.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case consumptionevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConsumptionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConsumptionEventMutation) AddedFields() []string {
	var fields []string
	if m.addconsumed_qty != nil {
		fields = append(fields, consumptionevent.FieldConsumedQty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConsumptionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case consumptionevent.FieldConsumedQty:
		return m.AddedConsumedQty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsumptionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case consumptionevent.FieldConsumedQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsumedQty(v)
		return nil
	}
	return fmt.Errorf("unknown ConsumptionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConsumptionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConsumptionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConsumptionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConsumptionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConsumptionEventMutation) ResetField(name string) error {
	switch name {
	case consumptionevent.FieldInventoryItemID:
		m.ResetInventoryItemID()
		return nil
	case consumptionevent.FieldConsumedQty:
		m.ResetConsumedQty()
		return nil
	case consumptionevent.FieldConsumedAt:
		m.ResetConsumedAt()
		return nil
	case consumptionevent.FieldNotes:
		m.ResetNotes()
		return nil
	case consumptionevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConsumptionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConsumptionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.inventory_item != nil {
		edges = append(edges, consumptionevent.EdgeInventoryItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConsumptionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case consumptionevent.EdgeInventoryItem:
		if id := m.inventory_item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConsumptionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConsumptionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConsumptionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinventory_item {
		edges = append(edges, consumptionevent.EdgeInventoryItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConsumptionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case consumptionevent.EdgeInventoryItem:
		return m.clearedinventory_item
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConsumptionEventMutation) ClearEdge(name string) error {
	switch name {
	case consumptionevent.EdgeInventoryItem:
		m.ClearInventoryItem()
		return nil
	}
	return fmt.Errorf("unknown ConsumptionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConsumptionEventMutation) ResetEdge(name string) error {
	switch name {
	case consumptionevent.EdgeInventoryItem:
		m.ResetInventoryItem()
		return nil
	}
	return fmt.Errorf("unknown ConsumptionEvent edge %s", name)
}

// CorrectionPatternMutation represents an operation that mutates the CorrectionPattern nodes in the graph.
type CorrectionPatternMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	error_pattern     *string
	correct_pattern   *string
	is_regex          *bool
	confidence        *float64
	addconfidence     *float64
	times_applied     *int
	addtimes_applied  *int
	sample_count      *int
	addsample_count   *int
	is_active         *bool
	human_deactivated *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CorrectionPattern, error)
	predicates        []predicate.CorrectionPattern
}

var _ ent.Mutation = (*CorrectionPatternMutation)(nil)

// correctionpatternOption allows management of the mutation configuration using functional options.
type correctionpatternOption func(*CorrectionPatternMutation)

// newCorrectionPatternMutation creates new mutation for the CorrectionPattern entity.
func newCorrectionPatternMutation(c config, op Op, opts ...correctionpatternOption) *CorrectionPatternMutation {
	m := &CorrectionPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeCorrectionPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCorrectionPatternID sets the ID field of the mutation.
func withCorrectionPatternID(id uuid.UUID) correctionpatternOption {
	return func(m *CorrectionPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *CorrectionPattern
		)
		m.oldValue = func(ctx context.Context) (*CorrectionPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CorrectionPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCorrectionPattern sets the old CorrectionPattern of the mutation.
func withCorrectionPattern(node *CorrectionPattern) correctionpatternOption {
	return func(m *CorrectionPatternMutation) {
		m.oldValue = func(context.Context) (*CorrectionPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CorrectionPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CorrectionPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CorrectionPattern entities.
func (m *CorrectionPatternMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CorrectionPatternMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CorrectionPatternMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CorrectionPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetErrorPattern sets the "error_pattern" field.
func (m *CorrectionPatternMutation) SetErrorPattern(s string) {
	m.error_pattern = &s
}

// ErrorPattern returns the value of the "error_pattern" field in the mutation.
func (m *CorrectionPatternMutation) ErrorPattern() (r string, exists bool) {
	v := m.error_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorPattern returns the old "error_pattern" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldErrorPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorPattern: %w", err)
	}
	return oldValue.ErrorPattern, nil
}

// ResetErrorPattern resets all changes to the "error_pattern" field.
func (m *CorrectionPatternMutation) ResetErrorPattern() {
	m.error_pattern = nil
}

// SetCorrectPattern sets the "correct_pattern" field.
func (m *CorrectionPatternMutation) SetCorrectPattern(s string) {
	m.correct_pattern = &s
}

// CorrectPattern returns the value of the "correct_pattern" field in the mutation.
func (m *CorrectionPatternMutation) CorrectPattern() (r string, exists bool) {
	v := m.correct_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectPattern returns the old "correct_pattern" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldCorrectPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectPattern: %w", err)
	}
	return oldValue.CorrectPattern, nil
}

// ResetCorrectPattern resets all changes to the "correct_pattern" field.
func (m *CorrectionPatternMutation) ResetCorrectPattern() {
	m.correct_pattern = nil
}

// SetIsRegex sets the "is_regex" field.
func (m *CorrectionPatternMutation) SetIsRegex(b bool) {
	m.is_regex = &b
}

// IsRegex returns the value of the "is_regex" field in the mutation.
func (m *CorrectionPatternMutation) IsRegex() (r bool, exists bool) {
	v := m.is_regex
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRegex returns the old "is_regex" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldIsRegex(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRegex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRegex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRegex: %w", err)
	}
	return oldValue.IsRegex, nil
}

// ResetIsRegex resets all changes to the "is_regex" field.
func (m *CorrectionPatternMutation) ResetIsRegex() {
	m.is_regex = nil
}

// SetConfidence sets the "confidence" field.
func (m *CorrectionPatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CorrectionPatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *CorrectionPatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CorrectionPatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CorrectionPatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTimesApplied sets the "times_applied" field.
func (m *CorrectionPatternMutation) SetTimesApplied(i int) {
	m.times_applied = &i
	m.addtimes_applied = nil
}

// TimesApplied returns the value of the "times_applied" field in the mutation.
func (m *CorrectionPatternMutation) TimesApplied() (r int, exists bool) {
	v := m.times_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesApplied returns the old "times_applied" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldTimesApplied(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesApplied: %w", err)
	}
	return oldValue.TimesApplied, nil
}

// AddTimesApplied adds i to the "times_applied" field.
func (m *CorrectionPatternMutation) AddTimesApplied(i int) {
	if m.addtimes_applied != nil {
		*m.addtimes_applied += i
	} else {
		m.addtimes_applied = &i
	}
}

// AddedTimesApplied returns the value that was added to the "times_applied" field in this mutation.
func (m *CorrectionPatternMutation) AddedTimesApplied() (r int, exists bool) {
	v := m.addtimes_applied
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesApplied resets all changes to the "times_applied" field.
func (m *CorrectionPatternMutation) ResetTimesApplied() {
	m.times_applied = nil
	m.addtimes_applied = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *CorrectionPatternMutation) SetSampleCount(i int) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *CorrectionPatternMutation) SampleCount() (r int, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldSampleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *CorrectionPatternMutation) AddSampleCount(i int) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *CorrectionPatternMutation) AddedSampleCount() (r int, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *CorrectionPatternMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetIsActive sets the "is_active" field.
func (m *CorrectionPatternMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *CorrectionPatternMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldIsActive(ctx context.Context) (v bool, err error) {
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
func (m *CorrectionPatternMutation) ResetIsActive() {
	m.is_active = nil
}

// SetHumanDeactivated sets the "human_deactivated" field.
func (m *CorrectionPatternMutation) SetHumanDeactivated(b bool) {
	m.human_deactivated = &b
}

// HumanDeactivated returns the value of the "human_deactivated" field in the mutation.
func (m *CorrectionPatternMutation) HumanDeactivated() (r bool, exists bool) {
	v := m.human_deactivated
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanDeactivated returns the old "human_deactivated" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldHumanDeactivated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanDeactivated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanDeactivated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanDeactivated: %w", err)
	}
	return oldValue.HumanDeactivated, nil
}

// ResetHumanDeactivated resets all changes to the "human_deactivated" field.
func (m *CorrectionPatternMutation) ResetHumanDeactivated() {
	m.human_deactivated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CorrectionPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CorrectionPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CorrectionPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CorrectionPatternMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CorrectionPatternMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CorrectionPattern entity.
// If the CorrectionPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionPatternMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CorrectionPatternMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CorrectionPatternMutation builder.
func (m *CorrectionPatternMutation) Where(ps ...predicate.CorrectionPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CorrectionPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CorrectionPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CorrectionPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CorrectionPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CorrectionPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CorrectionPattern).
func (m *CorrectionPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CorrectionPatternMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.error_pattern != nil {
		fields = append(fields, correctionpattern.FieldErrorPattern)
	}
	if m.correct_pattern != nil {
		fields = append(fields, correctionpattern.FieldCorrectPattern)
	}
	if m.is_regex != nil {
		fields = append(fields, correctionpattern.FieldIsRegex)
	}
	if m.confidence != nil {
		fields = append(fields, correctionpattern.FieldConfidence)
	}
	if m.times_applied != nil {
		fields = append(fields, correctionpattern.FieldTimesApplied)
	}
	if m.sample_count != nil {
		fields = append(fields, correctionpattern.FieldSampleCount)
	}
	if m.is_active != nil {
		fields = append(fields, correctionpattern.FieldIsActive)
	}
	if m.human_deactivated != nil {
		fields = append(fields, correctionpattern.FieldHumanDeactivated)
	}
	if m.created_at != nil {
		fields = append(fields, correctionpattern.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, correctionpattern.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CorrectionPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case correctionpattern.FieldErrorPattern:
		return m.ErrorPattern()
	case correctionpattern.FieldCorrectPattern:
		return m.CorrectPattern()
	case correctionpattern.FieldIsRegex:
		return m.IsRegex()
	case correctionpattern.FieldConfidence:
		return m.Confidence()
	case correctionpattern.FieldTimesApplied:
		return m.TimesApplied()
	case correctionpattern.FieldSampleCount:
		return m.SampleCount()
	case correctionpattern.FieldIsActive:
		return m.IsActive()
	case correctionpattern.FieldHumanDeactivated:
		return m.HumanDeactivated()
	case correctionpattern.FieldCreatedAt:
		return m.CreatedAt()
	case correctionpattern.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CorrectionPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case correctionpattern.FieldErrorPattern:
		return m.OldErrorPattern(ctx)
	case correctionpattern.FieldCorrectPattern:
		return m.OldCorrectPattern(ctx)
	case correctionpattern.FieldIsRegex:
		return m.OldIsRegex(ctx)
	case correctionpattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case correctionpattern.FieldTimesApplied:
		return m.OldTimesApplied(ctx)
	case correctionpattern.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case correctionpattern.FieldIsActive:
		return m.OldIsActive(ctx)
	case correctionpattern.FieldHumanDeactivated:
		return m.OldHumanDeactivated(ctx)
	case correctionpattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case correctionpattern.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CorrectionPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case correctionpattern.FieldErrorPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorPattern(v)
		return nil
	case correctionpattern.FieldCorrectPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectPattern(v)
		return nil
	case correctionpattern.FieldIsRegex:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRegex(v)
		return nil
	case correctionpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case correctionpattern.FieldTimesApplied:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesApplied(v)
		return nil
	case correctionpattern.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case correctionpattern.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case correctionpattern.FieldHumanDeactivated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanDeactivated(v)
		return nil
	case correctionpattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case correctionpattern.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CorrectionPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CorrectionPatternMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, correctionpattern.FieldConfidence)
	}
	if m.addtimes_applied != nil {
		fields = append(fields, correctionpattern.FieldTimesApplied)
	}
	if m.addsample_count != nil {
		fields = append(fields, correctionpattern.FieldSampleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CorrectionPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case correctionpattern.FieldConfidence:
		return m.AddedConfidence()
	case correctionpattern.FieldTimesApplied:
		return m.AddedTimesApplied()
	case correctionpattern.FieldSampleCount:
		return m.AddedSampleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case correctionpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case correctionpattern.FieldTimesApplied:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesApplied(v)
		return nil
	case correctionpattern.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	}
	return fmt.Errorf("unknown CorrectionPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CorrectionPatternMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CorrectionPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CorrectionPatternMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CorrectionPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CorrectionPatternMutation) ResetField(name string) error {
	switch name {
	case correctionpattern.FieldErrorPattern:
		m.ResetErrorPattern()
		return nil
	case correctionpattern.FieldCorrectPattern:
		m.ResetCorrectPattern()
		return nil
	case correctionpattern.FieldIsRegex:
		m.ResetIsRegex()
		return nil
	case correctionpattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case correctionpattern.FieldTimesApplied:
		m.ResetTimesApplied()
		return nil
	case correctionpattern.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case correctionpattern.FieldIsActive:
		m.ResetIsActive()
		return nil
	case correctionpattern.FieldHumanDeactivated:
		m.ResetHumanDeactivated()
		return nil
	case correctionpattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case correctionpattern.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CorrectionPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CorrectionPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CorrectionPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CorrectionPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CorrectionPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CorrectionPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CorrectionPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CorrectionPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CorrectionPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CorrectionPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CorrectionPattern edge %s", name)
}

// InventoryItemMutation represents an operation that mutates the InventoryItem nodes in the graph.
type InventoryItemMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	purchase_date             *time.Time
	expiry_date               *time.Time
	quantity_remaining        *float64
	addquantity_remaining     *float64
	unit                      *string
	storage_location          *string
	batch_id                  *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	product                   *uuid.UUID
	clearedproduct            bool
	consumption_events        map[uuid.UUID]struct{}
	removedconsumption_events map[uuid.UUID]struct{}
	clearedconsumption_events bool
	done                      bool
	oldValue                  func(context.Context) (*InventoryItem, error)
	predicates                []predicate.InventoryItem
}

var _ ent.Mutation = (*InventoryItemMutation)(nil)

// inventoryitemOption allows management of the mutation configuration using functional options.
type inventoryitemOption func(*InventoryItemMutation)

// newInventoryItemMutation creates new mutation for the InventoryItem entity.
func newInventoryItemMutation(c config, op Op, opts ...inventoryitemOption) *InventoryItemMutation {
	m := &InventoryItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInventoryItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInventoryItemID sets the ID field of the mutation.
func withInventoryItemID(id uuid.UUID) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InventoryItem
		)
		m.oldValue = func(ctx context.Context) (*InventoryItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InventoryItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInventoryItem sets the old InventoryItem of the mutation.
func withInventoryItem(node *InventoryItem) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		m.oldValue = func(context.Context) (*InventoryItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InventoryItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InventoryItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InventoryItem entities.
func (m *InventoryItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InventoryItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InventoryItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InventoryItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProductID sets the "product_id" field.
func (m *InventoryItemMutation) SetProductID(u uuid.UUID) {
	m.product = &u
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *InventoryItemMutation) ProductID() (r uuid.UUID, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldProductID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ResetProductID resets all changes to the "product_id" field.
func (m *InventoryItemMutation) ResetProductID() {
	m.product = nil
}

// SetPurchaseDate sets the "purchase_date" field.
func (m *InventoryItemMutation) SetPurchaseDate(t time.Time) {
	m.purchase_date = &t
}

// PurchaseDate returns the value of the "purchase_date" field in the mutation.
func (m *InventoryItemMutation) PurchaseDate() (r time.Time, exists bool) {
	v := m.purchase_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseDate returns the old "purchase_date" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldPurchaseDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseDate: %w", err)
	}
	return oldValue.PurchaseDate, nil
}

// ResetPurchaseDate resets all changes to the "purchase_date" field.
func (m *InventoryItemMutation) ResetPurchaseDate() {
	m.purchase_date = nil
}

// SetExpiryDate sets the "expiry_date" field.
func (m *InventoryItemMutation) SetExpiryDate(t time.Time) {
	m.expiry_date = &t
}

// ExpiryDate returns the value of the "expiry_date" field in the mutation.
func (m *InventoryItemMutation) ExpiryDate() (r time.Time, exists bool) {
	v := m.expiry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryDate returns the old "expiry_date" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldExpiryDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryDate: %w", err)
	}
	return oldValue.ExpiryDate, nil
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (m *InventoryItemMutation) ClearExpiryDate() {
	m.expiry_date = nil
	m.clearedFields[inventoryitem.FieldExpiryDate] = struct{}{}
}

// ExpiryDateCleared returns if the "expiry_date" field was cleared in this mutation.
func (m *InventoryItemMutation) ExpiryDateCleared() bool {
	_, ok := m.clearedFields[inventoryitem.FieldExpiryDate]
	return ok
}

// ResetExpiryDate resets all changes to the "expiry_date" field.
func (m *InventoryItemMutation) ResetExpiryDate() {
	m.expiry_date = nil
	delete(m.clearedFields, inventoryitem.FieldExpiryDate)
}

// SetQuantityRemaining sets the "quantity_remaining" field.
func (m *InventoryItemMutation) SetQuantityRemaining(f float64) {
	m.quantity_remaining = &f
	m.addquantity_remaining = nil
}

// QuantityRemaining returns the value of the "quantity_remaining" field in the mutation.
func (m *InventoryItemMutation) QuantityRemaining() (r float64, exists bool) {
	v := m.quantity_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantityRemaining returns the old "quantity_remaining" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldQuantityRemaining(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantityRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantityRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantityRemaining: %w", err)
	}
	return oldValue.QuantityRemaining, nil
}

// AddQuantityRemaining adds f to the "quantity_remaining" field.
func (m *InventoryItemMutation) AddQuantityRemaining(f float64) {
	if m.addquantity_remaining != nil {
		*m.addquantity_remaining += f
	} else {
		m.addquantity_remaining = &f
	}
}

// AddedQuantityRemaining returns the value that was added to the "quantity_remaining" field in this mutation.
func (m *InventoryItemMutation) AddedQuantityRemaining() (r float64, exists bool) {
	v := m.addquantity_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantityRemaining resets all changes to the "quantity_remaining" field.
func (m *InventoryItemMutation) ResetQuantityRemaining() {
	m.quantity_remaining = nil
	m.addquantity_remaining = nil
}

// SetUnit sets the "unit" field.
func (m *InventoryItemMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *InventoryItemMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *InventoryItemMutation) ResetUnit() {
	m.unit = nil
}

// SetStorageLocation sets the "storage_location" field.
func (m *InventoryItemMutation) SetStorageLocation(s string) {
	m.storage_location = &s
}

// StorageLocation returns the value of the "storage_location" field in the mutation.
func (m *InventoryItemMutation) StorageLocation() (r string, exists bool) {
	v := m.storage_location
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageLocation returns the old "storage_location" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldStorageLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageLocation: %w", err)
	}
	return oldValue.StorageLocation, nil
}

// ResetStorageLocation resets all changes to the "storage_location" field.
func (m *InventoryItemMutation) ResetStorageLocation() {
	m.storage_location = nil
}

// SetBatchID sets the "batch_id" field.
func (m *InventoryItemMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *InventoryItemMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *InventoryItemMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InventoryItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InventoryItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InventoryItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InventoryItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InventoryItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InventoryItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProduct clears the "product" edge to the Product entity.
func (m *InventoryItemMutation) ClearProduct() {
	m.clearedproduct = true
	m.clearedFields[inventoryitem.FieldProductID] = struct{}{}
}

// ProductCleared reports if the "product" edge to the Product entity was cleared.
func (m *InventoryItemMutation) ProductCleared() bool {
	return m.clearedproduct
}

// ProductIDs returns the "product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductID instead. It exists only for internal usage by the builders.
func (m *InventoryItemMutation) ProductIDs() (ids []uuid.UUID) {
	if id := m.product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProduct resets all changes to the "product" edge.
func (m *InventoryItemMutation) ResetProduct() {
	m.product = nil
	m.clearedproduct = false
}

// AddConsumptionEventIDs adds the "consumption_events" edge to the ConsumptionEvent entity by ids.
func (m *InventoryItemMutation) AddConsumptionEventIDs(ids ...uuid.UUID) {
	if m.consumption_events == nil {
		m.consumption_events = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.consumption_events[ids[i]] = struct{}{}
	}
}

// ClearConsumptionEvents clears the "consumption_events" edge to the ConsumptionEvent entity.
func (m *InventoryItemMutation) ClearConsumptionEvents() {
	m.clearedconsumption_events = true
}

// ConsumptionEventsCleared reports if the "consumption_events" edge to the ConsumptionEvent entity was cleared.
func (m *InventoryItemMutation) ConsumptionEventsCleared() bool {
	return m.clearedconsumption_events
}

// RemoveConsumptionEventIDs removes the "consumption_events" edge to the ConsumptionEvent entity by IDs.
func (m *InventoryItemMutation) RemoveConsumptionEventIDs(ids ...uuid.UUID) {
	if m.removedconsumption_events == nil {
		m.removedconsumption_events = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.consumption_events, ids[i])
		m.removedconsumption_events[ids[i]] = struct{}{}
	}
}

// RemovedConsumptionEvents returns the removed IDs of the "consumption_events" edge to the ConsumptionEvent entity.
func (m *InventoryItemMutation) RemovedConsumptionEventsIDs() (ids []uuid.UUID) {
	for id := range m.removedconsumption_events {
		ids = append(ids, id)
	}
	return
}

// ConsumptionEventsIDs returns the "consumption_events" edge IDs in the mutation.
func (m *InventoryItemMutation) ConsumptionEventsIDs() (ids []uuid.UUID) {
	for id := range m.consumption_events {
		ids = append(ids, id)
	}
	return
}

// ResetConsumptionEvents resets all changes to the "consumption_events" edge.
func (m *InventoryItemMutation) ResetConsumptionEvents() {
	m.consumption_events = nil
	m.clearedconsumption_events = false
	m.removedconsumption_events = nil
}

// Where appends a list predicates to the InventoryItemMutation builder.
func (m *InventoryItemMutation) Where(ps ...predicate.InventoryItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InventoryItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InventoryItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InventoryItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InventoryItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InventoryItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InventoryItem).
func (m *InventoryItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InventoryItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.product != nil {
		fields = append(fields, inventoryitem.FieldProductID)
	}
	if m.purchase_date != nil {
		fields = append(fields, inventoryitem.FieldPurchaseDate)
	}
	if m.expiry_date != nil {
		fields = append(fields, inventoryitem.FieldExpiryDate)
	}
	if m.quantity_remaining != nil {
		fields = append(fields, inventoryitem.FieldQuantityRemaining)
	}
	if m.unit != nil {
		fields = append(fields, inventoryitem.FieldUnit)
	}
	if m.storage_location != nil {
		fields = append(fields, inventoryitem.FieldStorageLocation)
	}
	if m.batch_id != nil {
		fields = append(fields, inventoryitem.FieldBatchID)
	}
	if m.created_at != nil {
		fields = append(fields, inventoryitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, inventoryitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InventoryItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldProductID:
		return m.ProductID()
	case inventoryitem.FieldPurchaseDate:
		return m.PurchaseDate()
	case inventoryitem.FieldExpiryDate:
		return m.ExpiryDate()
	case inventoryitem.FieldQuantityRemaining:
		return m.QuantityRemaining()
	case inventoryitem.FieldUnit:
		return m.Unit()
	case inventoryitem.FieldStorageLocation:
		return m.StorageLocation()
	case inventoryitem.FieldBatchID:
		return m.BatchID()
	case inventoryitem.FieldCreatedAt:
		return m.CreatedAt()
	case inventoryitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InventoryItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inventoryitem.FieldProductID:
		return m.OldProductID(ctx)
	case inventoryitem.FieldPurchaseDate:
		return m.OldPurchaseDate(ctx)
	case inventoryitem.FieldExpiryDate:
		return m.OldExpiryDate(ctx)
	case inventoryitem.FieldQuantityRemaining:
		return m.OldQuantityRemaining(ctx)
	case inventoryitem.FieldUnit:
		return m.OldUnit(ctx)
	case inventoryitem.FieldStorageLocation:
		return m.OldStorageLocation(ctx)
	case inventoryitem.FieldBatchID:
		return m.OldBatchID(ctx)
	case inventoryitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inventoryitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InventoryItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case inventoryitem.FieldPurchaseDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseDate(v)
		return nil
	case inventoryitem.FieldExpiryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryDate(v)
		return nil
	case inventoryitem.FieldQuantityRemaining:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantityRemaining(v)
		return nil
	case inventoryitem.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case inventoryitem.FieldStorageLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageLocation(v)
		return nil
	case inventoryitem.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case inventoryitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inventoryitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InventoryItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity_remaining != nil {
		fields = append(fields, inventoryitem.FieldQuantityRemaining)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InventoryItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldQuantityRemaining:
		return m.AddedQuantityRemaining()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldQuantityRemaining:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantityRemaining(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InventoryItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inventoryitem.FieldExpiryDate) {
		fields = append(fields, inventoryitem.FieldExpiryDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InventoryItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InventoryItemMutation) ClearField(name string) error {
	switch name {
	case inventoryitem.FieldExpiryDate:
		m.ClearExpiryDate()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InventoryItemMutation) ResetField(name string) error {
	switch name {
	case inventoryitem.FieldProductID:
		m.ResetProductID()
		return nil
	case inventoryitem.FieldPurchaseDate:
		m.ResetPurchaseDate()
		return nil
	case inventoryitem.FieldExpiryDate:
		m.ResetExpiryDate()
		return nil
	case inventoryitem.FieldQuantityRemaining:
		m.ResetQuantityRemaining()
		return nil
	case inventoryitem.FieldUnit:
		m.ResetUnit()
		return nil
	case inventoryitem.FieldStorageLocation:
		m.ResetStorageLocation()
		return nil
	case inventoryitem.FieldBatchID:
		m.ResetBatchID()
		return nil
	case inventoryitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inventoryitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InventoryItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.product != nil {
		edges = append(edges, inventoryitem.EdgeProduct)
	}
	if m.consumption_events != nil {
		edges = append(edges, inventoryitem.EdgeConsumptionEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InventoryItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inventoryitem.EdgeProduct:
		if id := m.product; id != nil {
			return []ent.Value{*id}
		}
	case inventoryitem.EdgeConsumptionEvents:
		ids := make([]ent.Value, 0, len(m.consumption_events))
		for id := range m.consumption_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InventoryItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedconsumption_events != nil {
		edges = append(edges, inventoryitem.EdgeConsumptionEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InventoryItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case inventoryitem.EdgeConsumptionEvents:
		ids := make([]ent.Value, 0, len(m.removedconsumption_events))
		for id := range m.removedconsumption_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InventoryItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproduct {
		edges = append(edges, inventoryitem.EdgeProduct)
	}
	if m.clearedconsumption_events {
		edges = append(edges, inventoryitem.EdgeConsumptionEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InventoryItemMutation) EdgeCleared(name string) bool {
	switch name {
	case inventoryitem.EdgeProduct:
		return m.clearedproduct
	case inventoryitem.EdgeConsumptionEvents:
		return m.clearedconsumption_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InventoryItemMutation) ClearEdge(name string) error {
	switch name {
	case inventoryitem.EdgeProduct:
		m.ClearProduct()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InventoryItemMutation) ResetEdge(name string) error {
	switch name {
	case inventoryitem.EdgeProduct:
		m.ResetProduct()
		return nil
	case inventoryitem.EdgeConsumptionEvents:
		m.ResetConsumptionEvents()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem edge %s", name)
}

// ProductMutation represents an operation that mutates the Product nodes in the graph.
type ProductMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	normalized_name        *string
	brand                  *string
	barcode                *string
	is_active              *bool
	aliases                *[]string
	appendaliases          []string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	category               *uuid.UUID
	clearedcategory        bool
	receipt_items          map[uuid.UUID]struct{}
	removedreceipt_items   map[uuid.UUID]struct{}
	clearedreceipt_items   bool
	inventory_items        map[uuid.UUID]struct{}
	removedinventory_items map[uuid.UUID]struct{}
	clearedinventory_items bool
	done                   bool
	oldValue               func(context.Context) (*Product, error)
	predicates             []predicate.Product
}

var _ ent.Mutation = (*ProductMutation)(nil)

// productOption allows management of the mutation configuration using functional options.
type productOption func(*ProductMutation)

// newProductMutation creates new mutation for the Product entity.
func newProductMutation(c config, op Op, opts ...productOption) *ProductMutation {
	m := &ProductMutation{
		config:        c,
		op:            op,
		typ:           TypeProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductID sets the ID field of the mutation.
func withProductID(id uuid.UUID) productOption {
	return func(m *ProductMutation) {
		var (
			err   error
			once  sync.Once
			value *Product
		)
		m.oldValue = func(ctx context.Context) (*Product, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Product.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProduct sets the old Product of the mutation.
func withProduct(node *Product) productOption {
	return func(m *ProductMutation) {
		m.oldValue = func(context.Context) (*Product, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Product entities.
func (m *ProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Product.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProductMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProductMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ProductMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *ProductMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *ProductMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *ProductMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetBrand sets the "brand" field.
func (m *ProductMutation) SetBrand(s string) {
	m.brand = &s
}

// Brand returns the value of the "brand" field in the mutation.
func (m *ProductMutation) Brand() (r string, exists bool) {
	v := m.brand
	if v == nil {
		return
	}
	return *v, true
}

// OldBrand returns the old "brand" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldBrand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrand: %w", err)
	}
	return oldValue.Brand, nil
}

// ResetBrand resets all changes to the "brand" field.
func (m *ProductMutation) ResetBrand() {
	m.brand = nil
}

// SetBarcode sets the "barcode" field.
func (m *ProductMutation) SetBarcode(s string) {
	m.barcode = &s
}

// Barcode returns the value of the "barcode" field in the mutation.
func (m *ProductMutation) Barcode() (r string, exists bool) {
	v := m.barcode
	if v == nil {
		return
	}
	return *v, true
}

// OldBarcode returns the old "barcode" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldBarcode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBarcode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBarcode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBarcode: %w", err)
	}
	return oldValue.Barcode, nil
}

// ClearBarcode clears the value of the "barcode" field.
func (m *ProductMutation) ClearBarcode() {
	m.barcode = nil
	m.clearedFields[product.FieldBarcode] = struct{}{}
}

// BarcodeCleared returns if the "barcode" field was cleared in this mutation.
func (m *ProductMutation) BarcodeCleared() bool {
	_, ok := m.clearedFields[product.FieldBarcode]
	return ok
}

// ResetBarcode resets all changes to the "barcode" field.
func (m *ProductMutation) ResetBarcode() {
	m.barcode = nil
	delete(m.clearedFields, product.FieldBarcode)
}

// SetCategoryID sets the "category_id" field.
func (m *ProductMutation) SetCategoryID(u uuid.UUID) {
	m.category = &u
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *ProductMutation) CategoryID() (r uuid.UUID, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCategoryID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ClearCategoryID clears the value of the "category_id" field.
func (m *ProductMutation) ClearCategoryID() {
	m.category = nil
	m.clearedFields[product.FieldCategoryID] = struct{}{}
}

// CategoryIDCleared returns if the "category_id" field was cleared in this mutation.
func (m *ProductMutation) CategoryIDCleared() bool {
	_, ok := m.clearedFields[product.FieldCategoryID]
	return ok
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *ProductMutation) ResetCategoryID() {
	m.category = nil
	delete(m.clearedFields, product.FieldCategoryID)
}

// SetIsActive sets the "is_active" field.
func (m *ProductMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ProductMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldIsActive(ctx context.Context) (v bool, err error) {
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
func (m *ProductMutation) ResetIsActive() {
	m.is_active = nil
}

// SetAliases sets the "aliases" field.
func (m *ProductMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *ProductMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *ProductMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *ProductMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *ProductMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[product.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *ProductMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[product.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *ProductMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, product.FieldAliases)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCategory clears the "category" edge to the Category entity.
func (m *ProductMutation) ClearCategory() {
	m.clearedcategory = true
	m.clearedFields[product.FieldCategoryID] = struct{}{}
}

// CategoryCleared reports if the "category" edge to the Category entity was cleared.
func (m *ProductMutation) CategoryCleared() bool {
	return m.CategoryIDCleared() || m.clearedcategory
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *ProductMutation) CategoryIDs() (ids []uuid.UUID) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *ProductMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// AddReceiptItemIDs adds the "receipt_items" edge to the ReceiptLineItem entity by ids.
func (m *ProductMutation) AddReceiptItemIDs(ids ...uuid.UUID) {
	if m.receipt_items == nil {
		m.receipt_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.receipt_items[ids[i]] = struct{}{}
	}
}

// ClearReceiptItems clears the "receipt_items" edge to the ReceiptLineItem entity.
func (m *ProductMutation) ClearReceiptItems() {
	m.clearedreceipt_items = true
}

// ReceiptItemsCleared reports if the "receipt_items" edge to the ReceiptLineItem entity was cleared.
func (m *ProductMutation) ReceiptItemsCleared() bool {
	return m.clearedreceipt_items
}

// RemoveReceiptItemIDs removes the "receipt_items" edge to the ReceiptLineItem entity by IDs.
func (m *ProductMutation) RemoveReceiptItemIDs(ids ...uuid.UUID) {
	if m.removedreceipt_items == nil {
		m.removedreceipt_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.receipt_items, ids[i])
		m.removedreceipt_items[ids[i]] = struct{}{}
	}
}

// RemovedReceiptItems returns the removed IDs of the "receipt_items" edge to the ReceiptLineItem entity.
func (m *ProductMutation) RemovedReceiptItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedreceipt_items {
		ids = append(ids, id)
	}
	return
}

// ReceiptItemsIDs returns the "receipt_items" edge IDs in the mutation.
func (m *ProductMutation) ReceiptItemsIDs() (ids []uuid.UUID) {
	for id := range m.receipt_items {
		ids = append(ids, id)
	}
	return
}

// ResetReceiptItems resets all changes to the "receipt_items" edge.
func (m *ProductMutation) ResetReceiptItems() {
	m.receipt_items = nil
	m.clearedreceipt_items = false
	m.removedreceipt_items = nil
}

// AddInventoryItemIDs adds the "inventory_items" edge to the InventoryItem entity by ids.
func (m *ProductMutation) AddInventoryItemIDs(ids ...uuid.UUID) {
	if m.inventory_items == nil {
		m.inventory_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.inventory_items[ids[i]] = struct{}{}
	}
}

// ClearInventoryItems clears the "inventory_items" edge to the InventoryItem entity.
func (m *ProductMutation) ClearInventoryItems() {
	m.clearedinventory_items = true
}

// InventoryItemsCleared reports if the "inventory_items" edge to the InventoryItem entity was cleared.
func (m *ProductMutation) InventoryItemsCleared() bool {
	return m.clearedinventory_items
}

// RemoveInventoryItemIDs removes the "inventory_items" edge to the InventoryItem entity by IDs.
func (m *ProductMutation) RemoveInventoryItemIDs(ids ...uuid.UUID) {
	if m.removedinventory_items == nil {
		m.removedinventory_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.inventory_items, ids[i])
		m.removedinventory_items[ids[i]] = struct{}{}
	}
}

// RemovedInventoryItems returns the removed IDs of the "inventory_items" edge to the InventoryItem entity.
func (m *ProductMutation) RemovedInventoryItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedinventory_items {
		ids = append(ids, id)
	}
	return
}

// InventoryItemsIDs returns the "inventory_items" edge IDs in the mutation.
func (m *ProductMutation) InventoryItemsIDs() (ids []uuid.UUID) {
	for id := range m.inventory_items {
		ids = append(ids, id)
	}
	return
}

// ResetInventoryItems resets all changes to the "inventory_items" edge.
func (m *ProductMutation) ResetInventoryItems() {
	m.inventory_items = nil
	m.clearedinventory_items = false
	m.removedinventory_items = nil
}

// Where appends a list predicates to the ProductMutation builder.
func (m *ProductMutation) Where(ps ...predicate.Product) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Product, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Product).
func (m *ProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, product.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, product.FieldNormalizedName)
	}
	if m.brand != nil {
		fields = append(fields, product.FieldBrand)
	}
	if m.barcode != nil {
		fields = append(fields, product.FieldBarcode)
	}
	if m.category != nil {
		fields = append(fields, product.FieldCategoryID)
	}
	if m.is_active != nil {
		fields = append(fields, product.FieldIsActive)
	}
	if m.aliases != nil {
		fields = append(fields, product.FieldAliases)
	}
	if m.created_at != nil {
		fields = append(fields, product.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, product.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case product.FieldName:
		return m.Name()
	case product.FieldNormalizedName:
		return m.NormalizedName()
	case product.FieldBrand:
		return m.Brand()
	case product.FieldBarcode:
		return m.Barcode()
	case product.FieldCategoryID:
		return m.CategoryID()
	case product.FieldIsActive:
		return m.IsActive()
	case product.FieldAliases:
		return m.Aliases()
	case product.FieldCreatedAt:
		return m.CreatedAt()
	case product.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case product.FieldName:
		return m.OldName(ctx)
	case product.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case product.FieldBrand:
		return m.OldBrand(ctx)
	case product.FieldBarcode:
		return m.OldBarcode(ctx)
	case product.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case product.FieldIsActive:
		return m.OldIsActive(ctx)
	case product.FieldAliases:
		return m.OldAliases(ctx)
	case product.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case product.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Product field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case product.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case product.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case product.FieldBrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrand(v)
		return nil
	case product.FieldBarcode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBarcode(v)
		return nil
	case product.FieldCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case product.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case product.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case product.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case product.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Product numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(product.FieldBarcode) {
		fields = append(fields, product.FieldBarcode)
	}
	if m.FieldCleared(product.FieldCategoryID) {
		fields = append(fields, product.FieldCategoryID)
	}
	if m.FieldCleared(product.FieldAliases) {
		fields = append(fields, product.FieldAliases)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductMutation) ClearField(name string) error {
	switch name {
	case product.FieldBarcode:
		m.ClearBarcode()
		return nil
	case product.FieldCategoryID:
		m.ClearCategoryID()
		return nil
	case product.FieldAliases:
		m.ClearAliases()
		return nil
	}
	return fmt.Errorf("unknown Product nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductMutation) ResetField(name string) error {
	switch name {
	case product.FieldName:
		m.ResetName()
		return nil
	case product.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case product.FieldBrand:
		m.ResetBrand()
		return nil
	case product.FieldBarcode:
		m.ResetBarcode()
		return nil
	case product.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case product.FieldIsActive:
		m.ResetIsActive()
		return nil
	case product.FieldAliases:
		m.ResetAliases()
		return nil
	case product.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case product.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.category != nil {
		edges = append(edges, product.EdgeCategory)
	}
	if m.receipt_items != nil {
		edges = append(edges, product.EdgeReceiptItems)
	}
	if m.inventory_items != nil {
		edges = append(edges, product.EdgeInventoryItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case product.EdgeReceiptItems:
		ids := make([]ent.Value, 0, len(m.receipt_items))
		for id := range m.receipt_items {
			ids = append(ids, id)
		}
		return ids
	case product.EdgeInventoryItems:
		ids := make([]ent.Value, 0, len(m.inventory_items))
		for id := range m.inventory_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedreceipt_items != nil {
		edges = append(edges, product.EdgeReceiptItems)
	}
	if m.removedinventory_items != nil {
		edges = append(edges, product.EdgeInventoryItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeReceiptItems:
		ids := make([]ent.Value, 0, len(m.removedreceipt_items))
		for id := range m.removedreceipt_items {
			ids = append(ids, id)
		}
		return ids
	case product.EdgeInventoryItems:
		ids := make([]ent.Value, 0, len(m.removedinventory_items))
		for id := range m.removedinventory_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcategory {
		edges = append(edges, product.EdgeCategory)
	}
	if m.clearedreceipt_items {
		edges = append(edges, product.EdgeReceiptItems)
	}
	if m.clearedinventory_items {
		edges = append(edges, product.EdgeInventoryItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductMutation) EdgeCleared(name string) bool {
	switch name {
	case product.EdgeCategory:
		return m.clearedcategory
	case product.EdgeReceiptItems:
		return m.clearedreceipt_items
	case product.EdgeInventoryItems:
		return m.clearedinventory_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductMutation) ClearEdge(name string) error {
	switch name {
	case product.EdgeCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Product unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductMutation) ResetEdge(name string) error {
	switch name {
	case product.EdgeCategory:
		m.ResetCategory()
		return nil
	case product.EdgeReceiptItems:
		m.ResetReceiptItems()
		return nil
	case product.EdgeInventoryItems:
		m.ResetInventoryItems()
		return nil
	}
	return fmt.Errorf("unknown Product edge %s", name)
}

// ReceiptMutation represents an operation that mutates the Receipt nodes in the graph.
type ReceiptMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	store_name              *string
	purchased_at            *time.Time
	total                   *float64
	addtotal                *float64
	currency                *string
	raw_extraction          *json.RawMessage
	appendraw_extraction    json.RawMessage
	source_path             *string
	content_hash            *string
	status                  *string
	processing_notes        *string
	total_diff              *float64
	addtotal_diff           *float64
	cancelled               *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	line_items              map[uuid.UUID]struct{}
	removedline_items       map[uuid.UUID]struct{}
	clearedline_items       bool
	training_samples        map[uuid.UUID]struct{}
	removedtraining_samples map[uuid.UUID]struct{}
	clearedtraining_samples bool
	done                    bool
	oldValue                func(context.Context) (*Receipt, error)
	predicates              []predicate.Receipt
}

var _ ent.Mutation = (*ReceiptMutation)(nil)

// receiptOption allows management of the mutation configuration using functional options.
type receiptOption func(*ReceiptMutation)

// newReceiptMutation creates new mutation for the Receipt entity.
func newReceiptMutation(c config, op Op, opts ...receiptOption) *ReceiptMutation {
	m := &ReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptID sets the ID field of the mutation.
func withReceiptID(id uuid.UUID) receiptOption {
	return func(m *ReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *Receipt
		)
		m.oldValue = func(ctx context.Context) (*Receipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceipt sets the old Receipt of the mutation.
func withReceipt(node *Receipt) receiptOption {
	return func(m *ReceiptMutation) {
		m.oldValue = func(context.Context) (*Receipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receipt entities.
func (m *ReceiptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoreName sets the "store_name" field.
func (m *ReceiptMutation) SetStoreName(s string) {
	m.store_name = &s
}

// StoreName returns the value of the "store_name" field in the mutation.
func (m *ReceiptMutation) StoreName() (r string, exists bool) {
	v := m.store_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreName returns the old "store_name" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldStoreName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreName: %w", err)
	}
	return oldValue.StoreName, nil
}

// ClearStoreName clears the value of the "store_name" field.
func (m *ReceiptMutation) ClearStoreName() {
	m.store_name = nil
	m.clearedFields[receipt.FieldStoreName] = struct{}{}
}

// StoreNameCleared returns if the "store_name" field was cleared in this mutation.
func (m *ReceiptMutation) StoreNameCleared() bool {
	_, ok := m.clearedFields[receipt.FieldStoreName]
	return ok
}

// ResetStoreName resets all changes to the "store_name" field.
func (m *ReceiptMutation) ResetStoreName() {
	m.store_name = nil
	delete(m.clearedFields, receipt.FieldStoreName)
}

// SetPurchasedAt sets the "purchased_at" field.
func (m *ReceiptMutation) SetPurchasedAt(t time.Time) {
	m.purchased_at = &t
}

// PurchasedAt returns the value of the "purchased_at" field in the mutation.
func (m *ReceiptMutation) PurchasedAt() (r time.Time, exists bool) {
	v := m.purchased_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchasedAt returns the old "purchased_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldPurchasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchasedAt: %w", err)
	}
	return oldValue.PurchasedAt, nil
}

// ClearPurchasedAt clears the value of the "purchased_at" field.
func (m *ReceiptMutation) ClearPurchasedAt() {
	m.purchased_at = nil
	m.clearedFields[receipt.FieldPurchasedAt] = struct{}{}
}

// PurchasedAtCleared returns if the "purchased_at" field was cleared in this mutation.
func (m *ReceiptMutation) PurchasedAtCleared() bool {
	_, ok := m.clearedFields[receipt.FieldPurchasedAt]
	return ok
}

// ResetPurchasedAt resets all changes to the "purchased_at" field.
func (m *ReceiptMutation) ResetPurchasedAt() {
	m.purchased_at = nil
	delete(m.clearedFields, receipt.FieldPurchasedAt)
}

// SetTotal sets the "total" field.
func (m *ReceiptMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ReceiptMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ReceiptMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ReceiptMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotal clears the value of the "total" field.
func (m *ReceiptMutation) ClearTotal() {
	m.total = nil
	m.addtotal = nil
	m.clearedFields[receipt.FieldTotal] = struct{}{}
}

// TotalCleared returns if the "total" field was cleared in this mutation.
func (m *ReceiptMutation) TotalCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTotal]
	return ok
}

// ResetTotal resets all changes to the "total" field.
func (m *ReceiptMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
	delete(m.clearedFields, receipt.FieldTotal)
}

// SetCurrency sets the "currency" field.
func (m *ReceiptMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ReceiptMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ReceiptMutation) ResetCurrency() {
	m.currency = nil
}

// SetRawExtraction sets the "raw_extraction" field.
func (m *ReceiptMutation) SetRawExtraction(jm json.RawMessage) {
	m.raw_extraction = &jm
	m.appendraw_extraction = nil
}

// RawExtraction returns the value of the "raw_extraction" field in the mutation.
func (m *ReceiptMutation) RawExtraction() (r json.RawMessage, exists bool) {
	v := m.raw_extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldRawExtraction returns the old "raw_extraction" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldRawExtraction(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawExtraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawExtraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawExtraction: %w", err)
	}
	return oldValue.RawExtraction, nil
}

// AppendRawExtraction adds jm to the "raw_extraction" field.
func (m *ReceiptMutation) AppendRawExtraction(jm json.RawMessage) {
	m.appendraw_extraction = append(m.appendraw_extraction, jm...)
}

// AppendedRawExtraction returns the list of values that were appended to the "raw_extraction" field in this mutation.
func (m *ReceiptMutation) AppendedRawExtraction() (json.RawMessage, bool) {
	if len(m.appendraw_extraction) == 0 {
		return nil, false
	}
	return m.appendraw_extraction, true
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (m *ReceiptMutation) ClearRawExtraction() {
	m.raw_extraction = nil
	m.appendraw_extraction = nil
	m.clearedFields[receipt.FieldRawExtraction] = struct{}{}
}

// RawExtractionCleared returns if the "raw_extraction" field was cleared in this mutation.
func (m *ReceiptMutation) RawExtractionCleared() bool {
	_, ok := m.clearedFields[receipt.FieldRawExtraction]
	return ok
}

// ResetRawExtraction resets all changes to the "raw_extraction" field.
func (m *ReceiptMutation) ResetRawExtraction() {
	m.raw_extraction = nil
	m.appendraw_extraction = nil
	delete(m.clearedFields, receipt.FieldRawExtraction)
}

// SetSourcePath sets the "source_path" field.
func (m *ReceiptMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ReceiptMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ReceiptMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ReceiptMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ReceiptMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldContentHash(ctx context.Context) (v string, err error) {
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

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ReceiptMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetStatus sets the "status" field.
func (m *ReceiptMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReceiptMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ReceiptMutation) ResetStatus() {
	m.status = nil
}

// SetProcessingNotes sets the "processing_notes" field.
func (m *ReceiptMutation) SetProcessingNotes(s string) {
	m.processing_notes = &s
}

// ProcessingNotes returns the value of the "processing_notes" field in the mutation.
func (m *ReceiptMutation) ProcessingNotes() (r string, exists bool) {
	v := m.processing_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingNotes returns the old "processing_notes" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldProcessingNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingNotes: %w", err)
	}
	return oldValue.ProcessingNotes, nil
}

// ResetProcessingNotes resets all changes to the "processing_notes" field.
func (m *ReceiptMutation) ResetProcessingNotes() {
	m.processing_notes = nil
}

// SetTotalDiff sets the "total_diff" field.
func (m *ReceiptMutation) SetTotalDiff(f float64) {
	m.total_diff = &f
	m.addtotal_diff = nil
}

// TotalDiff returns the value of the "total_diff" field in the mutation.
func (m *ReceiptMutation) TotalDiff() (r float64, exists bool) {
	v := m.total_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDiff returns the old "total_diff" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotalDiff(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDiff: %w", err)
	}
	return oldValue.TotalDiff, nil
}

// AddTotalDiff adds f to the "total_diff" field.
func (m *ReceiptMutation) AddTotalDiff(f float64) {
	if m.addtotal_diff != nil {
		*m.addtotal_diff += f
	} else {
		m.addtotal_diff = &f
	}
}

// AddedTotalDiff returns the value that was added to the "total_diff" field in this mutation.
func (m *ReceiptMutation) AddedTotalDiff() (r float64, exists bool) {
	v := m.addtotal_diff
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDiff clears the value of the "total_diff" field.
func (m *ReceiptMutation) ClearTotalDiff() {
	m.total_diff = nil
	m.addtotal_diff = nil
	m.clearedFields[receipt.FieldTotalDiff] = struct{}{}
}

// TotalDiffCleared returns if the "total_diff" field was cleared in this mutation.
func (m *ReceiptMutation) TotalDiffCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTotalDiff]
	return ok
}

// ResetTotalDiff resets all changes to the "total_diff" field.
func (m *ReceiptMutation) ResetTotalDiff() {
	m.total_diff = nil
	m.addtotal_diff = nil
	delete(m.clearedFields, receipt.FieldTotalDiff)
}

// SetCancelled sets the "cancelled" field.
func (m *ReceiptMutation) SetCancelled(b bool) {
	m.cancelled = &b
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *ReceiptMutation) Cancelled() (r bool, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCancelled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *ReceiptMutation) ResetCancelled() {
	m.cancelled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReceiptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReceiptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ReceiptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddLineItemIDs adds the "line_items" edge to the ReceiptLineItem entity by ids.
func (m *ReceiptMutation) AddLineItemIDs(ids ...uuid.UUID) {
	if m.line_items == nil {
		m.line_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.line_items[ids[i]] = struct{}{}
	}
}

// ClearLineItems clears the "line_items" edge to the ReceiptLineItem entity.
func (m *ReceiptMutation) ClearLineItems() {
	m.clearedline_items = true
}

// LineItemsCleared reports if the "line_items" edge to the ReceiptLineItem entity was cleared.
func (m *ReceiptMutation) LineItemsCleared() bool {
	return m.clearedline_items
}

// RemoveLineItemIDs removes the "line_items" edge to the ReceiptLineItem entity by IDs.
func (m *ReceiptMutation) RemoveLineItemIDs(ids ...uuid.UUID) {
	if m.removedline_items == nil {
		m.removedline_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.line_items, ids[i])
		m.removedline_items[ids[i]] = struct{}{}
	}
}

// RemovedLineItems returns the removed IDs of the "line_items" edge to the ReceiptLineItem entity.
func (m *ReceiptMutation) RemovedLineItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedline_items {
		ids = append(ids, id)
	}
	return
}

// LineItemsIDs returns the "line_items" edge IDs in the mutation.
func (m *ReceiptMutation) LineItemsIDs() (ids []uuid.UUID) {
	for id := range m.line_items {
		ids = append(ids, id)
	}
	return
}

// ResetLineItems resets all changes to the "line_items" edge.
func (m *ReceiptMutation) ResetLineItems() {
	m.line_items = nil
	m.clearedline_items = false
	m.removedline_items = nil
}

// AddTrainingSampleIDs adds the "training_samples" edge to the TrainingSample entity by ids.
func (m *ReceiptMutation) AddTrainingSampleIDs(ids ...uuid.UUID) {
	if m.training_samples == nil {
		m.training_samples = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.training_samples[ids[i]] = struct{}{}
	}
}

// ClearTrainingSamples clears the "training_samples" edge to the TrainingSample entity.
func (m *ReceiptMutation) ClearTrainingSamples() {
	m.clearedtraining_samples = true
}

// TrainingSamplesCleared reports if the "training_samples" edge to the TrainingSample entity was cleared.
func (m *ReceiptMutation) TrainingSamplesCleared() bool {
	return m.clearedtraining_samples
}

// RemoveTrainingSampleIDs removes the "training_samples" edge to the TrainingSample entity by IDs.
func (m *ReceiptMutation) RemoveTrainingSampleIDs(ids ...uuid.UUID) {
	if m.removedtraining_samples == nil {
		m.removedtraining_samples = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.training_samples, ids[i])
		m.removedtraining_samples[ids[i]] = struct{}{}
	}
}

// RemovedTrainingSamples returns the removed IDs of the "training_samples" edge to the TrainingSample entity.
func (m *ReceiptMutation) RemovedTrainingSamplesIDs() (ids []uuid.UUID) {
	for id := range m.removedtraining_samples {
		ids = append(ids, id)
	}
	return
}

// TrainingSamplesIDs returns the "training_samples" edge IDs in the mutation.
func (m *ReceiptMutation) TrainingSamplesIDs() (ids []uuid.UUID) {
	for id := range m.training_samples {
		ids = append(ids, id)
	}
	return
}

// ResetTrainingSamples resets all changes to the "training_samples" edge.
func (m *ReceiptMutation) ResetTrainingSamples() {
	m.training_samples = nil
	m.clearedtraining_samples = false
	m.removedtraining_samples = nil
}

// Where appends a list predicates to the ReceiptMutation builder.
func (m *ReceiptMutation) Where(ps ...predicate.Receipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receipt).
func (m *ReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.store_name != nil {
		fields = append(fields, receipt.FieldStoreName)
	}
	if m.purchased_at != nil {
		fields = append(fields, receipt.FieldPurchasedAt)
	}
	if m.total != nil {
		fields = append(fields, receipt.FieldTotal)
	}
	if m.currency != nil {
		fields = append(fields, receipt.FieldCurrency)
	}
	if m.raw_extraction != nil {
		fields = append(fields, receipt.FieldRawExtraction)
	}
	if m.source_path != nil {
		fields = append(fields, receipt.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, receipt.FieldContentHash)
	}
	if m.status != nil {
		fields = append(fields, receipt.FieldStatus)
	}
	if m.processing_notes != nil {
		fields = append(fields, receipt.FieldProcessingNotes)
	}
	if m.total_diff != nil {
		fields = append(fields, receipt.FieldTotalDiff)
	}
	if m.cancelled != nil {
		fields = append(fields, receipt.FieldCancelled)
	}
	if m.created_at != nil {
		fields = append(fields, receipt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, receipt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldStoreName:
		return m.StoreName()
	case receipt.FieldPurchasedAt:
		return m.PurchasedAt()
	case receipt.FieldTotal:
		return m.Total()
	case receipt.FieldCurrency:
		return m.Currency()
	case receipt.FieldRawExtraction:
		return m.RawExtraction()
	case receipt.FieldSourcePath:
		return m.SourcePath()
	case receipt.FieldContentHash:
		return m.ContentHash()
	case receipt.FieldStatus:
		return m.Status()
	case receipt.FieldProcessingNotes:
		return m.ProcessingNotes()
	case receipt.FieldTotalDiff:
		return m.TotalDiff()
	case receipt.FieldCancelled:
		return m.Cancelled()
	case receipt.FieldCreatedAt:
		return m.CreatedAt()
	case receipt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receipt.FieldStoreName:
		return m.OldStoreName(ctx)
	case receipt.FieldPurchasedAt:
		return m.OldPurchasedAt(ctx)
	case receipt.FieldTotal:
		return m.OldTotal(ctx)
	case receipt.FieldCurrency:
		return m.OldCurrency(ctx)
	case receipt.FieldRawExtraction:
		return m.OldRawExtraction(ctx)
	case receipt.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case receipt.FieldContentHash:
		return m.OldContentHash(ctx)
	case receipt.FieldStatus:
		return m.OldStatus(ctx)
	case receipt.FieldProcessingNotes:
		return m.OldProcessingNotes(ctx)
	case receipt.FieldTotalDiff:
		return m.OldTotalDiff(ctx)
	case receipt.FieldCancelled:
		return m.OldCancelled(ctx)
	case receipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case receipt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Receipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldStoreName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreName(v)
		return nil
	case receipt.FieldPurchasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchasedAt(v)
		return nil
	case receipt.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case receipt.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case receipt.FieldRawExtraction:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawExtraction(v)
		return nil
	case receipt.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case receipt.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case receipt.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case receipt.FieldProcessingNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingNotes(v)
		return nil
	case receipt.FieldTotalDiff:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDiff(v)
		return nil
	case receipt.FieldCancelled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case receipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case receipt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, receipt.FieldTotal)
	}
	if m.addtotal_diff != nil {
		fields = append(fields, receipt.FieldTotalDiff)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldTotal:
		return m.AddedTotal()
	case receipt.FieldTotalDiff:
		return m.AddedTotalDiff()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case receipt.FieldTotalDiff:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDiff(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receipt.FieldStoreName) {
		fields = append(fields, receipt.FieldStoreName)
	}
	if m.FieldCleared(receipt.FieldPurchasedAt) {
		fields = append(fields, receipt.FieldPurchasedAt)
	}
	if m.FieldCleared(receipt.FieldTotal) {
		fields = append(fields, receipt.FieldTotal)
	}
	if m.FieldCleared(receipt.FieldRawExtraction) {
		fields = append(fields, receipt.FieldRawExtraction)
	}
	if m.FieldCleared(receipt.FieldTotalDiff) {
		fields = append(fields, receipt.FieldTotalDiff)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptMutation) ClearField(name string) error {
	switch name {
	case receipt.FieldStoreName:
		m.ClearStoreName()
		return nil
	case receipt.FieldPurchasedAt:
		m.ClearPurchasedAt()
		return nil
	case receipt.FieldTotal:
		m.ClearTotal()
		return nil
	case receipt.FieldRawExtraction:
		m.ClearRawExtraction()
		return nil
	case receipt.FieldTotalDiff:
		m.ClearTotalDiff()
		return nil
	}
	return fmt.Errorf("unknown Receipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptMutation) ResetField(name string) error {
	switch name {
	case receipt.FieldStoreName:
		m.ResetStoreName()
		return nil
	case receipt.FieldPurchasedAt:
		m.ResetPurchasedAt()
		return nil
	case receipt.FieldTotal:
		m.ResetTotal()
		return nil
	case receipt.FieldCurrency:
		m.ResetCurrency()
		return nil
	case receipt.FieldRawExtraction:
		m.ResetRawExtraction()
		return nil
	case receipt.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case receipt.FieldContentHash:
		m.ResetContentHash()
		return nil
	case receipt.FieldStatus:
		m.ResetStatus()
		return nil
	case receipt.FieldProcessingNotes:
		m.ResetProcessingNotes()
		return nil
	case receipt.FieldTotalDiff:
		m.ResetTotalDiff()
		return nil
	case receipt.FieldCancelled:
		m.ResetCancelled()
		return nil
	case receipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case receipt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.line_items != nil {
		edges = append(edges, receipt.EdgeLineItems)
	}
	if m.training_samples != nil {
		edges = append(edges, receipt.EdgeTrainingSamples)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.line_items))
		for id := range m.line_items {
			ids = append(ids, id)
		}
		return ids
	case receipt.EdgeTrainingSamples:
		ids := make([]ent.Value, 0, len(m.training_samples))
		for id := range m.training_samples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedline_items != nil {
		edges = append(edges, receipt.EdgeLineItems)
	}
	if m.removedtraining_samples != nil {
		edges = append(edges, receipt.EdgeTrainingSamples)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.removedline_items))
		for id := range m.removedline_items {
			ids = append(ids, id)
		}
		return ids
	case receipt.EdgeTrainingSamples:
		ids := make([]ent.Value, 0, len(m.removedtraining_samples))
		for id := range m.removedtraining_samples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedline_items {
		edges = append(edges, receipt.EdgeLineItems)
	}
	if m.clearedtraining_samples {
		edges = append(edges, receipt.EdgeTrainingSamples)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptMutation) EdgeCleared(name string) bool {
	switch name {
	case receipt.EdgeLineItems:
		return m.clearedline_items
	case receipt.EdgeTrainingSamples:
		return m.clearedtraining_samples
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Receipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptMutation) ResetEdge(name string) error {
	switch name {
	case receipt.EdgeLineItems:
		m.ResetLineItems()
		return nil
	case receipt.EdgeTrainingSamples:
		m.ResetTrainingSamples()
		return nil
	}
	return fmt.Errorf("unknown Receipt edge %s", name)
}

// ReceiptLineItemMutation represents an operation that mutates the ReceiptLineItem nodes in the graph.
type ReceiptLineItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	raw_text               *string
	product_name           *string
	quantity               *float64
	addquantity            *float64
	unit_price             *float64
	addunit_price          *float64
	line_total             *float64
	addline_total          *float64
	vat_code               *string
	meta                   *json.RawMessage
	appendmeta             json.RawMessage
	clearedFields          map[string]struct{}
	receipt                *uuid.UUID
	clearedreceipt         bool
	matched_product        *uuid.UUID
	clearedmatched_product bool
	done                   bool
	oldValue               func(context.Context) (*ReceiptLineItem, error)
	predicates             []predicate.ReceiptLineItem
}

var _ ent.Mutation = (*ReceiptLineItemMutation)(nil)

// receiptlineitemOption allows management of the mutation configuration using functional options.
type receiptlineitemOption func(*ReceiptLineItemMutation)

// newReceiptLineItemMutation creates new mutation for the ReceiptLineItem entity.
func newReceiptLineItemMutation(c config, op Op, opts ...receiptlineitemOption) *ReceiptLineItemMutation {
	m := &ReceiptLineItemMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptLineItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptLineItemID sets the ID field of the mutation.
func withReceiptLineItemID(id uuid.UUID) receiptlineitemOption {
	return func(m *ReceiptLineItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptLineItem
		)
		m.oldValue = func(ctx context.Context) (*ReceiptLineItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptLineItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptLineItem sets the old ReceiptLineItem of the mutation.
func withReceiptLineItem(node *ReceiptLineItem) receiptlineitemOption {
	return func(m *ReceiptLineItemMutation) {
		m.oldValue = func(context.Context) (*ReceiptLineItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptLineItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptLineItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptLineItem entities.
func (m *ReceiptLineItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptLineItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptLineItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptLineItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReceiptID sets the "receipt_id" field.
func (m *ReceiptLineItemMutation) SetReceiptID(u uuid.UUID) {
	m.receipt = &u
}

// ReceiptID returns the value of the "receipt_id" field in the mutation.
func (m *ReceiptLineItemMutation) ReceiptID() (r uuid.UUID, exists bool) {
	v := m.receipt
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptID returns the old "receipt_id" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldReceiptID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptID: %w", err)
	}
	return oldValue.ReceiptID, nil
}

// ResetReceiptID resets all changes to the "receipt_id" field.
func (m *ReceiptLineItemMutation) ResetReceiptID() {
	m.receipt = nil
}

// SetMatchedProductID sets the "matched_product_id" field.
func (m *ReceiptLineItemMutation) SetMatchedProductID(u uuid.UUID) {
	m.matched_product = &u
}

// MatchedProductID returns the value of the "matched_product_id" field in the mutation.
func (m *ReceiptLineItemMutation) MatchedProductID() (r uuid.UUID, exists bool) {
	v := m.matched_product
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedProductID returns the old "matched_product_id" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldMatchedProductID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedProductID: %w", err)
	}
	return oldValue.MatchedProductID, nil
}

// ClearMatchedProductID clears the value of the "matched_product_id" field.
func (m *ReceiptLineItemMutation) ClearMatchedProductID() {
	m.matched_product = nil
	m.clearedFields[receiptlineitem.FieldMatchedProductID] = struct{}{}
}

// MatchedProductIDCleared returns if the "matched_product_id" field was cleared in this mutation.
func (m *ReceiptLineItemMutation) MatchedProductIDCleared() bool {
	_, ok := m.clearedFields[receiptlineitem.FieldMatchedProductID]
	return ok
}

// ResetMatchedProductID resets all changes to the "matched_product_id" field.
func (m *ReceiptLineItemMutation) ResetMatchedProductID() {
	m.matched_product = nil
	delete(m.clearedFields, receiptlineitem.FieldMatchedProductID)
}

// SetRawText sets the "raw_text" field.
func (m *ReceiptLineItemMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ReceiptLineItemMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ReceiptLineItemMutation) ResetRawText() {
	m.raw_text = nil
}

// SetProductName sets the "product_name" field.
func (m *ReceiptLineItemMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *ReceiptLineItemMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldProductName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ResetProductName resets all changes to the "product_name" field.
func (m *ReceiptLineItemMutation) ResetProductName() {
	m.product_name = nil
}

// SetQuantity sets the "quantity" field.
func (m *ReceiptLineItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ReceiptLineItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *ReceiptLineItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ReceiptLineItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ReceiptLineItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *ReceiptLineItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *ReceiptLineItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *ReceiptLineItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *ReceiptLineItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *ReceiptLineItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetLineTotal sets the "line_total" field.
func (m *ReceiptLineItemMutation) SetLineTotal(f float64) {
	m.line_total = &f
	m.addline_total = nil
}

// LineTotal returns the value of the "line_total" field in the mutation.
func (m *ReceiptLineItemMutation) LineTotal() (r float64, exists bool) {
	v := m.line_total
	if v == nil {
		return
	}
	return *v, true
}

// OldLineTotal returns the old "line_total" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldLineTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineTotal: %w", err)
	}
	return oldValue.LineTotal, nil
}

// AddLineTotal adds f to the "line_total" field.
func (m *ReceiptLineItemMutation) AddLineTotal(f float64) {
	if m.addline_total != nil {
		*m.addline_total += f
	} else {
		m.addline_total = &f
	}
}

// AddedLineTotal returns the value that was added to the "line_total" field in this mutation.
func (m *ReceiptLineItemMutation) AddedLineTotal() (r float64, exists bool) {
	v := m.addline_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineTotal resets all changes to the "line_total" field.
func (m *ReceiptLineItemMutation) ResetLineTotal() {
	m.line_total = nil
	m.addline_total = nil
}

// SetVatCode sets the "vat_code" field.
func (m *ReceiptLineItemMutation) SetVatCode(s string) {
	m.vat_code = &s
}

// VatCode returns the value of the "vat_code" field in the mutation.
func (m *ReceiptLineItemMutation) VatCode() (r string, exists bool) {
	v := m.vat_code
	if v == nil {
		return
	}
	return *v, true
}

// OldVatCode returns the old "vat_code" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldVatCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatCode: %w", err)
	}
	return oldValue.VatCode, nil
}

// ClearVatCode clears the value of the "vat_code" field.
func (m *ReceiptLineItemMutation) ClearVatCode() {
	m.vat_code = nil
	m.clearedFields[receiptlineitem.FieldVatCode] = struct{}{}
}

// VatCodeCleared returns if the "vat_code" field was cleared in this mutation.
func (m *ReceiptLineItemMutation) VatCodeCleared() bool {
	_, ok := m.clearedFields[receiptlineitem.FieldVatCode]
	return ok
}

// ResetVatCode resets all changes to the "vat_code" field.
func (m *ReceiptLineItemMutation) ResetVatCode() {
	m.vat_code = nil
	delete(m.clearedFields, receiptlineitem.FieldVatCode)
}

// SetMeta sets the "meta" field.
func (m *ReceiptLineItemMutation) SetMeta(jm json.RawMessage) {
	m.meta = &jm
	m.appendmeta = nil
}

// Meta returns the value of the "meta" field in the mutation.
func (m *ReceiptLineItemMutation) Meta() (r json.RawMessage, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the ReceiptLineItem entity.
// If the ReceiptLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineItemMutation) OldMeta(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// AppendMeta adds jm to the "meta" field.
func (m *ReceiptLineItemMutation) AppendMeta(jm json.RawMessage) {
	m.appendmeta = append(m.appendmeta, jm...)
}

// AppendedMeta returns the list of values that were appended to the "meta" field in this mutation.
func (m *ReceiptLineItemMutation) AppendedMeta() (json.RawMessage, bool) {
	if len(m.appendmeta) == 0 {
		return nil, false
	}
	return m.appendmeta, true
}

// ClearMeta clears the value of the "meta" field.
func (m *ReceiptLineItemMutation) ClearMeta() {
	m.meta = nil
	m.appendmeta = nil
	m.clearedFields[receiptlineitem.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *ReceiptLineItemMutation) MetaCleared() bool {
	_, ok := m.clearedFields[receiptlineitem.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *ReceiptLineItemMutation) ResetMeta() {
	m.meta = nil
	m.appendmeta = nil
	delete(m.clearedFields, receiptlineitem.FieldMeta)
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *ReceiptLineItemMutation) ClearReceipt() {
	m.clearedreceipt = true
	m.clearedFields[receiptlineitem.FieldReceiptID] = struct{}{}
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *ReceiptLineItemMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *ReceiptLineItemMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *ReceiptLineItemMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// ClearMatchedProduct clears the "matched_product" edge to the Product entity.
func (m *ReceiptLineItemMutation) ClearMatchedProduct() {
	m.clearedmatched_product = true
	m.clearedFields[receiptlineitem.FieldMatchedProductID] = struct{}{}
}

// MatchedProductCleared reports if the "matched_product" edge to the Product entity was cleared.
func (m *ReceiptLineItemMutation) MatchedProductCleared() bool {
	return m.MatchedProductIDCleared() || m.clearedmatched_product
}

// MatchedProductIDs returns the "matched_product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatchedProductID instead. It exists only for internal usage by the builders.
func (m *ReceiptLineItemMutation) MatchedProductIDs() (ids []uuid.UUID) {
	if id := m.matched_product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatchedProduct resets all changes to the "matched_product" edge.
func (m *ReceiptLineItemMutation) ResetMatchedProduct() {
	m.matched_product = nil
	m.clearedmatched_product = false
}

// Where appends a list predicates to the ReceiptLineItemMutation builder.
func (m *ReceiptLineItemMutation) Where(ps ...predicate.ReceiptLineItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptLineItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptLineItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptLineItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptLineItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptLineItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptLineItem).
func (m *ReceiptLineItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptLineItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.receipt != nil {
		fields = append(fields, receiptlineitem.FieldReceiptID)
	}
	if m.matched_product != nil {
		fields = append(fields, receiptlineitem.FieldMatchedProductID)
	}
	if m.raw_text != nil {
		fields = append(fields, receiptlineitem.FieldRawText)
	}
	if m.product_name != nil {
		fields = append(fields, receiptlineitem.FieldProductName)
	}
	if m.quantity != nil {
		fields = append(fields, receiptlineitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, receiptlineitem.FieldUnitPrice)
	}
	if m.line_total != nil {
		fields = append(fields, receiptlineitem.FieldLineTotal)
	}
	if m.vat_code != nil {
		fields = append(fields, receiptlineitem.FieldVatCode)
	}
	if m.meta != nil {
		fields = append(fields, receiptlineitem.FieldMeta)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptLineItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptlineitem.FieldReceiptID:
		return m.ReceiptID()
	case receiptlineitem.FieldMatchedProductID:
		return m.MatchedProductID()
	case receiptlineitem.FieldRawText:
		return m.RawText()
	case receiptlineitem.FieldProductName:
		return m.ProductName()
	case receiptlineitem.FieldQuantity:
		return m.Quantity()
	case receiptlineitem.FieldUnitPrice:
		return m.UnitPrice()
	case receiptlineitem.FieldLineTotal:
		return m.LineTotal()
	case receiptlineitem.FieldVatCode:
		return m.VatCode()
	case receiptlineitem.FieldMeta:
		return m.Meta()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptLineItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptlineitem.FieldReceiptID:
		return m.OldReceiptID(ctx)
	case receiptlineitem.FieldMatchedProductID:
		return m.OldMatchedProductID(ctx)
	case receiptlineitem.FieldRawText:
		return m.OldRawText(ctx)
	case receiptlineitem.FieldProductName:
		return m.OldProductName(ctx)
	case receiptlineitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case receiptlineitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case receiptlineitem.FieldLineTotal:
		return m.OldLineTotal(ctx)
	case receiptlineitem.FieldVatCode:
		return m.OldVatCode(ctx)
	case receiptlineitem.FieldMeta:
		return m.OldMeta(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptLineItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptLineItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptlineitem.FieldReceiptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptID(v)
		return nil
	case receiptlineitem.FieldMatchedProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedProductID(v)
		return nil
	case receiptlineitem.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case receiptlineitem.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case receiptlineitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case receiptlineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case receiptlineitem.FieldLineTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineTotal(v)
		return nil
	case receiptlineitem.FieldVatCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatCode(v)
		return nil
	case receiptlineitem.FieldMeta:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptLineItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptLineItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, receiptlineitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, receiptlineitem.FieldUnitPrice)
	}
	if m.addline_total != nil {
		fields = append(fields, receiptlineitem.FieldLineTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptLineItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receiptlineitem.FieldQuantity:
		return m.AddedQuantity()
	case receiptlineitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case receiptlineitem.FieldLineTotal:
		return m.AddedLineTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptLineItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receiptlineitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case receiptlineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case receiptlineitem.FieldLineTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineTotal(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptLineItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptLineItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receiptlineitem.FieldMatchedProductID) {
		fields = append(fields, receiptlineitem.FieldMatchedProductID)
	}
	if m.FieldCleared(receiptlineitem.FieldVatCode) {
		fields = append(fields, receiptlineitem.FieldVatCode)
	}
	if m.FieldCleared(receiptlineitem.FieldMeta) {
		fields = append(fields, receiptlineitem.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptLineItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptLineItemMutation) ClearField(name string) error {
	switch name {
	case receiptlineitem.FieldMatchedProductID:
		m.ClearMatchedProductID()
		return nil
	case receiptlineitem.FieldVatCode:
		m.ClearVatCode()
		return nil
	case receiptlineitem.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLineItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptLineItemMutation) ResetField(name string) error {
	switch name {
	case receiptlineitem.FieldReceiptID:
		m.ResetReceiptID()
		return nil
	case receiptlineitem.FieldMatchedProductID:
		m.ResetMatchedProductID()
		return nil
	case receiptlineitem.FieldRawText:
		m.ResetRawText()
		return nil
	case receiptlineitem.FieldProductName:
		m.ResetProductName()
		return nil
	case receiptlineitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case receiptlineitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case receiptlineitem.FieldLineTotal:
		m.ResetLineTotal()
		return nil
	case receiptlineitem.FieldVatCode:
		m.ResetVatCode()
		return nil
	case receiptlineitem.FieldMeta:
		m.ResetMeta()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLineItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptLineItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.receipt != nil {
		edges = append(edges, receiptlineitem.EdgeReceipt)
	}
	if m.matched_product != nil {
		edges = append(edges, receiptlineitem.EdgeMatchedProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptLineItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptlineitem.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	case receiptlineitem.EdgeMatchedProduct:
		if id := m.matched_product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptLineItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptLineItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptLineItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreceipt {
		edges = append(edges, receiptlineitem.EdgeReceipt)
	}
	if m.clearedmatched_product {
		edges = append(edges, receiptlineitem.EdgeMatchedProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptLineItemMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptlineitem.EdgeReceipt:
		return m.clearedreceipt
	case receiptlineitem.EdgeMatchedProduct:
		return m.clearedmatched_product
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptLineItemMutation) ClearEdge(name string) error {
	switch name {
	case receiptlineitem.EdgeReceipt:
		m.ClearReceipt()
		return nil
	case receiptlineitem.EdgeMatchedProduct:
		m.ClearMatchedProduct()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLineItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptLineItemMutation) ResetEdge(name string) error {
	switch name {
	case receiptlineitem.EdgeReceipt:
		m.ResetReceipt()
		return nil
	case receiptlineitem.EdgeMatchedProduct:
		m.ResetMatchedProduct()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLineItem edge %s", name)
}

// TrainingSampleMutation represents an operation that mutates the TrainingSample nodes in the graph.
type TrainingSampleMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	weak_text      *string
	strong_text    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	receipt        *uuid.UUID
	clearedreceipt bool
	done           bool
	oldValue       func(context.Context) (*TrainingSample, error)
	predicates     []predicate.TrainingSample
}

var _ ent.Mutation = (*TrainingSampleMutation)(nil)

// trainingsampleOption allows management of the mutation configuration using functional options.
type trainingsampleOption func(*TrainingSampleMutation)

// newTrainingSampleMutation creates new mutation for the TrainingSample entity.
func newTrainingSampleMutation(c config, op Op, opts ...trainingsampleOption) *TrainingSampleMutation {
	m := &TrainingSampleMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingSample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingSampleID sets the ID field of the mutation.
func withTrainingSampleID(id uuid.UUID) trainingsampleOption {
	return func(m *TrainingSampleMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingSample
		)
		m.oldValue = func(ctx context.Context) (*TrainingSample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingSample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingSample sets the old TrainingSample of the mutation.
func withTrainingSample(node *TrainingSample) trainingsampleOption {
	return func(m *TrainingSampleMutation) {
		m.oldValue = func(context.Context) (*TrainingSample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingSampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingSampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrainingSample entities.
func (m *TrainingSampleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingSampleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingSampleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingSample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReceiptID sets the "receipt_id" field.
func (m *TrainingSampleMutation) SetReceiptID(u uuid.UUID) {
	m.receipt = &u
}

// ReceiptID returns the value of the "receipt_id" field in the mutation.
func (m *TrainingSampleMutation) ReceiptID() (r uuid.UUID, exists bool) {
	v := m.receipt
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptID returns the old "receipt_id" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldReceiptID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptID: %w", err)
	}
	return oldValue.ReceiptID, nil
}

// ResetReceiptID resets all changes to the "receipt_id" field.
func (m *TrainingSampleMutation) ResetReceiptID() {
	m.receipt = nil
}

// SetWeakText sets the "weak_text" field.
func (m *TrainingSampleMutation) SetWeakText(s string) {
	m.weak_text = &s
}

// WeakText returns the value of the "weak_text" field in the mutation.
func (m *TrainingSampleMutation) WeakText() (r string, exists bool) {
	v := m.weak_text
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakText returns the old "weak_text" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldWeakText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakText: %w", err)
	}
	return oldValue.WeakText, nil
}

// ResetWeakText resets all changes to the "weak_text" field.
func (m *TrainingSampleMutation) ResetWeakText() {
	m.weak_text = nil
}

// SetStrongText sets the "strong_text" field.
func (m *TrainingSampleMutation) SetStrongText(s string) {
	m.strong_text = &s
}

// StrongText returns the value of the "strong_text" field in the mutation.
func (m *TrainingSampleMutation) StrongText() (r string, exists bool) {
	v := m.strong_text
	if v == nil {
		return
	}
	return *v, true
}

// OldStrongText returns the old "strong_text" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldStrongText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrongText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrongText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrongText: %w", err)
	}
	return oldValue.StrongText, nil
}

// ResetStrongText resets all changes to the "strong_text" field.
func (m *TrainingSampleMutation) ResetStrongText() {
	m.strong_text = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrainingSampleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrainingSampleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TrainingSampleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *TrainingSampleMutation) ClearReceipt() {
	m.clearedreceipt = true
	m.clearedFields[trainingsample.FieldReceiptID] = struct{}{}
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *TrainingSampleMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *TrainingSampleMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *TrainingSampleMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the TrainingSampleMutation builder.
func (m *TrainingSampleMutation) Where(ps ...predicate.TrainingSample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingSampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingSampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingSample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingSampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingSampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingSample).
func (m *TrainingSampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingSampleMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.receipt != nil {
		fields = append(fields, trainingsample.FieldReceiptID)
	}
	if m.weak_text != nil {
		fields = append(fields, trainingsample.FieldWeakText)
	}
	if m.strong_text != nil {
		fields = append(fields, trainingsample.FieldStrongText)
	}
	if m.created_at != nil {
		fields = append(fields, trainingsample.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingSampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingsample.FieldReceiptID:
		return m.ReceiptID()
	case trainingsample.FieldWeakText:
		return m.WeakText()
	case trainingsample.FieldStrongText:
		return m.StrongText()
	case trainingsample.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingSampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingsample.FieldReceiptID:
		return m.OldReceiptID(ctx)
	case trainingsample.FieldWeakText:
		return m.OldWeakText(ctx)
	case trainingsample.FieldStrongText:
		return m.OldStrongText(ctx)
	case trainingsample.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingSample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingSampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingsample.FieldReceiptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptID(v)
		return nil
	case trainingsample.FieldWeakText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakText(v)
		return nil
	case trainingsample.FieldStrongText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrongText(v)
		return nil
	case trainingsample.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingSample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingSampleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingSampleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingSampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrainingSample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingSampleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingSampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingSampleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrainingSample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingSampleMutation) ResetField(name string) error {
	switch name {
	case trainingsample.FieldReceiptID:
		m.ResetReceiptID()
		return nil
	case trainingsample.FieldWeakText:
		m.ResetWeakText()
		return nil
	case trainingsample.FieldStrongText:
		m.ResetStrongText()
		return nil
	case trainingsample.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrainingSample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingSampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipt != nil {
		edges = append(edges, trainingsample.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingSampleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trainingsample.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingSampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingSampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingSampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipt {
		edges = append(edges, trainingsample.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingSampleMutation) EdgeCleared(name string) bool {
	switch name {
	case trainingsample.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingSampleMutation) ClearEdge(name string) error {
	switch name {
	case trainingsample.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown TrainingSample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingSampleMutation) ResetEdge(name string) error {
	switch name {
	case trainingsample.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown TrainingSample edge %s", name)
}
