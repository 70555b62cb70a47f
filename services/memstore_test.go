package services

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/repository"
)

// memTable is an in-memory table keyed by the record's ID field.
type memTable[T any] struct {
	rows map[uint]T
	next uint
}

func newMemTable[T any]() *memTable[T] {
	return &memTable[T]{rows: make(map[uint]T), next: 1}
}

func (t *memTable[T]) clone() *memTable[T] {
	c := &memTable[T]{rows: make(map[uint]T, len(t.rows)), next: t.next}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

func recordID(v any) uint {
	return uint(reflect.ValueOf(v).Elem().FieldByName("ID").Uint())
}

func setRecordID(v any, id uint) {
	reflect.ValueOf(v).Elem().FieldByName("ID").SetUint(uint64(id))
}

// matches compares filter values against the record's JSON keys, which are
// the column names for every reference column.
func matches(record any, filter repository.Filter) bool {
	if len(filter) == 0 {
		return true
	}
	raw, _ := json.Marshal(record)
	fields := map[string]interface{}{}
	_ = json.Unmarshal(raw, &fields)
	for k, want := range filter {
		if fmt.Sprint(fields[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

type memRepo[T any] struct {
	table     *memTable[T]
	afterRead func(*T)
}

func (r *memRepo[T]) read(rec T) T {
	if r.afterRead != nil {
		r.afterRead(&rec)
	}
	return rec
}

func (r *memRepo[T]) Create(ctx context.Context, record *T) error {
	id := recordID(record)
	if id == 0 {
		id = r.table.next
		r.table.next++
		setRecordID(record, id)
	}
	if _, dup := r.table.rows[id]; dup {
		return repository.ErrDuplicateKey
	}
	r.table.rows[id] = *record
	return nil
}

func (r *memRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	rec, ok := r.table.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	rec = r.read(rec)
	return &rec, nil
}

func (r *memRepo[T]) FindAll(ctx context.Context, filter repository.Filter) ([]T, error) {
	ids := make([]uint, 0, len(r.table.rows))
	for id := range r.table.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0)
	for _, id := range ids {
		rec := r.table.rows[id]
		if matches(&rec, filter) {
			out = append(out, r.read(rec))
		}
	}
	return out, nil
}

func (r *memRepo[T]) Update(ctx context.Context, record *T) error {
	id := recordID(record)
	if _, ok := r.table.rows[id]; !ok {
		return repository.ErrNotFound
	}
	r.table.rows[id] = *record
	return nil
}

func (r *memRepo[T]) Delete(ctx context.Context, id uint) error {
	if _, ok := r.table.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.table.rows, id)
	return nil
}

func (r *memRepo[T]) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.table.rows[id]
	return ok, nil
}

func (r *memRepo[T]) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	var n int64
	for _, rec := range r.table.rows {
		if matches(&rec, filter) {
			n++
		}
	}
	return n, nil
}

type memUserRepo struct {
	*memRepo[models.User]
}

func (r memUserRepo) FindConflicting(ctx context.Context, username, email string, excludeID uint) ([]models.User, error) {
	var out []models.User
	for id, u := range r.table.rows {
		if id != excludeID && (u.Username == username || u.Email == email) {
			out = append(out, u)
		}
	}
	return out, nil
}

type link struct{ productID, vendorID uint }

type memLinkRepo struct {
	s *memState
}

func (r memLinkRepo) Add(ctx context.Context, productID, vendorID uint) error {
	r.s.links[link{productID, vendorID}] = struct{}{}
	return nil
}

func (r memLinkRepo) Remove(ctx context.Context, productID, vendorID uint) error {
	k := link{productID, vendorID}
	if _, ok := r.s.links[k]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.links, k)
	return nil
}

func (r memLinkRepo) RemoveByProduct(ctx context.Context, productID uint) (int64, error) {
	var n int64
	for k := range r.s.links {
		if k.productID == productID {
			delete(r.s.links, k)
			n++
		}
	}
	return n, nil
}

func (r memLinkRepo) RemoveByVendor(ctx context.Context, vendorID uint) (int64, error) {
	var n int64
	for k := range r.s.links {
		if k.vendorID == vendorID {
			delete(r.s.links, k)
			n++
		}
	}
	return n, nil
}

func (r memLinkRepo) VendorsOf(ctx context.Context, productID uint) ([]models.Vendor, error) {
	out := make([]models.Vendor, 0)
	for k := range r.s.links {
		if k.productID == productID {
			out = append(out, r.s.vendors.rows[k.vendorID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memLinkRepo) ProductsOf(ctx context.Context, vendorID uint) ([]models.Product, error) {
	out := make([]models.Product, 0)
	for k := range r.s.links {
		if k.vendorID == vendorID {
			out = append(out, r.s.products.rows[k.productID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memState struct {
	users        *memTable[models.User]
	customers    *memTable[models.Customer]
	employees    *memTable[models.Employee]
	vendors      *memTable[models.Vendor]
	categories   *memTable[models.Category]
	products     *memTable[models.Product]
	orders       *memTable[models.Order]
	orderDetails *memTable[models.OrderDetail]
	links        map[link]struct{}
}

func newMemState() *memState {
	return &memState{
		users:        newMemTable[models.User](),
		customers:    newMemTable[models.Customer](),
		employees:    newMemTable[models.Employee](),
		vendors:      newMemTable[models.Vendor](),
		categories:   newMemTable[models.Category](),
		products:     newMemTable[models.Product](),
		orders:       newMemTable[models.Order](),
		orderDetails: newMemTable[models.OrderDetail](),
		links:        make(map[link]struct{}),
	}
}

func (s *memState) clone() *memState {
	c := &memState{
		users:        s.users.clone(),
		customers:    s.customers.clone(),
		employees:    s.employees.clone(),
		vendors:      s.vendors.clone(),
		categories:   s.categories.clone(),
		products:     s.products.clone(),
		orders:       s.orders.clone(),
		orderDetails: s.orderDetails.clone(),
		links:        make(map[link]struct{}, len(s.links)),
	}
	for k := range s.links {
		c.links[k] = struct{}{}
	}
	return c
}

type memUnitOfWork struct {
	s *memState
}

func (u *memUnitOfWork) Users() repository.UserRepository {
	return memUserRepo{&memRepo[models.User]{table: u.s.users}}
}

func (u *memUnitOfWork) Customers() repository.CustomerRepository {
	return &memRepo[models.Customer]{table: u.s.customers}
}

func (u *memUnitOfWork) Employees() repository.EmployeeRepository {
	return &memRepo[models.Employee]{table: u.s.employees}
}

func (u *memUnitOfWork) Vendors() repository.VendorRepository {
	return &memRepo[models.Vendor]{table: u.s.vendors}
}

func (u *memUnitOfWork) Categories() repository.CategoryRepository {
	return &memRepo[models.Category]{table: u.s.categories}
}

func (u *memUnitOfWork) Products() repository.ProductRepository {
	return &memRepo[models.Product]{table: u.s.products}
}

func (u *memUnitOfWork) Orders() repository.OrderRepository {
	return &memRepo[models.Order]{table: u.s.orders}
}

func (u *memUnitOfWork) OrderDetails() repository.OrderDetailRepository {
	products := u.s.products
	return &memRepo[models.OrderDetail]{
		table: u.s.orderDetails,
		afterRead: func(d *models.OrderDetail) {
			if p, ok := products.rows[d.ProductID]; ok {
				d.ProductName = p.Name
			}
		},
	}
}

func (u *memUnitOfWork) ProductVendors() repository.ProductVendorRepository {
	return memLinkRepo{s: u.s}
}

// memTransactor runs every unit of work against a copy of the state and
// swaps it in only when fn succeeds.
type memTransactor struct {
	mu        sync.Mutex
	state     *memState
	commits   int
	rollbacks int
	failWith  error
}

func newMemTransactor() *memTransactor {
	return &memTransactor{state: newMemState()}
}

func (m *memTransactor) WithinTransaction(ctx context.Context, fn func(uow repository.UnitOfWork) error) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}

	work := m.state.clone()
	defer func() {
		if r := recover(); r != nil {
			m.rollbacks++
			panic(r)
		}
	}()
	if err := fn(&memUnitOfWork{s: work}); err != nil {
		m.rollbacks++
		return err
	}
	m.state = work
	m.commits++
	return nil
}
