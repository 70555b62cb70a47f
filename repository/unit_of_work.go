package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork exposes the repositories bound to one transaction.
type UnitOfWork interface {
	Users() UserRepository
	Customers() CustomerRepository
	Employees() EmployeeRepository
	Vendors() VendorRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Orders() OrderRepository
	OrderDetails() OrderDetailRepository
	ProductVendors() ProductVendorRepository
}

// Transactor runs fn inside a unit of work. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// GormTransactor implements Transactor on top of gorm transactions.
type GormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a new GormTransactor.
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(uow UnitOfWork) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormUnitOfWork(tx))
	})
}

type gormUnitOfWork struct {
	tx *gorm.DB
}

// NewGormUnitOfWork binds every repository to tx.
func NewGormUnitOfWork(tx *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{tx: tx}
}

func (u *gormUnitOfWork) Users() UserRepository { return NewGormUserRepository(u.tx) }
func (u *gormUnitOfWork) Customers() CustomerRepository { return NewGormCustomerRepository(u.tx) }
func (u *gormUnitOfWork) Employees() EmployeeRepository { return NewGormEmployeeRepository(u.tx) }
func (u *gormUnitOfWork) Vendors() VendorRepository { return NewGormVendorRepository(u.tx) }
func (u *gormUnitOfWork) Categories() CategoryRepository { return NewGormCategoryRepository(u.tx) }
func (u *gormUnitOfWork) Products() ProductRepository { return NewGormProductRepository(u.tx) }
func (u *gormUnitOfWork) Orders() OrderRepository { return NewGormOrderRepository(u.tx) }
func (u *gormUnitOfWork) OrderDetails() OrderDetailRepository { return NewGormOrderDetailRepository(u.tx) }
func (u *gormUnitOfWork) ProductVendors() ProductVendorRepository {
	return NewGormProductVendorRepository(u.tx)
}
