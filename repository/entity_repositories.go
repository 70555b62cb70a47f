package repository

import (
	"context"

	"github.com/ramses2099/storeapiv2/models"
	"gorm.io/gorm"
)

// UserRepository defines data-access operations for users.
type UserRepository interface {
	Repository[models.User]
	// FindConflicting returns the users, other than excludeID, that already
	// hold username or email.
	FindConflicting(ctx context.Context, username, email string, excludeID uint) ([]models.User, error)
}

type CustomerRepository interface {
	Repository[models.Customer]
}

type EmployeeRepository interface {
	Repository[models.Employee]
}

type VendorRepository interface {
	Repository[models.Vendor]
}

type CategoryRepository interface {
	Repository[models.Category]
}

type ProductRepository interface {
	Repository[models.Product]
}

type OrderRepository interface {
	Repository[models.Order]
}

// OrderDetailRepository reads order lines with their product so that the
// product name can be serialized next to product_id.
type OrderDetailRepository interface {
	Repository[models.OrderDetail]
}

type gormUserRepository struct {
	*GormRepository[models.User]
}

// NewGormUserRepository creates a UserRepository backed by GORM.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{GormRepository: NewGormRepository[models.User](db)}
}

func (r *gormUserRepository) FindConflicting(ctx context.Context, username, email string, excludeID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("(username = ? OR email = ?) AND id <> ?", username, email, excludeID).
		Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

func NewGormCustomerRepository(db *gorm.DB) CustomerRepository {
	return NewGormRepository[models.Customer](db)
}

func NewGormEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return NewGormRepository[models.Employee](db)
}

func NewGormVendorRepository(db *gorm.DB) VendorRepository {
	return NewGormRepository[models.Vendor](db)
}

func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return NewGormRepository[models.Category](db)
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return NewGormRepository[models.Product](db)
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return NewGormRepository[models.Order](db)
}

func NewGormOrderDetailRepository(db *gorm.DB) OrderDetailRepository {
	return NewGormRepository[models.OrderDetail](db, "Product")
}
