package repository

import (
	"context"

	"github.com/ramses2099/storeapiv2/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductVendorRepository manages the product/vendor join table.
type ProductVendorRepository interface {
	// Add links the pair. Linking an already linked pair is a no-op.
	Add(ctx context.Context, productID, vendorID uint) error
	// Remove unlinks the pair or returns ErrNotFound.
	Remove(ctx context.Context, productID, vendorID uint) error
	RemoveByProduct(ctx context.Context, productID uint) (int64, error)
	RemoveByVendor(ctx context.Context, vendorID uint) (int64, error)
	VendorsOf(ctx context.Context, productID uint) ([]models.Vendor, error)
	ProductsOf(ctx context.Context, vendorID uint) ([]models.Product, error)
}

// GormProductVendorRepository implements ProductVendorRepository using GORM.
type GormProductVendorRepository struct {
	db *gorm.DB
}

// NewGormProductVendorRepository creates a new GormProductVendorRepository.
func NewGormProductVendorRepository(db *gorm.DB) ProductVendorRepository {
	return &GormProductVendorRepository{db: db}
}

func (r *GormProductVendorRepository) Add(ctx context.Context, productID, vendorID uint) error {
	link := &models.ProductVendor{ProductID: productID, VendorID: vendorID}
	return translateError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(link).Error)
}

func (r *GormProductVendorRepository) Remove(ctx context.Context, productID, vendorID uint) error {
	result := r.db.WithContext(ctx).
		Where("product_id = ? AND vendor_id = ?", productID, vendorID).
		Delete(&models.ProductVendor{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProductVendorRepository) RemoveByProduct(ctx context.Context, productID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductVendor{})
	return result.RowsAffected, translateError(result.Error)
}

func (r *GormProductVendorRepository) RemoveByVendor(ctx context.Context, vendorID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).Delete(&models.ProductVendor{})
	return result.RowsAffected, translateError(result.Error)
}

func (r *GormProductVendorRepository) VendorsOf(ctx context.Context, productID uint) ([]models.Vendor, error) {
	vendors := make([]models.Vendor, 0)
	if err := r.db.WithContext(ctx).
		Joins("JOIN products_vendors ON products_vendors.vendor_id = vendors.id").
		Where("products_vendors.product_id = ?", productID).
		Order("vendors.id").
		Find(&vendors).Error; err != nil {
		return nil, translateError(err)
	}
	return vendors, nil
}

func (r *GormProductVendorRepository) ProductsOf(ctx context.Context, vendorID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).
		Joins("JOIN products_vendors ON products_vendors.product_id = products.id").
		Where("products_vendors.vendor_id = ?", vendorID).
		Order("products.id").
		Find(&products).Error; err != nil {
		return nil, translateError(err)
	}
	return products, nil
}
