package services

import (
	"context"
	"errors"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

// ProductService defines product business logic, including the product side
// of the product/vendor association.
type ProductService interface {
	CreateProduct(ctx context.Context, req *models.ProductCreate) (*models.Product, *ServiceError)
	GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError)
	ListProducts(ctx context.Context, filter repository.Filter) ([]models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id uint, req *models.ProductUpdate) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, id uint) *ServiceError

	AddVendor(ctx context.Context, productID, vendorID uint) (*models.ProductVendor, *ServiceError)
	RemoveVendor(ctx context.Context, productID, vendorID uint) *ServiceError
	ListVendors(ctx context.Context, productID uint) ([]models.Vendor, *ServiceError)
}

type productService struct {
	base
}

func NewProductService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) ProductService {
	return &productService{base: newBase(tx, publisher, topicArn, logger)}
}

func productsOf(uow repository.UnitOfWork) repository.Repository[models.Product] {
	return uow.Products()
}

func (s *productService) CreateProduct(ctx context.Context, req *models.ProductCreate) (*models.Product, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	product := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		PricePerUnit:   *req.PricePerUnit,
		QuantityOnHand: *req.QuantityOnHand,
		CategoryID:     req.CategoryID,
		UserID:         req.UserID,
	}
	svcErr := s.run(ctx, entityProduct, func(uow repository.UnitOfWork) error {
		if err := s.checkRefs(ctx, uow, product); err != nil {
			return err
		}
		s.stampCreated(&product.Audit)
		return uow.Products().Create(ctx, product)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Product created", zap.Uint("id", product.ID), zap.String("name", product.Name))
	s.publish(ctx, entityProduct, "created", product.ID)
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	return getRecord(ctx, &s.base, entityProduct, id, productsOf)
}

func (s *productService) ListProducts(ctx context.Context, filter repository.Filter) ([]models.Product, *ServiceError) {
	return listRecords(ctx, &s.base, entityProduct, filter, productsOf)
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, req *models.ProductUpdate) (*models.Product, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	var product *models.Product
	svcErr := s.run(ctx, entityProduct, func(uow repository.UnitOfWork) error {
		var err error
		if product, err = uow.Products().FindByID(ctx, id); err != nil {
			return err
		}
		product.Apply(req)
		if req.CategoryID != nil || req.UserID != nil {
			if err := s.checkRefs(ctx, uow, product); err != nil {
				return err
			}
		}
		s.stampUpdated(&product.Audit)
		return uow.Products().Update(ctx, product)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityProduct, "updated", product.ID)
	return product, nil
}

// DeleteProduct removes the product and its vendor links. Products that
// appear on order lines are kept.
func (s *productService) DeleteProduct(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityProduct, id, productsOf, func(uow repository.UnitOfWork) error {
		if err := rejectIfReferenced(ctx, entityProduct, id,
			dependent{"order details", "product_id", uow.OrderDetails()},
		); err != nil {
			return err
		}
		_, err := uow.ProductVendors().RemoveByProduct(ctx, id)
		return err
	})
}

// AddVendor links the vendor to the product. Linking an existing pair again
// succeeds without creating a second row.
func (s *productService) AddVendor(ctx context.Context, productID, vendorID uint) (*models.ProductVendor, *ServiceError) {
	svcErr := s.run(ctx, entityProductVendor, func(uow repository.UnitOfWork) error {
		if err := requireBothSides(ctx, uow, productID, vendorID); err != nil {
			return err
		}
		return uow.ProductVendors().Add(ctx, productID, vendorID)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Vendor linked to product", zap.Uint("product_id", productID), zap.Uint("vendor_id", vendorID))
	s.publish(ctx, entityProductVendor, "created", productID)
	return &models.ProductVendor{ProductID: productID, VendorID: vendorID}, nil
}

func (s *productService) RemoveVendor(ctx context.Context, productID, vendorID uint) *ServiceError {
	svcErr := s.run(ctx, entityProductVendor, func(uow repository.UnitOfWork) error {
		if err := requireBothSides(ctx, uow, productID, vendorID); err != nil {
			return err
		}
		if err := uow.ProductVendors().Remove(ctx, productID, vendorID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFoundError("vendor %d is not linked to product %d", vendorID, productID)
			}
			return err
		}
		return nil
	})
	if svcErr != nil {
		return svcErr
	}

	s.publish(ctx, entityProductVendor, "deleted", productID)
	return nil
}

func (s *productService) ListVendors(ctx context.Context, productID uint) ([]models.Vendor, *ServiceError) {
	var vendors []models.Vendor
	svcErr := s.run(ctx, entityProduct, func(uow repository.UnitOfWork) error {
		ok, err := uow.Products().Exists(ctx, productID)
		if err != nil {
			return err
		}
		if !ok {
			return notFoundError("product not found")
		}
		vendors, err = uow.ProductVendors().VendorsOf(ctx, productID)
		return err
	})
	if svcErr != nil {
		return nil, svcErr
	}
	return vendors, nil
}

func (s *productService) checkRefs(ctx context.Context, uow repository.UnitOfWork, p *models.Product) error {
	if err := requireRef(ctx, uow.Categories(), "category_id", p.CategoryID); err != nil {
		return err
	}
	return requireRef(ctx, uow.Users(), "user_id", p.UserID)
}

func requireBothSides(ctx context.Context, uow repository.UnitOfWork, productID, vendorID uint) error {
	ok, err := uow.Products().Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		return notFoundError("product not found")
	}
	if ok, err = uow.Vendors().Exists(ctx, vendorID); err != nil {
		return err
	}
	if !ok {
		return notFoundError("vendor not found")
	}
	return nil
}
