package services

import (
	"context"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

type VendorService interface {
	CreateVendor(ctx context.Context, req *models.VendorCreate) (*models.Vendor, *ServiceError)
	GetVendor(ctx context.Context, id uint) (*models.Vendor, *ServiceError)
	ListVendors(ctx context.Context, filter repository.Filter) ([]models.Vendor, *ServiceError)
	UpdateVendor(ctx context.Context, id uint, req *models.VendorUpdate) (*models.Vendor, *ServiceError)
	DeleteVendor(ctx context.Context, id uint) *ServiceError
	// ListProducts returns the products the vendor supplies.
	ListProducts(ctx context.Context, vendorID uint) ([]models.Product, *ServiceError)
}

type vendorService struct {
	base
}

func NewVendorService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) VendorService {
	return &vendorService{base: newBase(tx, publisher, topicArn, logger)}
}

func vendorsOf(uow repository.UnitOfWork) repository.Repository[models.Vendor] { return uow.Vendors() }

func (s *vendorService) CreateVendor(ctx context.Context, req *models.VendorCreate) (*models.Vendor, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	vendor := &models.Vendor{Contact: req.ContactCreate.Contact(), UserID: req.UserID}
	svcErr := s.run(ctx, entityVendor, func(uow repository.UnitOfWork) error {
		if err := requireRef(ctx, uow.Users(), "user_id", vendor.UserID); err != nil {
			return err
		}
		s.stampCreated(&vendor.Audit)
		return uow.Vendors().Create(ctx, vendor)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Vendor created", zap.Uint("id", vendor.ID))
	s.publish(ctx, entityVendor, "created", vendor.ID)
	return vendor, nil
}

func (s *vendorService) GetVendor(ctx context.Context, id uint) (*models.Vendor, *ServiceError) {
	return getRecord(ctx, &s.base, entityVendor, id, vendorsOf)
}

func (s *vendorService) ListVendors(ctx context.Context, filter repository.Filter) ([]models.Vendor, *ServiceError) {
	return listRecords(ctx, &s.base, entityVendor, filter, vendorsOf)
}

func (s *vendorService) UpdateVendor(ctx context.Context, id uint, req *models.VendorUpdate) (*models.Vendor, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	var vendor *models.Vendor
	svcErr := s.run(ctx, entityVendor, func(uow repository.UnitOfWork) error {
		var err error
		if vendor, err = uow.Vendors().FindByID(ctx, id); err != nil {
			return err
		}
		vendor.Apply(req)
		if req.UserID != nil {
			if err := requireRef(ctx, uow.Users(), "user_id", vendor.UserID); err != nil {
				return err
			}
		}
		s.stampUpdated(&vendor.Audit)
		return uow.Vendors().Update(ctx, vendor)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityVendor, "updated", vendor.ID)
	return vendor, nil
}

// DeleteVendor removes the vendor together with its product links.
func (s *vendorService) DeleteVendor(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityVendor, id, vendorsOf, func(uow repository.UnitOfWork) error {
		_, err := uow.ProductVendors().RemoveByVendor(ctx, id)
		return err
	})
}

func (s *vendorService) ListProducts(ctx context.Context, vendorID uint) ([]models.Product, *ServiceError) {
	var products []models.Product
	svcErr := s.run(ctx, entityVendor, func(uow repository.UnitOfWork) error {
		ok, err := uow.Vendors().Exists(ctx, vendorID)
		if err != nil {
			return err
		}
		if !ok {
			return notFoundError("vendor not found")
		}
		products, err = uow.ProductVendors().ProductsOf(ctx, vendorID)
		return err
	})
	if svcErr != nil {
		return nil, svcErr
	}
	return products, nil
}
