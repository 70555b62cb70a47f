package services

import (
	"context"
	"errors"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

type OrderDetailService interface {
	CreateOrderDetail(ctx context.Context, req *models.OrderDetailCreate) (*models.OrderDetail, *ServiceError)
	GetOrderDetail(ctx context.Context, id uint) (*models.OrderDetail, *ServiceError)
	ListOrderDetails(ctx context.Context, filter repository.Filter) ([]models.OrderDetail, *ServiceError)
	UpdateOrderDetail(ctx context.Context, id uint, req *models.OrderDetailUpdate) (*models.OrderDetail, *ServiceError)
	DeleteOrderDetail(ctx context.Context, id uint) *ServiceError
}

type orderDetailService struct {
	base
}

func NewOrderDetailService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) OrderDetailService {
	return &orderDetailService{base: newBase(tx, publisher, topicArn, logger)}
}

func orderDetailsOf(uow repository.UnitOfWork) repository.Repository[models.OrderDetail] {
	return uow.OrderDetails()
}

func (s *orderDetailService) CreateOrderDetail(ctx context.Context, req *models.OrderDetailCreate) (*models.OrderDetail, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	detail := &models.OrderDetail{
		OrderID:   req.OrderID,
		Price:     *req.Price,
		Quantity:  req.Quantity,
		ProductID: req.ProductID,
		UserID:    req.UserID,
	}
	svcErr := s.run(ctx, entityOrderDetail, func(uow repository.UnitOfWork) error {
		name, err := s.checkRefs(ctx, uow, detail)
		if err != nil {
			return err
		}
		s.stampCreated(&detail.Audit)
		if err := uow.OrderDetails().Create(ctx, detail); err != nil {
			return err
		}
		detail.ProductName = name
		return nil
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Order detail created", zap.Uint("id", detail.ID), zap.Uint("order_id", detail.OrderID))
	s.publish(ctx, entityOrderDetail, "created", detail.ID)
	return detail, nil
}

func (s *orderDetailService) GetOrderDetail(ctx context.Context, id uint) (*models.OrderDetail, *ServiceError) {
	return getRecord(ctx, &s.base, entityOrderDetail, id, orderDetailsOf)
}

func (s *orderDetailService) ListOrderDetails(ctx context.Context, filter repository.Filter) ([]models.OrderDetail, *ServiceError) {
	return listRecords(ctx, &s.base, entityOrderDetail, filter, orderDetailsOf)
}

func (s *orderDetailService) UpdateOrderDetail(ctx context.Context, id uint, req *models.OrderDetailUpdate) (*models.OrderDetail, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	var detail *models.OrderDetail
	svcErr := s.run(ctx, entityOrderDetail, func(uow repository.UnitOfWork) error {
		var err error
		if detail, err = uow.OrderDetails().FindByID(ctx, id); err != nil {
			return err
		}
		// The preloaded product may be stale once product_id changes.
		detail.Product = nil
		detail.Apply(req)
		name, err := s.checkRefs(ctx, uow, detail)
		if err != nil {
			return err
		}
		s.stampUpdated(&detail.Audit)
		if err := uow.OrderDetails().Update(ctx, detail); err != nil {
			return err
		}
		detail.ProductName = name
		return nil
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityOrderDetail, "updated", detail.ID)
	return detail, nil
}

func (s *orderDetailService) DeleteOrderDetail(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityOrderDetail, id, orderDetailsOf, nil)
}

// checkRefs verifies the order, product and user exist and returns the
// product's name.
func (s *orderDetailService) checkRefs(ctx context.Context, uow repository.UnitOfWork, d *models.OrderDetail) (string, error) {
	if err := requireRef(ctx, uow.Orders(), "order_id", d.OrderID); err != nil {
		return "", err
	}
	product, err := uow.Products().FindByID(ctx, d.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", validationError("product_id %d does not exist", d.ProductID)
		}
		return "", err
	}
	if err := requireRef(ctx, uow.Users(), "user_id", d.UserID); err != nil {
		return "", err
	}
	return product.Name, nil
}
