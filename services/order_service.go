package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, *ServiceError)
	GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context, filter repository.Filter) ([]models.Order, *ServiceError)
	UpdateOrder(ctx context.Context, id uint, req *models.OrderUpdate) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id uint) *ServiceError
}

type orderService struct {
	base
}

func NewOrderService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) OrderService {
	return &orderService{base: newBase(tx, publisher, topicArn, logger)}
}

func ordersOf(uow repository.UnitOfWork) repository.Repository[models.Order] { return uow.Orders() }

// CreateOrder stores the order and its lines in one unit of work. Lines are
// attributed to the order's user.
func (s *orderService) CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	order := &models.Order{
		OrderDate:  storedTime(req.OrderDate),
		ShipDate:   storedTime(req.ShipDate),
		OrderTotal: *req.OrderTotal,
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		UserID:     req.UserID,
	}
	svcErr := s.run(ctx, entityOrder, func(uow repository.UnitOfWork) error {
		if err := s.checkRefs(ctx, uow, order); err != nil {
			return err
		}
		s.stampCreated(&order.Audit)
		if err := uow.Orders().Create(ctx, order); err != nil {
			return err
		}

		lines := make([]models.OrderDetail, 0, len(req.OrderDetails))
		for i, line := range req.OrderDetails {
			product, err := uow.Products().FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return validationError("ordersdetails[%d].product_id %d does not exist", i, line.ProductID)
				}
				return err
			}
			detail := models.OrderDetail{
				OrderID:   order.ID,
				Price:     *line.Price,
				Quantity:  line.Quantity,
				ProductID: line.ProductID,
				UserID:    order.UserID,
				Audit:     order.Audit,
			}
			if err := uow.OrderDetails().Create(ctx, &detail); err != nil {
				return fmt.Errorf("order line %d: %w", i, err)
			}
			detail.ProductName = product.Name
			lines = append(lines, detail)
		}
		order.OrderDetails = lines
		return nil
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Order created",
		zap.Uint("id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.Int("lines", len(order.OrderDetails)),
	)
	s.publish(ctx, entityOrder, "created", order.ID)
	for _, d := range order.OrderDetails {
		s.publish(ctx, entityOrderDetail, "created", d.ID)
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError) {
	return getRecord(ctx, &s.base, entityOrder, id, ordersOf)
}

func (s *orderService) ListOrders(ctx context.Context, filter repository.Filter) ([]models.Order, *ServiceError) {
	return listRecords(ctx, &s.base, entityOrder, filter, ordersOf)
}

func (s *orderService) UpdateOrder(ctx context.Context, id uint, req *models.OrderUpdate) (*models.Order, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	var order *models.Order
	svcErr := s.run(ctx, entityOrder, func(uow repository.UnitOfWork) error {
		var err error
		if order, err = uow.Orders().FindByID(ctx, id); err != nil {
			return err
		}
		order.Apply(req)
		order.OrderDate = storedTime(order.OrderDate)
		order.ShipDate = storedTime(order.ShipDate)
		if order.ShipDate.Before(order.OrderDate) {
			return validationError("shipdate must not be before orderdate")
		}
		if req.CustomerID != nil || req.EmployeeID != nil || req.UserID != nil {
			if err := s.checkRefs(ctx, uow, order); err != nil {
				return err
			}
		}
		s.stampUpdated(&order.Audit)
		return uow.Orders().Update(ctx, order)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityOrder, "updated", order.ID)
	return order, nil
}

// DeleteOrder refuses to remove an order that still has lines.
func (s *orderService) DeleteOrder(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityOrder, id, ordersOf, func(uow repository.UnitOfWork) error {
		return rejectIfReferenced(ctx, entityOrder, id, dependent{"order details", "order_id", uow.OrderDetails()})
	})
}

func (s *orderService) checkRefs(ctx context.Context, uow repository.UnitOfWork, o *models.Order) error {
	if err := requireRef(ctx, uow.Customers(), "customer_id", o.CustomerID); err != nil {
		return err
	}
	if err := requireRef(ctx, uow.Employees(), "employee_id", o.EmployeeID); err != nil {
		return err
	}
	return requireRef(ctx, uow.Users(), "user_id", o.UserID)
}
