package services

import (
	"context"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CustomerCreate) (*models.Customer, *ServiceError)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, *ServiceError)
	ListCustomers(ctx context.Context, filter repository.Filter) ([]models.Customer, *ServiceError)
	UpdateCustomer(ctx context.Context, id uint, req *models.CustomerUpdate) (*models.Customer, *ServiceError)
	DeleteCustomer(ctx context.Context, id uint) *ServiceError
}

type customerService struct {
	base
}

func NewCustomerService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) CustomerService {
	return &customerService{base: newBase(tx, publisher, topicArn, logger)}
}

func customersOf(uow repository.UnitOfWork) repository.Repository[models.Customer] {
	return uow.Customers()
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CustomerCreate) (*models.Customer, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	customer := &models.Customer{Contact: req.ContactCreate.Contact(), UserID: req.UserID}
	svcErr := s.run(ctx, entityCustomer, func(uow repository.UnitOfWork) error {
		if err := requireRef(ctx, uow.Users(), "user_id", customer.UserID); err != nil {
			return err
		}
		s.stampCreated(&customer.Audit)
		return uow.Customers().Create(ctx, customer)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Customer created", zap.Uint("id", customer.ID))
	s.publish(ctx, entityCustomer, "created", customer.ID)
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, *ServiceError) {
	return getRecord(ctx, &s.base, entityCustomer, id, customersOf)
}

func (s *customerService) ListCustomers(ctx context.Context, filter repository.Filter) ([]models.Customer, *ServiceError) {
	return listRecords(ctx, &s.base, entityCustomer, filter, customersOf)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, req *models.CustomerUpdate) (*models.Customer, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	var customer *models.Customer
	svcErr := s.run(ctx, entityCustomer, func(uow repository.UnitOfWork) error {
		var err error
		if customer, err = uow.Customers().FindByID(ctx, id); err != nil {
			return err
		}
		customer.Apply(req)
		if req.UserID != nil {
			if err := requireRef(ctx, uow.Users(), "user_id", customer.UserID); err != nil {
				return err
			}
		}
		s.stampUpdated(&customer.Audit)
		return uow.Customers().Update(ctx, customer)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityCustomer, "updated", customer.ID)
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityCustomer, id, customersOf, func(uow repository.UnitOfWork) error {
		return rejectIfReferenced(ctx, entityCustomer, id, dependent{"orders", "customer_id", uow.Orders()})
	})
}
