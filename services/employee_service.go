package services

import (
	"context"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *models.EmployeeCreate) (*models.Employee, *ServiceError)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, *ServiceError)
	ListEmployees(ctx context.Context, filter repository.Filter) ([]models.Employee, *ServiceError)
	UpdateEmployee(ctx context.Context, id uint, req *models.EmployeeUpdate) (*models.Employee, *ServiceError)
	DeleteEmployee(ctx context.Context, id uint) *ServiceError
}

type employeeService struct {
	base
}

func NewEmployeeService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) EmployeeService {
	return &employeeService{base: newBase(tx, publisher, topicArn, logger)}
}

func employeesOf(uow repository.UnitOfWork) repository.Repository[models.Employee] {
	return uow.Employees()
}

func (s *employeeService) CreateEmployee(ctx context.Context, req *models.EmployeeCreate) (*models.Employee, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}
	if req.DOB.After(s.now()) {
		return nil, validationError("dob must not be in the future")
	}

	employee := &models.Employee{Contact: req.ContactCreate.Contact(), DOB: storedTime(req.DOB), UserID: req.UserID}
	svcErr := s.run(ctx, entityEmployee, func(uow repository.UnitOfWork) error {
		if err := requireRef(ctx, uow.Users(), "user_id", employee.UserID); err != nil {
			return err
		}
		s.stampCreated(&employee.Audit)
		return uow.Employees().Create(ctx, employee)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Employee created", zap.Uint("id", employee.ID))
	s.publish(ctx, entityEmployee, "created", employee.ID)
	return employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id uint) (*models.Employee, *ServiceError) {
	return getRecord(ctx, &s.base, entityEmployee, id, employeesOf)
}

func (s *employeeService) ListEmployees(ctx context.Context, filter repository.Filter) ([]models.Employee, *ServiceError) {
	return listRecords(ctx, &s.base, entityEmployee, filter, employeesOf)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id uint, req *models.EmployeeUpdate) (*models.Employee, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}
	if req.DOB != nil && req.DOB.After(s.now()) {
		return nil, validationError("dob must not be in the future")
	}

	var employee *models.Employee
	svcErr := s.run(ctx, entityEmployee, func(uow repository.UnitOfWork) error {
		var err error
		if employee, err = uow.Employees().FindByID(ctx, id); err != nil {
			return err
		}
		employee.Apply(req)
		employee.DOB = storedTime(employee.DOB)
		if req.UserID != nil {
			if err := requireRef(ctx, uow.Users(), "user_id", employee.UserID); err != nil {
				return err
			}
		}
		s.stampUpdated(&employee.Audit)
		return uow.Employees().Update(ctx, employee)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityEmployee, "updated", employee.ID)
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityEmployee, id, employeesOf, func(uow repository.UnitOfWork) error {
		return rejectIfReferenced(ctx, entityEmployee, id, dependent{"orders", "employee_id", uow.Orders()})
	})
}
