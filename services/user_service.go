package services

import (
	"context"
	"slices"
	"strings"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines user business logic.
type UserService interface {
	CreateUser(ctx context.Context, req *models.UserCreate) (*models.User, *ServiceError)
	GetUser(ctx context.Context, id uint) (*models.User, *ServiceError)
	ListUsers(ctx context.Context, filter repository.Filter) ([]models.User, *ServiceError)
	UpdateUser(ctx context.Context, id uint, req *models.UserUpdate) (*models.User, *ServiceError)
	DeleteUser(ctx context.Context, id uint) *ServiceError
}

type userService struct {
	base
	hashCost int
}

// NewUserService creates a UserService.
func NewUserService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) UserService {
	return &userService{
		base:     newBase(tx, publisher, topicArn, logger),
		hashCost: bcrypt.DefaultCost,
	}
}

func usersOf(uow repository.UnitOfWork) repository.Repository[models.User] { return uow.Users() }

func (s *userService) CreateUser(ctx context.Context, req *models.UserCreate) (*models.User, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, s.toServiceError(entityUser, err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hash,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	svcErr := s.run(ctx, entityUser, func(uow repository.UnitOfWork) error {
		if err := checkUserConflicts(ctx, uow.Users(), user.Username, user.Email, 0); err != nil {
			return err
		}
		s.stampCreated(&user.Audit)
		return uow.Users().Create(ctx, user)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("User created", zap.Uint("id", user.ID), zap.String("username", user.Username))
	s.publish(ctx, entityUser, "created", user.ID)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, *ServiceError) {
	return getRecord(ctx, &s.base, entityUser, id, usersOf)
}

func (s *userService) ListUsers(ctx context.Context, filter repository.Filter) ([]models.User, *ServiceError) {
	return listRecords(ctx, &s.base, entityUser, filter, usersOf)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req *models.UserUpdate) (*models.User, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	var hash string
	if req.Password != nil {
		var err error
		if hash, err = s.hashPassword(*req.Password); err != nil {
			return nil, s.toServiceError(entityUser, err)
		}
	}

	var user *models.User
	svcErr := s.run(ctx, entityUser, func(uow repository.UnitOfWork) error {
		var err error
		if user, err = uow.Users().FindByID(ctx, id); err != nil {
			return err
		}
		user.Apply(req)
		if hash != "" {
			user.Password = hash
		}
		if req.Username != nil || req.Email != nil {
			if err := checkUserConflicts(ctx, uow.Users(), user.Username, user.Email, id); err != nil {
				return err
			}
		}
		s.stampUpdated(&user.Audit)
		return uow.Users().Update(ctx, user)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityUser, "updated", user.ID)
	return user, nil
}

// DeleteUser refuses to remove a user that any other record is attributed to.
func (s *userService) DeleteUser(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityUser, id, usersOf, func(uow repository.UnitOfWork) error {
		return rejectIfReferenced(ctx, entityUser, id,
			dependent{"customers", "user_id", uow.Customers()},
			dependent{"employees", "user_id", uow.Employees()},
			dependent{"vendors", "user_id", uow.Vendors()},
			dependent{"categories", "user_id", uow.Categories()},
			dependent{"products", "user_id", uow.Products()},
			dependent{"orders", "user_id", uow.Orders()},
			dependent{"order details", "user_id", uow.OrderDetails()},
		)
	})
}

func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkUserConflicts(ctx context.Context, repo repository.UserRepository, username, email string, excludeID uint) error {
	existing, err := repo.FindConflicting(ctx, username, email, excludeID)
	if err != nil {
		return err
	}
	taken := make([]string, 0, 2)
	for _, u := range existing {
		if u.Username == username && !slices.Contains(taken, "username") {
			taken = append(taken, "username")
		}
		if u.Email == email && !slices.Contains(taken, "email") {
			taken = append(taken, "email")
		}
	}
	if len(taken) > 0 {
		return conflictError("%s already exists", strings.Join(taken, " and "))
	}
	return nil
}
