package services

import (
	"context"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CategoryCreate) (*models.Category, *ServiceError)
	GetCategory(ctx context.Context, id uint) (*models.Category, *ServiceError)
	ListCategories(ctx context.Context, filter repository.Filter) ([]models.Category, *ServiceError)
	UpdateCategory(ctx context.Context, id uint, req *models.CategoryUpdate) (*models.Category, *ServiceError)
	DeleteCategory(ctx context.Context, id uint) *ServiceError
}

type categoryService struct {
	base
}

func NewCategoryService(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) CategoryService {
	return &categoryService{base: newBase(tx, publisher, topicArn, logger)}
}

func categoriesOf(uow repository.UnitOfWork) repository.Repository[models.Category] {
	return uow.Categories()
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CategoryCreate) (*models.Category, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	category := &models.Category{Description: req.Description, UserID: req.UserID}
	svcErr := s.run(ctx, entityCategory, func(uow repository.UnitOfWork) error {
		if err := requireRef(ctx, uow.Users(), "user_id", category.UserID); err != nil {
			return err
		}
		s.stampCreated(&category.Audit)
		return uow.Categories().Create(ctx, category)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("Category created", zap.Uint("id", category.ID))
	s.publish(ctx, entityCategory, "created", category.ID)
	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*models.Category, *ServiceError) {
	return getRecord(ctx, &s.base, entityCategory, id, categoriesOf)
}

func (s *categoryService) ListCategories(ctx context.Context, filter repository.Filter) ([]models.Category, *ServiceError) {
	return listRecords(ctx, &s.base, entityCategory, filter, categoriesOf)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req *models.CategoryUpdate) (*models.Category, *ServiceError) {
	if svcErr := validateInput(req); svcErr != nil {
		return nil, svcErr
	}

	var category *models.Category
	svcErr := s.run(ctx, entityCategory, func(uow repository.UnitOfWork) error {
		var err error
		if category, err = uow.Categories().FindByID(ctx, id); err != nil {
			return err
		}
		category.Apply(req)
		if req.UserID != nil {
			if err := requireRef(ctx, uow.Users(), "user_id", category.UserID); err != nil {
				return err
			}
		}
		s.stampUpdated(&category.Audit)
		return uow.Categories().Update(ctx, category)
	})
	if svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, entityCategory, "updated", category.ID)
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) *ServiceError {
	return deleteRecord(ctx, &s.base, entityCategory, id, categoriesOf, func(uow repository.UnitOfWork) error {
		return rejectIfReferenced(ctx, entityCategory, id, dependent{"products", "category_id", uow.Products()})
	})
}
