package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ramses2099/storeapiv2/models"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/repository"
	"go.uber.org/zap"
)

const (
	entityUser          = "user"
	entityCustomer      = "customer"
	entityEmployee      = "employee"
	entityVendor        = "vendor"
	entityCategory      = "category"
	entityProduct       = "product"
	entityOrder         = "order"
	entityOrderDetail   = "order_detail"
	entityProductVendor = "product_vendor"
)

// base carries what every entity service shares: the transactor, the event
// publisher and the clock used for created/updated stamps.
type base struct {
	tx        repository.Transactor
	publisher aws_pkg.SNSPublisher
	topicArn  string
	logger    *zap.Logger
	now       func() time.Time
}

func newBase(tx repository.Transactor, publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{
		tx:        tx,
		publisher: publisher,
		topicArn:  topicArn,
		logger:    logger,
		now:       defaultNow,
	}
}

func defaultNow() time.Time {
	return storedTime(time.Now())
}

// storedTime returns t as PostgreSQL gives it back: UTC with microsecond
// precision.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// run executes fn in one unit of work and converts its error.
func (b *base) run(ctx context.Context, entity string, fn func(uow repository.UnitOfWork) error) *ServiceError {
	if err := b.tx.WithinTransaction(ctx, fn); err != nil {
		return b.toServiceError(entity, err)
	}
	return nil
}

func (b *base) toServiceError(entity string, err error) *ServiceError {
	var svcErr *ServiceError
	switch {
	case errors.As(err, &svcErr):
		return svcErr
	case errors.Is(err, repository.ErrNotFound):
		return notFoundError("%s not found", entity)
	case errors.Is(err, repository.ErrDuplicateKey):
		return conflictError("%s conflicts with an existing record", entity)
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return conflictError("%s violates a reference to another record", entity)
	case errors.Is(err, repository.ErrCheckViolation):
		return validationError("%s has an out of range value", entity)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		b.logger.Warn("Unit of work aborted", zap.String("entity", entity), zap.Error(err))
		return internalError("request for %s was cancelled", entity)
	}
	b.logger.Error("Unit of work failed", zap.String("entity", entity), zap.Error(err))
	return internalError("failed to process %s", entity)
}

func (b *base) stampCreated(a *models.Audit) {
	now := b.now()
	a.Created = &now
	a.Updated = nil
}

// stampUpdated sets Updated to the current time, moved forward when needed so
// it is strictly later than the previous modification.
func (b *base) stampUpdated(a *models.Audit) {
	now := b.now()
	if prev := a.LastModified(); !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	a.Updated = &now
}

// publish sends a store event. Failures are logged and otherwise ignored.
func (b *base) publish(ctx context.Context, entity, action string, id uint) {
	if b.publisher == nil || b.topicArn == "" {
		return
	}

	event := models.StoreEvent{
		EventType: entity + "." + action,
		Entity:    entity,
		EntityID:  id,
		Timestamp: b.now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.Warn("Failed to marshal store event", zap.String("event_type", event.EventType), zap.Error(err))
		return
	}
	if err := b.publisher.Publish(ctx, b.topicArn, payload); err != nil {
		b.logger.Warn("Event publish failed",
			zap.String("event_type", event.EventType),
			zap.Uint("id", id),
			zap.Error(err),
		)
	}
}

type existenceChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// requireRef fails with a validation error when id does not resolve.
func requireRef(ctx context.Context, repo existenceChecker, field string, id uint) error {
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return validationError("%s %d does not exist", field, id)
	}
	return nil
}

type counter interface {
	Count(ctx context.Context, filter repository.Filter) (int64, error)
}

// dependent is a relation whose rows point at the record being deleted.
type dependent struct {
	relation string
	column   string
	repo     counter
}

// rejectIfReferenced fails with a conflict error when any dependent still
// references id.
func rejectIfReferenced(ctx context.Context, entity string, id uint, deps ...dependent) error {
	for _, d := range deps {
		n, err := d.repo.Count(ctx, repository.Filter{d.column: id})
		if err != nil {
			return err
		}
		if n > 0 {
			return conflictError("%s %d is still referenced by %d %s", entity, id, n, d.relation)
		}
	}
	return nil
}

func getRecord[T any](ctx context.Context, b *base, entity string, id uint, pick func(repository.UnitOfWork) repository.Repository[T]) (*T, *ServiceError) {
	var record *T
	svcErr := b.run(ctx, entity, func(uow repository.UnitOfWork) error {
		var err error
		record, err = pick(uow).FindByID(ctx, id)
		return err
	})
	if svcErr != nil {
		return nil, svcErr
	}
	return record, nil
}

func listRecords[T any](ctx context.Context, b *base, entity string, filter repository.Filter, pick func(repository.UnitOfWork) repository.Repository[T]) ([]T, *ServiceError) {
	var records []T
	svcErr := b.run(ctx, entity, func(uow repository.UnitOfWork) error {
		var err error
		records, err = pick(uow).FindAll(ctx, filter)
		return err
	})
	if svcErr != nil {
		return nil, svcErr
	}
	return records, nil
}

// deleteRecord removes the record with id. check runs first in the same unit
// of work and may veto the delete or clean up association rows.
func deleteRecord[T any](ctx context.Context, b *base, entity string, id uint, pick func(repository.UnitOfWork) repository.Repository[T], check func(uow repository.UnitOfWork) error) *ServiceError {
	svcErr := b.run(ctx, entity, func(uow repository.UnitOfWork) error {
		repo := pick(uow)
		ok, err := repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFoundError("%s not found", entity)
		}
		if check != nil {
			if err := check(uow); err != nil {
				return err
			}
		}
		return repo.Delete(ctx, id)
	})
	if svcErr != nil {
		return svcErr
	}
	b.logger.Info("Record deleted", zap.String("entity", entity), zap.Uint("id", id))
	b.publish(ctx, entity, "deleted", id)
	return nil
}
