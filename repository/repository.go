package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter holds equality conditions keyed by column name.
type Filter map[string]interface{}

// Repository is the CRUD contract every entity repository offers.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

// GormRepository implements Repository for a single table using GORM.
// Associations are never written through it; each table is saved on its own.
type GormRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewGormRepository creates a GormRepository. preloads name the relations
// loaded alongside every read.
func NewGormRepository[T any](db *gorm.DB, preloads ...string) *GormRepository[T] {
	return &GormRepository[T]{db: db, preloads: preloads}
}

func (r *GormRepository[T]) read(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// Create inserts record and fills in its generated identifier.
func (r *GormRepository[T]) Create(ctx context.Context, record *T) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error)
}

// FindByID returns ErrNotFound when no row has the identifier.
func (r *GormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.read(ctx).First(&record, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

// FindAll returns the rows matching filter ordered by identifier.
func (r *GormRepository[T]) FindAll(ctx context.Context, filter Filter) ([]T, error) {
	records := make([]T, 0)
	q := r.read(ctx)
	if len(filter) > 0 {
		q = q.Where(map[string]interface{}(filter))
	}
	if err := q.Order("id").Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

// Update writes every column of record.
func (r *GormRepository[T]) Update(ctx context.Context, record *T) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error)
}

// Delete removes the row with the identifier, or returns ErrNotFound.
func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translateError(err)
	}
	return n > 0, nil
}

func (r *GormRepository[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(map[string]interface{}(filter))
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, translateError(err)
	}
	return n, nil
}
