package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-backed store used for order projections and
// processed-webhook records.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a repository for entity type T over the given connection.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetBy retrieves entities matching a condition. The query parameter is a
// gorm condition string ("order_id = ?") applied with the given value.
func (r *repository[T]) GetBy(ctx context.Context, query string, value interface{}) (*[]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(query, value).Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

// Update updates an existing entity identified by ID.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}
