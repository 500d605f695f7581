package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository provides generic CRUD operations over a GORM-mapped entity.
// The eight resource types of the API share identical persistence needs, so
// they share this one implementation; entity-specific queries live on the
// typed repositories that embed it.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a generic repository bound to the given handle.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// GetByID fetches an entity by primary key.
// Returns nil, nil if no entity is found (not an error).
// Returns error only for actual database failures.
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query entity %s: %w", id, err)
	}
	return &entity, nil
}

// Add inserts a new entity.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to insert entity: %w", err)
	}
	return nil
}

// Update saves every column of the entity (full replace, no partial patch).
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}
	return nil
}

// Delete hard-deletes the entity with the given id. Deleting a missing id is
// not an error; callers check existence first when they need a 404.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var entity T
	if err := r.db.WithContext(ctx).Delete(&entity, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete entity %s: %w", id, err)
	}
	return nil
}

// list returns all entities matching the given condition, for use by the
// typed repositories.
func (r *Repository[T]) list(ctx context.Context, order string, query string, args ...interface{}) ([]T, error) {
	var entities []T
	tx := r.db.WithContext(ctx).Where(query, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	if entities == nil {
		entities = []T{}
	}
	return entities, nil
}

// first returns the first entity matching the given condition, or nil, nil
// when none matches.
func (r *Repository[T]) first(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query entity: %w", err)
	}
	return &entity, nil
}
