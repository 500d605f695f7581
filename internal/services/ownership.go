package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// Every entity hangs off a farm, and every farm has exactly one owner. The
// helpers below walk entity -> field -> farm and compare the farm's owner
// with the authenticated user, returning ErrNotFound for missing entities
// and ErrOwnership for foreign ones.

func ownedFarm(ctx context.Context, store *repository.Store, userID, farmID uuid.UUID) (*models.Farm, error) {
	farm, err := store.Farms.GetByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, fmt.Errorf("farm %s: %w", farmID, ErrNotFound)
	}
	if farm.UserID != userID {
		return nil, fmt.Errorf("farm %s: %w", farmID, ErrOwnership)
	}
	return farm, nil
}

func ownedField(ctx context.Context, store *repository.Store, userID, fieldID uuid.UUID) (*models.Field, *models.Farm, error) {
	field, err := store.Fields.GetByID(ctx, fieldID)
	if err != nil {
		return nil, nil, err
	}
	if field == nil {
		return nil, nil, fmt.Errorf("field %s: %w", fieldID, ErrNotFound)
	}
	farm, err := ownedFarm(ctx, store, userID, field.FarmID)
	if err != nil {
		return nil, nil, err
	}
	return field, farm, nil
}

func ownedCrop(ctx context.Context, store *repository.Store, userID, cropID uuid.UUID) (*models.Crop, *models.Field, error) {
	crop, err := store.Crops.GetByID(ctx, cropID)
	if err != nil {
		return nil, nil, err
	}
	if crop == nil {
		return nil, nil, fmt.Errorf("crop %s: %w", cropID, ErrNotFound)
	}
	field, _, err := ownedField(ctx, store, userID, crop.FieldID)
	if err != nil {
		return nil, nil, err
	}
	return crop, field, nil
}
