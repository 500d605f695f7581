package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// CropInput carries the writable attributes of a crop.
type CropInput struct {
	FieldID        uuid.UUID       `json:"fieldId" binding:"required"`
	Name           string          `json:"name" binding:"required,max=255"`
	CropIdentifier *string         `json:"cropIdentifier" binding:"omitempty,max=100"`
	Type           models.CropType `json:"type"`
	IsActive       bool            `json:"isActive"`
}

// CropService defines the business logic for crops. A field carries at most
// one active crop; activating a crop deactivates its siblings inside the same
// transaction as the write.
type CropService interface {
	// GetCrop retrieves one crop of the user.
	GetCrop(ctx context.Context, userID, cropID uuid.UUID) (*CropDTO, error)

	// ListCrops retrieves the crops of a field, ordered by name.
	ListCrops(ctx context.Context, userID, fieldID uuid.UUID) ([]CropDTO, error)

	// ListActiveCrops retrieves the active crops across every farm of the user.
	ListActiveCrops(ctx context.Context, userID uuid.UUID) ([]CropDTO, error)

	// CreateCrop creates a crop on one of the user's fields.
	CreateCrop(ctx context.Context, userID uuid.UUID, input CropInput) (*CropDTO, error)

	// UpdateCrop replaces the crop's writable attributes.
	UpdateCrop(ctx context.Context, userID, cropID uuid.UUID, input CropInput) (*CropDTO, error)

	// DeleteCrop removes the crop and its activity records.
	DeleteCrop(ctx context.Context, userID, cropID uuid.UUID) error

	// CropTypes lists every crop type with its display label.
	CropTypes() []models.EnumOption
}

type cropService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewCropService creates a new CropService.
func NewCropService(store *repository.Store, log *logger.Logger) CropService {
	return &cropService{store: store, log: log}
}

func (s *cropService) GetCrop(ctx context.Context, userID, cropID uuid.UUID) (*CropDTO, error) {
	crop, field, err := ownedCrop(ctx, s.store, userID, cropID)
	if err != nil {
		return nil, err
	}
	dto := cropDTO(crop, field)
	return &dto, nil
}

func (s *cropService) ListCrops(ctx context.Context, userID, fieldID uuid.UUID) ([]CropDTO, error) {
	field, _, err := ownedField(ctx, s.store, userID, fieldID)
	if err != nil {
		return nil, err
	}
	crops, err := s.store.Crops.ByField(ctx, field.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops of field %s: %w", field.ID, err)
	}
	dtos := make([]CropDTO, 0, len(crops))
	for i := range crops {
		dtos = append(dtos, cropDTO(&crops[i], field))
	}
	return dtos, nil
}

func (s *cropService) ListActiveCrops(ctx context.Context, userID uuid.UUID) ([]CropDTO, error) {
	crops, err := s.store.Crops.ActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active crops: %w", err)
	}
	dtos := make([]CropDTO, 0, len(crops))
	for i := range crops {
		field, err := s.store.Fields.GetByID(ctx, crops[i].FieldID)
		if err != nil {
			return nil, err
		}
		if field == nil {
			continue
		}
		dtos = append(dtos, cropDTO(&crops[i], field))
	}
	return dtos, nil
}

func (s *cropService) CreateCrop(ctx context.Context, userID uuid.UUID, input CropInput) (*CropDTO, error) {
	field, _, err := ownedField(ctx, s.store, userID, input.FieldID)
	if err != nil {
		return nil, err
	}
	cropType := input.Type
	if cropType == "" {
		cropType = models.CropNotSelected
	}
	if !cropType.Valid() {
		return nil, fmt.Errorf("%w: unknown crop type %q", ErrInvalidInput, input.Type)
	}
	crop := &models.Crop{
		FieldID:        field.ID,
		Name:           input.Name,
		CropIdentifier: input.CropIdentifier,
		Type:           cropType,
		IsActive:       input.IsActive,
	}
	err = s.store.WithTx(ctx, func(tx *repository.Store) error {
		if err := tx.Crops.Add(ctx, crop); err != nil {
			return fmt.Errorf("failed to create crop: %w", err)
		}
		if crop.IsActive {
			return tx.Crops.DeactivateOthers(ctx, field.ID, crop.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Crop created", map[string]interface{}{
		"crop_id":  crop.ID,
		"field_id": field.ID,
		"active":   crop.IsActive,
	})
	dto := cropDTO(crop, field)
	return &dto, nil
}

func (s *cropService) UpdateCrop(ctx context.Context, userID, cropID uuid.UUID, input CropInput) (*CropDTO, error) {
	crop, field, err := ownedCrop(ctx, s.store, userID, cropID)
	if err != nil {
		return nil, err
	}
	if input.FieldID != crop.FieldID {
		field, _, err = ownedField(ctx, s.store, userID, input.FieldID)
		if err != nil {
			return nil, err
		}
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown crop type %q", ErrInvalidInput, input.Type)
	}
	crop.FieldID = field.ID
	crop.Name = input.Name
	crop.CropIdentifier = input.CropIdentifier
	crop.Type = input.Type
	crop.IsActive = input.IsActive
	err = s.store.WithTx(ctx, func(tx *repository.Store) error {
		if err := tx.Crops.Update(ctx, crop); err != nil {
			return fmt.Errorf("failed to update crop %s: %w", crop.ID, err)
		}
		if crop.IsActive {
			return tx.Crops.DeactivateOthers(ctx, crop.FieldID, crop.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	dto := cropDTO(crop, field)
	return &dto, nil
}

func (s *cropService) DeleteCrop(ctx context.Context, userID, cropID uuid.UUID) error {
	crop, _, err := ownedCrop(ctx, s.store, userID, cropID)
	if err != nil {
		return err
	}
	if err := s.store.Crops.Delete(ctx, crop.ID); err != nil {
		return fmt.Errorf("failed to delete crop %s: %w", crop.ID, err)
	}
	s.log.Info("Crop deleted", map[string]interface{}{
		"crop_id": crop.ID,
	})
	return nil
}

func (s *cropService) CropTypes() []models.EnumOption {
	return models.CropTypes()
}
