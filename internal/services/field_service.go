package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// FieldInput carries the writable attributes of a field.
type FieldInput struct {
	FarmID      uuid.UUID       `json:"farmId" binding:"required"`
	Name        string          `json:"name" binding:"required,max=255"`
	Area        *float64        `json:"area" binding:"omitempty,gte=0"`
	SoilType    models.SoilType `json:"soilType"`
	Coordinates models.Boundary `json:"coordinates"`
}

// FieldService defines the business logic for fields.
type FieldService interface {
	// GetField retrieves one field of the user.
	GetField(ctx context.Context, userID, fieldID uuid.UUID) (*FieldDTO, error)

	// ListFields retrieves the fields of a farm, ordered by name.
	ListFields(ctx context.Context, userID, farmID uuid.UUID) ([]FieldDTO, error)

	// CreateField creates a field under one of the user's farms.
	CreateField(ctx context.Context, userID uuid.UUID, input FieldInput) (*FieldDTO, error)

	// UpdateField replaces the field's writable attributes. Moving the field
	// to another farm requires owning the target farm as well.
	UpdateField(ctx context.Context, userID, fieldID uuid.UUID, input FieldInput) (*FieldDTO, error)

	// DeleteField removes the field and everything under it.
	DeleteField(ctx context.Context, userID, fieldID uuid.UUID) error

	// SoilTypes lists every soil type with its display label.
	SoilTypes() []models.EnumOption
}

type fieldService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewFieldService creates a new FieldService.
func NewFieldService(store *repository.Store, log *logger.Logger) FieldService {
	return &fieldService{store: store, log: log}
}

func (s *fieldService) GetField(ctx context.Context, userID, fieldID uuid.UUID) (*FieldDTO, error) {
	field, farm, err := ownedField(ctx, s.store, userID, fieldID)
	if err != nil {
		return nil, err
	}
	crops, err := s.store.Crops.ByField(ctx, field.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load crops of field %s: %w", field.ID, err)
	}
	dto := fieldDTO(field, farm, crops)
	return &dto, nil
}

func (s *fieldService) ListFields(ctx context.Context, userID, farmID uuid.UUID) ([]FieldDTO, error) {
	farm, err := ownedFarm(ctx, s.store, userID, farmID)
	if err != nil {
		return nil, err
	}
	fields, err := s.store.Fields.ByFarm(ctx, farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields of farm %s: %w", farm.ID, err)
	}
	dtos := make([]FieldDTO, 0, len(fields))
	for i := range fields {
		crops, err := s.store.Crops.ByField(ctx, fields[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load crops of field %s: %w", fields[i].ID, err)
		}
		dtos = append(dtos, fieldDTO(&fields[i], farm, crops))
	}
	return dtos, nil
}

func (s *fieldService) CreateField(ctx context.Context, userID uuid.UUID, input FieldInput) (*FieldDTO, error) {
	farm, err := ownedFarm(ctx, s.store, userID, input.FarmID)
	if err != nil {
		return nil, err
	}
	soilType := input.SoilType
	if soilType == "" {
		soilType = models.SoilNotSelected
	}
	if !soilType.Valid() {
		return nil, fmt.Errorf("%w: unknown soil type %q", ErrInvalidInput, input.SoilType)
	}
	field := &models.Field{
		FarmID:      farm.ID,
		Name:        input.Name,
		Area:        input.Area,
		SoilType:    soilType,
		Coordinates: input.Coordinates,
	}
	if err := s.store.Fields.Add(ctx, field); err != nil {
		return nil, fmt.Errorf("failed to create field: %w", err)
	}
	s.log.Info("Field created", map[string]interface{}{
		"field_id": field.ID,
		"farm_id":  farm.ID,
	})
	dto := fieldDTO(field, farm, nil)
	return &dto, nil
}

func (s *fieldService) UpdateField(ctx context.Context, userID, fieldID uuid.UUID, input FieldInput) (*FieldDTO, error) {
	field, farm, err := ownedField(ctx, s.store, userID, fieldID)
	if err != nil {
		return nil, err
	}
	if input.FarmID != field.FarmID {
		farm, err = ownedFarm(ctx, s.store, userID, input.FarmID)
		if err != nil {
			return nil, err
		}
	}
	if !input.SoilType.Valid() {
		return nil, fmt.Errorf("%w: unknown soil type %q", ErrInvalidInput, input.SoilType)
	}
	field.FarmID = farm.ID
	field.Name = input.Name
	field.Area = input.Area
	field.SoilType = input.SoilType
	field.Coordinates = input.Coordinates
	if err := s.store.Fields.Update(ctx, field); err != nil {
		return nil, fmt.Errorf("failed to update field %s: %w", field.ID, err)
	}
	crops, err := s.store.Crops.ByField(ctx, field.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load crops of field %s: %w", field.ID, err)
	}
	dto := fieldDTO(field, farm, crops)
	return &dto, nil
}

func (s *fieldService) DeleteField(ctx context.Context, userID, fieldID uuid.UUID) error {
	field, _, err := ownedField(ctx, s.store, userID, fieldID)
	if err != nil {
		return err
	}
	if err := s.store.Fields.Delete(ctx, field.ID); err != nil {
		return fmt.Errorf("failed to delete field %s: %w", field.ID, err)
	}
	s.log.Info("Field deleted", map[string]interface{}{
		"field_id": field.ID,
	})
	return nil
}

func (s *fieldService) SoilTypes() []models.EnumOption {
	return models.SoilTypes()
}
