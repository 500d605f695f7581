package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// SoilMeasurementInput carries the writable attributes of a soil measurement.
type SoilMeasurementInput struct {
	FieldID    uuid.UUID `json:"fieldId" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	PH         *float64  `json:"ph" binding:"omitempty,gte=0,lte=14"`
	Nitrogen   *float64  `json:"nitrogen" binding:"omitempty,gte=0"`
	Phosphorus *float64  `json:"phosphorus" binding:"omitempty,gte=0"`
	Potassium  *float64  `json:"potassium" binding:"omitempty,gte=0"`
}

// SoilMeasurementService defines the business logic for soil measurements.
type SoilMeasurementService interface {
	GetSoilMeasurement(ctx context.Context, userID, id uuid.UUID) (*SoilMeasurementDTO, error)
	ListSoilMeasurements(ctx context.Context, userID, fieldID uuid.UUID) ([]SoilMeasurementDTO, error)
	CreateSoilMeasurement(ctx context.Context, userID uuid.UUID, input SoilMeasurementInput) (*SoilMeasurementDTO, error)
	UpdateSoilMeasurement(ctx context.Context, userID, id uuid.UUID, input SoilMeasurementInput) (*SoilMeasurementDTO, error)
	DeleteSoilMeasurement(ctx context.Context, userID, id uuid.UUID) error
}

type soilMeasurementService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewSoilMeasurementService creates a new SoilMeasurementService.
func NewSoilMeasurementService(store *repository.Store, log *logger.Logger) SoilMeasurementService {
	return &soilMeasurementService{store: store, log: log}
}

func (s *soilMeasurementService) GetSoilMeasurement(ctx context.Context, userID, id uuid.UUID) (*SoilMeasurementDTO, error) {
	m, err := s.store.SoilMeasurements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("soil measurement %s: %w", id, ErrNotFound)
	}
	field, _, err := ownedField(ctx, s.store, userID, m.FieldID)
	if err != nil {
		return nil, err
	}
	dto := soilMeasurementDTO(m, field)
	return &dto, nil
}

func (s *soilMeasurementService) ListSoilMeasurements(ctx context.Context, userID, fieldID uuid.UUID) ([]SoilMeasurementDTO, error) {
	field, _, err := ownedField(ctx, s.store, userID, fieldID)
	if err != nil {
		return nil, err
	}
	measurements, err := s.store.SoilMeasurements.ByField(ctx, field.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list soil measurements of field %s: %w", field.ID, err)
	}
	dtos := make([]SoilMeasurementDTO, 0, len(measurements))
	for i := range measurements {
		dtos = append(dtos, soilMeasurementDTO(&measurements[i], field))
	}
	return dtos, nil
}

func (s *soilMeasurementService) CreateSoilMeasurement(ctx context.Context, userID uuid.UUID, input SoilMeasurementInput) (*SoilMeasurementDTO, error) {
	field, _, err := ownedField(ctx, s.store, userID, input.FieldID)
	if err != nil {
		return nil, err
	}
	m := &models.SoilMeasurement{
		FieldID:    field.ID,
		Date:       input.Date,
		PH:         input.PH,
		Nitrogen:   input.Nitrogen,
		Phosphorus: input.Phosphorus,
		Potassium:  input.Potassium,
	}
	if err := s.store.SoilMeasurements.Add(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create soil measurement: %w", err)
	}
	s.log.Info("Soil measurement created", map[string]interface{}{
		"measurement_id": m.ID,
		"field_id":       field.ID,
	})
	dto := soilMeasurementDTO(m, field)
	return &dto, nil
}

func (s *soilMeasurementService) UpdateSoilMeasurement(ctx context.Context, userID, id uuid.UUID, input SoilMeasurementInput) (*SoilMeasurementDTO, error) {
	m, err := s.store.SoilMeasurements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("soil measurement %s: %w", id, ErrNotFound)
	}
	field, _, err := ownedField(ctx, s.store, userID, m.FieldID)
	if err != nil {
		return nil, err
	}
	if input.FieldID != m.FieldID {
		field, _, err = ownedField(ctx, s.store, userID, input.FieldID)
		if err != nil {
			return nil, err
		}
	}
	m.FieldID = field.ID
	m.Date = input.Date
	m.PH = input.PH
	m.Nitrogen = input.Nitrogen
	m.Phosphorus = input.Phosphorus
	m.Potassium = input.Potassium
	if err := s.store.SoilMeasurements.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update soil measurement %s: %w", m.ID, err)
	}
	dto := soilMeasurementDTO(m, field)
	return &dto, nil
}

func (s *soilMeasurementService) DeleteSoilMeasurement(ctx context.Context, userID, id uuid.UUID) error {
	m, err := s.store.SoilMeasurements.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("soil measurement %s: %w", id, ErrNotFound)
	}
	if _, _, err := ownedField(ctx, s.store, userID, m.FieldID); err != nil {
		return err
	}
	if err := s.store.SoilMeasurements.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("failed to delete soil measurement %s: %w", m.ID, err)
	}
	return nil
}
