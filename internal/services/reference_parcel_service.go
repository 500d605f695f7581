package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// ReferenceParcelInput carries the writable attributes of a reference parcel.
type ReferenceParcelInput struct {
	FieldID      uuid.UUID `json:"fieldId" binding:"required"`
	ParcelNumber string    `json:"parcelNumber" binding:"required,max=100"`
	Area         *float64  `json:"area" binding:"omitempty,gte=0"`
}

// ReferenceParcelService defines the business logic for reference parcels.
type ReferenceParcelService interface {
	GetReferenceParcel(ctx context.Context, userID, id uuid.UUID) (*ReferenceParcelDTO, error)
	ListReferenceParcels(ctx context.Context, userID, fieldID uuid.UUID) ([]ReferenceParcelDTO, error)
	CreateReferenceParcel(ctx context.Context, userID uuid.UUID, input ReferenceParcelInput) (*ReferenceParcelDTO, error)
	UpdateReferenceParcel(ctx context.Context, userID, id uuid.UUID, input ReferenceParcelInput) (*ReferenceParcelDTO, error)
	DeleteReferenceParcel(ctx context.Context, userID, id uuid.UUID) error
}

type referenceParcelService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewReferenceParcelService creates a new ReferenceParcelService.
func NewReferenceParcelService(store *repository.Store, log *logger.Logger) ReferenceParcelService {
	return &referenceParcelService{store: store, log: log}
}

func (s *referenceParcelService) GetReferenceParcel(ctx context.Context, userID, id uuid.UUID) (*ReferenceParcelDTO, error) {
	parcel, err := s.store.ReferenceParcels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, fmt.Errorf("reference parcel %s: %w", id, ErrNotFound)
	}
	field, _, err := ownedField(ctx, s.store, userID, parcel.FieldID)
	if err != nil {
		return nil, err
	}
	dto := referenceParcelDTO(parcel, field)
	return &dto, nil
}

func (s *referenceParcelService) ListReferenceParcels(ctx context.Context, userID, fieldID uuid.UUID) ([]ReferenceParcelDTO, error) {
	field, _, err := ownedField(ctx, s.store, userID, fieldID)
	if err != nil {
		return nil, err
	}
	parcels, err := s.store.ReferenceParcels.ByField(ctx, field.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reference parcels of field %s: %w", field.ID, err)
	}
	dtos := make([]ReferenceParcelDTO, 0, len(parcels))
	for i := range parcels {
		dtos = append(dtos, referenceParcelDTO(&parcels[i], field))
	}
	return dtos, nil
}

func (s *referenceParcelService) CreateReferenceParcel(ctx context.Context, userID uuid.UUID, input ReferenceParcelInput) (*ReferenceParcelDTO, error) {
	field, _, err := ownedField(ctx, s.store, userID, input.FieldID)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.ReferenceParcels.ByNumber(ctx, field.ID, input.ParcelNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("parcel %q on field %s: %w", input.ParcelNumber, field.ID, ErrDuplicate)
	}
	parcel := &models.ReferenceParcel{
		FieldID:      field.ID,
		ParcelNumber: input.ParcelNumber,
		Area:         input.Area,
	}
	if err := s.store.ReferenceParcels.Add(ctx, parcel); err != nil {
		return nil, fmt.Errorf("failed to create reference parcel: %w", err)
	}
	s.log.Info("Reference parcel created", map[string]interface{}{
		"parcel_id": parcel.ID,
		"field_id":  field.ID,
	})
	dto := referenceParcelDTO(parcel, field)
	return &dto, nil
}

func (s *referenceParcelService) UpdateReferenceParcel(ctx context.Context, userID, id uuid.UUID, input ReferenceParcelInput) (*ReferenceParcelDTO, error) {
	parcel, err := s.store.ReferenceParcels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, fmt.Errorf("reference parcel %s: %w", id, ErrNotFound)
	}
	field, _, err := ownedField(ctx, s.store, userID, parcel.FieldID)
	if err != nil {
		return nil, err
	}
	if input.FieldID != parcel.FieldID {
		field, _, err = ownedField(ctx, s.store, userID, input.FieldID)
		if err != nil {
			return nil, err
		}
	}
	parcel.FieldID = field.ID
	parcel.ParcelNumber = input.ParcelNumber
	parcel.Area = input.Area
	if err := s.store.ReferenceParcels.Update(ctx, parcel); err != nil {
		return nil, fmt.Errorf("failed to update reference parcel %s: %w", parcel.ID, err)
	}
	dto := referenceParcelDTO(parcel, field)
	return &dto, nil
}

func (s *referenceParcelService) DeleteReferenceParcel(ctx context.Context, userID, id uuid.UUID) error {
	parcel, err := s.store.ReferenceParcels.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if parcel == nil {
		return fmt.Errorf("reference parcel %s: %w", id, ErrNotFound)
	}
	if _, _, err := ownedField(ctx, s.store, userID, parcel.FieldID); err != nil {
		return err
	}
	if err := s.store.ReferenceParcels.Delete(ctx, parcel.ID); err != nil {
		return fmt.Errorf("failed to delete reference parcel %s: %w", parcel.ID, err)
	}
	return nil
}
