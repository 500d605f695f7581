package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// FarmInput carries the writable attributes of a farm.
type FarmInput struct {
	Name      string   `json:"name" binding:"required,max=255"`
	Location  *string  `json:"location" binding:"omitempty,max=500"`
	TotalArea *float64 `json:"totalArea" binding:"omitempty,gte=0"`
}

// FarmService defines the business logic for farms.
type FarmService interface {
	// GetFarm retrieves one farm of the user.
	// Returns ErrNotFound if the farm does not exist, ErrOwnership if it
	// belongs to someone else.
	GetFarm(ctx context.Context, userID, farmID uuid.UUID) (*FarmDTO, error)

	// ListFarms retrieves every farm of the user, ordered by name.
	ListFarms(ctx context.Context, userID uuid.UUID) ([]FarmDTO, error)

	// ListFarmRefs retrieves the user's farms as {id,name} pairs.
	ListFarmRefs(ctx context.Context, userID uuid.UUID) ([]MiniItem, error)

	// CreateFarm creates a farm owned by the user.
	CreateFarm(ctx context.Context, userID uuid.UUID, input FarmInput) (*FarmDTO, error)

	// UpdateFarm replaces the farm's writable attributes.
	UpdateFarm(ctx context.Context, userID, farmID uuid.UUID, input FarmInput) (*FarmDTO, error)

	// DeleteFarm removes the farm and, through cascades, everything under it.
	DeleteFarm(ctx context.Context, userID, farmID uuid.UUID) error
}

type farmService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewFarmService creates a new FarmService.
func NewFarmService(store *repository.Store, log *logger.Logger) FarmService {
	return &farmService{store: store, log: log}
}

func (s *farmService) GetFarm(ctx context.Context, userID, farmID uuid.UUID) (*FarmDTO, error) {
	farm, err := ownedFarm(ctx, s.store, userID, farmID)
	if err != nil {
		return nil, err
	}
	fields, err := s.store.Fields.ByFarm(ctx, farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fields of farm %s: %w", farm.ID, err)
	}
	dto := farmDTO(farm, fields)
	return &dto, nil
}

func (s *farmService) ListFarms(ctx context.Context, userID uuid.UUID) ([]FarmDTO, error) {
	farms, err := s.store.Farms.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	dtos := make([]FarmDTO, 0, len(farms))
	for i := range farms {
		fields, err := s.store.Fields.ByFarm(ctx, farms[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load fields of farm %s: %w", farms[i].ID, err)
		}
		dtos = append(dtos, farmDTO(&farms[i], fields))
	}
	return dtos, nil
}

func (s *farmService) ListFarmRefs(ctx context.Context, userID uuid.UUID) ([]MiniItem, error) {
	farms, err := s.store.Farms.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	refs := make([]MiniItem, 0, len(farms))
	for _, farm := range farms {
		refs = append(refs, MiniItem{ID: farm.ID, Name: farm.Name})
	}
	return refs, nil
}

func (s *farmService) CreateFarm(ctx context.Context, userID uuid.UUID, input FarmInput) (*FarmDTO, error) {
	farm := &models.Farm{
		UserID:    userID,
		Name:      input.Name,
		Location:  input.Location,
		TotalArea: input.TotalArea,
	}
	if err := s.store.Farms.Add(ctx, farm); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}
	s.log.Info("Farm created", map[string]interface{}{
		"farm_id": farm.ID,
		"user_id": userID,
	})
	dto := farmDTO(farm, nil)
	return &dto, nil
}

func (s *farmService) UpdateFarm(ctx context.Context, userID, farmID uuid.UUID, input FarmInput) (*FarmDTO, error) {
	farm, err := ownedFarm(ctx, s.store, userID, farmID)
	if err != nil {
		return nil, err
	}
	farm.Name = input.Name
	farm.Location = input.Location
	farm.TotalArea = input.TotalArea
	if err := s.store.Farms.Update(ctx, farm); err != nil {
		return nil, fmt.Errorf("failed to update farm %s: %w", farm.ID, err)
	}
	fields, err := s.store.Fields.ByFarm(ctx, farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fields of farm %s: %w", farm.ID, err)
	}
	dto := farmDTO(farm, fields)
	return &dto, nil
}

func (s *farmService) DeleteFarm(ctx context.Context, userID, farmID uuid.UUID) error {
	farm, err := ownedFarm(ctx, s.store, userID, farmID)
	if err != nil {
		return err
	}
	if err := s.store.Farms.Delete(ctx, farm.ID); err != nil {
		return fmt.Errorf("failed to delete farm %s: %w", farm.ID, err)
	}
	s.log.Info("Farm deleted", map[string]interface{}{
		"farm_id": farm.ID,
		"user_id": userID,
	})
	return nil
}
