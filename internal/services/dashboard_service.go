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

// HomeSummary aggregates the current user's holdings for the landing page.
type HomeSummary struct {
	FarmCount             int        `json:"farmCount"`
	FieldCount            int        `json:"fieldCount"`
	TotalArea             float64    `json:"totalArea"`
	ActiveCropCount       int        `json:"activeCropCount"`
	LatestSoilMeasurement *time.Time `json:"latestSoilMeasurement,omitempty"`
}

// MapField is one field of a farm with its boundary and active crop, shaped
// for map rendering.
type MapField struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Area        *float64        `json:"area,omitempty"`
	Coordinates models.Boundary `json:"coordinates,omitempty"`
	ActiveCrop  *string         `json:"activeCrop,omitempty"`
}

// DashboardService provides the aggregated read models behind the landing
// page and the farm map.
type DashboardService interface {
	// Home builds the dashboard summary for the user.
	Home(ctx context.Context, userID uuid.UUID) (*HomeSummary, error)

	// MapData lists every field of the farm with boundary and active crop.
	MapData(ctx context.Context, userID, farmID uuid.UUID) ([]MapField, error)
}

type dashboardService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *repository.Store, log *logger.Logger) DashboardService {
	return &dashboardService{store: store, log: log}
}

func (s *dashboardService) Home(ctx context.Context, userID uuid.UUID) (*HomeSummary, error) {
	farms, err := s.store.Farms.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	summary := &HomeSummary{FarmCount: len(farms)}
	for _, farm := range farms {
		fields, err := s.store.Fields.ByFarm(ctx, farm.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list fields of farm %s: %w", farm.ID, err)
		}
		summary.FieldCount += len(fields)
		for _, field := range fields {
			if field.Area != nil {
				summary.TotalArea += *field.Area
			}
		}
	}
	active, err := s.store.Crops.ActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active crops: %w", err)
	}
	summary.ActiveCropCount = len(active)

	latest, err := s.store.SoilMeasurements.LatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		summary.LatestSoilMeasurement = &latest.Date
	}
	return summary, nil
}

func (s *dashboardService) MapData(ctx context.Context, userID, farmID uuid.UUID) ([]MapField, error) {
	farm, err := ownedFarm(ctx, s.store, userID, farmID)
	if err != nil {
		return nil, err
	}
	fields, err := s.store.Fields.ByFarm(ctx, farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields of farm %s: %w", farm.ID, err)
	}
	mapped := make([]MapField, 0, len(fields))
	for i := range fields {
		field := &fields[i]
		entry := MapField{
			ID:          field.ID,
			Name:        field.Name,
			Area:        field.Area,
			Coordinates: field.Coordinates,
		}
		crop, err := s.store.Crops.ActiveByField(ctx, field.ID)
		if err != nil {
			return nil, err
		}
		if crop != nil {
			name := crop.Name
			entry.ActiveCrop = &name
		}
		mapped = append(mapped, entry)
	}
	return mapped, nil
}
