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

// FertilizationInput carries the writable attributes of a fertilization.
type FertilizationInput struct {
	CropID        uuid.UUID                        `json:"cropId" binding:"required"`
	Date          time.Time                        `json:"date" binding:"required"`
	Type          models.FertilizationType         `json:"type"`
	Intervention  models.AgrotechnicalIntervention `json:"agrotechnicalIntervention"`
	NameOfProduct string                           `json:"nameOfProduct" binding:"max=255"`
	Quantity      *float64                         `json:"quantity" binding:"omitempty,gte=0"`
	Description   string                           `json:"description"`
}

// PlantProtectionInput carries the writable attributes of a plant protection.
type PlantProtectionInput struct {
	CropID        uuid.UUID                        `json:"cropId" binding:"required"`
	Date          time.Time                        `json:"date" binding:"required"`
	Type          models.PlantProtectionType       `json:"type"`
	Intervention  models.AgrotechnicalIntervention `json:"agrotechnicalIntervention"`
	NameOfProduct string                           `json:"nameOfProduct" binding:"max=255"`
	Quantity      *float64                         `json:"quantity" binding:"omitempty,gte=0"`
	Description   string                           `json:"description"`
}

// CultivationOperationInput carries the writable attributes of a cultivation
// operation.
type CultivationOperationInput struct {
	CropID       uuid.UUID                        `json:"cropId" binding:"required"`
	Name         string                           `json:"name" binding:"required,max=255"`
	Date         time.Time                        `json:"date" binding:"required"`
	Intervention models.AgrotechnicalIntervention `json:"agrotechnicalIntervention"`
	Description  string                           `json:"description"`
}

// FertilizationService defines the business logic for fertilization records.
type FertilizationService interface {
	GetFertilization(ctx context.Context, userID, id uuid.UUID) (*FertilizationDTO, error)
	ListFertilizations(ctx context.Context, userID, cropID uuid.UUID) ([]FertilizationDTO, error)
	CreateFertilization(ctx context.Context, userID uuid.UUID, input FertilizationInput) (*FertilizationDTO, error)
	UpdateFertilization(ctx context.Context, userID, id uuid.UUID, input FertilizationInput) (*FertilizationDTO, error)
	DeleteFertilization(ctx context.Context, userID, id uuid.UUID) error

	// FertilizationTypes lists every fertilization type with its label.
	FertilizationTypes() []models.EnumOption

	// Interventions lists every agrotechnical intervention with its label.
	Interventions() []models.EnumOption
}

// PlantProtectionService defines the business logic for plant protection
// records.
type PlantProtectionService interface {
	GetPlantProtection(ctx context.Context, userID, id uuid.UUID) (*PlantProtectionDTO, error)
	ListPlantProtections(ctx context.Context, userID, cropID uuid.UUID) ([]PlantProtectionDTO, error)
	CreatePlantProtection(ctx context.Context, userID uuid.UUID, input PlantProtectionInput) (*PlantProtectionDTO, error)
	UpdatePlantProtection(ctx context.Context, userID, id uuid.UUID, input PlantProtectionInput) (*PlantProtectionDTO, error)
	DeletePlantProtection(ctx context.Context, userID, id uuid.UUID) error

	// PlantProtectionTypes lists every plant protection type with its label.
	PlantProtectionTypes() []models.EnumOption
}

// CultivationOperationService defines the business logic for cultivation
// operations.
type CultivationOperationService interface {
	GetCultivationOperation(ctx context.Context, userID, id uuid.UUID) (*CultivationOperationDTO, error)
	ListCultivationOperations(ctx context.Context, userID, cropID uuid.UUID) ([]CultivationOperationDTO, error)
	CreateCultivationOperation(ctx context.Context, userID uuid.UUID, input CultivationOperationInput) (*CultivationOperationDTO, error)
	UpdateCultivationOperation(ctx context.Context, userID, id uuid.UUID, input CultivationOperationInput) (*CultivationOperationDTO, error)
	DeleteCultivationOperation(ctx context.Context, userID, id uuid.UUID) error
}

type fertilizationService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewFertilizationService creates a new FertilizationService.
func NewFertilizationService(store *repository.Store, log *logger.Logger) FertilizationService {
	return &fertilizationService{store: store, log: log}
}

func (s *fertilizationService) GetFertilization(ctx context.Context, userID, id uuid.UUID) (*FertilizationDTO, error) {
	fert, err := s.store.Fertilizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fert == nil {
		return nil, fmt.Errorf("fertilization %s: %w", id, ErrNotFound)
	}
	crop, _, err := ownedCrop(ctx, s.store, userID, fert.CropID)
	if err != nil {
		return nil, err
	}
	dto := fertilizationDTO(fert, crop)
	return &dto, nil
}

func (s *fertilizationService) ListFertilizations(ctx context.Context, userID, cropID uuid.UUID) ([]FertilizationDTO, error) {
	crop, _, err := ownedCrop(ctx, s.store, userID, cropID)
	if err != nil {
		return nil, err
	}
	ferts, err := s.store.Fertilizations.ByCrop(ctx, crop.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fertilizations of crop %s: %w", crop.ID, err)
	}
	dtos := make([]FertilizationDTO, 0, len(ferts))
	for i := range ferts {
		dtos = append(dtos, fertilizationDTO(&ferts[i], crop))
	}
	return dtos, nil
}

func (s *fertilizationService) CreateFertilization(ctx context.Context, userID uuid.UUID, input FertilizationInput) (*FertilizationDTO, error) {
	crop, _, err := ownedCrop(ctx, s.store, userID, input.CropID)
	if err != nil {
		return nil, err
	}
	fertType := input.Type
	if fertType == "" {
		fertType = models.FertNotSelected
	}
	intervention := input.Intervention
	if intervention == "" {
		intervention = models.InterventionNone
	}
	if !fertType.Valid() {
		return nil, fmt.Errorf("%w: unknown fertilization type %q", ErrInvalidInput, input.Type)
	}
	if !intervention.Valid() {
		return nil, fmt.Errorf("%w: unknown intervention %q", ErrInvalidInput, input.Intervention)
	}
	fert := &models.Fertilization{
		CropID:        crop.ID,
		Date:          input.Date,
		Type:          fertType,
		Intervention:  intervention,
		NameOfProduct: input.NameOfProduct,
		Quantity:      input.Quantity,
		Description:   input.Description,
	}
	if err := s.store.Fertilizations.Add(ctx, fert); err != nil {
		return nil, fmt.Errorf("failed to create fertilization: %w", err)
	}
	s.log.Info("Fertilization created", map[string]interface{}{
		"fertilization_id": fert.ID,
		"crop_id":          crop.ID,
	})
	dto := fertilizationDTO(fert, crop)
	return &dto, nil
}

func (s *fertilizationService) UpdateFertilization(ctx context.Context, userID, id uuid.UUID, input FertilizationInput) (*FertilizationDTO, error) {
	fert, err := s.store.Fertilizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fert == nil {
		return nil, fmt.Errorf("fertilization %s: %w", id, ErrNotFound)
	}
	crop, _, err := ownedCrop(ctx, s.store, userID, fert.CropID)
	if err != nil {
		return nil, err
	}
	if input.CropID != fert.CropID {
		crop, _, err = ownedCrop(ctx, s.store, userID, input.CropID)
		if err != nil {
			return nil, err
		}
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown fertilization type %q", ErrInvalidInput, input.Type)
	}
	if !input.Intervention.Valid() {
		return nil, fmt.Errorf("%w: unknown intervention %q", ErrInvalidInput, input.Intervention)
	}
	fert.CropID = crop.ID
	fert.Date = input.Date
	fert.Type = input.Type
	fert.Intervention = input.Intervention
	fert.NameOfProduct = input.NameOfProduct
	fert.Quantity = input.Quantity
	fert.Description = input.Description
	if err := s.store.Fertilizations.Update(ctx, fert); err != nil {
		return nil, fmt.Errorf("failed to update fertilization %s: %w", fert.ID, err)
	}
	dto := fertilizationDTO(fert, crop)
	return &dto, nil
}

func (s *fertilizationService) DeleteFertilization(ctx context.Context, userID, id uuid.UUID) error {
	fert, err := s.store.Fertilizations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fert == nil {
		return fmt.Errorf("fertilization %s: %w", id, ErrNotFound)
	}
	if _, _, err := ownedCrop(ctx, s.store, userID, fert.CropID); err != nil {
		return err
	}
	if err := s.store.Fertilizations.Delete(ctx, fert.ID); err != nil {
		return fmt.Errorf("failed to delete fertilization %s: %w", fert.ID, err)
	}
	return nil
}

func (s *fertilizationService) FertilizationTypes() []models.EnumOption {
	return models.FertilizationTypes()
}

func (s *fertilizationService) Interventions() []models.EnumOption {
	return models.AgrotechnicalInterventions()
}

type plantProtectionService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewPlantProtectionService creates a new PlantProtectionService.
func NewPlantProtectionService(store *repository.Store, log *logger.Logger) PlantProtectionService {
	return &plantProtectionService{store: store, log: log}
}

func (s *plantProtectionService) GetPlantProtection(ctx context.Context, userID, id uuid.UUID) (*PlantProtectionDTO, error) {
	prot, err := s.store.PlantProtections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prot == nil {
		return nil, fmt.Errorf("plant protection %s: %w", id, ErrNotFound)
	}
	crop, _, err := ownedCrop(ctx, s.store, userID, prot.CropID)
	if err != nil {
		return nil, err
	}
	dto := plantProtectionDTO(prot, crop)
	return &dto, nil
}

func (s *plantProtectionService) ListPlantProtections(ctx context.Context, userID, cropID uuid.UUID) ([]PlantProtectionDTO, error) {
	crop, _, err := ownedCrop(ctx, s.store, userID, cropID)
	if err != nil {
		return nil, err
	}
	prots, err := s.store.PlantProtections.ByCrop(ctx, crop.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plant protections of crop %s: %w", crop.ID, err)
	}
	dtos := make([]PlantProtectionDTO, 0, len(prots))
	for i := range prots {
		dtos = append(dtos, plantProtectionDTO(&prots[i], crop))
	}
	return dtos, nil
}

func (s *plantProtectionService) CreatePlantProtection(ctx context.Context, userID uuid.UUID, input PlantProtectionInput) (*PlantProtectionDTO, error) {
	crop, _, err := ownedCrop(ctx, s.store, userID, input.CropID)
	if err != nil {
		return nil, err
	}
	protType := input.Type
	if protType == "" {
		protType = models.ProtOther
	}
	intervention := input.Intervention
	if intervention == "" {
		intervention = models.InterventionNone
	}
	if !protType.Valid() {
		return nil, fmt.Errorf("%w: unknown plant protection type %q", ErrInvalidInput, input.Type)
	}
	if !intervention.Valid() {
		return nil, fmt.Errorf("%w: unknown intervention %q", ErrInvalidInput, input.Intervention)
	}
	prot := &models.PlantProtection{
		CropID:        crop.ID,
		Date:          input.Date,
		Type:          protType,
		Intervention:  intervention,
		NameOfProduct: input.NameOfProduct,
		Quantity:      input.Quantity,
		Description:   input.Description,
	}
	if err := s.store.PlantProtections.Add(ctx, prot); err != nil {
		return nil, fmt.Errorf("failed to create plant protection: %w", err)
	}
	s.log.Info("Plant protection created", map[string]interface{}{
		"plant_protection_id": prot.ID,
		"crop_id":             crop.ID,
	})
	dto := plantProtectionDTO(prot, crop)
	return &dto, nil
}

func (s *plantProtectionService) UpdatePlantProtection(ctx context.Context, userID, id uuid.UUID, input PlantProtectionInput) (*PlantProtectionDTO, error) {
	prot, err := s.store.PlantProtections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prot == nil {
		return nil, fmt.Errorf("plant protection %s: %w", id, ErrNotFound)
	}
	crop, _, err := ownedCrop(ctx, s.store, userID, prot.CropID)
	if err != nil {
		return nil, err
	}
	if input.CropID != prot.CropID {
		crop, _, err = ownedCrop(ctx, s.store, userID, input.CropID)
		if err != nil {
			return nil, err
		}
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown plant protection type %q", ErrInvalidInput, input.Type)
	}
	if !input.Intervention.Valid() {
		return nil, fmt.Errorf("%w: unknown intervention %q", ErrInvalidInput, input.Intervention)
	}
	prot.CropID = crop.ID
	prot.Date = input.Date
	prot.Type = input.Type
	prot.Intervention = input.Intervention
	prot.NameOfProduct = input.NameOfProduct
	prot.Quantity = input.Quantity
	prot.Description = input.Description
	if err := s.store.PlantProtections.Update(ctx, prot); err != nil {
		return nil, fmt.Errorf("failed to update plant protection %s: %w", prot.ID, err)
	}
	dto := plantProtectionDTO(prot, crop)
	return &dto, nil
}

func (s *plantProtectionService) DeletePlantProtection(ctx context.Context, userID, id uuid.UUID) error {
	prot, err := s.store.PlantProtections.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prot == nil {
		return fmt.Errorf("plant protection %s: %w", id, ErrNotFound)
	}
	if _, _, err := ownedCrop(ctx, s.store, userID, prot.CropID); err != nil {
		return err
	}
	if err := s.store.PlantProtections.Delete(ctx, prot.ID); err != nil {
		return fmt.Errorf("failed to delete plant protection %s: %w", prot.ID, err)
	}
	return nil
}

func (s *plantProtectionService) PlantProtectionTypes() []models.EnumOption {
	return models.PlantProtectionTypes()
}

type cultivationOperationService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewCultivationOperationService creates a new CultivationOperationService.
func NewCultivationOperationService(store *repository.Store, log *logger.Logger) CultivationOperationService {
	return &cultivationOperationService{store: store, log: log}
}

func (s *cultivationOperationService) GetCultivationOperation(ctx context.Context, userID, id uuid.UUID) (*CultivationOperationDTO, error) {
	op, err := s.store.CultivationOperations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, fmt.Errorf("cultivation operation %s: %w", id, ErrNotFound)
	}
	crop, _, err := ownedCrop(ctx, s.store, userID, op.CropID)
	if err != nil {
		return nil, err
	}
	dto := cultivationOperationDTO(op, crop)
	return &dto, nil
}

func (s *cultivationOperationService) ListCultivationOperations(ctx context.Context, userID, cropID uuid.UUID) ([]CultivationOperationDTO, error) {
	crop, _, err := ownedCrop(ctx, s.store, userID, cropID)
	if err != nil {
		return nil, err
	}
	ops, err := s.store.CultivationOperations.ByCrop(ctx, crop.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cultivation operations of crop %s: %w", crop.ID, err)
	}
	dtos := make([]CultivationOperationDTO, 0, len(ops))
	for i := range ops {
		dtos = append(dtos, cultivationOperationDTO(&ops[i], crop))
	}
	return dtos, nil
}

func (s *cultivationOperationService) CreateCultivationOperation(ctx context.Context, userID uuid.UUID, input CultivationOperationInput) (*CultivationOperationDTO, error) {
	crop, _, err := ownedCrop(ctx, s.store, userID, input.CropID)
	if err != nil {
		return nil, err
	}
	intervention := input.Intervention
	if intervention == "" {
		intervention = models.InterventionNone
	}
	if !intervention.Valid() {
		return nil, fmt.Errorf("%w: unknown intervention %q", ErrInvalidInput, input.Intervention)
	}
	op := &models.CultivationOperation{
		CropID:       crop.ID,
		Name:         input.Name,
		Date:         input.Date,
		Intervention: intervention,
		Description:  input.Description,
	}
	if err := s.store.CultivationOperations.Add(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to create cultivation operation: %w", err)
	}
	s.log.Info("Cultivation operation created", map[string]interface{}{
		"operation_id": op.ID,
		"crop_id":      crop.ID,
	})
	dto := cultivationOperationDTO(op, crop)
	return &dto, nil
}

func (s *cultivationOperationService) UpdateCultivationOperation(ctx context.Context, userID, id uuid.UUID, input CultivationOperationInput) (*CultivationOperationDTO, error) {
	op, err := s.store.CultivationOperations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, fmt.Errorf("cultivation operation %s: %w", id, ErrNotFound)
	}
	crop, _, err := ownedCrop(ctx, s.store, userID, op.CropID)
	if err != nil {
		return nil, err
	}
	if input.CropID != op.CropID {
		crop, _, err = ownedCrop(ctx, s.store, userID, input.CropID)
		if err != nil {
			return nil, err
		}
	}
	if !input.Intervention.Valid() {
		return nil, fmt.Errorf("%w: unknown intervention %q", ErrInvalidInput, input.Intervention)
	}
	op.CropID = crop.ID
	op.Name = input.Name
	op.Date = input.Date
	op.Intervention = input.Intervention
	op.Description = input.Description
	if err := s.store.CultivationOperations.Update(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to update cultivation operation %s: %w", op.ID, err)
	}
	dto := cultivationOperationDTO(op, crop)
	return &dto, nil
}

func (s *cultivationOperationService) DeleteCultivationOperation(ctx context.Context, userID, id uuid.UUID) error {
	op, err := s.store.CultivationOperations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if op == nil {
		return fmt.Errorf("cultivation operation %s: %w", id, ErrNotFound)
	}
	if _, _, err := ownedCrop(ctx, s.store, userID, op.CropID); err != nil {
		return err
	}
	if err := s.store.CultivationOperations.Delete(ctx, op.ID); err != nil {
		return fmt.Errorf("failed to delete cultivation operation %s: %w", op.ID, err)
	}
	return nil
}
