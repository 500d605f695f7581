package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmledger/api/internal/models"
)

// UserRepository adds user lookups to the generic repository.
type UserRepository struct {
	*Repository[models.User]
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{NewRepository[models.User](db)}
}

// ByEmail finds a user by email. Returns nil, nil when no user matches.
func (r *UserRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, "email = ?", email)
}

// ByName finds a user by account name. Returns nil, nil when no user matches.
func (r *UserRepository) ByName(ctx context.Context, name string) (*models.User, error) {
	return r.first(ctx, "name = ?", name)
}

// FarmRepository adds farm lookups to the generic repository.
type FarmRepository struct {
	*Repository[models.Farm]
}

// NewFarmRepository creates a FarmRepository.
func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{NewRepository[models.Farm](db)}
}

// ByUser lists the farms owned by the given user.
func (r *FarmRepository) ByUser(ctx context.Context, userID uuid.UUID) ([]models.Farm, error) {
	return r.list(ctx, "name", "user_id = ?", userID)
}

// FieldRepository adds field lookups to the generic repository.
type FieldRepository struct {
	*Repository[models.Field]
}

// NewFieldRepository creates a FieldRepository.
func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{NewRepository[models.Field](db)}
}

// ByFarm lists the fields of the given farm.
func (r *FieldRepository) ByFarm(ctx context.Context, farmID uuid.UUID) ([]models.Field, error) {
	return r.list(ctx, "name", "farm_id = ?", farmID)
}

// ByCoordinates finds a field whose stored boundary serialization matches
// exactly. The GML import uses this to detect already-imported boundaries.
// Returns nil, nil when no field matches.
func (r *FieldRepository) ByCoordinates(ctx context.Context, serialized string) (*models.Field, error) {
	return r.first(ctx, "coordinates = ?", serialized)
}

// CropRepository adds crop lookups to the generic repository.
type CropRepository struct {
	*Repository[models.Crop]
}

// NewCropRepository creates a CropRepository.
func NewCropRepository(db *gorm.DB) *CropRepository {
	return &CropRepository{NewRepository[models.Crop](db)}
}

// ByField lists every crop on the given field.
func (r *CropRepository) ByField(ctx context.Context, fieldID uuid.UUID) ([]models.Crop, error) {
	return r.list(ctx, "name", "field_id = ?", fieldID)
}

// ActiveByField finds the field's active crop. Returns nil, nil when the
// field has none.
func (r *CropRepository) ActiveByField(ctx context.Context, fieldID uuid.UUID) (*models.Crop, error) {
	return r.first(ctx, "field_id = ? AND is_active = ?", fieldID, true)
}

// ByIdentifier finds a crop by its external identifier within one field.
// Returns nil, nil when none matches.
func (r *CropRepository) ByIdentifier(ctx context.Context, fieldID uuid.UUID, identifier string) (*models.Crop, error) {
	return r.first(ctx, "field_id = ? AND crop_identifier = ?", fieldID, identifier)
}

// FieldByIdentifier finds the field that holds a crop with the given external
// identifier, scoped to one farm. The CSV import uses this reverse lookup to
// attach reference parcels. Returns nil, nil when no crop carries the
// identifier.
func (r *CropRepository) FieldByIdentifier(ctx context.Context, farmID uuid.UUID, identifier string) (*models.Field, error) {
	var field models.Field
	err := r.db.WithContext(ctx).
		Joins("JOIN crops ON crops.field_id = fields.id").
		Where("fields.farm_id = ? AND crops.crop_identifier = ?", farmID, identifier).
		First(&field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query field for crop identifier %q: %w", identifier, err)
	}
	return &field, nil
}

// ActiveByUser lists the active crops across every farm of the given user.
func (r *CropRepository) ActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Crop, error) {
	var crops []models.Crop
	err := r.db.WithContext(ctx).
		Joins("JOIN fields ON fields.id = crops.field_id").
		Joins("JOIN farms ON farms.id = fields.farm_id").
		Where("farms.user_id = ? AND crops.is_active = ?", userID, true).
		Find(&crops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query active crops for user %s: %w", userID, err)
	}
	if crops == nil {
		crops = []models.Crop{}
	}
	return crops, nil
}

// DeactivateOthers clears the active flag on every crop of the field except
// the given one. Runs inside the activation transaction.
func (r *CropRepository) DeactivateOthers(ctx context.Context, fieldID, keepID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&models.Crop{}).
		Where("field_id = ? AND id <> ? AND is_active = ?", fieldID, keepID, true).
		Update("is_active", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate sibling crops on field %s: %w", fieldID, err)
	}
	return nil
}

// FertilizationRepository adds fertilization lookups to the generic repository.
type FertilizationRepository struct {
	*Repository[models.Fertilization]
}

// NewFertilizationRepository creates a FertilizationRepository.
func NewFertilizationRepository(db *gorm.DB) *FertilizationRepository {
	return &FertilizationRepository{NewRepository[models.Fertilization](db)}
}

// ByCrop lists the fertilizations of the given crop, oldest first.
func (r *FertilizationRepository) ByCrop(ctx context.Context, cropID uuid.UUID) ([]models.Fertilization, error) {
	return r.list(ctx, "date", "crop_id = ?", cropID)
}

// PlantProtectionRepository adds plant protection lookups to the generic repository.
type PlantProtectionRepository struct {
	*Repository[models.PlantProtection]
}

// NewPlantProtectionRepository creates a PlantProtectionRepository.
func NewPlantProtectionRepository(db *gorm.DB) *PlantProtectionRepository {
	return &PlantProtectionRepository{NewRepository[models.PlantProtection](db)}
}

// ByCrop lists the plant protections of the given crop, oldest first.
func (r *PlantProtectionRepository) ByCrop(ctx context.Context, cropID uuid.UUID) ([]models.PlantProtection, error) {
	return r.list(ctx, "date", "crop_id = ?", cropID)
}

// CultivationOperationRepository adds cultivation operation lookups to the
// generic repository.
type CultivationOperationRepository struct {
	*Repository[models.CultivationOperation]
}

// NewCultivationOperationRepository creates a CultivationOperationRepository.
func NewCultivationOperationRepository(db *gorm.DB) *CultivationOperationRepository {
	return &CultivationOperationRepository{NewRepository[models.CultivationOperation](db)}
}

// ByCrop lists the cultivation operations of the given crop, oldest first.
func (r *CultivationOperationRepository) ByCrop(ctx context.Context, cropID uuid.UUID) ([]models.CultivationOperation, error) {
	return r.list(ctx, "date", "crop_id = ?", cropID)
}

// ReferenceParcelRepository adds parcel lookups to the generic repository.
type ReferenceParcelRepository struct {
	*Repository[models.ReferenceParcel]
}

// NewReferenceParcelRepository creates a ReferenceParcelRepository.
func NewReferenceParcelRepository(db *gorm.DB) *ReferenceParcelRepository {
	return &ReferenceParcelRepository{NewRepository[models.ReferenceParcel](db)}
}

// ByField lists the reference parcels of the given field.
func (r *ReferenceParcelRepository) ByField(ctx context.Context, fieldID uuid.UUID) ([]models.ReferenceParcel, error) {
	return r.list(ctx, "parcel_number", "field_id = ?", fieldID)
}

// ByNumber finds a parcel by its number within one field. Returns nil, nil
// when none matches.
func (r *ReferenceParcelRepository) ByNumber(ctx context.Context, fieldID uuid.UUID, number string) (*models.ReferenceParcel, error) {
	return r.first(ctx, "field_id = ? AND parcel_number = ?", fieldID, number)
}

// SoilMeasurementRepository adds soil measurement lookups to the generic
// repository.
type SoilMeasurementRepository struct {
	*Repository[models.SoilMeasurement]
}

// NewSoilMeasurementRepository creates a SoilMeasurementRepository.
func NewSoilMeasurementRepository(db *gorm.DB) *SoilMeasurementRepository {
	return &SoilMeasurementRepository{NewRepository[models.SoilMeasurement](db)}
}

// ByField lists the soil measurements of the given field, newest first.
func (r *SoilMeasurementRepository) ByField(ctx context.Context, fieldID uuid.UUID) ([]models.SoilMeasurement, error) {
	return r.list(ctx, "date DESC", "field_id = ?", fieldID)
}

// LatestByUser finds the most recent soil measurement across every field of
// the user's farms. Returns nil, nil when the user has none.
func (r *SoilMeasurementRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (*models.SoilMeasurement, error) {
	var m models.SoilMeasurement
	err := r.db.WithContext(ctx).
		Joins("JOIN fields ON fields.id = soil_measurements.field_id").
		Joins("JOIN farms ON farms.id = fields.farm_id").
		Where("farms.user_id = ?", userID).
		Order("soil_measurements.date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest soil measurement for user %s: %w", userID, err)
	}
	return &m, nil
}
