package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the typed repositories over one database handle so services
// can take a single dependency and so multi-write sequences can run inside
// one transaction.
type Store struct {
	db *gorm.DB

	Users                 *UserRepository
	Farms                 *FarmRepository
	Fields                *FieldRepository
	Crops                 *CropRepository
	Fertilizations        *FertilizationRepository
	PlantProtections      *PlantProtectionRepository
	CultivationOperations *CultivationOperationRepository
	ReferenceParcels      *ReferenceParcelRepository
	SoilMeasurements      *SoilMeasurementRepository
}

// NewStore creates a Store with every typed repository bound to db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:                    db,
		Users:                 NewUserRepository(db),
		Farms:                 NewFarmRepository(db),
		Fields:                NewFieldRepository(db),
		Crops:                 NewCropRepository(db),
		Fertilizations:        NewFertilizationRepository(db),
		PlantProtections:      NewPlantProtectionRepository(db),
		CultivationOperations: NewCultivationOperationRepository(db),
		ReferenceParcels:      NewReferenceParcelRepository(db),
		SoilMeasurements:      NewSoilMeasurementRepository(db),
	}
}

// WithTx runs fn against a Store bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
