package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fertilization records a fertilizer application on a crop.
// Quantity is expressed in tonnes per hectare.
type Fertilization struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	CropID        uuid.UUID                 `gorm:"type:uuid;index;not null" json:"cropId"`
	Crop          *Crop                     `json:"-"`
	Date          time.Time                 `gorm:"not null" json:"date"`
	Type          FertilizationType         `gorm:"size:32;not null;default:'not_selected'" json:"type"`
	Intervention  AgrotechnicalIntervention `gorm:"size:32;not null;default:'none'" json:"agrotechnicalIntervention"`
	NameOfProduct string                    `gorm:"size:255" json:"nameOfProduct"`
	Quantity      *float64                  `json:"quantity,omitempty"`
	Description   string                    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (f *Fertilization) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// PlantProtection records a plant protection product application on a crop.
// Quantity is expressed in liters per hectare.
type PlantProtection struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	CropID        uuid.UUID                 `gorm:"type:uuid;index;not null" json:"cropId"`
	Crop          *Crop                     `json:"-"`
	Date          time.Time                 `gorm:"not null" json:"date"`
	Type          PlantProtectionType       `gorm:"size:32;not null;default:'other'" json:"type"`
	Intervention  AgrotechnicalIntervention `gorm:"size:32;not null;default:'none'" json:"agrotechnicalIntervention"`
	NameOfProduct string                    `gorm:"size:255" json:"nameOfProduct"`
	Quantity      *float64                  `json:"quantity,omitempty"`
	Description   string                    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (p *PlantProtection) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// CultivationOperation records an agrotechnical operation (plowing, sowing,
// harvesting, ...) on a crop. Operations carry no product or quantity.
type CultivationOperation struct {
	ID           uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	CropID       uuid.UUID                 `gorm:"type:uuid;index;not null" json:"cropId"`
	Crop         *Crop                     `json:"-"`
	Name         string                    `gorm:"size:255;not null" json:"name"`
	Date         time.Time                 `gorm:"not null" json:"date"`
	Intervention AgrotechnicalIntervention `gorm:"size:32;not null;default:'none'" json:"agrotechnicalIntervention"`
	Description  string                    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (o *CultivationOperation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
