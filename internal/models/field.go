package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Field is a cultivated area inside a farm. Coordinates hold the imported
// boundary ring, serialized to a text column; fields created by hand have no
// boundary.
type Field struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	FarmID           uuid.UUID         `gorm:"type:uuid;index;not null" json:"farmId"`
	Farm             *Farm             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name             string            `gorm:"size:255;not null" json:"name"`
	Area             *float64          `json:"area,omitempty"`
	SoilType         SoilType          `gorm:"size:32;not null;default:'not_selected'" json:"soilType"`
	Coordinates      Boundary          `json:"coordinates,omitempty"`
	Crops            []Crop            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReferenceParcels []ReferenceParcel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SoilMeasurements []SoilMeasurement `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (f *Field) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// ReferenceParcel is a legally registered land-parcel number attached to a
// field, used to attribute report rows to legal parcels.
type ReferenceParcel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FieldID      uuid.UUID `gorm:"type:uuid;index;not null" json:"fieldId"`
	Field        *Field    `json:"-"`
	ParcelNumber string    `gorm:"size:100;not null" json:"parcelNumber"`
	Area         *float64  `json:"area,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (p *ReferenceParcel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// SoilMeasurement records a soil sample taken on a field.
type SoilMeasurement struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FieldID    uuid.UUID `gorm:"type:uuid;index;not null" json:"fieldId"`
	Field      *Field    `json:"-"`
	Date       time.Time `gorm:"not null" json:"date"`
	PH         *float64  `gorm:"column:ph" json:"ph,omitempty"`
	Nitrogen   *float64  `json:"nitrogen,omitempty"`
	Phosphorus *float64  `json:"phosphorus,omitempty"`
	Potassium  *float64  `json:"potassium,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (m *SoilMeasurement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
