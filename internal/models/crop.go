package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Crop is a planting on a field. CropIdentifier carries the external
// designation assigned by the GML import ("oznaczenie uprawy"); crops created
// by hand have none. At most one crop per field may be active at a time;
// the service layer deactivates siblings inside the activating transaction.
type Crop struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FieldID        uuid.UUID `gorm:"type:uuid;index;not null" json:"fieldId"`
	Field          *Field    `json:"-"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	CropIdentifier *string   `gorm:"size:100;index" json:"cropIdentifier,omitempty"`
	Type           CropType  `gorm:"size:32;not null;default:'not_selected'" json:"type"`
	IsActive       bool      `gorm:"not null;default:false" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Fertilizations        []Fertilization        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PlantProtections      []PlantProtection      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CultivationOperations []CultivationOperation `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (c *Crop) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
