package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Farm groups the fields a user manages. Nullable attributes use pointers to
// distinguish zero values from NULL.
type Farm struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Location  *string   `gorm:"size:500" json:"location,omitempty"`
	TotalArea *float64  `json:"totalArea,omitempty"`
	Fields    []Field   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (f *Farm) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
