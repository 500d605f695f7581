package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/models"
)

// MiniItem is the {id,name} reference pair used wherever a DTO points at a
// related entity instead of embedding it.
type MiniItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserDTO is the public view of an account. The password hash never leaves
// the service layer.
type UserDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// FarmDTO is the response shape for a farm, with its fields as references.
type FarmDTO struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Location  *string    `json:"location,omitempty"`
	TotalArea *float64   `json:"totalArea,omitempty"`
	Fields    []MiniItem `json:"fields"`
}

// FieldDTO is the response shape for a field, with its farm and crops as
// references.
type FieldDTO struct {
	ID            uuid.UUID       `json:"id"`
	Farm          MiniItem        `json:"farm"`
	Name          string          `json:"name"`
	Area          *float64        `json:"area,omitempty"`
	SoilType      models.SoilType `json:"soilType"`
	SoilTypeLabel string          `json:"soilTypeLabel"`
	Coordinates   models.Boundary `json:"coordinates,omitempty"`
	Crops         []MiniItem      `json:"crops"`
}

// CropDTO is the response shape for a crop, with its field as a reference.
type CropDTO struct {
	ID             uuid.UUID       `json:"id"`
	Field          MiniItem        `json:"field"`
	Name           string          `json:"name"`
	CropIdentifier *string         `json:"cropIdentifier,omitempty"`
	Type           models.CropType `json:"type"`
	TypeLabel      string          `json:"typeLabel"`
	IsActive       bool            `json:"isActive"`
}

// FertilizationDTO is the response shape for a fertilization record.
type FertilizationDTO struct {
	ID                uuid.UUID                        `json:"id"`
	Crop              MiniItem                         `json:"crop"`
	Date              time.Time                        `json:"date"`
	Type              models.FertilizationType         `json:"type"`
	TypeLabel         string                           `json:"typeLabel"`
	Intervention      models.AgrotechnicalIntervention `json:"agrotechnicalIntervention"`
	InterventionLabel string                           `json:"agrotechnicalInterventionLabel"`
	NameOfProduct     string                           `json:"nameOfProduct"`
	Quantity          *float64                         `json:"quantity,omitempty"`
	Description       string                           `json:"description"`
}

// PlantProtectionDTO is the response shape for a plant protection record.
type PlantProtectionDTO struct {
	ID                uuid.UUID                        `json:"id"`
	Crop              MiniItem                         `json:"crop"`
	Date              time.Time                        `json:"date"`
	Type              models.PlantProtectionType       `json:"type"`
	TypeLabel         string                           `json:"typeLabel"`
	Intervention      models.AgrotechnicalIntervention `json:"agrotechnicalIntervention"`
	InterventionLabel string                           `json:"agrotechnicalInterventionLabel"`
	NameOfProduct     string                           `json:"nameOfProduct"`
	Quantity          *float64                         `json:"quantity,omitempty"`
	Description       string                           `json:"description"`
}

// CultivationOperationDTO is the response shape for a cultivation operation.
type CultivationOperationDTO struct {
	ID                uuid.UUID                        `json:"id"`
	Crop              MiniItem                         `json:"crop"`
	Name              string                           `json:"name"`
	Date              time.Time                        `json:"date"`
	Intervention      models.AgrotechnicalIntervention `json:"agrotechnicalIntervention"`
	InterventionLabel string                           `json:"agrotechnicalInterventionLabel"`
	Description       string                           `json:"description"`
}

// ReferenceParcelDTO is the response shape for a reference parcel.
type ReferenceParcelDTO struct {
	ID           uuid.UUID `json:"id"`
	Field        MiniItem  `json:"field"`
	ParcelNumber string    `json:"parcelNumber"`
	Area         *float64  `json:"area,omitempty"`
}

// SoilMeasurementDTO is the response shape for a soil measurement.
type SoilMeasurementDTO struct {
	ID         uuid.UUID `json:"id"`
	Field      MiniItem  `json:"field"`
	Date       time.Time `json:"date"`
	PH         *float64  `json:"ph,omitempty"`
	Nitrogen   *float64  `json:"nitrogen,omitempty"`
	Phosphorus *float64  `json:"phosphorus,omitempty"`
	Potassium  *float64  `json:"potassium,omitempty"`
}

func userDTO(u *models.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func farmDTO(f *models.Farm, fields []models.Field) FarmDTO {
	dto := FarmDTO{
		ID:        f.ID,
		Name:      f.Name,
		Location:  f.Location,
		TotalArea: f.TotalArea,
		Fields:    make([]MiniItem, 0, len(fields)),
	}
	for _, field := range fields {
		dto.Fields = append(dto.Fields, MiniItem{ID: field.ID, Name: field.Name})
	}
	return dto
}

func fieldDTO(f *models.Field, farm *models.Farm, crops []models.Crop) FieldDTO {
	dto := FieldDTO{
		ID:            f.ID,
		Farm:          MiniItem{ID: farm.ID, Name: farm.Name},
		Name:          f.Name,
		Area:          f.Area,
		SoilType:      f.SoilType,
		SoilTypeLabel: f.SoilType.Label(),
		Coordinates:   f.Coordinates,
		Crops:         make([]MiniItem, 0, len(crops)),
	}
	for _, crop := range crops {
		dto.Crops = append(dto.Crops, MiniItem{ID: crop.ID, Name: crop.Name})
	}
	return dto
}

func cropDTO(c *models.Crop, field *models.Field) CropDTO {
	return CropDTO{
		ID:             c.ID,
		Field:          MiniItem{ID: field.ID, Name: field.Name},
		Name:           c.Name,
		CropIdentifier: c.CropIdentifier,
		Type:           c.Type,
		TypeLabel:      c.Type.Label(),
		IsActive:       c.IsActive,
	}
}

func fertilizationDTO(f *models.Fertilization, crop *models.Crop) FertilizationDTO {
	return FertilizationDTO{
		ID:                f.ID,
		Crop:              MiniItem{ID: crop.ID, Name: crop.Name},
		Date:              f.Date,
		Type:              f.Type,
		TypeLabel:         f.Type.Label(),
		Intervention:      f.Intervention,
		InterventionLabel: f.Intervention.Label(),
		NameOfProduct:     f.NameOfProduct,
		Quantity:          f.Quantity,
		Description:       f.Description,
	}
}

func plantProtectionDTO(p *models.PlantProtection, crop *models.Crop) PlantProtectionDTO {
	return PlantProtectionDTO{
		ID:                p.ID,
		Crop:              MiniItem{ID: crop.ID, Name: crop.Name},
		Date:              p.Date,
		Type:              p.Type,
		TypeLabel:         p.Type.Label(),
		Intervention:      p.Intervention,
		InterventionLabel: p.Intervention.Label(),
		NameOfProduct:     p.NameOfProduct,
		Quantity:          p.Quantity,
		Description:       p.Description,
	}
}

func cultivationOperationDTO(o *models.CultivationOperation, crop *models.Crop) CultivationOperationDTO {
	return CultivationOperationDTO{
		ID:                o.ID,
		Crop:              MiniItem{ID: crop.ID, Name: crop.Name},
		Name:              o.Name,
		Date:              o.Date,
		Intervention:      o.Intervention,
		InterventionLabel: o.Intervention.Label(),
		Description:       o.Description,
	}
}

func referenceParcelDTO(p *models.ReferenceParcel, field *models.Field) ReferenceParcelDTO {
	return ReferenceParcelDTO{
		ID:           p.ID,
		Field:        MiniItem{ID: field.ID, Name: field.Name},
		ParcelNumber: p.ParcelNumber,
		Area:         p.Area,
	}
}

func soilMeasurementDTO(m *models.SoilMeasurement, field *models.Field) SoilMeasurementDTO {
	return SoilMeasurementDTO{
		ID:         m.ID,
		Field:      MiniItem{ID: field.ID, Name: field.Name},
		Date:       m.Date,
		PH:         m.PH,
		Nitrogen:   m.Nitrogen,
		Phosphorus: m.Phosphorus,
		Potassium:  m.Potassium,
	}
}
