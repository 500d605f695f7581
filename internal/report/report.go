// Package report builds the regulatory agrotechnical activities report
// ("Wykaz działań agrotechnicznych") for a farm, in data, HTML, PDF and
// XLSX renditions.
package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// Report assembly errors.
var (
	ErrFarmNotFound = errors.New("farm not found")
	ErrFarmNotOwned = errors.New("farm not owned by user")
	ErrNoFields     = errors.New("no fields for this farm")
)

// ActivityRow is one line of the report: a single activity of the field's
// active crop attributed to a single registered parcel.
type ActivityRow struct {
	CropIdentifier string    `json:"cropIdentifier"`
	ParcelNumber   string    `json:"parcelNumber"`
	Date           time.Time `json:"date"`
	Area           *float64  `json:"area,omitempty"`
	TypeOfUse      string    `json:"typeOfUse"`
	Activity       string    `json:"activity"`
	Product        string    `json:"product"`
	Amount         string    `json:"amount"`
	Intervention   string    `json:"intervention"`
	Comments       string    `json:"comments"`
}

// DateString renders the activity date for the report table.
func (r ActivityRow) DateString() string {
	return r.Date.Format("2006-01-02")
}

// AreaString renders the parcel area, "-" when unknown.
func (r ActivityRow) AreaString() string {
	if r.Area == nil {
		return "-"
	}
	return strconv.FormatFloat(*r.Area, 'f', -1, 64)
}

// Service assembles and renders the report.
type Service struct {
	store *repository.Store
	log   *logger.Logger
}

// NewService creates a report Service.
func NewService(store *repository.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Rows assembles the flat report rows for a farm. Every field contributes
// its active crop's cultivation operations, plant protections and
// fertilizations, each crossed with the field's registered parcels; fields
// without an active crop contribute nothing.
func (s *Service) Rows(ctx context.Context, userID, farmID uuid.UUID) ([]ActivityRow, error) {
	farm, err := s.store.Farms.GetByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}
	if farm.UserID != userID {
		return nil, ErrFarmNotOwned
	}
	fields, err := s.store.Fields.ByFarm(ctx, farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields of farm %s: %w", farm.ID, err)
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	var rows []ActivityRow
	for i := range fields {
		fieldRows, err := s.fieldRows(ctx, &fields[i])
		if err != nil {
			return nil, err
		}
		rows = append(rows, fieldRows...)
	}
	if rows == nil {
		rows = []ActivityRow{}
	}
	return rows, nil
}

func (s *Service) fieldRows(ctx context.Context, field *models.Field) ([]ActivityRow, error) {
	crop, err := s.store.Crops.ActiveByField(ctx, field.ID)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, nil
	}
	parcels, err := s.store.ReferenceParcels.ByField(ctx, field.ID)
	if err != nil {
		return nil, err
	}

	identifier := ""
	if crop.CropIdentifier != nil {
		identifier = *crop.CropIdentifier
	}
	base := ActivityRow{
		CropIdentifier: identifier,
		TypeOfUse:      crop.Name,
	}

	var rows []ActivityRow
	operations, err := s.store.CultivationOperations.ByCrop(ctx, crop.ID)
	if err != nil {
		return nil, err
	}
	for _, op := range operations {
		row := base
		row.Date = op.Date
		row.Activity = op.Name
		row.Product = "-"
		row.Amount = "-"
		row.Intervention = op.Intervention.Code()
		row.Comments = op.Description
		rows = append(rows, perParcel(row, parcels)...)
	}

	protections, err := s.store.PlantProtections.ByCrop(ctx, crop.ID)
	if err != nil {
		return nil, err
	}
	for _, prot := range protections {
		row := base
		row.Date = prot.Date
		row.Activity = "oprysk"
		row.Product = prot.NameOfProduct
		row.Amount = amount(prot.Quantity, "l/ha")
		row.Intervention = prot.Intervention.Code()
		row.Comments = prot.Description
		rows = append(rows, perParcel(row, parcels)...)
	}

	fertilizations, err := s.store.Fertilizations.ByCrop(ctx, crop.ID)
	if err != nil {
		return nil, err
	}
	for _, fert := range fertilizations {
		row := base
		row.Date = fert.Date
		row.Activity = "nawożenie"
		row.Product = fert.NameOfProduct
		row.Amount = amount(fert.Quantity, "t/ha")
		row.Intervention = fert.Intervention.Code()
		row.Comments = fert.Description
		rows = append(rows, perParcel(row, parcels)...)
	}
	return rows, nil
}

// perParcel duplicates one activity row for every registered parcel of the
// field, carrying the parcel number and area.
func perParcel(row ActivityRow, parcels []models.ReferenceParcel) []ActivityRow {
	out := make([]ActivityRow, 0, len(parcels))
	for _, parcel := range parcels {
		r := row
		r.ParcelNumber = parcel.ParcelNumber
		r.Area = parcel.Area
		out = append(out, r)
	}
	return out
}

func amount(quantity *float64, unit string) string {
	if quantity == nil {
		return "-"
	}
	return strconv.FormatFloat(*quantity, 'f', -1, 64) + " " + unit
}
