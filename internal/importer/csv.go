package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// Column headers of the parcel listing CSV, exactly as exported by the
// national registry.
const (
	colCropDesignation = "Oznaczenie Uprawy / działki rolnej"
	colParcelNumber    = "Nr działki ewidencyjnej"
	colParcelArea      = "Powierzchnia uprawy w granicach działki ewidencyjnej - ha"
)

// CSV imports parcel listing files. Each row attaches a registered parcel
// number to the field that carries the row's crop designation; rows whose
// designation matches no crop on the farm are skipped without complaint,
// as are parcel numbers already present on the field.
type CSV struct {
	store *repository.Store
	log   *logger.Logger
}

// NewCSV creates a CSV importer.
func NewCSV(store *repository.Store, log *logger.Logger) *CSV {
	return &CSV{store: store, log: log}
}

// Import validates and ingests one CSV file into the given farm.
func (c *CSV) Import(ctx context.Context, userID, farmID uuid.UUID, filename string, size int64, r io.Reader) (*Result, error) {
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if !strings.EqualFold(ext(filename), ".csv") {
		return nil, ErrCSVExtension
	}
	farm, err := c.store.Farms.GetByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}
	if farm.UserID != userID {
		return nil, ErrFarmNotOwned
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	columns := indexColumns(header)
	designationCol, ok := columns[colCropDesignation]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrMalformedPayload, colCropDesignation)
	}
	parcelCol, ok := columns[colParcelNumber]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrMalformedPayload, colParcelNumber)
	}
	areaCol, hasArea := columns[colParcelArea]

	result := &Result{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			c.log.Warn("Skipping malformed CSV row", map[string]interface{}{
				"farm_id": farmID,
				"reason":  err.Error(),
			})
			continue
		}
		result.Records++

		designation := cell(row, designationCol)
		parcelNumber := cell(row, parcelCol)
		if designation == "" || parcelNumber == "" {
			result.Skipped++
			continue
		}
		var area *float64
		if hasArea {
			area = parseArea(cell(row, areaCol))
		}
		created, err := c.attachParcel(ctx, farmID, designation, parcelNumber, area)
		if err != nil {
			return nil, err
		}
		if !created {
			result.Skipped++
		}
	}
	c.log.Info("CSV import finished", map[string]interface{}{
		"farm_id": farmID,
		"records": result.Records,
		"skipped": result.Skipped,
	})
	return result, nil
}

// attachParcel creates a reference parcel on the field that carries the
// designated crop. Reports false when the designation matches no field or
// the parcel number already exists there.
func (c *CSV) attachParcel(ctx context.Context, farmID uuid.UUID, designation, parcelNumber string, area *float64) (bool, error) {
	field, err := c.store.Crops.FieldByIdentifier(ctx, farmID, designation)
	if err != nil {
		return false, err
	}
	if field == nil {
		return false, nil
	}
	existing, err := c.store.ReferenceParcels.ByNumber(ctx, field.ID, parcelNumber)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	parcel := &models.ReferenceParcel{
		FieldID:      field.ID,
		ParcelNumber: parcelNumber,
		Area:         area,
	}
	if err := c.store.ReferenceParcels.Add(ctx, parcel); err != nil {
		return false, err
	}
	return true, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseArea reads a hectare value, tolerating the comma decimal separator
// used in the source files. Unparseable values become NULL rather than
// failing the row.
func parseArea(raw string) *float64 {
	if raw == "" {
		return nil
	}
	normalized := strings.ReplaceAll(raw, ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &value
}
