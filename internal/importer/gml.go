// Package importer ingests external farm registry files (GML land-use
// declarations and CSV parcel listings) into the store. Both importers work
// record by record: malformed records are logged and skipped, never abort
// the whole batch.
package importer

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// File validation errors, surfaced as 400s by the upload handler.
var (
	ErrEmptyFile        = errors.New("no file provided or the file is empty")
	ErrGMLExtension     = errors.New("invalid file extension, only .gml files are allowed")
	ErrCSVExtension     = errors.New("invalid file extension, only .csv files are allowed")
	ErrFarmNotFound     = errors.New("farm not found")
	ErrFarmNotOwned     = errors.New("farm not owned by user")
	ErrMalformedPayload = errors.New("malformed file payload")
)

// Result summarizes one import run.
type Result struct {
	Records       int `json:"records"`
	FieldsCreated int `json:"fieldsCreated"`
	CropsCreated  int `json:"cropsCreated"`
	CropsUpdated  int `json:"cropsUpdated"`
	Skipped       int `json:"skipped"`
}

// cropRecord is one <uprawa> element of a GML declaration.
type cropRecord struct {
	plantName  string // roslina_uprawna
	identifier string // oznaczenie_uprawy
	area       string // powierzchnia
	posList    string // gml:posList, "x1 y1 x2 y2 ..."
}

// GML imports land-use declaration files. Every declared crop carries its
// plant name, designation, area and field boundary; fields are matched by
// the exact serialized boundary and crops by designation within the field,
// so re-importing the same file changes nothing.
type GML struct {
	store *repository.Store
	log   *logger.Logger
}

// NewGML creates a GML importer.
func NewGML(store *repository.Store, log *logger.Logger) *GML {
	return &GML{store: store, log: log}
}

// Import validates and ingests one GML file into the given farm.
// Returns ErrEmptyFile, ErrGMLExtension, ErrFarmNotFound or ErrFarmNotOwned
// for rejected uploads and ErrMalformedPayload when the XML itself cannot
// be parsed; per-record problems only increment Result.Skipped.
func (g *GML) Import(ctx context.Context, userID, farmID uuid.UUID, filename string, size int64, r io.Reader) (*Result, error) {
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if !strings.EqualFold(ext(filename), ".gml") {
		return nil, ErrGMLExtension
	}
	if err := g.checkFarm(ctx, userID, farmID); err != nil {
		return nil, err
	}

	records, err := parseCropRecords(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	result := &Result{Records: len(records)}
	for _, rec := range records {
		if err := g.processCrop(ctx, farmID, rec, result); err != nil {
			result.Skipped++
			g.log.Warn("Skipping malformed crop record", map[string]interface{}{
				"farm_id":    farmID,
				"identifier": rec.identifier,
				"reason":     err.Error(),
			})
		}
	}
	g.log.Info("GML import finished", map[string]interface{}{
		"farm_id":        farmID,
		"records":        result.Records,
		"fields_created": result.FieldsCreated,
		"crops_created":  result.CropsCreated,
		"skipped":        result.Skipped,
	})
	return result, nil
}

func (g *GML) checkFarm(ctx context.Context, userID, farmID uuid.UUID) error {
	farm, err := g.store.Farms.GetByID(ctx, farmID)
	if err != nil {
		return err
	}
	if farm == nil {
		return ErrFarmNotFound
	}
	if farm.UserID != userID {
		return ErrFarmNotOwned
	}
	return nil
}

// parseCropRecords walks the XML stream and collects every element named
// "uprawa" regardless of nesting or namespace prefixes.
func parseCropRecords(r io.Reader) ([]cropRecord, error) {
	dec := xml.NewDecoder(r)
	var records []cropRecord
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "uprawa" {
			continue
		}
		rec, err := parseCropElement(dec, start)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseCropElement reads one <uprawa> subtree, capturing the child elements
// the import cares about by their local names.
func parseCropElement(dec *xml.Decoder, start xml.StartElement) (cropRecord, error) {
	var rec cropRecord
	depth := 1
	var current string
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return rec, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			current = t.Name.Local
		case xml.EndElement:
			depth--
			current = ""
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			switch current {
			case "roslina_uprawna":
				rec.plantName = text
			case "oznaczenie_uprawy":
				rec.identifier = text
			case "powierzchnia":
				rec.area = text
			case "posList":
				rec.posList = text
			}
		}
	}
	return rec, nil
}

// parseBoundary reshapes the flat "x1 y1 x2 y2 ..." point list into a single
// linear ring of [x,y] pairs.
func parseBoundary(posList string) (models.Boundary, error) {
	parts := strings.Fields(posList)
	if len(parts) == 0 {
		return nil, errors.New("empty point list")
	}
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("odd number of ordinates: %d", len(parts))
	}
	ring := make([][2]float64, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		x, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad ordinate %q: %w", parts[i], err)
		}
		y, err := strconv.ParseFloat(parts[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad ordinate %q: %w", parts[i+1], err)
		}
		ring = append(ring, [2]float64{x, y})
	}
	return models.Boundary{ring}, nil
}

// processCrop upserts one declared crop: the field is matched by its exact
// serialized boundary, the crop by its designation within the field. Missing
// matches create a new field (soil type unselected) and/or a new active crop
// (crop type unselected).
func (g *GML) processCrop(ctx context.Context, farmID uuid.UUID, rec cropRecord, result *Result) error {
	if rec.plantName == "" {
		return errors.New("missing plant name")
	}
	if rec.identifier == "" {
		return errors.New("missing crop designation")
	}
	boundary, err := parseBoundary(rec.posList)
	if err != nil {
		return fmt.Errorf("bad boundary: %w", err)
	}
	serialized, err := boundary.Encode()
	if err != nil {
		return err
	}

	var area *float64
	if rec.area != "" {
		parsed, err := strconv.ParseFloat(rec.area, 64)
		if err != nil {
			return fmt.Errorf("bad area %q: %w", rec.area, err)
		}
		area = &parsed
	}

	field, err := g.store.Fields.ByCoordinates(ctx, serialized)
	if err != nil {
		return err
	}
	if field == nil {
		field = &models.Field{
			FarmID:      farmID,
			Name:        rec.identifier,
			Area:        area,
			SoilType:    models.SoilNotSelected,
			Coordinates: boundary,
		}
		if err := g.store.Fields.Add(ctx, field); err != nil {
			return err
		}
		result.FieldsCreated++
	}

	crop, err := g.store.Crops.ByIdentifier(ctx, field.ID, rec.identifier)
	if err != nil {
		return err
	}
	if crop == nil {
		identifier := rec.identifier
		crop = &models.Crop{
			FieldID:        field.ID,
			Name:           rec.plantName,
			CropIdentifier: &identifier,
			Type:           models.CropNotSelected,
			IsActive:       true,
		}
		if err := g.store.Crops.Add(ctx, crop); err != nil {
			return err
		}
		result.CropsCreated++
		return nil
	}
	if crop.Name != rec.plantName {
		crop.Name = rec.plantName
		if err := g.store.Crops.Update(ctx, crop); err != nil {
			return err
		}
		result.CropsUpdated++
	}
	return nil
}

// ext returns the lowercase filename extension including the dot.
func ext(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}
