package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Boundary represents a field boundary as GeoJSON-style polygon coordinates:
// [rings][points][x,y]. Imported GML boundaries always carry a single linear
// ring. The value is persisted as its JSON serialization in a text column so
// that re-imported boundaries can be matched by exact string comparison.
type Boundary [][][2]float64

// Scan implements sql.Scanner for reading a serialized boundary from the database.
func (b *Boundary) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan Boundary: expected []byte or string, got %T", value)
	}

	if len(data) == 0 {
		return nil
	}

	var coords [][][2]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("failed to unmarshal boundary coordinates: %w", err)
	}

	*b = coords
	return nil
}

// Value implements driver.Valuer for writing a boundary to the database.
// Empty boundaries are stored as NULL.
func (b Boundary) Value() (driver.Value, error) {
	if len(b) == 0 {
		return nil, nil
	}
	return b.Encode()
}

// Encode returns the canonical JSON serialization used for storage and for
// coordinate-based field matching during import.
func (b Boundary) Encode() (string, error) {
	data, err := json.Marshal([][][2]float64(b))
	if err != nil {
		return "", fmt.Errorf("failed to marshal boundary coordinates: %w", err)
	}
	return string(data), nil
}

// DecodeBoundary parses a serialized boundary back into its coordinate rings.
func DecodeBoundary(s string) (Boundary, error) {
	if s == "" {
		return nil, nil
	}
	var coords [][][2]float64
	if err := json.Unmarshal([]byte(s), &coords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal boundary coordinates: %w", err)
	}
	return coords, nil
}

// GormDataType tells GORM to store boundaries in a text column.
func (Boundary) GormDataType() string {
	return "text"
}
