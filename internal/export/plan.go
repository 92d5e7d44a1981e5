// Package export writes computed trip plans to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/tripcost/internal/trip"
)

// DefaultJSONName is the file name used when the user gives none.
const DefaultJSONName = "trip_plan.json"

// Costs is the cost summary of a plan document.
type Costs struct {
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Hotel     float64 `json:"hotel"`
	Total     float64 `json:"total"`
}

// Document is the serialized form of a planned trip.
type Document struct {
	Route     []string        `json:"route"`
	Days      int             `json:"days"`
	Transport string          `json:"transport"`
	Breakdown []trip.CityCost `json:"breakdown"`
	Costs     Costs           `json:"costs"`
}

// NewDocument builds the document for an estimate.
func NewDocument(est trip.Estimate) Document {
	route := est.Request.Cities
	if route == nil {
		route = []string{}
	}
	breakdown := est.Result.Breakdown
	if breakdown == nil {
		breakdown = []trip.CityCost{}
	}
	return Document{
		Route:     route,
		Days:      est.Request.Days,
		Transport: est.Transport.Label,
		Breakdown: breakdown,
		Costs: Costs{
			Transport: est.Result.TransportCost,
			Food:      est.Result.FoodCost,
			Hotel:     est.Result.HotelCost,
			Total:     est.Result.TotalCost,
		},
	}
}

// Resolve places a relative name inside dir. Absolute names and an empty
// dir leave name unchanged.
func Resolve(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// MarshalJSON encodes doc as indented UTF-8 JSON without HTML escaping.
func MarshalJSON(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON writes doc to path and returns the absolute path written.
func WriteJSON(path string, doc Document) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	data, err := MarshalJSON(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil { //nolint:gosec // plan files are meant to be shared
		return "", fmt.Errorf("writing plan: %w", err)
	}
	return abs, nil
}
