package store

import (
	"time"

	"github.com/theirongolddev/tripcost/internal/trip"
)

// Export formats recorded in the archive.
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// NewEntry describes an exported estimate.
func NewEntry(est trip.Estimate, format, path string) Entry {
	return Entry{
		RouteName: est.Request.Route,
		Cities:    append([]string(nil), est.Request.Cities...),
		Days:      est.Request.Days,
		Transport: string(est.Transport.Mode),
		Budget:    est.Request.Budget,
		TotalCost: est.Result.TotalCost,
		Format:    format,
		Path:      path,
		SavedAt:   time.Now().UTC(),
	}
}
