package trip

import (
	"fmt"
	"strings"
)

// Mode identifies a travel mode.
type Mode string

const (
	Car   Mode = "car"
	Train Mode = "train"
	Plane Mode = "plane"
)

// Modes lists all travel modes in display order.
var Modes = []Mode{Car, Train, Plane}

// Transport is a travel mode with its price per distance unit.
type Transport struct {
	Mode         Mode
	Label        string
	PricePerUnit float64
}

// DefaultProfiles returns the built-in transport prices.
func DefaultProfiles() map[Mode]Transport {
	return map[Mode]Transport{
		Car:   {Mode: Car, Label: "Car", PricePerUnit: 0.25},
		Train: {Mode: Train, Label: "Train", PricePerUnit: 0.18},
		Plane: {Mode: Plane, Label: "Plane", PricePerUnit: 0.45},
	}
}

// ParseMode parses a mode name, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Car, Train, Plane:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown transport %q (want car, train or plane)", ErrInvalidInput, s)
}

// TravelCost returns distance × price per unit.
func TravelCost(t Transport, distance float64) (float64, error) {
	if distance < 0 {
		return 0, fmt.Errorf("%w: negative distance %g", ErrInvalidInput, distance)
	}
	if t.PricePerUnit <= 0 {
		return 0, fmt.Errorf("%w: %s price per unit must be positive", ErrInvalidInput, t.Mode)
	}
	return distance * t.PricePerUnit, nil
}
