package config

import (
	"fmt"

	"github.com/theirongolddev/tripcost/internal/trip"
)

// NewPlanner builds a planner from the built-in catalog with the
// configured routes, cities, hop distance and price overrides applied.
func NewPlanner(cfg Config) (*trip.Planner, error) {
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	catalog := trip.DefaultCatalog()
	for _, r := range cfg.Routes {
		catalog.PutRoute(trip.Route{Name: r.Name, Cities: r.Cities})
	}
	for name, c := range cfg.Cities {
		catalog.PutCity(name, trip.CityInfo{
			Hotel: trip.Offer{Name: c.Hotel, Price: c.HotelPrice},
			Food:  trip.Offer{Name: c.Food, Price: c.FoodPrice},
			Sight: c.Sight,
		})
	}

	p := trip.NewPlanner(catalog)
	p.HopDistance = cfg.General.HopDistance
	overrides := map[trip.Mode]*float64{
		trip.Car:   cfg.Transport.Car,
		trip.Train: cfg.Transport.Train,
		trip.Plane: cfg.Transport.Plane,
	}
	for mode, price := range overrides {
		if price == nil {
			continue
		}
		t := p.Profiles[mode]
		t.PricePerUnit = *price
		p.Profiles[mode] = t
	}
	return p, nil
}

// PriceOf returns the effective price per unit for mode.
func PriceOf(cfg Config, mode trip.Mode) float64 {
	var override *float64
	switch mode {
	case trip.Car:
		override = cfg.Transport.Car
	case trip.Train:
		override = cfg.Transport.Train
	case trip.Plane:
		override = cfg.Transport.Plane
	}
	if override != nil {
		return *override
	}
	return trip.DefaultProfiles()[mode].PricePerUnit
}
