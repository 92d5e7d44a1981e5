// Package trip implements the trip cost model: transport prices, the
// route and city catalog, and the per-trip cost calculation.
package trip

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure in this package.
var ErrInvalidInput = errors.New("invalid input")

// DefaultHopDistance is the assumed distance between two consecutive cities.
const DefaultHopDistance = 300

// HotelCost is the lodging part of a CityCost.
type HotelCost struct {
	Name     string  `json:"name"`
	PerNight float64 `json:"per_night"`
	Total    float64 `json:"total"`
}

// FoodCost is the food part of a CityCost.
type FoodCost struct {
	Name   string  `json:"name"`
	PerDay float64 `json:"per_day"`
	Total  float64 `json:"total"`
}

// CityCost is the per-city breakdown record of a trip.
type CityCost struct {
	City  string    `json:"city"`
	Hotel HotelCost `json:"hotel"`
	Food  FoodCost  `json:"food"`
	Sight string    `json:"sight"`
}

// Result holds the computed costs of a trip.
type Result struct {
	Breakdown     []CityCost
	FoodCost      float64
	HotelCost     float64
	TransportCost float64
	TotalDistance float64
	TotalCost     float64
}

// Planner computes trip costs against its catalog and transport profiles.
type Planner struct {
	Catalog     *Catalog
	HopDistance float64
	Profiles    map[Mode]Transport
}

// NewPlanner returns a planner with the default hop distance and prices.
func NewPlanner(c *Catalog) *Planner {
	return &Planner{
		Catalog:     c,
		HopDistance: DefaultHopDistance,
		Profiles:    DefaultProfiles(),
	}
}

// Transport returns the profile for mode.
func (p *Planner) Transport(mode Mode) (Transport, error) {
	t, ok := p.Profiles[mode]
	if !ok {
		return Transport{}, fmt.Errorf("%w: no price for transport %q", ErrInvalidInput, mode)
	}
	return t, nil
}

// Distance returns the total distance covered visiting n cities in order.
func (p *Planner) Distance(n int) float64 {
	if n < 2 {
		return 0
	}
	return p.HopDistance * float64(n-1)
}

// CalculateTrip computes lodging, food and transport costs for visiting
// cities in order, staying days in each. Cities without catalog data
// contribute zero cost.
func (p *Planner) CalculateTrip(cities []string, days int, t Transport) (Result, error) {
	if days < 1 {
		return Result{}, fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidInput, days)
	}

	res := Result{Breakdown: make([]CityCost, 0, len(cities))}
	n := float64(days)

	for _, city := range cities {
		info := p.Catalog.Lookup(city)
		hotel := info.Hotel.Price * n
		food := info.Food.Price * n

		res.HotelCost += hotel
		res.FoodCost += food
		res.Breakdown = append(res.Breakdown, CityCost{
			City:  city,
			Hotel: HotelCost{Name: info.Hotel.Name, PerNight: info.Hotel.Price, Total: hotel},
			Food:  FoodCost{Name: info.Food.Name, PerDay: info.Food.Price, Total: food},
			Sight: info.Sight,
		})
	}

	res.TotalDistance = p.Distance(len(cities))
	transport, err := TravelCost(t, res.TotalDistance)
	if err != nil {
		return Result{}, err
	}
	res.TransportCost = transport
	res.TotalCost = res.TransportCost + res.FoodCost + res.HotelCost
	return res, nil
}
