package trip

import (
	"fmt"
	"strings"
)

// Form bounds for a planning request.
const (
	MinDays   = 1
	MaxDays   = 14
	MinBudget = 100
	MaxBudget = 20000
)

// Priority is the user's planning preference. It only changes the advice
// shown for an insufficient budget, never the computed costs.
type Priority string

const (
	Balance  Priority = "balance"
	Cheapest Priority = "cheapest"
	Comfort  Priority = "comfort"
	Fast     Priority = "fast"
)

// Priorities lists all priorities in display order.
var Priorities = []Priority{Balance, Cheapest, Comfort, Fast}

// ParsePriority parses a priority name, ignoring case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Balance, Cheapest, Comfort, Fast:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, s)
}

// Label returns the display name of p.
func (p Priority) Label() string {
	switch p {
	case Cheapest:
		return "Cheapest"
	case Comfort:
		return "Most comfortable"
	case Fast:
		return "Fastest"
	default:
		return "Balance"
	}
}

// Request is a planning request as collected from the user.
type Request struct {
	Route    string
	Cities   []string
	Days     int
	Mode     Mode
	Budget   float64
	Priority Priority
}

// Validate checks the request against the form bounds.
func (r Request) Validate() error {
	if r.Days < MinDays || r.Days > MaxDays {
		return fmt.Errorf("%w: days must be between %d and %d, got %d", ErrInvalidInput, MinDays, MaxDays, r.Days)
	}
	if r.Budget < MinBudget || r.Budget > MaxBudget {
		return fmt.Errorf("%w: budget must be between %d and %d, got %g", ErrInvalidInput, MinBudget, MaxBudget, r.Budget)
	}
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	if r.Priority != "" {
		if _, err := ParsePriority(string(r.Priority)); err != nil {
			return err
		}
	}
	return nil
}

// Advice is the budget verdict for a computed trip.
type Advice struct {
	Sufficient bool
	Shortfall  float64
	Tip        string
}

// Assess compares total against budget and picks a tip for priority when
// the budget does not cover the trip.
func Assess(total, budget float64, priority Priority) Advice {
	if total <= budget {
		return Advice{Sufficient: true}
	}
	a := Advice{Shortfall: total - budget}
	switch priority {
	case Cheapest:
		a.Tip = "choose Train or reduce the number of days"
	case Comfort:
		a.Tip = "keep the chosen transport but visit fewer cities"
	case Fast:
		a.Tip = "take the Plane to spend less time travelling"
	}
	return a
}

// Estimate is the outcome of a planning request.
type Estimate struct {
	Request   Request
	Transport Transport
	Result    Result
	Advice    Advice
}

// Estimate validates req, resolves its city list and computes the trip.
// An empty city list falls back to the cities of the named route.
func (p *Planner) Estimate(req Request) (Estimate, error) {
	if err := req.Validate(); err != nil {
		return Estimate{}, err
	}

	if len(req.Cities) == 0 && req.Route != "" {
		r, ok := p.Catalog.Route(req.Route)
		if !ok {
			return Estimate{}, fmt.Errorf("%w: unknown route %q", ErrInvalidInput, req.Route)
		}
		req.Cities = r.Cities
	}

	t, err := p.Transport(req.Mode)
	if err != nil {
		return Estimate{}, err
	}
	res, err := p.CalculateTrip(req.Cities, req.Days, t)
	if err != nil {
		return Estimate{}, err
	}

	return Estimate{
		Request:   req,
		Transport: t,
		Result:    res,
		Advice:    Assess(res.TotalCost, req.Budget, req.Priority),
	}, nil
}

// SplitCities parses a comma separated city list, dropping empty entries.
func SplitCities(s string) []string {
	var cities []string
	for _, part := range strings.Split(s, ",") {
		if c := strings.TrimSpace(part); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}
