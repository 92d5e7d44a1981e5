package trip

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

var sampleRoute = []string{"Sofia", "Belgrade", "Vienna", "Munich"}

func mustTransport(t *testing.T, p *Planner, m Mode) Transport {
	t.Helper()
	tr, err := p.Transport(m)
	if err != nil {
		t.Fatalf("Transport(%s): %v", m, err)
	}
	return tr
}

func TestTravelCost(t *testing.T) {
	for _, tr := range DefaultProfiles() {
		prev := -1.0
		for _, d := range []float64{0, 1, 150, 300, 900, 12345.5} {
			got, err := TravelCost(tr, d)
			if err != nil {
				t.Fatalf("TravelCost(%s, %g): %v", tr.Mode, d, err)
			}
			if !near(got, d*tr.PricePerUnit) {
				t.Errorf("TravelCost(%s, %g) = %g, want %g", tr.Mode, d, got, d*tr.PricePerUnit)
			}
			if got < prev {
				t.Errorf("TravelCost(%s) not monotonic: %g after %g", tr.Mode, got, prev)
			}
			prev = got
		}
	}
}

func TestTravelCost_NegativeDistance(t *testing.T) {
	_, err := TravelCost(DefaultProfiles()[Car], -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCalculateTrip_Scenarios(t *testing.T) {
	tests := []struct {
		mode          Mode
		wantTransport float64
		wantTotal     float64
	}{
		{Car, 225, 1905},
		{Plane, 405, 2085},
		{Train, 162, 1842},
	}

	p := NewPlanner(DefaultCatalog())
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			res, err := p.CalculateTrip(sampleRoute, 4, mustTransport(t, p, tt.mode))
			if err != nil {
				t.Fatalf("CalculateTrip: %v", err)
			}
			if res.TotalDistance != 900 {
				t.Errorf("TotalDistance = %g, want 900", res.TotalDistance)
			}
			if !near(res.TransportCost, tt.wantTransport) {
				t.Errorf("TransportCost = %.2f, want %.2f", res.TransportCost, tt.wantTransport)
			}
			if res.HotelCost != 1280 {
				t.Errorf("HotelCost = %g, want 1280", res.HotelCost)
			}
			if res.FoodCost != 400 {
				t.Errorf("FoodCost = %g, want 400", res.FoodCost)
			}
			if !near(res.TotalCost, tt.wantTotal) {
				t.Errorf("TotalCost = %.2f, want %.2f", res.TotalCost, tt.wantTotal)
			}
			if len(res.Breakdown) != 4 {
				t.Fatalf("Breakdown len = %d, want 4", len(res.Breakdown))
			}
			for i, c := range res.Breakdown {
				if c.City != sampleRoute[i] {
					t.Errorf("Breakdown[%d].City = %q, want %q", i, c.City, sampleRoute[i])
				}
			}
			sofia := res.Breakdown[0]
			if sofia.Hotel.PerNight != 70 || sofia.Hotel.Total != 280 || sofia.Food.Total != 80 {
				t.Errorf("Sofia breakdown = %+v", sofia)
			}
		})
	}
}

func TestCalculateTrip_UnknownCity(t *testing.T) {
	p := NewPlanner(DefaultCatalog())
	car := mustTransport(t, p, Car)

	base, err := p.CalculateTrip([]string{"Sofia", "Vienna"}, 3, car)
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.CalculateTrip([]string{"Sofia", "Nowhere", "Vienna"}, 3, car)
	if err != nil {
		t.Fatal(err)
	}

	got := res.Breakdown[1]
	if got.City != "Nowhere" || got.Hotel.Name != NoData || got.Food.Name != NoData || got.Sight != NoData {
		t.Errorf("unknown city breakdown = %+v", got)
	}
	if got.Hotel.PerNight != 0 || got.Food.PerDay != 0 || got.Hotel.Total != 0 || got.Food.Total != 0 {
		t.Errorf("unknown city prices = %+v, want zeros", got)
	}
	if res.HotelCost != base.HotelCost || res.FoodCost != base.FoodCost {
		t.Errorf("unknown city changed lodging/food totals: %+v vs %+v", res, base)
	}
	// the extra hop is still travelled
	if res.TotalDistance != 600 {
		t.Errorf("TotalDistance = %g, want 600", res.TotalDistance)
	}
}

func TestCalculateTrip_Sums(t *testing.T) {
	p := NewPlanner(DefaultCatalog())
	train := mustTransport(t, p, Train)
	routes := [][]string{
		{"Munich"},
		{"Vienna", "Vienna"},
		{"Belgrade", "Sofia", "Munich"},
		sampleRoute,
	}

	for _, cities := range routes {
		for days := 1; days <= 14; days++ {
			res, err := p.CalculateTrip(cities, days, train)
			if err != nil {
				t.Fatal(err)
			}
			var hotel, food float64
			for _, c := range cities {
				info := p.Catalog.Lookup(c)
				hotel += info.Hotel.Price * float64(days)
				food += info.Food.Price * float64(days)
			}
			if !near(res.HotelCost, hotel) || !near(res.FoodCost, food) {
				t.Errorf("%v x%d: hotel=%g food=%g, want %g %g", cities, days, res.HotelCost, res.FoodCost, hotel, food)
			}
			wantDist := 300 * float64(len(cities)-1)
			if res.TotalDistance != wantDist {
				t.Errorf("%v: TotalDistance = %g, want %g", cities, res.TotalDistance, wantDist)
			}
		}
	}
}

func TestCalculateTrip_Empty(t *testing.T) {
	p := NewPlanner(DefaultCatalog())
	for _, m := range Modes {
		res, err := p.CalculateTrip(nil, 7, mustTransport(t, p, m))
		if err != nil {
			t.Fatal(err)
		}
		if res.TotalCost != 0 || res.TotalDistance != 0 || res.TransportCost != 0 ||
			res.HotelCost != 0 || res.FoodCost != 0 || len(res.Breakdown) != 0 {
			t.Errorf("%s: empty trip = %+v, want zero", m, res)
		}
	}
}

func TestCalculateTrip_InvalidDays(t *testing.T) {
	p := NewPlanner(DefaultCatalog())
	for _, days := range []int{0, -3} {
		_, err := p.CalculateTrip(sampleRoute, days, mustTransport(t, p, Car))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("days=%d: err = %v, want ErrInvalidInput", days, err)
		}
	}
}

func TestCalculateTrip_CustomHopDistance(t *testing.T) {
	p := NewPlanner(DefaultCatalog())
	p.HopDistance = 120
	res, err := p.CalculateTrip(sampleRoute, 1, mustTransport(t, p, Car))
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalDistance != 360 || !near(res.TransportCost, 90) {
		t.Errorf("distance=%g transport=%g, want 360 and 90", res.TotalDistance, res.TransportCost)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"car": Car, " Train ": Train, "PLANE": Plane} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("boat"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseMode(boat) err = %v, want ErrInvalidInput", err)
	}
}
