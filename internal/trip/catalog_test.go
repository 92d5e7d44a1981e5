package trip

import (
	"reflect"
	"testing"
)

func TestAddSampleRoute_Idempotent(t *testing.T) {
	c := DefaultCatalog()
	route, cities := BalkanSample()

	if !c.AddSampleRoute(route, cities) {
		t.Fatal("first AddSampleRoute returned false")
	}
	names := c.RouteNames()
	got, _ := c.Route(route.Name)

	if c.AddSampleRoute(route, cities) {
		t.Fatal("second AddSampleRoute returned true")
	}
	if !reflect.DeepEqual(c.RouteNames(), names) {
		t.Errorf("route names changed: %v -> %v", names, c.RouteNames())
	}
	again, _ := c.Route(route.Name)
	if !reflect.DeepEqual(again, got) {
		t.Errorf("route changed: %+v -> %+v", got, again)
	}
	if len(names) != 2 || names[1] != "Balkan tour" {
		t.Errorf("RouteNames = %v", names)
	}
	if c.Lookup("Skopje").Hotel.Price != 55 {
		t.Errorf("Skopje hotel price = %g, want 55", c.Lookup("Skopje").Hotel.Price)
	}
}

func TestAddSampleRoute_KeepsExistingCities(t *testing.T) {
	c := DefaultCatalog()
	c.AddSampleRoute(Route{Name: "Short", Cities: []string{"Sofia", "Plovdiv"}}, map[string]CityInfo{
		"Sofia":   {Hotel: Offer{"Other", 1}},
		"Plovdiv": {Hotel: Offer{"Plovdiv Cozy", 60}},
	})
	if c.Lookup("Sofia").Hotel.Name != "Hotel Sofia Center" {
		t.Errorf("existing Sofia entry overwritten: %+v", c.Lookup("Sofia"))
	}
	if !c.Known("Plovdiv") {
		t.Error("Plovdiv not added")
	}
}

func TestAddSampleRoute_ExistingNameIsNoop(t *testing.T) {
	c := DefaultCatalog()
	added := c.AddSampleRoute(Route{Name: "Bulgaria → Germany", Cities: []string{"Tirana"}},
		map[string]CityInfo{"Tirana": {Sight: "x"}})
	if added {
		t.Fatal("AddSampleRoute replaced an existing route")
	}
	if c.Known("Tirana") {
		t.Error("city entries inserted for a rejected route")
	}
}

func TestRoute_ReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	r, ok := c.Route("Bulgaria → Germany")
	if !ok {
		t.Fatal("default route missing")
	}
	r.Cities[0] = "Changed"
	again, _ := c.Route("Bulgaria → Germany")
	if again.Cities[0] != "Sofia" {
		t.Errorf("catalog mutated through returned slice: %v", again.Cities)
	}
}

func TestCatalogsAreIsolated(t *testing.T) {
	a, b := DefaultCatalog(), DefaultCatalog()
	route, cities := BalkanSample()
	a.AddSampleRoute(route, cities)
	if _, ok := b.Route(route.Name); ok {
		t.Error("sample route leaked into another catalog")
	}
}

func TestLookup_Missing(t *testing.T) {
	info := NewCatalog().Lookup("Nowhere")
	want := CityInfo{Hotel: Offer{Name: NoData}, Food: Offer{Name: NoData}, Sight: NoData}
	if info != want {
		t.Errorf("Lookup = %+v, want %+v", info, want)
	}
}
