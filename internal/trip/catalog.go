package trip

// NoData labels a hotel, meal or sight for a city without catalog entries.
const NoData = "no data"

// Offer is a named lodging or food option with its unit price
// (per night for hotels, per day for food).
type Offer struct {
	Name  string
	Price float64
}

// CityInfo holds the price and sightseeing data for one city.
type CityInfo struct {
	Hotel Offer
	Food  Offer
	Sight string
}

// Route is a named, ordered list of cities.
type Route struct {
	Name   string
	Cities []string
}

// Catalog owns the route and city tables used by a Planner.
type Catalog struct {
	order  []string
	routes map[string][]string
	cities map[string]CityInfo
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		routes: make(map[string][]string),
		cities: make(map[string]CityInfo),
	}
}

// DefaultCatalog returns a catalog seeded with the built-in route.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.PutRoute(Route{
		Name:   "Bulgaria → Germany",
		Cities: []string{"Sofia", "Belgrade", "Vienna", "Munich"},
	})
	c.PutCity("Sofia", CityInfo{
		Hotel: Offer{"Hotel Sofia Center", 70},
		Food:  Offer{"Traditional Bulgarian cuisine", 20},
		Sight: "Alexander Nevsky Cathedral",
	})
	c.PutCity("Belgrade", CityInfo{
		Hotel: Offer{"Belgrade Inn", 65},
		Food:  Offer{"Serbian grill", 22},
		Sight: "Kalemegdan",
	})
	c.PutCity("Vienna", CityInfo{
		Hotel: Offer{"Vienna City Hotel", 90},
		Food:  Offer{"Wiener schnitzel", 30},
		Sight: "Schönbrunn Palace",
	})
	c.PutCity("Munich", CityInfo{
		Hotel: Offer{"Munich Central Hotel", 95},
		Food:  Offer{"German cuisine", 28},
		Sight: "Marienplatz",
	})
	return c
}

// BalkanSample returns the sample route offered by the "add sample route" action.
func BalkanSample() (Route, map[string]CityInfo) {
	route := Route{
		Name:   "Balkan tour",
		Cities: []string{"Plovdiv", "Skopje", "Tirana"},
	}
	cities := map[string]CityInfo{
		"Plovdiv": {
			Hotel: Offer{"Plovdiv Cozy", 60},
			Food:  Offer{"Rhodope cuisine", 18},
			Sight: "Old Plovdiv",
		},
		"Skopje": {
			Hotel: Offer{"Skopje Hotel", 55},
			Food:  Offer{"Macedonian cuisine", 17},
			Sight: "Stone Bridge",
		},
		"Tirana": {
			Hotel: Offer{"Tirana Stay", 50},
			Food:  Offer{"Albanian cuisine", 16},
			Sight: "Skanderbeg Square",
		},
	}
	return route, cities
}

// PutRoute inserts or replaces a route. New names are appended to the listing order.
func (c *Catalog) PutRoute(r Route) {
	if _, ok := c.routes[r.Name]; !ok {
		c.order = append(c.order, r.Name)
	}
	c.routes[r.Name] = append([]string(nil), r.Cities...)
}

// PutCity inserts or replaces the data for a city.
func (c *Catalog) PutCity(name string, info CityInfo) {
	c.cities[name] = info
}

// AddSampleRoute inserts route and the given city entries unless a route
// with the same name already exists. Cities that are already known keep
// their current data. It reports whether the route was added.
func (c *Catalog) AddSampleRoute(r Route, cities map[string]CityInfo) bool {
	if _, ok := c.routes[r.Name]; ok {
		return false
	}
	c.PutRoute(r)
	for name, info := range cities {
		if _, ok := c.cities[name]; !ok {
			c.cities[name] = info
		}
	}
	return true
}

// Route returns the named route. The returned city slice is a copy.
func (c *Catalog) Route(name string) (Route, bool) {
	cities, ok := c.routes[name]
	if !ok {
		return Route{}, false
	}
	return Route{Name: name, Cities: append([]string(nil), cities...)}, true
}

// RouteNames returns route names in insertion order.
func (c *Catalog) RouteNames() []string {
	return append([]string(nil), c.order...)
}

// Lookup returns the data for city, or placeholder values when the city is unknown.
func (c *Catalog) Lookup(city string) CityInfo {
	if info, ok := c.cities[city]; ok {
		return info
	}
	return CityInfo{
		Hotel: Offer{Name: NoData},
		Food:  Offer{Name: NoData},
		Sight: NoData,
	}
}

// Known reports whether the catalog has data for city.
func (c *Catalog) Known(city string) bool {
	_, ok := c.cities[city]
	return ok
}
