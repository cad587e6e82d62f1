package models

// PostalRange is an inclusive postal-code range. South African postal codes
// are four digits, so Min and Max always fall in [0, 9999].
type PostalRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Region is a delivery-service area. The storefront ships from one warehouse
// per region, so each region carries the commerce platform location that
// fulfils it. Loaded once at process start, never mutated.
type Region struct {
	ID           string        `json:"id"`             // city key, e.g. "cape-town"
	Name         string        `json:"name"`           // display name
	Cadence      string        `json:"cadence"`        // delivery cadence label
	LocationID   string        `json:"location_id"`    // commerce platform location gid
	PostalRanges []PostalRange `json:"postal_ranges"`  // disjoint across all regions
}

// DeliveryRegions is the static region table. Order is fixed on purpose:
// resolution walks the slice, and ranges are disjoint across regions.
var DeliveryRegions = []Region{
	{
		ID:         "cape-town",
		Name:       "Cape Town",
		Cadence:    "Delivered Tuesdays & Fridays",
		LocationID: "gid://shopify/Location/61019553862",
		PostalRanges: []PostalRange{
			{Min: 7000, Max: 7999},
			{Min: 8000, Max: 8999},
		},
	},
	{
		ID:         "johannesburg",
		Name:       "Johannesburg",
		Cadence:    "Delivered Wednesdays",
		LocationID: "gid://shopify/Location/61019586630",
		PostalRanges: []PostalRange{
			{Min: 1600, Max: 1699},
			{Min: 2000, Max: 2199},
		},
	},
	{
		ID:         "pretoria",
		Name:       "Pretoria",
		Cadence:    "Delivered Wednesdays",
		LocationID: "gid://shopify/Location/61019586630",
		PostalRanges: []PostalRange{
			{Min: 1, Max: 199},
		},
	},
	{
		ID:         "durban",
		Name:       "Durban",
		Cadence:    "Delivered Thursdays",
		LocationID: "gid://shopify/Location/61019619398",
		PostalRanges: []PostalRange{
			{Min: 3600, Max: 3699},
			{Min: 4000, Max: 4099},
		},
	},
}

// RegionByID looks a region up in the static table.
func RegionByID(id string) (Region, bool) {
	for _, r := range DeliveryRegions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}
