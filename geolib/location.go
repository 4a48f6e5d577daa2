package geolib

// SentinelCity is a placeholder some providers return if they do not
// know a city.
const SentinelCity = "-"

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a normalized result of a single provider lookup.
type Location struct {
	IP      IP     `json:"ip"`
	Country string `json:"country"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Point   Point  `json:"point"`
}

// OK tells if location is good enough to stop asking other providers.
func (l Location) OK() bool {
	return l.City != "" && l.City != SentinelCity
}
