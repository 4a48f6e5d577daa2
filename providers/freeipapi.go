package providers

import (
	"context"

	"github.com/9seconds/geochain/geolib"
)

type freeipapiResponse struct {
	Country   string     `json:"countryName"`
	City      string     `json:"cityName"`
	Zip       string     `json:"zipCode"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

type freeipapiProvider struct {
	requester geolib.Requester
}

func (f freeipapiProvider) Name() string {
	return NameFreeIPAPI
}

func (f freeipapiProvider) Locate(ctx context.Context, ip geolib.IP) (geolib.Location, error) {
	resp := freeipapiResponse{}

	if err := requestJSON(ctx, f.requester, "https://freeipapi.com/api/json/"+ip.String(), &resp); err != nil {
		return geolib.Location{}, err
	}

	return geolib.Location{
		IP:      ip,
		Country: resp.Country,
		City:    resp.City,
		Zip:     resp.Zip,
		Point: geolib.Point{
			Lat: resp.Latitude.Float64(),
			Lng: resp.Longitude.Float64(),
		},
	}, nil
}

func NewFreeIPAPI(requester geolib.Requester) geolib.Locator {
	return freeipapiProvider{
		requester: requester,
	}
}
