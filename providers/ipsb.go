package providers

import (
	"context"

	"github.com/9seconds/geochain/geolib"
)

type ipsbResponse struct {
	Country   string     `json:"country"`
	City      string     `json:"city"`
	Zip       string     `json:"postal_code"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

type ipsbProvider struct {
	requester geolib.Requester
}

func (i ipsbProvider) Name() string {
	return NameIPSB
}

func (i ipsbProvider) Locate(ctx context.Context, ip geolib.IP) (geolib.Location, error) {
	resp := ipsbResponse{}

	if err := requestJSON(ctx, i.requester, "https://api.ip.sb/geoip/"+ip.String(), &resp); err != nil {
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

func NewIPSB(requester geolib.Requester) geolib.Locator {
	return ipsbProvider{
		requester: requester,
	}
}
