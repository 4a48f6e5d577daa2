package providers

import (
	"context"

	"github.com/9seconds/geochain/geolib"
)

type reallyfreegeoipResponse struct {
	Country   string     `json:"country_name"`
	City      string     `json:"city"`
	Zip       string     `json:"zip_code"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

type reallyfreegeoipProvider struct {
	requester geolib.Requester
}

func (r reallyfreegeoipProvider) Name() string {
	return NameReallyFreeGeoIP
}

func (r reallyfreegeoipProvider) Locate(ctx context.Context, ip geolib.IP) (geolib.Location, error) {
	resp := reallyfreegeoipResponse{}
	url := "https://reallyfreegeoip.org/json/" + ip.String()

	if err := requestJSON(ctx, r.requester, url, &resp); err != nil {
		return geolib.Location{}, err
	}

	return geolib.Location{
		IP:      ip,
		Country: resp.Country,
		City:    resp.City,
		Zip:     resp.Zip,
		Point:   geolib.Point{Lat: resp.Latitude.Float64(), Lng: resp.Longitude.Float64()},
	}, nil
}

func NewReallyFreeGeoIP(requester geolib.Requester) geolib.Locator {
	return reallyfreegeoipProvider{
		requester: requester,
	}
}
