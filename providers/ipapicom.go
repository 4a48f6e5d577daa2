package providers

import (
	"context"
	"fmt"

	"github.com/9seconds/geochain/geolib"
)

type ipapicomResponse struct {
	Status    string     `json:"status"`
	Message   string     `json:"message"`
	Country   string     `json:"country"`
	City      string     `json:"city"`
	Zip       string     `json:"zip"`
	Latitude  coordinate `json:"lat"`
	Longitude coordinate `json:"lon"`
}

type ipapicomProvider struct {
	requester geolib.Requester
}

func (i ipapicomProvider) Name() string {
	return NameIPAPICom
}

func (i ipapicomProvider) Locate(ctx context.Context, ip geolib.IP) (geolib.Location, error) {
	resp := ipapicomResponse{}

	// ip-api.com does not offer https on a free plan.
	if err := requestJSON(ctx, i.requester, "http://ip-api.com/json/"+ip.String(), &resp); err != nil {
		return geolib.Location{}, err
	}

	if resp.Status != "success" {
		return geolib.Location{}, fmt.Errorf("%w: status=%q, message=%q",
			ErrFailedResponse, resp.Status, resp.Message)
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

func NewIPAPICom(requester geolib.Requester) geolib.Locator {
	return ipapicomProvider{
		requester: requester,
	}
}
