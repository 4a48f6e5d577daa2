package providers

import (
	"context"
	"net/url"

	"github.com/9seconds/geochain/geolib"
)

// OptionToken is a name of the option with API key for providers
// which need one.
const OptionToken = "token"

type ipgeolocationResponse struct {
	Country   string     `json:"country_name"`
	City      string     `json:"city"`
	Zip       string     `json:"zipcode"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

type ipgeolocationProvider struct {
	requester geolib.Requester
	authToken string
}

func (i ipgeolocationProvider) Name() string {
	return NameIPGeolocation
}

func (i ipgeolocationProvider) Locate(ctx context.Context, ip geolib.IP) (geolib.Location, error) {
	resp := ipgeolocationResponse{}

	if err := requestJSON(ctx, i.requester, i.buildURL(ip), &resp); err != nil {
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

func (i ipgeolocationProvider) buildURL(ip geolib.IP) string {
	getQuery := url.Values{}

	getQuery.Set("apiKey", i.authToken)
	getQuery.Set("ip", ip.String())

	u := url.URL{
		Scheme:   "https",
		Host:     "api.ipgeolocation.io",
		Path:     "/ipgeo",
		RawQuery: getQuery.Encode(),
	}

	return u.String()
}

func NewIPGeolocation(requester geolib.Requester, authToken string) (geolib.Locator, error) {
	if authToken == "" {
		return nil, ErrAuthTokenIsRequired
	}

	return ipgeolocationProvider{
		requester: requester,
		authToken: authToken,
	}, nil
}
