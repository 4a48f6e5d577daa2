package providers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/9seconds/geochain/geolib"
)

const hackertargetSeparator = ": "

type hackertargetProvider struct {
	requester geolib.Requester
}

func (h hackertargetProvider) Name() string {
	return NameHackerTarget
}

func (h hackertargetProvider) Locate(ctx context.Context, ip geolib.IP) (geolib.Location, error) {
	data, err := h.requester.Request(ctx, "https://api.hackertarget.com/ipgeo/?q="+ip.String(), true)
	if err != nil {
		return geolib.Location{}, fmt.Errorf("cannot request: %w", err)
	}

	fields := parseHackertargetResponse(string(data))
	if len(fields) == 0 {
		return geolib.Location{}, ErrNoData
	}

	result := geolib.Location{
		IP:      ip,
		Country: fields["country"],
		City:    fields["city"],
	}

	// upstream sometimes returns garbage instead of coordinates. This is
	// not a reason to drop a city.
	result.Point.Lat, _ = strconv.ParseFloat(fields["latitude"], 64)
	result.Point.Lng, _ = strconv.ParseFloat(fields["longitude"], 64)

	return result, nil
}

// parseHackertargetResponse extracts known fields from a set of
// 'Key: Value' lines. Keys are matched as case-insensitive substrings,
// so 'IP Country' is a country as well. If several lines match, the
// last one wins.
func parseHackertargetResponse(text string) map[string]string {
	fields := map[string]string{}

	for _, line := range strings.Split(text, "\n") {
		chunks := strings.SplitN(line, hackertargetSeparator, 2)
		if len(chunks) != 2 {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(chunks[0]))
		value := strings.TrimSpace(chunks[1])

		for _, key := range [...]string{"country", "city", "latitude", "longitude"} {
			if strings.Contains(name, key) {
				fields[key] = value
			}
		}
	}

	return fields
}

func NewHackerTarget(requester geolib.Requester) geolib.Locator {
	return hackertargetProvider{
		requester: requester,
	}
}
