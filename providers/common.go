package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/9seconds/geochain/geolib"
)

// coordinate is a latitude or longitude which some upstreams send as
// a number and some as a string.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0

		return nil
	}

	if data[0] == '"' {
		text := ""

		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("incorrect coordinate: %w", err)
		}

		data = []byte(text)

		if len(data) == 0 {
			*c = 0

			return nil
		}
	}

	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("incorrect coordinate: %w", err)
	}

	*c = coordinate(value)

	return nil
}

func (c coordinate) Float64() float64 {
	return float64(c)
}

func requestJSON(ctx context.Context, requester geolib.Requester, url string, value interface{}) error {
	data, err := requester.Request(ctx, url, false)
	if err != nil {
		return fmt.Errorf("cannot request: %w", err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("cannot parse a response: %w", err)
	}

	return nil
}
