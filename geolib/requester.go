package geolib

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type requester struct {
	client HTTPClient
	cache  Cache
}

func (r requester) Request(ctx context.Context, url string, asPlain bool) ([]byte, error) {
	if cached, ok := r.fromCache(url, asPlain); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build a request: %w", err)
	}

	if !asPlain {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	body, err := io.ReadAll(bufio.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("cannot read a response: %w", err)
	}

	var toCache []byte

	if asPlain {
		if len(body) == 0 {
			return nil, ErrEmptyResponse
		}

		toCache, _ = json.Marshal(string(body))
	} else {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, ErrEmptyResponse
		}

		empty, err := isEmptyJSON(body)

		switch {
		case err != nil:
			return nil, fmt.Errorf("cannot parse a response: %w", err)
		case empty:
			return nil, ErrEmptyResponse
		}

		toCache = body
	}

	r.toCache(url, toCache)

	return body, nil
}

func (r requester) fromCache(key string, asPlain bool) ([]byte, bool) {
	if r.cache == nil {
		return nil, false
	}

	value, ok := r.cache.Get(key)
	if !ok || len(value) == 0 {
		return nil, false
	}

	if asPlain {
		text := ""

		if err := json.Unmarshal(value, &text); err == nil {
			return []byte(text), true
		}
	}

	return value, true
}

func (r requester) toCache(key string, value []byte) {
	if r.cache == nil {
		return
	}

	r.cache.Set(key, value) // nolint: errcheck
}

// NewRequester returns a requester which serves responses from cache
// if possible. Cache may be nil.
func NewRequester(client HTTPClient, cache Cache) Requester {
	return requester{
		client: client,
		cache:  cache,
	}
}

func isEmptyJSON(data []byte) (bool, error) {
	var value interface{}

	if err := json.Unmarshal(data, &value); err != nil {
		return false, err
	}

	switch v := value.(type) {
	case nil:
		return true, nil
	case string:
		return v == "", nil
	case bool:
		return !v, nil
	case float64:
		return v == 0, nil
	case []interface{}:
		return len(v) == 0, nil
	case map[string]interface{}:
		return len(v) == 0, nil
	}

	return false, nil
}
