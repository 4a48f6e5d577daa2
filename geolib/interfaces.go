package geolib

import (
	"context"
	"net/http"
)

// Locator resolves IP to Location using some upstream. Any error means
// that there is no result.
type Locator interface {
	Name() string
	Locate(context.Context, IP) (Location, error)
}

// LocatorFactory builds a locator from a requester and a set of
// provider specific options. An error here is a configuration error.
type LocatorFactory func(requester Requester, options map[string]string) (Locator, error)

// Requester fetches a given URL. If asPlain is false, a response body
// has to be a valid JSON.
type Requester interface {
	Request(ctx context.Context, url string, asPlain bool) ([]byte, error)
}

// Cache is a key-value storage of JSON documents. Implementations
// hash keys before storing them.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Has(key string) bool
	Remove(key string) error
}

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Logger receives events of the chain traversal.
type Logger interface {
	LocateAttempt(ip IP, name string)
	LocateError(ip IP, name string, err error)
	LocateResolved(ip IP, name string)
	ProviderSkipped(name string, err error)
}

type noopLogger struct{}

func (noopLogger) LocateAttempt(IP, string) {}
func (noopLogger) LocateError(IP, string, error) {}
func (noopLogger) LocateResolved(IP, string) {}
func (noopLogger) ProviderSkipped(string, error) {}
