package providers

import "errors"

var (
	// ErrAuthTokenIsRequired is returned if you are trying to initialize
	// a provider which requires some token to work.
	ErrAuthTokenIsRequired = errors.New("auth token is required")

	// ErrUnknownProvider is returned by Get if there is no provider
	// registered under a given name.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNoData is returned if upstream has responded with something
	// that has no recognizable fields.
	ErrNoData = errors.New("no data in response")

	// ErrFailedResponse is returned if upstream has explicitly reported
	// a failure in the response body.
	ErrFailedResponse = errors.New("failed response")
)
