package providers

import (
	"fmt"

	"github.com/9seconds/geochain/geolib"
)

// DefaultOrder is a list of providers which work without any
// configuration, in order of their priority.
var DefaultOrder = []string{
	NameHackerTarget,
	NameIPSB,
	NameIPAPICom,
	NameReallyFreeGeoIP,
	NameFreeIPAPI,
}

// Factories maps a provider name to its constructor. It is meant to be
// used with geolib.Chain.AddProvider.
var Factories = map[string]geolib.LocatorFactory{
	NameHackerTarget:    withoutOptions(NewHackerTarget),
	NameIPSB:            withoutOptions(NewIPSB),
	NameIPAPICom:        withoutOptions(NewIPAPICom),
	NameReallyFreeGeoIP: withoutOptions(NewReallyFreeGeoIP),
	NameFreeIPAPI:       withoutOptions(NewFreeIPAPI),
	NameIPGeolocation: func(requester geolib.Requester, options map[string]string) (geolib.Locator, error) {
		return NewIPGeolocation(requester, options[OptionToken])
	},
}

// Get returns a factory of the provider with a given name.
func Get(name string) (geolib.LocatorFactory, error) {
	factory, ok := Factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}

	return factory, nil
}

func withoutOptions(constructor func(geolib.Requester) geolib.Locator) geolib.LocatorFactory {
	return func(requester geolib.Requester, _ map[string]string) (geolib.Locator, error) {
		return constructor(requester), nil
	}
}
