// This package provides a set of structs and functions which are used
// to geolocate a given IP address with a chain of online providers.
//
// geolib is core of the geochain project. You can treat the rest of
// the application as an _example_ on how to use this library: how to
// build a chain from a config, how to expose it over HTTP, how to
// implement providers.
//
// Chain is a main entity of the geolib. It contains an ordered list
// of locators and asks them one by one until some of them returns a
// location with a known city. Locators fetch upstream data with a
// Requester which transparently consults a Cache before going to the
// network.
package geolib
