// Geochain is a tool to resolve geolocation data of IP addresses using
// a chain of free online providers.
//
// Idea is simple: you have an IP address like 77.79.133.234 and want to
// know a country and a city of it. There are many free services which
// can answer this question, but each of them can be down, rate limited
// or simply unaware of the address. Geochain asks them one by one, in
// configured order, and stops at the first one which knows a city.
// Responses are cached, so the same address is never requested twice.
//
// The tool is organized into 3 logical parts:
//
// Geolib
//
// geolib is a main package of the application. It contains IP and
// Location models, caches, a requester which sits between providers and
// network, and a Chain which walks providers. It also can act as
// http.Handler.
//
// Providers
//
// This package has implementations of online providers and a registry
// which maps their names to constructors.
//
// Geochain
//
// A main package itself wires both geolib and providers into a CLI.
// It can locate addresses given on a command line or start an HTTP
// server.
package main
