package geolib

import (
	"fmt"
	"net"
	"net/netip"
)

// IP is a validated IP address. Zero value is not a valid address, use
// ParseIP to get one.
type IP struct {
	value string
	addr  netip.Addr
}

// String returns an address exactly as it was given to ParseIP.
func (i IP) String() string {
	return i.value
}

func (i IP) IsV4() bool {
	return i.addr.Is4()
}

// IsV6 is true for every address which is not a plain IPv4 one,
// including IPv4-mapped IPv6 addresses like ::ffff:1.2.3.4.
func (i IP) IsV6() bool {
	return i.addr.IsValid() && !i.addr.Is4()
}

func (i IP) NetIP() net.IP {
	if !i.addr.IsValid() {
		return nil
	}

	return net.IP(i.addr.AsSlice())
}

func (i IP) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

func (i *IP) UnmarshalText(text []byte) error {
	parsed, err := ParseIP(string(text))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// ParseIP validates a given string and returns IP. Zoned IPv6 addresses
// are rejected: upstream providers do not understand them.
func ParseIP(value string) (IP, error) {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return IP{}, fmt.Errorf("%w: %v", ErrInvalidIP, err)
	}

	if addr.Zone() != "" {
		return IP{}, fmt.Errorf("%w: zone is not allowed in %s", ErrInvalidIP, value)
	}

	return IP{
		value: value,
		addr:  addr,
	}, nil
}

// MustParseIP is ParseIP which panics on error. Useful for constants
// and tests.
func MustParseIP(value string) IP {
	ip, err := ParseIP(value)
	if err != nil {
		panic(err)
	}

	return ip
}
