package geolib

import (
	"context"
	"fmt"
	"sync"
)

const ChainName = "chain"

type chainEntry struct {
	locator Locator
	stats   *UsageStats
}

// Chain asks its locators one by one in registration order and returns
// the first acceptable location. Locators are never queried in
// parallel: the next one is asked only if the previous one has failed.
type Chain struct {
	requester Requester
	logger    Logger
	rwmutex   sync.RWMutex
	entries   []chainEntry
}

func (c *Chain) Name() string {
	return ChainName
}

// AddProvider builds a locator with a factory and appends it to the
// chain. If the factory fails, the provider is skipped: this is
// reported to the logger under a given name but never returned.
func (c *Chain) AddProvider(name string, factory LocatorFactory, options map[string]string) {
	if options == nil {
		options = map[string]string{}
	}

	locator, err := factory(c.requester, options)
	if err != nil {
		c.logger.ProviderSkipped(name, err)

		return
	}

	c.Add(locator)
}

// Add appends ready locators to the chain. Duplicates are allowed.
func (c *Chain) Add(locators ...Locator) {
	c.rwmutex.Lock()
	defer c.rwmutex.Unlock()

	for _, v := range locators {
		c.entries = append(c.entries, chainEntry{
			locator: v,
			stats:   &UsageStats{Name: v.Name()},
		})
	}
}

func (c *Chain) Names() []string {
	c.rwmutex.RLock()
	defer c.rwmutex.RUnlock()

	rv := make([]string, 0, len(c.entries))

	for _, v := range c.entries {
		rv = append(rv, v.locator.Name())
	}

	return rv
}

func (c *Chain) Stats() []*UsageStats {
	c.rwmutex.RLock()
	defer c.rwmutex.RUnlock()

	rv := make([]*UsageStats, 0, len(c.entries))

	for _, v := range c.entries {
		rv = append(rv, v.stats)
	}

	return rv
}

func (c *Chain) Locate(ctx context.Context, ip IP) (Location, error) {
	c.rwmutex.RLock()
	entries := c.entries
	c.rwmutex.RUnlock()

	for _, v := range entries {
		select {
		case <-ctx.Done():
			return Location{}, fmt.Errorf("%w: %v", ErrContextIsClosed, ctx.Err())
		default:
		}

		name := v.locator.Name()

		c.logger.LocateAttempt(ip, name)

		location, err := v.locator.Locate(ctx, ip)
		if err == nil && !location.OK() {
			err = fmt.Errorf("%w: %q", ErrUnacceptableLocation, location.City)
		}

		v.stats.Used(err)

		if err != nil {
			c.logger.LocateError(ip, name, err)

			continue
		}

		c.logger.LocateResolved(ip, name)

		return location, nil
	}

	return Location{}, ErrLocationNotFound
}

// NewChain creates an empty chain. All locators added with AddProvider
// share a given requester. Logger may be nil.
func NewChain(requester Requester, logger Logger) *Chain {
	if logger == nil {
		logger = noopLogger{}
	}

	return &Chain{
		requester: requester,
		logger:    logger,
	}
}
