package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9seconds/geochain/geolib"
	"github.com/9seconds/geochain/providers"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

const redisPingTimeout = 5 * time.Second

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeHTTPClient(conf *config) geolib.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Timeout: conf.GetHTTPTimeout(),
		Jar:     jar,
	}

	return geolib.NewHTTPClient(httpClient, conf.GetUserAgent())
}

// makeCache returns nil cache if caching is disabled. A returned
// function releases cache resources.
func makeCache(ctx context.Context, fs afero.Fs, conf configCache) (geolib.Cache, func(), error) {
	switch conf.GetType() {
	case cacheTypeFile:
		return geolib.NewFileCache(fs, conf.GetDirectory(), conf.Name), func() {}, nil
	case cacheTypeMemory:
		cache, err := geolib.NewMemoryCache(conf.GetItemsCount(), conf.TTL.Duration)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot create memory cache: %w", err)
		}

		return cache, cache.Close, nil
	case cacheTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     conf.GetRedisAddr(),
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()

			return nil, nil, fmt.Errorf("cannot connect to redis: %w", err)
		}

		closer := func() {
			client.Close()
		}

		return geolib.NewRedisCache(client, conf.Name, conf.TTL.Duration), closer, nil
	case cacheTypeNone:
		return nil, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unsupported cache type %s", conf.GetType())
}

func makeChain(conf *config, requester geolib.Requester, logger geolib.Logger) (*geolib.Chain, error) {
	chain := geolib.NewChain(requester, logger)

	for _, v := range conf.GetProviders() {
		factory, err := providers.Get(v.Name)
		if err != nil {
			return nil, fmt.Errorf("cannot create a chain: %w", err)
		}

		chain.AddProvider(v.Name, factory, v.GetOptions())
	}

	return chain, nil
}
