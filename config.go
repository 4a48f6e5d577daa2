package main

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/9seconds/geochain/geolib"
	"github.com/9seconds/geochain/providers"
	"github.com/hjson/hjson-go/v4"
	"github.com/spf13/afero"
)

const (
	DefaultListen          = "127.0.0.1:8000"
	DefaultHTTPTimeout     = 10 * time.Second
	DefaultCacheType       = cacheTypeFile
	DefaultCacheItemsCount = 100000
	DefaultRedisAddr       = "127.0.0.1:6379"
)

const (
	cacheTypeFile   = "file"
	cacheTypeMemory = "memory"
	cacheTypeRedis  = "redis"
	cacheTypeNone   = "none"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Listen         string           `json:"listen"`
	UserAgent      string           `json:"user_agent"`
	HTTPTimeout    duration         `json:"http_timeout"`
	WorkerPoolSize uint             `json:"worker_pool_size"`
	BasicAuth      configBasicAuth  `json:"basic_auth"`
	Cache          configCache      `json:"cache"`
	Providers      []configProvider `json:"providers"`
}

func (c config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}

	return "geochain/" + version
}

func (c config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c config) GetWorkerPoolSize() int {
	if c.WorkerPoolSize == 0 {
		return geolib.DefaultWorkerPoolSize
	}

	return int(c.WorkerPoolSize)
}

// GetProviders returns a list of providers in order of their priority.
// If nothing is configured, all providers which do not require any
// options are used.
func (c config) GetProviders() []configProvider {
	if len(c.Providers) > 0 {
		return c.Providers
	}

	rv := make([]configProvider, 0, len(providers.DefaultOrder))

	for _, v := range providers.DefaultOrder {
		rv = append(rv, configProvider{Name: v})
	}

	return rv
}

type configBasicAuth struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

func (c configBasicAuth) Enabled() bool {
	return c.User != "" || c.Password != ""
}

type configCache struct {
	Type          string   `json:"type"`
	Directory     string   `json:"directory"`
	Name          string   `json:"name"`
	ItemsCount    uint     `json:"items_count"`
	TTL           duration `json:"ttl"`
	RedisAddr     string   `json:"redis_addr"`
	RedisPassword string   `json:"redis_password"`
	RedisDB       int      `json:"redis_db"`
}

func (c configCache) GetType() string {
	if c.Type != "" {
		return c.Type
	}

	return DefaultCacheType
}

func (c configCache) GetDirectory() string {
	if c.Directory != "" {
		return c.Directory
	}

	return filepath.Join(os.TempDir(), "geochain")
}

func (c configCache) GetItemsCount() uint {
	if c.ItemsCount == 0 {
		return DefaultCacheItemsCount
	}

	return c.ItemsCount
}

func (c configCache) GetRedisAddr() string {
	if c.RedisAddr != "" {
		return c.RedisAddr
	}

	return DefaultRedisAddr
}

type configProvider struct {
	Name    string            `json:"name"`
	Options map[string]string `json:"options"`
}

// GetOptions returns provider options with environment variables
// expanded, so tokens can be kept out of the config file.
func (c configProvider) GetOptions() map[string]string {
	rv := make(map[string]string, len(c.Options))

	for k, v := range c.Options {
		rv[k] = os.ExpandEnv(v)
	}

	return rv
}

func parseConfig(fs afero.Fs, path string) (*config, error) {
	conf := config{}

	if path != "" {
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("cannot read file: %w", err)
		}

		rawMap := map[string]interface{}{}

		if err := hjson.Unmarshal(content, &rawMap); err != nil {
			return nil, fmt.Errorf("cannot parse hjson: %w", err)
		}

		rawBytes, _ := json.Marshal(rawMap)

		if err := json.Unmarshal(rawBytes, &conf); err != nil {
			return nil, fmt.Errorf("incorrect config: %w", err)
		}
	}

	if _, _, err := net.SplitHostPort(conf.GetListen()); err != nil {
		return nil, fmt.Errorf("incorrect host:port for listen: %w", err)
	}

	switch conf.Cache.GetType() {
	case cacheTypeFile, cacheTypeMemory, cacheTypeRedis, cacheTypeNone:
	default:
		return nil, fmt.Errorf("unsupported cache type %s", conf.Cache.GetType())
	}

	for _, v := range conf.Providers {
		if _, err := providers.Get(v.Name); err != nil {
			return nil, fmt.Errorf("incorrect provider: %w", err)
		}
	}

	return &conf, nil
}
