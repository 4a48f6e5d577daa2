package main

import (
	"os"
	"testing"
	"time"

	"github.com/9seconds/geochain/geolib"
	"github.com/9seconds/geochain/providers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite

	fs afero.Fs
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
}

func (suite *ConfigTestSuite) writeConfig(content string) string {
	suite.NoError(afero.WriteFile(suite.fs, "/etc/geochain.hjson", []byte(content), 0o644))

	return "/etc/geochain.hjson"
}

func (suite *ConfigTestSuite) TestDefaults() {
	conf, err := parseConfig(suite.fs, "")

	suite.NoError(err)
	suite.Equal(DefaultListen, conf.GetListen())
	suite.Equal("geochain/"+version, conf.GetUserAgent())
	suite.Equal(DefaultHTTPTimeout, conf.GetHTTPTimeout())
	suite.Equal(geolib.DefaultWorkerPoolSize, conf.GetWorkerPoolSize())
	suite.False(conf.BasicAuth.Enabled())
	suite.Equal(cacheTypeFile, conf.Cache.GetType())
	suite.NotEmpty(conf.Cache.GetDirectory())
	suite.EqualValues(DefaultCacheItemsCount, conf.Cache.GetItemsCount())
	suite.Equal(DefaultRedisAddr, conf.Cache.GetRedisAddr())

	names := []string{}

	for _, v := range conf.GetProviders() {
		names = append(names, v.Name)
	}

	suite.Equal(providers.DefaultOrder, names)
}

func (suite *ConfigTestSuite) TestFull() {
	path := suite.writeConfig(`{
  # comments are allowed
  listen: 0.0.0.0:9000
  user_agent: my-agent
  http_timeout: 3s
  worker_pool_size: 8
  basic_auth: {
    user: admin
    password: secret
  }
  cache: {
    type: redis
    name: geo
    ttl: 1h
    redis_addr: redis:6379
    redis_db: 2
  }
  providers: [
    {name: "ipsb"}
    {
      name: "ipgeolocation"
      options: {token: "${GEOCHAIN_TEST_TOKEN}"}
    }
  ]
}`)

	os.Setenv("GEOCHAIN_TEST_TOKEN", "xxx")
	defer os.Unsetenv("GEOCHAIN_TEST_TOKEN")

	conf, err := parseConfig(suite.fs, path)

	suite.NoError(err)
	suite.Equal("0.0.0.0:9000", conf.GetListen())
	suite.Equal("my-agent", conf.GetUserAgent())
	suite.Equal(3*time.Second, conf.GetHTTPTimeout())
	suite.Equal(8, conf.GetWorkerPoolSize())
	suite.True(conf.BasicAuth.Enabled())
	suite.Equal("redis", conf.Cache.GetType())
	suite.Equal("geo", conf.Cache.Name)
	suite.Equal(time.Hour, conf.Cache.TTL.Duration)
	suite.Equal("redis:6379", conf.Cache.GetRedisAddr())
	suite.Equal(2, conf.Cache.RedisDB)
	suite.Len(conf.GetProviders(), 2)
	suite.Equal(providers.NameIPSB, conf.GetProviders()[0].Name)
	suite.Empty(conf.GetProviders()[0].GetOptions())
	suite.Equal(map[string]string{"token": "xxx"}, conf.GetProviders()[1].GetOptions())
}

func (suite *ConfigTestSuite) TestNoFile() {
	_, err := parseConfig(suite.fs, "/nowhere.hjson")

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBrokenHjson() {
	_, err := parseConfig(suite.fs, suite.writeConfig(`{listen: `))

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBadDuration() {
	_, err := parseConfig(suite.fs, suite.writeConfig(`{http_timeout: 10}`))

	suite.Error(err)

	_, err = parseConfig(suite.fs, suite.writeConfig(`{http_timeout: "soon"}`))

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBadListen() {
	_, err := parseConfig(suite.fs, suite.writeConfig(`{listen: "localhost"}`))

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestUnknownCache() {
	_, err := parseConfig(suite.fs, suite.writeConfig(`{cache: {type: "memcached"}}`))

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestUnknownProvider() {
	_, err := parseConfig(suite.fs, suite.writeConfig(`{providers: [{name: "ipinfo"}]}`))

	suite.ErrorIs(err, providers.ErrUnknownProvider)
}

func TestConfig(t *testing.T) {
	suite.Run(t, &ConfigTestSuite{})
}
