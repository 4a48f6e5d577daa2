package providers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/9seconds/geochain/geolib"
	"github.com/9seconds/geochain/providers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type MockedReallyFreeGeoIPTestSuite struct {
	MockedProviderTestSuite

	prov geolib.Locator
}

func (suite *MockedReallyFreeGeoIPTestSuite) SetupTest() {
	suite.MockedProviderTestSuite.SetupTest()

	suite.prov = providers.NewReallyFreeGeoIP(suite.requester)
}

func (suite *MockedReallyFreeGeoIPTestSuite) TestName() {
	suite.Equal(providers.NameReallyFreeGeoIP, suite.prov.Name())
}

func (suite *MockedReallyFreeGeoIPTestSuite) TestLocateFailed() {
	httpmock.RegisterResponder("GET",
		"https://reallyfreegeoip.org/json/2a02:2378:1000::1",
		httpmock.NewStringResponder(http.StatusBadGateway, "<html></html>"))

	_, err := suite.prov.Locate(context.Background(),
		geolib.MustParseIP("2a02:2378:1000::1"))

	suite.Error(err)
}

func (suite *MockedReallyFreeGeoIPTestSuite) TestLocateNull() {
	httpmock.RegisterResponder("GET",
		"https://reallyfreegeoip.org/json/2a02:2378:1000::1",
		httpmock.NewStringResponder(http.StatusOK, "null"))

	_, err := suite.prov.Locate(context.Background(),
		geolib.MustParseIP("2a02:2378:1000::1"))

	suite.ErrorIs(err, geolib.ErrEmptyResponse)
}

func (suite *MockedReallyFreeGeoIPTestSuite) TestOk() {
	httpmock.RegisterResponder("GET",
		"https://reallyfreegeoip.org/json/2a02:2378:1000::1",
		httpmock.NewStringResponder(http.StatusOK, `{
  "ip": "2a02:2378:1000::1",
  "country_code": "UA",
  "country_name": "Ukraine",
  "region_code": "30",
  "region_name": "Kyiv City",
  "city": "Kyiv",
  "zip_code": "03150",
  "time_zone": "Europe/Kyiv",
  "latitude": 50.4547,
  "longitude": 30.5238,
  "metro_code": 0
}`))

	result, err := suite.prov.Locate(context.Background(),
		geolib.MustParseIP("2a02:2378:1000::1"))

	suite.NoError(err)
	suite.True(result.IP.IsV6())
	suite.Equal("Ukraine", result.Country)
	suite.Equal("Kyiv", result.City)
	suite.Equal("03150", result.Zip)
	suite.InDelta(50.4547, result.Point.Lat, 1e-9)
	suite.InDelta(30.5238, result.Point.Lng, 1e-9)
}

type IntegrationReallyFreeGeoIPTestSuite struct {
	ProviderTestSuite

	prov geolib.Locator
}

func (suite *IntegrationReallyFreeGeoIPTestSuite) SetupTest() {
	suite.ProviderTestSuite.SetupTest()

	suite.prov = providers.NewReallyFreeGeoIP(suite.requester)
}

func (suite *IntegrationReallyFreeGeoIPTestSuite) TestLocate() {
	result, err := suite.prov.Locate(context.Background(),
		geolib.MustParseIP("8.8.8.8"))

	suite.NoError(err)
	suite.NotEmpty(result.Country)
}

func TestReallyFreeGeoIP(t *testing.T) {
	suite.Run(t, &MockedReallyFreeGeoIPTestSuite{})
}

func TestIntegrationReallyFreeGeoIP(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipped because of the short mode")
		return
	}

	suite.Run(t, &IntegrationReallyFreeGeoIPTestSuite{})
}
