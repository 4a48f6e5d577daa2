package providers_test

import (
	"net/http"
	"os"

	"github.com/9seconds/geochain/geolib"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite

	requester     geolib.Requester
	baseDirectory string
}

func (suite *ProviderTestSuite) SetupTest() {
	dir, err := os.MkdirTemp("", "geochain_int_test_")
	if err != nil {
		panic(err)
	}

	suite.baseDirectory = dir
	suite.requester = geolib.NewRequester(
		geolib.NewHTTPClient(&http.Client{}, "test-agent"),
		geolib.NewFileCache(afero.NewOsFs(), dir, "test"))
}

func (suite *ProviderTestSuite) TearDownTest() {
	os.RemoveAll(suite.baseDirectory)
}

type MockedProviderTestSuite struct {
	ProviderTestSuite
}

func (suite *MockedProviderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedProviderTestSuite) SetupTest() {
	suite.requester = geolib.NewRequester(
		geolib.NewHTTPClient(&http.Client{}, "test-agent"),
		nil)
}

func (suite *MockedProviderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedProviderTestSuite) TearDownTest() {
	httpmock.Reset()
}
