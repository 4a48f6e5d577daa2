package geolib_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/9seconds/geochain/geolib"
	"github.com/mccutchen/go-httpbin/httpbin"
	"github.com/stretchr/testify/suite"
)

type HTTPClientTestSuite struct {
	suite.Suite

	httpbinEndpoint *httptest.Server
	c               geolib.HTTPClient
}

func (suite *HTTPClientTestSuite) SetupSuite() {
	suite.httpbinEndpoint = httptest.NewServer(httpbin.NewHTTPBin().Handler())
}

func (suite *HTTPClientTestSuite) TearDownSuite() {
	suite.httpbinEndpoint.Close()
}

func (suite *HTTPClientTestSuite) SetupTest() {
	client := suite.httpbinEndpoint.Client()
	client.Timeout = time.Second

	suite.c = geolib.NewHTTPClient(client, "test-agent")
}

func (suite *HTTPClientTestSuite) TestUserAgent() {
	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/user-agent", nil)
	resp, err := suite.c.Do(req)

	suite.NoError(err)

	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	parsed := struct {
		UserAgent string `json:"user-agent"`
	}{}

	suite.NoError(json.Unmarshal(data, &parsed))
	suite.Equal("test-agent", parsed.UserAgent)
}

func (suite *HTTPClientTestSuite) TestOk() {
	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/status/204", nil)
	resp, err := suite.c.Do(req)

	suite.NoError(err)
	suite.Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func (suite *HTTPClientTestSuite) TestBadStatus() {
	for _, v := range []string{"/status/500", "/status/404", "/status/429"} {
		req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+v, nil)
		_, err := suite.c.Do(req)

		suite.Error(err)
	}
}

func (suite *HTTPClientTestSuite) TestTimeout() {
	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/delay/3", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
}

func (suite *HTTPClientTestSuite) TestCannotDial() {
	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"1"+"/status/200", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
}

func TestHTTPClient(t *testing.T) {
	suite.Run(t, &HTTPClientTestSuite{})
}
