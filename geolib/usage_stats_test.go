package geolib_test

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/9seconds/geochain/geolib"
	"github.com/stretchr/testify/suite"
)

type usageStatsJSON struct {
	Name         string `json:"name"`
	LastUsed     int64  `json:"last_used"`
	SuccessCount uint64 `json:"success_count"`
	FailureCount uint64 `json:"failure_count"`
}

type UsageStatsTestSuite struct {
	suite.Suite

	u *geolib.UsageStats
}

func (suite *UsageStatsTestSuite) SetupTest() {
	suite.u = &geolib.UsageStats{
		Name: "test",
	}
}

func (suite *UsageStatsTestSuite) Verify(lastUsed time.Time, success, failure int) {
	v, err := json.Marshal(suite.u)

	suite.NoError(err)

	raw := usageStatsJSON{}

	suite.NoError(json.Unmarshal(v, &raw))
	suite.Equal("test", raw.Name)
	suite.EqualValues(success, raw.SuccessCount)
	suite.EqualValues(failure, raw.FailureCount)

	if lastUsed.IsZero() {
		suite.EqualValues(0, raw.LastUsed)
	} else {
		suite.WithinDuration(lastUsed, time.Unix(raw.LastUsed, 0), time.Second)
	}
}

func (suite *UsageStatsTestSuite) TestEmpty() {
	suite.Verify(time.Time{}, 0, 0)
}

func (suite *UsageStatsTestSuite) TestUsed() {
	suite.u.Used(nil)
	suite.Verify(time.Now(), 1, 0)

	suite.u.Used(io.EOF)
	suite.Verify(time.Now(), 1, 1)

	suite.u.Used(io.EOF)
	suite.Verify(time.Now(), 1, 2)

	suite.u.Used(nil)
	suite.Verify(time.Now(), 2, 2)
}

func TestUsageStats(t *testing.T) {
	suite.Run(t, &UsageStatsTestSuite{})
}
