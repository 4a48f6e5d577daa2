package geolib_test

import (
	"context"

	"github.com/9seconds/geochain/geolib"
	"github.com/stretchr/testify/mock"
)

type LocatorMock struct {
	mock.Mock
}

func (m *LocatorMock) Locate(ctx context.Context, ip geolib.IP) (geolib.Location, error) {
	args := m.Called(ctx, ip)

	return args.Get(0).(geolib.Location), args.Error(1)
}

func (m *LocatorMock) Name() string {
	return m.Called().String(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LocateAttempt(ip geolib.IP, name string) {
	m.Called(ip, name)
}

func (m *LoggerMock) LocateError(ip geolib.IP, name string, err error) {
	m.Called(ip, name, err)
}

func (m *LoggerMock) LocateResolved(ip geolib.IP, name string) {
	m.Called(ip, name)
}

func (m *LoggerMock) ProviderSkipped(name string, err error) {
	m.Called(name, err)
}
