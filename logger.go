package main

import (
	"io"

	"github.com/9seconds/geochain/geolib"
	"github.com/rs/zerolog"
)

type logger struct {
	locateLog zerolog.Logger
	setupLog  zerolog.Logger
}

func (l *logger) LocateAttempt(ip geolib.IP, name string) {
	l.locateLog.Debug().Str("provider", name).Str("ip", ip.String()).Msg("Trying provider")
}

func (l *logger) LocateError(ip geolib.IP, name string, err error) {
	l.locateLog.Warn().Str("provider", name).Str("ip", ip.String()).Err(err).Msg("")
}

func (l *logger) LocateResolved(ip geolib.IP, name string) {
	l.locateLog.Debug().Str("provider", name).Str("ip", ip.String()).Msg("Location was resolved")
}

func (l *logger) ProviderSkipped(name string, err error) {
	l.setupLog.Error().Str("provider", name).Err(err).Msg("Provider was skipped")
}

func newLogger(w io.Writer, debug bool) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &logger{
		locateLog: zerolog.New(w).Level(level).With().Timestamp().Str("event_name", "locate").Logger(),
		setupLog:  zerolog.New(w).Level(level).With().Timestamp().Str("event_name", "setup").Logger(),
	}
}
