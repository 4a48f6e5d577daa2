package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/9seconds/geochain/geolib"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

const (
	version = "0.1.0"

	shutdownTimeout = 10 * time.Second
)

var (
	app = kingpin.New(
		"geochain",
		"Locate IP addresses with a chain of free online providers")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOCHAIN_DEBUG").
		Bool()
	configPath = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("GEOCHAIN_CONFIG").
			String()
	envFile = app.Flag("env-file", "Path to the file with environment variables.").
		Default(".env").
		String()

	locateCommand = app.Command("locate", "Locate given IP addresses.").Default()
	locateIPs     = locateCommand.Arg("ip", "IP addresses to locate.").
			Required().
			Strings()

	serveCommand = app.Command("serve", "Run HTTP server.")
)

func init() {
	app.Version(version)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	log := newLogger(os.Stderr, *debug)

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.setupLog.Fatal().Err(err).Msg("Cannot load env file")
	}

	fs := afero.NewOsFs()

	conf, err := parseConfig(fs, *configPath)
	if err != nil {
		log.setupLog.Fatal().Err(err).Msg("Cannot parse config")
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	cache, closeCache, err := makeCache(ctx, fs, conf.Cache)
	if err != nil {
		log.setupLog.Fatal().Err(err).Msg("Cannot initialize cache")
	}

	defer closeCache()

	registry := prometheus.NewRegistry()
	requester := geolib.NewRequester(makeHTTPClient(conf), cache)

	chain, err := makeChain(conf, requester, newMetricsLogger(registry, log))
	if err != nil {
		log.setupLog.Fatal().Err(err).Msg("Cannot initialize providers")
	}

	batch, err := geolib.NewBatchLocator(chain, conf.GetWorkerPoolSize())
	if err != nil {
		log.setupLog.Fatal().Err(err).Msg("Cannot initialize worker pool")
	}

	defer batch.Shutdown()

	switch command {
	case locateCommand.FullCommand():
		if err := runLocate(ctx, os.Stdout, batch, *locateIPs); err != nil {
			log.locateLog.Error().Err(err).Msg("Cannot locate")
		}
	case serveCommand.FullCommand():
		if err := runServe(ctx, conf, chain, batch, registry); err != nil {
			log.setupLog.Error().Err(err).Msg("Server has stopped")
		}
	}
}

func runServe(ctx context.Context,
	conf *config,
	chain *geolib.Chain,
	batch *geolib.BatchLocator,
	registry *prometheus.Registry) error {
	srv := &http.Server{
		Addr:    conf.GetListen(),
		Handler: makeRouter(conf, chain, batch, registry),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func makeRouter(conf *config,
	chain *geolib.Chain,
	batch *geolib.BatchLocator,
	registry *prometheus.Registry) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)

	if conf.BasicAuth.Enabled() {
		router.Use(newBasicAuthMiddleware(conf.BasicAuth))
	}

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Mount("/", geolib.NewHTTPHandler(chain, batch))

	return router
}
