package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"LaptopStore/internal/catalog"
	"LaptopStore/internal/config"
	"LaptopStore/pkg/kit"
)

const (
	service      = "laptopstore"
	readyMessage = "Listening for requests now"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Fatal("laptopstore stopped", zap.Error(err))
	}
}

// run returns before binding the listener if the products cannot be loaded.
func run(cfg config.Config, log *zap.Logger, out io.Writer) error {
	dataPath := cfg.DataPath
	if dataPath == "" {
		p, err := catalog.DefaultDataPath()
		if err != nil {
			return err
		}
		dataPath = p
	}

	store, err := catalog.LoadStore(dataPath)
	if err != nil {
		return err
	}
	log.Info("products loaded", zap.Int("count", store.Len()), zap.String("path", dataPath))

	s := &catalog.Server{Store: store, Log: log}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:               log,
		Service:           service,
		Registry:          prometheus.NewRegistry(),
		MetricsEnabled:    cfg.MetricsEnabled,
		MetricsToken:      cfg.MetricsToken,
		RateLimit:         cfg.RateLimit,
		RateLimitWindow:   cfg.RateLimitWindow,
		TrustForwardedFor: cfg.TrustForwardedFor,
	})

	return kit.RunHTTPServer(cfg.Addr(), h, log, out, readyMessage)
}
