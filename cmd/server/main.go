// Package main - entry point for the prepstock API server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"prepstock/api"
	"prepstock/catalog"
	"prepstock/core/engine"
	"prepstock/internal/config"
	"prepstock/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgPath := flag.String("config", config.DefaultPath(), "config file path")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	cat, err := catalog.Effective(cfg.CatalogOverlays)
	if err != nil {
		logging.Error("loading catalog", zap.Error(err))
		os.Exit(1)
	}

	eng := engine.New(cat, engine.WithParams(cfg.Engine.Params()))
	server := api.NewServer(eng, version)

	logging.Info("starting server",
		zap.String("addr", *addr),
		zap.String("version", version),
		zap.Int("catalog_entries", len(cat)))

	if err := server.Run(*addr); err != nil {
		logging.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
