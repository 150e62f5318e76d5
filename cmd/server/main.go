// Package main - Entry point for the road cost estimation server
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"roadcost/api"
	"roadcost/catalog"
	"roadcost/db"
	"roadcost/internal/config"
	"roadcost/internal/logging"
	"roadcost/volume"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	addr := flag.String("addr", "", "Server address (overrides configuration)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("initialize logging: %v", err)
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	opts := api.Options{
		Source:        volume.NewSynthetic(),
		ReportDir:     cfg.Reports.Directory,
		ReportBaseURL: cfg.Reports.BaseURL,
		Version:       version,
	}

	// Rate and item reference data come either from PostgreSQL or from
	// the built-in defaults.
	if cfg.Database.URL != "" {
		store, err := db.Open(context.Background(), cfg.Database.URL)
		if err != nil {
			logging.Fatal("open database", zap.Error(err))
		}
		defer store.Close()

		if cfg.Database.SeedDefaults {
			seedErr := store.SeedDefaults(context.Background(), catalog.DefaultRates(), catalog.DefaultItems())
			if seedErr != nil {
				logging.Fatal("seed reference data", zap.Error(seedErr))
			}
		}

		opts.Rates = store
		opts.RateLister = store
		opts.Items = store
	} else {
		cat := catalog.NewWithDefaults()
		opts.Rates = cat
		opts.RateLister = cat
		opts.Items = cat
	}

	if err := os.MkdirAll(cfg.Reports.Directory, 0o755); err != nil {
		logging.Fatal("create report directory", zap.Error(err))
	}

	server := api.NewServer(opts)

	fmt.Printf("Road Cost Estimation Server v%s\n", version)
	fmt.Printf("   API: http://localhost%s\n", listenAddr)
	fmt.Println()

	if err := server.ListenAndServe(listenAddr); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
