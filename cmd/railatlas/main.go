package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	lib "github.com/railatlas/railatlas"
	"github.com/railatlas/railatlas/config"
	"github.com/railatlas/railatlas/internal/logging"
	"github.com/railatlas/railatlas/internal/metrics"
	"github.com/railatlas/railatlas/network"
	"github.com/railatlas/railatlas/resolve"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	configPath := flag.String("config", "", "config file path (overrides search paths)")
	datasetPath := flag.String("dataset", "", "dataset path (overrides config)")
	backend := flag.String("backend", "", "dataset backend: csv|sqlite (overrides config)")
	year := flag.Int("year", 0, "query year for -mode=oneshot")
	flag.Parse()

	_ = godotenv.Load()

	var cfg *config.AppConfig
	var err error
	if *configPath != "" {
		cfg, err = config.LoadAppConfig(*configPath)
	} else {
		cfg, err = config.LoadAppConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *datasetPath != "" {
		cfg.Dataset.Path = *datasetPath
	}
	if *backend != "" {
		cfg.Dataset.Backend = *backend
	}

	logging.Init(cfg.Logging)

	ix, stats, err := loadDataset(cfg.Dataset)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("dataset unavailable")
	}
	metrics.RecordDatasetSize(stats.Stations, stats.Segments, stats.Events)

	switch *mode {
	case "serve":
		srv := lib.NewServer(cfg, ix)
		srv.Start()
		srv.HandleGracefulShutdown()
	case "oneshot":
		if *year == 0 {
			log.Fatal().Msg("-year is required for -mode=oneshot")
		}
		resolver := resolve.NewResolver(ix)
		stations, segments := resolver.QueryForYear(*year)
		out, err := json.MarshalIndent(map[string]any{
			"year":     *year,
			"stations": stations,
			"segments": segments,
		}, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("encode result")
		}
		fmt.Println(string(out))
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func loadDataset(cfg config.DatasetConfig) (*network.Index, network.LoadStats, error) {
	switch cfg.Backend {
	case "sqlite":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return network.NewIndexFromSQLite(ctx, cfg.Path)
	case "csv", "":
		if strings.HasSuffix(strings.ToLower(cfg.Path), ".zip") {
			return network.NewIndexFromZipFile(cfg.Path)
		}
		return network.NewIndexFromDir(cfg.Path)
	default:
		return nil, network.LoadStats{}, fmt.Errorf("unknown dataset backend %q", cfg.Backend)
	}
}
