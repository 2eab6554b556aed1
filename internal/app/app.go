package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/afthonia/elo-dashboard/internal/config"
	"github.com/afthonia/elo-dashboard/internal/infrastructure/dataset"
	"github.com/afthonia/elo-dashboard/internal/infrastructure/repository/memory"
	"github.com/afthonia/elo-dashboard/internal/interfaces/httpapi"
	"github.com/afthonia/elo-dashboard/internal/platform/chart"
	"github.com/afthonia/elo-dashboard/internal/platform/logging"
	"github.com/afthonia/elo-dashboard/internal/platform/metrics"
	"github.com/afthonia/elo-dashboard/internal/usecase"
)

// NewHTTPServer loads every season table eagerly, wires the read-only
// store into the services and returns a configured server. The loaded
// tables are shared by every request and never written after this point.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	metricsManager := metrics.New("elo_dashboard")

	loader := dataset.NewLoader(cfg.DataDir, logger, metricsManager)
	tables, err := loader.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load season tables: %w", err)
	}

	statsRepo := memory.NewStatsRepository(tables.Stats, cfg.DefaultSeason)
	ratingLogRepo := memory.NewRatingLogRepository(tables.Logs, loader.RatingLog, logger, metricsManager)

	statsSvc := usecase.NewStatsService(statsRepo, cfg.DefaultSeason, logger)
	historySvc := usecase.NewHistoryService(ratingLogRepo, cfg.DefaultSeason, logger)
	compareSvc := usecase.NewCompareService(
		statsRepo,
		chart.NewRenderer(cfg.ChartWorkers, logger, metricsManager),
		logger,
	)

	handler := httpapi.NewHandler(statsSvc, historySvc, compareSvc, logger)
	router := httpapi.NewRouter(handler, logger, metricsManager, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
