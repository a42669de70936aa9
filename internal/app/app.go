package app

import (
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/stats-aggregator/internal/config"
	"github.com/riskibarqy/stats-aggregator/internal/domain/matchstats"
	"github.com/riskibarqy/stats-aggregator/internal/interfaces/httpapi"
	"github.com/riskibarqy/stats-aggregator/internal/platform/id"
	"github.com/riskibarqy/stats-aggregator/internal/platform/logging"
	"github.com/riskibarqy/stats-aggregator/internal/platform/random"
	"github.com/riskibarqy/stats-aggregator/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	generator := matchstats.NewRandomGenerator(func() matchstats.Rand {
		return random.New()
	}, id.FromReader, time.Now)

	statsSvc := usecase.NewStatsService(generator, cfg.BatchWorkers, logger)
	healthSvc := usecase.NewHealthService(cfg.ServiceVersion, time.Now)

	handler := httpapi.NewHandler(statsSvc, healthSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
