package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/stats-aggregator/internal/platform/logging"
	"github.com/riskibarqy/stats-aggregator/internal/usecase"
)

type Handler struct {
	statsService  *usecase.StatsService
	healthService *usecase.HealthService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	statsService *usecase.StatsService,
	healthService *usecase.HealthService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService:  statsService,
		healthService: healthService,
		logger:        logger,
		validator:     validator.New(),
	}
}
