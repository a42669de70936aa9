package usecase

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/stats-aggregator/internal/domain/matchstats"
	"github.com/riskibarqy/stats-aggregator/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MinBatchSize = 1
	MaxBatchSize = 50
)

type StatsService struct {
	generator matchstats.Generator
	workers   int
	logger    *logging.Logger
}

func NewStatsService(generator matchstats.Generator, workers int, logger *logging.Logger) *StatsService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsService{
		generator: generator,
		workers:   workers,
		logger:    logger,
	}
}

func (s *StatsService) Generate(ctx context.Context) matchstats.MatchStatistics {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Generate")
	defer span.End()

	m := s.generator.Generate(ctx)
	span.SetAttributes(attribute.String("match.id", m.MatchID))
	s.logger.DebugContext(ctx, "match statistics generated",
		"match_id", m.MatchID,
		"home_team", m.HomeTeam.ShortName,
		"away_team", m.AwayTeam.ShortName,
	)
	return m
}

// GenerateBatch returns count independent records in generation order.
func (s *StatsService) GenerateBatch(ctx context.Context, count int) ([]matchstats.MatchStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GenerateBatch")
	defer span.End()

	if count < MinBatchSize || count > MaxBatchSize {
		return nil, crerr.Wrapf(ErrInvalidInput, "count must be between %d and %d, got %d", MinBatchSize, MaxBatchSize, count)
	}
	span.SetAttributes(attribute.Int("batch.count", count))

	pool, err := ants.NewPool(min(s.workers, count))
	if err != nil {
		return nil, crerr.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	out := make([]matchstats.MatchStatistics, count)
	var workers sync.WaitGroup
	for i := range out {
		if err := ctx.Err(); err != nil {
			workers.Wait()
			return nil, crerr.Wrap(err, "generate batch")
		}

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = s.generator.Generate(ctx)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, crerr.Wrap(err, "submit generation to worker pool")
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, crerr.Wrap(err, "generate batch")
	}

	s.logger.DebugContext(ctx, "match statistics batch generated", "count", count)
	return out, nil
}
