package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/stats-aggregator/internal/domain/matchstats"
	matchstatsmock "github.com/riskibarqy/stats-aggregator/internal/mocks/domain/matchstats"
	"github.com/riskibarqy/stats-aggregator/internal/platform/id"
	"github.com/riskibarqy/stats-aggregator/internal/platform/random"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Generate_DelegatesToGenerator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gen := matchstatsmock.NewGenerator(t)
	expected := matchstats.MatchStatistics{MatchID: "match-1", TotalGoals: 3}

	gen.
		On("Generate", mock.Anything).
		Return(expected).
		Once()

	service := NewStatsService(gen, 4, nil)
	got := service.Generate(ctx)
	if got.MatchID != expected.MatchID || got.TotalGoals != expected.TotalGoals {
		t.Fatalf("unexpected match: %+v", got)
	}
}

func TestStatsService_GenerateBatch_ReturnsRequestedCount(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	gen := matchstatsmock.NewGenerator(t)
	gen.
		On("Generate", mock.Anything).
		Return(func(context.Context) matchstats.MatchStatistics {
			n := calls.Add(1)
			return matchstats.MatchStatistics{MatchID: "match-" + strconv.Itoa(int(n))}
		}).
		Times(12)

	service := NewStatsService(gen, 3, nil)
	got, err := service.GenerateBatch(context.Background(), 12)
	if err != nil {
		t.Fatalf("generate batch: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("unexpected batch size: got=%d want=12", len(got))
	}

	seen := make(map[string]struct{}, len(got))
	for _, m := range got {
		if m.MatchID == "" {
			t.Fatalf("batch contains an empty record")
		}
		seen[m.MatchID] = struct{}{}
	}
	if len(seen) != 12 {
		t.Fatalf("expected 12 distinct records, got %d", len(seen))
	}
}

func TestStatsService_GenerateBatch_RejectsOutOfRangeCount(t *testing.T) {
	t.Parallel()

	gen := matchstatsmock.NewGenerator(t)
	service := NewStatsService(gen, 2, nil)

	for _, count := range []int{-1, 0, MaxBatchSize + 1} {
		_, err := service.GenerateBatch(context.Background(), count)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("count=%d: expected ErrInvalidInput, got %v", count, err)
		}
	}
	gen.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestStatsService_GenerateBatch_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := matchstatsmock.NewGenerator(t)
	service := NewStatsService(gen, 2, nil)

	_, err := service.GenerateBatch(ctx, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStatsService_GenerateBatch_RealGeneratorKeepsInvariants(t *testing.T) {
	t.Parallel()

	gen := matchstats.NewRandomGenerator(func() matchstats.Rand { return random.New() }, id.FromReader, nil)
	service := NewStatsService(gen, 8, nil)

	got, err := service.GenerateBatch(context.Background(), MaxBatchSize)
	if err != nil {
		t.Fatalf("generate batch: %v", err)
	}
	for _, m := range got {
		if m.TotalGoals != m.Result.HomeScore+m.Result.AwayScore {
			t.Fatalf("inconsistent total goals in %s", m.MatchID)
		}
		if m.TotalCorners != m.HomeStats.Corners+m.AwayStats.Corners {
			t.Fatalf("inconsistent total corners in %s", m.MatchID)
		}
	}
}
