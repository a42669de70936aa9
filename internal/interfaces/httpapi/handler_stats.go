package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/stats-aggregator/internal/usecase"
)

const defaultBatchCount = 10

var batchCountRule = fmt.Sprintf("min=%d,max=%d", usecase.MinBatchSize, usecase.MaxBatchSize)

type batchQuery struct {
	Count int
}

func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStats")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, matchToDTO(h.statsService.Generate(ctx)))
}

func (h *Handler) GetMatchStatsBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStatsBatch")
	defer span.End()

	query, err := h.parseBatchQuery(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid batch query", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	matches, err := h.statsService.GenerateBatch(ctx, query.Count)
	if err != nil {
		h.logger.ErrorContext(ctx, "generate match batch failed", "count", query.Count, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchStatisticsDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeJSON(ctx, w, http.StatusOK, matchBatchDTO{
		Count:   len(items),
		Matches: items,
	})
}

func (h *Handler) parseBatchQuery(r *http.Request) (batchQuery, error) {
	query := batchQuery{Count: defaultBatchCount}

	if raw := strings.TrimSpace(r.URL.Query().Get("count")); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return batchQuery{}, crerr.Wrapf(usecase.ErrInvalidInput, "count must be an integer, got %q", raw)
		}
		query.Count = count
	}

	if err := h.validator.Var(query.Count, batchCountRule); err != nil {
		return batchQuery{}, crerr.Wrapf(usecase.ErrInvalidInput, "count must be between %d and %d", usecase.MinBatchSize, usecase.MaxBatchSize)
	}
	return query, nil
}
