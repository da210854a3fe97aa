package queries

import (
	"context"
	"fmt"
	"log/slog"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/domain/services"
)

// CountExcludedPositionsQueryHandler loads reports and counts the positions
// on the requested row that cannot hold a beacon.
//
// Example:
//
//	handler := NewCountExcludedPositionsQueryHandler(services.NewSpanMergeCounter(), logger)
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("count failed: %w", err)
//	}
type CountExcludedPositionsQueryHandler struct {
	counter services.CoverageCounter
	logger  *slog.Logger
}

// NewCountExcludedPositionsQueryHandler creates a handler counting with counter.
func NewCountExcludedPositionsQueryHandler(
	counter services.CoverageCounter,
	logger *slog.Logger,
) CountExcludedPositionsQueryHandler {
	return CountExcludedPositionsQueryHandler{
		counter: counter,
		logger:  logger.With("component", "count_excluded_positions_query_handler"),
	}
}

// Handle executes the query. Any source or domain error aborts the scan and
// is returned unchanged in its chain, so callers can match it with errors.Is.
func (h CountExcludedPositionsQueryHandler) Handle(
	ctx context.Context,
	query CountExcludedPositionsQuery,
) (CountExcludedPositionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountExcludedPositionsQueryResponse{}, err
	}

	scanID := kernel.NewUUID()
	source := query.Source()

	reports, err := source.Reports(ctx)
	if err != nil {
		return CountExcludedPositionsQueryResponse{}, fmt.Errorf("load reports from %s: %w", source.Name(), err)
	}

	count, err := h.counter.Count(reports, query.Row())
	if err != nil {
		return CountExcludedPositionsQueryResponse{}, fmt.Errorf("count row %d: %w", query.Row(), err)
	}

	h.logger.DebugContext(ctx, "Coverage count completed",
		"scan_id", scanID.String(),
		"source", source.Name(),
		"row", query.Row(),
		"reports", len(reports),
		"count", count,
	)

	return CountExcludedPositionsQueryResponse{
		ScanID:  scanID,
		Source:  source.Name(),
		Row:     query.Row(),
		Reports: len(reports),
		Count:   count,
	}, nil
}
