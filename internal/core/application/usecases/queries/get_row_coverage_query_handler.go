package queries

import (
	"context"
	"fmt"
	"log/slog"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/domain/services"
)

// GetRowCoverageQueryHandler loads reports and analyses their coverage of a row.
type GetRowCoverageQueryHandler struct {
	analyzer services.CoverageAnalyzer
	logger   *slog.Logger
}

func NewGetRowCoverageQueryHandler(analyzer services.CoverageAnalyzer, logger *slog.Logger) GetRowCoverageQueryHandler {
	return GetRowCoverageQueryHandler{
		analyzer: analyzer,
		logger:   logger.With("component", "get_row_coverage_query_handler"),
	}
}

// Handle executes the query.
func (h GetRowCoverageQueryHandler) Handle(
	ctx context.Context,
	query GetRowCoverageQuery,
) (GetRowCoverageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRowCoverageQueryResponse{}, err
	}

	scanID := kernel.NewUUID()
	source := query.Source()

	reports, err := source.Reports(ctx)
	if err != nil {
		return GetRowCoverageQueryResponse{}, fmt.Errorf("load reports from %s: %w", source.Name(), err)
	}

	coverage, err := h.analyzer.Analyze(reports, query.Row())
	if err != nil {
		return GetRowCoverageQueryResponse{}, fmt.Errorf("analyze row %d: %w", query.Row(), err)
	}

	h.logger.DebugContext(ctx, "Row coverage analysed",
		"scan_id", scanID.String(),
		"source", source.Name(),
		"row", query.Row(),
		"spans", len(coverage.Spans),
		"merged", len(coverage.Merged),
		"count", coverage.Count,
	)

	return GetRowCoverageQueryResponse{
		ScanID:   scanID,
		Source:   source.Name(),
		Reports:  len(reports),
		Coverage: coverage,
	}, nil
}
