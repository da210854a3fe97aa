package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"sensorcoverage/internal/adapters/out/reportsource"
	"sensorcoverage/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CoverageReportJob periodically re-reads a report file and logs the number
// of positions on a fixed row that cannot hold a beacon.
type CoverageReportJob struct {
	handler  queries.CountExcludedPositionsQueryHandler
	path     string
	row      int
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCoverageReportJob creates a job counting row in the file at path on
// schedule, a six-field cron expression with seconds.
func NewCoverageReportJob(
	handler queries.CountExcludedPositionsQueryHandler,
	path string,
	row int,
	schedule string,
	logger *slog.Logger,
) *CoverageReportJob {
	return &CoverageReportJob{
		handler:  handler,
		path:     path,
		row:      row,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "coverage_report_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *CoverageReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Coverage report job failed", "path", j.path, "row", j.row, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Coverage report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report. A failing read is returned, not retried; the next
// tick reads the file again.
func (j *CoverageReportJob) Run(ctx context.Context) (queries.CountExcludedPositionsQueryResponse, error) {
	query, err := queries.NewCountExcludedPositionsQuery(reportsource.NewFileSource(j.path), j.row)
	if err != nil {
		return queries.CountExcludedPositionsQueryResponse{}, err
	}

	result, err := j.handler.Handle(ctx, query)
	if err != nil {
		return queries.CountExcludedPositionsQueryResponse{}, err
	}

	j.logger.InfoContext(ctx, "Coverage report",
		"scan_id", result.ScanID.String(),
		"path", result.Source,
		"row", result.Row,
		"reports", result.Reports,
		"count", result.Count,
	)
	return result, nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *CoverageReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Coverage report job stopped")
}
