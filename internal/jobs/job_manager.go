package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"sensorcoverage/internal/core/application/usecases/queries"
)

// ReportSettings configures the scheduled coverage report.
// An empty Schedule disables the job.
type ReportSettings struct {
	Path     string
	Row      int
	Schedule string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	coverageReportJob *CoverageReportJob
	logger            *slog.Logger
}

// NewJobManager creates a new job manager with all configured jobs.
func NewJobManager(
	countHandler queries.CountExcludedPositionsQueryHandler,
	report ReportSettings,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if report.Schedule != "" {
		jm.coverageReportJob = NewCoverageReportJob(countHandler, report.Path, report.Row, report.Schedule, logger)
	}
	return jm
}

// StartAll starts all configured jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.coverageReportJob == nil {
		jm.logger.InfoContext(context.Background(), "No coverage report scheduled")
		return nil
	}

	if err := jm.coverageReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start coverage report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.coverageReportJob != nil {
		jm.coverageReportJob.Stop()
	}
}
