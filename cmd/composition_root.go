package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"sensorcoverage/internal/adapters/in/cli"
	"sensorcoverage/internal/adapters/in/http"
	"sensorcoverage/internal/core/application/usecases/queries"
	"sensorcoverage/internal/core/domain/services"
	"sensorcoverage/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		logger: logger,
	}
}

func (c *CompositionRoot) CreateCountExcludedPositionsQueryHandler(
	strategy services.Strategy,
) (queries.CountExcludedPositionsQueryHandler, error) {
	counter, err := services.NewCoverageCounter(strategy)
	if err != nil {
		return queries.CountExcludedPositionsQueryHandler{}, err
	}
	return queries.NewCountExcludedPositionsQueryHandler(counter, c.logger), nil
}

func (c *CompositionRoot) CreateGetRowCoverageQueryHandler() queries.GetRowCoverageQueryHandler {
	return queries.NewGetRowCoverageQueryHandler(services.NewCoverageAnalyzer(), c.logger)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	countHandler, err := c.CreateCountExcludedPositionsQueryHandler(c.config.Strategy())
	if err != nil {
		return nil, err
	}

	server := http.NewServer(countHandler, c.CreateGetRowCoverageQueryHandler(), c.logger)
	return http.NewRouter(server, EchoLogLevel(c.config.LogLevel))
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	countHandler, err := c.CreateCountExcludedPositionsQueryHandler(c.config.Strategy())
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(countHandler, jobs.ReportSettings{
		Path:     c.config.ReportPath,
		Row:      c.config.ReportRow,
		Schedule: c.config.ReportSchedule,
	}, c.logger), nil
}

// Serve runs the HTTP API and the scheduled jobs until ctx is cancelled.
func (c *CompositionRoot) Serve(ctx context.Context) error {
	router, err := c.CreateHTTPRouter()
	if err != nil {
		return err
	}

	jobManager, err := c.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	addr := fmt.Sprintf("0.0.0.0:%s", c.config.HTTPPort)
	c.logger.InfoContext(ctx, "HTTP server listening", "addr", addr, "strategy", c.config.CountStrategy)
	return http.Serve(ctx, router, addr)
}

func (c *CompositionRoot) CreateRootCommand() *cobra.Command {
	return cli.NewRootCommand(cli.Dependencies{
		DefaultStrategy: c.config.Strategy(),
		NewCountHandler: c.CreateCountExcludedPositionsQueryHandler,
		CoverageHandler: c.CreateGetRowCoverageQueryHandler(),
		Serve:           c.Serve,
	})
}
