package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"sensorcoverage/internal/adapters/in/http/api"
	"sensorcoverage/internal/adapters/out/reportsource"
	"sensorcoverage/internal/core/application/usecases/queries"
	"sensorcoverage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const requestBodySource = "request body"

var _ api.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	countExcludedPositionsHandler queries.CountExcludedPositionsQueryHandler
	getRowCoverageHandler         queries.GetRowCoverageQueryHandler
	logger                        *slog.Logger
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	countExcludedPositionsHandler queries.CountExcludedPositionsQueryHandler,
	getRowCoverageHandler queries.GetRowCoverageQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		countExcludedPositionsHandler: countExcludedPositionsHandler,
		getRowCoverageHandler:         getRowCoverageHandler,
		logger:                        logger.With("component", "http_server"),
	}
}

// CountExcludedPositions handles POST /api/v1/coverage - counts the positions
// on a row that cannot hold a beacon.
func (s *Server) CountExcludedPositions(ctx echo.Context, params api.CountExcludedPositionsParams) error {
	body, err := readReports(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewCountExcludedPositionsQuery(reportsource.NewTextSource(requestBodySource, body), params.Row)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.countExcludedPositionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.CoverageCount{
		ScanID: result.ScanID.String(),
		Row:    result.Row,
		Count:  result.Count,
	})
}

// GetRowCoverage handles POST /api/v1/coverage/spans - breaks down the
// coverage of a row into sensor spans, merged spans and beacons.
func (s *Server) GetRowCoverage(ctx echo.Context, params api.GetRowCoverageParams) error {
	body, err := readReports(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetRowCoverageQuery(reportsource.NewTextSource(requestBodySource, body), params.Row)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.getRowCoverageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	coverage := result.Coverage
	response := api.RowCoverage{
		ScanID:  result.ScanID.String(),
		Row:     coverage.Row,
		Count:   coverage.Count,
		Spans:   make([]api.SensorSpan, len(coverage.Spans)),
		Merged:  make([]api.Span, len(coverage.Merged)),
		Beacons: coverage.Beacons,
	}
	for i, sp := range coverage.Spans {
		response.Spans[i] = api.SensorSpan{
			Sensor: api.Point{X: sp.Sensor.X(), Y: sp.Sensor.Y()},
			Radius: sp.Radius,
			Left:   sp.Span.Left(),
			Right:  sp.Span.Right(),
		}
	}
	for i, m := range coverage.Merged {
		response.Merged[i] = api.Span{Left: m.Left(), Right: m.Right()}
	}

	return ctx.JSON(http.StatusOK, response)
}

func readReports(ctx echo.Context) (string, error) {
	data, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return "", errs.NewSourceIsUnreadableErrorWithCause(requestBodySource, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errs.NewValueIsRequiredError(requestBodySource)
	}
	return string(data), nil
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Coverage request failed",
			"path", ctx.Path(),
			"error", err,
		)
	}

	return ctx.JSON(code, api.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrLineIsMalformed), errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrSourceIsUnreadable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
