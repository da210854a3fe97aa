package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"sensorcoverage/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sensorcoverage_queries_total",
		Help: "Coverage API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sensorcoverage_query_duration_seconds",
		Help:    "Coverage API request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// requestValidator rejects API requests that do not match the OpenAPI document.
// Paths the document does not describe are passed through untouched.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return err
			}

			var body []byte
			if req.Body != nil {
				body, err = io.ReadAll(req.Body)
				if err != nil {
					return ctx.JSON(http.StatusBadRequest, api.Error{
						Code:    http.StatusBadRequest,
						Message: "Failed to read request body",
					})
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, api.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			req.Body = io.NopCloser(bytes.NewReader(body))
			return next(ctx)
		}
	}, nil
}

// queryMetrics records the request count and latency of every API call.
func queryMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)

		status := ctx.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}

		endpoint := ctx.Path()
		queriesTotal.WithLabelValues(endpoint, outcome(status)).Inc()
		queryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

		return err
	}
}

func outcome(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "failed"
	case status >= http.StatusBadRequest:
		return "rejected"
	default:
		return "ok"
	}
}
