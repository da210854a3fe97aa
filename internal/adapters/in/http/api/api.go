// Package api holds the OpenAPI document of the coverage HTTP API together
// with its request/response models and the echo server interface bound to it.
package api

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.json
var openAPIDocument []byte

// Document returns the raw OpenAPI document.
func Document() []byte {
	return openAPIDocument
}

// LoadSwagger parses and validates the embedded OpenAPI document.
func LoadSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CoverageCount defines model for CoverageCount.
type CoverageCount struct {
	ScanID string `json:"scanId"`
	Row    int    `json:"row"`
	Count  int    `json:"count"`
}

// Point defines model for Point.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Span defines model for Span.
type Span struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// SensorSpan defines model for SensorSpan.
type SensorSpan struct {
	Sensor Point `json:"sensor"`
	Radius int   `json:"radius"`
	Left   int   `json:"left"`
	Right  int   `json:"right"`
}

// RowCoverage defines model for RowCoverage.
type RowCoverage struct {
	ScanID  string       `json:"scanId"`
	Row     int          `json:"row"`
	Count   int          `json:"count"`
	Spans   []SensorSpan `json:"spans"`
	Merged  []Span       `json:"merged"`
	Beacons []int        `json:"beacons"`
}

// CountExcludedPositionsParams defines parameters for CountExcludedPositions.
type CountExcludedPositionsParams struct {
	Row int `form:"row" json:"row"`
}

// GetRowCoverageParams defines parameters for GetRowCoverage.
type GetRowCoverageParams struct {
	Row int `form:"row" json:"row"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Count positions on a row that cannot hold a beacon
	// (POST /api/v1/coverage)
	CountExcludedPositions(ctx echo.Context, params CountExcludedPositionsParams) error
	// Break down how the sensors cover a row
	// (POST /api/v1/coverage/spans)
	GetRowCoverage(ctx echo.Context, params GetRowCoverageParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CountExcludedPositions converts echo context to params.
func (w *ServerInterfaceWrapper) CountExcludedPositions(ctx echo.Context) error {
	var params CountExcludedPositionsParams

	err := runtime.BindQueryParameter("form", true, true, "row", ctx.QueryParams(), &params.Row)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter row: %s", err))
	}

	return w.Handler.CountExcludedPositions(ctx, params)
}

// GetRowCoverage converts echo context to params.
func (w *ServerInterfaceWrapper) GetRowCoverage(ctx echo.Context) error {
	var params GetRowCoverageParams

	err := runtime.BindQueryParameter("form", true, true, "row", ctx.QueryParams(), &params.Row)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter row: %s", err))
	}

	return w.Handler.GetRowCoverage(ctx, params)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register handlers.
type EchoRouter interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/coverage", wrapper.CountExcludedPositions)
	router.POST(baseURL+"/api/v1/coverage/spans", wrapper.GetRowCoverage)
}
