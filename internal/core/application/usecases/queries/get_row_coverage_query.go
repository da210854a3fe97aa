package queries

import (
	"errors"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/domain/services"
	"sensorcoverage/internal/core/ports"
	"sensorcoverage/internal/pkg/guard"
)

var ErrGetRowCoverageQueryIsNotConstructed = errors.New(
	"GetRowCoverageQuery must be created via NewGetRowCoverageQuery constructor",
)

// GetRowCoverageQuery asks for the full breakdown of how the reports in a
// source cover one row: every sensor span, the merged spans and the beacons.
type GetRowCoverageQuery struct {
	source ports.ReportSource
	row    int

	guard guard.ConstructorGuard
}

// NewGetRowCoverageQuery creates the query. The source is required.
func NewGetRowCoverageQuery(source ports.ReportSource, row int) (GetRowCoverageQuery, error) {
	if source == nil {
		return GetRowCoverageQuery{}, ErrReportSourceIsRequired
	}

	return GetRowCoverageQuery{
		source: source,
		row:    row,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRowCoverageQuery) Validate() error {
	return q.guard.Validate(ErrGetRowCoverageQueryIsNotConstructed)
}

func (q GetRowCoverageQuery) Source() ports.ReportSource {
	return q.source
}

func (q GetRowCoverageQuery) Row() int {
	return q.row
}

// GetRowCoverageQueryResponse is the read model of one row breakdown.
type GetRowCoverageQueryResponse struct {
	ScanID   kernel.UUID
	Source   string
	Reports  int
	Coverage services.RowCoverage
}
