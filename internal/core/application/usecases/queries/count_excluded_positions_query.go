// Package queries contains the read operations of the coverage tool.
// Each query pairs a report source with the row to inspect; handlers load the
// reports through the source, run a domain service and return a read model
// tagged with a fresh scan ID.
package queries

import (
	"errors"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/ports"
	"sensorcoverage/internal/pkg/errs"
	"sensorcoverage/internal/pkg/guard"
)

var (
	ErrCountExcludedPositionsQueryIsNotConstructed = errors.New(
		"CountExcludedPositionsQuery must be created via NewCountExcludedPositionsQuery constructor",
	)
	ErrReportSourceIsRequired = errs.NewValueIsRequiredError("report source")
)

// CountExcludedPositionsQuery asks how many positions on Row cannot hold a
// beacon, given the reports in Source.
//
// Example:
//
//	query, err := NewCountExcludedPositionsQuery(reportsource.NewFileSource("input.txt"), 10)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
//	fmt.Printf("POSITION COUNT: %d\n", result.Count)
type CountExcludedPositionsQuery struct {
	source ports.ReportSource
	row    int

	guard guard.ConstructorGuard
}

// NewCountExcludedPositionsQuery creates the query. The source is required;
// every row, negative included, is valid.
func NewCountExcludedPositionsQuery(source ports.ReportSource, row int) (CountExcludedPositionsQuery, error) {
	if source == nil {
		return CountExcludedPositionsQuery{}, ErrReportSourceIsRequired
	}

	return CountExcludedPositionsQuery{
		source: source,
		row:    row,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountExcludedPositionsQuery) Validate() error {
	return q.guard.Validate(ErrCountExcludedPositionsQueryIsNotConstructed)
}

func (q CountExcludedPositionsQuery) Source() ports.ReportSource {
	return q.source
}

func (q CountExcludedPositionsQuery) Row() int {
	return q.row
}

// CountExcludedPositionsQueryResponse is the read model of one count.
type CountExcludedPositionsQueryResponse struct {
	ScanID  kernel.UUID
	Source  string
	Row     int
	Reports int
	Count   int
}
