package services

import (
	"fmt"
	"slices"

	"sensorcoverage/internal/core/domain/model/area"
	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/domain/model/sensor"

	"github.com/samber/lo"
)

// SensorSpan is the part of a row covered by one sensor.
type SensorSpan struct {
	Sensor sensor.Sensor
	Radius int
	Span   area.Span
}

// RowCoverage describes how a set of reports covers one row.
type RowCoverage struct {
	// Row is the y coordinate that was analysed.
	Row int
	// Spans lists, in report order, the span of every sensor whose area reaches Row.
	Spans []SensorSpan
	// Merged is the union of Spans as disjoint spans ordered by left bound.
	Merged []area.Span
	// Beacons holds the distinct x positions of reported beacons on Row, ascending.
	Beacons []int
	// Count is the number of positions in Merged that are not in Beacons.
	Count int
}

// CoverageAnalyzer is a domain service computing the RowCoverage of a set of
// sensor reports.
//
// Business rules:
//   - A position is covered when it lies inside at least one sensor's area
//   - A reported beacon is never counted, however many areas cover it
//   - Sensors whose area does not reach the row contribute nothing
//
// Example usage:
//
//	analyzer := services.NewCoverageAnalyzer()
//	coverage, err := analyzer.Analyze(reports, 10)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(coverage.Count)
type CoverageAnalyzer struct{}

func NewCoverageAnalyzer() CoverageAnalyzer {
	return CoverageAnalyzer{}
}

// Analyze intersects every report with row and merges the spans.
// Returns an error if any report is not constructed, or an out-of-range
// error when a radius or the covered total does not fit in an int.
func (c CoverageAnalyzer) Analyze(reports []sensor.Report, row int) (RowCoverage, error) {
	spans := make([]SensorSpan, 0, len(reports))
	beacons := make([]int, 0)

	for i, r := range reports {
		a, err := area.FromReport(r)
		if err != nil {
			return RowCoverage{}, fmt.Errorf("report %d: %w", i+1, err)
		}

		if r.Beacon().IsOnRow(row) {
			beacons = append(beacons, r.Beacon().X())
		}

		span, ok := a.SpanOnRow(row)
		if !ok {
			continue
		}
		spans = append(spans, SensorSpan{
			Sensor: r.Sensor(),
			Radius: a.DistanceToEdge(),
			Span:   span,
		})
	}

	merged := area.MergeSpans(lo.Map(spans, func(s SensorSpan, _ int) area.Span {
		return s.Span
	}))

	beacons = lo.Uniq(beacons)
	slices.Sort(beacons)

	covered, err := coveredPositions(merged)
	if err != nil {
		return RowCoverage{}, fmt.Errorf("row %d: %w", row, err)
	}
	coveredBeacons := lo.CountBy(beacons, func(x int) bool {
		return lo.ContainsBy(merged, func(s area.Span) bool {
			return s.Contains(x)
		})
	})

	return RowCoverage{
		Row:     row,
		Spans:   spans,
		Merged:  merged,
		Beacons: beacons,
		Count:   covered - coveredBeacons,
	}, nil
}

// coveredPositions sums the lengths of disjoint spans, failing with an
// out-of-range error when the total does not fit in an int.
func coveredPositions(merged []area.Span) (int, error) {
	total := 0
	for _, s := range merged {
		n, err := s.Len()
		if err != nil {
			return 0, err
		}
		if total, err = kernel.AddInt("covered positions", total, n); err != nil {
			return 0, err
		}
	}
	return total, nil
}
