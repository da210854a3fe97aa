package services

import (
	"fmt"

	"sensorcoverage/internal/core/domain/model/area"
	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/domain/model/sensor"
	"sensorcoverage/internal/pkg/errs"
)

// CoverageCounter counts the positions on a row that cannot contain a beacon.
type CoverageCounter interface {
	Count(reports []sensor.Report, row int) (int, error)
}

// Strategy names a CoverageCounter implementation.
type Strategy string

const (
	StrategySpanMerge Strategy = "merge"
	StrategyPointSet  Strategy = "point-set"
)

// NewCoverageCounter returns the counter for strategy.
// Returns a ValueIsInvalidError for an unknown strategy.
func NewCoverageCounter(strategy Strategy) (CoverageCounter, error) {
	switch strategy {
	case StrategySpanMerge:
		return NewSpanMergeCounter(), nil
	case StrategyPointSet:
		return NewPointSetCounter(), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("strategy",
			fmt.Errorf("unknown strategy %q, want %q or %q", strategy, StrategySpanMerge, StrategyPointSet))
	}
}

// SpanMergeCounter counts covered positions by merging row spans.
type SpanMergeCounter struct {
	analyzer CoverageAnalyzer
}

func NewSpanMergeCounter() SpanMergeCounter {
	return SpanMergeCounter{analyzer: NewCoverageAnalyzer()}
}

func (c SpanMergeCounter) Count(reports []sensor.Report, row int) (int, error) {
	coverage, err := c.analyzer.Analyze(reports, row)
	if err != nil {
		return 0, err
	}

	return coverage.Count, nil
}

// PointSetCounter counts covered positions by recording every covered x in a
// set, in report order. Reported beacons on the row are removed from the set
// and never added again.
type PointSetCounter struct{}

func NewPointSetCounter() PointSetCounter {
	return PointSetCounter{}
}

func (c PointSetCounter) Count(reports []sensor.Report, row int) (int, error) {
	covered := make(map[int]struct{})
	beacons := make(map[int]struct{})

	for i, r := range reports {
		a, err := area.FromReport(r)
		if err != nil {
			return 0, fmt.Errorf("report %d: %w", i+1, err)
		}

		if b := r.Beacon(); b.IsOnRow(row) {
			beacons[b.X()] = struct{}{}
			delete(covered, b.X())
		}

		left, right, ok := a.ExtremitiesOnRow(row)
		if !ok {
			continue
		}
		// Spans wider than an int can count cannot be walked either.
		span, _ := a.SpanOnRow(row)
		if _, err = span.Len(); err != nil {
			return 0, fmt.Errorf("report %d: row %d: %w", i+1, row, err)
		}

		for p := range kernel.XRange(left, right) {
			if _, isBeacon := beacons[p.X()]; !isBeacon {
				covered[p.X()] = struct{}{}
			}
		}
	}

	return len(covered), nil
}
