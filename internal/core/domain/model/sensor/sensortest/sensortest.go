// Package sensortest provides shared report fixtures for tests.
package sensortest

import (
	"strings"
	"testing"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/domain/model/sensor"
)

// ExampleInput is the fourteen-sensor reference input.
// On ExampleRow it covers ExampleCount positions that cannot hold a beacon.
const ExampleInput = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

const (
	ExampleRow   = 10
	ExampleCount = 26
)

// ExampleReports parses ExampleInput, failing the test on error.
func ExampleReports(t testing.TB) []sensor.Report {
	t.Helper()

	reports, err := sensor.ParseReports(strings.NewReader(ExampleInput))
	if err != nil {
		t.Fatalf("parse example input: %v", err)
	}
	return reports
}

// MustReport builds a report from raw coordinates, failing the test on error.
func MustReport(t testing.TB, sx, sy, bx, by int) sensor.Report {
	t.Helper()

	s, err := sensor.NewSensor(kernel.NewPoint(sx, sy))
	if err != nil {
		t.Fatalf("new sensor: %v", err)
	}
	b, err := sensor.NewBeacon(kernel.NewPoint(bx, by))
	if err != nil {
		t.Fatalf("new beacon: %v", err)
	}
	r, err := sensor.NewReport(s, b)
	if err != nil {
		t.Fatalf("new report: %v", err)
	}
	return r
}
