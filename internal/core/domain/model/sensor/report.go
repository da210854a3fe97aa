package sensor

import (
	"errors"

	"sensorcoverage/internal/pkg/errs"
	"sensorcoverage/internal/pkg/guard"
)

// ErrReportIsNotConstructed is returned when a zero-value Report is used.
var ErrReportIsNotConstructed = errs.NewValueIsRequiredError("report must be created via NewReport or ParseReport")

// Report is a single sensor reading: where the sensor is and which beacon it
// found closest.
//
// Example:
//
//	report, err := sensor.ParseReport("Sensor at x=2, y=18: closest beacon is at x=-2, y=15")
//	if err != nil {
//	    return err
//	}
//	report.Sensor() // Sensor(2,18)
//	report.Beacon() // Beacon(-2,15)
type Report struct {
	sensor Sensor
	beacon Beacon
	guard  guard.ConstructorGuard
}

// NewReport pairs a sensor with its closest beacon.
// Both must be constructed.
func NewReport(s Sensor, b Beacon) (Report, error) {
	if err := errors.Join(s.Validate(), b.Validate()); err != nil {
		return Report{}, err
	}

	return Report{
		sensor: s,
		beacon: b,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Report was created by a constructor.
func (r Report) Validate() error {
	return r.guard.Validate(ErrReportIsNotConstructed)
}

func (r Report) Sensor() Sensor {
	return r.sensor
}

func (r Report) Beacon() Beacon {
	return r.beacon
}

// Radius returns the Manhattan distance from the sensor to its beacon, the
// radius of the sensor's coverage diamond.
func (r Report) Radius() (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	return r.sensor.DistanceTo(r.beacon)
}
