package sensor

import (
	"errors"
	"fmt"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/pkg/errs"
	"sensorcoverage/internal/pkg/guard"
)

// ErrSensorIsNotConstructed is returned when a zero-value Sensor is used.
var ErrSensorIsNotConstructed = errs.NewValueIsRequiredError("sensor must be created via NewSensor constructor")

// Sensor is the position of a sensor on the grid.
type Sensor struct {
	location kernel.Point
	guard    guard.ConstructorGuard
}

// NewSensor creates a Sensor at location.
// Returns an error if location is not a constructed Point.
func NewSensor(location kernel.Point) (Sensor, error) {
	if err := location.Validate(); err != nil {
		return Sensor{}, err
	}

	return Sensor{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Sensor was created by NewSensor.
func (s Sensor) Validate() error {
	return s.guard.Validate(ErrSensorIsNotConstructed)
}

// Location returns the sensor position.
func (s Sensor) Location() kernel.Point {
	return s.location
}

func (s Sensor) X() int {
	return s.location.X()
}

func (s Sensor) Y() int {
	return s.location.Y()
}

func (s Sensor) String() string {
	return fmt.Sprintf("Sensor(%d,%d)", s.X(), s.Y())
}

// DistanceTo returns the Manhattan distance from the sensor to b.
func (s Sensor) DistanceTo(b Beacon) (int, error) {
	if err := errors.Join(s.Validate(), b.Validate()); err != nil {
		return 0, err
	}

	return s.location.Distance(b.location)
}
