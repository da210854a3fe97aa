package sensor

import (
	"fmt"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/pkg/errs"
	"sensorcoverage/internal/pkg/guard"
)

// ErrBeaconIsNotConstructed is returned when a zero-value Beacon is used.
var ErrBeaconIsNotConstructed = errs.NewValueIsRequiredError("beacon must be created via NewBeacon constructor")

// Beacon is the position of a beacon reported by a sensor.
type Beacon struct {
	location kernel.Point
	guard    guard.ConstructorGuard
}

// NewBeacon creates a Beacon at location.
// Returns an error if location is not a constructed Point.
func NewBeacon(location kernel.Point) (Beacon, error) {
	if err := location.Validate(); err != nil {
		return Beacon{}, err
	}

	return Beacon{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Beacon was created by NewBeacon.
func (b Beacon) Validate() error {
	return b.guard.Validate(ErrBeaconIsNotConstructed)
}

// Location returns the beacon position.
func (b Beacon) Location() kernel.Point {
	return b.location
}

func (b Beacon) X() int {
	return b.location.X()
}

func (b Beacon) Y() int {
	return b.location.Y()
}

// IsOnRow reports whether the beacon sits on row y.
func (b Beacon) IsOnRow(y int) bool {
	return b.location.Y() == y
}

func (b Beacon) String() string {
	return fmt.Sprintf("Beacon(%d,%d)", b.X(), b.Y())
}
