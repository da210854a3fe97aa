package area

import (
	"fmt"
	"math"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/core/domain/model/sensor"
	"sensorcoverage/internal/pkg/errs"
	"sensorcoverage/internal/pkg/guard"
)

// ErrAreaIsNotConstructed is returned when a zero-value Area is used.
var ErrAreaIsNotConstructed = errs.NewValueIsRequiredError(
	"area must be created via NewArea, FromSensorAndBeacon or FromReport constructors")

// Area is the coverage diamond of one sensor: every point p with
// ManhattanDistance(p, center) <= distanceToEdge.
//
// Key responsibilities:
//   - Holding the sensor position and its coverage radius
//   - Answering which x positions of a given row fall inside the diamond
//
// The beacon used to compute the radius is not retained.
//
// Example:
//
//	a, _ := area.NewArea(kernel.NewPoint(8, 7), 9)
//	span, ok := a.SpanOnRow(10) // [2..14], true
type Area struct {
	center         kernel.Point
	distanceToEdge int
	guard          guard.ConstructorGuard
}

// NewArea creates the diamond centred on center with the given radius.
// Returns an out-of-range error for a negative radius, or when any corner of
// the diamond falls outside the int range.
func NewArea(center kernel.Point, distanceToEdge int) (Area, error) {
	if err := center.Validate(); err != nil {
		return Area{}, err
	}

	if distanceToEdge < 0 {
		return Area{}, errs.NewValueIsOutOfRangeError("distanceToEdge", distanceToEdge, 0, math.MaxInt)
	}

	if err := checkCorners(center, distanceToEdge); err != nil {
		return Area{}, fmt.Errorf("area of %s with radius %d: %w", center, distanceToEdge, err)
	}

	return Area{
		center:         center,
		distanceToEdge: distanceToEdge,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// FromSensorAndBeacon builds the area of s, whose radius reaches exactly to b.
func FromSensorAndBeacon(s sensor.Sensor, b sensor.Beacon) (Area, error) {
	d, err := s.DistanceTo(b)
	if err != nil {
		return Area{}, err
	}

	return NewArea(s.Location(), d)
}

// FromReport builds the area described by a single report.
func FromReport(r sensor.Report) (Area, error) {
	if err := r.Validate(); err != nil {
		return Area{}, err
	}

	return FromSensorAndBeacon(r.Sensor(), r.Beacon())
}

// Validate checks that the Area was created by a constructor.
func (a Area) Validate() error {
	return a.guard.Validate(ErrAreaIsNotConstructed)
}

// Center returns the sensor position at the middle of the diamond.
func (a Area) Center() kernel.Point {
	return a.center
}

// DistanceToEdge returns the Manhattan radius of the diamond.
func (a Area) DistanceToEdge() int {
	return a.distanceToEdge
}

// Contains reports whether p lies inside the diamond, edge included.
// A point too far away to measure in an int is outside.
func (a Area) Contains(p kernel.Point) bool {
	d, err := kernel.ManhattanDistance(a.center, p)
	return err == nil && d <= a.distanceToEdge
}

// ExtremitiesOnRow returns the leftmost and rightmost points of the diamond on
// row y. ok is false when the row does not reach the diamond at all, i.e. when
// |y - center.y| > distanceToEdge.
func (a Area) ExtremitiesOnRow(y int) (left, right kernel.Point, ok bool) {
	halfWidth := a.halfWidthOnRow(y)
	if halfWidth < 0 {
		return kernel.Point{}, kernel.Point{}, false
	}

	cx := a.center.X()
	return kernel.NewPoint(cx-halfWidth, y), kernel.NewPoint(cx+halfWidth, y), true
}

// SpanOnRow returns the x-interval of the diamond on row y, or false when the
// row misses the diamond.
func (a Area) SpanOnRow(y int) (Span, bool) {
	halfWidth := a.halfWidthOnRow(y)
	if halfWidth < 0 {
		return Span{}, false
	}

	cx := a.center.X()
	return Span{
		left:  cx - halfWidth,
		right: cx + halfWidth,
		guard: guard.NewConstructorGuard(),
	}, true
}

func (a Area) String() string {
	return fmt.Sprintf("Area(center=%s, radius=%d)", a.center, a.distanceToEdge)
}

// halfWidthOnRow is negative when row y misses the diamond. A row too far
// away to measure in an int misses it too.
func (a Area) halfWidthOnRow(y int) int {
	dy, err := kernel.SubInt("row distance", y, a.center.Y())
	if err != nil {
		return -1
	}
	dy, err = kernel.AbsInt("row distance", dy)
	if err != nil {
		return -1
	}
	return a.distanceToEdge - dy
}

// checkCorners keeps center.x±d and center.y±d inside the int range, so every
// row span of the diamond can be computed without overflow.
func checkCorners(center kernel.Point, d int) error {
	if _, err := kernel.SubInt("left corner", center.X(), d); err != nil {
		return err
	}
	if _, err := kernel.AddInt("right corner", center.X(), d); err != nil {
		return err
	}
	if _, err := kernel.SubInt("top corner", center.Y(), d); err != nil {
		return err
	}
	_, err := kernel.AddInt("bottom corner", center.Y(), d)
	return err
}
