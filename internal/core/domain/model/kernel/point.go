package kernel

import (
	"errors"
	"fmt"
	"iter"

	"sensorcoverage/internal/pkg/errs"
	"sensorcoverage/internal/pkg/guard"
)

// ErrPointIsNotConstructed is returned when a zero-value Point is used.
// Points must be created using NewPoint.
var ErrPointIsNotConstructed = errs.NewValueIsRequiredError("point must be created via NewPoint constructor")

// Point is an immutable position on the unbounded integer grid.
// Points compare by value and can be used as map keys.
// The zero value of Point is invalid and fails Validate - use NewPoint.
//
// Example:
//
//	p := kernel.NewPoint(2, -18)
//	fmt.Println(p) // Point(2,-18)
type Point struct {
	x     int
	y     int
	guard guard.ConstructorGuard
}

// NewPoint creates a Point at (x, y). Every integer pair is a valid position.
func NewPoint(x, y int) Point {
	return Point{
		x:     x,
		y:     y,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the Point was created by NewPoint.
//
// Returns:
//   - error: ErrPointIsNotConstructed for a zero value, nil otherwise
func (p Point) Validate() error {
	return p.guard.Validate(ErrPointIsNotConstructed)
}

// X returns the column of the point.
func (p Point) X() int {
	return p.x
}

// Y returns the row of the point.
func (p Point) Y() int {
	return p.y
}

// String implements fmt.Stringer in the form "Point(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("Point(%d,%d)", p.x, p.y)
}

// IsEqual reports whether both points sit at the same position.
// Both points must be constructed.
func (p Point) IsEqual(other Point) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// Distance calculates the Manhattan distance |x1-x2| + |y1-y2| to other.
// The distance is symmetric, zero for the same position, and satisfies the
// triangle inequality. Both points must be constructed.
//
// Example:
//
//	a := kernel.NewPoint(8, 7)
//	b := kernel.NewPoint(2, 10)
//	d, _ := a.Distance(b) // 9
func (p Point) Distance(other Point) (int, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return ManhattanDistance(p, other)
}

// ManhattanDistance returns |a.x-b.x| + |a.y-b.y| without construction checks.
// Returns an out-of-range error when the distance does not fit in an int.
func ManhattanDistance(a, b Point) (int, error) {
	dx, err := axisDistance("x distance", a.x, b.x)
	if err != nil {
		return 0, err
	}

	dy, err := axisDistance("y distance", a.y, b.y)
	if err != nil {
		return 0, err
	}

	return AddInt("distance", dx, dy)
}

// XRange yields every point between from and to on their shared row, from the
// smaller x to the larger x inclusive. The endpoints may be given in any order.
//
// XRange panics when from and to are on different rows: callers derive both
// endpoints from the same row, so a mismatch is a programming error.
func XRange(from, to Point) iter.Seq[Point] {
	if from.y != to.y {
		panic(fmt.Sprintf("kernel.XRange: endpoints %s and %s are on different rows", from, to))
	}

	lo, hi := from.x, to.x
	if lo > hi {
		lo, hi = hi, lo
	}
	y := from.y

	return func(yield func(Point) bool) {
		for x := lo; ; x++ {
			if !yield(NewPoint(x, y)) || x == hi {
				return
			}
		}
	}
}

func axisDistance(param string, a, b int) (int, error) {
	d, err := SubInt(param, a, b)
	if err != nil {
		return 0, err
	}
	return AbsInt(param, d)
}
