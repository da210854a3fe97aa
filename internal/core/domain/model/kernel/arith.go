package kernel

import (
	"fmt"
	"math"

	"sensorcoverage/internal/pkg/errs"
)

// AddInt returns a+b, or an out-of-range error naming param when the sum
// does not fit in an int.
func AddInt(param string, a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, errs.NewValueIsOutOfRangeError(param, fmt.Sprintf("%d + %d", a, b), math.MinInt, math.MaxInt)
	}
	return a + b, nil
}

// SubInt returns a-b, or an out-of-range error naming param when the
// difference does not fit in an int.
func SubInt(param string, a, b int) (int, error) {
	if (b < 0 && a > math.MaxInt+b) || (b > 0 && a < math.MinInt+b) {
		return 0, errs.NewValueIsOutOfRangeError(param, fmt.Sprintf("%d - %d", a, b), math.MinInt, math.MaxInt)
	}
	return a - b, nil
}

// AbsInt returns |v|. math.MinInt has no positive counterpart and yields an
// out-of-range error naming param.
func AbsInt(param string, v int) (int, error) {
	if v == math.MinInt {
		return 0, errs.NewValueIsOutOfRangeError(param, fmt.Sprintf("|%d|", v), 0, math.MaxInt)
	}
	if v < 0 {
		return -v, nil
	}
	return v, nil
}
