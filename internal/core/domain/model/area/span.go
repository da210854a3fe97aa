package area

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/pkg/errs"
	"sensorcoverage/internal/pkg/guard"
)

// ErrSpanIsNotConstructed is returned when a zero-value Span is used.
var ErrSpanIsNotConstructed = errs.NewValueIsRequiredError("span must be created via NewSpan constructor")

// Span is the inclusive integer interval [left, right] on a row, left <= right.
type Span struct {
	left  int
	right int
	guard guard.ConstructorGuard
}

// NewSpan creates the span [left, right].
// Returns an out-of-range error when left > right.
func NewSpan(left, right int) (Span, error) {
	if left > right {
		return Span{}, errs.NewValueIsOutOfRangeError("left", left, math.MinInt, right)
	}

	return Span{
		left:  left,
		right: right,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Span was created by NewSpan.
func (s Span) Validate() error {
	return s.guard.Validate(ErrSpanIsNotConstructed)
}

func (s Span) Left() int {
	return s.left
}

func (s Span) Right() int {
	return s.right
}

// Len returns the number of integer positions in the span, or an
// out-of-range error when that number does not fit in an int.
func (s Span) Len() (int, error) {
	width, err := kernel.SubInt("span width", s.right, s.left)
	if err != nil {
		return 0, err
	}
	return kernel.AddInt("span length", width, 1)
}

// Contains reports whether x lies within the span.
func (s Span) Contains(x int) bool {
	return s.left <= x && x <= s.right
}

// String renders the span as "[left..right]".
func (s Span) String() string {
	return fmt.Sprintf("[%d..%d]", s.left, s.right)
}

// MergeSpans returns the union of spans as the minimal set of disjoint,
// non-adjacent spans ordered by left bound. Overlapping spans and spans that
// touch (one ends at x, the next starts at x+1) are coalesced. The input
// slice is not modified.
//
// Example:
//
//	a, _ := area.NewSpan(-2, 2)
//	b, _ := area.NewSpan(3, 5)
//	c, _ := area.NewSpan(12, 14)
//	area.MergeSpans([]area.Span{c, a, b}) // [-2..5] [12..14]
func MergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int {
		return cmp.Compare(a.left, b.left)
	})

	merged := make([]Span, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.left <= current.right+1 {
			current.right = max(current.right, next.right)
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}
