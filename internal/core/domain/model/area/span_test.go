package area_test

import (
	"math"
	"testing"

	"sensorcoverage/internal/core/domain/model/area"
	"sensorcoverage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewSpan(t *testing.T, left, right int) area.Span {
	t.Helper()
	s, err := area.NewSpan(left, right)
	require.NoError(t, err)
	return s
}

func spanLen(t *testing.T, s area.Span) int {
	t.Helper()
	n, err := s.Len()
	require.NoError(t, err)
	return n
}

func TestNewSpan(t *testing.T) {
	t.Run("valid span", func(t *testing.T) {
		s, err := area.NewSpan(-2, 24)

		require.NoError(t, err)
		assert.NoError(t, s.Validate())
		assert.Equal(t, -2, s.Left())
		assert.Equal(t, 24, s.Right())
		assert.Equal(t, 27, spanLen(t, s))
		assert.Equal(t, "[-2..24]", s.String())
	})

	t.Run("single position", func(t *testing.T) {
		s := mustNewSpan(t, 7, 7)

		assert.Equal(t, 1, spanLen(t, s))
		assert.True(t, s.Contains(7))
		assert.False(t, s.Contains(6))
		assert.False(t, s.Contains(8))
	})

	t.Run("crossed bounds", func(t *testing.T) {
		_, err := area.NewSpan(5, 4)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value span", func(t *testing.T) {
		var s area.Span

		assert.Equal(t, area.ErrSpanIsNotConstructed, s.Validate())
	})
}

func TestSpan_Len_IntLimits(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		s := mustNewSpan(t, 0, math.MaxInt-1)

		assert.Equal(t, math.MaxInt, spanLen(t, s))
	})

	t.Run("one past max int", func(t *testing.T) {
		s := mustNewSpan(t, 0, math.MaxInt)

		_, err := s.Len()
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("whole int range", func(t *testing.T) {
		s := mustNewSpan(t, math.MinInt, math.MaxInt)

		_, err := s.Len()
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMergeSpans(t *testing.T) {
	tests := []struct {
		name  string
		input [][2]int
		want  [][2]int
	}{
		{name: "empty", input: nil, want: nil},
		{name: "single", input: [][2]int{{1, 3}}, want: [][2]int{{1, 3}}},
		{name: "disjoint stay apart", input: [][2]int{{10, 12}, {1, 3}}, want: [][2]int{{1, 3}, {10, 12}}},
		{name: "overlapping merge", input: [][2]int{{1, 5}, {3, 9}}, want: [][2]int{{1, 9}}},
		{name: "adjacent merge", input: [][2]int{{4, 6}, {1, 3}}, want: [][2]int{{1, 6}}},
		{name: "contained", input: [][2]int{{0, 20}, {5, 6}, {7, 8}}, want: [][2]int{{0, 20}}},
		{name: "chain", input: [][2]int{{12, 12}, {-2, 2}, {2, 14}, {16, 24}, {14, 18}}, want: [][2]int{{-2, 24}}},
		{name: "gap of one stays apart", input: [][2]int{{1, 3}, {5, 6}}, want: [][2]int{{1, 3}, {5, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]area.Span, 0, len(tt.input))
			for _, b := range tt.input {
				input = append(input, mustNewSpan(t, b[0], b[1]))
			}

			got := area.MergeSpans(input)

			require.Len(t, got, len(tt.want))
			for i, b := range tt.want {
				assert.Equal(t, b[0], got[i].Left())
				assert.Equal(t, b[1], got[i].Right())
			}
		})
	}

	t.Run("does not modify the input", func(t *testing.T) {
		input := []area.Span{mustNewSpan(t, 5, 9), mustNewSpan(t, 1, 6)}

		area.MergeSpans(input)

		assert.Equal(t, 5, input[0].Left())
		assert.Equal(t, 9, input[0].Right())
		assert.Equal(t, 1, input[1].Left())
	})
}
