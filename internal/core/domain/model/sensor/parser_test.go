package sensor_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"sensorcoverage/internal/core/domain/model/sensor"
	"sensorcoverage/internal/core/domain/model/sensor/sensortest"
	"sensorcoverage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReport(t *testing.T) {
	tests := []struct {
		name             string
		line             string
		sensorX, sensorY int
		beaconX, beaconY int
	}{
		{
			name:    "mixed signs",
			line:    "Sensor at x=2, y=18: closest beacon is at x=-2, y=15",
			sensorX: 2, sensorY: 18, beaconX: -2, beaconY: 15,
		},
		{
			name:    "all negative",
			line:    "Sensor at x=-7, y=-1: closest beacon is at x=-12, y=-30",
			sensorX: -7, sensorY: -1, beaconX: -12, beaconY: -30,
		},
		{
			name:    "large coordinates",
			line:    "Sensor at x=3772068, y=2853133: closest beacon is at x=4068389, y=2345925",
			sensorX: 3772068, sensorY: 2853133, beaconX: 4068389, beaconY: 2345925,
		},
		{
			name:    "surrounding whitespace",
			line:    "  Sensor at x=0, y=0: closest beacon is at x=1, y=0\r",
			sensorX: 0, sensorY: 0, beaconX: 1, beaconY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := sensor.ParseReport(tt.line)

			require.NoError(t, err)
			assert.NoError(t, r.Validate())
			assert.Equal(t, tt.sensorX, r.Sensor().X())
			assert.Equal(t, tt.sensorY, r.Sensor().Y())
			assert.Equal(t, tt.beaconX, r.Beacon().X())
			assert.Equal(t, tt.beaconY, r.Beacon().Y())
		})
	}
}

func TestParseReport_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"Sensor at x=2, y=18",
		"Sensor at x=2, y=18: closest beacon is at x=-2",
		"Sensor at x=2.5, y=18: closest beacon is at x=-2, y=15",
		"Sensor at x=+2, y=18: closest beacon is at x=-2, y=15",
		"sensor at x=2, y=18: closest beacon is at x=-2, y=15",
		"Sensor at x=2, y=18: closest beacon is at x=-2, y=15 extra",
		"Sensor at x=0x1F, y=18: closest beacon is at x=-2, y=15",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := sensor.ParseReport(line)

			require.ErrorIs(t, err, errs.ErrLineIsMalformed)
		})
	}

	t.Run("integer overflow keeps the cause", func(t *testing.T) {
		_, err := sensor.ParseReport("Sensor at x=99999999999999999999, y=0: closest beacon is at x=0, y=0")

		var malformed *errs.LineIsMalformedError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 1, malformed.LineNumber)
		assert.Error(t, malformed.Cause)
	})
}

func TestParseReports(t *testing.T) {
	t.Run("reference input", func(t *testing.T) {
		reports, err := sensor.ParseReports(strings.NewReader(sensortest.ExampleInput))

		require.NoError(t, err)
		require.Len(t, reports, 14)
		assert.Equal(t, 2, reports[0].Sensor().X())
		assert.Equal(t, 18, reports[0].Sensor().Y())
		assert.Equal(t, 15, reports[13].Beacon().X())
		assert.Equal(t, 3, reports[13].Beacon().Y())
	})

	t.Run("keeps input order", func(t *testing.T) {
		reports := sensortest.ExampleReports(t)

		xs := make([]int, 0, len(reports))
		for _, r := range reports {
			xs = append(xs, r.Sensor().X())
		}
		assert.Equal(t, []int{2, 9, 13, 12, 10, 14, 8, 2, 0, 20, 17, 16, 14, 20}, xs)
	})

	t.Run("empty input", func(t *testing.T) {
		reports, err := sensor.ParseReports(strings.NewReader("\n\n  \n"))

		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("outer blank lines and CRLF", func(t *testing.T) {
		input := "\r\n\r\nSensor at x=1, y=1: closest beacon is at x=2, y=2\r\n" +
			"Sensor at x=3, y=3: closest beacon is at x=4, y=4\r\n\r\n"

		reports, err := sensor.ParseReports(strings.NewReader(input))

		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})

	t.Run("interior blank line", func(t *testing.T) {
		input := "Sensor at x=1, y=1: closest beacon is at x=2, y=2\n\n" +
			"Sensor at x=3, y=3: closest beacon is at x=4, y=4\n"

		_, err := sensor.ParseReports(strings.NewReader(input))

		var malformed *errs.LineIsMalformedError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 2, malformed.LineNumber)
	})

	t.Run("reports the failing line number", func(t *testing.T) {
		input := "\nSensor at x=1, y=1: closest beacon is at x=2, y=2\n" +
			"Sensor at x=3, y=3: closest beacon at x=4, y=4\n"

		reports, err := sensor.ParseReports(strings.NewReader(input))

		assert.Nil(t, reports)
		var malformed *errs.LineIsMalformedError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 3, malformed.LineNumber)
		assert.Equal(t, "Sensor at x=3, y=3: closest beacon at x=4, y=4", malformed.Line)
	})

	t.Run("reader failure", func(t *testing.T) {
		readErr := errors.New("disk gone")

		_, err := sensor.ParseReports(iotest.ErrReader(readErr))

		assert.ErrorIs(t, err, readErr)
	})
}
