package sensor

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"sensorcoverage/internal/core/domain/model/kernel"
	"sensorcoverage/internal/pkg/errs"
)

var reportPattern = regexp.MustCompile(
	`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`,
)

// ParseReport parses a single report line. A malformed line yields an
// *errs.LineIsMalformedError for line 1.
func ParseReport(line string) (Report, error) {
	return parseLine(1, strings.TrimSpace(line))
}

// ParseReports reads every report from r, one per line.
//
// Blank lines before the first report and after the last one are ignored and
// each line may carry surrounding whitespace (including a trailing "\r").
// Any other line, including a blank line between reports, fails the whole
// read with an *errs.LineIsMalformedError that carries the 1-based line number.
func ParseReports(r io.Reader) ([]Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	first, last := 0, len(lines)-1
	for first <= last && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	for last >= first && strings.TrimSpace(lines[last]) == "" {
		last--
	}

	reports := make([]Report, 0, last-first+1)
	for i := first; i <= last; i++ {
		report, parseErr := parseLine(i+1, strings.TrimSpace(lines[i]))
		if parseErr != nil {
			return nil, parseErr
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func parseLine(lineNumber int, line string) (Report, error) {
	m := reportPattern.FindStringSubmatch(line)
	if m == nil {
		return Report{}, errs.NewLineIsMalformedError(lineNumber, line)
	}

	coords := make([]int, 0, 4)
	for _, raw := range m[1:] {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Report{}, errs.NewLineIsMalformedErrorWithCause(lineNumber, line, err)
		}
		coords = append(coords, v)
	}

	s, err := NewSensor(kernel.NewPoint(coords[0], coords[1]))
	if err != nil {
		return Report{}, fmt.Errorf("line %d: %w", lineNumber, err)
	}

	b, err := NewBeacon(kernel.NewPoint(coords[2], coords[3]))
	if err != nil {
		return Report{}, fmt.Errorf("line %d: %w", lineNumber, err)
	}

	return NewReport(s, b)
}
