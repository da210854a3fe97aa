package reportsource

import (
	"context"
	"strings"

	"sensorcoverage/internal/core/domain/model/sensor"
	"sensorcoverage/internal/core/ports"
)

var _ ports.ReportSource = (*TextSource)(nil)

// TextSource parses reports from text already held in memory, such as an
// HTTP request body.
type TextSource struct {
	name string
	text string
}

func NewTextSource(name, text string) *TextSource {
	return &TextSource{name: name, text: text}
}

func (s *TextSource) Name() string {
	return s.name
}

func (s *TextSource) Reports(ctx context.Context) ([]sensor.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sensor.ParseReports(strings.NewReader(s.text))
}
