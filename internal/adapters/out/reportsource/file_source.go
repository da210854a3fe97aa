// Package reportsource provides the ReportSource adapters that read sensor
// reports from a file on disk or from an in-memory text body.
package reportsource

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"sensorcoverage/internal/core/domain/model/sensor"
	"sensorcoverage/internal/core/ports"
	"sensorcoverage/internal/pkg/errs"
)

var _ ports.ReportSource = (*FileSource)(nil)

// FileSource reads reports from a text file, one report per line.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

// Reports opens the file and parses every line. The file is read on every
// call, so edits between calls are picked up.
func (s *FileSource) Reports(ctx context.Context) ([]sensor.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.path) == "" {
		return nil, errs.NewValueIsRequiredError("input file")
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("input file", s.path, err)
		}
		return nil, errs.NewSourceIsUnreadableErrorWithCause(s.path, err)
	}
	defer f.Close()

	reports, err := sensor.ParseReports(f)
	if err != nil {
		if errors.Is(err, errs.ErrLineIsMalformed) {
			return nil, err
		}
		return nil, errs.NewSourceIsUnreadableErrorWithCause(s.path, err)
	}

	return reports, nil
}
