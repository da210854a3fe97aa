// Package ports defines the contracts between the coverage use cases and the
// adapters that supply sensor reports.
package ports

import (
	"context"

	"sensorcoverage/internal/core/domain/model/sensor"
)

// ReportSource supplies the sensor reports for one coverage scan.
type ReportSource interface {
	// Reports reads and parses every report, in input order.
	// A single malformed line fails the whole read; no partial result is returned.
	//
	// Errors:
	//   - *errs.ObjectNotFoundError when the underlying file does not exist
	//   - *errs.SourceIsUnreadableError when it exists but cannot be read
	//   - *errs.LineIsMalformedError for the first line that does not parse
	Reports(ctx context.Context) ([]sensor.Report, error)

	// Name identifies the source in logs and responses, e.g. a file path.
	Name() string
}
