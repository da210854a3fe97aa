package queries_test

import (
	"context"
	"log/slog"

	"sensorcoverage/internal/core/domain/model/sensor"

	"github.com/stretchr/testify/mock"
)

// MockReportSource is a ReportSource whose reports are scripted per test.
type MockReportSource struct {
	mock.Mock
}

func (m *MockReportSource) Reports(ctx context.Context) ([]sensor.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sensor.Report), args.Error(1)
}

func (m *MockReportSource) Name() string {
	args := m.Called()
	return args.String(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
