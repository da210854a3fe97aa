package queries_test

import (
	"errors"
	"testing"

	"sensorcoverage/internal/core/application/usecases/queries"
	"sensorcoverage/internal/core/domain/model/sensor"
	"sensorcoverage/internal/core/domain/model/sensor/sensortest"
	"sensorcoverage/internal/core/domain/services"
	"sensorcoverage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCountExcludedPositionsQueryHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	source := new(MockReportSource)
	source.On("Reports", ctx).Return(sensortest.ExampleReports(t), nil).Once()
	source.On("Name").Return("input.txt")

	query, err := queries.NewCountExcludedPositionsQuery(source, sensortest.ExampleRow)
	require.NoError(t, err)

	handler := queries.NewCountExcludedPositionsQueryHandler(services.NewSpanMergeCounter(), discardLogger())

	// Act
	result, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sensortest.ExampleCount, result.Count)
	assert.Equal(t, sensortest.ExampleRow, result.Row)
	assert.Equal(t, 14, result.Reports)
	assert.Equal(t, "input.txt", result.Source)
	require.NoError(t, result.ScanID.Validate())
	source.AssertExpectations(t)
}

func TestCountExcludedPositionsQueryHandler_Handle_EveryStrategy(t *testing.T) {
	for _, strategy := range []services.Strategy{services.StrategySpanMerge, services.StrategyPointSet} {
		t.Run(string(strategy), func(t *testing.T) {
			ctx := t.Context()
			source := new(MockReportSource)
			source.On("Reports", mock.Anything).Return(sensortest.ExampleReports(t), nil)
			source.On("Name").Return("example")

			counter, err := services.NewCoverageCounter(strategy)
			require.NoError(t, err)

			query, err := queries.NewCountExcludedPositionsQuery(source, sensortest.ExampleRow)
			require.NoError(t, err)

			result, err := queries.NewCountExcludedPositionsQueryHandler(counter, discardLogger()).Handle(ctx, query)

			require.NoError(t, err)
			assert.Equal(t, sensortest.ExampleCount, result.Count)
		})
	}
}

func TestCountExcludedPositionsQueryHandler_Handle_NoReports(t *testing.T) {
	ctx := t.Context()
	source := new(MockReportSource)
	source.On("Reports", ctx).Return([]sensor.Report{}, nil).Once()
	source.On("Name").Return("empty")

	query, err := queries.NewCountExcludedPositionsQuery(source, 0)
	require.NoError(t, err)

	result, err := queries.NewCountExcludedPositionsQueryHandler(services.NewSpanMergeCounter(), discardLogger()).
		Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, 0, result.Reports)
}

func TestCountExcludedPositionsQueryHandler_Handle_InvalidQuery(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidQuery queries.CountExcludedPositionsQuery // zero value query
	handler := queries.NewCountExcludedPositionsQueryHandler(services.NewSpanMergeCounter(), discardLogger())

	// Act
	_, err := handler.Handle(ctx, invalidQuery)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrCountExcludedPositionsQueryIsNotConstructed)
}

func TestCountExcludedPositionsQueryHandler_Handle_SourceError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	sourceErr := errs.NewLineIsMalformedError(3, "Sensor at x=1")
	source := new(MockReportSource)
	source.On("Reports", ctx).Return([]sensor.Report(nil), sourceErr).Once()
	source.On("Name").Return("broken.txt")

	query, err := queries.NewCountExcludedPositionsQuery(source, 10)
	require.NoError(t, err)

	handler := queries.NewCountExcludedPositionsQueryHandler(services.NewSpanMergeCounter(), discardLogger())

	// Act
	_, err = handler.Handle(ctx, query)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrLineIsMalformed)

	var malformed *errs.LineIsMalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 3, malformed.LineNumber)
	assert.Contains(t, err.Error(), "broken.txt")
	source.AssertExpectations(t)
}

func TestCountExcludedPositionsQueryHandler_Handle_CounterError(t *testing.T) {
	ctx := t.Context()
	source := new(MockReportSource)
	// A zero-value report was never constructed and is rejected by the counter.
	source.On("Reports", ctx).Return([]sensor.Report{{}}, nil).Once()
	source.On("Name").Return("corrupt")

	query, err := queries.NewCountExcludedPositionsQuery(source, 10)
	require.NoError(t, err)

	_, err = queries.NewCountExcludedPositionsQueryHandler(services.NewSpanMergeCounter(), discardLogger()).
		Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, sensor.ErrReportIsNotConstructed)
	assert.False(t, errors.Is(err, errs.ErrLineIsMalformed))
}
