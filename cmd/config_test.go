package cmd_test

import (
	"testing"

	"sensorcoverage/cmd"
	"sensorcoverage/internal/core/domain/services"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	config, err := cmd.ParseConfig(env.EnvSet{})

	require.NoError(t, err)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, services.StrategySpanMerge, config.Strategy())
	assert.Empty(t, config.ReportSchedule)
	assert.Equal(t, 0, config.ReportRow)
}

func TestParseConfig_Overrides(t *testing.T) {
	config, err := cmd.ParseConfig(env.EnvSet{
		"LOG_LEVEL":       "debug",
		"HTTP_PORT":       "9090",
		"COUNT_STRATEGY":  "point-set",
		"REPORT_PATH":     "/data/input.txt",
		"REPORT_ROW":      "-2000000",
		"REPORT_SCHEDULE": "0 */5 * * * *",
	})

	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, services.StrategyPointSet, config.Strategy())
	assert.Equal(t, "/data/input.txt", config.ReportPath)
	assert.Equal(t, -2000000, config.ReportRow)
	assert.Equal(t, "0 */5 * * * *", config.ReportSchedule)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		es   env.EnvSet
	}{
		{name: "unknown log level", es: env.EnvSet{"LOG_LEVEL": "loud"}},
		{name: "port not numeric", es: env.EnvSet{"HTTP_PORT": "http"}},
		{name: "unknown strategy", es: env.EnvSet{"COUNT_STRATEGY": "guess"}},
		{name: "row not an integer", es: env.EnvSet{"REPORT_ROW": "ten"}},
		{name: "schedule without path", es: env.EnvSet{"REPORT_SCHEDULE": "@every 1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.ParseConfig(tt.es)

			require.Error(t, err)
		})
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("COUNT_STRATEGY", "point-set")

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8181", config.HTTPPort)
	assert.Equal(t, services.StrategyPointSet, config.Strategy())
}
