package cmd_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sensorcoverage/cmd"
	"sensorcoverage/internal/adapters/in/cli"
	"sensorcoverage/internal/core/domain/model/sensor/sensortest"
	"sensorcoverage/internal/core/domain/services"

	"github.com/Netflix/go-env"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, es env.EnvSet) cmd.CompositionRoot {
	t.Helper()

	config, err := cmd.ParseConfig(es)
	require.NoError(t, err)
	return cmd.NewCompositionRoot(config, slog.New(slog.DiscardHandler))
}

func TestCompositionRoot_RootCommand(t *testing.T) {
	for _, strategy := range []string{"merge", "point-set"} {
		t.Run(strategy, func(t *testing.T) {
			root := newRoot(t, env.EnvSet{"COUNT_STRATEGY": strategy})
			path := filepath.Join(t.TempDir(), "input.txt")
			require.NoError(t, os.WriteFile(path, []byte(sensortest.ExampleInput), 0o600))

			var out, errOut bytes.Buffer
			err := cli.Execute(t.Context(), root.CreateRootCommand(), []string{path, "10"}, &out, &errOut)

			require.NoError(t, err)
			assert.Equal(t, "POSITION COUNT: 26\n", out.String())
		})
	}
}

func TestCompositionRoot_CountHandler_UnknownStrategy(t *testing.T) {
	root := newRoot(t, env.EnvSet{})

	_, err := root.CreateCountExcludedPositionsQueryHandler(services.Strategy("guess"))

	require.Error(t, err)
}

func TestCompositionRoot_HTTPRouter(t *testing.T) {
	root := newRoot(t, env.EnvSet{})

	router, err := root.CreateHTTPRouter()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/coverage?row=10", strings.NewReader(sensortest.ExampleInput))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"count":26`)
}

func TestCompositionRoot_JobManager(t *testing.T) {
	root := newRoot(t, env.EnvSet{"REPORT_PATH": "input.txt", "REPORT_SCHEDULE": "0 0 * * * *"})

	jm, err := root.CreateJobManager()
	require.NoError(t, err)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := cmd.NewLogger("warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestEchoLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, cmd.EchoLogLevel("debug"))
	assert.Equal(t, log.WARN, cmd.EchoLogLevel("warn"))
	assert.Equal(t, log.ERROR, cmd.EchoLogLevel("error"))
	assert.Equal(t, log.INFO, cmd.EchoLogLevel("info"))
}
