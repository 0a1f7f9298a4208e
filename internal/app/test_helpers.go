package app

import (
	"bytes"
	"testing"

	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. Logs are
// captured at debug level in text form and dumped if the test fails.
func SetupAppTest(t *testing.T, cfg *Config, ldr config.Loader) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	testutil.LogOnFailure(t, logs)

	return NewApp(out, logs, cfg, ldr), out, logs
}
