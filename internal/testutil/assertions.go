package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that the captured log output contains a record with
// the given message and key=value attribute, as written by the text handler.
func AssertLogged(t *testing.T, logs *SafeBuffer, msg, key string, value any) {
	t.Helper()

	out := logs.String()
	attr := fmt.Sprintf("%s=%v", key, value)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, msg) && strings.Contains(line, attr) {
			return
		}
	}
	require.Failf(t, "log record not found", "no record with message %q and %s in:\n%s", msg, attr, out)
}
