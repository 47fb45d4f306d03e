package executor

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestExecute(t *testing.T) {
	requireBinary(t, "echo")

	out, err := New().Execute(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestExecuteWithInput(t *testing.T) {
	requireBinary(t, "cat")

	out, err := New().ExecuteWithInput(context.Background(), strings.NewReader("from stdin"), "cat")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", out)
}

func TestExecuteIncludesStderr(t *testing.T) {
	requireBinary(t, "sh")

	_, err := New().Execute(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command 'sh' failed")
	assert.Contains(t, err.Error(), "stderr: oops")
}

func TestExecuteMissingBinary(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}
