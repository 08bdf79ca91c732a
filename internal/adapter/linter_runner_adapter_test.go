package adapter

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// These tests run small shell commands in place of cargo so they do not need
// a Rust toolchain.

func TestLocalLinterRunnerAdapter_DefaultCommand(t *testing.T) {
	adapter := NewLocalLinterRunnerAdapter()

	assert.Equal(t, []string{"cargo", "clippy", "--message-format", "json", "-q"}, adapter.command)
}

func TestLocalLinterRunnerAdapter_Stream_Success(t *testing.T) {
	var stderr bytes.Buffer

	adapter := NewLocalLinterRunnerAdapter(
		WithCommand("sh", "-c", `printf '{"reason":"build-finished"}\n'; echo warming up >&2`),
		WithStderr(&stderr),
	)

	stdout, err := adapter.Stream(context.Background())
	require.NoError(t, err)

	out, err := io.ReadAll(stdout)
	require.NoError(t, err)
	require.NoError(t, stdout.Close())

	assert.Equal(t, "{\"reason\":\"build-finished\"}\n", string(out))
	assert.Equal(t, "warming up\n", stderr.String())
}

func TestLocalLinterRunnerAdapter_Stream_ExitCodeIgnored(t *testing.T) {
	adapter := NewLocalLinterRunnerAdapter(WithCommand("sh", "-c", "echo '{}'; exit 101"))

	stdout, err := adapter.Stream(context.Background())
	require.NoError(t, err)

	out, err := io.ReadAll(stdout)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))

	assert.NoError(t, stdout.Close())
}

func TestLocalLinterRunnerAdapter_Stream_CloseBeforeEOF(t *testing.T) {
	adapter := NewLocalLinterRunnerAdapter(WithCommand("sh", "-c", "while echo '{}'; do :; done"))

	stdout, err := adapter.Stream(context.Background())
	require.NoError(t, err)

	buf := make([]byte, 3)
	_, err = io.ReadFull(stdout, buf)
	require.NoError(t, err)

	assert.NoError(t, stdout.Close())
}

func TestLocalLinterRunnerAdapter_Stream_MissingBinary(t *testing.T) {
	adapter := NewLocalLinterRunnerAdapter(WithCommand("definitely-not-a-linter-binary", "clippy"))

	stdout, err := adapter.Stream(context.Background())
	require.Error(t, err)
	assert.Nil(t, stdout)
	assert.ErrorIs(t, err, m.ErrSpawnFailed)
}

func TestLocalLinterRunnerAdapter_Stream_EmptyCommand(t *testing.T) {
	adapter := NewLocalLinterRunnerAdapter(WithCommand())

	_, err := adapter.Stream(context.Background())
	assert.ErrorIs(t, err, m.ErrSpawnFailed)
}
