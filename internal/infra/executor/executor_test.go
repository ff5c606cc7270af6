package executor

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient() (*Client, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewClientWithStreams(nil, &stdout, &stderr), &stdout, &stderr
}

func TestClient_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	ctx := context.Background()

	t.Run("successful chain returns zero", func(t *testing.T) {
		client, stdout, _ := newTestClient()

		code, err := client.Execute(ctx, domain.NewShellCommand("echo hi && exit 0", ""), nil)

		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "hi\n", stdout.String())
	})

	t.Run("non-zero exit fails with that code", func(t *testing.T) {
		client, _, _ := newTestClient()

		code, err := client.Execute(ctx, domain.NewShellCommand("exit 7", ""), nil)

		require.Error(t, err)
		assert.Equal(t, 7, code)
		var exitErr *domain.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 7, exitErr.Code)
	})

	t.Run("chain stops at first failure", func(t *testing.T) {
		client, stdout, _ := newTestClient()

		code, err := client.Execute(ctx, domain.NewShellCommand("echo one && exit 3 && echo two", ""), nil)

		require.Error(t, err)
		assert.Equal(t, 3, code)
		assert.Equal(t, "one\n", stdout.String())
	})

	t.Run("inherits stderr without callback", func(t *testing.T) {
		client, stdout, stderr := newTestClient()

		_, err := client.Execute(ctx, domain.NewShellCommand("echo oops >&2", ""), nil)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "oops\n", stderr.String())
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		client, stdout, _ := newTestClient()
		dir := t.TempDir()

		_, err := client.Execute(ctx, domain.NewShellCommand("pwd", dir), nil)

		require.NoError(t, err)
		assert.Contains(t, strings.TrimSpace(stdout.String()), dir)
	})

	t.Run("appends extra environment", func(t *testing.T) {
		client, stdout, _ := newTestClient()
		cmd := domain.NewShellCommand(`echo "$DEVTOOL_TEST_VAR"`, "")
		cmd.Env = []string{"DEVTOOL_TEST_VAR=value"}

		_, err := client.Execute(ctx, cmd, nil)

		require.NoError(t, err)
		assert.Equal(t, "value\n", stdout.String())
	})

	t.Run("forwards stdin", func(t *testing.T) {
		var stdout bytes.Buffer
		client := NewClientWithStreams(strings.NewReader("piped"), &stdout, &bytes.Buffer{})

		_, err := client.Execute(ctx, domain.NewShellCommand("cat", ""), nil)

		require.NoError(t, err)
		assert.Equal(t, "piped", stdout.String())
	})

	t.Run("killed by signal reports 128 plus signal", func(t *testing.T) {
		client, _, _ := newTestClient()

		code, err := client.Execute(ctx, domain.NewShellCommand("kill -TERM $$", ""), nil)

		require.Error(t, err)
		assert.Equal(t, 143, code)
	})

	t.Run("start failure is not an exit error", func(t *testing.T) {
		client, _, _ := newTestClient()

		code, err := client.Execute(ctx, domain.NewCommand("nonexistent-command-xyz", nil, ""), nil)

		require.Error(t, err)
		assert.Equal(t, 1, code)
		var exitErr *domain.ExitError
		assert.False(t, errors.As(err, &exitErr))
		assert.Contains(t, err.Error(), "execute command")
	})
}

func TestClient_Execute_WithCallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	ctx := context.Background()

	t.Run("chunks are a copy of stdout", func(t *testing.T) {
		client, stdout, _ := newTestClient()
		var received bytes.Buffer

		code, err := client.Execute(ctx, domain.NewShellCommand("printf 'hello world\n'", ""), func(chunk []byte) {
			received.Write(chunk)
		})

		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "hello world\n", received.String())
		// Console gets the trimmed chunk on its own line
		assert.Equal(t, "hello world\n", stdout.String())
	})

	t.Run("stderr is logged but not passed to callback", func(t *testing.T) {
		client, stdout, stderr := newTestClient()
		var received bytes.Buffer

		_, err := client.Execute(ctx, domain.NewShellCommand("echo warn >&2", ""), func(chunk []byte) {
			received.Write(chunk)
		})

		require.NoError(t, err)
		assert.Empty(t, received.String())
		assert.Empty(t, stdout.String())
		assert.Equal(t, "warn\n", stderr.String())
	})

	t.Run("failure code is still reported", func(t *testing.T) {
		client, _, _ := newTestClient()
		var calls int

		code, err := client.Execute(ctx, domain.NewShellCommand("echo partial && exit 5", ""), func([]byte) {
			calls++
		})

		require.Error(t, err)
		assert.Equal(t, 5, code)
		assert.Positive(t, calls)
	})
}

func TestClient_Execute_ReturnsWhenChildExits(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	ctx := context.Background()

	t.Run("with callback", func(t *testing.T) {
		client, _, _ := newTestClient()

		start := time.Now()
		code, err := client.Execute(ctx, domain.NewShellCommand("sleep 3 & exit 0", ""), func([]byte) {})

		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("with buffered streams", func(t *testing.T) {
		client, _, _ := newTestClient()

		start := time.Now()
		code, err := client.Execute(ctx, domain.NewShellCommand("sleep 3 & exit 4", ""), nil)

		require.Error(t, err)
		assert.Equal(t, 4, code)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func TestChunkWriter_DoesNotAliasInput(t *testing.T) {
	var console bytes.Buffer
	var got []byte
	w := &chunkWriter{console: &console, onChunk: func(chunk []byte) { got = chunk }}

	// Spare capacity after the trimmed region must not be overwritten
	buf := make([]byte, 0, 16)
	buf = append(buf, " ab  "...)
	n, err := w.Write(buf)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, " ab  ", string(buf))
	assert.Equal(t, " ab  ", string(got))
	assert.Equal(t, "ab\n", console.String())

	got[0] = 'x'
	assert.Equal(t, " ab  ", string(buf))
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
}
