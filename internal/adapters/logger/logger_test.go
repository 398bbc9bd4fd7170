package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clustertap/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		args       []any
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{
			name:       "with attributes",
			msg:        "listening",
			args:       []any{"addr", "127.0.0.1:7420", "spool", false},
			goldenName: "info_attrs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("skipping spooled file", "file", "a.json")

	g := goldie.New(t)
	g.Assert(t, "warn_attrs", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{name: "standard error", err: os.ErrPermission, goldenName: "error_simple"},
		{
			name: "zerr chain with metadata",
			err: zerr.With(
				zerr.Wrap(errors.New("connection refused"), "ingest server failed"),
				"addr", "127.0.0.1:7420",
			),
			goldenName: "error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String(), "debug is filtered at the default level")

	require.NoError(t, lg.SetLevel("debug"))
	lg.Debug("cache swept", "evicted", 3)
	assert.Equal(t, "cache swept evicted=3\n", buf.String())

	require.NoError(t, lg.SetLevel("error"))
	buf.Reset()
	lg.Warn("dropped")
	assert.Empty(t, buf.String())

	require.Error(t, lg.SetLevel("loud"))
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("graph pushed", "cluster", "70107929")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"msg":"graph pushed"`)
	assert.Contains(t, buf.String(), `"cluster":"70107929"`)

	buf.Reset()
	lg.Error(zerr.New("boom"))
	assert.Contains(t, buf.String(), `"msg":"operation failed"`)
	assert.Contains(t, buf.String(), `"error":{"msg":"boom"}`)
}

func TestLogger_SetOutputPreservesJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
