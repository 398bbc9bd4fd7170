package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clustertap/cmd/clustertap/commands"
	"go.trai.ch/clustertap/internal/app"
	"go.trai.ch/clustertap/internal/build"
)

type mockApp struct {
	serveFunc    func(ctx context.Context, opts app.ServeOptions) error
	extractFunc  func(ctx context.Context, file string, opts app.ExtractOptions, w io.Writer) error
	classifyFunc func(ctx context.Context, address string, opts app.ClassifyOptions, w io.Writer) error
}

func (m *mockApp) Serve(ctx context.Context, opts app.ServeOptions) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Extract(ctx context.Context, file string, opts app.ExtractOptions, w io.Writer) error {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, file, opts, w)
	}
	return nil
}

func (m *mockApp) Classify(ctx context.Context, address string, opts app.ClassifyOptions, w io.Writer) error {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, address, opts, w)
	}
	return nil
}

func TestCommands_Serve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ServeOptions
		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"serve", "--config", "ct.yaml", "--addr", ":9000", "--spool", "/tmp/spool",
			"--log-format", "json", "--log-level", "debug",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.ServeOptions{
			ConfigPath: "ct.yaml",
			Addr:       ":9000",
			SpoolDir:   "/tmp/spool",
			LogFormat:  "json",
			LogLevel:   "debug",
		}, captured)
	})

	t.Run("returns error on serve failure", func(t *testing.T) {
		mock := &mockApp{
			serveFunc: func(context.Context, app.ServeOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"serve", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Extract(t *testing.T) {
	var gotFile string
	var gotOpts app.ExtractOptions
	mock := &mockApp{
		extractFunc: func(_ context.Context, file string, opts app.ExtractOptions, w io.Writer) error {
			gotFile, gotOpts = file, opts
			_, err := io.WriteString(w, "{}\n")
			return err
		},
	}

	cli := commands.New(mock)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"extract", "response.json", "--expect-id", "5521"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "response.json", gotFile)
	assert.Equal(t, "5521", gotOpts.ExpectID)
	assert.Equal(t, "{}\n", out.String())
}

func TestCommands_ExtractRequiresFile(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"extract"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Classify(t *testing.T) {
	var gotAddress string
	var gotOpts app.ClassifyOptions
	mock := &mockApp{
		classifyFunc: func(_ context.Context, address string, opts app.ClassifyOptions, _ io.Writer) error {
			gotAddress, gotOpts = address, opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"classify", "https://example.test/graphql", "-p", "req.json", "-c", "ct.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "https://example.test/graphql", gotAddress)
	assert.Equal(t, app.ClassifyOptions{ConfigPath: "ct.yaml", PayloadFile: "req.json"}, gotOpts)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "clustertap version "+build.Version)
}
