package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lambdazip/cmd/lambdazip/commands"
	"go.trai.ch/lambdazip/internal/app"
	"go.trai.ch/lambdazip/internal/build"
	"go.trai.ch/lambdazip/internal/core/domain"
)

type mockApp struct {
	runFunc     func(ctx context.Context, in io.Reader, out io.Writer, opts app.RunOptions) error
	packageFunc func(ctx context.Context, req domain.Request, opts app.RunOptions) (domain.Result, error)
}

func (m *mockApp) Run(ctx context.Context, in io.Reader, out io.Writer, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, in, out, opts)
	}
	return nil
}

func (m *mockApp) Package(ctx context.Context, req domain.Request, opts app.RunOptions) (domain.Result, error) {
	if m.packageFunc != nil {
		return m.packageFunc(ctx, req, opts)
	}
	return domain.Result{}, nil
}

func TestCommands_Root(t *testing.T) {
	t.Run("reads stdin and writes stdout", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, in io.Reader, out io.Writer, opts app.RunOptions) error {
				capturedOpts = opts
				data, err := io.ReadAll(in)
				if err != nil {
					return err
				}
				_, err = out.Write(bytes.ToUpper(data))
				return err
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetInput(strings.NewReader(`{"code":"a.py"}`))
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"-v", "--log-json", "--config", "ci.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, `{"CODE":"A.PY"}`, out.String())
		assert.Equal(t, app.RunOptions{ConfigPath: "ci.yaml", Verbose: true, JSONLogs: true}, capturedOpts)
	})

	t.Run("defaults the config path", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ io.Reader, _ io.Writer, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.ConfigFileName, capturedOpts.ConfigPath)
		assert.False(t, capturedOpts.Verbose)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ io.Reader, _ io.Writer, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ io.Reader, _ io.Writer, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"handler.py"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Package(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured domain.Request
		var capturedOpts app.RunOptions
		mock := &mockApp{
			packageFunc: func(_ context.Context, req domain.Request, opts app.RunOptions) (domain.Result, error) {
				captured = req
				capturedOpts = opts
				return domain.Result{
					Code:               req.Code,
					OutputFilename:     req.OutputFilename(),
					OutputBase64SHA256: "c3VtCg==",
				}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"package", "--code", "fn/handler.py", "--extra-files", "lib/util.py,conf.json", "-o", "dist/fn.zip", "-v"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fn/handler.py", captured.Code)
		assert.Equal(t, []string{"lib/util.py", "conf.json"}, captured.ExtraFiles)
		assert.Equal(t, "dist/fn.zip", captured.OutputFilename())
		assert.True(t, capturedOpts.Verbose)
		assert.Equal(t, "dist/fn.zip c3VtCg==\n", out.String())
	})

	t.Run("requires code", func(t *testing.T) {
		mock := &mockApp{
			packageFunc: func(_ context.Context, _ domain.Request, _ app.RunOptions) (domain.Result, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"package"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("returns error on package failure", func(t *testing.T) {
		mock := &mockApp{
			packageFunc: func(_ context.Context, _ domain.Request, _ app.RunOptions) (domain.Result, error) {
				return domain.Result{}, domain.ErrUnsupportedLanguage
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"package", "--code", "main.rb"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
		assert.Empty(t, out.String())
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "lambdazip version "+build.Version)
}
