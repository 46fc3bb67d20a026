package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assemble/cmd/assemble/commands"
	"go.trai.ch/assemble/internal/app"
	"go.trai.ch/assemble/internal/build"
	"go.trai.ch/assemble/internal/core/domain"
)

type mockApp struct {
	logOpts      app.LogOptions
	shutdowns    int
	planFunc     func(ctx context.Context, opts app.PlanOptions) error
	checkFunc    func(ctx context.Context, opts app.CheckOptions) error
	matchFunc    func(ctx context.Context, opts app.MatchOptions) error
	classifyFunc func(ctx context.Context, opts app.ClassifyOptions) error
	chunkFunc    func(ctx context.Context, opts app.ChunkNameOptions) error
	watchFunc    func(ctx context.Context, opts app.WatchOptions) error
}

func (m *mockApp) ConfigureLogging(opts app.LogOptions) func(context.Context) error {
	m.logOpts = opts
	return func(context.Context) error {
		m.shutdowns++
		return nil
	}
}

func (m *mockApp) Plan(ctx context.Context, opts app.PlanOptions) error {
	if m.planFunc != nil {
		return m.planFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, opts app.CheckOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Match(ctx context.Context, opts app.MatchOptions) error {
	if m.matchFunc != nil {
		return m.matchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Classify(ctx context.Context, opts app.ClassifyOptions) error {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) ChunkName(ctx context.Context, opts app.ChunkNameOptions) error {
	if m.chunkFunc != nil {
		return m.chunkFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Plan(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.PlanOptions
		mock := &mockApp{
			planFunc: func(_ context.Context, opts app.PlanOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"plan", "--mode", "production", "--format", "json", "--save"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.PlanOptions{Mode: "production", Format: "json", Save: true}, captured)
	})

	t.Run("mode falls back to environment", func(t *testing.T) {
		t.Setenv(domain.ModeEnvVar, "development")

		var captured app.PlanOptions
		mock := &mockApp{
			planFunc: func(_ context.Context, opts app.PlanOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"plan"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "development", captured.Mode)
		assert.Equal(t, "auto", captured.Format)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv(domain.ModeEnvVar, "development")

		var captured app.PlanOptions
		mock := &mockApp{
			planFunc: func(_ context.Context, opts app.PlanOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"plan", "-m", "production"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "production", captured.Mode)
	})

	t.Run("returns error on plan failure", func(t *testing.T) {
		mock := &mockApp{
			planFunc: func(_ context.Context, _ app.PlanOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"plan", "--mode", "staging"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
		assert.Equal(t, 1, mock.shutdowns)
	})
}

func TestCommands_GlobalFlags(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	cli.SetArgs([]string{"plan", "--json", "-q", "--trace"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.LogOptions{JSON: true, Quiet: true, Trace: true}, mock.logOpts)
	assert.Equal(t, 1, mock.shutdowns)
}

func TestCommands_Check(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "all modes by default", args: []string{"check"}, want: nil},
		{name: "repeated flag", args: []string{"check", "-m", "production", "-m", "development"}, want: []string{"production", "development"}},
		{name: "comma separated", args: []string{"check", "--mode", "development,production"}, want: []string{"development", "production"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CheckOptions
			mock := &mockApp{
				checkFunc: func(_ context.Context, opts app.CheckOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			if tt.want == nil {
				assert.Empty(t, captured.Modes)
				return
			}
			assert.Equal(t, tt.want, captured.Modes)
		})
	}
}

func TestCommands_Match(t *testing.T) {
	t.Run("passes paths", func(t *testing.T) {
		var captured app.MatchOptions
		mock := &mockApp{
			matchFunc: func(_ context.Context, opts app.MatchOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"match", "-m", "production", "src/index.js", "src/main.css"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "production", captured.Mode)
		assert.Equal(t, []string{"src/index.js", "src/main.css"}, captured.Paths)
	})

	t.Run("shows usage when no paths provided", func(t *testing.T) {
		mock := &mockApp{
			matchFunc: func(_ context.Context, _ app.MatchOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"match", "-m", "production"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Classify(t *testing.T) {
	var captured app.ClassifyOptions
	mock := &mockApp{
		classifyFunc: func(_ context.Context, opts app.ClassifyOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"classify", "--mode", "development", "--format", "text", "src"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.ClassifyOptions{Mode: "development", Format: "text", Dir: "src"}, captured)

	cli = commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"classify", "a", "b"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_ChunkName(t *testing.T) {
	var captured app.ChunkNameOptions
	mock := &mockApp{
		chunkFunc: func(_ context.Context, opts app.ChunkNameOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"chunk-name", "node_modules/@foo/bar/baz.js"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.ChunkNameOptions{Group: "vendors", Paths: []string{"node_modules/@foo/bar/baz.js"}}, captured)

	cli = commands.New(mock)
	cli.SetArgs([]string{"chunk-name", "--group", "libs", "node_modules/lodash/index.js"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "libs", captured.Group)
}

func TestCommands_Watch(t *testing.T) {
	var captured app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "--mode", "development", "-f", "yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.WatchOptions{Mode: "development", Format: "yaml"}, captured)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "assemble version "+build.Version)
}
