package scaffold_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/leetgen/question"
	"go.jacobcolvin.com/leetgen/scaffold"
	"go.jacobcolvin.com/leetgen/stringtest"
)

func newFlags(t *testing.T, args ...string) (*scaffold.Config, *pflag.FlagSet) {
	t.Helper()

	cfg := scaffold.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse(args))

	return cfg, flags
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, _ := newFlags(t)

	assert.Equal(t, "problems", cfg.OutDir)
	assert.Equal(t, "typescript", cfg.Language)
	assert.Equal(t, scaffold.DefaultHelperImport, cfg.HelperImport)
	assert.Equal(t, question.DefaultEndpoint, cfg.Endpoint)
	assert.False(t, cfg.Force)

	gen, err := cfg.NewGenerator()
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestConfig_NewGenerator(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		err  error
	}{
		"javascript":   {args: []string{"-l", "javascript"}},
		"bad language": {args: []string{"--language", "go"}, err: scaffold.ErrInvalidOption},
		"bad width":    {args: []string{"--width", "3"}, err: scaffold.ErrInvalidOption},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, _ := newFlags(t, tc.args...)

			_, err := cfg.NewGenerator()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestConfig_RegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := scaffold.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))
}

func TestConfig_ApplyFile(t *testing.T) {
	t.Parallel()

	cfg, flags := newFlags(t, "--out-dir", "from-flag")

	err := cfg.ApplyFile(&scaffold.FileConfig{
		OutDir:       "from-file",
		Language:     "javascript",
		HelperImport: "../helpers",
		Width:        80,
	}, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.OutDir)
	assert.Equal(t, "javascript", cfg.Language)
	assert.Equal(t, "../helpers", cfg.HelperImport)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, question.DefaultEndpoint, cfg.Endpoint)

	require.NoError(t, cfg.ApplyFile(nil, flags))
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  *scaffold.FileConfig
		input string
		err   bool
	}{
		"full": {
			input: stringtest.Input(`
				outDir: src/problems
				language: typescript
				helperImport: "@/helpers"
				helperDir: tools
				timeout: 5s
				endpoint: http://localhost:8080/graphql
				command: [node, --import, tsx]
				width: 100
			`),
			want: &scaffold.FileConfig{
				OutDir:       "src/problems",
				Language:     "typescript",
				HelperImport: "@/helpers",
				HelperDir:    "tools",
				Timeout:      "5s",
				Endpoint:     "http://localhost:8080/graphql",
				Command:      []string{"node", "--import", "tsx"},
				Width:        100,
			},
		},
		"empty": {
			input: "",
			want:  &scaffold.FileConfig{},
		},
		"unknown key": {
			input: "outdir: x\n",
			err:   true,
		},
		"unknown language": {
			input: "language: python\n",
			err:   true,
		},
		"bad timeout": {
			input: "timeout: soon\n",
			err:   true,
		},
		"narrow width": {
			input: "width: 2\n",
			err:   true,
		},
		"empty command": {
			input: "command: []\n",
			err:   true,
		},
		"not a mapping": {
			input: "- a\n- b\n",
			err:   true,
		},
		"malformed yaml": {
			input: "outDir: [\n",
			err:   true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := scaffold.ParseFile([]byte(tc.input))
			if tc.err {
				require.ErrorIs(t, err, scaffold.ErrInvalidConfig)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fc, err := scaffold.LoadFile(filepath.Join(dir, scaffold.DefaultConfigFile), true)
	require.NoError(t, err)
	assert.Nil(t, fc)

	_, err = scaffold.LoadFile(filepath.Join(dir, scaffold.DefaultConfigFile), false)
	require.ErrorIs(t, err, scaffold.ErrInvalidConfig)

	path := filepath.Join(dir, scaffold.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("timeout: 1500ms\n"), 0o600))

	fc, err = scaffold.LoadFile(path, true)
	require.NoError(t, err)

	d, err := fc.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s, err := scaffold.Schema()
	require.NoError(t, err)

	assert.Equal(t, []any{"typescript", "javascript"}, s.Properties["language"].Enum)
	assert.Empty(t, s.Required)

	for _, key := range []string{"outDir", "language", "helperImport", "helperDir", "timeout", "endpoint", "command", "width"} {
		assert.Contains(t, s.Properties, key)
	}
}
