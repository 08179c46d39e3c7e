package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/leetgen/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  log.Level
		err   bool
	}{
		"error":       {input: "error", want: log.LevelError},
		"warn":        {input: "warn", want: log.LevelWarn},
		"warning":     {input: "warning", want: log.LevelWarn},
		"info":        {input: "info", want: log.LevelInfo},
		"debug":       {input: "debug", want: log.LevelDebug},
		"upper case":  {input: "DEBUG", want: log.LevelDebug},
		"unknown":     {input: "trace", err: true},
		"empty level": {input: "", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseLevel(tc.input)
			if tc.err {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  log.Format
		err   bool
	}{
		"json":       {input: "json", want: log.FormatJSON},
		"logfmt":     {input: "logfmt", want: log.FormatLogfmt},
		"text":       {input: "Text", want: log.FormatText},
		"unknown":    {input: "yaml", err: true},
		"empty name": {input: "", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseFormat(tc.input)
			if tc.err {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level  log.Level
		format log.Format
		want   []string
		quiet  bool
	}{
		"json": {
			level:  log.LevelDebug,
			format: log.FormatJSON,
			want:   []string{`"msg":"extracted examples"`, `"strategy":"markers"`},
		},
		"logfmt": {
			level:  log.LevelDebug,
			format: log.FormatLogfmt,
			want:   []string{`msg="extracted examples"`, "strategy=markers"},
		},
		"text": {
			level:  log.LevelDebug,
			format: log.FormatText,
			want:   []string{"extracted examples", "strategy=markers"},
		},
		"filtered by level": {
			level:  log.LevelWarn,
			format: log.FormatJSON,
			quiet:  true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			h := log.NewHandler(&buf, tc.level, tc.format)
			require.NotNil(t, h)

			slog.New(h).Debug("extracted examples", slog.String("strategy", "markers"))

			if tc.quiet {
				assert.Empty(t, buf.String())

				return
			}

			for _, want := range tc.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestNewHandler_UnknownFormat(t *testing.T) {
	t.Parallel()

	assert.Nil(t, log.NewHandler(&bytes.Buffer{}, log.LevelInfo, "xml"))
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level  string
		format string
		err    error
	}{
		"valid":          {level: "info", format: "json"},
		"bad level":      {level: "loud", format: "json", err: log.ErrUnknownLogLevel},
		"bad format":     {level: "info", format: "xml", err: log.ErrUnknownLogFormat},
		"both arguments": {level: "", format: "", err: log.ErrInvalidArgument},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.NewHandlerFromStrings(&bytes.Buffer{}, tc.level, tc.format)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.ErrorIs(t, err, log.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)

	cmd := &cobra.Command{Use: "leetgen"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))
	require.NoError(t, cmd.Flags().Parse([]string{"--log-level", "debug", "--log-format", "json"}))

	var buf bytes.Buffer

	h, err := cfg.NewHandler(&buf)
	require.NoError(t, err)

	slog.New(h).Debug("fetching question", slog.String("slug", "two-sum"))

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "fetching question", record["msg"])
	assert.Equal(t, "two-sum", record["slug"])
}

func TestConfig_CustomFlagNames(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cfg.Flags = log.Flags{Level: "verbosity", Format: "output"}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--verbosity", "error"}))

	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}
