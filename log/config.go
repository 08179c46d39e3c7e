package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds the names of the logging flags.
type Flags struct {
	Level  string
	Format string
}

// Config binds the log level and format to CLI flags.
//
// Create instances with [NewConfig], register flags with
// [Config.RegisterFlags] and call [Config.Setup] once flags are parsed.
type Config struct {
	Flags  Flags
	Level  string
	Format string
}

// NewConfig returns a [Config] using the "log-level" and "log-format" flag
// names, preset to info level text output.
func NewConfig() *Config {
	return &Config{
		Flags:  Flags{Level: "log-level", Format: "log-format"},
		Level:  string(LevelInfo),
		Format: string(FormatText),
	}
}

// RegisterFlags adds the logging flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		"log level ("+strings.Join(GetAllLevelStrings(), ", ")+")")
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		"log format ("+strings.Join(GetAllFormatStrings(), ", ")+")")
}

// RegisterCompletions completes the logging flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	}

	for name, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// NewHandler creates a [Handler] writing to w with the configured level and
// format.
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}

// Setup creates a logger writing to w and installs it as the [slog]
// default.
func (c *Config) Setup(w io.Writer) (*slog.Logger, error) {
	h, err := c.NewHandler(w)
	if err != nil {
		return nil, err
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger, nil
}
