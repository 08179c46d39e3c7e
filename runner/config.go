package runner

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for runner configuration.
type Flags struct {
	Timeout string
	Command string
}

// Config holds CLI flag values for runner configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRunner] to create a [Runner].
type Config struct {
	Flags   Flags
	Command []string
	Timeout time.Duration
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{Flags: Flags{Timeout: "timeout", Command: "command"}}
}

// RegisterFlags adds runner flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.DurationVarP(&c.Timeout, c.Flags.Timeout, "t", DefaultTimeout,
		"maximum duration of a single run")
	flags.StringArrayVar(&c.Command, c.Flags.Command, DefaultCommand,
		"command and leading arguments used to run a file (repeat for each argument)")
}

// RegisterCompletions registers shell completions for runner flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Timeout,
		cobra.FixedCompletions([]string{"1s", "3s", "10s"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Timeout, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Command,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Command, err)
	}

	return nil
}

// Apply sets the timeout and command from a project file unless the
// corresponding flag was given. Zero values are ignored.
func (c *Config) Apply(flags *pflag.FlagSet, timeout time.Duration, command []string) {
	if timeout > 0 && !flags.Changed(c.Flags.Timeout) {
		c.Timeout = timeout
	}

	if len(command) > 0 && !flags.Changed(c.Flags.Command) {
		c.Command = command
	}
}

// NewRunner creates a [Runner] using this [Config].
func (c *Config) NewRunner(opts ...Option) (*Runner, error) {
	if c.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidOption, c.Timeout)
	}

	if len(c.Command) == 0 || c.Command[0] == "" {
		return nil, fmt.Errorf("%w: empty command", ErrInvalidOption)
	}

	base := []Option{WithTimeout(c.Timeout), WithCommand(c.Command...)}

	return NewRunner(append(base, opts...)...), nil
}
