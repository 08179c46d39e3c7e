package scaffold

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/leetgen/docfmt"
	"go.jacobcolvin.com/leetgen/question"
)

// Flags holds CLI flag names for generator configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	OutDir       string
	Force        string
	Language     string
	HelperImport string
	URLBase      string
	Endpoint     string
	Width        string
}

// Config holds CLI flag values for generator configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags        Flags
	OutDir       string
	Language     string
	HelperImport string
	URLBase      string
	Endpoint     string
	Width        int
	Force        bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		OutDir:       "out-dir",
		Force:        "force",
		Language:     "language",
		HelperImport: "helper-import",
		URLBase:      "url-base",
		Endpoint:     "endpoint",
		Width:        "width",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds generator flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.OutDir, c.Flags.OutDir, "o", "problems",
		"directory generated files are written to")
	flags.BoolVarP(&c.Force, c.Flags.Force, "f", false,
		"overwrite existing files")
	flags.StringVarP(&c.Language, c.Flags.Language, "l", string(TypeScript),
		"output language (typescript, javascript)")
	flags.StringVar(&c.HelperImport, c.Flags.HelperImport, DefaultHelperImport,
		"module specifier helpers are imported from")
	flags.StringVar(&c.URLBase, c.Flags.URLBase, DefaultURLBase,
		"problem URL prefix used in file headers")
	flags.StringVar(&c.Endpoint, c.Flags.Endpoint, question.DefaultEndpoint,
		"GraphQL endpoint problems are fetched from")
	flags.IntVar(&c.Width, c.Flags.Width, docfmt.DefaultWidth,
		"column width of documentation comments")
}

// RegisterCompletions registers shell completions for generator flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Language,
		cobra.FixedCompletions(Languages(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Language, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.OutDir,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.OutDir, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.HelperImport, c.Flags.URLBase, c.Flags.Endpoint, c.Flags.Width} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// ApplyFile copies values from fc into c for every flag that was not set on
// the command line.
func (c *Config) ApplyFile(fc *FileConfig, flags *pflag.FlagSet) error {
	if fc == nil {
		return nil
	}

	set := func(name, value string) error {
		if value == "" || flags.Changed(name) {
			return nil
		}

		return flags.Set(name, value)
	}

	width := ""
	if fc.Width != 0 {
		width = strconv.Itoa(fc.Width)
	}

	for name, value := range map[string]string{
		c.Flags.OutDir:       fc.OutDir,
		c.Flags.Language:     fc.Language,
		c.Flags.HelperImport: fc.HelperImport,
		c.Flags.Endpoint:     fc.Endpoint,
		c.Flags.Width:        width,
	} {
		err := set(name, value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
		}
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config].
func (c *Config) NewGenerator() (*Generator, error) {
	lang, err := ParseLanguage(c.Language)
	if err != nil {
		return nil, err
	}

	if c.Width <= docfmt.PrefixWidth {
		return nil, fmt.Errorf("%w: width must be greater than %d", ErrInvalidOption, docfmt.PrefixWidth)
	}

	opts := []Option{
		WithLanguage(lang),
		WithFormatter(docfmt.New(docfmt.WithWidth(c.Width))),
	}

	if c.HelperImport != "" {
		opts = append(opts, WithHelperImport(c.HelperImport))
	}

	if c.URLBase != "" {
		opts = append(opts, WithURLBase(c.URLBase))
	}

	return NewGenerator(opts...), nil
}

// NewClient creates a [question.Client] for the configured endpoint.
func (c *Config) NewClient(opts ...question.ClientOption) *question.Client {
	return question.NewClient(append([]question.ClientOption{question.WithEndpoint(c.Endpoint)}, opts...)...)
}
