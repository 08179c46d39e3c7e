// Package main provides the CLI entry point for leetgen, a tool that
// scaffolds solution files for coding exercises and runs them.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/leetgen/log"
	"go.jacobcolvin.com/leetgen/question"
	"go.jacobcolvin.com/leetgen/runner"
	"go.jacobcolvin.com/leetgen/scaffold"
	"go.jacobcolvin.com/leetgen/version"
)

const defaultHelperDir = "tools"

// exitCodeError carries a child exit code through cobra without printing.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type app struct {
	ui         *printer
	stdout     io.Writer
	stderr     io.Writer
	logCfg     *log.Config
	genCfg     *scaffold.Config
	runCfg     *runner.Config
	file       *scaffold.FileConfig
	configPath string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		ui:     newPrinter(stdout, stderr),
		stdout: stdout,
		stderr: stderr,
		logCfg: log.NewConfig(),
		genCfg: scaffold.NewConfig(),
		runCfg: runner.NewConfig(),
	}

	rootCmd := a.rootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	a.ui.fail(err)

	return 1
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leetgen",
		Short: "Scaffold and run coding exercise solutions",
		Long: `leetgen fetches a problem, generates a TypeScript or JavaScript solution file
with the reference function stub and one assertion per worked example, and runs
or watches the result.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&a.configPath, "config", scaffold.DefaultConfigFile, "project config file")
	a.logCfg.RegisterFlags(pflags)
	a.genCfg.RegisterFlags(pflags)

	for _, register := range []func(*cobra.Command) error{a.logCfg.RegisterCompletions, a.genCfg.RegisterCompletions} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(a.stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		a.newCommand(),
		a.runCommand(),
		a.watchCommand(),
		a.initCommand(),
		a.schemaCommand(),
		a.versionCommand(),
	)

	return rootCmd
}

// setup installs the log handler and applies the project file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	_, err := a.logCfg.Setup(a.stderr)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	fc, err := scaffold.LoadFile(a.configPath, !flags.Changed("config"))
	if err != nil {
		return err
	}

	if fc == nil {
		return nil
	}

	slog.Debug("loaded config file", slog.String("path", a.configPath))

	a.file = fc

	err = a.genCfg.ApplyFile(fc, flags)
	if err != nil {
		return err
	}

	timeout, err := fc.TimeoutDuration()
	if err != nil {
		return err
	}

	a.runCfg.Apply(flags, timeout, fc.Command)

	return nil
}

func (a *app) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new <url-or-slug>",
		Short: "Generate a solution file for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNew(cmd.Context(), args[0])
		},
	}
}

func (a *app) runNew(ctx context.Context, target string) error {
	slug := question.ParseSlug(target)
	if slug == "" {
		return fmt.Errorf("%w: unable to parse the problem slug from %q", runner.ErrInvalidTarget, target)
	}

	gen, err := a.genCfg.NewGenerator()
	if err != nil {
		return err
	}

	lang, err := scaffold.ParseLanguage(a.genCfg.Language)
	if err != nil {
		return err
	}

	path := (&scaffold.File{Slug: slug, Ext: lang.Ext()}).Path(a.genCfg.OutDir)

	if !a.genCfg.Force {
		_, statErr := os.Stat(path)
		if statErr == nil {
			a.ui.warn("File already exists: %s", path)
			a.ui.hint("Use --force to overwrite (e.g. leetgen new %s --force)", slug)

			return &exitCodeError{code: 1}
		}
	}

	rec, err := a.genCfg.NewClient().Fetch(ctx, slug)
	if err != nil {
		return err
	}

	f, err := gen.Generate(rec)
	if err != nil {
		return err
	}

	path, err = f.Write(a.genCfg.OutDir, a.genCfg.Force)
	if err != nil {
		return err
	}

	a.ui.ok("Created: %s", path)
	a.ui.info("Run: leetgen watch %s", path)

	return nil
}

func (a *app) runnerCommand(use, short string, fn func(ctx context.Context, r *runner.Runner, file string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := scaffold.ParseLanguage(a.genCfg.Language)
			if err != nil {
				return err
			}

			file, err := runner.Resolve(args[0], a.genCfg.OutDir, lang.Ext())
			if err != nil {
				return err
			}

			r, err := a.runCfg.NewRunner(
				runner.WithOutput(a.stdout, a.stderr),
				runner.WithNotify(a.reportRun(relative(file))),
			)
			if err != nil {
				return err
			}

			return fn(cmd.Context(), r, file)
		},
	}

	a.runCfg.RegisterFlags(cmd.Flags())

	err := a.runCfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(a.stderr, "register completions: %v\n", err)
	}

	return cmd
}

func (a *app) runCommand() *cobra.Command {
	return a.runnerCommand("run <file-or-slug>", "Run a solution file once",
		func(ctx context.Context, r *runner.Runner, file string) error {
			code, err := r.Run(ctx, file)
			if err != nil {
				return err
			}

			if code != 0 {
				return &exitCodeError{code: code}
			}

			return nil
		})
}

func (a *app) watchCommand() *cobra.Command {
	return a.runnerCommand("watch <file-or-slug>", "Run a solution file on every change",
		func(ctx context.Context, r *runner.Runner, file string) error {
			a.ui.stdout(styleInfo, "WATCH", "%s", relative(file))

			return r.Watch(ctx, file)
		})
}

func (a *app) reportRun(name string) func(runner.Event) {
	return func(e runner.Event) {
		switch e.Kind {
		case runner.EventStart:
			a.ui.stdout(styleInfo, "RUN", "%s (timeout=%s)", name, e.Timeout)
		case runner.EventTimeout:
			a.ui.stderr(styleError, "\nTIMEOUT", "exceeded %s (%s)", e.Timeout, name)
		case runner.EventChange:
			a.ui.stdout(styleWarn, "\nCHANGED", "%s", name)
		case runner.EventExit:
			slog.Debug("run finished", slog.String("file", name), slog.Int("code", e.Code))
		}
	}
}

func (a *app) initCommand() *cobra.Command {
	root := "."

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the helper library and run harness used by generated files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := defaultHelperDir
			if a.file != nil && a.file.HelperDir != "" {
				dir = a.file.HelperDir
			}

			if len(args) > 0 {
				dir = args[0]
			}

			for _, write := range []func() (string, error){
				func() (string, error) { return scaffold.WriteHelpers(dir, a.genCfg.Force) },
				func() (string, error) { return scaffold.WriteHarness(root, a.genCfg.Force) },
			} {
				path, err := write()
				if err != nil {
					return err
				}

				a.ui.ok("Created: %s", path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", root, "directory the run command starts in, receives "+scaffold.HarnessFile)

	return cmd
}

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the project config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := scaffold.Schema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", scaffold.ErrWriteOutput, err)
			}

			_, err = fmt.Fprintf(a.stdout, "%s\n", out)
			if err != nil {
				return fmt.Errorf("%w: %w", scaffold.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.Get().String())
			if err != nil {
				return fmt.Errorf("%w: %w", scaffold.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func relative(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return rel
}
