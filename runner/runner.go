package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.jacobcolvin.com/leetgen/question"
)

// Sentinel errors returned by the runner.
var (
	ErrInvalidTarget = errors.New("invalid target")
	ErrInvalidOption = errors.New("invalid option")
	ErrRun           = errors.New("run")
	ErrWatch         = errors.New("watch")
)

const (
	// DefaultTimeout bounds a single run.
	DefaultTimeout = 3 * time.Second
	// ExitTimeout is the exit code reported when a run times out.
	ExitTimeout = 124
	// DebounceDelay is how long file events must settle before a re-run.
	DebounceDelay = 80 * time.Millisecond

	waitDelay = 500 * time.Millisecond
)

// DefaultCommand runs a TypeScript file with the harness written by
// `leetgen init` preloaded.
var DefaultCommand = []string{"pnpm", "-s", "tsx", "--tsconfig", "tsconfig.json", "--import", "./setup.ts"}

// EventKind identifies an [Event].
type EventKind int

// Event kinds.
const (
	// EventStart is sent before the command is spawned.
	EventStart EventKind = iota
	// EventExit is sent after the command exits. Code holds the exit code.
	EventExit
	// EventTimeout is sent when the command is killed for running too long.
	EventTimeout
	// EventChange is sent when a watched file changed and a run is queued.
	EventChange
)

// Event reports progress to the function set with [WithNotify].
type Event struct {
	Path    string
	Timeout time.Duration
	Kind    EventKind
	Code    int
}

// Runner runs solution files.
//
// Create instances with [NewRunner].
type Runner struct {
	stdout  io.Writer
	stderr  io.Writer
	notify  func(Event)
	command []string
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		notify:  func(Event) {},
		command: DefaultCommand,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithCommand sets the command and leading arguments. The file to run is
// appended as the last argument.
func WithCommand(command ...string) Option {
	return func(r *Runner) {
		if len(command) > 0 {
			r.command = command
		}
	}
}

// WithTimeout sets the maximum duration of a single run.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithOutput sets the writers the child's output goes to.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithNotify sets a function called with progress events. During
// [Runner.Watch] it is called from more than one goroutine and must be safe
// for concurrent use.
func WithNotify(fn func(Event)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.notify = fn
		}
	}
}

// Timeout returns the configured run timeout.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// Run executes file once and returns its exit code. The error is non-nil
// only when the command could not be started.
func (r *Runner) Run(ctx context.Context, file string) (int, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := append(slices.Clone(r.command[1:]), file)

	//nolint:gosec // The command comes from user configuration.
	cmd := exec.CommandContext(runCtx, r.command[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.WaitDelay = waitDelay

	r.notify(Event{Kind: EventStart, Path: file, Timeout: r.timeout})

	err := cmd.Run()

	if ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		slog.Debug("run timed out", slog.String("file", file), slog.Duration("timeout", r.timeout))
		r.notify(Event{Kind: EventTimeout, Path: file, Timeout: r.timeout, Code: ExitTimeout})

		return ExitTimeout, nil
	}

	code := 0

	var exitErr *exec.ExitError

	switch {
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
		if code < 0 {
			slog.Warn("process terminated by signal",
				slog.String("file", file),
				slog.String("state", exitErr.String()),
			)

			code = 1
		}

	case errors.Is(err, exec.ErrWaitDelay):
		// The child exited but left its output streams open.

	case err != nil:
		return 1, fmt.Errorf("%w: %s: %w", ErrRun, strings.Join(r.command, " "), err)
	}

	r.notify(Event{Kind: EventExit, Path: file, Code: code})

	return code, nil
}

// Resolve maps target to the file to run. A problem URL or bare slug becomes
// <problemsDir>/<slug>.<ext>; anything that looks like a path is used as is.
// The result is absolute.
func Resolve(target, problemsDir, ext string) (string, error) {
	candidate := question.ParseSlug(target)
	if candidate == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	looksLikePath := strings.HasSuffix(candidate, "."+ext) ||
		strings.ContainsAny(candidate, `/\`) ||
		strings.HasPrefix(candidate, ".")

	if !looksLikePath {
		candidate = filepath.Join(problemsDir, candidate+"."+ext)
	}

	path, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	return path, nil
}
