package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watch runs file, then runs it again whenever it changes, until ctx is
// cancelled. Cancellation is not an error.
func (r *Runner) Watch(ctx context.Context, file string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}

	defer w.Close() //nolint:errcheck // Close errors are irrelevant once watching stops.

	// Watch the directory so editors that replace the file keep triggering.
	err = w.Add(filepath.Dir(file))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}

	// A buffer of one holds at most one queued run.
	queue := make(chan struct{}, 1)
	request := func() {
		select {
		case queue <- struct{}{}:
		default:
		}
	}

	request()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.runLoop(gctx, file, queue)
	})
	g.Go(func() error {
		return r.eventLoop(gctx, w, file, request)
	})

	return g.Wait() //nolint:wrapcheck // Loop errors are already wrapped.
}

func (r *Runner) runLoop(ctx context.Context, file string, queue <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-queue:
			_, err := r.Run(ctx, file)
			if err != nil {
				slog.Error("run failed", slog.String("file", file), slog.Any("error", err))
			}
		}
	}
}

func (r *Runner) eventLoop(ctx context.Context, w *fsnotify.Watcher, file string, request func()) error {
	base := filepath.Base(file)

	var (
		timer   *time.Timer
		settled <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != base ||
				!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			slog.Debug("file event", slog.String("file", event.Name), slog.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(DebounceDelay)
			} else {
				timer.Reset(DebounceDelay)
			}

			settled = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("%w: %w", ErrWatch, err)

		case <-settled:
			settled = nil

			r.notify(Event{Kind: EventChange, Path: file})
			request()
		}
	}
}
