package phase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-phase/pkg/phase/model"
)

// Run executes every phase in list order and returns the first error.
// It returns only once the last after handler of the last phase completed or a handler failed.
func (l *List[C]) Run(ctx context.Context, c C) error {
	if l == nil {
		return ErrListMustBeSet
	}

	phases := l.ToArray()
	start := time.Now()

	l.logger.DebugContext(ctx, "run started", slog.Int("phases", len(phases)))

	for _, opt := range l.runOpts {
		err := opt.BeforeRun()
		if err != nil {
			return errors.Wrap(err, "unable to run before run hook")
		}
	}

	for pos, p := range phases {
		err := l.runPhase(ctx, pos, p, c)
		if err != nil {
			l.logger.ErrorContext(ctx, "run failed", slog.String("phase", p.id), slog.Any("error", err))

			return err
		}
	}

	return l.finishRun(ctx, time.Since(start))
}

func (l *List[C]) runPhase(ctx context.Context, pos int, p *Phase[C], c C) error {
	info := p.Info(pos)
	start := time.Now()

	l.logger.DebugContext(ctx, "phase started",
		slog.String("phase", info.Name),
		slog.Int("before", info.Before),
		slog.Int("main", info.Main),
		slog.Int("after", info.After),
	)

	for _, opt := range l.runOpts {
		err := opt.BeforePhase(&info)
		if err != nil {
			return errors.Wrapf(err, "unable to run before phase hook for %q", info.Name)
		}
	}

	err := p.run(ctx, c, func(bucket model.Bucket, elapsed time.Duration) error {
		for _, opt := range l.runOpts {
			err := opt.OnHandler(&info, bucket, elapsed)
			if err != nil {
				return errors.Wrapf(err, "unable to run handler hook for %q", info.Name)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	for _, opt := range l.runOpts {
		err := opt.AfterPhase(&info, elapsed)
		if err != nil {
			return errors.Wrapf(err, "unable to run after phase hook for %q", info.Name)
		}
	}

	l.logger.DebugContext(ctx, "phase finished", slog.String("phase", info.Name), slog.Duration("elapsed", elapsed))

	return nil
}

func (l *List[C]) finishRun(ctx context.Context, total time.Duration) error {
	for _, opt := range l.runOpts {
		err := opt.AfterRun(total)
		if err != nil {
			return errors.Wrap(err, "unable to run after run hook")
		}
	}

	l.logger.DebugContext(ctx, "run finished", slog.Duration("elapsed", total))

	return nil
}

// Execution is a run started in the background.
type Execution struct {
	grp  errgroup.Group
	done chan struct{}
}

// Start runs the list on its own goroutine. Handlers still run one at a time, in order.
func (l *List[C]) Start(ctx context.Context, c C) *Execution {
	exec := &Execution{done: make(chan struct{})}
	exec.grp.Go(func() error {
		defer close(exec.done)

		return l.Run(ctx, c)
	})

	return exec
}

// Done is closed once the run is over.
func (e *Execution) Done() <-chan struct{} {
	return e.done
}

// Wait blocks until the run is over and returns its result. It can be called several times.
func (e *Execution) Wait() error {
	return e.grp.Wait()
}

// RunWithCallback starts the list and calls done exactly once with the result of the run.
func (l *List[C]) RunWithCallback(ctx context.Context, c C, done func(error)) {
	exec := l.Start(ctx, c)

	go func() {
		err := exec.Wait()
		if done != nil {
			done(err)
		}
	}()
}
