package phase

import (
	"context"
	"sync"
)

// Handler is a unit of work executed by a phase.
// Handle must return only once the work is complete.
type Handler[C any] interface {
	Handle(ctx context.Context, c C) error
}

// HandlerFunc adapts a blocking function to a Handler.
type HandlerFunc[C any] func(ctx context.Context, c C) error

func (f HandlerFunc[C]) Handle(ctx context.Context, c C) error {
	return f(ctx, c)
}

// Sync adapts a function that cannot fail.
func Sync[C any](fn func(c C)) Handler[C] {
	return HandlerFunc[C](func(_ context.Context, c C) error {
		fn(c)

		return nil
	})
}

// Async adapts a function that starts some work and reports its completion on the returned channel.
// The handler completes on the first value received or when the channel is closed, which counts as success.
// A nil channel means the work already completed.
func Async[C any](fn func(ctx context.Context, c C) <-chan error) Handler[C] {
	return HandlerFunc[C](func(ctx context.Context, c C) error {
		done := fn(ctx, c)
		if done == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-done:
			return err
		}
	})
}

// Callback adapts a continuation passing function. The handler completes when fn calls done.
// Only the first call to done is taken into account.
func Callback[C any](fn func(ctx context.Context, c C, done func(error))) Handler[C] {
	return HandlerFunc[C](func(ctx context.Context, c C) error {
		result := make(chan error, 1)

		var once sync.Once

		fn(ctx, c, func(err error) {
			once.Do(func() {
				result <- err
			})
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-result:
			return err
		}
	})
}
