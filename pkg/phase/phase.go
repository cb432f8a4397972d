package phase

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-phase/pkg/phase/model"
)

// Phase is a named stage holding before, main and after handlers.
type Phase[C any] struct {
	id      string
	buckets [3][]Handler[C]
}

// NewPhase creates a phase that does not belong to any list yet.
func NewPhase[C any](id string, handlers ...Handler[C]) (*Phase[C], error) {
	p := &Phase[C]{id: id}

	err := p.Use(handlers...)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// ID returns the phase name.
func (p *Phase[C]) ID() string {
	return p.id
}

// Register appends handlers to bucket.
func (p *Phase[C]) Register(bucket Bucket, handlers ...Handler[C]) error {
	if !bucket.Valid() {
		return errors.Wrapf(ErrInvalidBucket, "bucket %d", bucket)
	}

	for _, h := range handlers {
		if h == nil {
			return errors.Wrapf(ErrNilHandler, "phase %q", p.id)
		}
	}

	p.buckets[bucket] = append(p.buckets[bucket], handlers...)

	return nil
}

// Use appends handlers to the main bucket.
func (p *Phase[C]) Use(handlers ...Handler[C]) error {
	return p.Register(MainBucket, handlers...)
}

// UseBefore appends handlers to the before bucket.
func (p *Phase[C]) UseBefore(handlers ...Handler[C]) error {
	return p.Register(BeforeBucket, handlers...)
}

// UseAfter appends handlers to the after bucket.
func (p *Phase[C]) UseAfter(handlers ...Handler[C]) error {
	return p.Register(AfterBucket, handlers...)
}

// Handlers returns a copy of the main bucket.
func (p *Phase[C]) Handlers() []Handler[C] {
	return p.snapshot(MainBucket)
}

// BeforeHandlers returns a copy of the before bucket.
func (p *Phase[C]) BeforeHandlers() []Handler[C] {
	return p.snapshot(BeforeBucket)
}

// AfterHandlers returns a copy of the after bucket.
func (p *Phase[C]) AfterHandlers() []Handler[C] {
	return p.snapshot(AfterBucket)
}

func (p *Phase[C]) snapshot(bucket Bucket) []Handler[C] {
	res := make([]Handler[C], len(p.buckets[bucket]))
	copy(res, p.buckets[bucket])

	return res
}

// Info describes the phase at the given list position.
func (p *Phase[C]) Info(position int) model.PhaseInfo {
	return model.PhaseInfo{
		Name:     p.id,
		Position: position,
		Before:   len(p.buckets[BeforeBucket]),
		Main:     len(p.buckets[MainBucket]),
		After:    len(p.buckets[AfterBucket]),
	}
}

// Run executes the before, main and after handlers in order.
// It returns on the first error, which is a *HandlerError unless ctx was done.
func (p *Phase[C]) Run(ctx context.Context, c C) error {
	return p.run(ctx, c, nil)
}

type handlerDoneFn func(bucket Bucket, elapsed time.Duration) error

func (p *Phase[C]) run(ctx context.Context, c C, onDone handlerDoneFn) error {
	for _, bucket := range model.Buckets {
		// handlers registered while the bucket runs are kept for the next run
		handlers := p.buckets[bucket]
		for idx, h := range handlers {
			err := ctx.Err()
			if err != nil {
				return errors.Wrapf(err, "phase %q: %s handler %d", p.id, bucket, idx)
			}

			start := time.Now()

			err = h.Handle(ctx, c)
			if err != nil {
				return &HandlerError{Phase: p.id, Bucket: bucket, Index: idx, Err: err}
			}

			if onDone != nil {
				err = onDone(bucket, time.Since(start))
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}
