package phase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-phase/pkg/phase"
)

func TestNewPhase(t *testing.T) {
	t.Parallel()

	h1, h2 := &noopHandler{id: 1}, &noopHandler{id: 2}
	p, err := phase.NewPhase[*testContext]("auth", h1, h2)
	require.NoError(t, err)
	assert.Equal(t, "auth", p.ID())

	handlers := p.Handlers()
	require.Len(t, handlers, 2)
	assert.Same(t, h1, handlers[0])
	assert.Same(t, h2, handlers[1])
}

func TestNewPhaseNilHandler(t *testing.T) {
	t.Parallel()

	_, err := phase.NewPhase[*testContext]("auth", nil)
	require.ErrorIs(t, err, phase.ErrNilHandler)
}

func TestPhaseRegisterInvalidBucket(t *testing.T) {
	t.Parallel()

	p, err := phase.NewPhase[*testContext]("auth")
	require.NoError(t, err)
	require.ErrorIs(t, p.Register(phase.Bucket(7), &noopHandler{}), phase.ErrInvalidBucket)
	require.ErrorIs(t, p.Register(phase.Bucket(-1), &noopHandler{}), phase.ErrInvalidBucket)
}

func TestPhaseHandlersSnapshot(t *testing.T) {
	t.Parallel()

	p, err := phase.NewPhase[*testContext]("auth", &noopHandler{})
	require.NoError(t, err)

	handlers := p.Handlers()
	handlers[0] = nil

	require.Len(t, p.Handlers(), 1)
	assert.NotNil(t, p.Handlers()[0])
}

func TestPhaseRun(t *testing.T) {
	t.Parallel()

	p, err := phase.NewPhase[*testContext]("auth")
	require.NoError(t, err)
	require.NoError(t, p.UseAfter(record("after")))
	require.NoError(t, p.Use(record("main")))
	require.NoError(t, p.UseBefore(record("before")))

	c := &testContext{}
	require.NoError(t, p.Run(context.Background(), c))
	assert.Equal(t, []string{"before", "main", "after"}, c.called)
}

func TestPhaseRunError(t *testing.T) {
	t.Parallel()

	p, err := phase.NewPhase[*testContext]("auth")
	require.NoError(t, err)
	require.NoError(t, p.UseBefore(record("before"), failing(assert.AnError)))
	require.NoError(t, p.Use(record("main")))

	c := &testContext{}
	err = p.Run(context.Background(), c)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), `phase "auth": before handler 1`)
	assert.Equal(t, []string{"before"}, c.called)
}

func TestPhaseInfo(t *testing.T) {
	t.Parallel()

	p, err := phase.NewPhase[*testContext]("auth", &noopHandler{})
	require.NoError(t, err)
	require.NoError(t, p.UseAfter(&noopHandler{}, &noopHandler{}))

	info := p.Info(3)
	assert.Equal(t, "auth", info.Name)
	assert.Equal(t, 3, info.Position)
	assert.Equal(t, 0, info.Before)
	assert.Equal(t, 1, info.Main)
	assert.Equal(t, 2, info.After)
}
