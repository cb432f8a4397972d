package drawer_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-phase/pkg/phase"
	"github.com/askiada/go-phase/pkg/phase/drawer"
	"github.com/askiada/go-phase/pkg/phase/measure"
	"github.com/askiada/go-phase/pkg/phase/model"
)

func TestDrawPhases(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	err := drawer.DrawPhases(drawer.NewDOTDrawer(buf), []model.PhaseInfo{
		{Name: "initial", Main: 1},
		{Name: "auth", Position: 1, Before: 2, After: 1},
		{Name: "final", Position: 2},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"initial" -> "auth"`)
	assert.Contains(t, out, `"auth" -> "final"`)
	assert.NotContains(t, out, `"initial" -> "final"`)
	assert.Contains(t, out, `auth\nbefore=2 main=0 after=1`)
}

func TestDrawPhasesDuplicate(t *testing.T) {
	t.Parallel()

	err := drawer.DrawPhases(drawer.NewDOTDrawer(&bytes.Buffer{}), []model.PhaseInfo{
		{Name: "auth"},
		{Name: "auth"},
	})
	require.Error(t, err)
}

func TestAddMeasureUnknownPhase(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("missing")

	d := drawer.NewDOTDrawer(&bytes.Buffer{})
	require.Error(t, d.AddMeasure(msr))
}

func TestRunDrawer(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	msr := measure.NewDefaultMeasure()
	list := phase.NewList[*int](phase.WithRunOption(
		measure.RunMeasure(msr),
		drawer.RunDrawer(drawer.NewDOTDrawer(buf), msr),
	))
	_, err := list.Add("fast", "slow")
	require.NoError(t, err)
	require.NoError(t, list.RegisterHandler("slow", phase.Sync(func(*int) {
		time.Sleep(2 * time.Millisecond)
	})))

	count := 0
	require.NoError(t, list.Run(context.Background(), &count))

	out := buf.String()
	assert.Contains(t, out, `"fast" -> "slow"`)
	assert.Contains(t, out, "fillcolor")
	assert.Contains(t, out, "total: ")

	buf.Reset()
	require.NoError(t, list.Run(context.Background(), &count))
	assert.Equal(t, 1, strings.Count(buf.String(), `"fast" -> "slow"`))
}

func TestRunDrawerFailingRun(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	list := phase.NewList[*int](phase.WithRunOption(drawer.RunDrawer(drawer.NewDOTDrawer(buf), nil)))
	_, err := list.Add("one")
	require.NoError(t, err)
	require.NoError(t, list.RegisterHandler("one", phase.HandlerFunc[*int](func(context.Context, *int) error {
		return assert.AnError
	})))

	count := 0
	require.ErrorIs(t, list.Run(context.Background(), &count), assert.AnError)
	assert.Zero(t, buf.Len())
}
