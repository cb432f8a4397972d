package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-phase/pkg/phase/measure"
	"github.com/askiada/go-phase/pkg/phase/model"
)

type runDrawer struct {
	Drawer
	m    measure.Measure
	prev string
}

func (rd *runDrawer) BeforeRun() error {
	rd.Reset()
	rd.prev = ""

	return nil
}

func (rd *runDrawer) BeforePhase(phase *model.PhaseInfo) error {
	err := rd.AddPhase(*phase)
	if err != nil {
		return err
	}

	if rd.prev != "" {
		err = rd.AddLink(rd.prev, phase.Name)
		if err != nil {
			return err
		}
	}

	rd.prev = phase.Name

	return nil
}

func (rd *runDrawer) OnHandler(phase *model.PhaseInfo, bucket model.Bucket, elapsed time.Duration) error {
	return nil
}

func (rd *runDrawer) AfterPhase(phase *model.PhaseInfo, elapsed time.Duration) error {
	return nil
}

func (rd *runDrawer) AfterRun(totalDuration time.Duration) error {
	if rd.m != nil {
		err := rd.AddMeasure(rd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := rd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw phases")
	}

	return nil
}

// RunDrawer draws the phases executed by every successful run. When measure is not nil, it must be registered
// before the drawer so that its metrics are complete when the graph is drawn.
func RunDrawer(drawer Drawer, measure measure.Measure) model.RunOption {
	return &runDrawer{Drawer: drawer, m: measure}
}
