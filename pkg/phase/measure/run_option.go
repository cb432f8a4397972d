package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-phase/pkg/phase/model"
)

var ErrMissingMetric = errors.New("missing metric")

type runMeasure struct {
	Measure
}

func (rm *runMeasure) BeforeRun() error {
	rm.Reset()

	return nil
}

func (rm *runMeasure) BeforePhase(phase *model.PhaseInfo) error {
	rm.AddMetric(phase.Name)

	return nil
}

func (rm *runMeasure) OnHandler(phase *model.PhaseInfo, bucket model.Bucket, elapsed time.Duration) error {
	mt := rm.GetMetric(phase.Name)
	if mt == nil {
		return errors.Wrapf(ErrMissingMetric, "phase %q", phase.Name)
	}

	mt.AddHandlerDuration(bucket, elapsed)

	return nil
}

func (rm *runMeasure) AfterPhase(phase *model.PhaseInfo, elapsed time.Duration) error {
	mt := rm.GetMetric(phase.Name)
	if mt == nil {
		return errors.Wrapf(ErrMissingMetric, "phase %q", phase.Name)
	}

	mt.SetTotalDuration(elapsed)

	return nil
}

func (rm *runMeasure) AfterRun(totalDuration time.Duration) error {
	rm.SetTotalDuration(totalDuration)

	return nil
}

// RunMeasure records the timings of every run into measure. Each run starts from an empty measure.
func RunMeasure(measure Measure) model.RunOption {
	return &runMeasure{measure}
}
