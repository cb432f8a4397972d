package drawer

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-phase/pkg/phase/model"
)

// DrawPhases adds phases to d, chained in the given order, and draws them.
func DrawPhases(d Drawer, phases []model.PhaseInfo) error {
	d.Reset()

	for i, phase := range phases {
		err := d.AddPhase(phase)
		if err != nil {
			return err
		}

		if i > 0 {
			err = d.AddLink(phases[i-1].Name, phase.Name)
			if err != nil {
				return err
			}
		}
	}

	err := d.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw phase list")
	}

	return nil
}
