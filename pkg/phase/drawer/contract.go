package drawer

import (
	"github.com/askiada/go-phase/pkg/phase/measure"
	"github.com/askiada/go-phase/pkg/phase/model"
)

// Drawer is an interface that defines the methods for drawing a phase list.
type Drawer interface {
	// AddPhase adds a phase to the drawer.
	AddPhase(phase model.PhaseInfo) error
	// AddLink adds a link from a phase to the phase running after it.
	AddLink(fromPhase, toPhase string) error
	// AddMeasure decorates the phases with the durations of measure.
	AddMeasure(measure measure.Measure) error
	// Draw writes the graph.
	Draw() error
	// Reset drops every phase and link.
	Reset()
}
