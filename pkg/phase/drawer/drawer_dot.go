package drawer

import (
	"fmt"
	"io"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-phase/pkg/phase/measure"
	"github.com/askiada/go-phase/pkg/phase/model"
)

// DOTDrawer writes the phase order as a Graphviz DOT graph.
type DOTDrawer struct {
	graph graph.Graph[string, string]
	wrt   io.Writer
	total time.Duration
}

// NewDOTDrawer creates a drawer writing to wrt.
func NewDOTDrawer(wrt io.Writer) *DOTDrawer {
	return &DOTDrawer{
		graph: newGraph(),
		wrt:   wrt,
	}
}

func newGraph() graph.Graph[string, string] {
	return graph.New(graph.StringHash, graph.Directed())
}

func (d *DOTDrawer) Reset() {
	d.graph = newGraph()
	d.total = 0
}

// AddPhase adds a box labelled with the phase name and its handler counts.
func (d *DOTDrawer) AddPhase(phase model.PhaseInfo) error {
	label := fmt.Sprintf(`%s\nbefore=%d main=%d after=%d`, phase.Name, phase.Before, phase.Main, phase.After)

	err := d.graph.AddVertex(phase.Name,
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("label", label),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to add phase %s", phase.Name)
	}

	return nil
}

// AddLink adds an edge between two phases already added.
func (d *DOTDrawer) AddLink(fromPhase, toPhase string) error {
	err := d.graph.AddEdge(fromPhase, toPhase)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", fromPhase, toPhase)
	}

	return nil
}

const maxRGB = 240

// AddMeasure writes the total duration of every measured phase next to it and fills it with a colour going from
// blue for the fastest phase to red for the slowest.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	var slowest time.Duration

	for _, mt := range metrics {
		if mt.GetTotalDuration() > slowest {
			slowest = mt.GetTotalDuration()
		}
	}

	for name, mt := range metrics {
		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrapf(err, "unable to get phase %s properties", name)
		}

		fraction := 0.0
		if slowest > 0 {
			fraction = float64(mt.GetTotalDuration()) / float64(slowest)
		}

		red := maxRGB * fraction

		colour, err := colors.RGB(uint8(red), 0, uint8(maxRGB-red)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		properties.Attributes["xlabel"] = mt.GetTotalDuration().String()
		properties.Attributes["style"] = "filled"
		properties.Attributes["fontcolor"] = "white"
		properties.Attributes["fillcolor"] = colour.ToHEX().String()
	}

	d.total = msr.GetTotalDuration()

	return nil
}

// Draw writes the DOT description of the graph.
func (d *DOTDrawer) Draw() error {
	total := ""
	if d.total > 0 {
		total = "total: " + d.total.String()
	}

	err := draw.DOT(d.graph, d.wrt,
		draw.GraphAttribute("rankdir", "LR"),
		draw.GraphAttribute("label", total),
	)
	if err != nil {
		return errors.Wrap(err, "unable to draw phases")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
