package measure

import (
	"sync"
	"time"
)

type DefaultMeasure struct {
	mu    sync.Mutex
	total time.Duration
	// Phases is keyed by phase name.
	Phases map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Phases: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt := &DefaultMetric{}
	m.Phases[name] = mt

	return mt
}

// GetMetric returns nil when no metric was added for name.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Phases[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[string]Metric, len(m.Phases))
	for name, mt := range m.Phases {
		res[name] = mt
	}

	return res
}

func (m *DefaultMeasure) SetTotalDuration(total time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total = total
}

func (m *DefaultMeasure) GetTotalDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.total
}

// Reset drops every metric collected so far.
func (m *DefaultMeasure) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Phases = make(map[string]Metric)
	m.total = 0
}

var _ Measure = (*DefaultMeasure)(nil)
