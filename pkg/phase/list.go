package phase

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/askiada/go-phase/pkg/phase/model"
)

// List is an ordered list of uniquely named phases. The order of the list is the execution order.
//
// A List is meant to be built by single threaded setup code. It must not be mutated while Run is in progress.
type List[C any] struct {
	phases  []*Phase[C]
	logger  *slog.Logger
	runOpts []model.RunOption
}

// NewList creates an empty list.
func NewList[C any](opts ...ListOption) *List[C] {
	cfg := &listConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &List[C]{
		logger:  cfg.logger,
		runOpts: cfg.runOpts,
	}
}

// Entry is either a phase name or a phase instance to add to a list.
type Entry[C any] struct {
	name  string
	phase *Phase[C]
}

// ByName is an entry creating a new empty phase.
func ByName[C any](name string) Entry[C] {
	return Entry[C]{name: name}
}

// ByPhase is an entry inserting p as is, with the handlers it already holds.
func ByPhase[C any](p *Phase[C]) Entry[C] {
	return Entry[C]{phase: p}
}

func (e Entry[C]) resolve() (*Phase[C], error) {
	if e.phase != nil {
		return e.phase, nil
	}

	if e.name == "" {
		return nil, ErrEmptyName
	}

	return &Phase[C]{id: e.name}, nil
}

// Len returns the number of phases.
func (l *List[C]) Len() int {
	return len(l.phases)
}

func (l *List[C]) indexOf(name string) int {
	for idx, p := range l.phases {
		if p.id == name {
			return idx
		}
	}

	return -1
}

// Find returns the phase called name, or nil.
func (l *List[C]) Find(name string) *Phase[C] {
	idx := l.indexOf(name)
	if idx < 0 {
		return nil
	}

	return l.phases[idx]
}

// FindOrAdd returns the phase called name, appending a new one when it does not exist.
func (l *List[C]) FindOrAdd(name string) *Phase[C] {
	if p := l.Find(name); p != nil {
		return p
	}

	p := &Phase[C]{id: name}
	l.phases = append(l.phases, p)

	return p
}

// Add appends new phases with the given names.
func (l *List[C]) Add(names ...string) ([]*Phase[C], error) {
	entries := make([]Entry[C], len(names))
	for i, name := range names {
		entries[i] = ByName[C](name)
	}

	return l.AddEntries(entries...)
}

// AddPhase appends phases keeping the handlers they already hold.
func (l *List[C]) AddPhase(phases ...*Phase[C]) error {
	entries := make([]Entry[C], len(phases))
	for i, p := range phases {
		if p == nil {
			return ErrNilPhase
		}

		entries[i] = ByPhase(p)
	}

	_, err := l.AddEntries(entries...)

	return err
}

// AddEntries appends entries in order. Nothing is added when one of them is a duplicate.
func (l *List[C]) AddEntries(entries ...Entry[C]) ([]*Phase[C], error) {
	added := make([]*Phase[C], 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		p, err := entry.resolve()
		if err != nil {
			return nil, err
		}

		_, dup := seen[p.id]
		if dup || l.indexOf(p.id) >= 0 {
			return nil, duplicatePhaseError(p.id)
		}

		seen[p.id] = struct{}{}
		added = append(added, p)
	}

	l.phases = append(l.phases, added...)

	return added, nil
}

// AddAt inserts a new phase at index, shifting the following phases.
// index must be between 0 and Len included.
func (l *List[C]) AddAt(index int, name string) (*Phase[C], error) {
	if index < 0 || index > len(l.phases) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, len(l.phases))
	}

	return l.insert(index, name)
}

// AddAfter inserts a new phase right after the phase called after.
func (l *List[C]) AddAfter(after, name string) (*Phase[C], error) {
	idx := l.indexOf(after)
	if idx < 0 {
		return nil, unknownPhaseError(after)
	}

	return l.insert(idx+1, name)
}

// AddBefore inserts a new phase right before the phase called before.
func (l *List[C]) AddBefore(before, name string) (*Phase[C], error) {
	idx := l.indexOf(before)
	if idx < 0 {
		return nil, unknownPhaseError(before)
	}

	return l.insert(idx, name)
}

func (l *List[C]) insert(index int, name string) (*Phase[C], error) {
	p, err := ByName[C](name).resolve()
	if err != nil {
		return nil, err
	}

	if l.indexOf(name) >= 0 {
		return nil, duplicatePhaseError(name)
	}

	l.insertAt(index, p)

	return p, nil
}

func (l *List[C]) insertAt(index int, p *Phase[C]) {
	l.phases = append(l.phases, nil)
	copy(l.phases[index+1:], l.phases[index:])
	l.phases[index] = p
}

// Remove removes and returns the phase called name. It returns nil when there is no such phase.
func (l *List[C]) Remove(name string) *Phase[C] {
	idx := l.indexOf(name)
	if idx < 0 {
		return nil
	}

	p := l.phases[idx]
	l.phases = append(l.phases[:idx], l.phases[idx+1:]...)

	return p
}

// ToArray returns the phases in order. The returned slice can be modified freely.
func (l *List[C]) ToArray() []*Phase[C] {
	res := make([]*Phase[C], len(l.phases))
	copy(res, l.phases)

	return res
}

// PhaseNames returns the phase names in order.
func (l *List[C]) PhaseNames() []string {
	res := make([]string, len(l.phases))
	for i, p := range l.phases {
		res[i] = p.id
	}

	return res
}

// PhaseInfos describes every phase in order.
func (l *List[C]) PhaseInfos() []model.PhaseInfo {
	res := make([]model.PhaseInfo, len(l.phases))
	for i, p := range l.phases {
		res[i] = p.Info(i)
	}

	return res
}

// RegisterHandler appends handler to the bucket designated by target, see ParseTarget.
// The phase must already exist.
func (l *List[C]) RegisterHandler(target string, handler Handler[C]) error {
	tgt, err := ParseTarget(target)
	if err != nil {
		return err
	}

	p := l.Find(tgt.Phase)
	if p == nil {
		return unknownPhaseError(tgt.Phase)
	}

	return p.Register(tgt.Bucket, handler)
}
