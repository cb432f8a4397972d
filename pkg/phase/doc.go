// Package phase provides an ordered list of named phases executed one after the other.
//
// A phase holds three ordered buckets of handlers: before, main and after. Running a list executes every phase in
// list order, and inside a phase the before handlers, then the main handlers, then the after handlers, each in
// registration order. Exactly one handler runs at a time and every handler receives the same caller owned value, so
// a handler always observes the mutations made by the handlers that ran before it.
//
// Phases can be added at the end of a list, at an index, before or after an existing phase, or woven into the list
// with ZipMerge. ZipMerge lets independently written orderings (for example one per plugin) agree on a single order:
// phases known by both sequences keep their relative order and new phases land next to the neighbours they were
// declared with.
//
// Handlers are registered against a phase name. A ":before" or ":after" suffix routes the handler to the matching
// bucket:
//
//	list := phase.NewList[*state]()
//	_, _ = list.Add("initial", "auth", "routes")
//	_ = list.RegisterHandler("auth:before", phase.Sync(func(s *state) { s.checked = true }))
//	err := list.Run(ctx, &state{})
//
// The run stops on the first handler error and no further handler is executed. A list must not be mutated while it
// is running.
package phase
