package phase

// ZipMerge weaves names into the list and returns the phases it created.
//
// Names already in the list act as anchors. A new name is inserted right after the last anchor seen, before the
// phases of the list the incoming sequence does not mention. Phases missing from names keep their position
// relative to the anchors. Merging [initial auth files final] with [initial preauth auth final last] gives
// [initial preauth auth files final last].
func (l *List[C]) ZipMerge(names ...string) []*Phase[C] {
	var added []*Phase[C]

	cursor := 0

	for _, name := range names {
		if name == "" {
			continue
		}

		idx := l.indexOf(name)

		switch {
		case idx >= cursor:
			cursor = idx + 1
		case idx >= 0:
			// already ordered before the current anchor
		default:
			p := &Phase[C]{id: name}
			l.insertAt(cursor, p)
			added = append(added, p)
			cursor++
		}
	}

	return added
}
