package phase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipMerge(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		existing []string
		incoming []string
		expected []string
		added    []string
	}{
		"preserves both orders": {
			existing: []string{"initial", "session", "auth", "routes", "files", "final"},
			incoming: []string{"initial", "postinit", "preauth", "auth", "routes", "subapps", "final", "last"},
			expected: []string{"initial", "postinit", "preauth", "session", "auth", "routes", "subapps", "files", "final", "last"},
			added:    []string{"postinit", "preauth", "subapps", "last"},
		},
		"starts adding from the start": {
			existing: []string{"start", "end"},
			incoming: []string{"first", "end", "last"},
			expected: []string{"first", "start", "end", "last"},
			added:    []string{"first", "last"},
		},
		"empty list": {
			existing: []string{},
			incoming: []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
			added:    []string{"a", "b", "c"},
		},
		"nothing new": {
			existing: []string{"a", "b", "c"},
			incoming: []string{"a", "c"},
			expected: []string{"a", "b", "c"},
		},
		"empty incoming": {
			existing: []string{"a", "b"},
			incoming: []string{},
			expected: []string{"a", "b"},
		},
		"new name before unmentioned tail": {
			existing: []string{"initial", "auth", "files", "final"},
			incoming: []string{"initial", "preauth", "auth", "final", "last"},
			expected: []string{"initial", "preauth", "auth", "files", "final", "last"},
			added:    []string{"preauth", "last"},
		},
		"anchor seen out of order": {
			existing: []string{"a", "b", "c"},
			incoming: []string{"c", "x", "a", "y"},
			expected: []string{"a", "b", "c", "x", "y"},
			added:    []string{"x", "y"},
		},
		"repeated incoming name": {
			existing: []string{"a"},
			incoming: []string{"x", "x", "a"},
			expected: []string{"x", "a"},
			added:    []string{"x"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			list := newList(t, tc.existing...)
			added := list.ZipMerge(tc.incoming...)
			assert.Equal(t, tc.expected, list.PhaseNames())

			gotAdded := []string{}
			for _, p := range added {
				gotAdded = append(gotAdded, p.ID())
				assert.Same(t, p, list.Find(p.ID()))
			}

			if tc.added == nil {
				assert.Empty(t, gotAdded)
			} else {
				assert.Equal(t, tc.added, gotAdded)
			}
		})
	}
}

func TestZipMergeKeepsHandlers(t *testing.T) {
	t.Parallel()

	h := &noopHandler{}
	list := newList(t, "start", "end")
	require.NoError(t, list.RegisterHandler("end:after", h))

	list.ZipMerge("start", "middle", "end")
	assert.Equal(t, []string{"start", "middle", "end"}, list.PhaseNames())
	require.Len(t, list.Find("end").AfterHandlers(), 1)
	assert.Same(t, h, list.Find("end").AfterHandlers()[0])
}

func TestZipMergeTwice(t *testing.T) {
	t.Parallel()

	list := newList(t, "initial", "final")
	list.ZipMerge("initial", "auth", "final")
	list.ZipMerge("initial", "auth", "routes", "final")
	list.ZipMerge("initial", "auth", "routes", "final")
	assert.Equal(t, []string{"initial", "auth", "routes", "final"}, list.PhaseNames())
}
