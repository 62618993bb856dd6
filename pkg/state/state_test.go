// Test Type: Unit Test
// Description: Tests for ServerState bookkeeping and the state diff

package state_test

import (
	"testing"

	"github.com/arthur-debert/mineflake/pkg/state"
	"github.com/stretchr/testify/assert"
)

func TestServerStateAdd(t *testing.T) {
	s := state.New("/srv/a", "/srv/b")
	s.Add("/srv/a")
	s.Add("/srv/c")

	assert.Equal(t, []string{"/srv/a", "/srv/b", "/srv/c"}, s.Paths())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("/srv/b"))
	assert.False(t, s.Contains("/srv/B"), "comparison is case sensitive")
	assert.False(t, s.Contains("/srv/./b"), "paths are not cleaned")
}

func TestServerStateZeroValue(t *testing.T) {
	var s state.ServerState
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("x"))

	s.Add("x")
	assert.True(t, s.Contains("x"))
}

func TestServerStatePathsIsACopy(t *testing.T) {
	s := state.New("a")
	got := s.Paths()
	got[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.Paths())
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		current  *state.ServerState
		previous *state.ServerState
		want     []string
	}{
		{
			name:     "removed_paths",
			current:  state.New("a", "b", "c", "d"),
			previous: state.New("a", "b", "c", "d", "e", "f"),
			want:     []string{"e", "f"},
		},
		{
			name:     "identical_states",
			current:  state.New("a", "b", "c", "d"),
			previous: state.New("a", "b", "c", "d"),
			want:     nil,
		},
		{
			name:     "both_empty",
			current:  state.New(),
			previous: state.New(),
			want:     nil,
		},
		{
			name:     "empty_previous",
			current:  state.New("a", "b"),
			previous: state.New(),
			want:     nil,
		},
		{
			name:     "empty_current",
			current:  state.New(),
			previous: state.New("a", "b"),
			want:     []string{"a", "b"},
		},
		{
			name:     "nil_states",
			current:  nil,
			previous: state.New("a"),
			want:     []string{"a"},
		},
		{
			name:     "keeps_previous_order",
			current:  state.New("b"),
			previous: state.New("z", "b", "a", "m"),
			want:     []string{"z", "a", "m"},
		},
		{
			name:     "previous_subset_of_current",
			current:  state.New("a", "b", "c"),
			previous: state.New("c", "a"),
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, state.Diff(tt.current, tt.previous))
		})
	}
}

func TestDiffIsStrictSetDifference(t *testing.T) {
	previous := state.New("/s/a", "/s/b", "/s/c", "/s/d", "/s/e")
	current := state.New("/s/b", "/s/d", "/s/x")

	diff := state.Diff(current, previous)

	seen := make(map[string]int)
	for _, p := range diff {
		seen[p]++
		assert.True(t, previous.Contains(p), "%s must come from previous", p)
		assert.False(t, current.Contains(p), "%s must not be in current", p)
	}
	for _, p := range previous.Paths() {
		if !current.Contains(p) {
			assert.Equal(t, 1, seen[p], "%s must appear exactly once", p)
		}
	}
}

func TestDiffWithItselfIsEmpty(t *testing.T) {
	s := state.New("/a", "/b", "/c")
	assert.Empty(t, state.Diff(s, s))
}
