package state

// ServerState is the ordered set of paths written during a run.
// The zero value is an empty state ready to use.
type ServerState struct {
	paths []string
	index map[string]struct{}
}

// New creates a state holding paths, in order, without duplicates.
func New(paths ...string) *ServerState {
	s := &ServerState{}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add records a path. Adding a path twice keeps its first position.
func (s *ServerState) Add(path string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[path]; ok {
		return
	}
	s.index[path] = struct{}{}
	s.paths = append(s.paths, path)
}

// Contains reports whether path was recorded. Comparison is exact string
// equality; no cleaning, case folding or symlink resolution happens.
func (s *ServerState) Contains(path string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[path]
	return ok
}

// Paths returns a copy of the recorded paths in insertion order.
func (s *ServerState) Paths() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of recorded paths.
func (s *ServerState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths)
}

// Diff returns the paths present in previous but absent from current, in
// the order they appear in previous. A nil state is treated as empty.
func Diff(current, previous *ServerState) []string {
	var stale []string
	for _, p := range previous.Paths() {
		if !current.Contains(p) {
			stale = append(stale, p)
		}
	}
	return stale
}
