package domain

// Selection is a list of targets with a distinguished "all" state.
// A nil *Selection means the selection was never requested, which is
// different from a selection of every member of the universe.
type Selection struct {
	All     bool
	Targets []Target
}

// SelectAll returns a selection covering the whole applicable universe.
func SelectAll() *Selection {
	return &Selection{All: true}
}

// SelectTargets returns a selection of exactly the given targets.
func SelectTargets(targets ...Target) *Selection {
	return &Selection{Targets: targets}
}

// Requested reports whether the selection was requested at all.
func (s *Selection) Requested() bool {
	return s != nil
}

// Resolve expands the selection against the given universe.
// A nil selection resolves to nothing.
func (s *Selection) Resolve(universe []Target) []Target {
	if s == nil {
		return nil
	}
	if s.All {
		return universe
	}
	return s.Targets
}
