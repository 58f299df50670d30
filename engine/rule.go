package engine

import "github.com/hupe1980/dialogmesh/core"

// Match is the positive outcome of a rule precondition. Values holds any
// data the precondition extracted for the effect, in positional order; a
// zero-binding match and a multi-binding match are handled uniformly.
type Match struct {
	Values []any
}

// Matched constructs a precondition result carrying the given bindings.
func Matched(values ...any) *Match {
	return &Match{Values: values}
}

// Rule pairs a precondition with an effect. The precondition returns nil for
// "no match"; otherwise the effect runs with the returned match. Effects
// mutate the state in place and never fail: anything that could fail is
// checked by the precondition.
type Rule struct {
	Name         string
	Precondition func(s *core.State) *Match
	Effect       func(s *core.State, m *Match)
}
