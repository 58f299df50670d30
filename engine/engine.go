package engine

import (
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/logging"
)

// Options configures the engine.
type Options struct {
	// Rules overrides the rule sequence. Defaults to Rules(); overriding is
	// meant for tests, the order carries the engine's semantics.
	Rules []Rule

	// Logger receives rule-level trace output. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Engine applies the rule sequence to an information state once per turn.
// It is stateless across turns and never retains a reference to the state
// beyond a call; a single Engine may serve any number of sessions as long
// as each state is processed strictly one turn at a time.
type Engine struct {
	rules  []Rule
	logger logging.Logger
}

// New creates an engine with the canonical rule sequence.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Rules:  Rules(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{rules: opts.Rules, logger: opts.Logger}
}

// RunTurn executes one turn cycle: the pending system move is cleared, every
// rule is tried once in order, and a selected system move is promoted to
// PreviousSystemMove and returned. The boolean reports whether a move was
// selected; the state is left exactly as the completed rule effects left it.
func (e *Engine) RunTurn(s *core.State) (core.Move, bool) {
	s.NextSystemMove = nil
	for _, rule := range e.rules {
		e.tryRule(s, rule)
	}
	if s.NextSystemMove == nil {
		return nil, false
	}
	s.PreviousSystemMove = s.NextSystemMove
	return s.NextSystemMove, true
}

func (e *Engine) tryRule(s *core.State, rule Rule) {
	match := rule.Precondition(s)
	if match == nil {
		e.logger.Debug("rule did not match", "rule", rule.Name)
		return
	}
	e.logger.Debug("rule fired", "rule", rule.Name, "bindings", len(match.Values))
	rule.Effect(s, match)
}
