package core

import (
	"context"
	"fmt"
	"iter"
)

// Domain is the knowledge source behind a dialogue. Implementations answer
// questions, judge relevance and produce supporting evidence; the engine and
// the pragmatic reasoner treat them as synchronous and side-effect-free
// within a turn.
type Domain interface {
	// InitialPlan returns the obligations a fresh session starts with.
	InitialPlan() []PlanItem

	// Answer returns the domain's answer to a question, if it has one.
	Answer(question Question) (Belief, bool)

	// IsRelevantAnswer reports whether the proposition answers the question.
	IsRelevantAnswer(question Question, proposition Proposition) bool

	// Support yields the propositions supporting the given proposition in
	// descending order of strength. The sequence is finite and
	// order-significant; consumers may stop after the first element without
	// the producer having to compute the rest.
	Support(proposition Proposition) iter.Seq[Proposition]
}

// Understander interprets a user utterance as a dialogue move. Returning a
// nil move with a nil error signals a failed interpretation, which the
// engine answers with a negative understanding ICM. Errors are reserved for
// transport or configuration failures and propagate unchanged.
type Understander interface {
	Interpret(ctx context.Context, utterance string) (Move, error)
}

// Generator renders a system move as natural language. It must handle every
// move variant the engine can emit and fail with a *GenerationError on an
// unrecognized one; the core never synthesizes fallback text.
type Generator interface {
	Generate(move Move) (string, error)
}

// GenerationError reports that a Generator was asked to render a move (or a
// nested term) it does not recognize. It is fatal to the turn's response.
type GenerationError struct {
	Term any
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("no generation rule for term %v (%T)", e.Term, e.Term)
}
