// Package pragmatics implements the stateless reasoning the dialogue move
// engine delegates to: compatibility of propositions with held beliefs,
// resolution of elliptical why-questions, answer retrieval and relevance,
// explanation selection and the mapping from confidence to hedge level.
//
// All functions take the information state's beliefs and the domain
// collaborator explicitly and never retain references to either. A nil
// question is treated as unanswerable throughout, so domains never see one.
package pragmatics

import (
	"github.com/hupe1980/dialogmesh/core"
)

// Negate returns the negation of a proposition, unwrapping an existing Not
// instead of stacking a second one.
func Negate(p core.Proposition) core.Proposition {
	if not, ok := p.(core.Not); ok {
		return not.Content
	}
	return core.Not{Content: p}
}

// IsElliptical reports whether the question is a why-question with no
// explanandum, i.e. a bare "why?" that needs resolving against context.
func IsElliptical(q core.Question) bool {
	why, ok := q.(core.Why)
	return ok && why.Explanandum == nil
}

// ResolveElliptical resolves a bare why-question against the previous system
// move: if that move asserted a proposition, the question asks why that
// proposition holds. Otherwise the question stays unresolved and the caller
// must handle the absence.
func ResolveElliptical(q core.Question, previousSystemMove core.Move) (core.Question, bool) {
	if _, ok := q.(core.Why); !ok {
		return nil, false
	}
	if assert, ok := previousSystemMove.(core.Assert); ok {
		return core.Why{Explanandum: assert.Proposition}, true
	}
	return nil, false
}

// CompatibleWithBeliefs reports whether the proposition is provably
// compatible with the held beliefs: either it matches a belief structurally,
// or it is an Explains whose explanans occurs among the domain's supporting
// propositions for the explanandum. Absence of evidence counts as
// incompatible.
func CompatibleWithBeliefs(p core.Proposition, beliefs []core.Belief, domain core.Domain) bool {
	for _, b := range beliefs {
		if b.Proposition == p {
			return true
		}
	}
	if explains, ok := p.(core.Explains); ok {
		for support := range domain.Support(explains.Explanandum) {
			if support == explains.Explanans {
				return true
			}
		}
	}
	return false
}

// Answer retrieves an answer to the question, delegating to the domain
// first. When the domain yields nothing, why-questions fall back to
// explanation selection and boolean questions about support relations are
// answered decisively from the domain's supporting propositions.
func Answer(q core.Question, beliefs []core.Belief, domain core.Domain) (core.Belief, bool) {
	if q == nil {
		return core.Belief{}, false
	}
	if belief, ok := domain.Answer(q); ok {
		return belief, true
	}
	switch question := q.(type) {
	case core.Why:
		return SelectExplanation(question.Explanandum, beliefs, domain)
	case core.BooleanQuestion:
		if supports, ok := question.Proposition.(core.Supports); ok {
			for supporting := range domain.Support(supports.Consequent) {
				if supporting == supports.Antecedent {
					return core.Belief{Proposition: question.Proposition}, true
				}
			}
			return core.Belief{Proposition: Negate(question.Proposition)}, true
		}
	}
	return core.Belief{}, false
}

// IsRelevantAnswer reports whether the proposition answers the question. A
// negated proposition is relevant exactly when its content is; boolean
// questions about support relations accept the questioned proposition or its
// negation; wh-questions accept instances of their predicate's category;
// everything else is the domain's call.
func IsRelevantAnswer(q core.Question, p core.Proposition, domain core.Domain) bool {
	if q == nil {
		return false
	}
	if not, ok := p.(core.Not); ok {
		return IsRelevantAnswer(q, not.Content, domain)
	}
	switch question := q.(type) {
	case core.BooleanQuestion:
		if _, ok := question.Proposition.(core.Supports); ok {
			return p == question.Proposition || p == Negate(question.Proposition)
		}
	case core.WhQuestion:
		return question.Predicate.Instance(p)
	}
	return domain.IsRelevantAnswer(q, p)
}

// SelectExplanation searches for an explanation of the explanandum in two
// stages, first match wins. Stage one takes the best (first) supporting
// proposition from the domain as an enthymematic explanans. Stage two, the
// topos fallback, applies only when the explanandum is itself an Explains:
// the best support for its inner explanandum warrants the support relation.
// If neither stage yields anything the caller signals lack of knowledge.
func SelectExplanation(explanandum core.Proposition, beliefs []core.Belief, domain core.Domain) (core.Belief, bool) {
	if explanandum == nil {
		return core.Belief{}, false
	}
	if explanans, ok := firstSupport(domain, explanandum); ok {
		return core.Belief{Proposition: explanans}, true
	}
	if explains, ok := explanandum.(core.Explains); ok {
		if supporting, ok := firstSupport(domain, explains.Explanandum); ok {
			return core.Belief{Proposition: core.Supports{
				Antecedent: supporting,
				Consequent: explains.Explanandum,
			}}, true
		}
	}
	return core.Belief{}, false
}

// firstSupport consumes only the first element of the domain's supporting
// sequence, leaving the rest uncomputed for lazy producers.
func firstSupport(domain core.Domain, p core.Proposition) (core.Proposition, bool) {
	for support := range domain.Support(p) {
		return support, true
	}
	return nil, false
}

// SelectAnswerMove turns an answering belief into an assertion. If one of
// the turn's latest moves asked a boolean question the belief is relevant
// to, the reply is polar: true when the questioned proposition matches the
// belief, false otherwise. Any other belief is asserted directly. The hedge
// derives from the belief's confidence.
func SelectAnswerMove(belief core.Belief, latestMoves []core.Move, domain core.Domain) core.Move {
	hedge := HedgeFor(belief.Confidence)
	for _, move := range latestMoves {
		ask, ok := move.(core.Ask)
		if !ok {
			continue
		}
		question, ok := ask.Question.(core.BooleanQuestion)
		if !ok {
			continue
		}
		if IsRelevantAnswer(question, belief.Proposition, domain) {
			return core.Assert{
				Proposition: core.Truth{Value: question.Proposition == belief.Proposition},
				Hedge:       hedge,
			}
		}
	}
	return core.Assert{Proposition: belief.Proposition, Hedge: hedge}
}

// HedgeFor maps a confidence degree to a hedge level. Absent confidence
// means a categorical, unhedged assertion. Boundary values belong to the
// higher band: 0.9 is strong and 0.1 is medium.
func HedgeFor(confidence *float64) *core.Symbol {
	switch {
	case confidence == nil:
		return nil
	case *confidence >= 0.9:
		return core.Strong
	case *confidence >= 0.1:
		return core.Medium
	default:
		return core.Weak
	}
}
