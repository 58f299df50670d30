package core

import "reflect"

// Move represents a polymorphic dialogue contribution. Concrete move types
// implement the unexported isMove marker enabling a closed set. Moves are
// immutable values compared by structural equality.
type Move interface{ isMove() }

// Proposition is a semantic content item that can be believed, asserted,
// negated or explained. The base variants below are the only ones the engine
// ever matches on; domains extend the set with their own comparable types.
type Proposition interface{ isProposition() }

// Question is something a participant can ask. The engine matches on the
// base variants; domains may extend the set.
type Question interface{ isQuestion() }

// PlanItem is a pending obligation on the private plan.
type PlanItem interface{ isPlanItem() }

// Assert states a proposition, optionally hedged by a confidence qualifier.
type Assert struct {
	Proposition Proposition
	Hedge       *Symbol // nil means unhedged
}

func (Assert) isMove() {}

// Ask raises a question.
type Ask struct {
	Question Question
}

func (Ask) isMove() {}

// ICM is an interactive communication management move (feedback on
// understanding or acceptance). Reason may be nil.
type ICM struct {
	Level    *Symbol
	Polarity *Symbol
	Reason   Proposition
}

func (ICM) isMove() {}

// Not negates its content.
type Not struct {
	Content Proposition
}

func (Not) isProposition() {}

// Supports states that the antecedent is evidence for the consequent.
type Supports struct {
	Antecedent Proposition
	Consequent Proposition
}

func (Supports) isProposition() {}

// Explains states that the explanans explains the explanandum.
type Explains struct {
	Explanans   Proposition
	Explanandum Proposition
}

func (Explains) isProposition() {}

// LackKnowledge signals that the speaker has no answer to give.
type LackKnowledge struct{}

func (LackKnowledge) isProposition() {}

// Truth is a polar (yes/no) answer to a boolean question.
type Truth struct {
	Value bool
}

func (Truth) isProposition() {}

// BooleanQuestion asks whether a proposition holds.
type BooleanQuestion struct {
	Proposition Proposition
}

func (BooleanQuestion) isQuestion() {}

// Why asks for an explanation of its explanandum. A nil explanandum marks an
// elliptical question ("why?") that must be resolved against context before
// it can be answered.
type Why struct {
	Explanandum Proposition
}

func (Why) isQuestion() {}

// WhQuestion asks which instance of a predicate's category holds.
type WhQuestion struct {
	Predicate Predicate
}

func (WhQuestion) isQuestion() {}

// Respond is the obligation to answer a question.
type Respond struct {
	Question Question
}

func (Respond) isPlanItem() {}

// Belief pairs a proposition with an optional numeric degree of confidence
// in [0,1]. A nil confidence means the belief is categorical.
type Belief struct {
	Proposition Proposition
	Confidence  *float64
}

// Confident is a convenience constructor for a belief with a confidence degree.
func Confident(p Proposition, confidence float64) Belief {
	return Belief{Proposition: p, Confidence: &confidence}
}

// DomainProposition is embedded by domain packages to declare proposition
// variants outside core. The engine never matches on such variants; they are
// interpreted by the domain collaborator alone. Embedding types must remain
// comparable so structural equality keeps working.
type DomainProposition struct{}

func (DomainProposition) isProposition() {}

// DomainQuestion is embedded by domain packages to declare question variants
// outside core, with the same opacity guarantee as DomainProposition.
type DomainQuestion struct{}

func (DomainQuestion) isQuestion() {}

// Predicate identifies a category of propositions by their concrete type.
// It is the value denoted by a bare proposition-type name in term text, e.g.
// the argument of WhQuestion(FactorsConsidered).
type Predicate struct {
	t reflect.Type
}

// KindOf returns the predicate for the proposition type T.
func KindOf[T Proposition]() Predicate {
	var zero T
	return Predicate{t: reflect.TypeOf(zero)}
}

// PredicateForType returns the predicate for a concrete term type obtained
// by reflection, as needed by term-text registries resolving bare type names.
func PredicateForType(t reflect.Type) Predicate { return Predicate{t: t} }

// Instance reports whether p is an instance of the predicate's category.
func (pr Predicate) Instance(p Proposition) bool {
	return pr.t != nil && reflect.TypeOf(p) == pr.t
}

// Type returns the underlying proposition type.
func (pr Predicate) Type() reflect.Type { return pr.t }
