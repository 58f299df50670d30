package musicpersona

import (
	"iter"
	"sort"

	"github.com/hupe1980/dialogmesh/core"
)

// Compile-time check.
var _ core.Domain = (*Domain)(nil)

// Domain answers questions about one person's extraversion based on the
// audio features of music they listen to. All methods are synchronous and
// side-effect-free; the classifier runs on demand.
type Domain struct {
	classifier    Classifier
	explainer     Explainer
	featureValues map[string]float64
}

// New creates a domain for one case, described by its raw feature values.
func New(classifier Classifier, explainer Explainer, featureValues map[string]float64) *Domain {
	return &Domain{classifier: classifier, explainer: explainer, featureValues: featureValues}
}

// NewFromBundle creates a domain using the bundle both as classifier and,
// through a linear explainer, as the source of explanations.
func NewFromBundle(bundle *Bundle, featureValues map[string]float64) *Domain {
	return New(bundle, LinearExplainer{Bundle: bundle}, featureValues)
}

// InitialPlan obliges the system to state its extraversion prediction.
func (d *Domain) InitialPlan() []core.PlanItem {
	return []core.PlanItem{
		core.Respond{Question: core.BooleanQuestion{Proposition: Extraverted{}}},
	}
}

// Answer handles the extraversion question and the question which factors
// the prediction considers.
func (d *Domain) Answer(q core.Question) (core.Belief, bool) {
	switch question := q.(type) {
	case core.BooleanQuestion:
		if isExtraversionProposition(question.Proposition) {
			return d.extraversionBelief(), true
		}
	case core.WhQuestion:
		if question.Predicate == core.KindOf[FactorsConsidered]() {
			return core.Belief{Proposition: FactorsConsidered{Factors: AudioFeatures}}, true
		}
	}
	return core.Belief{}, false
}

func (d *Domain) extraversionBelief() core.Belief {
	p := d.classifier.ExtraversionProbability(d.featureValues)
	if p > 0.5 {
		return core.Confident(Extraverted{}, (p-0.5)*2)
	}
	return core.Confident(core.Not{Content: Extraverted{}}, (0.5-p)*2)
}

// IsRelevantAnswer encodes which proposition kinds address which questions:
// liking judgements explain extraversion, population comparisons explain
// liking judgements, and support claims address explanation questions when
// the claimed support actually holds.
func (d *Domain) IsRelevantAnswer(q core.Question, p core.Proposition) bool {
	switch question := q.(type) {
	case core.Why:
		if negated, ok := question.Explanandum.(core.Not); ok {
			return d.IsRelevantAnswer(core.Why{Explanandum: negated.Content}, p)
		}
		if question.Explanandum == core.Proposition(Extraverted{}) {
			_, ok := p.(HighValue)
			return ok
		}
		if _, ok := question.Explanandum.(HighValue); ok {
			_, ok := p.(HigherThanAverage)
			return ok
		}
		if explains, ok := question.Explanandum.(core.Explains); ok {
			if _, ok := p.(core.Supports); ok {
				for supporting := range d.Support(explains.Explanandum) {
					if supporting == explains.Explanans {
						return true
					}
				}
			}
		}
	case core.BooleanQuestion:
		if isExtraversionProposition(question.Proposition) {
			_, ok := p.(Extraverted)
			return ok
		}
	}
	return false
}

// Support yields evidence in descending order of strength. For the
// prediction itself the evidence is the ranked feature attributions; for a
// liking judgement it is the population comparison on the same feature.
func (d *Domain) Support(p core.Proposition) iter.Seq[core.Proposition] {
	switch prop := p.(type) {
	case Extraverted:
		return d.predictionSupport(true)
	case HighValue:
		return singleSupport(HigherThanAverage{Feature: prop.Feature})
	case core.Not:
		if prop.Content == core.Proposition(Extraverted{}) {
			return d.predictionSupport(false)
		}
		if highValue, ok := prop.Content.(HighValue); ok {
			return singleSupport(core.Not{Content: HigherThanAverage{Feature: highValue.Feature}})
		}
	}
	return func(func(core.Proposition) bool) {}
}

func (d *Domain) predictionSupport(extraverted bool) iter.Seq[core.Proposition] {
	return func(yield func(core.Proposition) bool) {
		contributions := d.explainer.LocalContributions(d.featureValues)
		coefficients := d.explainer.GlobalCoefficients()

		names := make([]string, 0, len(contributions))
		for name := range contributions {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			ci, cj := contributions[names[i]], contributions[names[j]]
			if ci == cj {
				return names[i] < names[j]
			}
			if extraverted {
				return ci > cj
			}
			return ci < cj
		})

		for _, name := range names {
			sym, ok := FeatureSymbol(name)
			if !ok {
				continue
			}
			coefficient := coefficients[name]
			positive := (coefficient > 0 && extraverted) || (coefficient <= 0 && !extraverted)
			var supporting core.Proposition = HighValue{Feature: sym}
			if !positive {
				supporting = core.Not{Content: supporting}
			}
			if !yield(supporting) {
				return
			}
		}
	}
}

func singleSupport(p core.Proposition) iter.Seq[core.Proposition] {
	return func(yield func(core.Proposition) bool) {
		yield(p)
	}
}

func isExtraversionProposition(p core.Proposition) bool {
	return p == core.Proposition(Extraverted{}) ||
		p == core.Proposition(core.Not{Content: Extraverted{}})
}
