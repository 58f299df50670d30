package musicpersona

import (
	"fmt"

	"github.com/hupe1980/dialogmesh/core"
)

// Compile-time check.
var _ core.Generator = Generator{}

// Generator renders system moves as English. It covers exactly the moves
// the engine can produce for this domain and fails with a GenerationError
// on anything else.
type Generator struct{}

// Generate renders a system move.
func (g Generator) Generate(move core.Move) (string, error) {
	switch m := move.(type) {
	case core.Assert:
		return generateAssert(m.Proposition, m.Hedge)
	case core.ICM:
		return generateICM(m)
	}
	return "", &core.GenerationError{Term: move}
}

func generateAssert(p core.Proposition, hedge *core.Symbol) (string, error) {
	if truth, ok := p.(core.Truth); ok {
		return booleanAssertion(truth.Value, hedge), nil
	}
	if isExtraversionProposition(p) {
		return extraversionAssertion(isPositive(p), hedge), nil
	}
	if isFeatureValueJudgement(p) {
		judgement, err := featureValueJudgement(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("The person likes %s.", judgement), nil
	}
	if s, ok := higherThanAverageSentence(p); ok {
		return s, nil
	}
	if supports, ok := p.(core.Supports); ok {
		return supportsSentence(supports)
	}
	if negated, ok := p.(core.Not); ok {
		if supports, ok := negated.Content.(core.Supports); ok {
			return notSupportsSentence(supports)
		}
	}
	if p == core.Proposition(FactorsConsidered{Factors: AudioFeatures}) {
		return fmt.Sprintf(
			"I consider music heard by the person in terms of the following audio features: %s.",
			featureNounConjunction(),
		), nil
	}
	return "", &core.GenerationError{Term: p}
}

func booleanAssertion(positive bool, hedge *core.Symbol) string {
	yesOrNo := "Yes"
	if !positive {
		yesOrNo = "No"
	}
	switch hedge {
	case nil:
		return yesOrNo + "."
	case core.Strong:
		return yesOrNo + ", I'm quite confident about that."
	case core.Medium:
		if positive {
			return yesOrNo + ", I think so."
		}
		return yesOrNo + ", I don't think so."
	default:
		return yesOrNo + ", but I'm very uncertain."
	}
}

func extraversionAssertion(positive bool, hedge *core.Symbol) string {
	adjective := extraversionAdjective(positive)
	switch hedge {
	case core.Strong:
		return fmt.Sprintf("I'm quite confident that this person is %s.", adjective)
	case core.Medium:
		return fmt.Sprintf("I think this person is %s.", adjective)
	case core.Weak:
		return fmt.Sprintf("If I had to guess, I'd say that this person is %s.", adjective)
	default:
		return fmt.Sprintf("This person is %s.", adjective)
	}
}

func extraversionAdjective(positive bool) string {
	if positive {
		return "extraverted"
	}
	return "introverted"
}

func isPositive(p core.Proposition) bool {
	_, negated := p.(core.Not)
	return !negated
}

func isFeatureValueJudgement(p core.Proposition) bool {
	if negated, ok := p.(core.Not); ok {
		p = negated.Content
	}
	_, ok := p.(HighValue)
	return ok
}

func featureValueJudgement(p core.Proposition) (string, error) {
	positive := true
	if negated, ok := p.(core.Not); ok {
		positive = false
		p = negated.Content
	}
	highValue, ok := p.(HighValue)
	if !ok {
		return "", &core.GenerationError{Term: p}
	}
	return featureValueForms[highValue.Feature.Name()][positive], nil
}

func higherThanAverageSentence(p core.Proposition) (string, bool) {
	if comparison, ok := p.(HigherThanAverage); ok {
		return fmt.Sprintf(
			"Music heard by the person has a higher average score for %s than music in general.",
			featureNoun[comparison.Feature.Name()],
		), true
	}
	if negated, ok := p.(core.Not); ok {
		if comparison, ok := negated.Content.(HigherThanAverage); ok {
			return fmt.Sprintf(
				"Music heard by the person has a lower average score for %s than music in general.",
				featureNoun[comparison.Feature.Name()],
			), true
		}
	}
	return "", false
}

func supportsSentence(supports core.Supports) (string, error) {
	judgement, err := featureValueJudgement(supports.Antecedent)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Generally, listening to %s correlates with being %s.",
		judgement, extraversionAdjective(isPositive(supports.Consequent)),
	), nil
}

func notSupportsSentence(supports core.Supports) (string, error) {
	judgement, err := featureValueJudgement(supports.Antecedent)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"No, listening to %s does not correlate with being %s.",
		judgement, extraversionAdjective(isPositive(supports.Consequent)),
	), nil
}

func generateICM(m core.ICM) (string, error) {
	if m.Level == core.Acceptance {
		if m.Polarity == core.Positive {
			return "OK.", nil
		}
		if m.Polarity == core.Negative {
			return negativeAcceptance(m.Reason)
		}
	}
	if m.Level == core.Understanding && m.Polarity == core.Negative {
		return "Sorry, I don't understand.", nil
	}
	return "", &core.GenerationError{Term: m}
}

func negativeAcceptance(reason core.Proposition) (string, error) {
	if _, ok := reason.(core.LackKnowledge); ok {
		return "I don't know.", nil
	}
	if isExtraversionProposition(reason) {
		return fmt.Sprintf(
			"I don't think this person is %s.", extraversionAdjective(isPositive(reason)),
		), nil
	}
	if isFeatureValueJudgement(reason) {
		judgement, err := featureValueJudgement(reason)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("No, I don't think this person likes %s.", judgement), nil
	}
	if explains, ok := reason.(core.Explains); ok {
		judgement, err := featureValueJudgement(explains.Explanans)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"No, listening to %s does not correlate with being %s.",
			judgement, extraversionAdjective(isPositive(explains.Explanandum)),
		), nil
	}
	return "", &core.GenerationError{Term: reason}
}
