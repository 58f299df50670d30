package musicpersona

import (
	"context"
	"slices"
	"strings"

	"github.com/hupe1980/dialogmesh/core"
)

// Compile-time check.
var _ core.Understander = Understander{}

// Understander is a keyword interpreter for the domain, useful for demos
// and tests when no LLM is configured. Utterances it cannot map to a move
// yield a nil move, which the engine answers with a negative understanding
// signal.
type Understander struct{}

// Interpret maps an utterance onto a dialogue move by keyword spotting.
func (Understander) Interpret(_ context.Context, utteranceCased string) (core.Move, error) {
	utterance := strings.ToLower(utteranceCased)
	tokens := strings.Fields(strings.TrimRight(utterance, ".?!"))
	has := func(word string) bool { return slices.Contains(tokens, word) }

	extraversion := detectExtraversion(tokens)
	judgement := detectFeatureValueJudgement(utterance)

	switch {
	case has("why"):
		if extraversion != nil {
			return core.Ask{Question: core.Why{Explanandum: extraversion}}, nil
		}
		if judgement != nil {
			return core.Ask{Question: core.Why{Explanandum: judgement}}, nil
		}
		return core.Ask{Question: core.Why{}}, nil
	case has("how") && has("explain"):
		if extraversion != nil && judgement != nil {
			return core.Ask{Question: core.Why{Explanandum: core.Explains{
				Explanans:   judgement,
				Explanandum: extraversion,
			}}}, nil
		}
	case strings.Contains(utterance, "don't understand") || strings.Contains(utterance, "so what"):
		return core.ICM{Level: core.Understanding, Polarity: core.Negative}, nil
	case has("support"):
		if extraversion != nil && judgement != nil {
			return core.Ask{Question: core.BooleanQuestion{Proposition: core.Supports{
				Antecedent: judgement,
				Consequent: extraversion,
			}}}, nil
		}
	case has("think") && has("you") && extraversion != nil:
		return core.Ask{Question: core.BooleanQuestion{Proposition: extraversion}}, nil
	case has("think") && has("i") && extraversion != nil:
		return core.Assert{Proposition: extraversion}, nil
	case strings.Contains(utterance, "which factors"):
		return core.Ask{Question: core.WhQuestion{Predicate: core.KindOf[FactorsConsidered]()}}, nil
	case has("ok") || has("okay"):
		return core.ICM{Level: core.Acceptance, Polarity: core.Positive}, nil
	}
	return nil, nil
}

func detectExtraversion(tokens []string) core.Proposition {
	if slices.Contains(tokens, "introverted") {
		return core.Not{Content: Extraverted{}}
	}
	if slices.Contains(tokens, "extraverted") {
		return Extraverted{}
	}
	return nil
}

func detectFeatureValueJudgement(utterance string) core.Proposition {
	for _, name := range featureOrder {
		for positive, form := range featureValueForms[name] {
			if strings.Contains(utterance, form) {
				sym, _ := FeatureSymbol(name)
				var p core.Proposition = HighValue{Feature: sym}
				if !positive {
					p = core.Not{Content: p}
				}
				return p
			}
		}
	}
	return nil
}
