package musicpersona

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dialogmesh/core"
)

func TestUnderstander_Interpret(t *testing.T) {
	tests := []struct {
		utterance string
		want      core.Move
	}{
		{"why?", core.Ask{Question: core.Why{}}},
		{
			"Why do you think I am extraverted?",
			core.Ask{Question: core.Why{Explanandum: Extraverted{}}},
		},
		{
			"why introverted?",
			core.Ask{Question: core.Why{Explanandum: core.Not{Content: Extraverted{}}}},
		},
		{
			"why danceable music?",
			core.Ask{Question: core.Why{Explanandum: HighValue{Feature: DanceabilityMean}}},
		},
		{
			"How do you explain that liking loud music makes someone extraverted?",
			core.Ask{Question: core.Why{Explanandum: core.Explains{
				Explanans:   HighValue{Feature: LoudnessMean},
				Explanandum: Extraverted{},
			}}},
		},
		{"I don't understand.", core.ICM{Level: core.Understanding, Polarity: core.Negative}},
		{"so what?", core.ICM{Level: core.Understanding, Polarity: core.Negative}},
		{
			"Does liking danceable music support being extraverted?",
			core.Ask{Question: core.BooleanQuestion{Proposition: core.Supports{
				Antecedent: HighValue{Feature: DanceabilityMean},
				Consequent: Extraverted{},
			}}},
		},
		{
			"Do you think this person is extraverted?",
			core.Ask{Question: core.BooleanQuestion{Proposition: Extraverted{}}},
		},
		{
			"I think this person is introverted.",
			core.Assert{Proposition: core.Not{Content: Extraverted{}}},
		},
		{
			"Which factors do you consider?",
			core.Ask{Question: core.WhQuestion{Predicate: core.KindOf[FactorsConsidered]()}},
		},
		{"ok", core.ICM{Level: core.Acceptance, Polarity: core.Positive}},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			move, err := Understander{}.Interpret(context.Background(), tt.utterance)
			require.NoError(t, err)
			assert.Equal(t, tt.want, move)
		})
	}
}

func TestUnderstander_UnknownUtterance(t *testing.T) {
	move, err := Understander{}.Interpret(context.Background(), "tell me a joke")
	require.NoError(t, err)
	assert.Nil(t, move)
}
