package musicpersona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dialogmesh/core"
)

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name string
		move core.Move
		want string
	}{
		{
			"strong extraversion assertion",
			core.Assert{Proposition: Extraverted{}, Hedge: core.Strong},
			"I'm quite confident that this person is extraverted.",
		},
		{
			"medium introversion assertion",
			core.Assert{Proposition: core.Not{Content: Extraverted{}}, Hedge: core.Medium},
			"I think this person is introverted.",
		},
		{
			"weak extraversion assertion",
			core.Assert{Proposition: Extraverted{}, Hedge: core.Weak},
			"If I had to guess, I'd say that this person is extraverted.",
		},
		{
			"polar yes",
			core.Assert{Proposition: core.Truth{Value: true}},
			"Yes.",
		},
		{
			"hedged polar yes",
			core.Assert{Proposition: core.Truth{Value: true}, Hedge: core.Strong},
			"Yes, I'm quite confident about that.",
		},
		{
			"hedged polar no",
			core.Assert{Proposition: core.Truth{Value: false}, Hedge: core.Medium},
			"No, I don't think so.",
		},
		{
			"liking judgement",
			core.Assert{Proposition: HighValue{Feature: LoudnessMean}},
			"The person likes loud music.",
		},
		{
			"negated liking judgement",
			core.Assert{Proposition: core.Not{Content: HighValue{Feature: Mode0Percentage}}},
			"The person likes music in minor mode.",
		},
		{
			"population comparison",
			core.Assert{Proposition: HigherThanAverage{Feature: EnergyMean}},
			"Music heard by the person has a higher average score for energy than music in general.",
		},
		{
			"negated population comparison",
			core.Assert{Proposition: core.Not{Content: HigherThanAverage{Feature: ValenceMean}}},
			"Music heard by the person has a lower average score for valence than music in general.",
		},
		{
			"support claim",
			core.Assert{Proposition: core.Supports{
				Antecedent: HighValue{Feature: DanceabilityMean},
				Consequent: Extraverted{},
			}},
			"Generally, listening to danceable music correlates with being extraverted.",
		},
		{
			"negated support claim",
			core.Assert{Proposition: core.Not{Content: core.Supports{
				Antecedent: HighValue{Feature: DanceabilityMean},
				Consequent: Extraverted{},
			}}},
			"No, listening to danceable music does not correlate with being extraverted.",
		},
		{
			"factors considered",
			core.Assert{Proposition: FactorsConsidered{Factors: AudioFeatures}},
			"I consider music heard by the person in terms of the following audio features: " +
				"energy, mode, loudness, speechiness, instrumentalness, valence and danceability.",
		},
		{
			"positive acknowledgement",
			core.ICM{Level: core.Acceptance, Polarity: core.Positive},
			"OK.",
		},
		{
			"lack of knowledge",
			core.ICM{Level: core.Acceptance, Polarity: core.Negative, Reason: core.LackKnowledge{}},
			"I don't know.",
		},
		{
			"rejection citing extraversion",
			core.ICM{Level: core.Acceptance, Polarity: core.Negative, Reason: Extraverted{}},
			"I don't think this person is extraverted.",
		},
		{
			"rejection citing liking judgement",
			core.ICM{Level: core.Acceptance, Polarity: core.Negative, Reason: HighValue{Feature: DanceabilityMean}},
			"No, I don't think this person likes danceable music.",
		},
		{
			"rejection citing explanation",
			core.ICM{Level: core.Acceptance, Polarity: core.Negative, Reason: core.Explains{
				Explanans:   HighValue{Feature: LoudnessMean},
				Explanandum: Extraverted{},
			}},
			"No, listening to loud music does not correlate with being extraverted.",
		},
		{
			"negative understanding",
			core.ICM{Level: core.Understanding, Polarity: core.Negative},
			"Sorry, I don't understand.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generator{}.Generate(tt.move)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_UnknownMove(t *testing.T) {
	_, err := Generator{}.Generate(core.Ask{Question: core.Why{}})
	var genErr *core.GenerationError
	require.ErrorAs(t, err, &genErr)

	_, err = Generator{}.Generate(core.Assert{Proposition: core.LackKnowledge{}})
	require.ErrorAs(t, err, &genErr)
}
