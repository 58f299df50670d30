package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dialogmesh/core"
)

func TestParse_BaseVocabulary(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		text string
		want any
	}{
		{"Why()", core.Why{}},
		{"Ask(Why())", core.Ask{Question: core.Why{}}},
		{"ICM(understanding, negative)", core.ICM{Level: core.Understanding, Polarity: core.Negative}},
		{"ICM(acceptance, negative, LackKnowledge())", core.ICM{Level: core.Acceptance, Polarity: core.Negative, Reason: core.LackKnowledge{}}},
		{"Assert(Not(LackKnowledge()))", core.Assert{Proposition: core.Not{Content: core.LackKnowledge{}}}},
		{"Assert(true, strong)", core.Assert{Proposition: core.Truth{Value: true}, Hedge: core.Strong}},
		{"Ask(BooleanQuestion(Supports(LackKnowledge(), Not(LackKnowledge()))))",
			core.Ask{Question: core.BooleanQuestion{Proposition: core.Supports{
				Antecedent: core.LackKnowledge{}, Consequent: core.Not{Content: core.LackKnowledge{}},
			}}}},
		{"Ask(WhQuestion(Not))", core.Ask{Question: core.WhQuestion{Predicate: core.KindOf[core.Not]()}}},
		{"Respond(Why(LackKnowledge()))", core.Respond{Question: core.Why{Explanandum: core.LackKnowledge{}}}},
		{"Belief(LackKnowledge(), 0.95)", core.Confident(core.LackKnowledge{}, 0.95)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(reg, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_WhitespaceAndLiterals(t *testing.T) {
	reg := NewRegistry()

	got, err := Parse(reg, "  ICM( understanding ,  negative )  ")
	require.NoError(t, err)
	assert.Equal(t, core.ICM{Level: core.Understanding, Polarity: core.Negative}, got)

	got, err = Parse(reg, "['a', 1.5, true, None]")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", 1.5, true, nil}, got)
}

func TestRoundTrip(t *testing.T) {
	reg := NewRegistry()

	values := []any{
		core.Why{},
		core.Ask{Question: core.Why{}},
		core.ICM{Level: core.Understanding, Polarity: core.Negative},
		core.ICM{Level: core.Acceptance, Polarity: core.Negative, Reason: core.LackKnowledge{}},
		core.Assert{Proposition: core.Truth{Value: false}, Hedge: core.Medium},
		core.Assert{Proposition: core.Explains{Explanans: core.LackKnowledge{}, Explanandum: core.Not{Content: core.LackKnowledge{}}}},
		core.Respond{Question: core.BooleanQuestion{Proposition: core.LackKnowledge{}}},
		core.WhQuestion{Predicate: core.KindOf[core.Supports]()},
		core.Confident(core.LackKnowledge{}, 0.25),
		core.Belief{Proposition: core.LackKnowledge{}},
	}
	for _, v := range values {
		text, err := Render(reg, v)
		require.NoError(t, err, "render %v", v)
		back, err := Parse(reg, text)
		require.NoError(t, err, "parse %q", text)
		assert.Equal(t, v, back, "round trip through %q", text)
	}
}

func TestParse_RejectsUnregisteredHead(t *testing.T) {
	reg := NewRegistry()

	_, err := Parse(reg, "Exec('rm -rf /')")
	var derr *DeserializationError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, ErrUnregistered)
	assert.Equal(t, "Exec", derr.Fragment)
}

func TestParse_RejectsUnregisteredBareName(t *testing.T) {
	reg := NewRegistry()

	_, err := Parse(reg, "ICM(understanding, sideways)")
	require.ErrorIs(t, err, ErrUnregistered)
}

func TestParse_RejectsUnregisteredNestedArgument(t *testing.T) {
	reg := NewRegistry()

	// The outer constructor is registered; the inner one is not. Nothing may
	// be constructed.
	_, err := Parse(reg, "Ask(EvilQuestion())")
	require.ErrorIs(t, err, ErrUnregistered)
}

func TestParse_RejectsMalformedSyntax(t *testing.T) {
	reg := NewRegistry()

	for _, text := range []string{
		"",
		"Ask(Why()",
		"Ask Why",
		"1 + 2",
		"[x for x in y]",
		"Ask(Why()) trailing",
		"'unterminated",
		"Ask(,)",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(reg, text)
			require.Error(t, err)
			var derr *DeserializationError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, text, derr.Text)
		})
	}
}

func TestParse_RejectsBadArity(t *testing.T) {
	reg := NewRegistry()

	_, err := Parse(reg, "Not()")
	require.ErrorIs(t, err, ErrBadArguments)
	_, err = Parse(reg, "ICM(understanding)")
	require.ErrorIs(t, err, ErrBadArguments)
	_, err = Parse(reg, "Ask(LackKnowledge())")
	require.ErrorIs(t, err, ErrBadArguments)
}

func TestParse_SortsAreChecked(t *testing.T) {
	reg := NewRegistry()

	// strong is a hedge, not an ICM level.
	_, err := Parse(reg, "ICM(strong, negative)")
	require.ErrorIs(t, err, ErrBadArguments)
}

func TestRegistry_DomainExtension(t *testing.T) {
	type Extraverted struct{}
	reg := NewRegistry()
	reg.RegisterType("Extraverted", Extraverted{}, func(args []any) (any, error) {
		if len(args) != 0 {
			return nil, ErrBadArguments
		}
		return Extraverted{}, nil
	})

	got, err := Parse(reg, "Extraverted()")
	require.NoError(t, err)
	assert.Equal(t, Extraverted{}, got)

	text, err := Render(reg, Extraverted{})
	require.NoError(t, err)
	assert.Equal(t, "Extraverted()", text)

	// The same text fails against a registry without the extension.
	_, err = Parse(NewRegistry(), "Extraverted()")
	require.ErrorIs(t, err, ErrUnregistered)
}
