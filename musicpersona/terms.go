package musicpersona

import (
	"fmt"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/term"
)

// Audio features the extraversion classifier consumes. Symbol names match
// the feature names used in classifier bundles.
var (
	AudioFeature         = core.NewSort("AudioFeature")
	EnergyMean           = AudioFeature.Individual("energy_mean")
	Mode0Percentage      = AudioFeature.Individual("mode_0_percentage")
	LoudnessMean         = AudioFeature.Individual("loudness_mean")
	SpeechinessMean      = AudioFeature.Individual("speechiness_mean")
	InstrumentalnessMean = AudioFeature.Individual("instrumentalness_mean")
	ValenceMean          = AudioFeature.Individual("valence_mean")
	DanceabilityMean     = AudioFeature.Individual("danceability_mean")
)

// Factor groups the prediction can be attributed to.
var (
	Factors       = core.NewSort("Factors")
	AudioFeatures = Factors.Individual("audio_features")
)

// featureOrder fixes the presentation order of features in generated text.
var featureOrder = []string{
	"energy_mean",
	"mode_0_percentage",
	"loudness_mean",
	"speechiness_mean",
	"instrumentalness_mean",
	"valence_mean",
	"danceability_mean",
}

var featureSymbols = map[string]*core.Symbol{
	"energy_mean":           EnergyMean,
	"mode_0_percentage":     Mode0Percentage,
	"loudness_mean":         LoudnessMean,
	"speechiness_mean":      SpeechinessMean,
	"instrumentalness_mean": InstrumentalnessMean,
	"valence_mean":          ValenceMean,
	"danceability_mean":     DanceabilityMean,
}

// FeatureSymbol resolves a classifier feature name to its symbol.
func FeatureSymbol(name string) (*core.Symbol, bool) {
	sym, ok := featureSymbols[name]
	return sym, ok
}

// Extraverted states that the person is extraverted.
type Extraverted struct{ core.DomainProposition }

// HighValue states that the person favors music scoring high on a feature.
type HighValue struct {
	core.DomainProposition
	Feature *core.Symbol
}

// HigherThanAverage states that music heard by the person scores above the
// population average on a feature.
type HigherThanAverage struct {
	core.DomainProposition
	Feature *core.Symbol
}

// FactorsConsidered names the factor group the prediction is based on.
type FactorsConsidered struct {
	core.DomainProposition
	Factors *core.Symbol
}

// Register adds the domain vocabulary to a registry.
func Register(r *term.Registry) {
	r.RegisterType("Extraverted", Extraverted{}, func(args []any) (any, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: Extraverted takes no arguments", term.ErrBadArguments)
		}
		return Extraverted{}, nil
	})
	r.RegisterType("HighValue", HighValue{}, func(args []any) (any, error) {
		sym, err := oneFeature("HighValue", args)
		if err != nil {
			return nil, err
		}
		return HighValue{Feature: sym}, nil
	})
	r.RegisterType("HigherThanAverage", HigherThanAverage{}, func(args []any) (any, error) {
		sym, err := oneFeature("HigherThanAverage", args)
		if err != nil {
			return nil, err
		}
		return HigherThanAverage{Feature: sym}, nil
	})
	r.RegisterType("FactorsConsidered", FactorsConsidered{}, func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: FactorsConsidered takes 1 argument, got %d", term.ErrBadArguments, len(args))
		}
		sym, ok := args[0].(*core.Symbol)
		if !ok || sym.Sort() != Factors {
			return nil, fmt.Errorf("%w: FactorsConsidered takes a factor group, got %v", term.ErrBadArguments, args[0])
		}
		return FactorsConsidered{Factors: sym}, nil
	})

	r.RegisterSymbols(
		EnergyMean, Mode0Percentage, LoudnessMean, SpeechinessMean,
		InstrumentalnessMean, ValenceMean, DanceabilityMean,
		AudioFeatures,
	)
}

// NewRegistry returns a registry with the base and domain vocabulary.
func NewRegistry() *term.Registry {
	r := term.NewRegistry()
	Register(r)
	return r
}

func oneFeature(head string, args []any) (*core.Symbol, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes 1 argument, got %d", term.ErrBadArguments, head, len(args))
	}
	sym, ok := args[0].(*core.Symbol)
	if !ok || sym.Sort() != AudioFeature {
		return nil, fmt.Errorf("%w: %s takes an audio feature, got %v", term.ErrBadArguments, head, args[0])
	}
	return sym, nil
}
