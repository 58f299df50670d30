package musicpersona

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Classifier predicts the probability that a person is extraverted from
// raw audio feature values.
type Classifier interface {
	ExtraversionProbability(featureValues map[string]float64) float64
}

// Explainer attributes a prediction to individual features. Local
// contributions are signed per-case attributions; global coefficients carry
// the direction each feature pushes the prediction in general.
type Explainer interface {
	LocalContributions(featureValues map[string]float64) map[string]float64
	GlobalCoefficients() map[string]float64
}

// Scaler holds the standardization parameters of the training data.
type Scaler struct {
	Means map[string]float64 `yaml:"means"`
	Stds  map[string]float64 `yaml:"stds"`
}

// Bundle is a trained logistic extraversion classifier together with its
// feature list and scaler, as exported to YAML by the training pipeline.
type Bundle struct {
	Features     []string           `yaml:"features"`
	Intercept    float64            `yaml:"intercept"`
	Coefficients map[string]float64 `yaml:"coefficients"`
	Scaler       Scaler             `yaml:"scaler"`
}

// LoadBundle reads a classifier bundle from a YAML file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier bundle: %w", err)
	}
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse classifier bundle %s: %w", path, err)
	}
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("classifier bundle %s: %w", path, err)
	}
	return &b, nil
}

func (b *Bundle) validate() error {
	if len(b.Features) == 0 {
		return fmt.Errorf("no features")
	}
	for _, name := range b.Features {
		if _, ok := b.Coefficients[name]; !ok {
			return fmt.Errorf("missing coefficient for feature %s", name)
		}
		if _, ok := b.Scaler.Means[name]; !ok {
			return fmt.Errorf("missing scaler mean for feature %s", name)
		}
		if std, ok := b.Scaler.Stds[name]; !ok || std == 0 {
			return fmt.Errorf("missing or zero scaler std for feature %s", name)
		}
	}
	return nil
}

// Scale standardizes raw feature values with the training-data parameters.
func (b *Bundle) Scale(values map[string]float64) map[string]float64 {
	scaled := make(map[string]float64, len(b.Features))
	for _, name := range b.Features {
		scaled[name] = (values[name] - b.Scaler.Means[name]) / b.Scaler.Stds[name]
	}
	return scaled
}

// ExtraversionProbability applies the logistic model to the scaled values.
func (b *Bundle) ExtraversionProbability(values map[string]float64) float64 {
	scaled := b.Scale(values)
	z := b.Intercept
	for _, name := range b.Features {
		z += b.Coefficients[name] * scaled[name]
	}
	return 1 / (1 + math.Exp(-z))
}

// LinearExplainer explains a logistic bundle directly: a feature's local
// contribution is its coefficient times the standardized value.
type LinearExplainer struct {
	Bundle *Bundle
}

// LocalContributions returns the signed per-feature attribution for a case.
func (e LinearExplainer) LocalContributions(values map[string]float64) map[string]float64 {
	scaled := e.Bundle.Scale(values)
	contributions := make(map[string]float64, len(e.Bundle.Features))
	for _, name := range e.Bundle.Features {
		contributions[name] = e.Bundle.Coefficients[name] * scaled[name]
	}
	return contributions
}

// GlobalCoefficients returns a copy of the model coefficients.
func (e LinearExplainer) GlobalCoefficients() map[string]float64 {
	coefficients := make(map[string]float64, len(e.Bundle.Coefficients))
	for name, c := range e.Bundle.Coefficients {
		coefficients[name] = c
	}
	return coefficients
}
