package nlu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/term"
)

// Config holds the prompt and sampling parameters for an LLM understander.
// It mirrors the YAML files shipped next to a domain, for example:
//
//	model: gpt-4o-mini
//	temperature: 0
//	max_tokens: 128
//	prompt: |
//	  Translate the user's utterance into a dialogue move...
type Config struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
	Prompt      string  `yaml:"prompt"`
}

// LoadConfig reads an understander configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read nlu config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse nlu config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		return nil, fmt.Errorf("nlu config %s: prompt must not be empty", path)
	}
	return &cfg, nil
}

// DecodeMove deserializes model output into a dialogue move using the
// registry's allowlisted vocabulary. Output that parses to a term which is
// not a move is rejected the same way as malformed output.
func DecodeMove(reg *term.Registry, text string) (core.Move, error) {
	v, err := term.Parse(reg, text)
	if err != nil {
		return nil, err
	}
	move, ok := v.(core.Move)
	if !ok {
		return nil, &term.DeserializationError{
			Text:     text,
			Fragment: text,
			Err:      fmt.Errorf("term %T is not a dialogue move", v),
		}
	}
	return move, nil
}
