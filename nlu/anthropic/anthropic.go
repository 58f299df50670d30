// Package anthropic provides an Understander backed by the Anthropic
// Messages API. The model is prompted to emit a single dialogue move in
// term text; the reply is deserialized against the domain's registry.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/nlu"
	"github.com/hupe1980/dialogmesh/term"
)

// Compile-time check.
var _ core.Understander = (*Understander)(nil)

// Options configure the Anthropic understander.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	Prompt      string
	APIKey      string
	Logger      logging.Logger
}

// FromConfig applies a loaded nlu.Config to the options.
func FromConfig(cfg *nlu.Config) func(o *Options) {
	return func(o *Options) {
		if cfg.Model != "" {
			o.Model = anthropic.Model(cfg.Model)
		}
		o.Temperature = cfg.Temperature
		if cfg.MaxTokens > 0 {
			o.MaxTokens = cfg.MaxTokens
		}
		o.Prompt = cfg.Prompt
	}
}

// Understander interprets utterances through the Anthropic Messages API.
type Understander struct {
	client *anthropic.Client
	reg    *term.Registry
	opts   Options
}

// New creates an understander using the official client.
func New(reg *term.Registry, optFns ...func(o *Options)) *Understander {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Understander{client: &client, reg: reg, opts: opts}
}

// NewFromClient creates an understander from an existing client.
func NewFromClient(client *anthropic.Client, reg *term.Registry, optFns ...func(o *Options)) *Understander {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Understander{client: client, reg: reg, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0,
		MaxTokens:   128,
		Logger:      logging.NoOpLogger{},
	}
}

// Interpret sends the utterance to the model and deserializes the reply.
// A reply outside the registry's vocabulary yields a nil move and no error.
func (u *Understander) Interpret(ctx context.Context, utterance string) (core.Move, error) {
	resp, err := u.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       u.opts.Model,
		MaxTokens:   u.opts.MaxTokens,
		Temperature: anthropic.Float(u.opts.Temperature),
		System:      []anthropic.TextBlockParam{{Text: u.opts.Prompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(utterance)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	u.opts.Logger.Debug("Message response received", "move_text", text)

	move, err := nlu.DecodeMove(u.reg, text)
	if err != nil {
		u.opts.Logger.Warn("Move deserialization failed", "utterance", utterance, "error", err)
		return nil, nil
	}
	return move, nil
}
