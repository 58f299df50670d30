// Package openai provides an Understander backed by the OpenAI Chat
// Completions API. The model is prompted to emit a single dialogue move in
// term text; the reply is deserialized against the domain's registry.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/nlu"
	"github.com/hupe1980/dialogmesh/term"
)

// Compile-time check.
var _ core.Understander = (*Understander)(nil)

// Options configure the OpenAI understander. Fields mirror a minimal subset
// of Chat Completion parameters; extend via functional options without
// breaking callers.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	Prompt      string
	Logger      logging.Logger
}

// FromConfig applies a loaded nlu.Config to the options.
func FromConfig(cfg *nlu.Config) func(o *Options) {
	return func(o *Options) {
		if cfg.Model != "" {
			o.Model = cfg.Model
		}
		o.Temperature = cfg.Temperature
		if cfg.MaxTokens > 0 {
			o.MaxTokens = cfg.MaxTokens
		}
		o.Prompt = cfg.Prompt
	}
}

// Understander interprets utterances through the OpenAI Chat Completions API.
type Understander struct {
	client *openai.Client
	reg    *term.Registry
	opts   Options
}

// New creates an understander using the default OpenAI client (API key from
// the environment).
func New(reg *term.Registry, optFns ...func(o *Options)) *Understander {
	client := openai.NewClient()
	return NewFromClient(&client, reg, optFns...)
}

// NewFromClient creates an understander from an existing client.
func NewFromClient(client *openai.Client, reg *term.Registry, optFns ...func(o *Options)) *Understander {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0,
		MaxTokens:   128,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Understander{client: client, reg: reg, opts: opts}
}

// Interpret sends the utterance to the model and deserializes the reply.
// A reply outside the registry's vocabulary yields a nil move and no error.
func (u *Understander) Interpret(ctx context.Context, utterance string) (core.Move, error) {
	resp, err := u.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               u.opts.Model,
		Temperature:         openai.Float(u.opts.Temperature),
		MaxCompletionTokens: openai.Int(u.opts.MaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(u.opts.Prompt),
			openai.UserMessage(utterance),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai api error: no choices returned")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	u.opts.Logger.Debug("Chat completion received", "move_text", text)

	move, err := nlu.DecodeMove(u.reg, text)
	if err != nil {
		u.opts.Logger.Warn("Move deserialization failed", "utterance", utterance, "error", err)
		return nil, nil
	}
	return move, nil
}
