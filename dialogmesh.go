// Package dialogmesh provides a high-level façade over the dialogue move
// engine, bundling a domain, an understander and a generator into a Bot
// that turns user utterances into system utterances. Most applications
// interact with this package by:
//  1. Creating a Bot via New() with a domain and its language components
//  2. Calling SystemTurn() once to obtain the system's opening contribution
//  3. Calling Respond() per user utterance
//
// The façade delegates move selection to engine.Engine while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply an LLM understander
// and a structured logger.
package dialogmesh

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/engine"
	"github.com/hupe1980/dialogmesh/logging"
)

// Options configures a Bot.
type Options struct {
	// Understander maps user utterances to dialogue moves. Required for
	// Respond; SystemTurn works without one.
	Understander core.Understander

	// Generator renders selected system moves as natural language.
	Generator core.Generator

	// Engine overrides the default dialogue move engine.
	Engine *engine.Engine

	// State resumes an existing dialogue state instead of starting fresh.
	State *core.State

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Bot drives one dialogue: it holds the information state and runs the
// interpret, update and generate cycle once per turn. A Bot is not safe for
// concurrent use; serialize turns per dialogue.
type Bot struct {
	state        *core.State
	understander core.Understander
	generator    core.Generator
	engine       *engine.Engine
	logger       logging.Logger
	turn         int
}

// New creates a Bot for the given domain with optional overrides.
func New(domain core.Domain, optFns ...func(o *Options)) *Bot {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Engine == nil {
		opts.Engine = engine.New(func(o *engine.Options) {
			o.Logger = opts.Logger
		})
	}
	if opts.State == nil {
		opts.State = core.NewState(domain)
	}
	return &Bot{
		state:        opts.State,
		understander: opts.Understander,
		generator:    opts.Generator,
		engine:       opts.Engine,
		logger:       opts.Logger,
	}
}

// State exposes the underlying information state, mainly for persistence
// and inspection.
func (b *Bot) State() *core.State { return b.state }

// SystemTurn runs one engine cycle without user input, producing the
// system's own contribution if its plan calls for one. The boolean reports
// whether the system had anything to say.
func (b *Bot) SystemTurn() (string, bool, error) {
	b.state.UserInput = nil
	return b.selectAndGenerate()
}

// Respond interprets the utterance, runs one engine cycle and renders the
// selected move. A false boolean means the system stays silent this turn.
func (b *Bot) Respond(ctx context.Context, utterance string) (string, bool, error) {
	if b.understander == nil {
		return "", false, fmt.Errorf("no understander configured")
	}
	start := time.Now()
	move, err := b.understander.Interpret(ctx, utterance)
	if err != nil {
		return "", false, fmt.Errorf("interpret utterance: %w", err)
	}
	b.logger.Debug("Utterance interpreted",
		"utterance", utterance,
		"understood", move != nil,
		"duration", time.Since(start),
	)
	b.state.UserInput = &core.UserInput{Utterance: utterance, Move: move}
	return b.selectAndGenerate()
}

func (b *Bot) selectAndGenerate() (string, bool, error) {
	if b.generator == nil {
		return "", false, fmt.Errorf("no generator configured")
	}
	b.turn++
	start := time.Now()
	move, ok := b.engine.RunTurn(b.state)
	if !ok {
		b.logger.Debug("Turn completed silently", "turn", b.turn)
		return "", false, nil
	}
	text, err := b.generator.Generate(move)
	if err != nil {
		return "", false, fmt.Errorf("generate response: %w", err)
	}
	b.logger.Info("Turn completed",
		"turn", b.turn,
		"system_move", fmt.Sprintf("%v", move),
		"duration", time.Since(start),
	)
	return text, true, nil
}
