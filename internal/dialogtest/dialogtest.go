package dialogtest

import (
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/engine"
	"github.com/hupe1980/dialogmesh/term"
)

// Responder is the minimal bot surface the natural-language harness drives.
type Responder interface {
	Respond(ctx context.Context, utterance string) (string, bool, error)
	SystemTurn() (string, bool, error)
}

// RunMoves plays a turn script at the move level against a fresh engine
// turn per system line. User lines are parsed as term text and stored as
// interpreted input; system lines are compared against the engine's
// selected move.
func RunMoves(t *testing.T, reg *term.Registry, eng *engine.Engine, state *core.State, turns []string) {
	t.Helper()
	for _, turn := range turns {
		speaker, content := splitTurn(t, turn)
		switch speaker {
		case "U":
			move, err := term.Parse(reg, content)
			if err != nil {
				t.Fatalf("cannot parse user move %q: %v", content, err)
			}
			userMove, ok := move.(core.Move)
			if !ok {
				t.Fatalf("user term %q is not a move (%T)", content, move)
			}
			state.UserInput = &core.UserInput{Move: userMove}
		case "S":
			var expected core.Move
			if content != "" {
				parsed, err := term.Parse(reg, content)
				if err != nil {
					t.Fatalf("cannot parse expected system move %q: %v", content, err)
				}
				expected = parsed.(core.Move)
			}
			actual, _ := eng.RunTurn(state)
			if actual != expected {
				t.Fatalf("expected system move %v, got %v", expected, actual)
			}
		default:
			t.Fatalf("unknown speaker %q in turn %q", speaker, turn)
		}
	}
}

// FailedInput marks a user turn whose interpretation failed; use it as the
// content of a "U:" line in move-level scripts.
const FailedInput = "<uninterpretable>"

// RunMovesWithFailures behaves like RunMoves but treats FailedInput user
// lines as inputs whose interpretation yielded no move.
func RunMovesWithFailures(t *testing.T, reg *term.Registry, eng *engine.Engine, state *core.State, turns []string) {
	t.Helper()
	for _, turn := range turns {
		speaker, content := splitTurn(t, turn)
		if speaker == "U" && content == FailedInput {
			state.UserInput = &core.UserInput{Utterance: content}
			continue
		}
		RunMoves(t, reg, eng, state, []string{turn})
	}
}

// RunNL plays a turn script at the natural-language level through a bot's
// full interpret/update/generate cycle.
func RunNL(t *testing.T, bot Responder, turns []string) {
	t.Helper()
	ctx := context.Background()
	var pendingUtterance *string
	for _, turn := range turns {
		speaker, content := splitTurn(t, turn)
		switch speaker {
		case "U":
			utterance := content
			pendingUtterance = &utterance
		case "S":
			var (
				actual    string
				responded bool
				err       error
			)
			if pendingUtterance == nil {
				actual, responded, err = bot.SystemTurn()
			} else {
				actual, responded, err = bot.Respond(ctx, *pendingUtterance)
				pendingUtterance = nil
			}
			if err != nil {
				t.Fatalf("turn failed when expecting %q: %v", content, err)
			}
			if content == "" {
				if responded {
					t.Fatalf("expected silence, got %q", actual)
				}
				continue
			}
			if !responded {
				t.Fatalf("expected %q, system stayed silent", content)
			}
			if actual != content {
				t.Fatalf("expected %q, got %q", content, actual)
			}
		}
	}
}

func splitTurn(t *testing.T, turn string) (speaker, content string) {
	t.Helper()
	speaker, content, found := strings.Cut(turn, ":")
	if !found {
		t.Fatalf("malformed turn %q, want \"U: ...\" or \"S: ...\"", turn)
	}
	return speaker, strings.TrimSpace(content)
}
