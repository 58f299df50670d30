package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/dialogmesh/core"
)

// Entry is a single transcript line. Move carries the term text of the
// contribution when one was interpreted or selected; it is empty for
// utterances the system could not understand.
type Entry struct {
	Speaker   string    `json:"speaker"` // "user" or "system"
	Utterance string    `json:"utterance"`
	Move      string    `json:"move,omitempty"`
	Time      time.Time `json:"time"`
}

// Session binds a dialogue state to an identifier and a transcript.
//
// Contract:
//   - transcript mutations update the Updated timestamp
//   - Transcript returns a defensive copy to avoid external mutation
//   - State is owned by the session; run dialogue turns through Turn so
//     the session processes one turn at a time.
type Session struct {
	ID      string      `json:"id"`
	State   *core.State `json:"-"`
	Created time.Time   `json:"created"`
	Updated time.Time   `json:"updated"`

	mu         sync.RWMutex
	transcript []Entry
	turnMu     sync.Mutex
}

// Turn runs fn while holding the session's turn lock, serializing dialogue
// turns on the same session.
func (s *Session) Turn(fn func() error) error {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()
	return fn()
}

// New creates a session with a fresh dialogue state for the given domain.
func New(domain core.Domain) *Session {
	now := time.Now()
	return &Session{
		ID:      uuid.NewString(),
		State:   core.NewState(domain),
		Created: now,
		Updated: now,
	}
}

// AppendUser records a user contribution.
func (s *Session) AppendUser(utterance, move string) {
	s.append(Entry{Speaker: "user", Utterance: utterance, Move: move})
}

// AppendSystem records a system contribution.
func (s *Session) AppendSystem(utterance, move string) {
	s.append(Entry{Speaker: "system", Utterance: utterance, Move: move})
}

func (s *Session) append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.Time = time.Now()
	s.transcript = append(s.transcript, e)
	s.Updated = e.Time
}

// Transcript returns a copy of the transcript so far.
func (s *Session) Transcript() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Turns reports the number of transcript entries.
func (s *Session) Turns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcript)
}

// Store persists sessions for the lifetime of a conversation.
type Store interface {
	Create(domain core.Domain) (*Session, error)
	Get(id string) (*Session, bool)
	Delete(id string)
}
