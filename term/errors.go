package term

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks term text that is not syntactically valid.
	ErrParse = errors.New("malformed term text")

	// ErrUnregistered marks syntactically valid term text referencing a
	// constructor or constant outside the active allowlist.
	ErrUnregistered = errors.New("unregistered symbol")

	// ErrBadArguments marks a registered constructor applied to arguments of
	// the wrong number or kind.
	ErrBadArguments = errors.New("bad constructor arguments")
)

// DeserializationError is the single error kind exposed to callers of Parse.
// It carries the original input, the offending fragment and the specific
// cause (ErrParse, ErrUnregistered or ErrBadArguments).
type DeserializationError struct {
	Text     string
	Fragment string
	Err      error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("cannot deserialize %q: %v at %q", e.Text, e.Err, e.Fragment)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

func deserializationError(text, fragment string, cause error) *DeserializationError {
	return &DeserializationError{Text: text, Fragment: fragment, Err: cause}
}
