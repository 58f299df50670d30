// Package session tracks dialogue sessions: an identified dialogue state
// plus the transcript of user and system contributions. The Store interface
// abstracts persistence; InMemoryStore is the built-in volatile backend.
//
// Add additional backends (Redis, Postgres, etc.) in sub-packages without
// changing any calling code; only the wiring layer needs to decide which
// implementation to instantiate.
package session
