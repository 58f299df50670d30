// Package nlu defines shared plumbing for natural language understanders:
// YAML configuration for prompted LLM interpreters and the decoding step
// that turns a model's term text into a dialogue move. Provider adapters
// live in sub-packages (openai, anthropic); a dialogue domain may also
// ship its own rule-based understander.
//
// Understanders distinguish two failure modes. A transport or provider
// error is returned as an error. Model output that does not deserialize
// into an allowlisted move is not an error: the understander reports a nil
// move and the engine produces a negative understanding signal.
package nlu
