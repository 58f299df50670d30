// Package core provides the foundational semantic types, the information
// state and the collaborator interfaces used by DialogMesh. It defines the
// core abstractions for:
//
//   - Moves (the units exchanged between dialogue participants)
//   - Propositions and Questions (closed base variants, open for domain extension)
//   - Beliefs and PlanItems (private attitudes and pending response obligations)
//   - Symbolic constants (named singletons scoped to a Sort)
//   - The Information State (the single mutable aggregate updated each turn)
//   - Pluggable collaborators: Domain (knowledge source), Understander (NLU)
//     and Generator (NLG)
//
// The package intentionally keeps implementation concerns (rule application,
// pragmatic reasoning, term serialization, concrete domains) out of scope,
// exposing small interfaces so the engine never depends on domain internals.
package core
