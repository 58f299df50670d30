// Package engine implements the dialogue move engine: a fixed, ordered list
// of precondition/effect rules applied exactly once per turn to the
// information state. A rule's precondition inspects the state and either
// declines or matches, optionally binding values that its effect receives
// positionally. There is no fixpoint iteration and no enforced exclusivity
// between rules that select the next system move; a later rule silently
// overwrites an earlier one's selection, so the textual rule order is
// load-bearing and must not be rearranged.
package engine
