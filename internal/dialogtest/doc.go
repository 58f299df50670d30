// Package dialogtest provides a turn-script harness for dialogue tests.
// Scripts are slices of turn lines, "U: ..." for user contributions and
// "S: ..." for expected system contributions; an empty system line expects
// the engine to stay silent. Scripts run either at the move level, with
// contributions written as term text, or at the natural-language level
// through an Understander and Generator.
package dialogtest
