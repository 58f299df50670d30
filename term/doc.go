// Package term serializes semantic terms as text and rebuilds them from
// untrusted input. The textual form is a restricted call-expression syntax:
// constructor calls with positional arguments (Ask(Why())), list literals,
// bare registered symbol names and string/number/boolean/None literals.
// Operators, comprehensions and arbitrary calls are rejected.
//
// Construction is driven by an explicit Registry of permitted constructor
// names and symbolic constants; nothing outside the registry can ever be
// instantiated. The allowlist check happens before any construction, which
// is the only line of defense against treating untrusted text (for example
// language-model output) as executable code.
package term
