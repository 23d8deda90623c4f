// Package machine defines the data model for button-press machine puzzles
// and a pure parser for the one-machine-per-line input grammar.
//
// What
//
//   - Machine: an immutable puzzle instance — a list of Buttons, a Target
//     counter vector, and an optional Lights toggle pattern.
//   - Button: the counter indices a single press increments by one.
//   - State: an ordered counter vector; new states are derived by
//     copy-and-increment, never mutated in place.
//   - ParseLine / ParseReader: turn raw text into Machine values with no
//     shared parser state between lines.
//
// Grammar (whitespace-separated tokens, one machine per non-empty line)
//
//	(i,j,k,…)  a button: the listed counter indices gain one per press
//	{a,b,c,…}  the target counter vector, one entry per counter
//	[.##.]     optional light toggle target ('#' = on)
//
// Any other token is ignored. Numeric fields are read by digit
// accumulation: non-digit bytes inside a token are skipped rather than
// rejected, so a malformed token contributes whatever numbers it carries.
//
// Determinism
//
//	Parsing is a pure function of the input line. Two calls on the same
//	line yield equal machines; machines never change after construction.
//
// Errors
//
//   - ErrMissingTarget  if a line carries no {…} token.
//   - ErrEmptyInput     if a reader yields no machines at all.
//
// See press/ and lights/ for the solvers consuming these types.
package machine
