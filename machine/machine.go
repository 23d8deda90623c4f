// Package machine — core types for button-press machine puzzles.
package machine

import "errors"

// Sentinel errors for machine construction and parsing.
var (
	// ErrMissingTarget indicates an input line with no {…} target token.
	ErrMissingTarget = errors.New("machine: input line has no target vector")

	// ErrEmptyInput indicates a reader that produced no machines at all.
	ErrEmptyInput = errors.New("machine: input contains no machines")
)

// Button lists the counter indices incremented by one when the button is
// pressed once. Duplicate indices are independent increments (a button
// (0,0) adds two to counter 0 per press). Indices outside the machine's
// counter range are ignored at application time.
type Button []int

// Machine is one puzzle instance, fully determined by its input line and
// immutable after construction.
//
// Buttons — the press operations, in input order (the order fixes each
// button's index for reporting purposes only).
// Target  — the goal counter vector; entries are non-negative.
// Lights  — optional toggle target from a [.##.] token; nil when the
// line has none. true = the light must end up on.
type Machine struct {
	Buttons []Button
	Target  []int
	Lights  []bool
}

// Counters reports the size of the machine's counter space.
func (m *Machine) Counters() int { return len(m.Target) }

// ZeroTarget reports whether every target entry is zero, in which case
// the start state already satisfies the machine.
func (m *Machine) ZeroTarget() bool {
	for _, t := range m.Target {
		if t != 0 {
			return false
		}
	}

	return true
}
