// Package press defines configuration options, sentinel errors, and the
// result type for the minimum-press search over counter machines.
package press

import (
	"errors"
	"fmt"
	"math"

	"github.com/machinae/machinae/machine"
)

// Sentinel errors returned by MinPresses.
var (
	// ErrNilMachine indicates a nil *machine.Machine was passed in.
	ErrNilMachine = errors.New("press: machine is nil")

	// ErrNegativeTarget indicates a target vector with a negative entry.
	ErrNegativeTarget = errors.New("press: target entries must be non-negative")

	// ErrUnreachable indicates the target was not reached before the
	// frontier exhausted. This is a best-effort verdict bounded by the
	// press cap; see the package documentation for when it is a proof.
	ErrUnreachable = errors.New("press: target not reachable within search bounds")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("press: unsupported algorithm")

	// ErrNonUnitCost indicates BFS was requested for a machine whose
	// button costs are not all one; BFS only guarantees optimality on
	// unit-cost edges.
	ErrNonUnitCost = errors.New("press: BFS requires unit button costs")

	// ErrCostDimension indicates a cost vector whose length does not
	// match the machine's button count.
	ErrCostDimension = errors.New("press: cost vector length must match button count")

	// ErrNegativeCost indicates a negative button cost.
	ErrNegativeCost = errors.New("press: button costs must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("press: invalid option supplied")
)

// DefaultPressCap bounds how many times any single button may be pressed
// along one path. It keeps the search finite even when a button touches
// no target-capped counter. The bound is explicit and configurable via
// WithPressCap; results are proven optimal only when it is non-binding.
const DefaultPressCap = 100

// Algorithm selects the search variant used by MinPresses.
type Algorithm int

const (
	// AlgoAuto picks BFS when every button cost is one (where the two
	// are provably equivalent) and Dijkstra otherwise.
	AlgoAuto Algorithm = iota

	// AlgoBFS forces the unit-cost breadth-first search.
	AlgoBFS

	// AlgoDijkstra forces the cost-ordered reference search.
	AlgoDijkstra
)

// Options holds parameters and callbacks customizing the search.
type Options struct {
	// Algo selects the search variant; AlgoAuto by default.
	Algo Algorithm

	// PressCap limits how often each individual button may be pressed
	// along one path. Exceeding the cap disables that button for the
	// rest of the path; it is never a global failure.
	PressCap int

	// MaxPresses, if set below math.MaxInt64, stops exploring states
	// whose accumulated cost exceeds it.
	MaxPresses int64

	// Costs assigns a per-press cost to each button. Nil means unit
	// cost everywhere (the classic puzzle).
	Costs []int64

	// ReturnPresses requests a per-button press breakdown of one
	// optimal solution in Result.PerButton.
	ReturnPresses bool

	// OnExpand is called once for every state the search finalizes,
	// with the state and its minimum cost. Useful for instrumentation
	// and invariant checks in tests.
	OnExpand func(s machine.State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option configures MinPresses via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: AlgoAuto,
// PressCap=DefaultPressCap, no total-cost ceiling, unit costs, no
// breakdown, no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Algo:       AlgoAuto,
		PressCap:   DefaultPressCap,
		MaxPresses: math.MaxInt64,
		OnExpand:   func(machine.State, int64) {},
	}
}

// WithAlgorithm selects the search variant.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithPressCap sets the per-button application cap.
//
//	k > 0: each button may be pressed at most k times per path
//	k <= 0: invalid option → ErrOptionViolation
func WithPressCap(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: PressCap must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.PressCap = k
	}
}

// WithMaxPresses caps the total accumulated cost the search explores.
// States beyond the cap are treated as unreachable.
func WithMaxPresses(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxPresses cannot be negative (%d)", ErrOptionViolation, c)

			return
		}
		o.MaxPresses = c
	}
}

// WithButtonCosts assigns per-press costs, one entry per button in
// machine order. Length and sign are validated against the machine
// inside MinPresses (ErrCostDimension, ErrNegativeCost).
func WithButtonCosts(costs []int64) Option {
	return func(o *Options) {
		o.Costs = costs
	}
}

// WithReturnPresses enables the per-button breakdown in Result.PerButton.
func WithReturnPresses() Option {
	return func(o *Options) {
		o.ReturnPresses = true
	}
}

// WithOnExpand registers a callback invoked for every finalized state.
func WithOnExpand(fn func(s machine.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a successful search.
//
// Cost is the minimum total press cost (equal to the press count under
// unit costs). PerButton, present only when WithReturnPresses was set,
// counts how often each button is pressed in one optimal solution;
// multiple optima may exist, and which one is reported is deterministic
// for a given machine and options.
type Result struct {
	Cost      int64
	PerButton []int64
}
