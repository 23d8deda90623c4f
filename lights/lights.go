package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/machinae/machinae/machine"
)

// Sentinel errors for the toggle search.
var (
	// ErrNilMachine indicates a nil *machine.Machine was passed in.
	ErrNilMachine = errors.New("lights: machine is nil")

	// ErrNoLightTarget indicates the machine's input line had no [.##.] token.
	ErrNoLightTarget = errors.New("lights: machine has no light target pattern")

	// ErrTooManyLights indicates a pattern wider than the 64-bit state.
	ErrTooManyLights = errors.New("lights: at most 64 lights are supported")

	// ErrUnreachable indicates no press sequence produces the pattern.
	ErrUnreachable = errors.New("lights: target pattern not reachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lights: invalid option supplied")
)

// Options holds tunable parameters for the toggle search.
type Options struct {
	// MaxPresses, if set below math.MaxInt64, treats deeper states as
	// unreachable.
	MaxPresses int64

	// internal error recorded during option parsing
	err error
}

// Option configures MinPresses via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no press ceiling.
func DefaultOptions() Options {
	return Options{MaxPresses: math.MaxInt64}
}

// WithMaxPresses caps the search depth; negative values are invalid.
func WithMaxPresses(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxPresses cannot be negative (%d)", ErrOptionViolation, c)

			return
		}
		o.MaxPresses = c
	}
}

// maskItem pairs a light bitmask with its BFS depth.
type maskItem struct {
	mask  uint64
	depth int64
}

// MinPresses returns the minimum number of button presses toggling the
// all-off state into m.Lights, or ErrUnreachable if no sequence does.
// Pressing the same button twice restores the lights it touches, so an
// optimal solution never presses any button more than once per parity;
// plain BFS over bitmasks with enqueue-time deduplication is exact.
func MinPresses(m *machine.Machine, opts ...Option) (int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	if m == nil {
		return 0, ErrNilMachine
	}
	if m.Lights == nil {
		return 0, ErrNoLightTarget
	}
	n := len(m.Lights)
	if n > 64 {
		return 0, fmt.Errorf("%w: got %d", ErrTooManyLights, n)
	}

	// Precompute each button's toggle mask; out-of-range indices are
	// ignored, duplicate indices cancel pairwise.
	var target uint64
	for i, on := range m.Lights {
		if on {
			target |= 1 << uint(i)
		}
	}
	masks := make([]uint64, len(m.Buttons))
	for b, btn := range m.Buttons {
		for _, idx := range btn {
			if idx >= 0 && idx < n {
				masks[b] ^= 1 << uint(idx)
			}
		}
	}

	// BFS over bitmask states, visited at enqueue time.
	visited := map[uint64]bool{0: true}
	queue := []maskItem{{mask: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.mask == target {
			return item.depth, nil
		}
		if item.depth+1 > o.MaxPresses {
			continue
		}

		for _, mask := range masks {
			next := item.mask ^ mask
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, maskItem{mask: next, depth: item.depth + 1})
		}
	}

	return 0, ErrUnreachable
}
