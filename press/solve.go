// Package press - unified dispatcher for the minimum-press solvers.
//
// This file provides the canonical entry point, MinPresses, which
// validates the machine and options, handles the trivial shapes, and
// routes to the requested search variant (BFS or Dijkstra).
//
// Design principles:
//   - Deterministic: buttons expand in machine order; no randomness.
//   - Strict sentinels: only errors from types.go; fmt.Errorf wraps them
//     with context where useful.
//   - One canonical reference solver (Dijkstra); BFS is the optimized
//     special case the dispatcher proves safe before using.
package press

import (
	"fmt"

	"github.com/machinae/machinae/machine"
)

// MinPresses returns the minimum total cost of button applications that
// drives the all-zero counter vector to m.Target, applying one button at
// a time. Every derived state obeys the overshoot rule: no counter ever
// exceeds its target entry. Each button is applied at most
// Options.PressCap times along any one path.
//
// Returns ErrUnreachable when the target cannot be reached within those
// bounds; this is definitive whenever every counter is touched by at
// least one button, and best-effort otherwise (see package doc).
//
// Complexity: the reachable state space is at most ∏(target[i]+1)
// states; with S states and b buttons the search runs in
// O(S·b·log S) time and O(S) space for the visited/cost map.
func MinPresses(m *machine.Machine, opts ...Option) (Result, error) {
	// Stage 1 — build and validate Options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// Stage 2 — validate the machine shape.
	if m == nil {
		return Result{}, ErrNilMachine
	}
	for i, t := range m.Target {
		if t < 0 {
			return Result{}, fmt.Errorf("%w: target[%d]=%d", ErrNegativeTarget, i, t)
		}
	}

	// Stage 3 — normalize button costs (nil means unit cost).
	costs, unit, err := normalizeCosts(o.Costs, len(m.Buttons))
	if err != nil {
		return Result{}, err
	}

	// Stage 4 — trivial shapes, answered without searching.
	// All-zero target: the start state already matches.
	if m.ZeroTarget() {
		res := Result{Cost: 0}
		if o.ReturnPresses {
			res.PerButton = make([]int64, len(m.Buttons))
		}

		return res, nil
	}
	// No buttons but a non-zero target: nothing can ever move a counter.
	if len(m.Buttons) == 0 {
		return Result{}, ErrUnreachable
	}

	// Stage 5 — route by algorithm.
	switch o.Algo {
	case AlgoAuto:
		if unit {
			return bfsSearch(m, o)
		}

		return dijkstraSearch(m, o, costs)

	case AlgoBFS:
		// BFS order equals cost order only on unit edges; refuse
		// anything else rather than return a silently wrong minimum.
		if !unit {
			return Result{}, ErrNonUnitCost
		}

		return bfsSearch(m, o)

	case AlgoDijkstra:
		return dijkstraSearch(m, o, costs)

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// normalizeCosts validates an optional cost vector against the button
// count and reports whether all costs are one.
func normalizeCosts(costs []int64, buttons int) ([]int64, bool, error) {
	if costs == nil {
		unit := make([]int64, buttons)
		for i := range unit {
			unit[i] = 1
		}

		return unit, true, nil
	}
	if len(costs) != buttons {
		return nil, false, fmt.Errorf("%w: got %d costs for %d buttons", ErrCostDimension, len(costs), buttons)
	}
	allOne := true
	for i, c := range costs {
		if c < 0 {
			return nil, false, fmt.Errorf("%w: cost[%d]=%d", ErrNegativeCost, i, c)
		}
		if c != 1 {
			allOne = false
		}
	}

	return costs, allOne, nil
}

// pressStep records how a state was first (or most cheaply) reached:
// the predecessor state's key and the button pressed to get here.
// Reconstruction walks these links back to the zero state.
type pressStep struct {
	prev   string
	button int
}

// breakdown walks the step links from the target key back to the start
// key, counting per-button presses of the reconstructed solution.
func breakdown(parent map[string]pressStep, startKey, targetKey string, buttons int) []int64 {
	per := make([]int64, buttons)
	for key := targetKey; key != startKey; {
		step := parent[key]
		per[step.button]++
		key = step.prev
	}

	return per
}
