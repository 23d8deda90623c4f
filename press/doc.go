// Package press finds the minimum number of button presses (or the
// minimum total press cost) that drives a machine's counters from all
// zeros to its target vector.
//
// What
//
//   - One press of a button atomically increments its listed counters by
//     one; presses accumulate one at a time.
//   - MinPresses searches the state graph whose nodes are counter
//     vectors and whose edges are single presses, returning the optimal
//     total cost or ErrUnreachable.
//   - Two variants behind one dispatcher:
//   - BFS: plain queue, unit costs only, depth is the answer.
//   - Dijkstra: cost-ordered heap with lazy decrease-key; the
//     reference solver, exact for any non-negative button costs.
//   - AlgoAuto proves the unit-cost precondition before picking BFS, so
//     both variants always return the same minimum where both apply.
//
// Pruning
//
//	Every candidate state is checked against the target: if any counter
//	would exceed its target entry, the press is discarded. Counters only
//	move toward the target, never past it, which bounds the reachable
//	space to at most ∏(target[i]+1) states.
//
// Press cap
//
//	Each button may be pressed at most Options.PressCap times along one
//	path (DefaultPressCap = 100). The cap guarantees termination on
//	machines where some button touches no target-capped counter (for
//	example an empty button). It is a bound, not a proof device: a
//	result — including ErrUnreachable — is proven exact only when the
//	cap is non-binding. Whenever every counter appears in at least one
//	button, overshoot pruning alone bounds the search and the cap never
//	binds, making every verdict definitive.
//
// Complexity (S = reachable states, b = buttons)
//
//   - Time:   O(S·b·log S)
//   - Memory: O(S) for the visited/cost map plus heap entries
//
// Usage
//
//	m, _ := machine.ParseLine("(0) (1) (0,1) {2,2}")
//	res, err := press.MinPresses(m)
//	// res.Cost == 2: press the joint button twice
//
//	// Weighted presses force the Dijkstra path:
//	res, err = press.MinPresses(m,
//	    press.WithButtonCosts([]int64{3, 1, 5}),
//	    press.WithReturnPresses(),
//	)
//
// Errors
//
//   - ErrNilMachine, ErrNegativeTarget   for invalid machines.
//   - ErrCostDimension, ErrNegativeCost  for invalid cost vectors.
//   - ErrNonUnitCost                     if AlgoBFS is forced on weighted presses.
//   - ErrUnsupportedAlgorithm            for unknown Algorithm values.
//   - ErrOptionViolation                 for invalid Option arguments.
//   - ErrUnreachable                     when the search exhausts its frontier.
package press
