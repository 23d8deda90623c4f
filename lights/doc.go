// Package lights finds the minimum number of button presses that toggles
// a machine's lights from all-off to its [.##.] target pattern.
//
// What
//
//   - One press of a button flips (XOR) each light it lists; a duplicate
//     index within one button flips the same light twice and cancels out.
//   - The state is a bitmask of at most 64 lights, so the state space is
//     finite (2ⁿ) and plain breadth-first search with a visited set is
//     both complete and optimal — no press cap or overshoot rule needed.
//
// Complexity (n = lights, b = buttons)
//
//   - Time:   O(2ⁿ·b)
//   - Memory: O(2ⁿ) for the visited set
//
// Usage
//
//	m, _ := machine.ParseLine("[.##.] (0,1) (2) (1,2) {0}")
//	presses, err := lights.MinPresses(m)
//
// Errors
//
//   - ErrNoLightTarget if the machine carries no light pattern.
//   - ErrTooManyLights if the pattern exceeds 64 positions.
//   - ErrUnreachable   if no press sequence produces the pattern.
//   - ErrOptionViolation for invalid Option arguments.
package lights
