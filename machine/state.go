package machine

import "strconv"

// State is an ordered counter vector: one reachable point in a machine's
// search space. States are value-like: derive new ones with Apply, never
// mutate a shared instance.
type State []int

// ZeroState returns the all-zero start state for n counters.
func ZeroState(n int) State { return make(State, n) }

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Key renders s as a canonical string for use as a map key. Structural
// equality of states is exactly equality of keys; no hand-rolled hash
// mixing is involved.
func (s State) Key() string {
	// Worst case a counter needs a few digits plus a separator; 4 bytes
	// per entry is a reasonable starting capacity.
	buf := make([]byte, 0, len(s)*4)
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}

// Matches reports whether s equals the target vector position by position.
func (s State) Matches(target []int) bool {
	if len(s) != len(target) {
		return false
	}
	for i, v := range s {
		if v != target[i] {
			return false
		}
	}

	return true
}

// Apply derives the state reached by pressing b once from s, honoring the
// overshoot pruning rule: if any counter would exceed its target entry
// the transition is invalid and Apply returns (nil, false).
//
// Indices in b outside [0, len(s)) are ignored; duplicate indices each
// contribute one increment. s itself is never modified.
func (s State) Apply(b Button, target []int) (State, bool) {
	next := s.Clone()
	for _, idx := range b {
		if idx < 0 || idx >= len(next) {
			continue
		}
		next[idx]++
		if next[idx] > target[idx] {
			return nil, false
		}
	}

	return next, true
}
