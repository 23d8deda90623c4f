// Package press_test validates the minimum-press solvers: end-to-end
// answers, edge shapes, pruning and cap behavior, BFS/Dijkstra
// equivalence, and option validation.
package press_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/machinae/machinae/machine"
	"github.com/machinae/machinae/press"
)

// mustParse builds a machine from one input line or fails the test.
func mustParse(t *testing.T, line string) *machine.Machine {
	t.Helper()
	m, err := machine.ParseLine(line)
	require.NoError(t, err)

	return m
}

// ------------------------------------------------------------------------
// 1. End-to-end answers on known machines.
// ------------------------------------------------------------------------

func TestMinPresses_KnownAnswers(t *testing.T) {
	cases := []struct {
		line string
		want int64
	}{
		// Two single-counter buttons plus one joint button: pressing
		// the joint button twice is optimal.
		{"(0) (1) (0,1) {2,2}", 2},
		{"(0) {5}", 5},
		// A zero target is satisfied by the start state.
		{"(0) (1) {0,0}", 0},
		// Mixed machine: (2,2,1) needs the joint button twice plus one
		// single press of (2).
		{"(0,1) (2) {2,2,1}", 3},
	}
	for _, tc := range cases {
		res, err := press.MinPresses(mustParse(t, tc.line))
		require.NoError(t, err, tc.line)
		require.Equal(t, tc.want, res.Cost, tc.line)
	}
}

func TestMinPresses_SingleFullButton(t *testing.T) {
	// One button touching every counter: equal targets v cost exactly v,
	// unequal targets are unreachable.
	res, err := press.MinPresses(mustParse(t, "(0,1,2) {4,4,4}"))
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Cost)

	_, err = press.MinPresses(mustParse(t, "(0,1,2) {4,5,4}"))
	require.ErrorIs(t, err, press.ErrUnreachable)
}

// ------------------------------------------------------------------------
// 2. Edge shapes and unreachability.
// ------------------------------------------------------------------------

func TestMinPresses_NoButtonsNonZeroTarget(t *testing.T) {
	_, err := press.MinPresses(&machine.Machine{Target: []int{1}})
	require.ErrorIs(t, err, press.ErrUnreachable)
}

func TestMinPresses_NoButtonsZeroTarget(t *testing.T) {
	res, err := press.MinPresses(&machine.Machine{Target: []int{0, 0}})
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Cost)
}

func TestMinPresses_ParityUnreachable(t *testing.T) {
	// The only button adds two to counter 0 per press; an odd target
	// can never be hit, and overshoot pruning exhausts the frontier.
	for _, algo := range []press.Algorithm{press.AlgoBFS, press.AlgoDijkstra} {
		_, err := press.MinPresses(mustParse(t, "(0,0) {3}"), press.WithAlgorithm(algo))
		require.ErrorIs(t, err, press.ErrUnreachable)
	}
}

func TestMinPresses_EmptyButtonIsHarmless(t *testing.T) {
	// An empty button re-produces the current state, which enqueue-time
	// deduplication discards; the answer is unaffected.
	res, err := press.MinPresses(mustParse(t, "() (0) {2}"))
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Cost)
}

func TestMinPresses_NilMachine(t *testing.T) {
	_, err := press.MinPresses(nil)
	require.ErrorIs(t, err, press.ErrNilMachine)
}

func TestMinPresses_NegativeTarget(t *testing.T) {
	m := &machine.Machine{Buttons: []machine.Button{{0}}, Target: []int{-1}}
	_, err := press.MinPresses(m)
	require.ErrorIs(t, err, press.ErrNegativeTarget)
}

// ------------------------------------------------------------------------
// 3. Press cap and total-press ceiling.
// ------------------------------------------------------------------------

func TestMinPresses_PressCapBinds(t *testing.T) {
	m := mustParse(t, "(0) {5}")

	_, err := press.MinPresses(m, press.WithPressCap(3))
	require.ErrorIs(t, err, press.ErrUnreachable)

	res, err := press.MinPresses(m, press.WithPressCap(5))
	require.NoError(t, err)
	require.Equal(t, int64(5), res.Cost)
}

func TestMinPresses_PressCapIsPerButton(t *testing.T) {
	// Two identical buttons under cap 3: the path spends one button,
	// then continues on the other. The cap is never a global failure.
	res, err := press.MinPresses(mustParse(t, "(0) (0) {5}"), press.WithPressCap(3))
	require.NoError(t, err)
	require.Equal(t, int64(5), res.Cost)
}

func TestMinPresses_MaxPressesCeiling(t *testing.T) {
	m := mustParse(t, "(0) {5}")

	_, err := press.MinPresses(m, press.WithMaxPresses(4))
	require.ErrorIs(t, err, press.ErrUnreachable)

	res, err := press.MinPresses(m, press.WithMaxPresses(5))
	require.NoError(t, err)
	require.Equal(t, int64(5), res.Cost)
}

// ------------------------------------------------------------------------
// 4. Invariants: pruning, variant equivalence, idempotence.
// ------------------------------------------------------------------------

func TestMinPresses_NoExpandedStateOvershoots(t *testing.T) {
	m := mustParse(t, "(0) (1) (0,1) (1,2) {3,4,2}")
	for _, algo := range []press.Algorithm{press.AlgoBFS, press.AlgoDijkstra} {
		expanded := 0
		_, err := press.MinPresses(m,
			press.WithAlgorithm(algo),
			press.WithOnExpand(func(s machine.State, _ int64) {
				expanded++
				for i, v := range s {
					if v > m.Target[i] {
						t.Errorf("algo %v expanded overshooting state %v", algo, s)
					}
				}
			}),
		)
		require.NoError(t, err)
		require.Positive(t, expanded)
	}
}

func TestMinPresses_BFSAndDijkstraAgree(t *testing.T) {
	lines := []string{
		"(0) (1) (0,1) {2,2}",
		"(0) {5}",
		"(0,1) (1,2) (0,2) {3,3,3}",
		"(0) (0,1) (1,2,3) (2) {2,3,1,1}",
		"(0,0) (0,1) {4,2}",
	}
	for _, line := range lines {
		m := mustParse(t, line)
		b, berr := press.MinPresses(m, press.WithAlgorithm(press.AlgoBFS))
		d, derr := press.MinPresses(m, press.WithAlgorithm(press.AlgoDijkstra))
		require.Equal(t, berr, derr, line)
		if berr == nil {
			require.Equal(t, b.Cost, d.Cost, line)
		}
	}
}

func TestMinPresses_Idempotent(t *testing.T) {
	m := mustParse(t, "(0) (1) (0,1) {2,2}")
	first, err := press.MinPresses(m)
	require.NoError(t, err)
	second, err := press.MinPresses(m)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// ------------------------------------------------------------------------
// 5. Weighted presses and the breakdown.
// ------------------------------------------------------------------------

func TestMinPresses_WeightedCosts(t *testing.T) {
	m := mustParse(t, "(0) (1) (0,1) {2,2}")

	// The joint button costs 3 per press: four single presses (cost 4)
	// now beat two joint presses (cost 6).
	res, err := press.MinPresses(m, press.WithButtonCosts([]int64{1, 1, 3}))
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Cost)

	// Cheap joint button: two presses, cost 2.
	res, err = press.MinPresses(m,
		press.WithButtonCosts([]int64{5, 5, 1}),
		press.WithReturnPresses(),
	)
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Cost)
	require.Equal(t, []int64{0, 0, 2}, res.PerButton)
}

func TestMinPresses_ReturnPressesUnitCosts(t *testing.T) {
	res, err := press.MinPresses(mustParse(t, "(0) (1) (0,1) {2,2}"), press.WithReturnPresses())
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0, 2}, res.PerButton)

	res, err = press.MinPresses(mustParse(t, "(0) {5}"), press.WithReturnPresses())
	require.NoError(t, err)
	require.Equal(t, []int64{5}, res.PerButton)
}

func TestMinPresses_BreakdownSumsToCost(t *testing.T) {
	res, err := press.MinPresses(mustParse(t, "(0) (0,1) (1,2,3) (2) {2,3,1,1}"), press.WithReturnPresses())
	require.NoError(t, err)
	var sum int64
	for _, n := range res.PerButton {
		sum += n
	}
	require.Equal(t, res.Cost, sum)
}

// ------------------------------------------------------------------------
// 6. Option and cost validation.
// ------------------------------------------------------------------------

func TestMinPresses_OptionViolations(t *testing.T) {
	m := mustParse(t, "(0) {1}")

	_, err := press.MinPresses(m, press.WithPressCap(0))
	require.ErrorIs(t, err, press.ErrOptionViolation)

	_, err = press.MinPresses(m, press.WithMaxPresses(-1))
	require.ErrorIs(t, err, press.ErrOptionViolation)

	_, err = press.MinPresses(m, press.WithAlgorithm(press.Algorithm(99)))
	require.ErrorIs(t, err, press.ErrUnsupportedAlgorithm)
}

func TestMinPresses_CostValidation(t *testing.T) {
	m := mustParse(t, "(0) (1) {1,1}")

	_, err := press.MinPresses(m, press.WithButtonCosts([]int64{1}))
	require.ErrorIs(t, err, press.ErrCostDimension)

	_, err = press.MinPresses(m, press.WithButtonCosts([]int64{1, -2}))
	require.ErrorIs(t, err, press.ErrNegativeCost)

	// Forcing BFS on weighted presses must be refused, not mis-solved.
	_, err = press.MinPresses(m,
		press.WithAlgorithm(press.AlgoBFS),
		press.WithButtonCosts([]int64{1, 2}),
	)
	require.ErrorIs(t, err, press.ErrNonUnitCost)
}
