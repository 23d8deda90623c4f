package press

import (
	"container/heap"

	"github.com/machinae/machinae/machine"
)

// dijkstraSearch is the reference solver: a cost-ordered search over the
// counter state graph. On unit costs it degenerates to BFS; with
// arbitrary non-negative button costs it remains exact.
//
// It uses the lazy-decrease-key strategy: finding a cheaper route to a
// known state pushes a fresh heap entry instead of reordering the old
// one; stale entries are recognized on pop (recorded best cost is lower
// than the popped cost) and skipped. The first time the target state is
// popped, its cost is optimal, so the search returns immediately.
func dijkstraSearch(m *machine.Machine, opts Options, costs []int64) (Result, error) {
	r := &dijkstraRunner{
		m:     m,
		opts:  opts,
		costs: costs,
		dist:  make(map[string]int64),
	}
	if opts.ReturnPresses {
		r.parent = make(map[string]pressStep)
	}

	return r.run()
}

// dijkstraRunner holds the mutable state for a single execution.
type dijkstraRunner struct {
	m      *machine.Machine
	opts   Options
	costs  []int64              // per-button press cost, one entry per button
	dist   map[string]int64     // state key → best-known cost from the start
	parent map[string]pressStep // nil unless ReturnPresses
	pq     nodePQ
}

func (r *dijkstraRunner) run() (Result, error) {
	start := machine.ZeroState(r.m.Counters())
	startKey := start.Key()
	r.dist[startKey] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{
		state:   start,
		key:     startKey,
		pressed: make([]int, len(r.m.Buttons)),
	})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries: a cheaper route to this state was
		// found after this entry was pushed.
		if item.cost > r.dist[item.key] {
			continue
		}
		// Beyond the total-cost ceiling nothing cheaper remains on the
		// heap, so the target is out of reach.
		if item.cost > r.opts.MaxPresses {
			break
		}

		r.opts.OnExpand(item.state, item.cost)

		if item.state.Matches(r.m.Target) {
			res := Result{Cost: item.cost}
			if r.parent != nil {
				res.PerButton = breakdown(r.parent, startKey, item.key, len(r.m.Buttons))
			}

			return res, nil
		}

		r.relax(item)
	}

	return Result{}, ErrUnreachable
}

// relax tries every button from item's state and pushes each strictly
// cheaper route it discovers.
func (r *dijkstraRunner) relax(item *nodeItem) {
	for b := range r.m.Buttons {
		if item.pressed[b] >= r.opts.PressCap {
			continue
		}

		next, ok := item.state.Apply(r.m.Buttons[b], r.m.Target)
		if !ok {
			continue
		}

		newCost := item.cost + r.costs[b]
		if newCost > r.opts.MaxPresses {
			continue
		}

		key := next.Key()
		if best, seen := r.dist[key]; seen && newCost >= best {
			continue
		}
		r.dist[key] = newCost
		if r.parent != nil {
			r.parent[key] = pressStep{prev: item.key, button: b}
		}

		pressed := make([]int, len(item.pressed))
		copy(pressed, item.pressed)
		pressed[b]++
		heap.Push(&r.pq, &nodeItem{
			state:   next,
			key:     key,
			cost:    newCost,
			pressed: pressed,
		})
	}
}

// nodeItem is one heap entry: a state, its canonical key, the cost at
// which the entry was pushed, and the per-button press counts along the
// route that produced it.
type nodeItem struct {
	state   machine.State
	key     string
	cost    int64
	pressed []int
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
