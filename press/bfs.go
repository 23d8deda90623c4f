package press

import "github.com/machinae/machinae/machine"

// bfsItem pairs a counter state with its BFS depth, its canonical key,
// and the per-button press counts accumulated along this path.
type bfsItem struct {
	state   machine.State
	key     string
	depth   int64
	pressed []int
}

// bfsWalker encapsulates mutable BFS state for a single search.
type bfsWalker struct {
	m       *machine.Machine
	opts    Options
	queue   []bfsItem
	visited map[string]bool
	parent  map[string]pressStep // nil unless ReturnPresses
}

// bfsSearch runs the unit-cost breadth-first search: every press is one
// edge, so the first time the target state is dequeued its depth is the
// minimum press count. States are marked visited at enqueue time, never
// at dequeue time, so no state enters the queue twice.
func bfsSearch(m *machine.Machine, opts Options) (Result, error) {
	w := &bfsWalker{
		m:       m,
		opts:    opts,
		queue:   make([]bfsItem, 0, len(m.Buttons)+1),
		visited: make(map[string]bool),
	}
	if opts.ReturnPresses {
		w.parent = make(map[string]pressStep)
	}

	// Seed with the all-zero state at depth 0.
	start := machine.ZeroState(m.Counters())
	startKey := start.Key()
	w.visited[startKey] = true
	w.queue = append(w.queue, bfsItem{
		state:   start,
		key:     startKey,
		pressed: make([]int, len(m.Buttons)),
	})

	for len(w.queue) > 0 {
		item := w.dequeue()
		w.opts.OnExpand(item.state, item.depth)

		if item.state.Matches(m.Target) {
			res := Result{Cost: item.depth}
			if w.parent != nil {
				res.PerButton = breakdown(w.parent, startKey, item.key, len(m.Buttons))
			}

			return res, nil
		}

		w.expand(item)
	}

	return Result{}, ErrUnreachable
}

// dequeue pops the frontier's oldest item.
func (w *bfsWalker) dequeue() bfsItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// expand tries every button from item's state, honoring the per-button
// press cap, the overshoot rule, and the total-press ceiling, and
// enqueues each state not seen before.
func (w *bfsWalker) expand(item bfsItem) {
	nextDepth := item.depth + 1
	if nextDepth > w.opts.MaxPresses {
		return
	}

	for b := range w.m.Buttons {
		// Cap exceeded: this button is spent for the rest of the path.
		if item.pressed[b] >= w.opts.PressCap {
			continue
		}

		next, ok := item.state.Apply(w.m.Buttons[b], w.m.Target)
		if !ok {
			continue // a counter would overshoot its target
		}

		key := next.Key()
		if w.visited[key] {
			continue
		}
		w.visited[key] = true
		if w.parent != nil {
			w.parent[key] = pressStep{prev: item.key, button: b}
		}

		pressed := make([]int, len(item.pressed))
		copy(pressed, item.pressed)
		pressed[b]++
		w.queue = append(w.queue, bfsItem{
			state:   next,
			key:     key,
			depth:   nextDepth,
			pressed: pressed,
		})
	}
}
