package placement

import (
	"fmt"

	"github.com/katalvlaran/terrain/gridstore"
)

// queueItem pairs a tile index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	bounds      gridstore.Bounds
	opts        Options
	feasible    Predicate
	traversable Predicate
	queue       []queueItem
	seen        []bool
	visited     int
}

// Search returns the feasible tile closest by BFS depth to any of starts.
//
// Start tiles are enqueued in order, duplicates dropped, and evaluated
// regardless of traversable. Returns ErrNoStarts, ErrStartOutOfBounds,
// ErrOptionViolation, or ErrNotFound when every reachable tile was visited
// without a match.
func Search(bounds gridstore.Bounds, starts []gridstore.Location, feasible, traversable Predicate, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}

	w := &walker{
		bounds:      bounds,
		opts:        o,
		feasible:    feasible,
		traversable: traversable,
		queue:       make([]queueItem, 0, len(starts)),
		seen:        make([]bool, bounds.Len()),
	}
	for _, s := range starts {
		if !bounds.InBounds(s) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, s.X, s.Y)
		}
		w.enqueue(bounds.Index(s), 0)
	}

	return w.loop()
}

// enqueue marks idx seen and appends it once.
func (w *walker) enqueue(idx, depth int) {
	if w.seen[idx] {
		return
	}
	w.seen[idx] = true
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

// loop dequeues until a feasible tile is found or the queue drains.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		loc := w.bounds.Coordinate(item.idx)
		w.visited++
		w.opts.OnVisit(loc, item.depth)

		if w.feasible(loc) {
			return &Result{Location: loc, Depth: item.depth, Visited: w.visited}, nil
		}
		w.expand(loc, item.depth)
	}
	return nil, fmt.Errorf("%w: visited %d tiles", ErrNotFound, w.visited)
}

// expand enqueues the unseen admitted neighbors of loc within MaxDepth.
func (w *walker) expand(loc gridstore.Location, depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range gridstore.Offsets(w.opts.Connectivity) {
		n := loc.Add(d[0], d[1])
		if !w.bounds.InBounds(n) {
			continue
		}
		idx := w.bounds.Index(n)
		if !w.seen[idx] && w.traversable(n) {
			w.enqueue(idx, next)
		}
	}
}

// Footprint returns a predicate that reports whether a size footprint with
// its lower-left corner on the tested tile fits on g under opts.
func Footprint(g *gridstore.Grid, size gridstore.Size, opts gridstore.BuildOptions) Predicate {
	return func(loc gridstore.Location) bool {
		return g.CanBuildFootprint(size, loc, opts)
	}
}
