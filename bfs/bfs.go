package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     grid.Coordinate
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *grid.Grid
	opts  BFSOptions
	queue []queueItem
	buf   []grid.Coordinate
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGridNil, ErrOptionViolation or ErrStartNotOpen for invalid
// input, the context error on cancellation, or any OnVisit error.
func BFS(g *grid.Grid, start grid.Coordinate, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsOpen(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotOpen, start)
	}

	n := g.Rows() * g.Cols()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		buf:   make([]grid.Coordinate, 0, 8),
		res: &BFSResult{
			Order:  make([]grid.Coordinate, 0, n),
			Depth:  make(map[grid.Coordinate]int, n),
			Parent: make(map[grid.Coordinate]grid.Coordinate, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{c: start})

	return w.res, w.loop()
}

// ShortestPath returns a minimum-move path from g.Start() to g.Goal().
func ShortestPath(g *grid.Grid, conn grid.Connectivity) ([]grid.Coordinate, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	res, err := BFS(g, g.Start(), WithConnectivity(conn))
	if err != nil {
		return nil, err
	}
	return res.PathTo(g.Goal())
}

// Distance returns the minimum number of moves from g.Start() to g.Goal(),
// or ErrNoPath.
func Distance(g *grid.Grid, conn grid.Connectivity) (int, error) {
	path, err := ShortestPath(g, conn)
	if err != nil {
		return -1, err
	}
	return len(path) - 1, nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.c)
		if err := w.opts.OnVisit(item.c, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.c, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen open neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.buf = w.g.AppendNeighbors(w.buf[:0], item.c, w.opts.Conn)
	for _, nb := range w.buf {
		if _, seen := w.res.Depth[nb]; seen {
			continue
		}
		w.res.Depth[nb] = next
		w.res.Parent[nb] = item.c
		w.queue = append(w.queue, queueItem{c: nb, depth: next})
	}
}
