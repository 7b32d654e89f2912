package fluidc

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/grafeat/bfs"
	"github.com/katalvlaran/grafeat/core"
)

// unassigned marks a vertex not yet claimed by any community.
const unassigned = -1

// walker encapsulates mutable partition state. Vertices are addressed by
// index into the sorted ID slice so every slice is rng-shuffle friendly.
type walker struct {
	opts      Options
	ids       []string // vertex IDs, ascending
	neighbors [][]int  // adjacency by index, each list ascending
	comm      []int    // vertex index → community, or unassigned
	size      []int    // members per community
	density   []float64
}

// Partition runs the fluid-communities algorithm on g with k communities,
// applying any number of functional Options.
//
// Preconditions are checked before any iteration: g must be non-nil,
// undirected and connected, and 1 ≤ k ≤ |V|. Violations return
// ErrGraphNil, ErrDirected, ErrDisconnected, ErrNonPositiveK or
// ErrKTooLarge without touching the generator.
//
// The returned Result always carries a complete partition, whether the run
// converged or hit the sweep cap.
// Complexity: O(sweeps · (V + E)) time, O(V + E) space.
func Partition(g *core.Graph, k int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if k < 1 {
		return nil, ErrNonPositiveK
	}
	if g.Directed() {
		return nil, ErrDirected
	}
	if k > g.VertexCount() {
		return nil, ErrKTooLarge
	}
	connected, err := bfs.IsConnected(g)
	if err != nil {
		return nil, fmt.Errorf("fluidc: connectivity check: %w", err)
	}
	if !connected {
		return nil, ErrDisconnected
	}

	w, err := newWalker(g, o)
	if err != nil {
		return nil, err
	}
	w.seed(k)

	return w.run(k), nil
}

// newWalker snapshots the graph into index-addressed form.
func newWalker(g *core.Graph, o Options) (*walker, error) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	neighbors := make([][]int, len(ids))
	for i, id := range ids {
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("fluidc: NeighborIDs(%s): %w", id, err)
		}
		row := make([]int, len(nbs))
		for j, nb := range nbs {
			row[j] = index[nb]
		}
		neighbors[i] = row
	}

	comm := make([]int, len(ids))
	for i := range comm {
		comm[i] = unassigned
	}

	return &walker{opts: o, ids: ids, neighbors: neighbors, comm: comm}, nil
}

// seed places the k initial communities on k distinct random vertices,
// each starting with density 1 (one member).
func (w *walker) seed(k int) {
	perm := w.opts.Rng.Perm(len(w.ids))
	w.size = make([]int, k)
	w.density = make([]float64, k)
	for c := 0; c < k; c++ {
		w.comm[perm[c]] = c
		w.size[c] = 1
		w.density[c] = 1
	}
}

// run performs randomized sweeps until convergence or the sweep cap.
func (w *walker) run(k int) *Result {
	order := make([]int, len(w.ids))
	for i := range order {
		order[i] = i
	}

	var (
		iterations int
		converged  bool
	)
	for iter := 1; ; iter++ {
		w.opts.Rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		changed := false
		for _, v := range order {
			if w.step(v) {
				changed = true
			}
		}

		if !changed {
			iterations, converged = iter, true

			break
		}
		if iter > w.opts.MaxIterations {
			iterations, converged = iter, false

			break
		}
	}

	w.claimRemaining()

	return w.result(k, iterations, converged)
}

// claimRemaining assigns vertices the sweep cap left unclaimed, so the
// returned groups always cover the vertex set exactly. Converged runs never
// leave unclaimed vertices; a capped run on a large graph with a tiny cap
// can. Each pass claims at least one vertex on a connected graph, so this
// terminates in at most V passes.
func (w *walker) claimRemaining() {
	for {
		remaining := false
		progressed := false
		for v := range w.comm {
			if w.comm[v] != unassigned {
				continue
			}
			if w.step(v) {
				progressed = true
			} else {
				remaining = true
			}
		}
		if !remaining || !progressed {
			return
		}
	}
}

// step applies the updating rule to vertex v and reports whether v moved.
func (w *walker) step(v int) bool {
	// Density-weighted vote per community, accumulated over v itself and
	// its neighbors. seen keeps first-encounter order so tie-breaking is
	// deterministic for a fixed generator state.
	votes := make(map[int]float64)
	var seen []int

	accumulate := func(u int) {
		c := w.comm[u]
		if c == unassigned {
			return
		}
		if _, ok := votes[c]; !ok {
			seen = append(seen, c)
		}
		votes[c] += w.density[c]
	}
	accumulate(v)
	for _, nb := range w.neighbors[v] {
		accumulate(nb)
	}

	if len(seen) == 0 {
		// Neither v nor any neighbor is assigned yet; v waits for a
		// community front to reach it on a later sweep. Connectivity
		// guarantees some boundary vertex still moves this sweep.
		return false
	}

	maxVote := math.Inf(-1)
	for _, c := range seen {
		if votes[c] > maxVote {
			maxVote = votes[c]
		}
	}
	candidates := seen[:0:0]
	for _, c := range seen {
		if maxVote-votes[c] < voteTolerance {
			candidates = append(candidates, c)
		}
	}

	// Stability bias: staying put counts as no move and favors convergence.
	current := w.comm[v]
	for _, c := range candidates {
		if c == current {
			return false
		}
	}

	next := candidates[w.opts.Rng.Intn(len(candidates))]
	if current != unassigned {
		w.size[current]--
		w.density[current] = densityOf(w.size[current])
	}
	w.comm[v] = next
	w.size[next]++
	w.density[next] = densityOf(w.size[next])

	return true
}

// result groups vertices by community and reports final densities.
func (w *walker) result(k, iterations int, converged bool) *Result {
	communities := make([][]string, k)
	for i := range communities {
		communities[i] = []string{}
	}
	for v, c := range w.comm {
		communities[c] = append(communities[c], w.ids[v])
	}
	densities := make([]float64, k)
	for c := range densities {
		sort.Strings(communities[c])
		densities[c] = densityOf(len(communities[c]))
	}

	return &Result{
		Communities: communities,
		Densities:   densities,
		Converged:   converged,
		Iterations:  iterations,
	}
}

// densityOf is 1 / member count; +Inf for an abandoned community.
func densityOf(size int) float64 {
	if size == 0 {
		return math.Inf(1)
	}

	return 1 / float64(size)
}
