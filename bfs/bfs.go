package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grafeat/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Result holds the outcome of one BFS run.
type Result struct {
	// Order lists vertex IDs in visit order, starting with the root.
	Order []string

	// Depth maps each reached vertex ID to its unweighted distance from
	// the root. Unreached vertices are absent.
	Depth map[string]int
}

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// Distances runs breadth-first search on g starting from startID and
// returns visit order plus per-vertex depths.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, and
// ErrNeighbors (wrapped) if the graph fails during iteration.
// Complexity: O(V + E).
func Distances(g *core.Graph, startID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order: make([]string, 0, n),
		Depth: make(map[string]int, n),
	}

	queue := make([]queueItem, 0, n)
	queue = append(queue, queueItem{id: startID})
	res.Depth[startID] = 0

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)

		nbs, err := g.NeighborIDs(item.id)
		if err != nil {
			return nil, fmt.Errorf("%w: NeighborIDs(%s): %w", ErrNeighbors, item.id, err)
		}
		for _, nb := range nbs {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = item.depth + 1
			queue = append(queue, queueItem{id: nb, depth: item.depth + 1})
		}
	}

	return res, nil
}

// IsConnected reports whether every vertex of g is reachable from the
// ID-smallest vertex. The empty graph is considered connected.
// Directedness is ignored only in the sense that reachability follows
// stored adjacency; callers needing undirected semantics should build an
// undirected graph.
// Complexity: O(V + E).
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return true, nil
	}

	res, err := Distances(g, vertices[0])
	if err != nil {
		return false, err
	}

	return len(res.Depth) == len(vertices), nil
}
