// Package core: Graph method implementations.
//
// All mutations acquire the write lock; queries acquire the read lock.
// Query results are sorted by vertex ID so that every traversal over a
// graph is deterministic regardless of map iteration order.
package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// SetVertexFeats attaches a numeric feature vector to an existing vertex.
// The first vector establishes the graph-wide feature dimension; later
// vectors must match it or ErrBadFeatureDim is returned.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Graph) SetVertexFeats(id string, feats []float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		return ErrVertexNotFound
	}
	if g.featDim == 0 {
		g.featDim = len(feats)
	} else if len(feats) != g.featDim {
		return ErrBadFeatureDim
	}
	v.Feats = feats

	return nil
}

// AddEdge creates an edge between from and to, inserting missing endpoints.
// Self-loops are rejected with ErrLoopNotAllowed; duplicate edges are a
// no-op. For undirected graphs adjacency is mirrored both ways.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)

	if _, dup := g.adjacency[from][to]; dup {
		return nil // no-op for existing edge
	}
	g.adjacency[from][to] = struct{}{}
	if !g.directed {
		g.adjacency[to][from] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// ensureVertex inserts id if absent. Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.vertices[id]; !exists {
		g.vertices[id] = &Vertex{ID: id}
		g.adjacency[id] = make(map[string]struct{})
	}
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// HasEdge reports whether an edge from→to exists (either direction counts
// on undirected graphs).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[from][to]

	return exists
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexFeats returns the feature vector attached to id, or nil when the
// vertex carries none. Returns ErrVertexNotFound for unknown vertices.
// The returned slice is shared; callers must not mutate it.
func (g *Graph) VertexFeats(id string) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, exists := g.vertices[id]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return v.Feats, nil
}

// FeatureDim returns the per-node feature dimension, 0 when no vertex
// carries features.
func (g *Graph) FeatureDim() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.featDim
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// For directed graphs only outgoing neighbors are returned.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, exists := g.adjacency[id]
	if !exists {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(adj))
	for nb := range adj {
		ids = append(ids, nb)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of neighbors of id (out-degree on directed
// graphs). Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, exists := g.adjacency[id]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(adj), nil
}

// Edges returns every edge exactly once, sorted by (From, To).
// On undirected graphs each edge is reported with From < To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for from, adj := range g.adjacency {
		for to := range adj {
			if !g.directed && from > to {
				continue // mirrored entry; report canonical order only
			}
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges (undirected edges count once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
