// SPDX-License-Identifier: MIT
// Package matrix: graph → matrix adapters.
//
// Vertex order is ID-ascending (core.Graph.Vertices), so the same graph
// always maps to the same matrix.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/grafeat/core"
)

const (
	opAdjacency  = "Adjacency"
	opLaplacian  = "Laplacian"
	opModularity = "Modularity"
)

// Adjacency builds the binary adjacency matrix of g and returns it with
// the vertex IDs in row/column order. Undirected edges produce a symmetric
// matrix; directed edges fill row(from) → col(to) only.
// Complexity: O(V² ) space, O(V log V + E) fill time.
func Adjacency(g *core.Graph) (*Dense, []string, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}

	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opAdjacency, err)
	}
	for _, id := range ids {
		nbs, nerr := g.NeighborIDs(id)
		if nerr != nil {
			return nil, nil, fmt.Errorf("%s: NeighborIDs(%s): %w", opAdjacency, id, nerr)
		}
		row := index[id]
		for _, nb := range nbs {
			a.data[row*n+index[nb]] = 1
		}
	}

	return a, ids, nil
}

// Laplacian builds the combinatorial Laplacian L = D − A of an undirected
// graph, with the same vertex ordering contract as Adjacency.
func Laplacian(g *core.Graph) (*Dense, []string, error) {
	a, ids, err := Adjacency(g)
	if err != nil {
		return nil, nil, matrixErrorf(opLaplacian, err)
	}

	n := len(ids)
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLaplacian, err)
	}
	for i := 0; i < n; i++ {
		var deg float64
		for j := 0; j < n; j++ {
			deg += a.data[i*n+j]
			l.data[i*n+j] = -a.data[i*n+j]
		}
		l.data[i*n+i] = deg
	}

	return l, ids, nil
}

// Modularity builds the modularity matrix B = A − d·dᵀ/(2m) of an
// undirected graph, where d is the degree vector and m the edge count.
// Same vertex ordering contract as Adjacency. Symmetric whenever A is.
// Returns ErrNoEdges when the graph has no edges (2m would be zero).
func Modularity(g *core.Graph) (*Dense, []string, error) {
	a, ids, err := Adjacency(g)
	if err != nil {
		return nil, nil, matrixErrorf(opModularity, err)
	}

	n := len(ids)
	deg := make([]float64, n)
	var twoM float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			deg[i] += a.data[i*n+j]
		}
		twoM += deg[i]
	}
	if twoM == 0 {
		return nil, nil, matrixErrorf(opModularity, ErrNoEdges)
	}

	b, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opModularity, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.data[i*n+j] = a.data[i*n+j] - deg[i]*deg[j]/twoM
		}
	}

	return b, ids, nil
}
