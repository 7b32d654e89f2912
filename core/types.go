// Package core: type declarations, sentinel errors and graph options.
//
// This file declares Vertex, Edge, Graph, GraphOption and the NewGraph
// constructor. Method implementations live in graph.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop edge was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadFeatureDim indicates a per-node feature vector whose length does
	// not match the feature dimension already established on the graph.
	ErrBadFeatureDim = errors.New("core: feature vector dimension mismatch")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Feats is an optional numeric feature vector; nil means "no node features".
// All vertices of one graph share a single feature dimension.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Feats is the optional per-node feature vector. It is never mutated by
	// the engine; treat it as read-only once the graph is handed off.
	Feats []float64
}

// Edge represents a connection between two vertices.
//
// For undirected graphs From/To is a canonical ordering (From < To); for
// directed graphs it is the actual direction.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed and undirected simple graphs (no parallel edges,
// no self-loops) with optional per-node feature vectors.
// mu protects vertices, adjacency and the edge count.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed bool // edge directedness

	// Storage
	featDim  int                // established feature dimension, 0 until first Feats
	vertices map[string]*Vertex // vertex ID → Vertex

	// adjacency[from][to] = struct{}{}; mirrored for undirected graphs.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no node features.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
