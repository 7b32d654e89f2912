// Package core defines the central Graph, Vertex, and Edge types used by
// every feature class, and provides thread-safe primitives for building and
// querying graphs.
//
// Graphs here are inputs to feature extraction: once built, the engine
// treats them as strictly read-only. Vertices may carry an optional numeric
// feature vector (Feats) consumed by node-feature classes; graphs without
// per-node features are perfectly valid.
//
// All core APIs use a single sync.RWMutex internally, so you can safely
// build graphs from several goroutines and query them concurrently during
// parallel extraction.
//
// Iteration order is deterministic everywhere: Vertices, NeighborIDs and
// Edges return ID-ascending results, so downstream algorithms are stable
// without extra sorting.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop edges are not supported.
//	ErrBadFeatureDim  - feature vector length disagrees with the graph's.
package core
