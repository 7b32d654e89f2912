// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances and visit order, plus the whole-graph
// connectivity check consumed by the fluid-communities partitioner and the
// shortest-path feature class.
//
// BFS explores vertices in increasing distance from a start vertex.
// Neighbor iteration follows core's ID-ascending order, so visit order and
// distances are deterministic for a given graph.
package bfs
