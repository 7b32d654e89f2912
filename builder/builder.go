// SPDX-License-Identifier: MIT
// Package builder: constructor implementations.
//
// Every constructor adds vertices in ascending index order and emits edges
// in a fixed lexicographic order, so two calls with the same parameters
// always produce byte-identical graphs.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/grafeat/core"
)

// Constructor applies a deterministic graph mutation. Constructors MUST
// validate parameters early, return sentinel errors (no panics), and
// preserve determinism for the same parameters and call order.
type Constructor func(g *core.Graph) error

// Minimum sizes per constructor (no magic numbers in validation).
const (
	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 1
	minStarNodes     = 2
)

// VertexID returns the fixed vertex ID for index i: "v0", "v1", ...
// Shared by constructors and tests so fixtures address vertices by index.
func VertexID(i int) string {
	return "v" + strconv.Itoa(i)
}

// BuildGraph creates a new core.Graph with graph options gopts and applies
// all constructors in order. Any constructor error is wrapped with the
// context "BuildGraph: %w" and returned immediately; the partially built
// graph is discarded, never repaired.
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustGraph is BuildGraph for static fixtures with known-valid parameters;
// it panics on error. Intended for canary graphs and tests only.
func MustGraph(gopts []core.GraphOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(gopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// Complete returns a Constructor that builds the complete simple graph K_n.
// Emits each unordered pair {i,j} with i<j exactly once.
func Complete(n int) Constructor { return CompleteAt(n, 0) }

// Cycle returns a Constructor that builds the cycle graph C_n (n ≥ 3).
// Edges are v_i—v_(i+1) for i<n-1 plus the closing edge v_(n-1)—v_0.
func Cycle(n int) Constructor { return CycleAt(n, 0) }

// Path returns a Constructor that builds the path graph P_n.
func Path(n int) Constructor { return PathAt(n, 0) }

// Star returns a Constructor that builds a star: v_0 is the hub, connected
// to the n-1 leaves v_1..v_(n-1).
func Star(n int) Constructor { return StarAt(n, 0) }

// CompleteAt is Complete with vertex indices shifted by off. Composing
// shifted constructors in one BuildGraph call yields disjoint unions, e.g.
// a two-component fixture: BuildGraph(nil, Path(3), CycleAt(4, 3)).
func CompleteAt(n, off int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertexRange(g, "Complete", off, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(VertexID(off+i), VertexID(off+j)); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", off+i, off+j, err)
				}
			}
		}

		return nil
	}
}

// CycleAt is Cycle with vertex indices shifted by off.
func CycleAt(n, off int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertexRange(g, "Cycle", off, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			if err := g.AddEdge(VertexID(off+i), VertexID(off+next)); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", off+i, off+next, err)
			}
		}

		return nil
	}
}

// PathAt is Path with vertex indices shifted by off.
func PathAt(n, off int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertexRange(g, "Path", off, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(VertexID(off+i), VertexID(off+i+1)); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", off+i, off+i+1, err)
			}
		}

		return nil
	}
}

// StarAt is Star with vertex indices shifted by off.
func StarAt(n, off int) Constructor {
	return func(g *core.Graph) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertexRange(g, "Star", off, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(VertexID(off), VertexID(off+i)); err != nil {
				return fmt.Errorf("Star: AddEdge(%d,%d): %w", off, off+i, err)
			}
		}

		return nil
	}
}

// addVertexRange inserts vertices off..off+n-1 in ascending order.
func addVertexRange(g *core.Graph, method string, off, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(VertexID(off + i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, off+i, err)
		}
	}

	return nil
}
