package features

import (
	"errors"

	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
)

// errDirectedCliques marks directed input; cliques are defined on
// undirected graphs only.
var errDirectedCliques = errors.New("features: cliques require an undirected graph")

// CliqueNumber summarizes per-node maximal clique sizes via
// Bron–Kerbosch enumeration with pivoting. Exponential in the worst case,
// hence medium/slow only.
type CliqueNumber struct{}

// Descriptor implements feature.Class.
func (CliqueNumber) Descriptor() feature.Descriptor {
	return feature.Descriptor{
		Shortname: "CN",
		Name:      "node_clique_number",
		Modes:     []feature.Mode{feature.ModeMedium, feature.ModeSlow},
		Encoding:  "core",
	}
}

// Compute implements feature.Class.
func (CliqueNumber) Compute(rec *feature.Recorder, g *core.Graph, cache *feature.Cache) error {
	rec.AddSequence("clique_sizes", "the distribution of per-node maximal clique sizes",
		feature.Score(3),
		func() ([]float64, error) { return nodeCliqueNumbers(g, cache) })

	rec.AddScalar("graph_clique_number", "the size of the largest clique", feature.Score(4),
		func() (float64, error) {
			sizes, err := nodeCliqueNumbers(g, cache)
			if err != nil {
				return 0, err
			}
			var largest float64
			for _, s := range sizes {
				if s > largest {
					largest = s
				}
			}

			return largest, nil
		})

	return nil
}

// cacheKeyCliques memoizes per-node clique numbers per graph pass.
const cacheKeyCliques = "clique/node_clique_numbers"

// nodeCliqueNumbers returns, per vertex in ID-ascending order, the size of
// the largest maximal clique containing it.
func nodeCliqueNumbers(g *core.Graph, cache *feature.Cache) ([]float64, error) {
	return feature.Memo(cache, cacheKeyCliques, func() ([]float64, error) {
		if g.Directed() {
			return nil, errDirectedCliques
		}

		ids := g.Vertices()
		index := make(map[string]int, len(ids))
		for i, id := range ids {
			index[id] = i
		}
		adj := make([]map[int]struct{}, len(ids))
		for i, id := range ids {
			nbs, err := g.NeighborIDs(id)
			if err != nil {
				return nil, err
			}
			adj[i] = make(map[int]struct{}, len(nbs))
			for _, nb := range nbs {
				adj[i][index[nb]] = struct{}{}
			}
		}

		best := make([]float64, len(ids))
		e := &cliqueEnum{adj: adj, best: best}
		all := make(map[int]struct{}, len(ids))
		for i := range ids {
			all[i] = struct{}{}
		}
		e.expand(nil, all, make(map[int]struct{}))

		return best, nil
	})
}

// cliqueEnum carries Bron–Kerbosch state: adjacency and the running
// per-node maximum clique size.
type cliqueEnum struct {
	adj  []map[int]struct{}
	best []float64
}

// expand is Bron–Kerbosch with pivoting: r is the current clique, p the
// candidates, x the excluded set. Every maximal clique updates best for
// each member.
func (e *cliqueEnum) expand(r []int, p, x map[int]struct{}) {
	if len(p) == 0 && len(x) == 0 {
		size := float64(len(r))
		for _, v := range r {
			if size > e.best[v] {
				e.best[v] = size
			}
		}

		return
	}

	// Pivot on the candidate/excluded vertex with the most candidates as
	// neighbors, shrinking the branching set.
	pivot, pivotDeg := -1, -1
	for _, set := range []map[int]struct{}{p, x} {
		for u := range set {
			deg := 0
			for v := range p {
				if _, ok := e.adj[u][v]; ok {
					deg++
				}
			}
			if deg > pivotDeg {
				pivot, pivotDeg = u, deg
			}
		}
	}

	branch := make([]int, 0, len(p))
	for v := range p {
		if _, ok := e.adj[pivot][v]; !ok {
			branch = append(branch, v)
		}
	}

	for _, v := range branch {
		np := intersect(p, e.adj[v])
		nx := intersect(x, e.adj[v])
		e.expand(append(r, v), np, nx)
		delete(p, v)
		x[v] = struct{}{}
	}
}

// intersect returns a fresh set holding set ∩ keys(adj).
func intersect(set map[int]struct{}, adj map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for v := range set {
		if _, ok := adj[v]; ok {
			out[v] = struct{}{}
		}
	}

	return out
}
