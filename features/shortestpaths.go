package features

import (
	"github.com/katalvlaran/grafeat/bfs"
	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
)

// ShortestPathStats summarizes unweighted shortest-path structure:
// eccentricities, pairwise path lengths and reachability.
//
// On disconnected graphs all quantities are computed over reachable pairs
// only; reachable_fraction drops below 1 and flags the gap.
type ShortestPathStats struct{}

// Descriptor implements feature.Class.
func (ShortestPathStats) Descriptor() feature.Descriptor {
	return feature.Descriptor{
		Shortname: "SP",
		Name:      "shortest_path_statistics",
		Modes:     []feature.Mode{feature.ModeFast, feature.ModeMedium, feature.ModeSlow},
		Encoding:  "core",
	}
}

// Compute implements feature.Class.
func (ShortestPathStats) Compute(rec *feature.Recorder, g *core.Graph, cache *feature.Cache) error {
	rec.AddSequence("eccentricity", "the distribution of vertex eccentricities", feature.Score(4),
		func() ([]float64, error) {
			table, err := distanceTable(g, cache)
			if err != nil {
				return nil, err
			}
			ecc := make([]float64, len(table))
			for i, depths := range table {
				var far int
				for _, d := range depths {
					if d > far {
						far = d
					}
				}
				ecc[i] = float64(far)
			}

			return ecc, nil
		})

	rec.AddSequence("path_length", "the distribution of pairwise shortest-path lengths", feature.Score(4),
		func() ([]float64, error) {
			table, err := distanceTable(g, cache)
			if err != nil {
				return nil, err
			}
			var lengths []float64
			for _, depths := range table {
				for _, d := range depths {
					if d > 0 {
						lengths = append(lengths, float64(d))
					}
				}
			}

			return lengths, nil
		})

	rec.AddScalar("diameter", "the largest eccentricity over reachable pairs", feature.Score(5),
		func() (float64, error) {
			table, err := distanceTable(g, cache)
			if err != nil {
				return 0, err
			}
			var far int
			for _, depths := range table {
				for _, d := range depths {
					if d > far {
						far = d
					}
				}
			}

			return float64(far), nil
		})

	rec.AddScalar("reachable_fraction", "the fraction of ordered vertex pairs with a path", feature.Score(4),
		func() (float64, error) {
			table, err := distanceTable(g, cache)
			if err != nil {
				return 0, err
			}
			n := len(table)
			if n < 2 {
				return 1, nil
			}
			var reachable int
			for _, depths := range table {
				reachable += len(depths) - 1 // exclude the source itself
			}

			return float64(reachable) / float64(n*(n-1)), nil
		})

	return nil
}

// cacheKeyDistances memoizes the all-sources BFS table per graph pass.
const cacheKeyDistances = "shortestpaths/distances"

// distanceTable returns one depth map per vertex, ID-ascending.
func distanceTable(g *core.Graph, cache *feature.Cache) ([]map[string]int, error) {
	return feature.Memo(cache, cacheKeyDistances, func() ([]map[string]int, error) {
		ids := g.Vertices()
		table := make([]map[string]int, len(ids))
		for i, id := range ids {
			res, err := bfs.Distances(g, id)
			if err != nil {
				return nil, err
			}
			table[i] = res.Depth
		}

		return table, nil
	})
}
