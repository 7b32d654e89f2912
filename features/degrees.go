package features

import (
	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
)

// DegreeStats summarizes the degree sequence plus basic size counts.
// The cheapest class in the catalogue; active in every mode.
type DegreeStats struct{}

// Descriptor implements feature.Class.
func (DegreeStats) Descriptor() feature.Descriptor {
	return feature.Descriptor{
		Shortname: "DS",
		Name:      "degree_statistics",
		Modes:     []feature.Mode{feature.ModeFast, feature.ModeMedium, feature.ModeSlow},
		Encoding:  "core",
	}
}

// Compute implements feature.Class.
func (DegreeStats) Compute(rec *feature.Recorder, g *core.Graph, _ *feature.Cache) error {
	rec.AddScalar("num_nodes", "the number of nodes", feature.Score(5),
		func() (float64, error) { return float64(g.VertexCount()), nil })

	rec.AddScalar("num_edges", "the number of edges", feature.Score(5),
		func() (float64, error) { return float64(g.EdgeCount()), nil })

	rec.AddScalar("edge_density", "the fraction of possible edges present", feature.Score(4),
		func() (float64, error) {
			n := float64(g.VertexCount())
			if n < 2 {
				return 0, nil
			}
			pairs := n * (n - 1) / 2
			if g.Directed() {
				pairs = n * (n - 1)
			}

			return float64(g.EdgeCount()) / pairs, nil
		})

	rec.AddSequence("degree", "the distribution of node degrees", feature.Score(5),
		func() ([]float64, error) { return degreeSequence(g) })

	return nil
}

// degreeSequence returns per-vertex degrees in ID-ascending order.
func degreeSequence(g *core.Graph) ([]float64, error) {
	ids := g.Vertices()
	out := make([]float64, len(ids))
	for i, id := range ids {
		deg, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		out[i] = float64(deg)
	}

	return out, nil
}
