package features

import (
	"errors"

	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
	"github.com/katalvlaran/grafeat/matrix"
)

// errNoNodeFeats marks graphs without per-node feature vectors; every NF
// column records NaN for such graphs while the schema stays intact.
var errNoNodeFeats = errors.New("features: graph carries no node features")

// NodeFeatureStats summarizes the per-node feature matrix: the flattened
// value distribution, per-dimension means, per-node means, and the
// degree-normalized per-node means.
type NodeFeatureStats struct{}

// Descriptor implements feature.Class.
func (NodeFeatureStats) Descriptor() feature.Descriptor {
	return feature.Descriptor{
		Shortname: "NF",
		Name:      "node_feature_statistics",
		Modes:     []feature.Mode{feature.ModeFast, feature.ModeMedium, feature.ModeSlow},
		Encoding:  "core",
	}
}

// Compute implements feature.Class.
func (NodeFeatureStats) Compute(rec *feature.Recorder, g *core.Graph, cache *feature.Cache) error {
	rec.AddSequence("feat_values", "the distribution of all node feature values", feature.Score(3),
		func() ([]float64, error) {
			rows, err := featureRows(g, cache)
			if err != nil {
				return nil, err
			}
			var flat []float64
			for _, row := range rows {
				flat = append(flat, row...)
			}

			return flat, nil
		})

	rec.AddSequence("feat_dim_mean", "per-dimension means across nodes", feature.Score(3),
		func() ([]float64, error) {
			rows, err := featureRows(g, cache)
			if err != nil {
				return nil, err
			}
			dim := len(rows[0])
			means := make([]float64, dim)
			for _, row := range rows {
				for j, v := range row {
					means[j] += v
				}
			}
			for j := range means {
				means[j] /= float64(len(rows))
			}

			return means, nil
		})

	rec.AddSequence("feat_node_mean", "per-node feature means", feature.Score(3),
		func() ([]float64, error) {
			rows, err := featureRows(g, cache)
			if err != nil {
				return nil, err
			}

			return nodeMeans(rows), nil
		})

	// The "normalized" per-node value subtracts raw degree from the node's
	// feature mean. The two quantities have unrelated scales; the column is
	// defined this way historically and downstream models consume it as-is.
	rec.AddSequence("feat_node_mean_norm", "degree-normalized per-node feature means", feature.Score(2),
		func() ([]float64, error) {
			rows, err := featureRows(g, cache)
			if err != nil {
				return nil, err
			}
			means := nodeMeans(rows)
			degs, err := degreeSequence(g)
			if err != nil {
				return nil, err
			}
			out := make([]float64, len(means))
			for i := range means {
				out[i] = means[i] - degs[i]
			}

			return out, nil
		})

	return nil
}

// cacheKeyFeatureRows memoizes the node-feature matrix per graph pass.
const cacheKeyFeatureRows = "nodefeats/rows"

// featureRows returns the per-node feature vectors in ID-ascending order,
// or errNoNodeFeats when the graph carries none.
func featureRows(g *core.Graph, cache *feature.Cache) ([][]float64, error) {
	return feature.Memo(cache, cacheKeyFeatureRows, func() ([][]float64, error) {
		if g.FeatureDim() == 0 {
			return nil, errNoNodeFeats
		}
		ids := g.Vertices()
		rows := make([][]float64, 0, len(ids))
		for _, id := range ids {
			feats, err := g.VertexFeats(id)
			if err != nil {
				return nil, err
			}
			if feats == nil {
				return nil, errNoNodeFeats
			}
			rows = append(rows, feats)
		}

		return rows, nil
	})
}

// nodeMeans returns the mean of each row.
func nodeMeans(rows [][]float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = matrix.Mean(row)
	}

	return out
}
