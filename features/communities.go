package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/feature"
	"github.com/katalvlaran/grafeat/fluidc"
)

// Community counts probed by the FC class: one feature family per k.
const (
	fluidKMin = 2
	fluidKMax = 8
)

// FluidCommunities summarizes fluid-communities partitions for a sweep of
// community counts: density statistics plus partition-quality measures
// (modularity, coverage, performance, inter/intra edge counts).
// k is clamped to the vertex count before partitioning,
// so small graphs still produce every column. Directed or disconnected
// graphs record NaN across the class via per-feature failures.
//
// The partition seed derives from k alone, so results are identical across
// repeated runs and across worker counts.
type FluidCommunities struct{}

// Descriptor implements feature.Class.
func (FluidCommunities) Descriptor() feature.Descriptor {
	return feature.Descriptor{
		Shortname: "FC",
		Name:      "fluid_communities",
		Modes:     []feature.Mode{feature.ModeMedium, feature.ModeSlow},
		Encoding:  "core",
	}
}

// Compute implements feature.Class.
func (FluidCommunities) Compute(rec *feature.Recorder, g *core.Graph, cache *feature.Cache) error {
	for k := fluidKMin; k <= fluidKMax; k++ {
		k := k

		rec.AddScalar(fmt.Sprintf("total_density_%d", k),
			fmt.Sprintf("the summed community density for k=%d", k), feature.Score(3),
			func() (float64, error) {
				res, err := fluidPartition(g, cache, k)
				if err != nil {
					return 0, err
				}
				var total float64
				for _, d := range res.Densities {
					total += d
				}

				return total, nil
			})

		rec.AddScalar(fmt.Sprintf("ratio_density_%d", k),
			fmt.Sprintf("the min/max community density ratio for k=%d", k), feature.Score(3),
			func() (float64, error) {
				res, err := fluidPartition(g, cache, k)
				if err != nil {
					return 0, err
				}
				minD, maxD := math.Inf(1), math.Inf(-1)
				for _, d := range res.Densities {
					minD = math.Min(minD, d)
					maxD = math.Max(maxD, d)
				}

				return minD / maxD, nil
			})

		rec.AddScalar(fmt.Sprintf("most_dense_%d", k),
			fmt.Sprintf("the size of the densest community for k=%d", k), feature.Score(4),
			func() (float64, error) {
				res, err := fluidPartition(g, cache, k)
				if err != nil {
					return 0, err
				}

				return float64(len(res.Communities[argMax(res.Densities)])), nil
			})

		rec.AddScalar(fmt.Sprintf("least_dense_%d", k),
			fmt.Sprintf("the size of the least dense community for k=%d", k), feature.Score(4),
			func() (float64, error) {
				res, err := fluidPartition(g, cache, k)
				if err != nil {
					return 0, err
				}

				return float64(len(res.Communities[argMin(res.Densities)])), nil
			})

		rec.AddScalar(fmt.Sprintf("mod_%d", k),
			fmt.Sprintf("the modularity of the partition for k=%d", k), feature.Score(4),
			func() (float64, error) {
				q, err := partitionQuality(g, cache, k)
				if err != nil {
					return 0, err
				}

				return q.modularity, nil
			})

		rec.AddScalar(fmt.Sprintf("coverage_%d", k),
			fmt.Sprintf("the fraction of edges inside communities for k=%d", k), feature.Score(4),
			func() (float64, error) {
				q, err := partitionQuality(g, cache, k)
				if err != nil {
					return 0, err
				}

				return q.coverage, nil
			})

		rec.AddScalar(fmt.Sprintf("performance_%d", k),
			fmt.Sprintf("the fraction of correctly classified vertex pairs for k=%d", k), feature.Score(3),
			func() (float64, error) {
				q, err := partitionQuality(g, cache, k)
				if err != nil {
					return 0, err
				}

				return q.performance, nil
			})

		rec.AddScalar(fmt.Sprintf("inter_comm_edge_%d", k),
			fmt.Sprintf("the number of edges between communities for k=%d", k), feature.Score(4),
			func() (float64, error) {
				q, err := partitionQuality(g, cache, k)
				if err != nil {
					return 0, err
				}

				return float64(q.interEdges), nil
			})

		rec.AddScalar(fmt.Sprintf("inter_comm_nedge_%d", k),
			fmt.Sprintf("the number of non-edges between communities for k=%d", k), feature.Score(3),
			func() (float64, error) {
				q, err := partitionQuality(g, cache, k)
				if err != nil {
					return 0, err
				}

				return float64(q.interNonEdges), nil
			})

		rec.AddScalar(fmt.Sprintf("intra_comm_edge_%d", k),
			fmt.Sprintf("the number of edges inside communities for k=%d", k), feature.Score(4),
			func() (float64, error) {
				q, err := partitionQuality(g, cache, k)
				if err != nil {
					return 0, err
				}

				return float64(q.intraEdges), nil
			})

		rec.AddScalar(fmt.Sprintf("num_nodes_ratio_%d", k),
			fmt.Sprintf("the size ratio of the first two communities for k=%d", k), feature.Score(3),
			func() (float64, error) {
				res, err := fluidPartition(g, cache, k)
				if err != nil {
					return 0, err
				}
				if len(res.Communities) < 2 {
					return 1, nil
				}

				return float64(len(res.Communities[0])) / float64(len(res.Communities[1])), nil
			})
	}

	return nil
}

// quality holds the partition-quality measures derived from one
// partition by plain edge counting.
type quality struct {
	modularity    float64 // sum over communities of L_c/m − (deg_c/2m)²
	coverage      float64 // intra-community edges / m
	performance   float64 // (intra edges + inter non-edges) / all pairs
	interEdges    int
	interNonEdges int
	intraEdges    int
}

// errDegeneratePartition marks graphs too small for the quality measures
// (no edges or a single vertex).
var errDegeneratePartition = errors.New("features: partition quality undefined")

// partitionQuality memoizes the quality measures of the partition for the
// effective community count, sharing the memoized partition itself.
func partitionQuality(g *core.Graph, cache *feature.Cache, k int) (quality, error) {
	if n := g.VertexCount(); n < k {
		k = n
	}

	return feature.Memo(cache, fmt.Sprintf("communities/quality_%d", k), func() (quality, error) {
		res, err := fluidPartition(g, cache, k)
		if err != nil {
			return quality{}, err
		}

		n := g.VertexCount()
		m := g.EdgeCount()
		if n < 2 || m == 0 {
			return quality{}, errDegeneratePartition
		}

		member := make(map[string]int, n)
		for c, ids := range res.Communities {
			for _, id := range ids {
				member[id] = c
			}
		}

		var q quality
		for _, e := range g.Edges() {
			if member[e.From] == member[e.To] {
				q.intraEdges++
			} else {
				q.interEdges++
			}
		}

		// Pair bookkeeping for performance: every intra-community pair
		// should be an edge, every inter-community pair should not.
		allPairs := n * (n - 1) / 2
		var intraPairs int
		for _, ids := range res.Communities {
			intraPairs += len(ids) * (len(ids) - 1) / 2
		}
		interPairs := allPairs - intraPairs
		q.interNonEdges = interPairs - q.interEdges
		q.coverage = float64(q.intraEdges) / float64(m)
		q.performance = float64(q.intraEdges+q.interNonEdges) / float64(allPairs)

		// Modularity from intra-edge and degree-volume fractions.
		degSum := make([]float64, len(res.Communities))
		intraByComm := make([]int, len(res.Communities))
		for _, e := range g.Edges() {
			if c := member[e.From]; c == member[e.To] {
				intraByComm[c]++
			}
		}
		ids := g.Vertices()
		for _, id := range ids {
			deg, derr := g.Degree(id)
			if derr != nil {
				return quality{}, derr
			}
			degSum[member[id]] += float64(deg)
		}
		twoM := 2 * float64(m)
		for c := range res.Communities {
			frac := degSum[c] / twoM
			q.modularity += float64(intraByComm[c])/float64(m) - frac*frac
		}

		return q, nil
	})
}

// fluidPartition memoizes one partition per effective community count.
// The requested k is clamped to the vertex count so k never exceeds the
// graph order; preconditions the clamp cannot repair (directedness,
// disconnection, empty graph) surface as errors and record NaN.
func fluidPartition(g *core.Graph, cache *feature.Cache, k int) (*fluidc.Result, error) {
	if n := g.VertexCount(); n < k {
		k = n
	}

	return feature.Memo(cache, fmt.Sprintf("communities/partition_%d", k), func() (*fluidc.Result, error) {
		return fluidc.Partition(g, k, fluidc.WithSeed(int64(k)))
	})
}

// argMax returns the index of the largest value.
func argMax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}

	return best
}

// argMin returns the index of the smallest value.
func argMin(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x < xs[best] {
			best = i
		}
	}

	return best
}
