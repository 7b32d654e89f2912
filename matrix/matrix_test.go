package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafeat/builder"
	"github.com/katalvlaran/grafeat/core"
	"github.com/katalvlaran/grafeat/matrix"
)

// TestNewDense_Validation covers dimension validation and zero-size.
func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadDimension)

	d, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Rows())
	assert.Equal(t, 3, d.Cols())
}

// TestDense_AccessAndBounds covers At/Set/Column round trips and bounds.
func TestDense_AccessAndBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, 7.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	assert.ErrorIs(t, d.Set(2, 0, 1), matrix.ErrIndexOutOfRange)
	_, err = d.At(0, 3)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	col, err := d.Column(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 7.5}, col)

	// NaN is storable: sentinels flow through matrices unfiltered.
	require.NoError(t, d.Set(0, 0, math.NaN()))
	v, err = d.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

// TestDense_SelectColumns verifies column projection and order.
func TestDense_SelectColumns(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, d.Set(i, j, float64(10*i+j)))
		}
	}

	sel, err := d.SelectColumns([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, sel.Row(0))
	assert.Equal(t, []float64{12, 10}, sel.Row(1))

	_, err = d.SelectColumns([]int{3})
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

// TestSummarize verifies the six fixed operators.
func TestSummarize(t *testing.T) {
	s := matrix.Summarize([]float64{1, 2, 3, 4})

	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 2.5, s.Median)
	assert.InDelta(t, math.Sqrt(1.25), s.Std, 1e-12, "population std")
	assert.Equal(t, 10.0, s.Sum)

	empty := matrix.Summarize(nil)
	assert.True(t, math.IsNaN(empty.Mean), "empty sequence summarizes to NaN")
	assert.True(t, math.IsNaN(empty.Sum))
}

// TestMedian_OddEven verifies both median branches without mutation.
func TestMedian_OddEven(t *testing.T) {
	xs := []float64{3, 1, 2}
	assert.Equal(t, 2.0, matrix.Median(xs))
	assert.Equal(t, []float64{3, 1, 2}, xs, "input must not be sorted in place")

	assert.Equal(t, 1.5, matrix.Median([]float64{2, 1}))
	assert.True(t, math.IsNaN(matrix.Median(nil)))
}

// TestAllFinite covers NaN and both infinities.
func TestAllFinite(t *testing.T) {
	assert.True(t, matrix.AllFinite([]float64{1, -2, 0}))
	assert.False(t, matrix.AllFinite([]float64{1, math.NaN()}))
	assert.False(t, matrix.AllFinite([]float64{math.Inf(1)}))
	assert.False(t, matrix.AllFinite([]float64{math.Inf(-1)}))
}

// TestEigen_Diagonal verifies eigenvalues of a diagonal matrix are its
// diagonal, sorted.
func TestEigen_Diagonal(t *testing.T) {
	d, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 3))
	require.NoError(t, d.Set(1, 1, 1))
	require.NoError(t, d.Set(2, 2, 2))

	vals, err := matrix.Eigen(d, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, vals, 1e-9)
}

// TestEigen_K3Adjacency verifies the known spectrum {−1, −1, 2} of K_3.
func TestEigen_K3Adjacency(t *testing.T) {
	g := builder.MustGraph(nil, builder.Complete(3))
	a, ids, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, ids)

	vals, err := matrix.Eigen(a, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, -1, 2}, vals, 1e-8)
}

// TestEigen_Validation covers nil, non-square and asymmetric inputs.
func TestEigen_Validation(t *testing.T) {
	_, err := matrix.Eigen(nil, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.Eigen(rect, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.ErrorIs(t, err, matrix.ErrBadDimension)

	asym, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, asym.Set(0, 1, 1))
	_, err = matrix.Eigen(asym, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.ErrorIs(t, err, matrix.ErrNotSymmetric)
}

// TestLaplacian_RowSumsZero verifies L = D − A row sums vanish.
func TestLaplacian_RowSumsZero(t *testing.T) {
	g := builder.MustGraph(nil, builder.Cycle(5))
	l, ids, err := matrix.Laplacian(g)
	require.NoError(t, err)
	require.Len(t, ids, 5)

	for i := 0; i < l.Rows(); i++ {
		var sum float64
		for _, v := range l.Row(i) {
			sum += v
		}
		assert.InDelta(t, 0, sum, 1e-12)
	}

	// Laplacian eigenvalues of C_5 are nonnegative with smallest 0.
	vals, err := matrix.Eigen(l, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	assert.InDelta(t, 0, vals[0], 1e-8)
	assert.GreaterOrEqual(t, vals[1], -1e-8)
}

// TestEigen_CycleLaplacianModerateSize verifies convergence on a matrix
// well past toy size. C_n Laplacian eigenvalues are 2 − 2cos(2πk/n):
// ascending, smallest 0, bounded by 4, summing to the trace 2n.
func TestEigen_CycleLaplacianModerateSize(t *testing.T) {
	const n = 25
	g := builder.MustGraph(nil, builder.Cycle(n))
	l, _, err := matrix.Laplacian(g)
	require.NoError(t, err)

	vals, err := matrix.Eigen(l, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	require.Len(t, vals, n)

	assert.InDelta(t, 0, vals[0], 1e-8)
	var sum float64
	for i, v := range vals {
		sum += v
		assert.LessOrEqual(t, v, 4+1e-8)
		if i > 0 {
			assert.GreaterOrEqual(t, v, vals[i-1])
		}
	}
	assert.InDelta(t, float64(2*n), sum, 1e-6)
}

// TestModularity_K3 verifies the closed-form modularity spectrum of K_3:
// B = J/3 − I, eigenvalues {−1, −1, 0}, zero row sums.
func TestModularity_K3(t *testing.T) {
	g := builder.MustGraph(nil, builder.Complete(3))
	b, ids, err := matrix.Modularity(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, ids)

	for i := 0; i < b.Rows(); i++ {
		var sum float64
		for _, v := range b.Row(i) {
			sum += v
		}
		assert.InDelta(t, 0, sum, 1e-12)
	}

	vals, err := matrix.Eigen(b, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, -1, 0}, vals, 1e-8)
}

// TestModularity_NoEdges verifies the edgeless sentinel.
func TestModularity_NoEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	_, _, err := matrix.Modularity(g)
	assert.ErrorIs(t, err, matrix.ErrNoEdges)
}
