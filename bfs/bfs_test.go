package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafeat/bfs"
	"github.com/katalvlaran/grafeat/builder"
	"github.com/katalvlaran/grafeat/core"
)

// TestDistances_InvalidInput verifies the nil-graph and missing-start
// sentinels.
func TestDistances_InvalidInput(t *testing.T) {
	_, err := bfs.Distances(nil, "v0")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := builder.MustGraph(nil, builder.Path(2))
	_, err = bfs.Distances(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestDistances_PathDepths verifies depths along P_4.
func TestDistances_PathDepths(t *testing.T) {
	g := builder.MustGraph(nil, builder.Path(4))

	res, err := bfs.Distances(g, builder.VertexID(0))
	require.NoError(t, err)

	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, res.Order)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, res.Depth[builder.VertexID(i)])
	}
}

// TestDistances_CycleDepths verifies symmetric depths on C_5.
func TestDistances_CycleDepths(t *testing.T) {
	g := builder.MustGraph(nil, builder.Cycle(5))

	res, err := bfs.Distances(g, builder.VertexID(0))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth["v0"])
	assert.Equal(t, 1, res.Depth["v1"])
	assert.Equal(t, 1, res.Depth["v4"])
	assert.Equal(t, 2, res.Depth["v2"])
	assert.Equal(t, 2, res.Depth["v3"])
}

// TestDistances_Deterministic verifies repeated runs agree exactly.
func TestDistances_Deterministic(t *testing.T) {
	g := builder.MustGraph(nil, builder.Complete(6))

	a, err := bfs.Distances(g, "v0")
	require.NoError(t, err)
	b, err := bfs.Distances(g, "v0")
	require.NoError(t, err)

	assert.Equal(t, a.Order, b.Order)
	assert.Equal(t, a.Depth, b.Depth)
}

// TestIsConnected covers connected, disconnected and empty graphs.
func TestIsConnected(t *testing.T) {
	_, err := bfs.IsConnected(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	connected := builder.MustGraph(nil, builder.Cycle(4))
	ok, err := bfs.IsConnected(connected)
	require.NoError(t, err)
	assert.True(t, ok)

	split := builder.MustGraph(nil, builder.Path(3), builder.CycleAt(4, 3))
	ok, err = bfs.IsConnected(split)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = bfs.IsConnected(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok, "empty graph is connected by convention")
}
