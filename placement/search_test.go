package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/placement"
)

// blockedCenter is a 10×10 open map with a single blocked tile at (5,5).
func blockedCenter(t testing.TB) *gridstore.Grid {
	t.Helper()
	rows := make([]string, 10)
	for y := range rows {
		rows[y] = "1111111111"
	}
	rows[5] = "11111#1111"
	g, err := gridstore.FromRows(rows...)
	require.NoError(t, err)
	return g
}

var (
	one     = gridstore.Size{X: 1, Y: 1}
	noPad   = gridstore.BuildOptions{IgnorePadding: true}
	blocked = gridstore.Location{X: 5, Y: 5}
)

// bfsDepths computes reference BFS distances over traversable tiles.
func bfsDepths(g *gridstore.Grid, start gridstore.Location) map[gridstore.Location]int {
	depth := map[gridstore.Location]int{start: 0}
	queue := []gridstore.Location{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range gridstore.Offsets(gridstore.Conn4) {
			v := u.Add(d[0], d[1])
			if _, ok := depth[v]; ok || !g.InBounds(v) || !g.CanTraverse(v) {
				continue
			}
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}
	return depth
}

func TestSearch_NearestFeasible(t *testing.T) {
	g := blockedCenter(t)
	fits := placement.Footprint(g, one, noPad)

	res, err := placement.Search(g.Bounds, []gridstore.Location{{X: 0, Y: 0}}, fits, g.CanTraverse)
	require.NoError(t, err)
	assert.Equal(t, gridstore.Location{X: 0, Y: 0}, res.Location)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, 1, res.Visited)

	// only tiles ten steps away qualify; (5,5) is one of them but blocked
	far := func(l gridstore.Location) bool { return fits(l) && l.X+l.Y >= 10 }
	res, err = placement.Search(g.Bounds, []gridstore.Location{{X: 0, Y: 0}}, far, g.CanTraverse)
	require.NoError(t, err)
	assert.NotEqual(t, blocked, res.Location)
	assert.Equal(t, 10, res.Depth)
	assert.Equal(t, 10, res.Location.X+res.Location.Y)
	assert.Equal(t, bfsDepths(g, gridstore.Location{X: 0, Y: 0})[res.Location], res.Depth)
}

// TestSearch_FromBlockedStart starts on the blocked tile: it is evaluated but
// never returned, and the search expands past it.
func TestSearch_FromBlockedStart(t *testing.T) {
	g := blockedCenter(t)

	res, err := placement.Search(g.Bounds, []gridstore.Location{blocked}, placement.Footprint(g, one, noPad), g.CanTraverse)
	require.NoError(t, err)
	assert.Equal(t, gridstore.Location{X: 5, Y: 4}, res.Location)
	assert.Equal(t, 1, res.Depth)

	// with padding the whole ring around (5,5) is rejected
	res, err = placement.Search(g.Bounds, []gridstore.Location{blocked}, placement.Footprint(g, one, gridstore.BuildOptions{}), g.CanTraverse)
	require.NoError(t, err)
	assert.Equal(t, gridstore.Location{X: 5, Y: 3}, res.Location)
	assert.Equal(t, 2, res.Depth)
}

func TestSearch_NotFoundVisitsEachTileOnce(t *testing.T) {
	g := blockedCenter(t)
	visits := map[gridstore.Location]int{}
	never := func(gridstore.Location) bool { return false }

	_, err := placement.Search(g.Bounds, []gridstore.Location{{X: 0, Y: 0}}, never, g.CanTraverse,
		placement.WithOnVisit(func(l gridstore.Location, _ int) { visits[l]++ }))
	require.ErrorIs(t, err, placement.ErrNotFound)

	assert.Len(t, visits, 99)
	for l, n := range visits {
		assert.Equal(t, 1, n, "tile %v visited %d times", l, n)
	}
	assert.NotContains(t, visits, blocked)
}

func TestSearch_MultiSource(t *testing.T) {
	g := blockedCenter(t)
	target := gridstore.Location{X: 8, Y: 9}
	is := func(l gridstore.Location) bool { return l == target }

	starts := []gridstore.Location{{X: 0, Y: 0}, {X: 9, Y: 9}, {X: 0, Y: 0}}
	res, err := placement.Search(g.Bounds, starts, is, g.CanTraverse)
	require.NoError(t, err)
	assert.Equal(t, target, res.Location)
	assert.Equal(t, 1, res.Depth)
}

func TestSearch_Options(t *testing.T) {
	g := blockedCenter(t)
	corner := func(l gridstore.Location) bool { return l == gridstore.Location{X: 3, Y: 3} }
	start := []gridstore.Location{{X: 0, Y: 0}}

	res, err := placement.Search(g.Bounds, start, corner, g.CanTraverse)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Depth)

	res, err = placement.Search(g.Bounds, start, corner, g.CanTraverse, placement.WithConnectivity(gridstore.Conn8))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth)

	visited := 0
	_, err = placement.Search(g.Bounds, start, func(l gridstore.Location) bool { return l == gridstore.Location{X: 9, Y: 9} }, g.CanTraverse,
		placement.WithMaxDepth(5),
		placement.WithOnVisit(func(_ gridstore.Location, depth int) {
			visited++
			assert.LessOrEqual(t, depth, 5)
		}))
	assert.ErrorIs(t, err, placement.ErrNotFound)
	assert.Equal(t, 21, visited)
}

func TestSearch_Errors(t *testing.T) {
	g := blockedCenter(t)
	always := func(gridstore.Location) bool { return true }

	_, err := placement.Search(g.Bounds, nil, always, g.CanTraverse)
	assert.ErrorIs(t, err, placement.ErrNoStarts)

	_, err = placement.Search(g.Bounds, []gridstore.Location{{X: 10, Y: 0}}, always, g.CanTraverse)
	assert.ErrorIs(t, err, placement.ErrStartOutOfBounds)

	_, err = placement.Search(g.Bounds, []gridstore.Location{{X: 0, Y: 0}}, always, g.CanTraverse, placement.WithMaxDepth(-1))
	assert.ErrorIs(t, err, placement.ErrOptionViolation)

	_, err = placement.Search(g.Bounds, []gridstore.Location{{X: 0, Y: 0}}, always, g.CanTraverse, placement.WithConnectivity(gridstore.Connectivity(7)))
	assert.ErrorIs(t, err, placement.ErrOptionViolation)
}
