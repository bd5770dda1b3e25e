package analyzer_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain/analyzer"
	"github.com/katalvlaran/terrain/config"
	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/monitoring"
	"github.com/katalvlaran/terrain/placement"
	"github.com/katalvlaran/terrain/segment"
	"github.com/katalvlaran/terrain/snapshot"
	"github.com/katalvlaran/terrain/store"
)

// startFromRows converts the gridstore.FromRows glyphs into engine start data.
func startFromRows(rows []string, starts ...snapshot.Point) snapshot.Start {
	w, h := len(rows[0]), len(rows)
	s := snapshot.Start{
		Width:          w,
		Height:         h,
		Placement:      make([]byte, w*h),
		Pathing:        make([]byte, w*h),
		Terrain:        make([]byte, w*h),
		StartLocations: starts,
	}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch c := row[x]; {
			case c >= '0' && c <= '9':
				s.Placement[i] = 255
				s.Terrain[i] = c - '0'
			case c == '#':
				s.Pathing[i] = 255
			}
		}
	}
	return s
}

// twoBases is a 24×16 map: a low plateau on x<=10, a ramp at x=11 for
// 6<=y<=9 and a high plateau on x>=12.
func twoBases() snapshot.Start {
	rows := make([]string, 16)
	for y := range rows {
		mid := "#"
		if y >= 6 && y <= 9 {
			mid = "."
		}
		rows[y] = strings.Repeat("1", 11) + mid + strings.Repeat("3", 12)
	}
	return startFromRows(rows, snapshot.Point{X: 20.5, Y: 12.5})
}

var types = snapshot.TypeTable{
	"CommandCenter": {Structure: true, MainBase: true, Size: snapshot.Size{X: 5, Y: 5}},
	"SupplyDepot":   {Structure: true, Size: snapshot.Size{X: 2, Y: 2}},
	"Barracks":      {Structure: true, AddOn: true, Size: snapshot.Size{X: 3, Y: 3}},
	"Refinery":      {Structure: true, Extractor: true, Size: snapshot.Size{X: 3, Y: 3}},
	"MineralField":  {Minerals: true, Size: snapshot.Size{X: 2, Y: 1}},
	"VespeneGeyser": {Vespene: true, Size: snapshot.Size{X: 3, Y: 3}},
	"Marine":        {},
}

func neutral(tag uint64, t snapshot.UnitType, x, y float64) snapshot.Unit {
	u := snapshot.Unit{Tag: tag, Type: t, Alliance: snapshot.AllianceNeutral, Pos: snapshot.Point{X: x, Y: y}}
	u.Minerals = types[t].Minerals
	u.Vespene = types[t].Vespene
	return u
}

var commandCenter = snapshot.Unit{Tag: 100, Type: "CommandCenter", Alliance: snapshot.AllianceSelf, Pos: snapshot.Point{X: 5.5, Y: 5.5}, BuildProgress: 1}

func firstFrame() snapshot.Frame {
	return snapshot.Frame{Units: []snapshot.Unit{
		neutral(1, "MineralField", 2.5, 10.5),
		neutral(2, "MineralField", 4.5, 10.5),
		neutral(3, "VespeneGeyser", 8.5, 10.5),
		neutral(4, "MineralField", 20.5, 3.5),
		neutral(5, "MineralField", 22.5, 3.5),
		commandCenter,
	}}
}

func quietLogs(t *testing.T) {
	prev := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(prev) })
}

func mustInitial(t *testing.T, a *analyzer.Analyzer) *analyzer.MapData {
	t.Helper()
	md, err := a.Initial(twoBases(), firstFrame(), types)
	require.NoError(t, err)
	return md
}

func TestInitial(t *testing.T) {
	quietLogs(t)
	md := mustInitial(t, analyzer.New(nil))

	assert.Equal(t, 3, md.Regions.Count())
	assert.Len(t, md.Graph.Mesas(), 2)
	require.Len(t, md.Graph.Ramps(), 1)
	assert.Empty(t, md.Graph.Edges())

	ramp := md.Graph.Ramps()[0]
	bottom, _ := md.Graph.Area(ramp.Bottom)
	top, _ := md.Graph.Area(ramp.Top)
	assert.Equal(t, byte(1), bottom.Height)
	assert.Equal(t, byte(3), top.Height)

	require.Len(t, md.Deposits, 2)
	assert.Len(t, md.Deposits[0].Resources, 3)
	assert.Len(t, md.Deposits[1].Resources, 2)
	assert.Equal(t, gridstore.Location{X: 5, Y: 10}, md.Deposits[0].Center)
	assert.Equal(t, gridstore.Location{X: 21, Y: 3}, md.Deposits[1].Center)

	assert.True(t, md.Grid.Occupied(gridstore.Location{X: 5, Y: 5}))
	assert.Len(t, md.MainBases(), 1)
	assert.Len(t, md.Key, 64)

	controlled := md.ControlledDeposits(md.MainBases())
	require.Len(t, controlled, 1)
	assert.Equal(t, md.Deposits[0].Center, controlled[0].Center)
}

func TestInitial_Errors(t *testing.T) {
	quietLogs(t)
	a := analyzer.New(nil)

	bad := twoBases()
	bad.Pathing = bad.Pathing[:3]
	_, err := a.Initial(bad, firstFrame(), types)
	assert.ErrorIs(t, err, gridstore.ErrGridSize)

	noSeeds := twoBases()
	noSeeds.StartLocations = []snapshot.Point{{X: 11.5, Y: 0.5}} // blocked column
	_, err = a.Initial(noSeeds, snapshot.Frame{}, types)
	assert.ErrorIs(t, err, segment.ErrNoSeeds)
}

func TestUpdate_KeepsGraph(t *testing.T) {
	quietLogs(t)
	a := analyzer.New(nil)
	md := mustInitial(t, a)

	frame := firstFrame()
	frame.Units = append(frame.Units[3:], snapshot.Unit{Tag: 101, Type: "SupplyDepot", Alliance: snapshot.AllianceSelf, Pos: snapshot.Point{X: 16, Y: 12}})
	next := a.Update(md, frame, types)

	assert.Same(t, md.Graph, next.Graph)
	assert.Same(t, md.Regions, next.Regions)
	assert.Equal(t, md.Key, next.Key)
	require.Len(t, next.Deposits, 1)
	assert.Equal(t, gridstore.Location{X: 21, Y: 3}, next.Deposits[0].Center)

	assert.True(t, next.Grid.Occupied(gridstore.Location{X: 15, Y: 11}))
	assert.False(t, md.Grid.Occupied(gridstore.Location{X: 15, Y: 11}))
}

func TestPlaceType_Depot(t *testing.T) {
	quietLogs(t)
	md := mustInitial(t, analyzer.New(nil))

	p, err := md.PlaceType("SupplyDepot")
	require.NoError(t, err)
	size := snapshot.Size{X: 2, Y: 2}
	assert.True(t, md.Grid.CanBuildFootprint(size, p.Origin, gridstore.BuildOptions{}))
	assert.Nil(t, p.Geyser)
	assert.Equal(t, float64(p.Origin.X)+1, p.Center.X)
	assert.Equal(t, float64(p.Origin.Y)+1, p.Center.Y)

	// stays on the plateau of the main base
	home, _ := md.Graph.AreaAt(gridstore.Location{X: 5, Y: 5})
	got, _ := md.Graph.AreaAt(p.Origin)
	assert.Equal(t, home.ID, got.ID)
}

func TestPlaceType_Barracks(t *testing.T) {
	quietLogs(t)
	md := mustInitial(t, analyzer.New(nil))

	p, err := md.PlaceType("Barracks")
	require.NoError(t, err)
	assert.True(t, md.Grid.CanBuildFootprint(snapshot.Size{X: 3, Y: 3}, p.Origin, gridstore.BuildOptions{HasAddOn: true}))
}

func TestPlaceType_TownHall(t *testing.T) {
	quietLogs(t)
	md := mustInitial(t, analyzer.New(nil))

	p, err := md.PlaceType("CommandCenter")
	require.NoError(t, err)
	size := snapshot.Size{X: 5, Y: 5}
	assert.True(t, md.Grid.CanBuildFootprint(size, p.Origin, gridstore.BuildOptions{IncludeResourcePadding: true}))

	// the expansion is on the high plateau, away from the controlled deposit
	area, ok := md.Graph.AreaAt(p.Origin)
	require.True(t, ok)
	assert.Equal(t, byte(3), area.Height)
}

func TestPlaceType_Extractor(t *testing.T) {
	quietLogs(t)
	md := mustInitial(t, analyzer.New(nil))

	p, err := md.PlaceType("Refinery")
	require.NoError(t, err)
	require.NotNil(t, p.Geyser)
	assert.Equal(t, uint64(3), p.Geyser.Tag)
	assert.Equal(t, snapshot.Point{X: 8.5, Y: 10.5}, p.Center)
	assert.Equal(t, gridstore.Location{X: 7, Y: 9}, p.Origin)
}

func TestPlaceType_Errors(t *testing.T) {
	quietLogs(t)
	a := analyzer.New(nil)
	md := mustInitial(t, a)

	_, err := md.PlaceType("Marine")
	assert.ErrorIs(t, err, analyzer.ErrUnknownStructure)
	_, err = md.PlaceType("Nexus")
	assert.ErrorIs(t, err, analyzer.ErrUnknownStructure)

	frame := firstFrame()
	noBase := a.Update(md, snapshot.Frame{Units: frame.Units[:5]}, types)
	_, err = noBase.PlaceType("SupplyDepot")
	assert.ErrorIs(t, err, analyzer.ErrNoMainBase)
	_, err = noBase.PlaceType("Refinery")
	assert.ErrorIs(t, err, analyzer.ErrNoGeyser)

	// with only the home deposit left there is nowhere to expand
	homeOnly := a.Update(md, snapshot.Frame{Units: append(frame.Units[:3:3], commandCenter)}, types)
	_, err = homeOnly.PlaceType("CommandCenter")
	assert.ErrorIs(t, err, analyzer.ErrNoExpansion)
}

func TestPlace_ConfigLimits(t *testing.T) {
	quietLogs(t)
	cfg := config.Default()
	depth := 1
	cfg.PlacementMaxDepth = &depth
	md := mustInitial(t, analyzer.New(cfg))

	// the seed sits inside the command center, so nothing fits within one step
	_, err := md.Place(analyzer.Request{Size: snapshot.Size{X: 2, Y: 2}})
	assert.ErrorIs(t, err, placement.ErrNotFound)

	// explicit seeds replace the main base seeds
	p, err := md.Place(analyzer.Request{
		Size:  snapshot.Size{X: 2, Y: 2},
		Seeds: []gridstore.Location{{X: 14, Y: 12}},
	})
	require.NoError(t, err)
	assert.Equal(t, gridstore.Location{X: 14, Y: 12}, p.Origin)
	assert.Equal(t, 0, p.Depth)

	_, err = md.Place(analyzer.Request{Size: snapshot.Size{X: 2, Y: 2}, Seeds: []gridstore.Location{{X: 99, Y: 0}}})
	assert.ErrorIs(t, err, placement.ErrStartOutOfBounds)
}

// memCache is an in-memory Cache and Recorder.
type memCache struct {
	grids map[string]*segment.RegionGrid
	runs  []store.Run
	fail  bool
}

func (m *memCache) LoadRegions(key string) (*segment.RegionGrid, error) {
	if m.fail {
		return nil, errors.New("disk on fire")
	}
	rg, ok := m.grids[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rg, nil
}

func (m *memCache) SaveRegions(key string, rg *segment.RegionGrid) error {
	m.grids[key] = rg
	return nil
}

func (m *memCache) RecordRun(r store.Run) (string, error) {
	m.runs = append(m.runs, r)
	return "run", nil
}

func TestInitial_Cache(t *testing.T) {
	quietLogs(t)
	mc := &memCache{grids: map[string]*segment.RegionGrid{}}
	a := analyzer.New(nil, analyzer.WithCache(mc), analyzer.WithRecorder(mc))

	first := mustInitial(t, a)
	require.Contains(t, mc.grids, first.Key)
	second := mustInitial(t, a)
	assert.Same(t, first.Regions, second.Regions)

	require.Len(t, mc.runs, 2)
	assert.False(t, mc.runs[0].Cached)
	assert.True(t, mc.runs[1].Cached)
	assert.Equal(t, 3, mc.runs[1].Regions)
	assert.Equal(t, 2, mc.runs[1].Deposits)

	// a failing cache falls back to segmentation
	mc.fail = true
	third := mustInitial(t, a)
	assert.NotSame(t, first.Regions, third.Regions)
	assert.Equal(t, first.Regions.IDs, third.Regions.IDs)
	assert.False(t, mc.runs[2].Cached)
}

func TestInitial_Store(t *testing.T) {
	quietLogs(t)
	db, err := store.Open(filepath.Join(t.TempDir(), "terrain.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := analyzer.New(nil, analyzer.WithCache(db), analyzer.WithRecorder(db))
	first := mustInitial(t, a)
	second := mustInitial(t, a)
	assert.Equal(t, first.Regions.IDs, second.Regions.IDs)
	assert.Equal(t, first.Regions.Count(), second.Regions.Count())

	runs, err := db.Runs(first.Key)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	cached := 0
	for _, r := range runs {
		assert.Equal(t, 3, r.Regions)
		assert.Equal(t, 1, r.Ramps)
		if r.Cached {
			cached++
		}
	}
	assert.Equal(t, 1, cached)
}

func TestInitial_InvalidCacheEntry(t *testing.T) {
	quietLogs(t)
	key := mustInitial(t, analyzer.New(nil)).Key

	ids := make([]segment.AreaID, 24*16)
	for i := range ids {
		ids[i] = 3
	}
	gap, err := segment.NewRegionGrid(gridstore.Bounds{Width: 24, Height: 16}, ids)
	require.NoError(t, err)

	mc := &memCache{grids: map[string]*segment.RegionGrid{key: gap}}
	a := analyzer.New(nil, analyzer.WithCache(mc), analyzer.WithRecorder(mc))

	var md *analyzer.MapData
	require.NotPanics(t, func() { md = mustInitial(t, a) })
	assert.NotSame(t, gap, md.Regions)
	assert.NoError(t, md.Regions.Validate())
	assert.Len(t, md.Graph.Ramps(), 1)
	require.Len(t, mc.runs, 1)
	assert.False(t, mc.runs[0].Cached)
	assert.Same(t, md.Regions, mc.grids[key])
}
