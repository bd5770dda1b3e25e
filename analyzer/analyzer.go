package analyzer

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/terrain/areagraph"
	"github.com/katalvlaran/terrain/config"
	"github.com/katalvlaran/terrain/deposit"
	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/monitoring"
	"github.com/katalvlaran/terrain/segment"
	"github.com/katalvlaran/terrain/snapshot"
	"github.com/katalvlaran/terrain/store"
)

// Analyzer builds MapData from snapshots.
type Analyzer struct {
	cfg      *config.Config
	cache    Cache
	recorder Recorder
}

// New returns an Analyzer using cfg; a nil cfg uses the defaults.
func New(cfg *config.Config, opts ...Option) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &Analyzer{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MapData is the analysis of one map at one frame.
// Grid and Deposits change with every Update; Regions, Neighbors and Graph
// are shared by every MapData derived from the same Initial call.
type MapData struct {
	Key       string
	Grid      *gridstore.Grid
	Regions   *segment.RegionGrid
	Neighbors *segment.NeighborSet
	Graph     *areagraph.Graph
	Deposits  []deposit.Deposit

	cfg        *config.Config
	types      snapshot.TypeTable
	bases      []snapshot.Unit
	extractors []snapshot.Unit
}

// Initial analyzes a map from its start data and first frame.
// Segmentation seeds are the start locations followed by the player's main
// bases.
func (a *Analyzer) Initial(start snapshot.Start, frame snapshot.Frame, types snapshot.TypeTable) (*MapData, error) {
	began := time.Now()
	base, err := gridstore.FromStart(start)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	var seeds []gridstore.Location
	for _, p := range start.StartLocations {
		seeds = append(seeds, gridstore.LocationOf(p))
	}
	for _, u := range frame.MainBases(types) {
		seeds = append(seeds, gridstore.LocationOf(u.Pos))
	}

	key := mapKey(base, seeds)
	rg, cached := a.cachedRegions(key, base.Bounds)
	if rg == nil {
		if rg, err = segment.Segment(base, seeds); err != nil {
			return nil, fmt.Errorf("analyzer: %w", err)
		}
		a.storeRegions(key, rg)
	}

	ns := segment.Neighbors(rg)
	md := &MapData{
		Key:       key,
		Regions:   rg,
		Neighbors: ns,
		Graph:     areagraph.Build(base, rg, ns),
		cfg:       a.cfg,
	}
	md.refresh(base, frame, types)

	elapsed := time.Since(began)
	monitoring.Logf("analyzer: map %.12s: %d regions (%d mesas, %d ramps, %d edges), %d deposits, cached=%t in %v",
		key, rg.Count(), len(md.Graph.Mesas()), len(md.Graph.Ramps()), len(md.Graph.Edges()), len(md.Deposits), cached, elapsed)
	a.record(md, cached, elapsed)

	return md, nil
}

// Update derives the MapData of a later frame from prior. The area graph is
// carried over unchanged; overlays and deposits are rebuilt.
func (a *Analyzer) Update(prior *MapData, frame snapshot.Frame, types snapshot.TypeTable) *MapData {
	md := &MapData{
		Key:       prior.Key,
		Regions:   prior.Regions,
		Neighbors: prior.Neighbors,
		Graph:     prior.Graph,
		cfg:       a.cfg,
	}
	md.refresh(prior.Grid, frame, types)
	return md
}

// refresh rebuilds the per-frame state on top of grid.
func (md *MapData) refresh(grid *gridstore.Grid, frame snapshot.Frame, types snapshot.TypeTable) {
	md.types = types
	md.Grid = grid.Update(frame, types, gridstore.WithResourcePaddingRadius(md.cfg.GetResourcePaddingRadius()))
	md.Deposits = deposit.Cluster(frame.Resources(), md.Graph, md.cfg.GetDepositRadius())
	md.bases = frame.MainBases(types)
	md.extractors = frame.Extractors(types)
}

// ControlledDeposits returns the deposits within the control radius of bases.
func (md *MapData) ControlledDeposits(bases []snapshot.Unit) []deposit.Deposit {
	return deposit.Controlled(md.Deposits, bases, md.cfg.GetControlRadius())
}

// MainBases returns the player's main bases seen in the last frame.
func (md *MapData) MainBases() []snapshot.Unit {
	return md.bases
}

func (a *Analyzer) cachedRegions(key string, b gridstore.Bounds) (*segment.RegionGrid, bool) {
	if a.cache == nil {
		return nil, false
	}
	rg, err := a.cache.LoadRegions(key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, false
	case err != nil:
		monitoring.Logf("analyzer: region cache lookup failed: %v", err)
		return nil, false
	case rg.Bounds != b:
		monitoring.Logf("analyzer: cached region grid is %dx%d, map is %dx%d; recomputing", rg.Width, rg.Height, b.Width, b.Height)
		return nil, false
	}
	if err := rg.Validate(); err != nil {
		monitoring.Logf("analyzer: cached region grid %.12s is invalid: %v; recomputing", key, err)
		return nil, false
	}
	return rg, true
}

func (a *Analyzer) storeRegions(key string, rg *segment.RegionGrid) {
	if a.cache == nil {
		return
	}
	if err := a.cache.SaveRegions(key, rg); err != nil {
		monitoring.Logf("analyzer: failed to cache region grid: %v", err)
	}
}

func (a *Analyzer) record(md *MapData, cached bool, elapsed time.Duration) {
	if a.recorder == nil {
		return
	}
	_, err := a.recorder.RecordRun(store.Run{
		MapKey:   md.Key,
		Regions:  md.Regions.Count(),
		Mesas:    len(md.Graph.Mesas()),
		Ramps:    len(md.Graph.Ramps()),
		Edges:    len(md.Graph.Edges()),
		Deposits: len(md.Deposits),
		Cached:   cached,
		Duration: elapsed,
	})
	if err != nil {
		monitoring.Logf("analyzer: failed to record run: %v", err)
	}
}

// mapKey identifies the terrain together with the segmentation seeds.
func mapKey(g *gridstore.Grid, seeds []gridstore.Location) string {
	h := sha256.New()
	h.Write([]byte(g.Fingerprint()))
	var buf [16]byte
	for _, s := range seeds {
		binary.BigEndian.PutUint64(buf[:8], uint64(int64(s.X)))
		binary.BigEndian.PutUint64(buf[8:], uint64(int64(s.Y)))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
