package analyzer

import (
	"fmt"

	"github.com/katalvlaran/terrain/deposit"
	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/placement"
	"github.com/katalvlaran/terrain/snapshot"
)

// Request describes a structure to place.
type Request struct {
	Size    gridstore.Size
	Options gridstore.BuildOptions
	// Seeds override the default start tiles when non-empty.
	Seeds []gridstore.Location
}

// Placement is where to put a structure.
type Placement struct {
	// Origin is the lower-left tile of the footprint.
	Origin gridstore.Location
	// Center is the position to issue the build command at.
	Center snapshot.Point
	// Depth is the BFS distance from the nearest start tile.
	Depth int
	// Geyser is set for extractors, which are placed on a geyser instead of searched.
	Geyser *snapshot.Unit
}

// Place searches for the nearest tile where req fits.
//
// Without explicit seeds the search starts next to each main base, offset by
// the configured main base offset; when req.Options.IncludeResourcePadding is
// set it starts from the center of the next expansion deposit instead.
// A search that finds nothing returns an error wrapping placement.ErrNotFound.
func (md *MapData) Place(req Request) (*Placement, error) {
	seeds := req.Seeds
	if len(seeds) == 0 {
		var err error
		if seeds, err = md.defaultSeeds(req.Options.IncludeResourcePadding); err != nil {
			return nil, err
		}
	}

	conn := gridstore.Conn4
	if md.cfg.GetPlacementConnectivity() == "conn8" {
		conn = gridstore.Conn8
	}
	res, err := placement.Search(md.Grid.Bounds, seeds,
		placement.Footprint(md.Grid, req.Size, req.Options), md.Grid.CanTraverse,
		placement.WithConnectivity(conn),
		placement.WithMaxDepth(md.cfg.GetPlacementMaxDepth()),
	)
	if err != nil {
		return nil, fmt.Errorf("analyzer: place %dx%d: %w", req.Size.X, req.Size.Y, err)
	}

	return &Placement{
		Origin: res.Location,
		Center: snapshot.Point{
			X: float64(res.Location.X) + float64(req.Size.X)*0.5,
			Y: float64(res.Location.Y) + float64(req.Size.Y)*0.5,
		},
		Depth: res.Depth,
	}, nil
}

// PlaceType places a structure of type t using the type table of the last
// frame. Town halls go to the next expansion and extractors to a free geyser
// of a controlled deposit.
func (md *MapData) PlaceType(t snapshot.UnitType) (*Placement, error) {
	info, ok := md.types[t]
	size, isStructure := md.types.StructureSize(t)
	if !ok || !isStructure {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStructure, t)
	}

	if info.Extractor {
		g, ok := deposit.FreeGeyser(md.ControlledDeposits(md.bases), md.bases, md.extractors, md.cfg.GetControlRadius())
		if !ok {
			return nil, ErrNoGeyser
		}
		return &Placement{Origin: gridstore.FootprintOrigin(g.Pos, size), Center: g.Pos, Geyser: &g}, nil
	}

	return md.Place(Request{
		Size: size,
		Options: gridstore.BuildOptions{
			RequireCreep:           info.RequiresCreep,
			HasAddOn:               info.AddOn,
			IncludeResourcePadding: info.MainBase,
		},
	})
}

func (md *MapData) defaultSeeds(expansion bool) ([]gridstore.Location, error) {
	if len(md.bases) == 0 {
		return nil, ErrNoMainBase
	}
	if expansion {
		d, ok := deposit.NextExpansion(md.Deposits, md.bases, md.cfg.GetControlRadius())
		if !ok {
			return nil, ErrNoExpansion
		}
		return []gridstore.Location{d.Center}, nil
	}

	off := md.cfg.GetMainBaseOffset()
	seeds := make([]gridstore.Location, 0, len(md.bases))
	for _, b := range md.bases {
		seeds = append(seeds, clamp(md.Grid.Bounds, gridstore.LocationOf(b.Pos).Add(off, off)))
	}
	return seeds, nil
}

// clamp moves l onto the map; the main base offset can push it off near the edge.
func clamp(b gridstore.Bounds, l gridstore.Location) gridstore.Location {
	return gridstore.Location{
		X: min(max(l.X, 0), b.Width-1),
		Y: min(max(l.Y, 0), b.Height-1),
	}
}
