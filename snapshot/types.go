package snapshot

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for snapshot validation.
var (
	// ErrMapSize indicates non-positive map dimensions.
	ErrMapSize = errors.New("snapshot: map width and height must be positive")
	// ErrGridSize indicates a grid whose length differs from width×height.
	ErrGridSize = errors.New("snapshot: grid length does not match map size")
)

// Alliance is the relation of a unit to the observing player.
type Alliance string

const (
	AllianceSelf    Alliance = "self"
	AllianceAlly    Alliance = "ally"
	AllianceNeutral Alliance = "neutral"
	AllianceEnemy   Alliance = "enemy"
)

// UnitType names a unit or structure type as reported by the engine.
type UnitType string

// Point is a continuous map position in tile units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a rectangular footprint measured in tiles.
type Size struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Distance returns the Euclidean distance between a and b in tile units.
func Distance(a, b Point) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// Unit is one visible unit in a Frame.
// Minerals and Vespene flag resource-bearing unit types; they are resolved
// from the TypeTable when a File is loaded.
type Unit struct {
	Tag           uint64   `json:"tag"`
	Type          UnitType `json:"type"`
	Alliance      Alliance `json:"alliance"`
	Pos           Point    `json:"pos"`
	Minerals      bool     `json:"minerals,omitempty"`
	Vespene       bool     `json:"vespene,omitempty"`
	BuildProgress float64  `json:"build_progress,omitempty"`
}

// IsMineralDeposit reports whether u is a neutral mineral field.
func (u Unit) IsMineralDeposit() bool {
	return u.Alliance == AllianceNeutral && u.Minerals
}

// IsVespeneGeyser reports whether u is a neutral vespene geyser.
func (u Unit) IsVespeneGeyser() bool {
	return u.Alliance == AllianceNeutral && u.Vespene
}

// IsResource reports whether u is a mineral field or a vespene geyser.
func (u Unit) IsResource() bool {
	return u.IsMineralDeposit() || u.IsVespeneGeyser()
}

// IsBuilt reports whether construction of u has finished.
func (u Unit) IsBuilt() bool {
	return u.BuildProgress >= 1
}

// Distance returns the Euclidean distance from u to p.
func (u Unit) Distance(p Point) float64 {
	return Distance(u.Pos, p)
}

// TypeInfo is the metadata the analysis needs about a unit type.
type TypeInfo struct {
	Structure bool `json:"structure,omitempty"`
	Size      Size `json:"size"`
	MainBase  bool `json:"main_base,omitempty"`
	Minerals  bool `json:"minerals,omitempty"`
	Vespene   bool `json:"vespene,omitempty"`
	// Extractor marks buildings placed on a vespene geyser.
	Extractor bool `json:"extractor,omitempty"`
	// RequiresCreep marks structures that can only be placed on creep.
	RequiresCreep bool `json:"requires_creep,omitempty"`
	// AddOn marks production structures that reserve room for an add-on.
	AddOn bool `json:"add_on,omitempty"`
}

// TypeTable maps unit types to their metadata.
type TypeTable map[UnitType]TypeInfo

// StructureSize returns the footprint of structure type t.
// The second result is false for unknown types and for non-structures.
func (tt TypeTable) StructureSize(t UnitType) (Size, bool) {
	info, ok := tt[t]
	if !ok || !info.Structure || info.Size.X <= 0 || info.Size.Y <= 0 {
		return Size{}, false
	}
	return info.Size, true
}

// IsMainBase reports whether t is a town hall type.
func (tt TypeTable) IsMainBase(t UnitType) bool {
	return tt[t].MainBase
}

// IsExtractor reports whether t is built on a vespene geyser.
func (tt TypeTable) IsExtractor(t UnitType) bool {
	return tt[t].Extractor
}

// Start is the static map information available at game start.
// All grids are row-major with index y*Width+x.
type Start struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Placement      []byte  `json:"placement"`
	Pathing        []byte  `json:"pathing"`
	Terrain        []byte  `json:"terrain"`
	StartLocations []Point `json:"start_locations"`
}

// Validate checks dimensions and grid lengths.
func (s *Start) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrMapSize
	}
	n := s.Width * s.Height
	grids := []struct {
		name string
		data []byte
	}{
		{"placement", s.Placement},
		{"pathing", s.Pathing},
		{"terrain", s.Terrain},
	}
	for _, g := range grids {
		if len(g.data) != n {
			return fmt.Errorf("%w: %s has %d bytes, want %d", ErrGridSize, g.name, len(g.data), n)
		}
	}
	return nil
}

// Frame is one observation of visible units.
// Creep, when present, has one byte per tile (non-zero = creep).
type Frame struct {
	Units []Unit `json:"units"`
	Creep []byte `json:"creep,omitempty"`
}

// Resources returns the neutral mineral fields and geysers in f, in frame order.
func (f Frame) Resources() []Unit {
	var out []Unit
	for _, u := range f.Units {
		if u.IsResource() {
			out = append(out, u)
		}
	}
	return out
}

// MainBases returns the player's own town halls in f, in frame order.
func (f Frame) MainBases(types TypeTable) []Unit {
	var out []Unit
	for _, u := range f.Units {
		if u.Alliance == AllianceSelf && types.IsMainBase(u.Type) {
			out = append(out, u)
		}
	}
	return out
}

// Extractors returns the vespene buildings of any alliance in f, in frame order.
func (f Frame) Extractors(types TypeTable) []Unit {
	var out []Unit
	for _, u := range f.Units {
		if types.IsExtractor(u.Type) {
			out = append(out, u)
		}
	}
	return out
}
