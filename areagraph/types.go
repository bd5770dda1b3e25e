package areagraph

import (
	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/segment"
)

// Kind tags the variant of an Area.
type Kind uint8

const (
	// KindMesa is a buildable region.
	KindMesa Kind = iota + 1
	// KindRamp is a non-buildable region between exactly two Mesas.
	KindRamp
	// KindEdge is any other non-buildable region.
	KindEdge
)

// String returns the lowercase name of k.
func (k Kind) String() string {
	switch k {
	case KindMesa:
		return "mesa"
	case KindRamp:
		return "ramp"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Area is one node of the graph. Fields after Neighbors are only set for the
// variant named in their comment.
type Area struct {
	ID     segment.AreaID
	Kind   Kind
	Tiles  []gridstore.Location // row-major order
	Center gridstore.Location
	// Neighbors are the adjacent areas in the graph, sorted by id.
	Neighbors []segment.AreaID

	// Height is the elevation of a Mesa.
	Height byte
	// Bottom and Top are the lower and higher Mesa of a Ramp.
	Bottom, Top segment.AreaID
	// Mesas are the Mesas an Edge touches, sorted by id.
	Mesas []segment.AreaID
}

// IsMesa reports whether a is a Mesa.
func (a *Area) IsMesa() bool { return a.Kind == KindMesa }

// IsRamp reports whether a is a Ramp.
func (a *Area) IsRamp() bool { return a.Kind == KindRamp }

// IsEdge reports whether a is an Edge.
func (a *Area) IsEdge() bool { return a.Kind == KindEdge }
