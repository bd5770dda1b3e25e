package placement

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terrain/gridstore"
)

// Sentinel errors for placement search.
var (
	// ErrNotFound is returned when no reachable tile satisfies the predicate.
	ErrNotFound = errors.New("placement: no feasible tile found")

	// ErrNoStarts is returned when Search receives no start tiles.
	ErrNoStarts = errors.New("placement: no start tiles")

	// ErrStartOutOfBounds is returned when a start tile lies outside the map.
	ErrStartOutOfBounds = errors.New("placement: start tile out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("placement: invalid option supplied")
)

// Predicate tests a single tile.
type Predicate func(loc gridstore.Location) bool

// Option configures Search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters and hooks of one Search.
type Options struct {
	// Connectivity selects the neighbor offsets used for expansion.
	Connectivity gridstore.Connectivity

	// MaxDepth, if > 0, stops expanding beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called for every dequeued tile before it is evaluated.
	OnVisit func(loc gridstore.Location, depth int)

	err error
}

// DefaultOptions returns Conn4 expansion, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Connectivity: gridstore.Conn4,
		MaxDepth:     0,
		OnVisit:      func(gridstore.Location, int) {},
	}
}

// WithConnectivity selects Conn4 or Conn8 expansion.
func WithConnectivity(c gridstore.Connectivity) Option {
	return func(o *Options) {
		switch c {
		case gridstore.Conn4, gridstore.Conn8:
			o.Connectivity = c
		default:
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
		}
	}
}

// WithMaxDepth limits how far the search expands.
//
//	d > 0:  tiles deeper than d are never enqueued
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook called for each dequeued tile.
func WithOnVisit(fn func(loc gridstore.Location, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is a successful search outcome.
type Result struct {
	// Location is the feasible tile.
	Location gridstore.Location
	// Depth is its BFS distance from the nearest start tile.
	Depth int
	// Visited counts the tiles dequeued, the match included.
	Visited int
}
