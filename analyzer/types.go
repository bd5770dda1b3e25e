package analyzer

import (
	"errors"

	"github.com/katalvlaran/terrain/segment"
	"github.com/katalvlaran/terrain/store"
)

// Sentinel errors for placement requests.
var (
	// ErrUnknownStructure is returned for a type that is not a structure.
	ErrUnknownStructure = errors.New("analyzer: unknown structure type")
	// ErrNoMainBase is returned when placement needs a main base and there is none.
	ErrNoMainBase = errors.New("analyzer: no main base")
	// ErrNoExpansion is returned when every deposit is already controlled.
	ErrNoExpansion = errors.New("analyzer: no expansion deposit available")
	// ErrNoGeyser is returned when no controlled geyser is free.
	ErrNoGeyser = errors.New("analyzer: no free vespene geyser")
)

// Cache stores region grids by map key. A miss must be reported with an
// error wrapping store.ErrNotFound.
type Cache interface {
	LoadRegions(key string) (*segment.RegionGrid, error)
	SaveRegions(key string, rg *segment.RegionGrid) error
}

// Recorder logs analysis runs.
type Recorder interface {
	RecordRun(r store.Run) (string, error)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCache makes Initial look up and store region grids in c.
func WithCache(c Cache) Option {
	return func(a *Analyzer) {
		a.cache = c
	}
}

// WithRecorder makes Initial log a summary of each run to r.
func WithRecorder(r Recorder) Option {
	return func(a *Analyzer) {
		a.recorder = r
	}
}
