package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxFileSize bounds the size of a snapshot file accepted by Load.
const maxFileSize = 64 * 1024 * 1024

// File is a recorded snapshot: the start data, one frame and the type table.
// Grids are base64 strings in JSON (encoding/json's []byte encoding).
type File struct {
	Start Start     `json:"start"`
	Frame Frame     `json:"frame"`
	Types TypeTable `json:"types"`
}

// Load reads and validates a snapshot JSON file.
func Load(path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat snapshot file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("snapshot file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a snapshot JSON document from r, validates the grids and
// resolves per-unit resource flags from the type table.
func Decode(r io.Reader) (*File, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
	}
	if err := file.Start.Validate(); err != nil {
		return nil, err
	}
	if n := file.Start.Width * file.Start.Height; file.Frame.Creep != nil && len(file.Frame.Creep) != n {
		return nil, fmt.Errorf("%w: creep has %d bytes, want %d", ErrGridSize, len(file.Frame.Creep), n)
	}
	file.resolveUnits()

	return &file, nil
}

// resolveUnits copies resource flags from the type table onto each unit.
func (f *File) resolveUnits() {
	for i := range f.Frame.Units {
		info, ok := f.Types[f.Frame.Units[i].Type]
		if !ok {
			continue
		}
		f.Frame.Units[i].Minerals = f.Frame.Units[i].Minerals || info.Minerals
		f.Frame.Units[i].Vespene = f.Frame.Units[i].Vespene || info.Vespene
	}
}
