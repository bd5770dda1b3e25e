// Package config loads the tuning parameters of the terrain analysis.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default values applied when a field is omitted from the JSON file.
const (
	DefaultDepositRadius         = 5.0
	DefaultControlRadius         = 10.0
	DefaultResourcePaddingRadius = 3
	DefaultMainBaseOffset        = 2
	DefaultPlacementConnectivity = "conn4"
	DefaultPlacementMaxDepth     = 0
)

// Config holds the analysis tunables. Fields are pointers so that a partial
// JSON file leaves unspecified values at their defaults; use the Get* methods.
type Config struct {
	// Resources closer than this (strictly) to any member join its Deposit.
	DepositRadius *float64 `json:"deposit_radius,omitempty"`
	// A Deposit is controlled when a main base lies within this distance of its center.
	ControlRadius *float64 `json:"control_radius,omitempty"`
	// Tiles within this Chebyshev distance of a resource are resource padding.
	ResourcePaddingRadius *int `json:"resource_padding_radius,omitempty"`
	// Placement seeds are main base positions shifted by this many tiles on both axes.
	MainBaseOffset *int `json:"main_base_offset,omitempty"`
	// "conn4" or "conn8" neighbor expansion for the placement search.
	PlacementConnectivity *string `json:"placement_connectivity,omitempty"`
	// Maximum BFS depth for the placement search; 0 means unlimited.
	PlacementMaxDepth *int `json:"placement_max_depth,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }

// Empty returns a Config with all fields unset.
func Empty() *Config {
	return &Config{}
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	return &Config{
		DepositRadius:         ptrFloat64(DefaultDepositRadius),
		ControlRadius:         ptrFloat64(DefaultControlRadius),
		ResourcePaddingRadius: ptrInt(DefaultResourcePaddingRadius),
		MainBaseOffset:        ptrInt(DefaultMainBaseOffset),
		PlacementConnectivity: ptrString(DefaultPlacementConnectivity),
		PlacementMaxDepth:     ptrInt(DefaultPlacementMaxDepth),
	}
}

// Load reads a Config from a JSON file.
// The file must have a .json extension and be at most 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the set values are usable.
func (c *Config) Validate() error {
	if c.DepositRadius != nil && *c.DepositRadius <= 0 {
		return fmt.Errorf("deposit_radius must be positive, got %f", *c.DepositRadius)
	}
	if c.ControlRadius != nil && *c.ControlRadius <= 0 {
		return fmt.Errorf("control_radius must be positive, got %f", *c.ControlRadius)
	}
	if c.ResourcePaddingRadius != nil && *c.ResourcePaddingRadius < 0 {
		return fmt.Errorf("resource_padding_radius must be non-negative, got %d", *c.ResourcePaddingRadius)
	}
	if c.MainBaseOffset != nil && *c.MainBaseOffset < 0 {
		return fmt.Errorf("main_base_offset must be non-negative, got %d", *c.MainBaseOffset)
	}
	if c.PlacementConnectivity != nil {
		switch *c.PlacementConnectivity {
		case "conn4", "conn8":
		default:
			return fmt.Errorf("placement_connectivity must be conn4 or conn8, got %q", *c.PlacementConnectivity)
		}
	}
	if c.PlacementMaxDepth != nil && *c.PlacementMaxDepth < 0 {
		return fmt.Errorf("placement_max_depth must be non-negative, got %d", *c.PlacementMaxDepth)
	}

	return nil
}

// GetDepositRadius returns the deposit_radius value or the default.
func (c *Config) GetDepositRadius() float64 {
	if c == nil || c.DepositRadius == nil {
		return DefaultDepositRadius
	}
	return *c.DepositRadius
}

// GetControlRadius returns the control_radius value or the default.
func (c *Config) GetControlRadius() float64 {
	if c == nil || c.ControlRadius == nil {
		return DefaultControlRadius
	}
	return *c.ControlRadius
}

// GetResourcePaddingRadius returns the resource_padding_radius value or the default.
func (c *Config) GetResourcePaddingRadius() int {
	if c == nil || c.ResourcePaddingRadius == nil {
		return DefaultResourcePaddingRadius
	}
	return *c.ResourcePaddingRadius
}

// GetMainBaseOffset returns the main_base_offset value or the default.
func (c *Config) GetMainBaseOffset() int {
	if c == nil || c.MainBaseOffset == nil {
		return DefaultMainBaseOffset
	}
	return *c.MainBaseOffset
}

// GetPlacementConnectivity returns the placement_connectivity value or the default.
func (c *Config) GetPlacementConnectivity() string {
	if c == nil || c.PlacementConnectivity == nil {
		return DefaultPlacementConnectivity
	}
	return *c.PlacementConnectivity
}

// GetPlacementMaxDepth returns the placement_max_depth value or the default.
func (c *Config) GetPlacementMaxDepth() int {
	if c == nil || c.PlacementMaxDepth == nil {
		return DefaultPlacementMaxDepth
	}
	return *c.PlacementMaxDepth
}
