// Package config defines the generation configuration and its
// normalization rules. Construction clamps out-of-range numeric fields
// instead of failing; the only signaled error is an unrecognized
// transport mode label.
package config

import (
	"fmt"
	"strings"
)

// TransportMode is the primary transport mode of the city. It is
// informational: generation does not branch on it.
type TransportMode string

const (
	TransportCar     TransportMode = "car"
	TransportTransit TransportMode = "public_transit"
	TransportWalk    TransportMode = "walk"
)

// TransportModeFromString parses a transport mode label. Accepted
// spellings are case-insensitive. Unknown labels are an error.
func TransportModeFromString(s string) (TransportMode, error) {
	switch strings.ToLower(s) {
	case "car":
		return TransportCar, nil
	case "public", "public_transit", "transit":
		return TransportTransit, nil
	case "walk", "pedestrian":
		return TransportWalk, nil
	}
	return "", fmt.Errorf("unknown transport mode: %q", s)
}

// LayoutStyle selects the road network topology.
type LayoutStyle string

const (
	LayoutGrid   LayoutStyle = "grid"
	LayoutRadial LayoutStyle = "radial"
)

// LayoutFromString parses a layout label. Empty or unrecognized input
// falls back to the grid layout, consistent with the clamp-don't-fail
// normalization policy.
func LayoutFromString(s string) LayoutStyle {
	if strings.EqualFold(s, string(LayoutRadial)) {
		return LayoutRadial
	}
	return LayoutGrid
}

// Config is the complete configuration for one generation call.
type Config struct {
	Seed             uint32        `yaml:"seed" json:"seed"`
	Population       int           `yaml:"population" json:"population"`
	GridSize         int           `yaml:"grid_size" json:"grid_size"`
	CityRadius       float64       `yaml:"city_radius" json:"city_radius"`
	Hospitals        int           `yaml:"hospitals" json:"hospitals"`
	Schools          int           `yaml:"schools" json:"schools"`
	GreenM2PerCapita float64       `yaml:"green_m2_per_capita" json:"green_m2_per_capita"`
	Transport        TransportMode `yaml:"transport" json:"transport"`
	Layout           LayoutStyle   `yaml:"layout" json:"layout"`
	OutputPrefix     string        `yaml:"output_prefix" json:"output_prefix"`
}

// Default returns the configuration the generator assumes when a field
// is left unset.
func Default() Config {
	return Config{
		Population:       100000,
		GridSize:         100,
		CityRadius:       0.8,
		Hospitals:        1,
		Schools:          5,
		GreenM2PerCapita: 8.0,
		Transport:        TransportCar,
		Layout:           LayoutGrid,
		OutputPrefix:     "city",
	}
}

// Normalize clamps all numeric fields into their valid domains and
// fills enum zero values with their defaults. It never fails.
func (c *Config) Normalize() {
	if c.Population < 0 {
		c.Population = 0
	}
	if c.GridSize < 10 {
		c.GridSize = 10
	}
	if c.CityRadius <= 0 {
		c.CityRadius = 0.1
	}
	if c.CityRadius > 1 {
		c.CityRadius = 1
	}
	if c.Hospitals < 0 {
		c.Hospitals = 0
	}
	if c.Schools < 0 {
		c.Schools = 0
	}
	if c.GreenM2PerCapita < 0 {
		c.GreenM2PerCapita = 0
	}
	if c.Transport == "" {
		c.Transport = TransportCar
	}
	if c.Layout == "" {
		c.Layout = LayoutGrid
	}
	if c.OutputPrefix == "" {
		c.OutputPrefix = "city"
	}
}
