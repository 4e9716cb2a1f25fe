package main

import (
	"github.com/citykit/citygen/pkg/config"
	"github.com/spf13/cobra"
)

// configFlags holds the generation options shared by every subcommand.
// A YAML config file can supply base values; explicitly set flags win.
type configFlags struct {
	configPath string

	seed       uint32
	population int
	gridSize   int
	radius     float64
	hospitals  int
	schools    int
	greenM2    float64
	transport  string
	layout     string
	output     string
}

// register wires the flag set onto a command, defaulting every value
// from the standard configuration.
func (f *configFlags) register(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML config file (city.yaml)")
	cmd.Flags().Uint32Var(&f.seed, "seed", 0, "random seed for deterministic output")
	cmd.Flags().IntVar(&f.population, "population", def.Population, "number of inhabitants")
	cmd.Flags().IntVar(&f.gridSize, "grid-size", def.GridSize, "grid dimension (square)")
	cmd.Flags().Float64Var(&f.radius, "radius-fraction", def.CityRadius, "fraction of half grid forming the city radius")
	cmd.Flags().IntVar(&f.hospitals, "hospitals", def.Hospitals, "number of hospitals to place")
	cmd.Flags().IntVar(&f.schools, "schools", def.Schools, "number of schools to place")
	cmd.Flags().Float64Var(&f.greenM2, "green-m2", def.GreenM2PerCapita, "minimum green space per capita (m2)")
	cmd.Flags().StringVar(&f.transport, "transport", string(def.Transport), "primary transport mode (car|transit|walk)")
	cmd.Flags().StringVar(&f.layout, "layout", string(def.Layout), "road layout style (grid|radial)")
	cmd.Flags().StringVarP(&f.output, "output", "o", def.OutputPrefix, "output file prefix")
}

// resolve builds the final normalized config: file values first, then
// any flag the user set explicitly.
func (f *configFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("seed") {
		cfg.Seed = f.seed
	}
	if set("population") {
		cfg.Population = f.population
	}
	if set("grid-size") {
		cfg.GridSize = f.gridSize
	}
	if set("radius-fraction") {
		cfg.CityRadius = f.radius
	}
	if set("hospitals") {
		cfg.Hospitals = f.hospitals
	}
	if set("schools") {
		cfg.Schools = f.schools
	}
	if set("green-m2") {
		cfg.GreenM2PerCapita = f.greenM2
	}
	if set("transport") {
		mode, err := config.TransportModeFromString(f.transport)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Transport = mode
	}
	if set("layout") {
		cfg.Layout = config.LayoutFromString(f.layout)
	}
	if set("output") {
		cfg.OutputPrefix = f.output
	}

	cfg.Normalize()
	return cfg, nil
}
