package main

import (
	"fmt"
	"os"

	"github.com/citykit/citygen/pkg/config"
	"github.com/citykit/citygen/pkg/export"
	"github.com/citykit/citygen/pkg/layout"
)

// runGenerate builds the city and writes <prefix>.obj and
// <prefix>_summary.json next to the working directory.
func runGenerate(cfg config.Config) error {
	c := layout.Generate(cfg)

	objPath := cfg.OutputPrefix + ".obj"
	objFile, err := os.Create(objPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", objPath, err)
	}
	defer objFile.Close()
	if err := export.WriteOBJ(objFile, c); err != nil {
		return fmt.Errorf("writing mesh: %w", err)
	}

	summaryPath := cfg.OutputPrefix + "_summary.json"
	summaryFile, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", summaryPath, err)
	}
	defer summaryFile.Close()
	if err := export.WriteSummary(summaryFile, c); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	s := export.Summarize(c)
	fmt.Printf("generated %s and %s\n", objPath, summaryPath)
	fmt.Printf("  buildings: %d  roads: %d  hospitals: %d  schools: %d\n",
		s.TotalBuildings, s.NumRoadSegments, s.NumHospitals, s.NumSchools)
	return nil
}
