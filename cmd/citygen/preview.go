package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/config"
	"github.com/citykit/citygen/pkg/layout"
)

// Zone cell styles for the terminal preview.
var (
	residentialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E2B714"))
	commercialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	industrialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	greenStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	noneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
	legendStyle      = lipgloss.NewStyle().Bold(true)
)

func zoneGlyph(z city.ZoneType) string {
	switch z {
	case city.ZoneResidential:
		return residentialStyle.Render("▪")
	case city.ZoneCommercial:
		return commercialStyle.Render("▪")
	case city.ZoneIndustrial:
		return industrialStyle.Render("▪")
	case city.ZoneGreen:
		return greenStyle.Render("▪")
	default:
		return noneStyle.Render("·")
	}
}

// runPreview generates the city and prints its zoning grid, one glyph
// per cell, northern row first.
func runPreview(cfg config.Config) error {
	c := layout.Generate(cfg)

	var sb strings.Builder
	for y := c.Size - 1; y >= 0; y-- {
		for x := 0; x < c.Size; x++ {
			sb.WriteString(zoneGlyph(c.ZoneAt(x, y)))
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())

	fmt.Println(legendStyle.Render("legend:"),
		residentialStyle.Render("▪ residential"),
		commercialStyle.Render("▪ commercial"),
		industrialStyle.Render("▪ industrial"),
		greenStyle.Render("▪ green"),
		noneStyle.Render("· undeveloped"))
	fmt.Printf("seed=%d layout=%s buildings=%d facilities=%d\n",
		cfg.Seed, cfg.Layout, len(c.Buildings), len(c.Facilities))
	return nil
}
