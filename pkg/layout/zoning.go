package layout

import (
	"math"
	"math/rand"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/config"
	"github.com/citykit/citygen/pkg/geo"
	"github.com/citykit/citygen/pkg/noise"
)

const (
	noiseOctaves = 4

	// Fractal noise buckets for zone assignment.
	residentialThreshold = 0.55
	commercialThreshold  = 0.75
	industrialThreshold  = 0.90

	// Assumed coverage of one grid cell (100m x 100m).
	cellAreaM2 = 100.0 * 100.0
)

// assignZones buckets every cell inside the urbanization circle into a
// zone by fractal noise. Cells outside the circle stay undeveloped; the
// distance test uses the cell centre.
func assignZones(c *city.City, cfg config.Config, centre geo.Point2D, radius float64) {
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			cell := geo.Pt(float64(x)+0.5, float64(y)+0.5)
			if cell.Distance(centre) > radius {
				continue
			}
			v := noise.Fractal(x, y, cfg.Seed, noiseOctaves)
			switch {
			case v < residentialThreshold:
				c.SetZone(x, y, city.ZoneResidential)
			case v < commercialThreshold:
				c.SetZone(x, y, city.ZoneCommercial)
			case v < industrialThreshold:
				c.SetZone(x, y, city.ZoneIndustrial)
			default:
				c.SetZone(x, y, city.ZoneGreen)
			}
		}
	}
}

// greenCellTarget returns the number of green cells needed to satisfy
// the per-capita green space minimum.
func greenCellTarget(cfg config.Config) int {
	return int(math.Ceil(float64(cfg.Population) * cfg.GreenM2PerCapita / cellAreaM2))
}

// enforceGreenQuota converts Residential and Industrial cells to Green
// until the per-capita target is met or candidates run out. Candidates
// are shuffled with the pipeline generator so the conversion pattern is
// deterministic. Commercial, Green and undeveloped cells are never
// touched.
func enforceGreenQuota(c *city.City, cfg config.Config, rng *rand.Rand) {
	target := greenCellTarget(cfg)

	current := 0
	for _, z := range c.Zones {
		if z == city.ZoneGreen {
			current++
		}
	}
	if current >= target {
		return
	}

	candidates := make([]int, 0, len(c.Zones))
	for i, z := range c.Zones {
		if z == city.ZoneResidential || z == city.ZoneIndustrial {
			candidates = append(candidates, i)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	deficit := target - current
	for i := 0; i < len(candidates) && i < deficit; i++ {
		c.Zones[candidates[i]] = city.ZoneGreen
	}
}
