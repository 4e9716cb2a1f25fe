// Package layout implements the city generation pipeline: zoning, road
// network synthesis, block parcelization, building placement and
// facility placement. Generation is strictly sequential and fully
// deterministic for a given config; every random choice flows from one
// seeded generator threaded through the stages in a fixed order.
package layout

import (
	"math/rand"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/config"
	"github.com/citykit/citygen/pkg/geo"
)

// Generate runs the full pipeline and returns a freshly built city.
// The config is normalized first, so out-of-range fields are clamped
// rather than rejected. Concurrent calls are independent: each call
// owns its own city and random generator.
//
// The stage order is part of the determinism contract. Randomness is
// consumed as: green-quota shuffle, then parcel cuts in block append
// order, then per-parcel jitter (area scale, dx, dy) and height draw,
// then the facility group shuffles and placement walks. Road synthesis
// consumes no randomness.
func Generate(cfg config.Config) *city.City {
	cfg.Normalize()

	c := city.New(cfg.GridSize)
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	centre := geo.Pt(float64(cfg.GridSize)/2, float64(cfg.GridSize)/2)
	radius := cfg.CityRadius * float64(cfg.GridSize) / 2

	assignZones(c, cfg, centre, radius)
	enforceGreenQuota(c, cfg, rng)

	switch cfg.Layout {
	case config.LayoutRadial:
		buildRadialNetwork(c, cfg, centre, radius)
	default:
		buildGridNetwork(c, centre, radius)
	}

	parcels := parcelizeBlocks(c, centre, radius, rng)
	placeBuildings(c, parcels, centre, radius, rng)
	placeFacilities(c, cfg, rng)

	return c
}
