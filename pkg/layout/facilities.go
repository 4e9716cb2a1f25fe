package layout

import (
	"math"
	"math/rand"
	"sort"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/config"
	"github.com/citykit/citygen/pkg/geo"
)

// Facility placement fixtures. The road-adjacency threshold and the
// height formulas are empirically chosen constants, not derived laws.
const (
	nearRoadThreshold = 1.6

	hospitalBaseH, hospitalAreaH = 4.0, 0.25
	hospitalMinH, hospitalMaxH   = 5, 12

	schoolBaseH, schoolAreaH = 2.0, 0.1
	schoolMinH, schoolMaxH   = 2, 5
)

// roadDistance returns the distance from p to the nearest road,
// treating each segment as thickened by its class half-width.
func roadDistance(p geo.Point2D, roads []city.RoadSegment) float64 {
	best := math.MaxFloat64
	for _, r := range roads {
		d := geo.SegmentDistance(p, r.A, r.B) - r.Class.HalfWidth()
		if d < 0 {
			d = 0
		}
		if d < best {
			best = d
		}
	}
	return best
}

// facilityCandidate pairs a building index with its road distance.
type facilityCandidate struct {
	index    int
	roadDist float64
}

// orderCandidates partitions candidates into near-road and interior
// groups, shuffles each independently, then stable-sorts each by
// ascending road distance. Near-road candidates come first.
func orderCandidates(candidates []facilityCandidate, rng *rand.Rand) []facilityCandidate {
	var near, interior []facilityCandidate
	for _, cand := range candidates {
		if cand.roadDist <= nearRoadThreshold {
			near = append(near, cand)
		} else {
			interior = append(interior, cand)
		}
	}
	for _, group := range [][]facilityCandidate{near, interior} {
		g := group
		rng.Shuffle(len(g), func(i, j int) { g[i], g[j] = g[j], g[i] })
		sort.SliceStable(g, func(i, j int) bool { return g[i].roadDist < g[j].roadDist })
	}
	return append(near, interior...)
}

// facilityHeight reshapes a host building's storey count to the
// facility profile, scaled by the footprint area.
func facilityHeight(t city.FacilityType, area float64) int {
	switch t {
	case city.FacilityHospital:
		return clampInt(int(math.Round(hospitalBaseH+hospitalAreaH*math.Sqrt(area))), hospitalMinH, hospitalMaxH)
	default:
		return clampInt(int(math.Round(schoolBaseH+schoolAreaH*math.Sqrt(area))), schoolMinH, schoolMaxH)
	}
}

// placeFacilities selects host parcels for hospitals and schools.
// Residential and commercial buildings are preferred (all buildings if
// none qualify), with road-adjacent candidates tried first. A building
// hosts at most one facility; requesting more facilities than there
// are hosts silently places fewer.
func placeFacilities(c *city.City, cfg config.Config, rng *rand.Rand) {
	var candidates []facilityCandidate
	for i, b := range c.Buildings {
		if b.Zone == city.ZoneResidential || b.Zone == city.ZoneCommercial {
			candidates = append(candidates, facilityCandidate{index: i})
		}
	}
	if len(candidates) == 0 {
		for i := range c.Buildings {
			candidates = append(candidates, facilityCandidate{index: i})
		}
	}
	for i := range candidates {
		centre := c.Buildings[candidates[i].index].Footprint.Centroid()
		candidates[i].roadDist = roadDistance(centre, c.Roads)
	}

	ordered := orderCandidates(candidates, rng)

	place := func(t city.FacilityType, count int) {
		placed := 0
		for _, cand := range ordered {
			if placed >= count {
				break
			}
			b := &c.Buildings[cand.index]
			if b.HostsFacility() {
				continue
			}
			b.Facility = t
			b.Height = facilityHeight(t, b.Footprint.Area())
			c.Facilities = append(c.Facilities, city.Facility{
				Type:     t,
				Position: b.Footprint.Bounds().Centre(),
			})
			placed++
		}
	}
	place(city.FacilityHospital, cfg.Hospitals)
	place(city.FacilitySchool, cfg.Schools)
}
