package layout

import (
	"math"
	"math/rand"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/geo"
)

const (
	// Footprint jitter: area shrink range and the share of the freed
	// slack used for recentring.
	areaScaleLo  = 0.4
	areaScaleHi  = 0.9
	jitterMargin = 0.6
)

// Per-zone height model constants. Residential and commercial heights
// follow log-normal draws; industrial is exponential with a floor.
const (
	residentialMedian = 3.0
	residentialSigma  = 0.35
	commercialMedian  = 8.0
	commercialSigma   = 0.5
	industrialMean    = 5.0
	industrialFloor   = 2.0

	residentialMinH, residentialMaxH = 2, 12
	commercialMinH, commercialMaxH   = 4, 40
	industrialMinH, industrialMaxH   = 2, 14
)

// jitterRect shrinks r by a uniformly sampled area scale and recentres
// it within a fraction of the freed slack, clamped so the result stays
// inside r. Draw order is area scale, then dx, then dy.
func jitterRect(r geo.Rect, rng *rand.Rand) geo.Rect {
	scale := math.Sqrt(areaScaleLo + rng.Float64()*(areaScaleHi-areaScaleLo))
	w := r.Width() * scale
	h := r.Height() * scale
	slackX := r.Width() - w
	slackY := r.Height() - h

	dx := (rng.Float64() - 0.5) * jitterMargin * slackX
	dy := (rng.Float64() - 0.5) * jitterMargin * slackY

	x0 := r.X0 + slackX/2 + dx
	y0 := r.Y0 + slackY/2 + dy
	x0 = math.Max(r.X0, math.Min(x0, r.X1-w))
	y0 = math.Max(r.Y0, math.Min(y0, r.Y1-h))
	return geo.Rect{X0: x0, Y0: y0, X1: x0 + w, Y1: y0 + h}
}

// sampleZone looks up the zoning grid at a footprint centre, clamped
// to grid bounds.
func sampleZone(c *city.City, p geo.Point2D) city.ZoneType {
	cx := math.Max(0, math.Min(p.X, float64(c.Size-1)))
	cy := math.Max(0, math.Min(p.Y, float64(c.Size-1)))
	return c.ZoneAt(int(math.Floor(cx)), int(math.Floor(cy)))
}

// sampleHeight draws a storey count for a developed parcel. The base
// draw depends on the zone; it is then biased toward the city centre,
// nudged by footprint area and clamped to the zone's range.
func sampleHeight(zone city.ZoneType, area, dist, radius float64, rng *rand.Rand) int {
	radial := 1 - math.Max(0, math.Min(dist/radius, 1))

	var h float64
	var lo, hi int
	switch zone {
	case city.ZoneResidential:
		h = residentialMedian * math.Exp(residentialSigma*rng.NormFloat64())
		h *= 0.6 + 0.7*radial
		h += math.Min(area/90, 1.5)
		lo, hi = residentialMinH, residentialMaxH
	case city.ZoneCommercial:
		h = commercialMedian * math.Exp(commercialSigma*rng.NormFloat64())
		h *= 0.8 + 1.2*radial
		h += math.Min(area/30, 5)
		lo, hi = commercialMinH, commercialMaxH
	case city.ZoneIndustrial:
		h = industrialFloor + rng.ExpFloat64()*industrialMean
		h *= 0.7 + 0.6*radial
		h += math.Min(area/45, 2)
		lo, hi = industrialMinH, industrialMaxH
	default:
		return 0
	}
	return clampInt(int(math.Round(h)), lo, hi)
}

// placeBuildings turns every surviving parcel into a building: the
// footprint is jittered within the parcel, the zone sampled under the
// jittered centre, and a height drawn for it. Parcels landing on
// undeveloped ground are dropped; green parcels become height-zero
// parks.
func placeBuildings(c *city.City, parcels []parcel, centre geo.Point2D, radius float64, rng *rand.Rand) {
	for _, p := range parcels {
		jittered := jitterRect(p.rect, rng)

		var footprint city.Footprint
		if p.frame != nil {
			footprint = city.QuadFootprint(p.frame.toQuad(jittered))
		} else {
			footprint = city.RectFootprint(jittered)
		}

		zone := sampleZone(c, footprint.Centroid())
		if zone == city.ZoneNone {
			continue
		}

		height := 0
		if zone != city.ZoneGreen {
			dist := footprint.Centroid().Distance(centre)
			height = sampleHeight(zone, footprint.Area(), dist, radius, rng)
		}

		c.Buildings = append(c.Buildings, city.Building{
			Footprint: footprint,
			Zone:      zone,
			Height:    height,
		})
	}
}
