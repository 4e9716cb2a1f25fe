package layout

import (
	"math"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/config"
	"github.com/citykit/citygen/pkg/geo"
)

const (
	minRings  = 3
	maxRings  = 8
	minSpokes = 8
	maxSpokes = 20

	// Minimum chord count used to approximate a ring road.
	minRingChords = 32

	// Wedge blocks whose centroid falls outside this multiple of the
	// urbanization radius are discarded.
	wedgeKeepFactor = 1.1
)

// ringCount scales the number of concentric ring roads with the
// population.
func ringCount(population int) int {
	n := int(math.Round(3 + float64(population)/200000))
	return clampInt(n, minRings, maxRings)
}

// spokeCount scales the number of radial spokes with the urbanization
// radius fraction.
func spokeCount(cityRadius float64) int {
	n := int(math.Round(10 + cityRadius*8))
	return clampInt(n, minSpokes, maxSpokes)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// buildRadialNetwork emits concentric ring roads and radial spokes,
// then forms wedge blocks from each ring-band x angular-sector pair.
// Rings are classified by their normalized radius; spokes pass through
// the centre and are always arterial.
func buildRadialNetwork(c *city.City, cfg config.Config, centre geo.Point2D, radius float64) {
	rings := ringCount(cfg.Population)
	spokes := spokeCount(cfg.CityRadius)
	chords := minRingChords
	if 2*spokes > chords {
		chords = 2 * spokes
	}

	// Ring roads as closed chord polylines.
	ringClass := make([]city.RoadClass, rings+1)
	for i := 1; i <= rings; i++ {
		r := radius * float64(i) / float64(rings)
		class := classifyOffset(float64(i) / float64(rings))
		ringClass[i] = class
		for s := 0; s < chords; s++ {
			a0 := 2 * math.Pi * float64(s) / float64(chords)
			a1 := 2 * math.Pi * float64(s+1) / float64(chords)
			c.Roads = append(c.Roads, city.RoadSegment{
				A:     centre.Add(geo.FromPolar(r, a0)),
				B:     centre.Add(geo.FromPolar(r, a1)),
				Class: class,
			})
		}
	}

	// Radial spokes from the centre to the outer edge.
	for s := 0; s < spokes; s++ {
		angle := 2 * math.Pi * float64(s) / float64(spokes)
		c.Roads = append(c.Roads, city.RoadSegment{
			A:     centre,
			B:     centre.Add(geo.FromPolar(radius, angle)),
			Class: city.RoadArterial,
		})
	}

	// Wedge blocks between consecutive rings and spokes, inset from
	// their bounding roads: radially by the ring half-widths, angularly
	// by the spoke clearance at the band's mid radius.
	for i := 0; i < rings; i++ {
		r0 := radius * float64(i) / float64(rings)
		r1 := radius * float64(i+1) / float64(rings)
		if i > 0 {
			r0 += ringClass[i].HalfWidth()
		}
		r1 -= ringClass[i+1].HalfWidth()
		if r1 <= r0 {
			continue
		}
		midR := (r0 + r1) / 2
		angularInset := 0.0
		if midR > 0 {
			angularInset = city.RoadArterial.HalfWidth() / midR
		}

		for s := 0; s < spokes; s++ {
			a0 := 2*math.Pi*float64(s)/float64(spokes) + angularInset
			a1 := 2*math.Pi*float64(s+1)/float64(spokes) - angularInset
			if a1 <= a0 {
				continue
			}
			quad := geo.NewQuad(
				centre.Add(geo.FromPolar(r0, a0)),
				centre.Add(geo.FromPolar(r1, a0)),
				centre.Add(geo.FromPolar(r1, a1)),
				centre.Add(geo.FromPolar(r0, a1)),
			)
			if quad.Centroid().Distance(centre) > radius*wedgeKeepFactor {
				continue
			}
			c.Blocks = append(c.Blocks, city.Block{
				Bounds: quad.Bounds(),
				Quad:   &quad,
				Wedge: &city.Wedge{
					InnerRadius: r0,
					OuterRadius: r1,
					AngleFrom:   a0,
					AngleTo:     a1,
				},
			})
		}
	}
}
