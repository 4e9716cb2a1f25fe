package layout

import (
	"math/rand"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/geo"
)

const (
	minParcel     = 3.0
	maxParcel     = 12.0
	maxSplitDepth = 6

	// Courtyard margin as a fraction of the block's shorter dimension.
	courtyardFracLo = 0.15
	courtyardFracHi = 0.30

	// Parcels whose bounding-box centre falls outside these multiples
	// of the urbanization radius are discarded.
	gridParcelKeepFactor  = 1.02
	wedgeParcelKeepFactor = 1.05

	// Wedges thinner than this in the radial direction yield nothing.
	minWedgeThickness = 0.1
)

// wedgeFrame maps the unwrapped (arc-length, radial-thickness) space of
// a wedge back to world coordinates. Arc length is measured at the
// band's mid radius.
type wedgeFrame struct {
	centre    geo.Point2D
	innerR    float64
	angleFrom float64
	midR      float64
}

// toQuad maps an axis-aligned rectangle in unwrapped space to its
// world-space quad: u spans arc length, v spans radial thickness.
func (f wedgeFrame) toQuad(r geo.Rect) geo.Quad {
	corner := func(u, v float64) geo.Point2D {
		return f.centre.Add(geo.FromPolar(f.innerR+v, f.angleFrom+u/f.midR))
	}
	return geo.NewQuad(
		corner(r.X0, r.Y0),
		corner(r.X1, r.Y0),
		corner(r.X1, r.Y1),
		corner(r.X0, r.Y1),
	)
}

// parcel is an undeveloped lot awaiting a building. For grid blocks the
// rect is in world space; for wedge blocks it lives in the unwrapped
// space described by frame.
type parcel struct {
	rect  geo.Rect
	frame *wedgeFrame
}

// subdivideRect recursively binary-splits r along its longer axis at a
// uniformly sampled cut that leaves at least minParcel on each side.
// Recursion stops once both dimensions fit maxParcel, the depth limit
// is hit, or no feasible cut remains.
func subdivideRect(r geo.Rect, rng *rand.Rand, depth int, out *[]geo.Rect) {
	w, h := r.Width(), r.Height()
	if (w <= maxParcel && h <= maxParcel) || depth > maxSplitDepth {
		*out = append(*out, r)
		return
	}
	splitX := w > h
	var minCut, maxCut float64
	if splitX {
		minCut, maxCut = r.X0+minParcel, r.X1-minParcel
	} else {
		minCut, maxCut = r.Y0+minParcel, r.Y1-minParcel
	}
	if maxCut <= minCut {
		*out = append(*out, r)
		return
	}
	cut := minCut + rng.Float64()*(maxCut-minCut)
	a, b := r, r
	if splitX {
		a.X1, b.X0 = cut, cut
	} else {
		a.Y1, b.Y0 = cut, cut
	}
	subdivideRect(a, rng, depth+1, out)
	subdivideRect(b, rng, depth+1, out)
}

// parcelizeRect reserves a central courtyard and subdivides the four
// surrounding strips. If the sampled margin cannot fit twice in both
// dimensions the whole rectangle is subdivided instead. The courtyard
// itself is intentionally left empty.
func parcelizeRect(b geo.Rect, rng *rand.Rand) []geo.Rect {
	w, h := b.Width(), b.Height()
	frac := courtyardFracLo + rng.Float64()*(courtyardFracHi-courtyardFracLo)
	margin := frac * w
	if h < w {
		margin = frac * h
	}

	var parcels []geo.Rect
	if margin*2 < w && margin*2 < h {
		inner := b.Inset(margin)
		strips := [4]geo.Rect{
			{X0: b.X0, Y0: b.Y0, X1: b.X1, Y1: inner.Y0},
			{X0: b.X0, Y0: inner.Y1, X1: b.X1, Y1: b.Y1},
			{X0: b.X0, Y0: inner.Y0, X1: inner.X0, Y1: inner.Y1},
			{X0: inner.X1, Y0: inner.Y0, X1: b.X1, Y1: inner.Y1},
		}
		for _, s := range strips {
			subdivideRect(s, rng, 0, &parcels)
		}
	} else {
		subdivideRect(b, rng, 0, &parcels)
	}
	return parcels
}

// parcelizeBlocks subdivides every block of the city into parcels.
// Rectangular blocks are split in place; wedge blocks are unwrapped
// into (arc-length, thickness) space at their mid radius, split there,
// and mapped back to quads at building placement. Parcels whose centre
// drifts outside the developed area are dropped.
func parcelizeBlocks(c *city.City, centre geo.Point2D, radius float64, rng *rand.Rand) []parcel {
	var parcels []parcel
	for _, blk := range c.Blocks {
		if blk.Wedge == nil {
			for _, r := range parcelizeRect(blk.Bounds, rng) {
				if r.Centre().Distance(centre) > radius*gridParcelKeepFactor {
					continue
				}
				parcels = append(parcels, parcel{rect: r})
			}
			continue
		}

		w := blk.Wedge
		thickness := w.OuterRadius - w.InnerRadius
		span := w.AngleTo - w.AngleFrom
		if thickness <= minWedgeThickness || span <= 1e-9 {
			continue
		}
		midR := (w.InnerRadius + w.OuterRadius) / 2
		frame := &wedgeFrame{
			centre:    centre,
			innerR:    w.InnerRadius,
			angleFrom: w.AngleFrom,
			midR:      midR,
		}
		unwrapped := geo.Rect{X0: 0, Y0: 0, X1: midR * span, Y1: thickness}
		for _, r := range parcelizeRect(unwrapped, rng) {
			quadCentre := frame.toQuad(r).Bounds().Centre()
			if quadCentre.Distance(centre) > radius*wedgeParcelKeepFactor {
				continue
			}
			parcels = append(parcels, parcel{rect: r, frame: frame})
		}
	}
	return parcels
}
