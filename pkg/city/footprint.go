package city

import "github.com/citykit/citygen/pkg/geo"

// Footprint is the ground shape of a building: either an axis-aligned
// rectangle or an explicit quad for non-axis-aligned (radial) parcels.
// Rect always holds the bounding box, so consumers that only need an
// extent never have to branch; Quad, when present, is the authoritative
// shape and Rect is derived from it.
type Footprint struct {
	Rect geo.Rect  `json:"rect"`
	Quad *geo.Quad `json:"quad,omitempty"`
}

// RectFootprint creates an axis-aligned footprint.
func RectFootprint(r geo.Rect) Footprint {
	return Footprint{Rect: r}
}

// QuadFootprint creates a quad footprint; the bounding rect is derived
// from the corners.
func QuadFootprint(q geo.Quad) Footprint {
	return Footprint{Rect: q.Bounds(), Quad: &q}
}

// Bounds returns the axis-aligned bounding box of the footprint.
func (f Footprint) Bounds() geo.Rect {
	return f.Rect
}

// Centroid returns the centre of the footprint: the quad centroid when
// a quad is present, the rect centre otherwise.
func (f Footprint) Centroid() geo.Point2D {
	if f.Quad != nil {
		return f.Quad.Centroid()
	}
	return f.Rect.Centre()
}

// Corners returns the footprint's four ground corners in winding order.
func (f Footprint) Corners() [4]geo.Point2D {
	if f.Quad != nil {
		return f.Quad.Corners
	}
	return f.Rect.Corners()
}

// Area returns the footprint's bounding-box area.
func (f Footprint) Area() float64 {
	return f.Rect.Area()
}
