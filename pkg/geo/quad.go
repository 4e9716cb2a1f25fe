package geo

import "math"

// Quad is a convex quadrilateral given by its four corners in winding
// order. It is used for footprints that are not axis-aligned, such as
// parcels cut out of a radial wedge.
type Quad struct {
	Corners [4]Point2D `json:"corners"`
}

// NewQuad creates a quad from four corners in winding order.
func NewQuad(a, b, c, d Point2D) Quad {
	return Quad{Corners: [4]Point2D{a, b, c, d}}
}

// Bounds returns the axis-aligned bounding box of the quad.
func (q Quad) Bounds() Rect {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, c := range q.Corners {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return Rect{minX, minY, maxX, maxY}
}

// Centroid returns the mean of the four corners.
func (q Quad) Centroid() Point2D {
	var sum Point2D
	for _, c := range q.Corners {
		sum = sum.Add(c)
	}
	return sum.Scale(0.25)
}
