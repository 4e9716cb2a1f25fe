package geo

// Rect is an axis-aligned rectangle with X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// NewRect creates a rectangle from two opposite corners, normalizing
// the coordinate order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{x0, y0, x1, y1}
}

// Width returns the extent along X.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the extent along Y.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns width * height.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Centre returns the midpoint of the rectangle.
func (r Rect) Centre() Point2D {
	return Point2D{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2}
}

// Inset returns the rectangle shrunk by d on every side. The result may
// be degenerate; callers should check Width/Height.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.X0 + d, r.Y0 + d, r.X1 - d, r.Y1 - d}
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// ContainsRect reports whether the whole of s lies within r, allowing a
// small tolerance for floating point drift.
func (r Rect) ContainsRect(s Rect) bool {
	const eps = 1e-9
	return s.X0 >= r.X0-eps && s.Y0 >= r.Y0-eps && s.X1 <= r.X1+eps && s.Y1 <= r.Y1+eps
}

// Corners returns the four corners in counterclockwise order starting
// from (X0, Y0).
func (r Rect) Corners() [4]Point2D {
	return [4]Point2D{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}
