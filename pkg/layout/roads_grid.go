package layout

import (
	"sort"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/geo"
)

// Road hierarchy thresholds on the normalized distance from the centre
// reference (centre line for the grid layout, centre point for rings).
const (
	arterialBand  = 0.15
	secondaryBand = 0.6
)

// gridLineOffsets are the fixed thoroughfare positions of the grid
// layout, as signed fractions of the urbanization radius from the
// centre line of each axis.
var gridLineOffsets = []float64{-1.0, -0.9, -0.5, 0, 0.5, 0.9, 1.0}

// classifyOffset maps a normalized centre distance in [0,1] to a road
// class.
func classifyOffset(frac float64) city.RoadClass {
	switch {
	case frac < arterialBand:
		return city.RoadArterial
	case frac < secondaryBand:
		return city.RoadSecondary
	default:
		return city.RoadLocal
	}
}

// gridLine is one thoroughfare of the lattice: its coordinate on the
// perpendicular axis and its hierarchy class.
type gridLine struct {
	pos   float64
	class city.RoadClass
}

// gridLines expands the fixed offsets around a centre coordinate into
// deduplicated, sorted lattice lines.
func gridLines(centre, radius float64) []gridLine {
	lines := make([]gridLine, 0, len(gridLineOffsets))
	for _, off := range gridLineOffsets {
		pos := centre + off*radius
		dup := false
		for _, l := range lines {
			if l.pos == pos {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		frac := off
		if frac < 0 {
			frac = -frac
		}
		lines = append(lines, gridLine{pos: pos, class: classifyOffset(frac)})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].pos < lines[j].pos })
	return lines
}

// buildGridNetwork emits the orthogonal thoroughfare lattice and
// derives the axis-aligned blocks between adjacent lines. Each block is
// inset from its four bounding roads by their clearance half-widths;
// blocks whose centre falls outside 1.05x the radius or whose inset
// bounds collapse below one unit are discarded.
func buildGridNetwork(c *city.City, centre geo.Point2D, radius float64) {
	xLines := gridLines(centre.X, radius)
	yLines := gridLines(centre.Y, radius)

	for _, l := range xLines {
		c.Roads = append(c.Roads, city.RoadSegment{
			A:     geo.Pt(l.pos, centre.Y-radius),
			B:     geo.Pt(l.pos, centre.Y+radius),
			Class: l.class,
		})
	}
	for _, l := range yLines {
		c.Roads = append(c.Roads, city.RoadSegment{
			A:     geo.Pt(centre.X-radius, l.pos),
			B:     geo.Pt(centre.X+radius, l.pos),
			Class: l.class,
		})
	}

	for xi := 0; xi+1 < len(xLines); xi++ {
		for yi := 0; yi+1 < len(yLines); yi++ {
			left, right := xLines[xi], xLines[xi+1]
			bottom, top := yLines[yi], yLines[yi+1]
			bounds := geo.Rect{
				X0: left.pos + left.class.HalfWidth(),
				Y0: bottom.pos + bottom.class.HalfWidth(),
				X1: right.pos - right.class.HalfWidth(),
				Y1: top.pos - top.class.HalfWidth(),
			}
			if bounds.Centre().Distance(centre) > radius*1.05 {
				continue
			}
			if bounds.Width() < 1 || bounds.Height() < 1 {
				continue
			}
			c.Blocks = append(c.Blocks, city.Block{Bounds: bounds})
		}
	}
}
