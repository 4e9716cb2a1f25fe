// Package export contains the thin consumers of a generated city: a
// Wavefront OBJ mesh writer and a JSON summary writer. Both read the
// city model only and never mutate it.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/geo"
)

const (
	roadThickness = 0.05
	parkThickness = 0.02
)

// objWriter accumulates prisms into an OBJ stream, keeping the running
// vertex offset that face indices are relative to.
type objWriter struct {
	w      *bufio.Writer
	offset int
}

// prism writes a box extruded from four base corners between two
// heights: 8 vertices and 12 triangular faces.
func (o *objWriter) prism(base [4]geo.Point2D, z0, z1 float64) {
	for _, p := range base {
		fmt.Fprintf(o.w, "v %g %g %g\n", p.X, p.Y, z0)
	}
	for _, p := range base {
		fmt.Fprintf(o.w, "v %g %g %g\n", p.X, p.Y, z1)
	}
	v := o.offset
	faces := [12][3]int{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 7, 6}, {4, 6, 5}, // top
		{0, 4, 5}, {0, 5, 1},
		{1, 5, 6}, {1, 6, 2},
		{2, 6, 7}, {2, 7, 3},
		{3, 7, 4}, {3, 4, 0},
	}
	for _, f := range faces {
		fmt.Fprintf(o.w, "f %d %d %d\n", v+f[0], v+f[1], v+f[2])
	}
	o.offset += 8
}

// WriteOBJ writes the city as a simple 3D model. Non-green buildings
// become boxes extruded to at least one storey, green footprints become
// flat park slabs, and every road segment becomes a thin prism sized by
// its hierarchy width. Undeveloped lots contribute no geometry.
func WriteOBJ(w io.Writer, c *city.City) error {
	o := &objWriter{w: bufio.NewWriter(w), offset: 1}

	for _, b := range c.Buildings {
		switch b.Zone {
		case city.ZoneNone:
			continue
		case city.ZoneGreen:
			o.prism(b.Footprint.Corners(), 0, parkThickness)
		default:
			h := float64(b.Height)
			if h < 1 {
				h = 1
			}
			o.prism(b.Footprint.Corners(), 0, h)
		}
	}

	for _, r := range c.Roads {
		dir := r.B.Sub(r.A)
		if dir.Length() < 1e-6 {
			continue
		}
		n := dir.Normalize().Perp().Scale(r.Class.HalfWidth())
		base := [4]geo.Point2D{
			r.A.Add(n),
			r.A.Sub(n),
			r.B.Sub(n),
			r.B.Add(n),
		}
		o.prism(base, 0, roadThickness)
	}

	return o.w.Flush()
}
