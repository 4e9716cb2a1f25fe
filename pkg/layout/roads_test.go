package layout

import (
	"math"
	"testing"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/geo"
)

func TestClassifyOffsetThresholds(t *testing.T) {
	cases := []struct {
		frac float64
		want city.RoadClass
	}{
		{0, city.RoadArterial},
		{0.14, city.RoadArterial},
		{0.15, city.RoadSecondary},
		{0.5, city.RoadSecondary},
		{0.6, city.RoadLocal},
		{1.0, city.RoadLocal},
	}
	for _, tc := range cases {
		if got := classifyOffset(tc.frac); got != tc.want {
			t.Errorf("classifyOffset(%f): expected %q, got %q", tc.frac, tc.want, got)
		}
	}
}

func TestGridNetworkClassification(t *testing.T) {
	c := city.New(50)
	centre := geo.Pt(25, 25)
	radius := 15.0
	buildGridNetwork(c, centre, radius)

	if len(c.Roads) != 14 {
		t.Fatalf("expected 14 lattice segments, got %d", len(c.Roads))
	}
	for _, r := range c.Roads {
		// Every lattice segment is axis-aligned; its centre offset is
		// measured on the perpendicular axis.
		var frac float64
		if r.A.X == r.B.X {
			frac = math.Abs(r.A.X-centre.X) / radius
		} else {
			frac = math.Abs(r.A.Y-centre.Y) / radius
		}
		if r.Class != classifyOffset(frac) {
			t.Errorf("segment at offset %f misclassified as %q", frac, r.Class)
		}
	}
}

func TestGridNetworkHasArterial(t *testing.T) {
	c := city.New(50)
	buildGridNetwork(c, geo.Pt(25, 25), 15)
	for _, r := range c.Roads {
		if r.Class == city.RoadArterial {
			return
		}
	}
	t.Error("grid network contains no arterial segment")
}

func TestGridBlocksWithinDevelopedArea(t *testing.T) {
	c := city.New(50)
	centre := geo.Pt(25, 25)
	radius := 15.0
	buildGridNetwork(c, centre, radius)

	if len(c.Blocks) == 0 {
		t.Fatal("no blocks derived")
	}
	for i, b := range c.Blocks {
		if b.Bounds.Centre().Distance(centre) > radius*1.05 {
			t.Errorf("block %d centre outside 1.05x radius", i)
		}
		if b.Bounds.Width() < 1 || b.Bounds.Height() < 1 {
			t.Errorf("block %d kept with collapsed bounds %+v", i, b.Bounds)
		}
		if b.Wedge != nil || b.Quad != nil {
			t.Errorf("grid block %d carries wedge data", i)
		}
	}
}

func TestRingAndSpokeCountsClamped(t *testing.T) {
	if got := ringCount(0); got != 3 {
		t.Errorf("expected 3 rings for empty city, got %d", got)
	}
	if got := ringCount(400000); got != 5 {
		t.Errorf("expected 5 rings at 400k population, got %d", got)
	}
	if got := ringCount(10000000); got != 8 {
		t.Errorf("expected ring clamp at 8, got %d", got)
	}
	if got := spokeCount(0.1); got != 11 {
		t.Errorf("expected 11 spokes at radius 0.1, got %d", got)
	}
	if got := spokeCount(1.0); got != 18 {
		t.Errorf("expected 18 spokes at radius 1.0, got %d", got)
	}
}

func TestRadialNetworkClassification(t *testing.T) {
	cfg := testConfig()
	cfg.Layout = "radial"
	c := city.New(cfg.GridSize)
	centre := geo.Pt(25, 25)
	radius := 15.0
	buildRadialNetwork(c, cfg, centre, radius)

	for _, r := range c.Roads {
		if r.A == centre {
			// Spokes run through the centre and are always arterial.
			if r.Class != city.RoadArterial {
				t.Errorf("spoke classified as %q", r.Class)
			}
			continue
		}
		// Ring chords: both endpoints sit at the ring radius.
		frac := r.A.Distance(centre) / radius
		if got := classifyOffset(frac); r.Class != got {
			t.Errorf("ring chord at %f misclassified: %q vs %q", frac, r.Class, got)
		}
	}
}

func TestRadialBlocksAreWedges(t *testing.T) {
	cfg := testConfig()
	cfg.Layout = "radial"
	c := city.New(cfg.GridSize)
	centre := geo.Pt(25, 25)
	radius := 15.0
	buildRadialNetwork(c, cfg, centre, radius)

	if len(c.Blocks) == 0 {
		t.Fatal("no wedge blocks derived")
	}
	for i, b := range c.Blocks {
		if b.Wedge == nil || b.Quad == nil {
			t.Fatalf("radial block %d missing wedge data", i)
		}
		if b.Quad.Centroid().Distance(centre) > radius*1.1+1e-9 {
			t.Errorf("wedge %d centroid outside 1.1x radius", i)
		}
		w := b.Wedge
		if w.OuterRadius <= w.InnerRadius || w.AngleTo <= w.AngleFrom {
			t.Errorf("wedge %d has degenerate extents %+v", i, w)
		}
		if b.Bounds != b.Quad.Bounds() {
			t.Errorf("wedge %d bounds not the quad bounding box", i)
		}
	}
}
