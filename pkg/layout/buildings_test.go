package layout

import (
	"math/rand"
	"testing"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/geo"
)

func TestJitterRectStaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	parent := geo.NewRect(3, 5, 12, 11)
	for i := 0; i < 200; i++ {
		j := jitterRect(parent, rng)
		if !parent.ContainsRect(j) {
			t.Fatalf("iteration %d: jittered rect escapes parent: %+v", i, j)
		}
	}
}

func TestJitterRectAreaScale(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	parent := geo.NewRect(0, 0, 10, 10)
	for i := 0; i < 200; i++ {
		j := jitterRect(parent, rng)
		ratio := j.Area() / parent.Area()
		if ratio < areaScaleLo-1e-9 || ratio > areaScaleHi+1e-9 {
			t.Fatalf("iteration %d: area ratio %f outside [%f,%f]", i, ratio, areaScaleLo, areaScaleHi)
		}
	}
}

func TestSampleZoneClampsToGrid(t *testing.T) {
	c := city.New(4)
	c.SetZone(3, 3, city.ZoneCommercial)
	c.SetZone(0, 0, city.ZoneGreen)
	if z := sampleZone(c, geo.Pt(99, 99)); z != city.ZoneCommercial {
		t.Errorf("out-of-range lookup should clamp to the last cell, got %q", z)
	}
	if z := sampleZone(c, geo.Pt(-5, -5)); z != city.ZoneGreen {
		t.Errorf("negative lookup should clamp to the first cell, got %q", z)
	}
}

func TestSampleHeightRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cases := []struct {
		zone   city.ZoneType
		lo, hi int
	}{
		{city.ZoneResidential, residentialMinH, residentialMaxH},
		{city.ZoneCommercial, commercialMinH, commercialMaxH},
		{city.ZoneIndustrial, industrialMinH, industrialMaxH},
	}
	for _, tc := range cases {
		for i := 0; i < 500; i++ {
			h := sampleHeight(tc.zone, 25, 5, 15, rng)
			if h < tc.lo || h > tc.hi {
				t.Fatalf("%s height %d outside [%d,%d]", tc.zone, h, tc.lo, tc.hi)
			}
		}
	}
}

func TestSampleHeightUndevelopedZones(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	if h := sampleHeight(city.ZoneGreen, 25, 5, 15, rng); h != 0 {
		t.Errorf("green height should be 0, got %d", h)
	}
	if h := sampleHeight(city.ZoneNone, 25, 5, 15, rng); h != 0 {
		t.Errorf("undeveloped height should be 0, got %d", h)
	}
}

func TestPlaceBuildingsSkipsUndeveloped(t *testing.T) {
	cfg := testConfig()
	c, centre, radius := zonedCity(cfg)
	buildGridNetwork(c, centre, radius)

	rng := rand.New(rand.NewSource(int64(cfg.Seed)))
	parcels := parcelizeBlocks(c, centre, radius, rng)
	placeBuildings(c, parcels, centre, radius, rng)

	if len(c.Buildings) == 0 {
		t.Fatal("no buildings placed")
	}
	for i, b := range c.Buildings {
		if b.Zone == city.ZoneNone {
			t.Errorf("building %d placed on undeveloped ground", i)
		}
		if b.Zone == city.ZoneGreen && b.Height != 0 {
			t.Errorf("park building %d has height %d", i, b.Height)
		}
		if b.Zone != city.ZoneGreen && b.Height < 2 {
			t.Errorf("building %d implausibly low: %d storeys", i, b.Height)
		}
	}
}

func TestPlaceBuildingsFootprintsInsideParcels(t *testing.T) {
	cfg := testConfig()
	c, centre, radius := zonedCity(cfg)
	buildGridNetwork(c, centre, radius)

	rng := rand.New(rand.NewSource(int64(cfg.Seed)))
	parcels := parcelizeBlocks(c, centre, radius, rng)
	placeBuildings(c, parcels, centre, radius, rng)

	for bi, b := range c.Buildings {
		contained := false
		for _, p := range parcels {
			if p.rect.ContainsRect(b.Footprint.Rect) {
				contained = true
				break
			}
		}
		if !contained {
			t.Errorf("building %d footprint %+v lies in no parcel", bi, b.Footprint.Rect)
		}
	}
}
