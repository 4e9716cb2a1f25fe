package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/geo"
)

func TestRoadDistanceUsesHalfWidth(t *testing.T) {
	roads := []city.RoadSegment{
		{A: geo.Pt(0, 0), B: geo.Pt(10, 0), Class: city.RoadArterial},
	}
	d := roadDistance(geo.Pt(5, 2), roads)
	want := 2 - city.RoadArterial.HalfWidth()
	if math.Abs(d-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, d)
	}
	// Inside the thickened road the distance clamps to zero.
	if d := roadDistance(geo.Pt(5, 0.3), roads); d != 0 {
		t.Errorf("expected 0 inside the road, got %f", d)
	}
}

func TestOrderCandidatesNearRoadFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	candidates := []facilityCandidate{
		{index: 0, roadDist: 5.0},
		{index: 1, roadDist: 0.2},
		{index: 2, roadDist: 2.4},
		{index: 3, roadDist: 1.6},
		{index: 4, roadDist: 0.9},
	}
	ordered := orderCandidates(candidates, rng)
	if len(ordered) != len(candidates) {
		t.Fatalf("candidate count changed: %d", len(ordered))
	}
	// The three near-road candidates precede the two interior ones,
	// each group sorted by ascending distance.
	wantDist := []float64{0.2, 0.9, 1.6, 2.4, 5.0}
	for i, cand := range ordered {
		if cand.roadDist != wantDist[i] {
			t.Fatalf("position %d: expected distance %f, got %f", i, wantDist[i], cand.roadDist)
		}
	}
}

func TestFacilityHeights(t *testing.T) {
	if h := facilityHeight(city.FacilityHospital, 0); h != 5 {
		t.Errorf("tiny hospital should clamp to 5, got %d", h)
	}
	if h := facilityHeight(city.FacilityHospital, 10000); h != 12 {
		t.Errorf("huge hospital should clamp to 12, got %d", h)
	}
	if h := facilityHeight(city.FacilitySchool, 0); h != 2 {
		t.Errorf("tiny school should clamp to 2, got %d", h)
	}
	if h := facilityHeight(city.FacilitySchool, 10000); h != 5 {
		t.Errorf("huge school should clamp to 5, got %d", h)
	}
	// Mid-size values follow the base formulas.
	if h := facilityHeight(city.FacilityHospital, 100); h != 7 {
		t.Errorf("expected round(4+0.25*10)=7, got %d", h)
	}
	if h := facilityHeight(city.FacilitySchool, 100); h != 3 {
		t.Errorf("expected round(2+0.1*10)=3, got %d", h)
	}
}

func TestFacilityExclusivity(t *testing.T) {
	cfg := testConfig()
	cfg.Hospitals = 50
	cfg.Schools = 50
	c := Generate(cfg)

	hosts := 0
	for _, b := range c.Buildings {
		if b.HostsFacility() {
			hosts++
		}
	}
	if hosts != len(c.Facilities) {
		t.Errorf("flagged buildings (%d) and facility records (%d) disagree", hosts, len(c.Facilities))
	}
	if len(c.Facilities) > cfg.Hospitals+cfg.Schools {
		t.Errorf("placed more facilities than requested: %d", len(c.Facilities))
	}
	if len(c.Facilities) > len(c.Buildings) {
		t.Error("more facilities than buildings")
	}
}

func TestFacilityShortfallIsSilent(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 10
	cfg.CityRadius = 0.3 // tiny developed area, few or no parcels
	cfg.Hospitals = 100
	cfg.Schools = 100
	c := Generate(cfg)
	if len(c.Facilities) > len(c.Buildings) {
		t.Errorf("facility count %d exceeds building count %d", len(c.Facilities), len(c.Buildings))
	}
}
