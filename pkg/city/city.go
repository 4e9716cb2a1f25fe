// Package city defines the data model produced by the generation
// pipeline: a zoning grid plus collections of buildings, facilities,
// road segments and blocks. The model is data-only; exporters consume
// it read-only.
package city

import "github.com/citykit/citygen/pkg/geo"

// ZoneType identifies the land use of a grid cell or building.
type ZoneType string

const (
	ZoneNone        ZoneType = "none"
	ZoneResidential ZoneType = "residential"
	ZoneCommercial  ZoneType = "commercial"
	ZoneIndustrial  ZoneType = "industrial"
	ZoneGreen       ZoneType = "green"
)

// RoadClass is the hierarchy level of a road segment. Each class
// carries a fixed rendering width; half of it is the clearance used to
// inset blocks from bounding roads.
type RoadClass string

const (
	RoadArterial  RoadClass = "arterial"
	RoadSecondary RoadClass = "secondary"
	RoadLocal     RoadClass = "local"
)

// Width returns the full rendered width of the road class.
func (c RoadClass) Width() float64 {
	switch c {
	case RoadArterial:
		return 1.2
	case RoadSecondary:
		return 0.8
	default:
		return 0.5
	}
}

// HalfWidth returns the clearance on each side of the centreline.
func (c RoadClass) HalfWidth() float64 {
	return c.Width() / 2
}

// RoadSegment is a straight piece of the road network. Segments are
// immutable once appended.
type RoadSegment struct {
	A     geo.Point2D `json:"a"`
	B     geo.Point2D `json:"b"`
	Class RoadClass   `json:"class"`
}

// Wedge describes the polar extent of a radial-layout block: the ring
// band and angular sector it was cut from.
type Wedge struct {
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	AngleFrom   float64 `json:"angle_from"`
	AngleTo     float64 `json:"angle_to"`
}

// Block is a road-bounded cell of the city, prior to parcel
// subdivision. Wedge is set only for radial-layout blocks; Quad then
// holds the wedge's corner points and Bounds their bounding box.
type Block struct {
	Bounds geo.Rect  `json:"bounds"`
	Quad   *geo.Quad `json:"quad,omitempty"`
	Wedge  *Wedge    `json:"wedge,omitempty"`
}

// FacilityType is the kind of public facility a building hosts.
type FacilityType string

const (
	FacilityHospital FacilityType = "hospital"
	FacilitySchool   FacilityType = "school"
)

// Facility is a placed public facility at the centre of its owning
// building's footprint. Exactly one Facility exists per flagged
// building.
type Facility struct {
	Type     FacilityType `json:"type"`
	Position geo.Point2D  `json:"position"`
}

// Building is a placed building on a parcel. Height is in storeys;
// parks and undeveloped lots have height 0. A non-empty Facility field
// marks the building as hosting that facility.
type Building struct {
	Footprint Footprint    `json:"footprint"`
	Zone      ZoneType     `json:"zone"`
	Height    int          `json:"height"`
	Facility  FacilityType `json:"facility,omitempty"`
}

// HostsFacility reports whether the building has been assigned a
// public facility.
func (b Building) HostsFacility() bool {
	return b.Facility != ""
}

// City aggregates everything the pipeline generates. The zoning grid
// is the ground truth for land use; buildings are a derived, sparser
// set of footprints that need not align with grid cells.
type City struct {
	Size       int           `json:"size"`
	Zones      []ZoneType    `json:"zones"`
	Buildings  []Building    `json:"buildings"`
	Facilities []Facility    `json:"facilities"`
	Roads      []RoadSegment `json:"roads"`
	Blocks     []Block       `json:"blocks"`
}

// New creates an empty city with a size x size zoning grid, all cells
// undeveloped.
func New(size int) *City {
	zones := make([]ZoneType, size*size)
	for i := range zones {
		zones[i] = ZoneNone
	}
	return &City{Size: size, Zones: zones}
}

// ZoneAt returns the zone of cell (x, y). Indices must satisfy
// 0 <= x,y < Size; no bounds check is performed.
func (c *City) ZoneAt(x, y int) ZoneType {
	return c.Zones[y*c.Size+x]
}

// SetZone assigns the zone of cell (x, y). Indices must satisfy
// 0 <= x,y < Size; no bounds check is performed.
func (c *City) SetZone(x, y int, z ZoneType) {
	c.Zones[y*c.Size+x] = z
}
