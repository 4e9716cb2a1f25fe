package export

import (
	"encoding/json"
	"io"

	"github.com/citykit/citygen/pkg/city"
)

// Summary is a flat statistical report over a generated city, counting
// grid cells by zone and facilities by type.
type Summary struct {
	GridSize         int `json:"gridSize"`
	TotalBuildings   int `json:"totalBuildings"`
	ResidentialCells int `json:"residentialCells"`
	CommercialCells  int `json:"commercialCells"`
	IndustrialCells  int `json:"industrialCells"`
	GreenCells       int `json:"greenCells"`
	UndevelopedCells int `json:"undevelopedCells"`
	NumHospitals     int `json:"numHospitals"`
	NumSchools       int `json:"numSchools"`
	NumRoadSegments  int `json:"numRoadSegments"`
}

// Summarize counts the city's contents. Buildings are counted only
// when they carry actual structures (developed, non-park zones).
func Summarize(c *city.City) Summary {
	s := Summary{GridSize: c.Size, NumRoadSegments: len(c.Roads)}
	for _, z := range c.Zones {
		switch z {
		case city.ZoneResidential:
			s.ResidentialCells++
		case city.ZoneCommercial:
			s.CommercialCells++
		case city.ZoneIndustrial:
			s.IndustrialCells++
		case city.ZoneGreen:
			s.GreenCells++
		default:
			s.UndevelopedCells++
		}
	}
	for _, b := range c.Buildings {
		if b.Zone != city.ZoneNone && b.Zone != city.ZoneGreen {
			s.TotalBuildings++
		}
	}
	for _, f := range c.Facilities {
		switch f.Type {
		case city.FacilityHospital:
			s.NumHospitals++
		case city.FacilitySchool:
			s.NumSchools++
		}
	}
	return s
}

// WriteSummary writes the summary as indented JSON.
func WriteSummary(w io.Writer, c *city.City) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Summarize(c))
}
