package control

import (
	"sort"
)

// SensorBand maps raw readings in [Lower, Upper) to an angle label
type SensorBand struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
	Angle int `json:"angle"`
}

// AngleMapper classifies raw ADC readings into angle labels.
// Bands are evaluated in ascending order, the first band whose upper bound
// lies above the reading wins. Readings above every band map to the last one.
type AngleMapper struct {
	bands []SensorBand
}

func NewAngleMapper(bands []SensorBand) *AngleMapper {
	sorted := append([]SensorBand{}, bands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lower < sorted[j].Lower
	})
	return &AngleMapper{bands: sorted}
}

func (m *AngleMapper) MapToAngle(reading int) int {
	if len(m.bands) == 0 {
		return 0
	}
	for _, band := range m.bands {
		if reading < band.Upper {
			return band.Angle
		}
	}
	return m.bands[len(m.bands)-1].Angle
}

func (m *AngleMapper) Bands() []SensorBand {
	return append([]SensorBand{}, m.bands...)
}
