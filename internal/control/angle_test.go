package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToAngle_DefaultBands(t *testing.T) {
	// GIVEN
	mapper := createDefaultMapper()

	tests := []struct {
		reading  int
		expected int
	}{
		{reading: 0, expected: 80},
		{reading: 1500, expected: 80},
		{reading: 2699, expected: 80},
		{reading: 2700, expected: 75},
		{reading: 2800, expected: 75},
		{reading: 2999, expected: 75},
		{reading: 3000, expected: 65},
		{reading: 4009, expected: 65},
		{reading: 4010, expected: 30},
		{reading: 4095, expected: 30},
	}

	for _, tt := range tests {
		// WHEN
		result := mapper.MapToAngle(tt.reading)

		// THEN
		assert.Equal(t, tt.expected, result, "reading %d", tt.reading)
	}
}

func TestMapToAngle_AboveAllBandsUsesLast(t *testing.T) {
	// GIVEN
	mapper := NewAngleMapper([]SensorBand{
		{Lower: 0, Upper: 100, Angle: 1},
		{Lower: 100, Upper: 200, Angle: 2},
	})

	// WHEN
	result := mapper.MapToAngle(5000)

	// THEN
	assert.Equal(t, 2, result)
}

func TestNewAngleMapper_SortsBands(t *testing.T) {
	// GIVEN
	mapper := NewAngleMapper([]SensorBand{
		{Lower: 100, Upper: 200, Angle: 2},
		{Lower: 0, Upper: 100, Angle: 1},
	})

	// WHEN
	result := mapper.MapToAngle(50)

	// THEN
	assert.Equal(t, 1, result)
	assert.Equal(t, 0, mapper.Bands()[0].Lower)
}

func TestMapToAngle_NoBands(t *testing.T) {
	assert.Equal(t, 0, NewAngleMapper(nil).MapToAngle(1234))
}
