package configuration

import (
	"reflect"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
)

func decodeWithHooks(t *testing.T, input map[string]interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decodeHook(),
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}
	return decoder.Decode(input)
}

func TestOptionalBoolHookFunc(t *testing.T) {
	type TestConfig struct {
		Enabled Optional[bool] `mapstructure:"enabled"`
	}

	tests := []struct {
		name          string
		inputMap      map[string]interface{}
		expectedValue bool
		expectedPres  bool
	}{
		{
			name:          "Explicit false in config",
			inputMap:      map[string]interface{}{"enabled": false},
			expectedValue: false,
			expectedPres:  true,
		},
		{
			name:          "Explicit true in config",
			inputMap:      map[string]interface{}{"enabled": true},
			expectedValue: true,
			expectedPres:  true,
		},
		{
			name:          "String 'true' in config",
			inputMap:      map[string]interface{}{"enabled": "true"},
			expectedValue: true,
			expectedPres:  true,
		},
		{
			name:          "Missing from config",
			inputMap:      map[string]interface{}{},
			expectedValue: false,
			expectedPres:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg TestConfig

			err := decodeWithHooks(t, tt.inputMap, &cfg)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPres, cfg.Enabled.Present)
			assert.Equal(t, tt.expectedValue, cfg.Enabled.Get())
		})
	}
}

func TestOptional_SetOverride(t *testing.T) {
	// GIVEN
	o := Optional[bool]{}

	// WHEN
	o.SetOverride(true)

	// THEN
	assert.True(t, o.Get())
	assert.True(t, o.RuntimeOverride)
	assert.False(t, o.Present)
}

func TestMappingsDecode_FullAndShorthand(t *testing.T) {
	// GIVEN
	type TestConfig struct {
		Mappings MappingsConfig `mapstructure:"mappings"`
	}
	input := map[string]interface{}{
		"mappings": map[string]interface{}{
			"45": map[string]interface{}{
				"duty": 140,
				"hold": "5s",
			},
			"80": 255,
		},
	}
	var cfg TestConfig

	// WHEN
	err := decodeWithHooks(t, input, &cfg)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, MappingsConfig{
		45: {Duty: 140, Hold: 5 * time.Second},
		80: {Duty: 255, Hold: 0},
	}, cfg.Mappings)
}

func TestMappingShorthandHook_InvalidValue(t *testing.T) {
	// GIVEN
	hook := MappingShorthandHookFunc()

	// WHEN
	_, err := hook(reflect.TypeOf(""), reflect.TypeOf(MappingConfig{}), "fast")

	// THEN
	assert.Error(t, err)
}

func TestHookSkipsUnrelatedTypes(t *testing.T) {
	hook := OptionalBoolHookFunc()

	f := reflect.TypeOf("string")
	tTarget := reflect.TypeOf(123)
	data := "some string"

	res, err := hook(f, tTarget, data)

	assert.NoError(t, err)
	assert.Equal(t, data, res)
}
