package configuration

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Optional is a generic container for optional configuration values.
type Optional[T any] struct {
	// Value holds the actual as unmarshalled.
	Value T
	// Present indicates if the value was present in the configuration.
	Present bool
	// RuntimeOverride indicates if the value was overridden at runtime.
	RuntimeOverride bool
}

func (o *Optional[T]) Get() T {
	return o.Value
}

// SetOverride sets the value and marks it as overridden at runtime.
func (o *Optional[T]) SetOverride(value T) {
	o.RuntimeOverride = true
	o.Value = value
}

// OptionalBoolHookFunc returns a mapstructure decode hook function for Optional[bool],
// marking the value as present whenever the key exists in the configuration.
func OptionalBoolHookFunc() mapstructure.DecodeHookFuncType {
	optionalBoolType := reflect.TypeOf(Optional[bool]{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {

		if t != optionalBoolType {
			return data, nil
		}

		var val bool
		switch v := data.(type) {
		case bool:
			val = v
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("invalid boolean %q: %w", v, err)
			}
			val = parsed
		default:
			return data, nil
		}

		return Optional[bool]{
			Value:   val,
			Present: true,
		}, nil
	}
}

// MappingShorthandHookFunc returns a mapstructure decode hook that allows a
// mapping entry to be given as a bare duty value (e.g. "80: 255"), which is
// expanded to a MappingConfig without hold delay.
func MappingShorthandHookFunc() mapstructure.DecodeHookFuncType {
	mappingType := reflect.TypeOf(MappingConfig{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != mappingType {
			return data, nil
		}

		switch data.(type) {
		case int, int64, float64, string:
			duty, err := anyToInt(data)
			if err != nil {
				return nil, fmt.Errorf("mapping (shorthand format): %w", err)
			}
			return map[string]interface{}{"duty": duty}, nil
		}
		return data, nil
	}
}

// anyToInt converts numeric and string values to int.
func anyToInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as int: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

// MarshalYAML renders only the contained value
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	return o.Value, nil
}
