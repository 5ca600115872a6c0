package sensors

import (
	"fmt"

	"github.com/markusressel/fanplate/internal/configuration"
)

// Sensor is an analog input whose raw readings lie in
// [configuration.AdcMinValue, configuration.AdcMaxValue].
// Readings are neither averaged nor debounced.
type Sensor interface {
	ReadRaw() (int, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.File != nil {
		return &FileSensor{
			Config: *config.File,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: *config.Cmd,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type in configuration")
}
