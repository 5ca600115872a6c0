package sensors

import (
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/util"
)

// FileSensor reads a raw ADC value from a file, e.g. an IIO in_voltageX_raw attribute
type FileSensor struct {
	Config configuration.FileSensorConfig `json:"configuration"`
}

func (sensor FileSensor) ReadRaw() (int, error) {
	filePath, err := util.ExpandHomePath(sensor.Config.Path)
	if err != nil {
		return 0, err
	}
	return util.ReadIntFromFile(filePath)
}
