package configuration

const (
	AdcMinValue = 0
	AdcMaxValue = 4095
)

type SensorConfig struct {
	File *FileSensorConfig `json:"file,omitempty" yaml:"file,omitempty"`
	Cmd  *CmdSensorConfig  `json:"cmd,omitempty" yaml:"cmd,omitempty"`

	Bands []SensorBandConfig `json:"bands" yaml:"bands"`
}

type FileSensorConfig struct {
	Path string `json:"path" yaml:"path"`
}

type CmdSensorConfig struct {
	Exec string   `json:"exec" yaml:"exec"`
	Args []string `json:"args" yaml:"args"`
}

// SensorBandConfig maps the half-open ADC range [Lower, Upper) to an angle label
type SensorBandConfig struct {
	Lower int `json:"lower" yaml:"lower"`
	Upper int `json:"upper" yaml:"upper"`
	Angle int `json:"angle" yaml:"angle"`
}

func DefaultSensorBands() []SensorBandConfig {
	return []SensorBandConfig{
		{Lower: AdcMinValue, Upper: 2700, Angle: 80},
		{Lower: 2700, Upper: 3000, Angle: 75},
		{Lower: 3000, Upper: 4010, Angle: 65},
		{Lower: 4010, Upper: AdcMaxValue + 1, Angle: 30},
	}
}
