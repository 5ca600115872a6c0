package configuration

import "time"

const (
	DefaultDegradeCommand = 10
	DirectivePrint        = "print"
	DirectiveStatus       = "status"
)

type RampConfig struct {
	// StepDelay is the pacing delay between two sweep steps
	StepDelay time.Duration `json:"stepDelay" yaml:"stepDelay"`
}

type DegradeConfig struct {
	Enabled Optional[bool] `json:"enabled" yaml:"enabled"`
	// Command is the sentinel command value that triggers the sequence
	Command int                  `json:"command" yaml:"command"`
	Stages  []DegradeStageConfig `json:"stages" yaml:"stages"`
}

type DegradeStageConfig struct {
	Duty int `json:"duty" yaml:"duty"`
	// Hold is ignored for the last stage
	Hold time.Duration `json:"hold" yaml:"hold"`
}

// MappingsConfig maps a command value to the duty it ramps to
type MappingsConfig map[int]MappingConfig

type MappingConfig struct {
	Duty int           `json:"duty" yaml:"duty"`
	Hold time.Duration `json:"hold" yaml:"hold"`
}

type TelemetryConfig struct {
	// ReportOnHold emits the duty confirmation line on iterations without a new command
	ReportOnHold bool `json:"reportOnHold" yaml:"reportOnHold"`
	// RollingWindowSize is the number of iterations the average applied duty is computed over
	RollingWindowSize int `json:"rollingWindowSize" yaml:"rollingWindowSize"`
}

func DefaultDegradeStages() []DegradeStageConfig {
	return []DegradeStageConfig{
		{Duty: 255, Hold: 5 * time.Second},
		{Duty: 155, Hold: 5 * time.Second},
		{Duty: 130, Hold: 5 * time.Second},
		{Duty: 110},
	}
}

func DefaultSerialMappings() MappingsConfig {
	return MappingsConfig{
		0:  {Duty: 0, Hold: 5 * time.Second},
		45: {Duty: 140, Hold: 5 * time.Second},
		60: {Duty: 160, Hold: 5 * time.Second},
		80: {Duty: 255, Hold: 0},
	}
}

// DefaultSensorMappings maps the angle labels of the default sensor bands
func DefaultSensorMappings() MappingsConfig {
	return MappingsConfig{
		30: {Duty: 110, Hold: 5 * time.Second},
		65: {Duty: 140, Hold: 5 * time.Second},
		75: {Duty: 160, Hold: 5 * time.Second},
		80: {Duty: 255, Hold: 0},
	}
}
