package control

import (
	"time"

	"github.com/markusressel/fanplate/internal/configuration"
)

type Options struct {
	ID      string
	Channel int

	// LoopDelay is the pause at the end of every iteration of Run
	LoopDelay time.Duration
	// StepDelay is the pacing delay between two ramp steps
	StepDelay time.Duration

	Mappings       map[int]RampPolicy
	DegradeCommand *int
	DegradeStages  []DegradeStage

	// ReportOnHold emits the duty line on iterations without a new command
	ReportOnHold bool
	// JournalSize caps the number of received bytes kept for the print directive
	JournalSize int
	// RollingWindowSize is the number of iterations the average applied duty is computed over
	RollingWindowSize int
}

func OptionsFromConfig(config configuration.Configuration) Options {
	mappings := make(map[int]RampPolicy, len(config.Mappings))
	for command, mapping := range config.Mappings {
		mappings[command] = RampPolicy{
			TargetDuty: mapping.Duty,
			HoldDelay:  mapping.Hold,
		}
	}

	var degradeCommand *int
	if config.Degrade.Enabled.Get() {
		command := config.Degrade.Command
		degradeCommand = &command
	}

	return Options{
		ID:                config.ID,
		Channel:           config.Pwm.Channel,
		LoopDelay:         config.LoopDelay,
		StepDelay:         config.Ramp.StepDelay,
		Mappings:          mappings,
		DegradeCommand:    degradeCommand,
		DegradeStages:     DegradeStagesFromConfig(config.Degrade.Stages),
		ReportOnHold:      config.Telemetry.ReportOnHold,
		JournalSize:       config.Serial.BufferSize,
		RollingWindowSize: config.Telemetry.RollingWindowSize,
	}
}

func DegradeStagesFromConfig(stages []configuration.DegradeStageConfig) []DegradeStage {
	result := make([]DegradeStage, 0, len(stages))
	for _, stage := range stages {
		result = append(result, DegradeStage{Duty: stage.Duty, Hold: stage.Hold})
	}
	return result
}

func BandsFromConfig(bands []configuration.SensorBandConfig) []SensorBand {
	result := make([]SensorBand, 0, len(bands))
	for _, band := range bands {
		result = append(result, SensorBand{Lower: band.Lower, Upper: band.Upper, Angle: band.Angle})
	}
	return result
}
