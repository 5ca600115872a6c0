package control

import (
	"errors"
	"time"

	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/markusressel/fanplate/internal/ui"
)

type DegradeStage struct {
	Duty int           `json:"duty"`
	Hold time.Duration `json:"hold"`
}

// DegradeSequencer applies a fixed staged descent without ramping between stages.
// The hold of the last stage is ignored, its duty is held until the next command.
type DegradeSequencer struct {
	output  pwm.Output
	channel int
	stages  []DegradeStage
	clock   Clock
}

func NewDegradeSequencer(output pwm.Output, channel int, stages []DegradeStage, clock Clock) (*DegradeSequencer, error) {
	if len(stages) == 0 {
		return nil, errors.New("degrade sequence requires at least one stage")
	}
	return &DegradeSequencer{
		output:  output,
		channel: channel,
		stages:  append([]DegradeStage{}, stages...),
		clock:   clock,
	}, nil
}

// Degrade runs all stages and returns the duty of the last one,
// which becomes the new last valid duty. It cannot be interrupted.
// On error, from is returned.
func (d *DegradeSequencer) Degrade(from int) (int, error) {
	last := len(d.stages) - 1
	for idx, stage := range d.stages {
		duty := ValidateDuty(stage.Duty)
		ui.Debug("Degrade stage %d/%d: duty %d", idx+1, len(d.stages), duty)
		err := applyDuty(d.output, d.channel, duty)
		if err != nil {
			return from, err
		}
		if idx < last {
			d.clock.Sleep(stage.Hold)
		}
	}
	return ValidateDuty(d.stages[last].Duty), nil
}

func (d *DegradeSequencer) Stages() []DegradeStage {
	return append([]DegradeStage{}, d.stages...)
}
