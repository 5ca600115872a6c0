package pwm

import (
	"fmt"

	"github.com/markusressel/fanplate/internal/configuration"
)

const (
	MaxDutyValue = 255
	MinDutyValue = 0
)

// Output is a PWM peripheral. Any duty change is applied in two phases:
// SetDuty stages a value for a channel and Commit applies the staged value.
type Output interface {
	SetDuty(channel int, value int) error
	Commit(channel int) error
	Close() error
}

func NewOutput(config configuration.PwmConfig) (Output, error) {
	if config.File != nil {
		return &FileOutput{
			Config: *config.File,
			stage:  stage{channel: config.Channel},
		}, nil
	}

	if config.Cmd != nil {
		return &CmdOutput{
			Config: *config.Cmd,
			stage:  stage{channel: config.Channel},
		}, nil
	}

	if config.Rpio != nil {
		return NewRpioOutput(config.Channel, *config.Rpio)
	}

	return nil, fmt.Errorf("no matching pwm output type in configuration")
}

// stage holds the value staged for the single channel an output drives
type stage struct {
	channel int
	value   int
	pending bool
}

func (s *stage) set(channel int, value int) error {
	if channel != s.channel {
		return fmt.Errorf("channel %d is not configured, use channel %d", channel, s.channel)
	}
	if value < MinDutyValue || value > MaxDutyValue {
		return fmt.Errorf("duty %d is out of range [%d, %d]", value, MinDutyValue, MaxDutyValue)
	}
	s.value = value
	s.pending = true
	return nil
}

// take returns the staged value, ok is false if nothing has been staged since the last commit
func (s *stage) take(channel int) (value int, ok bool, err error) {
	if channel != s.channel {
		return 0, false, fmt.Errorf("channel %d is not configured, use channel %d", channel, s.channel)
	}
	if !s.pending {
		return s.value, false, nil
	}
	s.pending = false
	return s.value, true, nil
}
