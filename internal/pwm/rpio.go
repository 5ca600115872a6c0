package pwm

import (
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/stianeikeland/go-rpio/v4"
)

// RpioOutput drives a hardware PWM pin of a Raspberry Pi.
// The cycle length equals MaxDutyValue, so the duty maps 1:1 to the pulse width.
type RpioOutput struct {
	Config configuration.RpioPwmConfig
	stage  stage
	pin    rpio.Pin
}

func NewRpioOutput(channel int, config configuration.RpioPwmConfig) (*RpioOutput, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}

	pin := rpio.Pin(config.Pin)
	pin.Pwm()
	pin.Freq(config.Frequency * MaxDutyValue)
	pin.DutyCycle(MinDutyValue, MaxDutyValue)

	return &RpioOutput{
		Config: config,
		stage:  stage{channel: channel},
		pin:    pin,
	}, nil
}

func (o *RpioOutput) SetDuty(channel int, value int) error {
	return o.stage.set(channel, value)
}

func (o *RpioOutput) Commit(channel int) error {
	value, ok, err := o.stage.take(channel)
	if err != nil || !ok {
		return err
	}
	o.pin.DutyCycle(uint32(value), MaxDutyValue)
	return nil
}

func (o *RpioOutput) Close() error {
	o.pin.DutyCycle(MinDutyValue, MaxDutyValue)
	return rpio.Close()
}
