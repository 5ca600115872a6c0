package control

import (
	"time"

	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/markusressel/fanplate/internal/ui"
)

// RampEngine drives the output through a full sweep before settling at a target.
//
// Every ramp sweeps from pwm.MinDutyValue up to pwm.MaxDutyValue in steps of 1,
// regardless of the current duty, which makes the fan audibly rev up before it
// settles. After the sweep it waits for the hold delay of the policy and then
// applies the target duty. A ramp cannot be interrupted.
type RampEngine struct {
	output    pwm.Output
	channel   int
	stepDelay time.Duration
	clock     Clock
}

func NewRampEngine(output pwm.Output, channel int, stepDelay time.Duration, clock Clock) *RampEngine {
	return &RampEngine{
		output:    output,
		channel:   channel,
		stepDelay: stepDelay,
		clock:     clock,
	}
}

// Ramp returns the applied target duty, which becomes the new last valid duty.
// On error, from is returned.
func (r *RampEngine) Ramp(from int, policy RampPolicy) (int, error) {
	target := ValidateDuty(policy.TargetDuty)
	ui.Debug("Ramping from %d: sweep %d..%d, settle at %d after %s", from, pwm.MinDutyValue, pwm.MaxDutyValue, target, policy.HoldDelay)

	for duty := pwm.MinDutyValue; duty <= pwm.MaxDutyValue; duty++ {
		err := applyDuty(r.output, r.channel, duty)
		if err != nil {
			return from, err
		}
		r.clock.Sleep(r.stepDelay)
	}

	if policy.HoldDelay > 0 {
		r.clock.Sleep(policy.HoldDelay)
	}

	err := applyDuty(r.output, r.channel, target)
	if err != nil {
		return from, err
	}
	return target, nil
}

// Duration returns how long a ramp with the given policy occupies the control loop
func (r *RampEngine) Duration(policy RampPolicy) time.Duration {
	steps := pwm.MaxDutyValue - pwm.MinDutyValue + 1
	duration := time.Duration(steps) * r.stepDelay
	if policy.HoldDelay > 0 {
		duration += policy.HoldDelay
	}
	return duration
}
