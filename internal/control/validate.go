package control

import (
	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/markusressel/fanplate/internal/util"
)

// ValidateDuty clamps raw into the legal duty range [pwm.MinDutyValue, pwm.MaxDutyValue]
func ValidateDuty(raw int) int {
	return util.Coerce(raw, pwm.MinDutyValue, pwm.MaxDutyValue)
}

// applyDuty stages and commits a single duty
func applyDuty(output pwm.Output, channel int, duty int) error {
	err := output.SetDuty(channel, duty)
	if err != nil {
		return err
	}
	return output.Commit(channel)
}
