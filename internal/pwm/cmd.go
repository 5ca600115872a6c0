package pwm

import (
	"strconv"
	"time"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdOutput executes a command for every committed duty, passing the duty as last argument
type CmdOutput struct {
	Config configuration.CmdPwmConfig
	stage  stage
}

func (o *CmdOutput) SetDuty(channel int, value int) error {
	return o.stage.set(channel, value)
}

func (o *CmdOutput) Commit(channel int) error {
	value, ok, err := o.stage.take(channel)
	if err != nil || !ok {
		return err
	}

	args := append(append([]string{}, o.Config.Args...), strconv.Itoa(value))
	_, err = util.SafeCmdExecution(o.Config.Exec, args, cmdTimeout)
	return err
}

func (o *CmdOutput) Close() error {
	return nil
}
