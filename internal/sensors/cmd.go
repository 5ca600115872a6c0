package sensors

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/util"
)

type CmdSensor struct {
	Config configuration.CmdSensorConfig `json:"configuration"`
}

func (sensor CmdSensor) ReadRaw() (int, error) {
	timeout := 2 * time.Second
	result, err := util.SafeCmdExecution(sensor.Config.Exec, sensor.Config.Args, timeout)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(strings.TrimSpace(result))
	if err != nil {
		return 0, fmt.Errorf("unable to read int from command output of %s: %w", sensor.Config.Exec, err)
	}
	return value, nil
}
