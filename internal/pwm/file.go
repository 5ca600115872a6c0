package pwm

import (
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/util"
)

// FileOutput writes the committed duty to a file, e.g. a sysfs pwm attribute
type FileOutput struct {
	Config configuration.FilePwmConfig
	stage  stage
}

func (o *FileOutput) SetDuty(channel int, value int) error {
	return o.stage.set(channel, value)
}

func (o *FileOutput) Commit(channel int) error {
	value, ok, err := o.stage.take(channel)
	if err != nil || !ok {
		return err
	}

	filePath, err := util.ExpandHomePath(o.Config.Path)
	if err != nil {
		return err
	}

	if o.Config.Atomic {
		return util.WriteIntToFileAtomic(value, filePath)
	}
	return util.WriteIntToFile(value, filePath)
}

func (o *FileOutput) Close() error {
	return nil
}
