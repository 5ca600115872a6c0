package configuration

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/markusressel/fanplate/internal/ui"
	"github.com/markusressel/fanplate/internal/util"
	"golang.org/x/exp/slices"
)

const (
	minDutyValue = 0
	maxDutyValue = 255

	// the serial driver waits in deciseconds, using a single byte counter
	minSerialReadTimeout = 100 * time.Millisecond
	maxSerialReadTimeout = 255 * minSerialReadTimeout
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	supportedVariants := []string{VariantSerial, VariantSensor}
	if !slices.Contains(supportedVariants, config.Variant) {
		return fmt.Errorf("unsupported variant '%s', use one of: %s", config.Variant, strings.Join(supportedVariants, " | "))
	}

	if config.LoopDelay < 0 {
		return errors.New("loopDelay must not be negative")
	}

	err := validateSerial(config)
	if err != nil {
		return err
	}
	err = validatePwm(config)
	if err != nil {
		return err
	}
	err = validateSensor(config)
	if err != nil {
		return err
	}
	err = validateRamp(config)
	if err != nil {
		return err
	}
	err = validateMappings(config)
	if err != nil {
		return err
	}
	err = validateDegrade(config)
	if err != nil {
		return err
	}
	err = validateDirectives(config)
	if err != nil {
		return err
	}

	if containsCmdBackends(config) && len(path) > 0 {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %w", path, err)
		}
	}

	return nil
}

func containsCmdBackends(config *Configuration) bool {
	return config.Pwm.Cmd != nil || config.Sensor.Cmd != nil
}

func validateSerial(config *Configuration) error {
	serialConfig := config.Serial
	if len(serialConfig.Port) <= 0 {
		return errors.New("serial: missing port")
	}
	if serialConfig.Baud <= 0 {
		return fmt.Errorf("serial: invalid baud rate %d", serialConfig.Baud)
	}
	if serialConfig.BufferSize <= 1 {
		return fmt.Errorf("serial: bufferSize must be > 1, was %d", serialConfig.BufferSize)
	}
	if serialConfig.ReadTimeout <= 0 {
		return errors.New("serial: readTimeout must be > 0")
	}
	if serialConfig.ReadTimeout < minSerialReadTimeout || serialConfig.ReadTimeout > maxSerialReadTimeout || serialConfig.ReadTimeout%minSerialReadTimeout != 0 {
		ui.Warning("serial: readTimeout %s is rounded to deciseconds within [%s, %s]", serialConfig.ReadTimeout, minSerialReadTimeout, maxSerialReadTimeout)
	}
	return nil
}

func validatePwm(config *Configuration) error {
	pwmConfig := config.Pwm

	subConfigs := 0
	if pwmConfig.File != nil {
		subConfigs++
	}
	if pwmConfig.Cmd != nil {
		subConfigs++
	}
	if pwmConfig.Rpio != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("pwm: only one output type can be used")
	}
	if subConfigs <= 0 {
		return errors.New("pwm: sub-configuration for output is missing, use one of: file | cmd | rpio")
	}

	if pwmConfig.Channel < 0 {
		return fmt.Errorf("pwm: invalid channel %d, must be >= 0", pwmConfig.Channel)
	}

	if pwmConfig.File != nil && len(pwmConfig.File.Path) <= 0 {
		return errors.New("pwm: no file path provided")
	}

	if pwmConfig.Cmd != nil && len(pwmConfig.Cmd.Exec) <= 0 {
		return errors.New("pwm: cmd executable is missing")
	}

	if pwmConfig.Rpio != nil {
		if !slices.Contains([]int{12, 13, 18, 19}, pwmConfig.Rpio.Pin) {
			return fmt.Errorf("pwm: pin %d does not support hardware pwm, use one of: 12 | 13 | 18 | 19", pwmConfig.Rpio.Pin)
		}
		if pwmConfig.Rpio.Frequency <= 0 {
			return fmt.Errorf("pwm: invalid frequency %d", pwmConfig.Rpio.Frequency)
		}
	}

	return nil
}

func validateSensor(config *Configuration) error {
	sensorConfig := config.Sensor

	subConfigs := 0
	if sensorConfig.File != nil {
		subConfigs++
	}
	if sensorConfig.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("sensor: only one sensor type can be used")
	}

	if config.Variant == VariantSensor {
		if subConfigs <= 0 {
			return errors.New("sensor: sub-configuration for sensor is missing, use one of: file | cmd")
		}
	} else if subConfigs > 0 {
		ui.Warning("Sensor configuration is ignored for variant '%s'", config.Variant)
	}

	if sensorConfig.File != nil && len(sensorConfig.File.Path) <= 0 {
		return errors.New("sensor: no file path provided")
	}
	if sensorConfig.Cmd != nil && len(sensorConfig.Cmd.Exec) <= 0 {
		return errors.New("sensor: cmd executable is missing")
	}

	return validateBands(sensorConfig.Bands)
}

// validateBands ensures that the bands cover [AdcMinValue, AdcMaxValue]
// without gaps or overlaps
func validateBands(bands []SensorBandConfig) error {
	if len(bands) <= 0 {
		return errors.New("sensor: no bands defined")
	}

	sorted := slices.Clone(bands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lower < sorted[j].Lower
	})

	expectedLower := AdcMinValue
	for _, band := range sorted {
		if band.Upper <= band.Lower {
			return fmt.Errorf("sensor: band [%d, %d) is empty", band.Lower, band.Upper)
		}
		if band.Lower < expectedLower {
			return fmt.Errorf("sensor: band [%d, %d) overlaps with previous band", band.Lower, band.Upper)
		}
		if band.Lower > expectedLower {
			return fmt.Errorf("sensor: readings in [%d, %d) are not covered by any band", expectedLower, band.Lower)
		}
		expectedLower = band.Upper
	}
	if expectedLower <= AdcMaxValue {
		return fmt.Errorf("sensor: readings in [%d, %d] are not covered by any band", expectedLower, AdcMaxValue)
	}

	return nil
}

func validateRamp(config *Configuration) error {
	if config.Ramp.StepDelay < 0 {
		return errors.New("ramp: stepDelay must not be negative")
	}
	return nil
}

func validateMappings(config *Configuration) error {
	if len(config.Mappings) <= 0 {
		return errors.New("mappings: no command mappings defined")
	}
	for _, command := range util.SortedKeys(config.Mappings) {
		mapping := config.Mappings[command]
		if mapping.Hold < 0 {
			return fmt.Errorf("mappings: command %d: hold must not be negative", command)
		}
		if mapping.Duty < minDutyValue || mapping.Duty > maxDutyValue {
			ui.Warning("Mapping for command %d: duty %d is out of range and will be clamped to [%d, %d]", command, mapping.Duty, minDutyValue, maxDutyValue)
		}
	}
	return nil
}

func validateDegrade(config *Configuration) error {
	degradeConfig := config.Degrade
	if !degradeConfig.Enabled.Get() {
		return nil
	}

	if _, exists := config.Mappings[degradeConfig.Command]; exists {
		return fmt.Errorf("degrade: command %d is also defined in mappings", degradeConfig.Command)
	}
	if len(degradeConfig.Stages) <= 0 {
		return errors.New("degrade: no stages defined")
	}
	for idx, stage := range degradeConfig.Stages {
		if stage.Duty < minDutyValue || stage.Duty > maxDutyValue {
			return fmt.Errorf("degrade: stage %d: duty %d is out of range [%d, %d]", idx+1, stage.Duty, minDutyValue, maxDutyValue)
		}
		if stage.Hold < 0 {
			return fmt.Errorf("degrade: stage %d: hold must not be negative", idx+1)
		}
	}
	return nil
}

func validateDirectives(config *Configuration) error {
	supportedDirectives := []string{DirectivePrint, DirectiveStatus}
	for _, directive := range config.Directives {
		if !slices.Contains(supportedDirectives, directive) {
			return fmt.Errorf("directives: unsupported directive '%s', use one of: %s", directive, strings.Join(supportedDirectives, " | "))
		}
	}
	return nil
}
