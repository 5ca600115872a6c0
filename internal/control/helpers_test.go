package control

import (
	"errors"
	"time"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/pwm"
)

type poll struct {
	input Input
	err   error
}

// scriptedSource returns the given polls in order, followed by empty polls
type scriptedSource struct {
	polls []poll
	count int
}

func (s *scriptedSource) Poll() (Input, error) {
	s.count++
	if len(s.polls) == 0 {
		return Input{Command: NoCommand()}, nil
	}
	next := s.polls[0]
	s.polls = s.polls[1:]
	return next.input, next.err
}

func textPoll(text string, directives ...string) poll {
	raw := []byte(text)
	return poll{input: Input{Command: ParseCommand(raw, directives), Raw: raw}}
}

type fakeSensor struct {
	readings []int
	err      error
}

func (s *fakeSensor) ReadRaw() (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	value := s.readings[0]
	if len(s.readings) > 1 {
		s.readings = s.readings[1:]
	}
	return value, nil
}

// brokenOutput fails every commit
type brokenOutput struct {
	pwm.RecordingOutput
}

func (o *brokenOutput) Commit(channel int) error {
	return errors.New("device unavailable")
}

func createSerialOptions() Options {
	config := configuration.Configuration{
		ID:        "fan",
		Variant:   configuration.VariantSerial,
		LoopDelay: 50 * time.Millisecond,
		Serial:    configuration.SerialConfig{BufferSize: 1024},
		Ramp:      configuration.RampConfig{StepDelay: 10 * time.Millisecond},
		Degrade: configuration.DegradeConfig{
			Enabled: configuration.Optional[bool]{Value: true, Present: true},
			Command: configuration.DefaultDegradeCommand,
			Stages:  configuration.DefaultDegradeStages(),
		},
		Mappings:  configuration.DefaultSerialMappings(),
		Telemetry: configuration.TelemetryConfig{ReportOnHold: true, RollingWindowSize: 5},
	}
	return OptionsFromConfig(config)
}

func createSensorOptions() Options {
	options := createSerialOptions()
	options.Mappings = OptionsFromConfig(configuration.Configuration{
		Mappings: configuration.DefaultSensorMappings(),
	}).Mappings
	options.DegradeCommand = nil
	return options
}

func createDefaultMapper() *AngleMapper {
	return NewAngleMapper(BandsFromConfig(configuration.DefaultSensorBands()))
}

// flakyOutput fails the given number of commits before it starts recording
type flakyOutput struct {
	pwm.RecordingOutput
	failures int
}

func (o *flakyOutput) Commit(channel int) error {
	if o.failures > 0 {
		o.failures--
		return errors.New("device busy")
	}
	return o.RecordingOutput.Commit(channel)
}
