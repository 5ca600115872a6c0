package control

import (
	"bytes"
	"strings"
	"time"

	"github.com/markusressel/fanplate/internal/pwm"
)

// Simulation is the recorded outcome of a single command applied to a controller
type Simulation struct {
	Command  Command
	Action   ResolvedAction
	Samples  []pwm.Sample
	Duration time.Duration
	Lines    []string
	// LastValidDuty after the command has been processed
	LastValidDuty int
}

type staticSource struct {
	input Input
	done  bool
}

func (s *staticSource) Poll() (Input, error) {
	if s.done {
		return Input{Command: NoCommand()}, nil
	}
	s.done = true
	return s.input, nil
}

// Simulate runs a single control loop iteration for the given command text on a
// recording output, without any real delays. lastValid is the duty the
// controller is assumed to hold before the command arrives.
func Simulate(options Options, directives []string, text string, lastValid int) (Simulation, error) {
	clock := &SimulatedClock{}
	output := pwm.NewRecordingOutput(options.Channel, clock.Elapsed)
	telemetry := &bytes.Buffer{}

	raw := []byte(text)
	source := &staticSource{
		input: Input{Command: ParseCommand(raw, directives), Raw: raw},
	}

	controller, err := NewController(options, source, output, NewReporter(telemetry), clock)
	if err != nil {
		return Simulation{}, err
	}
	controller.lastValidDuty = ValidateDuty(lastValid)
	controller.appliedDuty = controller.lastValidDuty

	action := controller.Step()

	lines := strings.SplitAfter(telemetry.String(), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Simulation{
		Command:       source.input.Command,
		Action:        action,
		Samples:       output.Samples,
		Duration:      clock.Elapsed(),
		Lines:         lines,
		LastValidDuty: controller.lastValidDuty,
	}, nil
}
