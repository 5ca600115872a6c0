package control

import (
	"io"

	"github.com/markusressel/fanplate/internal/link"
	"github.com/markusressel/fanplate/internal/sensors"
)

// Input is everything a single poll of a Source produced
type Input struct {
	Command Command
	// Raw holds the bytes received from a byte stream, if any
	Raw []byte
	// Sample is only set by sources reading an analog sensor
	Sample *SensorSample
}

// Source is polled exactly once per control loop iteration.
// A poll blocks for at most the read timeout of the underlying peripheral.
type Source interface {
	Poll() (Input, error)
}

// retrier is implemented by sources that can emit their last command again
// after the controller failed to carry it out
type retrier interface {
	Retry()
}

// SerialSource treats the bytes of each read, up to a cap, as one command
type SerialSource struct {
	reader     io.Reader
	buffer     []byte
	directives []string
}

// NewSerialSource reads at most bufferSize-1 bytes per poll
func NewSerialSource(reader io.Reader, bufferSize int, directives []string) *SerialSource {
	if bufferSize < 2 {
		bufferSize = 2
	}
	return &SerialSource{
		reader:     reader,
		buffer:     make([]byte, bufferSize-1),
		directives: append([]string{}, directives...),
	}
}

func (s *SerialSource) Poll() (Input, error) {
	n, err := link.ReadCommand(s.reader, s.buffer)
	if err != nil {
		return Input{Command: NoCommand()}, err
	}
	if n <= 0 {
		return Input{Command: NoCommand()}, nil
	}

	raw := append([]byte{}, s.buffer[:n]...)
	return Input{
		Command: ParseCommand(raw, s.directives),
		Raw:     raw,
	}, nil
}

// SensorSource derives commands from an analog sensor. The angle label of a
// reading becomes the command code, but only when it differs from the label
// of the previous reading. A steady reading therefore yields no command,
// unless the previous command failed and Retry was called.
type SensorSource struct {
	sensor    sensors.Sensor
	mapper    *AngleMapper
	lastAngle *int
}

func NewSensorSource(sensor sensors.Sensor, mapper *AngleMapper) *SensorSource {
	return &SensorSource{
		sensor: sensor,
		mapper: mapper,
	}
}

func (s *SensorSource) Poll() (Input, error) {
	raw, err := s.sensor.ReadRaw()
	if err != nil {
		return Input{Command: NoCommand()}, err
	}

	angle := s.mapper.MapToAngle(raw)
	input := Input{
		Command: NoCommand(),
		Sample:  &SensorSample{Raw: raw, Angle: angle},
	}
	if s.lastAngle == nil || *s.lastAngle != angle {
		input.Command = CodeCommand(angle)
		s.lastAngle = &angle
	}
	return input, nil
}

// Retry makes the next poll emit a command even if the angle did not change
func (s *SensorSource) Retry() {
	s.lastAngle = nil
}
