package control

import (
	"fmt"
	"io"

	"github.com/markusressel/fanplate/internal/ui"
)

const (
	lineReceived    = "Received value: %s\n"
	lineStored      = "Stored data: %s\n"
	lineStatus      = "Last valid duty: %d\n"
	lineRejected    = "Value not permitted\n"
	lineSensorValue = "Sensor value: %d\n"
	lineAngle       = "Angle: %d\n"
	lineDuty        = "Duty cycle set to: %d\n"
)

// SensorSample is a raw ADC reading together with its angle classification
type SensorSample struct {
	Raw   int `json:"raw"`
	Angle int `json:"angle"`
}

// FormatReport returns the status lines for the applied duty,
// preceded by the sensor lines if a sample is given
func FormatReport(appliedDuty int, sample *SensorSample) []string {
	var lines []string
	if sample != nil {
		lines = append(lines,
			fmt.Sprintf(lineSensorValue, sample.Raw),
			fmt.Sprintf(lineAngle, sample.Angle),
		)
	}
	return append(lines, fmt.Sprintf(lineDuty, appliedDuty))
}

// Reporter writes human-readable status lines. Every line is written on its
// own and transmission is fire-and-forget: a failed write is only logged.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

func (r *Reporter) Emit(lines ...string) {
	for _, line := range lines {
		_, err := io.WriteString(r.out, line)
		if err != nil {
			ui.Debug("Unable to transmit telemetry line %q: %v", line, err)
		}
	}
}

func (r *Reporter) Received(text string) {
	r.Emit(fmt.Sprintf(lineReceived, text))
}

func (r *Reporter) Stored(data string) {
	r.Emit(fmt.Sprintf(lineStored, data))
}

func (r *Reporter) Status(lastValidDuty int) {
	r.Emit(fmt.Sprintf(lineStatus, lastValidDuty))
}

func (r *Reporter) Rejected() {
	r.Emit(lineRejected)
}

func (r *Reporter) Report(appliedDuty int, sample *SensorSample) {
	r.Emit(FormatReport(appliedDuty, sample)...)
}
