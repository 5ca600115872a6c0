package control

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("link down")
}

func TestFormatReport_WithoutSample(t *testing.T) {
	// WHEN
	lines := FormatReport(140, nil)

	// THEN
	assert.Equal(t, []string{"Duty cycle set to: 140\n"}, lines)
}

func TestFormatReport_WithSample(t *testing.T) {
	// WHEN
	lines := FormatReport(160, &SensorSample{Raw: 2800, Angle: 75})

	// THEN
	assert.Equal(t, []string{
		"Sensor value: 2800\n",
		"Angle: 75\n",
		"Duty cycle set to: 160\n",
	}, lines)
}

func TestReporter_Lines(t *testing.T) {
	// GIVEN
	buffer := &bytes.Buffer{}
	reporter := NewReporter(buffer)

	// WHEN
	reporter.Received("45")
	reporter.Stored("45print")
	reporter.Status(140)
	reporter.Rejected()
	reporter.Report(140, nil)

	// THEN
	assert.Equal(t, "Received value: 45\n"+
		"Stored data: 45print\n"+
		"Last valid duty: 140\n"+
		"Value not permitted\n"+
		"Duty cycle set to: 140\n", buffer.String())
}

func TestReporter_WriteErrorIsIgnored(t *testing.T) {
	// GIVEN
	reporter := NewReporter(failingWriter{})

	// WHEN / THEN
	assert.NotPanics(t, func() {
		reporter.Report(140, nil)
	})
}

func TestReporter_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewReporter(nil).Rejected()
	})
}
