package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/control"
	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/stretchr/testify/assert"
)

func TestNewSource_Serial(t *testing.T) {
	// GIVEN
	config := configuration.Configuration{
		Variant: configuration.VariantSerial,
		Serial:  configuration.SerialConfig{BufferSize: 1024},
	}

	// WHEN
	source, err := NewSource(config, bytes.NewBufferString("45"))

	// THEN
	assert.NoError(t, err)
	assert.IsType(t, &control.SerialSource{}, source)

	input, err := source.Poll()
	assert.NoError(t, err)
	assert.Equal(t, control.CodeCommand(45).Code, input.Command.Code)
}

func TestNewSource_Sensor(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "in_voltage0_raw")
	err := os.WriteFile(filePath, []byte("2800\n"), 0644)
	assert.NoError(t, err)

	config := configuration.Configuration{
		Variant: configuration.VariantSensor,
		Sensor: configuration.SensorConfig{
			File:  &configuration.FileSensorConfig{Path: filePath},
			Bands: configuration.DefaultSensorBands(),
		},
	}

	// WHEN
	source, err := NewSource(config, nil)

	// THEN
	assert.NoError(t, err)
	input, err := source.Poll()
	assert.NoError(t, err)
	assert.Equal(t, control.CodeCommand(75), input.Command)
	assert.Equal(t, &control.SensorSample{Raw: 2800, Angle: 75}, input.Sample)
}

func TestNewSource_SensorMissing(t *testing.T) {
	// GIVEN
	config := configuration.Configuration{Variant: configuration.VariantSensor}

	// WHEN
	_, err := NewSource(config, nil)

	// THEN
	assert.EqualError(t, err, "no matching sensor type in configuration")
}

func TestNewSource_UnsupportedVariant(t *testing.T) {
	// WHEN
	_, err := NewSource(configuration.Configuration{Variant: "wifi"}, nil)

	// THEN
	assert.EqualError(t, err, "unsupported variant 'wifi'")
}

func TestInitializeController(t *testing.T) {
	// GIVEN
	config := configuration.Configuration{
		ID:      "backend-fan",
		Variant: configuration.VariantSerial,
		Serial:  configuration.SerialConfig{BufferSize: 1024},
		Degrade: configuration.DegradeConfig{
			Command: configuration.DefaultDegradeCommand,
			Stages:  configuration.DefaultDegradeStages(),
		},
		Mappings:  configuration.MappingsConfig{80: {Duty: 255}},
		Telemetry: configuration.TelemetryConfig{ReportOnHold: true, RollingWindowSize: 1},
	}
	port := &bytes.Buffer{}
	port.WriteString("80")
	output := pwm.NewRecordingOutput(0, nil)

	// WHEN
	contr, err := InitializeController(config, port, output)

	// THEN
	assert.NoError(t, err)
	defer control.ControllerMap.Remove(contr.GetId())

	registered, exists := control.ControllerMap.Get("backend-fan")
	assert.True(t, exists)
	assert.Equal(t, contr, registered)
}
