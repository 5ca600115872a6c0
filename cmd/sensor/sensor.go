package sensor

import (
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/control"
	"github.com/markusressel/fanplate/internal/sensors"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Sensor related commands",
	Long:             ``,
	TraverseChildren: true,
}

func loadConfig() configuration.Configuration {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate(configPath)
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}
	return configuration.CurrentConfig
}

func getSensor(config configuration.Configuration) (sensors.Sensor, error) {
	return sensors.NewSensor(config.Sensor)
}

func getMapper(config configuration.Configuration) *control.AngleMapper {
	return control.NewAngleMapper(control.BandsFromConfig(config.Sensor.Bands))
}
