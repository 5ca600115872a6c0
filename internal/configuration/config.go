package configuration

import (
	"os"
	"time"

	"github.com/markusressel/fanplate/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	VariantSerial = "serial"
	VariantSensor = "sensor"
)

type Configuration struct {
	// ID identifies the controlled fan in logs, metrics and the REST api
	ID      string `json:"id" yaml:"id"`
	Variant string `json:"variant" yaml:"variant"`

	// LoopDelay is the pause at the end of each control loop iteration
	LoopDelay time.Duration `json:"loopDelay" yaml:"loopDelay"`

	Serial SerialConfig `json:"serial" yaml:"serial"`
	Pwm    PwmConfig    `json:"pwm" yaml:"pwm"`
	Sensor SensorConfig `json:"sensor" yaml:"sensor"`

	Ramp     RampConfig     `json:"ramp" yaml:"ramp"`
	Degrade  DegradeConfig  `json:"degrade" yaml:"degrade"`
	Mappings MappingsConfig `json:"mappings" yaml:"mappings"`

	// Directives are literal commands that trigger a diagnostic action without a duty change
	Directives []string `json:"directives" yaml:"directives"`

	Telemetry  TelemetryConfig  `json:"telemetry" yaml:"telemetry"`
	Statistics StatisticsConfig `json:"statistics" yaml:"statistics"`
	Api        ApiConfig        `json:"api" yaml:"api"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fanplate")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/fanplate/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("id", "fan")
	viper.SetDefault("variant", VariantSerial)
	viper.SetDefault("loopDelay", 50*time.Millisecond)

	viper.SetDefault("serial.port", "/dev/ttyUSB0")
	viper.SetDefault("serial.baud", 115200)
	viper.SetDefault("serial.readTimeout", 100*time.Millisecond)
	viper.SetDefault("serial.bufferSize", 1024)

	viper.SetDefault("pwm.channel", 0)

	viper.SetDefault("ramp.stepDelay", 10*time.Millisecond)
	viper.SetDefault("degrade.command", DefaultDegradeCommand)

	viper.SetDefault("telemetry.reportOnHold", true)
	viper.SetDefault("telemetry.rollingWindowSize", 20)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 10000)
}

// DetectAndReadConfigFile detects the path of the first existing config file and reads it
func DetectAndReadConfigFile() string {
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			ui.Warning("No config file found, using defaults")
			return ""
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the current viper state into CurrentConfig
func LoadConfig() {
	CurrentConfig = Configuration{}
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHook()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	applyVariantDefaults(&CurrentConfig)
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		OptionalBoolHookFunc(),
		MappingShorthandHookFunc(),
	)
}

// applyVariantDefaults fills in everything whose default depends on the
// selected variant or that viper cannot express as a flat default
func applyVariantDefaults(config *Configuration) {
	if !config.Degrade.Enabled.Present && !config.Degrade.Enabled.RuntimeOverride {
		config.Degrade.Enabled.Value = config.Variant == VariantSerial
	}
	if len(config.Degrade.Stages) == 0 {
		config.Degrade.Stages = DefaultDegradeStages()
	}
	if len(config.Mappings) == 0 {
		if config.Variant == VariantSensor {
			config.Mappings = DefaultSensorMappings()
		} else {
			config.Mappings = DefaultSerialMappings()
		}
	}
	if len(config.Sensor.Bands) == 0 {
		config.Sensor.Bands = DefaultSensorBands()
	}
	if config.Directives == nil {
		config.Directives = []string{DirectivePrint}
	}
}
