package pwm

import (
	"strconv"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/control"
	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <duty>",
	Short: "Set the duty cycle of the configured output to the given value ([0..255])",
	Long:  `Values outside of [0..255] are clamped before they are applied.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		err = configuration.Validate(configPath)
		if err != nil {
			ui.FatalWithoutStacktrace("%v", err)
		}
		config := configuration.CurrentConfig

		output, err := pwm.NewOutput(config.Pwm)
		if err != nil {
			return err
		}
		defer output.Close()

		duty := control.ValidateDuty(value)
		if duty != value {
			ui.Warning("Duty %d is out of range, using %d", value, duty)
		}

		err = output.SetDuty(config.Pwm.Channel, duty)
		if err != nil {
			return err
		}
		err = output.Commit(config.Pwm.Channel)
		if err != nil {
			return err
		}

		ui.Success("Duty cycle set to %d", duty)
		return nil
	},
}

func init() {
	Command.AddCommand(setCmd)
}
