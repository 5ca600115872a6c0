package sensor

import (
	"fmt"
	"strconv"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var angleCmd = &cobra.Command{
	Use:   "angle <reading>",
	Short: "Print the angle label of a raw sensor reading ([0..4095])",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		reading, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if reading < configuration.AdcMinValue || reading > configuration.AdcMaxValue {
			return fmt.Errorf("reading %d is out of range [%d, %d]", reading, configuration.AdcMinValue, configuration.AdcMaxValue)
		}

		config := loadConfig()
		fmt.Printf("%d\n", getMapper(config).MapToAngle(reading))
		return nil
	},
}

func init() {
	Command.AddCommand(angleCmd)
}
