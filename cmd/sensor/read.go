package sensor

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the configured sensor once and print its raw value and angle",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		config := loadConfig()
		sensor, err := getSensor(config)
		if err != nil {
			return err
		}

		raw, err := sensor.ReadRaw()
		if err != nil {
			return err
		}
		angle := getMapper(config).MapToAngle(raw)
		fmt.Printf("%d %d\n", raw, angle)
		return nil
	},
}

func init() {
	Command.AddCommand(readCmd)
}
