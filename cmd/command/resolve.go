package command

import (
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/fanplate/internal/control"
	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/spf13/cobra"
)

var lastValidDuty int

var resolveCmd = &cobra.Command{
	Use:   "resolve <text>",
	Short: "Simulate the reaction of the controller to a single command",
	Long: `Resolves the given text exactly like a command received over the serial link
and prints the resulting action, the telemetry output and the duty profile over time.
No output device is touched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := loadConfig()
		options := control.OptionsFromConfig(config)

		result, err := control.Simulate(options, config.Directives, args[0], lastValidDuty)
		if err != nil {
			return err
		}

		target := "-"
		if result.Action.Kind == control.ActionRamp {
			target = strconv.Itoa(result.Action.Policy.TargetDuty)
		}

		printTable([]string{"", ""}, [][]string{
			{"Command", result.Command.Kind.String()},
			{"Code", strconv.Itoa(result.Command.Code)},
			{"Action", result.Action.Kind.String()},
			{"Target", target},
			{"Duration", result.Duration.String()},
			{"Last valid duty", strconv.Itoa(result.LastValidDuty)},
		})

		ui.Printfln("Telemetry:")
		ui.Printf("%s", strings.Join(result.Lines, ""))

		if result.Duration <= 0 {
			return nil
		}

		values := pwm.Resample(result.Samples, 100)
		caption := "Duty / " + result.Duration.String()
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)
		return nil
	},
}

func init() {
	resolveCmd.Flags().IntVarP(&lastValidDuty, "last-valid", "l", 0, "Duty the controller holds before the command arrives")

	Command.AddCommand(resolveCmd)
}
