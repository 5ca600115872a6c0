package command

import (
	"strconv"

	"github.com/markusressel/fanplate/internal/control"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured command table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := loadConfig()
		options := control.OptionsFromConfig(config)
		resolver := control.NewResolver(options.Mappings, options.DegradeCommand)

		var rows [][]string
		for _, command := range resolver.Commands() {
			policy, _ := resolver.Policy(command)
			rows = append(rows, []string{
				strconv.Itoa(command),
				control.ActionRamp.String(),
				strconv.Itoa(policy.TargetDuty),
				policy.HoldDelay.String(),
			})
		}
		if command, enabled := resolver.DegradeCommand(); enabled {
			for _, stage := range options.DegradeStages {
				rows = append(rows, []string{
					strconv.Itoa(command),
					control.ActionDegrade.String(),
					strconv.Itoa(stage.Duty),
					stage.Hold.String(),
				})
			}
		}
		for _, directive := range config.Directives {
			rows = append(rows, []string{directive, control.ActionHold.String(), "-", "-"})
		}

		printTable([]string{"Command", "Action", "Duty", "Hold"}, rows)
		return nil
	},
}

func init() {
	Command.AddCommand(listCmd)
}
