package config

import (
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration, including defaults",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()

		text, err := configuration.ToYaml(configuration.CurrentConfig)
		if err != nil {
			return err
		}
		ui.Printf("%s", text)
		return nil
	},
}

func init() {
	Command.AddCommand(showCmd)
}
