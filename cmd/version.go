package cmd

import (
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fanplate",
	Long:  `All software has versions. This is fanplate's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln(version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
