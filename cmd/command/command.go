package command

import (
	"bytes"

	"github.com/markusressel/fanplate/cmd/global"
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var Command = &cobra.Command{
	Use:              "command",
	Short:            "Command resolution related commands",
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

func printTable(headers []string, rows [][]string) {
	tab := table.Table{
		Headers: headers,
		Rows:    rows,
	}
	var buf bytes.Buffer
	tableErr := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if tableErr != nil {
		panic(tableErr)
	}
	ui.Printfln(buf.String())
}
