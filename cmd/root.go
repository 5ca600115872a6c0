package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/fanplate/cmd/command"
	"github.com/markusressel/fanplate/cmd/config"
	"github.com/markusressel/fanplate/cmd/global"
	"github.com/markusressel/fanplate/cmd/pwm"
	"github.com/markusressel/fanplate/cmd/sensor"
	"github.com/markusressel/fanplate/internal"
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fanplate",
	Short: "A daemon driving a fan from remote commands or an analog sensor.",
	Long: `fanplate is a small daemon that drives the PWM duty cycle of a fan,
either from numeric commands received over a serial link or from the
angle of an analog sensor.`,
	// this is the default command to run when no subcommand is specified
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupUi()
	},
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()

		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		err := configuration.Validate(configPath)
		if err != nil {
			ui.FatalWithoutStacktrace("Config Validation Error: %v", err)
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/fanplate.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)

	rootCmd.AddCommand(command.Command)
	rootCmd.AddCommand(sensor.Command)
	rootCmd.AddCommand(pwm.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("plate", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("fanplate")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
