package fan

import (
	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/pwm"
	"github.com/brev-dev/PiFan/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getOutput() (pwm.Output, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return pwm.NewOutput(configuration.CurrentConfig.Pwm)
}
