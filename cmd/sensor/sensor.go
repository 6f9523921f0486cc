package sensor

import (
	"fmt"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/sensors"
	"github.com/brev-dev/PiFan/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Print the current temperature reading to console",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		sensor, err := getSensor()
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%.1f", value)
		return nil
	},
}

func getSensor() (sensors.Sensor, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return sensors.NewSensor(configuration.CurrentConfig.Sensor)
}
