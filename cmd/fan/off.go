package fan

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Stop the fan and release the PWM hardware",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		output, err := getOutput()
		if err != nil {
			return err
		}

		if err := output.SetDuty(0); err != nil {
			return err
		}
		return output.Close()
	},
}

func init() {
	Command.AddCommand(offCmd)
}
