package fan

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the fan duty cycle to the given value ([0..100] percent)",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		duty, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		if duty < 0 || duty > 100 {
			return fmt.Errorf("duty cycle out of range [0..100]: %s", args[0])
		}

		output, err := getOutput()
		if err != nil {
			return err
		}

		return output.SetDuty(duty)
	},
}

func init() {
	Command.AddCommand(setCmd)
}
