package curve

import (
	"bytes"
	"fmt"

	"github.com/brev-dev/PiFan/cmd/global"
	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/curves"
	"github.com/brev-dev/PiFan/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var curveCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured fan curve to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()

		err = configuration.Validate()
		if err != nil {
			ui.FatalWithoutStacktrace("%v", err)
		}

		curveConf := configuration.CurrentConfig.Curve
		curve, err := curves.NewSpeedCurve(curveConf)
		if err != nil {
			return err
		}

		points := curveConf.Points
		pointStrings := make([]string, 0, len(points))
		for _, point := range points {
			pointStrings = append(pointStrings, fmt.Sprintf("%.0f°C → %.0f%%", point.Temp, point.Duty))
		}

		// print table
		tab := table.Table{
			Headers: []string{"ID", "Type", "Points"},
			Rows: [][]string{
				{curve.GetId(), "Linear", fmt.Sprintf("%v", pointStrings)},
			},
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
		tableString := buf.String()
		ui.Printfln(tableString)

		// sample the curve a bit beyond its defined range to
		// visualize the clamping at both ends
		start := int(points[0].Temp) - 5
		stop := int(points[len(points)-1].Temp) + 5

		values := make([]float64, 0, stop-start+1)
		for temp := start; temp <= stop; temp++ {
			values = append(values, curve.Evaluate(float64(temp)))
		}

		caption := fmt.Sprintf("Duty %% over %d..%d °C", start, stop)
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)

		return nil
	},
}

func init() {
	Command.AddCommand(curveCmd)
}
