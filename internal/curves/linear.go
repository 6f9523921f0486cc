package curves

import (
	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/util"
)

// LinearSpeedCurve interpolates linearly between its control points.
// Temperatures below the first point yield the first duty, temperatures
// above the last point yield the last duty.
type LinearSpeedCurve struct {
	ID     string                    `json:"id"`
	Points configuration.CurvePoints `json:"points"`
}

func (c *LinearSpeedCurve) GetId() string {
	return c.ID
}

func (c *LinearSpeedCurve) Evaluate(tempC float64) float64 {
	points := c.Points

	if tempC <= points[0].Temp {
		return points[0].Duty
	}
	last := points[len(points)-1]
	if tempC >= last.Temp {
		return last.Duty
	}

	for i := 0; i < len(points)-1; i++ {
		current := points[i]
		next := points[i+1]

		if tempC > next.Temp {
			continue
		}

		// tempC is somewhere in between current and next
		ratio := util.Ratio(tempC, current.Temp, next.Temp)
		return current.Duty + ratio*(next.Duty-current.Duty)
	}

	return last.Duty
}
