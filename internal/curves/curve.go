package curves

import (
	"fmt"

	"github.com/brev-dev/PiFan/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	SpeedCurveMap = cmap.New[SpeedCurve]()
)

type SpeedCurve interface {
	GetId() string
	// Evaluate returns the raw target duty cycle in percent [0..100]
	// for the given temperature in °C.
	Evaluate(tempC float64) float64
}

func NewSpeedCurve(config configuration.CurveConfig) (SpeedCurve, error) {
	if len(config.Points) < 2 {
		return nil, fmt.Errorf("curve %s: at least 2 points are required", config.ID)
	}
	for i := 1; i < len(config.Points); i++ {
		if config.Points[i-1].Temp >= config.Points[i].Temp {
			return nil, fmt.Errorf("curve %s: temperatures must be strictly increasing", config.ID)
		}
	}

	return &LinearSpeedCurve{
		ID:     config.ID,
		Points: config.Points,
	}, nil
}

func RegisterSpeedCurve(curve SpeedCurve) {
	SpeedCurveMap.Set(curve.GetId(), curve)
}
