package configuration

// CurvePoint is one vertex of the piecewise-linear fan curve.
type CurvePoint struct {
	// Temp is the temperature of this control point in °C
	Temp float64 `json:"temp"`
	// Duty is the fan duty cycle at this temperature in percent [0..100]
	Duty float64 `json:"duty"`
}

// CurvePoints is an ordered set of control points,
// sorted by strictly increasing temperature.
type CurvePoints []CurvePoint

type CurveConfig struct {
	ID     string      `json:"id"`
	Points CurvePoints `json:"points"`
}
