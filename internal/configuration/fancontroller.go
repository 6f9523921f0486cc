package configuration

import "time"

type ControllerConfig struct {
	// SamplePeriod is the time interval between two temperature samples.
	SamplePeriod time.Duration `json:"samplePeriod"`
	// MinDutyPercent is the lowest sustainable duty cycle. Nonzero curve
	// targets below this value are treated as "off".
	MinDutyPercent float64 `json:"minDutyPercent"`
	// BoostDutyPercent is the duty cycle used to overcome static friction
	// when the fan spins up from a full stop.
	BoostDutyPercent float64 `json:"boostDutyPercent"`
	// BoostDuration is how long the spin-up boost is held.
	BoostDuration time.Duration `json:"boostDuration"`
	// DownDelay is the minimum dwell time before a duty decrease may commit.
	DownDelay time.Duration `json:"downDelay"`
	// TempRollingWindowSize is the number of samples used for temperature
	// smoothing. A size of 1 disables smoothing.
	TempRollingWindowSize int `json:"tempRollingWindowSize"`
}
