package pwm

import (
	"fmt"
	"math"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/util"
)

// Output is a handle to a single hardware pwm channel.
type Output interface {
	GetId() string

	// SetDuty asserts the given duty cycle in percent [0..100] on hardware.
	SetDuty(percent float64) error

	// Close stops the output and releases the underlying resource.
	// It is idempotent and safe to call during shutdown.
	Close() error
}

func NewOutput(config configuration.PwmConfig) (Output, error) {
	switch config.Backend {
	case configuration.PwmBackendGpio:
		return NewGpioOutput(config)
	case configuration.PwmBackendSysfs:
		return NewSysfsOutput(config)
	case configuration.PwmBackendFile:
		return NewFileOutput(config.File)
	}

	return nil, fmt.Errorf("no matching pwm backend: %s", config.Backend)
}

// DutyToCycles scales a duty percentage to the duty unit of a driver with
// the given cycle resolution. Out-of-range percentages are clamped.
func DutyToCycles(percent float64, cycleLength uint32) uint32 {
	percent = util.Coerce(percent, 0, 100)
	return uint32(math.Round(percent / 100.0 * float64(cycleLength)))
}
