//go:build linux

package pwm

import (
	"fmt"
	"sync"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/stianeikeland/go-rpio/v4"
)

// cycleLength is the duty resolution of one hardware pwm period.
const cycleLength = 256

// GpioOutput drives a fan via the hardware pwm of a BCM pin,
// using the memory mapped pwm peripheral of the Raspberry Pi.
type GpioOutput struct {
	id        string
	pin       rpio.Pin
	closeOnce sync.Once
	closeErr  error
}

func NewGpioOutput(config configuration.PwmConfig) (*GpioOutput, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("cannot open gpio memory: %w", err)
	}

	pin := rpio.Pin(config.Pin)
	pin.Mode(rpio.Pwm)
	// the pwm clock has to run cycleLength times faster than the
	// desired pwm frequency
	pin.Freq(config.Frequency * cycleLength)
	pin.DutyCycle(0, cycleLength)

	return &GpioOutput{
		id:  fmt.Sprintf("gpio%d", config.Pin),
		pin: pin,
	}, nil
}

func (o *GpioOutput) GetId() string {
	return o.id
}

func (o *GpioOutput) SetDuty(percent float64) error {
	o.pin.DutyCycle(DutyToCycles(percent, cycleLength), cycleLength)
	return nil
}

func (o *GpioOutput) Close() error {
	o.closeOnce.Do(func() {
		o.pin.DutyCycle(0, cycleLength)
		rpio.StopPwm()
		o.closeErr = rpio.Close()
	})
	return o.closeErr
}
