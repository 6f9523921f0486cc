//go:build !linux

package pwm

import (
	"errors"

	"github.com/brev-dev/PiFan/internal/configuration"
)

// GpioOutput is not available on non-Linux platforms.
type GpioOutput struct{}

func NewGpioOutput(config configuration.PwmConfig) (*GpioOutput, error) {
	return nil, errors.New("pwm: gpio backend is not supported on this platform (requires Linux)")
}

func (o *GpioOutput) GetId() string {
	return "gpio"
}

func (o *GpioOutput) SetDuty(percent float64) error {
	return errors.New("pwm: not supported")
}

func (o *GpioOutput) Close() error {
	return nil
}
