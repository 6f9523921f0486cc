package pwm

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/util"
)

// SysfsOutput drives a fan through the kernel pwm class,
// /sys/class/pwm/pwmchipN/pwmM. Requires a pwm overlay on the Pi.
type SysfsOutput struct {
	id          string
	channelPath string
	periodNs    int
	closeOnce   sync.Once
	closeErr    error
}

func NewSysfsOutput(config configuration.PwmConfig) (*SysfsOutput, error) {
	chipPath := fmt.Sprintf("/sys/class/pwm/pwmchip%d", config.Sysfs.Chip)
	channelPath := filepath.Join(chipPath, fmt.Sprintf("pwm%d", config.Sysfs.Channel))

	if _, err := os.Stat(channelPath); os.IsNotExist(err) {
		err = util.WriteIntToFile(config.Sysfs.Channel, filepath.Join(chipPath, "export"))
		if err != nil {
			return nil, fmt.Errorf("cannot export pwm channel %s: %w", channelPath, err)
		}
	}

	output := &SysfsOutput{
		id:          fmt.Sprintf("pwmchip%d/pwm%d", config.Sysfs.Chip, config.Sysfs.Channel),
		channelPath: channelPath,
		periodNs:    int(1e9) / config.Frequency,
	}

	if err := util.WriteIntToFile(output.periodNs, filepath.Join(channelPath, "period")); err != nil {
		return nil, fmt.Errorf("cannot set pwm period of %s: %w", output.id, err)
	}
	if err := output.SetDuty(0); err != nil {
		return nil, err
	}
	if err := util.WriteIntToFile(1, filepath.Join(channelPath, "enable")); err != nil {
		return nil, fmt.Errorf("cannot enable pwm channel %s: %w", output.id, err)
	}

	return output, nil
}

func (o *SysfsOutput) GetId() string {
	return o.id
}

func (o *SysfsOutput) SetDuty(percent float64) error {
	percent = util.Coerce(percent, 0, 100)
	dutyNs := int(math.Round(percent / 100.0 * float64(o.periodNs)))

	err := util.WriteIntToFile(dutyNs, filepath.Join(o.channelPath, "duty_cycle"))
	if err != nil {
		return fmt.Errorf("cannot set duty cycle of %s: %w", o.id, err)
	}
	return nil
}

func (o *SysfsOutput) Close() error {
	o.closeOnce.Do(func() {
		if err := o.SetDuty(0); err != nil {
			o.closeErr = err
			return
		}
		o.closeErr = util.WriteIntToFile(0, filepath.Join(o.channelPath, "enable"))
	})
	return o.closeErr
}
