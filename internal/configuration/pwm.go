package configuration

const (
	PwmBackendGpio  = "gpio"
	PwmBackendSysfs = "sysfs"
	PwmBackendFile  = "file"
)

type PwmConfig struct {
	// Backend selects the pwm output implementation, one of: gpio | sysfs | file
	Backend string `json:"backend"`
	// Pin is the BCM pin number driving the fan (gpio backend)
	Pin int `json:"pin"`
	// Frequency is the pwm frequency in Hz
	Frequency int `json:"frequency"`

	Sysfs SysfsPwmConfig `json:"sysfs"`
	File  FilePwmConfig  `json:"file"`
}

// SysfsPwmConfig addresses a channel of a /sys/class/pwm pwmchip.
type SysfsPwmConfig struct {
	Chip    int `json:"chip"`
	Channel int `json:"channel"`
}

// FilePwmConfig writes the duty percentage to an arbitrary file,
// mainly useful for testing and for piping into other tooling.
type FilePwmConfig struct {
	Path string `json:"path"`
}
