package configuration

import (
	"errors"
	"fmt"
)

// Validate checks the loaded configuration for errors that would make the
// controller misbehave at runtime. Any error returned here is fatal at
// startup; a validated configuration is never re-checked mid-run.
func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if err := validateCurve(config); err != nil {
		return err
	}
	if err := validateController(config); err != nil {
		return err
	}
	if err := validateSensor(config); err != nil {
		return err
	}
	return validatePwm(config)
}

func validateCurve(config *Configuration) error {
	points := config.Curve.Points

	if len(points) < 2 {
		return fmt.Errorf("curve %s: at least 2 points are required, got %d", config.Curve.ID, len(points))
	}

	for i, point := range points {
		if point.Duty < 0 || point.Duty > 100 {
			return fmt.Errorf("curve %s: duty %.1f at %.1f°C is outside [0..100]", config.Curve.ID, point.Duty, point.Temp)
		}
		if i > 0 && points[i-1].Temp >= point.Temp {
			return fmt.Errorf("curve %s: temperatures must be strictly increasing, %.1f°C is not above %.1f°C",
				config.Curve.ID, point.Temp, points[i-1].Temp)
		}
	}

	return nil
}

func validateController(config *Configuration) error {
	c := config.Controller

	if c.SamplePeriod <= 0 {
		return errors.New("controller: samplePeriod must be > 0")
	}
	if c.MinDutyPercent < 0 || c.MinDutyPercent > 100 {
		return errors.New("controller: minDutyPercent must be in [0..100]")
	}
	if c.BoostDutyPercent < 0 || c.BoostDutyPercent > 100 {
		return errors.New("controller: boostDutyPercent must be in [0..100]")
	}
	if c.BoostDuration < 0 {
		return errors.New("controller: boostDuration must be >= 0")
	}
	if c.DownDelay < 0 {
		return errors.New("controller: downDelay must be >= 0")
	}
	if c.TempRollingWindowSize < 1 {
		return errors.New("controller: tempRollingWindowSize must be >= 1")
	}

	return nil
}

func validateSensor(config *Configuration) error {
	s := config.Sensor

	if s.File.Path == "" && s.Cmd.Exec == "" {
		return errors.New("sensor: at least one temperature source is required, use one of: file | cmd")
	}

	return nil
}

func validatePwm(config *Configuration) error {
	p := config.Pwm

	if p.Frequency <= 0 {
		return errors.New("pwm: frequency must be > 0")
	}

	switch p.Backend {
	case PwmBackendGpio:
		if p.Pin < 0 || p.Pin > 27 {
			return fmt.Errorf("pwm: invalid BCM pin %d", p.Pin)
		}
	case PwmBackendSysfs:
		if p.Sysfs.Chip < 0 || p.Sysfs.Channel < 0 {
			return errors.New("pwm: sysfs chip and channel must be >= 0")
		}
	case PwmBackendFile:
		if p.File.Path == "" {
			return errors.New("pwm: file backend requires a path")
		}
	default:
		return fmt.Errorf("pwm: unknown backend %q, use one of: gpio | sysfs | file", p.Backend)
	}

	return nil
}
