package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Configuration {
	return Configuration{
		Curve: CurveConfig{
			ID: "cpu",
			Points: CurvePoints{
				{Temp: 65, Duty: 0},
				{Temp: 68, Duty: 20},
				{Temp: 75, Duty: 40},
			},
		},
		Controller: ControllerConfig{
			SamplePeriod:          2 * time.Second,
			MinDutyPercent:        10,
			BoostDutyPercent:      40,
			BoostDuration:         1 * time.Second,
			DownDelay:             30 * time.Second,
			TempRollingWindowSize: 1,
		},
		Sensor: SensorConfig{
			File: FileSensorConfig{Path: "/sys/class/thermal/thermal_zone0/temp"},
			Cmd:  CmdSensorConfig{Exec: "/usr/bin/vcgencmd", Args: []string{"measure_temp"}},
		},
		Pwm: PwmConfig{
			Backend:   PwmBackendGpio,
			Pin:       12,
			Frequency: 25000,
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	// GIVEN
	config := validConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateCurveTooFewPoints(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Curve.Points = CurvePoints{{Temp: 65, Duty: 0}}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 points")
}

func TestValidateCurveNonIncreasingTemperatures(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Curve.Points = CurvePoints{
		{Temp: 65, Duty: 0},
		{Temp: 65, Duty: 20},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestValidateCurveDutyOutOfRange(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Curve.Points = CurvePoints{
		{Temp: 65, Duty: 0},
		{Temp: 75, Duty: 120},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateSamplePeriod(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Controller.SamplePeriod = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateNoSensorSource(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Sensor = SensorConfig{}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateUnknownPwmBackend(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Pwm.Backend = "i2c"

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateInvalidPin(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Pwm.Pin = 54

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateFileBackendRequiresPath(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Pwm.Backend = PwmBackendFile

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}
