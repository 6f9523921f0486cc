package configuration

import (
	"os"
	"time"

	"github.com/brev-dev/PiFan/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	Curve      CurveConfig      `json:"curve"`
	Controller ControllerConfig `json:"controller"`
	Sensor     SensorConfig     `json:"sensor"`
	Pwm        PwmConfig        `json:"pwm"`
	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("pifan")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/pifan/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

// The default values mirror the tunables the controller originally
// shipped with, so pifan runs without any config file at all.
func setDefaultValues() {
	viper.SetDefault("curve.id", "cpu")
	viper.SetDefault("curve.points", map[int]float64{
		65: 0,
		68: 20,
		75: 40,
	})

	viper.SetDefault("controller.samplePeriod", 2*time.Second)
	viper.SetDefault("controller.minDutyPercent", 10.0)
	viper.SetDefault("controller.boostDutyPercent", 40.0)
	viper.SetDefault("controller.boostDuration", 1*time.Second)
	viper.SetDefault("controller.downDelay", 30*time.Second)
	viper.SetDefault("controller.tempRollingWindowSize", 1)

	viper.SetDefault("sensor.file.path", "/sys/class/thermal/thermal_zone0/temp")
	viper.SetDefault("sensor.cmd.exec", "/usr/bin/vcgencmd")
	viper.SetDefault("sensor.cmd.args", []string{"measure_temp"})

	viper.SetDefault("pwm.backend", PwmBackendGpio)
	viper.SetDefault("pwm.pin", 12)
	viper.SetDefault("pwm.frequency", 25000)
	viper.SetDefault("pwm.sysfs.chip", 0)
	viper.SetDefault("pwm.sysfs.channel", 0)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9191)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9192)
}

// DetectConfigFile detects the path of the first existing config file.
// Since all tunables have defaults, a missing config file is fine.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			ui.FatalWithoutStacktrace("Error reading config file: %v", err)
		}
	}
	return viper.ConfigFileUsed()
}

func DetectAndReadConfigFile() string {
	return DetectConfigFile()
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		curvePointsHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
