package sensors

import (
	"encoding/json"
	"fmt"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/util"
)

const SensorIdFile = "file"

// FileSensor reads integer millidegrees Celsius from a sysfs path,
// like /sys/class/thermal/thermal_zone0/temp.
type FileSensor struct {
	Config configuration.FileSensorConfig `json:"config"`
	movingAvg
}

func NewFileSensor(config configuration.FileSensorConfig) *FileSensor {
	return &FileSensor{
		Config: config,
	}
}

func (sensor *FileSensor) GetId() string {
	return SensorIdFile
}

func (sensor *FileSensor) GetValue() (float64, error) {
	milliDegrees, err := util.ReadIntFromFile(sensor.Config.Path)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}

	return float64(milliDegrees) / 1000.0, nil
}

func (sensor *FileSensor) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"config":    sensor.Config,
		"movingAvg": sensor.GetMovingAvg(),
	})
}
