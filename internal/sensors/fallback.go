package sensors

import (
	"encoding/json"
	"fmt"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/ui"
)

const SensorIdCpu = "cpu"

// FallbackSensor tries an ordered list of temperature sources. Every read
// starts with the primary source again; a source that failed on one tick
// gets a fresh chance on the next.
type FallbackSensor struct {
	Sources []Sensor `json:"sources"`
	movingAvg
}

// NewSensor builds the temperature source chain from the configuration.
func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	var sources []Sensor
	if config.File.Path != "" {
		sources = append(sources, NewFileSensor(config.File))
	}
	if config.Cmd.Exec != "" {
		sources = append(sources, NewCmdSensor(config.Cmd))
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no temperature source configured")
	}

	return &FallbackSensor{
		Sources: sources,
	}, nil
}

func (sensor *FallbackSensor) GetId() string {
	return SensorIdCpu
}

func (sensor *FallbackSensor) GetValue() (float64, error) {
	var lastErr error
	for _, source := range sensor.Sources {
		value, err := source.GetValue()
		if err == nil {
			return value, nil
		}
		ui.Debug("Temperature source %s failed: %v", source.GetId(), err)
		lastErr = err
	}

	return 0, fmt.Errorf("all temperature sources failed: %w", lastErr)
}

func (sensor *FallbackSensor) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"sources":   sensor.Sources,
		"movingAvg": sensor.GetMovingAvg(),
	})
}
