package sensors

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/util"
)

const SensorIdCmd = "cmd"

// output format of "vcgencmd measure_temp": temp=47.8'C
var cmdTempPattern = regexp.MustCompile(`temp=([0-9]+(?:\.[0-9]+)?)'C`)

// CmdSensor invokes an external measurement command and parses the
// temperature from its output.
type CmdSensor struct {
	Config configuration.CmdSensorConfig `json:"config"`
	movingAvg
}

func NewCmdSensor(config configuration.CmdSensorConfig) *CmdSensor {
	return &CmdSensor{
		Config: config,
	}
}

func (sensor *CmdSensor) GetId() string {
	return SensorIdCmd
}

func (sensor *CmdSensor) GetValue() (float64, error) {
	timeout := 2 * time.Second
	result, err := util.SafeCmdExecution(sensor.Config.Exec, sensor.Config.Args, timeout)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %s", sensor.GetId(), err.Error())
	}

	return ParseCmdTemperature(result)
}

func (sensor *CmdSensor) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"config":    sensor.Config,
		"movingAvg": sensor.GetMovingAvg(),
	})
}

// ParseCmdTemperature extracts the °C value from a "temp=NN.N'C" string.
func ParseCmdTemperature(output string) (float64, error) {
	match := cmdTempPattern.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("unexpected temperature output: %q", output)
	}

	return strconv.ParseFloat(match[1], 64)
}
