package configuration

type SensorConfig struct {
	File FileSensorConfig `json:"file"`
	Cmd  CmdSensorConfig  `json:"cmd"`
}

// FileSensorConfig reads integer millidegrees Celsius from a sysfs path.
// An empty path disables this source.
type FileSensorConfig struct {
	Path string `json:"path"`
}

// CmdSensorConfig invokes an external command (vcgencmd style) and
// parses its "temp=NN.N'C" output. An empty exec disables this source.
type CmdSensorConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
