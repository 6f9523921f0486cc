package sensors

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/stretchr/testify/assert"
)

type scriptedSensor struct {
	id    string
	value float64
	err   error
	calls int
}

func (s *scriptedSensor) GetId() string {
	return s.id
}

func (s *scriptedSensor) GetValue() (float64, error) {
	s.calls++
	return s.value, s.err
}

func (s *scriptedSensor) GetMovingAvg() float64 {
	return s.value
}

func (s *scriptedSensor) SetMovingAvg(avg float64) {
}

func TestFileSensorReadsMillidegrees(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte("48250\n"), 0644)
	assert.NoError(t, err)
	sensor := NewFileSensor(configuration.FileSensorConfig{Path: path})

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 48.25, value)
}

func TestFileSensorMissingFile(t *testing.T) {
	// GIVEN
	sensor := NewFileSensor(configuration.FileSensorConfig{Path: "/nonexistent/temp"})

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestParseCmdTemperature(t *testing.T) {
	// GIVEN
	output := "temp=47.8'C"

	// WHEN
	value, err := ParseCmdTemperature(output)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 47.8, value)
}

func TestParseCmdTemperatureWithoutFraction(t *testing.T) {
	// GIVEN
	output := "temp=47'C"

	// WHEN
	value, err := ParseCmdTemperature(output)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 47.0, value)
}

func TestParseCmdTemperatureGarbage(t *testing.T) {
	// GIVEN
	output := "VCHI initialization failed"

	// WHEN
	_, err := ParseCmdTemperature(output)

	// THEN
	assert.Error(t, err)
}

func TestFallbackSensorUsesPrimary(t *testing.T) {
	// GIVEN
	primary := &scriptedSensor{id: "primary", value: 50}
	secondary := &scriptedSensor{id: "secondary", value: 60}
	sensor := &FallbackSensor{Sources: []Sensor{primary, secondary}}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 50.0, value)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackSensorFallsBack(t *testing.T) {
	// GIVEN
	primary := &scriptedSensor{id: "primary", err: errors.New("no such file")}
	secondary := &scriptedSensor{id: "secondary", value: 60}
	sensor := &FallbackSensor{Sources: []Sensor{primary, secondary}}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 60.0, value)
}

func TestFallbackSensorRetriesPrimaryEachRead(t *testing.T) {
	// GIVEN
	primary := &scriptedSensor{id: "primary", err: errors.New("no such file")}
	secondary := &scriptedSensor{id: "secondary", value: 60}
	sensor := &FallbackSensor{Sources: []Sensor{primary, secondary}}

	// WHEN
	_, _ = sensor.GetValue()
	_, _ = sensor.GetValue()

	// THEN
	assert.Equal(t, 2, primary.calls)
}

func TestFallbackSensorAllSourcesFail(t *testing.T) {
	// GIVEN
	primary := &scriptedSensor{id: "primary", err: errors.New("no such file")}
	secondary := &scriptedSensor{id: "secondary", err: errors.New("exec failed")}
	sensor := &FallbackSensor{Sources: []Sensor{primary, secondary}}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestMovingAvgConcurrentAccess(t *testing.T) {
	// GIVEN
	// the control loop writes the moving average while the statistics
	// scrape reads it from its own goroutine
	sensor := NewFileSensor(configuration.FileSensorConfig{Path: "/sys/class/thermal/thermal_zone0/temp"})
	var wg sync.WaitGroup

	// WHEN
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j <= 999; j++ {
				sensor.SetMovingAvg(float64(j))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j <= 999; j++ {
				_ = sensor.GetMovingAvg()
			}
		}()
	}
	wg.Wait()

	// THEN
	// every writer ends on the same value, so the last write wins
	assert.Equal(t, 999.0, sensor.GetMovingAvg())
}

func TestSensorJsonIncludesMovingAvg(t *testing.T) {
	// GIVEN
	sensor := NewFileSensor(configuration.FileSensorConfig{Path: "/some/path"})
	sensor.SetMovingAvg(48.25)

	// WHEN
	data, err := json.Marshal(sensor)

	// THEN
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"movingAvg":48.25`)
	assert.Contains(t, string(data), `"/some/path"`)
}

func TestNewSensorRequiresASource(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{}

	// WHEN
	_, err := NewSensor(config)

	// THEN
	assert.Error(t, err)
}
