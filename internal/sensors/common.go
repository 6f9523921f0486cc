package sensors

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string

	// GetValue returns the current temperature of this sensor in °C
	GetValue() (float64, error)

	// GetMovingAvg returns the moving average of this sensor's temperature
	GetMovingAvg() float64
	SetMovingAvg(avg float64)
}

func RegisterSensor(sensor Sensor) {
	SensorMap.Set(sensor.GetId(), sensor)
}

// movingAvg holds the smoothed temperature of a sensor. The control loop
// writes it while the statistics scrape and the api read it from their own
// goroutines, so access goes through a lock.
type movingAvg struct {
	mu  sync.RWMutex
	avg float64
}

func (m *movingAvg) GetMovingAvg() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.avg
}

func (m *movingAvg) SetMovingAvg(avg float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.avg = avg
}
