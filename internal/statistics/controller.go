package statistics

import (
	"github.com/brev-dev/PiFan/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controller controller.FanController

	committedDuty      *prometheus.Desc
	rawTarget          *prometheus.Desc
	boostActive        *prometheus.Desc
	dutyChangeCount    *prometheus.Desc
	sensorFailureCount *prometheus.Desc
}

func NewControllerCollector(ctrl controller.FanController) *ControllerCollector {
	return &ControllerCollector{
		controller: ctrl,
		committedDuty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "committed_duty_percent"),
			"Duty cycle currently asserted on hardware",
			nil, nil,
		),
		rawTarget: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "raw_target_percent"),
			"Curve-derived target duty cycle before policy adjustments",
			nil, nil,
		),
		boostActive: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "boost_active"),
			"Whether a spin-up boost episode is currently active",
			nil, nil,
		),
		dutyChangeCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "duty_change_count"),
			"Counter for committed duty cycle changes",
			nil, nil,
		),
		sensorFailureCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "sensor_failure_count"),
			"Counter for ticks skipped because all temperature sources failed",
			nil, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.committedDuty
	ch <- collector.rawTarget
	ch <- collector.boostActive
	ch <- collector.dutyChangeCount
	ch <- collector.sensorFailureCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	status := collector.controller.Status()
	stats := collector.controller.GetStatistics()

	boost := 0.0
	if status.BoostActive {
		boost = 1.0
	}

	ch <- prometheus.MustNewConstMetric(collector.committedDuty, prometheus.GaugeValue, status.CommittedDuty)
	ch <- prometheus.MustNewConstMetric(collector.rawTarget, prometheus.GaugeValue, status.RawTarget)
	ch <- prometheus.MustNewConstMetric(collector.boostActive, prometheus.GaugeValue, boost)
	ch <- prometheus.MustNewConstMetric(collector.dutyChangeCount, prometheus.CounterValue, float64(stats.DutyChangeCount))
	ch <- prometheus.MustNewConstMetric(collector.sensorFailureCount, prometheus.CounterValue, float64(stats.SensorFailureCount))
}
