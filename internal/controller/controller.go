package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/control_loop"
	"github.com/brev-dev/PiFan/internal/curves"
	"github.com/brev-dev/PiFan/internal/pwm"
	"github.com/brev-dev/PiFan/internal/sensors"
	"github.com/brev-dev/PiFan/internal/ui"
	"github.com/brev-dev/PiFan/internal/util"
)

type FanController interface {
	// Run starts the control loop and blocks until the context is
	// cancelled or an unrecoverable error occurs. The output is commanded
	// to duty 0 and released on every exit path.
	Run(ctx context.Context) error

	// UpdateDuty advances the loop by one tick.
	UpdateDuty() error

	// Status returns a snapshot of the current controller state.
	Status() Status

	GetStatistics() Statistics
}

// Status is a read-only snapshot of the control loop, safe to hand out
// to the api and statistics collectors.
type Status struct {
	Temperature   float64   `json:"temperature"`
	RawTarget     float64   `json:"rawTarget"`
	CommittedDuty float64   `json:"committedDuty"`
	BoostActive   bool      `json:"boostActive"`
	LastChange    time.Time `json:"lastChange"`
}

type Statistics struct {
	DutyChangeCount    int `json:"dutyChangeCount"`
	SensorFailureCount int `json:"sensorFailureCount"`
}

type fanController struct {
	sensor sensors.Sensor
	curve  curves.SpeedCurve
	output pwm.Output

	policy *control_loop.DutyPolicy
	gate   *control_loop.HysteresisGate
	state  *control_loop.ControllerState

	samplePeriod time.Duration
	tempWindow   *rolling.PointPolicy

	// the time source, replaceable in tests
	now func() time.Time

	mu     sync.Mutex
	status Status
	stats  Statistics
}

func NewFanController(
	sensor sensors.Sensor,
	curve curves.SpeedCurve,
	output pwm.Output,
	config configuration.ControllerConfig,
) FanController {
	now := time.Now
	return &fanController{
		sensor:       sensor,
		curve:        curve,
		output:       output,
		policy:       control_loop.NewDutyPolicy(config.MinDutyPercent, config.BoostDutyPercent, config.BoostDuration),
		gate:         control_loop.NewHysteresisGate(config.DownDelay),
		state:        control_loop.NewControllerState(now()),
		samplePeriod: config.SamplePeriod,
		tempWindow:   util.CreateRollingWindow(config.TempRollingWindowSize),
		now:          now,
	}
}

func (f *fanController) Run(ctx context.Context) error {
	defer f.shutdown()

	ui.Info("Starting controller loop for %s", f.output.GetId())

	// assert a known initial state before the first sample
	if err := f.output.SetDuty(0); err != nil {
		return fmt.Errorf("cannot initialize %s: %w", f.output.GetId(), err)
	}

	tick := time.Tick(f.samplePeriod)
	for {
		if err := f.UpdateDuty(); err != nil {
			ui.Error("Error in controller for %s: %v", f.output.GetId(), err)
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
}

func (f *fanController) UpdateDuty() error {
	now := f.now()

	temp, err := f.sensor.GetValue()
	if err != nil {
		// a transient sensor glitch must not kill cooling,
		// skip this tick and keep the previous duty
		ui.Warning("Unable to read temperature, skipping tick: %v", err)
		f.mu.Lock()
		f.stats.SensorFailureCount++
		f.mu.Unlock()
		return nil
	}

	f.tempWindow.Append(temp)
	avgTemp := util.GetWindowAvg(f.tempWindow)
	f.sensor.SetMovingAvg(avgTemp)

	rawTarget := f.curve.Evaluate(avgTemp)
	adjustedTarget, boostStarted := f.policy.Apply(rawTarget, f.state, now)

	previous := f.state.CommittedDuty
	committed := f.gate.Commit(adjustedTarget, f.state, now)

	if committed != previous {
		switch {
		case boostStarted:
			ui.Info("Fan BOOST → %.1f%% (target %.1f%%) at %.1f°C", committed, rawTarget, temp)
		case committed == 0:
			ui.Info("Fan OFF at %.1f°C", temp)
		default:
			ui.Info("Fan set → %.1f%% (target %.1f%%) at %.1f°C", committed, rawTarget, temp)
		}

		if err := f.output.SetDuty(committed); err != nil {
			// an un-actuatable fan is a safety condition, give up
			// after a best-effort attempt to stop it
			_ = f.output.SetDuty(0)
			return fmt.Errorf("cannot set duty of %s: %w", f.output.GetId(), err)
		}

		f.mu.Lock()
		f.stats.DutyChangeCount++
		f.mu.Unlock()
	}

	f.mu.Lock()
	f.status = Status{
		Temperature:   avgTemp,
		RawTarget:     rawTarget,
		CommittedDuty: committed,
		BoostActive:   f.state.BoostActive(),
		LastChange:    f.state.LastChange,
	}
	f.mu.Unlock()

	return nil
}

func (f *fanController) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fanController) GetStatistics() Statistics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// shutdown commands the fan off and releases the pwm resource.
// Run defers it so that it executes on every exit path.
func (f *fanController) shutdown() {
	if err := f.output.SetDuty(0); err != nil {
		ui.Warning("Unable to stop fan on %s: %v", f.output.GetId(), err)
	} else {
		ui.Info("Fan OFF")
	}

	f.state.CommittedDuty = 0

	if err := f.output.Close(); err != nil {
		ui.Warning("Unable to release %s: %v", f.output.GetId(), err)
	}
}
