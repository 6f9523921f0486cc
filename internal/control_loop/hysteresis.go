package control_loop

import "time"

// HysteresisGate rate-limits duty decreases. Increases commit immediately
// for thermal safety; a decrease only commits once the committed duty has
// held its value for at least the configured down delay. This prevents the
// fan from flapping when the temperature hovers around a curve breakpoint.
type HysteresisGate struct {
	downDelay time.Duration
}

func NewHysteresisGate(downDelay time.Duration) *HysteresisGate {
	return &HysteresisGate{
		downDelay: downDelay,
	}
}

// Commit applies the adjusted target to the state and returns the new
// committed duty. A deferred decrease leaves the state untouched; the
// next tick re-evaluates against the same baseline and timer.
func (g *HysteresisGate) Commit(adjustedTarget float64, state *ControllerState, now time.Time) float64 {
	if adjustedTarget == state.CommittedDuty {
		return state.CommittedDuty
	}

	if adjustedTarget < state.CommittedDuty {
		if now.Sub(state.LastChange) < g.downDelay {
			// too soon to reduce, keep the current duty
			return state.CommittedDuty
		}
	}

	state.CommittedDuty = adjustedTarget
	state.LastChange = now
	return state.CommittedDuty
}
