package control_loop

import (
	"math"
	"time"
)

// DutyPolicy turns the raw curve target into the duty the controller should
// aim for, applying the minimum-duty cutoff and the spin-up boost.
type DutyPolicy struct {
	// nonzero targets below this duty are treated as "off" instead of
	// stalling the fan at an unsustainable speed
	minDuty float64
	// duty held while a boost episode is active
	boostDuty float64
	// duration of a boost episode
	boostFor time.Duration
}

func NewDutyPolicy(minDuty float64, boostDuty float64, boostFor time.Duration) *DutyPolicy {
	return &DutyPolicy{
		minDuty:   minDuty,
		boostDuty: boostDuty,
		boostFor:  boostFor,
	}
}

// Apply maps the raw curve target to the policy-adjusted target.
//
// A boost episode starts when a stopped fan (committed duty 0) receives a
// nonzero adjusted target. While the episode is active the boost duty acts
// as a floor on the target; a curve target above the boost duty wins. The
// episode deadline lives in the state and is set and cleared here.
func (p *DutyPolicy) Apply(rawTarget float64, state *ControllerState, now time.Time) (adjustedTarget float64, boostStarted bool) {
	adjustedTarget = rawTarget
	if adjustedTarget > 0 && adjustedTarget < p.minDuty {
		adjustedTarget = 0
	}

	// clear an expired boost episode
	if state.BoostActive() && !now.Before(state.BoostUntil) {
		state.BoostUntil = time.Time{}
	}

	// a fresh zero→nonzero transition while a boost is active is impossible,
	// the committed duty is already nonzero then
	if !state.BoostActive() && state.CommittedDuty == 0 && adjustedTarget > 0 {
		state.BoostUntil = now.Add(p.boostFor)
		boostStarted = true
	}

	if state.BoostActive() {
		adjustedTarget = math.Max(adjustedTarget, p.boostDuty)
	}

	return adjustedTarget, boostStarted
}
