package control_loop

import "time"

// ControllerState is the single mutable state of a control loop. It has
// exactly one writer (the loop goroutine) and is only ever passed by pointer
// through DutyPolicy and HysteresisGate.
type ControllerState struct {
	// CommittedDuty is the duty percentage last actually asserted on
	// hardware, always in [0..100].
	CommittedDuty float64
	// LastChange is the time CommittedDuty last changed value.
	LastChange time.Time
	// BoostUntil is the deadline of the active boost episode,
	// zero when no boost is active.
	BoostUntil time.Time
}

func NewControllerState(start time.Time) *ControllerState {
	return &ControllerState{
		CommittedDuty: 0,
		LastChange:    start,
	}
}

func (s *ControllerState) BoostActive() bool {
	return !s.BoostUntil.IsZero()
}
