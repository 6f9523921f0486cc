package control_loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createGate() *HysteresisGate {
	return NewHysteresisGate(30 * time.Second)
}

func TestGateIncreaseCommitsImmediately(t *testing.T) {
	// GIVEN
	gate := createGate()
	state := NewControllerState(startTime)

	// WHEN
	committed := gate.Commit(40, state, startTime)

	// THEN
	assert.Equal(t, 40.0, committed)
	assert.Equal(t, 40.0, state.CommittedDuty)
	assert.Equal(t, startTime, state.LastChange)
}

func TestGateEqualTargetLeavesStateUntouched(t *testing.T) {
	// GIVEN
	gate := createGate()
	state := NewControllerState(startTime)
	gate.Commit(40, state, startTime)

	// WHEN
	committed := gate.Commit(40, state, startTime.Add(10*time.Second))

	// THEN
	assert.Equal(t, 40.0, committed)
	// LastChange records when the value last changed, not the last commit
	assert.Equal(t, startTime, state.LastChange)
}

func TestGateDecreaseDeferredWithinDownDelay(t *testing.T) {
	// GIVEN
	gate := createGate()
	state := NewControllerState(startTime)
	gate.Commit(40, state, startTime)

	// WHEN
	committed := gate.Commit(20, state, startTime.Add(10*time.Second))

	// THEN
	assert.Equal(t, 40.0, committed)
	assert.Equal(t, 40.0, state.CommittedDuty)
	assert.Equal(t, startTime, state.LastChange)
}

func TestGateDecreaseCommitsAfterDownDelay(t *testing.T) {
	// GIVEN
	gate := createGate()
	state := NewControllerState(startTime)
	gate.Commit(40, state, startTime)

	// WHEN
	now := startTime.Add(30 * time.Second)
	committed := gate.Commit(20, state, now)

	// THEN
	assert.Equal(t, 20.0, committed)
	assert.Equal(t, now, state.LastChange)
}

func TestGateIncreaseNeverDelayed(t *testing.T) {
	// GIVEN
	gate := createGate()
	state := NewControllerState(startTime)
	gate.Commit(20, state, startTime)

	// WHEN
	committed := gate.Commit(40, state, startTime.Add(1*time.Second))

	// THEN
	assert.Equal(t, 40.0, committed)
}

func TestGateNoFlapUnderOscillatingTarget(t *testing.T) {
	// GIVEN
	// a target oscillating around a breakpoint every two seconds
	gate := createGate()
	state := NewControllerState(startTime)

	// WHEN / THEN
	decreases := 0
	now := startTime
	previous := state.CommittedDuty
	for tick := 0; tick < 40; tick++ {
		now = now.Add(2 * time.Second)
		target := 20.0
		if tick%2 == 0 {
			target = 40.0
		}
		committed := gate.Commit(target, state, now)
		if committed < previous {
			decreases++
		}
		previous = committed
	}

	// 80 seconds of oscillation allow at most 80/30 committed decreases
	assert.LessOrEqual(t, decreases, 2)
}
