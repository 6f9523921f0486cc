package pwm

// FakeOutput is a test double that records every duty command.
type FakeOutput struct {
	// Duties contains all duty percentages passed to SetDuty, in order.
	Duties []float64

	// CloseCount tracks how often Close was called.
	CloseCount int

	// SetDutyError, if set, will be returned by SetDuty.
	SetDutyError error
}

func NewFakeOutput() *FakeOutput {
	return &FakeOutput{}
}

func (o *FakeOutput) GetId() string {
	return "fake"
}

func (o *FakeOutput) SetDuty(percent float64) error {
	if o.SetDutyError != nil {
		return o.SetDutyError
	}
	o.Duties = append(o.Duties, percent)
	return nil
}

func (o *FakeOutput) Close() error {
	o.CloseCount++
	return nil
}

// LastDuty returns the most recently commanded duty, or 0 if none.
func (o *FakeOutput) LastDuty() float64 {
	if len(o.Duties) == 0 {
		return 0
	}
	return o.Duties[len(o.Duties)-1]
}
