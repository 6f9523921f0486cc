package pwm

import (
	"path/filepath"
	"testing"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestDutyToCycles(t *testing.T) {
	// GIVEN
	cycle := uint32(256)

	// WHEN / THEN
	assert.Equal(t, uint32(0), DutyToCycles(0, cycle))
	assert.Equal(t, uint32(256), DutyToCycles(100, cycle))
	assert.Equal(t, uint32(128), DutyToCycles(50, cycle))
	assert.Equal(t, uint32(102), DutyToCycles(40, cycle))
}

func TestDutyToCyclesClampsOutOfRange(t *testing.T) {
	// GIVEN
	cycle := uint32(256)

	// WHEN / THEN
	assert.Equal(t, uint32(0), DutyToCycles(-10, cycle))
	assert.Equal(t, uint32(256), DutyToCycles(120, cycle))
}

func TestFileOutputWritesDuty(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "duty")
	output, err := NewFileOutput(configuration.FilePwmConfig{Path: path})
	assert.NoError(t, err)

	// WHEN
	err = output.SetDuty(40)

	// THEN
	assert.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 40, value)
}

func TestFileOutputCloseResetsDuty(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "duty")
	output, err := NewFileOutput(configuration.FilePwmConfig{Path: path})
	assert.NoError(t, err)
	assert.NoError(t, output.SetDuty(40))

	// WHEN
	err = output.Close()

	// THEN
	assert.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestFileOutputCloseIsIdempotent(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "duty")
	output, err := NewFileOutput(configuration.FilePwmConfig{Path: path})
	assert.NoError(t, err)
	assert.NoError(t, output.SetDuty(40))
	assert.NoError(t, output.Close())
	assert.NoError(t, output.SetDuty(40))

	// WHEN
	err = output.Close()

	// THEN
	// the second close must not write again
	assert.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 40, value)
}

func TestNewOutputUnknownBackend(t *testing.T) {
	// GIVEN
	config := configuration.PwmConfig{Backend: "i2c"}

	// WHEN
	_, err := NewOutput(config)

	// THEN
	assert.Error(t, err)
}
