package pwm

import (
	"fmt"
	"math"
	"sync"

	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/util"
)

// FileOutput writes the duty percentage to a regular file. Useful for
// bench testing and for piping the duty into other tooling.
type FileOutput struct {
	path      string
	closeOnce sync.Once
	closeErr  error
}

func NewFileOutput(config configuration.FilePwmConfig) (*FileOutput, error) {
	output := &FileOutput{
		path: config.Path,
	}
	if err := output.SetDuty(0); err != nil {
		return nil, err
	}
	return output, nil
}

func (o *FileOutput) GetId() string {
	return "file"
}

func (o *FileOutput) SetDuty(percent float64) error {
	percent = util.Coerce(percent, 0, 100)
	err := util.WriteIntToFileAtomic(int(math.Round(percent)), o.path)
	if err != nil {
		return fmt.Errorf("cannot write duty to %s: %w", o.path, err)
	}
	return nil
}

func (o *FileOutput) Close() error {
	o.closeOnce.Do(func() {
		o.closeErr = o.SetDuty(0)
	})
	return o.closeErr
}
