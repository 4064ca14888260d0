//go:build !windows

package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputsim/input"
	"github.com/Alia5/inputsim/vk"
)

func TestSystemDispatcherUnsupported(t *testing.T) {
	var traced []byte
	d := input.NewSystemDispatcher(input.WithTrace(func(b []byte) { traced = b }))

	err := d.Dispatch(input.NewBuilder(nil).AddKeyPress(vk.A).Records())
	assert.ErrorIs(t, err, input.ErrUnsupported)
	assert.Len(t, traced, 2*input.NativeLayout.RecordSize())
	assert.Equal(t, uint16(0), input.SystemScanCodes(vk.A))
}
