package samd21

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"omibyte.io/cortexm/peripheral"
	"omibyte.io/cortexm/peripheral/nvic"
	"omibyte.io/cortexm/targets"
)

var _ peripheral.Interrupt = IRQ_PM

func TestInterruptLines(t *testing.T) {
	target, err := targets.All().FindBySeries("samd21")
	assert.NoError(t, err)
	assert.Equal(t, target.Lines, Lines)
	assert.Equal(t, target.PriorityBits, PriorityBits)

	for i := Interrupt(0); i <= IRQ_I2S; i++ {
		assert.Less(t, int(i.Nr()), Lines)
	}
}

func TestEnableIRQ(t *testing.T) {
	t.Cleanup(func() { IRQ_SERCOM2.DisableIRQ() })

	IRQ_SERCOM2.EnableIRQ()
	assert.True(t, nvic.NVIC.IsEnabled(IRQ_SERCOM2))
	assert.False(t, nvic.NVIC.IsEnabled(IRQ_SERCOM1))
	assert.Equal(t, uint32(1<<11), nvic.NVIC.ISER[0].Get()&(1<<11))

	IRQ_SERCOM2.DisableIRQ()
	assert.False(t, nvic.NVIC.IsEnabled(IRQ_SERCOM2))
}

func TestPending(t *testing.T) {
	IRQ_USB.SetPending()
	assert.True(t, nvic.NVIC.IsPending(IRQ_USB))
	IRQ_USB.ClearPending()
	assert.False(t, nvic.NVIC.IsPending(IRQ_USB))
}

func TestSetPriority(t *testing.T) {
	t.Cleanup(func() { IRQ_TC4.SetPriority(0) })

	IRQ_TC4.SetPriority(0xC0)
	assert.Equal(t, uint8(0xC0), nvic.NVIC.Priority(IRQ_TC4))
	assert.Equal(t, uint8(0), nvic.NVIC.Priority(IRQ_TC3))
}

func TestString(t *testing.T) {
	assert.Equal(t, "SERCOM0", IRQ_SERCOM0.String())
	assert.Equal(t, "I2S", IRQ_I2S.String())
	assert.Equal(t, "Interrupt(31)", Interrupt(31).String())
}
