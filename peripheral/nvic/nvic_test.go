package nvic

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/cortexm/internal/cpu"
	"omibyte.io/cortexm/interrupt"
	"omibyte.io/cortexm/register"
)

type line uint8

func (l line) Nr() uint8 { return uint8(l) }

func TestLayout(t *testing.T) {
	var r Registers
	tests := []struct {
		name   string
		offset uintptr
		want   uintptr
	}{
		{"ISER", unsafe.Offsetof(r.ISER), 0x000},
		{"ICER", unsafe.Offsetof(r.ICER), 0x080},
		{"ISPR", unsafe.Offsetof(r.ISPR), 0x100},
		{"ICPR", unsafe.Offsetof(r.ICPR), 0x180},
		{"IABR", unsafe.Offsetof(r.IABR), 0x200},
		{"IPR", unsafe.Offsetof(r.IPR), 0x300},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.offset, tc.name)
	}
	assert.Equal(t, uintptr(0x3F0), unsafe.Sizeof(r))
}

func TestEnableDisableIsolation(t *testing.T) {
	for n := 0; n < Lines; n++ {
		r := new(Registers)

		// Every other line on, so both neighbours of n start in a known mix.
		for m := 0; m < Lines; m += 2 {
			r.Enable(line(m))
		}
		before := snapshot(r, r.IsEnabled)

		r.Enable(line(n))
		require.True(t, r.IsEnabled(line(n)), "line %d", n)
		r.Disable(line(n))
		require.False(t, r.IsEnabled(line(n)), "line %d", n)

		after := snapshot(r, r.IsEnabled)
		for m := 0; m < Lines; m++ {
			if m != n {
				require.Equal(t, before[m], after[m], "line %d perturbed by %d", m, n)
			}
		}
	}
}

func TestPendingIsolation(t *testing.T) {
	for n := 0; n < Lines; n++ {
		r := new(Registers)
		for m := 1; m < Lines; m += 3 {
			r.SetPending(line(m))
		}
		before := snapshot(r, r.IsPending)

		r.SetPending(line(n))
		require.True(t, r.IsPending(line(n)), "line %d", n)
		r.ClearPending(line(n))
		require.False(t, r.IsPending(line(n)), "line %d", n)

		after := snapshot(r, r.IsPending)
		for m := 0; m < Lines; m++ {
			if m != n {
				require.Equal(t, before[m], after[m], "line %d perturbed by %d", m, n)
			}
		}
	}
}

func TestEnableLineSeven(t *testing.T) {
	r := new(Registers)
	r.Enable(line(7))

	for n := 0; n < 32; n++ {
		assert.Equal(t, n == 7, r.IsEnabled(line(n)), "line %d", n)
	}
	assert.Equal(t, uint32(1<<7), r.ISER[0].Get())
	assert.False(t, r.IsPending(line(7)))
}

func TestWriteZeroHasNoEffect(t *testing.T) {
	r := new(Registers)
	r.Enable(line(33))

	writeSet(&r.ISER[1], &r.ICER[1], 0)
	writeClear(&r.ISER[1], &r.ICER[1], 0)
	assert.True(t, r.IsEnabled(line(33)))
	assert.Equal(t, uint32(1<<1), r.ISER[1].Get())
}

func TestEnableAndPendingAreIndependent(t *testing.T) {
	r := new(Registers)

	r.SetPending(line(40))
	assert.False(t, r.IsEnabled(line(40)))
	r.Enable(line(40))
	r.ClearPending(line(40))
	assert.True(t, r.IsEnabled(line(40)))
	assert.False(t, r.IsPending(line(40)))
}

func TestIsActive(t *testing.T) {
	r := new(Registers)
	r.setActive(65, true)

	assert.True(t, r.IsActive(line(65)))
	assert.False(t, r.IsActive(line(64)))
	assert.False(t, r.IsActive(line(66)))

	r.setActive(65, false)
	assert.False(t, r.IsActive(line(65)))
}

func TestPriorityRoundTrip(t *testing.T) {
	r := new(Registers)
	for n := 0; n < Lines; n++ {
		for _, p := range []uint8{0x00, 0x01, 0x40, 0x80, 0xC0, 0xFF} {
			r.SetPriority(line(n), p)
			require.Equal(t, p, r.Priority(line(n)), "line %d", n)
		}
	}
}

func TestPriorityWordAccess(t *testing.T) {
	cpu.Reset()
	r := new(Registers)

	r.SetPriority(line(4), 0x40)
	r.SetPriority(line(5), 0x80)
	r.SetPriority(line(7), 0xC0)

	// Same bytes as byte addressing would give (little-endian).
	assert.Equal(t, uint8(0x40), r.IPR[4].Get())
	assert.Equal(t, uint8(0x80), r.IPR[5].Get())
	assert.Equal(t, uint8(0x00), r.IPR[6].Get())
	assert.Equal(t, uint8(0xC0), r.IPR[7].Get())
	assert.Equal(t, uint8(0x00), r.IPR[3].Get())
	assert.Equal(t, uint8(0x00), r.IPR[8].Get())
	assert.Equal(t, uint32(0xC0008040), r.ipr()[1].Get())

	for n := 0; n < Lines; n++ {
		r.SetPriority(line(n), uint8(n*7+3))
	}
	for n := 0; n < Lines; n++ {
		assert.Equal(t, uint8(n*7+3), r.Priority(line(n)), "line %d", n)
		assert.Equal(t, uint8(n*7+3), r.IPR[n].Get(), "line %d", n)
	}
}

func TestSetPriorityRestoresMask(t *testing.T) {
	cpu.Reset()
	r := new(Registers)

	r.SetPriority(line(9), 0x40)
	assert.Equal(t, register.Active, register.ReadPrimask())

	// Called from inside a section, the section stays closed.
	interrupt.Do(func(interrupt.CriticalSection) {
		r.SetPriority(line(10), 0x80)
		assert.Equal(t, register.Inactive, register.ReadPrimask())
	})
	assert.Equal(t, register.Active, register.ReadPrimask())
	assert.Equal(t, uint8(0x40), r.Priority(line(9)))
	assert.Equal(t, uint8(0x80), r.Priority(line(10)))
}

func TestPriorityOutOfRange(t *testing.T) {
	r := new(Registers)

	assert.NotPanics(t, func() { r.SetPriority(line(Lines-1), 0x40) })
	assert.Equal(t, uint8(0x40), r.Priority(line(Lines-1)))

	// Nr() < Lines is the implementer's promise; breaking it panics.
	assert.Panics(t, func() { r.SetPriority(line(250), 0x40) })
	assert.Panics(t, func() { r.Priority(line(Lines)) })
	assert.Equal(t, register.Active, register.ReadPrimask())
}

func snapshot(r *Registers, query func(Nr) bool) []bool {
	out := make([]bool, Lines)
	for m := range out {
		out[m] = query(line(m))
	}
	return out
}
