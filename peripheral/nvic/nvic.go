package nvic

import (
	"unsafe"

	"omibyte.io/cortexm/internal/volatile"
	"omibyte.io/cortexm/interrupt"
)

func bit(nr uint8) (word uint8, mask uint32) {
	return nr >> 5, 1 << (nr & 0x1F)
}

// Enable enables the interrupt line.
func (r *Registers) Enable(i Nr) {
	w, mask := bit(i.Nr())
	writeSet(&r.ISER[w], &r.ICER[w], mask)
}

// Disable disables the interrupt line.
func (r *Registers) Disable(i Nr) {
	w, mask := bit(i.Nr())
	writeClear(&r.ISER[w], &r.ICER[w], mask)
}

// SetPending forces the line into the pending state.
func (r *Registers) SetPending(i Nr) {
	w, mask := bit(i.Nr())
	writeSet(&r.ISPR[w], &r.ICPR[w], mask)
}

// ClearPending removes the pending state of the line.
func (r *Registers) ClearPending(i Nr) {
	w, mask := bit(i.Nr())
	writeClear(&r.ISPR[w], &r.ICPR[w], mask)
}

func (r *Registers) IsEnabled(i Nr) bool {
	w, mask := bit(i.Nr())
	return r.ISER[w].Get()&mask == mask
}

func (r *Registers) IsPending(i Nr) bool {
	w, mask := bit(i.Nr())
	return r.ISPR[w].Get()&mask == mask
}

// IsActive reports whether the line's handler is running or preempted and
// stacked.
func (r *Registers) IsActive(i Nr) bool {
	w, mask := bit(i.Nr())
	return r.IABR[w].Get()&mask == mask
}

// Priority returns the priority byte of the line. Unimplemented low-order
// bits read as zero on hardware.
func (r *Registers) Priority(i Nr) uint8 {
	nr := i.Nr()
	return r.ipr()[nr/4].GetByte(nr % 4)
}

// SetPriority sets the priority byte of the line.
//
// ARMv6-M only allows word accesses to the priority registers, so every core
// gets a read-modify-write of the word holding four lines. It runs in a
// critical section so a handler updating a neighbouring line is not lost.
func (r *Registers) SetPriority(i Nr, priority uint8) {
	nr := i.Nr()
	interrupt.Do(func(interrupt.CriticalSection) {
		r.ipr()[nr/4].SetByte(nr%4, priority)
	})
}

// ipr views the priority bank as 32-bit words, four priorities per word.
func (r *Registers) ipr() *[Lines / 4]volatile.Register32 {
	return (*[Lines / 4]volatile.Register32)(unsafe.Pointer(&r.IPR))
}
