//go:build !tinygo || !cortexm

package nvic

import "omibyte.io/cortexm/internal/volatile"

var NVIC = new(Registers)

// In ordinary memory nothing couples a set/clear pair, so both registers
// are kept holding the shared state, which is what either one reads back as
// on hardware.

func writeSet(set, clr *volatile.Register32, mask uint32) {
	v := set.Get() | mask
	set.Set(v)
	clr.Set(v)
}

func writeClear(set, clr *volatile.Register32, mask uint32) {
	v := clr.Get() &^ mask
	set.Set(v)
	clr.Set(v)
}

// setActive stands in for the hardware marking a handler active.
func (r *Registers) setActive(nr uint8, active bool) {
	w, mask := bit(nr)
	if active {
		r.IABR[w].SetBits(mask)
	} else {
		r.IABR[w].ClearBits(mask)
	}
}
