//go:build tinygo && cortexm

package nvic

import (
	"unsafe"

	"omibyte.io/cortexm/internal/volatile"
)

var NVIC = (*Registers)(unsafe.Pointer(uintptr(0xE000E100)))

// The hardware couples each set/clear pair itself: a 1 written to either
// register changes the shared state, a 0 is ignored.

func writeSet(set, _ *volatile.Register32, mask uint32) {
	set.Set(mask)
}

func writeClear(_, clr *volatile.Register32, mask uint32) {
	clr.Set(mask)
}
