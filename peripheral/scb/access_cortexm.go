//go:build tinygo && cortexm

package scb

import (
	"unsafe"

	"omibyte.io/cortexm/internal/volatile"
)

var SCB = (*Registers)(unsafe.Pointer(uintptr(0xE000ED00)))

// The set and clear bits of ICSR are write-1 bits handled by the hardware;
// writing 0 to the others has no effect.
func writeICSR(icsr *volatile.Register32, bits uint32) {
	icsr.Set(bits)
}
