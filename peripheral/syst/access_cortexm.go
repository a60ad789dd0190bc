//go:build tinygo && cortexm

package syst

import (
	"unsafe"

	"omibyte.io/cortexm/internal/volatile"
)

var SYST = (*Registers)(unsafe.Pointer(uintptr(0xE000E010)))

// The hardware clears COUNTFLAG on a read of CSR.
func readCSR(csr *volatile.Register32) uint32 {
	return csr.Get()
}

// Any write to CVR clears it and COUNTFLAG.
func writeCVR(_, cvr *volatile.Register32) {
	cvr.Set(0)
}
