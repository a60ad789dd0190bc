//go:build !tinygo || !cortexm

package scb

import "omibyte.io/cortexm/internal/volatile"

var SCB = new(Registers)

// Host model of the ICSR write-1 bits: a clear bit drops the matching set bit
// and never reads back itself.
func writeICSR(icsr *volatile.Register32, bits uint32) {
	v := icsr.Get()
	v |= bits & (ICSR_PENDSVSET | ICSR_PENDSTSET)
	if bits&ICSR_PENDSVCLR != 0 {
		v &^= ICSR_PENDSVSET
	}
	if bits&ICSR_PENDSTCLR != 0 {
		v &^= ICSR_PENDSTSET
	}
	icsr.Set(v)
}
