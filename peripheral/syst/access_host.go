//go:build !tinygo || !cortexm

package syst

import "omibyte.io/cortexm/internal/volatile"

var SYST = new(Registers)

func readCSR(csr *volatile.Register32) uint32 {
	v := csr.Get()
	csr.Set(v &^ CSR_COUNTFLAG)
	return v
}

func writeCVR(csr, cvr *volatile.Register32) {
	cvr.Set(0)
	csr.ClearBits(CSR_COUNTFLAG)
}

// tick stands in for the counter advancing by one clock.
func (r *Registers) tick() {
	if !r.CSR.HasBits(CSR_ENABLE) {
		return
	}
	v := r.CVR.Get()
	switch v {
	case 0:
		r.CVR.Set(r.RVR.Get())
	case 1:
		r.CVR.Set(0)
		r.CSR.SetBits(CSR_COUNTFLAG)
	default:
		r.CVR.Set(v - 1)
	}
}
