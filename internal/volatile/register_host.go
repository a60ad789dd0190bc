//go:build !tinygo || !cortexm

package volatile

import "sync/atomic"

// sync/atomic has no byte-sized operations. Byte registers are only touched
// from one goroutine in the host model, so plain accesses are enough.

func (r *Register8) Get() uint8 {
	return r.Reg
}

func (r *Register8) Set(value uint8) {
	r.Reg = value
}

func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.Reg)
}

func (r *Register32) Set(value uint32) {
	atomic.StoreUint32(&r.Reg, value)
}
