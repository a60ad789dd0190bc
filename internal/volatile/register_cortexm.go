//go:build tinygo && cortexm

package volatile

import "runtime/volatile"

func (r *Register8) Get() uint8 {
	return volatile.LoadUint8(&r.Reg)
}

func (r *Register8) Set(value uint8) {
	volatile.StoreUint8(&r.Reg, value)
}

func (r *Register32) Get() uint32 {
	return volatile.LoadUint32(&r.Reg)
}

func (r *Register32) Set(value uint32) {
	volatile.StoreUint32(&r.Reg, value)
}
