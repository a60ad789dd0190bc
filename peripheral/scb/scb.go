// Package scb drives the system control block: pending PendSV and SysTick,
// the vector table offset, system reset and system handler priorities.
package scb

import (
	"unsafe"

	"omibyte.io/cortexm/internal/volatile"
	"omibyte.io/cortexm/interrupt"
)

type Registers struct {
	CPUID volatile.Register32
	ICSR  volatile.Register32
	VTOR  volatile.Register32
	AIRCR volatile.Register32
	SCR   volatile.Register32
	CCR   volatile.Register32
	// System Handler Priority, one byte per exception 4..15 (SHPR1-SHPR3)
	SHPR  [12]volatile.Register8
	SHCSR volatile.Register32
	CFSR  volatile.Register32
	HFSR  volatile.Register32
	DFSR  volatile.Register32
	MMFAR volatile.Register32
	BFAR  volatile.Register32
	AFSR  volatile.Register32
	_     [18]uint32
	CPACR volatile.Register32
}

const (
	ICSR_PENDSVSET  = 1 << 28
	ICSR_PENDSVCLR  = 1 << 27
	ICSR_PENDSTSET  = 1 << 26
	ICSR_PENDSTCLR  = 1 << 25
	ICSR_VECTACTIVE = 0x1FF

	AIRCR_VECTKEY     = 0x05FA << 16
	AIRCR_PRIGROUP    = 0x7 << 8
	AIRCR_SYSRESETREQ = 1 << 2

	VTOR_TBLOFF = 0xFFFFFF80
)

// SystemHandler is a system exception with a configurable priority. The
// value is the exception number.
type SystemHandler uint8

const (
	MemoryManagement SystemHandler = 4
	BusFault         SystemHandler = 5
	UsageFault       SystemHandler = 6
	SVCall           SystemHandler = 11
	DebugMonitor     SystemHandler = 12
	PendSV           SystemHandler = 14
	SysTick          SystemHandler = 15
)

func (r *Registers) SetPendSV() {
	writeICSR(&r.ICSR, ICSR_PENDSVSET)
}

func (r *Registers) ClearPendSV() {
	writeICSR(&r.ICSR, ICSR_PENDSVCLR)
}

func (r *Registers) IsPendSVPending() bool {
	return r.ICSR.HasBits(ICSR_PENDSVSET)
}

func (r *Registers) SetPendSysTick() {
	writeICSR(&r.ICSR, ICSR_PENDSTSET)
}

func (r *Registers) ClearPendSysTick() {
	writeICSR(&r.ICSR, ICSR_PENDSTCLR)
}

func (r *Registers) IsPendSysTickPending() bool {
	return r.ICSR.HasBits(ICSR_PENDSTSET)
}

// VectActive returns the exception number of the running handler, or 0 in
// thread mode.
func (r *Registers) VectActive() uint16 {
	return uint16(r.ICSR.Get() & ICSR_VECTACTIVE)
}

func (r *Registers) VectorTable() uint32 {
	return r.VTOR.Get() & VTOR_TBLOFF
}

// SetVectorTable relocates the vector table. The low 7 bits of the address
// are ignored.
func (r *Registers) SetVectorTable(addr uint32) {
	r.VTOR.Set(addr & VTOR_TBLOFF)
}

// SystemReset requests a system reset. The priority grouping is preserved.
func (r *Registers) SystemReset() {
	v := r.AIRCR.Get() & AIRCR_PRIGROUP
	r.AIRCR.Set(AIRCR_VECTKEY | v | AIRCR_SYSRESETREQ)
}

func (r *Registers) Priority(h SystemHandler) uint8 {
	n := uint8(h - 4)
	return r.shpr()[n/4].GetByte(n % 4)
}

// SetPriority sets the priority of a system handler with a word
// read-modify-write inside a critical section, which ARMv6-M requires and
// every other core accepts.
func (r *Registers) SetPriority(h SystemHandler, priority uint8) {
	n := uint8(h - 4)
	interrupt.Do(func(interrupt.CriticalSection) {
		r.shpr()[n/4].SetByte(n%4, priority)
	})
}

func (r *Registers) shpr() *[3]volatile.Register32 {
	return (*[3]volatile.Register32)(unsafe.Pointer(&r.SHPR))
}

// CPUID is a decoded copy of the CPUID base register.
type CPUID uint32

func (c CPUID) Implementer() uint8 { return uint8(c >> 24) }
func (c CPUID) Variant() uint8     { return uint8(c>>20) & 0xF }
func (c CPUID) PartNo() uint16     { return uint16(c>>4) & 0xFFF }
func (c CPUID) Revision() uint8    { return uint8(c) & 0xF }

func (r *Registers) ReadCPUID() CPUID {
	return CPUID(r.CPUID.Get())
}
