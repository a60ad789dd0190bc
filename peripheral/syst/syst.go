// Package syst drives the SysTick timer, a 24-bit down counter that raises
// the SysTick exception when it wraps.
package syst

import "omibyte.io/cortexm/internal/volatile"

type Registers struct {
	// Control and Status
	CSR volatile.Register32
	// Reload Value
	RVR volatile.Register32
	// Current Value
	CVR volatile.Register32
	// Calibration Value, read-only
	CALIB volatile.Register32
}

const (
	CSR_ENABLE    = 1 << 0
	CSR_TICKINT   = 1 << 1
	CSR_CLKSOURCE = 1 << 2
	CSR_COUNTFLAG = 1 << 16

	CALIB_TENMS = 0x00FFFFFF
	CALIB_SKEW  = 1 << 30
	CALIB_NOREF = 1 << 31

	// MaxReload is the largest value the 24-bit counter holds.
	MaxReload = 0x00FFFFFF
)

// ClockSource selects what the counter counts.
type ClockSource uint8

const (
	// External is the implementation defined reference clock.
	External ClockSource = iota
	// Core is the processor clock.
	Core
)

func (r *Registers) EnableCounter() {
	r.CSR.SetBits(CSR_ENABLE)
}

func (r *Registers) DisableCounter() {
	r.CSR.ClearBits(CSR_ENABLE)
}

func (r *Registers) IsCounterEnabled() bool {
	return r.CSR.HasBits(CSR_ENABLE)
}

// EnableInterrupt makes the counter pend the SysTick exception when it
// reaches zero.
func (r *Registers) EnableInterrupt() {
	r.CSR.SetBits(CSR_TICKINT)
}

func (r *Registers) DisableInterrupt() {
	r.CSR.ClearBits(CSR_TICKINT)
}

func (r *Registers) IsInterruptEnabled() bool {
	return r.CSR.HasBits(CSR_TICKINT)
}

func (r *Registers) SetClockSource(source ClockSource) {
	if source == Core {
		r.CSR.SetBits(CSR_CLKSOURCE)
	} else {
		r.CSR.ClearBits(CSR_CLKSOURCE)
	}
}

func (r *Registers) ClockSource() ClockSource {
	if r.CSR.HasBits(CSR_CLKSOURCE) {
		return Core
	}
	return External
}

// HasWrapped reports whether the counter reached zero since the last call.
// Reading clears the flag.
func (r *Registers) HasWrapped() bool {
	return readCSR(&r.CSR)&CSR_COUNTFLAG != 0
}

// SetReload sets the value loaded when the counter wraps. Only the low 24
// bits are kept.
func (r *Registers) SetReload(value uint32) {
	r.RVR.Set(value & MaxReload)
}

func (r *Registers) Reload() uint32 {
	return r.RVR.Get() & MaxReload
}

// ClearCurrent zeroes the counter and the wrap flag. The counter reloads on
// its next tick.
func (r *Registers) ClearCurrent() {
	writeCVR(&r.CSR, &r.CVR)
}

func (r *Registers) Current() uint32 {
	return r.CVR.Get() & MaxReload
}

// TenMs returns the reload value for a 10ms period, or 0 if unknown.
func (r *Registers) TenMs() uint32 {
	return r.CALIB.Get() & CALIB_TENMS
}

// HasReferenceClock reports whether the External clock source exists.
func (r *Registers) HasReferenceClock() bool {
	return !r.CALIB.HasBits(CALIB_NOREF)
}

// IsPrecise reports whether TenMs is exact.
func (r *Registers) IsPrecise() bool {
	return !r.CALIB.HasBits(CALIB_SKEW)
}
