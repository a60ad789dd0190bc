//go:build !tinygo || !cortexm

package cpu

import "sync/atomic"

// Simulated special registers. Reset values match a Cortex-M out of reset:
// interrupts enabled, privileged thread mode on MSP.
var (
	primask atomic.Uint32
	control atomic.Uint32
	apsr    atomic.Uint32
	psplim  atomic.Uint32

	fence atomic.Uint32

	// event is the event register set by SEV and consumed by WFE.
	event       atomic.Bool
	sleeps      atomic.Uint32
	breakpoints atomic.Uint32
)

func ReadPRIMASK() uint32 {
	return primask.Load()
}

func DisableIRQ() {
	primask.Store(PRIMASK_PM)
}

func EnableIRQ() {
	primask.Store(0)
}

// Barrier is a sequentially consistent read-modify-write, which the Go memory
// model does not let loads or stores move across.
func Barrier() {
	fence.Add(1)
}

func ReadCONTROL() uint32 {
	return control.Load()
}

func WriteCONTROL(value uint32) {
	control.Store(value)
	Barrier()
}

func ReadAPSR() uint32 {
	return apsr.Load()
}

func WriteAPSR(value uint32) {
	// Only the N, Z, C, V and Q flags are writable.
	apsr.Store(value & 0xF8000000)
}

func ReadPSPLIM() uint32 {
	return psplim.Load()
}

func WritePSPLIM(value uint32) {
	// The limit is doubleword aligned; bits [2:0] read as zero.
	psplim.Store(value &^ 0x7)
}

func Nop() {}

// WaitForInterrupt returns at once: nothing else runs on the host that could
// be waited for.
func WaitForInterrupt() {
	sleeps.Add(1)
}

// WaitForEvent consumes the event register if it is set and otherwise counts
// as a sleep that was woken straight away.
func WaitForEvent() {
	if !event.Swap(false) {
		sleeps.Add(1)
	}
}

func SendEvent() {
	event.Store(true)
}

func Breakpoint() {
	breakpoints.Add(1)
}

func InstructionBarrier() {
	Barrier()
}

func DataSyncBarrier() {
	Barrier()
}

// Sleeps returns how often the simulated processor went to sleep.
func Sleeps() uint32 {
	return sleeps.Load()
}

// Breakpoints returns how many breakpoints the simulated processor hit.
func Breakpoints() uint32 {
	return breakpoints.Load()
}

// Reset puts the simulated processor back into its reset state.
func Reset() {
	primask.Store(0)
	control.Store(0)
	apsr.Store(0)
	psplim.Store(0)
	event.Store(false)
	sleeps.Store(0)
	breakpoints.Store(0)
}
