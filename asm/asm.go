// Package asm wraps the Cortex-M hint and barrier instructions that have no
// side effects beyond the processor itself.
package asm

import "omibyte.io/cortexm/internal/cpu"

// Nop does nothing for one instruction.
func Nop() {
	cpu.Nop()
}

// Wfi sleeps until an interrupt is pending. With interrupts masked the core
// still wakes, and the handler runs once the mask is lifted.
func Wfi() {
	cpu.WaitForInterrupt()
}

// Wfe sleeps until an event, unless the event register is already set, in
// which case it clears it and returns.
func Wfe() {
	cpu.WaitForEvent()
}

// Sev signals an event, setting the event register.
func Sev() {
	cpu.SendEvent()
}

// Bkpt halts at a breakpoint. Without a debugger attached this escalates to
// a HardFault.
func Bkpt() {
	cpu.Breakpoint()
}

// Delay spins for at least n cycles.
func Delay(n uint32) {
	for ; n > 0; n-- {
		cpu.Nop()
	}
}

// Isb flushes the pipeline.
func Isb() {
	cpu.InstructionBarrier()
}

// Dsb completes all outstanding memory accesses before continuing.
func Dsb() {
	cpu.DataSyncBarrier()
}

// Dmb orders memory accesses before and after it.
func Dmb() {
	cpu.Barrier()
}
