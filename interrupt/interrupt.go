// Package interrupt masks and unmasks interrupts and shares state between
// thread mode and interrupt handlers through critical sections.
//
// Only PRIMASK is used. Masking by priority level (BASEPRI) would need a
// different restore rule and is not provided.
package interrupt

import (
	"omibyte.io/cortexm/internal/cpu"
	"omibyte.io/cortexm/register"
)

// Disable masks all interrupts with configurable priority. Calling it while
// interrupts are already masked has no effect.
func Disable() {
	cpu.DisableIRQ()
	cpu.Barrier()
}

// Enable unmasks interrupts.
//
// Do not call Enable inside a critical section obtained from Free or Do, or
// from code that was handed a state by Save that has not been restored yet.
// Doing so lets handlers run while the section believes it is exclusive.
func Enable() {
	cpu.Barrier()
	cpu.EnableIRQ()
}

// Save snapshots the interrupt mask and then masks interrupts. The snapshot
// must be passed to Restore when the section ends.
func Save() register.Primask {
	state := register.ReadPrimask()
	Disable()
	return state
}

// Restore ends a section started with Save. Interrupts are unmasked only if
// they were unmasked when that Save ran, so the outermost of several nested
// sections is the one that re-enables them.
func Restore(state register.Primask) {
	cpu.Barrier()
	if state.IsActive() {
		cpu.EnableIRQ()
	}
}
