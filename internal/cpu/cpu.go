// Package cpu issues the raw processor instructions the rest of the module is
// built on: reads and writes of the special registers, the global interrupt
// mask and the memory barrier.
//
// On a Cortex-M target built with TinyGo these are single instructions. Every
// other build gets a simulated processor whose special registers are plain
// words, which is what the tests run against.
package cpu

const (
	// PRIMASK bit 0 set means configurable-priority exceptions are masked.
	PRIMASK_PM = 1 << 0
)
