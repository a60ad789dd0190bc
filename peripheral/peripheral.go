// Package peripheral hands out the core peripherals. The register blocks sit
// at fixed addresses and exist once, so they are handed out once.
package peripheral

import (
	"omibyte.io/cortexm/interrupt"
	"omibyte.io/cortexm/peripheral/nvic"
	"omibyte.io/cortexm/peripheral/scb"
	"omibyte.io/cortexm/peripheral/syst"
)

type Peripherals struct {
	NVIC *nvic.Registers
	SCB  *scb.Registers
	SYST *syst.Registers
}

var peripherals interrupt.Singleton[Peripherals]

// Take returns the core peripherals the first time it is called and false on
// every later call.
func Take() (*Peripherals, bool) {
	return peripherals.Take(Steal)
}

// Steal returns the core peripherals regardless of whether they were taken.
// The caller must make sure no other owner touches the same registers.
func Steal() Peripherals {
	return Peripherals{
		NVIC: nvic.NVIC,
		SCB:  scb.SCB,
		SYST: syst.SYST,
	}
}

// Interrupt is what a driver needs from the interrupt line of the device it
// drives.
type Interrupt interface {
	nvic.Nr
	EnableIRQ()
	DisableIRQ()
	SetPriority(priority uint8)
}
