// Package register reads and writes the Cortex-M core special registers.
package register

import "omibyte.io/cortexm/internal/cpu"

// Primask is a snapshot of the priority mask register.
type Primask uint8

const (
	// Active means exceptions with configurable priority can be taken.
	Active Primask = iota
	// Inactive means exceptions with configurable priority are masked.
	Inactive
)

func (p Primask) IsActive() bool {
	return p == Active
}

func (p Primask) IsInactive() bool {
	return p == Inactive
}

func (p Primask) String() string {
	if p == Inactive {
		return "Inactive"
	}
	return "Active"
}

// ReadPrimask reads the CPU register.
func ReadPrimask() Primask {
	if cpu.ReadPRIMASK()&cpu.PRIMASK_PM != 0 {
		return Inactive
	}
	return Active
}
