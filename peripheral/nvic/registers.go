// Package nvic drives the nested vectored interrupt controller.
package nvic

import "omibyte.io/cortexm/internal/volatile"

// Lines is the number of external interrupt lines the register banks cover.
const Lines = 240

// Registers is the NVIC register block at 0xE000E100. Field order and the
// reserved gaps match the architectural memory map.
type Registers struct {
	// Interrupt Set-Enable
	ISER [8]volatile.Register32
	_    [24]uint32
	// Interrupt Clear-Enable
	ICER [8]volatile.Register32
	_    [24]uint32
	// Interrupt Set-Pending
	ISPR [8]volatile.Register32
	_    [24]uint32
	// Interrupt Clear-Pending
	ICPR [8]volatile.Register32
	_    [24]uint32
	// Interrupt Active Bit, read-only
	IABR [8]volatile.Register32
	_    [56]uint32
	// Interrupt Priority
	IPR [Lines]volatile.Register8
}

// Nr identifies an interrupt line. Device packages implement it with one
// constant per line that exists, so a line that doesn't can't be named.
//
// Implementations must return a value below Lines. The enable and pending
// banks have room up to 255 but the priority bank does not, and Priority and
// SetPriority panic on such a line.
type Nr interface {
	Nr() uint8
}
