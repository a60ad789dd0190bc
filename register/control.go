package register

import "omibyte.io/cortexm/internal/cpu"

const (
	CONTROL_NPRIV = 1 << 0
	CONTROL_SPSEL = 1 << 1
	CONTROL_FPCA  = 1 << 2
)

// Control is a copy of the CONTROL register.
type Control uint32

// Npriv is the thread mode privilege level.
type Npriv uint8

const (
	Privileged Npriv = iota
	Unprivileged
)

// Spsel selects the stack pointer in use.
type Spsel uint8

const (
	MSP Spsel = iota
	PSP
)

func (c Control) Npriv() Npriv {
	if c&CONTROL_NPRIV != 0 {
		return Unprivileged
	}
	return Privileged
}

func (c *Control) SetNpriv(npriv Npriv) {
	if npriv == Unprivileged {
		*c |= CONTROL_NPRIV
	} else {
		*c &^= CONTROL_NPRIV
	}
}

func (c Control) Spsel() Spsel {
	if c&CONTROL_SPSEL != 0 {
		return PSP
	}
	return MSP
}

func (c *Control) SetSpsel(spsel Spsel) {
	if spsel == PSP {
		*c |= CONTROL_SPSEL
	} else {
		*c &^= CONTROL_SPSEL
	}
}

// FPCA reports whether a floating-point context is active.
func (c Control) FPCA() bool {
	return c&CONTROL_FPCA != 0
}

func (c *Control) SetFPCA(active bool) {
	if active {
		*c |= CONTROL_FPCA
	} else {
		*c &^= CONTROL_FPCA
	}
}

func ReadControl() Control {
	return Control(cpu.ReadCONTROL())
}

// WriteControl writes the CPU register. Memory accesses are not reordered
// around the update.
func WriteControl(c Control) {
	cpu.WriteCONTROL(uint32(c))
}
