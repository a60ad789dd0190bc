package register

import "omibyte.io/cortexm/internal/cpu"

// Apsr is a copy of the application program status register.
type Apsr uint32

// Q is the DSP overflow and saturation flag.
func (a Apsr) Q() bool { return a&(1<<27) != 0 }

// V is the overflow flag.
func (a Apsr) V() bool { return a&(1<<28) != 0 }

// C is the carry or borrow flag.
func (a Apsr) C() bool { return a&(1<<29) != 0 }

// Z is the zero flag.
func (a Apsr) Z() bool { return a&(1<<30) != 0 }

// N is the negative flag.
func (a Apsr) N() bool { return a&(1<<31) != 0 }

func ReadApsr() Apsr {
	return Apsr(cpu.ReadAPSR())
}
