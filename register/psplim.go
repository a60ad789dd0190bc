package register

import "omibyte.io/cortexm/internal/cpu"

// ReadPsplim reads the process stack pointer limit. ARMv8-M only.
func ReadPsplim() uint32 {
	return cpu.ReadPSPLIM()
}

// WritePsplim sets the process stack pointer limit. ARMv8-M only.
func WritePsplim(limit uint32) {
	cpu.WritePSPLIM(limit)
}
