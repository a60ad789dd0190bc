//go:build tinygo && cortexm

package cpu

import "device/arm"

func ReadPRIMASK() uint32 {
	return uint32(arm.AsmFull("mrs {}, PRIMASK", nil))
}

func DisableIRQ() {
	arm.Asm("cpsid i")
}

func EnableIRQ() {
	arm.Asm("cpsie i")
}

func Barrier() {
	arm.Asm("dmb sy")
}

func ReadCONTROL() uint32 {
	return uint32(arm.AsmFull("mrs {}, CONTROL", nil))
}

func WriteCONTROL(value uint32) {
	// An ISB is architecturally required after writing CONTROL.
	arm.AsmFull(`
		msr CONTROL, {value}
		isb
	`, map[string]interface{}{
		"value": value,
	})
	Barrier()
}

func ReadAPSR() uint32 {
	return uint32(arm.AsmFull("mrs {}, APSR", nil))
}

func WriteAPSR(value uint32) {
	arm.AsmFull("msr APSR_nzcvq, {value}", map[string]interface{}{
		"value": value,
	})
}

func ReadPSPLIM() uint32 {
	return uint32(arm.AsmFull("mrs {}, PSPLIM", nil))
}

func WritePSPLIM(value uint32) {
	arm.AsmFull("msr PSPLIM, {value}", map[string]interface{}{
		"value": value,
	})
}

func Nop() {
	arm.Asm("nop")
}

func WaitForInterrupt() {
	arm.Asm("wfi")
}

func WaitForEvent() {
	arm.Asm("wfe")
}

func SendEvent() {
	arm.Asm("sev")
}

func Breakpoint() {
	arm.Asm("bkpt 0")
}

func InstructionBarrier() {
	arm.Asm("isb sy")
}

func DataSyncBarrier() {
	arm.Asm("dsb sy")
}
