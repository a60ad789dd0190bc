// Package volatile provides the memory-mapped register cells the peripheral
// layouts are built from. On TinyGo the cells are TinyGo's own volatile
// registers; on the host they are ordinary memory.
package volatile

// GetByte returns byte lane `lane` (0 is the least significant) of a 32-bit
// register. Used for banks that pack four 8-bit fields per word and only allow
// word-sized accesses.
func (r *Register32) GetByte(lane uint8) uint8 {
	return uint8(r.Get() >> (uint32(lane&0x3) * 8))
}

// SetByte replaces byte lane `lane` of a 32-bit register with a
// read-modify-write of the whole word.
func (r *Register32) SetByte(lane uint8, value uint8) {
	shift := uint32(lane&0x3) * 8
	v := r.Get()
	v &^= 0xFF << shift
	v |= uint32(value) << shift
	r.Set(v)
}
