package volatile

type Register8 struct {
	Reg uint8
}

type Register32 struct {
	Reg uint32
}

// SetBits sets the bits in `mask` with a read-modify-write.
func (r *Register32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits clears the bits in `mask` with a read-modify-write.
func (r *Register32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// HasBits reports whether any bit of `mask` is set.
func (r *Register32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}
