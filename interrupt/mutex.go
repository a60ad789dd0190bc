package interrupt

// Mutex guards a value shared between thread mode and interrupt handlers.
// The value can only be reached through Borrow, which needs a critical
// section, so no handler can run while it is being used.
//
// A Mutex is meant to live in a package-level variable:
//
//	var ticks = interrupt.NewMutex(uint32(0))
//
// It must not be copied after first use.
type Mutex[T any] struct {
	_     noCopy
	inner T
}

// NewMutex returns a Mutex holding value. It panics if T carries a
// CriticalSection, since that would let a token outlive its section by
// being handed from one context to another.
func NewMutex[T any](value T) Mutex[T] {
	mustTransfer[T]()
	return Mutex[T]{inner: value}
}

// Borrow returns the guarded value. The pointer may only be used while cs is
// live. It panics if cs did not come from Free or Do.
func (m *Mutex[T]) Borrow(cs CriticalSection) *T {
	check(cs)
	return &m.inner
}

// Update runs f on the guarded value inside its own critical section.
func (m *Mutex[T]) Update(f func(value *T)) {
	Do(func(cs CriticalSection) {
		f(m.Borrow(cs))
	})
}

// noCopy makes go vet's copylocks check flag copies of a Mutex.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
