package interrupt

// Singleton hands out a mutable value at most once in the lifetime of the
// program.
type Singleton[T any] struct {
	used  bool
	value T
}

// Take initialises the value with init and returns it the first time it is
// called. Every later call returns nil and false without calling init.
func (s *Singleton[T]) Take(init func() T) (*T, bool) {
	v := Free(func(cs CriticalSection) *T {
		if s.used {
			return nil
		}
		s.used = true
		s.value = init()
		return &s.value
	})
	return v, v != nil
}

// Taken reports whether Take has already handed out the value.
func (s *Singleton[T]) Taken() bool {
	return Free(func(cs CriticalSection) bool {
		return s.used
	})
}
