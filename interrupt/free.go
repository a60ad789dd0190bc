package interrupt

import "omibyte.io/cortexm/register"

// CriticalSection is proof that interrupts are masked. Only Free and Do
// produce one, and it is valid until their callback returns; it must not be
// stored or passed anywhere that outlives the callback.
//
// The method set is unexported, so code outside this package can only supply
// nil or a struct embedding a nil CriticalSection. Borrow rejects both.
type CriticalSection interface {
	criticalSection()
}

type section struct{}

func (*section) criticalSection() {}

// Free runs f with interrupts masked and returns its result. The previous
// mask state is restored afterwards, also when f panics.
//
// Calls nest: an inner Free leaves the mask alone and only the outermost one
// unmasks interrupts again.
func Free[R any](f func(cs CriticalSection) R) R {
	state := Save()
	defer Restore(state)

	return f(&section{})
}

// Do is Free for callbacks without a result.
func Do(f func(cs CriticalSection)) {
	state := Save()
	defer Restore(state)

	f(&section{})
}

// check panics unless cs was handed out by Free or Do.
func check(cs CriticalSection) {
	if s, ok := cs.(*section); !ok || s == nil {
		panic("interrupt: invalid critical section")
	}
	if verifyTokens && register.ReadPrimask().IsActive() {
		panic("interrupt: critical section used with interrupts enabled")
	}
}
