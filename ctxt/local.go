// Package ctxt holds data that belongs to a single execution context, such as
// one interrupt handler.
//
// Each context is named by its own marker type embedding Token:
//
//	type EIC struct{ ctxt.Token }
//
//	var edges ctxt.Local[uint32, EIC]
//
//	func eicHandler(ctx EIC) {
//		*edges.Borrow(ctx) += 1
//	}
//
// Borrowing with a marker of another context does not compile. Nothing is
// checked at run time: whoever hands out marker values (the handler
// registration code) must only give a context's marker to that context.
// Unlike interrupt.Mutex there is no mutual exclusion, so two markers that
// end up running in the same physical context may alias each other's data.
package ctxt

// Context is satisfied by marker types that embed Token.
type Context interface {
	context()
}

// Token is embedded in a struct to declare it as a context marker.
type Token struct{}

func (Token) context() {}

// Local is a value reachable only from context C.
type Local[T any, C Context] struct {
	data T
}

func NewLocal[T any, C Context](value T) Local[T, C] {
	return Local[T, C]{data: value}
}

// Borrow returns the data. Holding a value of type C is the proof of running
// in context C.
func (l *Local[T, C]) Borrow(_ C) *T {
	return &l.data
}
