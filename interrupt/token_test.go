package interrupt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"omibyte.io/cortexm/interrupt"
	"omibyte.io/cortexm/register"
)

// borrowed stands in for a driver package trying to build its own token.
type borrowed struct{ interrupt.CriticalSection }

func TestBorrowRejectsForeignTokens(t *testing.T) {
	m := interrupt.NewMutex(5)

	var zero interrupt.CriticalSection
	for _, cs := range []interrupt.CriticalSection{zero, borrowed{}, &borrowed{}} {
		assert.PanicsWithValue(t, "interrupt: invalid critical section", func() {
			m.Borrow(cs)
		}, "%T", cs)
	}
	assert.Equal(t, register.Active, register.ReadPrimask())

	got := interrupt.Free(func(cs interrupt.CriticalSection) int {
		return *m.Borrow(cs)
	})
	assert.Equal(t, 5, got)
}
