package interrupt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/cortexm/internal/cpu"
	"omibyte.io/cortexm/register"
)

func TestSaveRestore(t *testing.T) {
	tests := []struct {
		name    string
		initial register.Primask
	}{
		{"from active", register.Active},
		{"from inactive", register.Inactive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setMask(tc.initial)
			defer cpu.Reset()

			state := Save()
			assert.Equal(t, tc.initial, state)
			assert.Equal(t, register.Inactive, register.ReadPrimask())

			Restore(state)
			assert.Equal(t, tc.initial, register.ReadPrimask())
		})
	}
}

func TestFreeNestedRestore(t *testing.T) {
	for _, initial := range []register.Primask{register.Active, register.Inactive} {
		for depth := 1; depth <= 4; depth++ {
			setMask(initial)

			var nest func(level int) int
			nest = func(level int) int {
				return Free(func(cs CriticalSection) int {
					require.NotNil(t, cs)
					assert.Equal(t, register.Inactive, register.ReadPrimask())
					if level == depth {
						return level
					}
					r := nest(level + 1)
					// An inner section returning never unmasks for the outer one.
					assert.Equal(t, register.Inactive, register.ReadPrimask())
					return r
				})
			}

			assert.Equal(t, depth, nest(1))
			assert.Equal(t, initial, register.ReadPrimask(), "initial %v depth %d", initial, depth)
		}
	}
	cpu.Reset()
}

func TestNestedSections(t *testing.T) {
	cpu.Reset()

	var trace []register.Primask
	Do(func(a CriticalSection) {
		trace = append(trace, register.ReadPrimask())
		Do(func(b CriticalSection) {
			trace = append(trace, register.ReadPrimask())
		})
		// B's restore must have been a no-op.
		trace = append(trace, register.ReadPrimask())
	})
	trace = append(trace, register.ReadPrimask())

	assert.Equal(t, []register.Primask{
		register.Inactive,
		register.Inactive,
		register.Inactive,
		register.Active,
	}, trace)
}

func TestFreeRestoresOnPanic(t *testing.T) {
	cpu.Reset()

	assert.Panics(t, func() {
		Do(func(cs CriticalSection) {
			panic("boom")
		})
	})
	assert.Equal(t, register.Active, register.ReadPrimask())
}

func TestDisableEnable(t *testing.T) {
	cpu.Reset()

	Disable()
	Disable()
	assert.Equal(t, register.Inactive, register.ReadPrimask())

	Enable()
	assert.Equal(t, register.Active, register.ReadPrimask())
}

func TestCheckRejectsTokensFromOutside(t *testing.T) {
	cpu.Reset()

	// What code outside the package can build: nil, or a struct embedding
	// a nil CriticalSection to pick up the method set.
	type embedded struct{ CriticalSection }

	for _, cs := range []CriticalSection{nil, embedded{}, &embedded{}, (*section)(nil)} {
		assert.PanicsWithValue(t, "interrupt: invalid critical section", func() {
			check(cs)
		}, "%T", cs)
	}

	Do(func(cs CriticalSection) {
		assert.NotPanics(t, func() { check(cs) })
	})
}

func setMask(p register.Primask) {
	if p.IsInactive() {
		cpu.DisableIRQ()
	} else {
		cpu.EnableIRQ()
	}
}
