//go:build cortexm_debug

package interrupt

// Built with -tags cortexm_debug, every Borrow also checks that interrupts are
// masked.
const verifyTokens = true
