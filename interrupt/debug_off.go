//go:build !cortexm_debug

package interrupt

const verifyTokens = false
