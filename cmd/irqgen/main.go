// Command irqgen generates a device package naming the interrupt lines of a
// Cortex-M chip from its SVD or ATDF description.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
