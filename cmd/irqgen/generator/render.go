package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/tools/imports"

	"omibyte.io/cortexm/targets"
)

var nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Identifier returns the Go constant name for an interrupt.
func Identifier(name string) string {
	return "IRQ_" + strings.ToUpper(strings.Trim(nonIdentifier.ReplaceAllString(name, "_"), "_"))
}

// Render returns the formatted source of package pkg.
func (d *Device) Render(pkg string, target targets.TargetInfo) ([]byte, error) {
	var w strings.Builder

	source := d.Source
	if len(source) == 0 {
		source = d.Name
	}
	chip := strings.ToUpper(target.Series)

	fmt.Fprintf(&w, "// Code generated by irqgen from %s; DO NOT EDIT.\n\n", filepath.Base(source))
	fmt.Fprintf(&w, "// Package %s names the interrupt lines of the %s.\n", pkg, chip)
	fmt.Fprintf(&w, "package %s\n\n", pkg)
	fmt.Fprintln(&w, "import (")
	fmt.Fprintln(&w, `"strconv"`)
	fmt.Fprintln(&w)
	fmt.Fprintln(&w, `"omibyte.io/cortexm/peripheral/nvic"`)
	fmt.Fprintln(&w, ")")
	fmt.Fprintln(&w)

	fmt.Fprintln(&w, "const (")
	fmt.Fprintf(&w, "// Lines is the number of NVIC lines of the %s.\n", chip)
	fmt.Fprintf(&w, "Lines = %d\n", target.Lines)
	fmt.Fprintln(&w, "// PriorityBits is the number of implemented priority bits, the most")
	fmt.Fprintln(&w, "// significant bits of a priority byte.")
	fmt.Fprintf(&w, "PriorityBits = %d\n", target.PriorityBits)
	fmt.Fprintln(&w, ")")
	fmt.Fprintln(&w)

	fmt.Fprintf(&w, "// Interrupt is an interrupt line of the %s.\n", chip)
	fmt.Fprintln(&w, "type Interrupt uint8")
	fmt.Fprintln(&w)

	fmt.Fprintln(&w, "const (")
	for _, irq := range d.Interrupts {
		comment := ""
		if len(irq.Description) > 0 {
			comment = " // " + irq.Description
		}
		fmt.Fprintf(&w, "%s Interrupt = %d%s\n", Identifier(irq.Name), irq.Value, comment)
	}
	fmt.Fprintln(&w, ")")
	fmt.Fprintln(&w)

	fmt.Fprintln(&w, "func (i Interrupt) Nr() uint8 { return uint8(i) }")
	fmt.Fprintln(&w)
	for _, m := range []struct{ name, call string }{
		{"EnableIRQ", "Enable(i)"},
		{"DisableIRQ", "Disable(i)"},
		{"SetPending", "SetPending(i)"},
		{"ClearPending", "ClearPending(i)"},
	} {
		fmt.Fprintf(&w, "func (i Interrupt) %s() { nvic.NVIC.%s }\n\n", m.name, m.call)
	}
	fmt.Fprintln(&w, "func (i Interrupt) SetPriority(priority uint8) { nvic.NVIC.SetPriority(i, priority) }")
	fmt.Fprintln(&w)

	fmt.Fprintln(&w, "func (i Interrupt) String() string {")
	fmt.Fprintln(&w, "switch i {")
	for _, irq := range d.Interrupts {
		fmt.Fprintf(&w, "case %s:\nreturn %q\n", Identifier(irq.Name), irq.Name)
	}
	fmt.Fprintln(&w, "}")
	fmt.Fprintln(&w, `return "Interrupt(" + strconv.Itoa(int(i)) + ")"`)
	fmt.Fprintln(&w, "}")

	buf, err := imports.Process(pkg+"/interrupt.go", []byte(w.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("error formatting %s: %w", pkg, err)
	}
	return buf, nil
}

// Generate validates the device against target and writes
// <out>/<pkg>/interrupt.go. It returns the path written.
func (d *Device) Generate(out, pkg string, target targets.TargetInfo) (string, error) {
	if err := d.Validate(target); err != nil {
		return "", err
	}

	buf, err := d.Render(pkg, target)
	if err != nil {
		return "", err
	}

	outputDir := filepath.Join(out, pkg)
	if err = os.MkdirAll(outputDir, 0750); err != nil {
		return "", err
	}

	fname := filepath.Join(outputDir, "interrupt.go")
	if err = os.WriteFile(fname, buf, 0640); err != nil {
		return "", err
	}
	return fname, nil
}
