package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("generator", "testdata")

func TestReadDevice(t *testing.T) {
	logger := newLogger(io.Discard, false)

	device, err := readDevice(filepath.Join(testdata, "mini.svd"), "", logger)
	require.NoError(t, err)
	assert.Equal(t, "SAMD21", device.Series)
	assert.Equal(t, filepath.Join(testdata, "mini.svd"), device.Source)

	device, err = readDevice(filepath.Join(testdata, "mini.atdf"), "ATSAMD21G18A", logger)
	require.NoError(t, err)
	assert.Len(t, device.Interrupts, 3)

	tmp := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.WriteFile(tmp, []byte("{}"), 0640))
	_, err = readDevice(tmp, "", logger)
	assert.True(t, errors.Is(err, ErrUnsupportedInput))
}

func TestLoadTargets(t *testing.T) {
	table, err := loadTargets("")
	require.NoError(t, err)
	assert.NotEmpty(t, table)

	tmp := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(tmp, []byte(`targets:
  - series: custom
    chips: [custom1]
    cpu: cortex-m4
    architecture: armv7em
    lines: 16
    priorityBits: 3
`), 0640))

	table, err = loadTargets(tmp)
	require.NoError(t, err)
	target, err := table.FindBySeries("CUSTOM")
	require.NoError(t, err)
	assert.Equal(t, 16, target.Lines)
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	genOpts.in = filepath.Join(testdata, "mini.svd")
	genOpts.out = out
	genOpts.pkg = ""
	genOpts.series = ""
	genOpts.targets = ""
	t.Cleanup(func() { genOpts.in, genOpts.out = "", "" })

	var w bytes.Buffer
	require.NoError(t, run(&w, newLogger(io.Discard, true)))
	assert.Contains(t, w.String(), "Lines:\t\t32")
	assert.Contains(t, w.String(), "Word-only IPR:\ttrue")
	assert.FileExists(t, filepath.Join(out, "samd21", "interrupt.go"))
}
