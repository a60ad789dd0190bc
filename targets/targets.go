// Package targets describes the chip families interrupt capabilities are
// generated for.
package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var (
	ErrSeriesNotFound = errors.New("series not found")
	ErrChipNotFound   = errors.New("chip not found")
	ErrInvalidTarget  = errors.New("invalid target")
)

// All returns the built-in target table.
func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Series       string   `yaml:"series"`
	Chips        []string `yaml:"chips"`
	Cpu          string   `yaml:"cpu"`
	Architecture string   `yaml:"architecture"`
	Lines        int      `yaml:"lines"`
	PriorityBits int      `yaml:"priorityBits"`
	Tags         []string `yaml:"tags"`
}

// WordPackedPriority reports whether the NVIC priority registers of the
// target only allow word accesses.
func (t TargetInfo) WordPackedPriority() bool {
	return t.Architecture == "armv6m"
}

// PriorityMask returns the implemented bits of a priority byte. Priority
// levels live in the most significant bits.
func (t TargetInfo) PriorityMask() uint8 {
	return uint8(0xFF << (8 - t.PriorityBits))
}

func (t TargetInfo) validate() error {
	switch {
	case len(t.Series) == 0:
		return fmt.Errorf("%w: missing series", ErrInvalidTarget)
	case t.Lines <= 0 || t.Lines > 240:
		return fmt.Errorf("%w: %s: lines %d not in 1..240", ErrInvalidTarget, t.Series, t.Lines)
	case t.PriorityBits < 2 || t.PriorityBits > 8:
		return fmt.Errorf("%w: %s: priorityBits %d not in 2..8", ErrInvalidTarget, t.Series, t.PriorityBits)
	}
	return nil
}

func (t Targets) FindBySeries(name string) (TargetInfo, error) {
	for _, target := range t {
		if target.Series == strings.ToLower(name) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%w: %s", ErrSeriesNotFound, name)
}

func (t Targets) FindByChip(name string) (TargetInfo, error) {
	for _, target := range t {
		if slices.Contains(target.Chips, strings.ToLower(name)) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%w: %s", ErrChipNotFound, name)
}

// Load decodes a target table in the format of the built-in one.
func Load(r io.Reader) (Targets, error) {
	var t struct {
		Elements []TargetInfo `yaml:"targets"`
	}
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}

	var errs []error
	for _, target := range t.Elements {
		if err := target.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t.Elements, nil
}

func init() {
	var err error
	if targets, err = Load(strings.NewReader(string(rawTargets))); err != nil {
		panic(err)
	}
}
