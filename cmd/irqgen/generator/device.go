// Package generator turns a device description into a Go package with one
// capability constant per interrupt line.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"omibyte.io/cortexm/cmd/irqgen/atdf"
	"omibyte.io/cortexm/cmd/irqgen/svd"
	"omibyte.io/cortexm/targets"
)

var (
	ErrDerivationCycle     = errors.New("peripheral derivation cycle")
	ErrUnknownBase         = errors.New("peripheral derived from unknown peripheral")
	ErrInterruptConflict   = errors.New("interrupt name bound to two lines")
	ErrInterruptOutOfRange = errors.New("interrupt line out of range")
	ErrNoInterrupts        = errors.New("device has no interrupts")
	ErrDeviceNotFound      = errors.New("device not found")
	ErrPriorityBits        = errors.New("priority bits differ from target")
)

type Interrupt struct {
	Name        string
	Value       int
	Description string
}

// Device is the interrupt map of one chip.
type Device struct {
	Name   string
	Series string
	Source string
	// PriorityBits is the number of NVIC priority bits the description
	// declares, or 0 if it declares none.
	PriorityBits int
	Interrupts   []Interrupt
}

type collector struct {
	byValue map[int]Interrupt
	// Keyed by generated identifier, since that is what must be unique in
	// the output.
	byIdent map[string]Interrupt
	logger  *slog.Logger
}

func newCollector(logger *slog.Logger) *collector {
	return &collector{
		byValue: map[int]Interrupt{},
		byIdent: map[string]Interrupt{},
		logger:  logger,
	}
}

func (c *collector) add(irq Interrupt) error {
	irq.Description = strings.Join(strings.Fields(irq.Description), " ")

	ident := Identifier(irq.Name)
	if seen, ok := c.byIdent[ident]; ok {
		if seen.Value != irq.Value {
			return fmt.Errorf("%w: %s = %d and %s = %d both generate %s",
				ErrInterruptConflict, seen.Name, seen.Value, irq.Name, irq.Value, ident)
		}
		return nil
	}

	if existing, ok := c.byValue[irq.Value]; ok {
		// Shared lines keep the first name seen.
		c.logger.Debug("shared interrupt line", "line", irq.Value, "kept", existing.Name, "dropped", irq.Name)
		c.byIdent[ident] = irq
		return nil
	}

	c.byValue[irq.Value] = irq
	c.byIdent[ident] = irq
	return nil
}

func (c *collector) sorted() []Interrupt {
	values := maps.Keys(c.byValue)
	slices.Sort(values)

	result := make([]Interrupt, len(values))
	for i, v := range values {
		result[i] = c.byValue[v]
	}
	return result
}

type peripheralNode struct {
	index int
	id    int64
}

func (p *peripheralNode) ID() int64 {
	return p.id
}

// derivationOrder sorts the peripherals so every base comes before the
// peripherals derived from it.
func derivationOrder(periphs svd.PeripheralsElement) ([]int, error) {
	g := multi.NewDirectedGraph()
	nodes := make([]*peripheralNode, len(periphs.Elements))
	for i := range periphs.Elements {
		nodes[i] = &peripheralNode{index: i, id: int64(i)}
		g.AddNode(nodes[i])
	}

	for i, periph := range periphs.Elements {
		if len(periph.DerivedFrom) == 0 {
			continue
		}
		base, ok := periphs.Find(periph.DerivedFrom)
		if !ok {
			return nil, fmt.Errorf("%w: %s derives from %s", ErrUnknownBase, periph.Name, periph.DerivedFrom)
		}
		g.SetLine(g.NewLine(nodes[base], nodes[i]))
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		return nil, errors.Join(ErrDerivationCycle, err)
	}

	order := make([]int, len(sorted))
	for i, node := range sorted {
		order[i] = node.(*peripheralNode).index
	}
	return order, nil
}

// FromSVD collects the interrupts of an SVD device. An interrupt without a
// description takes its peripheral's, and a derived peripheral without a
// description takes its base's.
func FromSVD(device *svd.DeviceElement, logger *slog.Logger) (*Device, error) {
	order, err := derivationOrder(device.Peripherals)
	if err != nil {
		return nil, err
	}

	// Bases first, so derived peripherals can inherit descriptions.
	descriptions := map[string]string{}
	for _, i := range order {
		periph := device.Peripherals.Elements[i]
		desc := periph.Description
		if len(desc) == 0 && len(periph.DerivedFrom) > 0 {
			desc = descriptions[periph.DerivedFrom]
		}
		descriptions[periph.Name] = desc
	}

	// Document order, so the first peripheral listing a shared line names it.
	c := newCollector(logger)
	for _, periph := range device.Peripherals.Elements {
		for _, irq := range periph.Interrupts {
			d := irq.Description
			if len(d) == 0 {
				d = descriptions[periph.Name]
			}
			if err = c.add(Interrupt{Name: irq.Name, Value: int(irq.Value), Description: d}); err != nil {
				return nil, err
			}
		}
	}

	return &Device{
		Name:         device.Name,
		Series:       device.Series,
		PriorityBits: int(device.CPU.NVICPriorityBits),
		Interrupts:   c.sorted(),
	}, nil
}

// FromATDF collects the interrupts of the named device in an ATDF file, or of
// its only device when name is empty. Core exceptions are skipped.
func FromATDF(def *atdf.ATDF, name string, logger *slog.Logger) (*Device, error) {
	var device *atdf.DeviceElement
	for i := range def.Devices.Elements {
		d := &def.Devices.Elements[i]
		if len(name) == 0 || strings.EqualFold(d.Name, name) {
			device = d
			break
		}
	}
	if device == nil {
		return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, name)
	}

	c := newCollector(logger)
	for _, irq := range device.Interrupts.Elements {
		if irq.Index < 0 {
			continue
		}
		if err := c.add(Interrupt{Name: irq.Name, Value: int(irq.Index), Description: irq.Caption}); err != nil {
			return nil, err
		}
	}

	return &Device{
		Name:       device.Name,
		Series:     device.Series,
		Interrupts: c.sorted(),
	}, nil
}

// Validate checks the interrupt map and declared priority bits against the
// target's NVIC.
func (d *Device) Validate(target targets.TargetInfo) error {
	if len(d.Interrupts) == 0 {
		return fmt.Errorf("%w: %s", ErrNoInterrupts, d.Name)
	}

	var errs []error
	if d.PriorityBits != 0 && d.PriorityBits != target.PriorityBits {
		errs = append(errs, fmt.Errorf("%w: %s declares %d, %s has %d",
			ErrPriorityBits, d.Name, d.PriorityBits, target.Series, target.PriorityBits))
	}
	for _, irq := range d.Interrupts {
		if irq.Value < 0 || irq.Value >= target.Lines {
			errs = append(errs, fmt.Errorf("%w: %s = %d, %s has %d lines", ErrInterruptOutOfRange, irq.Name, irq.Value, target.Series, target.Lines))
		}
	}
	return errors.Join(errs...)
}
