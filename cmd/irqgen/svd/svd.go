// Package svd decodes the parts of a CMSIS-SVD device description that name
// interrupt lines.
package svd

import (
	"encoding/xml"
	"strconv"
	"strings"
)

type Integer int64

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return err
	}

	value, err := parseInteger(v)
	if err != nil {
		return err
	}
	*i = Integer(value)
	return nil
}

func parseInteger(v string) (int64, error) {
	v = strings.TrimSpace(strings.ReplaceAll(v, "X", "x"))
	if strings.HasPrefix(v, "0x") {
		return strconv.ParseInt(strings.TrimPrefix(v, "0x"), 16, 64)
	}
	return strconv.ParseInt(v, 10, 64)
}

type DeviceElement struct {
	Name        string             `xml:"name"`
	Description string             `xml:"description"`
	Series      string             `xml:"series"`
	Vendor      string             `xml:"vendor"`
	CPU         CPUElement         `xml:"cpu"`
	Peripherals PeripheralsElement `xml:"peripherals"`
}

type CPUElement struct {
	Name             string  `xml:"name"`
	Revision         string  `xml:"revision"`
	NVICPriorityBits Integer `xml:"nvicPrioBits"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

func (p PeripheralsElement) Find(name string) (int, bool) {
	if len(name) > 0 {
		for i, pp := range p.Elements {
			if pp.Name == name {
				return i, true
			}
		}
	}
	return -1, false
}

type PeripheralElement struct {
	Name        string             `xml:"name"`
	Description string             `xml:"description"`
	Group       string             `xml:"groupName"`
	Interrupts  []InterruptElement `xml:"interrupt"`
	DerivedFrom string             `xml:"derivedFrom,attr"`
}

type InterruptElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
}
