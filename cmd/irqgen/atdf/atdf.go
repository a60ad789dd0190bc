// Package atdf decodes the device and interrupt sections of an Atmel device
// description (ATDF).
package atdf

import (
	"encoding/xml"
	"strconv"
	"strings"
)

type Integer int64

func (i *Integer) UnmarshalXMLAttr(attr xml.Attr) (err error) {
	var value int64
	strVal := strings.ReplaceAll(attr.Value, "X", "x")
	if strings.HasPrefix(strVal, "0x") {
		value, err = strconv.ParseInt(strings.TrimPrefix(strVal, "0x"), 16, 64)
	} else {
		value, err = strconv.ParseInt(strVal, 10, 64)
	}
	if err != nil {
		return err
	}
	*i = Integer(value)
	return nil
}

type ATDF struct {
	Devices DevicesElement `xml:"devices"`
}

type DevicesElement struct {
	Elements []DeviceElement `xml:"device"`
}

type DeviceElement struct {
	Name         string            `xml:"name,attr"`
	Architecture string            `xml:"architecture,attr"`
	Family       string            `xml:"family,attr"`
	Series       string            `xml:"series,attr"`
	Interrupts   InterruptsElement `xml:"interrupts"`
}

type InterruptsElement struct {
	Elements []InterruptElement `xml:"interrupt"`
}

// InterruptElement is one vector. Core exceptions have negative indices.
type InterruptElement struct {
	Name             string  `xml:"name,attr"`
	Index            Integer `xml:"index,attr"`
	Caption          string  `xml:"caption,attr,omitempty"`
	AlternateCaption string  `xml:"alternate-caption,attr"`
}
