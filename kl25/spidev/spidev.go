// Package spidev frames transactions on an SPI bus with a chip select.
package spidev

import "tinygo.org/x/drivers"

// OutputPin sets an output level. gpio.Output.Set fits.
type OutputPin func(level bool)

// Device asserts an active-low chip select around every transaction on an
// SPI bus it uses exclusively.
type Device struct {
	bus drivers.SPI
	cs  OutputPin
}

var _ drivers.SPI = (*Device)(nil)

// New returns a Device on bus and drives cs high (deselected).
func New(bus drivers.SPI, cs OutputPin) *Device {
	cs(true)
	return &Device{bus: bus, cs: cs}
}

// Tx runs one transaction with the chip selected.
func (d *Device) Tx(w, r []byte) error {
	d.csEnable(true)
	err := d.bus.Tx(w, r)
	d.csEnable(false)
	return err
}

// Transfer exchanges one byte as its own transaction.
func (d *Device) Transfer(b byte) (byte, error) {
	d.csEnable(true)
	v, err := d.bus.Transfer(b)
	d.csEnable(false)
	return v, err
}

func (d *Device) csEnable(b bool) { d.cs(!b) }
