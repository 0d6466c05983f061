// Package gpio provides plain digital pins built from pin tokens.
package gpio

import (
	"kl25-go/kl25"
	"kl25-go/kl25/internal/claim"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
	"kl25-go/kl25/mux"
)

// Output drives pin P.
type Output[P kl25.Pin] struct {
	pin  P
	port uint8
	mask uint32
}

// NewOutput consumes p and configures it as a GPIO output, initially low.
func NewOutput[P kl25.Pin](p P) *Output[P] {
	id := p.ID()
	claim.Take("gpio.NewOutput", claim.Pin(uint8(id)))
	o := &Output[P]{pin: p, port: id.Port(), mask: 1 << id.Index()}
	mux.Route(p, kl25.Gpio)
	mmio.Store32(regs.GPIO(o.port, regs.GPIO_PCOR), o.mask)
	mmio.SetBits32(regs.GPIO(o.port, regs.GPIO_PDDR), o.mask)
	return o
}

func (o *Output[P]) High() { mmio.Store32(regs.GPIO(o.port, regs.GPIO_PSOR), o.mask) }
func (o *Output[P]) Low()  { mmio.Store32(regs.GPIO(o.port, regs.GPIO_PCOR), o.mask) }

func (o *Output[P]) Toggle() { mmio.Store32(regs.GPIO(o.port, regs.GPIO_PTOR), o.mask) }

// Set drives the pin high when v is true.
func (o *Output[P]) Set(v bool) {
	if v {
		o.High()
	} else {
		o.Low()
	}
}

// Get returns the level last written to the output latch.
func (o *Output[P]) Get() bool {
	return mmio.Load32(regs.GPIO(o.port, regs.GPIO_PDOR))&o.mask != 0
}

// Release returns the pin token. The pin keeps its GPIO configuration.
func (o *Output[P]) Release() P {
	claim.Give(claim.Pin(uint8(o.pin.ID())))
	return o.pin
}

// Input samples pin P.
type Input[P kl25.Pin] struct {
	pin  P
	port uint8
	mask uint32
}

// NewInput consumes p and configures it as a GPIO input.
func NewInput[P kl25.Pin](p P) *Input[P] {
	id := p.ID()
	claim.Take("gpio.NewInput", claim.Pin(uint8(id)))
	in := &Input[P]{pin: p, port: id.Port(), mask: 1 << id.Index()}
	mux.Route(p, kl25.Gpio)
	mmio.ClearBits32(regs.GPIO(in.port, regs.GPIO_PDDR), in.mask)
	return in
}

// Get reports whether the pin reads high.
func (in *Input[P]) Get() bool {
	return mmio.Load32(regs.GPIO(in.port, regs.GPIO_PDIR))&in.mask != 0
}

// Release returns the pin token.
func (in *Input[P]) Release() P {
	claim.Give(claim.Pin(uint8(in.pin.ID())))
	return in.pin
}
