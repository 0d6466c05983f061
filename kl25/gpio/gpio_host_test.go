//go:build !tinygo

package gpio

import (
	"errors"
	"testing"

	"kl25-go/errcode"
	"kl25-go/kl25"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
	"kl25-go/kl25/internal/simhw"
	"kl25-go/kl25/mux"
)

// latch models the set/clear/toggle registers of port on PDOR.
func latch(port uint8) {
	pdor := regs.GPIO(port, regs.GPIO_PDOR)
	apply := func(op func(cur, m uint32) uint32) func(uint32) {
		return func(m uint32) { mmio.Poke32(pdor, op(mmio.Peek32(pdor), m)) }
	}
	simhw.OnStore(regs.GPIO(port, regs.GPIO_PSOR), apply(func(c, m uint32) uint32 { return c | m }))
	simhw.OnStore(regs.GPIO(port, regs.GPIO_PCOR), apply(func(c, m uint32) uint32 { return c &^ m }))
	simhw.OnStore(regs.GPIO(port, regs.GPIO_PTOR), apply(func(c, m uint32) uint32 { return c ^ m }))
}

func TestOutput(t *testing.T) {
	simhw.Reset()
	latch(1)
	o := NewOutput(kl25.PTB18{})

	if mux.Alternate(kl25.PTB18{}) != kl25.Gpio {
		t.Fatalf("not muxed to GPIO")
	}
	if mmio.Load32(regs.GPIO(1, regs.GPIO_PDDR)) != 1<<18 {
		t.Fatalf("PDDR not set")
	}
	if o.Get() {
		t.Fatalf("output should start low")
	}
	o.High()
	if !o.Get() {
		t.Fatalf("High not latched")
	}
	o.Toggle()
	if o.Get() {
		t.Fatalf("Toggle did not clear")
	}
	o.Set(true)
	if mmio.Load32(regs.GPIO(1, regs.GPIO_PDOR)) != 1<<18 {
		t.Fatalf("Set(true) touched other bits")
	}
	o.Low()
	if o.Get() {
		t.Fatalf("Low not latched")
	}
}

func TestInputClearsDirection(t *testing.T) {
	simhw.Reset()
	mmio.Store32(regs.GPIO(0, regs.GPIO_PDDR), 0xFFFF_FFFF)
	in := NewInput(kl25.PTA4{})
	if got := mmio.Load32(regs.GPIO(0, regs.GPIO_PDDR)); got != 0xFFFF_FFEF {
		t.Fatalf("PDDR = %#x", got)
	}
	if in.Get() {
		t.Fatalf("idle input reads high")
	}
	mmio.Poke32(regs.GPIO(0, regs.GPIO_PDIR), 1<<4)
	if !in.Get() {
		t.Fatalf("input did not follow PDIR")
	}
}

func TestDoubleUsePanicsUntilRelease(t *testing.T) {
	simhw.Reset()
	o := NewOutput(kl25.PTC3{})
	func() {
		defer func() {
			err, _ := recover().(error)
			if !errors.Is(err, errcode.ResourceInUse) {
				t.Fatalf("recovered %v", err)
			}
		}()
		NewInput(kl25.PTC3{})
	}()
	p := o.Release()
	NewInput(p).Release()
}
