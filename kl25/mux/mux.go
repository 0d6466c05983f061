// Package mux routes pins to their peripheral functions.
package mux

import (
	"kl25-go/kl25"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
)

// EnablePortClock ungates the PORT module that owns p. Idempotent.
func EnablePortClock(p kl25.Pin) {
	mmio.SetBits32(regs.SIM_SCGC5, regs.PortClockGate(p.ID().Port()))
}

// SetAlternate selects function alt on p. The port clock must be running.
func SetAlternate(p kl25.Pin, alt kl25.Alternate) {
	id := p.ID()
	mmio.Modify32(regs.PCR(id.Port(), id.Index()), regs.PORT_PCR_MUX_Msk, uint32(alt)<<regs.PORT_PCR_MUX_Pos)
}

// Alternate returns the function currently selected on p.
func Alternate(p kl25.Pin) kl25.Alternate {
	id := p.ID()
	pcr := mmio.Load32(regs.PCR(id.Port(), id.Index()))
	return kl25.Alternate((pcr & regs.PORT_PCR_MUX_Msk) >> regs.PORT_PCR_MUX_Pos)
}

// Route enables the port clock of p and selects alt.
func Route(p kl25.Pin, alt kl25.Alternate) {
	EnablePortClock(p)
	SetAlternate(p, alt)
}
