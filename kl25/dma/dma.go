// Package dma drives the four channels of the KL25 DMA controller.
//
// Completion is polled. Poll reads the channel's DONE flag and clears it
// once seen; Await and WaitAll re-poll, yielding to the scheduler between
// attempts, so other goroutines run while a transfer is in flight.
package dma

import (
	"runtime"

	"kl25-go/kl25"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
)

// Config describes one byte-wide transfer.
type Config struct {
	Source      uint32
	Destination uint32
	Length      uint16 // bytes

	IncSource bool
	IncDest   bool

	// Start begins the transfer as soon as the control word is written.
	// START self-clears on silicon, so ReadConfig reports it only until
	// the controller picks it up.
	Start bool

	// PeriphRequest paces the channel by its DMAMUX request source, one
	// byte per request, and drops the request enable when the count
	// reaches zero.
	PeriphRequest bool
}

// Configure clears the channel's DONE flag, then programs c. The channel
// must not be reconfigured while a previous transfer is still pending.
func Configure[D kl25.DMAChannel](ch D, c Config) {
	n := ch.Channel()

	mmio.Store8(regs.DSR(n), regs.DMA_DSR_DONE)
	mmio.Store32(regs.SAR(n), c.Source)
	mmio.Store32(regs.DAR(n), c.Destination)
	mmio.Store32(regs.DSR_BCR(n), uint32(c.Length))
	mmio.Store32(regs.DCR(n), controlWord(c))
}

func controlWord(c Config) uint32 {
	dcr := uint32(regs.DMA_DCR_ERQ | regs.DMA_DCR_SSIZE_8 | regs.DMA_DCR_DSIZE_8)
	if c.IncSource {
		dcr |= regs.DMA_DCR_SINC
	}
	if c.IncDest {
		dcr |= regs.DMA_DCR_DINC
	}
	if c.Start {
		dcr |= regs.DMA_DCR_START
	}
	if c.PeriphRequest {
		dcr |= regs.DMA_DCR_CS | regs.DMA_DCR_D_REQ
	}
	return dcr
}

// ReadConfig decodes the channel's current register contents. Length is
// the remaining byte count.
func ReadConfig[D kl25.DMAChannel](ch D) Config {
	n := ch.Channel()
	dcr := mmio.Load32(regs.DCR(n))
	return Config{
		Source:        mmio.Load32(regs.SAR(n)),
		Destination:   mmio.Load32(regs.DAR(n)),
		Length:        uint16(mmio.Load32(regs.DSR_BCR(n)) & regs.DMA_BCR_Msk),
		IncSource:     dcr&regs.DMA_DCR_SINC != 0,
		IncDest:       dcr&regs.DMA_DCR_DINC != 0,
		Start:         dcr&regs.DMA_DCR_START != 0,
		PeriphRequest: dcr&regs.DMA_DCR_CS != 0 && dcr&regs.DMA_DCR_D_REQ != 0,
	}
}

// Poll reports whether the channel has finished. A true result clears the
// DONE flag, so each completion is reported once.
func Poll[D kl25.DMAChannel](ch D) bool {
	a := regs.DSR(ch.Channel())
	if !mmio.HasBits8(a, regs.DMA_DSR_DONE) {
		return false
	}
	mmio.Store8(a, regs.DMA_DSR_DONE)
	return true
}

// Await yields until the channel completes. There is no timeout: a
// transfer that never finishes suspends the caller forever.
func Await[D kl25.DMAChannel](ch D) {
	for !Poll(ch) {
		runtime.Gosched()
	}
}

// Poller is a pending completion.
type Poller interface {
	Poll() bool
}

// Completion is the Poller for channel D.
type Completion[D kl25.DMAChannel] struct{ ch D }

// Pending returns the completion of ch for use with WaitAll.
func Pending[D kl25.DMAChannel](ch D) Completion[D] { return Completion[D]{ch} }

func (c Completion[D]) Poll() bool { return Poll(c.ch) }

// WaitAll yields until every p has reported completion. Each p is polled
// until its first true result and not after; the order in which they
// finish does not matter.
func WaitAll(ps ...Poller) {
	if len(ps) > 32 {
		panic("dma: too many pollers")
	}
	var done uint32
	all := uint32(1)<<len(ps) - 1
	for {
		for i, p := range ps {
			if done&(1<<i) == 0 && p.Poll() {
				done |= 1 << i
			}
		}
		if done == all {
			return
		}
		runtime.Gosched()
	}
}
