//go:build !tinygo

// Package simhw adds the register side effects host tests depend on to the
// simulated address space: write-one-to-clear DMA status, MCG status that
// follows the clock control registers, and injection of DMA completion.
package simhw

import (
	"kl25-go/kl25/internal/claim"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
)

const statusLane = 0xFF00_0000

// Reset wipes the simulated registers and ownership state, then installs the
// hardware models. Call it at the start of every test that touches the HAL.
func Reset() {
	mmio.Reset()
	claim.Reset()
	for ch := uint8(0); ch < regs.DMAChannels; ch++ {
		mmio.OnWrite(regs.DSR_BCR(ch), dsrWrite)
	}
	mmio.OnRead(regs.MCG_S, mcgStatus)
}

// dsrWrite: the status byte is read-only except that writing DONE clears it.
func dsrWrite(old, val, mask uint32) uint32 {
	bcr := (old&^mask | val&mask) & regs.DMA_BCR_Msk
	status := old & statusLane
	if mask&statusLane != 0 && uint8(val>>24)&regs.DMA_DSR_DONE != 0 {
		status = 0
	}
	return status | bcr
}

// mcgStatus derives MCG_S from C1, C2 and C6. The word holds C5, C6, S, C7.
func mcgStatus(cur uint32) uint32 {
	c1 := mmio.Peek8(regs.MCG_C1)
	c2 := mmio.Peek8(regs.MCG_C2)
	c6 := uint8(cur >> 8)

	var s uint8
	if c2&regs.MCG_C2_EREFS0 != 0 {
		s |= regs.MCG_S_OSCINIT0
	}
	if c1&regs.MCG_C1_IREFS != 0 {
		s |= regs.MCG_S_IREFST
	}
	pll := c6&regs.MCG_C6_PLLS != 0
	if pll {
		s |= regs.MCG_S_PLLST | regs.MCG_S_LOCK0
	}
	switch c1 & regs.MCG_C1_CLKS_Msk {
	case 0:
		if pll {
			s |= regs.MCG_S_CLKST_PLL
		}
	case regs.MCG_C1_CLKS_EXT:
		s |= regs.MCG_S_CLKST_EXT
	default:
		s |= 0x1 << 2
	}
	return cur&^(0xFF<<16) | uint32(s)<<16
}

// CompleteDMA sets the DONE flag of channel ch, as the controller does when
// its byte count is exhausted. The programmed count is left in place so
// tests can inspect it afterwards.
func CompleteDMA(ch uint8) {
	a := regs.DSR(ch)
	mmio.Poke8(a, mmio.Peek8(a)|regs.DMA_DSR_DONE)
}

// Done reports the raw DONE flag of channel ch without clearing it.
func Done(ch uint8) bool {
	return mmio.Peek8(regs.DSR(ch))&regs.DMA_DSR_DONE != 0
}

// OnDMAEnable calls f each time SPI instance n has both its RX and TX DMA
// requests enabled by a write to C2. f runs before the write lands and may
// call CompleteDMA.
func OnDMAEnable(n uint8, f func()) {
	const dmae = uint32(regs.SPI_C2_RXDMAE|regs.SPI_C2_TXDMAE) << 8
	mmio.OnWrite(regs.SPI(n, regs.SPI_C2), func(old, val, mask uint32) uint32 {
		next := old&^mask | val&mask
		if mask&0xFF00 != 0 && next&dmae == dmae {
			f()
		}
		return next
	})
}

// OnStore calls f with each 32-bit word stored to addr's register word, after
// the store is applied. It replaces any model installed for that word.
func OnStore(addr uintptr, f func(word uint32)) {
	mmio.OnWrite(addr, func(old, val, mask uint32) uint32 {
		next := old&^mask | val&mask
		f(next)
		return next
	})
}
