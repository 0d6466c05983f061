// Package spi is an SPI master whose transfers run on two DMA channels.
//
// A Master owns the SPI instance, a TX and an RX DMA channel, and the SCK,
// MOSI and MISO pins. Each transaction arms the RX channel to drain the
// data register and the TX channel to feed it, enables the SPI's DMA
// requests, and yields until both channels report completion.
package spi

import (
	"math"
	"runtime"
	"unsafe"

	"tinygo.org/x/drivers"

	"kl25-go/errcode"
	"kl25-go/kl25"
	"kl25-go/kl25/dma"
	"kl25-go/kl25/internal/claim"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
	"kl25-go/kl25/mux"
)

// Pin roles for instance S. The implementing pin types and their
// alternates are listed in package kl25.
type (
	SckPin[S kl25.SPIInstance] interface {
		kl25.Pin
		SckAlt(S) kl25.Alternate
	}
	MosiPin[S kl25.SPIInstance] interface {
		kl25.Pin
		MosiAlt(S) kl25.Alternate
	}
	MisoPin[S kl25.SPIInstance] interface {
		kl25.Pin
		MisoAlt(S) kl25.Alternate
	}
)

// DefaultBaud is the BR value programmed by New: prescaler 1, divider 16.
const DefaultBaud = 0<<regs.SPI_BR_SPPR_Pos | 0x3

// Filler is clocked out during read-only transfers.
const Filler byte = 0x00

// Master is the DMA-driven SPI master. Only one transaction may be in flight
// per Master; the methods are not safe for concurrent use.
type Master[S kl25.SPIInstance, T, R kl25.DMAChannel, SCK SckPin[S], MOSI MosiPin[S], MISO MisoPin[S]] struct {
	spi  S
	tx   T
	rx   R
	sck  SCK
	mosi MOSI
	miso MISO

	filler  byte
	scratch byte
	one     [2]byte
}

var _ drivers.SPI = (*Master[kl25.SPI0, kl25.DMA0, kl25.DMA1, kl25.PTD1, kl25.PTD2, kl25.PTD3])(nil)

// New consumes the six tokens and brings the SPI up in master mode:
// pins routed, SPI clock ungated, baud set, DMAMUX slots of tx and rx
// pointed at the SPI's transmit-empty and receive-full requests, SPI
// enabled. It panics with errcode.ResourceInUse if any token is already in
// use.
func New[S kl25.SPIInstance, T, R kl25.DMAChannel, SCK SckPin[S], MOSI MosiPin[S], MISO MisoPin[S]](
	spi S, tx T, rx R, sck SCK, mosi MOSI, miso MISO,
) *Master[S, T, R, SCK, MOSI, MISO] {
	claim.Take("spi.New",
		claim.SPI(spi.Instance()),
		claim.DMA(tx.Channel()), claim.DMA(rx.Channel()),
		claim.Pin(uint8(sck.ID())), claim.Pin(uint8(mosi.ID())), claim.Pin(uint8(miso.ID())),
	)

	mux.EnablePortClock(sck)
	mux.EnablePortClock(miso)
	mux.EnablePortClock(mosi)
	mux.SetAlternate(sck, sck.SckAlt(spi))
	mux.SetAlternate(miso, miso.MisoAlt(spi))
	mux.SetAlternate(mosi, mosi.MosiAlt(spi))

	n := spi.Instance()
	mmio.SetBits32(regs.SIM_SCGC4, regs.SPIClockGate(n))
	mmio.Store8(regs.SPI(n, regs.SPI_BR), DefaultBaud)

	mmio.SetBits32(regs.SIM_SCGC7, regs.SIM_SCGC7_DMA)
	mmio.SetBits32(regs.SIM_SCGC6, regs.SIM_SCGC6_DMAMUX)
	t, r := regs.CHCFG(tx.Channel()), regs.CHCFG(rx.Channel())
	mmio.Store8(t, 0)
	mmio.Store8(r, 0)
	mmio.Store8(t, spi.TxSlot()&regs.DMAMUX_CHCFG_SOURCE_Msk)
	mmio.Store8(r, spi.RxSlot()&regs.DMAMUX_CHCFG_SOURCE_Msk)
	mmio.SetBits8(t, regs.DMAMUX_CHCFG_ENBL)
	mmio.SetBits8(r, regs.DMAMUX_CHCFG_ENBL)

	mmio.Store8(regs.SPI(n, regs.SPI_C1), regs.SPI_C1_SPE|regs.SPI_C1_MSTR)

	return &Master[S, T, R, SCK, MOSI, MISO]{spi: spi, tx: tx, rx: rx, sck: sck, mosi: mosi, miso: miso}
}

// Release returns the tokens. The hardware is left configured.
func (m *Master[S, T, R, SCK, MOSI, MISO]) Release() (S, T, R, SCK, MOSI, MISO) {
	claim.Give(
		claim.SPI(m.spi.Instance()),
		claim.DMA(m.tx.Channel()), claim.DMA(m.rx.Channel()),
		claim.Pin(uint8(m.sck.ID())), claim.Pin(uint8(m.mosi.ID())), claim.Pin(uint8(m.miso.ID())),
	)
	return m.spi, m.tx, m.rx, m.sck, m.mosi, m.miso
}

// Tx clocks w out while clocking len(w) bytes into r. Either may be empty:
// a nil w sends Filler, a nil r discards what is received. When both are
// non-empty their lengths must match, otherwise errcode.LengthMismatch is
// returned and the bus is not touched. Transfers longer than 65535 bytes
// return errcode.TooLong.
func (m *Master[S, T, R, SCK, MOSI, MISO]) Tx(w, r []byte) error {
	n := len(w)
	switch {
	case n == 0:
		n = len(r)
	case len(r) != 0 && len(r) != n:
		return errcode.LengthMismatch
	}
	if n == 0 {
		return nil
	}
	if n > math.MaxUint16 {
		return errcode.TooLong
	}

	data := uint32(regs.SPI(m.spi.Instance(), regs.SPI_D))

	txc := dma.Config{Destination: data, Length: uint16(n), PeriphRequest: true}
	if len(w) > 0 {
		txc.Source, txc.IncSource = address(w), true
	} else {
		m.filler = Filler
		txc.Source = address(unsafe.Slice(&m.filler, 1))
	}

	rxc := dma.Config{Source: data, Length: uint16(n), PeriphRequest: true}
	if len(r) > 0 {
		rxc.Destination, rxc.IncDest = address(r), true
	} else {
		rxc.Destination = address(unsafe.Slice(&m.scratch, 1))
	}

	dma.Configure(m.tx, txc)
	dma.Configure(m.rx, rxc)

	mmio.Store8(regs.SPI(m.spi.Instance(), regs.SPI_C2), regs.SPI_C2_RXDMAE|regs.SPI_C2_TXDMAE)

	dma.WaitAll(dma.Pending(m.tx), dma.Pending(m.rx))
	runtime.KeepAlive(w)
	runtime.KeepAlive(r)
	return nil
}

// Read fills buf, sending Filler.
func (m *Master[S, T, R, SCK, MOSI, MISO]) Read(buf []byte) error { return m.Tx(nil, buf) }

// Write sends buf and discards the received bytes.
func (m *Master[S, T, R, SCK, MOSI, MISO]) Write(buf []byte) error { return m.Tx(buf, nil) }

// Transfer sends b and returns the byte received in its place.
func (m *Master[S, T, R, SCK, MOSI, MISO]) Transfer(b byte) (byte, error) {
	m.one[0] = b
	if err := m.Tx(m.one[:1], m.one[1:]); err != nil {
		return 0, err
	}
	return m.one[1], nil
}

// Flush is a no-op: Tx returns only after both channels have finished.
func (m *Master[S, T, R, SCK, MOSI, MISO]) Flush() error { return nil }

// address is the bus address of buf's first byte. The core's address space
// is 32 bits wide.
func address(buf []byte) uint32 {
	return uint32(uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}
