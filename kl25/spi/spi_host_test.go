//go:build !tinygo

package spi

import (
	"bytes"
	"errors"
	"testing"
	"time"
	"unsafe"

	"kl25-go/errcode"
	"kl25-go/kl25"
	"kl25-go/kl25/dma"
	"kl25-go/kl25/gpio"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
	"kl25-go/kl25/internal/simhw"
	"kl25-go/kl25/mux"
)

type bus = Master[kl25.SPI0, kl25.DMA0, kl25.DMA1, kl25.PTD1, kl25.PTD2, kl25.PTD3]

func newBus(t *testing.T) *bus {
	t.Helper()
	simhw.Reset()
	return New(kl25.SPI0{}, kl25.DMA0{}, kl25.DMA1{}, kl25.PTD1{}, kl25.PTD2{}, kl25.PTD3{})
}

// slave models the far end of SPI0. Buffers are found by the addresses the
// channels were programmed with, then bytes are moved the way the two
// channels would move them, one per shift-register cycle.
type slave struct {
	bufs map[uint32][]byte
	miso []byte // next bytes to shift in
	mosi []byte // everything shifted out
	xfer int
}

func attach(m *bus, miso ...byte) *slave {
	s := &slave{bufs: map[uint32][]byte{}, miso: miso}
	s.register(unsafe.Slice(&m.filler, 1))
	s.register(unsafe.Slice(&m.scratch, 1))
	s.register(m.one[:1])
	s.register(m.one[1:])
	simhw.OnDMAEnable(0, s.run)
	return s
}

func (s *slave) register(b []byte) { s.bufs[address(b)] = b }

func (s *slave) run() {
	tx, rx := dma.ReadConfig(kl25.DMA0{}), dma.ReadConfig(kl25.DMA1{})
	src, dst := s.bufs[tx.Source], s.bufs[rx.Destination]
	for i := 0; i < int(tx.Length); i++ {
		out := src[0]
		if tx.IncSource {
			out = src[i]
		}
		s.mosi = append(s.mosi, out)

		var in byte
		if len(s.miso) > 0 {
			in, s.miso = s.miso[0], s.miso[1:]
		}
		if rx.IncDest {
			dst[i] = in
		} else {
			dst[0] = in
		}
	}
	s.xfer++
	simhw.CompleteDMA(0)
	simhw.CompleteDMA(1)
}

func TestNewConfiguresHardware(t *testing.T) {
	newBus(t)

	if mmio.Load32(regs.SIM_SCGC5)&regs.PortClockGate(3) == 0 {
		t.Fatalf("PORTD clock gated")
	}
	for _, p := range []kl25.Pin{kl25.PTD1{}, kl25.PTD2{}, kl25.PTD3{}} {
		if mux.Alternate(p) != kl25.Alt2 {
			t.Fatalf("%s alternate = %d", p.ID(), mux.Alternate(p))
		}
	}
	if mmio.Load32(regs.SIM_SCGC4)&regs.SIM_SCGC4_SPI0 == 0 {
		t.Fatalf("SPI0 clock gated")
	}
	if br := mmio.Load8(regs.SPI(0, regs.SPI_BR)); br != DefaultBaud {
		t.Fatalf("BR = %#x", br)
	}
	if mmio.Load32(regs.SIM_SCGC7)&regs.SIM_SCGC7_DMA == 0 {
		t.Fatalf("DMA clock gated")
	}
	if mmio.Load32(regs.SIM_SCGC6)&regs.SIM_SCGC6_DMAMUX == 0 {
		t.Fatalf("DMAMUX clock gated")
	}
	if got := mmio.Load8(regs.CHCFG(0)); got != regs.DMAMUX_CHCFG_ENBL|17 {
		t.Fatalf("CHCFG0 = %#x, want TX slot 17 enabled", got)
	}
	if got := mmio.Load8(regs.CHCFG(1)); got != regs.DMAMUX_CHCFG_ENBL|16 {
		t.Fatalf("CHCFG1 = %#x, want RX slot 16 enabled", got)
	}
	if c1 := mmio.Load8(regs.SPI(0, regs.SPI_C1)); c1 != regs.SPI_C1_SPE|regs.SPI_C1_MSTR {
		t.Fatalf("C1 = %#x", c1)
	}
}

func TestTxEndToEnd(t *testing.T) {
	m := newBus(t)
	s := attach(m, 0x12, 0x34)
	w := []byte{0xAA, 0x55}
	r := make([]byte, 2)
	s.register(w)
	s.register(r)

	if err := m.Tx(w, r); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if !bytes.Equal(r, []byte{0x12, 0x34}) {
		t.Fatalf("read % x", r)
	}
	if !bytes.Equal(s.mosi, w) {
		t.Fatalf("clocked out % x", s.mosi)
	}
	if simhw.Done(0) || simhw.Done(1) {
		t.Fatalf("DONE left set after Tx")
	}
	if c2 := mmio.Load8(regs.SPI(0, regs.SPI_C2)); c2 != regs.SPI_C2_RXDMAE|regs.SPI_C2_TXDMAE {
		t.Fatalf("C2 = %#x", c2)
	}
}

func TestTxProgramsBufferAddresses(t *testing.T) {
	m := newBus(t)
	s := attach(m)
	for _, n := range []int{1, 2, 7, 64, 513} {
		w := make([]byte, n)
		r := make([]byte, n)
		for i := range w {
			w[i] = byte(i * 3)
		}
		s.register(w)
		s.register(r)
		if err := m.Tx(w, r); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		tx := dma.ReadConfig(kl25.DMA0{})
		want := dma.Config{
			Source:        address(w),
			Destination:   uint32(regs.SPI(0, regs.SPI_D)),
			Length:        uint16(n),
			IncSource:     true,
			PeriphRequest: true,
		}
		if tx != want {
			t.Fatalf("n=%d: tx config %+v, want %+v", n, tx, want)
		}
		rx := dma.ReadConfig(kl25.DMA1{})
		want = dma.Config{
			Source:        uint32(regs.SPI(0, regs.SPI_D)),
			Destination:   address(r),
			Length:        uint16(n),
			IncDest:       true,
			PeriphRequest: true,
		}
		if rx != want {
			t.Fatalf("n=%d: rx config %+v, want %+v", n, rx, want)
		}
	}
	if s.xfer != 5 {
		t.Fatalf("transfers = %d", s.xfer)
	}
}

func TestReadSendsFiller(t *testing.T) {
	m := newBus(t)
	s := attach(m, 1, 2, 3)
	r := make([]byte, 3)
	s.register(r)

	if err := m.Read(r); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(r, []byte{1, 2, 3}) {
		t.Fatalf("read % x", r)
	}
	if !bytes.Equal(s.mosi, []byte{Filler, Filler, Filler}) {
		t.Fatalf("clocked out % x", s.mosi)
	}
	tx := dma.ReadConfig(kl25.DMA0{})
	if tx.IncSource || tx.Length != 3 {
		t.Fatalf("tx config %+v", tx)
	}
}

func TestWriteDrainsReceive(t *testing.T) {
	m := newBus(t)
	s := attach(m, 9, 9)
	w := []byte{0xC0, 0xDE}
	s.register(w)

	if err := m.Write(w); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(s.mosi, w) {
		t.Fatalf("clocked out % x", s.mosi)
	}
	rx := dma.ReadConfig(kl25.DMA1{})
	if rx.IncDest || rx.Length != 2 || rx.Destination != address(unsafe.Slice(&m.scratch, 1)) {
		t.Fatalf("rx config %+v", rx)
	}
}

func TestTransferByte(t *testing.T) {
	m := newBus(t)
	attach(m, 0x5A)
	got, err := m.Transfer(0xA5)
	if err != nil || got != 0x5A {
		t.Fatalf("Transfer = %#x, %v", got, err)
	}
}

func TestTxRejectsBadLengths(t *testing.T) {
	m := newBus(t)
	s := attach(m)

	if err := m.Tx(make([]byte, 2), make([]byte, 3)); !errors.Is(err, errcode.LengthMismatch) {
		t.Fatalf("mismatch: %v", err)
	}
	if err := m.Tx(make([]byte, 1<<16), nil); !errors.Is(err, errcode.TooLong) {
		t.Fatalf("too long: %v", err)
	}
	if err := m.Tx(nil, nil); err != nil {
		t.Fatalf("empty: %v", err)
	}
	if s.xfer != 0 || mmio.Load32(regs.DCR(0)) != 0 || mmio.Load32(regs.DCR(1)) != 0 {
		t.Fatalf("rejected transfer touched the hardware")
	}
}

func TestTxWaitsForBothChannels(t *testing.T) {
	m := newBus(t)
	simhw.OnDMAEnable(0, func() { simhw.CompleteDMA(0) })

	returned := make(chan error, 1)
	go func() { returned <- m.Write([]byte{1}) }()

	select {
	case <-returned:
		t.Fatalf("Tx returned before RX completed")
	case <-time.After(20 * time.Millisecond):
	}
	simhw.CompleteDMA(1)
	select {
	case err := <-returned:
		if err != nil {
			t.Fatalf("Write: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Tx never returned")
	}
}

func TestReleaseReturnsTokens(t *testing.T) {
	m := newBus(t)
	spi, tx, rx, sck, mosi, miso := m.Release()

	led := gpio.NewOutput(sck)
	if mux.Alternate(kl25.PTD1{}) != kl25.Gpio {
		t.Fatalf("released SCK not reusable as GPIO")
	}
	led.Release()

	// The full set rebuilds a bus.
	New(spi, tx, rx, sck, mosi, miso)
}

func TestTokensInUsePanic(t *testing.T) {
	newBus(t)
	cases := map[string]func(){
		"pin as gpio": func() { gpio.NewOutput(kl25.PTD2{}) },
		"second bus":  func() { New(kl25.SPI0{}, kl25.DMA2{}, kl25.DMA3{}, kl25.PTC5{}, kl25.PTC6{}, kl25.PTC7{}) },
		"shared dma":  func() { New(kl25.SPI1{}, kl25.DMA0{}, kl25.DMA3{}, kl25.PTE2{}, kl25.PTE1{}, kl25.PTE3{}) },
	}
	for name, f := range cases {
		func() {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, errcode.ResourceInUse) {
					t.Fatalf("%s: recovered %v", name, err)
				}
			}()
			f()
		}()
	}
}

func TestSameChannelTwicePanics(t *testing.T) {
	simhw.Reset()
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, errcode.ResourceInUse) {
			t.Fatalf("recovered %v", err)
		}
	}()
	New(kl25.SPI1{}, kl25.DMA2{}, kl25.DMA2{}, kl25.PTE2{}, kl25.PTE1{}, kl25.PTE3{})
}
