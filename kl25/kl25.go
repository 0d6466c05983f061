// Package kl25 defines the ownership tokens of the KL25Z128: one zero-size
// type per pin, DMA channel, SPI and TPM instance.
//
// Tokens carry no behaviour. A constructor elsewhere in the HAL consumes
// tokens and returns a composite (an output pin, an SPI master, a PWM
// channel); its Release hands the same tokens back. Which pins may serve
// which peripheral role is expressed as methods on the pin types, so a
// wrong pin does not compile. Double consumption of the same resource
// panics at the constructor.
package kl25

import "kl25-go/kl25/internal/regs"

// PinID encodes a pin as port*32 + index.
type PinID uint8

// Port is 0 for port A through 4 for port E.
func (id PinID) Port() uint8 { return uint8(id) / 32 }

// Index is the pin number within its port.
func (id PinID) Index() uint8 { return uint8(id) % 32 }

func (id PinID) String() string {
	n := id.Index()
	b := []byte{'P', 'T', 'A' + id.Port()}
	if n >= 10 {
		b = append(b, '0'+n/10)
	}
	return string(append(b, '0'+n%10))
}

// Pin is implemented by the pin token types only.
type Pin interface {
	ID() PinID
	isPin()
}

type pin struct{}

func (pin) isPin() {}

// Alternate selects the function routed to a pin (PORTx_PCRn MUX field).
type Alternate uint8

const (
	Disabled Alternate = iota // analog / pin disabled
	Gpio
	Alt2
	Alt3
	Alt4
	Alt5
	Alt6
	Alt7
)

// DMAChannel is implemented by DMA0 .. DMA3.
type DMAChannel interface {
	Channel() uint8
	isDMA()
}

type dmaChannel struct{}

func (dmaChannel) isDMA() {}

type DMA0 struct{ dmaChannel }
type DMA1 struct{ dmaChannel }
type DMA2 struct{ dmaChannel }
type DMA3 struct{ dmaChannel }

func (DMA0) Channel() uint8 { return 0 }
func (DMA1) Channel() uint8 { return 1 }
func (DMA2) Channel() uint8 { return 2 }
func (DMA3) Channel() uint8 { return 3 }

// SPIInstance is implemented by SPI0 and SPI1. RxSlot and TxSlot are the
// DMAMUX request sources of the receive-full and transmit-empty events.
type SPIInstance interface {
	Instance() uint8
	RxSlot() uint8
	TxSlot() uint8
	isSPI()
}

type spiInstance struct{}

func (spiInstance) isSPI() {}

type SPI0 struct{ spiInstance }
type SPI1 struct{ spiInstance }

func (SPI0) Instance() uint8 { return 0 }
func (SPI0) RxSlot() uint8   { return regs.SPIRxSlot(0) }
func (SPI0) TxSlot() uint8   { return regs.SPITxSlot(0) }
func (SPI1) Instance() uint8 { return 1 }
func (SPI1) RxSlot() uint8   { return regs.SPIRxSlot(1) }
func (SPI1) TxSlot() uint8   { return regs.SPITxSlot(1) }

// Timer is implemented by TPM0, TPM1 and TPM2.
type Timer interface {
	Instance() uint8
	isTimer()
}

// DualTimer is a timer with two compare channels (TPM1, TPM2).
type DualTimer interface {
	Timer
	dual()
}

type timer struct{}

func (timer) isTimer() {}

type dualTimer struct{ timer }

func (dualTimer) dual() {}

type TPM0 struct{ timer }
type TPM1 struct{ dualTimer }
type TPM2 struct{ dualTimer }

func (TPM0) Instance() uint8 { return 0 }
func (TPM1) Instance() uint8 { return 1 }
func (TPM2) Instance() uint8 { return 2 }

// ChannelNum names a timer compare channel at the type level.
type ChannelNum interface {
	Number() uint8
	isChannel()
}

type channelNum struct{}

func (channelNum) isChannel() {}

type Ch0 struct{ channelNum }
type Ch1 struct{ channelNum }
type Ch2 struct{ channelNum }
type Ch3 struct{ channelNum }
type Ch4 struct{ channelNum }
type Ch5 struct{ channelNum }

func (Ch0) Number() uint8 { return 0 }
func (Ch1) Number() uint8 { return 1 }
func (Ch2) Number() uint8 { return 2 }
func (Ch3) Number() uint8 { return 3 }
func (Ch4) Number() uint8 { return 4 }
func (Ch5) Number() uint8 { return 5 }
