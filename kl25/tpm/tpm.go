// Package tpm drives the timer/PWM modules as edge-aligned PWM.
//
// NewPWM takes a timer token and starts its counter. Splitting yields one
// Channel token per compare channel; a Channel combined with a pin that is
// wired to that timer channel becomes an ActiveChannel whose duty cycle can
// be set.
package tpm

import (
	"kl25-go/errcode"
	"kl25-go/kl25"
	"kl25-go/kl25/internal/claim"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
	"kl25-go/kl25/mux"
	"kl25-go/x/mathx"
)

// Period is the modulo programmed by NewPWM. A compare value above it
// holds the output high for the whole period.
const Period = 0xFFFF - 1

// MaxDuty is the compare value for 100% duty.
const MaxDuty = 0xFFFF

// modeAckSpins bounds the wait for a channel mode change to be acknowledged.
// Acknowledgement takes a few TPM counter clocks.
const modeAckSpins = 1000

// PWM owns timer T.
type PWM[T kl25.Timer] struct {
	timer T
}

// NewPWM consumes timer, enables its clock, stops the counter, sets the
// modulo, disables every channel and restarts it counting up from the TPM
// clock.
func NewPWM[T kl25.Timer](timer T) *PWM[T] {
	n := timer.Instance()
	claim.Take("tpm.NewPWM", claim.TPM(n))

	mmio.SetBits32(regs.SIM_SCGC6, regs.TPMClockGate(n))
	mmio.Store32(regs.TPM(n, regs.TPM_SC), 0)
	mmio.Store32(regs.TPM(n, regs.TPM_MOD), Period)
	for ch := uint8(0); ch < regs.TPMChannels(n); ch++ {
		mmio.Store32(regs.CnSC(n, ch), 0)
	}
	mmio.Store32(regs.TPM(n, regs.TPM_SC), regs.TPM_SC_CMOD_INC)

	return &PWM[T]{timer: timer}
}

// Release returns the timer token. Every Channel split from p must have
// been released first, otherwise Release panics with ResourceInUse.
func (p *PWM[T]) Release() T {
	n := p.timer.Instance()
	for ch := uint8(0); ch < regs.TPMChannels(n); ch++ {
		if claim.Owned(claim.TPMChannel(n, ch)) {
			panic(&errcode.E{C: errcode.ResourceInUse, Op: "tpm.Release", Msg: "channel still in use"})
		}
	}
	claim.Give(claim.TPM(n))
	return p.timer
}

// Channel is compare channel N of timer T.
type Channel[T kl25.Timer, N kl25.ChannelNum] struct {
	timer T
	num   N
}

func newChannel[T kl25.Timer, N kl25.ChannelNum](timer T) Channel[T, N] {
	var num N
	claim.Take("tpm.Split", claim.TPMChannel(timer.Instance(), num.Number()))
	return Channel[T, N]{timer: timer}
}

// Release gives the channel back to its timer.
func (c Channel[T, N]) Release() {
	claim.Give(claim.TPMChannel(c.timer.Instance(), c.num.Number()))
}

// Hex holds the six channels of TPM0.
type Hex struct {
	Ch0 Channel[kl25.TPM0, kl25.Ch0]
	Ch1 Channel[kl25.TPM0, kl25.Ch1]
	Ch2 Channel[kl25.TPM0, kl25.Ch2]
	Ch3 Channel[kl25.TPM0, kl25.Ch3]
	Ch4 Channel[kl25.TPM0, kl25.Ch4]
	Ch5 Channel[kl25.TPM0, kl25.Ch5]
}

// SplitHex hands out TPM0's channels.
func SplitHex(p *PWM[kl25.TPM0]) Hex {
	return Hex{
		Ch0: newChannel[kl25.TPM0, kl25.Ch0](p.timer),
		Ch1: newChannel[kl25.TPM0, kl25.Ch1](p.timer),
		Ch2: newChannel[kl25.TPM0, kl25.Ch2](p.timer),
		Ch3: newChannel[kl25.TPM0, kl25.Ch3](p.timer),
		Ch4: newChannel[kl25.TPM0, kl25.Ch4](p.timer),
		Ch5: newChannel[kl25.TPM0, kl25.Ch5](p.timer),
	}
}

// Dual holds the two channels of TPM1 or TPM2.
type Dual[T kl25.DualTimer] struct {
	Ch0 Channel[T, kl25.Ch0]
	Ch1 Channel[T, kl25.Ch1]
}

// SplitDual hands out the channels of a two-channel timer.
func SplitDual[T kl25.DualTimer](p *PWM[T]) Dual[T] {
	return Dual[T]{
		Ch0: newChannel[T, kl25.Ch0](p.timer),
		Ch1: newChannel[T, kl25.Ch1](p.timer),
	}
}

// TimerPin is a pin wired to channel N of timer T.
type TimerPin[T kl25.Timer, N kl25.ChannelNum] interface {
	kl25.Pin
	TimerAlt(T, N) kl25.Alternate
}

// ActiveChannel is a channel generating PWM on pin P.
type ActiveChannel[T kl25.Timer, N kl25.ChannelNum, P TimerPin[T, N]] struct {
	ch   Channel[T, N]
	pin  P
	cnsc uintptr
	cnv  uintptr
}

// UseWith routes pin to the channel and switches the channel to
// edge-aligned, high-true PWM at 0% duty. The channel is disabled first and
// each mode change is confirmed by reading it back; if the timer never
// acknowledges (its counter clock is not running) UseWith gives the pin and
// channel back and panics with errcode.Timeout.
//
// A channel drives one pin at a time: binding it again before Release
// panics with errcode.ResourceInUse.
func UseWith[T kl25.Timer, N kl25.ChannelNum, P TimerPin[T, N]](c Channel[T, N], pin P) *ActiveChannel[T, N, P] {
	n, ch := c.timer.Instance(), c.num.Number()
	claim.Take("tpm.UseWith", claim.TPMOutput(n, ch), claim.Pin(uint8(pin.ID())))
	mux.Route(pin, pin.TimerAlt(c.timer, c.num))

	a := &ActiveChannel[T, N, P]{ch: c, pin: pin, cnsc: regs.CnSC(n, ch), cnv: regs.CnV(n, ch)}

	mmio.Store32(a.cnsc, 0)
	a.awaitMode(0)
	mmio.Store32(a.cnv, 0)
	mmio.Store32(a.cnsc, regs.TPM_CnSC_EPWM_HIGH)
	a.awaitMode(regs.TPM_CnSC_EPWM_HIGH)
	return a
}

func (a *ActiveChannel[T, N, P]) awaitMode(want uint32) {
	for i := 0; i < modeAckSpins; i++ {
		if mmio.Load32(a.cnsc)&regs.TPM_CnSC_MODE_Msk == want {
			return
		}
	}
	a.give()
	panic(&errcode.E{C: errcode.Timeout, Op: "tpm.UseWith", Msg: "channel mode change not acknowledged"})
}

// MaxDuty returns the duty value for 100%.
func (a *ActiveChannel[T, N, P]) MaxDuty() uint16 { return MaxDuty }

// SetDuty sets the compare value; 0 is always low, MaxDuty always high.
func (a *ActiveChannel[T, N, P]) SetDuty(duty uint16) { mmio.Store32(a.cnv, uint32(duty)) }

// Duty returns the current compare value.
func (a *ActiveChannel[T, N, P]) Duty() uint16 { return uint16(mmio.Load32(a.cnv)) }

// SetLevel sets the duty to level/top of full scale. Levels above top
// saturate.
func (a *ActiveChannel[T, N, P]) SetLevel(level, top uint16) {
	if top == 0 {
		a.SetDuty(0)
		return
	}
	a.SetDuty(mathx.MapU16(level, 0, top, 0, MaxDuty))
}

// Release returns the channel and the pin. The output keeps its last duty
// until the channel is reused.
func (a *ActiveChannel[T, N, P]) Release() (Channel[T, N], P) {
	a.give()
	return a.ch, a.pin
}

func (a *ActiveChannel[T, N, P]) give() {
	claim.Give(claim.TPMOutput(a.ch.timer.Instance(), a.ch.num.Number()), claim.Pin(uint8(a.pin.ID())))
}
