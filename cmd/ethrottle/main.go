//go:build tinygo

// Command ethrottle exercises an MC33HB2001 H-bridge on a FRDM-KL25Z.
//
// The bridge is driven in SPI control mode and its second virtual input is
// pulsed with a duty that sweeps from 10% to 90% every 800 ms. The RGB LED's
// red and green channels fade against each other at the same time.
package main

import (
	"time"

	"kl25-go/drivers/mc33hb2001"
	"kl25-go/kl25"
	"kl25-go/kl25/gpio"
	"kl25-go/kl25/spi"
	"kl25-go/kl25/spidev"
	"kl25-go/kl25/tpm"
	"kl25-go/x/ramp"
	"kl25-go/x/timex"
)

const (
	pulsePeriod = 1000 // µs
	minOn       = 100
	maxOn       = 900

	ledRate = 1000 // Hz
	hueStep = 10
)

var baseConfig = mc33hb2001.DefaultConfiguration.
	WithBridgeMode(mc33hb2001.HBridge).
	WithControlMode(mc33hb2001.SPI).
	WithVirtualInput1(mc33hb2001.High)

func main() {
	println("boot")

	p := kl25.Steal()

	bus := spi.New(p.SPI0, p.DMA0, p.DMA1, p.PTD1, p.PTD2, p.PTD3)
	dev := spidev.New(bus, gpio.NewOutput(p.PTD0).Set)

	dual := tpm.SplitDual(tpm.NewPWM(p.TPM2))
	r := tpm.UseWith(dual.Ch0, p.PTB18)
	g := tpm.UseWith(dual.Ch1, p.PTB19)
	go cycleLEDs(r, g)

	bridge := mc33hb2001.New(dev,
		gpio.NewOutput(p.PTA17).Set,
		gpio.NewOutput(p.PTE31).Set,
		mc33hb2001.DefaultConfig(),
	)
	if err := bridge.Configure(); err != nil {
		println("mc33hb2001:", err.Error())
		panic(err)
	}
	println("mc33hb2001 ready")

	high := baseConfig.WithVirtualInput2(mc33hb2001.High)
	low := baseConfig.WithVirtualInput2(mc33hb2001.Low)

	on := minOn
	for {
		if on >= maxOn {
			on = minOn
		} else {
			on++
		}

		time.Sleep(time.Duration(pulsePeriod-on) * time.Microsecond)
		if err := bridge.SetConfiguration(high); err != nil {
			println("set high:", err.Error())
		}
		time.Sleep(time.Duration(on) * time.Microsecond)
		if err := bridge.SetConfiguration(low); err != nil {
			println("set low:", err.Error())
		}
	}
}

// dutySetter is satisfied by every tpm.ActiveChannel.
type dutySetter interface {
	SetDuty(uint16)
}

// cycleLEDs sweeps hue up and down forever. Red falls as green rises.
func cycleLEDs(r, g dutySetter) {
	tick := time.NewTicker(timex.PeriodFromHz(ledRate))
	defer tick.Stop()
	wait := func(time.Duration) bool {
		<-tick.C
		return true
	}
	set := func(hue uint16) {
		r.SetDuty(tpm.MaxDuty - hue/8)
		g.SetDuty(tpm.MaxDuty/8*7 + hue/8)
	}

	const steps = tpm.MaxDuty / hueStep
	sweep := time.Duration(steps) * timex.PeriodFromHz(ledRate)
	for {
		ramp.Linear(0, tpm.MaxDuty, tpm.MaxDuty, sweep, steps, wait, set)
		ramp.Linear(tpm.MaxDuty, 0, tpm.MaxDuty, sweep, steps, wait, set)
	}
}
