//go:build !tinygo

package kl25_test

import (
	"errors"
	"testing"

	"kl25-go/errcode"
	"kl25-go/kl25"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
	"kl25-go/kl25/internal/simhw"
)

func TestPinID(t *testing.T) {
	cases := []struct {
		p     kl25.Pin
		port  uint8
		index uint8
		name  string
	}{
		{kl25.PTA0{}, 0, 0, "PTA0"},
		{kl25.PTB18{}, 1, 18, "PTB18"},
		{kl25.PTD3{}, 3, 3, "PTD3"},
		{kl25.PTE31{}, 4, 31, "PTE31"},
	}
	for _, c := range cases {
		id := c.p.ID()
		if id.Port() != c.port || id.Index() != c.index || id.String() != c.name {
			t.Fatalf("%s: got port %d index %d name %s", c.name, id.Port(), id.Index(), id)
		}
	}
}

func TestInstanceConstants(t *testing.T) {
	var s kl25.SPIInstance = kl25.SPI1{}
	if s.Instance() != 1 || s.RxSlot() != 18 || s.TxSlot() != 19 {
		t.Fatalf("SPI1 constants wrong")
	}
	var d kl25.DMAChannel = kl25.DMA3{}
	if d.Channel() != 3 {
		t.Fatalf("DMA3 channel = %d", d.Channel())
	}
	var tm kl25.DualTimer = kl25.TPM2{}
	if tm.Instance() != 2 {
		t.Fatalf("TPM2 instance = %d", tm.Instance())
	}
	if (kl25.PTB19{}).TimerAlt(kl25.TPM2{}, kl25.Ch1{}) != kl25.Alt3 {
		t.Fatalf("PTB19 timer alternate")
	}
	if (kl25.PTD3{}).MisoAlt(kl25.SPI0{}) != kl25.Alt2 || (kl25.PTD3{}).MosiAlt(kl25.SPI0{}) != kl25.Alt5 {
		t.Fatalf("PTD3 spi alternates")
	}
}

func TestStealBringsUpClocks(t *testing.T) {
	simhw.Reset()
	kl25.Steal()

	if s := mmio.Load8(regs.MCG_S); s&regs.MCG_S_CLKST_Msk != regs.MCG_S_CLKST_PLL {
		t.Fatalf("MCG not in PEE, S = %#x", s)
	}
	if got := mmio.Load32(regs.SIM_SOPT2); got&regs.SIM_SOPT2_TPMSRC_Msk != regs.SIM_SOPT2_TPMSRC_PLL || got&regs.SIM_SOPT2_PLLFLLSEL == 0 {
		t.Fatalf("SOPT2 = %#x", got)
	}
	if c6 := mmio.Load8(regs.MCG_C6); c6 != regs.MCG_C6_PLLS {
		t.Fatalf("C6 = %#x", c6)
	}
}

func TestStealTwicePanics(t *testing.T) {
	simhw.Reset()
	kl25.Steal()
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, errcode.AlreadyTaken) {
			t.Fatalf("second Steal: recovered %v", err)
		}
	}()
	kl25.Steal()
}
