package kl25

import (
	"kl25-go/kl25/internal/claim"
	"kl25-go/kl25/internal/mmio"
	"kl25-go/kl25/internal/regs"
)

// Steal returns the board's token set and brings the core clock up to
// 48 MHz from the 8 MHz crystal. A second call panics with
// errcode.AlreadyTaken: two token sets would mean two owners of every
// register.
func Steal() Peripherals {
	claim.Boot("kl25.Steal")

	mmio.Store32(regs.SIM_COPC, regs.SIM_COPC_COPT_DISABLE)
	initClock()

	// TPM counters run from MCGPLLCLK/2.
	mmio.Store32(regs.SIM_SOPT2, regs.SIM_SOPT2_TPMSRC_PLL|regs.SIM_SOPT2_PLLFLLSEL)

	return Peripherals{}
}

// initClock walks the MCG from FEI through FBE and PBE to PEE.
func initClock() {
	// FBE: external crystal, high range, core still on the reference.
	mmio.Store8(regs.MCG_C2, regs.MCG_C2_RANGE0_HI|regs.MCG_C2_EREFS0)
	mmio.Store8(regs.MCG_C1, regs.MCG_C1_CLKS_EXT|regs.MCG_C1_FRDIV_128)

	waitStatus(regs.MCG_S_OSCINIT0, regs.MCG_S_OSCINIT0)
	waitStatus(regs.MCG_S_IREFST, 0)
	waitStatus(regs.MCG_S_CLKST_Msk, regs.MCG_S_CLKST_EXT)

	// PBE: 8 MHz / 4 into the PLL, x24.
	mmio.Store8(regs.MCG_C5, regs.MCG_C5_PRDIV0_4)
	mmio.Store8(regs.MCG_C6, regs.MCG_C6_PLLS|regs.MCG_C6_VDIV0_24)

	waitStatus(regs.MCG_S_PLLST, regs.MCG_S_PLLST)
	waitStatus(regs.MCG_S_LOCK0, regs.MCG_S_LOCK0)

	// PEE.
	mmio.Store8(regs.MCG_C1, regs.MCG_C1_FRDIV_128)
	waitStatus(regs.MCG_S_CLKST_Msk, regs.MCG_S_CLKST_PLL)
}

func waitStatus(mask, want uint8) {
	for mmio.Load8(regs.MCG_S)&mask != want {
	}
}
