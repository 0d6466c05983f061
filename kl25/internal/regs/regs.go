// Package regs holds the KL25Z128 register addresses and bit fields the HAL
// touches. Index arguments are bounded by the physical instance counts; an
// out-of-range index is a programming error and panics.
package regs

// Instance counts fixed by the chip.
const (
	Ports       = 5
	PinsPerPort = 32
	DMAChannels = 4
	SPIs        = 2
	TPMs        = 3
)

func bound(what string, i, n uint8) {
	if i >= n {
		panic("regs: " + what + " index out of range")
	}
}

// ---- SIM (system integration module) ----

const (
	SIM_SOPT2 uintptr = 0x4004_8004
	SIM_SCGC4 uintptr = 0x4004_8034
	SIM_SCGC5 uintptr = 0x4004_8038
	SIM_SCGC6 uintptr = 0x4004_803C
	SIM_SCGC7 uintptr = 0x4004_8040
	SIM_COPC  uintptr = 0x4004_8100

	SIM_SOPT2_TPMSRC_Msk  = 0x3 << 24
	SIM_SOPT2_TPMSRC_PLL  = 0x1 << 24 // MCGFLLCLK or MCGPLLCLK/2
	SIM_SOPT2_PLLFLLSEL   = 1 << 16
	SIM_SCGC4_SPI0        = 1 << 22
	SIM_SCGC4_SPI1        = 1 << 23
	SIM_SCGC5_PORTA       = 1 << 9
	SIM_SCGC6_DMAMUX      = 1 << 1
	SIM_SCGC6_TPM0        = 1 << 24
	SIM_SCGC7_DMA         = 1 << 8
	SIM_COPC_COPT_DISABLE = 0
)

// PortClockGate is the SCGC5 bit gating the clock of port (0 = A .. 4 = E).
func PortClockGate(port uint8) uint32 {
	bound("port", port, Ports)
	return SIM_SCGC5_PORTA << port
}

// SPIClockGate is the SCGC4 bit gating SPI instance n.
func SPIClockGate(n uint8) uint32 {
	switch n {
	case 0:
		return SIM_SCGC4_SPI0
	case 1:
		return SIM_SCGC4_SPI1
	}
	panic("regs: spi index out of range")
}

// TPMClockGate is the SCGC6 bit gating TPM instance n.
func TPMClockGate(n uint8) uint32 {
	bound("tpm", n, TPMs)
	return SIM_SCGC6_TPM0 << n
}

// ---- MCG (multipurpose clock generator) ----

const (
	MCG_C1 uintptr = 0x4006_4000
	MCG_C2 uintptr = 0x4006_4001
	MCG_C5 uintptr = 0x4006_4004
	MCG_C6 uintptr = 0x4006_4005
	MCG_S  uintptr = 0x4006_4006

	MCG_C1_CLKS_Msk  = 0x3 << 6
	MCG_C1_CLKS_EXT  = 0x2 << 6
	MCG_C1_FRDIV_128 = 0x2 << 3 // RANGE0 high: 8 MHz / 128 = 62.5 kHz
	MCG_C1_IREFS     = 1 << 2
	MCG_C2_RANGE0_HI = 0x1 << 4
	MCG_C2_EREFS0    = 1 << 2
	MCG_C5_PRDIV0_4  = 0x03 // 8 MHz / 4 = 2 MHz PLL reference
	MCG_C6_PLLS      = 1 << 6
	MCG_C6_VDIV0_24  = 0x00 // 2 MHz * 24 = 48 MHz

	MCG_S_LOCK0     = 1 << 6
	MCG_S_PLLST     = 1 << 5
	MCG_S_IREFST    = 1 << 4
	MCG_S_CLKST_Msk = 0x3 << 2
	MCG_S_CLKST_EXT = 0x2 << 2
	MCG_S_CLKST_PLL = 0x3 << 2
	MCG_S_OSCINIT0  = 1 << 1
)

// ---- PORT (pin control) ----

const (
	portBase   uintptr = 0x4004_9000
	portStride uintptr = 0x1000

	PORT_PCR_MUX_Pos = 8
	PORT_PCR_MUX_Msk = 0x7 << PORT_PCR_MUX_Pos
)

// PCR is the pin control register of pin n on port.
func PCR(port, n uint8) uintptr {
	bound("port", port, Ports)
	bound("pin", n, PinsPerPort)
	return portBase + uintptr(port)*portStride + 4*uintptr(n)
}

// ---- GPIO ----

const (
	gpioBase   uintptr = 0x400F_F000
	gpioStride uintptr = 0x40

	GPIO_PDOR = 0x00
	GPIO_PSOR = 0x04
	GPIO_PCOR = 0x08
	GPIO_PTOR = 0x0C
	GPIO_PDIR = 0x10
	GPIO_PDDR = 0x14
)

// GPIO returns the address of register off (GPIO_P*) for port.
func GPIO(port uint8, off uintptr) uintptr {
	bound("port", port, Ports)
	return gpioBase + uintptr(port)*gpioStride + off
}

// ---- DMA ----

const (
	dmaBase   uintptr = 0x4000_8100
	dmaStride uintptr = 0x10

	// DSR_BCR: status byte in bits 31..24, byte count in 23..0.
	DMA_DSR_DONE uint8 = 1 << 0
	DMA_DSR_BSY  uint8 = 1 << 1
	DMA_DSR_REQ  uint8 = 1 << 2
	DMA_DSR_BED  uint8 = 1 << 4
	DMA_DSR_BES  uint8 = 1 << 5
	DMA_DSR_CE   uint8 = 1 << 6

	DMA_BCR_Msk = 0x00FF_FFFF

	DMA_DCR_ERQ       = 1 << 30
	DMA_DCR_CS        = 1 << 29
	DMA_DCR_SINC      = 1 << 22
	DMA_DCR_SSIZE_Msk = 0x3 << 20
	DMA_DCR_SSIZE_8   = 0x1 << 20
	DMA_DCR_DINC      = 1 << 19
	DMA_DCR_DSIZE_Msk = 0x3 << 17
	DMA_DCR_DSIZE_8   = 0x1 << 17
	DMA_DCR_START     = 1 << 16
	DMA_DCR_D_REQ     = 1 << 7
)

// SAR is the source address register of channel ch.
func SAR(ch uint8) uintptr { bound("dma", ch, DMAChannels); return dmaBase + uintptr(ch)*dmaStride }

// DAR is the destination address register of channel ch.
func DAR(ch uint8) uintptr { return SAR(ch) + 0x4 }

// DSR_BCR is the combined status / byte count register of channel ch.
func DSR_BCR(ch uint8) uintptr { return SAR(ch) + 0x8 }

// DSR is the byte alias of the status half of DSR_BCR.
func DSR(ch uint8) uintptr { return SAR(ch) + 0xB }

// DCR is the control register of channel ch.
func DCR(ch uint8) uintptr { return SAR(ch) + 0xC }

// ---- DMAMUX ----

const (
	dmamuxBase uintptr = 0x4002_1000

	DMAMUX_CHCFG_ENBL       = 1 << 7
	DMAMUX_CHCFG_SOURCE_Msk = 0x3F
)

// CHCFG is the DMAMUX slot configuration of DMA channel ch.
func CHCFG(ch uint8) uintptr { bound("dma", ch, DMAChannels); return dmamuxBase + uintptr(ch) }

// ---- SPI ----

const (
	spiBase   uintptr = 0x4007_6000
	spiStride uintptr = 0x1000

	SPI_C1 = 0x0
	SPI_C2 = 0x1
	SPI_BR = 0x2
	SPI_S  = 0x3
	SPI_D  = 0x5

	SPI_C1_SPE      = 1 << 6
	SPI_C1_MSTR     = 1 << 4
	SPI_C2_TXDMAE   = 1 << 5
	SPI_C2_RXDMAE   = 1 << 2
	SPI_BR_SPPR_Pos = 4
)

// SPI returns the address of register off (SPI_*) of instance n.
func SPI(n uint8, off uintptr) uintptr {
	bound("spi", n, SPIs)
	return spiBase + uintptr(n)*spiStride + off
}

// DMAMUX request sources for SPI instance n.
func SPIRxSlot(n uint8) uint8 { bound("spi", n, SPIs); return 16 + 2*n }
func SPITxSlot(n uint8) uint8 { bound("spi", n, SPIs); return 17 + 2*n }

// ---- TPM ----

const (
	tpmBase   uintptr = 0x4003_8000
	tpmStride uintptr = 0x1000

	TPM_SC  = 0x0
	TPM_CNT = 0x4
	TPM_MOD = 0x8

	TPM_SC_CMOD_Msk = 0x3 << 3
	TPM_SC_CMOD_INC = 0x1 << 3

	TPM_CnSC_MSB      = 1 << 5
	TPM_CnSC_MSA      = 1 << 4
	TPM_CnSC_ELSB     = 1 << 3
	TPM_CnSC_ELSA     = 1 << 2
	TPM_CnSC_MODE_Msk = TPM_CnSC_MSB | TPM_CnSC_MSA | TPM_CnSC_ELSB | TPM_CnSC_ELSA
	// Edge-aligned PWM, high-true pulses.
	TPM_CnSC_EPWM_HIGH = TPM_CnSC_MSB | TPM_CnSC_ELSB
)

// TPMChannels is the number of compare channels on TPM instance n.
func TPMChannels(n uint8) uint8 {
	bound("tpm", n, TPMs)
	if n == 0 {
		return 6
	}
	return 2
}

// TPM returns the address of register off (TPM_SC/CNT/MOD) of instance n.
func TPM(n uint8, off uintptr) uintptr {
	bound("tpm", n, TPMs)
	return tpmBase + uintptr(n)*tpmStride + off
}

// CnSC is the status/control register of channel ch on TPM n.
func CnSC(n, ch uint8) uintptr {
	bound("tpm channel", ch, TPMChannels(n))
	return TPM(n, 0x0C+8*uintptr(ch))
}

// CnV is the compare value register of channel ch on TPM n.
func CnV(n, ch uint8) uintptr {
	bound("tpm channel", ch, TPMChannels(n))
	return TPM(n, 0x10+8*uintptr(ch))
}
