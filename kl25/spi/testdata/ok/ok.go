package ok

import (
	"kl25-go/kl25"
	"kl25-go/kl25/spi"
)

func Bus(p kl25.Peripherals) {
	spi.New(p.SPI0, p.DMA0, p.DMA1, p.PTD1, p.PTD2, p.PTD3)
	spi.New(p.SPI1, p.DMA2, p.DMA3, p.PTE2, p.PTE1, p.PTE3)
	// MOSI and MISO swap onto their alternate functions.
	spi.New(p.SPI0, p.DMA0, p.DMA1, p.PTC5, p.PTC7, p.PTC6)
}
