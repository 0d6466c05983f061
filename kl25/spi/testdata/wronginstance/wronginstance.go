package wronginstance

import (
	"kl25-go/kl25"
	"kl25-go/kl25/spi"
)

// PTD1..PTD3 belong to SPI0.
func Bus(p kl25.Peripherals) {
	spi.New(p.SPI1, p.DMA0, p.DMA1, p.PTD1, p.PTD2, p.PTD3)
}
