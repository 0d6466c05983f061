package wrongsck

import (
	"kl25-go/kl25"
	"kl25-go/kl25/spi"
)

// PTD0 has no SCK function.
func Bus(p kl25.Peripherals) {
	spi.New(p.SPI0, p.DMA0, p.DMA1, p.PTD0, p.PTD2, p.PTD3)
}
