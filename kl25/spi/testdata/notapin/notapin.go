package notapin

import (
	"kl25-go/kl25"
	"kl25-go/kl25/spi"
)

func Bus(p kl25.Peripherals) {
	spi.New(p.SPI0, p.DMA0, p.PTD1, p.DMA1, p.PTD2, p.PTD3)
}
