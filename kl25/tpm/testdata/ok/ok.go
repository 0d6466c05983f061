package ok

import (
	"kl25-go/kl25"
	"kl25-go/kl25/tpm"
)

func LEDs(p kl25.Peripherals) {
	dual := tpm.SplitDual(tpm.NewPWM(p.TPM2))
	tpm.UseWith(dual.Ch0, p.PTB18)
	tpm.UseWith(dual.Ch1, p.PTB19)

	hex := tpm.SplitHex(tpm.NewPWM(p.TPM0))
	tpm.UseWith(hex.Ch4, p.PTE31)
	tpm.UseWith(hex.Ch5, p.PTA0)
}
