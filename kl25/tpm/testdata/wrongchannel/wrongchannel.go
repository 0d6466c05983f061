package wrongchannel

import (
	"kl25-go/kl25"
	"kl25-go/kl25/tpm"
)

// PTB18 is TPM2 channel 0.
func LED(p kl25.Peripherals) {
	dual := tpm.SplitDual(tpm.NewPWM(p.TPM2))
	tpm.UseWith(dual.Ch1, p.PTB18)
}
