package wrongtimer

import (
	"kl25-go/kl25"
	"kl25-go/kl25/tpm"
)

func LED(p kl25.Peripherals) {
	dual := tpm.SplitDual(tpm.NewPWM(p.TPM1))
	tpm.UseWith(dual.Ch0, p.PTB18)
}
