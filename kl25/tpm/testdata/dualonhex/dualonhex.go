package dualonhex

import (
	"kl25-go/kl25"
	"kl25-go/kl25/tpm"
)

func LED(p kl25.Peripherals) {
	tpm.SplitDual(tpm.NewPWM(p.TPM0))
}
