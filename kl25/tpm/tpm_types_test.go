package tpm

import (
	"testing"

	"kl25-go/kl25/internal/typecheck"
)

func TestTimerPinsCompile(t *testing.T) {
	typecheck.Accepts(t, "./testdata/ok")
}

func TestRejectsPinOnWrongChannel(t *testing.T) {
	typecheck.Rejects(t, "./testdata/wrongchannel", "satisfy", "TimerAlt")
}

func TestRejectsPinOnWrongTimer(t *testing.T) {
	typecheck.Rejects(t, "./testdata/wrongtimer", "satisfy", "TimerAlt")
}

func TestRejectsDualSplitOfTPM0(t *testing.T) {
	typecheck.Rejects(t, "./testdata/dualonhex", "satisfy", "DualTimer")
}
