// Package claim tracks which physical resources are currently owned.
//
// Tokens are plain values and can be copied, so exclusivity is checked when a
// token is consumed by a constructor and returned by the matching Release.
package claim

import (
	"sync"

	"kl25-go/errcode"
	"kl25-go/kl25/internal/regs"
)

// ID names one physical resource.
type ID uint16

const (
	pinBase     ID = 0
	dmaBase        = pinBase + regs.Ports*regs.PinsPerPort
	spiBase        = dmaBase + regs.DMAChannels
	tpmBase        = spiBase + regs.SPIs
	tpmChanBase    = tpmBase + regs.TPMs
	tpmOutBase     = tpmChanBase + tpmChans
	limit          = tpmOutBase + tpmChans
)

// TPM0 has 6 channels, TPM1 and TPM2 have 2 each.
const tpmChans = 6 + 2 + 2

func Pin(id uint8) ID { return pinBase + ID(id) }
func DMA(ch uint8) ID { return dmaBase + ID(ch) }
func SPI(n uint8) ID  { return spiBase + ID(n) }
func TPM(n uint8) ID  { return tpmBase + ID(n) }

// TPMChannel names compare channel ch of timer n.
func TPMChannel(n, ch uint8) ID { return tpmChanBase + tpmOffset(n, ch) }

// TPMOutput names the PWM output driven by channel ch of timer n. It is
// held while the channel is bound to a pin.
func TPMOutput(n, ch uint8) ID { return tpmOutBase + tpmOffset(n, ch) }

func tpmOffset(n, ch uint8) ID {
	if ch >= regs.TPMChannels(n) {
		panic("claim: tpm channel out of range")
	}
	off := ID(0)
	for i := uint8(0); i < n; i++ {
		off += ID(regs.TPMChannels(i))
	}
	return off + ID(ch)
}

var (
	mu     sync.Mutex
	owned  [(limit + 63) / 64]uint64
	booted bool
)

func (id ID) bit() (int, uint64) { return int(id / 64), 1 << (id % 64) }

// Take marks every id as owned. If any is already owned nothing is taken and
// Take panics with ResourceInUse. op names the consuming constructor.
func Take(op string, ids ...ID) {
	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		w, b := id.bit()
		if owned[w]&b != 0 {
			panic(&errcode.E{C: errcode.ResourceInUse, Op: op, Msg: "resource already consumed"})
		}
	}
	for i, id := range ids {
		for _, prev := range ids[:i] {
			if prev == id {
				panic(&errcode.E{C: errcode.ResourceInUse, Op: op, Msg: "resource passed twice"})
			}
		}
	}
	for _, id := range ids {
		w, b := id.bit()
		owned[w] |= b
	}
}

// Give returns ids to the free pool.
func Give(ids ...ID) {
	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		w, b := id.bit()
		owned[w] &^= b
	}
}

// Owned reports whether id is currently held.
func Owned(id ID) bool {
	mu.Lock()
	defer mu.Unlock()
	w, b := id.bit()
	return owned[w]&b != 0
}

// Boot records root-set materialization. The second call panics with
// AlreadyTaken.
func Boot(op string) {
	mu.Lock()
	defer mu.Unlock()
	if booted {
		panic(&errcode.E{C: errcode.AlreadyTaken, Op: op, Msg: "peripherals already taken"})
	}
	booted = true
}

// Reset forgets every claim and the boot record.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	owned = [len(owned)]uint64{}
	booted = false
}
