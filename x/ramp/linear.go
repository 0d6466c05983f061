package ramp

import (
	"time"

	"kl25-go/x/mathx"
)

// Step sets the new logical level in [0..top].
type Step func(level uint16)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear runs a synchronous (caller-driven) integer ramp from cur to to.
// Call it from a goroutine and provide Tick to handle timing & cancellation.
// steps==0 or duration==0 snaps to 'to'. It reports whether the ramp ran to
// completion.
func Linear(cur, to, top uint16, duration time.Duration, steps uint16, tick Tick, set Step) bool {
	if steps == 0 || duration <= 0 {
		set(mathx.Min(to, top))
		return true
	}
	d := int32(to) - int32(cur)
	st := int32(steps)
	acc := int32(0)
	cur32 := int32(cur)
	stepDur := mathx.Max(duration/time.Duration(steps), time.Microsecond)

	for i := uint16(1); i < steps; i++ {
		if !tick(stepDur) {
			return false
		}
		acc += d
		inc := acc / st
		if inc != 0 {
			acc -= inc * st
			cur32 = mathx.Clamp(cur32+inc, 0, int32(top))
			set(uint16(cur32))
		}
	}
	if !tick(stepDur) {
		return false
	}
	set(mathx.Min(to, top))
	return true
}
