//go:build !tinygo

package mmio

import "testing"

func TestByteLanes(t *testing.T) {
	Reset()
	const base = 0x40076000

	Store8(base+0, 0x50)
	Store8(base+2, 0x03)
	Store8(base+3, 0xAA)
	if got := Load32(base); got != 0xAA030050 {
		t.Fatalf("word = %#08x", got)
	}
	if got := Load8(base + 2); got != 0x03 {
		t.Fatalf("lane 2 = %#02x", got)
	}

	SetBits8(base+1, 0x24)
	if !HasBits8(base+1, 0x20) || !HasBits8(base+1, 0x04) {
		t.Fatalf("SetBits8 lost bits: %#08x", Peek32(base))
	}
	if HasBits8(base+1, 0x21) {
		t.Fatalf("HasBits8 matched a partial mask")
	}
}

func TestModifyAndBits32(t *testing.T) {
	Reset()
	const a = 0x40048038
	Store32(a, 0x0000_0180)
	SetBits32(a, 1<<12)
	ClearBits32(a, 0x80)
	if got := Load32(a); got != 0x1100 {
		t.Fatalf("bits = %#x", got)
	}
	Modify32(a, 0x700, 0x200)
	if got := Load32(a); got != 0x1200 {
		t.Fatalf("modify = %#x", got)
	}
}

func TestHooks(t *testing.T) {
	Reset()
	const a = 0x40008108

	// Write-one-to-clear on the top byte lane, plain storage below.
	OnWrite(a, func(old, val, mask uint32) uint32 {
		status := old & 0xFF000000
		if mask&0xFF000000 != 0 && val&0x01000000 != 0 {
			status = 0
		}
		low := old & 0x00FFFFFF
		if mask&0x00FFFFFF != 0 {
			low = val & 0x00FFFFFF
		}
		return status | low
	})
	Poke32(a, 0x01000010)
	Store8(a+3, 0x01)
	if got := Peek32(a); got != 0x00000010 {
		t.Fatalf("w1c left %#08x", got)
	}

	OnRead(a, func(cur uint32) uint32 { return cur | 0x02000000 })
	if got := Load8(a + 3); got != 0x02 {
		t.Fatalf("read hook not applied: %#02x", got)
	}
	OnRead(a, nil)
	if got := Load8(a + 3); got != 0 {
		t.Fatalf("read hook not removed: %#02x", got)
	}
	if got := Peek8(a); got != 0x10 {
		t.Fatalf("Peek8 = %#02x", got)
	}
	Poke8(a+1, 0x22)
	if got := Peek32(a); got != 0x2210 {
		t.Fatalf("Poke8 = %#08x", got)
	}
}
