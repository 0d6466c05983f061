//go:build !tinygo

package mmio

import "sync"

// WriteHook computes the value stored in a word when the driver writes val
// into the byte lanes selected by mask. old is the current word.
type WriteHook func(old, val, mask uint32) uint32

// ReadHook computes the value a driver observes when reading a word.
type ReadHook func(cur uint32) uint32

// Simulated address space. Words are keyed by their 4-byte aligned address;
// byte accesses touch one lane of the containing word.
var sim struct {
	mu    sync.Mutex
	words map[uintptr]uint32
	onW   map[uintptr]WriteHook
	onR   map[uintptr]ReadHook
}

func init() { Reset() }

// Reset clears every simulated register and hook.
func Reset() {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	sim.words = make(map[uintptr]uint32)
	sim.onW = make(map[uintptr]WriteHook)
	sim.onR = make(map[uintptr]ReadHook)
}

// OnWrite installs h for the word containing addr. A nil h removes it.
func OnWrite(addr uintptr, h WriteHook) {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	if h == nil {
		delete(sim.onW, addr&^3)
		return
	}
	sim.onW[addr&^3] = h
}

// OnRead installs h for the word containing addr. A nil h removes it.
func OnRead(addr uintptr, h ReadHook) {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	if h == nil {
		delete(sim.onR, addr&^3)
		return
	}
	sim.onR[addr&^3] = h
}

// Peek32 returns the stored word at addr without running hooks.
func Peek32(addr uintptr) uint32 {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	return sim.words[addr&^3]
}

// Poke32 stores v at addr without running hooks.
func Poke32(addr uintptr, v uint32) {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	sim.words[addr&^3] = v
}

// Peek8 returns the stored byte at addr without running hooks.
func Peek8(addr uintptr) uint8 {
	return uint8(Peek32(addr) >> lane(addr))
}

// Poke8 stores v at addr without running hooks.
func Poke8(addr uintptr, v uint8) {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	sh := lane(addr)
	w := sim.words[addr&^3]
	sim.words[addr&^3] = w&^(0xFF<<sh) | uint32(v)<<sh
}

func lane(addr uintptr) uint { return uint(addr&3) * 8 }

func load(base uintptr) uint32 {
	sim.mu.Lock()
	v, h := sim.words[base], sim.onR[base]
	sim.mu.Unlock()
	// Hooks run unlocked so they may Peek other registers.
	if h != nil {
		v = h(v)
	}
	return v
}

func store(base uintptr, val, mask uint32) {
	sim.mu.Lock()
	old, h := sim.words[base], sim.onW[base]
	sim.mu.Unlock()
	next := old&^mask | val&mask
	if h != nil {
		next = h(old, val, mask)
	}
	sim.mu.Lock()
	sim.words[base] = next
	sim.mu.Unlock()
}

func Load32(addr uintptr) uint32 { return load(addr &^ 3) }

func Store32(addr uintptr, v uint32) { store(addr&^3, v, 0xFFFFFFFF) }

func Load8(addr uintptr) uint8 { return uint8(load(addr&^3) >> lane(addr)) }

func Store8(addr uintptr, v uint8) {
	sh := lane(addr)
	store(addr&^3, uint32(v)<<sh, 0xFF<<sh)
}
