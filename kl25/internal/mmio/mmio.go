// Package mmio provides the 8- and 32-bit memory-mapped register accessors
// used by the kl25 packages. On TinyGo the accessors are volatile loads and
// stores; host builds route them to a simulated address space.
package mmio

// SetBits32 ORs m into the 32-bit register at addr.
func SetBits32(addr uintptr, m uint32) { Store32(addr, Load32(addr)|m) }

// ClearBits32 clears m in the 32-bit register at addr.
func ClearBits32(addr uintptr, m uint32) { Store32(addr, Load32(addr)&^m) }

// Modify32 replaces the bits selected by mask with val.
func Modify32(addr uintptr, mask, val uint32) {
	Store32(addr, Load32(addr)&^mask|val&mask)
}

// SetBits8 ORs m into the 8-bit register at addr.
func SetBits8(addr uintptr, m uint8) { Store8(addr, Load8(addr)|m) }

// HasBits8 reports whether every bit of m is set in the 8-bit register at addr.
func HasBits8(addr uintptr, m uint8) bool { return Load8(addr)&m == m }
