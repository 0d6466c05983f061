package mc33hb2001

// Register addresses occupy bits 14..13 of a frame.
const (
	regIdentification   = 0x0000
	regStatus           = 0x2000
	regFaultStatusMask  = 0x4000
	regConfigAndControl = 0x6000

	frameWrite = 0x8000 // bit 15: write
	dataMask   = 0x1FFF // bits 12..0: payload
)

// Ident is the value of the identification register.
const Ident = 0x0002

// CurrentLimit is the active current limit threshold.
type CurrentLimit uint8

const (
	Limit5_4A  CurrentLimit = 0b00
	Limit7_0A  CurrentLimit = 0b01
	Limit8_8A  CurrentLimit = 0b10
	Limit10_7A CurrentLimit = 0b11
)

// SlewRate of the outputs, in V/µs.
type SlewRate uint8

const (
	SlewBypass SlewRate = iota
	Slew16_0
	Slew8_0
	Slew4_0
	Slew2_0
	Slew1_0
	Slew0_5
	Slew0_25
)

type BridgeMode uint8

const (
	HalfBridge BridgeMode = 0
	HBridge    BridgeMode = 1
)

// ControlMode selects whether the IN pins or the SPI virtual inputs drive
// the outputs.
type ControlMode uint8

const (
	Parallel ControlMode = 0
	SPI      ControlMode = 1
)

// Input is a logic level of a virtual input.
type Input uint8

const (
	Low  Input = 0
	High Input = 1
)

// Configuration is the configuration and control register.
//
//	bit 12     check for open load (standby)
//	bit 11     thermal management
//	bit 10     active current limit
//	bits 9..8  current limit
//	bits 7..5  slew rate
//	bit 4      output enable
//	bit 3      bridge mode
//	bit 2      control mode
//	bit 1      virtual input 2
//	bit 0      virtual input 1
type Configuration uint16

// DefaultConfiguration is the register's power-on value: thermal management
// and active limiting on, 7.0 A, 2.0 V/µs, enabled, H-bridge, parallel
// control, both virtual inputs low.
const DefaultConfiguration Configuration = 0x0D98

// selfTest differs from DefaultConfiguration in the slew rate field.
const selfTest Configuration = 0x0DD8

const (
	cfgOpenLoad      = 12
	cfgThermal       = 11
	cfgActiveLimit   = 10
	cfgCurrentLimit  = 8
	cfgSlewRate      = 5
	cfgEnable        = 4
	cfgBridgeMode    = 3
	cfgControlMode   = 2
	cfgVirtualInput2 = 1
	cfgVirtualInput1 = 0
)

func (c Configuration) get(shift, width uint) uint16 {
	return uint16(c) >> shift & (1<<width - 1)
}

func (c Configuration) set(shift, width uint, v uint16) Configuration {
	m := uint16(1<<width-1) << shift
	return Configuration(uint16(c)&^m | v<<shift&m)
}

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func (c Configuration) CheckForOpenLoad() bool     { return c.get(cfgOpenLoad, 1) != 0 }
func (c Configuration) ThermalManagement() bool    { return c.get(cfgThermal, 1) != 0 }
func (c Configuration) ActiveCurrentLimit() bool   { return c.get(cfgActiveLimit, 1) != 0 }
func (c Configuration) CurrentLimit() CurrentLimit { return CurrentLimit(c.get(cfgCurrentLimit, 2)) }
func (c Configuration) SlewRate() SlewRate         { return SlewRate(c.get(cfgSlewRate, 3)) }
func (c Configuration) Enable() bool               { return c.get(cfgEnable, 1) != 0 }
func (c Configuration) BridgeMode() BridgeMode     { return BridgeMode(c.get(cfgBridgeMode, 1)) }
func (c Configuration) ControlMode() ControlMode   { return ControlMode(c.get(cfgControlMode, 1)) }
func (c Configuration) VirtualInput2() Input       { return Input(c.get(cfgVirtualInput2, 1)) }
func (c Configuration) VirtualInput1() Input       { return Input(c.get(cfgVirtualInput1, 1)) }

func (c Configuration) WithCheckForOpenLoad(v bool) Configuration {
	return c.set(cfgOpenLoad, 1, b2u(v))
}
func (c Configuration) WithThermalManagement(v bool) Configuration {
	return c.set(cfgThermal, 1, b2u(v))
}
func (c Configuration) WithActiveCurrentLimit(v bool) Configuration {
	return c.set(cfgActiveLimit, 1, b2u(v))
}
func (c Configuration) WithCurrentLimit(v CurrentLimit) Configuration {
	return c.set(cfgCurrentLimit, 2, uint16(v))
}
func (c Configuration) WithSlewRate(v SlewRate) Configuration {
	return c.set(cfgSlewRate, 3, uint16(v))
}
func (c Configuration) WithEnable(v bool) Configuration { return c.set(cfgEnable, 1, b2u(v)) }
func (c Configuration) WithBridgeMode(v BridgeMode) Configuration {
	return c.set(cfgBridgeMode, 1, uint16(v))
}
func (c Configuration) WithControlMode(v ControlMode) Configuration {
	return c.set(cfgControlMode, 1, uint16(v))
}
func (c Configuration) WithVirtualInput2(v Input) Configuration {
	return c.set(cfgVirtualInput2, 1, uint16(v))
}
func (c Configuration) WithVirtualInput1(v Input) Configuration {
	return c.set(cfgVirtualInput1, 1, uint16(v))
}

// Status is the latched fault register. Writing a flag back clears it.
type Status uint16

const (
	OvertemperatureShutdown Status = 1 << iota
	ThermalWarning
	Overcurrent
	OpenLoad
	ShortToGround1
	ShortToGround2
	ShortToPower1
	ShortToPower2
	VPWROvervoltage
	VPWRUndervoltage
	ChargePumpOvervoltage
	SPIFramingError

	allFaults Status = 1<<12 - 1
)

// Has reports whether every flag in f is set.
func (s Status) Has(f Status) bool { return s&f == f }

// Faults reports whether any flag is set.
func (s Status) Faults() bool { return s&allFaults != 0 }

// StatusMask selects which faults are reported; bit 12 downgrades VPWR
// overvoltage to a warning.
type StatusMask uint16

const maskDisableOvervoltage StatusMask = 1 << 12

// Masked reports whether every fault in f is masked.
func (m StatusMask) Masked(f Status) bool { return Status(m)&f == f }

func (m StatusMask) WithMasked(f Status, on bool) StatusMask {
	f &= allFaults
	if on {
		return m | StatusMask(f)
	}
	return m &^ StatusMask(f)
}

func (m StatusMask) DisableOvervoltage() bool { return m&maskDisableOvervoltage != 0 }

func (m StatusMask) WithDisableOvervoltage(on bool) StatusMask {
	if on {
		return m | maskDisableOvervoltage
	}
	return m &^ maskDisableOvervoltage
}
