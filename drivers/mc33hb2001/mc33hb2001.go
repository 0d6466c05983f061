// Package mc33hb2001 drives the NXP MC33HB2001 H-bridge over SPI.
//
// Every register access is one 16-bit frame, MSB first: bit 15 selects
// write, bits 14..13 the register, bits 12..0 carry data. The device
// answers a frame during the following one, so a read costs two frames.
//
// The bus must frame each Tx with its own chip select (see kl25/spidev).
package mc33hb2001

import (
	"time"

	"tinygo.org/x/drivers"

	"kl25-go/errcode"
	"kl25-go/x/conv"
)

// OutputPin sets an output level.
type OutputPin func(level bool)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// PowerUpDelay separates raising EN from the first frame. Default 1 ms.
	PowerUpDelay time.Duration
}

func DefaultConfig() Config {
	return Config{PowerUpDelay: time.Millisecond}
}

// Device is an MC33HB2001 with its EN and DIS lines.
type Device struct {
	spi     drivers.SPI
	enable  OutputPin
	disable OutputPin
	cfg     Config

	w [2]byte
	r [2]byte
}

// New creates the driver. It does not touch the device; call Configure.
func New(spi drivers.SPI, enable, disable OutputPin, cfg Config) *Device {
	if cfg.PowerUpDelay <= 0 {
		cfg.PowerUpDelay = DefaultConfig().PowerUpDelay
	}
	return &Device{spi: spi, enable: enable, disable: disable, cfg: cfg}
}

// Configure powers the bridge up and checks it responds sensibly: the
// identification register must read Ident, and a changed configuration must
// read back unchanged. The register is left at DefaultConfiguration.
//
// Errors carry errcode.Bus, errcode.IncorrectIdent or
// errcode.ReadBackMismatch. Nothing is retried.
func (d *Device) Configure() error {
	const op = "mc33hb2001.Configure"

	d.disable(false)
	d.enable(true)
	time.Sleep(d.cfg.PowerUpDelay)

	ident, err := d.read(regIdentification)
	if err != nil {
		return errcode.Wrap(errcode.Bus, op, err)
	}
	if ident != Ident {
		var buf [4]byte
		return &errcode.E{C: errcode.IncorrectIdent, Op: op, Msg: "ident 0x" + string(conv.U16Hex(buf[:], ident))}
	}
	for _, reg := range [...]uint16{regFaultStatusMask, regConfigAndControl, regStatus} {
		if _, err := d.read(reg); err != nil {
			return errcode.Wrap(errcode.Bus, op, err)
		}
	}

	if err := d.write(regConfigAndControl, uint16(selfTest)); err != nil {
		return errcode.Wrap(errcode.Bus, op, err)
	}
	got, err := d.read(regConfigAndControl)
	if err != nil {
		return errcode.Wrap(errcode.Bus, op, err)
	}
	if got != uint16(selfTest) {
		var buf [4]byte
		return &errcode.E{C: errcode.ReadBackMismatch, Op: op, Msg: "config 0x" + string(conv.U16Hex(buf[:], got))}
	}
	return errcode.Wrap(errcode.Bus, op, d.write(regConfigAndControl, uint16(DefaultConfiguration)))
}

// Configuration reads the configuration and control register.
func (d *Device) Configuration() (Configuration, error) {
	v, err := d.read(regConfigAndControl)
	return Configuration(v), err
}

func (d *Device) SetConfiguration(c Configuration) error {
	return d.write(regConfigAndControl, uint16(c))
}

// Status reads the latched faults.
func (d *Device) Status() (Status, error) {
	v, err := d.read(regStatus)
	return Status(v), err
}

// ClearStatus clears the flags set in s.
func (d *Device) ClearStatus(s Status) error {
	return d.write(regStatus, uint16(s))
}

func (d *Device) StatusMask() (StatusMask, error) {
	v, err := d.read(regFaultStatusMask)
	return StatusMask(v), err
}

func (d *Device) SetStatusMask(m StatusMask) error {
	return d.write(regFaultStatusMask, uint16(m))
}
