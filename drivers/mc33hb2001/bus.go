package mc33hb2001

// Frame operations (big-endian, one chip-select cycle each).

func (d *Device) frame(v uint16) error {
	d.w[0] = byte(v >> 8)
	d.w[1] = byte(v)
	return d.spi.Tx(d.w[:], d.r[:])
}

func (d *Device) write(reg, data uint16) error {
	return d.frame(data&dataMask | frameWrite | reg)
}

// read sends the request, then a null frame to clock the answer out.
func (d *Device) read(reg uint16) (uint16, error) {
	if err := d.frame(reg); err != nil {
		return 0, err
	}
	if err := d.frame(0); err != nil {
		return 0, err
	}
	return (uint16(d.r[0])<<8 | uint16(d.r[1])) & dataMask, nil
}
