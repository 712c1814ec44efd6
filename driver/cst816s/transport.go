package cst816s

import (
	"fmt"

	"touchpanel.dev/regmap"
)

// Read reads a register and returns its value masked to the declared
// width. Most callers want the typed accessors; Read is for driving
// the register table directly.
func (d *Device) Read(reg regmap.Register) (uint32, error) {
	if !reg.Readable() {
		return 0, &regmap.AccessError{Reg: reg}
	}
	// A combined write-then-read transaction: the register address
	// byte, then the register contents, without releasing the bus in
	// between.
	wr := d.scratch[:1]
	rd := d.scratch[1 : 1+reg.Len()]
	wr[0] = reg.Addr
	if err := d.bus.Tx(d.addr, wr, rd); err != nil {
		return 0, fmt.Errorf("cst816s: read %s: %w", reg.Name, err)
	}
	return reg.Decode(rd), nil
}

// Write writes a register value. Writes to read-only registers and
// values wider than the register are rejected before any bus
// transaction.
func (d *Device) Write(reg regmap.Register, v uint32) error {
	if !reg.Writable() {
		return &regmap.AccessError{Reg: reg, Write: true}
	}
	// The address byte and the payload form a single transaction.
	// Releasing the bus after the address byte would let another
	// master interleave and corrupt the addressed write.
	wr := d.scratch[:1+reg.Len()]
	wr[0] = reg.Addr
	if err := reg.Encode(v, wr[1:]); err != nil {
		return fmt.Errorf("cst816s: write %s: %w", reg.Name, err)
	}
	if err := d.bus.Tx(d.addr, wr, nil); err != nil {
		return fmt.Errorf("cst816s: write %s: %w", reg.Name, err)
	}
	return nil
}
