// Package regmap describes byte-addressed device register maps: each
// register's bus address, access mode and size in bits, and the named
// bit fields packed into it.
//
// Register and Field values are static descriptors, declared once per
// chip and never mutated. Decoding never panics; fallible decodes
// report typed errors.
package regmap

import "fmt"

// Access is a register's access mode.
type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}

// Register describes one addressable register.
type Register struct {
	Name   string
	Addr   uint8
	Bits   uint8 // size in bits; may be smaller than a byte
	Access Access
}

// Len returns the number of bytes a bus transfer of the register
// occupies.
func (r Register) Len() int {
	return (int(r.Bits) + 7) / 8
}

// Mask returns the mask of the register's significant bits. For
// sub-byte registers only the low-order bits are significant.
func (r Register) Mask() uint32 {
	return 1<<r.Bits - 1
}

// Readable reports whether the access mode permits reads.
func (r Register) Readable() bool { return r.Access != WriteOnly }

// Writable reports whether the access mode permits writes.
func (r Register) Writable() bool { return r.Access != ReadOnly }

// Decode assembles raw wire bytes, big-endian, into the register
// value masked to the declared width.
func (r Register) Decode(raw []byte) uint32 {
	var v uint32
	for _, b := range raw {
		v = v<<8 | uint32(b)
	}
	return v & r.Mask()
}

// Encode writes v into buf as Len() big-endian bytes. Values wider
// than the register are rejected rather than silently truncated.
func (r Register) Encode(v uint32, buf []byte) error {
	if v&^r.Mask() != 0 {
		return fmt.Errorf("regmap: value %#x exceeds the %d bits of %s", v, r.Bits, r.Name)
	}
	for i := r.Len() - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return nil
}

// Field is a named bit range within a register value, offset from the
// least significant bit.
type Field struct {
	Name string
	Off  uint8
	Bits uint8
}

// Uint extracts the field from a register value, aligned at bit 0.
func (f Field) Uint(v uint32) uint32 {
	return v >> f.Off & (1<<f.Bits - 1)
}

// Bit reports a single-bit field.
func (f Field) Bit(v uint32) bool {
	return v>>f.Off&1 == 1
}

// Insert returns v with the field replaced by fv.
func (f Field) Insert(v, fv uint32) uint32 {
	m := uint32(1<<f.Bits-1) << f.Off
	return v&^m | fv<<f.Off&m
}

// AccessError reports an operation rejected by the register's access
// mode. No bus transaction is issued for a rejected operation.
type AccessError struct {
	Reg   Register
	Write bool
}

func (e *AccessError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return fmt.Sprintf("regmap: %s of %s register %s (%#02x)", op, e.Reg.Access, e.Reg.Name, e.Reg.Addr)
}

// UnknownVariantError reports an enumeration field value with no
// declared variant.
type UnknownVariantError struct {
	Field string
	Raw   uint32
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("regmap: no %s variant for value %#02x", e.Field, e.Raw)
}
