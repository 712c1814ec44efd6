package cst816s

import (
	"errors"
	"fmt"
)

// Sim is an in-memory CST816S implementing Bus, InputPin and
// OutputPin, for tests and host-side development without a panel. It
// is not safe for concurrent use, matching the single-goroutine
// ownership the driver itself requires.
type Sim struct {
	regs   [256]byte
	irq    bool
	rstLow bool

	// Resets counts completed low-then-high reset pulses.
	Resets int
}

// NewSim returns a simulated controller in its power-on state.
func NewSim() *Sim {
	s := &Sim{}
	s.powerOn()
	return s
}

// powerOn loads the vendor reset values.
func (s *Sim) powerOn() {
	s.regs = [256]byte{}
	s.irq = false
	s.regs[regChipID.Addr] = 0xB4
	s.regs[regIrqPulseWidth.Addr] = 10
	s.regs[regNorScanPer.Addr] = 1
	s.regs[regLpAutoWakeTime.Addr] = 5
	s.regs[regLpScanTH.Addr] = 48
	s.regs[regLpScanWin.Addr] = 3
	s.regs[regLpScanFreq.Addr] = 7
	s.regs[regAutoSleepTime.Addr] = 2
	s.regs[regLongPressTime.Addr] = 10
}

// Touch loads a touch event into the coordinate and gesture registers
// and asserts the interrupt line.
func (s *Sim) Touch(x, y int, g Gesture) {
	s.regs[0x01] = byte(g)
	s.regs[0x02] = 1
	s.regs[0x03] = byte(x >> 8 & 0x0F)
	s.regs[0x04] = byte(x)
	s.regs[0x05] = byte(y >> 8 & 0x0F)
	s.regs[0x06] = byte(y)
	s.irq = true
}

// Release deasserts the interrupt line and clears the finger count.
func (s *Sim) Release() {
	s.irq = false
	s.regs[0x02] = 0
}

// Poke sets a raw register byte, bypassing the driver. Tests use it
// to model malformed device state such as unknown gesture codes.
func (s *Sim) Poke(addr, v byte) {
	s.regs[addr] = v
}

// Tx implements Bus. The first write byte addresses a register;
// remaining write bytes are stored and read bytes served from
// consecutive addresses, mirroring the auto-increment of the real
// part.
func (s *Sim) Tx(addr uint16, w, r []byte) error {
	if addr != DefaultAddr {
		return fmt.Errorf("cst816s: sim: no device at %#x", addr)
	}
	if s.rstLow {
		return errors.New("cst816s: sim: device held in reset")
	}
	if len(w) == 0 {
		return errors.New("cst816s: sim: transaction without register address")
	}
	reg := int(w[0])
	for i, b := range w[1:] {
		s.regs[(reg+i)%len(s.regs)] = b
	}
	for i := range r {
		r[i] = s.regs[(reg+i)%len(s.regs)]
	}
	return nil
}

// Low implements InputPin.
func (s *Sim) Low() (bool, error) {
	return s.irq, nil
}

// Set implements OutputPin. A low-then-high transition re-arms the
// register file with its power-on contents.
func (s *Sim) Set(high bool) error {
	if !high {
		s.rstLow = true
		return nil
	}
	if s.rstLow {
		s.rstLow = false
		s.Resets++
		s.powerOn()
	}
	return nil
}
