// Package cst816s implements a driver for the Hynitron CST816S
// capacitive touch controller, found on round LCD modules and the
// PineTime watch.
//
// The controller is mostly asleep: it answers bus requests only right
// after a reset pulse, or while it signals a pending event by pulling
// the interrupt line low. PollEvent gates every read on the interrupt
// line for that reason; register accessors issued outside such a
// window read garbage or nothing. The chip also enters a low-power
// mode on its own (see SetAutoSleep); the driver does not sequence
// sleep or wake transitions.
package cst816s

import (
	"fmt"
	"image"
	"time"
)

// DefaultAddr is the controller's fixed 7-bit bus address.
const DefaultAddr = 0x15

// Bus is a two-wire serial bus, possibly shared with other devices.
// It is implemented by periph.io's i2c.Bus and by
// tinygo.org/x/drivers.I2C.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// InputPin is the interrupt line from the controller. Low reports
// whether the line is asserted; the controller signals active low.
type InputPin interface {
	Low() (bool, error)
}

// OutputPin is the reset line to the controller.
type OutputPin interface {
	Set(high bool) error
}

// Delay blocks the calling goroutine for at least d. Reset accepts
// nil for time.Sleep; tests inject their own to record the requested
// durations.
type Delay func(d time.Duration)

// Device is a CST816S behind a bus address and two control pins. It
// owns all three resources exclusively; calls must be serialized by
// the caller, typically by polling from a single goroutine.
type Device struct {
	bus  Bus
	addr uint16
	intr InputPin
	rst  OutputPin

	// Reset pulse timings. The vendor documents neither; the defaults
	// are empirically derived and may need tuning per board.
	ResetHold   time.Duration
	ResetSettle time.Duration

	scratch [3]byte
}

// New returns a driver for the controller at addr, taking ownership
// of the bus binding and both pins. An addr of zero selects
// DefaultAddr.
func New(bus Bus, addr uint16, intr InputPin, rst OutputPin) *Device {
	if addr == 0 {
		addr = DefaultAddr
	}
	return &Device{
		bus:         bus,
		addr:        addr,
		intr:        intr,
		rst:         rst,
		ResetHold:   20 * time.Millisecond,
		ResetSettle: 50 * time.Millisecond,
	}
}

// Reset pulses the reset line low and blocks until the controller is
// responsive again, ResetHold+ResetSettle in total. A failure leaves
// the controller in an unknown state and is always reported.
func (d *Device) Reset(delay Delay) error {
	if delay == nil {
		delay = time.Sleep
	}
	if err := d.rst.Set(false); err != nil {
		return fmt.Errorf("cst816s: reset: %w", err)
	}
	delay(d.ResetHold)
	if err := d.rst.Set(true); err != nil {
		return fmt.Errorf("cst816s: reset: %w", err)
	}
	delay(d.ResetSettle)
	return nil
}

// TouchEvent is one decoded touch: the panel coordinates and the
// gesture the controller classified.
type TouchEvent struct {
	Point   image.Point
	Gesture Gesture
}

// PollEvent samples the interrupt line and, if an event is pending,
// reads and decodes it. It reports false when there is no event this
// poll: the line is deasserted or unreadable, a transfer failed, or
// the gesture code is unknown. A partial event is never returned;
// callers simply poll again. Diagnosing failures requires the typed
// accessors, which propagate errors.
func (d *Device) PollEvent() (TouchEvent, bool) {
	low, err := d.intr.Low()
	if err != nil || !low {
		return TouchEvent{}, false
	}
	x, err := d.Read(regXpos)
	if err != nil {
		return TouchEvent{}, false
	}
	y, err := d.Read(regYpos)
	if err != nil {
		return TouchEvent{}, false
	}
	raw, err := d.Read(regGestureID)
	if err != nil {
		return TouchEvent{}, false
	}
	g, err := decodeGesture(raw)
	if err != nil {
		return TouchEvent{}, false
	}
	return TouchEvent{
		Point:   image.Pt(int(fieldPos.Uint(x)), int(fieldPos.Uint(y))),
		Gesture: g,
	}, true
}

// ChipID reads the chip identification register.
func (d *Device) ChipID() (uint8, error) {
	v, err := d.Read(regChipID)
	return uint8(v), err
}

// ProjID reads the project identification register.
func (d *Device) ProjID() (uint8, error) {
	v, err := d.Read(regProjID)
	return uint8(v), err
}

// FwVersion reads the firmware version register.
func (d *Device) FwVersion() (uint8, error) {
	v, err := d.Read(regFwVersion)
	return uint8(v), err
}

// GestureID reads and decodes the gesture register. An unknown code
// is reported as a regmap.UnknownVariantError.
func (d *Device) GestureID() (Gesture, error) {
	v, err := d.Read(regGestureID)
	if err != nil {
		return NoGesture, err
	}
	return decodeGesture(v)
}

// FingerNum reports the number of fingers on the panel, zero or one.
func (d *Device) FingerNum() (int, error) {
	v, err := d.Read(regFingerNum)
	return int(fieldFinger.Uint(v)), err
}

// Position reads the coordinates of the current touch.
func (d *Device) Position() (image.Point, error) {
	x, err := d.Read(regXpos)
	if err != nil {
		return image.Point{}, err
	}
	y, err := d.Read(regYpos)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(int(fieldPos.Uint(x)), int(fieldPos.Uint(y))), nil
}

// BPC reads the two touch channel baseline calibration values.
func (d *Device) BPC() (bpc0, bpc1 uint16, err error) {
	v0, err := d.Read(regBPC0)
	if err != nil {
		return 0, 0, err
	}
	v1, err := d.Read(regBPC1)
	if err != nil {
		return 0, 0, err
	}
	return uint16(v0), uint16(v1), nil
}

// MotionMask selects which motions the controller classifies into
// gestures.
type MotionMask struct {
	DoubleClick         bool
	ContinuousUpDown    bool
	ContinuousLeftRight bool
}

// MotionMask reads the gesture classification mask.
func (d *Device) MotionMask() (MotionMask, error) {
	v, err := d.Read(regMotionMask)
	if err != nil {
		return MotionMask{}, err
	}
	return MotionMask{
		DoubleClick:         fieldEnDClick.Bit(v),
		ContinuousUpDown:    fieldEnConUD.Bit(v),
		ContinuousLeftRight: fieldEnConLR.Bit(v),
	}, nil
}

// SetMotionMask writes the gesture classification mask.
func (d *Device) SetMotionMask(m MotionMask) error {
	var v uint32
	if m.DoubleClick {
		v = fieldEnDClick.Insert(v, 1)
	}
	if m.ContinuousUpDown {
		v = fieldEnConUD.Insert(v, 1)
	}
	if m.ContinuousLeftRight {
		v = fieldEnConLR.Insert(v, 1)
	}
	return d.Write(regMotionMask, v)
}

// IrqPulseWidth reads the interrupt low-pulse width in 0.1ms units.
func (d *Device) IrqPulseWidth() (uint8, error) {
	v, err := d.Read(regIrqPulseWidth)
	return uint8(v), err
}

// SetIrqPulseWidth sets the interrupt low-pulse width in 0.1ms units.
// The controller accepts 1 through 200.
func (d *Device) SetIrqPulseWidth(w uint8) error {
	if w < 1 || w > 200 {
		return fmt.Errorf("cst816s: pulse width %d outside 1-200", w)
	}
	return d.Write(regIrqPulseWidth, uint32(w))
}

// IrqCtl selects when the controller pulses the interrupt line low.
type IrqCtl struct {
	// OnceWLP limits a long press to a single pulse.
	OnceWLP bool
	// EnMotion pulses when a gesture is detected.
	EnMotion bool
	// EnChange pulses when the touch position changes.
	EnChange bool
	// EnTouch pulses while a touch is detected.
	EnTouch bool
	// EnTest generates periodic test pulses.
	EnTest bool
}

// IrqCtl reads the interrupt pulse configuration.
func (d *Device) IrqCtl() (IrqCtl, error) {
	v, err := d.Read(regIrqCtl)
	if err != nil {
		return IrqCtl{}, err
	}
	return IrqCtl{
		OnceWLP:  fieldOnceWLP.Bit(v),
		EnMotion: fieldEnMotion.Bit(v),
		EnChange: fieldEnChange.Bit(v),
		EnTouch:  fieldEnTouch.Bit(v),
		EnTest:   fieldEnTest.Bit(v),
	}, nil
}

// SetIrqCtl writes the interrupt pulse configuration.
func (d *Device) SetIrqCtl(c IrqCtl) error {
	var v uint32
	if c.OnceWLP {
		v = fieldOnceWLP.Insert(v, 1)
	}
	if c.EnMotion {
		v = fieldEnMotion.Insert(v, 1)
	}
	if c.EnChange {
		v = fieldEnChange.Insert(v, 1)
	}
	if c.EnTouch {
		v = fieldEnTouch.Insert(v, 1)
	}
	if c.EnTest {
		v = fieldEnTest.Insert(v, 1)
	}
	return d.Write(regIrqCtl, v)
}

// AutoSleepTime reads the idle delay, in seconds, before the
// controller enters low-power mode on its own.
func (d *Device) AutoSleepTime() (uint8, error) {
	v, err := d.Read(regAutoSleepTime)
	return uint8(v), err
}

// SetAutoSleepTime sets the idle delay, in seconds, before the
// controller enters low-power mode on its own.
func (d *Device) SetAutoSleepTime(s uint8) error {
	return d.Write(regAutoSleepTime, uint32(s))
}

// SetAutoSleep controls whether the controller may enter low-power
// mode on its own. The driver does not otherwise manage power modes.
func (d *Device) SetAutoSleep(enable bool) error {
	var v uint32
	if !enable {
		v = 1
	}
	return d.Write(regDisAutoSleep, v)
}

// LongPressTime reads the delay, in seconds, before a held touch is
// classified as a long press. Zero disables long presses.
func (d *Device) LongPressTime() (uint8, error) {
	v, err := d.Read(regLongPressTime)
	return uint8(v), err
}

// SetLongPressTime sets the delay, in seconds, before a held touch is
// classified as a long press. Zero disables long presses.
func (d *Device) SetLongPressTime(s uint8) error {
	return d.Write(regLongPressTime, uint32(s))
}

// AutoReset reads the delay, in seconds, before the controller resets
// itself when a touch yields no valid gesture. Zero disables it.
func (d *Device) AutoReset() (uint8, error) {
	v, err := d.Read(regAutoReset)
	return uint8(v), err
}

// SetAutoReset sets the delay, in seconds, before the controller
// resets itself when a touch yields no valid gesture. Zero disables
// it.
func (d *Device) SetAutoReset(s uint8) error {
	return d.Write(regAutoReset, uint32(s))
}
