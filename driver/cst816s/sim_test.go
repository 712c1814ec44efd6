package cst816s

import (
	"image"
	"testing"
	"time"
)

func newSimDevice() (*Sim, *Device) {
	sim := NewSim()
	return sim, New(sim, 0, sim, sim)
}

func TestSimEndToEnd(t *testing.T) {
	sim, d := newSimDevice()
	if err := d.Reset(func(time.Duration) {}); err != nil {
		t.Fatal(err)
	}
	if sim.Resets != 1 {
		t.Errorf("%d reset pulses, want 1", sim.Resets)
	}
	if id, err := d.ChipID(); err != nil || id != 0xB4 {
		t.Errorf("chip id %#02x (%v), want 0xb4", id, err)
	}

	if _, ok := d.PollEvent(); ok {
		t.Error("event before any touch")
	}
	sim.Touch(120, 340, SingleClick)
	ev, ok := d.PollEvent()
	if !ok {
		t.Fatal("no event after touch")
	}
	if want := image.Pt(120, 340); ev.Point != want || ev.Gesture != SingleClick {
		t.Errorf("event %v %v, want %v single click", ev.Point, ev.Gesture, want)
	}
	if n, err := d.FingerNum(); err != nil || n != 1 {
		t.Errorf("finger count %d (%v), want 1", n, err)
	}
	sim.Release()
	if _, ok := d.PollEvent(); ok {
		t.Error("event after release")
	}
	if n, err := d.FingerNum(); err != nil || n != 0 {
		t.Errorf("finger count %d (%v), want 0", n, err)
	}
}

func TestSimUnknownGesture(t *testing.T) {
	sim, d := newSimDevice()
	sim.Touch(10, 20, SingleClick)
	sim.Poke(0x01, 0x0A)
	if _, ok := d.PollEvent(); ok {
		t.Error("event with malformed gesture byte")
	}
	// The typed accessor reports the decode failure instead.
	if _, err := d.GestureID(); err == nil {
		t.Error("GestureID accepted unknown code")
	}
}

func TestMotionMaskRoundTrip(t *testing.T) {
	_, d := newSimDevice()
	want := MotionMask{DoubleClick: true, ContinuousLeftRight: true}
	if err := d.SetMotionMask(want); err != nil {
		t.Fatal(err)
	}
	got, err := d.MotionMask()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("mask %+v, want %+v", got, want)
	}
}

func TestIrqCtlRoundTrip(t *testing.T) {
	_, d := newSimDevice()
	want := IrqCtl{EnMotion: true, EnTouch: true, OnceWLP: true}
	if err := d.SetIrqCtl(want); err != nil {
		t.Fatal(err)
	}
	got, err := d.IrqCtl()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("irq ctl %+v, want %+v", got, want)
	}
}

func TestSimResetDefaults(t *testing.T) {
	_, d := newSimDevice()
	if err := d.SetIrqPulseWidth(100); err != nil {
		t.Fatal(err)
	}
	if err := d.Reset(func(time.Duration) {}); err != nil {
		t.Fatal(err)
	}
	if w, err := d.IrqPulseWidth(); err != nil || w != 10 {
		t.Errorf("pulse width after reset %d (%v), want the default 10", w, err)
	}
	if s, err := d.AutoSleepTime(); err != nil || s != 2 {
		t.Errorf("auto sleep time %d (%v), want the default 2", s, err)
	}
	if s, err := d.LongPressTime(); err != nil || s != 10 {
		t.Errorf("long press time %d (%v), want the default 10", s, err)
	}
}

func TestSimInReset(t *testing.T) {
	sim, d := newSimDevice()
	if err := sim.Set(false); err != nil {
		t.Fatal(err)
	}
	if _, err := d.ChipID(); err == nil {
		t.Error("read succeeded while the device is held in reset")
	}
}
