// Package touch delivers decoded events from a CST816S touch panel
// connected to a Linux host, claiming the bus and pins through
// periph.io.
package touch

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"touchpanel.dev/driver/cst816s"
)

// Event is one decoded touch and the host time it was observed.
type Event struct {
	cst816s.TouchEvent
	Time time.Time
}

// Info identifies the controller, read in the brief window after the
// reset pulse. Fields are zero if identification failed.
type Info struct {
	ChipID    uint8
	ProjID    uint8
	FwVersion uint8
}

// Pump owns a Device and polls it from a single goroutine, the
// concurrency model the driver requires.
type Pump struct {
	Info Info

	bus  i2c.BusCloser
	intr gpio.PinIn
	stop chan struct{}
	done chan struct{}
}

// Open initializes the host, claims the bus and pins named by cfg,
// resets the controller and starts a goroutine that polls it and
// delivers events on ch until Close is called.
func Open(cfg Config, ch chan<- Event) (*Pump, error) {
	cfg.setDefaults()
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("touch: %w", err)
	}
	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("touch: %w", err)
	}
	intr := gpioreg.ByName(cfg.IntPin)
	if intr == nil {
		bus.Close()
		return nil, fmt.Errorf("touch: no pin named %q", cfg.IntPin)
	}
	rst := gpioreg.ByName(cfg.ResetPin)
	if rst == nil {
		bus.Close()
		return nil, fmt.Errorf("touch: no pin named %q", cfg.ResetPin)
	}
	if err := intr.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		bus.Close()
		return nil, fmt.Errorf("touch: %w", err)
	}
	dev := cst816s.New(bus, cfg.Addr, inPin{intr}, outPin{rst})
	if cfg.ResetHoldMs > 0 {
		dev.ResetHold = time.Duration(cfg.ResetHoldMs) * time.Millisecond
	}
	if cfg.ResetSettleMs > 0 {
		dev.ResetSettle = time.Duration(cfg.ResetSettleMs) * time.Millisecond
	}
	if err := dev.Reset(nil); err != nil {
		bus.Close()
		return nil, err
	}
	p := &Pump{
		bus:  bus,
		intr: intr,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	// The controller answers briefly after the reset pulse; identify
	// it before event polling takes over.
	p.Info.ChipID, _ = dev.ChipID()
	p.Info.ProjID, _ = dev.ProjID()
	p.Info.FwVersion, _ = dev.FwVersion()
	go p.run(dev, cfg, ch)
	return p, nil
}

func (p *Pump) run(dev *cst816s.Device, cfg Config, ch chan<- Event) {
	defer close(p.done)
	timeout := time.Duration(cfg.PollMs) * time.Millisecond
	for {
		select {
		case <-p.stop:
			return
		default:
		}
		// Edge or timeout; either way poll once. The interrupt gate
		// inside PollEvent filters out spurious wakeups.
		p.intr.WaitForEdge(timeout)
		ev, ok := dev.PollEvent()
		if !ok {
			continue
		}
		select {
		case ch <- Event{TouchEvent: ev, Time: time.Now()}:
		case <-p.stop:
			return
		}
	}
}

// Close stops the polling goroutine and releases the bus.
func (p *Pump) Close() error {
	close(p.stop)
	p.intr.Halt()
	<-p.done
	return p.bus.Close()
}

type inPin struct {
	pin gpio.PinIn
}

func (p inPin) Low() (bool, error) {
	return p.pin.Read() == gpio.Low, nil
}

type outPin struct {
	pin gpio.PinOut
}

func (p outPin) Set(high bool) error {
	return p.pin.Out(gpio.Level(high))
}
