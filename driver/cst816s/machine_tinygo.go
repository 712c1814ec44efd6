//go:build tinygo

package cst816s

import (
	"machine"

	"tinygo.org/x/drivers"
)

// NewMachine returns a driver wired to machine pins at the default
// address. The I2C bus must already be configured.
func NewMachine(bus drivers.I2C, intr, rst machine.Pin) *Device {
	intr.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return New(bus, DefaultAddr, machineInput{intr}, machineOutput{rst})
}

type machineInput struct {
	pin machine.Pin
}

func (p machineInput) Low() (bool, error) {
	return !p.pin.Get(), nil
}

type machineOutput struct {
	pin machine.Pin
}

func (p machineOutput) Set(high bool) error {
	p.pin.Set(high)
	return nil
}
