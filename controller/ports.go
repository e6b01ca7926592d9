package controller

import (
	"errors"
	"fmt"
	"io"

	"go.bug.st/serial"
)

// SerialPortNone lets the UI run without a device attached
const SerialPortNone = "none"

var ErrNoUSBSerial = errors.New("no serial ports found")

// nopDevice stands in for the serial connection when SerialPortNone is
// selected, so the UI and hub mirroring still work without hardware
type nopDevice struct{}

func (nopDevice) Read(p []byte) (int, error)  { return 0, io.EOF }
func (nopDevice) Write(p []byte) (int, error) { return len(p), nil }
func (nopDevice) Close() error                { return nil }

// GetSerialPorts lists the serial ports available on this machine
func GetSerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}
	if len(ports) == 0 {
		return nil, ErrNoUSBSerial
	}
	return ports, nil
}
