//go:build tinygo

package device

import "machine"

func (d *Display) ReadByte() (byte, error) {
	return machine.Serial.ReadByte()
}
