//go:build tinygo

package device

import (
	"machine"

	"tinygo.org/x/drivers/servo"
)

// ServoConfig has device-level values for setting up one actuator channel.
// A zero ServoConfig leaves the channel unpopulated.
type ServoConfig struct {
	Pin machine.Pin
	PWM servo.PWM
}
