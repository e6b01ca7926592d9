//go:build tinygo

package device

import (
	"machine"

	"github.com/calvinmclean/brailleboard/actuation"

	"tinygo.org/x/drivers/servo"
)

const maxDuty = 1<<actuation.Resolution - 1

// PWMActuator drives an actuator directly on a PWM channel, converting pulse
// widths through the duty cycle calculation. Useful on boards where the servo
// driver does not support the PWM peripheral.
type PWMActuator struct {
	pwm servo.PWM
	ch  uint8
}

var _ Actuator = (*PWMActuator)(nil)

// NewPWMActuator configures the PWM for the actuation period and claims a
// channel for the pin
func NewPWMActuator(pwm servo.PWM, pin machine.Pin) (*PWMActuator, error) {
	err := pwm.Configure(machine.PWMConfig{
		Period: actuation.PeriodMicroseconds * 1000, // nanoseconds
	})
	if err != nil {
		return nil, err
	}

	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}

	return &PWMActuator{pwm: pwm, ch: ch}, nil
}

// SetMicroseconds sets the channel's pulse width by scaling the 16-bit duty
// value onto the counter's top value
func (a *PWMActuator) SetMicroseconds(microseconds int16) {
	duty := actuation.DutyCycle(uint16(microseconds))
	a.pwm.Set(a.ch, uint32(uint64(duty)*uint64(a.pwm.Top())/maxDuty))
}
