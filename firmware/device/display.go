//go:build tinygo

package device

import (
	"errors"
	"time"

	"github.com/calvinmclean/brailleboard"
	"github.com/calvinmclean/brailleboard/actuation"
	"github.com/calvinmclean/brailleboard/cell"

	"tinygo.org/x/drivers/servo"
)

// Actuator positions one display column by pulse width. servo.Servo satisfies
// this, as does PWMActuator for boards without the servo driver.
type Actuator interface {
	SetMicroseconds(microseconds int16)
}

var _ Actuator = servo.Servo{}

// Display drives the Braille cell. The left actuator shows dots 1-3 and the
// right actuator shows dots 4-6. When only the left actuator is populated the
// display renders the two columns one after the other on the same actuator.
type Display struct {
	left  Actuator
	right Actuator

	charDelay  time.Duration
	servoDelay time.Duration
	dualServo  bool
	debug      bool

	startTime time.Time
}

// New initializes the Display with the provided actuator configs and moves
// everything to the home position
func New(leftCfg, rightCfg ServoConfig) (Display, error) {
	if leftCfg == (ServoConfig{}) {
		return Display{}, errors.New("left servo config is required")
	}

	left, err := servo.New(leftCfg.PWM, leftCfg.Pin)
	if err != nil {
		return Display{}, errors.New("error creating left servo: " + err.Error())
	}

	var right Actuator
	if rightCfg != (ServoConfig{}) {
		rightServo, err := servo.New(rightCfg.PWM, rightCfg.Pin)
		if err != nil {
			return Display{}, errors.New("error creating right servo: " + err.Error())
		}
		right = rightServo
	}

	d := Display{
		left:       left,
		right:      right,
		charDelay:  brailleboard.DefaultCharDelay * time.Millisecond,
		servoDelay: brailleboard.DefaultServoDelay * time.Millisecond,
		startTime:  time.Now(),
	}
	d.Home()

	return d, nil
}

// NewWithActuators is New for pre-built actuators, for boards that need the
// raw PWM path or custom actuator wiring.
func NewWithActuators(left, right Actuator) (Display, error) {
	if left == nil {
		return Display{}, errors.New("left actuator is required")
	}

	d := Display{
		left:       left,
		right:      right,
		charDelay:  brailleboard.DefaultCharDelay * time.Millisecond,
		servoDelay: brailleboard.DefaultServoDelay * time.Millisecond,
		startTime:  time.Now(),
	}
	d.Home()

	return d, nil
}

// Render shows the message text one cell at a time using the message's delays
func (d *Display) Render(msg brailleboard.Message) {
	d.charDelay = time.Duration(msg.CharDelay) * time.Millisecond
	d.servoDelay = time.Duration(msg.ServoDelay) * time.Millisecond
	d.dualServo = msg.DualServo && d.right != nil
	d.debug = msg.DebugMode

	if d.debug {
		println(d.ts(), "rendering", len(msg.Text), "characters")
	}

	for i := 0; i < len(msg.Text); i++ {
		c := msg.Text[i]
		d.ShowCell(c, cell.Encode(c))
		time.Sleep(d.charDelay)
	}

	d.Home()
	println(d.ts(), "done")
}

// ShowCell positions the actuators for one cell pattern
func (d *Display) ShowCell(c byte, p cell.Pattern) {
	left, right := p.Halves()

	if d.debug {
		println(d.ts(), "char", string(rune(c)), "pattern", uint8(p), "pulse", actuation.PulseWidth(left), actuation.PulseWidth(right))
	}

	if d.dualServo {
		d.set(d.left, left)
		d.set(d.right, right)
		time.Sleep(d.servoDelay)
		return
	}

	// single actuator shows the columns sequentially
	d.set(d.left, left)
	time.Sleep(d.servoDelay)
	d.set(d.left, right)
	time.Sleep(d.servoDelay)
}

// Home moves all actuators to the rest position
func (d *Display) Home() {
	d.set(d.left, 0)
	if d.right != nil {
		d.set(d.right, 0)
	}
}

func (d *Display) set(a Actuator, subPattern uint8) {
	a.SetMicroseconds(int16(actuation.PulseWidth(subPattern)))
}

// ts returns the uptime timestamp for logging
func (d *Display) ts() string {
	return "[" + time.Since(d.startTime).String() + "]"
}
