// Package actuation maps Braille sub-patterns to servo pulse widths and PWM
// duty cycles. The pulse widths are calibration constants for the linear
// actuators moving the display pins.
package actuation

// PWM output configuration for the actuator channels
const (
	Resolution         = 16    // bits of duty cycle resolution
	PeriodMicroseconds = 20000 // 20ms period, 50Hz
)

const maxDuty = (1 << Resolution) - 1

// pulseWidths maps each 3-bit sub-pattern to a pulse width in microseconds.
// Each step raises the actuator another 2.5mm; index 0 is the home position.
var pulseWidths = [8]uint16{
	844,  // 000 -> 0.0mm (home)
	1151, // 001 -> 2.5mm
	1268, // 010 -> 5.0mm
	1324, // 011 -> 7.5mm
	1613, // 100 -> 10.0mm
	1920, // 101 -> 12.5mm
	2037, // 110 -> 15.0mm
	2094, // 111 -> 17.5mm
}

// PulseWidth returns the pulse width in microseconds for a 3-bit sub-pattern.
// Values above 7 return the home position so a malformed caller can never
// command the hardware outside its calibrated range.
func PulseWidth(subPattern uint8) uint16 {
	if subPattern > 7 {
		return pulseWidths[0]
	}
	return pulseWidths[subPattern]
}

// DutyCycle converts a pulse width in microseconds to a duty value in
// [0, 2^Resolution - 1]. The multiply happens before the truncating divide;
// the 32-bit intermediate holds the full product for any pulse width up to
// the PWM period.
func DutyCycle(pulseWidthUS uint16) uint32 {
	return uint32(pulseWidthUS) * maxDuty / PeriodMicroseconds
}
