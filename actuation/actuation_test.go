package actuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPulseWidth(t *testing.T) {
	assert.Equal(t, uint16(844), PulseWidth(0), "home position")
	assert.Equal(t, uint16(2094), PulseWidth(7), "full extension")
}

func TestPulseWidthOutOfRange(t *testing.T) {
	// out-of-range sub-patterns fall back to home rather than failing
	assert.Equal(t, uint16(844), PulseWidth(8))
	assert.Equal(t, uint16(844), PulseWidth(255))
}

func TestPulseWidthStrictlyIncreasing(t *testing.T) {
	for i := uint8(0); i < 7; i++ {
		assert.Less(t, PulseWidth(i), PulseWidth(i+1), "table must increase at index %d", i)
	}
}

func TestDutyCycle(t *testing.T) {
	assert.Equal(t, uint32(0), DutyCycle(0))
	assert.Equal(t, uint32(1<<Resolution-1), DutyCycle(PeriodMicroseconds), "full period is full scale")

	// 844us of a 20000us period at 16-bit resolution, truncated
	assert.Equal(t, uint32(844)*65535/20000, DutyCycle(844))
}

func TestDutyCycleMonotonic(t *testing.T) {
	prev := DutyCycle(0)
	for us := uint16(1); us <= PeriodMicroseconds; us++ {
		d := DutyCycle(us)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestDutyCycleForTableEntries(t *testing.T) {
	for sub := uint8(0); sub < 8; sub++ {
		d := DutyCycle(PulseWidth(sub))
		assert.LessOrEqual(t, d, uint32(1<<Resolution-1))
	}
}
