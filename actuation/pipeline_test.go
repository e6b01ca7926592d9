package actuation_test

import (
	"testing"

	"github.com/calvinmclean/brailleboard/actuation"
	"github.com/calvinmclean/brailleboard/cell"

	"github.com/stretchr/testify/assert"
)

// TestTextToDutyPipeline walks "Hi!" through the full translation chain:
// character -> cell pattern -> column sub-patterns -> pulse widths -> duty
// values.
func TestTextToDutyPipeline(t *testing.T) {
	patterns := cell.EncodeString("Hi!")

	assert.Equal(t, cell.Encode('h'), patterns[0])
	assert.Equal(t, cell.Encode('i'), patterns[1])
	assert.Equal(t, cell.Pattern(0x1A), patterns[2])

	for _, p := range patterns {
		left, right := p.Halves()

		for _, sub := range []uint8{left, right} {
			pw := actuation.PulseWidth(sub)
			assert.GreaterOrEqual(t, pw, uint16(844))
			assert.LessOrEqual(t, pw, uint16(2094))

			duty := actuation.DutyCycle(pw)
			assert.LessOrEqual(t, duty, uint32(65535))
		}
	}
}
