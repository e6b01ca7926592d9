package brailleboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Message
	}{
		{
			"AllFields",
			`{"text":"hello","char_delay":1000,"servo_delay":250,"dual_servo":true,"debug_mode":true}`,
			Message{Text: "hello", CharDelay: 1000, ServoDelay: 250, DualServo: true, DebugMode: true},
		},
		{
			"DefaultsApplied",
			`{"text":"hi"}`,
			Message{Text: "hi", CharDelay: 3000, ServoDelay: 750},
		},
		{
			"EmptyDocument",
			`{}`,
			Message{CharDelay: 3000, ServoDelay: 750},
		},
		{
			"PartialOverride",
			`{"text":"abc","servo_delay":100}`,
			Message{Text: "abc", CharDelay: 3000, ServoDelay: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseMessage([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestParseMessageInvalid(t *testing.T) {
	_, err := ParseMessage([]byte(`{"text":`))
	require.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	in := NewMessage("Hi!")
	in.DualServo = true

	data, err := in.Encode()
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	out, err := ParseMessage(data[:len(data)-1])
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
