package brailleboard

import "encoding/json"

const TerminationChar = 0x04 // ascii EOT (End of Transmission)

// Default delays used when a message leaves them unset
const (
	DefaultCharDelay  = 3000 // milliseconds between characters
	DefaultServoDelay = 750  // milliseconds between servo movements
)

// Message is the command record sent to the display over the serial link. It is a single
// JSON document terminated by a newline. Any field left out of the document keeps its
// default value.
type Message struct {
	Text       string `json:"text"`
	CharDelay  int    `json:"char_delay"`
	ServoDelay int    `json:"servo_delay"`
	DualServo  bool   `json:"dual_servo"`
	DebugMode  bool   `json:"debug_mode"`
}

// NewMessage creates a Message with default delays for the provided text
func NewMessage(text string) Message {
	return Message{
		Text:       text,
		CharDelay:  DefaultCharDelay,
		ServoDelay: DefaultServoDelay,
	}
}

// ParseMessage parses a JSON command document. Defaults are applied first so that
// fields missing from the document keep their default values. On error the returned
// Message is the zero value and must not be used; the caller is expected to keep its
// previous settings and report the failure on its own channel.
func ParseMessage(data []byte) (Message, error) {
	m := NewMessage("")
	err := json.Unmarshal(data, &m)
	if err != nil {
		return Message{}, err
	}
	return m, nil
}

// Encode serializes the Message as a newline-terminated JSON document ready to write
// to the serial link
func (m Message) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
