package commands

import (
	"github.com/calvinmclean/brailleboard"
)

// maxInputLength bounds a single command document so a stream of garbage
// cannot grow the buffer forever
const maxInputLength = 1000

// Display is used to render messages on the device
type Display interface {
	Render(brailleboard.Message)
	Home()

	// I/O
	ReadByte() (byte, error)
}

// Run reads newline-terminated JSON command documents from the serial link
// and renders them. A document that fails to parse is reported and dropped;
// the display keeps its previous settings and stays responsive.
func Run(d Display) {
	var input []byte

	for {
		b, err := d.ReadByte()
		if err != nil {
			continue
		}

		if b != '\n' && b != brailleboard.TerminationChar {
			if len(input) >= maxInputLength {
				println("input too long, discarding")
				input = input[:0]
			}
			input = append(input, b)
			continue
		}

		if len(input) == 0 {
			continue
		}

		msg, err := brailleboard.ParseMessage(input)
		input = input[:0]
		if err != nil {
			println("error parsing message:", err.Error())
			continue
		}

		d.Render(msg)
	}
}
