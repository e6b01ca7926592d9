package ui

import (
	"fmt"
	"io"
)

// controllerWrapper turns UI events into lines for the controller's
// interactive session
type controllerWrapper struct {
	writer io.Writer
}

func (c *controllerWrapper) Display(text string) {
	fmt.Fprintf(c.writer, "%s\n", text)
}

func (c *controllerWrapper) SetDual(on bool) {
	fmt.Fprintf(c.writer, ":dual %s\n", onOff(on))
}

func (c *controllerWrapper) SetDebug(on bool) {
	fmt.Fprintf(c.writer, ":debug %s\n", onOff(on))
}

func (c *controllerWrapper) SetCharDelay(ms int) {
	fmt.Fprintf(c.writer, ":char-delay %d\n", ms)
}

func (c *controllerWrapper) SetServoDelay(ms int) {
	fmt.Fprintf(c.writer, ":servo-delay %d\n", ms)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
