// Package controller is the host side of the display: it owns the serial
// connection and turns lines of input into render messages.
package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calvinmclean/brailleboard"
	"github.com/calvinmclean/brailleboard/hub"

	"go.bug.st/serial"
)

const defaultBaudRate = 115200

type Controller struct {
	rw  io.ReadWriteCloser
	hub hubClient

	settings brailleboard.Message

	// jobActive tracks whether a job was submitted to the hub, so the
	// session can mark it done on the way out
	jobActive bool
}

// New opens the configured serial port. An empty SerialPort picks the first
// available USB serial device.
func New(cfg Config) (*Controller, error) {
	rw, err := openDevice(cfg)
	if err != nil {
		return nil, err
	}

	c := NewWithReadWriter(rw)
	c.settings = cfg.Settings.Message("")
	if cfg.HubAddr != "" {
		c.hub = hub.NewClient(cfg.HubAddr)
	}
	return c, nil
}

func openDevice(cfg Config) (io.ReadWriteCloser, error) {
	if cfg.SerialPort == SerialPortNone {
		return nopDevice{}, nil
	}

	if cfg.SerialPort == "" {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, fmt.Errorf("error finding serial port: %w", err)
		}
		cfg.SerialPort = ports[0]
	}

	baudRate := defaultBaudRate
	if cfg.BaudRate != "" {
		var err error
		baudRate, err = strconv.Atoi(cfg.BaudRate)
		if err != nil {
			return nil, fmt.Errorf("invalid baud rate %q: %w", cfg.BaudRate, err)
		}
	}

	port, err := serial.Open(cfg.SerialPort, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %q: %w", cfg.SerialPort, err)
	}

	return port, nil
}

// NewFromEnv creates a Controller configured by BRAILLEBOARD_PORT and
// BRAILLEBOARD_BAUD
func NewFromEnv() (*Controller, error) {
	return New(Config{
		SerialPort: os.Getenv("BRAILLEBOARD_PORT"),
		BaudRate:   os.Getenv("BRAILLEBOARD_BAUD"),
		Settings:   DefaultSettings(),
	})
}

// NewWithReadWriter creates a Controller on an already-open connection
func NewWithReadWriter(rw io.ReadWriteCloser) *Controller {
	return &Controller{
		rw:       rw,
		hub:      noopHubClient{},
		settings: brailleboard.NewMessage(""),
	}
}

func (c *Controller) Close() error {
	return c.rw.Close()
}

// Settings returns the message options applied to the next Display call
func (c *Controller) Settings() brailleboard.Message {
	return c.settings
}

// Display sends text to the device using the current settings
func (c *Controller) Display(text string) error {
	msg := c.settings
	msg.Text = text
	return c.Send(msg)
}

// Send writes one message to the device
func (c *Controller) Send(msg brailleboard.Message) error {
	data, err := msg.Encode()
	if err != nil {
		return fmt.Errorf("error encoding message: %w", err)
	}

	_, err = c.rw.Write(data)
	if err != nil {
		return fmt.Errorf("error writing to device: %w", err)
	}

	// mirroring to the hub is best-effort and must never block rendering
	jobID, err := c.hub.SubmitJob(context.Background(), msg)
	if err != nil {
		fmt.Println("error submitting job to hub:", err.Error())
	} else if jobID != "" {
		c.jobActive = true
	}

	return nil
}

// Run is an interactive session: every line read from r is rendered on the
// device, device output is copied to w, and ":"-prefixed lines adjust the
// session settings. It returns when r is exhausted or ctx is canceled, after
// marking the hub job done.
func (c *Controller) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	defer c.finishHubJob(ctx, w)

	go func() {
		// device output is best-effort; the connection closing ends the copy
		_, _ = io.Copy(w, c.rw)
	}()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			err := c.applySetting(line)
			if err != nil {
				fmt.Fprintln(w, "error:", err.Error())
			}
			continue
		}

		err := c.Display(line)
		if err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (c *Controller) finishHubJob(ctx context.Context, w io.Writer) {
	if !c.jobActive {
		return
	}

	err := c.hub.Done(ctx)
	if err != nil {
		fmt.Fprintln(w, "error marking hub job done:", err.Error())
	}
	c.jobActive = false
}

func (c *Controller) applySetting(line string) error {
	field, value, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")

	switch field {
	case "dual":
		c.settings.DualServo = value == "on"
	case "debug":
		c.settings.DebugMode = value == "on"
	case "char-delay":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid delay %q: %w", value, err)
		}
		c.settings.CharDelay = ms
	case "servo-delay":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid delay %q: %w", value, err)
		}
		c.settings.ServoDelay = ms
	default:
		return errors.New("unknown setting: " + field)
	}

	return nil
}
