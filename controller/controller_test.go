package controller

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinmclean/brailleboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	bytes.Buffer
	closed bool
}

func (f *fakeDevice) Read(p []byte) (int, error) { return 0, io.EOF }
func (f *fakeDevice) Close() error               { f.closed = true; return nil }

func TestSend(t *testing.T) {
	dev := &fakeDevice{}
	c := NewWithReadWriter(dev)

	err := c.Display("Hi!")
	require.NoError(t, err)

	out := dev.String()
	assert.True(t, strings.HasSuffix(out, "\n"))

	msg, err := brailleboard.ParseMessage([]byte(strings.TrimSuffix(out, "\n")))
	require.NoError(t, err)
	assert.Equal(t, "Hi!", msg.Text)
	assert.Equal(t, brailleboard.DefaultCharDelay, msg.CharDelay)
	assert.Equal(t, brailleboard.DefaultServoDelay, msg.ServoDelay)
}

func TestRunAppliesSettings(t *testing.T) {
	dev := &fakeDevice{}
	c := NewWithReadWriter(dev)

	input := strings.NewReader(":dual on\n:char-delay 1000\n:servo-delay 100\nabc\n")
	var output bytes.Buffer

	err := c.Run(context.Background(), input, &output)
	require.NoError(t, err)

	msg, err := brailleboard.ParseMessage([]byte(strings.TrimSpace(dev.String())))
	require.NoError(t, err)
	assert.Equal(t, brailleboard.Message{
		Text:       "abc",
		CharDelay:  1000,
		ServoDelay: 100,
		DualServo:  true,
	}, msg)
}

func TestRunReportsBadSettings(t *testing.T) {
	dev := &fakeDevice{}
	c := NewWithReadWriter(dev)

	var output bytes.Buffer
	err := c.Run(context.Background(), strings.NewReader(":bogus on\n:char-delay xyz\n"), &output)
	require.NoError(t, err)

	assert.Contains(t, output.String(), "unknown setting")
	assert.Contains(t, output.String(), "invalid delay")
	assert.Empty(t, dev.String(), "nothing should be sent to the device")
}

type fakeHub struct {
	submitted []brailleboard.Message
	doneCalls int
}

func (f *fakeHub) SubmitJob(ctx context.Context, msg brailleboard.Message) (string, error) {
	f.submitted = append(f.submitted, msg)
	return "job-1", nil
}

func (f *fakeHub) Done(ctx context.Context) error {
	f.doneCalls++
	return nil
}

func TestRunMirrorsJobsToHub(t *testing.T) {
	dev := &fakeDevice{}
	c := NewWithReadWriter(dev)
	h := &fakeHub{}
	c.hub = h

	var output bytes.Buffer
	err := c.Run(context.Background(), strings.NewReader("abc\ndef\n"), &output)
	require.NoError(t, err)

	require.Len(t, h.submitted, 2)
	assert.Equal(t, "abc", h.submitted[0].Text)
	assert.Equal(t, "def", h.submitted[1].Text)
	assert.Equal(t, 1, h.doneCalls, "the session marks its hub job done once on exit")
}

func TestRunWithoutJobSkipsHubDone(t *testing.T) {
	dev := &fakeDevice{}
	c := NewWithReadWriter(dev)
	h := &fakeHub{}
	c.hub = h

	var output bytes.Buffer
	err := c.Run(context.Background(), strings.NewReader(":dual on\n"), &output)
	require.NoError(t, err)

	assert.Empty(t, h.submitted)
	assert.Zero(t, h.doneCalls, "nothing was submitted, so there is no job to finish")
}

func TestClose(t *testing.T) {
	dev := &fakeDevice{}
	c := NewWithReadWriter(dev)
	require.NoError(t, c.Close())
	assert.True(t, dev.closed)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg.Settings)
	assert.Empty(t, cfg.SerialPort)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "braille_config.json")

	cfg := Config{
		SerialPort: "/dev/ttyACM0",
		BaudRate:   "115200",
		Settings: Settings{
			CharDelay:  1500,
			ServoDelay: 500,
			DualServo:  true,
		},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "braille_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"serial_port": "/dev/ttyUSB0", "theme": "default"}`), 0o644))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)

	// unset options keep their defaults
	assert.Equal(t, brailleboard.DefaultCharDelay, loaded.Settings.CharDelay)
	assert.Equal(t, brailleboard.DefaultServoDelay, loaded.Settings.ServoDelay)
	assert.Equal(t, "/dev/ttyUSB0", loaded.SerialPort)
}
