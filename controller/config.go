package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/calvinmclean/brailleboard"
)

// Config holds everything needed to connect to and drive the display
type Config struct {
	SerialPort string `json:"serial_port"`
	BaudRate   string `json:"baud_rate"`
	HubAddr    string `json:"hub_addr"`
	Settings   Settings
}

// Settings are the persisted send options, stored alongside the connection
// details in the config file
type Settings struct {
	CharDelay  int  `json:"char_delay"`
	ServoDelay int  `json:"servo_delay"`
	DualServo  bool `json:"dual_servo"`
	DebugMode  bool `json:"debug_mode"`
}

func DefaultSettings() Settings {
	return Settings{
		CharDelay:  brailleboard.DefaultCharDelay,
		ServoDelay: brailleboard.DefaultServoDelay,
	}
}

// Message builds a render message for text using these settings
func (s Settings) Message(text string) brailleboard.Message {
	return brailleboard.Message{
		Text:       text,
		CharDelay:  s.CharDelay,
		ServoDelay: s.ServoDelay,
		DualServo:  s.DualServo,
		DebugMode:  s.DebugMode,
	}
}

// configFile is the on-disk layout. Settings fields live at the top level so
// the file stays compatible with the original braille_config.json.
type configFile struct {
	SerialPort string `json:"serial_port,omitempty"`
	BaudRate   string `json:"baud_rate,omitempty"`
	HubAddr    string `json:"hub_addr,omitempty"`
	Settings
}

// LoadConfig reads a config file, applying defaults for anything unset. A
// missing file is not an error and returns the default Config.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Settings: DefaultSettings()}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	file := configFile{Settings: cfg.Settings}
	err = json.Unmarshal(data, &file)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	return Config{
		SerialPort: file.SerialPort,
		BaudRate:   file.BaudRate,
		HubAddr:    file.HubAddr,
		Settings:   file.Settings,
	}, nil
}

// Save writes the config file with indentation so it stays hand-editable
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(configFile{
		SerialPort: c.SerialPort,
		BaudRate:   c.BaudRate,
		HubAddr:    c.HubAddr,
		Settings:   c.Settings,
	}, "", "    ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
