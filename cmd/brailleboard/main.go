package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/calvinmclean/brailleboard/controller"
	"github.com/calvinmclean/brailleboard/ui"
)

func main() {
	var configPath, text string
	var charDelay, servoDelay int
	var dual, debug bool
	flag.StringVar(&configPath, "config", "braille_config.json", "Path to the config file")
	flag.StringVar(&text, "text", "", "Send this text and exit instead of running interactively")
	flag.IntVar(&charDelay, "char-delay", 0, "Milliseconds between characters (0 uses the config value)")
	flag.IntVar(&servoDelay, "servo-delay", 0, "Milliseconds between servo movements (0 uses the config value)")
	flag.BoolVar(&dual, "dual", false, "Drive both columns at once on two servos")
	flag.BoolVar(&debug, "debug", false, "Have the device print each character as it renders")
	flag.Parse()

	if os.Getenv("ENABLE_UI") == "true" {
		runUI()
		return
	}

	cfg, err := controller.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}
	cfg.Settings.DualServo = cfg.Settings.DualServo || dual
	cfg.Settings.DebugMode = cfg.Settings.DebugMode || debug
	if charDelay > 0 {
		cfg.Settings.CharDelay = charDelay
	}
	if servoDelay > 0 {
		cfg.Settings.ServoDelay = servoDelay
	}

	// environment overrides the config file, matching NewFromEnv
	if port := os.Getenv("BRAILLEBOARD_PORT"); port != "" {
		cfg.SerialPort = port
	}
	if baud := os.Getenv("BRAILLEBOARD_BAUD"); baud != "" {
		cfg.BaudRate = baud
	}

	c, err := controller.New(cfg)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	if text != "" {
		err = c.Display(text)
		if err != nil {
			panic(err)
		}
		return
	}

	runCLI(c)
}

func runUI() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	displayUI := ui.NewDisplayUI()

	displayUI.Run(ctx, func(cfg controller.Config) (io.Writer, error) {
		c, err := controller.New(cfg)
		if err != nil {
			return nil, err
		}

		r, w := io.Pipe()

		go func() {
			defer c.Close()
			err := c.Run(ctx, r, os.Stdout)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err.Error())
			}
		}()

		return w, nil
	})
}

func runCLI(c *controller.Controller) {
	err := c.Run(context.Background(), os.Stdin, os.Stdout)
	if err != nil {
		panic(err)
	}
}
