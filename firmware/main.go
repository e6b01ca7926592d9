//go:build tinygo

package main

import (
	"machine"

	"github.com/calvinmclean/brailleboard/firmware/commands"
	"github.com/calvinmclean/brailleboard/firmware/device"
)

func main() {
	// each actuator gets its own PWM slice so the periods never conflict
	leftCfg := device.ServoConfig{
		PWM: machine.PWM0,
		Pin: machine.GP16,
	}
	rightCfg := device.ServoConfig{
		PWM: machine.PWM1,
		Pin: machine.GP18,
	}

	d, err := device.New(leftCfg, rightCfg)
	if err != nil {
		panic(err)
	}

	commands.Run(&d)
}
