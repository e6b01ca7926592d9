package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/calvinmclean/brailleboard/controller"
)

type ConfigWindow struct {
	app      fyne.App
	OnSubmit func()
}

func NewConfigWindow(app fyne.App) *ConfigWindow {
	return &ConfigWindow{
		app: app,
	}
}

func (cw *ConfigWindow) loadConfigFromPreferences(cfg *controller.Config) {
	prefs := cw.app.Preferences()
	cfg.SerialPort = prefs.StringWithFallback("serialPort", "")
	cfg.BaudRate = prefs.StringWithFallback("baudRate", "115200")
	cfg.HubAddr = prefs.StringWithFallback("hubAddr", "")
	cfg.Settings.CharDelay = prefs.IntWithFallback("charDelay", cfg.Settings.CharDelay)
	cfg.Settings.ServoDelay = prefs.IntWithFallback("servoDelay", cfg.Settings.ServoDelay)
	cfg.Settings.DualServo = prefs.BoolWithFallback("dualServo", cfg.Settings.DualServo)
}

func (cw *ConfigWindow) saveConfigToPreferences(cfg *controller.Config) {
	prefs := cw.app.Preferences()
	prefs.SetString("serialPort", cfg.SerialPort)
	prefs.SetString("baudRate", cfg.BaudRate)
	prefs.SetString("hubAddr", cfg.HubAddr)
	prefs.SetInt("charDelay", cfg.Settings.CharDelay)
	prefs.SetInt("servoDelay", cfg.Settings.ServoDelay)
	prefs.SetBool("dualServo", cfg.Settings.DualServo)
}

func (cw *ConfigWindow) Show(cfg *controller.Config) {
	window := cw.app.NewWindow("Brailleboard - Configuration")
	window.Resize(fyne.NewSize(400, 250))
	window.SetCloseIntercept(func() {
		// Treat window close as cancel
		window.Close()
		cw.app.Quit()
	})
	window.Show()

	// Load config from preferences
	cw.loadConfigFromPreferences(cfg)

	serialPorts, err := controller.GetSerialPorts()
	if err != nil && !errors.Is(err, controller.ErrNoUSBSerial) {
		showError(cw.app, window, fmt.Errorf("error getting serial ports: %w", err))
		return
	}

	serialPorts = append(serialPorts, controller.SerialPortNone)

	serialEntry := widget.NewSelect(serialPorts, nil)
	if cfg.SerialPort == "" {
		cfg.SerialPort = serialPorts[0]
	}
	serialEntry.Bind(binding.BindString(&cfg.SerialPort))

	baudRateEntry := widget.NewEntry()
	baudRateEntry.Bind(binding.BindString(&cfg.BaudRate))

	hubAddrEntry := widget.NewEntry()
	hubAddrEntry.Bind(binding.BindString(&cfg.HubAddr))
	hubAddrEntry.SetPlaceHolder("optional")

	charDelayEntry := widget.NewEntry()
	charDelayEntry.Bind(binding.BindInt(&cfg.Settings.CharDelay))

	servoDelayEntry := widget.NewEntry()
	servoDelayEntry.Bind(binding.BindInt(&cfg.Settings.ServoDelay))

	dualServoCheck := widget.NewCheck("", nil)
	dualServoCheck.Bind(binding.BindBool(&cfg.Settings.DualServo))

	submitButton := widget.NewButton("Submit", func() {
		cw.saveConfigToPreferences(cfg)
		cw.OnSubmit()
		window.Close()
	})
	submitButton.Disable()

	validateForm := func() {
		allFieldsValid := cfg.SerialPort != "" &&
			cfg.BaudRate != "" &&
			cfg.Settings.CharDelay > 0 &&
			cfg.Settings.ServoDelay > 0

		if allFieldsValid {
			submitButton.Enable()
		}
	}

	// Add listeners to field changes
	serialEntry.OnChanged = func(_ string) { validateForm() }
	baudRateEntry.OnChanged = func(_ string) { validateForm() }
	charDelayEntry.OnChanged = func(_ string) { validateForm() }
	servoDelayEntry.OnChanged = func(_ string) { validateForm() }

	// Initial validation
	validateForm()

	form := container.NewVBox(
		widget.NewCard("Configuration", "", container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Serial Port:"),
				serialEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Baud Rate:"),
				baudRateEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Hub Address:"),
				hubAddrEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Character Delay (ms):"),
				charDelayEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Servo Delay (ms):"),
				servoDelayEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Dual Servo:"),
				dualServoCheck,
			),
		)),
		container.NewHBox(
			widget.NewButton("Cancel", func() {
				window.Close()
				cw.app.Quit()
			}),
			submitButton,
		),
	)

	window.SetContent(form)
}

func showError(app fyne.App, window fyne.Window, err error) {
	d := dialog.NewError(err, window)
	d.SetOnClosed(func() {
		app.Quit()
	})
	d.Show()
}
