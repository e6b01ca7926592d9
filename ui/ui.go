// Package ui is the desktop app for sending text to the display, with a live
// preview of the Braille cells being rendered.
package ui

import (
	"context"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/calvinmclean/brailleboard/controller"
)

type DisplayUI struct {
	config controller.Config
}

func NewDisplayUI() *DisplayUI {
	return &DisplayUI{
		config: controller.Config{Settings: controller.DefaultSettings()},
	}
}

// Run shows the configuration window and then the main window. After the
// config is submitted, connect is called to open the device session; UI
// events are written to the returned writer as lines for the controller's
// interactive loop.
func (ui *DisplayUI) Run(ctx context.Context, connect func(controller.Config) (io.Writer, error)) {
	application := app.NewWithID("com.calvinmclean.brailleboard")

	configWindow := NewConfigWindow(application)
	configWindow.OnSubmit = func() {
		w, err := connect(ui.config)
		if err != nil {
			showError(application, application.NewWindow("Brailleboard - Error"), err)
			return
		}
		ui.showMain(application, w)
	}
	configWindow.Show(&ui.config)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	application.Run()
}

func (ui *DisplayUI) showMain(application fyne.App, w io.Writer) {
	window := application.NewWindow("Brailleboard")

	wrapper := &controllerWrapper{writer: w}

	cellPreview := newPreview()

	textEntry := widget.NewEntry()
	textEntry.SetPlaceHolder("Text to display...")
	textEntry.OnChanged = func(text string) {
		cellPreview.Update(text)
	}

	statusLabel := widget.NewLabel("")

	sendButton := widget.NewButton("Send to Display", func() {
		if textEntry.Text == "" {
			statusLabel.SetText("Nothing to send")
			return
		}
		wrapper.Display(textEntry.Text)
		statusLabel.SetText("Sent: " + textEntry.Text)
	})
	textEntry.OnSubmitted = func(_ string) {
		sendButton.OnTapped()
	}

	dualCheck := widget.NewCheck("Dual Servo", func(on bool) {
		wrapper.SetDual(on)
	})
	dualCheck.SetChecked(ui.config.Settings.DualServo)

	debugCheck := widget.NewCheck("Debug Mode", func(on bool) {
		wrapper.SetDebug(on)
	})

	homeButton := widget.NewButton("Home", func() {
		// a single space renders the blank cell, which is the rest position
		wrapper.Display(" ")
		statusLabel.SetText("Homed")
	})

	contentContainer := container.NewVBox(
		textEntry,
		container.NewHScroll(cellPreview.box),
		container.NewHBox(
			sendButton,
			homeButton,
			dualCheck,
			debugCheck,
		),
		statusLabel,
	)

	window.SetContent(contentContainer)
	window.Resize(fyne.NewSize(500, 240))
	window.Show()
}
