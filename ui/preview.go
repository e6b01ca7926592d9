package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/calvinmclean/brailleboard/cell"
)

var (
	raisedColor  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	loweredColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

const dotSize = 14

// preview shows the Braille cells for the text being typed
type preview struct {
	box *fyne.Container
}

func newPreview() *preview {
	return &preview{box: container.NewHBox()}
}

// Update re-renders the preview for text. Cells are drawn in the standard
// dot order: dots 1-3 down the left column, dots 4-6 down the right.
func (p *preview) Update(text string) {
	p.box.RemoveAll()

	for _, pattern := range cell.EncodeString(text) {
		p.box.Add(newCellView(pattern))
	}

	p.box.Refresh()
}

func newCellView(p cell.Pattern) *fyne.Container {
	rows := make([]fyne.CanvasObject, 0, 3)

	// dots 1-3 run down the left column and dots 4-6 down the right
	for row := 0; row < 3; row++ {
		rows = append(rows, container.NewHBox(
			newDot(p.Dot(row)),
			newDot(p.Dot(row+3)),
		))
	}

	return container.NewPadded(container.NewVBox(rows...))
}

func newDot(raised bool) fyne.CanvasObject {
	c := loweredColor
	if raised {
		c = raisedColor
	}

	return container.NewGridWrap(fyne.NewSize(dotSize, dotSize), canvas.NewCircle(c))
}
