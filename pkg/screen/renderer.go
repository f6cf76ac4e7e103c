package screen

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	rowHeight = 8  // display pixels per text row
	ledSize   = 16 // LED diameter in screen pixels
	ledGap    = 12 // space between panel and LED
)

var (
	panelColor = color.RGBA{R: 8, G: 8, B: 16, A: 255}
	textColor  = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	ledOn      = color.RGBA{R: 255, G: 40, B: 30, A: 255}
	ledOff     = color.RGBA{R: 60, G: 20, B: 20, A: 255}
)

// oledRenderer draws the panel, one text object per row and the LED.
type oledRenderer struct {
	screen *OLEDWidget

	panel *canvas.Rectangle
	lines []*canvas.Text
	led   *canvas.Circle

	objects []fyne.CanvasObject
}

func newOLEDRenderer(s *OLEDWidget) *oledRenderer {
	r := &oledRenderer{
		screen: s,
		panel:  canvas.NewRectangle(panelColor),
		lines:  make([]*canvas.Text, s.rows),
		led:    canvas.NewCircle(ledOff),
	}
	r.led.StrokeColor = color.Black
	r.led.StrokeWidth = 1

	r.objects = append(r.objects, r.panel)
	for i := range r.lines {
		t := canvas.NewText("", textColor)
		t.TextStyle = fyne.TextStyle{Monospace: true}
		t.TextSize = rowHeight * s.scale * 0.9
		r.lines[i] = t
		r.objects = append(r.objects, t)
	}
	r.objects = append(r.objects, r.led)

	r.Refresh()
	return r
}

func (r *oledRenderer) panelSize() fyne.Size {
	return fyne.NewSize(float32(r.screen.columns)*r.screen.scale, float32(r.screen.rows*rowHeight)*r.screen.scale)
}

// MinSize returns the panel plus the LED beside it.
func (r *oledRenderer) MinSize() fyne.Size {
	p := r.panelSize()
	return fyne.NewSize(p.Width+ledGap+ledSize, p.Height)
}

// Layout places the rows on the panel and the LED to its right.
func (r *oledRenderer) Layout(size fyne.Size) {
	p := r.panelSize()
	r.panel.Resize(p)
	r.panel.Move(fyne.NewPos(0, 0))

	h := rowHeight * r.screen.scale
	for i, t := range r.lines {
		t.Move(fyne.NewPos(0, float32(i)*h))
		t.Resize(fyne.NewSize(p.Width, h))
	}

	r.led.Move(fyne.NewPos(p.Width+ledGap, 0))
	r.led.Resize(fyne.NewSize(ledSize, ledSize))
}

// Refresh copies the buffer and LED state into the canvas objects.
func (r *oledRenderer) Refresh() {
	rows := r.screen.Rows()
	for i, t := range r.lines {
		text := ""
		if i < len(rows) {
			text = rows[i]
		}
		if t.Text != text {
			t.Text = text
			canvas.Refresh(t)
		}
	}

	fill := color.Color(ledOff)
	if r.screen.LED() {
		fill = ledOn
	}
	r.led.FillColor = fill
	canvas.Refresh(r.led)
}

// Objects returns the canvas objects of the widget.
func (r *oledRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer.
func (r *oledRenderer) Destroy() {}
