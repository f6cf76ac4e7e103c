// Package screen provides a Fyne widget emulating the 128x64 OLED and the
// TOO HOT LED of the thermometer.
package screen

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/tinytemp/pkg/display"
	"github.com/itohio/tinytemp/pkg/thermometer"
)

var (
	_ display.Display       = (*OLEDWidget)(nil)
	_ thermometer.Indicator = (*OLEDWidget)(nil)
)

// OLEDWidget is a display.Display and thermometer.Indicator that draws
// itself. Drawing calls only update the backing buffer; call Refresh (from
// the Fyne goroutine) to show them.
type OLEDWidget struct {
	widget.BaseWidget

	buf     *display.Buffer
	columns int
	rows    int
	scale   float32

	mu  sync.RWMutex
	led bool
}

// New creates an OLEDWidget with the given display geometry, drawn scale
// screen pixels per display pixel.
func New(columns, rows, glyphWidth int, scale float32) *OLEDWidget {
	if columns <= 0 {
		columns = display.DefaultColumns
	}
	if rows <= 0 {
		rows = display.DefaultRows
	}
	if scale <= 0 {
		scale = 4
	}

	s := &OLEDWidget{
		buf:     display.NewBuffer(columns, rows, glyphWidth),
		columns: columns,
		rows:    rows,
		scale:   scale,
	}
	s.ExtendBaseWidget(s)
	return s
}

// Clear erases the emulated screen.
func (s *OLEDWidget) Clear() { s.buf.Clear() }

// SetCursor moves the emulated cursor.
func (s *OLEDWidget) SetCursor(column, row uint8) { s.buf.SetCursor(column, row) }

// WriteChar draws one character.
func (s *OLEDWidget) WriteChar(c byte) { s.buf.WriteChar(c) }

// WriteText draws a string.
func (s *OLEDWidget) WriteText(text string) { s.buf.WriteText(text) }

// Rows returns the text currently on the emulated screen.
func (s *OLEDWidget) Rows() []string { return s.buf.Rows() }

// Set switches the emulated LED.
func (s *OLEDWidget) Set(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.led = active
}

// LED returns the emulated LED state.
func (s *OLEDWidget) LED() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.led
}

// CreateRenderer creates the widget renderer.
func (s *OLEDWidget) CreateRenderer() fyne.WidgetRenderer {
	return newOLEDRenderer(s)
}
