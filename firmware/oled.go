//go:build tinygo

package main

import (
	"image/color"

	"github.com/itohio/tinytemp/pkg/display"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	glyphWidth = display.DefaultGlyphWidth
	rowHeight  = 8
	baseline   = 7 // tinyfont draws from the baseline, rows are addressed from the top
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// oled adapts the SSD1306 to display.Display. Each character is drawn in a
// fixed 6 pixel cell so columns keep the same meaning as on the host
// emulators.
type oled struct {
	dev    *ssd1306.Device
	column int16
	row    int16
	glyph  [1]byte
}

func (o *oled) Clear() {
	o.dev.ClearDisplay()
	o.column, o.row = 0, 0
}

func (o *oled) SetCursor(column, row uint8) {
	o.column, o.row = int16(column), int16(row)
}

func (o *oled) WriteChar(c byte) {
	x, y := o.column, o.row*rowHeight
	o.column += glyphWidth
	if x+glyphWidth > OLED_WIDTH || y+rowHeight > OLED_HEIGHT {
		return
	}

	for dx := int16(0); dx < glyphWidth; dx++ {
		for dy := int16(0); dy < rowHeight; dy++ {
			o.dev.SetPixel(x+dx, y+dy, color.RGBA{})
		}
	}
	o.glyph[0] = c
	tinyfont.WriteLine(o.dev, &proggy.TinySZ8pt7b, x, y+baseline, string(o.glyph[:]), white)
	o.dev.Display()
}

func (o *oled) WriteText(s string) {
	for i := 0; i < len(s); i++ {
		o.WriteChar(s[i])
	}
}

var _ display.Display = (*oled)(nil)
