// Package console renders the emulated display and alert LED on a terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/itohio/tinytemp/pkg/display"
	"github.com/itohio/tinytemp/pkg/thermometer"
)

var (
	_ display.Display       = (*Terminal)(nil)
	_ thermometer.Indicator = (*Terminal)(nil)
)

// Terminal is a display.Buffer with an LED that can be printed as a framed
// screen.
type Terminal struct {
	*display.Buffer

	mu  sync.RWMutex
	led bool

	frame *color.Color
	alert *color.Color
	text  *color.Color
}

// New creates a Terminal with the given display geometry.
func New(columns, rows, glyphWidth int) *Terminal {
	return &Terminal{
		Buffer: display.NewBuffer(columns, rows, glyphWidth),
		frame:  color.New(color.FgHiBlack),
		alert:  color.New(color.FgRed, color.Bold),
		text:   color.New(color.FgCyan),
	}
}

// Set switches the LED.
func (t *Terminal) Set(active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.led = active
}

// LED returns the LED state.
func (t *Terminal) LED() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.led
}

// Print writes the used rows of the screen inside a frame, followed by the
// LED state.
func (t *Terminal) Print(w io.Writer) error {
	rows := t.Rows()
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}

	border := t.frame.Sprint("+" + strings.Repeat("-", width+2) + "+")
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}
	for _, r := range rows {
		line := t.colorize(r) + strings.Repeat(" ", width-len(r))
		if _, err := fmt.Fprintf(w, "%s %s %s\n", t.frame.Sprint("|"), line, t.frame.Sprint("|")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}

	led := t.frame.Sprint("LED: off")
	if t.LED() {
		led = t.alert.Sprint("LED: ON")
	}
	_, err := fmt.Fprintln(w, led)
	return err
}

// colorize highlights the alert banner.
func (t *Terminal) colorize(row string) string {
	if i := strings.Index(row, display.LabelTooHot); i >= 0 {
		return t.text.Sprint(row[:i]) + t.alert.Sprint(display.LabelTooHot) + t.text.Sprint(row[i+len(display.LabelTooHot):])
	}
	return t.text.Sprint(row)
}
