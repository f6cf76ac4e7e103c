package display

import (
	"strings"
	"sync"
)

// Default geometry of a 128x64 SSD1306 driven with a 5x7 font plus one
// pixel of spacing.
const (
	DefaultColumns    = 128
	DefaultRows       = 8
	DefaultGlyphWidth = 6
)

// Buffer is an in-memory Display. Characters are stored at the pixel column
// they were drawn at; a new glyph erases any glyph it overlaps. Characters
// that do not fit on the line are dropped.
type Buffer struct {
	mu sync.RWMutex

	columns int
	glyph   int
	cells   [][]byte // cells[row][column], 0 = empty

	column int
	row    int
	clears int
}

// NewBuffer creates a Buffer. Non-positive dimensions fall back to defaults.
func NewBuffer(columns, rows, glyphWidth int) *Buffer {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	if glyphWidth <= 0 {
		glyphWidth = DefaultGlyphWidth
	}

	cells := make([][]byte, rows)
	for i := range cells {
		cells[i] = make([]byte, columns)
	}

	return &Buffer{
		columns: columns,
		glyph:   glyphWidth,
		cells:   cells,
	}
}

// Clear erases the whole buffer and homes the cursor.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, row := range b.cells {
		clear(row)
	}
	b.column, b.row = 0, 0
	b.clears++
}

// SetCursor moves the cursor.
func (b *Buffer) SetCursor(column, row uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.column, b.row = int(column), int(row)
}

// WriteChar draws c at the cursor and advances it by one glyph.
func (b *Buffer) WriteChar(c byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeChar(c)
}

// WriteText draws s starting at the cursor.
func (b *Buffer) WriteText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < len(s); i++ {
		b.writeChar(s[i])
	}
}

func (b *Buffer) writeChar(c byte) {
	x := b.column
	b.column += b.glyph

	if b.row < 0 || b.row >= len(b.cells) || x+b.glyph > b.columns {
		return
	}

	line := b.cells[b.row]
	lo := max(x-b.glyph+1, 0)
	hi := min(x+b.glyph, b.columns)
	clear(line[lo:hi])
	line[x] = c
}

// Row returns the text of one row, one character per glyph cell with
// trailing spaces trimmed.
func (b *Buffer) Row(row int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if row < 0 || row >= len(b.cells) {
		return ""
	}
	return b.rowText(row)
}

// Rows returns the text of every row.
func (b *Buffer) Rows() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rows := make([]string, len(b.cells))
	for i := range b.cells {
		rows[i] = b.rowText(i)
	}
	return rows
}

func (b *Buffer) rowText(row int) string {
	out := make([]byte, b.columns/b.glyph+1)
	for i := range out {
		out[i] = ' '
	}
	for x, c := range b.cells[row] {
		if c != 0 {
			out[x/b.glyph] = c
		}
	}
	return strings.TrimRight(string(out), " ")
}

// Clears returns how many times the buffer has been cleared.
func (b *Buffer) Clears() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clears
}
