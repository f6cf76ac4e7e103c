package display

// Display is the character display collaborator. Columns are pixel
// positions, rows are 8-pixel text lines. All calls are fire-and-forget.
type Display interface {
	Clear()
	SetCursor(column, row uint8)
	WriteChar(c byte)
	WriteText(s string)
}

// Cell is a cursor position on the display.
type Cell struct {
	Column uint8
	Row    uint8
}

// Op is one positioned draw operation. Literal text goes out through
// WriteText, formatted digits one character at a time through WriteChar.
type Op struct {
	Cell    Cell
	Text    string
	Literal bool
}

// Draw positions the cursor and writes every op in order. It does not
// clear the display.
func Draw(d Display, ops []Op) {
	for _, op := range ops {
		d.SetCursor(op.Cell.Column, op.Cell.Row)
		if op.Literal {
			d.WriteText(op.Text)
			continue
		}
		for i := 0; i < len(op.Text); i++ {
			d.WriteChar(op.Text[i])
		}
	}
}

var _ Display = (*Buffer)(nil)
