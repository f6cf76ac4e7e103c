package display

import "github.com/itohio/tinytemp/pkg/fixedpoint"

// Screen labels.
const (
	LabelTemperature = "TEMPERATURE: "
	LabelTooHot      = "TOO HOT!"
	// LabelBlank has the width of the alert banner so it overwrites it.
	LabelBlank = "TEMPERATURE:          "
	LabelDegC  = "DEG C"
	LabelDegF  = "DEG F"
)

// DefaultUnitColumn is the pixel column where unit labels start.
const DefaultUnitColumn = 50

// Rows used by the composer.
const (
	RowHeader     = 0
	RowCelsius    = 1
	RowFahrenheit = 2
)

// Composer lays out one measurement on the display.
type Composer struct {
	formatter  fixedpoint.Formatter
	unitColumn uint8
}

// NewComposer creates a Composer placing unit labels at unitColumn.
func NewComposer(unitColumn uint8, formatter fixedpoint.Formatter) *Composer {
	return &Composer{
		formatter:  formatter,
		unitColumn: unitColumn,
	}
}

// TooHot reports whether fahrenheit exceeds threshold. Equality is not hot.
func TooHot(fahrenheit, threshold float32) bool {
	return fahrenheit > threshold
}

// Compose returns the draw operations for the header, Celsius and
// Fahrenheit lines. threshold is in degrees Fahrenheit.
func (c *Composer) Compose(celsius, fahrenheit, threshold float32) []Op {
	ops := make([]Op, 0, 5)

	header := LabelBlank
	if TooHot(fahrenheit, threshold) {
		header = LabelTemperature + LabelTooHot
	}
	ops = append(ops, Op{Cell: Cell{0, RowHeader}, Text: header, Literal: true})

	ops = c.appendLine(ops, RowCelsius, celsius, LabelDegC)
	ops = c.appendLine(ops, RowFahrenheit, fahrenheit, LabelDegF)

	return ops
}

func (c *Composer) appendLine(ops []Op, row uint8, value float32, unit string) []Op {
	digits := c.formatter.Render(c.formatter.Format(value))
	return append(ops,
		Op{Cell: Cell{0, row}, Text: string(digits)},
		Op{Cell: Cell{c.unitColumn, row}, Text: unit, Literal: true},
	)
}
