package display

import (
	"testing"

	"github.com/itohio/tinytemp/pkg/convert"
	"github.com/itohio/tinytemp/pkg/fixedpoint"
	"github.com/itohio/tinytemp/pkg/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTooHot(t *testing.T) {
	tests := []struct {
		name       string
		fahrenheit float32
		want       bool
	}{
		{name: "below", fahrenheit: 79.99, want: false},
		{name: "equal is not hot", fahrenheit: 80, want: false},
		{name: "just above", fahrenheit: 80.0001, want: true},
		{name: "well above", fahrenheit: 90.3, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TooHot(tt.fahrenheit, 80))
		})
	}
}

func TestComposer_Compose(t *testing.T) {
	c := NewComposer(DefaultUnitColumn, fixedpoint.Formatter{})

	t.Run("too hot", func(t *testing.T) {
		ops := c.Compose(32.39, 90.3, 80)
		assert.Equal(t, []Op{
			{Cell: Cell{0, 0}, Text: "TEMPERATURE: TOO HOT!", Literal: true},
			{Cell: Cell{0, 1}, Text: "32.39"},
			{Cell: Cell{50, 1}, Text: "DEG C", Literal: true},
			{Cell: Cell{0, 2}, Text: "90.30"},
			{Cell: Cell{50, 2}, Text: "DEG F", Literal: true},
		}, ops)
	})

	t.Run("at threshold", func(t *testing.T) {
		ops := c.Compose(26.66, 80, 80)
		require.NotEmpty(t, ops)
		assert.Equal(t, LabelBlank, ops[0].Text)
	})

	t.Run("just over threshold", func(t *testing.T) {
		ops := c.Compose(26.67, 80.0001, 80)
		require.NotEmpty(t, ops)
		assert.Equal(t, LabelTemperature+LabelTooHot, ops[0].Text)
	})
}

func TestComposer_BannersHaveSameWidth(t *testing.T) {
	assert.GreaterOrEqual(t, len(LabelBlank), len(LabelTemperature+LabelTooHot))
}

func TestComposer_UnitColumn(t *testing.T) {
	c := NewComposer(64, fixedpoint.Formatter{ZeroPad: true})
	ops := c.Compose(3.05, 37.49, 80)

	require.Len(t, ops, 5)
	assert.Equal(t, "3.05", ops[1].Text)
	assert.Equal(t, Cell{64, RowCelsius}, ops[2].Cell)
	assert.Equal(t, Cell{64, RowFahrenheit}, ops[4].Cell)
}

func TestComposer_IndependentLines(t *testing.T) {
	c := NewComposer(DefaultUnitColumn, fixedpoint.Formatter{})

	// A short Fahrenheit value after a long Celsius value must not inherit
	// any of the Celsius digits.
	ops := c.Compose(-50.25, 3.7, 80)
	assert.Equal(t, "-50.25", ops[1].Text)
	assert.Equal(t, "3.70", ops[3].Text)
}

func TestComposer_DrawToBuffer(t *testing.T) {
	tests := []struct {
		name string
		raw  sensor.RawSample
		want []string
	}{
		{
			name: "hot",
			raw:  767,
			want: []string{"TEMPERATURE: TOO HOT!", "32.39   DEG C", "90.30   DEG F"},
		},
		{
			name: "cool",
			raw:  500,
			want: []string{"TEMPERATURE:", "3.71    DEG C", "38.67   DEG F"},
		},
	}

	c := NewComposer(DefaultUnitColumn, fixedpoint.Formatter{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := convert.Convert(tt.raw, convert.DefaultVRef)
			b := NewBuffer(0, 0, 0)
			Draw(b, c.Compose(r.Celsius, r.Fahrenheit, 80))
			assert.Equal(t, tt.want, b.Rows()[:3])
		})
	}
}
