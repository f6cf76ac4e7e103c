package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/itohio/tinytemp/pkg/display"
	"github.com/itohio/tinytemp/pkg/fixedpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestTerminal_Print(t *testing.T) {
	term := New(0, 0, 0)
	term.Clear()
	display.Draw(term, display.NewComposer(display.DefaultUnitColumn, fixedpoint.Formatter{}).Compose(32.39, 90.3, 80))
	term.Set(true)

	var out bytes.Buffer
	require.NoError(t, term.Print(&out))

	assert.Equal(t, ""+
		"+-----------------------+\n"+
		"| TEMPERATURE: TOO HOT! |\n"+
		"| 32.39   DEG C         |\n"+
		"| 90.30   DEG F         |\n"+
		"+-----------------------+\n"+
		"LED: ON\n", out.String())
}

func TestTerminal_PrintEmpty(t *testing.T) {
	term := New(0, 0, 0)

	var out bytes.Buffer
	require.NoError(t, term.Print(&out))

	assert.Equal(t, "+--+\n+--+\nLED: off\n", out.String())
}

func TestTerminal_LED(t *testing.T) {
	term := New(0, 0, 0)
	assert.False(t, term.LED())

	term.Set(true)
	assert.True(t, term.LED())

	term.Set(false)
	assert.False(t, term.LED())
}
