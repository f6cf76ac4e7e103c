package config

import (
	"os"
	"testing"
	"time"

	"github.com/itohio/tinytemp/pkg/thermometer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, 25, cfg.Sensor.Samples)
	assert.Equal(t, float32(1.1), cfg.Sensor.VRef)
	assert.Equal(t, float32(80), cfg.Alert.MaxTempF)
	assert.Equal(t, uint8(50), cfg.Display.UnitColumn)
	assert.False(t, cfg.Display.ZeroPadFraction)
	assert.Equal(t, 128, cfg.Display.Columns)
	assert.Equal(t, 8, cfg.Display.Rows)
	assert.Equal(t, 6, cfg.Display.GlyphWidth)
	assert.Equal(t, 8*time.Second, cfg.Power.Watchdog)
	assert.Equal(t, 1, cfg.Power.Reboots)
	assert.Equal(t, "", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
}

func TestDefault_MatchesThermometerDefaults(t *testing.T) {
	assert.Equal(t, thermometer.DefaultSettings(), Default().Thermometer())
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	name := writeTemp(t, `
sensor:
  samples: 10
  vref: 5.0

alert:
  max_temp_f: 95.5

display:
  unit_column: 64
  zero_pad_fraction: true

power:
  watchdog: 2s
  reboots: 0

serial:
  port: "/dev/ttyUSB0"
  baud_rate: 9600

mock:
  raw: 767
  noise: 0
`)

	cfg, err := Load(name)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Sensor.Samples)
	assert.Equal(t, float32(5.0), cfg.Sensor.VRef)
	assert.Equal(t, float32(95.5), cfg.Alert.MaxTempF)
	assert.Equal(t, uint8(64), cfg.Display.UnitColumn)
	assert.True(t, cfg.Display.ZeroPadFraction)
	assert.Equal(t, 2*time.Second, cfg.Power.Watchdog)
	assert.Equal(t, 0, cfg.Power.Reboots)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 9600, cfg.Serial.BaudRate)
	assert.Equal(t, uint16(767), cfg.Mock.Raw)
	assert.Equal(t, float32(0), cfg.Mock.Noise)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeTemp(t, "invalid: yaml: content: ["))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidSettings(t *testing.T) {
	cfg, err := Load(writeTemp(t, "sensor:\n  vref: -1\n"))
	assert.ErrorIs(t, err, thermometer.ErrVRef)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
alert:
  max_temp_f: 70
`))
	require.NoError(t, err)

	assert.Equal(t, float32(70), cfg.Alert.MaxTempF)
	assert.Equal(t, 25, cfg.Sensor.Samples)            // default
	assert.Equal(t, 8*time.Second, cfg.Power.Watchdog) // default
}

func TestLoad_ExplicitZerosUseDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
sensor:
  samples: 0
  vref: 0
display:
  unit_column: 0
power:
  watchdog: 0s
`))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Sensor.Samples)
	assert.Equal(t, float32(1.1), cfg.Sensor.VRef)
	assert.Equal(t, uint8(50), cfg.Display.UnitColumn)
	assert.Equal(t, 8*time.Second, cfg.Power.Watchdog)
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Serial.Port = "/dev/ttyACM0"
	cfg.Alert.MaxTempF = 75

	name := writeTemp(t, "")
	require.NoError(t, cfg.Save(name))

	loaded, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Thermometer(t *testing.T) {
	cfg := Default()
	cfg.Sensor.Samples = 5
	cfg.Display.ZeroPadFraction = true

	s := cfg.Thermometer()
	assert.Equal(t, 5, s.Samples)
	assert.True(t, s.ZeroPadFraction)
	assert.Equal(t, cfg.Power.Watchdog, s.Watchdog)
}
