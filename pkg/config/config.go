package config

import (
	"fmt"
	"os"
	"time"

	"github.com/itohio/tinytemp/pkg/display"
	"github.com/itohio/tinytemp/pkg/thermometer"
	"gopkg.in/yaml.v3"
)

// Config represents the host application configuration.
type Config struct {
	Sensor  SensorConfig  `yaml:"sensor"`
	Alert   AlertConfig   `yaml:"alert"`
	Display DisplayConfig `yaml:"display"`
	Power   PowerConfig   `yaml:"power"`
	Serial  SerialConfig  `yaml:"serial"`
	Mock    MockConfig    `yaml:"mock"`
}

// SensorConfig contains acquisition parameters.
type SensorConfig struct {
	Samples int     `yaml:"samples"` // ADC readings averaged per cycle
	VRef    float32 `yaml:"vref"`    // ADC reference voltage (V)
}

// AlertConfig contains the TOO HOT threshold.
type AlertConfig struct {
	MaxTempF float32 `yaml:"max_temp_f"` // Alert when Fahrenheit is strictly above
}

// DisplayConfig contains display geometry.
type DisplayConfig struct {
	UnitColumn      uint8 `yaml:"unit_column"`       // Pixel column of DEG C / DEG F
	ZeroPadFraction bool  `yaml:"zero_pad_fraction"` // Render 3.05 as "3.05" rather than "3.5"
	Columns         int   `yaml:"columns"`           // Display width in pixels
	Rows            int   `yaml:"rows"`              // Text lines
	GlyphWidth      int   `yaml:"glyph_width"`       // Pixels per character
}

// PowerConfig contains watchdog parameters.
type PowerConfig struct {
	Watchdog time.Duration `yaml:"watchdog"` // Sleep before the watchdog resets the device
	Reboots  int           `yaml:"reboots"`  // Cycles to run on the host (0 = until interrupted)
}

// SerialConfig contains bench sensor port configuration.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// MockConfig contains simulated sensor parameters.
type MockConfig struct {
	Raw   uint16  `yaml:"raw"`   // Steady-state ADC code
	Noise float32 `yaml:"noise"` // Ripple amplitude in ADC codes
}

// Default returns a default configuration matching the reference build.
func Default() *Config {
	s := thermometer.DefaultSettings()
	return &Config{
		Sensor: SensorConfig{
			Samples: s.Samples,
			VRef:    s.VRef,
		},
		Alert: AlertConfig{
			MaxTempF: s.MaxTempF,
		},
		Display: DisplayConfig{
			UnitColumn: s.UnitColumn,
			Columns:    display.DefaultColumns,
			Rows:       display.DefaultRows,
			GlyphWidth: display.DefaultGlyphWidth,
		},
		Power: PowerConfig{
			Watchdog: s.Watchdog,
			Reboots:  1,
		},
		Serial: SerialConfig{
			Port:     "", // Empty selects the mock sensor
			BaudRate: 115200,
		},
		Mock: MockConfig{
			Raw:   682, // ~23 °C
			Noise: 3,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if err := cfg.Thermometer().Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Thermometer returns the measurement cycle settings.
func (c *Config) Thermometer() thermometer.Settings {
	return thermometer.Settings{
		Samples:         c.Sensor.Samples,
		VRef:            c.Sensor.VRef,
		MaxTempF:        c.Alert.MaxTempF,
		UnitColumn:      c.Display.UnitColumn,
		ZeroPadFraction: c.Display.ZeroPadFraction,
		Watchdog:        c.Power.Watchdog,
	}
}

// ensureDefaults fills zero fields with default values. A zero threshold is
// a legal setting and is kept.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Sensor.Samples == 0 {
		c.Sensor.Samples = def.Sensor.Samples
	}
	if c.Sensor.VRef == 0 {
		c.Sensor.VRef = def.Sensor.VRef
	}

	if c.Display.UnitColumn == 0 {
		c.Display.UnitColumn = def.Display.UnitColumn
	}
	if c.Display.Columns == 0 {
		c.Display.Columns = def.Display.Columns
	}
	if c.Display.Rows == 0 {
		c.Display.Rows = def.Display.Rows
	}
	if c.Display.GlyphWidth == 0 {
		c.Display.GlyphWidth = def.Display.GlyphWidth
	}

	if c.Power.Watchdog == 0 {
		c.Power.Watchdog = def.Power.Watchdog
	}

	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}
}
