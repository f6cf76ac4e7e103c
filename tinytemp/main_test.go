package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/itohio/tinytemp/pkg/config"
	"github.com/itohio/tinytemp/pkg/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestLoadConfig_Overrides(t *testing.T) {
	opts := &options{
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		port:       "/dev/ttyUSB1",
		raw:        767,
	}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB1", cfg.Serial.Port)
	assert.Equal(t, uint16(767), cfg.Mock.Raw)
}

func TestLoadConfig_RawOutOfRange(t *testing.T) {
	opts := &options{
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		raw:        1024,
	}

	_, err := loadConfig(opts)
	assert.Error(t, err)
}

func TestLoadConfig_NoOverrides(t *testing.T) {
	opts := &options{
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		raw:        -1,
	}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRunCycles(t *testing.T) {
	cfg := config.Default()
	cfg.Power.Watchdog = 10 * time.Millisecond
	cfg.Power.Reboots = 2

	seq := sensor.NewSequence(767)
	var out bytes.Buffer
	require.NoError(t, runCycles(context.Background(), cfg, seq, &out))

	assert.Equal(t, 2*cfg.Sensor.Samples, seq.Reads())
	assert.Equal(t, 2, strings.Count(out.String(), "| TEMPERATURE: TOO HOT! |"))
	assert.Equal(t, 2, strings.Count(out.String(), "| 32.39   DEG C         |"))
	assert.Equal(t, 2, strings.Count(out.String(), "LED: ON"))
}

func TestRunCycles_Cancelled(t *testing.T) {
	cfg := config.Default()
	cfg.Power.Watchdog = time.Hour
	cfg.Power.Reboots = 0

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := runCycles(ctx, cfg, sensor.NewSequence(500), &out)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, out.String(), "LED: off")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, root.Execute())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Contains(t, out.String(), path)
}
