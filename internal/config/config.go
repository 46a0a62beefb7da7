// Package config loads simulator configuration from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-blackbody/internal/blackbody"
)

// Config holds all simulator configuration: the display temperature range
// the UI clamps to, and the visual calibration the color mapping uses.
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Calibration CalibrationConfig `yaml:"calibration"`
}

// DisplayConfig bounds the temperature slider. These are UI limits, not
// physical ones; the model accepts any non-negative temperature.
type DisplayConfig struct {
	TempMinK     float64 `yaml:"temp_min_k"`
	TempMaxK     float64 `yaml:"temp_max_k"`
	InitialTempK float64 `yaml:"initial_temp_k"`
}

// CalibrationConfig mirrors blackbody.Calibration in YAML form. Zero
// values fall back to the model defaults.
type CalibrationConfig struct {
	VisibleTempMinK float64 `yaml:"visible_temp_min_k"`
	VisibleTempMaxK float64 `yaml:"visible_temp_max_k"`
	Exponent        float64 `yaml:"exponent"`
	BrightnessScale float64 `yaml:"brightness_scale"`
	HaloRadiusMinPx float64 `yaml:"halo_radius_min_px"`
	HaloRadiusMaxPx float64 `yaml:"halo_radius_max_px"`
	HaloAlphaMax    float64 `yaml:"halo_alpha_max"`
	HistoryCapacity int     `yaml:"history_capacity"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cal := blackbody.DefaultCalibration()
	return &Config{
		Display: DisplayConfig{
			TempMinK:     blackbody.TempDisplayMin,
			TempMaxK:     blackbody.TempDisplayMax,
			InitialTempK: blackbody.TempDisplayStart,
		},
		Calibration: CalibrationConfig{
			VisibleTempMinK: cal.VisibleTempMin,
			VisibleTempMaxK: cal.VisibleTempMax,
			Exponent:        cal.Exponent,
			BrightnessScale: cal.BrightnessScale,
			HaloRadiusMinPx: cal.HaloRadiusMin,
			HaloRadiusMaxPx: cal.HaloRadiusMax,
			HaloAlphaMax:    cal.HaloAlphaMax,
			HistoryCapacity: cal.HistoryCapacity,
		},
	}
}

// Load reads the config from path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills zero values with model defaults so a partial YAML
// file only overrides what it names.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Display.TempMinK == 0 {
		c.Display.TempMinK = def.Display.TempMinK
	}
	if c.Display.TempMaxK == 0 {
		c.Display.TempMaxK = def.Display.TempMaxK
	}
	if c.Display.InitialTempK == 0 {
		c.Display.InitialTempK = def.Display.InitialTempK
	}
	if c.Calibration.VisibleTempMinK == 0 {
		c.Calibration.VisibleTempMinK = def.Calibration.VisibleTempMinK
	}
	if c.Calibration.VisibleTempMaxK == 0 {
		c.Calibration.VisibleTempMaxK = def.Calibration.VisibleTempMaxK
	}
	if c.Calibration.Exponent == 0 {
		c.Calibration.Exponent = def.Calibration.Exponent
	}
	if c.Calibration.BrightnessScale == 0 {
		c.Calibration.BrightnessScale = def.Calibration.BrightnessScale
	}
	if c.Calibration.HaloRadiusMinPx == 0 {
		c.Calibration.HaloRadiusMinPx = def.Calibration.HaloRadiusMinPx
	}
	if c.Calibration.HaloRadiusMaxPx == 0 {
		c.Calibration.HaloRadiusMaxPx = def.Calibration.HaloRadiusMaxPx
	}
	if c.Calibration.HaloAlphaMax == 0 {
		c.Calibration.HaloAlphaMax = def.Calibration.HaloAlphaMax
	}
	if c.Calibration.HistoryCapacity == 0 {
		c.Calibration.HistoryCapacity = def.Calibration.HistoryCapacity
	}
}

func (c *Config) validate() error {
	if c.Display.TempMinK < 0 {
		return fmt.Errorf("display.temp_min_k must be >= 0, got %g", c.Display.TempMinK)
	}
	if c.Display.TempMaxK <= c.Display.TempMinK {
		return fmt.Errorf("display.temp_max_k (%g) must exceed temp_min_k (%g)",
			c.Display.TempMaxK, c.Display.TempMinK)
	}
	if c.Display.InitialTempK < c.Display.TempMinK || c.Display.InitialTempK > c.Display.TempMaxK {
		return fmt.Errorf("display.initial_temp_k (%g) outside [%g, %g]",
			c.Display.InitialTempK, c.Display.TempMinK, c.Display.TempMaxK)
	}
	if c.Calibration.VisibleTempMaxK <= c.Calibration.VisibleTempMinK {
		return fmt.Errorf("calibration.visible_temp_max_k (%g) must exceed visible_temp_min_k (%g)",
			c.Calibration.VisibleTempMaxK, c.Calibration.VisibleTempMinK)
	}
	if c.Calibration.Exponent <= 0 {
		return fmt.Errorf("calibration.exponent must be > 0, got %g", c.Calibration.Exponent)
	}
	if c.Calibration.BrightnessScale <= 0 {
		return fmt.Errorf("calibration.brightness_scale must be > 0, got %g", c.Calibration.BrightnessScale)
	}
	if c.Calibration.HaloAlphaMax < 0 || c.Calibration.HaloAlphaMax > 1 {
		return fmt.Errorf("calibration.halo_alpha_max must be in [0, 1], got %g", c.Calibration.HaloAlphaMax)
	}
	if c.Calibration.HaloRadiusMaxPx < c.Calibration.HaloRadiusMinPx {
		return fmt.Errorf("calibration.halo_radius_max_px (%g) below halo_radius_min_px (%g)",
			c.Calibration.HaloRadiusMaxPx, c.Calibration.HaloRadiusMinPx)
	}
	if c.Calibration.HistoryCapacity < 1 {
		return fmt.Errorf("calibration.history_capacity must be >= 1, got %d", c.Calibration.HistoryCapacity)
	}
	return nil
}

// ToCalibration converts the YAML calibration to the model's form.
func (c *Config) ToCalibration() blackbody.Calibration {
	return blackbody.Calibration{
		VisibleTempMin:  c.Calibration.VisibleTempMinK,
		VisibleTempMax:  c.Calibration.VisibleTempMaxK,
		Exponent:        c.Calibration.Exponent,
		BrightnessScale: c.Calibration.BrightnessScale,
		HaloRadiusMin:   c.Calibration.HaloRadiusMinPx,
		HaloRadiusMax:   c.Calibration.HaloRadiusMaxPx,
		HaloAlphaMax:    c.Calibration.HaloAlphaMax,
		HistoryCapacity: c.Calibration.HistoryCapacity,
	}
}

// ClampTemperature clamps a temperature to the display range.
func (c *Config) ClampTemperature(tempK float64) float64 {
	if tempK < c.Display.TempMinK {
		return c.Display.TempMinK
	}
	if tempK > c.Display.TempMaxK {
		return c.Display.TempMaxK
	}
	return tempK
}
