// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/wrapbench/pkg/models"
)

const (
	DefaultFontFamily = "Arial"
	DefaultFontSize   = 9
)

type Config struct {
	Modes          []int           `yaml:"modes" validate:"dive,min=0,max=4"`
	ParagraphsFile string          `yaml:"paragraphs_file"`
	OutputDir      string          `yaml:"output_dir"`
	Font           models.FontSpec `yaml:"font"`
	Palette        []models.RGB    `yaml:"palette" validate:"len=5,dive"`
	NeutralColor   *models.RGB     `yaml:"neutral_color" validate:"required"`
	// CopyDestination enables the post-run copy prompt when non-empty.
	CopyDestination string `yaml:"copy_destination"`
	AssumeYes       bool   `yaml:"assume_yes"`
	PreviewDir      string `yaml:"preview_dir"`
}

// DefaultPalette is cycled per paragraph by the colorized mode.
func DefaultPalette() []models.RGB {
	return []models.RGB{
		{R: 220, G: 20, B: 60},  // Crimson
		{R: 30, G: 144, B: 255}, // Dodger Blue
		{R: 34, G: 139, B: 34},  // Forest Green
		{R: 255, G: 140, B: 0},  // Dark Orange
		{R: 128, G: 0, B: 128},  // Purple
	}
}

func DefaultNeutralColor() models.RGB {
	return models.RGB{R: 42, G: 31, B: 34}
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Modes == nil {
		c.Modes = []int{int(models.ModeColorized), int(models.ModeMeasuredWidth)}
	}
	if c.Font.Family == "" {
		c.Font.Family = DefaultFontFamily
	}
	if c.Font.Size == 0 {
		c.Font.Size = DefaultFontSize
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	}
	if c.NeutralColor == nil {
		neutral := DefaultNeutralColor()
		c.NeutralColor = &neutral
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) ModeSet() models.ModeSet {
	modes := make([]models.Mode, 0, len(c.Modes))
	for _, m := range c.Modes {
		modes = append(modes, models.Mode(m))
	}
	return models.NewModeSet(modes...)
}
