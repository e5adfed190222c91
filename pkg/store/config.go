package store

import (
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultBackground = "#1a1b26"
	defaultColour     = "#c0caf5"
)

// Config holds the store location and display palette. It satisfies the
// tracker's Palette contract: invert swaps the two colours in place and set
// assigns attributes by name.
type Config struct {
	Path       string `json:"path"`
	ExportPath string `json:"exportPath"`
	Background string `json:"background"`
	Colour     string `json:"colour"`

	// File is where the configuration was read from and is written back to
	// on Save.
	File string `json:"-"`
}

// LoadConfig reads configuration from a .punch file (yaml implicit) in the
// working directory, the PUNCH_* environment, or defaults.
func LoadConfig() (*Config, error) {
	viper.SetDefault("path", "~/.punch.db")
	viper.SetDefault("exportPath", "punch-export.json")
	viper.SetDefault("background", defaultBackground)
	viper.SetDefault("colour", defaultColour)
	viper.SetConfigName(".punch")
	viper.SetEnvPrefix("PUNCH")
	viper.AutomaticEnv()
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	file := viper.ConfigFileUsed()
	if file == "" {
		file = ".punch.yaml"
	}

	return &Config{
		Path:       path,
		ExportPath: viper.GetString("exportPath"),
		Background: viper.GetString("background"),
		Colour:     viper.GetString("colour"),
		File:       file,
	}, nil
}

// Save writes the configuration back to its file so mutations from the set
// and invert operations survive the process. A Config built without a file
// stays in memory only.
func (c *Config) Save() error {
	if c.File == "" {
		return nil
	}
	v := viper.New()
	v.Set("path", c.Path)
	v.Set("exportPath", c.ExportPath)
	v.Set("background", c.Background)
	v.Set("colour", c.Colour)
	if err := v.WriteConfigAs(c.File); err != nil {
		return fmt.Errorf("store: write config: %w", err)
	}
	return nil
}

// BasePath returns the directory the persistence layer writes under.
func (c *Config) BasePath() string {
	return c.Path
}

// Invert swaps the palette background and foreground.
func (c *Config) Invert() {
	c.Background, c.Colour = c.Colour, c.Background
}

// Set assigns a configuration attribute by name and reports whether the
// attribute exists.
func (c *Config) Set(attr, value string) bool {
	switch strings.ToLower(strings.TrimSpace(attr)) {
	case "path":
		c.Path = value
	case "exportpath", "export":
		c.ExportPath = value
	case "background", "bg":
		c.Background = value
	case "colour", "color", "fg":
		c.Colour = value
	default:
		return false
	}
	return true
}
