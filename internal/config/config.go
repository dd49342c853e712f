package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is the colour palette handed to the UI.
type Theme struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Success    string `yaml:"success"`
	Error      string `yaml:"error"`
	Border     string `yaml:"border"`
}

// DefaultTheme is the indigo palette of the note screens.
func DefaultTheme() Theme {
	return Theme{
		Primary:    "#3f51b5", // indigo
		Secondary:  "#7986cb", // light indigo
		Accent:     "#ff7043",
		Background: "#16161d",
		Text:       "#d7d9da",
		Muted:      "#9ba0bf",
		Success:    "#3f866b",
		Error:      "#c0504d",
		Border:     "#273540",
	}
}

// merge fills empty fields from def.
func (t Theme) merge(def Theme) Theme {
	pick := func(v, d string) string {
		if strings.TrimSpace(v) == "" {
			return d
		}
		return v
	}
	return Theme{
		Primary:    pick(t.Primary, def.Primary),
		Secondary:  pick(t.Secondary, def.Secondary),
		Accent:     pick(t.Accent, def.Accent),
		Background: pick(t.Background, def.Background),
		Text:       pick(t.Text, def.Text),
		Muted:      pick(t.Muted, def.Muted),
		Success:    pick(t.Success, def.Success),
		Error:      pick(t.Error, def.Error),
		Border:     pick(t.Border, def.Border),
	}
}

// Config holds CLI configuration stored at ~/.notes/config.
type Config struct {
	Theme        Theme  `yaml:"theme"`
	ExportDir    string `yaml:"export_dir,omitempty"`
	ExportFormat string `yaml:"export_format,omitempty"`
	DocumentURL  string `yaml:"document_url,omitempty"`
	APIKey       string `yaml:"api_key,omitempty"`
	StorePath    string `yaml:"store_path,omitempty"`
	LogFile      string `yaml:"log_file,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// Dir returns the directory holding config, notes and logs.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".notes")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:        DefaultTheme(),
		ExportDir:    ".",
		ExportFormat: "svg",
		StorePath:    filepath.Join(Dir(), "notes.db"),
		LogLevel:     "info",
	}
}

// Load reads and parses the config file. A missing file yields Default.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.fill()
	return &cfg, nil
}

func (c *Config) fill() {
	def := Default()
	c.Theme = c.Theme.merge(def.Theme)
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
	if c.ExportFormat == "" {
		c.ExportFormat = def.ExportFormat
	}
	if c.StorePath == "" {
		c.StorePath = def.StorePath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
