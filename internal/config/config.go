package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at an explicit config file.
const EnvPath = "MKFILE_CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings mkfile reads from its optional config file.
type Config struct {
	FileMode Mode     `yaml:"file_mode"`
	DirMode  Mode     `yaml:"dir_mode"`
	Color    string   `yaml:"color"`
	Defaults Defaults `yaml:"defaults"`

	// Path is the file the config was read from, empty when built-in
	// defaults are used.
	Path string `yaml:"-"`
}

// Defaults are switched on for every run in addition to the command-line flags.
type Defaults struct {
	Verbose bool `yaml:"verbose"`
	Parents bool `yaml:"parents"`
}

// Mode is a permission mode written in octal in YAML, e.g. "0644".
type Mode os.FileMode

// UnmarshalYAML accepts quoted or bare octal scalars.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: mode must be an octal scalar", value.Line)
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(value.Value, "0o"), 8, 32)
	if err != nil {
		return fmt.Errorf("line %d: invalid mode %q: %w", value.Line, value.Value, err)
	}
	*m = Mode(n)
	return nil
}

// Perm returns the mode as an os.FileMode.
func (m Mode) Perm() os.FileMode {
	return os.FileMode(m)
}

// Load reads $MKFILE_CONFIG when it is set. Otherwise it reads config.yaml
// under the user config directory, falling back to built-in defaults when
// that file does not exist.
func Load() (*Config, error) {
	if path := os.Getenv(EnvPath); path != "" {
		return loadFromFile(path)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return defaults(), nil
	}

	cfg, err := loadFromFile(DefaultPath(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return defaults(), nil
	}
	return cfg, err
}

// DefaultPath is the config file location under a user config directory.
func DefaultPath(userConfigDir string) string {
	return filepath.Join(userConfigDir, "mkfile", "config.yaml")
}

func loadFromFile(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}

	cfg.Path = path
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		FileMode: 0o644,
		DirMode:  0o755,
		Color:    ColorAuto,
	}
}

func (c *Config) validate() error {
	if c.FileMode.Perm()&^os.ModePerm != 0 {
		return fmt.Errorf("file_mode must be at most 0777, got %#o", uint32(c.FileMode))
	}
	if c.DirMode.Perm()&^os.ModePerm != 0 {
		return fmt.Errorf("dir_mode must be at most 0777, got %#o", uint32(c.DirMode))
	}
	if c.DirMode.Perm()&0o100 == 0 {
		return fmt.Errorf("dir_mode must let the owner search the directory, got %#o", uint32(c.DirMode))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", c.Color)
	}
	return nil
}
