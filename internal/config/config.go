package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
	yamlv3 "gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/ppcalendar/config.yaml"

// EnvPrefix marks environment overrides. Nested keys use a double
// underscore: PPCAL_STORAGE__BACKEND=sqlite.
const EnvPrefix = "PPCAL_"

// Config holds all ppcal configuration.
type Config struct {
	Storage   StorageConfig     `yaml:"storage" koanf:"storage"`
	Calendar  CalendarConfig    `yaml:"calendar" koanf:"calendar"`
	Highlight map[string]string `yaml:"highlight" koanf:"highlight"`
	Logging   LoggingConfig     `yaml:"logging" koanf:"logging"`
}

type StorageConfig struct {
	Path       string `yaml:"path" koanf:"path"`
	Backend    string `yaml:"backend" koanf:"backend"`
	CSVFile    string `yaml:"csv_file" koanf:"csv_file"`
	SQLiteFile string `yaml:"sqlite_file" koanf:"sqlite_file"`
}

type CalendarConfig struct {
	WeekStart string `yaml:"week_start" koanf:"week_start"`
	WeekRows  int    `yaml:"week_rows" koanf:"week_rows"`
	Color     string `yaml:"color" koanf:"color"`
}

type LoggingConfig struct {
	Level string `yaml:"level" koanf:"level"`
}

// Load reads the YAML config at path over the defaults, then applies
// PPCAL_ environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(*DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	log.Debugf("loaded configuration from %s", path)

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "__", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize folds case, clamps the week row count and rejects unknown
// enumerations.
func (c *Config) Normalize() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case "":
		c.Storage.Backend = "csv"
	case "csv", "sqlite":
	default:
		return fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}

	c.Calendar.WeekStart = strings.ToLower(strings.TrimSpace(c.Calendar.WeekStart))
	switch c.Calendar.WeekStart {
	case "", "monday":
		c.Calendar.WeekStart = "monday"
	case "sunday":
	default:
		return fmt.Errorf("calendar.week_start: expected monday or sunday, got %q", c.Calendar.WeekStart)
	}

	if c.Calendar.WeekRows < 6 {
		c.Calendar.WeekRows = 6
	}

	c.Calendar.Color = strings.ToLower(strings.TrimSpace(c.Calendar.Color))
	switch c.Calendar.Color {
	case "":
		c.Calendar.Color = "auto"
	case "auto", "always", "never":
	default:
		return fmt.Errorf("calendar.color: expected auto, always or never, got %q", c.Calendar.Color)
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// FirstWeekday returns the weekday that opens each grid row.
func (c *Config) FirstWeekday() time.Weekday {
	if c.Calendar.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// DataDir returns the storage directory with ~ expanded.
func (c *Config) DataDir() (string, error) {
	return expandPath(c.Storage.Path)
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// ExpandPath is expandPath for callers outside the package.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yamlv3.Marshal(DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
		log.Debugf("wrote default configuration to %s", path)
	}

	return Load(path)
}
