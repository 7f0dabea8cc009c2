package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
)

const (
	DefaultConfigFile = ".svurl.yaml"
	ConfigEnvVar      = "SVURL_CONFIG"
)

// Config is the on-disk configuration. Sets maps a set name to its backing
// file and is merged over DefaultSets.
type Config struct {
	Sets   map[string]string `yaml:"sets"`
	Opener OpenerConfig      `yaml:"opener"`
	Log    LogConfig         `yaml:"log"`
}

type OpenerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func DefaultSets() map[string]string {
	return map[string]string{
		"saved":   "./.saved",
		"origins": "./.origins",
		"used":    "./.used",
	}
}

func Default() *Config {
	return &Config{
		Sets: DefaultSets(),
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the YAML file at configPath over the defaults. A missing file
// yields the defaults unless mustExist is set.
func Load(configPath string, mustExist bool) (*Config, error) {
	if err := loadEnvFile(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return cfg, nil
		}
		return nil, svurlerrors.ConfigInvalid(configPath, fmt.Errorf("failed to read config file: %w", err))
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var fileCfg Config
	if err := yaml.Unmarshal([]byte(expanded), &fileCfg); err != nil {
		return nil, svurlerrors.ConfigInvalid(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	cfg.MergeSets(fileCfg.Sets)
	if fileCfg.Opener.Command != "" {
		cfg.Opener = fileCfg.Opener
	}
	mergeLog(&cfg.Log, fileCfg.Log)

	if err := cfg.Validate(); err != nil {
		return nil, svurlerrors.ConfigInvalid(configPath, err)
	}
	return cfg, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		return err
	}
	return godotenv.Load(".env")
}

func mergeLog(dst *LogConfig, src LogConfig) {
	if src.Level != "" {
		dst.Level = src.Level
	}
	if src.File != "" {
		dst.File = src.File
	}
	if src.MaxSizeMB > 0 {
		dst.MaxSizeMB = src.MaxSizeMB
	}
	if src.MaxBackups > 0 {
		dst.MaxBackups = src.MaxBackups
	}
	if src.MaxAgeDays > 0 {
		dst.MaxAgeDays = src.MaxAgeDays
	}
}

// MergeSets lays overrides over the configured sets; the override wins.
func (c *Config) MergeSets(overrides map[string]string) {
	if c.Sets == nil {
		c.Sets = make(map[string]string, len(overrides))
	}
	for name, path := range overrides {
		c.Sets[name] = path
	}
}

// Validate rejects empty names or paths and two sets sharing one file.
func (c *Config) Validate() error {
	owners := make(map[string]string, len(c.Sets))
	names := make([]string, 0, len(c.Sets))
	for name := range c.Sets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := c.Sets[name]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("set name must not be empty")
		}
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("set %q has no path", name)
		}
		if other, taken := owners[path]; taken {
			return fmt.Errorf("sets %q and %q share the file %s", other, name, path)
		}
		owners[path] = name
	}
	return nil
}

// ParseSetFlags turns name=path pairs into a mapping; later pairs win.
func ParseSetFlags(pairs []string) (map[string]string, error) {
	sets := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, path, ok := strings.Cut(pair, "=")
		name, path = strings.TrimSpace(name), strings.TrimSpace(path)
		if !ok || name == "" || path == "" {
			return nil, svurlerrors.InvalidArgument("set must be name=path").WithContext("value", pair)
		}
		sets[name] = path
	}
	return sets, nil
}
