// Package config handles loading and merging of ding configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/ding/internal/derrors"
)

// SupportedConfigNames contains supported project configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".ding.yml",
	".ding.yaml",
	".ding.toml",
	".ding.json",
}

const (
	// GlobalConfigName is the name of the global config file
	GlobalConfigName = "config.yml"
)

// Config represents a ding configuration
type Config struct {
	// Spec is the OpenAPI document path, absolute once loaded
	Spec       string `koanf:"spec"`
	PathPrefix string `koanf:"path_prefix"`
	// JSON is nil when the file does not mention it
	JSON      *bool  `koanf:"json"`
	LogLevel  string `koanf:"log_level"`
	LocalOnly bool   `koanf:"local_only"`
}

// JSONOutput reports whether JSON output is enabled
func (c *Config) JSONOutput() bool {
	return c.JSON != nil && *c.JSON
}

// HasLocalConfig checks if a directory has a project configuration file
func HasLocalConfig(dir string) bool {
	_, ok := localConfigIn(dir)
	return ok
}

func localConfigIn(dir string) (string, bool) {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Loader handles loading and parsing configuration files
type Loader struct {
	// globalPath overrides the global config location when set
	globalPath string
}

// New creates a new config loader
func New() *Loader {
	return &Loader{}
}

// WithGlobalPath makes the loader read the global config from path
func (l *Loader) WithGlobalPath(path string) *Loader {
	l.globalPath = path
	return l
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// Load reads and parses a configuration file.
// A relative spec path is resolved against the file's directory.
func (l *Loader) Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "cannot load config", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to read config", err)
	}

	// Create a new koanf instance for isolated loading
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	if cfg.Spec != "" && !filepath.IsAbs(cfg.Spec) {
		cfg.Spec = filepath.Join(filepath.Dir(path), cfg.Spec)
	}

	return cfg, nil
}

// Merge merges parent and child configs, with child taking precedence
// If child has LocalOnly=true, parent is ignored
func Merge(parent, child *Config) *Config {
	if child.LocalOnly {
		return child
	}

	merged := *parent
	merged.LocalOnly = child.LocalOnly
	if child.Spec != "" {
		merged.Spec = child.Spec
	}
	if child.PathPrefix != "" {
		merged.PathPrefix = child.PathPrefix
	}
	if child.JSON != nil {
		merged.JSON = child.JSON
	}
	if child.LogLevel != "" {
		merged.LogLevel = child.LogLevel
	}
	return &merged
}

// GetGlobalConfigPath returns the path to the global config file
func GetGlobalConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		// Fallback to ~/.config
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "ding", GlobalConfigName), nil
}

// FindConfigFiles searches for config files from startDir up to root
// Returns paths in order from root to leaf (for proper merging)
func FindConfigFiles(startDir string) []string {
	var configs []string
	currentDir := startDir

	for {
		if path, ok := localConfigIn(currentDir); ok {
			configs = append(configs, path)
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	// Reverse to get root-to-leaf order
	for i, j := 0, len(configs)-1; i < j; i, j = i+1, j-1 {
		configs[i], configs[j] = configs[j], configs[i]
	}

	return configs
}

// LoadHierarchy loads and merges all configs from global to dir
// Order: global config → root → ... → parent → dir
// A project config with local_only set drops everything above it.
func (l *Loader) LoadHierarchy(dir string) (*Config, []string, error) {
	merged := &Config{}
	var loaded []string

	globalPath := l.globalPath
	if globalPath == "" {
		if p, err := GetGlobalConfigPath(); err == nil {
			globalPath = p
		}
	}
	if globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			cfg, err := l.Load(globalPath)
			if err != nil {
				return nil, nil, err
			}
			merged = cfg
			loaded = append(loaded, globalPath)
		}
	}

	for _, path := range FindConfigFiles(dir) {
		cfg, err := l.Load(path)
		if err != nil {
			return nil, append(loaded, path), err
		}
		if cfg.LocalOnly {
			loaded = nil
		}
		merged = Merge(merged, cfg)
		loaded = append(loaded, path)
	}

	return merged, loaded, nil
}
