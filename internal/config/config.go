package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"multiselect/internal/domain"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".multiselect.toml"

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the picker configuration
type Config struct {
	Version  int               `toml:"version"`
	Title    string            `toml:"title"`
	Options  []domain.Option   `toml:"options"`
	Selected []string          `toml:"selected"` // values preselected on open
	Panel    PanelSettings     `toml:"panel"`
	Strings  map[string]string `toml:"strings"` // string table overrides
}

// PanelSettings represents the panel flags
type PanelSettings struct {
	Disabled          bool   `toml:"disabled"`
	DisableSearch     bool   `toml:"disable_search"`
	FocusSearchOnOpen bool   `toml:"focus_search_on_open"`
	HasSelectAll      bool   `toml:"has_select_all"`
	SelectAllLabel    string `toml:"select_all_label"`
	MobileBreakpoint  int    `toml:"mobile_breakpoint"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service bound to the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "multiselect", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration, falling back to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Initialize maps if nil
	if cfg.Strings == nil {
		cfg.Strings = make(map[string]string)
	}

	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "multiselect",
		Strings: make(map[string]string),
		Panel: PanelSettings{
			FocusSearchOnOpen: true,
			HasSelectAll:      true,
		},
	}
}

// SelectedOptions resolves the preselected values against the options
func (c *Config) SelectedOptions() []domain.Option {
	return domain.FromValues(c.Options, c.Selected)
}
