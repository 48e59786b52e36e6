package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ortho-arena/internal/data"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.arena/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
// Fields missing from the file keep their default values.
func LoadArena(customPath string) (ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := load(customPath, "arena.yaml", defaultArenaYAML, &cfg); err != nil {
		return DefaultArenaConfig(), err
	}
	return cfg, nil
}

// LoadTables loads and validates the static data tables.
// Search order: customPath -> ~/.arena/configs/tables.yaml -> ./configs/tables.yaml -> embedded default
func LoadTables(customPath string) (*data.Tables, error) {
	var tables data.Tables
	if err := load(customPath, "tables.yaml", defaultTablesYAML, &tables); err != nil {
		return nil, err
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid tables: %w", err)
	}
	return &tables, nil
}

// load fills out from the first source found. A custom path must exist and
// parse; the user and local files are skipped when missing or malformed.
func load(customPath, name string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		raw, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, raw, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := decode(path, raw, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: embedded %s: %w", name, err)
	}
	return nil
}

// decode picks a decoder by file extension.
func decode(path string, raw []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, out)
	case ".toml":
		return toml.Unmarshal(raw, out)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", "configs", filename)
}

// DefaultDataDir returns ~/.arena, creating nothing.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".arena"
	}
	return filepath.Join(home, ".arena")
}
