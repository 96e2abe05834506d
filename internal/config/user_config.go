package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bkerrors "branchkit.dev/branchkit/internal/errors"
)

// UserConfigPath returns the path of the user's config file.
// BRANCHKIT_CONFIG takes precedence over the XDG location. There, config.toml
// is preferred and config.yaml is used when only it exists.
func UserConfigPath() string {
	if path := os.Getenv("BRANCHKIT_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	tomlPath := filepath.Join(dir, "branchkit", "config.toml")
	if _, err := os.Stat(tomlPath); err != nil {
		yamlPath := filepath.Join(dir, "branchkit", "config.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			return yamlPath
		}
	}
	return tomlPath
}

// LoadUserConfig reads the user config, YAML for .yaml/.yml files and TOML
// otherwise. A missing file yields empty overrides.
func LoadUserConfig(path string) (Overrides, error) {
	var o Overrides
	if path == "" {
		return o, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Overrides{}, nil
		}
		return Overrides{}, bkerrors.NewConfigurationError("failed to read "+path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &o)
	default:
		_, err = toml.Decode(string(data), &o)
	}
	if err != nil {
		return Overrides{}, bkerrors.NewConfigurationError("failed to parse "+path, err)
	}
	return o, nil
}
