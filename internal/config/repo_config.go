package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	bkerrors "branchkit.dev/branchkit/internal/errors"
)

// RepoConfigFile is the per-repository config file name inside the git directory
const RepoConfigFile = ".branchkit_config"

// RepoConfigPath returns the repository config path for a git directory
func RepoConfigPath(gitDir string) string {
	return filepath.Join(gitDir, RepoConfigFile)
}

// GetRepoConfig reads the repository configuration. A missing file yields empty overrides.
func GetRepoConfig(gitDir string) (Overrides, error) {
	configPath := RepoConfigPath(gitDir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Overrides{}, nil
		}
		return Overrides{}, bkerrors.NewConfigurationError("failed to read "+configPath, err)
	}

	var o Overrides
	if err := json.Unmarshal(data, &o); err != nil {
		return Overrides{}, bkerrors.NewConfigurationError("failed to parse repo config", err)
	}

	return o, nil
}

// SetRepoConfig writes the repository configuration
func SetRepoConfig(gitDir string, o Overrides) error {
	configJSON, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(RepoConfigPath(gitDir), configJSON, 0o600)
}
