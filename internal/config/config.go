package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	bkerrors "branchkit.dev/branchkit/internal/errors"
)

// DefaultRecentLimit is how many reflog checkouts the recent workflow looks at
const DefaultRecentLimit = 10

// Config holds the effective branchkit configuration
type Config struct {
	// Remote is the remote whose tracking refs new branches start from
	Remote string
	// IntegrationBranch is the shared branch feature work merges into (develop)
	IntegrationBranch string
	// ReleaseBranch is the release line bugfix copies start from (release)
	ReleaseBranch string
	// ProductionBranch is the branch hotfixes start from (master)
	ProductionBranch string
	// ProtectedBranches are substrings; merged branches containing any of them are never cleaned
	ProtectedBranches []string
	// RecentLimit caps how many reflog checkouts are considered
	RecentLimit int
	// LogFile enables the rotating debug log when non-empty
	LogFile string
}

// Overrides is a partial configuration read from a file; nil fields are left unchanged
type Overrides struct {
	Remote            *string  `toml:"remote" yaml:"remote,omitempty" json:"remote,omitempty"`
	IntegrationBranch *string  `toml:"integration_branch" yaml:"integration_branch,omitempty" json:"integrationBranch,omitempty"`
	ReleaseBranch     *string  `toml:"release_branch" yaml:"release_branch,omitempty" json:"releaseBranch,omitempty"`
	ProductionBranch  *string  `toml:"production_branch" yaml:"production_branch,omitempty" json:"productionBranch,omitempty"`
	ProtectedBranches []string `toml:"protected_branches" yaml:"protected_branches,omitempty" json:"protectedBranches,omitempty"`
	RecentLimit       *int     `toml:"recent_limit" yaml:"recent_limit,omitempty" json:"recentLimit,omitempty"`
	LogFile           *string  `toml:"log_file" yaml:"log_file,omitempty" json:"logFile,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Remote:            "origin",
		IntegrationBranch: "develop",
		ReleaseBranch:     "release",
		ProductionBranch:  "master",
		ProtectedBranches: []string{"develop", "release", "master"},
		RecentLimit:       DefaultRecentLimit,
	}
}

// RemoteRef returns "<remote>/<branch>"
func (c *Config) RemoteRef(branch string) string {
	return c.Remote + "/" + branch
}

// Apply overlays the non-nil fields of o
func (c *Config) Apply(o Overrides) {
	if o.Remote != nil {
		c.Remote = *o.Remote
	}
	if o.IntegrationBranch != nil {
		c.IntegrationBranch = *o.IntegrationBranch
	}
	if o.ReleaseBranch != nil {
		c.ReleaseBranch = *o.ReleaseBranch
	}
	if o.ProductionBranch != nil {
		c.ProductionBranch = *o.ProductionBranch
	}
	if o.ProtectedBranches != nil {
		c.ProtectedBranches = append([]string(nil), o.ProtectedBranches...)
	}
	if o.RecentLimit != nil {
		c.RecentLimit = *o.RecentLimit
	}
	if o.LogFile != nil {
		c.LogFile = *o.LogFile
	}
}

// applyEnv overlays environment variables
func (c *Config) applyEnv() error {
	if limit := os.Getenv("BRANCHKIT_RECENT_LIMIT"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return bkerrors.NewConfigurationError("invalid BRANCHKIT_RECENT_LIMIT", err)
		}
		c.RecentLimit = n
	}
	if logFile := os.Getenv("BRANCHKIT_LOG_FILE"); logFile != "" {
		c.LogFile = logFile
	}
	return nil
}

// Validate checks that every branch setting is usable
func (c *Config) Validate() error {
	fields := map[string]string{
		"remote":             c.Remote,
		"integration_branch": c.IntegrationBranch,
		"release_branch":     c.ReleaseBranch,
		"production_branch":  c.ProductionBranch,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return bkerrors.NewConfigurationError(fmt.Sprintf("%s must not be empty", name), nil)
		}
	}
	for _, protected := range c.ProtectedBranches {
		if strings.TrimSpace(protected) == "" {
			return bkerrors.NewConfigurationError("protected_branches must not contain empty names", nil)
		}
	}
	if c.RecentLimit < 1 {
		return bkerrors.NewConfigurationError(fmt.Sprintf("recent_limit must be at least 1, got %d", c.RecentLimit), nil)
	}
	return nil
}

// Load resolves the effective configuration. gitDir may be empty when no
// repository is known, in which case the repository layer is skipped.
func Load(gitDir string) (*Config, error) {
	cfg := Default()

	user, err := LoadUserConfig(UserConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.Apply(user)

	if gitDir != "" {
		repo, err := GetRepoConfig(gitDir)
		if err != nil {
			return nil, err
		}
		cfg.Apply(repo)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
