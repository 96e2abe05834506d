package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys returns the configuration keys accepted by Get and Set, in display order
func Keys() []string {
	return []string{
		"remote",
		"integration_branch",
		"release_branch",
		"production_branch",
		"protected_branches",
		"recent_limit",
		"log_file",
	}
}

// Get returns the effective value of key as text.
// protected_branches is comma separated.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "remote":
		return c.Remote, nil
	case "integration_branch":
		return c.IntegrationBranch, nil
	case "release_branch":
		return c.ReleaseBranch, nil
	case "production_branch":
		return c.ProductionBranch, nil
	case "protected_branches":
		return strings.Join(c.ProtectedBranches, ","), nil
	case "recent_limit":
		return strconv.Itoa(c.RecentLimit), nil
	case "log_file":
		return c.LogFile, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set parses value into the field named by key
func (o *Overrides) Set(key, value string) error {
	switch key {
	case "remote":
		o.Remote = &value
	case "integration_branch":
		o.IntegrationBranch = &value
	case "release_branch":
		o.ReleaseBranch = &value
	case "production_branch":
		o.ProductionBranch = &value
	case "protected_branches":
		var names []string
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		o.ProtectedBranches = names
	case "recent_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for recent_limit: %s (must be a number)", value)
		}
		o.RecentLimit = &n
	case "log_file":
		o.LogFile = &value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// Overrides returns c as a fully populated Overrides, suitable for encoding
func (c *Config) Overrides() Overrides {
	remote, integration, release, production := c.Remote, c.IntegrationBranch, c.ReleaseBranch, c.ProductionBranch
	limit, logFile := c.RecentLimit, c.LogFile
	o := Overrides{
		Remote:            &remote,
		IntegrationBranch: &integration,
		ReleaseBranch:     &release,
		ProductionBranch:  &production,
		ProtectedBranches: append([]string(nil), c.ProtectedBranches...),
		RecentLimit:       &limit,
	}
	if logFile != "" {
		o.LogFile = &logFile
	}
	return o
}
