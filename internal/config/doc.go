// Package config resolves branchkit configuration.
//
// Values are layered, later layers overriding earlier ones:
//   - Built-in defaults (origin, develop, release, master)
//   - The user's TOML file ($XDG_CONFIG_HOME/branchkit/config.toml or BRANCHKIT_CONFIG)
//   - The repository's JSON file (.git/.branchkit_config)
//   - Environment variables (BRANCHKIT_RECENT_LIMIT, BRANCHKIT_LOG_FILE)
package config
