package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"branchkit.dev/branchkit/internal/config"
	"branchkit.dev/branchkit/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set configuration",
		Long: fmt.Sprintf(`Get and set configuration values.

Values come from built-in defaults, the user file (%s),
the repository file (.git/%s) and the environment, later ones winning.
"set" writes the repository file.

Keys: %s

Examples:
  branchkit config list
  branchkit config get recent_limit
  branchkit config set production_branch main
  branchkit config set protected_branches develop,release,main`,
			config.UserConfigPath(), config.RepoConfigFile, strings.Join(config.Keys(), ", ")),
	}

	cmd.AddCommand(newConfigListCmd(flags))
	cmd.AddCommand(newConfigGetCmd(flags))
	cmd.AddCommand(newConfigSetCmd(flags))

	return cmd
}

func newConfigListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, flags, func(ctx *runtime.Context) error {
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(ctx.Config.Overrides())
			})
		},
	}
}

func newConfigGetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Get a configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, flags, func(ctx *runtime.Context) error {
				value, err := ctx.Config.Get(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
				return err
			})
		},
	}
}

func newConfigSetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value for this repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, flags, func(ctx *runtime.Context) error {
				key, value := args[0], args[1]

				overrides, err := config.GetRepoConfig(ctx.GitDir)
				if err != nil {
					return err
				}
				if err := overrides.Set(key, value); err != nil {
					return err
				}

				updated := *ctx.Config
				updated.Apply(overrides)
				if err := updated.Validate(); err != nil {
					return err
				}

				if err := config.SetRepoConfig(ctx.GitDir, overrides); err != nil {
					return fmt.Errorf("failed to set %s: %w", key, err)
				}
				ctx.Splog.Info("Set %s to: %s", key, value)
				return nil
			})
		},
	}
}
