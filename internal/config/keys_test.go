package config

import (
	"bytes"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	t.Run("every key can be read", func(t *testing.T) {
		cfg := Default()
		for _, key := range Keys() {
			_, err := cfg.Get(key)
			require.NoError(t, err, key)
		}
		_, err := cfg.Get("nope")
		require.Error(t, err)
	})

	t.Run("set values apply over defaults", func(t *testing.T) {
		var o Overrides
		require.NoError(t, o.Set("protected_branches", "main, develop,,"))
		require.NoError(t, o.Set("recent_limit", "5"))
		require.NoError(t, o.Set("production_branch", "main"))

		cfg := Default()
		cfg.Apply(o)
		require.Equal(t, []string{"main", "develop"}, cfg.ProtectedBranches)
		require.Equal(t, 5, cfg.RecentLimit)

		value, err := cfg.Get("protected_branches")
		require.NoError(t, err)
		require.Equal(t, "main,develop", value)
		value, err = cfg.Get("production_branch")
		require.NoError(t, err)
		require.Equal(t, "main", value)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		var o Overrides
		require.Error(t, o.Set("recent_limit", "ten"))
		require.Error(t, o.Set("nope", "x"))
	})

	t.Run("effective config encodes as TOML and reads back", func(t *testing.T) {
		cfg := Default()
		cfg.RecentLimit = 7

		var buf bytes.Buffer
		require.NoError(t, toml.NewEncoder(&buf).Encode(cfg.Overrides()))
		require.Contains(t, buf.String(), "recent_limit = 7")
		require.NotContains(t, buf.String(), "log_file")

		var decoded Overrides
		_, err := toml.Decode(buf.String(), &decoded)
		require.NoError(t, err)

		roundTrip := Default()
		roundTrip.RecentLimit = 1
		roundTrip.Apply(decoded)
		require.Equal(t, cfg, roundTrip)
	})
}
