package slogtint_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/apperia-de/slogtint"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := slogtint.LoadConfig("test/data/slogtint.test_config.yml")
	require.NoError(t, err)
	assert.Equal(t, "traffic", cfg.Profile)
	assert.Nil(t, cfg.Reset)

	ps, err := cfg.LoadProfiles(slogtint.BuiltinProfiles())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "dim", "none", "simple", "traffic"}, ps.Names())
	assert.Equal(t, slogtint.Profile{
		slog.LevelDebug: slogtint.Style(color.FgHiBlack),
		slog.LevelInfo:  slogtint.Style(color.FgGreen),
		slog.LevelWarn:  slogtint.Style(color.FgYellow, color.Bold),
		slog.LevelError: slogtint.Style(color.FgRed, color.Bold),
		60:              slogtint.Style(color.BgRed, color.FgWhite, color.Bold),
	}, ps["traffic"])
}

func TestLoadConfig_TOML(t *testing.T) {
	cfg, err := slogtint.LoadConfig("test/data/slogtint.test_config.toml")
	require.NoError(t, err)
	assert.Equal(t, "mine", cfg.Profile)

	reset, err := cfg.ResetSequence("<R>")
	require.NoError(t, err)
	assert.Equal(t, slogtint.ResetSequence, reset)

	ps, err := cfg.LoadProfiles(nil)
	require.NoError(t, err)
	assert.Equal(t, slogtint.Profiles{
		"mine": {
			slog.LevelError: "\x1b[1;31m",
			0:               "\x1b[2m",
		},
	}, ps)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := slogtint.LoadConfig("test/data/config_is_missing.yml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_InvalidSyntax(t *testing.T) {
	f := t.TempDir() + "/broken.yml"
	require.NoError(t, os.WriteFile(f, []byte("profiles: [unterminated"), 0o600))

	_, err := slogtint.LoadConfig(f)
	assert.ErrorIs(t, err, slogtint.ErrConfiguration)
}

func TestConfig_LoadProfiles(t *testing.T) {
	t.Run("config profiles replace base profiles", func(t *testing.T) {
		base := slogtint.BuiltinProfiles()
		cfg := slogtint.Config{Profiles: map[string]map[string]string{
			slogtint.ProfileDefault: {"INFO": "bold"},
		}}
		ps, err := cfg.LoadProfiles(base)
		require.NoError(t, err)

		assert.Equal(t, slogtint.Profile{slog.LevelInfo: "\x1b[1m"}, ps[slogtint.ProfileDefault])
		assert.Len(t, base[slogtint.ProfileDefault], 6, "base must not be modified")
	})

	t.Run("malformed key names the profile", func(t *testing.T) {
		cfg, err := slogtint.LoadConfig("test/data/invalid_key.yml")
		require.NoError(t, err)

		_, err = cfg.LoadProfiles(nil)
		var cerr *slogtint.ConfigurationError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "broken.LOUD", cerr.Key)
	})

	t.Run("malformed style", func(t *testing.T) {
		cfg, err := slogtint.LoadConfig("test/data/invalid_style.yml")
		require.NoError(t, err)

		_, err = cfg.LoadProfiles(nil)
		assert.ErrorIs(t, err, slogtint.ErrConfiguration)
		assert.ErrorContains(t, err, "fg_purple")
	})
}

func TestConfig_ResetSequence(t *testing.T) {
	reset, err := slogtint.Config{}.ResetSequence("<R>")
	require.NoError(t, err)
	assert.Equal(t, "<R>", reset)

	_, err = slogtint.Config{Reset: ptr("sparkly")}.ResetSequence("<R>")
	var cerr *slogtint.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "reset", cerr.Key)
}
