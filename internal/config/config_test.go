package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
	"github.com/sauerbraten/arbiter/pkg/maprot"
)

const sample = `{
	// where arena files live
	"arena_dir": "maps",
	"rotation": {
		"ffa": ["pit", "tower"],
		"elimination": ["keep"]
	},
	"fallback_mode": "elimination",
	"intermission_seconds": 5
}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	conf, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "maps", conf.ArenaDir)
	assert.Equal(t, gamemode.Elimination, conf.FallbackMode)
	assert.Equal(t, 5, conf.IntermissionSeconds)
	assert.Equal(t, maprot.Pools{
		gamemode.FFA:         {"pit", "tower"},
		gamemode.Elimination: {"keep"},
	}, conf.Rotation)

	// untouched keys keep their defaults
	assert.Equal(t, "history.db", conf.HistoryDB)
	assert.True(t, conf.WatchArenas)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("ARBITER_FALLBACK_MODE", "ffa")
	t.Setenv("ARBITER_INTERMISSION_SECONDS", "0")
	t.Setenv("ARBITER_WATCH_ARENAS", "false")
	t.Setenv("ARBITER_HISTORY_DB", ":memory:")

	conf, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, gamemode.FFA, conf.FallbackMode)
	assert.Zero(t, conf.IntermissionSeconds)
	assert.False(t, conf.WatchArenas)
	assert.Equal(t, ":memory:", conf.HistoryDB)
	assert.Equal(t, "maps", conf.ArenaDir)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `{"fallback_mode": "ctf"}`+"\n"))
	var unknown *gamemode.UnknownModeError
	assert.ErrorAs(t, err, &unknown)

	_, err = Load(writeConfig(t, `{"rotation": {"ffa": []}}`+"\n"))
	assert.ErrorContains(t, err, "no arenas in rotation for fallback mode ffa")

	t.Setenv("ARBITER_INTERMISSION_SECONDS", "soon")
	_, err = Load(writeConfig(t, sample))
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	conf := Default()
	conf.Rotation = maprot.Pools{gamemode.FFA: {"pit"}}
	require.NoError(t, conf.Validate())

	conf.IntermissionSeconds = -1
	assert.Error(t, conf.Validate())

	conf.IntermissionSeconds = 0
	conf.ArenaDir = ""
	assert.Error(t, conf.Validate())
}
