package arenafile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/color"
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

const keep = `
name: keep
creators: [6f0c7e2a-3b7d-4f7e-9a51-2d6d3c1f8b10]
attributes:
  blockBreak: false
  matchDuration: 600
  ffaKills: 10
disabled_drops: [iron_sword, bow]
teams:
  - name: red
    color: red
    spawns:
      - {world: keep, x: 10, y: 64, z: 10, yaw: 90}
      - {world: keep, x: 12, y: 64, z: 10}
  - name: blue
    color: blue
    spawns:
      - {world: keep, x: -10, y: 64, z: -10}
spectator_spawn: {world: keep, y: 80}
kit:
  - {item: stone_sword}
  - {item: arrow, amount: 16}
`

type inventory map[*roster.Player][]item.Stack

func (inv inventory) Give(p *roster.Player, s item.Stack) { inv[p] = append(inv[p], s) }

func writeArena(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	inv := inventory{}
	l := &Loader{Inventory: inv}
	d, err := l.Load(writeArena(t, t.TempDir(), "keep.yaml", keep))
	require.NoError(t, err)

	assert.Equal(t, "keep", d.Name())
	assert.Equal(t, []uuid.UUID{uuid.MustParse("6f0c7e2a-3b7d-4f7e-9a51-2d6d3c1f8b10")}, d.Creators())
	assert.False(t, d.Bool(arena.BlockBreak))
	assert.True(t, d.Bool(arena.BlockPlace))
	assert.Equal(t, 600, d.MatchDuration())
	assert.Equal(t, 10, d.Int(arena.FFAKills))
	assert.Equal(t, []item.Kind{item.IronSword, item.Bow}, d.DisabledDrops())

	teams := d.Teams()
	require.Len(t, teams, 2)
	assert.Equal(t, "red", teams[0].Name)
	assert.Equal(t, color.Red, teams[0].Color)
	assert.Equal(t, "blue", teams[1].Name)
	assert.Equal(t, []geom.Location{
		{World: "keep", X: 10, Y: 64, Z: 10, Yaw: 90},
		{World: "keep", X: 12, Y: 64, Z: 10},
	}, d.TeamSpawns("red"))
	assert.Equal(t, geom.Location{World: "keep", Y: 80}, d.SpectatorSpawn())
	require.NoError(t, d.Validate(arena.FFAKills))

	p := roster.NewPlayer("p")
	d.ApplyLoadout(p)
	assert.Equal(t, []item.Stack{
		{Kind: item.StoneSword, Amount: 1},
		{Kind: item.Arrow, Amount: 16},
	}, inv[p])
}

func TestDefaultsFromFile(t *testing.T) {
	f, err := ParseFile(writeArena(t, t.TempDir(), "pit.yml", "teams: [{name: Players, spawns: [{world: pit}]}]\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "pit", f.Name)

	d, err := arena.Load(f, nil)
	require.NoError(t, err)
	assert.Equal(t, 900, d.MatchDuration())
	assert.Equal(t, len(item.DefaultDisabledDrops()), len(d.DisabledDrops()))

	// no inventory to give the kit to
	assert.NotPanics(t, func() { d.ApplyLoadout(roster.NewPlayer("p")) })
}

func TestEmptyDisabledDrops(t *testing.T) {
	f, err := Parse(strings.NewReader("name: pit\ndisabled_drops: []\n"), nil)
	require.NoError(t, err)

	d, err := arena.Load(f, nil)
	require.NoError(t, err)
	assert.Empty(t, d.DisabledDrops())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("name: pit\nteamz: []\n"), nil)
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("name: pit\nkit: [{item: lightsaber}]\n"), nil)
	assert.ErrorContains(t, err, "lightsaber")

	f, err := Parse(strings.NewReader("name: pit\nattributes: {matchDuration: 1.5}\n"), nil)
	require.NoError(t, err)
	_, err = arena.Load(f, nil)
	assert.NoError(t, err, "a mistyped attribute is logged and the default kept")

	f, err = Parse(strings.NewReader("name: pit\nattributes: {matchDuration: 0}\n"), nil)
	require.NoError(t, err)
	_, err = arena.Load(f, nil)
	assert.ErrorIs(t, err, arena.ErrAttributeType)
}

func TestBadTeamEntries(t *testing.T) {
	const content = `
name: pit
teams:
  - {color: red, spawns: [{world: pit}]}
  - {name: odd, color: mauve, spawns: [{world: pit}]}
`
	f, err := Parse(strings.NewReader(content), nil)
	require.NoError(t, err)
	d, err := arena.Load(f, nil)
	require.NoError(t, err)

	teams := d.Teams()
	require.Len(t, teams, 1)
	assert.Equal(t, "odd", teams[0].Name)
	assert.Equal(t, color.None, teams[0].Color)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeArena(t, dir, "a_keep.yaml", keep)
	writeArena(t, dir, "b_keep.yaml", keep)
	writeArena(t, dir, "broken.yaml", "name: [\n")
	writeArena(t, dir, "pit.yml", "name: pit\n")
	writeArena(t, dir, "notes.txt", "not an arena")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	l := &Loader{}
	arenas, err := l.LoadDir(dir)
	require.NoError(t, err)

	assert.Len(t, arenas, 2)
	require.Contains(t, arenas, "keep")
	require.Contains(t, arenas, "pit")
	assert.Equal(t, filepath.Join(dir, "a_keep.yaml"), arenas["keep"].Path)
	assert.Equal(t, "keep", arenas["keep"].Arena.Name())

	_, err = l.LoadDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	writeArena(t, dir, "notes.txt", "ignored")
	path := writeArena(t, dir, "keep.yaml", keep)

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case err := <-w.Errors:
		t.Fatal(err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the new arena file")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, open := <-w.Events
	for open {
		_, open = <-w.Events
	}
}

func TestWatcherReportsSettledFile(t *testing.T) {
	dir := t.TempDir()
	path := writeArena(t, dir, "keep.yaml", keep)

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	// an editor truncating the file and writing it again shortly after
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	time.Sleep(30 * time.Millisecond)
	final := strings.Replace(keep, "matchDuration: 600", "matchDuration: 300", 1)
	writeArena(t, dir, "keep.yaml", final)

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
		content, err := os.ReadFile(got)
		require.NoError(t, err)
		assert.Equal(t, final, string(content))

		d, err := (&Loader{Inventory: inventory{}}).Load(got)
		require.NoError(t, err)
		assert.Equal(t, 300, d.MatchDuration())
	case err := <-w.Errors:
		t.Fatal(err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the rewritten arena file")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice: %s", got)
	case <-time.After(3 * settle):
	}
}
