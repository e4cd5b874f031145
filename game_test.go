package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/cavern/obj"
)

func writeLevel(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := []byte("rows:\n  - \"###\"\n  - \"#@#\"\n  - \"###\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDrainLevelReloadsOnlyLoadedLevel(t *testing.T) {
	dir := t.TempDir()
	levelPath := writeLevel(t, dir, "cave.yaml")
	otherPath := writeLevel(t, dir, "other.yaml")

	g := &Game{
		levelPath: levelPath,
		tileMap:   obj.NewTestMap(),
		watcher:   &obj.Watcher{Events: make(chan string, 2), Errors: make(chan error, 1)},
	}

	// an edit to a sibling level file leaves the loaded map alone
	g.watcher.Events <- otherPath
	g.drainLevelReloads()
	assert.EqualValues(t, 20, g.tileMap.Width())

	// an edit to the loaded level reloads it
	g.watcher.Events <- levelPath
	g.drainLevelReloads()
	assert.EqualValues(t, 3, g.tileMap.Width())
}

func TestQuitClosesWatcher(t *testing.T) {
	w, err := obj.NewWatcher(t.TempDir())
	require.NoError(t, err)

	g := &Game{quit: true, watcher: w}

	require.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Nil(t, g.watcher)

	_, ok := <-w.Events
	assert.False(t, ok)
}
