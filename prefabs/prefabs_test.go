package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPrefabsValidate(t *testing.T) {
	entries, err := PrefabsFS.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			data, err := Load(name)
			require.NoError(t, err)
			assert.NoError(t, Validate(name, data))
		})
	}
}

func TestDecodeSpecRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
	}{
		{"negative chunk size", "terrain.yaml", "chunk_size: -1\nview_radius: 1\nterrain_prefab: ground\n"},
		{"fractional view radius", "terrain.yaml", "chunk_size: 10\nview_radius: 1.5\nterrain_prefab: ground\n"},
		{"unknown terrain key", "terrain.yaml", "chunk_size: 10\nview_radius: 1\nterrain_prefab: ground\nfog: true\n"},
		{"game without player", "game.yaml", "spawner: spawner\nprojectile: bullet\n"},
		{"entity without components", "cube.yaml", "name: cube\n"},
		{"unknown component", "cube.yaml", "name: cube\ncomponents:\n  sprite: {}\n"},
		{"unknown layer", "cube.yaml", "name: cube\ncomponents:\n  collision_layer:\n    category: [water]\n"},
		{"tag with fields", "cube.yaml", "name: cube\ncomponents:\n  obstacle_tag:\n    solid: true\n"},
		{"not yaml", "cube.yaml", "name: [cube\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSpec[map[string]any](tc.filename, []byte(tc.data))
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestLoadTerrainSpec(t *testing.T) {
	spec, err := LoadTerrainSpec()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, spec.ChunkSize)
	assert.Equal(t, 2, spec.ViewRadius)
	assert.Equal(t, "ground", spec.TerrainPrefab)
	assert.Equal(t, []string{"cube", "pyramid", "pillar"}, spec.Decorations.Prefabs)
	assert.Equal(t, 10, spec.Decorations.Count)
	assert.Equal(t, 10.0, spec.Decorations.ScaleMax)
}

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	require.NoError(t, err)
	assert.Equal(t, "player", spec.Player)
	assert.Equal(t, "spawner", spec.Spawner)
	assert.Equal(t, 60.0, spec.TickRate)
}

func TestLoadEntityBuildSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("prefabs/player")
	require.NoError(t, err)
	assert.Equal(t, "player", spec.Name)

	pilot, err := DecodeComponentSpec[PilotComponentSpec](spec.Components["pilot"])
	require.NoError(t, err)
	assert.Equal(t, 25.0, pilot.MaxSpeed)
	assert.Equal(t, 10.0, pilot.MinAltitude)

	_, ok := spec.Components["player_tag"]
	assert.True(t, ok)
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Root()
	SetRoot(dir)
	t.Cleanup(func() { SetRoot(prev) })

	override := "name: bullet\ncomponents:\n  projectile:\n    radius: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bullet.yaml"), []byte(override), 0o644))

	data, err := Load("bullet")
	require.NoError(t, err)
	assert.Equal(t, override, string(data))
	_, ok := ModTime("bullet")
	assert.True(t, ok)

	// files missing on disk fall back to the embedded copy
	data, err = Load("cube")
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: cube")
	_, ok = ModTime("cube")
	assert.False(t, ok)

	script, err := LoadScript("ace")
	require.NoError(t, err)
	assert.Contains(t, string(script), "plan")
}

func TestCleanPaths(t *testing.T) {
	tests := []struct {
		in     string
		prefab string
		script string
	}{
		{"bullet", "bullet.yaml", "scripts/bullet.tengo"},
		{"prefabs/bullet.yaml", "bullet.yaml", "scripts/bullet.yaml"},
		{"prefabs/scripts/ace", "scripts/ace.yaml", "scripts/ace.tengo"},
		{"scripts/ace.tengo", "scripts/ace.tengo", "scripts/ace.tengo"},
		{"", "", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.prefab, cleanPrefabPath(tc.in), tc.in)
		assert.Equal(t, tc.script, cleanScriptPath(tc.in), tc.in)
	}
}

func TestSchemaFor(t *testing.T) {
	assert.Equal(t, "terrain.schema.json", SchemaFor("prefabs/terrain.yaml"))
	assert.Equal(t, "game.schema.json", SchemaFor("game"))
	assert.Equal(t, "entity.schema.json", SchemaFor("enemy_ace"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Change
		ok   bool
	}{
		{"/tmp/prefabs/enemy.yaml", Change{Path: "/tmp/prefabs/enemy.yaml", Name: "enemy.yaml"}, true},
		{"/tmp/prefabs/terrain.YML", Change{Path: "/tmp/prefabs/terrain.YML", Name: "terrain.YML"}, true},
		{"/tmp/prefabs/scripts/ace.tengo", Change{Path: "/tmp/prefabs/scripts/ace.tengo", Name: "ace", Script: true}, true},
		{"/tmp/prefabs/notes.txt", Change{}, false},
		{"/tmp/prefabs/enemy.yaml~", Change{}, false},
	}
	for _, tc := range tests {
		got, ok := classify(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "enemy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: enemy\n"), 0o644))

	select {
	case ch := <-w.Events:
		assert.Equal(t, path, ch.Path)
		assert.Equal(t, "enemy.yaml", ch.Name)
		assert.False(t, ch.Script)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
