package scene

import (
	"testing"

	"voxel-index/internal/config"
	"voxel-index/internal/world"
)

const testScene = `
settings:
  below_world: dark
  traversal_workers: 2
columns:
  - at: [-1, -1]
    to: [1, 0]
    levels: 3
    solid: 1
    block: 4
    biome: plains
  - at: [0, 0]
    levels: 2
    solid: 2
    block: 7
    biome: Desert
`

func TestParseAndBuild(t *testing.T) {
	s, err := Parse([]byte(testScene))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Settings.BelowWorld != config.BelowWorldDark || s.Settings.TraversalWorkers != 2 {
		t.Fatalf("settings = %+v", s.Settings)
	}

	ci := s.Build()
	if ci.Len() != 6 {
		t.Fatalf("Len = %d, want 6", ci.Len())
	}

	col, ok := ci.Column(1, -1)
	if !ok || col.Height() != 3 {
		t.Fatal("rectangle column (1,-1) should have 3 levels")
	}
	if col.Chunks[0].Block(0, 0, 0) != 4 || col.Chunks[0].Light(0, 0, 0) != world.Dark {
		t.Error("solid level should be filled and unlit")
	}
	if !col.Chunks[1].IsEmpty() || col.Chunks[1].Light(0, 0, 0) != world.FullSky {
		t.Error("upper level should be air under full sky")
	}

	// The later entry replaces the rectangle's column at the origin.
	origin, _ := ci.Column(0, 0)
	if origin.Height() != 2 || origin.Biomes.At(5, 5) != world.BiomeDesert {
		t.Errorf("origin column height %d biome %v", origin.Height(), origin.Biomes.At(5, 5))
	}
}

func TestParseRejectsBadColumns(t *testing.T) {
	bad := []string{
		"columns: [{at: [0, 0], levels: 0}]",
		"columns: [{at: [0, 0], levels: 2, solid: 3}]",
		"columns: [{at: [0, 0], levels: 2, biome: swamp}]",
		"columns: {",
	}
	for _, doc := range bad {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}
}
