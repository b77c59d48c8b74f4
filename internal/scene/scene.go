// Package scene builds chunk index fixtures from a small YAML description.
// It is a debugging aid, not a world loader.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voxel-index/internal/config"
	"voxel-index/internal/world"
)

// Scene is the top-level YAML document.
type Scene struct {
	Settings config.File `yaml:"settings"`
	Columns  []Column    `yaml:"columns"`
}

// Column describes one column, or a rectangle of identical columns when To
// is set. Levels below Solid are filled with Block and unlit; the rest are
// air under full sky.
type Column struct {
	At     [2]int  `yaml:"at"`
	To     *[2]int `yaml:"to"`
	Levels int     `yaml:"levels"`
	Solid  int     `yaml:"solid"`
	Block  uint16  `yaml:"block"`
	Biome  string  `yaml:"biome"`
}

// Load reads a scene file from path.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes and checks a scene.
func Parse(raw []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("scene yaml: %w", err)
	}
	for i, c := range s.Columns {
		if c.Levels <= 0 {
			return nil, fmt.Errorf("column %d at %v: levels must be positive", i, c.At)
		}
		if c.Solid < 0 || c.Solid > c.Levels {
			return nil, fmt.Errorf("column %d at %v: solid %d outside [0, %d]", i, c.At, c.Solid, c.Levels)
		}
		if c.Biome != "" {
			if _, ok := world.ParseBiome(c.Biome); !ok {
				return nil, fmt.Errorf("column %d at %v: unknown biome %q", i, c.At, c.Biome)
			}
		}
	}
	return &s, nil
}

// Build registers every column of the scene in a fresh index. Later entries
// replace earlier ones at the same coordinate.
func (s *Scene) Build() *world.ChunkIndex {
	ci := world.NewChunkIndex()
	for _, c := range s.Columns {
		to := c.At
		if c.To != nil {
			to = *c.To
		}
		for x := min(c.At[0], to[0]); x <= max(c.At[0], to[0]); x++ {
			for z := min(c.At[1], to[1]); z <= max(c.At[1], to[1]); z++ {
				ci.AddColumn(x, z, c.build())
			}
		}
	}
	return ci
}

func (c Column) build() *world.Column {
	chunks := make([]world.Chunk, c.Levels)
	for level := range chunks {
		chunks[level] = world.NewChunk()
		if level < c.Solid {
			chunks[level].Fill(world.BlockState(c.Block))
			chunks[level].FillLight(world.Dark)
		}
	}
	var biomes world.BiomeGrid
	if id, ok := world.ParseBiome(c.Biome); ok {
		biomes.Fill(id)
	}
	return world.NewColumn(chunks, biomes)
}
