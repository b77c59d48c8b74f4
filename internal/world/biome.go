package world

import (
	"strconv"
	"strings"
)

// BiomeID classifies the ground at one horizontal position of a column.
type BiomeID uint8

const (
	BiomeOcean BiomeID = iota
	BiomePlains
	BiomeDesert
	BiomeExtremeHills
	BiomeForest
)

var biomeNames = map[BiomeID]string{
	BiomeOcean:        "Ocean",
	BiomePlains:       "Plains",
	BiomeDesert:       "Desert",
	BiomeExtremeHills: "Extreme Hills",
	BiomeForest:       "Forest",
}

func (b BiomeID) String() string {
	if name, ok := biomeNames[b]; ok {
		return name
	}
	return "Biome(" + strconv.Itoa(int(b)) + ")"
}

// ParseBiome looks a biome up by name, ignoring case, spaces and underscores.
func ParseBiome(name string) (BiomeID, bool) {
	norm := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		return strings.ReplaceAll(s, "_", "")
	}
	want := norm(name)
	for id, n := range biomeNames {
		if norm(n) == want {
			return id, true
		}
	}
	return 0, false
}

// BiomeGrid holds one biome per (x, z) of a column footprint, indexed [z][x].
// Biome does not vary with height.
type BiomeGrid [ChunkSize][ChunkSize]BiomeID

// At returns the biome at local (x, z).
func (g *BiomeGrid) At(x, z int) BiomeID {
	return g[z][x]
}

// Set stores the biome at local (x, z).
func (g *BiomeGrid) Set(x, z int, id BiomeID) {
	g[z][x] = id
}

// Fill sets every cell of the grid to id.
func (g *BiomeGrid) Fill(id BiomeID) {
	for z := range ChunkSize {
		for x := range ChunkSize {
			g[z][x] = id
		}
	}
}
