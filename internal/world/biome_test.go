package world

import "testing"

func TestBiomeGridIndexing(t *testing.T) {
	var g BiomeGrid
	g.Fill(BiomePlains)
	g.Set(3, 7, BiomeDesert)
	if g.At(3, 7) != BiomeDesert {
		t.Fatalf("At(3,7) = %v", g.At(3, 7))
	}
	if g[7][3] != BiomeDesert {
		t.Fatal("grid should be indexed [z][x]")
	}
	if g.At(7, 3) != BiomePlains {
		t.Fatalf("At(7,3) = %v, want Plains", g.At(7, 3))
	}
}

func TestBiomeString(t *testing.T) {
	if BiomeExtremeHills.String() != "Extreme Hills" {
		t.Errorf("got %q", BiomeExtremeHills.String())
	}
	if BiomeID(200).String() != "Biome(200)" {
		t.Errorf("got %q", BiomeID(200).String())
	}
}

func TestParseBiome(t *testing.T) {
	if id, ok := ParseBiome("extreme_hills"); !ok || id != BiomeExtremeHills {
		t.Errorf("extreme_hills = %v,%v", id, ok)
	}
	if id, ok := ParseBiome("Forest"); !ok || id != BiomeForest {
		t.Errorf("Forest = %v,%v", id, ok)
	}
	if _, ok := ParseBiome("swamp"); ok {
		t.Error("swamp should not parse")
	}
}
