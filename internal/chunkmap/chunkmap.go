// Package chunkmap draws a top-down picture of a chunk index: one pixel per
// block column, coloured by biome, with edge columns outlined.
package chunkmap

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"voxel-index/internal/world"
)

var (
	Background = color.RGBA{20, 20, 24, 255}
	EdgeColor  = color.RGBA{230, 60, 50, 255}
	LabelColor = color.RGBA{255, 255, 255, 255}
)

var biomeColors = map[world.BiomeID]color.RGBA{
	world.BiomeOcean:        {40, 70, 180, 255},
	world.BiomePlains:       {120, 190, 80, 255},
	world.BiomeDesert:       {220, 200, 120, 255},
	world.BiomeExtremeHills: {130, 130, 130, 255},
	world.BiomeForest:       {40, 120, 50, 255},
}

// BiomeColor returns the map colour of a biome.
func BiomeColor(id world.BiomeID) color.RGBA {
	if c, ok := biomeColors[id]; ok {
		return c
	}
	return color.RGBA{200, 0, 200, 255}
}

// Options controls rendering.
type Options struct {
	// Scale is the number of output pixels per block. Values below 1 mean 1.
	Scale int
	// Labels draws column coordinates when a column is wide enough for them.
	Labels bool
}

// Render draws every registered column of ci. A column is an edge column when
// any of its horizontal neighbors is missing. The returned rectangle starts
// at the minimum column coordinate.
func Render(ci *world.ChunkIndex, opts Options) *image.RGBA {
	scale := max(opts.Scale, 1)
	coords := ci.Coords()
	if len(coords) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	minX, maxX := coords[0].X, coords[len(coords)-1].X
	minZ, maxZ := coords[0].Z, coords[0].Z
	for _, c := range coords {
		minZ = min(minZ, c.Z)
		maxZ = max(maxZ, c.Z)
	}

	src := image.NewRGBA(image.Rect(0, 0, (maxX-minX+1)*world.ChunkSize, (maxZ-minZ+1)*world.ChunkSize))
	draw.Draw(src, src.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	edges := EdgeColumns(ci)
	for _, c := range coords {
		col, _ := ci.Column(c.X, c.Z)
		ox := (c.X - minX) * world.ChunkSize
		oz := (c.Z - minZ) * world.ChunkSize
		for z := range world.ChunkSize {
			for x := range world.ChunkSize {
				clr := BiomeColor(col.Biomes.At(x, z))
				if edges[c] && (x == 0 || z == 0 || x == world.ChunkSize-1 || z == world.ChunkSize-1) {
					clr = EdgeColor
				}
				src.SetRGBA(ox+x, oz+z, clr)
			}
		}
	}

	dst := src
	if scale > 1 {
		b := src.Bounds()
		dst = image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	if opts.Labels {
		cell := world.ChunkSize * scale
		for _, c := range coords {
			label := strconv.Itoa(c.X) + "," + strconv.Itoa(c.Z)
			x := (c.X-minX)*cell + 2
			y := (c.Z-minZ)*cell + basicfont.Face7x13.Ascent + 2
			drawLabel(dst, label, x, y, cell)
		}
	}
	return dst
}

func drawLabel(dst *image.RGBA, label string, x, y, cell int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(LabelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	if d.MeasureString(label).Ceil()+4 > cell {
		return
	}
	d.DrawString(label)
}

// EdgeColumns reports, for every registered column, whether one of its eight
// horizontal neighbors is missing.
func EdgeColumns(ci *world.ChunkIndex) map[world.ColumnCoord]bool {
	edges := make(map[world.ColumnCoord]bool, ci.Len())
	for n := range ci.Neighborhoods() {
		key := n.Coord.Column()
		if _, done := edges[key]; done {
			continue
		}
		edge := false
		for dz := -1; dz <= 1; dz++ {
			for dx := -1; dx <= 1; dx++ {
				if n.Biome(dx, dz) == nil {
					edge = true
				}
			}
		}
		edges[key] = edge
	}
	return edges
}
