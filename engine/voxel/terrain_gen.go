package voxel

import (
	"fmt"
	"math"
)

// NewRidgedTerrain fills a grid of the given size with two crossing sine ridges.
// The surface is not a strict heightmap, a column can have gaps.
func NewRidgedTerrain(size int32) *Grid {
	g := NewGrid(size)
	g.FillRidged(SOLID)
	println(fmt.Sprintf("[Terrain] Generated %d^3 grid with %d solid blocks", size, g.SolidCount()))
	return g
}

// FillRidged overwrites every cell: material below the ridge surface, air above.
func (g *Grid) FillRidged(material byte) {
	half := float64(g.size) / 2.0
	for x := int32(0); x < g.size; x++ {
		for y := int32(0); y < g.size; y++ {
			for z := int32(0); z < g.size; z++ {
				if ridgeHeight(x, z, half) > float64(y) {
					g.Set(x, y, z, material)
				} else {
					g.Set(x, y, z, EMPTY)
				}
			}
		}
	}
}

func ridgeHeight(x, z int32, half float64) float64 {
	xx := math.Sin(float64(x)/4.0 - 2.0)
	zz := math.Sin(float64(z)/4.0 - 2.0)
	return -(xx*xx)*2.5 - (zz*zz)*4.5 + half
}
