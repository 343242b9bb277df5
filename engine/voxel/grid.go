package voxel

import "fmt"

// Grid is a cubic block of voxels, one byte per cell. A zero byte is air,
// anything else is the material id of a solid block.
type Grid struct {
	size  int32
	tiles []byte
}

func NewGrid(size int32) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("voxel grid size must be positive, got %d", size))
	}
	return &Grid{
		size:  size,
		tiles: make([]byte, int(size)*int(size)*int(size)),
	}
}

func (g *Grid) Size() int32 {
	return g.size
}

func (g *Grid) Contains(x, y, z int32) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size && z >= 0 && z < g.size
}

func (g *Grid) index(x, y, z int32) int {
	return int(z)*int(g.size)*int(g.size) + int(y)*int(g.size) + int(x)
}

// Get returns the block at x,y,z. ok is false outside of the grid.
func (g *Grid) Get(x, y, z int32) (value byte, ok bool) {
	if !g.Contains(x, y, z) {
		return EMPTY, false
	}
	return g.tiles[g.index(x, y, z)], true
}

// Set stores value at x,y,z and returns the block it replaced.
// Out of range writes are dropped and report ok == false.
func (g *Grid) Set(x, y, z int32, value byte) (previous byte, ok bool) {
	if !g.Contains(x, y, z) {
		return EMPTY, false
	}
	i := g.index(x, y, z)
	previous = g.tiles[i]
	g.tiles[i] = value
	return previous, true
}

func (g *Grid) IsSolidBlockAt(x, y, z int32) bool {
	value, _ := g.Get(x, y, z)
	return value != EMPTY
}

func (g *Grid) SolidCount() int {
	count := 0
	for _, tile := range g.tiles {
		if tile != EMPTY {
			count++
		}
	}
	return count
}
