package game

import "time"

type Config struct {
	WindowWidth  int
	WindowHeight int
	Title        string

	// TerrainSize is the edge length of the cubic voxel grid.
	TerrainSize int32
	// VolumeSize is the x/z resolution of the per-block colour volume, its height is twice that.
	VolumeSize int

	TickInterval time.Duration
	ClearColor   [3]uint8
	SpritePath   string
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:  1440,
		WindowHeight: 720,
		Title:        "XSection",
		TerrainSize:  16,
		VolumeSize:   16,
		TickInterval: 16666667 * time.Nanosecond,
		ClearColor:   [3]uint8{121, 183, 226},
		SpritePath:   "assets/character.png",
	}
}
