package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"math"
)

var (
	grassColor    = [3]uint8{42, 110, 40}
	darkDirtColor = [3]uint8{47, 30, 22}
	dirtColor     = [3]uint8{58, 30, 16}
)

// BuildVolumeColors fills the per-block colour volume: size texels wide and
// deep, twice that high. The lower half colours covered blocks, the upper half
// exposed ones, which end in a wavy grass band. RGB bytes, s fastest, then t,
// then r. The pattern runs along r as its first axis, so s and r are swapped
// going into volumeColor.
func BuildVolumeColors(size int) []uint8 {
	height := size * 2
	data := make([]uint8, size*height*size*3)
	for z := 0; z < size; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < size; x++ {
				c := volumeColor(z, y, x, height)
				i := ((z*height+y)*size + x) * 3
				copy(data[i:i+3], c[:])
			}
		}
	}
	return data
}

func volumeColor(x, y, z, height int) [3]uint8 {
	wave := int(math.Sin(float64(x*3+z)) * 3)
	if wave < 0 {
		wave = 0
	}
	if y > height-3-wave {
		return grassColor
	}
	if math.Sin(float64(x*271+y*167+z*83)) > 0.5 {
		return darkDirtColor
	}
	return dirtColor
}

// SampleVolume does a nearest lookup in a volume built by BuildVolumeColors.
// Coordinates are clamped to [0,1].
func SampleVolume(colors []uint8, size int, texCoord mgl32.Vec3) [3]uint8 {
	height := size * 2
	x := texel(texCoord.X(), size)
	y := texel(texCoord.Y(), height)
	z := texel(texCoord.Z(), size)
	i := ((z*height+y)*size + x) * 3
	return [3]uint8{colors[i], colors[i+1], colors[i+2]}
}

func texel(coord float32, n int) int {
	i := int(math.Floor(float64(coord) * float64(n)))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
