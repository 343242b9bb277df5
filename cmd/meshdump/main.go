// meshdump writes the demo terrain as a binary glTF file for inspection in
// other tools.
//
//	meshdump [-size 16] terrain.glb
package main

import (
	"flag"
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/xsection/engine/util"
	"github.com/memmaker/xsection/engine/voxel"
	"github.com/memmaker/xsection/game"
	"os"
)

func main() {
	defaults := game.DefaultConfig()
	size := flag.Int("size", int(defaults.TerrainSize), "terrain edge length in blocks")
	flag.Parse()
	if flag.NArg() != 1 || *size <= 0 {
		fmt.Fprintln(os.Stderr, "usage: meshdump [-size n] output.glb")
		os.Exit(2)
	}

	grid := voxel.NewRidgedTerrain(int32(*size))
	mesh := voxel.BuildTerrainMesh(grid)
	colors := game.BuildVolumeColors(defaults.VolumeSize)
	colorAt := func(texCoord mgl32.Vec3) [3]uint8 {
		return game.SampleVolume(colors, defaults.VolumeSize, texCoord)
	}

	if err := util.SaveTerrainGLB(mesh, colorAt, flag.Arg(0)); err != nil {
		util.LogIOError(fmt.Sprintf("[Meshdump] %+v", err))
		os.Exit(1)
	}
}
