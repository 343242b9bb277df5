package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
	"math"
)

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

// PositionToGridInt3 floors a world position to the voxel that contains it.
func PositionToGridInt3(pos mgl32.Vec3) Int3 {
	return Int3{
		X: int32(math.Floor(float64(pos.X()))),
		Y: int32(math.Floor(float64(pos.Y()))),
		Z: int32(math.Floor(float64(pos.Z()))),
	}
}
