package voxel

import "github.com/go-gl/mathgl/mgl32"

type FaceType int32

const (
	XP FaceType = iota
	XN
	YP
	YN
	ZP
	ZN
)

// faceOrder is the order in which the faces of a block are emitted.
var faceOrder = [6]FaceType{XN, YN, ZN, XP, YP, ZP}

func (f FaceType) Axis() int {
	return int(f) / 2
}

func (f FaceType) IsPositive() bool {
	return f%2 == 0
}

func (f FaceType) Offset() Int3 {
	step := int32(-1)
	if f.IsPositive() {
		step = 1
	}
	switch f.Axis() {
	case 0:
		return Int3{step, 0, 0}
	case 1:
		return Int3{0, step, 0}
	default:
		return Int3{0, 0, step}
	}
}

func (f FaceType) Normal() mgl32.Vec3 {
	return f.Offset().ToVec3()
}

func (f FaceType) String() string {
	switch f {
	case XP:
		return "+X"
	case XN:
		return "-X"
	case YP:
		return "+Y"
	case YN:
		return "-Y"
	case ZP:
		return "+Z"
	case ZN:
		return "-Z"
	}
	return "?"
}

// TerrainVertex is the vertex layout of the terrain mesh.
// TexCoord addresses the block volume texture: x and z run over the block,
// y picks the lower (covered) or upper (exposed) half of the volume.
type TerrainVertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec3
}

// SectionLine is one end of the min->max diagonal of a solid block.
// The section shader expands each pair into the slice of that block.
type SectionLine struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec3
}
