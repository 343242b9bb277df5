package voxel

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
)

// quadCorners are the two triangles covering the unit square.
var quadCorners = [6][2]float32{
	{0, 0},
	{1, 1},
	{0, 1},
	{0, 0},
	{1, 0},
	{1, 1},
}

// BlockSource is the read access the mesher needs.
type BlockSource interface {
	Size() int32
	Get(x, y, z int32) (byte, bool)
}

type TerrainMesh struct {
	vertices []TerrainVertex
	lines    []SectionLine
}

func NewTerrainMesh() *TerrainMesh {
	return &TerrainMesh{}
}

func BuildTerrainMesh(source BlockSource) *TerrainMesh {
	m := NewTerrainMesh()
	m.Rebuild(source)
	return m
}

func (m *TerrainMesh) Vertices() []TerrainVertex {
	return m.vertices
}

func (m *TerrainMesh) Lines() []SectionLine {
	return m.lines
}

// SectionLineCount is the number of segments, Lines holds two endpoints each.
func (m *TerrainMesh) SectionLineCount() int {
	return len(m.lines) / 2
}

func (m *TerrainMesh) TriangleCount() int {
	return len(m.vertices) / 3
}

// Rebuild throws away the previous geometry and meshes the whole grid again.
func (m *TerrainMesh) Rebuild(source BlockSource) {
	m.vertices = make([]TerrainVertex, 0, len(m.vertices))
	m.lines = make([]SectionLine, 0, len(m.lines))
	size := source.Size()
	for x := int32(0); x < size; x++ {
		for y := int32(0); y < size; y++ {
			for z := int32(0); z < size; z++ {
				if isSolid(source, x, y, z) {
					m.appendBlock(source, Int3{x, y, z})
				}
			}
		}
	}
	println(fmt.Sprintf("[Mesh] Terrain was meshed into %d triangles and %d section lines", m.TriangleCount(), m.SectionLineCount()))
}

func isSolid(source BlockSource, x, y, z int32) bool {
	value, ok := source.Get(x, y, z)
	return ok && value != EMPTY
}

func (m *TerrainMesh) appendBlock(source BlockSource, pos Int3) {
	// exposed blocks sample the upper half of the volume texture
	var yOffset float32
	if !isSolid(source, pos.X, pos.Y+1, pos.Z) {
		yOffset = 0.5
	}
	origin := pos.ToVec3()

	m.lines = append(m.lines,
		SectionLine{
			Position: origin,
			TexCoord: mgl32.Vec3{0, yOffset, 0},
		},
		SectionLine{
			Position: origin.Add(mgl32.Vec3{1, 1, 1}),
			TexCoord: mgl32.Vec3{1, 0.5 + yOffset, 1},
		},
	)

	for _, face := range faceOrder {
		neighbor := pos.Add(face.Offset())
		if isSolid(source, neighbor.X, neighbor.Y, neighbor.Z) {
			continue
		}
		m.appendFace(origin, face, yOffset)
	}
}

func (m *TerrainMesh) appendFace(origin mgl32.Vec3, face FaceType, yOffset float32) {
	var side float32
	if face.IsPositive() {
		side = 1
	}
	normal := face.Normal()
	for _, corner := range quadCorners {
		var local, texCoord mgl32.Vec3
		switch face.Axis() {
		case 0:
			local = mgl32.Vec3{side, corner[0], corner[1]}
			texCoord = mgl32.Vec3{side, corner[0]*0.5 + yOffset, corner[1]}
		case 1:
			local = mgl32.Vec3{corner[0], side, corner[1]}
			texCoord = mgl32.Vec3{corner[0], side*0.5 + yOffset, corner[1]}
		default:
			local = mgl32.Vec3{corner[0], corner[1], side}
			texCoord = mgl32.Vec3{corner[0], corner[1]*0.5 + yOffset, side}
		}
		m.vertices = append(m.vertices, TerrainVertex{
			Position: origin.Add(local),
			Normal:   normal,
			TexCoord: texCoord,
		})
	}
}

// FlatVertexData interleaves position, normal and texture coordinate for upload.
func (m *TerrainMesh) FlatVertexData() []float32 {
	data := make([]float32, 0, len(m.vertices)*9)
	for _, v := range m.vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
		data = append(data, v.TexCoord[:]...)
	}
	return data
}

// FlatLineData interleaves position and texture coordinate of the section lines.
func (m *TerrainMesh) FlatLineData() []float32 {
	data := make([]float32, 0, len(m.lines)*6)
	for _, l := range m.lines {
		data = append(data, l.Position[:]...)
		data = append(data, l.TexCoord[:]...)
	}
	return data
}
