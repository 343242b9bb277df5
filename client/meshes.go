package client

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/memmaker/xsection/engine/glhf"
	"github.com/memmaker/xsection/engine/voxel"
)

// quadVertices is the unit quad [-1,1]² as two triangles, position then texCoord.
var quadVertices = []glhf.GlFloat{
	-1, 1, 0, 1,
	1, 1, 1, 1,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, -1, 1, 0,
	-1, -1, 0, 0,
}

func uploadVertices(shader *glhf.Shader, data []glhf.GlFloat, primitive uint32) *glhf.VertexSlice {
	stride := shader.VertexFormat().Size() / glhf.SizeOfFloat32
	count := len(data) / stride
	slice := glhf.MakeVertexSlice(shader, count, count)
	slice.SetPrimitiveType(primitive)
	slice.Begin()
	slice.SetVertexData(data)
	slice.End()
	return slice
}

func newQuad(shader *glhf.Shader) *glhf.VertexSlice {
	return uploadVertices(shader, quadVertices, gl.TRIANGLES)
}

func newTerrainVertices(shader *glhf.Shader, mesh *voxel.TerrainMesh) *glhf.VertexSlice {
	return uploadVertices(shader, mesh.FlatVertexData(), gl.TRIANGLES)
}

func newSectionLines(shader *glhf.Shader, mesh *voxel.TerrainMesh) *glhf.VertexSlice {
	return uploadVertices(shader, mesh.FlatLineData(), gl.LINES)
}
