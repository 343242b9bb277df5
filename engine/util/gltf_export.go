package util

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/xsection/engine/voxel"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ColorFunc picks a vertex colour from a terrain texture coordinate.
type ColorFunc func(texCoord mgl32.Vec3) [3]uint8

// TerrainDocument turns the face list of a terrain mesh into a single,
// non-indexed glTF primitive with vertex colours.
func TerrainDocument(mesh *voxel.TerrainMesh, colorAt ColorFunc) *gltf.Document {
	vertices := mesh.Vertices()
	positions := make([][3]float32, len(vertices))
	normals := make([][3]float32, len(vertices))
	colors := make([][4]uint8, len(vertices))
	for i, v := range vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
		c := colorAt(faceCenterTexCoord(vertices, i))
		colors[i] = [4]uint8{c[0], c[1], c[2], 255}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "xsection meshdump"
	if len(vertices) == 0 {
		return doc
	}

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Mode: gltf.PrimitiveTriangles,
	}
	doc.Meshes = []*gltf.Mesh{{Name: "Terrain", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "Terrain", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))
	return doc
}

// faceCenterTexCoord averages the texture coordinates of the face vertex i
// belongs to, so every face gets one flat colour instead of its corner texels.
func faceCenterTexCoord(vertices []voxel.TerrainVertex, i int) mgl32.Vec3 {
	start := i - i%6
	var sum mgl32.Vec3
	for _, v := range vertices[start : start+6] {
		sum = sum.Add(v.TexCoord)
	}
	return sum.Mul(1.0 / 6)
}

func SaveTerrainGLB(mesh *voxel.TerrainMesh, colorAt ColorFunc, path string) error {
	doc := TerrainDocument(mesh, colorAt)
	if err := gltf.SaveBinary(doc, path); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	LogIOInfo(fmt.Sprintf("[Export] Wrote %d triangles to %s", mesh.TriangleCount(), path))
	return nil
}
