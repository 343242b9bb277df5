package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
	"reflect"
	"testing"
)

func TestIsolatedBlockHasAllFaces(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1, 1, SOLID)
	mesh := BuildTerrainMesh(g)

	if got := len(mesh.Vertices()); got != 36 {
		t.Fatalf("vertex count = %d; want 36", got)
	}
	if got := len(mesh.Lines()); got != 2 {
		t.Fatalf("line vertex count = %d; want 2 (one segment)", got)
	}
	wantNormals := []mgl32.Vec3{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for face, normal := range wantNormals {
		for i := 0; i < 6; i++ {
			if got := mesh.Vertices()[face*6+i].Normal; got != normal {
				t.Fatalf("face %d vertex %d normal = %v; want %v", face, i, got, normal)
			}
		}
	}
}

func TestBlockAtGridEdgeShowsOutwardFaces(t *testing.T) {
	g := NewGrid(1)
	g.Set(0, 0, 0, SOLID)
	mesh := BuildTerrainMesh(g)
	if got := len(mesh.Vertices()); got != 36 {
		t.Fatalf("vertex count = %d; want 36", got)
	}
}

func TestEnclosedBlockHasNoFaces(t *testing.T) {
	g := NewGrid(3)
	for x := int32(0); x < 3; x++ {
		for y := int32(0); y < 3; y++ {
			for z := int32(0); z < 3; z++ {
				g.Set(x, y, z, SOLID)
			}
		}
	}
	center := NewTerrainMesh()
	center.appendBlock(g, Int3{1, 1, 1})
	if got := len(center.Vertices()); got != 0 {
		t.Fatalf("enclosed block emitted %d vertices; want 0", got)
	}
	if got := len(center.Lines()); got != 2 {
		t.Fatalf("enclosed block emitted %d line vertices; want 2", got)
	}

	mesh := BuildTerrainMesh(g)
	// only the 9 outer faces on each side of the cube remain
	if got := len(mesh.Vertices()); got != 6*9*6 {
		t.Fatalf("vertex count = %d; want %d", got, 6*9*6)
	}
	if got := len(mesh.Lines()); got != 27*2 {
		t.Fatalf("line vertex count = %d; want %d", got, 27*2)
	}
}

func TestExposedBlocksUseUpperTextureHalf(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 0, 1, SOLID)
	g.Set(1, 1, 1, SOLID)
	mesh := NewTerrainMesh()

	mesh.appendBlock(g, Int3{1, 0, 1})
	covered := mesh.Lines()
	if covered[0].TexCoord != (mgl32.Vec3{0, 0, 0}) || covered[1].TexCoord != (mgl32.Vec3{1, 0.5, 1}) {
		t.Fatalf("covered block line tex coords = %v,%v", covered[0].TexCoord, covered[1].TexCoord)
	}

	top := NewTerrainMesh()
	top.appendBlock(g, Int3{1, 1, 1})
	exposed := top.Lines()
	if exposed[0].TexCoord != (mgl32.Vec3{0, 0.5, 0}) || exposed[1].TexCoord != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("exposed block line tex coords = %v,%v", exposed[0].TexCoord, exposed[1].TexCoord)
	}
	for _, v := range top.Vertices() {
		if v.TexCoord.Y() < 0.5 || v.TexCoord.Y() > 1 {
			t.Fatalf("exposed block vertex tex y = %v; want within [0.5,1]", v.TexCoord.Y())
		}
	}
}

func TestSectionLinesSpanBlocksInGridOrder(t *testing.T) {
	g := NewGrid(4)
	blocks := []Int3{{0, 0, 3}, {0, 2, 1}, {2, 0, 0}, {3, 3, 3}}
	for _, b := range blocks {
		g.Set(b.X, b.Y, b.Z, SOLID)
	}
	lines := BuildTerrainMesh(g).Lines()
	if len(lines) != 2*len(blocks) {
		t.Fatalf("line vertex count = %d; want %d", len(lines), 2*len(blocks))
	}
	for i, b := range blocks {
		lo, hi := lines[2*i].Position, lines[2*i+1].Position
		if lo != b.ToVec3() || hi != b.ToVec3().Add(mgl32.Vec3{1, 1, 1}) {
			t.Errorf("segment %d = %v -> %v; want block %v", i, lo, hi, b)
		}
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	g := NewRidgedTerrain(16)
	mesh := BuildTerrainMesh(g)
	firstVertices := mesh.Vertices()
	firstLines := mesh.Lines()

	mesh.Rebuild(g)
	if !reflect.DeepEqual(firstVertices, mesh.Vertices()) {
		t.Fatal("vertices differ after rebuild")
	}
	if !reflect.DeepEqual(firstLines, mesh.Lines()) {
		t.Fatal("lines differ after rebuild")
	}
	if mesh.SectionLineCount() != g.SolidCount() {
		t.Fatalf("section lines = %d; want one per solid block (%d)", mesh.SectionLineCount(), g.SolidCount())
	}
	if len(mesh.Lines()) != 2*g.SolidCount() {
		t.Fatalf("line vertex count = %d; want %d", len(mesh.Lines()), 2*g.SolidCount())
	}
}

func TestFlatDataStride(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 0, 0, SOLID)
	mesh := BuildTerrainMesh(g)
	if got, want := len(mesh.FlatVertexData()), len(mesh.Vertices())*9; got != want {
		t.Fatalf("flat vertex data = %d floats; want %d", got, want)
	}
	if got, want := len(mesh.FlatLineData()), len(mesh.Lines())*6; got != want {
		t.Fatalf("flat line data = %d floats; want %d", got, want)
	}
}
