package glhf

import (
	"fmt"
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

type GlFloat = float32

// VertexSlice is a float vertex buffer laid out for one shader's vertex format.
// Begin it before writing or drawing, End it afterwards.
type VertexSlice struct {
	va                   *vertexArray
	startIndex, endIndex int
}

// MakeVertexSlice allocates room for cap vertices and exposes the first len of them.
func MakeVertexSlice(shader *Shader, len, cap int) *VertexSlice {
	if len > cap {
		panic("failed to make vertex slice: len > cap")
	}
	return &VertexSlice{
		va:         newVertexArray(shader, cap),
		startIndex: 0,
		endIndex:   len,
	}
}

// Stride is the number of floats per vertex.
func (vs *VertexSlice) Stride() int {
	return vs.va.stride / SizeOfFloat32
}

// Len is the number of vertices drawn.
func (vs *VertexSlice) Len() int {
	return vs.endIndex - vs.startIndex
}

// SetVertexData uploads interleaved attributes in vertex format order.
// Panics unless data holds exactly Len vertices.
func (vs *VertexSlice) SetVertexData(data []GlFloat) {
	if len(data)/vs.Stride() != vs.Len() {
		panic(fmt.Sprintf("set vertex data: wrong length of vertices, got %d, want %d", len(data)/vs.Stride(), vs.Len()))
	}
	vs.va.setVertexData(vs.startIndex, vs.endIndex, data)
}

func (vs *VertexSlice) Draw() {
	vs.va.draw(vs.startIndex, vs.endIndex)
}

func (vs *VertexSlice) Begin() {
	vs.va.begin()
}

func (vs *VertexSlice) End() {
	vs.va.end()
}

func (vs *VertexSlice) SetPrimitiveType(glPrimitiveType uint32) {
	vs.va.primitiveType = glPrimitiveType
}

// Delete frees the GL buffers right away. Must run on the main thread.
func (vs *VertexSlice) Delete() {
	runtime.SetFinalizer(vs.va, nil)
	vs.va.release()
}

type vertexArray struct {
	vao, vbo      binder
	format        AttrFormat
	stride        int
	offset        []int
	shader        *Shader
	primitiveType uint32
}

const vertexArrayMinCap = 4

func newVertexArray(shader *Shader, cap int) *vertexArray {
	if cap < vertexArrayMinCap {
		cap = vertexArrayMinCap
	}

	va := &vertexArray{
		primitiveType: gl.TRIANGLES,
		vao: binder{
			restoreLoc: gl.VERTEX_ARRAY_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindVertexArray(obj)
			},
		},
		vbo: binder{
			restoreLoc: gl.ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ARRAY_BUFFER, obj)
			},
		},
		format: shader.VertexFormat(),
		stride: shader.VertexFormat().Size(),
		offset: make([]int, len(shader.VertexFormat())),
		shader: shader,
	}

	offset := 0
	for i, attr := range va.format {
		switch attr.Type {
		case Float, Vec2, Vec3, Vec4:
		default:
			panic(errors.New("failed to create vertex array: invalid attribute type"))
		}
		va.offset[i] = offset
		offset += attr.Type.Size()
	}

	gl.GenVertexArrays(1, &va.vao.obj)

	va.vao.bind()

	gl.GenBuffers(1, &va.vbo.obj)
	defer va.vbo.bind().restore()

	emptyData := make([]byte, cap*va.stride)
	gl.BufferData(gl.ARRAY_BUFFER, len(emptyData), gl.Ptr(emptyData), gl.STATIC_DRAW)

	va.setAttributes()

	va.vao.restore()

	runtime.SetFinalizer(va, (*vertexArray).delete)

	return va
}

func (va *vertexArray) setAttributes() {
	for i, attr := range va.format {
		loc := gl.GetAttribLocation(va.shader.program.obj, gl.Str(attr.Name+"\x00"))
		if loc < 0 {
			// optimized away by the compiler
			continue
		}

		var size int32
		switch attr.Type {
		case Float:
			size = 1
		case Vec2:
			size = 2
		case Vec3:
			size = 3
		case Vec4:
			size = 4
		}

		gl.VertexAttribPointerWithOffset(
			uint32(loc),
			size,
			gl.FLOAT,
			false,
			int32(va.stride),
			uintptr(va.offset[i]),
		)
		gl.EnableVertexAttribArray(uint32(loc))
	}
}

func (va *vertexArray) release() {
	gl.DeleteVertexArrays(1, &va.vao.obj)
	gl.DeleteBuffers(1, &va.vbo.obj)
}

func (va *vertexArray) delete() {
	mainthread.CallNonBlock(va.release)
}

func (va *vertexArray) begin() {
	va.vao.bind()
	va.vbo.bind()
}

func (va *vertexArray) end() {
	va.vbo.restore()
	va.vao.restore()
}

func (va *vertexArray) draw(i, j int) {
	if j-i == 0 {
		return
	}
	gl.DrawArrays(va.primitiveType, int32(i), int32(j-i))
}

func (va *vertexArray) setVertexData(i, j int, data []GlFloat) {
	if j-i == 0 {
		// avoid setting 0 bytes of buffer data
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, i*va.stride, len(data)*SizeOfFloat32, gl.Ptr(data))
}
