package glhf

import (
	"fmt"
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture3D is an RGB8 volume texture sampled with nearest filtering.
type Texture3D struct {
	tex                  binder
	width, height, depth int
}

// NewTexture3D uploads tightly packed RGB bytes, x fastest then y then z.
func NewTexture3D(width, height, depth int, pixels []uint8) *Texture3D {
	if len(pixels) != width*height*depth*3 {
		panic(fmt.Sprintf("new texture 3d: got %d bytes for %dx%dx%d", len(pixels), width, height, depth))
	}
	tex := &Texture3D{
		tex: binder{
			restoreLoc: gl.TEXTURE_BINDING_3D,
			bindFunc: func(obj uint32) {
				gl.BindTexture(gl.TEXTURE_3D, obj)
			},
		},
		width:  width,
		height: height,
		depth:  depth,
	}

	gl.GenTextures(1, &tex.tex.obj)

	tex.Begin()
	defer tex.End()

	var alignment int32
	gl.GetIntegerv(gl.UNPACK_ALIGNMENT, &alignment)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage3D(
		gl.TEXTURE_3D,
		0,
		gl.RGB8,
		int32(width),
		int32(height),
		int32(depth),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, alignment)

	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	runtime.SetFinalizer(tex, (*Texture3D).delete)

	return tex
}

func (t *Texture3D) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &t.tex.obj)
	})
}

// Delete frees the texture right away. Must run on the main thread.
func (t *Texture3D) Delete() {
	runtime.SetFinalizer(t, nil)
	gl.DeleteTextures(1, &t.tex.obj)
}

func (t *Texture3D) ID() uint32 {
	return t.tex.obj
}

func (t *Texture3D) Begin() {
	t.tex.bind()
}

func (t *Texture3D) End() {
	t.tex.restore()
}
