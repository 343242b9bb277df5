package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture is an RGBA8 2D texture clamped at its edges.
type Texture struct {
	tex           binder
	width, height int
}

// NewTexture uploads width*height RGBA pixels. Smooth picks linear filtering
// over nearest.
func NewTexture(width, height int, smooth bool, pixels []uint8) *Texture {
	t := &Texture{
		tex: binder{
			restoreLoc: gl.TEXTURE_BINDING_2D,
			bindFunc: func(obj uint32) {
				gl.BindTexture(gl.TEXTURE_2D, obj)
			},
		},
		width:  width,
		height: height,
	}

	gl.GenTextures(1, &t.tex.obj)
	t.Begin()
	defer t.End()

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	filter := int32(gl.NEAREST)
	if smooth {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	runtime.SetFinalizer(t, (*Texture).delete)
	return t
}

func (t *Texture) Width() int {
	return t.width
}

func (t *Texture) Height() int {
	return t.height
}

// Begin binds the texture to the active unit, End restores the previous binding.
func (t *Texture) Begin() {
	t.tex.bind()
}

func (t *Texture) End() {
	t.tex.restore()
}

func (t *Texture) release() {
	gl.DeleteTextures(1, &t.tex.obj)
}

func (t *Texture) delete() {
	mainthread.CallNonBlock(t.release)
}

// Delete frees the texture right away. Must run on the main thread.
func (t *Texture) Delete() {
	runtime.SetFinalizer(t, nil)
	t.release()
}
