package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Rect is a pixel rectangle with the origin in the lower left corner.
type Rect struct {
	X, Y, W, H int32
}

// DepthTarget is a depth-only framebuffer whose depth texture can be sampled.
// It is used to keep a copy of the default framebuffer's depth for a later pass.
type DepthTarget struct {
	fbo           binder
	tex           binder
	width, height int32
}

func NewDepthTarget(width, height int32) (*DepthTarget, error) {
	dt := &DepthTarget{
		fbo: binder{
			restoreLoc: gl.DRAW_FRAMEBUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, obj)
			},
		},
		tex: binder{
			restoreLoc: gl.TEXTURE_BINDING_2D,
			bindFunc: func(obj uint32) {
				gl.BindTexture(gl.TEXTURE_2D, obj)
			},
		},
		width:  width,
		height: height,
	}

	gl.GenTextures(1, &dt.tex.obj)
	dt.tex.bind()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, width, height, 0, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	dt.tex.restore()

	gl.GenFramebuffers(1, &dt.fbo.obj)
	dt.fbo.bind()
	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, dt.tex.obj, 0)
	gl.DrawBuffer(gl.NONE)
	status := gl.CheckFramebufferStatus(gl.DRAW_FRAMEBUFFER)
	dt.fbo.restore()

	if status != gl.FRAMEBUFFER_COMPLETE {
		dt.release()
		return nil, errors.Errorf("depth framebuffer incomplete: 0x%x", status)
	}

	runtime.SetFinalizer(dt, (*DepthTarget).delete)
	return dt, nil
}

// BlitFromDefault copies the depth of src in the default framebuffer into dst of
// this target. Both rectangles should have the same size, depth is never scaled.
func (dt *DepthTarget) BlitFromDefault(src, dst Rect) {
	var prevRead, prevDraw int32
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &prevRead)
	gl.GetIntegerv(gl.DRAW_FRAMEBUFFER_BINDING, &prevDraw)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, dt.fbo.obj)
	gl.BlitFramebuffer(
		src.X, src.Y, src.X+src.W, src.Y+src.H,
		dst.X, dst.Y, dst.X+dst.W, dst.Y+dst.H,
		gl.DEPTH_BUFFER_BIT, gl.NEAREST,
	)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(prevRead))
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, uint32(prevDraw))
}

func (dt *DepthTarget) Width() int32 {
	return dt.width
}

func (dt *DepthTarget) Height() int32 {
	return dt.height
}

// BeginTexture binds the depth texture to the active texture unit.
func (dt *DepthTarget) BeginTexture() {
	dt.tex.bind()
}

func (dt *DepthTarget) EndTexture() {
	dt.tex.restore()
}

func (dt *DepthTarget) release() {
	gl.DeleteFramebuffers(1, &dt.fbo.obj)
	gl.DeleteTextures(1, &dt.tex.obj)
}

func (dt *DepthTarget) delete() {
	mainthread.CallNonBlock(dt.release)
}

// Delete frees the framebuffer right away. Must run on the main thread.
func (dt *DepthTarget) Delete() {
	runtime.SetFinalizer(dt, nil)
	dt.release()
}
