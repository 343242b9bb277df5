package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Init loads the GL function pointers. Call it once, on the main thread, after a
// context has been made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "init gl")
	}
	return nil
}

// Clear clears the color and depth buffers of the bound framebuffer.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDepthTest switches depth testing and depth writes together.
func SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// SetAlphaBlend enables straight alpha blending.
func SetAlphaBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}
