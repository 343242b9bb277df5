package client

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/xsection/engine/glhf"
	"github.com/memmaker/xsection/engine/util"
	"github.com/memmaker/xsection/game"
	"github.com/pkg/errors"
)

var _ game.Surface = (*XSectionClient)(nil)

func (c *XSectionClient) Clear(color mgl32.Vec4) {
	gl.Viewport(0, 0, int32(c.WindowWidth), int32(c.WindowHeight))
	glhf.SetDepthTest(true)
	glhf.Clear(color.X(), color.Y(), color.Z(), color.W())
}

func (c *XSectionClient) Draw(call game.DrawCall) error {
	vp := call.Viewport
	gl.Viewport(vp.X, vp.Y, vp.W, vp.H)
	glhf.SetDepthTest(call.DepthTest)
	glhf.SetAlphaBlend(call.Blend)

	switch call.Pass {
	case game.PassSection:
		c.drawWithVolume(c.sectionShader, c.sectionLines, call)
	case game.PassTerrain:
		c.drawWithVolume(c.terrainShader, c.terrainVertices, call)
	case game.PassPlane:
		gl.ActiveTexture(gl.TEXTURE0)
		c.depthCopy.BeginTexture()
		drawQuad(c.planeShader, c.planeQuad, call)
		c.depthCopy.EndTexture()
	case game.PassPlayerOverlay, game.PassPlayerWorld:
		gl.ActiveTexture(gl.TEXTURE0)
		c.sprite.Begin()
		drawQuad(c.playerShader, c.playerQuad, call)
		c.sprite.End()
	default:
		return errors.Errorf("unknown pass %d", call.Pass)
	}

	if !util.CheckForGLError(call.Pass.String()) {
		return errors.Errorf("gl error in %s pass", call.Pass)
	}
	return nil
}

func setMatrices(shader *glhf.Shader, call game.DrawCall) {
	shader.SetUniformAttr(uniformProjection, call.Projection)
	shader.SetUniformAttr(uniformView, call.View)
	shader.SetUniformAttr(uniformModel, call.Model)
	shader.SetUniformAttr(uniformTranslate, call.Translate)
	shader.SetUniformAttr(uniformScale, call.Scale)
	shader.SetUniformAttr(uniformSampler, int32(0))
}

func (c *XSectionClient) drawWithVolume(shader *glhf.Shader, vertices *glhf.VertexSlice, call game.DrawCall) {
	gl.ActiveTexture(gl.TEXTURE0)
	c.volume.Begin()
	shader.Begin()
	setMatrices(shader, call)
	vertices.Begin()
	vertices.Draw()
	vertices.End()
	shader.End()
	c.volume.End()
}

func drawQuad(shader *glhf.Shader, quad *glhf.VertexSlice, call game.DrawCall) {
	shader.Begin()
	setMatrices(shader, call)
	quad.Begin()
	quad.Draw()
	quad.End()
	shader.End()
}

// CopyDepth blits the depth of viewport into the texture sampled by the plane pass.
func (c *XSectionClient) CopyDepth(viewport game.Viewport) error {
	c.depthCopy.BlitFromDefault(
		glhf.Rect{X: viewport.X, Y: viewport.Y, W: viewport.W, H: viewport.H},
		glhf.Rect{X: 0, Y: 0, W: c.depthCopy.Width(), H: c.depthCopy.Height()},
	)
	if !util.CheckForGLError("depth copy") {
		return errors.New("gl error in depth blit")
	}
	return nil
}

func (c *XSectionClient) Finish() error {
	glhf.SetDepthTest(true)
	glhf.SetAlphaBlend(false)
	if !util.CheckForGLError("finish") {
		return errors.New("gl error at end of frame")
	}
	return nil
}
