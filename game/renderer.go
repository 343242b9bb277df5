package game

import "github.com/go-gl/mathgl/mgl32"

type Pass uint8

const (
	PassSection Pass = iota
	PassPlayerOverlay
	PassTerrain
	PassPlane
	PassPlayerWorld
)

func (p Pass) String() string {
	switch p {
	case PassSection:
		return "section"
	case PassPlayerOverlay:
		return "player-overlay"
	case PassTerrain:
		return "terrain"
	case PassPlane:
		return "plane"
	case PassPlayerWorld:
		return "player-world"
	}
	return "unknown"
}

// Viewport is a pixel rectangle, origin in the lower left corner of the window.
type Viewport struct {
	X, Y, W, H int32
}

// DrawCall carries everything one pass needs besides its own GL resources.
type DrawCall struct {
	Pass       Pass
	Viewport   Viewport
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	// Translate and Scale position quads (plane and player) inside their model space.
	Translate mgl32.Mat4
	Scale     float32
	DepthTest bool
	Blend     bool
}

// Surface is the rendering collaborator of the scene.
type Surface interface {
	Clear(color mgl32.Vec4)
	Draw(call DrawCall) error
	// CopyDepth keeps the depth buffer of viewport for the plane pass.
	CopyDepth(viewport Viewport) error
	Finish() error
}
