package game

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/xsection/engine/util"
	"github.com/memmaker/xsection/engine/voxel"
	"github.com/pkg/errors"
	"math"
)

const playerScale = 0.5

// Scene owns the demo state: terrain, its mesh, the cutting plane and the player.
type Scene struct {
	config Config
	grid   *voxel.Grid
	mesh   *voxel.TerrainMesh
	plane  *Plane
	player *Player

	mode ControlMode

	left, right   Viewport
	terrainCamera *util.LookAtCamera
	sectionCamera *util.OrthoCamera
	clearColor    mgl32.Vec4
}

func NewScene(config Config) *Scene {
	grid := voxel.NewRidgedTerrain(config.TerrainSize)
	return NewSceneWithTerrain(config, grid)
}

func NewSceneWithTerrain(config Config, grid *voxel.Grid) *Scene {
	s := float32(grid.Size())
	halfWidth := int32(config.WindowWidth / 2)
	height := int32(config.WindowHeight)
	scene := &Scene{
		config: config,
		grid:   grid,
		mesh:   voxel.BuildTerrainMesh(grid),
		plane:  NewPlane(grid.Size()),
		player: NewPlayer(),
		mode:   FreeLook,
		left:   Viewport{X: 0, Y: 0, W: halfWidth, H: height},
		right:  Viewport{X: halfWidth, Y: 0, W: halfWidth, H: height},
		terrainCamera: util.NewLookAtCamera(
			mgl32.Vec3{-s / 2, s, -s / 2},
			mgl32.Vec3{s / 2, s / 4, s / 2},
			math.Pi/3,
			float32(config.WindowWidth)/2/float32(config.WindowHeight),
			0.1,
			1000,
		),
		sectionCamera: util.NewOrthoCamera(s / 2),
		clearColor: mgl32.Vec4{
			float32(config.ClearColor[0]) / 255,
			float32(config.ClearColor[1]) / 255,
			float32(config.ClearColor[2]) / 255,
			1,
		},
	}
	util.LogGameInfo(fmt.Sprintf("[Scene] %dx%dx%d terrain, %d solid blocks", grid.Size(), grid.Size(), grid.Size(), grid.SolidCount()))
	return scene
}

func (s *Scene) Grid() *voxel.Grid        { return s.grid }
func (s *Scene) Mesh() *voxel.TerrainMesh { return s.mesh }
func (s *Scene) Plane() *Plane            { return s.plane }
func (s *Scene) Player() *Player          { return s.player }
func (s *Scene) Mode() ControlMode        { return s.mode }
func (s *Scene) Config() Config           { return s.config }
func (s *Scene) LeftViewport() Viewport   { return s.left }
func (s *Scene) RightViewport() Viewport  { return s.right }
func (s *Scene) Orthographic() mgl32.Mat4 { return s.sectionCamera.GetProjectionMatrix() }
func (s *Scene) Perspective() mgl32.Mat4  { return s.terrainCamera.GetProjectionMatrix() }
func (s *Scene) CameraView() mgl32.Mat4   { return s.terrainCamera.GetViewMatrix() }

// Frame applies one tick of input and physics. It returns false once the user asked to quit.
func (s *Scene) Frame(dt float32, input InputSnapshot) bool {
	if input.Mode != s.mode {
		util.LogInputDebug(fmt.Sprintf("[Scene] control mode %s -> %s", s.mode, input.Mode))
		s.mode = input.Mode
	}
	cmd := input.Commands()
	if cmd.Quit {
		return false
	}
	s.apply(dt, cmd)
	s.player.Update(dt, s.plane, s.grid)
	return true
}

func (s *Scene) apply(dt float32, cmd FrameCommands) {
	if cmd.StrafeX != 0 {
		s.plane.StrafeX(dt, cmd.StrafeX > 0)
	}
	if cmd.StrafeZ != 0 {
		s.plane.StrafeZ(dt, cmd.StrafeZ > 0)
	}
	if cmd.Walk != 0 {
		s.player.Walk(dt, s.plane, s.grid, cmd.Walk > 0)
	}
	if cmd.Jump {
		s.player.Jump()
	}
	if cmd.Rotate != 0 {
		s.plane.Rotate(dt, cmd.Rotate > 0)
	}
}

// DrawCalls lists the passes of one frame in order. The depth copy of the left
// viewport happens between the section pass and everything after it.
func (s *Scene) DrawCalls() []DrawCall {
	identity := mgl32.Ident4()
	orthographic := s.sectionCamera.GetProjectionMatrix()
	perspective := s.terrainCamera.GetProjectionMatrix()
	view := s.terrainCamera.GetViewMatrix()
	pose := s.plane.Transform()
	playerTranslate := s.player.Translation()
	return []DrawCall{
		{
			Pass:       PassSection,
			Viewport:   s.left,
			Projection: orthographic,
			View:       identity,
			Model:      s.plane.InverseTransform(),
			Translate:  identity,
			Scale:      1,
			DepthTest:  true,
			Blend:      true,
		},
		{
			Pass:       PassPlayerOverlay,
			Viewport:   s.left,
			Projection: orthographic,
			View:       identity,
			Model:      identity,
			Translate:  playerTranslate,
			Scale:      playerScale,
			DepthTest:  true,
			Blend:      true,
		},
		{
			Pass:       PassTerrain,
			Viewport:   s.right,
			Projection: perspective,
			View:       view,
			Model:      identity,
			Translate:  identity,
			Scale:      1,
			DepthTest:  true,
			Blend:      true,
		},
		{
			Pass:       PassPlane,
			Viewport:   s.right,
			Projection: perspective,
			View:       view,
			Model:      pose,
			Translate:  identity,
			Scale:      s.plane.Scale(),
			DepthTest:  false,
			Blend:      true,
		},
		{
			Pass:       PassPlayerWorld,
			Viewport:   s.right,
			Projection: perspective,
			View:       view,
			Model:      pose,
			Translate:  playerTranslate,
			Scale:      playerScale,
			DepthTest:  false,
			Blend:      true,
		},
	}
}

func (s *Scene) Draw(surface Surface) error {
	surface.Clear(s.clearColor)
	for _, call := range s.DrawCalls() {
		if err := surface.Draw(call); err != nil {
			return errors.Wrapf(err, "%s pass", call.Pass)
		}
		if call.Pass == PassSection {
			if err := surface.CopyDepth(call.Viewport); err != nil {
				return errors.Wrap(err, "depth copy")
			}
		}
	}
	return surface.Finish()
}
