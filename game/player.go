package game

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/xsection/engine/util"
	"github.com/memmaker/xsection/engine/voxel"
	"math"
)

const (
	gravity          = 30.0
	terminalVelocity = 20.0
	walkSpeed        = 3.5
	jumpVelocity     = 12.0
	playerWidth      = 0.5
	// each correction lifts the player by one block
	maxCorrections = 64
)

// Pose maps plane-local coordinates to world space.
type Pose interface {
	Transform() mgl32.Mat4
}

// Terrain answers voxel queries, ok is false outside the grid.
type Terrain interface {
	Get(x, y, z int32) (value byte, ok bool)
}

// Player lives in the 2D space of the cutting plane. Its feet are a segment of
// width playerWidth at y-0.5, collision is tested by marching that segment
// through the voxels it covers in world space.
type Player struct {
	x, y    float32
	velY    float32
	onFloor bool
	width   float32

	CorrectionOverruns int
}

func NewPlayer() *Player {
	return &Player{
		x:     0,
		y:     0.5,
		width: playerWidth,
	}
}

func (p *Player) Position() mgl32.Vec2 {
	return mgl32.Vec2{p.x, p.y}
}

func (p *Player) VelocityY() float32 {
	return p.velY
}

func (p *Player) IsOnFloor() bool {
	return p.onFloor
}

// Translation places the sprite in plane-local space.
func (p *Player) Translation() mgl32.Mat4 {
	return mgl32.Translate3D(p.x, p.y, 0)
}

func (p *Player) feet(pose Pose) (left, right mgl32.Vec3) {
	m := pose.Transform()
	left = m.Mul4x1(mgl32.Vec4{p.x - p.width/2, p.y - 0.5, 0, 1}).Vec3()
	right = m.Mul4x1(mgl32.Vec4{p.x + p.width/2, p.y - 0.5, 0, 1}).Vec3()
	return left, right
}

// Intersects reports whether the feet segment touches a solid voxel.
func (p *Player) Intersects(pose Pose, terrain Terrain) bool {
	left, right := p.feet(pose)
	hit := util.MarchSegment(left, right, func(x, y, z int32) bool {
		value, ok := terrain.Get(x, y, z)
		return ok && value != voxel.EMPTY
	})
	return hit.Hit
}

// Update applies gravity and then pushes the player up out of the ground one block at a time.
func (p *Player) Update(dt float32, pose Pose, terrain Terrain) {
	p.velY = float32(math.Max(float64(p.velY-dt*gravity), -terminalVelocity))
	p.y += dt * p.velY
	if dt != 0 {
		p.onFloor = false
	}

	for i := 0; p.Intersects(pose, terrain); i++ {
		if i == maxCorrections {
			p.CorrectionOverruns++
			util.LogPhysicsError(fmt.Sprintf("[Player] still inside terrain after %d corrections at (%.2f, %.2f)", maxCorrections, p.x, p.y))
			return
		}
		p.onFloor = true
		p.velY = 0
		p.y = float32(math.Floor(float64(p.y-0.5))) + 1.5
	}
}

// Walk moves along the plane's x axis, positive walks towards -x.
// A step into a wall is undone completely.
func (p *Player) Walk(dt float32, pose Pose, terrain Terrain, positive bool) {
	previous := p.x
	p.x -= sign(positive) * walkSpeed * dt
	if p.Intersects(pose, terrain) {
		p.x = previous
	}
}

func (p *Player) Jump() {
	if p.onFloor {
		p.velY = jumpVelocity
	}
}
