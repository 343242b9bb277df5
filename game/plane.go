package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"math"
)

const (
	planeStrafeSpeed = 5.0
	planeTurnSpeed   = math.Pi / 4
)

// Plane is the cutting plane. Its pose maps plane-local space (the quad lies in
// z = 0) to world space. Every mutation right-multiplies, so movement happens
// along the plane's own axes.
type Plane struct {
	pose  mgl32.Mat4
	scale float32
}

// NewPlane places the plane in the middle of a terrain of the given size,
// turned 45 degrees so it cuts the terrain diagonally.
func NewPlane(size int32) *Plane {
	s := float32(size)
	pose := mgl32.Ident4().
		Mul4(mgl32.HomogRotate3DY(math.Pi)).
		Mul4(mgl32.Translate3D(-s/2, s/2, -s/2)).
		Mul4(mgl32.HomogRotate3DY(math.Pi / 4))
	return NewPlaneWithPose(pose, s/2)
}

func NewPlaneWithPose(pose mgl32.Mat4, scale float32) *Plane {
	return &Plane{pose: pose, scale: scale}
}

func sign(positive bool) float32 {
	if positive {
		return 1
	}
	return -1
}

func (p *Plane) StrafeX(dt float32, positive bool) {
	p.pose = p.pose.Mul4(mgl32.Translate3D(sign(positive)*planeStrafeSpeed*dt, 0, 0))
}

func (p *Plane) StrafeZ(dt float32, positive bool) {
	p.pose = p.pose.Mul4(mgl32.Translate3D(0, 0, sign(positive)*planeStrafeSpeed*dt))
}

// Rotate turns the plane about its local Y axis.
func (p *Plane) Rotate(dt float32, positive bool) {
	p.pose = p.pose.Mul4(mgl32.HomogRotate3DY(sign(positive) * planeTurnSpeed * dt))
}

func (p *Plane) Transform() mgl32.Mat4 {
	return p.pose
}

// Scale is the half extent of the drawn quad.
func (p *Plane) Scale() float32 {
	return p.scale
}

// TiltCompensation measures how far the plane is tilted out of its axis and
// the horizontal stretch that would undo it. The result is never folded back
// into the pose, which has to stay rigid.
func (p *Plane) TiltCompensation() (angle, stretch float32) {
	r31 := float64(p.pose.At(2, 0))
	r32 := float64(p.pose.At(2, 1))
	r33 := float64(p.pose.At(2, 2))
	a := math.Atan2(-r31, math.Sqrt(r32*r32+r33*r33))
	a = math.Mod(math.Abs(a), math.Pi/2)
	a = math.Min(math.Pi/2-a, a)
	return float32(a), float32(1 / math.Cos(a))
}

// InverseTransform maps world space into plane-local space.
// The pose only ever holds rotations and translations, so the inverse is [Rᵀ | -Rᵀt].
func (p *Plane) InverseTransform() mgl32.Mat4 {
	rot := p.pose.Mat3().Transpose()
	translation := rot.Mul3x1(p.pose.Col(3).Vec3()).Mul(-1)
	inv := rot.Mat4()
	inv.SetCol(3, translation.Vec4(1))
	return inv
}
