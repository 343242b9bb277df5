package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
	GetPosition() mgl32.Vec3
}

// LookAtCamera is a fixed perspective camera aimed at a target point.
type LookAtCamera struct {
	position   mgl32.Vec3
	view       mgl32.Mat4
	projection mgl32.Mat4
}

func NewLookAtCamera(position, target mgl32.Vec3, fovy, aspect, near, far float32) *LookAtCamera {
	return &LookAtCamera{
		position:   position,
		view:       mgl32.LookAtV(position, target, mgl32.Vec3{0, 1, 0}),
		projection: mgl32.Perspective(fovy, aspect, near, far),
	}
}

func (c *LookAtCamera) GetViewMatrix() mgl32.Mat4 {
	return c.view
}

func (c *LookAtCamera) GetProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *LookAtCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

// OrthoCamera looks down -z at a square of the given half extent, centered on the origin.
type OrthoCamera struct {
	projection mgl32.Mat4
}

func NewOrthoCamera(halfExtent float32) *OrthoCamera {
	return &OrthoCamera{
		projection: mgl32.Ortho(-halfExtent, halfExtent, -halfExtent, halfExtent, -1, 1),
	}
}

func (c *OrthoCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.Ident4()
}

func (c *OrthoCamera) GetProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *OrthoCamera) GetPosition() mgl32.Vec3 {
	return mgl32.Vec3{}
}
