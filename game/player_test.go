package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/xsection/engine/voxel"
	"math"
	"testing"
)

type fixedPose mgl32.Mat4

func (p fixedPose) Transform() mgl32.Mat4 {
	return mgl32.Mat4(p)
}

var identityPose = fixedPose(mgl32.Ident4())

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

// floorGrid has a solid bottom layer and nothing else.
func floorGrid(size int32) *voxel.Grid {
	grid := voxel.NewGrid(size)
	for x := int32(0); x < size; x++ {
		for z := int32(0); z < size; z++ {
			grid.Set(x, 0, z, voxel.SOLID)
		}
	}
	return grid
}

func TestPlayerStartPosition(t *testing.T) {
	p := NewPlayer()
	if p.Position() != (mgl32.Vec2{0, 0.5}) || p.VelocityY() != 0 || p.IsOnFloor() {
		t.Errorf("unexpected start state: pos %v vel %v floor %v", p.Position(), p.VelocityY(), p.IsOnFloor())
	}
}

func TestPlayerFallsAndClampsVelocity(t *testing.T) {
	grid := voxel.NewGrid(4)
	p := NewPlayer()

	p.Update(0.1, identityPose, grid)
	if !approx(p.VelocityY(), -3) {
		t.Fatalf("velocity after one step = %v, want -3", p.VelocityY())
	}
	if !approx(p.Position().Y(), 0.5-0.3) {
		t.Errorf("y after one step = %v, want 0.2", p.Position().Y())
	}

	for i := 0; i < 20; i++ {
		p.Update(0.1, identityPose, grid)
	}
	if p.VelocityY() != -20 {
		t.Errorf("velocity = %v, want clamped at -20", p.VelocityY())
	}
	if p.IsOnFloor() {
		t.Errorf("player on floor above an empty grid")
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	grid := floorGrid(4)
	p := NewPlayer()
	p.x, p.y = 2, 1.5

	p.Update(0.1, identityPose, grid)

	if !approx(p.Position().Y(), 1.5) {
		t.Errorf("y = %v, want snapped back to 1.5", p.Position().Y())
	}
	if p.VelocityY() != 0 {
		t.Errorf("velocity = %v, want 0", p.VelocityY())
	}
	if !p.IsOnFloor() {
		t.Errorf("player should be on the floor")
	}

	// a zero step keeps the floor contact
	p.Update(0, identityPose, grid)
	if !p.IsOnFloor() {
		t.Errorf("zero step cleared the floor flag")
	}
}

func TestPlayerWalk(t *testing.T) {
	grid := voxel.NewGrid(6)
	grid.Set(3, 1, 0, voxel.SOLID)

	p := NewPlayer()
	p.x, p.y = 2.5, 1.5

	p.Walk(0.1, identityPose, grid, false)
	if p.Position().X() != 2.5 {
		t.Errorf("walking into the wall moved the player to x = %v", p.Position().X())
	}

	p.Walk(0.1, identityPose, grid, true)
	if !approx(p.Position().X(), 2.5-0.35) {
		t.Errorf("x = %v, want %v", p.Position().X(), 2.5-0.35)
	}
}

func TestPlayerJumpNeedsFloor(t *testing.T) {
	p := NewPlayer()
	p.Jump()
	if p.VelocityY() != 0 {
		t.Errorf("jumped in mid air")
	}

	grid := floorGrid(4)
	p.x, p.y = 2, 1.5
	p.Update(0.1, identityPose, grid)
	p.Jump()
	if p.VelocityY() != 12 {
		t.Errorf("velocity after jump = %v, want 12", p.VelocityY())
	}
}

func TestPlayerIntersectsFollowsPose(t *testing.T) {
	grid := voxel.NewGrid(8)
	grid.Set(5, 2, 4, voxel.SOLID)
	p := NewPlayer()
	p.x, p.y = 0, 0.5

	if p.Intersects(identityPose, grid) {
		t.Fatalf("identity pose should see an empty row")
	}
	moved := fixedPose(mgl32.Translate3D(5.5, 2.5, 4.5))
	if !p.Intersects(moved, grid) {
		t.Errorf("feet translated into the solid block did not intersect")
	}
}

func TestPlayerCorrectionOverrun(t *testing.T) {
	const size = 80
	grid := voxel.NewGrid(size)
	for y := int32(0); y < size; y++ {
		grid.Set(2, y, 0, voxel.SOLID)
	}
	p := NewPlayer()
	p.x, p.y = 2.5, 1.5

	p.Update(0.01, identityPose, grid)

	if p.CorrectionOverruns != 1 {
		t.Errorf("overruns = %d, want 1", p.CorrectionOverruns)
	}
	if p.Position().Y() > size {
		t.Errorf("correction loop ran past its cap, y = %v", p.Position().Y())
	}
}
