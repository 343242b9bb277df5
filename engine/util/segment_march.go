package util

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/xsection/engine/voxel"
	"math"
)

// MarchEpsilon is added to every step so a march never stalls on a cell boundary.
const MarchEpsilon = 1.1920929e-7

const maxMarchSteps = 1 << 20

type SegmentHit struct {
	Hit bool
	// T is the segment parameter of the hit: 0 at the start, 1 at the end.
	T            float64
	GridPosition voxel.Int3
	Steps        int
}

// MarchSegment walks the voxels touched by the segment start->end and stops at the
// first one for which stopRay returns true.
// The direction is not normalized: t runs over [0, 1+MarchEpsilon].
func MarchSegment(rayStart, rayEnd mgl32.Vec3, stopRay func(x, y, z int32) bool) SegmentHit {
	origin := [3]float64{float64(rayStart.X()), float64(rayStart.Y()), float64(rayStart.Z())}
	dir := [3]float64{
		float64(rayEnd.X()) - origin[0],
		float64(rayEnd.Y()) - origin[1],
		float64(rayEnd.Z()) - origin[2],
	}
	if !allFinite(origin) || !allFinite(dir) {
		LogPhysicsError(fmt.Sprintf("[March] refusing non-finite segment %v -> %v", rayStart, rayEnd))
		return SegmentHit{}
	}

	t := 0.0
	steps := 0
	for t <= 1+MarchEpsilon {
		if steps >= maxMarchSteps {
			LogPhysicsError(fmt.Sprintf("[March] gave up after %d steps on %v -> %v", steps, rayStart, rayEnd))
			return SegmentHit{Steps: steps}
		}
		steps++

		var pos [3]float64
		for axis := 0; axis < 3; axis++ {
			pos[axis] = origin[axis] + t*dir[axis]
		}
		if cell, ok := gridCell(pos); ok && stopRay(cell.X, cell.Y, cell.Z) {
			return SegmentHit{Hit: true, T: t, GridPosition: cell, Steps: steps}
		}

		dt := math.Inf(1)
		for axis := 0; axis < 3; axis++ {
			dt = math.Min(dt, boundaryDistance(pos[axis], dir[axis]))
		}
		t += dt + MarchEpsilon
	}
	return SegmentHit{Steps: steps}
}

// boundaryDistance is the parameter distance to the next integer plane along one axis.
// An axis the segment does not move along never reaches a boundary.
func boundaryDistance(p, d float64) float64 {
	switch {
	case d > 0:
		return (math.Floor(p) + 1 - p) / d
	case d < 0:
		return (p - math.Floor(p)) / -d
	default:
		return math.Inf(1)
	}
}

func gridCell(pos [3]float64) (voxel.Int3, bool) {
	var cell [3]int32
	for axis, p := range pos {
		f := math.Floor(p)
		if f < math.MinInt32 || f > math.MaxInt32 {
			return voxel.Int3{}, false
		}
		cell[axis] = int32(f)
	}
	return voxel.Int3{X: cell[0], Y: cell[1], Z: cell[2]}, true
}

func allFinite(v [3]float64) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
