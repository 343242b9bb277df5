package game

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"reflect"
	"testing"
)

type recordingSurface struct {
	ops     []string
	calls   []DrawCall
	copies  []Viewport
	failOn  Pass
	fail    bool
	copyErr error
}

func (r *recordingSurface) Clear(color mgl32.Vec4) {
	r.ops = append(r.ops, "clear")
}

func (r *recordingSurface) Draw(call DrawCall) error {
	r.ops = append(r.ops, "draw "+call.Pass.String())
	r.calls = append(r.calls, call)
	if r.fail && call.Pass == r.failOn {
		return errors.New("boom")
	}
	return nil
}

func (r *recordingSurface) CopyDepth(viewport Viewport) error {
	r.ops = append(r.ops, "copy depth")
	r.copies = append(r.copies, viewport)
	return r.copyErr
}

func (r *recordingSurface) Finish() error {
	r.ops = append(r.ops, "finish")
	return nil
}

func TestSceneDrawOrder(t *testing.T) {
	scene := NewScene(DefaultConfig())
	surface := &recordingSurface{}
	if err := scene.Draw(surface); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"clear",
		"draw section",
		"copy depth",
		"draw player-overlay",
		"draw terrain",
		"draw plane",
		"draw player-world",
		"finish",
	}
	if !reflect.DeepEqual(surface.ops, want) {
		t.Errorf("ops = %v\nwant %v", surface.ops, want)
	}
}

func TestSceneViewports(t *testing.T) {
	scene := NewScene(DefaultConfig())
	surface := &recordingSurface{}
	if err := scene.Draw(surface); err != nil {
		t.Fatal(err)
	}
	left := Viewport{X: 0, Y: 0, W: 720, H: 720}
	right := Viewport{X: 720, Y: 0, W: 720, H: 720}
	if scene.LeftViewport() != left || scene.RightViewport() != right {
		t.Fatalf("viewports = %+v / %+v, want %+v / %+v", scene.LeftViewport(), scene.RightViewport(), left, right)
	}

	wantViewports := map[Pass]Viewport{
		PassSection:       left,
		PassPlayerOverlay: left,
		PassTerrain:       right,
		PassPlane:         right,
		PassPlayerWorld:   right,
	}
	for _, call := range surface.calls {
		if call.Viewport != wantViewports[call.Pass] {
			t.Errorf("%s viewport = %+v, want %+v", call.Pass, call.Viewport, wantViewports[call.Pass])
		}
	}
	if len(surface.copies) != 1 || surface.copies[0] != left {
		t.Errorf("depth copies = %+v, want one of the left viewport", surface.copies)
	}
}

func TestSceneDrawCallUniforms(t *testing.T) {
	scene := NewScene(DefaultConfig())
	scene.Plane().Rotate(0.3, true)
	calls := scene.DrawCalls()

	byPass := make(map[Pass]DrawCall)
	for _, c := range calls {
		byPass[c.Pass] = c
	}
	if byPass[PassSection].Model != scene.Plane().InverseTransform() {
		t.Errorf("section pass does not use the inverse plane pose")
	}
	if byPass[PassSection].Projection != scene.Orthographic() {
		t.Errorf("section pass is not orthographic")
	}
	if byPass[PassTerrain].Projection != scene.Perspective() || byPass[PassTerrain].View != scene.CameraView() {
		t.Errorf("terrain pass does not use the perspective camera")
	}
	for _, p := range []Pass{PassPlane, PassPlayerWorld} {
		if byPass[p].Model != scene.Plane().Transform() {
			t.Errorf("%s pass is not placed by the plane pose", p)
		}
		if byPass[p].DepthTest {
			t.Errorf("%s pass should draw without depth test", p)
		}
	}
	if byPass[PassPlane].Scale != 8 {
		t.Errorf("plane scale = %v, want 8", byPass[PassPlane].Scale)
	}
	if byPass[PassPlayerOverlay].Translate != scene.Player().Translation() {
		t.Errorf("overlay does not follow the player")
	}
}

func TestSceneDrawStopsOnError(t *testing.T) {
	scene := NewScene(DefaultConfig())
	surface := &recordingSurface{fail: true, failOn: PassTerrain}
	err := scene.Draw(surface)
	if err == nil {
		t.Fatal("expected an error from the terrain pass")
	}
	if got := fmt.Sprint(err); got != "terrain pass: boom" {
		t.Errorf("error = %q", got)
	}
	if surface.ops[len(surface.ops)-1] == "finish" {
		t.Errorf("frame finished after a failed pass")
	}
}

func TestSceneDrawReportsDepthCopyFailure(t *testing.T) {
	scene := NewScene(DefaultConfig())
	surface := &recordingSurface{copyErr: errors.New("invalid operation")}
	err := scene.Draw(surface)
	if got := fmt.Sprint(err); got != "depth copy: invalid operation" {
		t.Fatalf("error = %q, want the depth copy to be blamed", got)
	}
	want := []string{"clear", "draw section", "copy depth"}
	if !reflect.DeepEqual(surface.ops, want) {
		t.Errorf("ops = %v\nwant %v", surface.ops, want)
	}
}

func TestSceneFrame(t *testing.T) {
	scene := NewScene(DefaultConfig())
	input := NewInputState()

	// the player starts standing right on the ridge
	if !scene.Frame(0.1, input.Snapshot()) {
		t.Fatal("frame without escape asked to quit")
	}
	if !scene.Player().IsOnFloor() || !approx(scene.Player().Position().Y(), 0.5) {
		t.Errorf("player at %v, on floor %v", scene.Player().Position(), scene.Player().IsOnFloor())
	}

	before := scene.Plane().Transform()
	input.Press(KeyW)
	scene.Frame(0.1, input.Snapshot())
	if scene.Plane().Transform() == before {
		t.Errorf("W in free look did not move the plane")
	}
	input.Release(KeyW)

	input.Press(KeyTab)
	input.Release(KeyTab)
	before = scene.Plane().Transform()
	input.Press(KeyW)
	scene.Frame(0.1, input.Snapshot())
	if scene.Mode() != PlayerControl {
		t.Errorf("mode = %s, want PlayerControl", scene.Mode())
	}
	if scene.Plane().Transform() != before {
		t.Errorf("W moved the plane in player mode")
	}
	input.Release(KeyW)

	input.Press(KeyEscape)
	if scene.Frame(0.1, input.Snapshot()) {
		t.Errorf("escape did not end the loop")
	}
}
