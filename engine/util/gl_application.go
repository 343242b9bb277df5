package util

import (
	"fmt"
	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/xsection/engine/glhf"
	"github.com/pkg/errors"
	"math"
	"time"
)

type GlApplication struct {
	Window        *glfw.Window
	TerminateFunc func()
	UpdateFunc    func(elapsed float64)
	DrawFunc      func(elapsed float64)
	KeyHandler    func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	WindowWidth   int
	WindowHeight  int
	Title         string
	TickInterval  time.Duration
	ticks         uint64
	quit          bool

	FramesPerSecond float64
	FPSRunningAvg   float64
	FPSMin          float64
	FPSMax          float64
}

func (a *GlApplication) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.KeyHandler != nil {
		a.KeyHandler(
			key,
			scancode,
			action,
			mods,
		)
	}
}

// Quit ends the loop after the current frame.
func (a *GlApplication) Quit() {
	a.quit = true
}

func (a *GlApplication) shouldQuit() bool {
	return a.quit || a.Window.ShouldClose()
}

// Run drives update and draw once per tick until the window closes.
// Must be called from the goroutine started by mainthread.Run, all GL work is
// funnelled onto the main thread.
func (a *GlApplication) Run() {
	defer mainthread.Call(a.TerminateFunc)
	pacer := NewFramePacer(a.TickInterval, time.Now())
	for !a.shouldQuit() {
		elapsed := pacer.Tick(time.Now())
		mainthread.Call(func() {
			gl.Viewport(0, 0, int32(a.WindowWidth), int32(a.WindowHeight))
			a.UpdateFunc(elapsed)
			a.DrawFunc(elapsed)
			a.Window.SwapBuffers()
			a.updateFrameStats(elapsed)
		})
		a.ticks++
		a.waitForNextTick(pacer)
	}
	LogSystemInfo(fmt.Sprintf("[App] Loop ended after %d ticks", a.ticks))
}

// waitForNextTick sleeps in the event queue until the next frame is due, so key
// events arriving in between are handled right away.
func (a *GlApplication) waitForNextTick(pacer *FramePacer) {
	for {
		remaining := pacer.Remaining(time.Now())
		if remaining <= 0 || a.shouldQuit() {
			mainthread.Call(glfw.PollEvents)
			return
		}
		mainthread.Call(func() {
			glfw.WaitEventsTimeout(remaining.Seconds())
		})
	}
}

func (a *GlApplication) updateFrameStats(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	a.FramesPerSecond = 1.0 / elapsed
	if a.ticks%60 == 0 {
		sixtyTicksAverage := a.FPSRunningAvg
		a.Window.SetTitle(fmt.Sprintf("%s - FPS: %.0f (Avg: %.0f, Min: %.0f, Max: %.0f)", a.Title, a.FramesPerSecond, sixtyTicksAverage, a.FPSMin, a.FPSMax))
		a.FPSRunningAvg = a.FramesPerSecond * (1.0 / 60.0)
		a.FPSMin = math.MaxFloat64
		a.FPSMax = 0
	} else {
		a.FPSRunningAvg = a.FPSRunningAvg + a.FramesPerSecond*(1.0/60.0)
		a.FPSMin = math.Min(a.FPSMin, a.FramesPerSecond)
		a.FPSMax = math.Max(a.FPSMax, a.FramesPerSecond)
	}
}

type windowHint struct {
	hint  glfw.Hint
	value int
}

// The default framebuffer carries no stencil, so its depth format matches the
// DEPTH_COMPONENT24 copy target and depth blits between them are legal.
var windowHints = []windowHint{
	{glfw.ContextVersionMajor, 3},
	{glfw.ContextVersionMinor, 3},
	{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
	{glfw.OpenGLForwardCompatible, glfw.True},
	{glfw.Resizable, glfw.False},
	{glfw.DepthBits, 24},
	{glfw.StencilBits, 0},
}

// InitOpenGL opens a fixed size window with a 3.3 core context and a 24 bit depth buffer.
// Must run on the main thread.
func InitOpenGL(title string, width, height int) (*glfw.Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, errors.Wrap(err, "init glfw")
	}
	for _, h := range windowHints {
		glfw.WindowHint(h.hint, h.value)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, errors.Wrapf(err, "create %dx%d window", width, height)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(0) // frames are paced by the tick, not by vsync

	if err := glhf.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, nil, err
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	LogGlInfo(fmt.Sprintf("[GL] OpenGL version %s", version))

	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)

	return win, func() {
		win.Destroy()
		glfw.Terminate()
	}, nil
}
