package client

import (
	"fmt"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/xsection/engine/glhf"
	"github.com/memmaker/xsection/engine/util"
	"github.com/memmaker/xsection/game"
	"github.com/pkg/errors"
)

// XSectionClient is the windowed front end: it owns the GL resources, feeds
// keyboard input into the scene and draws the scene's passes.
type XSectionClient struct {
	*util.GlApplication
	scene *game.Scene
	input *game.InputState
	timer *util.Timer

	terrainShader *glhf.Shader
	sectionShader *glhf.Shader
	planeShader   *glhf.Shader
	playerShader  *glhf.Shader

	terrainVertices *glhf.VertexSlice
	sectionLines    *glhf.VertexSlice
	planeQuad       *glhf.VertexSlice
	playerQuad      *glhf.VertexSlice

	volume    *glhf.Texture3D
	sprite    *glhf.Texture
	depthCopy *glhf.DepthTarget
}

// NewXSectionClient opens the window and uploads everything the scene needs.
// Must run on the main thread.
func NewXSectionClient(config game.Config, scene *game.Scene) (*XSectionClient, error) {
	window, terminateFunc, err := util.InitOpenGL(config.Title, config.WindowWidth, config.WindowHeight)
	if err != nil {
		return nil, err
	}
	glApp := &util.GlApplication{
		WindowWidth:   config.WindowWidth,
		WindowHeight:  config.WindowHeight,
		Title:         config.Title,
		TickInterval:  config.TickInterval,
		Window:        window,
		TerminateFunc: terminateFunc,
	}
	window.SetKeyCallback(glApp.KeyCallback)

	c := &XSectionClient{
		GlApplication: glApp,
		scene:         scene,
		input:         game.NewInputState(),
		timer:         util.NewTimer(),
	}
	if err = c.loadResources(config, scene); err != nil {
		c.Close()
		terminateFunc()
		return nil, err
	}
	glApp.TerminateFunc = func() {
		c.Close()
		terminateFunc()
	}
	c.UpdateFunc = c.Update
	c.DrawFunc = c.DrawFrame
	c.KeyHandler = c.handleKeyEvents
	return c, nil
}

func (c *XSectionClient) loadResources(config game.Config, scene *game.Scene) error {
	var err error
	if c.terrainShader, err = loadTerrainShader(); err != nil {
		return err
	}
	if c.sectionShader, err = loadSectionShader(); err != nil {
		return err
	}
	if c.planeShader, err = loadPlaneShader(); err != nil {
		return err
	}
	if c.playerShader, err = loadPlayerShader(); err != nil {
		return err
	}

	if c.sprite, err = util.LoadTexture(config.SpritePath); err != nil {
		return errors.Wrap(err, "player sprite")
	}

	volumeHeight := config.VolumeSize * 2
	c.volume = glhf.NewTexture3D(config.VolumeSize, volumeHeight, config.VolumeSize, game.BuildVolumeColors(config.VolumeSize))

	left := scene.LeftViewport()
	if c.depthCopy, err = glhf.NewDepthTarget(left.W, left.H); err != nil {
		return err
	}

	c.terrainVertices = newTerrainVertices(c.terrainShader, scene.Mesh())
	c.sectionLines = newSectionLines(c.sectionShader, scene.Mesh())
	c.planeQuad = newQuad(c.planeShader)
	c.playerQuad = newQuad(c.playerShader)

	if !util.CheckForGLError("resource upload") {
		return errors.New("gl error while uploading resources")
	}
	util.LogGlInfo(fmt.Sprintf("[Client] uploaded %d terrain vertices and %d section lines", c.terrainVertices.Len(), c.sectionLines.Len()/2))
	return nil
}

func (c *XSectionClient) handleKeyEvents(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	feedKey(c.input, key, action)
}

func (c *XSectionClient) Update(elapsed float64) {
	stopUpdateTimer := c.timer.Start("> Update()")
	if !c.scene.Frame(float32(elapsed), c.input.Snapshot()) {
		util.LogSystemInfo("[Client] escape pressed, closing")
		c.Quit()
	}
	stopUpdateTimer()
}

func (c *XSectionClient) DrawFrame(elapsed float64) {
	stopDrawTimer := c.timer.Start("> Draw()")
	if err := c.scene.Draw(c); err != nil {
		util.LogGlError(fmt.Sprintf("[Client] frame failed: %v", err))
	}
	stopDrawTimer()
	if c.timer.GetState("> Draw()").ExecutionCount() == 600 {
		util.LogSystemDebug(c.timer.String())
		c.timer.Reset()
	}
}

// Close frees every GL resource that was created. Safe on a partially
// initialised client. Must run on the main thread.
func (c *XSectionClient) Close() {
	for _, shader := range []*glhf.Shader{c.terrainShader, c.sectionShader, c.planeShader, c.playerShader} {
		if shader != nil {
			shader.Delete()
		}
	}
	for _, slice := range []*glhf.VertexSlice{c.terrainVertices, c.sectionLines, c.planeQuad, c.playerQuad} {
		if slice != nil {
			slice.Delete()
		}
	}
	if c.volume != nil {
		c.volume.Delete()
	}
	if c.sprite != nil {
		c.sprite.Delete()
	}
	if c.depthCopy != nil {
		c.depthCopy.Delete()
	}
	c.terrainShader, c.sectionShader, c.planeShader, c.playerShader = nil, nil, nil, nil
	c.terrainVertices, c.sectionLines, c.planeQuad, c.playerQuad = nil, nil, nil, nil
	c.volume, c.sprite, c.depthCopy = nil, nil, nil
}
