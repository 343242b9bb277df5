package client

import (
	_ "embed"
	"github.com/memmaker/xsection/engine/glhf"
	"github.com/pkg/errors"
)

var (
	//go:embed shader/terrain.vert
	terrainVertexShaderSource string

	//go:embed shader/terrain.frag
	terrainFragmentShaderSource string

	//go:embed shader/section.vert
	sectionVertexShaderSource string

	//go:embed shader/section.geom
	sectionGeometryShaderSource string

	//go:embed shader/section.frag
	sectionFragmentShaderSource string

	//go:embed shader/plane.vert
	planeVertexShaderSource string

	//go:embed shader/plane.frag
	planeFragmentShaderSource string

	//go:embed shader/player.vert
	playerVertexShaderSource string

	//go:embed shader/player.frag
	playerFragmentShaderSource string
)

// uniform indices, shared by every shader that declares them
const (
	uniformProjection = iota
	uniformView
	uniformModel
	uniformTranslate
	uniformScale
	uniformSampler
)

var quadVertexFormat = glhf.AttrFormat{
	{Name: "position", Type: glhf.Vec2},
	{Name: "texCoord", Type: glhf.Vec2},
}

func uniformFormat(sampler string) glhf.AttrFormat {
	return glhf.AttrFormat{
		glhf.Attr{Name: "projection", Type: glhf.Mat4},
		glhf.Attr{Name: "view", Type: glhf.Mat4},
		glhf.Attr{Name: "model", Type: glhf.Mat4},
		glhf.Attr{Name: "translate", Type: glhf.Mat4},
		glhf.Attr{Name: "scale", Type: glhf.Float},
		glhf.Attr{Name: sampler, Type: glhf.Sampler},
	}
}

func loadTerrainShader() (*glhf.Shader, error) {
	var (
		vertexFormat = glhf.AttrFormat{
			{Name: "position", Type: glhf.Vec3},
			{Name: "normal", Type: glhf.Vec3},
			{Name: "texCoord", Type: glhf.Vec3},
		}
	)
	shader, err := glhf.NewShader(vertexFormat, uniformFormat("volume"), terrainVertexShaderSource, terrainFragmentShaderSource)
	if err != nil {
		return nil, errors.Wrap(err, "terrain shader")
	}
	return shader, nil
}

func loadSectionShader() (*glhf.Shader, error) {
	var (
		vertexFormat = glhf.AttrFormat{
			{Name: "position", Type: glhf.Vec3},
			{Name: "texCoord", Type: glhf.Vec3},
		}
	)
	shader, err := glhf.NewShaderWithGeometry(vertexFormat, uniformFormat("volume"), sectionVertexShaderSource, sectionGeometryShaderSource, sectionFragmentShaderSource)
	if err != nil {
		return nil, errors.Wrap(err, "section shader")
	}
	return shader, nil
}

func loadPlaneShader() (*glhf.Shader, error) {
	shader, err := glhf.NewShader(quadVertexFormat, uniformFormat("frame"), planeVertexShaderSource, planeFragmentShaderSource)
	if err != nil {
		return nil, errors.Wrap(err, "plane shader")
	}
	return shader, nil
}

func loadPlayerShader() (*glhf.Shader, error) {
	shader, err := glhf.NewShader(quadVertexFormat, uniformFormat("sprite"), playerVertexShaderSource, playerFragmentShaderSource)
	if err != nil {
		return nil, errors.Wrap(err, "player shader")
	}
	return shader, nil
}
