package util

import (
	"fmt"
	"github.com/memmaker/xsection/engine/glhf"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"image"
	_ "image/png"
	"io"
	"os"
)

// DecodeNRGBA decodes any registered image format into tightly packed NRGBA pixels.
// With flipY the first row of Pix is the bottom row of the image, as GL expects.
func DecodeNRGBA(r io.Reader, flipY bool) (*image.NRGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(nrgba, image.Point{}, img, bounds, draw.Src, nil)
	if flipY {
		flipRows(nrgba)
	}
	LogTextureDebug(fmt.Sprintf("[Texture] decoded %dx%d %s image", bounds.Dx(), bounds.Dy(), format))
	return nrgba, nil
}

func flipRows(img *image.NRGBA) {
	h := img.Bounds().Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// NewTextureFromReader creates a new texture from an io.Reader.
func NewTextureFromReader(r io.Reader, flipY bool) (*glhf.Texture, error) {
	nrgba, err := DecodeNRGBA(r, flipY)
	if err != nil {
		return nil, err
	}
	return glhf.NewTexture(
		nrgba.Bounds().Dx(),
		nrgba.Bounds().Dy(),
		false,
		nrgba.Pix,
	), nil
}

// LoadTexture reads a flipped, pixely texture from disk. Must run on the main thread.
func LoadTexture(filename string) (*glhf.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open texture")
	}
	defer file.Close()
	texture, err := NewTextureFromReader(file, true)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	LogTextureInfo(fmt.Sprintf("[Texture] loaded %s (%dx%d)", filename, texture.Width(), texture.Height()))
	return texture, nil
}
