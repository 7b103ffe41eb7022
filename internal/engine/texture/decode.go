// Package texture decodes images and uploads them as OpenGL 2D textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for image extensions Decode does not know.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tga":  true,
}

// Supported reports whether name has an image extension Decode handles.
func Supported(name string) bool {
	return extensions[strings.ToLower(filepath.Ext(name))]
}

// Decode reads an image from r. The format is chosen from the extension of
// name. TGA has no magic number so it is dispatched explicitly; the others go
// through image.Decode.
func Decode(name string, r io.Reader) (*image.RGBA, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !extensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	if ext == ".tga" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return ToRGBA(img), nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(name string, data []byte) (*image.RGBA, error) {
	return Decode(name, bytes.NewReader(data))
}

// DecodeFile decodes an image file from disk.
func DecodeFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()
	return Decode(path, f)
}

// ToRGBA returns img as an *image.RGBA anchored at the origin, converting
// only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical swaps rows in place so the first row becomes the last.
// OpenGL expects texture rows bottom-up.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}
