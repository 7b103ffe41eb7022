package texture

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/logger"
)

// MaxUnits is the number of texture units Bind accepts.
const MaxUnits = 32

// ErrInvalidUnit is returned by Bind and Unbind for units outside [0, MaxUnits).
var ErrInvalidUnit = errors.New("texture unit out of range")

// Texture2D is an RGBA OpenGL texture with REPEAT wrapping and LINEAR
// filtering.
type Texture2D struct {
	ID     uint32
	Width  int
	Height int
}

// Load decodes the image at path, flips it for OpenGL and uploads it.
func (t *Texture2D) Load(path string, mipmaps bool) error {
	img, err := DecodeFile(path)
	if err != nil {
		return err
	}
	if err := t.Upload(img, mipmaps); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("texture loaded",
		zap.String("file", path),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height),
		zap.Bool("mipmaps", mipmaps),
	)
	return nil
}

// Upload flips img vertically in place and copies it to a new GL texture,
// replacing any previous one.
func (t *Texture2D) Upload(img *image.RGBA, mipmaps bool) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return errors.New("empty image")
	}
	FlipVertical(img)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	minFilter := int32(gl.LINEAR)
	if mipmaps {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	if mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t.Destroy()
	t.ID, t.Width, t.Height = id, w, h
	return nil
}

// Bind makes the texture current on the given unit.
func (t *Texture2D) Bind(unit uint32) error {
	if unit >= MaxUnits {
		return fmt.Errorf("%w: %d", ErrInvalidUnit, unit)
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	return nil
}

// Unbind clears the 2D texture binding on the given unit.
func (t *Texture2D) Unbind(unit uint32) error {
	if unit >= MaxUnits {
		return fmt.Errorf("%w: %d", ErrInvalidUnit, unit)
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Loaded reports whether the texture holds uploaded data.
func (t *Texture2D) Loaded() bool {
	return t.ID != 0
}

// Destroy deletes the GL texture. Safe to call more than once.
func (t *Texture2D) Destroy() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
