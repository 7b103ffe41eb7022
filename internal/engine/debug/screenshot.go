// Package debug holds developer helpers for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/objview/internal/engine/texture"
)

// Screenshots writes framebuffer captures as timestamped PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots returns a writer that saves into dir (created on demand).
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture would be written to.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format("2006-01-02_15-04-05.000"))
	return filepath.Join(s.dir, name)
}

// Save encodes bottom-up RGBA rows, as returned by glReadPixels, to a PNG.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	if want := width * height * 4; len(pixels) != want {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", want, len(pixels))
	}
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	texture.FlipVertical(img)

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}
	path := s.Filename()
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
