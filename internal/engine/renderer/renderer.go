// Package renderer owns global OpenGL state: initialisation, viewport,
// clearing and polygon mode.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Renderer handles frame-level OpenGL state.
type Renderer struct {
	config    Config
	wireframe bool
}

// New loads the GL function pointers and sets the default state.
// Must be called after the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)

	r := &Renderer{config: cfg}
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Resize sets the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears colour and depth for a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Wireframe reports whether polygons are drawn as lines.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// ToggleWireframe flips between filled and line polygon mode.
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
	mode := uint32(gl.FILL)
	if r.wireframe {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
	logger.Debug("polygon mode changed", zap.Bool("wireframe", r.wireframe))
}
