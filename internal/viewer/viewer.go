// Package viewer ties the window, input, cameras and scene together and runs
// the frame loop.
package viewer

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/assets"
	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/debug"
	"github.com/Faultbox/objview/internal/engine/gpu"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/renderer"
	"github.com/Faultbox/objview/internal/engine/shader"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/engine/window"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/math"
)

// ErrEmptyScene is returned when no configured object could be loaded.
var ErrEmptyScene = errors.New("no scene objects loaded")

// textureUnit is where every object's diffuse texture is bound.
const textureUnit = 0

// Viewer is the application context.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	program  *shader.Program
	assets   *assets.Manager

	control  *Controller
	objects  []*Object
	white    *texture.Texture2D
	light    lighting.Light
	material lighting.Material
	fps      FPSCounter
	shots    *debug.Screenshots
}

// New opens the window, builds the GL state and loads the scene. Objects that
// fail to load are logged and skipped; New fails only if none load.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:      cfg,
		log:      logger.Named("viewer"),
		control:  NewController(cfg.Camera),
		light:    lighting.LightFromConfig(cfg.Scene.Light),
		material: lighting.MaterialFromConfig(cfg.Scene.Material),
		shots:    debug.NewScreenshots(cfg.Window.ScreenshotDir, "objview"),
	}
	v.material.DiffuseUnit = textureUnit

	if err := v.init(); err != nil {
		v.Close()
		return nil, err
	}
	v.log.Info("viewer initialized",
		zap.Int("objects", len(v.objects)),
		zap.String("camera", v.control.Mode()),
	)
	return v, nil
}

func (v *Viewer) init() error {
	var err error
	v.assets, err = assets.NewManager(v.cfg.Scene.AssetRoots...)
	if err != nil {
		return err
	}

	// Window first: it creates the OpenGL context everything else needs.
	v.window, err = window.New(v.cfg.Window)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: v.cfg.Scene.ClearColor,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	v.program, err = v.loadProgram()
	if err != nil {
		return fmt.Errorf("failed to build shader program: %w", err)
	}

	v.white, err = whiteTexture()
	if err != nil {
		return fmt.Errorf("failed to create fallback texture: %w", err)
	}

	if err := v.loadScene(); err != nil {
		return err
	}

	v.input = input.New()
	return nil
}

func (v *Viewer) loadProgram() (*shader.Program, error) {
	sc := v.cfg.Scene
	if sc.VertexShader == "" && sc.FragmentShader == "" {
		return shader.Basic()
	}
	vert, err := v.assets.Resolve(sc.VertexShader)
	if err != nil {
		return nil, err
	}
	frag, err := v.assets.Resolve(sc.FragmentShader)
	if err != nil {
		return nil, err
	}
	return shader.Load(vert, frag)
}

func (v *Viewer) loadScene() error {
	dev := gpu.NewGLDevice()
	var failed error
	for _, oc := range v.cfg.Scene.Objects {
		obj, err := newObject(v.assets, dev, oc)
		if err != nil {
			v.log.Error("skipping object", zap.String("model", oc.Model), zap.Error(err))
			failed = multierr.Append(failed, fmt.Errorf("%s: %w", oc.Model, err))
			continue
		}
		if oc.Texture != "" {
			tex, err := loadTexture(v.assets, oc.Texture, true)
			if err != nil {
				v.log.Warn("texture unavailable, drawing untextured",
					zap.String("texture", oc.Texture), zap.Error(err))
			} else {
				obj.Texture = tex
			}
		}
		v.objects = append(v.objects, obj)
	}

	if hits, misses := v.assets.Stats(); hits > 0 {
		v.log.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
	}
	if len(v.objects) == 0 {
		return multierr.Append(ErrEmptyScene, failed)
	}
	return nil
}

// Run drives the frame loop until the user quits.
func (v *Viewer) Run() error {
	v.running = true
	v.log.Info("starting frame loop")

	for v.running {
		frame := v.input.Poll()
		v.handleActions(frame)
		if !v.running {
			break
		}

		v.control.Update(frame)
		v.render()
		if frame.Triggered(input.ActionScreenshot) {
			v.screenshot()
		}
		v.window.SwapBuffers()

		if v.fps.Tick(frame.Elapsed) {
			v.window.SetTitle(v.fps.Title(v.cfg.Window.Title))
		}
	}
	return nil
}

func (v *Viewer) handleActions(f input.Frame) {
	if f.Triggered(input.ActionQuit) {
		v.running = false
		return
	}
	if f.Triggered(input.ActionResize) {
		v.renderer.Resize(v.window.DrawableSize())
	}
	if f.Triggered(input.ActionWireframe) {
		v.renderer.ToggleWireframe()
	}
	if f.Triggered(input.ActionToggleCamera) {
		v.log.Debug("camera mode toggled")
	}
}

// screenshot saves the frame just rendered, before the buffer swap.
func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.Save(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// render draws every object. Uniforms are set after Use since they apply to
// the current program.
func (v *Viewer) render() {
	v.renderer.Begin()

	cam := v.control.Active()
	view := cam.ViewMatrix()
	projection := math.Perspective(
		math.Radians(cam.FOV()),
		v.window.Aspect(),
		v.cfg.Camera.Near,
		v.cfg.Camera.Far,
	)

	v.program.Use()
	v.program.SetMat4("view", view)
	v.program.SetMat4("projection", projection)
	v.program.SetVec3(lighting.UniformViewPos, cam.Position())
	v.light.Apply(v.program)
	v.material.Apply(v.program)

	for _, obj := range v.objects {
		v.program.SetMat4("model", obj.ModelMatrix())
		v.program.SetMat3("normalMatrix", obj.NormalMatrix())
		lighting.SetLit(v.program, obj.Lit)

		tex := obj.Texture
		if tex == nil {
			tex = v.white
		}
		if err := tex.Bind(textureUnit); err != nil {
			v.log.Error("bind texture", zap.String("object", obj.Name), zap.Error(err))
			continue
		}
		obj.Mesh.Draw()
		_ = tex.Unbind(textureUnit)
	}
}

// Close releases everything New created. It is safe on a partly built
// Viewer.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	for _, obj := range v.objects {
		obj.Destroy()
	}
	v.objects = nil
	if v.white != nil {
		v.white.Destroy()
	}
	if v.program != nil {
		v.program.Delete()
	}
	if v.window != nil {
		v.window.Close()
		v.window = nil
	}
	if v.assets != nil {
		v.assets.Close()
	}
}
