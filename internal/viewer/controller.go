package viewer

import (
	gomath "math"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/camera"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/pkg/math"
)

// Controller turns input frames into camera updates. It owns both camera
// variants and routes input to the active one.
type Controller struct {
	mode  string
	fp    *camera.FirstPersonCamera
	orbit *camera.OrbitCamera

	// Orbit angles in degrees. OrbitCamera.Rotate takes absolutes, so the
	// running totals live here.
	orbitYaw   float32
	orbitPitch float32

	moveSpeed float32
	mouseSens float32
	zoomSens  float32
}

// NewController builds both cameras from the camera config. The first
// person camera starts at Position looking down -Z; the orbit camera circles
// Target and starts on the side of Position.
func NewController(cfg config.CameraConfig) *Controller {
	pos := math.Vec3FromArray(cfg.Position)
	target := math.Vec3FromArray(cfg.Target)

	fp := camera.NewFirstPersonCamera(pos, gomath.Pi, 0)
	fp.SetFOV(cfg.FOV)

	orbit := camera.NewOrbitCamera()
	orbit.SetLookAt(target)
	orbit.SetRadius(cfg.OrbitRadius)
	orbit.SetFOV(cfg.FOV)

	c := &Controller{
		mode:      cfg.Mode,
		fp:        fp,
		orbit:     orbit,
		moveSpeed: cfg.MoveSpeed,
		mouseSens: cfg.MouseSensitivity,
		zoomSens:  cfg.ZoomSensitivity,
	}
	c.orbitYaw, c.orbitPitch = anglesToward(pos.Sub(target))
	c.orbitPitch = clampPitchDeg(c.orbitPitch)
	orbit.Rotate(c.orbitYaw, c.orbitPitch)
	return c
}

// anglesToward returns yaw and pitch in degrees of direction d.
func anglesToward(d math.Vec3) (yaw, pitch float32) {
	l := d.Length()
	if l == 0 {
		return 0, 0
	}
	yaw = math.Degrees(float32(gomath.Atan2(float64(d.X), float64(d.Z))))
	pitch = math.Degrees(float32(gomath.Asin(float64(d.Y / l))))
	return yaw, pitch
}

func clampPitchDeg(deg float32) float32 {
	limit := math.Degrees(camera.MaxPitch)
	return math.Clamp(deg, -limit, limit)
}

// Mode returns config.CameraFirstPerson or config.CameraOrbit.
func (c *Controller) Mode() string {
	return c.mode
}

// Active returns the camera the renderer should use.
func (c *Controller) Active() camera.Camera {
	if c.mode == config.CameraOrbit {
		return c.orbit
	}
	return c.fp
}

// FirstPerson returns the first person camera.
func (c *Controller) FirstPerson() *camera.FirstPersonCamera {
	return c.fp
}

// Orbit returns the orbit camera.
func (c *Controller) Orbit() *camera.OrbitCamera {
	return c.orbit
}

// ToggleMode switches between the two cameras. Each keeps its own state.
func (c *Controller) ToggleMode() {
	if c.mode == config.CameraOrbit {
		c.mode = config.CameraFirstPerson
	} else {
		c.mode = config.CameraOrbit
	}
}

// Update applies one frame of input to the active camera.
func (c *Controller) Update(f input.Frame) {
	if f.Triggered(input.ActionToggleCamera) {
		c.ToggleMode()
	}
	if c.mode == config.CameraOrbit {
		c.updateOrbit(f)
	} else {
		c.updateFirstPerson(f)
	}
}

func (c *Controller) updateFirstPerson(f input.Frame) {
	if f.CursorDX != 0 || f.CursorDY != 0 {
		// Moving the mouse right turns right, which is a negative yaw step.
		c.fp.Rotate(-f.CursorDX*c.mouseSens, -f.CursorDY*c.mouseSens)
	}

	if f.Scroll != 0 {
		c.fp.SetFOV(c.fp.FOV() + f.Scroll*c.zoomSens)
	}

	// Opposite keys do not cancel; the first of each pair wins.
	step := c.moveSpeed * f.Elapsed
	switch {
	case f.Held(input.KeyForward):
		c.fp.Move(c.fp.Look().Scale(step))
	case f.Held(input.KeyBack):
		c.fp.Move(c.fp.Look().Scale(-step))
	}
	switch {
	case f.Held(input.KeyLeft):
		c.fp.Move(c.fp.Right().Scale(-step))
	case f.Held(input.KeyRight):
		c.fp.Move(c.fp.Right().Scale(step))
	}
	switch {
	case f.Held(input.KeyUp):
		c.fp.Move(c.fp.Up().Scale(step))
	case f.Held(input.KeyDown):
		c.fp.Move(c.fp.Up().Scale(-step))
	}
}

func (c *Controller) updateOrbit(f input.Frame) {
	if f.Scroll != 0 {
		c.orbit.SetRadius(c.orbit.Radius() + f.Scroll*c.zoomSens)
	}
	c.orbitYaw -= f.CursorDX * c.mouseSens
	c.orbitPitch = clampPitchDeg(c.orbitPitch + f.CursorDY*c.mouseSens)
	c.orbit.Rotate(c.orbitYaw, c.orbitPitch)
}
