package viewer

import (
	"testing"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/camera"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/pkg/math"
)

const eps = 1e-4

func near(a, b float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController(config.Default().Camera)

	if c.Mode() != config.CameraFirstPerson {
		t.Fatalf("mode = %s", c.Mode())
	}
	fp := c.FirstPerson()
	if !nearVec(fp.Position(), math.Vec3{X: 0, Y: 3, Z: 10}) {
		t.Errorf("position = %v", fp.Position())
	}
	if !nearVec(fp.Look(), math.Vec3{X: 0, Y: 0, Z: -1}) {
		t.Errorf("look = %v, want -Z", fp.Look())
	}
	if fp.FOV() != 45 {
		t.Errorf("fov = %v", fp.FOV())
	}

	// The orbit eye starts where the first person eye is.
	o := c.Orbit()
	if !near(o.Radius(), 10) {
		t.Errorf("radius = %v", o.Radius())
	}
	want := math.Vec3{X: 0, Y: 3, Z: 10}.Normalize().Scale(10)
	if !nearVec(o.Position(), want) {
		t.Errorf("orbit position = %v, want %v", o.Position(), want)
	}
}

func TestFirstPersonMovement(t *testing.T) {
	tests := []struct {
		name string
		keys input.Key
		want math.Vec3 // offset after one second at speed 3
	}{
		{"forward", input.KeyForward, math.Vec3{Z: -3}},
		{"back", input.KeyBack, math.Vec3{Z: 3}},
		{"left", input.KeyLeft, math.Vec3{X: -3}},
		{"right", input.KeyRight, math.Vec3{X: 3}},
		{"up", input.KeyUp, math.Vec3{Y: 3}},
		{"down", input.KeyDown, math.Vec3{Y: -3}},
		{"forward wins over back", input.KeyForward | input.KeyBack, math.Vec3{Z: -3}},
		{"none", 0, math.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(config.Default().Camera)
			start := c.FirstPerson().Position()
			c.Update(input.Frame{Elapsed: 1, Keys: tt.keys})
			got := c.FirstPerson().Position().Sub(start)
			if !nearVec(got, tt.want) {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstPersonMouseLook(t *testing.T) {
	c := NewController(config.Default().Camera)
	yaw0 := c.FirstPerson().Yaw()

	// 100 px right at 0.1 deg/px turns 10 degrees right (negative yaw).
	c.Update(input.Frame{CursorDX: 100})
	if got := c.FirstPerson().Yaw() - yaw0; !near(got, math.Radians(-10)) {
		t.Errorf("yaw delta = %v rad, want -10 deg", got)
	}
	if c.FirstPerson().Look().X <= 0 {
		t.Error("turning right did not swing look toward +X")
	}

	// Moving the mouse far down clamps pitch rather than flipping over.
	c.Update(input.Frame{CursorDY: 10000})
	if got := c.FirstPerson().Pitch(); !near(got, -camera.MaxPitch) {
		t.Errorf("pitch = %v, want %v", got, -camera.MaxPitch)
	}
}

func TestScrollZoom(t *testing.T) {
	c := NewController(config.Default().Camera)

	c.Update(input.Frame{Scroll: 1})
	if got := c.FirstPerson().FOV(); got != 42 {
		t.Errorf("fov after one step = %v, want 42", got)
	}
	c.Update(input.Frame{Scroll: 100})
	if got := c.FirstPerson().FOV(); got != camera.MinFOV {
		t.Errorf("fov = %v, want clamp to %v", got, camera.MinFOV)
	}
	c.Update(input.Frame{Scroll: -100})
	if got := c.FirstPerson().FOV(); got != camera.MaxFOV {
		t.Errorf("fov = %v, want clamp to %v", got, camera.MaxFOV)
	}

	c.ToggleMode()
	c.Update(input.Frame{Scroll: 1})
	if got := c.Orbit().Radius(); !near(got, 7) {
		t.Errorf("radius = %v, want 7", got)
	}
	if got := c.FirstPerson().FOV(); got != camera.MaxFOV {
		t.Error("orbit scroll changed the first person FOV")
	}
}

func TestToggleCamera(t *testing.T) {
	c := NewController(config.Default().Camera)
	fpPos := c.FirstPerson().Position()

	c.Update(input.Frame{Actions: input.ActionToggleCamera})
	if c.Mode() != config.CameraOrbit {
		t.Fatalf("mode = %s, want orbit", c.Mode())
	}
	if c.Active() != camera.Camera(c.Orbit()) {
		t.Error("active camera is not the orbit camera")
	}

	// Input in orbit mode leaves the first person camera alone.
	c.Update(input.Frame{Elapsed: 1, Keys: input.KeyForward, CursorDX: 50})
	if c.FirstPerson().Position() != fpPos {
		t.Error("first person camera moved while inactive")
	}

	c.Update(input.Frame{Actions: input.ActionToggleCamera})
	if c.Mode() != config.CameraFirstPerson {
		t.Errorf("mode = %s, want first_person", c.Mode())
	}
}

func TestOrbitAccumulatesAbsoluteAngles(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Mode = config.CameraOrbit
	c := NewController(cfg)
	target := c.Orbit().Target()

	for i := 0; i < 5; i++ {
		c.Update(input.Frame{CursorDX: 100, CursorDY: 40})
		o := c.Orbit()
		if d := o.Position().Distance(target); !near(d, o.Radius()) {
			t.Fatalf("step %d: distance %v, radius %v", i, d, o.Radius())
		}
		toTarget := target.Sub(o.Position()).Normalize()
		if !nearVec(o.Look(), toTarget) {
			t.Fatalf("step %d: look %v does not face target %v", i, o.Look(), toTarget)
		}
	}

	// Five steps of -10 degrees yaw each from the starting 0.
	if got := c.orbitYaw; !near(got, -50) {
		t.Errorf("orbit yaw = %v, want -50", got)
	}
	limit := math.Degrees(camera.MaxPitch)
	if c.orbitPitch > limit {
		t.Errorf("orbit pitch %v exceeds %v", c.orbitPitch, limit)
	}
}

func TestAnglesToward(t *testing.T) {
	tests := []struct {
		name       string
		d          math.Vec3
		yaw, pitch float32
	}{
		{"+Z", math.Vec3{Z: 1}, 0, 0},
		{"+X", math.Vec3{X: 2}, 90, 0},
		{"up", math.Vec3{Y: 1, Z: 1}, 0, 45},
		{"zero", math.Vec3{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch := anglesToward(tt.d)
			if !near(yaw, tt.yaw) || !near(pitch, tt.pitch) {
				t.Errorf("anglesToward(%v) = %v, %v, want %v, %v", tt.d, yaw, pitch, tt.yaw, tt.pitch)
			}
		})
	}
}
