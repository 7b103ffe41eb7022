package camera

import (
	gomath "math"

	"github.com/Faultbox/objview/pkg/math"
)

// OrbitCamera places its eye on a sphere around a target.
type OrbitCamera struct {
	base
	radius float32
}

// NewOrbitCamera creates an orbit camera around the origin with the default
// radius.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{base: newBase(), radius: DefaultRadius}
	c.update()
	return c
}

// SetLookAt overwrites the orbit target. The eye follows on the next Rotate.
func (c *OrbitCamera) SetLookAt(target math.Vec3) {
	c.target = target
}

// SetRadius sets the orbit radius, clamped to [2, 80].
// The eye follows on the next Rotate.
func (c *OrbitCamera) SetRadius(r float32) {
	c.radius = ClampRadius(r)
}

// Radius returns the orbit radius.
func (c *OrbitCamera) Radius() float32 {
	return c.radius
}

// Rotate sets yaw and pitch to the given absolute angles in degrees.
// Unlike FirstPersonCamera.Rotate the angles are not accumulated.
func (c *OrbitCamera) Rotate(yawDeg, pitchDeg float32) {
	c.yaw = math.Radians(yawDeg)
	c.pitch = ClampPitch(math.Radians(pitchDeg))
	c.update()
}

func (c *OrbitCamera) update() {
	dir := Direction(c.yaw, c.pitch)
	c.position = c.target.Add(dir.Scale(c.radius))
	// The eye looks back along dir; mirror the angles so the basis comes
	// out of the same NewBasis math.
	c.basis = NewBasis(c.yaw+gomath.Pi, -c.pitch)
}
