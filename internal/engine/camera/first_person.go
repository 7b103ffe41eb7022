package camera

import "github.com/Faultbox/objview/pkg/math"

// FirstPersonCamera moves its eye freely and looks along its basis.
type FirstPersonCamera struct {
	base
}

// NewFirstPersonCamera creates a camera at position with the given angles in
// radians. The basis is valid immediately.
func NewFirstPersonCamera(position math.Vec3, yaw, pitch float32) *FirstPersonCamera {
	c := &FirstPersonCamera{base: newBase()}
	c.position = position
	c.yaw = yaw
	c.pitch = ClampPitch(pitch)
	c.update()
	return c
}

// SetPosition overwrites the eye position. The basis and target are not
// refreshed until the next Move or Rotate.
func (c *FirstPersonCamera) SetPosition(p math.Vec3) {
	c.position = p
}

// Move translates the eye by offset.
func (c *FirstPersonCamera) Move(offset math.Vec3) {
	c.position = c.position.Add(offset)
	c.update()
}

// Rotate adds the given deltas, in degrees, to yaw and pitch.
// Yaw is left unbounded; pitch is clamped.
func (c *FirstPersonCamera) Rotate(deltaYawDeg, deltaPitchDeg float32) {
	c.yaw += math.Radians(deltaYawDeg)
	c.pitch = ClampPitch(c.pitch + math.Radians(deltaPitchDeg))
	c.update()
}

func (c *FirstPersonCamera) update() {
	c.basis = NewBasis(c.yaw, c.pitch)
	c.target = c.position.Add(c.basis.Look)
}
