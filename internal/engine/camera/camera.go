// Package camera provides the first-person and orbit cameras used by the viewer.
//
// Both cameras derive their orientation from yaw/pitch angles through the
// same Basis math. They differ in which state is authoritative: a
// FirstPersonCamera owns its eye position, an OrbitCamera owns its target and
// radius and places the eye on a sphere around it.
package camera

import (
	gomath "math"

	"github.com/Faultbox/objview/pkg/math"
)

// Limits shared by both camera variants.
const (
	DefaultFOV = 45.0 // degrees
	MinFOV     = 1.0
	MaxFOV     = 120.0

	DefaultRadius = 10.0
	MinRadius     = 2.0
	MaxRadius     = 80.0

	// pitchMargin keeps pitch away from the poles where look ∥ worldUp.
	pitchMargin = 0.1
)

// MaxPitch is the largest pitch magnitude in radians.
const MaxPitch = gomath.Pi/2 - pitchMargin

// Camera is the contract the render loop reads from.
type Camera interface {
	ViewMatrix() math.Mat4
	Position() math.Vec3
	Target() math.Vec3
	Look() math.Vec3
	Right() math.Vec3
	Up() math.Vec3
	FOV() float32
	SetFOV(deg float32)
}

// Basis is the orthonormal look/right/up triple of a camera.
type Basis struct {
	Look  math.Vec3
	Right math.Vec3
	Up    math.Vec3
}

// NewBasis derives the basis for the given yaw and pitch (radians).
// Look comes first, then right = look × worldUp, then up = right × look;
// any other order breaks handedness near the clamped poles.
func NewBasis(yaw, pitch float32) Basis {
	look := Direction(yaw, pitch).Normalize()
	right := look.Cross(math.WorldUp).Normalize()
	up := right.Cross(look).Normalize()
	return Basis{Look: look, Right: right, Up: up}
}

// Direction converts spherical angles to a unit vector.
func Direction(yaw, pitch float32) math.Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return math.Vec3{X: cp * sy, Y: sp, Z: cp * cy}
}

// ClampPitch limits pitch to (-π/2+0.1, π/2-0.1).
func ClampPitch(pitch float32) float32 {
	return math.Clamp(pitch, -MaxPitch, MaxPitch)
}

// ClampFOV limits a field of view to [1, 120] degrees.
func ClampFOV(deg float32) float32 {
	return math.Clamp(deg, MinFOV, MaxFOV)
}

// ClampRadius limits an orbit radius to [2, 80].
func ClampRadius(r float32) float32 {
	return math.Clamp(r, MinRadius, MaxRadius)
}

// base is the state both variants share.
type base struct {
	position math.Vec3
	target   math.Vec3
	basis    Basis
	yaw      float32
	pitch    float32
	fov      float32
}

func newBase() base {
	return base{
		basis: Basis{Up: math.WorldUp},
		yaw:   gomath.Pi,
		fov:   DefaultFOV,
	}
}

// ViewMatrix returns the look-at matrix for the current state.
func (b *base) ViewMatrix() math.Mat4 {
	return math.LookAt(b.position, b.target, b.basis.Up)
}

// Position returns the eye position.
func (b *base) Position() math.Vec3 { return b.position }

// Target returns the point the camera looks toward.
func (b *base) Target() math.Vec3 { return b.target }

// Look returns the forward basis vector.
func (b *base) Look() math.Vec3 { return b.basis.Look }

// Right returns the right basis vector.
func (b *base) Right() math.Vec3 { return b.basis.Right }

// Up returns the up basis vector.
func (b *base) Up() math.Vec3 { return b.basis.Up }

// Basis returns the whole basis.
func (b *base) Basis() Basis { return b.basis }

// Yaw returns the yaw angle in radians.
func (b *base) Yaw() float32 { return b.yaw }

// Pitch returns the pitch angle in radians.
func (b *base) Pitch() float32 { return b.pitch }

// FOV returns the vertical field of view in degrees.
func (b *base) FOV() float32 { return b.fov }

// SetFOV sets the field of view, clamping out-of-range values.
func (b *base) SetFOV(deg float32) {
	b.fov = ClampFOV(deg)
}
