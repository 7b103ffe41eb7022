// Package lighting holds the Phong light and material parameters and
// uploads them as shader uniforms.
package lighting

import (
	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/pkg/math"
)

// Uniforms is the subset of a shader program the lighting setup writes to.
type Uniforms interface {
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
}

// Uniform names shared with the built-in fragment shader.
const (
	UniformLightPosition    = "light.position"
	UniformLightAmbient     = "light.ambient"
	UniformLightDiffuse     = "light.diffuse"
	UniformLightSpecular    = "light.specular"
	UniformMaterialAmbient  = "material.ambient"
	UniformMaterialSpecular = "material.specular"
	UniformShininess        = "material.shininess"
	UniformDiffuseMap       = "material.diffuseMap"
	UniformViewPos          = "viewPos"
	UniformLit              = "lit"
)

// Light is a point light with separate Phong terms.
type Light struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Material is the surface response. The diffuse colour comes from the
// texture bound on DiffuseUnit.
type Material struct {
	Ambient     math.Vec3
	Specular    math.Vec3
	Shininess   float32
	DiffuseUnit int32
}

// MinShininess keeps pow() in the shader well defined.
const MinShininess = 1

// LightFromConfig converts the YAML light section.
func LightFromConfig(c config.LightConfig) Light {
	return Light{
		Position: math.Vec3FromArray(c.Position),
		Ambient:  math.Vec3FromArray(c.Ambient),
		Diffuse:  math.Vec3FromArray(c.Diffuse),
		Specular: math.Vec3FromArray(c.Specular),
	}
}

// MaterialFromConfig converts the YAML material section, sampling the
// diffuse texture from unit 0.
func MaterialFromConfig(c config.MaterialConfig) Material {
	return Material{
		Ambient:   math.Vec3FromArray(c.Ambient),
		Specular:  math.Vec3FromArray(c.Specular),
		Shininess: c.Shininess,
	}
}

// Apply writes the light uniforms.
func (l Light) Apply(u Uniforms) {
	u.SetVec3(UniformLightPosition, l.Position)
	u.SetVec3(UniformLightAmbient, l.Ambient)
	u.SetVec3(UniformLightDiffuse, l.Diffuse)
	u.SetVec3(UniformLightSpecular, l.Specular)
}

// Apply writes the material uniforms.
func (m Material) Apply(u Uniforms) {
	shininess := m.Shininess
	if shininess < MinShininess {
		shininess = MinShininess
	}
	u.SetVec3(UniformMaterialAmbient, m.Ambient)
	u.SetVec3(UniformMaterialSpecular, m.Specular)
	u.SetFloat(UniformShininess, shininess)
	u.SetInt(UniformDiffuseMap, m.DiffuseUnit)
}

// SetLit switches per-fragment lighting on or off. Meshes without normals
// are drawn with their texture colour only.
func SetLit(u Uniforms, lit bool) {
	var v int32
	if lit {
		v = 1
	}
	u.SetInt(UniformLit, v)
}
