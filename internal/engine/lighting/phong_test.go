package lighting

import (
	"testing"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/pkg/math"
)

type recorder struct {
	vec3s  map[string]math.Vec3
	floats map[string]float32
	ints   map[string]int32
}

func newRecorder() *recorder {
	return &recorder{
		vec3s:  make(map[string]math.Vec3),
		floats: make(map[string]float32),
		ints:   make(map[string]int32),
	}
}

func (r *recorder) SetVec3(name string, v math.Vec3) { r.vec3s[name] = v }
func (r *recorder) SetFloat(name string, f float32) { r.floats[name] = f }
func (r *recorder) SetInt(name string, i int32) { r.ints[name] = i }

func TestLightApply(t *testing.T) {
	cfg := config.Default().Scene.Light
	r := newRecorder()
	LightFromConfig(cfg).Apply(r)

	want := map[string][3]float32{
		UniformLightPosition: cfg.Position,
		UniformLightAmbient:  cfg.Ambient,
		UniformLightDiffuse:  cfg.Diffuse,
		UniformLightSpecular: cfg.Specular,
	}
	for name, w := range want {
		if got := r.vec3s[name].Array(); got != w {
			t.Errorf("%s = %v, want %v", name, got, w)
		}
	}
}

func TestMaterialApply(t *testing.T) {
	tests := []struct {
		name      string
		shininess float32
		want      float32
	}{
		{"default", 32, 32},
		{"zero clamps", 0, MinShininess},
		{"negative clamps", -5, MinShininess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default().Scene.Material
			cfg.Shininess = tt.shininess
			r := newRecorder()
			MaterialFromConfig(cfg).Apply(r)

			if got := r.floats[UniformShininess]; got != tt.want {
				t.Errorf("shininess = %v, want %v", got, tt.want)
			}
			if unit, ok := r.ints[UniformDiffuseMap]; !ok || unit != 0 {
				t.Errorf("diffuse map unit = %v (set %v), want 0", unit, ok)
			}
			if got := r.vec3s[UniformMaterialSpecular].Array(); got != cfg.Specular {
				t.Errorf("specular = %v, want %v", got, cfg.Specular)
			}
		})
	}
}

func TestSetLit(t *testing.T) {
	r := newRecorder()
	SetLit(r, true)
	if r.ints[UniformLit] != 1 {
		t.Error("lit true did not set 1")
	}
	SetLit(r, false)
	if r.ints[UniformLit] != 0 {
		t.Error("lit false did not set 0")
	}
}
